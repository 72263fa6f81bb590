// Package attestation applies events of the attestation contract, which links external
// service accounts (x.com handles and the like) to profiles.
package attestation

import (
	"context"
	"database/sql"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/goran-ethernal/ReputationIndexor/internal/processor"
	"github.com/goran-ethernal/ReputationIndexor/internal/score"
	itypes "github.com/goran-ethernal/ReputationIndexor/internal/types"
	"github.com/goran-ethernal/ReputationIndexor/pkg/rpc"
)

const table = "attestations"

type Row struct {
	AttestationID uint64      `meddler:"attestation_id"`
	ProfileID     uint64      `meddler:"profile_id"`
	Service       string      `meddler:"service"`
	Account       string      `meddler:"account"`
	Evidence      string      `meddler:"evidence"`
	Hash          common.Hash `meddler:"hash,hash"`
	Archived      bool        `meddler:"archived"`
	CreatedAt     int64       `meddler:"created_at"`
	UpdatedAt     int64       `meddler:"updated_at"`
}

type Payload struct {
	Attestations *processor.ChangeSet[uint64, *Row]
	Journal      processor.Journal
}

type view struct {
	Archived      bool
	AttestationID *big.Int `abi:"attestationId"`
	CreatedAt     *big.Int `abi:"createdAt"`
	ProfileID     *big.Int `abi:"profileId"`
	Account       string
	Service       string
}

func (v *view) EntityID() *big.Int { return v.AttestationID }

var stringPair = abi.Arguments{{Type: mustType("string")}, {Type: mustType("string")}}

// AccountHash is the contract's identifier of a service account: keccak256(abi.encode(service, account)).
func AccountHash(service, account string) common.Hash {
	packed, err := stringPair.Pack(service, account)
	if err != nil {
		return common.Hash{}
	}
	return crypto.Keccak256Hash(packed)
}

var _ processor.Handler[Event, *Payload] = (*Handler)(nil)

type Handler struct {
	reader *processor.ViewReader
	now    func() time.Time
}

func NewHandler(client rpc.ChainClient, address common.Address) *Handler {
	return &Handler{
		reader: processor.NewViewReader(client, address, ViewsABI),
		now:    time.Now,
	}
}

// New returns the attestation EventProcessor.
func New(address common.Address, deps processor.Deps) processor.EventProcessor {
	return processor.New(NewHandler(deps.Client, address), address, deps)
}

func (h *Handler) Contract() itypes.Contract { return itypes.ContractAttestation }

func (h *Handler) ABI() abi.ABI { return EventsABI }

func (h *Handler) IgnoreEvents() []string { return nil }

func (h *Handler) WrangleEvent(parsed *processor.ParsedLog) (Event, bool) {
	return Wrangle(parsed)
}

func (h *Handler) PreparePayload(ctx context.Context,
	events []processor.Wrangled[Event]) (*processor.Prepared[*Payload], error) {
	var (
		payload  = &Payload{Attestations: processor.NewChangeSet[uint64, *Row]()}
		prepared = &processor.Prepared[*Payload]{Payload: payload}
		reads    = processor.NewReadCache(h.read)
		now      = h.now().Unix()
	)

	notFound, err := processor.EachEvent(ctx, events, func(ctx context.Context, w processor.Wrangled[Event]) error {
		id := w.Event.AttestationID()

		v, err := reads.Get(ctx, id)
		if err != nil {
			return err
		}
		row := toRow(v, now)

		// evidence is only carried by events
		if existing, ok := payload.Attestations.Get(id); ok {
			row.Evidence = existing.Row.Evidence
		}

		switch e := w.Event.(type) {
		case Created:
			row.Evidence = e.Evidence
			payload.Attestations.Insert(id, row)
		case Claimed:
			row.Evidence = e.Evidence
			payload.Attestations.Update(id, row, "profile_id", "evidence", "archived", "updated_at")
		case Archived, Restored:
			payload.Attestations.Update(id, row, "archived", "updated_at")
		}

		payload.Journal.Add(w.Parsed.Name, id, w.Raw)

		txHash := processor.TxHash(w.Raw)
		if row.ProfileID != 0 {
			prepared.Invalidations = append(prepared.Invalidations,
				score.RecomputeJob{Target: score.ProfileTarget(row.ProfileID), TxHash: txHash})
		}
		prepared.Invalidations = append(prepared.Invalidations,
			score.RecomputeJob{Target: score.ServiceAccountTarget(row.Service, row.Account), TxHash: txHash})

		return nil
	})
	if err != nil {
		return nil, err
	}
	prepared.NotFound = notFound

	return prepared, nil
}

func (h *Handler) SubmitPayload(ctx context.Context, tx *sql.Tx, payload *Payload) error {
	if err := payload.Attestations.Apply(ctx, tx, table, "attestation_id"); err != nil {
		return err
	}
	return payload.Journal.Write(ctx, tx)
}

func (h *Handler) read(ctx context.Context, id uint64) (*view, error) {
	v := new(view)
	if err := h.reader.CallByID(ctx, v, "attestationById", id); err != nil {
		return nil, fmt.Errorf("failed to read attestation %d: %w", id, err)
	}
	return v, nil
}

func toRow(v *view, now int64) *Row {
	return &Row{
		AttestationID: processor.U64(v.AttestationID),
		ProfileID:     processor.U64(v.ProfileID),
		Service:       v.Service,
		Account:       v.Account,
		Hash:          AccountHash(v.Service, v.Account),
		Archived:      v.Archived,
		CreatedAt:     int64(processor.U64(v.CreatedAt)), //nolint:gosec
		UpdatedAt:     now,
	}
}

func mustType(t string) abi.Type {
	typ, err := abi.NewType(t, "", nil)
	if err != nil {
		panic(err)
	}
	return typ
}
