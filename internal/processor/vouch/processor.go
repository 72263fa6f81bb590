// Package vouch applies events of the vouch contract.
package vouch

import (
	"context"
	"database/sql"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/goran-ethernal/ReputationIndexor/internal/processor"
	"github.com/goran-ethernal/ReputationIndexor/internal/score"
	itypes "github.com/goran-ethernal/ReputationIndexor/internal/types"
	"github.com/goran-ethernal/ReputationIndexor/pkg/rpc"
)

const table = "vouches"

type Row struct {
	VouchID          uint64   `meddler:"vouch_id"`
	AuthorProfileID  uint64   `meddler:"author_profile_id"`
	SubjectProfileID uint64   `meddler:"subject_profile_id"`
	Staked           *big.Int `meddler:"staked,bigint"`
	Archived         bool     `meddler:"archived"`
	Unhealthy        bool     `meddler:"unhealthy"`
	VouchedAt        int64    `meddler:"vouched_at"`
	UnvouchedAt      int64    `meddler:"unvouched_at"`
	UpdatedAt        int64    `meddler:"updated_at"`
}

type Payload struct {
	Vouches *processor.ChangeSet[uint64, *Row]
	Journal processor.Journal
}

type view struct {
	Archived         bool
	Unhealthy        bool
	AuthorProfileID  *big.Int `abi:"authorProfileId"`
	SubjectProfileID *big.Int `abi:"subjectProfileId"`
	VouchID          *big.Int `abi:"vouchId"`
	Balance          *big.Int
	VouchedAt        *big.Int `abi:"vouchedAt"`
	UnvouchedAt      *big.Int `abi:"unvouchedAt"`
}

func (v *view) EntityID() *big.Int { return v.VouchID }

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

// New returns the vouch EventProcessor.
func New(address common.Address, deps processor.Deps) processor.EventProcessor {
	return processor.New(NewHandler(deps.Client, address), address, deps)
}

func (h *Handler) Contract() itypes.Contract { return itypes.ContractVouch }

func (h *Handler) ABI() abi.ABI { return EventsABI }

func (h *Handler) IgnoreEvents() []string { return nil }

func (h *Handler) WrangleEvent(parsed *processor.ParsedLog) (Event, bool) {
	return Wrangle(parsed)
}

func (h *Handler) PreparePayload(ctx context.Context,
	events []processor.Wrangled[Event]) (*processor.Prepared[*Payload], error) {
	var (
		payload  = &Payload{Vouches: processor.NewChangeSet[uint64, *Row]()}
		prepared = &processor.Prepared[*Payload]{Payload: payload}
		reads    = processor.NewReadCache(h.read)
		now      = h.now().Unix()
	)

	notFound, err := processor.EachEvent(ctx, events, func(ctx context.Context, w processor.Wrangled[Event]) error {
		id := w.Event.VouchID()

		v, err := reads.Get(ctx, id)
		if err != nil {
			return err
		}
		row := toRow(v, now)

		switch w.Event.(type) {
		case Vouched:
			payload.Vouches.Insert(id, row)
		case Unvouched:
			payload.Vouches.Update(id, row, "archived", "staked", "unvouched_at", "updated_at")
		case MarkedUnhealthy:
			payload.Vouches.Update(id, row, "unhealthy", "updated_at")
		}

		payload.Journal.Add(w.Parsed.Name, id, w.Raw)

		txHash := processor.TxHash(w.Raw)
		for _, profileID := range []uint64{row.AuthorProfileID, row.SubjectProfileID} {
			if profileID != 0 {
				prepared.Invalidations = append(prepared.Invalidations,
					score.RecomputeJob{Target: score.ProfileTarget(profileID), TxHash: txHash})
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	prepared.NotFound = notFound

	return prepared, nil
}

func (h *Handler) SubmitPayload(ctx context.Context, tx *sql.Tx, payload *Payload) error {
	if err := payload.Vouches.Apply(ctx, tx, table, "vouch_id"); err != nil {
		return err
	}
	return payload.Journal.Write(ctx, tx)
}

func (h *Handler) read(ctx context.Context, id uint64) (*view, error) {
	v := new(view)
	if err := h.reader.CallByID(ctx, v, "vouches", id); err != nil {
		return nil, fmt.Errorf("failed to read vouch %d: %w", id, err)
	}
	return v, nil
}

func toRow(v *view, now int64) *Row {
	staked := v.Balance
	if staked == nil {
		staked = new(big.Int)
	}

	return &Row{
		VouchID:          processor.U64(v.VouchID),
		AuthorProfileID:  processor.U64(v.AuthorProfileID),
		SubjectProfileID: processor.U64(v.SubjectProfileID),
		Staked:           staked,
		Archived:         v.Archived,
		Unhealthy:        v.Unhealthy,
		VouchedAt:        int64(processor.U64(v.VouchedAt)),   //nolint:gosec
		UnvouchedAt:      int64(processor.U64(v.UnvouchedAt)), //nolint:gosec
		UpdatedAt:        now,
	}
}
