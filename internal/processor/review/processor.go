// Package review applies events of the review contract.
package review

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

const table = "reviews"

// Row is a record of the reviews table.
type Row struct {
	ReviewID         uint64          `meddler:"review_id"`
	AuthorAddress    common.Address  `meddler:"author_address,address"`
	AuthorProfileID  uint64          `meddler:"author_profile_id"`
	SubjectAddress   *common.Address `meddler:"subject_address,address"`
	SubjectProfileID uint64          `meddler:"subject_profile_id"`
	AttestationHash  common.Hash     `meddler:"attestation_hash,hash"`
	Score            uint8           `meddler:"score"`
	Archived         bool            `meddler:"archived"`
	Comment          string          `meddler:"comment"`
	Metadata         string          `meddler:"metadata"`
	CreatedAt        int64           `meddler:"created_at"`
	UpdatedAt        int64           `meddler:"updated_at"`
}

// Payload is the collapsed write set of one batch.
type Payload struct {
	Reviews *processor.ChangeSet[uint64, *Row]
	Journal processor.Journal
}

type view struct {
	Archived        bool
	Score           uint8
	Author          common.Address
	Subject         common.Address
	ReviewID        *big.Int `abi:"reviewId"`
	AuthorProfileID *big.Int `abi:"authorProfileId"`
	CreatedAt       *big.Int
	Comment         string
	Metadata        string
	AttestationHash [32]byte
}

func (v *view) EntityID() *big.Int { return v.ReviewID }

var _ processor.Handler[Event, *Payload] = (*Handler)(nil)

// Handler processes review events.
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

// New returns the review EventProcessor.
func New(address common.Address, deps processor.Deps) processor.EventProcessor {
	return processor.New(NewHandler(deps.Client, address), address, deps)
}

func (h *Handler) Contract() itypes.Contract { return itypes.ContractReview }

func (h *Handler) ABI() abi.ABI { return EventsABI }

func (h *Handler) IgnoreEvents() []string { return nil }

func (h *Handler) WrangleEvent(parsed *processor.ParsedLog) (Event, bool) {
	return Wrangle(parsed)
}

func (h *Handler) PreparePayload(ctx context.Context,
	events []processor.Wrangled[Event]) (*processor.Prepared[*Payload], error) {
	var (
		payload  = &Payload{Reviews: processor.NewChangeSet[uint64, *Row]()}
		prepared = &processor.Prepared[*Payload]{Payload: payload}
		reads    = processor.NewReadCache(h.read)
		now      = h.now().Unix()
	)

	notFound, err := processor.EachEvent(ctx, events, func(ctx context.Context, w processor.Wrangled[Event]) error {
		id := w.Event.ReviewID()

		v, err := reads.Get(ctx, id)
		if err != nil {
			return err
		}
		row := toRow(v, now)

		if existing, ok := payload.Reviews.Get(id); ok {
			row.SubjectProfileID = existing.Row.SubjectProfileID
		}

		switch e := w.Event.(type) {
		case Created:
			row.SubjectProfileID = e.SubjectProfileID
			payload.Reviews.Insert(id, row)
		case Archived, Restored:
			payload.Reviews.Update(id, row, "archived", "updated_at")
		case Edited:
			payload.Reviews.Update(id, row, "comment", "metadata", "updated_at")
		}

		payload.Journal.Add(w.Parsed.Name, id, w.Raw)
		prepared.Invalidations = append(prepared.Invalidations, dirtyTargets(row, w)...)

		return nil
	})
	if err != nil {
		return nil, err
	}
	prepared.NotFound = notFound

	return prepared, nil
}

func (h *Handler) SubmitPayload(ctx context.Context, tx *sql.Tx, payload *Payload) error {
	if err := payload.Reviews.Apply(ctx, tx, table, "review_id"); err != nil {
		return err
	}
	return payload.Journal.Write(ctx, tx)
}

func (h *Handler) read(ctx context.Context, id uint64) (*view, error) {
	v := new(view)
	if err := h.reader.CallByID(ctx, v, "reviews", id); err != nil {
		return nil, fmt.Errorf("failed to read review %d: %w", id, err)
	}
	return v, nil
}

func toRow(v *view, now int64) *Row {
	row := &Row{
		ReviewID:        processor.U64(v.ReviewID),
		AuthorAddress:   v.Author,
		AuthorProfileID: processor.U64(v.AuthorProfileID),
		AttestationHash: v.AttestationHash,
		Score:           v.Score,
		Archived:        v.Archived,
		Comment:         v.Comment,
		Metadata:        v.Metadata,
		CreatedAt:       int64(processor.U64(v.CreatedAt)), //nolint:gosec
		UpdatedAt:       now,
	}
	if v.Subject != (common.Address{}) {
		subject := v.Subject
		row.SubjectAddress = &subject
	}
	return row
}

// dirtyTargets returns the author profile and, when the review is about an address, that address.
func dirtyTargets(row *Row, w processor.Wrangled[Event]) []score.RecomputeJob {
	txHash := processor.TxHash(w.Raw)

	var jobs []score.RecomputeJob
	if row.AuthorProfileID != 0 {
		jobs = append(jobs, score.RecomputeJob{Target: score.ProfileTarget(row.AuthorProfileID), TxHash: txHash})
	}
	if row.SubjectAddress != nil {
		jobs = append(jobs, score.RecomputeJob{Target: score.AddressTarget(*row.SubjectAddress), TxHash: txHash})
	}

	return jobs
}
