// Package vote applies events of the vote contract.
package vote

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

const table = "votes"

type Row struct {
	VoteID         uint64         `meddler:"vote_id"`
	VoterProfileID uint64         `meddler:"voter_profile_id"`
	TargetContract common.Address `meddler:"target_contract,address"`
	TargetID       uint64         `meddler:"target_id"`
	IsUpvote       bool           `meddler:"is_upvote"`
	Archived       bool           `meddler:"archived"`
	CreatedAt      int64          `meddler:"created_at"`
	UpdatedAt      int64          `meddler:"updated_at"`
}

type Payload struct {
	Votes   *processor.ChangeSet[uint64, *Row]
	Journal processor.Journal
}

type view struct {
	IsUpvote       bool           `abi:"isUpvote"`
	IsArchived     bool           `abi:"isArchived"`
	TargetContract common.Address `abi:"targetContract"`
	VoterProfileID *big.Int       `abi:"voterProfileId"`
	TargetID       *big.Int       `abi:"targetId"`
	CreatedAt      *big.Int       `abi:"createdAt"`
	VoteID         *big.Int       `abi:"voteId"`
}

func (v *view) EntityID() *big.Int { return v.VoteID }

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

// New returns the vote EventProcessor.
func New(address common.Address, deps processor.Deps) processor.EventProcessor {
	return processor.New(NewHandler(deps.Client, address), address, deps)
}

func (h *Handler) Contract() itypes.Contract { return itypes.ContractVote }

func (h *Handler) ABI() abi.ABI { return EventsABI }

func (h *Handler) IgnoreEvents() []string { return nil }

func (h *Handler) WrangleEvent(parsed *processor.ParsedLog) (Event, bool) {
	return Wrangle(parsed)
}

func (h *Handler) PreparePayload(ctx context.Context,
	events []processor.Wrangled[Event]) (*processor.Prepared[*Payload], error) {
	var (
		payload  = &Payload{Votes: processor.NewChangeSet[uint64, *Row]()}
		prepared = &processor.Prepared[*Payload]{Payload: payload}
		reads    = processor.NewReadCache(h.read)
		now      = h.now().Unix()
	)

	notFound, err := processor.EachEvent(ctx, events, func(ctx context.Context, w processor.Wrangled[Event]) error {
		id := w.Event.VoteID()

		v, err := reads.Get(ctx, id)
		if err != nil {
			return err
		}
		row := &Row{
			VoteID:         processor.U64(v.VoteID),
			VoterProfileID: processor.U64(v.VoterProfileID),
			TargetContract: v.TargetContract,
			TargetID:       processor.U64(v.TargetID),
			IsUpvote:       v.IsUpvote,
			Archived:       v.IsArchived,
			CreatedAt:      int64(processor.U64(v.CreatedAt)), //nolint:gosec
			UpdatedAt:      now,
		}

		switch w.Event.(type) {
		case Voted:
			payload.Votes.Insert(id, row)
		case Changed:
			payload.Votes.Update(id, row, "is_upvote", "archived", "updated_at")
		}

		payload.Journal.Add(w.Parsed.Name, id, w.Raw)
		if row.VoterProfileID != 0 {
			prepared.Invalidations = append(prepared.Invalidations, score.RecomputeJob{
				Target: score.ProfileTarget(row.VoterProfileID),
				TxHash: processor.TxHash(w.Raw),
			})
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
	if err := payload.Votes.Apply(ctx, tx, table, "vote_id"); err != nil {
		return err
	}
	return payload.Journal.Write(ctx, tx)
}

func (h *Handler) read(ctx context.Context, id uint64) (*view, error) {
	v := new(view)
	if err := h.reader.CallByID(ctx, v, "votes", id); err != nil {
		return nil, fmt.Errorf("failed to read vote %d: %w", id, err)
	}
	return v, nil
}
