// Package discussion applies events of the discussion contract. Replies carry no reputation
// weight, so the processor never invalidates scores.
package discussion

import (
	"context"
	"database/sql"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/goran-ethernal/ReputationIndexor/internal/processor"
	itypes "github.com/goran-ethernal/ReputationIndexor/internal/types"
	"github.com/goran-ethernal/ReputationIndexor/pkg/rpc"
)

const table = "replies"

type Row struct {
	ReplyID         uint64         `meddler:"reply_id"`
	AuthorProfileID uint64         `meddler:"author_profile_id"`
	TargetContract  common.Address `meddler:"target_contract,address"`
	ParentID        uint64         `meddler:"parent_id"`
	Content         string         `meddler:"content"`
	Metadata        string         `meddler:"metadata"`
	Edits           uint64         `meddler:"edits"`
	CreatedAt       int64          `meddler:"created_at"`
	UpdatedAt       int64          `meddler:"updated_at"`
}

type Payload struct {
	Replies *processor.ChangeSet[uint64, *Row]
	Journal processor.Journal
}

type view struct {
	ParentIsOriginalComment bool           `abi:"parentIsOriginalComment"`
	TargetContract          common.Address `abi:"targetContract"`
	AuthorProfileID         *big.Int       `abi:"authorProfileId"`
	ID                      *big.Int       `abi:"id"`
	ParentID                *big.Int       `abi:"parentId"`
	CreatedAt               *big.Int       `abi:"createdAt"`
	Edits                   *big.Int
	Content                 string
	Metadata                string
}

func (v *view) EntityID() *big.Int { return v.ID }

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

// New returns the discussion EventProcessor.
func New(address common.Address, deps processor.Deps) processor.EventProcessor {
	return processor.New(NewHandler(deps.Client, address), address, deps)
}

func (h *Handler) Contract() itypes.Contract { return itypes.ContractDiscussion }

func (h *Handler) ABI() abi.ABI { return EventsABI }

func (h *Handler) IgnoreEvents() []string { return nil }

func (h *Handler) WrangleEvent(parsed *processor.ParsedLog) (Event, bool) {
	return Wrangle(parsed)
}

func (h *Handler) PreparePayload(ctx context.Context,
	events []processor.Wrangled[Event]) (*processor.Prepared[*Payload], error) {
	var (
		payload  = &Payload{Replies: processor.NewChangeSet[uint64, *Row]()}
		prepared = &processor.Prepared[*Payload]{Payload: payload}
		reads    = processor.NewReadCache(h.read)
		now      = h.now().Unix()
	)

	notFound, err := processor.EachEvent(ctx, events, func(ctx context.Context, w processor.Wrangled[Event]) error {
		id := w.Event.ReplyID()

		v, err := reads.Get(ctx, id)
		if err != nil {
			return err
		}
		row := &Row{
			ReplyID:         processor.U64(v.ID),
			AuthorProfileID: processor.U64(v.AuthorProfileID),
			TargetContract:  v.TargetContract,
			ParentID:        processor.U64(v.ParentID),
			Content:         v.Content,
			Metadata:        v.Metadata,
			Edits:           processor.U64(v.Edits),
			CreatedAt:       int64(processor.U64(v.CreatedAt)), //nolint:gosec
			UpdatedAt:       now,
		}

		switch w.Event.(type) {
		case Added:
			payload.Replies.Insert(id, row)
		case Edited:
			payload.Replies.Update(id, row, "content", "metadata", "edits", "updated_at")
		}
		payload.Journal.Add(w.Parsed.Name, id, w.Raw)

		return nil
	})
	if err != nil {
		return nil, err
	}
	prepared.NotFound = notFound

	return prepared, nil
}

func (h *Handler) SubmitPayload(ctx context.Context, tx *sql.Tx, payload *Payload) error {
	if err := payload.Replies.Apply(ctx, tx, table, "reply_id"); err != nil {
		return err
	}
	return payload.Journal.Write(ctx, tx)
}

func (h *Handler) read(ctx context.Context, id uint64) (*view, error) {
	v := new(view)
	if err := h.reader.CallByID(ctx, v, "replies", id); err != nil {
		return nil, fmt.Errorf("failed to read reply %d: %w", id, err)
	}
	return v, nil
}
