// Package market applies events of the reputation market contract. Market state is kept per
// profile, every buy or sell is additionally recorded in market_trades.
package market

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

const (
	marketsTable = "markets"
	tradesTable  = "market_trades"
)

// Row is a record of the markets table. Prices are only known once a MarketUpdated was seen.
type Row struct {
	ProfileID      uint64         `meddler:"profile_id"`
	CreatorAddress common.Address `meddler:"creator_address,address"`
	TrustVotes     *big.Int       `meddler:"trust_votes,bigint"`
	DistrustVotes  *big.Int       `meddler:"distrust_votes,bigint"`
	TrustPrice     *big.Int       `meddler:"trust_price,bigint"`
	DistrustPrice  *big.Int       `meddler:"distrust_price,bigint"`
	UpdatedAt      int64          `meddler:"updated_at"`
}

// TradeRow is a record of the market_trades table, unique per raw event.
type TradeRow struct {
	RawEventID   int64          `meddler:"raw_event_id"`
	ProfileID    uint64         `meddler:"profile_id"`
	ActorAddress common.Address `meddler:"actor_address,address"`
	IsBuy        bool           `meddler:"is_buy"`
	IsPositive   bool           `meddler:"is_positive"`
	Amount       *big.Int       `meddler:"amount,bigint"`
	Funds        *big.Int       `meddler:"funds,bigint"`
	TxHash       common.Hash    `meddler:"tx_hash,hash"`
	BlockNumber  uint64         `meddler:"block_number"`
}

type Payload struct {
	Markets *processor.ChangeSet[uint64, *Row]
	Trades  []*TradeRow
	Journal processor.Journal
}

type view struct {
	ProfileID     *big.Int `abi:"profileId"`
	TrustVotes    *big.Int `abi:"trustVotes"`
	DistrustVotes *big.Int `abi:"distrustVotes"`
}

func (v *view) EntityID() *big.Int { return v.ProfileID }

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

// New returns the market EventProcessor.
func New(address common.Address, deps processor.Deps) processor.EventProcessor {
	return processor.New(NewHandler(deps.Client, address), address, deps)
}

func (h *Handler) Contract() itypes.Contract { return itypes.ContractMarket }

func (h *Handler) ABI() abi.ABI { return EventsABI }

func (h *Handler) IgnoreEvents() []string { return ignoreEvents }

func (h *Handler) WrangleEvent(parsed *processor.ParsedLog) (Event, bool) {
	return Wrangle(parsed)
}

func (h *Handler) PreparePayload(ctx context.Context,
	events []processor.Wrangled[Event]) (*processor.Prepared[*Payload], error) {
	var (
		payload  = &Payload{Markets: processor.NewChangeSet[uint64, *Row]()}
		prepared = &processor.Prepared[*Payload]{Payload: payload}
		reads    = processor.NewReadCache(h.read)
		now      = h.now().Unix()
	)

	notFound, err := processor.EachEvent(ctx, events, func(ctx context.Context, w processor.Wrangled[Event]) error {
		profileID := w.Event.ProfileID()

		v, err := reads.Get(ctx, profileID)
		if err != nil {
			return err
		}
		row := &Row{
			ProfileID:     processor.U64(v.ProfileID),
			TrustVotes:    orZero(v.TrustVotes),
			DistrustVotes: orZero(v.DistrustVotes),
			UpdatedAt:     now,
		}
		if existing, ok := payload.Markets.Get(profileID); ok {
			row.CreatorAddress = existing.Row.CreatorAddress
			row.TrustPrice = existing.Row.TrustPrice
			row.DistrustPrice = existing.Row.DistrustPrice
		}

		switch e := w.Event.(type) {
		case Created:
			row.CreatorAddress = e.Creator
			payload.Markets.Insert(profileID, row)
		case Updated:
			row.TrustPrice = e.TrustPrice
			row.DistrustPrice = e.DistrustPrice
			payload.Markets.Update(profileID, row,
				"trust_votes", "distrust_votes", "trust_price", "distrust_price", "updated_at")
		case Trade:
			payload.Markets.Update(profileID, row, "trust_votes", "distrust_votes", "updated_at")
			payload.Trades = append(payload.Trades, &TradeRow{
				RawEventID:   w.Raw.ID,
				ProfileID:    profileID,
				ActorAddress: e.Actor,
				IsBuy:        e.IsBuy,
				IsPositive:   e.IsPositive,
				Amount:       e.Amount,
				Funds:        e.Funds,
				TxHash:       w.Raw.TxHash,
				BlockNumber:  w.Raw.BlockNumber,
			})
		}

		payload.Journal.Add(w.Parsed.Name, profileID, w.Raw)
		prepared.Invalidations = append(prepared.Invalidations, score.RecomputeJob{
			Target: score.ProfileTarget(profileID),
			TxHash: processor.TxHash(w.Raw),
		})

		return nil
	})
	if err != nil {
		return nil, err
	}
	prepared.NotFound = notFound

	return prepared, nil
}

func (h *Handler) SubmitPayload(ctx context.Context, tx *sql.Tx, payload *Payload) error {
	if err := payload.Markets.Apply(ctx, tx, marketsTable, "profile_id"); err != nil {
		return err
	}
	for _, trade := range payload.Trades {
		if err := processor.InsertIgnore(ctx, tx, tradesTable, trade); err != nil {
			return err
		}
	}
	return payload.Journal.Write(ctx, tx)
}

func (h *Handler) read(ctx context.Context, profileID uint64) (*view, error) {
	v := new(view)
	if err := h.reader.CallByID(ctx, v, "getMarket", profileID); err != nil {
		return nil, fmt.Errorf("failed to read market of profile %d: %w", profileID, err)
	}
	return v, nil
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
