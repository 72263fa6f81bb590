package market

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goran-ethernal/ReputationIndexor/internal/processor"
	"github.com/goran-ethernal/ReputationIndexor/internal/processor/processortest"
	"github.com/goran-ethernal/ReputationIndexor/internal/score"
	"github.com/goran-ethernal/ReputationIndexor/internal/testutil"
	itypes "github.com/goran-ethernal/ReputationIndexor/internal/types"
	"github.com/russross/meddler"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	contractAddress = common.HexToAddress("0x0000000000000000000000000000000000000a06")
	creator         = common.HexToAddress("0x00000000000000000000000000000000000000c1")
	trader          = common.HexToAddress("0x00000000000000000000000000000000000000c2")
)

func loadMarket(t *testing.T, h *processortest.Harness, profileID uint64) *Row {
	t.Helper()
	row := new(Row)
	require.NoError(t, meddler.QueryRow(h.DB, row, "SELECT * FROM markets WHERE profile_id = ?", profileID))
	return row
}

func TestProcessor_CreateTradeUpdate(t *testing.T) {
	ctx := context.Background()
	h := processortest.NewHarness(t)
	p := New(contractAddress, h.Deps)

	price := big.NewInt(5_000_000_000_000_000)
	raws := h.Store(t, itypes.ContractMarket,
		testutil.EventLog(t, EventsABI, "MarketCreated", 10, 0, big.NewInt(7), creator),
		testutil.EventLog(t, EventsABI, "VotesBought", 11, 0, big.NewInt(7), trader, true, big.NewInt(3), big.NewInt(900)),
		testutil.EventLog(t, EventsABI, "MarketUpdated", 11, 1, big.NewInt(7), big.NewInt(4), big.NewInt(1), price, price),
		testutil.EventLog(t, EventsABI, "VotesSold", 12, 0, big.NewInt(7), trader, true, big.NewInt(1), big.NewInt(250)),
	)
	h.ExpectView(t, ViewsABI, "getMarket", 7, big.NewInt(7), big.NewInt(3), big.NewInt(1)).Once()
	h.Invalidator.EXPECT().Invalidate(mock.Anything, score.ProfileTarget(7), mock.Anything).Return(nil).Times(4)

	result, err := p.ProcessEvents(ctx, raws)
	require.NoError(t, err)
	require.Equal(t, 4, result.Applied)

	row := loadMarket(t, h, 7)
	require.Equal(t, creator, row.CreatorAddress)
	require.Equal(t, int64(3), row.TrustVotes.Int64())
	require.Equal(t, int64(1), row.DistrustVotes.Int64())
	require.NotNil(t, row.TrustPrice, "price of MarketUpdated survives the later sale")
	require.Zero(t, price.Cmp(row.TrustPrice))

	type trade struct {
		RawEventID int64    `meddler:"raw_event_id"`
		IsBuy      bool     `meddler:"is_buy"`
		Funds      *big.Int `meddler:"funds,bigint"`
	}
	var trades []*trade
	require.NoError(t, meddler.QueryAll(h.DB, &trades,
		"SELECT raw_event_id, is_buy, funds FROM market_trades ORDER BY id"))
	require.Len(t, trades, 2)
	require.Equal(t, raws[1].ID, trades[0].RawEventID)
	require.True(t, trades[0].IsBuy)
	require.False(t, trades[1].IsBuy)
	require.Equal(t, int64(250), trades[1].Funds.Int64())
}

func TestProcessor_MarketWithoutPricesYet(t *testing.T) {
	h := processortest.NewHarness(t)
	p := New(contractAddress, h.Deps)

	raws := h.Store(t, itypes.ContractMarket,
		testutil.EventLog(t, EventsABI, "MarketCreated", 10, 0, big.NewInt(9), creator))
	h.ExpectView(t, ViewsABI, "getMarket", 9, big.NewInt(9), big.NewInt(1), big.NewInt(1)).Once()
	h.Invalidator.EXPECT().Invalidate(mock.Anything, score.ProfileTarget(9), mock.Anything).Return(nil).Once()

	_, err := p.ProcessEvents(context.Background(), raws)
	require.NoError(t, err)

	row := loadMarket(t, h, 9)
	require.Nil(t, row.TrustPrice)
	require.Nil(t, row.DistrustPrice)
}

func TestProcessor_ConfigEventsIgnored(t *testing.T) {
	h := processortest.NewHarness(t)
	p := New(contractAddress, h.Deps)

	raws := h.Store(t, itypes.ContractMarket,
		testutil.EventLog(t, EventsABI, "MarketConfigAdded", 10, 0, big.NewInt(1), big.NewInt(2), big.NewInt(3)),
		testutil.EventLog(t, EventsABI, "MarketConfigRemoved", 10, 1, big.NewInt(1)),
		testutil.EventLog(t, EventsABI, "Paused", 10, 2, creator),
	)

	result, err := p.ProcessEvents(context.Background(), raws)
	require.NoError(t, err)
	require.Equal(t, &processor.BatchResult{Ignored: 3}, result)
	require.Zero(t, h.Count(t, "markets"))
	for _, raw := range raws {
		require.True(t, h.Processed(t, raw.ID))
	}
}
