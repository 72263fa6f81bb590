package vote

import (
	"context"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goran-ethernal/ReputationIndexor/internal/processor/processortest"
	"github.com/goran-ethernal/ReputationIndexor/internal/score"
	"github.com/goran-ethernal/ReputationIndexor/internal/testutil"
	itypes "github.com/goran-ethernal/ReputationIndexor/internal/types"
	"github.com/russross/meddler"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	contractAddress = common.HexToAddress("0x0000000000000000000000000000000000000a04")
	reviewContract  = common.HexToAddress("0x00000000000000000000000000000000000000AB")
)

func TestProcessor_VoteThenChange(t *testing.T) {
	ctx := context.Background()
	h := processortest.NewHarness(t)
	p := New(contractAddress, h.Deps)

	raws := h.Store(t, itypes.ContractVote,
		testutil.EventLog(t, EventsABI, "Voted", 10, 0, true, big.NewInt(4), reviewContract, big.NewInt(42), big.NewInt(1)),
	)
	h.ExpectView(t, ViewsABI, "votes", 1,
		true, false, reviewContract, big.NewInt(4), big.NewInt(42), big.NewInt(1_600_000_000), big.NewInt(1)).Once()
	h.Invalidator.EXPECT().Invalidate(mock.Anything, score.ProfileTarget(4), mock.Anything).Return(nil).Once()

	_, err := p.ProcessEvents(ctx, raws)
	require.NoError(t, err)

	row := new(Row)
	require.NoError(t, meddler.QueryRow(h.DB, row, "SELECT * FROM votes WHERE vote_id = 1"))
	require.True(t, row.IsUpvote)
	require.Equal(t, reviewContract, row.TargetContract)
	require.Equal(t, uint64(42), row.TargetID)

	var stored string
	require.NoError(t, h.DB.QueryRow("SELECT target_contract FROM votes WHERE vote_id = 1").Scan(&stored))
	require.Equal(t, strings.ToLower(reviewContract.Hex()), stored)

	raws = h.Store(t, itypes.ContractVote,
		testutil.EventLog(t, EventsABI, "VoteChanged", 11, 0, big.NewInt(1), big.NewInt(4), false),
	)
	h.ExpectView(t, ViewsABI, "votes", 1,
		false, false, reviewContract, big.NewInt(4), big.NewInt(42), big.NewInt(1_600_000_000), big.NewInt(1)).Once()
	h.Invalidator.EXPECT().Invalidate(mock.Anything, score.ProfileTarget(4), mock.Anything).Return(nil).Once()

	_, err = p.ProcessEvents(ctx, raws)
	require.NoError(t, err)

	require.NoError(t, meddler.QueryRow(h.DB, row, "SELECT * FROM votes WHERE vote_id = 1"))
	require.False(t, row.IsUpvote)
	require.Equal(t, 2, h.Count(t, "domain_events"))
}

func TestProcessor_SameTransactionInvalidatesEveryEvent(t *testing.T) {
	h := processortest.NewHarness(t)
	p := New(contractAddress, h.Deps)

	voted := testutil.EventLog(t, EventsABI, "Voted", 10, 0, true, big.NewInt(4), reviewContract, big.NewInt(42), big.NewInt(1))
	changed := testutil.EventLog(t, EventsABI, "VoteChanged", 10, 1, big.NewInt(1), big.NewInt(4), false)
	voted.TxHash = testutil.Hash(77)
	changed.TxHash = testutil.Hash(77)

	raws := h.Store(t, itypes.ContractVote, voted, changed)
	h.ExpectView(t, ViewsABI, "votes", 1,
		false, false, reviewContract, big.NewInt(4), big.NewInt(42), big.NewInt(1_600_000_000), big.NewInt(1)).Once()
	// recomputation is idempotent, the repeated target is not collapsed
	h.Invalidator.EXPECT().Invalidate(mock.Anything, score.ProfileTarget(4), mock.Anything).Return(nil).Times(2)

	result, err := p.ProcessEvents(context.Background(), raws)
	require.NoError(t, err)
	require.Equal(t, 2, result.Applied)
	require.Equal(t, 2, result.Invalidations)
}
