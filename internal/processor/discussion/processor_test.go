package discussion

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goran-ethernal/ReputationIndexor/internal/processor/processortest"
	"github.com/goran-ethernal/ReputationIndexor/internal/testutil"
	itypes "github.com/goran-ethernal/ReputationIndexor/internal/types"
	"github.com/russross/meddler"
	"github.com/stretchr/testify/require"
)

var (
	contractAddress = common.HexToAddress("0x0000000000000000000000000000000000000a05")
	reviewContract  = common.HexToAddress("0x0000000000000000000000000000000000000a02")
)

func expectReply(t *testing.T, h *processortest.Harness, edits int64, content string) {
	t.Helper()
	h.ExpectView(t, ViewsABI, "replies", 8,
		true, reviewContract, big.NewInt(6), big.NewInt(8), big.NewInt(42),
		big.NewInt(1_600_000_000), big.NewInt(edits), content, "").Once()
}

// The invalidator mock has no expectations, so any invalidation fails the test.
func TestProcessor_RepliesNeverInvalidate(t *testing.T) {
	ctx := context.Background()
	h := processortest.NewHarness(t)
	p := New(contractAddress, h.Deps)

	raws := h.Store(t, itypes.ContractDiscussion,
		testutil.EventLog(t, EventsABI, "ReplyAdded", 10, 0, big.NewInt(6), reviewContract, big.NewInt(42), big.NewInt(8)))
	expectReply(t, h, 0, "first")

	result, err := p.ProcessEvents(ctx, raws)
	require.NoError(t, err)
	require.Equal(t, 1, result.Applied)
	require.Zero(t, result.Invalidations)

	raws = h.Store(t, itypes.ContractDiscussion,
		testutil.EventLog(t, EventsABI, "ReplyEdited", 11, 0, big.NewInt(6), big.NewInt(8)))
	expectReply(t, h, 1, "second")

	_, err = p.ProcessEvents(ctx, raws)
	require.NoError(t, err)

	row := new(Row)
	require.NoError(t, meddler.QueryRow(h.DB, row, "SELECT * FROM replies WHERE reply_id = 8"))
	require.Equal(t, "second", row.Content)
	require.Equal(t, uint64(1), row.Edits)
	require.Equal(t, uint64(42), row.ParentID)
	require.Equal(t, reviewContract, row.TargetContract)
}
