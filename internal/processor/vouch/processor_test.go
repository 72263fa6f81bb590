package vouch

import (
	"context"
	"math/big"
	"testing"
	"time"

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

var contractAddress = common.HexToAddress("0x0000000000000000000000000000000000000a03")

func TestProcessor_VouchLifecycle(t *testing.T) {
	ctx := context.Background()
	h := processortest.NewHarness(t)

	handler := NewHandler(h.Client, contractAddress)
	handler.now = func() time.Time { return time.Unix(1_700_000_000, 0) }
	p := processor.New(handler, contractAddress, h.Deps)

	staked, _ := new(big.Int).SetString("1500000000000000000000", 10)
	ids := []any{big.NewInt(11), big.NewInt(2), big.NewInt(3)}

	raws := h.Store(t, itypes.ContractVouch,
		testutil.EventLog(t, EventsABI, "Vouched", 10, 0, append(ids, staked)...),
		testutil.EventLog(t, EventsABI, "MarkedUnhealthy", 12, 0, ids...),
	)
	h.ExpectView(t, ViewsABI, "vouches", 11,
		false, true, big.NewInt(2), big.NewInt(3), big.NewInt(11), staked,
		big.NewInt(1_600_000_000), big.NewInt(0)).Once()
	h.Invalidator.EXPECT().Invalidate(mock.Anything, score.ProfileTarget(2), mock.Anything).Return(nil).Times(2)
	h.Invalidator.EXPECT().Invalidate(mock.Anything, score.ProfileTarget(3), mock.Anything).Return(nil).Times(2)

	result, err := p.ProcessEvents(ctx, raws)
	require.NoError(t, err)
	require.Equal(t, 2, result.Applied)

	row := new(Row)
	require.NoError(t, meddler.QueryRow(h.DB, row, "SELECT * FROM vouches WHERE vouch_id = 11"))
	require.Equal(t, 0, staked.Cmp(row.Staked), "uint256 stake keeps full precision")
	require.True(t, row.Unhealthy)
	require.False(t, row.Archived)

	raws = h.Store(t, itypes.ContractVouch, testutil.EventLog(t, EventsABI, "Unvouched", 20, 0, ids...))
	h.ExpectView(t, ViewsABI, "vouches", 11,
		true, true, big.NewInt(2), big.NewInt(3), big.NewInt(11), big.NewInt(0),
		big.NewInt(1_600_000_000), big.NewInt(1_700_000_500)).Once()
	h.Invalidator.EXPECT().Invalidate(mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(2)

	_, err = p.ProcessEvents(ctx, raws)
	require.NoError(t, err)

	require.NoError(t, meddler.QueryRow(h.DB, row, "SELECT * FROM vouches WHERE vouch_id = 11"))
	require.True(t, row.Archived)
	require.Zero(t, row.Staked.Sign())
	require.Equal(t, int64(1_700_000_500), row.UnvouchedAt)
	require.Equal(t, int64(1_600_000_000), row.VouchedAt)
}

func TestWrangle_RequiresAllIds(t *testing.T) {
	_, ok := Wrangle(&processor.ParsedLog{Name: "Unvouched", Args: map[string]any{"vouchId": big.NewInt(1)}})
	require.False(t, ok)

	e, ok := Wrangle(&processor.ParsedLog{Name: "Unvouched", Args: map[string]any{
		"vouchId": big.NewInt(1), "authorProfileId": big.NewInt(2), "subjectProfileId": big.NewInt(3),
	}})
	require.True(t, ok)
	require.Equal(t, Unvouched{Ids{ID: 1, AuthorProfileID: 2, SubjectProfileID: 3}}, e)
}
