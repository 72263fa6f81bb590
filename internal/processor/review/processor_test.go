package review

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goran-ethernal/ReputationIndexor/internal/processor"
	"github.com/goran-ethernal/ReputationIndexor/internal/processor/processortest"
	"github.com/goran-ethernal/ReputationIndexor/internal/score"
	"github.com/goran-ethernal/ReputationIndexor/internal/testutil"
	itypes "github.com/goran-ethernal/ReputationIndexor/internal/types"
	"github.com/goran-ethernal/ReputationIndexor/pkg/rpc"
	"github.com/russross/meddler"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	contractAddress = common.HexToAddress("0x0000000000000000000000000000000000000a02")
	author          = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	subject         = common.HexToAddress("0x00000000000000000000000000000000000000bb")
	attestation     = [32]byte{0x01}
)

const authorProfile = 7

func newProcessor(h *processortest.Harness) processor.EventProcessor {
	handler := NewHandler(h.Client, contractAddress)
	handler.now = func() time.Time { return time.Unix(1_700_000_000, 0) }
	return processor.New(handler, contractAddress, h.Deps)
}

func createdLog(t *testing.T, block uint64, index uint, id uint64) *types.Log {
	t.Helper()
	return testutil.EventLog(t, EventsABI, "ReviewCreated", block, index,
		uint8(ScorePositive), author, attestation, subject, new(big.Int).SetUint64(id), big.NewInt(9))
}

func changeLog(t *testing.T, event string, block uint64, index uint, id uint64) *types.Log {
	t.Helper()
	return testutil.EventLog(t, EventsABI, event, block, index, new(big.Int).SetUint64(id), author, subject)
}

func expectReview(t *testing.T, h *processortest.Harness, id uint64, archived bool, comment string) {
	t.Helper()
	h.ExpectView(t, ViewsABI, "reviews", id,
		archived, uint8(ScorePositive), author, subject, new(big.Int).SetUint64(id),
		big.NewInt(authorProfile), big.NewInt(1_600_000_000), comment, "{}", attestation).Once()
}

func expectDirty(h *processortest.Harness, times int) {
	h.Invalidator.EXPECT().Invalidate(mock.Anything, score.ProfileTarget(authorProfile), mock.Anything).
		Return(nil).Times(times)
	h.Invalidator.EXPECT().Invalidate(mock.Anything, score.AddressTarget(subject), mock.Anything).
		Return(nil).Times(times)
}

func loadReview(t *testing.T, h *processortest.Harness, id uint64) *Row {
	t.Helper()
	row := new(Row)
	require.NoError(t, meddler.QueryRow(h.DB, row, "SELECT * FROM reviews WHERE review_id = ?", id))
	return row
}

func TestWrangle(t *testing.T) {
	tests := []struct {
		name  string
		event string
		want  Event
	}{
		{name: "archived", event: "ReviewArchived", want: Archived{Change{ID: 5, Author: author, Subject: subject}}},
		{name: "restored", event: "ReviewRestored", want: Restored{Change{ID: 5, Author: author, Subject: subject}}},
		{name: "edited", event: "ReviewEdited", want: Edited{Change{ID: 5, Author: author, Subject: subject}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := processor.ParseLog(EventsABI, changeLog(t, tt.event, 1, 0, 5))
			require.NoError(t, err)

			got, ok := Wrangle(parsed)
			require.True(t, ok)
			require.Equal(t, tt.want, got)
		})
	}

	t.Run("created", func(t *testing.T) {
		parsed, err := processor.ParseLog(EventsABI, createdLog(t, 1, 0, 42))
		require.NoError(t, err)

		got, ok := Wrangle(parsed)
		require.True(t, ok)
		require.Equal(t, Created{
			ID: 42, Score: ScorePositive, Author: author, Subject: subject,
			AttestationHash: attestation, SubjectProfileID: 9,
		}, got)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, ok := Wrangle(&processor.ParsedLog{Name: "ReviewDeleted"})
		require.False(t, ok)
	})

	t.Run("missing argument", func(t *testing.T) {
		_, ok := Wrangle(&processor.ParsedLog{Name: "ReviewArchived", Args: map[string]any{}})
		require.False(t, ok)
	})
}

func TestProcessor_CreatedThenArchived(t *testing.T) {
	ctx := context.Background()
	h := processortest.NewHarness(t)
	p := newProcessor(h)

	raws := h.Store(t, itypes.ContractReview, createdLog(t, 10, 0, 42))
	expectReview(t, h, 42, false, "great")
	expectDirty(h, 1)

	result, err := p.ProcessEvents(ctx, raws)
	require.NoError(t, err)
	require.Equal(t, 1, result.Applied)
	require.Equal(t, 2, result.Invalidations)

	row := loadReview(t, h, 42)
	require.False(t, row.Archived)
	require.Equal(t, uint8(2), row.Score)
	require.Equal(t, uint64(authorProfile), row.AuthorProfileID)
	require.Equal(t, uint64(9), row.SubjectProfileID)
	require.Equal(t, &subject, row.SubjectAddress)
	require.Equal(t, "great", row.Comment)
	require.True(t, h.Processed(t, raws[0].ID))

	// the archive only touches the archived flag even though the comment changed on chain
	raws = h.Store(t, itypes.ContractReview, changeLog(t, "ReviewArchived", 11, 0, 42))
	expectReview(t, h, 42, true, "edited later")
	expectDirty(h, 1)

	result, err = p.ProcessEvents(ctx, raws)
	require.NoError(t, err)
	require.Equal(t, 1, result.Applied)

	row = loadReview(t, h, 42)
	require.True(t, row.Archived)
	require.Equal(t, "great", row.Comment)
	require.Equal(t, uint64(9), row.SubjectProfileID)

	require.Equal(t, 2, h.Count(t, "domain_events"))
}

func TestProcessor_CollapsesBatch(t *testing.T) {
	h := processortest.NewHarness(t)
	p := newProcessor(h)

	raws := h.Store(t, itypes.ContractReview,
		createdLog(t, 10, 0, 42),
		changeLog(t, "ReviewArchived", 10, 1, 42),
		changeLog(t, "ReviewEdited", 10, 2, 42),
	)
	expectReview(t, h, 42, true, "final")
	expectDirty(h, 3)

	result, err := p.ProcessEvents(context.Background(), raws)
	require.NoError(t, err)
	require.Equal(t, 3, result.Applied)

	row := loadReview(t, h, 42)
	require.True(t, row.Archived)
	require.Equal(t, "final", row.Comment)
	require.Equal(t, uint64(9), row.SubjectProfileID, "subject profile of the create survives later reads")
	require.Equal(t, 1, h.Count(t, "reviews"))
	require.Equal(t, 3, h.Count(t, "domain_events"))
}

func TestProcessor_IgnoredAndInvalid(t *testing.T) {
	h := processortest.NewHarness(t)
	p := newProcessor(h)

	roleGranted := testutil.EventLog(t, EventsABI, "RoleGranted", 5, 0, [32]byte{0x02}, author, subject)
	unknown := testutil.Log(5, 1, testutil.Hash(77))

	raws := h.Store(t, itypes.ContractReview, roleGranted, unknown)

	result, err := p.ProcessEvents(context.Background(), raws)
	require.NoError(t, err)
	require.Equal(t, &processor.BatchResult{Ignored: 1, Invalid: 1}, result)

	require.Zero(t, h.Count(t, "reviews"))
	require.Zero(t, h.Count(t, "domain_events"))
	require.True(t, h.Processed(t, raws[0].ID))
	require.True(t, h.Processed(t, raws[1].ID))
}

func TestProcessor_NotFoundDropsOnlyThatEvent(t *testing.T) {
	h := processortest.NewHarness(t)
	p := newProcessor(h)

	raws := h.Store(t, itypes.ContractReview,
		createdLog(t, 10, 0, 41),
		createdLog(t, 10, 1, 42),
	)
	h.ExpectView(t, ViewsABI, "reviews", 41,
		false, uint8(0), common.Address{}, common.Address{}, big.NewInt(0),
		big.NewInt(0), big.NewInt(0), "", "", [32]byte{}).Once()
	expectReview(t, h, 42, false, "")
	expectDirty(h, 1)

	result, err := p.ProcessEvents(context.Background(), raws)
	require.NoError(t, err)
	require.Equal(t, 1, result.Applied)
	require.Equal(t, 1, result.NotFound)

	require.Equal(t, 1, h.Count(t, "reviews"))
	require.True(t, h.Processed(t, raws[0].ID))
	require.True(t, h.Processed(t, raws[1].ID))
}

func TestProcessor_RateLimitedLeavesEventsUnprocessed(t *testing.T) {
	h := processortest.NewHarness(t)
	p := newProcessor(h)

	raws := h.Store(t, itypes.ContractReview, createdLog(t, 10, 0, 42))
	h.Client.EXPECT().CallContract(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, rpc.ErrRateLimited).Once()

	_, err := p.ProcessEvents(context.Background(), raws)
	require.ErrorIs(t, err, rpc.ErrRateLimited)
	require.False(t, h.Processed(t, raws[0].ID))
}

func TestProcessor_NoInvalidationWhenCommitFails(t *testing.T) {
	h := processortest.NewHarness(t)
	p := newProcessor(h)

	raws := h.Store(t, itypes.ContractReview, createdLog(t, 10, 0, 42))
	expectReview(t, h, 42, false, "")

	_, err := h.DB.Exec("DROP TABLE reviews")
	require.NoError(t, err)

	_, err = p.ProcessEvents(context.Background(), raws)
	require.Error(t, err)
	require.False(t, errors.Is(err, rpc.ErrRateLimited))
	require.False(t, h.Processed(t, raws[0].ID))
	h.Invalidator.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything, mock.Anything)
}
