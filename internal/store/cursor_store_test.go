package store

import (
	"context"
	"testing"

	itypes "github.com/goran-ethernal/ReputationIndexor/internal/types"
	"github.com/stretchr/testify/require"
)

func TestCursorStore(t *testing.T) {
	ctx := context.Background()
	_, cursors := newTestStores(t)

	block, err := cursors.Get(ctx, itypes.ContractDiscussion)
	require.NoError(t, err)
	require.Zero(t, block)

	steps := []struct {
		upsert uint64
		want   uint64
	}{
		{upsert: 100, want: 100},
		{upsert: 250, want: 250},
		{upsert: 200, want: 250},
		{upsert: 250, want: 250},
		{upsert: 251, want: 251},
	}

	for _, step := range steps {
		require.NoError(t, cursors.Upsert(ctx, itypes.ContractDiscussion, step.upsert))

		block, err = cursors.Get(ctx, itypes.ContractDiscussion)
		require.NoError(t, err)
		require.Equal(t, step.want, block, "after upsert of %d", step.upsert)
	}

	other, err := cursors.Get(ctx, itypes.ContractMarket)
	require.NoError(t, err)
	require.Zero(t, other)
}
