package app

import (
	"context"
	"testing"

	"github.com/goran-ethernal/ReputationIndexor/internal/logger"
	"github.com/goran-ethernal/ReputationIndexor/internal/processor"
	"github.com/goran-ethernal/ReputationIndexor/internal/testutil"
	itypes "github.com/goran-ethernal/ReputationIndexor/internal/types"
	"github.com/goran-ethernal/ReputationIndexor/pkg/config"
	"github.com/goran-ethernal/ReputationIndexor/pkg/queue"
	"github.com/stretchr/testify/require"
)

func TestFactories_CoverEveryContract(t *testing.T) {
	for _, contract := range itypes.AllContracts {
		require.Contains(t, Factories, contract)
	}
}

func TestNewRegistry(t *testing.T) {
	deps := processor.Deps{Log: logger.NewNopLogger()}

	tests := []struct {
		name      string
		contracts []config.ContractConfig
		expected  []itypes.Contract
		expectErr string
	}{
		{
			name: "every contract",
			contracts: []config.ContractConfig{
				{Name: "market", Address: "0x06"},
				{Name: "attestation", Address: "0x01"},
				{Name: "Review", Address: "0x02"},
				{Name: "vouch", Address: "0x03"},
				{Name: "vote", Address: "0x04"},
				{Name: "discussion", Address: "0x05"},
			},
			expected: itypes.AllContracts,
		},
		{
			name:      "subset",
			contracts: []config.ContractConfig{{Name: "vote", Address: "0x04"}},
			expected:  []itypes.Contract{itypes.ContractVote},
		},
		{
			name:      "unknown contract",
			contracts: []config.ContractConfig{{Name: "profile", Address: "0x07"}},
			expectErr: "profile",
		},
		{
			name: "duplicate contract",
			contracts: []config.ContractConfig{
				{Name: "vote", Address: "0x04"},
				{Name: "vote", Address: "0x08"},
			},
			expectErr: "already registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry, err := NewRegistry(tt.contracts, deps)
			if tt.expectErr != "" {
				require.ErrorContains(t, err, tt.expectErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expected, registry.Contracts())
		})
	}
}

func TestNewBroker(t *testing.T) {
	cfg := config.QueueConfig{Driver: config.QueueDriverSQLite}
	cfg.ApplyDefaults()

	broker, err := NewBroker(cfg, testutil.NewMigratedDB(t), logger.NewNopLogger())
	require.NoError(t, err)
	defer broker.Close()

	ctx := context.Background()
	require.NoError(t, queue.DeclareAll(ctx, broker, cfg))

	for _, name := range queue.Names {
		depth, err := broker.Depth(ctx, name)
		require.NoError(t, err)
		require.Zero(t, depth)
	}

	_, err = NewBroker(config.QueueConfig{Driver: "kafka"}, nil, logger.NewNopLogger())
	require.ErrorContains(t, err, "unknown queue driver")
}

func TestNewMaintenance(t *testing.T) {
	cfg := &config.Config{}
	require.NotNil(t, newMaintenance(cfg, nil).AcquireOperationLock())

	cfg.ApplyDefaults()
	sqlDB := testutil.NewMigratedDB(t)
	unlock := newMaintenance(cfg, sqlDB).AcquireOperationLock()
	unlock()
}
