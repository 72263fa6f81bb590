// Package processortest wires processors against a temporary database and mocked chain reads.
package processortest

import (
	"bytes"
	"context"
	"database/sql"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goran-ethernal/ReputationIndexor/internal/logger"
	"github.com/goran-ethernal/ReputationIndexor/internal/processor"
	rpcmocks "github.com/goran-ethernal/ReputationIndexor/internal/rpc/mocks"
	scoremocks "github.com/goran-ethernal/ReputationIndexor/internal/score/mocks"
	istore "github.com/goran-ethernal/ReputationIndexor/internal/store"
	"github.com/goran-ethernal/ReputationIndexor/internal/testutil"
	itypes "github.com/goran-ethernal/ReputationIndexor/internal/types"
	"github.com/goran-ethernal/ReputationIndexor/pkg/store"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type Harness struct {
	DB          *sql.DB
	Events      *istore.RawEventStore
	Client      *rpcmocks.ChainClient
	Invalidator *scoremocks.Invalidator
	Deps        processor.Deps
}

func NewHarness(t *testing.T) *Harness {
	t.Helper()

	sqlDB := testutil.NewMigratedDB(t)
	log := logger.NewNopLogger()

	h := &Harness{
		DB:          sqlDB,
		Events:      istore.NewRawEventStore(sqlDB, log),
		Client:      rpcmocks.NewChainClient(t),
		Invalidator: scoremocks.NewInvalidator(t),
	}
	h.Deps = processor.Deps{
		DB:          sqlDB,
		Client:      h.Client,
		Events:      h.Events,
		Invalidator: h.Invalidator,
		Log:         log,
	}

	return h
}

// Store persists logs as raw events of contract and returns them in position order.
func (h *Harness) Store(t *testing.T, contract itypes.Contract, logs ...*types.Log) []*store.RawEvent {
	t.Helper()

	ctx := context.Background()
	for _, log := range logs {
		created, err := h.Events.TryCreate(ctx, contract, log)
		require.NoError(t, err)
		require.True(t, created)
	}

	events, err := h.Events.ListUnprocessedUpTo(ctx, contract, ^uint64(0)>>1, ^uint(0)>>1, len(logs)+100) //nolint:mnd
	require.NoError(t, err)

	return events
}

// ExpectView expects one call of the view method with id as first argument and answers with outputs.
func (h *Harness) ExpectView(t *testing.T, views abi.ABI, method string, id uint64, outputs ...any) *rpcmocks.ChainClient_CallContract_Call {
	t.Helper()

	m, ok := views.Methods[method]
	require.True(t, ok, "unknown view %s", method)

	packed, err := m.Outputs.Pack(outputs...)
	require.NoError(t, err)

	return h.Client.EXPECT().
		CallContract(mock.Anything, mock.MatchedBy(MatchView(m, id)), mock.Anything).
		Return(packed, nil)
}

// MatchView matches a call message of view m for entity id.
func MatchView(m abi.Method, id uint64) func(msg ethereum.CallMsg) bool {
	return func(msg ethereum.CallMsg) bool {
		if len(msg.Data) < 4 || !bytes.Equal(msg.Data[:4], m.ID) {
			return false
		}
		args, err := m.Inputs.Unpack(msg.Data[4:])
		if err != nil || len(args) == 0 {
			return false
		}
		got, ok := args[0].(*big.Int)
		return ok && got.Cmp(new(big.Int).SetUint64(id)) == 0
	}
}

// Count returns the number of rows of table.
func (h *Harness) Count(t *testing.T, table string) int {
	t.Helper()

	var n int
	require.NoError(t, h.DB.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

// Processed reports whether the raw event is flagged processed.
func (h *Harness) Processed(t *testing.T, id int64) bool {
	t.Helper()

	raw, err := h.Events.Get(context.Background(), id)
	require.NoError(t, err)
	return raw.Processed
}
