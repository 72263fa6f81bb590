package testutil

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
)

// TestingT is the subset of testing.TB used by the log builders.
type TestingT interface {
	require.TestingT
	Helper()
}

// Log builds a provider log at the given position.
func Log(block uint64, index uint, txHash common.Hash) *types.Log {
	return &types.Log{
		Address:     common.HexToAddress("0x0000000000000000000000000000000000000a01"),
		Topics:      []common.Hash{common.HexToHash("0x01")},
		Data:        []byte{},
		BlockNumber: block,
		BlockHash:   common.BigToHash(new(big.Int).SetUint64(block)),
		TxHash:      txHash,
		Index:       index,
	}
}

// EventLog ABI encodes event with args and returns it as a log at the given position.
// args must be given in declaration order, indexed ones included.
func EventLog(t TestingT, parsed abi.ABI, event string, block uint64, index uint, args ...any) *types.Log {
	t.Helper()

	ev, ok := parsed.Events[event]
	require.True(t, ok, "unknown event %s", event)
	require.Len(t, args, len(ev.Inputs))

	var (
		topics        = []common.Hash{ev.ID}
		indexedArgs   abi.Arguments
		indexedValues []any
		dataValues    []any
	)
	for i, input := range ev.Inputs {
		if input.Indexed {
			indexedArgs = append(indexedArgs, input)
			indexedValues = append(indexedValues, args[i])
			continue
		}
		dataValues = append(dataValues, args[i])
	}

	for i, arg := range indexedArgs {
		topic, err := abi.MakeTopics([]any{indexedValues[i]})
		require.NoError(t, err, "indexed %s", arg.Name)
		topics = append(topics, topic[0][0])
	}

	data, err := ev.Inputs.NonIndexed().Pack(dataValues...)
	require.NoError(t, err)

	log := Log(block, index, common.BigToHash(new(big.Int).SetUint64(block*1000+uint64(index)))) //nolint:mnd
	log.Topics = topics
	log.Data = data

	return log
}

// Hash returns a deterministic transaction hash for n.
func Hash(n uint64) common.Hash {
	return common.BigToHash(new(big.Int).SetUint64(n))
}
