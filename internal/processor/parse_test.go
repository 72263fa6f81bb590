package processor

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
)

const testEventsABI = `[
  {"type":"event","name":"Transferred","inputs":[
    {"name":"id","type":"uint256","indexed":true},
    {"name":"to","type":"address","indexed":true},
    {"name":"amount","type":"uint256","indexed":false},
    {"name":"version","type":"uint8","indexed":false},
    {"name":"note","type":"string","indexed":false},
    {"name":"positive","type":"bool","indexed":false},
    {"name":"digest","type":"bytes32","indexed":false}]}
]`

func bigInt(v int64) *big.Int { return big.NewInt(v) }

func transferredLog(t *testing.T, parsed abi.ABI) *types.Log {
	t.Helper()

	ev := parsed.Events["Transferred"]
	topics, err := abi.MakeTopics(
		[]any{big.NewInt(7)},
		[]any{common.HexToAddress("0x00000000000000000000000000000000000000cc")},
	)
	require.NoError(t, err)

	data, err := ev.Inputs.NonIndexed().Pack(big.NewInt(1000), uint8(3), "hello", true, [32]byte{0xab})
	require.NoError(t, err)

	return &types.Log{Topics: []common.Hash{ev.ID, topics[0][0], topics[1][0]}, Data: data}
}

func TestParseLog(t *testing.T) {
	parsed := MustEventsABI(testEventsABI)

	p, err := ParseLog(parsed, transferredLog(t, parsed))
	require.NoError(t, err)
	require.Equal(t, "Transferred", p.Name)

	id, ok := p.Uint64("id")
	require.True(t, ok)
	require.Equal(t, uint64(7), id)

	to, ok := p.Address("to")
	require.True(t, ok)
	require.Equal(t, common.HexToAddress("0x00000000000000000000000000000000000000cc"), to)

	amount, ok := p.BigInt("amount")
	require.True(t, ok)
	require.Equal(t, int64(1000), amount.Int64())

	version, ok := p.Uint64("version")
	require.True(t, ok)
	require.Equal(t, uint64(3), version)

	note, ok := p.String("note")
	require.True(t, ok)
	require.Equal(t, "hello", note)

	positive, ok := p.Bool("positive")
	require.True(t, ok)
	require.True(t, positive)

	digest, ok := p.Hash("digest")
	require.True(t, ok)
	require.Equal(t, common.Hash{0xab}, digest)

	_, ok = p.Address("amount")
	require.False(t, ok)
	_, ok = p.Uint64("missing")
	require.False(t, ok)
}

func TestParseLog_Errors(t *testing.T) {
	parsed := MustEventsABI(testEventsABI)

	tests := []struct {
		name string
		log  *types.Log
	}{
		{name: "nil log"},
		{name: "no topics", log: &types.Log{}},
		{name: "unknown topic", log: &types.Log{Topics: []common.Hash{common.HexToHash("0x01")}}},
		{name: "truncated data", log: &types.Log{Topics: []common.Hash{parsed.Events["Transferred"].ID}, Data: []byte{0x01}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLog(parsed, tt.log)
			require.Error(t, err)
		})
	}
}

func TestEventsABI_IncludesAdminEvents(t *testing.T) {
	parsed := MustEventsABI(testEventsABI)

	for _, name := range GlobalIgnoreEvents {
		_, ok := parsed.Events[name]
		require.True(t, ok, name)
	}

	_, err := EventsABI("not json")
	require.Error(t, err)
}
