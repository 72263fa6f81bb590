package types

import (
	"testing"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/require"
)

func TestParseBlockFinality(t *testing.T) {
	tests := []struct {
		input   string
		want    BlockFinality
		tag     rpc.BlockNumber
		wantErr bool
	}{
		{input: "finalized", want: FinalityFinalized, tag: rpc.FinalizedBlockNumber},
		{input: "safe", want: FinalitySafe, tag: rpc.SafeBlockNumber},
		{input: "latest", want: FinalityLatest, tag: rpc.LatestBlockNumber},
		{input: "pending", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBlockFinality(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.tag, got.BlockTag())
		})
	}
}

func TestParseContract(t *testing.T) {
	c, err := ParseContract(" Review ")
	require.NoError(t, err)
	require.Equal(t, ContractReview, c)

	_, err = ParseContract("profile")
	require.Error(t, err)

	require.Len(t, AllContracts, 6)
}

func TestJobTypeIsValid(t *testing.T) {
	require.True(t, JobDBMaintenance.IsValid())
	require.True(t, JobRequeueUnprocessed.IsValid())
	require.True(t, JobBackfillSweep.IsValid())
	require.False(t, JobType("reindex").IsValid())
}
