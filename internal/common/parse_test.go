package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestParseUint64orHex(t *testing.T) {
	tests := []struct {
		name    string
		input   *string
		want    uint64
		wantErr bool
	}{
		{name: "nil input", input: nil, want: 0},
		{name: "decimal string", input: strPtr("12345"), want: 12345},
		{name: "hex string with 0x prefix", input: strPtr("0x1a2b"), want: 0x1a2b},
		{name: "hex uppercase", input: strPtr("0xDEADBEEF"), want: 0xDEADBEEF},
		{name: "invalid decimal string", input: strPtr("12abc"), wantErr: true},
		{name: "invalid hex string", input: strPtr("0xGHIJK"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUint64orHex(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestToLowerWithTrim(t *testing.T) {
	require.Equal(t, "debug", ToLowerWithTrim("  DeBug "))
	require.Equal(t, "", ToLowerWithTrim("   "))
}
