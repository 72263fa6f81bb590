package common

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{name: "milliseconds", input: "250ms", expected: 250 * time.Millisecond},
		{name: "seconds", input: "30s", expected: 30 * time.Second},
		{name: "minutes", input: "5m", expected: 5 * time.Minute},
		{name: "complex duration", input: "1h30m45s", expected: time.Hour + 30*time.Minute + 45*time.Second},
		{name: "missing unit", input: "100", wantErr: true},
		{name: "garbage", input: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d.Duration)
		})
	}
}

func TestDuration_Decoders(t *testing.T) {
	type cfg struct {
		Interval Duration `json:"interval" yaml:"interval" toml:"interval"`
	}

	var fromJSON cfg
	require.NoError(t, json.Unmarshal([]byte(`{"interval":"90s"}`), &fromJSON))
	require.Equal(t, 90*time.Second, fromJSON.Interval.Duration)

	var fromYAML cfg
	require.NoError(t, yaml.Unmarshal([]byte("interval: 2m\n"), &fromYAML))
	require.Equal(t, 2*time.Minute, fromYAML.Interval.Duration)

	var fromTOML cfg
	_, err := toml.Decode(`interval = "1h"`, &fromTOML)
	require.NoError(t, err)
	require.Equal(t, time.Hour, fromTOML.Interval.Duration)

	data, err := yaml.Marshal(cfg{Interval: NewDuration(10 * time.Second)})
	require.NoError(t, err)
	require.Contains(t, string(data), "10s")
}

func TestDuration_JSONSchema(t *testing.T) {
	schema := Duration{}.JSONSchema()

	require.NotNil(t, schema)
	assert.Equal(t, "string", schema.Type)
	assert.Equal(t, "Duration", schema.Title)
	assert.Contains(t, schema.Examples, "1m")
}
