package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhinandh-s/vimwiki-syntax/pkg/config"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    config.OutputFormat
		wantErr bool
	}{
		{"text", config.FormatText, false},
		{"JSON", config.FormatJSON, false},
		{" json ", config.FormatJSON, false},
		{"sarif", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := config.ParseOutputFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColorMode(t *testing.T) {
	for _, input := range []string{"auto", "Always", "never"} {
		_, err := config.ParseColorMode(input)
		assert.NoError(t, err, input)
	}

	_, err := config.ParseColorMode("sometimes")
	assert.Error(t, err)
}
