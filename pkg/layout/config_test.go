package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 0.7, cfg.IndentHeadRate)
	assert.Equal(t, 1.5, cfg.IndentTailRate)
	assert.Equal(t, 2.0, cfg.EmptyLineRate)
	assert.Equal(t, 5, cfg.BaselinePrefixPages)
	assert.Equal(t, BodyText, cfg.BodyType)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tatekumi.yml")
	require.NoError(t, os.WriteFile(path, []byte("indent_head_rate: 0.5\nbaseline_prefix_pages: 3\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.IndentHeadRate)
	assert.Equal(t, 3, cfg.BaselinePrefixPages)
	assert.Equal(t, 1.5, cfg.IndentTailRate)
	assert.Equal(t, 2.0, cfg.EmptyLineRate)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name, body string
	}{
		{"negative rate", "empty_line_rate: -1\n"},
		{"zero prefix", "baseline_prefix_pages: 0\n"},
		{"empty body type", "body_type: \"\"\n"},
		{"malformed", "indent_head_rate: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yml")
			require.NoError(t, os.WriteFile(path, []byte(tc.body), 0o644))
			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	}
}
