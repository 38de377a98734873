package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSetValue_ExistingKey(t *testing.T) {
	path := writeConfig(t, `version: 1
# where confirmations go
rsvp:
  endpoint: https://old.example.test/f
  timeout: 15s
`)

	require.NoError(t, SetValue(path, "rsvp.endpoint", "https://new.example.test/f"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# where confirmations go")
	assert.Contains(t, string(data), "endpoint: https://new.example.test/f")
	assert.NotContains(t, string(data), "old.example.test")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://new.example.test/f", cfg.RSVP.Endpoint)
}

func TestSetValue_CreatesSections(t *testing.T) {
	path := writeConfig(t, "version: 1\n")

	require.NoError(t, SetValue(path, "animation.duration", "2s"))
	require.NoError(t, SetValue(path, "log.debug", "true"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "2s", cfg.Animation.Duration.String())
	assert.True(t, cfg.Log.Debug)
}

func TestSetValue_Errors(t *testing.T) {
	path := writeConfig(t, "version: 1\nrsvp:\n  endpoint: https://a.example.test\n")

	tests := []struct {
		name    string
		path    string
		key     string
		wantErr string
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.yaml"), "rsvp.endpoint", "failed to read"},
		{"empty segment", path, "rsvp..endpoint", "invalid key"},
		{"section as value", path, "rsvp", "is a section"},
		{"value as section", path, "version.major", "is not a section"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SetValue(tt.path, tt.key, "x")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
