package cli

import (
	"os"
	"testing"

	"github.com/rileyhilliard/invite/internal/config"
	"github.com/rileyhilliard/invite/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigSet(t *testing.T) {
	path := writeConfig(t, "# keep me\nrsvp:\n  endpoint: https://formspree.io/f/old\n")

	res := runCLI(t, "--config", path, "config", "set", "rsvp.endpoint", "https://formspree.io/f/new")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Set rsvp.endpoint")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# keep me")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://formspree.io/f/new", cfg.RSVP.Endpoint)
}

func TestConfigSetCreatesSection(t *testing.T) {
	path := writeConfig(t, "")

	res := runCLI(t, "--config", path, "config", "set", "animation.duration", "3s")

	require.NoError(t, res.err)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "3s", cfg.Animation.Duration.String())
}

func TestConfigSetRejectedValueRestoresFile(t *testing.T) {
	path := writeConfig(t, "rsvp:\n  endpoint: https://formspree.io/f/old\n")
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	res := runCLI(t, "--config", path, "config", "set", "rsvp.endpoint", "not a url")

	require.Error(t, res.err)
	assert.True(t, errors.IsCode(res.err, errors.ErrConfig))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestConfigSetSectionIsNotAValue(t *testing.T) {
	path := writeConfig(t, "")

	res := runCLI(t, "--config", path, "config", "set", "log", "x")

	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "is a section")
}

func TestConfigSetWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	res := runCLI(t, "config", "set", "rsvp.endpoint", "https://example.com")

	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "invite init")
}

func TestConfigShow(t *testing.T) {
	path := writeConfig(t, "event:\n  honoree: Ana Souza\n")

	res := runCLI(t, "--config", path, "config", "show")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "honoree: Ana Souza")
	assert.Contains(t, res.stdout, "endpoint: "+config.DefaultEndpoint)
}
