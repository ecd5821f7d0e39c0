package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("profile", "code", "")
	fs.String("format", "messages", "")
	fs.Bool("verbose", false, "")
	return fs
}

func TestLoadDefaults(t *testing.T) {
	fs := newFlags(t)
	v, err := New(fs)
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, &Config{Profile: "code", Format: "messages"}, cfg)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	t.Setenv("METAPROMPT_PROFILE", " analyst ")
	t.Setenv("METAPROMPT_VERBOSE", "true")

	fs := newFlags(t)
	v, err := New(fs)
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, "analyst", cfg.Profile)
	require.Equal(t, "messages", cfg.Format)
	require.True(t, cfg.Verbose)
}

func TestLoadFlagBeatsEnv(t *testing.T) {
	t.Setenv("METAPROMPT_FORMAT", "messages")

	fs := newFlags(t)
	require.NoError(t, fs.Parse([]string{"--format", "prompt"}))
	v, err := New(fs)
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, "prompt", cfg.Format)
}

func TestNewSkipsMissingFlags(t *testing.T) {
	fs := pflag.NewFlagSet("empty", pflag.ContinueOnError)
	v, err := New(fs)
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, &Config{}, cfg)
}
