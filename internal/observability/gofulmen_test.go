package observability_test

import (
	"testing"

	"github.com/fulmenhq/gofulmen/crucible"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/namelens/metaprompt/internal/observability"
)

func TestInitCLILogger(t *testing.T) {
	require.NoError(t, observability.InitCLILogger("metaprompt-test", false))
	require.NotNil(t, observability.CLILogger)

	observability.CLILogger.Warn("Test CLI warning",
		zap.String("path", "missing.txt"))
}

func TestInitCLILoggerVerbose(t *testing.T) {
	require.NoError(t, observability.InitCLILogger("metaprompt-test", true))
	require.NotNil(t, observability.CLILogger)

	observability.CLILogger.Debug("Debug message",
		zap.String("mode", "verbose"))
}

func TestNewCLILoggerLevels(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error", " WARN ", "bogus"} {
		logger, err := observability.NewCLILogger("level-test", level)
		require.NoError(t, err, level)
		require.NotNil(t, logger)
	}
}

func TestEmbeddedCrucible(t *testing.T) {
	version := crucible.GetVersion()
	require.NotEmpty(t, version.Gofulmen)
	require.NotEmpty(t, version.Crucible)
}
