package observability

import (
	"fmt"
	"strings"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/fulmenhq/gofulmen/logging"
)

// CLILogger is shared by every command. It writes to stderr only; stdout
// carries nothing but the rendered prompt.
var CLILogger *logging.Logger

var severities = map[string]string{
	"trace":   "TRACE",
	"debug":   "DEBUG",
	"info":    "INFO",
	"warn":    "WARN",
	"warning": "WARN",
	"error":   "ERROR",
}

// InitCLILogger replaces CLILogger. Warnings and errors only, unless verbose.
func InitCLILogger(serviceName string, verbose bool) error {
	logger, err := NewCLILogger(serviceName, "warn")
	if err != nil {
		return initError(err)
	}
	if verbose {
		logger.SetLevel(logging.DEBUG)
	}
	CLILogger = logger
	return nil
}

// NewCLILogger builds a SIMPLE-profile console logger on stderr. Unknown
// levels fall back to INFO.
func NewCLILogger(serviceName, level string) (*logging.Logger, error) {
	severity, ok := severities[strings.ToLower(strings.TrimSpace(level))]
	if !ok {
		severity = "INFO"
	}

	return logging.New(&logging.LoggerConfig{
		Profile:      logging.ProfileSimple,
		DefaultLevel: severity,
		Service:      serviceName,
		Environment:  "cli",
		Sinks: []logging.SinkConfig{
			{
				Type:   "console",
				Format: "console",
				Console: &logging.ConsoleSinkConfig{
					Stream:   "stderr",
					Colorize: false,
				},
			},
		},
	})
}

// initError annotates a logger setup failure with its foundry exit category.
func initError(err error) error {
	info, ok := foundry.GetExitCodeInfo(foundry.ExitConfigInvalid)
	if !ok {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return fmt.Errorf("failed to initialize logger (%s): %w", info.Name, err)
}
