package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fulmenhq/gofulmen/foundry"
	"go.uber.org/zap"

	apperrors "github.com/namelens/metaprompt/internal/errors"
	"github.com/namelens/metaprompt/internal/observability"
)

// Run executes the command tree with the given arguments and streams and
// returns the process exit status. It is called by main.main().
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		return reportError(stderr, err)
	}
	return 0
}

// reportError writes the one-line diagnostic for err and returns the exit
// status it maps to.
func reportError(stderr io.Writer, err error) int {
	code := apperrors.ExitCode(err)
	envelope := apperrors.EnsureEnvelope(err)

	if verbose && observability.CLILogger != nil {
		fields := []zap.Field{
			zap.Int("exit_code", code),
			zap.String("error_code", envelope.Code),
		}
		if info, ok := foundry.GetExitCodeInfo(foundry.ExitCode(code)); ok {
			fields = append(fields,
				zap.String("exit_name", info.Name),
				zap.String("exit_category", info.Category))
		}
		if envelope.Context != nil {
			fields = append(fields, zap.Any("error_context", envelope.Context))
		}
		observability.CLILogger.Debug("Command failed", fields...)
	}

	fmt.Fprintf(stderr, "Error: %s\n", oneLine(envelope.Message))
	return code
}

func oneLine(msg string) string {
	fields := strings.FieldsFunc(msg, func(r rune) bool { return r == '\n' || r == '\r' })
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return strings.Join(fields, "; ")
}
