package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	apperrors "github.com/namelens/metaprompt/internal/errors"
	"github.com/namelens/metaprompt/internal/loader"
	"github.com/namelens/metaprompt/internal/observability"
	"github.com/namelens/metaprompt/internal/validate"
)

func newValidateCmd() *cobra.Command {
	var (
		schemaPath string
		inputPath  string
	)

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a model answer against a JSON Schema",
		Long: `Check that a model answer is a single JSON object matching the schema
that was passed to --schema when the prompt was generated.

Examples:
  metaprompt validate --schema answer.schema.json --input answer.json
  llm-call prompt.json | metaprompt validate --schema answer.schema.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(schemaPath) == "" {
				return apperrors.NewInvalidInputError("--schema is required")
			}

			schemaText, err := loader.LoadSchema(schemaPath)
			if err != nil {
				return err
			}
			validator, err := validate.Compile(schemaText)
			if err != nil {
				return apperrors.NewInvalidInputError(fmt.Sprintf("invalid schema at %s: %v", schemaPath, err))
			}

			answer, source, err := readAnswer(inputPath, cmd.InOrStdin())
			if err != nil {
				return apperrors.NewInvalidInputError(fmt.Sprintf("failed to read answer from %s: %v", source, err))
			}

			if err := validator.Validate(answer); err != nil {
				return apperrors.WrapValidation(source, err)
			}

			if verbose {
				observability.CLILogger.Debug("Answer matches schema",
					zap.String("schema", schemaPath),
					zap.String("input", source))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}

	validateCmd.Flags().StringVar(&schemaPath, "schema", "", "JSON Schema file the answer must match")
	validateCmd.Flags().StringVar(&inputPath, "input", "", "answer file; reads STDIN if omitted or '-'")
	return validateCmd
}

func readAnswer(path string, stdin io.Reader) ([]byte, string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" || trimmed == "-" {
		if stdin == nil {
			return nil, "stdin", fmt.Errorf("no input")
		}
		data, err := io.ReadAll(stdin)
		return data, "stdin", err
	}
	data, err := os.ReadFile(trimmed) // #nosec G304 -- answer path is user-provided
	return data, trimmed, err
}
