package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/namelens/metaprompt/internal/config"
	apperrors "github.com/namelens/metaprompt/internal/errors"
	"github.com/namelens/metaprompt/internal/loader"
	"github.com/namelens/metaprompt/internal/observability"
	"github.com/namelens/metaprompt/internal/output"
	"github.com/namelens/metaprompt/internal/profile"
	"github.com/namelens/metaprompt/internal/render"
)

const binaryName = "metaprompt"

var (
	verbose bool

	// settings is resolved from flags and environment before any command runs
	settings *config.Config

	// Version info set by main package
	versionInfo struct {
		Version   string
		Commit    string
		BuildDate string
	}
)

// SetVersionInfo is called by main package to set version information
func SetVersionInfo(version, commit, buildDate string) {
	versionInfo.Version = version
	versionInfo.Commit = commit
	versionInfo.BuildDate = buildDate
}

// generateOptions holds the root command flags.
type generateOptions struct {
	task         string
	configPath   string
	contextFiles []string
	schemaPath   string
	outputPath   string
}

// newRootCmd builds the command tree. Each call returns an independent tree.
func newRootCmd() *cobra.Command {
	opts := &generateOptions{}

	rootCmd := &cobra.Command{
		Use:   binaryName,
		Short: "Generate robust meta-prompts for LLM chat APIs",
		Long: `Generate opinionated meta-prompts for large language models.

Starts from a built-in profile (code, creative, analyst), applies an optional
JSON or YAML config on top (top-level keys replace profile keys), inlines
context files and an optional JSON Schema, and renders either a chat message
array or a single prompt string.

Examples:
  # Chat messages for the analyst profile
  metaprompt --task "Draft a product spec" --profile analyst

  # Single prompt string from a custom config
  metaprompt --task "Write a Go CLI" --config code_assistant.json --format prompt

  # Strict JSON answers
  metaprompt --task "Summarize" --schema structured_answer.schema.json

  # Task from stdin
  echo "Refactor the parser" | metaprompt --output prompt.json`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return apperrors.NewInvalidInputError(fmt.Sprintf("unexpected argument %q (use --task)", args[0]))
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.New(cmd.Flags())
			if err != nil {
				return err
			}
			settings, err = config.Load(v)
			if err != nil {
				return apperrors.NewInvalidInputError(err.Error())
			}
			verbose = settings.Verbose
			return observability.InitCLILogger(binaryName, verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (sets log level to debug)")

	flags := rootCmd.Flags()
	flags.StringVar(&opts.task, "task", "", "primary user task/instruction; read from STDIN if omitted")
	flags.StringVar(&opts.configPath, "config", "", "JSON (or YAML) config overriding profile defaults")
	flags.String("profile", profile.DefaultName, "built-in profile to start from (analyst, code, creative)")
	flags.StringArrayVar(&opts.contextFiles, "context-file", nil, "file to inline as context (repeatable)")
	flags.StringVar(&opts.schemaPath, "schema", "", "JSON Schema file; forces strict JSON output")
	flags.String("format", string(output.FormatMessages), "output format: messages (chat array) or prompt (single string)")
	flags.StringVar(&opts.outputPath, "output", "", "output file path; prints to STDOUT if omitted")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return apperrors.NewInvalidInputError(err.Error())
	})

	rootCmd.AddCommand(newProfilesCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func (o *generateOptions) run(cmd *cobra.Command) error {
	reg, err := profile.DefaultRegistry()
	if err != nil {
		return err
	}

	profileName := settings.Profile
	if _, err := reg.Get(profileName); err != nil {
		return apperrors.NewInvalidInputError(fmt.Sprintf("invalid --profile: %v", err))
	}
	format, err := output.ParseFormat(settings.Format)
	if err != nil {
		return apperrors.NewInvalidInputError(fmt.Sprintf("invalid --format: %v", err))
	}

	task, err := resolveTask(o.task, cmd.InOrStdin())
	if err != nil {
		return err
	}

	text, err := buildOutput(buildRequest{
		Registry:     reg,
		Profile:      profileName,
		Task:         task,
		ConfigPath:   o.configPath,
		ContextFiles: o.contextFiles,
		SchemaPath:   o.schemaPath,
		Format:       format,
	}, func(w loader.Warning) { warnContextFile(cmd, w) })
	if err != nil {
		return err
	}

	if verbose {
		dest := o.outputPath
		if dest == "" {
			dest = "stdout"
		}
		observability.CLILogger.Debug("Writing prompt",
			zap.String("format", string(format)),
			zap.String("destination", dest),
			zap.Int("bytes", len(text)))
	}

	if err := output.Write(o.outputPath, cmd.OutOrStdout(), text); err != nil {
		return apperrors.WrapOutput(o.outputPath, err)
	}
	return nil
}

// resolveTask prefers the flag value and falls back to the whole of stdin.
func resolveTask(flagValue string, stdin io.Reader) (string, error) {
	task := strings.TrimSpace(flagValue)
	if task != "" {
		return task, nil
	}
	if stdin != nil {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", apperrors.NewInvalidInputError(fmt.Sprintf("failed to read task from STDIN: %v", err))
		}
		task = strings.TrimSpace(string(data))
	}
	if task == "" {
		return "", apperrors.NewMissingTaskError()
	}
	return task, nil
}

type buildRequest struct {
	Registry     profile.Registry
	Profile      string
	Task         string
	ConfigPath   string
	ContextFiles []string
	SchemaPath   string
	Format       output.Format
}

// buildOutput runs the whole pipeline and returns the rendered text. Nothing
// is written anywhere; warn receives each skipped context file.
func buildOutput(req buildRequest, warn func(loader.Warning)) (string, error) {
	override, err := loader.LoadConfig(req.ConfigPath)
	if err != nil {
		return "", err
	}
	values, err := profile.Resolve(req.Registry, req.Profile, override)
	if err != nil {
		return "", apperrors.NewInvalidInputError(fmt.Sprintf("invalid --profile: %v", err))
	}
	spec, err := profile.Decode(values)
	if err != nil {
		return "", apperrors.WrapConfigParse(req.ConfigPath, err)
	}

	schema, err := loader.LoadSchema(req.SchemaPath)
	if err != nil {
		return "", err
	}

	contexts, warnings := loader.LoadContextFiles(req.ContextFiles)
	if warn != nil {
		for _, w := range warnings {
			warn(w)
		}
	}

	if verbose && observability.CLILogger != nil {
		observability.CLILogger.Debug("Resolved prompt inputs",
			zap.String("profile", req.Profile),
			zap.String("config", req.ConfigPath),
			zap.Int("override_keys", len(override)),
			zap.Int("context_files", len(contexts)),
			zap.Bool("schema", schema != ""))
	}

	system := render.SystemPrompt(spec)
	user := render.UserMessage(req.Task, spec, contexts, schema)
	return output.Render(req.Format, system, user, spec)
}

// warnContextFile reports a skipped context file on the command's stderr.
// The gofulmen console sink is bound to the process stderr, so the structured
// record is debug-only.
func warnContextFile(cmd *cobra.Command, w loader.Warning) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
	if verbose && observability.CLILogger != nil {
		observability.CLILogger.Debug("Skipped context file",
			zap.String("path", w.Path),
			zap.Error(w.Err))
	}
}
