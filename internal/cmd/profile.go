package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/namelens/metaprompt/internal/errors"
	"github.com/namelens/metaprompt/internal/output"
	"github.com/namelens/metaprompt/internal/profile"
)

func newProfilesCmd() *cobra.Command {
	profilesCmd := &cobra.Command{
		Use:   "profiles",
		Short: "Inspect built-in profiles",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List available profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := profile.DefaultRegistry()
			if err != nil {
				return err
			}
			rendered, err := output.ProfileTable(reg.List())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	var showAs string
	showCmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print a profile as a config file",
		Long: `Print the defaults of a built-in profile in config-file form.

The output can be edited and passed back with --config:
  metaprompt profiles show code --as json > my.json
  metaprompt --config my.json --task "..."`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if name == "" {
				return apperrors.NewInvalidInputError("profile name is required")
			}

			reg, err := profile.DefaultRegistry()
			if err != nil {
				return err
			}
			p, err := reg.Get(name)
			if err != nil {
				return apperrors.NewInvalidInputError(err.Error())
			}

			rendered, err := output.FormatProfile(p, showAs)
			if err != nil {
				return apperrors.NewInvalidInputError(err.Error())
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
	showCmd.Flags().StringVar(&showAs, "as", "yaml", "output encoding: yaml or json")

	profilesCmd.AddCommand(listCmd)
	profilesCmd.AddCommand(showCmd)
	return profilesCmd
}
