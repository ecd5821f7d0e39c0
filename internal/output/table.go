package output

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/namelens/metaprompt/internal/profile"
)

// ProfileTable renders built-in profiles as an ASCII table.
func ProfileTable(profiles []*profile.Profile) (string, error) {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Profile", "Role", "Constraints", "Tools", "Self-checks", "Description"})

	for _, p := range profiles {
		if p == nil {
			continue
		}
		spec, err := profile.Decode(p.Values)
		if err != nil {
			return "", fmt.Errorf("profile %s: %w", p.Name, err)
		}
		role := spec.RoleName
		if role == "" {
			role = profile.DefaultRoleName
		}
		t.AppendRow(table.Row{
			p.Name,
			role,
			len(spec.Constraints),
			len(spec.Tooling.Tools),
			len(spec.SelfChecks),
			p.Description,
		})
	}

	return t.Render(), nil
}
