package cmd

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/namelens/metaprompt/internal/errors"
)

const personSchema = `{
  "type": "object",
  "required": ["name"],
  "properties": {"name": {"type": "string"}}
}`

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "schema.json", personSchema)
	good := writeFile(t, dir, "good.json", `{"name": "Ada"}`)
	bad := writeFile(t, dir, "bad.json", `{"name": 7}`)

	res := runCLI(t, "", "validate", "--schema", schema, "--input", good)
	require.Equal(t, 0, res.code, res.stderr)
	require.Equal(t, "valid\n", res.stdout)

	res = runCLI(t, `{"name": "from stdin"}`, "validate", "--schema", schema)
	require.Equal(t, 0, res.code, res.stderr)

	res = runCLI(t, "", "validate", "--schema", schema, "--input", bad)
	require.Equal(t, apperrors.ExitFailure, res.code)
	require.Empty(t, res.stdout)
	require.True(t, strings.HasPrefix(res.stderr, "Error: "+bad+" does not match schema"), res.stderr)
	require.Equal(t, 1, strings.Count(res.stderr, "\n"))
}

func TestValidateCommandInputErrors(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "schema.json", personSchema)
	notSchema := writeFile(t, dir, "not_schema.json", "{oops")

	cases := []struct {
		name string
		args []string
	}{
		{"no schema flag", []string{"validate"}},
		{"missing schema", []string{"validate", "--schema", filepath.Join(dir, "none.json")}},
		{"invalid schema", []string{"validate", "--schema", notSchema}},
		{"missing input", []string{"validate", "--schema", schema, "--input", filepath.Join(dir, "none.json")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := runCLI(t, "{}", tc.args...)
			require.Equal(t, apperrors.ExitInputError, res.code, res.stderr)
			require.True(t, strings.HasPrefix(res.stderr, "Error: "), res.stderr)
		})
	}
}

func TestProfilesList(t *testing.T) {
	res := runCLI(t, "", "profiles", "list")
	require.Equal(t, 0, res.code, res.stderr)
	require.Contains(t, res.stdout, "AI Analytical Assistant")
	require.Contains(t, res.stdout, "AI Coding Assistant")
	require.Contains(t, res.stdout, "AI Creative Writing Assistant")
}

func TestProfilesShowRoundTripsThroughConfig(t *testing.T) {
	res := runCLI(t, "", "profiles", "show", "analyst", "--as", "json")
	require.Equal(t, 0, res.code, res.stderr)

	var values map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &values))
	require.Equal(t, "AI Analytical Assistant", values["role_name"])

	dir := t.TempDir()
	cfg := writeFile(t, dir, "analyst.json", res.stdout)

	fromConfig := runCLI(t, "", "--task", "Summarize Q3 results", "--format", "prompt", "--config", cfg)
	require.Equal(t, 0, fromConfig.code, fromConfig.stderr)
	fromProfile := runCLI(t, "", "--task", "Summarize Q3 results", "--format", "prompt", "--profile", "analyst")
	require.Equal(t, 0, fromProfile.code, fromProfile.stderr)

	// Keys the analyst profile lacks (self_checks) still come from the code base profile.
	require.True(t, strings.HasPrefix(fromConfig.stdout, "[System]\nYou are AI Analytical Assistant.\n"))
	require.Contains(t, fromConfig.stdout, "Before finalizing, self-check:")
	require.NotContains(t, fromProfile.stdout, "Before finalizing, self-check:")
}

func TestProfilesShowErrors(t *testing.T) {
	res := runCLI(t, "", "profiles", "show", "poet")
	require.Equal(t, apperrors.ExitInputError, res.code)

	res = runCLI(t, "", "profiles", "show", "code", "--as", "toml")
	require.Equal(t, apperrors.ExitInputError, res.code)
}

func TestVersionCommand(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	res := runCLI(t, "", "version")
	require.Equal(t, 0, res.code, res.stderr)
	require.Equal(t, "metaprompt 1.2.3\n", res.stdout)
}
