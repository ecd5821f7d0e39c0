package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/namelens/metaprompt/internal/profile"
	"github.com/namelens/metaprompt/internal/render"
)

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("messages")
	require.NoError(t, err)
	require.Equal(t, FormatMessages, format)

	format, err = ParseFormat(" PROMPT ")
	require.NoError(t, err)
	require.Equal(t, FormatPrompt, format)

	format, err = ParseFormat("")
	require.NoError(t, err)
	require.Equal(t, FormatMessages, format)

	_, err = ParseFormat("markdown")
	require.Error(t, err)
}

func TestEncodeMessagesKeepsNonASCII(t *testing.T) {
	data, err := EncodeMessages([]render.Message{
		{Role: render.RoleSystem, Content: "You are <Ünïcode> & “quoted” — 日本語."},
		{Role: render.RoleUser, Content: "Task:\nGo"},
	})
	require.NoError(t, err)

	want := "[\n" +
		"  {\n" +
		"    \"role\": \"system\",\n" +
		"    \"content\": \"You are <Ünïcode> & “quoted” — 日本語.\"\n" +
		"  },\n" +
		"  {\n" +
		"    \"role\": \"user\",\n" +
		"    \"content\": \"Task:\\nGo\"\n" +
		"  }\n" +
		"]"
	require.Equal(t, want, string(data))
}

func TestEncodeMessagesEmpty(t *testing.T) {
	data, err := EncodeMessages(nil)
	require.NoError(t, err)
	require.Equal(t, "[]", string(data))
}

func TestRenderMessagesRoundTrip(t *testing.T) {
	spec := profile.Spec{FewShots: []profile.FewShot{{User: "q", Assistant: "a"}}}
	system := render.SystemPrompt(spec)
	user := render.UserMessage("Explain — ünïcode", spec, nil, "")

	text, err := Render(FormatMessages, system, user, spec)
	require.NoError(t, err)

	var decoded []render.Message
	require.NoError(t, json.Unmarshal([]byte(text), &decoded))
	require.Len(t, decoded, 4)
	require.Equal(t, user, decoded[len(decoded)-1].Content)
	require.Equal(t, system, decoded[0].Content)
}

func TestRenderPrompt(t *testing.T) {
	text, err := Render(FormatPrompt, "You are X.\n", "Task:\nY\n", profile.Spec{})
	require.NoError(t, err)
	require.Equal(t, "[System]\nYou are X.\n\n[User]\nTask:\nY\n", text)

	_, err = Render(Format("xml"), "", "", profile.Spec{})
	require.Error(t, err)
}

func TestWrite(t *testing.T) {
	var stdout bytes.Buffer
	require.NoError(t, Write("", &stdout, "hello"))
	require.Equal(t, "hello", stdout.String())

	stdout.Reset()
	require.NoError(t, Write("-", &stdout, "dash"))
	require.Equal(t, "dash", stdout.String())

	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.txt")
	stdout.Reset()
	require.NoError(t, Write(path, &stdout, "to file"))
	require.Empty(t, stdout.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "to file", string(data))
}

func TestProfileTable(t *testing.T) {
	reg, err := profile.DefaultRegistry()
	require.NoError(t, err)

	rendered, err := ProfileTable(reg.List())
	require.NoError(t, err)
	require.Contains(t, rendered, "AI Analytical Assistant")
	require.Contains(t, rendered, "AI Coding Assistant")
	require.Contains(t, rendered, "AI Creative Writing Assistant")
	require.Less(t, strings.Index(rendered, "analyst"), strings.Index(rendered, "creative"))
}

func TestFormatProfile(t *testing.T) {
	reg, err := profile.DefaultRegistry()
	require.NoError(t, err)
	p, err := reg.Get("code")
	require.NoError(t, err)

	asYAML, err := FormatProfile(p, "yaml")
	require.NoError(t, err)
	var fromYAML map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(asYAML), &fromYAML))
	require.Equal(t, "AI Coding Assistant", fromYAML["role_name"])

	asJSON, err := FormatProfile(p, "json")
	require.NoError(t, err)
	var fromJSON map[string]any
	require.NoError(t, json.Unmarshal([]byte(asJSON), &fromJSON))
	require.Equal(t, "AI Coding Assistant", fromJSON["role_name"])

	_, err = FormatProfile(p, "toml")
	require.Error(t, err)
	_, err = FormatProfile(nil, "yaml")
	require.Error(t, err)
}
