package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/namelens/metaprompt/internal/profile"
)

// FormatProfile renders a profile's values as yaml or json. The output is a
// valid --config file for the root command.
func FormatProfile(p *profile.Profile, as string) (string, error) {
	if p == nil {
		return "", fmt.Errorf("profile is required")
	}
	values := p.Values
	if values == nil {
		values = profile.Values{}
	}

	switch strings.ToLower(strings.TrimSpace(as)) {
	case "", "yaml", "yml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(map[string]any(values)); err != nil {
			return "", err
		}
		if err := enc.Close(); err != nil {
			return "", err
		}
		return buf.String(), nil
	case "json":
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(values); err != nil {
			return "", err
		}
		return buf.String(), nil
	default:
		return "", fmt.Errorf("unsupported profile format: %s (use yaml or json)", as)
	}
}
