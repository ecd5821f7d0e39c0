package output

import (
	"fmt"
	"strings"

	"github.com/namelens/metaprompt/internal/profile"
	"github.com/namelens/metaprompt/internal/render"
)

// Format represents a render mode.
type Format string

const (
	FormatMessages Format = "messages"
	FormatPrompt   Format = "prompt"
)

// Formats lists the supported formats in help order.
var Formats = []Format{FormatMessages, FormatPrompt}

// ParseFormat validates and normalizes a format string.
func ParseFormat(value string) (Format, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case "", string(FormatMessages):
		return FormatMessages, nil
	case string(FormatPrompt):
		return FormatPrompt, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s (use messages or prompt)", value)
	}
}

// Render produces the final text for format from the two rendered blocks.
func Render(format Format, system, user string, spec profile.Spec) (string, error) {
	switch format {
	case FormatMessages:
		data, err := EncodeMessages(render.Messages(system, user, spec))
		if err != nil {
			return "", err
		}
		return string(data), nil
	case FormatPrompt:
		return render.Prompt(system, user), nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}
