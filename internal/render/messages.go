package render

import (
	"strings"
	"unicode"

	"github.com/namelens/metaprompt/internal/profile"
)

// Chat roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one role-tagged chat entry.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Messages assembles the chat sequence: the system prompt, the few-shot
// pairs as separate turns, then the full user message. The user message
// embeds the few-shots again on purpose.
func Messages(system, user string, spec profile.Spec) []Message {
	messages := make([]Message, 0, 2+2*len(spec.FewShots))
	messages = append(messages, Message{Role: RoleSystem, Content: system})

	for _, shot := range spec.FewShots {
		if u := strings.TrimSpace(shot.User); u != "" {
			messages = append(messages, Message{Role: RoleUser, Content: u})
		}
		if a := strings.TrimSpace(shot.Assistant); a != "" {
			messages = append(messages, Message{Role: RoleAssistant, Content: a})
		}
	}

	return append(messages, Message{Role: RoleUser, Content: user})
}

// Prompt joins both blocks into a single labeled string.
func Prompt(system, user string) string {
	return "[System]\n" + strings.TrimSpace(system) + "\n\n[User]\n" + strings.TrimSpace(user) + "\n"
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}
