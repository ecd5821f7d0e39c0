package output

import (
	"bytes"
	"encoding/json"

	"github.com/namelens/metaprompt/internal/render"
)

// EncodeMessages renders messages as an indented JSON array. HTML characters
// and non-ASCII text are written literally and no trailing newline is added.
func EncodeMessages(messages []render.Message) ([]byte, error) {
	if messages == nil {
		messages = []render.Message{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(messages); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
