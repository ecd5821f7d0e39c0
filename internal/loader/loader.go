// Package loader reads the file inputs of a prompt build: the config
// override, the optional JSON Schema and the inline context files.
package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "github.com/namelens/metaprompt/internal/errors"
	"github.com/namelens/metaprompt/internal/profile"
)

// ContextFile is one inlined context document.
type ContextFile struct {
	Path    string
	Content string
}

// Warning reports a non-fatal problem with a single input file.
type Warning struct {
	Path string
	Err  error
}

func (w Warning) String() string {
	return fmt.Sprintf("failed to read context file %s: %v", w.Path, w.Err)
}

// LoadConfig reads a config override file. YAML is used for .yaml/.yml
// paths and JSON for everything else. An empty path returns nil values.
func LoadConfig(path string) (profile.Values, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		return nil, apperrors.WrapConfigParse(path, err)
	}

	var values profile.Values
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &values)
	default:
		err = decodeJSONObject(data, &values)
	}
	if err != nil {
		return nil, apperrors.WrapConfigParse(path, err)
	}
	return values, nil
}

func decodeJSONObject(data []byte, out *profile.Values) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}
	if trimmed[0] != '{' && !bytes.Equal(trimmed, []byte("null")) {
		return fmt.Errorf("top-level value must be a JSON object")
	}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if err := dec.Decode(out); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("unexpected data after top-level object")
	}
	return nil
}

// LoadSchema reads a JSON Schema file as raw text. An empty path returns "".
func LoadSchema(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- schema path is user-provided
	if err != nil {
		return "", apperrors.WrapSchemaRead(path, err)
	}
	return string(data), nil
}

// LoadContextFiles reads each path in order. Unreadable files are skipped and
// reported as warnings; the remaining files are still returned.
func LoadContextFiles(paths []string) ([]ContextFile, []Warning) {
	var (
		files    []ContextFile
		warnings []Warning
	)
	for _, path := range paths {
		data, err := os.ReadFile(path) // #nosec G304 -- context path is user-provided
		if err != nil {
			warnings = append(warnings, Warning{Path: path, Err: err})
			continue
		}
		files = append(files, ContextFile{Path: path, Content: string(data)})
	}
	return files, warnings
}
