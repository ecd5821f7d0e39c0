package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Write sends text to path, or to stdout when path is empty or "-".
// Parent directories of path are created as needed.
func Write(path string, stdout io.Writer, text string) error {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" || trimmed == "-" {
		_, err := io.WriteString(stdout, text)
		return err
	}

	if dir := filepath.Dir(trimmed); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	file, err := os.Create(trimmed) // #nosec G304 -- output path is user-provided
	if err != nil {
		return err
	}
	if _, err := io.WriteString(file, text); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
