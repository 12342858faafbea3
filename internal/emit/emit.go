// ABOUTME: Fragment output serialization to stdout or files
// ABOUTME: Atomic file writes so cron-driven runs never publish partial pages

package emit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/net/html"

	"github.com/harper/planet/internal/markup"
)

// Write serializes nodes to w with a trailing newline.
func Write(w io.Writer, nodes []*html.Node) error {
	if err := markup.Render(w, nodes); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("failed to write fragment: %w", err)
	}
	return nil
}

// WriteFile serializes nodes to path atomically: the fragment is written
// to a uniquely named temp file in the same directory and renamed into
// place, so an overlapping run or a crash never leaves a half-written
// fragment where the site build can pick it up.
func WriteFile(path string, nodes []*html.Node) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	file, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if err := Write(file, nodes); err != nil {
		file.Close()
		os.Remove(tmp)
		return err
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to move fragment into place: %w", err)
	}
	return nil
}
