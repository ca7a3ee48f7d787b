package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pipesmith/pipesmith/pkg/generate"
)

// writeFiles writes every generated file under dir, creating parent
// directories as needed.
func writeFiles(dir string, files generate.Files) error {
	for _, path := range files.Paths() {
		target := filepath.Join(dir, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", path, err)
		}
		if err := os.WriteFile(target, []byte(files[path]), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// previewFiles prints every generated file to stdout with a header,
// without touching the filesystem.
func previewFiles(files generate.Files) {
	for _, path := range files.Paths() {
		fmt.Println(StyleTitle.Render("── " + path + " " + strings.Repeat("─", headerPad(path))))
		fmt.Println(files[path])
	}
}

// headerPad sizes the trailing rule so preview headers line up.
func headerPad(path string) int {
	const width = 60
	if n := width - len(path) - 4; n > 0 {
		return n
	}
	return 1
}
