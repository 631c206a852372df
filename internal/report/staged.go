package report

import (
	"fmt"
	"os"
	"path/filepath"
)

// Staged holds rendered reports waiting to be moved into the output
// directory.
type Staged struct {
	dir       string
	outputDir string
	files     []string
}

// Files returns the staged file paths.
func (s *Staged) Files() []string {
	return s.files
}

// Commit moves every staged file into the output directory, replacing older
// reports of the same name, and returns the final paths. Each move is a
// rename within one directory tree, so readers never see a partial file.
func (s *Staged) Commit() ([]string, error) {
	committed := make([]string, 0, len(s.files))
	for _, f := range s.files {
		dest := filepath.Join(s.outputDir, filepath.Base(f))
		if err := os.Rename(f, dest); err != nil {
			return committed, fmt.Errorf("commit %s: %w", dest, err)
		}
		committed = append(committed, dest)
	}
	return committed, nil
}

// Discard removes the staging directory and anything left in it. It is safe
// to call after Commit.
func (s *Staged) Discard() error {
	return os.RemoveAll(s.dir)
}
