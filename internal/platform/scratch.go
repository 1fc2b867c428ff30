package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ytget/ytbuddy/internal/model"
)

// ScratchPrefix names scratch directories under the system temp root.
const ScratchPrefix = "ytbuddy-"

// Scratch is a staging directory for a single download action. It is created
// fresh per action and disposed of explicitly; nothing relies on the host
// reaping temp files.
type Scratch struct {
	dir string
}

// NewScratch creates a fresh staging directory under the system temp root.
func NewScratch() (*Scratch, error) {
	dir, err := os.MkdirTemp("", ScratchPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("creating scratch directory: %w", err)
	}
	return &Scratch{dir: dir}, nil
}

// ScratchAt wraps an existing directory as a scratch area. Used by tests and
// by session restore paths.
func ScratchAt(dir string) *Scratch {
	return &Scratch{dir: dir}
}

// Dir returns the staging directory path.
func (s *Scratch) Dir() string {
	return s.dir
}

// Files enumerates every regular file currently present, sorted by name.
// Sidecar files the extractor may emit are included on purpose.
func (s *Scratch) Files() ([]model.FileEntry, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading scratch directory: %w", err)
	}

	files := make([]model.FileEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, model.FileEntry{
			Name: entry.Name(),
			Path: filepath.Join(s.dir, entry.Name()),
			Size: info.Size(),
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// ReadFile loads the named file fully into memory for hand-off. The name is
// resolved inside the scratch directory only.
func (s *Scratch) ReadFile(name string) ([]byte, error) {
	path := filepath.Join(s.dir, filepath.Base(name))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scratch file %s: %w", name, err)
	}
	return data, nil
}

// Remove deletes the staging directory and everything in it.
func (s *Scratch) Remove() error {
	if s == nil || s.dir == "" {
		return nil
	}
	return os.RemoveAll(s.dir)
}
