package io

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// File is a named program source in a file system.
type File struct {
	FS   fs.FS  // File system to read from.
	Name string // Slash separated path of the file within FS.
}

var _ Source = (*File)(nil)

// OpenFile returns a File source for a host path.
func OpenFile(path string) (file *File) {
	dir, name := filepath.Split(path)
	if len(dir) == 0 {
		dir = "."
	}

	file = &File{
		FS:   os.DirFS(dir),
		Name: name,
	}

	return
}

// Load reads the file and splits it into lines.
func (fc *File) Load() (lines []string, err error) {
	if fc.FS == nil {
		err = errors.Join(ErrSourceUnavailable, ErrSourceMissing)
		return
	}

	data, err := fs.ReadFile(fc.FS, fc.Name)
	if err != nil {
		err = errors.Join(ErrSourceUnavailable, err)
		return
	}

	text := string(data)
	if len(text) == 0 {
		return
	}

	text = strings.TrimSuffix(text, "\n")
	for _, line := range strings.Split(text, "\n") {
		lines = append(lines, strings.TrimSuffix(line, "\r"))
	}

	return
}
