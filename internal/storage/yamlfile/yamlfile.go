// Package yamlfile stores the tutor list as a single human-readable YAML
// document:
//
//	tutors:
//	  - name: Alice Pauline
//	    phone: "94351253"
//	    ...
//
// Saves go to a temporary file in the same directory first and are then
// renamed over the old one, so a crash mid-write never leaves a truncated
// document behind.
package yamlfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tuthub/tuthub/internal/tutor"
	"github.com/tuthub/tuthub/internal/types"
)

type document struct {
	Tutors []types.Tutor `yaml:"tutors"`
}

// File is a storage.Storage backed by one YAML file.
type File struct {
	path string
}

// New returns a File for path. Nothing is read or created until the first
// load or save.
func New(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("yamlfile.New: empty path")
	}
	return &File{path: path}, nil
}

// Path returns the file location.
func (f *File) Path() string {
	return f.path
}

// LoadTutors reads the document. A missing file is an empty list.
func (f *File) LoadTutors() ([]tutor.Tutor, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []tutor.Tutor{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("LoadTutors: read %s: %w", f.path, err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("LoadTutors: parse %s: %w", f.path, err)
	}

	tutors, err := types.ToTutors(doc.Tutors)
	if err != nil {
		return nil, fmt.Errorf("LoadTutors: %w", err)
	}
	return tutors, nil
}

// SaveTutors rewrites the document, creating the directory if needed.
func (f *File) SaveTutors(tutors []tutor.Tutor) error {
	doc := document{Tutors: make([]types.Tutor, 0, len(tutors))}
	for _, t := range tutors {
		doc.Tutors = append(doc.Tutors, types.FromTutor(t))
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("SaveTutors: encode: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("SaveTutors: create dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tuthub-*.yaml")
	if err != nil {
		return fmt.Errorf("SaveTutors: create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("SaveTutors: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("SaveTutors: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("SaveTutors: rename: %w", err)
	}
	return nil
}

// Backup copies the current file to <name>.<random>.bak in the same
// directory.
func (f *File) Backup() (string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("Backup: read %s: %w", f.path, err)
	}

	dst, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.bak")
	if err != nil {
		return "", fmt.Errorf("Backup: create: %w", err)
	}
	if _, err := dst.Write(data); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("Backup: write: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("Backup: close: %w", err)
	}
	return dst.Name(), nil
}

// Close is a no-op; the file is not held open between calls.
func (f *File) Close() error {
	return nil
}
