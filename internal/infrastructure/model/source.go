package model

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Source is where a model's bytes come from
type Source interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// FileSource reads a model from the local filesystem
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return filepath.Base(s.Path) }

func (s FileSource) Open() (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelLoad, err)
	}
	return f, nil
}

// FSSource reads a model from an fs.FS entry, e.g. files dropped on the window
type FSSource struct {
	FS   fs.FS
	Path string
}

func (s FSSource) Name() string { return s.Path }

func (s FSSource) Open() (io.ReadCloser, error) {
	f, err := s.FS.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelLoad, err)
	}
	return f, nil
}

// DecodeSource opens src and decodes it
func DecodeSource(src Source) (*Model, error) {
	if _, err := CheckFormat(src.Name()); err != nil {
		return nil, err
	}

	rc, err := src.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	return Decode(src.Name(), rc)
}
