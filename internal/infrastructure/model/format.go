package model

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsupportedFormat rejects a file before any load is attempted
	ErrUnsupportedFormat = errors.New("unsupported model format")
	// ErrModelLoad wraps every read or decode failure
	ErrModelLoad = errors.New("model load failed")
)

// Format identifies the container of a model file
type Format int

const (
	FormatGLB Format = iota
	FormatGLTF
)

func (f Format) String() string {
	switch f {
	case FormatGLB:
		return "glb"
	case FormatGLTF:
		return "gltf"
	default:
		return "unknown"
	}
}

// CheckFormat returns the format for name's extension (case-insensitive)
func CheckFormat(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".glb":
		return FormatGLB, nil
	case ".gltf":
		return FormatGLTF, nil
	default:
		return 0, fmt.Errorf("%w: %q (expected .glb or .gltf)", ErrUnsupportedFormat, name)
	}
}
