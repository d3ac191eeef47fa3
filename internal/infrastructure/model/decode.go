package model

import (
	"fmt"
	"io"

	"github.com/g3n/engine/loader/gltf"

	"github.com/younwookim/arena/internal/domain/animation"
)

// Model is a decoded document plus its animation clips in source order
type Model struct {
	Name   string
	Format Format
	Doc    *gltf.GLTF
	Clips  []animation.Clip
}

// Decode parses a .glb or .gltf stream. name selects the container and is
// used to resolve relative URIs for .gltf documents.
func Decode(name string, r io.Reader) (*Model, error) {
	format, err := CheckFormat(name)
	if err != nil {
		return nil, err
	}

	var doc *gltf.GLTF
	switch format {
	case FormatGLB:
		doc, err = gltf.ParseBinReader(r, name)
	default:
		doc, err = gltf.ParseJSONReader(r, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrModelLoad, name, err)
	}

	return &Model{
		Name:   name,
		Format: format,
		Doc:    doc,
		Clips:  Clips(doc),
	}, nil
}

// Clips lists the document's animations as clips.
// Unnamed animations are called "animation_<index>".
func Clips(doc *gltf.GLTF) []animation.Clip {
	clips := make([]animation.Clip, 0, len(doc.Animations))
	for i := range doc.Animations {
		anim := &doc.Animations[i]
		name := anim.Name
		if name == "" {
			name = fmt.Sprintf("animation_%d", i)
		}
		clips = append(clips, animation.Clip{
			Name:     name,
			Handle:   anim,
			Duration: duration(doc, anim),
		})
	}
	return clips
}

// duration is the latest keyframe time across the animation's samplers,
// read from the input accessors' max bound. Animations without usable
// bounds fall back to animation.DefaultDuration.
func duration(doc *gltf.GLTF, anim *gltf.Animation) float64 {
	longest := 0.0
	for _, s := range anim.Samplers {
		if s.Input < 0 || s.Input >= len(doc.Accessors) {
			continue
		}
		acc := doc.Accessors[s.Input]
		if len(acc.Max) == 0 {
			continue
		}
		if t := float64(acc.Max[0]); t > longest {
			longest = t
		}
	}
	if longest <= 0 {
		return animation.DefaultDuration
	}
	return longest
}
