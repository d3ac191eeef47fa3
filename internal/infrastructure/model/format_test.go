package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"hero.glb", FormatGLB, false},
		{"hero.GLB", FormatGLB, false},
		{"dir/hero.gltf", FormatGLTF, false},
		{"Hero.GlTf", FormatGLTF, false},
		{"hero.fbx", 0, true},
		{"hero.glb.zip", 0, true},
		{"glb", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckFormat(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_String(t *testing.T) {
	assert.Equal(t, "glb", FormatGLB.String())
	assert.Equal(t, "gltf", FormatGLTF.String())
	assert.Equal(t, "unknown", Format(7).String())
}
