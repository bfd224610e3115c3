package animations

import (
	"fmt"

	"github.com/automoto/robospike/config"
)

// FrameSource is anything that can answer whether a named frame exists,
// typically a loaded texture atlas.
type FrameSource interface {
	Has(name string) bool
}

// Registry holds clips per texture key. Clips for a texture can only be
// registered after that texture's atlas has been added.
type Registry struct {
	atlases map[string]FrameSource
	clips   map[string]map[config.AnimID]*Clip
}

func NewRegistry() *Registry {
	return &Registry{
		atlases: make(map[string]FrameSource),
		clips:   make(map[string]map[config.AnimID]*Clip),
	}
}

// AddAtlas makes a texture available for clip registration.
func (r *Registry) AddAtlas(textureKey string, atlas FrameSource) {
	r.atlases[textureKey] = atlas
}

// Registered reports whether clips already exist for textureKey.
func (r *Registry) Registered(textureKey string) bool {
	_, ok := r.clips[textureKey]
	return ok
}

// Register builds clips from defs for textureKey. A second call for the same
// texture is a no-op and returns false. Registering against a texture that
// has not been loaded, or naming a frame the atlas lacks, panics.
func (r *Registry) Register(textureKey string, defs []config.ClipDef) bool {
	if r.Registered(textureKey) {
		return false
	}

	atlas, ok := r.atlases[textureKey]
	if !ok {
		panic(fmt.Sprintf("animations: texture %q must be loaded before registering clips", textureKey))
	}

	clips := make(map[config.AnimID]*Clip, len(defs))
	for _, def := range defs {
		frames := GenerateFrameNames(def.Prefix, def.Start, def.End)
		for _, name := range frames {
			if !atlas.Has(name) {
				panic(fmt.Sprintf("animations: texture %q has no frame %q for clip %s", textureKey, name, def.Anim))
			}
		}
		clips[def.Anim] = &Clip{
			Anim:      def.Anim,
			Texture:   textureKey,
			Frames:    frames,
			FrameRate: def.FrameRate,
			Repeat:    def.Repeat,
		}
	}
	r.clips[textureKey] = clips
	return true
}

// Clips returns the clips registered for textureKey, or nil.
func (r *Registry) Clips(textureKey string) map[config.AnimID]*Clip {
	return r.clips[textureKey]
}

// GenerateFrameNames returns prefix+start .. prefix+end inclusive.
func GenerateFrameNames(prefix string, start, end int) []string {
	if end < start {
		return nil
	}
	names := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		names = append(names, fmt.Sprintf("%s%d", prefix, i))
	}
	return names
}
