package assets

import (
	"encoding/json"
	"fmt"
	"image"
	"path"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Atlas is a TexturePacker sheet: one page image plus named frame rectangles.
type Atlas struct {
	Key    string
	Image  *ebiten.Image // nil until attached; frame lookups still work
	Frames map[string]image.Rectangle

	subImages map[string]*ebiten.Image
}

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame   jsonRect `json:"frame"`
	Rotated bool     `json:"rotated"`
}

// ParseAtlas reads the TexturePacker "hash" JSON format.
func ParseAtlas(key string, jsonData []byte) (*Atlas, error) {
	var doc struct {
		Frames map[string]jsonFrame `json:"frames"`
	}
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("parse atlas %s: %w", key, err)
	}
	if len(doc.Frames) == 0 {
		return nil, fmt.Errorf("parse atlas %s: no frames", key)
	}

	atlas := &Atlas{
		Key:       key,
		Frames:    make(map[string]image.Rectangle, len(doc.Frames)),
		subImages: make(map[string]*ebiten.Image),
	}
	for name, f := range doc.Frames {
		if f.Rotated {
			return nil, fmt.Errorf("parse atlas %s: frame %s is rotated, which is unsupported", key, name)
		}
		atlas.Frames[name] = image.Rect(f.Frame.X, f.Frame.Y, f.Frame.X+f.Frame.W, f.Frame.Y+f.Frame.H)
	}
	return atlas, nil
}

// Has reports whether the atlas defines a frame called name.
func (a *Atlas) Has(name string) bool {
	_, ok := a.Frames[name]
	return ok
}

// FrameNames returns all frame names in sorted order.
func (a *Atlas) FrameNames() []string {
	names := make([]string, 0, len(a.Frames))
	for name := range a.Frames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Frame returns a cached sub-image for the named frame, or nil if the atlas
// has no image attached or no such frame.
func (a *Atlas) Frame(name string) *ebiten.Image {
	if a.Image == nil {
		return nil
	}
	if img, ok := a.subImages[name]; ok {
		return img
	}
	rect, ok := a.Frames[name]
	if !ok {
		return nil
	}
	img := a.Image.SubImage(rect).(*ebiten.Image)
	a.subImages[name] = img
	return img
}

// MustLoadAtlas loads images/<key>.png and images/<key>_atlas.json.
func MustLoadAtlas(key string) *Atlas {
	data, err := assetFS.ReadFile(path.Join("images", key+"_atlas.json"))
	if err != nil {
		panic(fmt.Sprintf("Failed to read atlas %s: %v", key, err))
	}
	atlas, err := ParseAtlas(key, data)
	if err != nil {
		panic(err)
	}
	atlas.Image = GetImage(key + ".png")
	return atlas
}
