package assets

import (
	"bytes"
	"embed"
	"fmt"
	_ "image/png"
	"io/fs"
	"path"

	"github.com/automoto/robospike/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

var (
	//go:embed all:levels all:images
	assetFS embed.FS
)

// FS exposes the embedded asset tree.
func FS() fs.FS {
	return assetFS
}

type Level struct {
	Background *ebiten.Image
	SolidTiles []SolidTile // Collision tiles from the platform layer
	Hazards    []HazardSpawn
	// SkippedHazards counts hazard objects dropped for missing x, y or height.
	SkippedHazards int
	Name           string
	Width          int
	Height         int

	tmap *tiled.Map
}

// SolidTile represents a solid collision tile in world coordinates
type SolidTile struct {
	X, Y, Width, Height float64
}

// HazardSpawn is a hazard object as authored in Tiled, plus the offset of the
// layer it sits on. Y is the bottom edge, following Tiled's tile-object convention.
type HazardSpawn struct {
	X, Y, Width, Height float64
	AnchorX, AnchorY    float64
}

// LoadLevel parses a TMX file into collision and hazard data. It takes an
// fs.FS so tests can pass an fstest.MapFS; nothing here touches the GPU.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		SolidTiles: []SolidTile{},
		Hazards:    []HazardSpawn{},
		Name:       tmxPath,
		Width:      levelMap.Width * levelMap.TileWidth,
		Height:     levelMap.Height * levelMap.TileHeight,
		tmap:       levelMap,
	}

	foundPlatforms := false
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != config.Level.PlatformLayer {
			continue
		}
		foundPlatforms = true
		offsetX := float64(layer.OffsetX)
		offsetY := float64(layer.OffsetY)
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				level.SolidTiles = append(level.SolidTiles, SolidTile{
					X:      float64(x)*tileW + offsetX,
					Y:      float64(y)*tileH + offsetY,
					Width:  tileW,
					Height: tileH,
				})
			}
		}
		break
	}
	if !foundPlatforms {
		return nil, fmt.Errorf("load TMX %s: no %q tile layer", tmxPath, config.Level.PlatformLayer)
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != config.Level.HazardLayer {
			continue
		}
		anchorX := float64(og.OffsetX)
		anchorY := float64(og.OffsetY)
		for _, o := range og.Objects {
			// Zero means the attribute was absent in the TMX.
			if o.X == 0 || o.Y == 0 || o.Height == 0 {
				level.SkippedHazards++
				continue
			}
			level.Hazards = append(level.Hazards, HazardSpawn{
				X:       o.X,
				Y:       o.Y,
				Width:   o.Width,
				Height:  o.Height,
				AnchorX: anchorX,
				AnchorY: anchorY,
			})
		}
	}

	return level, nil
}

// MustLoadLevel loads an embedded level and renders its visible tile layers.
func MustLoadLevel(tmxPath string) *Level {
	level, err := LoadLevel(assetFS, tmxPath)
	if err != nil {
		panic(err)
	}
	if err := level.renderBackground(assetFS); err != nil {
		panic(fmt.Sprintf("Failed to render level %s: %v", tmxPath, err))
	}
	return level
}

func (l *Level) renderBackground(fsys fs.FS) error {
	renderer, err := render.NewRendererWithFileSystem(l.tmap, fsys)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	l.Background = ebiten.NewImage(config.C.Width, config.C.Height)
	l.Background.Fill(config.Level.SkyColor)

	for i, layer := range l.tmap.Layers {
		// Use "render" custom property to determine visibility
		if !layer.Properties.GetBool("render") {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			return fmt.Errorf("render layer %s: %w", layer.Name, err)
		}
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(layer.OffsetX), float64(layer.OffsetY))
		l.Background.DrawImage(layerImage, op)
		layerImage.Deallocate()
		renderer.Clear()
	}
	return nil
}

type imageLoader struct {
	cache map[string]*ebiten.Image
}

var images = &imageLoader{cache: make(map[string]*ebiten.Image)}

func (l *imageLoader) MustLoadImage(p string) *ebiten.Image {
	if img, ok := l.cache[p]; ok {
		return img
	}

	imgBytes, err := assetFS.ReadFile(p)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", p, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", p, err))
	}

	l.cache[p] = img
	return img
}

// GetImage returns an embedded image under images/, loading it on first use.
func GetImage(name string) *ebiten.Image {
	return images.MustLoadImage(path.Join("images", name))
}
