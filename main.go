package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/robospike/config"
	"github.com/automoto/robospike/fonts"
	"github.com/automoto/robospike/scenes"
	"github.com/automoto/robospike/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(scenes.Scene)
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Printf("Warning: Could not load HUD font: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPlatformerScene(g)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.Hitboxes, "debug", false, "draw collision boxes")
	flag.StringVar(&config.Debug.TuningPath, "tuning", "", "YAML file with tuning overrides")
	flag.BoolVar(&config.Debug.WatchTuning, "watch", false, "reload the tuning file when it changes")
	flag.Parse()

	if config.Debug.TuningPath != "" {
		t, err := config.LoadTuning(config.Debug.TuningPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		t.Apply()
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	game := NewGame()
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
	if ps, ok := game.scene.(*scenes.PlatformerScene); ok {
		_ = ps.Close()
	}
}
