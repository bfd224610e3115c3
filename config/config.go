package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer the game uses.
const Default ecs.LayerID = 0

// PlayerTexture is the atlas key the player's animation clips are registered under.
const PlayerTexture = "robo_player"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Spawn
	StartX float64
	StartY float64

	// Movement (pixels per tick)
	MoveSpeed float64
	JumpSpeed float64

	// Physics
	Bounce             float64
	GravityX           float64
	GravityY           float64
	CollideWorldBounds bool

	// Dimensions
	FrameWidth      int
	FrameHeight     int
	CollisionWidth  int
	CollisionHeight int
}

// FadeConfig controls the respawn fade-in.
type FadeConfig struct {
	From       float64
	To         float64
	DurationMs float32 // per cycle
	Repeat     int     // extra cycles after the first
}

// HazardConfig contains spike configuration values
type HazardConfig struct {
	// CollisionInset shrinks the collision body from the top of the sprite so
	// only the pointed part of the spike triggers a reset.
	CollisionInset float64
	FrameWidth     int
	FrameHeight    int
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	MaxFallSpeed   float64
	MinBounceSpeed float64 // landing speeds below this settle instead of bouncing
}

// LevelConfig names the Tiled layers the level loader reads.
type LevelConfig struct {
	Path          string
	PlatformLayer string
	HazardLayer   string
	CellSize      int
	SkyColor      color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Hitboxes    bool   // Draw collision boxes
	TuningPath  string // Optional YAML file applied over the defaults
	WatchTuning bool   // Re-apply the tuning file when it changes
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Fade FadeConfig
var Hazard HazardConfig
var Physics PhysicsConfig
var Level LevelConfig
var Debug DebugConfig

// Direction is the horizontal intent reported by the input source each tick.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "none"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return "unknown"
}

// Valid reports whether d is one of the three defined directions.
func (d Direction) Valid() bool {
	return d >= DirectionNone && d <= DirectionRight
}

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green      = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue       = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Grey       = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	HUDBgColor = color.RGBA{R: 0, G: 0, B: 0, A: 140}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		TPS:    60,
		Title:  "Robospike",
	}

	Player = PlayerConfig{
		StartX:             50,
		StartY:             300,
		MoveSpeed:          2.75,
		JumpSpeed:          7.5,
		Bounce:             0.2,
		GravityX:           0,
		GravityY:           0.35,
		CollideWorldBounds: true,
		FrameWidth:         40,
		FrameHeight:        56,
		CollisionWidth:     32,
		CollisionHeight:    52,
	}

	Fade = FadeConfig{
		From:       0,
		To:         1,
		DurationMs: 100,
		Repeat:     5,
	}

	Hazard = HazardConfig{
		CollisionInset: 20,
		FrameWidth:     64,
		FrameHeight:    40,
	}

	Physics = PhysicsConfig{
		MaxFallSpeed:   12,
		MinBounceSpeed: 2,
	}

	Level = LevelConfig{
		Path:          "levels/level1.tmx",
		PlatformLayer: "platforms",
		HazardLayer:   "spikes",
		CellSize:      16,
		SkyColor:      color.RGBA{R: 92, G: 148, B: 206, A: 255},
	}
}

// TickMs is the length of one simulation tick in milliseconds.
func TickMs() float32 {
	return 1000 / float32(C.TPS)
}
