package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the optional YAML override file. Only fields present in the file
// replace the compiled-in defaults.
type Tuning struct {
	Player *PlayerTuning `yaml:"player"`
	Fade   *FadeTuning   `yaml:"fade"`
	Hazard *HazardTuning `yaml:"hazard"`
}

type PlayerTuning struct {
	StartX    *float64 `yaml:"start_x"`
	StartY    *float64 `yaml:"start_y"`
	MoveSpeed *float64 `yaml:"move_speed"`
	JumpSpeed *float64 `yaml:"jump_speed"`
	Bounce    *float64 `yaml:"bounce"`
	GravityX  *float64 `yaml:"gravity_x"`
	GravityY  *float64 `yaml:"gravity_y"`
}

type FadeTuning struct {
	DurationMs *float32 `yaml:"duration_ms"`
	Repeat     *int     `yaml:"repeat"`
}

type HazardTuning struct {
	CollisionInset *float64 `yaml:"collision_inset"`
}

// ParseTuning decodes a tuning document.
func ParseTuning(data []byte) (*Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	if t.Fade != nil && t.Fade.Repeat != nil && *t.Fade.Repeat < 0 {
		return nil, fmt.Errorf("config: fade repeat must be >= 0, got %d", *t.Fade.Repeat)
	}
	return &t, nil
}

// LoadTuning reads and decodes the tuning file at path.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	return ParseTuning(data)
}

// Apply writes the provided overrides into the global configuration.
func (t *Tuning) Apply() {
	if t == nil {
		return
	}
	if p := t.Player; p != nil {
		setFloat(&Player.StartX, p.StartX)
		setFloat(&Player.StartY, p.StartY)
		setFloat(&Player.MoveSpeed, p.MoveSpeed)
		setFloat(&Player.JumpSpeed, p.JumpSpeed)
		setFloat(&Player.Bounce, p.Bounce)
		setFloat(&Player.GravityX, p.GravityX)
		setFloat(&Player.GravityY, p.GravityY)
	}
	if f := t.Fade; f != nil {
		if f.DurationMs != nil {
			Fade.DurationMs = *f.DurationMs
		}
		if f.Repeat != nil {
			Fade.Repeat = *f.Repeat
		}
	}
	if h := t.Hazard; h != nil {
		setFloat(&Hazard.CollisionInset, h.CollisionInset)
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
