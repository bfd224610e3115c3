package systems

import (
	"log"

	"github.com/automoto/robospike/components"
	cfg "github.com/automoto/robospike/config"
	"github.com/automoto/robospike/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TuningSource reports whether the tuning file changed since the last poll.
type TuningSource interface {
	Poll() (changed bool, err error)
}

// ReloadTuning re-reads path whenever src reports a change and pushes the new
// physics values into the live player. Spawn and fade values take effect on
// the next reset.
func ReloadTuning(src TuningSource, path string) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		changed, err := src.Poll()
		if err != nil {
			log.Printf("Warning: tuning watcher: %v", err)
		}
		if !changed {
			return
		}

		t, err := cfg.LoadTuning(path)
		if err != nil {
			log.Printf("Warning: Could not reload tuning: %v", err)
			return
		}
		t.Apply()
		ApplyPlayerTuning(ecs)
		log.Printf("Reloaded tuning from %s", path)
	}
}

// ApplyPlayerTuning copies gravity and bounce from config onto the player.
func ApplyPlayerTuning(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		physics.Gravity = components.Vector{X: cfg.Player.GravityX, Y: cfg.Player.GravityY}
		physics.Bounce = cfg.Player.Bounce
	})
}
