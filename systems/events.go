package systems

import (
	"github.com/automoto/robospike/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// RespawnEvent is published after a hazard sends the player back to spawn.
type RespawnEvent struct {
	Player *donburi.Entry
	Hazard *donburi.Entry
}

var RespawnEventType = events.NewEventType[RespawnEvent]()

// ProcessEvents delivers everything published this tick.
func ProcessEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}

// CountRespawn bumps the session's respawn counter and saves it.
func CountRespawn(w donburi.World, _ RespawnEvent) {
	entry, ok := components.Stats.First(w)
	if !ok {
		return
	}
	stats := components.Stats.Get(entry)
	stats.Respawns++
	_ = SaveRunStats(&RunStats{Respawns: stats.Respawns})
}
