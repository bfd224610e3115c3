package factory

import (
	"github.com/automoto/robospike/archetypes"
	"github.com/automoto/robospike/assets"
	"github.com/automoto/robospike/components"
	cfg "github.com/automoto/robospike/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel stores level and turns its platform tiles into solid walls.
func CreateLevel(ecs *ecs.ECS, level *assets.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{CurrentLevel: level})

	for _, tile := range level.SolidTiles {
		CreateWall(ecs, tile.X, tile.Y, tile.Width, tile.Height)
	}
	return entry
}

// CreateSession spawns the entity holding input, settings and run stats.
func CreateSession(ecs *ecs.ECS, respawns int) *donburi.Entry {
	entry := archetypes.Session.Spawn(ecs)
	components.Stats.SetValue(entry, components.StatsData{
		Respawns:     respawns,
		SessionStart: respawns,
	})
	components.Settings.SetValue(entry, components.SettingsData{Debug: cfg.Debug.Hitboxes})
	return entry
}
