package archetypes

import (
	"github.com/automoto/robospike/components"
	cfg "github.com/automoto/robospike/config"
	"github.com/automoto/robospike/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Animation,
		components.Physics,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Hazard,
		components.Object,
		components.Sprite,
	)
	HazardGroup = newArchetype(
		components.HazardGroup,
	)
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Level = newArchetype(
		components.Level,
	)
	Session = newArchetype(
		components.Input,
		components.Stats,
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
