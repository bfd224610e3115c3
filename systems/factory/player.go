package factory

import (
	"github.com/automoto/robospike/archetypes"
	"github.com/automoto/robospike/components"
	cfg "github.com/automoto/robospike/config"
	"github.com/automoto/robospike/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerInitializer sets up a freshly spawned player entity.
type PlayerInitializer interface {
	Initialize(e *donburi.Entry, startX, startY float64)
}

func CreatePlayer(ecs *ecs.ECS, init PlayerInitializer, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := float64(cfg.Player.CollisionWidth), float64(cfg.Player.CollisionHeight)
	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	init.Initialize(player, x, y)
	return player
}
