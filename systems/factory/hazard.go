package factory

import (
	"github.com/automoto/robospike/archetypes"
	"github.com/automoto/robospike/assets"
	"github.com/automoto/robospike/components"
	cfg "github.com/automoto/robospike/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Rect is an axis-aligned rectangle in world space.
type Rect struct {
	X, Y, W, H float64
}

// HazardBody places a hazard from its map object. Tiled anchors tile objects
// at their bottom edge, so the sprite top is y + anchorY - height. The
// collision body starts inset below the sprite top and is shorter by the same
// amount.
func HazardBody(spawn assets.HazardSpawn, inset float64) (sprite, body Rect) {
	w := spawn.Width
	if w == 0 {
		w = float64(cfg.Hazard.FrameWidth)
	}
	sprite = Rect{
		X: spawn.X + spawn.AnchorX,
		Y: spawn.Y + spawn.AnchorY - spawn.Height,
		W: w,
		H: spawn.Height,
	}
	body = Rect{
		X: sprite.X,
		Y: sprite.Y + inset,
		W: w,
		H: spawn.Height - inset,
	}
	return sprite, body
}

// CreateHazardGroup makes the entity whose settings every hazard tagged tag shares.
func CreateHazardGroup(ecs *ecs.ECS, tag string) *donburi.Entry {
	group := archetypes.HazardGroup.Spawn(ecs)
	components.HazardGroup.SetValue(group, components.HazardGroupData{Tag: tag})
	return group
}

// CreateHazard spawns one member of group. Members only get a physics body
// when the group allows gravity and may move.
func CreateHazard(ecs *ecs.ECS, group *donburi.Entry, spawn assets.HazardSpawn, img *ebiten.Image) *donburi.Entry {
	groupData := components.HazardGroup.Get(group)
	inset := cfg.Hazard.CollisionInset
	sprite, body := HazardBody(spawn, inset)

	hazard := archetypes.Hazard.Spawn(ecs)

	obj := resolv.NewObject(body.X, body.Y, body.W, body.H, groupData.Tag)
	obj.SetShape(resolv.NewRectangle(0, 0, body.W, body.H))
	obj.Data = hazard
	components.Object.SetValue(hazard, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Hazard.SetValue(hazard, components.HazardData{
		SpriteX: sprite.X,
		SpriteY: sprite.Y,
		Width:   sprite.W,
		Height:  sprite.H,
		Inset:   inset,
	})
	components.Sprite.SetValue(hazard, components.SpriteData{Image: img})

	if groupData.AllowGravity && !groupData.Immovable {
		hazard.AddComponent(components.Physics)
		components.Physics.SetValue(hazard, components.PhysicsData{
			Gravity: components.Vector{X: cfg.Player.GravityX, Y: cfg.Player.GravityY},
		})
	}

	groupData.Members++
	return hazard
}
