package factory

import (
	"testing"

	"github.com/automoto/robospike/assets"
	"github.com/automoto/robospike/components"
	"github.com/automoto/robospike/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestHazardBody(t *testing.T) {
	spawn := assets.HazardSpawn{X: 120, Y: 250, Width: 64, Height: 40, AnchorX: -95, AnchorY: 202}

	sprite, body := HazardBody(spawn, 20)

	if sprite.Y != 412 {
		t.Errorf("sprite top = %v, want 412", sprite.Y)
	}
	if body.Y != 432 {
		t.Errorf("body top = %v, want 432", body.Y)
	}
	if body.H != 20 {
		t.Errorf("body height = %v, want 20", body.H)
	}
	if sprite.X != 25 || body.X != 25 {
		t.Errorf("x = %v/%v, want 25", sprite.X, body.X)
	}
	if sprite.Y+sprite.H != body.Y+body.H {
		t.Error("sprite and body should share a bottom edge")
	}
}

func TestHazardBodyInsetInvariant(t *testing.T) {
	spawns := []assets.HazardSpawn{
		{X: 1, Y: 1, Width: 10, Height: 30},
		{X: 280, Y: 254, Width: 64, Height: 40, AnchorX: -95, AnchorY: 202},
		{X: 600, Y: 100, Height: 64, AnchorY: -10},
	}
	for _, inset := range []float64{0, 5, 20} {
		for _, spawn := range spawns {
			sprite, body := HazardBody(spawn, inset)
			if body.Y-sprite.Y != inset {
				t.Errorf("inset %v: body top is %v below sprite top", inset, body.Y-sprite.Y)
			}
			if sprite.H-body.H != inset {
				t.Errorf("inset %v: body is %v shorter than sprite", inset, sprite.H-body.H)
			}
		}
	}
}

func TestHazardBodyDefaultsWidth(t *testing.T) {
	_, body := HazardBody(assets.HazardSpawn{X: 10, Y: 50, Height: 40}, 20)
	if body.W != 64 {
		t.Errorf("width = %v, want the configured frame width 64", body.W)
	}
}

func TestCreateHazard(t *testing.T) {
	w := ecs.NewECS(donburi.NewWorld())
	space := CreateSpace(w, 800, 600, 16, 16)
	group := CreateHazardGroup(w, tags.ResolvHazard)

	h := CreateHazard(w, group, assets.HazardSpawn{X: 120, Y: 250, Width: 64, Height: 40, AnchorX: -95, AnchorY: 202}, nil)

	obj := components.Object.Get(h).Object
	if obj.X != 25 || obj.Y != 432 || obj.W != 64 || obj.H != 20 {
		t.Errorf("body = (%v,%v %vx%v), want (25,432 64x20)", obj.X, obj.Y, obj.W, obj.H)
	}
	if !obj.HasTags(tags.ResolvHazard) {
		t.Error("body should carry the group tag")
	}
	if obj.Data != h {
		t.Error("body should link back to its entry")
	}
	if obj.Space != components.Space.Get(space) {
		t.Error("body should be added to the space")
	}

	data := components.Hazard.Get(h)
	if data.SpriteY != 412 || data.Inset != 20 {
		t.Errorf("hazard data = %+v", *data)
	}
	if components.HazardGroup.Get(group).Members != 1 {
		t.Error("group should count its member")
	}
	if h.HasComponent(components.Physics) {
		t.Error("an immovable group member has no physics")
	}
}

func TestCreateHazardInGravityGroup(t *testing.T) {
	w := ecs.NewECS(donburi.NewWorld())
	group := CreateHazardGroup(w, tags.ResolvHazard)
	components.HazardGroup.Get(group).AllowGravity = true

	h := CreateHazard(w, group, assets.HazardSpawn{X: 10, Y: 50, Width: 64, Height: 40}, nil)
	if !h.HasComponent(components.Physics) {
		t.Fatal("a gravity group member needs a physics body")
	}
	if components.Physics.Get(h).Gravity.Y == 0 {
		t.Error("gravity should be set")
	}
}

func TestCreateLevelBuildsWalls(t *testing.T) {
	w := ecs.NewECS(donburi.NewWorld())
	CreateSpace(w, 800, 600, 16, 16)
	level := &assets.Level{SolidTiles: []assets.SolidTile{
		{X: 0, Y: 456, Width: 64, Height: 64},
		{X: 64, Y: 456, Width: 64, Height: 64},
	}}

	CreateLevel(w, level)

	walls := 0
	components.Object.Each(w.World, func(e *donburi.Entry) {
		if components.Object.Get(e).HasTags(tags.ResolvSolid) {
			walls++
		}
	})
	if walls != 2 {
		t.Errorf("created %d walls, want 2", walls)
	}
	entry, ok := components.Level.First(w.World)
	if !ok || components.Level.Get(entry).CurrentLevel != level {
		t.Error("level entity should hold the loaded level")
	}
}

func TestCreateHazardInImmovableGroup(t *testing.T) {
	w := ecs.NewECS(donburi.NewWorld())
	group := CreateHazardGroup(w, tags.ResolvHazard)
	data := components.HazardGroup.Get(group)
	data.AllowGravity = true
	data.Immovable = true

	h := CreateHazard(w, group, assets.HazardSpawn{X: 10, Y: 50, Width: 64, Height: 40}, nil)
	if h.HasComponent(components.Physics) {
		t.Error("an immovable member must not get a physics body")
	}
}
