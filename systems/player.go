package systems

import (
	"github.com/automoto/robospike/components"
	cfg "github.com/automoto/robospike/config"
	"github.com/automoto/robospike/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer feeds this tick's input to the controller.
// Must run AFTER UpdateInput and BEFORE UpdatePhysics.
func UpdatePlayer(ctrl *PlayerController) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		input := getOrCreateInput(ecs)
		dir := InputDirection(input)
		jump := GetAction(input, cfg.ActionJump)

		tags.Player.Each(ecs.World, func(e *donburi.Entry) {
			grounded := components.Physics.Get(e).Grounded()
			if jump.JustPressed && grounded {
				ctrl.Jump(e, grounded)
				grounded = false
			}
			ctrl.HandleInput(e, dir, grounded)
		})
	}
}
