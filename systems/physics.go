package systems

import (
	"github.com/automoto/robospike/components"
	cfg "github.com/automoto/robospike/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies gravity and moves every body, stopping it against
// whatever the policy declares solid for it.
func UpdatePhysics(policy *CollisionPolicy) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		components.Physics.Each(ecs.World, func(e *donburi.Entry) {
			if !e.HasComponent(components.Object) {
				return
			}
			physics := components.Physics.Get(e)
			obj := components.Object.Get(e).Object

			physics.SpeedX += physics.Gravity.X
			physics.SpeedY += physics.Gravity.Y
			physics.SpeedY = clampFloat(physics.SpeedY, -cfg.Physics.MaxFallSpeed, cfg.Physics.MaxFallSpeed)

			solid := policy.SolidTagsFor(obj)
			resolveHorizontal(physics, obj, solid)
			resolveVertical(physics, obj, solid)

			if physics.CollideWorldBounds {
				clampToWorld(physics, obj, float64(cfg.C.Width), float64(cfg.C.Height))
			}
		})
	}
}

// landingSpeed is the vertical speed after touching the floor at speedY.
// Slow landings settle instead of bouncing forever.
func landingSpeed(speedY, bounce float64) float64 {
	if speedY <= cfg.Physics.MinBounceSpeed || bounce <= 0 {
		return 0
	}
	return -speedY * bounce
}
