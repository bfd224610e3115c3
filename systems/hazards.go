package systems

import (
	"github.com/automoto/robospike/components"
	"github.com/automoto/robospike/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHazards runs the policy's trigger rules for the player.
// Must run AFTER UpdateObjects so overlap checks see this tick's positions.
func UpdateHazards(policy *CollisionPolicy) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		tags.Player.Each(ecs.World, func(e *donburi.Entry) {
			policy.Dispatch(components.Object.Get(e).Object)
		})
	}
}
