package systems

import (
	"github.com/automoto/robospike/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateAnimations(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		if anim := components.Animation.Get(e); anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}
