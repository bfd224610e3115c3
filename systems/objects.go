package systems

import (
	"github.com/automoto/robospike/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-buckets every moved object into the space's cells.
func UpdateObjects(ecs *ecs.ECS) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Object != nil && obj.Space != nil {
			obj.Update()
		}
	})
}
