package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

type PhysicsData struct {
	SpeedX             float64
	SpeedY             float64
	Gravity            Vector
	Bounce             float64 // fraction of landing speed kept as upward speed
	CollideWorldBounds bool
	OnGround           *resolv.Object // nil while airborne
	OnWorldFloor       bool           // resting on the bottom world bound
}

// Grounded reports whether the body is resting on a solid or the world floor.
func (p *PhysicsData) Grounded() bool {
	return p.OnGround != nil || p.OnWorldFloor
}

var Physics = donburi.NewComponentType[PhysicsData]()
