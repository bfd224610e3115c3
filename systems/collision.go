package systems

import (
	"math"

	"github.com/automoto/robospike/components"
	"github.com/solarlune/resolv"
)

// contactSlop absorbs float drift when a body rests flush against a solid.
const contactSlop = 1e-6

// resolveHorizontal moves object by its horizontal speed, stopping flush
// against the nearest solid in the way.
func resolveHorizontal(physics *components.PhysicsData, object *resolv.Object, solid []string) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}
	if len(solid) == 0 {
		object.X += dx
		return
	}

	if blocker, gap := nearestBlocker(object, dx, 0, solid); blocker != nil {
		dx = gap
		physics.SpeedX = 0
	}
	object.X += dx
}

// resolveVertical moves object by its vertical speed and records what it
// landed on. Landing keeps a fraction of the speed as a bounce.
func resolveVertical(physics *components.PhysicsData, object *resolv.Object, solid []string) {
	physics.OnGround = nil
	physics.OnWorldFloor = false
	dy := physics.SpeedY

	if len(solid) == 0 {
		object.Y += dy
		return
	}

	blocker, gap := nearestBlocker(object, 0, dy, solid)
	if blocker == nil {
		object.Y += dy
		return
	}
	object.Y += gap

	if dy < 0 {
		physics.SpeedY = 0
		return
	}
	physics.OnGround = blocker
	physics.SpeedY = landingSpeed(physics.SpeedY, physics.Bounce)
}

// nearestBlocker finds the closest solid object reaches when moving by dx or
// dy and returns it with the signed distance to travel until flush. The space
// check only reports objects sharing a cell, so each candidate must also
// overlap object on the other axis and lie within one step ahead. A zero dx
// means a vertical move; downward moves look one pixel further so a body
// resting on a floor still finds it.
func nearestBlocker(object *resolv.Object, dx, dy float64, solid []string) (*resolv.Object, float64) {
	horizontal := dx != 0
	step, probeX, probeY := dy, 0.0, dy
	if horizontal {
		step, probeX, probeY = dx, dx, 0
	} else if dy >= 0 {
		probeY++
	}

	check := object.Check(probeX, probeY, solid...)
	if check == nil {
		return nil, 0
	}

	var best *resolv.Object
	bestGap := math.Abs(step)
	for _, s := range check.ObjectsByTags(solid...) {
		if s == object {
			continue
		}
		var gap float64
		if horizontal {
			if !spans(object.Y, object.H, s.Y, s.H) {
				continue
			}
			gap = gapAhead(object.X, object.W, s.X, s.W, step)
		} else {
			if !spans(object.X, object.W, s.X, s.W) {
				continue
			}
			gap = gapAhead(object.Y, object.H, s.Y, s.H, step)
		}
		if gap < -contactSlop || gap > bestGap {
			continue
		}
		best, bestGap = s, gap
	}
	if best == nil {
		return nil, 0
	}

	bestGap = math.Max(bestGap, 0)
	if step < 0 {
		return best, -bestGap
	}
	return best, bestGap
}

// spans reports whether two ranges on one axis overlap by more than the slop.
// Ranges that only share an edge do not count.
func spans(pos, size, otherPos, otherSize float64) bool {
	return pos < otherPos+otherSize-contactSlop && pos+size > otherPos+contactSlop
}

// gapAhead is the distance from the leading edge of a range moving in the
// direction of step to the facing edge of other. It is negative when other
// is behind or already overlapping.
func gapAhead(pos, size, otherPos, otherSize, step float64) float64 {
	if step >= 0 {
		return otherPos - (pos + size)
	}
	return pos - (otherPos + otherSize)
}

// clampToWorld keeps object inside a width x height world. The floor counts
// as ground and bounces like any other.
func clampToWorld(physics *components.PhysicsData, object *resolv.Object, width, height float64) {
	if object.X < 0 {
		object.X = 0
		physics.SpeedX = 0
	} else if object.X+object.W > width {
		object.X = width - object.W
		physics.SpeedX = 0
	}

	if object.Y < 0 {
		object.Y = 0
		if physics.SpeedY < 0 {
			physics.SpeedY = 0
		}
	} else if object.Y+object.H >= height {
		object.Y = height - object.H
		if physics.SpeedY >= 0 {
			physics.SpeedY = landingSpeed(physics.SpeedY, physics.Bounce)
		}
		physics.OnWorldFloor = true
	}
}

// clampFloat constrains a value to the range [min, max]
func clampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
