package systems

import (
	cfg "github.com/automoto/robospike/config"
	"github.com/automoto/robospike/tween"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTweens advances running fades by one tick.
func UpdateTweens(s *tween.Scheduler) func(*ecs.ECS) {
	return func(_ *ecs.ECS) {
		s.Update(cfg.TickMs())
	}
}
