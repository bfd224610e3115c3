package systems

import (
	"testing"

	"github.com/automoto/robospike/components"
	"github.com/automoto/robospike/systems/factory"
	"github.com/yohamta/donburi"
)

func TestRespawnEventCountsRespawns(t *testing.T) {
	w := newWorld()
	session := factory.CreateSession(w, 3)
	RespawnEventType.Subscribe(w.World, CountRespawn)

	RespawnEventType.Publish(w.World, RespawnEvent{})
	RespawnEventType.Publish(w.World, RespawnEvent{})

	stats := components.Stats.Get(session)
	if stats.Respawns != 3 {
		t.Fatalf("respawns = %d before processing, events should be queued", stats.Respawns)
	}

	ProcessEvents(w)

	if stats.Respawns != 5 {
		t.Errorf("respawns = %d, want 5", stats.Respawns)
	}
	if stats.SessionStart != 3 {
		t.Errorf("session start = %d, want 3", stats.SessionStart)
	}
}

func TestCountRespawnWithoutSession(t *testing.T) {
	w := donburi.NewWorld()
	// No stats entity: nothing to count, nothing to panic about.
	CountRespawn(w, RespawnEvent{})
}

func TestSaveRunStatsWithoutPersistence(t *testing.T) {
	if err := SaveRunStats(&RunStats{Respawns: 1}); err != nil {
		t.Errorf("SaveRunStats without a manager = %v, want nil", err)
	}
	stats, err := LoadRunStats()
	if stats != nil || err != nil {
		t.Errorf("LoadRunStats without a manager = %v, %v", stats, err)
	}
}
