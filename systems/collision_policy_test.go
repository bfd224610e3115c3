package systems

import (
	"testing"

	"github.com/automoto/robospike/assets"
	"github.com/automoto/robospike/components"
	cfg "github.com/automoto/robospike/config"
	"github.com/automoto/robospike/systems/factory"
	"github.com/automoto/robospike/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func TestRegisteredRulesCanBeEnumerated(t *testing.T) {
	policy := NewCollisionPolicy()
	group := &components.HazardGroupData{Tag: tags.ResolvHazard, AllowGravity: true}

	policy.RegisterSolid(tags.ResolvPlayer, tags.ResolvSolid)
	policy.RegisterHazard(tags.ResolvPlayer, group, func(_, _ *donburi.Entry) {})

	solids := policy.SolidRules()
	if len(solids) != 1 || solids[0] != (SolidRule{Subject: "Player", Other: "solid"}) {
		t.Errorf("solid rules = %+v", solids)
	}

	triggers := policy.TriggerRules()
	if len(triggers) != 1 {
		t.Fatalf("got %d trigger rules, want 1", len(triggers))
	}
	if triggers[0].Subject != "Player" || triggers[0].Other != "hazard" || triggers[0].Group != group {
		t.Errorf("trigger rule = %+v", triggers[0])
	}
	if group.AllowGravity || !group.Immovable {
		t.Errorf("hazard group = %+v, want immovable without gravity", *group)
	}

	if got := policy.SolidTags("Player"); len(got) != 1 || got[0] != "solid" {
		t.Errorf("SolidTags(Player) = %v", got)
	}
	if got := policy.SolidTags("hazard"); len(got) != 0 {
		t.Errorf("SolidTags(hazard) = %v, want none", got)
	}
}

func TestRegisterHazardWithoutTagPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for an untagged group")
		}
	}()
	NewCollisionPolicy().RegisterHazard("Player", &components.HazardGroupData{}, nil)
}

func newPolicySpace() *resolv.Space {
	return resolv.NewSpace(800, 600, 16, 16)
}

func moveObject(obj *resolv.Object, x, y float64) {
	obj.X, obj.Y = x, y
	obj.Update()
}

func TestDispatchFiresOncePerOverlapStart(t *testing.T) {
	space := newPolicySpace()
	subject := resolv.NewObject(0, 0, 32, 52, "Player")
	hazard := resolv.NewObject(100, 100, 64, 20, "hazard")
	space.Add(subject, hazard)

	policy := NewCollisionPolicy()
	calls := 0
	policy.RegisterHazard("Player", &components.HazardGroupData{Tag: "hazard"}, func(_, _ *donburi.Entry) {
		calls++
	})

	policy.Dispatch(subject)
	if calls != 0 {
		t.Fatalf("calls = %d before any overlap", calls)
	}

	moveObject(subject, 110, 90)
	for i := 0; i < 3; i++ {
		policy.Dispatch(subject)
	}
	if calls != 1 {
		t.Errorf("calls = %d after three ticks of one overlap, want 1", calls)
	}
	if !policy.Touching(subject) {
		t.Error("subject should be recorded as touching")
	}

	moveObject(subject, 300, 300)
	policy.Dispatch(subject)
	if policy.Touching(subject) {
		t.Error("separated pair should be forgotten")
	}

	moveObject(subject, 110, 90)
	policy.Dispatch(subject)
	if calls != 2 {
		t.Errorf("calls = %d after a second overlap, want 2", calls)
	}
}

func TestDispatchIgnoresUnregisteredPairs(t *testing.T) {
	space := newPolicySpace()
	subject := resolv.NewObject(100, 100, 32, 52, "Player")
	wall := resolv.NewObject(100, 100, 64, 64, "solid")
	other := resolv.NewObject(100, 100, 64, 20, "hazard")
	bystander := resolv.NewObject(100, 100, 10, 10, "crate")
	space.Add(subject, wall, other, bystander)

	policy := NewCollisionPolicy()
	policy.RegisterSolid("Player", "solid")
	calls := 0
	policy.RegisterHazard("crate", &components.HazardGroupData{Tag: "hazard"}, func(_, _ *donburi.Entry) {
		calls++
	})

	policy.Dispatch(subject)
	if calls != 0 {
		t.Errorf("calls = %d for a pair with no trigger rule", calls)
	}
}

func TestDispatchIgnoresTouchingEdges(t *testing.T) {
	space := newPolicySpace()
	subject := resolv.NewObject(100, 48, 32, 52, "Player")
	hazard := resolv.NewObject(100, 100, 64, 20, "hazard")
	space.Add(subject, hazard)

	policy := NewCollisionPolicy()
	calls := 0
	policy.RegisterHazard("Player", &components.HazardGroupData{Tag: "hazard"}, func(_, _ *donburi.Entry) {
		calls++
	})

	policy.Dispatch(subject)
	if calls != 0 {
		t.Errorf("calls = %d for objects that only share an edge", calls)
	}
}

// Standing in a spike converges to the spawn state no matter how many ticks
// the dispatcher runs.
func TestHazardContactResetsPlayer(t *testing.T) {
	sched := &recordingScheduler{}
	w, p, ctrl := spawnPlayer(t, sched)

	group := factory.CreateHazardGroup(w, tags.ResolvHazard)
	policy := NewCollisionPolicy()
	policy.RegisterSolid(tags.ResolvPlayer, tags.ResolvSolid)

	var gotPlayer, gotHazard *donburi.Entry
	policy.RegisterHazard(tags.ResolvPlayer, components.HazardGroup.Get(group), func(player, hazard *donburi.Entry) {
		gotPlayer, gotHazard = player, hazard
		ctrl.Reset(player)
	})

	spike := factory.CreateHazard(w, group, assets.HazardSpawn{
		X: 120, Y: 250, Width: 64, Height: 40, AnchorX: -95, AnchorY: 202,
	}, nil)
	if spike.HasComponent(components.Physics) {
		t.Error("hazards in a registered group get no physics body")
	}

	obj := components.Object.Get(p).Object
	moveObject(obj, 30, 420)
	physics := components.Physics.Get(p)
	physics.SpeedX, physics.SpeedY = 2.75, 4
	ctrl.HandleInput(p, cfg.DirectionRight, false)

	for i := 0; i < 5; i++ {
		policy.Dispatch(obj)
		assertAtSpawnAndStill(t, p)
	}

	if gotPlayer != p || gotHazard != spike {
		t.Error("callback should receive the player and the spike entries")
	}
	if len(sched.calls) != 1 {
		t.Errorf("fade scheduled %d times, want once per contact", len(sched.calls))
	}
	if components.Player.Get(p).Alpha != 0 {
		t.Error("alpha should restart at 0")
	}
}
