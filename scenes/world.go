package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/robospike/assets"
	"github.com/automoto/robospike/assets/animations"
	"github.com/automoto/robospike/components"
	cfg "github.com/automoto/robospike/config"
	"github.com/automoto/robospike/systems"
	"github.com/automoto/robospike/systems/factory"
	"github.com/automoto/robospike/tags"
	"github.com/automoto/robospike/tween"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	watcher      *cfg.TuningWatcher
	once         sync.Once
}

func NewPlatformerScene(sc SceneChanger) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// Close stops the tuning watcher, if one is running.
func (ps *PlatformerScene) Close() error {
	if ps.watcher == nil {
		return nil
	}
	return ps.watcher.Close()
}

func (ps *PlatformerScene) configure() {
	world := donburi.NewWorld()
	ecs := ecs.NewECS(world)
	ps.ecs = ecs

	level := assets.MustLoadLevel(cfg.Level.Path)
	if level.SkippedHazards > 0 {
		log.Printf("Warning: %s: skipped %d hazard objects without x, y or height", level.Name, level.SkippedHazards)
	}

	respawns := 0
	if saved, err := systems.LoadRunStats(); err == nil && saved != nil {
		respawns = saved.Respawns
	}
	factory.CreateSession(ecs, respawns)

	// The space must exist before anything with a body is created.
	factory.CreateSpace(ecs, cfg.C.Width, cfg.C.Height, cfg.Level.CellSize, cfg.Level.CellSize)
	factory.CreateLevel(ecs, level)

	// Host services the controller is built on.
	atlas := assets.MustLoadAtlas(cfg.PlayerTexture)
	registry := animations.NewRegistry()
	registry.AddAtlas(cfg.PlayerTexture, atlas)
	scheduler := tween.NewScheduler()

	ctrl := systems.NewPlayerController(registry, scheduler)
	policy := systems.NewCollisionPolicy()

	factory.CreatePlayer(ecs, ctrl, cfg.Player.StartX, cfg.Player.StartY)

	group := factory.CreateHazardGroup(ecs, tags.ResolvHazard)
	policy.RegisterSolid(tags.ResolvPlayer, tags.ResolvSolid)
	policy.RegisterHazard(tags.ResolvPlayer, components.HazardGroup.Get(group), func(player, hazard *donburi.Entry) {
		ctrl.Reset(player)
		systems.RespawnEventType.Publish(world, systems.RespawnEvent{Player: player, Hazard: hazard})
	})

	spike := assets.GetImage("spike.png")
	for _, spawn := range level.Hazards {
		factory.CreateHazard(ecs, group, spawn, spike)
	}

	systems.RespawnEventType.Subscribe(world, systems.CountRespawn)

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateDebugToggle)
	ecs.AddSystem(systems.UpdatePlayer(ctrl))
	ecs.AddSystem(systems.UpdatePhysics(policy))
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateHazards(policy))
	ecs.AddSystem(systems.UpdateTweens(scheduler))
	ecs.AddSystem(systems.UpdateAnimations)
	ecs.AddSystem(systems.ProcessEvents)

	if cfg.Debug.TuningPath != "" && cfg.Debug.WatchTuning {
		w, err := cfg.NewTuningWatcher(cfg.Debug.TuningPath)
		if err != nil {
			log.Printf("Warning: Could not watch tuning file: %v", err)
		} else {
			ps.watcher = w
			ecs.AddSystem(systems.ReloadTuning(w, cfg.Debug.TuningPath))
		}
	}

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawHazards)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer(atlas))
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug(policy, scheduler))
}
