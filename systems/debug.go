package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/robospike/components"
	cfg "github.com/automoto/robospike/config"
	"github.com/automoto/robospike/fonts"
	"github.com/automoto/robospike/tags"
	"github.com/automoto/robospike/tween"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, creating if needed
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.Get(entry).Debug = cfg.Debug.Hitboxes
	}
	return components.Settings.Get(entry)
}

// UpdateDebugToggle flips hitbox drawing on the toggle key.
func UpdateDebugToggle(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings := GetOrCreateSettings(ecs)
		settings.Debug = !settings.Debug
	}
}

// DrawDebug draws hitboxes and a status line with the player's contact and
// fade state.
func DrawDebug(policy *CollisionPolicy, tweens *tween.Scheduler) func(*ecs.ECS, *ebiten.Image) {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		settings := GetOrCreateSettings(ecs)
		if !settings.Debug {
			return
		}

		spaceEntry, ok := components.Space.First(ecs.World)
		if ok {
			space := components.Space.Get(spaceEntry)
			for _, obj := range space.Objects() {
				// Determine color based on tags
				c := color.RGBA{0, 255, 255, 255} // Cyan default
				if obj.HasTags(tags.ResolvSolid) {
					c = cfg.Grey
				} else if obj.HasTags(tags.ResolvPlayer) {
					c = cfg.Blue
				} else if obj.HasTags(tags.ResolvHazard) {
					c = cfg.Red
				}

				x, y := float32(obj.X), float32(obj.Y)
				w, h := float32(obj.W), float32(obj.H)
				vector.FillRect(screen, x, y, w, 1, c, false)     // Top
				vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
				vector.FillRect(screen, x, y, 1, h, c, false)     // Left
				vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
			}
		}

		entry, ok := tags.Player.First(ecs.World)
		if !ok {
			return
		}
		player := components.Player.Get(entry)
		physics := components.Physics.Get(entry)
		obj := components.Object.Get(entry).Object

		// Spawn marker
		vector.FillRect(screen, float32(player.SpawnX)-2, float32(player.SpawnY)-2, 4, 4, cfg.Green, false)

		if !fonts.Loaded(fonts.HUDSmall) {
			return
		}
		fade := "-"
		if job, ok := tweens.Job(&player.Alpha); ok {
			fade = fmt.Sprintf("%d/%d", job.Cycle()+1, job.Repeat+1)
		}
		info := fmt.Sprintf("anim=%s facing=%s grounded=%t alpha=%.2f v=(%.2f,%.2f)",
			player.Animation, player.Facing, physics.Grounded(), player.Alpha, physics.SpeedX, physics.SpeedY)
		status := fmt.Sprintf("solid=%v hazard=%t fade=%s tweens=%d",
			policy.SolidTags(tags.ResolvPlayer), policy.Touching(obj), fade, tweens.Len())
		text.Draw(screen, info, fonts.HUDSmall.Get(), 10, cfg.C.Height-26, cfg.White)
		text.Draw(screen, status, fonts.HUDSmall.Get(), 10, cfg.C.Height-10, cfg.White)
	}
}
