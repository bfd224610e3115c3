package systems

import (
	"fmt"

	"github.com/automoto/robospike/components"
	cfg "github.com/automoto/robospike/config"
	"github.com/automoto/robospike/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin  = 10
	hudWidth   = 140
	hudHeight  = 26
	hudPadding = 6
)

// DrawHUD shows the respawn counter in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Stats.First(ecs.World)
	if !ok || !fonts.Loaded(fonts.HUD) {
		return
	}
	stats := components.Stats.Get(entry)

	vector.FillRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudWidth), float32(hudHeight),
		cfg.HUDBgColor, false)

	label := fmt.Sprintf("Respawns: %d", stats.Respawns)
	text.Draw(screen, label, fonts.HUD.Get(), hudMargin+hudPadding, hudMargin+hudHeight-hudPadding-2, cfg.White)
}
