package systems

import (
	"github.com/automoto/robospike/assets"
	"github.com/automoto/robospike/components"
	cfg "github.com/automoto/robospike/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawLevel draws the pre-rendered tile layers.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(entry).CurrentLevel
	if level == nil || level.Background == nil {
		screen.Fill(cfg.Level.SkyColor)
		return
	}
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	screen.DrawImage(level.Background, drawOp)
}

// DrawHazards draws each spike at its sprite rectangle, not its inset body.
func DrawHazards(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Hazard.Each(ecs.World, func(e *donburi.Entry) {
		hazard := components.Hazard.Get(e)
		img := components.Sprite.Get(e).Image
		if img == nil {
			vector.FillRect(screen, float32(hazard.SpriteX), float32(hazard.SpriteY),
				float32(hazard.Width), float32(hazard.Height), cfg.Red, false)
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		b := img.Bounds()
		drawOp.GeoM.Scale(hazard.Width/float64(b.Dx()), hazard.Height/float64(b.Dy()))
		drawOp.GeoM.Translate(hazard.SpriteX, hazard.SpriteY)
		screen.DrawImage(img, drawOp)
	})
}

// DrawPlayer renders the current animation frame from atlas, anchored
// bottom-center on the collision box and faded by the player's alpha.
func DrawPlayer(atlas *assets.Atlas) func(*ecs.ECS, *ebiten.Image) {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		components.Player.Each(ecs.World, func(e *donburi.Entry) {
			player := components.Player.Get(e)
			o := components.Object.Get(e)
			animData := components.Animation.Get(e)

			var img *ebiten.Image
			if animData.CurrentAnimation != nil && atlas != nil {
				img = atlas.Frame(animData.CurrentAnimation.FrameName())
			}

			if img == nil {
				// Fallback to rectangle if no frame is available
				c := cfg.Blue
				c.A = uint8(255 * player.Alpha)
				vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), c, false)
				return
			}

			drawOp.GeoM.Reset()
			drawOp.ColorScale.Reset()

			b := img.Bounds()
			drawOp.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy()))

			// Flip the sprite if facing left.
			if player.Facing == cfg.DirectionLeft {
				drawOp.GeoM.Scale(-1, 1)
			}
			drawOp.GeoM.Translate(o.X+o.W/2, o.Y+o.H)
			drawOp.ColorScale.ScaleAlpha(float32(player.Alpha))

			screen.DrawImage(img, drawOp)
		})
	}
}
