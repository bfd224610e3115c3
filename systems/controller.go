package systems

import (
	"fmt"

	"github.com/automoto/robospike/assets/animations"
	"github.com/automoto/robospike/components"
	cfg "github.com/automoto/robospike/config"
	"github.com/yohamta/donburi"
)

// AnimationRegistrar registers and hands out named clips per texture.
type AnimationRegistrar interface {
	Register(textureKey string, defs []cfg.ClipDef) bool
	Clips(textureKey string) map[cfg.AnimID]*animations.Clip
}

// TweenScheduler interpolates a float field toward a value over time.
type TweenScheduler interface {
	Schedule(target *float64, to float64, durationMs float32, repeat int)
}

// PlayerController owns the player's kinetic and visual state. The entity it
// operates on must carry the Player, Object, Physics and Animation components.
type PlayerController struct {
	anims  AnimationRegistrar
	tweens TweenScheduler
}

func NewPlayerController(anims AnimationRegistrar, tweens TweenScheduler) *PlayerController {
	return &PlayerController{anims: anims, tweens: tweens}
}

// Initialize places the player at the spawn at rest, fully visible, with the
// configured physics and its clips registered.
func (c *PlayerController) Initialize(e *donburi.Entry, startX, startY float64) {
	c.anims.Register(cfg.PlayerTexture, cfg.PlayerClips)

	player := components.Player.Get(e)
	player.SpawnX = startX
	player.SpawnY = startY
	player.Facing = cfg.DirectionNone
	player.Alpha = 1
	player.Alive = true

	physics := components.Physics.Get(e)
	*physics = components.PhysicsData{
		Gravity:            components.Vector{X: cfg.Player.GravityX, Y: cfg.Player.GravityY},
		Bounce:             cfg.Player.Bounce,
		CollideWorldBounds: cfg.Player.CollideWorldBounds,
	}

	moveTo(e, startX, startY)

	anim := components.Animation.Get(e)
	anim.Texture = cfg.PlayerTexture
	anim.Clips = c.anims.Clips(cfg.PlayerTexture)
	anim.TPS = cfg.C.TPS
	setAnimation(e, cfg.AnimIdle, false)
}

// HandleInput applies one tick of horizontal intent. Vertical speed is left
// to the physics step.
func (c *PlayerController) HandleInput(e *donburi.Entry, dir cfg.Direction, grounded bool) {
	next := SelectAnimation(dir, grounded)

	physics := components.Physics.Get(e)
	switch dir {
	case cfg.DirectionLeft:
		physics.SpeedX = -cfg.Player.MoveSpeed
	case cfg.DirectionRight:
		physics.SpeedX = cfg.Player.MoveSpeed
	default:
		physics.SpeedX = 0
	}

	if dir != cfg.DirectionNone {
		components.Player.Get(e).Facing = dir
	}
	setAnimation(e, next, true)
}

// Jump launches the player upward. It does nothing while airborne.
func (c *PlayerController) Jump(e *donburi.Entry, grounded bool) {
	if !grounded {
		return
	}
	physics := components.Physics.Get(e)
	physics.SpeedY = -cfg.Player.JumpSpeed
	physics.OnGround = nil
	physics.OnWorldFloor = false
}

// Reset stops the player at the respawn point and starts the fade-in. The
// motion reset is complete before the fade is scheduled.
func (c *PlayerController) Reset(e *donburi.Entry) {
	physics := components.Physics.Get(e)
	physics.SpeedX = 0
	physics.SpeedY = 0
	physics.OnGround = nil
	physics.OnWorldFloor = false

	moveTo(e, cfg.Player.StartX, cfg.Player.StartY)
	setAnimation(e, cfg.AnimIdle, false)

	player := components.Player.Get(e)
	player.Alpha = cfg.Fade.From
	c.tweens.Schedule(&player.Alpha, cfg.Fade.To, cfg.Fade.DurationMs, cfg.Fade.Repeat)
}

// SelectAnimation maps a tick's input to the clip to show. Being airborne
// always wins.
func SelectAnimation(dir cfg.Direction, grounded bool) cfg.AnimID {
	if !dir.Valid() {
		panic(fmt.Sprintf("systems: invalid direction %d", int(dir)))
	}
	if !grounded {
		return cfg.AnimJump
	}
	switch dir {
	case cfg.DirectionLeft:
		return cfg.AnimMoveLeft
	case cfg.DirectionRight:
		return cfg.AnimMoveRight
	}
	return cfg.AnimIdle
}

func moveTo(e *donburi.Entry, x, y float64) {
	obj := components.Object.Get(e).Object
	obj.X = x
	obj.Y = y
	if obj.Space != nil {
		obj.Update()
	}
}

func setAnimation(e *donburi.Entry, id cfg.AnimID, ignoreIfPlaying bool) {
	components.Player.Get(e).Animation = id
	components.Animation.Get(e).Play(id, ignoreIfPlaying)
}
