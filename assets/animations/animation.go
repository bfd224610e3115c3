package animations

import "github.com/automoto/robospike/config"

// Clip is a registered, named frame sequence.
type Clip struct {
	Anim      config.AnimID
	Texture   string
	Frames    []string
	FrameRate float64
	Repeat    int // -1 loops forever, otherwise extra plays after the first
}

type Animation struct {
	Clip             *Clip
	SpeedInTps       float32 // how many ticks before next frame
	frameCounter     float32
	frame            int
	plays            int
	Looped           bool
	FreezeOnComplete bool // set once a non-looping clip has used up its repeats
}

func (a *Animation) Update() {
	if a.FreezeOnComplete {
		return
	}
	a.frameCounter -= 1.0
	if a.frameCounter < 0.0 {
		a.frameCounter = a.SpeedInTps
		a.frame++
		if a.frame >= len(a.Clip.Frames) {
			a.Looped = true
			a.plays++
			if a.Clip.Repeat >= 0 && a.plays > a.Clip.Repeat {
				// Stay on last frame
				a.frame = len(a.Clip.Frames) - 1
				a.FreezeOnComplete = true
				return
			}
			a.frame = 0
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// FrameName is the atlas frame currently showing.
func (a *Animation) FrameName() string {
	return a.Clip.Frames[a.frame]
}

func (a *Animation) Restart() {
	a.frame = 0
	a.plays = 0
	a.frameCounter = a.SpeedInTps
	a.Looped = false
	a.FreezeOnComplete = false
}

// NewAnimation starts clip from its first frame. tps converts the clip's
// frame rate into ticks per frame.
func NewAnimation(clip *Clip, tps int) *Animation {
	speed := float32(tps)
	if clip.FrameRate > 0 {
		speed = float32(float64(tps)/clip.FrameRate) - 1
	}
	return &Animation{
		Clip:         clip,
		SpeedInTps:   speed,
		frameCounter: speed,
	}
}
