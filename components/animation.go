package components

import (
	"github.com/automoto/robospike/assets/animations"
	"github.com/automoto/robospike/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Texture          string
	Clips            map[config.AnimID]*animations.Clip
	CurrentAnimation *animations.Animation
	Current          config.AnimID
	TPS              int
}

// Play switches to the clip registered for id. When ignoreIfPlaying is set
// and id is already the current clip, playback continues undisturbed.
func (a *AnimationData) Play(id config.AnimID, ignoreIfPlaying bool) {
	if ignoreIfPlaying && a.Current == id && a.CurrentAnimation != nil {
		return
	}

	clip, ok := a.Clips[id]
	if !ok {
		// No clip for this state, clear current
		a.CurrentAnimation = nil
		a.Current = id
		return
	}
	a.CurrentAnimation = animations.NewAnimation(clip, a.TPS)
	a.Current = id
}

var Animation = donburi.NewComponentType[AnimationData]()
