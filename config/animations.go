package config

// AnimID names one of the player's animation clips.
type AnimID int

const (
	AnimNone AnimID = iota - 1
	AnimIdle
	AnimMoveLeft
	AnimMoveRight
	AnimJump
)

var animNames = map[AnimID]string{
	AnimIdle:      "Idle",
	AnimMoveLeft:  "MoveLeft",
	AnimMoveRight: "MoveRight",
	AnimJump:      "Jump",
}

func (a AnimID) String() string {
	if name, ok := animNames[a]; ok {
		return name
	}
	return "unknown"
}

// ClipDef describes a clip as a run of atlas frame names.
// Frames are Prefix+Start .. Prefix+End inclusive.
type ClipDef struct {
	Anim      AnimID
	Prefix    string
	Start     int
	End       int
	FrameRate float64
	Repeat    int // -1 loops forever
}

// PlayerClips are registered once per texture by the player controller.
var PlayerClips = []ClipDef{
	{Anim: AnimMoveLeft, Prefix: "robo_player_", Start: 2, End: 3, FrameRate: 10, Repeat: -1},
	{Anim: AnimMoveRight, Prefix: "robo_player_", Start: 2, End: 3, FrameRate: 10, Repeat: -1},
	{Anim: AnimJump, Prefix: "robo_player_", Start: 1, End: 1, FrameRate: 10},
	{Anim: AnimIdle, Prefix: "robo_player_", Start: 0, End: 0, FrameRate: 10},
}
