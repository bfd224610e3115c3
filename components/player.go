package components

import (
	cfg "github.com/automoto/robospike/config"
	"github.com/yohamta/donburi"
)

// PlayerData is the player's logical and visual state. Position lives in the
// entity's Object and velocity in its Physics component.
type PlayerData struct {
	Facing    cfg.Direction // last non-None direction the player moved in
	Animation cfg.AnimID
	Alpha     float64 // 0..1, written by the respawn fade
	Alive     bool    // reserved
	SpawnX    float64
	SpawnY    float64
}

var Player = donburi.NewComponentType[PlayerData]()
