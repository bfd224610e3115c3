package components

import "github.com/yohamta/donburi"

// StatsData counts respawns for the HUD and the save file.
type StatsData struct {
	Respawns     int
	SessionStart int // Respawns value loaded from disk
}

var Stats = donburi.NewComponentType[StatsData]()

// SettingsData holds runtime toggles.
type SettingsData struct {
	Debug bool
}

var Settings = donburi.NewComponentType[SettingsData]()
