package components

import "github.com/yohamta/donburi"

// HazardData keeps the sprite rectangle of a spike. The collision body in the
// entity's Object is inset from it.
type HazardData struct {
	SpriteX, SpriteY float64
	Width, Height    float64
	Inset            float64
}

var Hazard = donburi.NewComponentType[HazardData]()

// HazardGroupData holds the settings shared by every member of a hazard group.
type HazardGroupData struct {
	Tag          string // resolv tag carried by members
	AllowGravity bool
	Immovable    bool // members get no physics body, whatever AllowGravity says
	Members      int
}

var HazardGroup = donburi.NewComponentType[HazardGroupData]()
