package domain

import "math"

// Team identifiers as used by the game server
const (
	TeamTerrorist        = 2
	TeamCounterTerrorist = 3
)

// Weapon configuration limits
const (
	MaxStickers       = 5
	MaxNametagLength  = 128
	MaxSeed           = 1000
	MaxSteamIDLength  = 64
	MaxStatTrakCount  = math.MaxInt32
	MaxStickerScale   = 5.0
	MaxStickerRotate  = 360.0
	MinWeaponDefindex = 1

	// Integer ids are stored in 32-bit columns
	MaxWeaponDefindex = math.MaxInt32
	MaxPaintID        = math.MaxInt32
	MaxAttachmentID   = math.MaxInt32
)

// Defaults applied to fields omitted from a save request
const (
	DefaultWear          = 0.000001
	DefaultSeed          = 0
	DefaultStatTrak      = false
	DefaultStatTrakCount = 0
)

// WeaponConfig is a player's cosmetic configuration for one weapon on one team.
// (SteamID, Team, Defindex) identifies at most one stored configuration.
type WeaponConfig struct {
	SteamID       string    `json:"steamid"`
	Team          int       `json:"weaponTeam"`
	Defindex      int       `json:"weaponDefindex"`
	PaintID       int       `json:"paintId"`
	Wear          float64   `json:"wear"`
	Seed          int       `json:"seed"`
	Nametag       *string   `json:"nametag"`
	StatTrak      bool      `json:"stattrak"`
	StatTrakCount int       `json:"stattrakCount"`
	Stickers      []Sticker `json:"stickers"`
	Keychain      *Keychain `json:"keychain"`
}

// Sticker is a decorative sticker applied to one of the five sticker slots
type Sticker struct {
	ID       int     `json:"id"`
	Schema   int     `json:"schema"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Wear     float64 `json:"wear"`
	Scale    float64 `json:"scale"`
	Rotation float64 `json:"rotation"`
}

// Keychain is a charm attached to the weapon
type Keychain struct {
	ID   int     `json:"id"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    float64 `json:"z"`
	Seed int     `json:"seed"`
}

// WeaponKey identifies a weapon slot in a player's loadout
type WeaponKey struct {
	SteamID  string
	Team     int
	Defindex int
}

// Key returns the identifying key of the configuration
func (w WeaponConfig) Key() WeaponKey {
	return WeaponKey{SteamID: w.SteamID, Team: w.Team, Defindex: w.Defindex}
}

// TeamName returns a short label for a team, used in logs and metric labels
func TeamName(team int) string {
	switch team {
	case TeamTerrorist:
		return "t"
	case TeamCounterTerrorist:
		return "ct"
	default:
		return "unknown"
	}
}
