// Package leveldata provides TMX stage parsing. It has no dependencies on
// ebitengine, donburi, or resolv: pure data only.
package leveldata

// StageData holds everything the match needs from a TMX stage file.
type StageData struct {
	Name        string
	Platforms   []PlatformRect
	SpawnPoints []SpawnPoint
	Hazards     []HazardZone
	MapWidth    int
	MapHeight   int
}

// PlatformRect is a platform's collision rectangle. PassThrough platforms
// can be dropped through from above.
type PlatformRect struct {
	X, Y, W, H  float64
	PassThrough bool
}

// HazardZone is a strip a stage hazard drops from. Knives start at Y with
// their center anywhere in [X, X+W].
type HazardZone struct {
	Kind    string
	X, Y, W float64
}

// HazardKnife is the kitchen's falling knives.
const HazardKnife = "knife"

// SpawnPoint is where a fighter's feet are placed on spawn and respawn.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Spawn returns the spawn point for a player slot, wrapping around when the
// stage defines fewer spawns than players.
func (d *StageData) Spawn(slot int) SpawnPoint {
	if len(d.SpawnPoints) == 0 {
		return SpawnPoint{X: float64(d.MapWidth) / 2, Y: 0, Index: slot}
	}
	if slot < 0 {
		slot = -slot
	}
	return d.SpawnPoints[slot%len(d.SpawnPoints)]
}
