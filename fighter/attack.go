package fighter

import "github.com/go-gl/mathgl/mgl64"

// AttackKind identifies what produced an Attack.
type AttackKind int

const (
	AttackPunch AttackKind = iota
	AttackPowerPunch
	AttackUppercut
	AttackDash
	AttackBomb
	AttackBullet
	AttackProjectile
	AttackEmoji
)

var attackKindNames = map[AttackKind]string{
	AttackPunch:      "punch",
	AttackPowerPunch: "power_punch",
	AttackUppercut:   "uppercut",
	AttackDash:       "dash",
	AttackBomb:       "bomb",
	AttackBullet:     "bullet",
	AttackProjectile: "projectile",
	AttackEmoji:      "emoji",
}

func (k AttackKind) String() string {
	if s, ok := attackKindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Attack describes a hit volume produced this tick. Melee attacks and bomb
// explosions are one-shot snapshots with a zero Handle. Bullets, projectiles
// and emojis also live in the owner's ProjectilePool under Handle until they
// expire or are released.
type Attack struct {
	Kind       AttackKind
	OwnerID    int
	Box        BoundingBox
	Damage     int
	Velocity   mgl64.Vec2 // units/s
	LifespanMs float64
	Gravity    bool
	Handle     ProjectileHandle
	Maxed      bool // fully charged release
}

// IsProjectile reports whether the attack is backed by a pool slot.
func (a *Attack) IsProjectile() bool {
	return a.Handle.Valid()
}
