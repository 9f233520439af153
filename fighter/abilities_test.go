package fighter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/veggievengeance/config"
	"github.com/automoto/veggievengeance/shared/gamemath"
)

// chargePowerPunch presses power punch, holds it for ticks frames and
// releases, returning the released attack.
func chargePowerPunch(t *testing.T, f *Fighter, stage PlatformIndex, ticks int) *Attack {
	t.Helper()
	hold := Intent{PowerPunch: true}
	require.Nil(t, tick(f, stage, hold))
	require.Equal(t, ActionChargingPunch, f.Action())
	require.Empty(t, step(f, stage, ticks, hold))
	return tick(f, stage, Intent{})
}

func TestPunch(t *testing.T) {
	stage := floorStage()
	f := newTestFighter(t, config.ArchetypeEggplant)
	settle(t, f, stage)

	a := tick(f, stage, Intent{Punch: true})
	require.NotNil(t, a)
	assert.Equal(t, AttackPunch, a.Kind)
	assert.Equal(t, f.Stats().Strength, a.Damage)
	assert.Equal(t, f.ID(), a.OwnerID)
	assert.False(t, a.IsProjectile())
	assert.Equal(t, f.BoundingBox().Right(), a.Box.Left(), "punch lands in front")
	assert.True(t, f.IsPunching())
	assert.Equal(t, config.StateAttackingPunch, f.State())
}

func TestPunchCooldown(t *testing.T) {
	stage := floorStage()
	f := newTestFighter(t, config.ArchetypePotato)
	settle(t, f, stage)
	hold := Intent{Punch: true}

	require.NotNil(t, tick(f, stage, hold))
	ticks := int(config.Combat.PunchCooldownMs/config.TickMs + 0.5)
	for i := 1; i < ticks; i++ {
		require.Greater(t, f.punch.cooldownMs, 0.0)
		assert.Nil(t, tick(f, stage, hold), "tick %d", i)
	}
	require.Zero(t, f.punch.cooldownMs)
	assert.NotNil(t, tick(f, stage, hold), "accepted once the cooldown reaches zero")
}

func TestPowerPunchDamageScalesWithCharge(t *testing.T) {
	capTicks := int(config.Combat.PowerPunchChargeCap / config.Combat.PowerPunchRate)

	tests := []struct {
		name  string
		ticks int
		ratio float64
		maxed bool
	}{
		{"no charge", 0, 0, false},
		{"half charge", capTicks / 2, 0.5, false},
		{"full charge", capTicks, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stage := floorStage()
			f := newTestFighter(t, config.ArchetypeEggplant)
			settle(t, f, stage)
			strength := f.Stats().Strength

			a := chargePowerPunch(t, f, stage, tt.ticks)
			require.NotNil(t, a)
			assert.Equal(t, AttackPowerPunch, a.Kind)
			assert.Equal(t, tt.maxed, a.Maxed)
			assert.Equal(t, gamemath.CalculateDamage(strength, config.Combat.MaxPowerPunchDamage-strength, tt.ratio), a.Damage)
			assert.True(t, f.IsPowerPunching())
		})
	}
}

func TestPowerPunchAtCapDealsMaxDamage(t *testing.T) {
	stage := floorStage()
	f := newTestFighter(t, config.ArchetypePotato)
	settle(t, f, stage)
	capTicks := int(config.Combat.PowerPunchChargeCap / config.Combat.PowerPunchRate)

	a := chargePowerPunch(t, f, stage, capTicks+10)
	require.NotNil(t, a)
	assert.Equal(t, config.MaxPowerPunchDamage, a.Damage)
	assert.Equal(t, config.StateAttackingMaxPowerPunch, f.State())
}

func TestPowerPunchWithoutChargeDealsBaseDamage(t *testing.T) {
	stage := floorStage()
	f := newTestFighter(t, config.ArchetypeYam)
	settle(t, f, stage)

	a := chargePowerPunch(t, f, stage, 0)
	require.NotNil(t, a)
	assert.Equal(t, f.Stats().Strength, a.Damage)
	assert.Equal(t, config.StateAttackingPowerPunch, f.State())
}

func TestHoldingPowerPunchTooLongTiresOut(t *testing.T) {
	stage := floorStage()
	f := newTestFighter(t, config.ArchetypeBroccoli)
	settle(t, f, stage)
	hold := Intent{PowerPunch: true}

	tick(f, stage, hold)
	capMs := config.Combat.PowerPunchChargeCap / config.Combat.PowerPunchRate * config.TickMs
	ticks := int((capMs+config.Combat.HoldingTooMuchMs)/config.TickMs) + 5
	assert.Empty(t, step(f, stage, ticks, hold))

	assert.Equal(t, ActionIdle, f.Action())
	assert.Zero(t, f.PunchCharge())
	assert.True(t, f.IsTiredOut())
	assert.Nil(t, tick(f, stage, Intent{}), "releasing after the penalty does nothing")
}

func TestHurtCancelsOffense(t *testing.T) {
	stage := floorStage()
	f := newTestFighter(t, config.ArchetypeEggplant)
	settle(t, f, stage)

	tick(f, stage, Intent{PowerPunch: true})
	step(f, stage, 10, Intent{PowerPunch: true})
	require.Equal(t, ActionChargingPunch, f.Action())

	f.ApplyDamage(3)
	assert.Equal(t, ActionIdle, f.Action())
	assert.Zero(t, f.PunchCharge())

	assert.Nil(t, tick(f, stage, Intent{Punch: true}), "no offense while hurt")
	assert.Equal(t, ActionIdle, f.Action())

	// Movement is still allowed
	tick(f, stage, Intent{MoveRight: true})
	assert.Equal(t, f.Stats().Speed, f.Force().X())
}

func TestBlockingExcludesPunching(t *testing.T) {
	stage := floorStage()
	f := newTestFighter(t, config.ArchetypePotato)
	settle(t, f, stage)

	assert.Nil(t, tick(f, stage, Intent{Block: true, Punch: true}))
	assert.True(t, f.IsBlocking())
	assert.False(t, f.IsPunching())
}

func TestPotatoBomb(t *testing.T) {
	stage := floorStage()
	f := newTestFighter(t, config.ArchetypePotato)
	settle(t, f, stage)

	assert.Nil(t, tick(f, stage, Intent{Ability1: true}))
	assert.Equal(t, config.StatePlantingBomb, f.State())
	assert.Nil(t, tick(f, stage, Intent{Punch: true}), "planting excludes the punch shell")

	plantTicks := int(config.Potato.BombPlantMs/config.TickMs) + 1
	step(f, stage, plantTicks, Intent{})
	require.Equal(t, 1, f.ProjectileCount(AttackBomb))
	bomb := f.Projectiles()[0]
	assert.Zero(t, bomb.Damage, "a planted bomb is harmless until it blows")

	fuseTicks := int(config.Potato.BombFuseMs/config.TickMs) + 2
	var explosions []*Attack
	for _, a := range step(f, stage, fuseTicks, Intent{}) {
		if a.Kind == AttackBomb {
			explosions = append(explosions, a)
		}
	}
	require.Len(t, explosions, 1)
	assert.Equal(t, config.Potato.BombDamage, explosions[0].Damage)
	assert.Equal(t, 2*config.Potato.BombRadius, explosions[0].Box.W)
	assert.InDelta(t, bomb.Box.Center().X(), explosions[0].Box.Center().X(), 1e-9)
	assert.Zero(t, f.ProjectileCount(AttackBomb))

	// Cooldown started on detonation
	tick(f, stage, Intent{Ability1: true})
	assert.NotEqual(t, config.StatePlantingBomb, f.State())
}

func TestPotatoBombDetonatesDuringPunch(t *testing.T) {
	stage := floorStage()
	f := newTestFighter(t, config.ArchetypePotato)
	settle(t, f, stage)
	pot := f.abilities.(*potatoAbilities)

	tick(f, stage, Intent{Ability1: true})
	for i := 0; i < 100 && !pot.bomb.Valid(); i++ {
		tick(f, stage, Intent{})
	}
	require.True(t, pot.bomb.Valid())
	for pot.fuseMs > config.TickMs {
		require.Nil(t, tick(f, stage, Intent{}))
	}

	a := tick(f, stage, Intent{Punch: true})
	require.NotNil(t, a)
	assert.Equal(t, AttackPunch, a.Kind)
	assert.Zero(t, f.ProjectileCount(AttackBomb))

	a = tick(f, stage, Intent{})
	require.NotNil(t, a, "the explosion follows on the next tick")
	assert.Equal(t, AttackBomb, a.Kind)
	assert.Equal(t, config.Potato.BombDamage, a.Damage)

	for _, later := range step(f, stage, 60, Intent{}) {
		assert.NotEqual(t, AttackBomb, later.Kind, "one explosion per bomb")
	}
}

func TestPotatoFries(t *testing.T) {
	stage := floorStage()
	f := newTestFighter(t, config.ArchetypePotato)
	settle(t, f, stage)
	hold := Intent{Ability2: true}

	tick(f, stage, hold)
	assert.Equal(t, config.StateChargingFries, f.State())
	step(f, stage, 40, hold)

	a := tick(f, stage, Intent{})
	require.NotNil(t, a)
	assert.Equal(t, AttackBullet, a.Kind)
	assert.True(t, a.IsProjectile())
	assert.Equal(t, config.Potato.FriesBaseDamage+config.Potato.FriesBonusDamage, a.Damage)
	assert.Greater(t, a.Velocity.X(), config.Potato.FriesSpeed)

	p, ok := f.Projectile(a.Handle)
	require.True(t, ok)
	assert.Equal(t, AttackBullet, p.Kind)

	// Fries cooldown rejects an immediate second charge
	tick(f, stage, hold)
	assert.NotEqual(t, config.StateChargingFries, f.State())
}

func TestBroccoliUppercut(t *testing.T) {
	stage := floorStage()
	f := newTestFighter(t, config.ArchetypeBroccoli)
	settle(t, f, stage)

	a := tick(f, stage, Intent{Ability1: true})
	require.NotNil(t, a)
	assert.Equal(t, AttackUppercut, a.Kind)
	assert.Equal(t, config.Broccoli.UppercutDamage, a.Damage)
	assert.True(t, f.IsUppercutting())
	assert.Equal(t, -config.Broccoli.UppercutVelocity, f.Force().Y())

	tick(f, stage, Intent{})
	assert.Less(t, f.Force().Y(), -config.Physics.TerminalVelocity, "upward launch is not clamped")
}

func TestAbilityCooldownGatesActivation(t *testing.T) {
	tests := []struct {
		name      string
		archetype config.Archetype
		in        Intent
		setCD     func(f *Fighter, ms float64)
		kind      AttackKind
	}{
		{
			name:      "uppercut",
			archetype: config.ArchetypeBroccoli,
			in:        Intent{Ability1: true},
			setCD:     func(f *Fighter, ms float64) { f.abilities.(*broccoliAbilities).uppercutCooldownMs = ms },
			kind:      AttackUppercut,
		},
		{
			name:      "dash",
			archetype: config.ArchetypeYam,
			in:        Intent{Ability1: true},
			setCD:     func(f *Fighter, ms float64) { f.abilities.(*yamAbilities).dashCooldownMs = ms },
			kind:      AttackDash,
		},
		{
			name:      "punch",
			archetype: config.ArchetypePotato,
			in:        Intent{Punch: true},
			setCD:     func(f *Fighter, ms float64) { f.punch.cooldownMs = ms },
			kind:      AttackPunch,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stage := floorStage()
			f := newTestFighter(t, tt.archetype)
			settle(t, f, stage)

			tt.setCD(f, 10*config.TickMs)
			assert.Nil(t, tick(f, stage, tt.in))
			assert.Equal(t, ActionIdle, f.Action())

			tt.setCD(f, 0)
			a := tick(f, stage, tt.in)
			require.NotNil(t, a)
			assert.Equal(t, tt.kind, a.Kind)
		})
	}
}

func TestCauliflowerToss(t *testing.T) {
	stage := floorStage()
	f := newTestFighter(t, config.ArchetypeBroccoli)
	settle(t, f, stage)

	tick(f, stage, Intent{Ability2: true})
	assert.Equal(t, config.StateChargingCauliflower, f.State())
	a := tick(f, stage, Intent{})
	require.NotNil(t, a)
	assert.Equal(t, AttackProjectile, a.Kind)
	assert.True(t, a.Gravity)
	perSecond := 1000 / config.TickMs
	assert.InDelta(t, config.Broccoli.CauliflowerBaseSpeed*perSecond, a.Velocity.X(), 1e-6)
	assert.Less(t, a.Velocity.Y(), 0.0)
}

func TestCauliflowerSpeedIsCapped(t *testing.T) {
	stage := floorStage()
	f := newTestFighter(t, config.ArchetypeBroccoli)
	settle(t, f, stage)
	hold := Intent{Ability2: true}

	tick(f, stage, hold)
	step(f, stage, 200, hold)
	a := tick(f, stage, Intent{})
	require.NotNil(t, a)
	assert.InDelta(t, config.Broccoli.CauliflowerMaxSpeed*1000/config.TickMs, a.Velocity.X(), 1e-6)
}

func TestCauliflowerCapSuppressesSpawns(t *testing.T) {
	stage := floorStage()
	f := newTestFighter(t, config.ArchetypeBroccoli)
	settle(t, f, stage)

	for i := 0; i < config.Broccoli.CauliflowerMaxOnStage; i++ {
		f.pool.Spawn(Projectile{
			Kind: AttackProjectile,
			Box:  BoundingBox{X: 100, Y: 100, W: 10, H: 10},
		})
	}

	tick(f, stage, Intent{Ability2: true})
	assert.Nil(t, tick(f, stage, Intent{}))
	assert.Equal(t, config.Broccoli.CauliflowerMaxOnStage, f.ProjectileCount(AttackProjectile))

	// Suppressed releases do not start the cooldown
	f.ReleaseProjectile(f.Projectiles()[0].Handle)
	tick(f, stage, Intent{Ability2: true})
	assert.NotNil(t, tick(f, stage, Intent{}))
}

func TestEggplantEmojis(t *testing.T) {
	stage := floorStage()
	f := newTestFighter(t, config.ArchetypeEggplant)
	settle(t, f, stage)

	assert.Nil(t, tick(f, stage, Intent{Ability2: true}), "no emoji to fire")
	assert.Zero(t, f.EmojiCount())
	assert.Empty(t, f.Projectiles())

	summonTicks := int(config.Eggplant.SpawnCooldownMs/config.TickMs) + 1
	step(f, stage, summonTicks*(config.Eggplant.MaxEmojis+2), Intent{Ability1: true})
	assert.Equal(t, config.Eggplant.MaxEmojis, f.EmojiCount(), "summons stop at the cap")

	a := tick(f, stage, Intent{Ability2: true})
	require.NotNil(t, a)
	assert.Equal(t, AttackEmoji, a.Kind)
	assert.Equal(t, config.Eggplant.MaxEmojis-1, f.EmojiCount())
	assert.Equal(t, 1, f.ProjectileCount(AttackEmoji))

	assert.Nil(t, tick(f, stage, Intent{Ability2: true}), "shoot cooldown running")
	assert.Equal(t, config.Eggplant.MaxEmojis-1, f.EmojiCount())
}

func TestEggplantEmojisClearedOnDeath(t *testing.T) {
	stage := floorStage()
	f := newTestFighter(t, config.ArchetypeEggplant)
	tick(f, stage, Intent{Ability1: true})
	require.Equal(t, 1, f.EmojiCount())

	f.ApplyDamage(f.MaxHealth())
	assert.Zero(t, f.EmojiCount())
}

func TestYamDash(t *testing.T) {
	stage := floorStage()
	f := newTestFighter(t, config.ArchetypeYam)
	settle(t, f, stage)

	a := tick(f, stage, Intent{Ability1: true})
	require.NotNil(t, a)
	assert.Equal(t, AttackDash, a.Kind)
	assert.Equal(t, config.Yam.DashDamage, a.Damage)
	assert.True(t, f.IsDashing())
	assert.Equal(t, config.StateDashing, f.State())

	tick(f, stage, Intent{MoveLeft: true})
	assert.Equal(t, config.Yam.DashSpeed, f.Force().X(), "dash overrides steering")

	dashTicks := int(config.Yam.DashMs/config.TickMs) + 1
	step(f, stage, dashTicks, Intent{})
	assert.False(t, f.IsDashing())
}

func TestYamHeal(t *testing.T) {
	stage := floorStage()
	f := newTestFighter(t, config.ArchetypeYam)
	settle(t, f, stage)

	f.ApplyDamage(20)
	require.True(t, f.IsHurt())
	before := f.Health()

	tick(f, stage, Intent{Ability2: true})
	assert.Equal(t, before+config.Yam.HealPoints, f.Health(), "heal ignores hurt")
	assert.Greater(t, f.HealAnimation(), 0.0)
	assert.Equal(t, config.Hit, f.State())

	tick(f, stage, Intent{Ability2: true})
	assert.Equal(t, before+config.Yam.HealPoints, f.Health(), "cooldown running")

	animTicks := int(config.Yam.HealAnimationMs/config.TickMs) + 1
	step(f, stage, animTicks, Intent{})
	assert.Zero(t, f.HealAnimation())
}

func TestYamHealClampsToMax(t *testing.T) {
	stage := floorStage()
	f := newTestFighter(t, config.ArchetypeYam)
	f.ApplyDamage(2)

	tick(f, stage, Intent{Ability2: true})
	assert.Equal(t, f.MaxHealth(), f.Health())
}
