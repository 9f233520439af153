package fighter

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/veggievengeance/config"
)

func TestSpawnLandsOnFloor(t *testing.T) {
	stage := floorStage()
	f := newTestFighter(t, config.ArchetypePotato)
	settle(t, f, stage)

	assert.Equal(t, floorTop, f.BoundingBox().Bottom())
	assert.Zero(t, f.Force().Y())
	assert.False(t, f.IsJumping())
}

func TestGravityClampsToTerminalVelocity(t *testing.T) {
	stage := &testStage{bounds: BoundingBox{W: stageWidth, H: 100000}}
	f := newTestFighter(t, config.ArchetypePotato)

	step(f, stage, 300, Intent{})
	assert.Equal(t, config.Physics.TerminalVelocity, f.Force().Y())
	assert.True(t, f.IsJumping())
}

func TestFrictionNeverReverses(t *testing.T) {
	stage := floorStage()
	f := newTestFighter(t, config.ArchetypePotato)
	settle(t, f, stage)

	tick(f, stage, Intent{MoveRight: true})
	require.Equal(t, f.Stats().Speed, f.Force().X())

	prev := f.Force().X()
	for i := 0; i < 60; i++ {
		tick(f, stage, Intent{})
		x := f.Force().X()
		assert.GreaterOrEqual(t, x, 0.0)
		assert.LessOrEqual(t, x, prev)
		prev = x
	}
	assert.Zero(t, f.Force().X())
}

func TestCrouchHaltsWalking(t *testing.T) {
	stage := floorStage()
	f := newTestFighter(t, config.ArchetypePotato)
	settle(t, f, stage)

	step(f, stage, 60, Intent{Crouch: true, MoveRight: true})
	assert.True(t, f.IsCrouching())
	assert.Zero(t, f.Force().X())
	assert.Equal(t, config.Fighter.CrouchHeight, f.BoundingBox().H)
	assert.Equal(t, floorTop, f.BoundingBox().Bottom())
	assert.Equal(t, config.DirectionRight, f.Facing())
}

func TestJumpAndDoubleJump(t *testing.T) {
	tests := []struct {
		name       string
		archetype  config.Archetype
		extraJumps int
	}{
		{"potato has none", config.ArchetypePotato, 0},
		{"broccoli has one", config.ArchetypeBroccoli, 1},
		{"eggplant has none", config.ArchetypeEggplant, 0},
		{"yam has none", config.ArchetypeYam, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stage := floorStage()
			f := newTestFighter(t, tt.archetype)
			settle(t, f, stage)
			require.Equal(t, tt.extraJumps, f.JumpsLeft())

			tick(f, stage, Intent{Jump: true})
			require.True(t, f.IsJumping())
			require.Less(t, f.Force().Y(), 0.0)

			// Count how many more mid-air jumps are honored
			midAir := 0
			for i := 0; i < 3; i++ {
				step(f, stage, 5, Intent{})
				before := f.Force().Y()
				tick(f, stage, Intent{Jump: true})
				if f.Force().Y() < before {
					midAir++
				}
			}
			assert.Equal(t, tt.extraJumps, midAir)
			assert.Zero(t, f.JumpsLeft())

			settle(t, f, stage)
			assert.Equal(t, tt.extraJumps, f.JumpsLeft(), "landing restores the charge")
		})
	}
}

func TestHoldingJumpDoesNotRepeat(t *testing.T) {
	stage := floorStage()
	f := newTestFighter(t, config.ArchetypeBroccoli)
	settle(t, f, stage)

	step(f, stage, 10, Intent{Jump: true})
	assert.Equal(t, 1, f.JumpsLeft())
}

func TestLandingOnRaisedPlatform(t *testing.T) {
	ledge := Platform{ID: 2, Box: BoundingBox{X: 100, Y: 350, W: 300, H: 20}}
	stage := floorStage(ledge)
	f := New(Params{
		ID:        1,
		Archetype: config.ArchetypePotato,
		Spawn:     mgl64.Vec2{200, 200},
		Logger:    quietLogger(),
	})

	settle(t, f, stage)
	assert.Equal(t, ledge.Box.Top(), f.BoundingBox().Bottom())
	assert.Equal(t, 2, f.body.ground.ID)
}

func TestJumpingThroughPlatformFromBelow(t *testing.T) {
	ledge := Platform{ID: 2, Box: BoundingBox{X: 100, Y: 420, W: 300, H: 20}}
	stage := floorStage(ledge)
	f := newTestFighter(t, config.ArchetypePotato)
	settle(t, f, stage)
	require.Equal(t, floorTop, f.BoundingBox().Bottom())

	tick(f, stage, Intent{Jump: true})
	settle(t, f, stage)
	assert.Equal(t, ledge.Box.Top(), f.BoundingBox().Bottom(), "platforms only collide from above")
}

func TestDropThroughPassThroughPlatform(t *testing.T) {
	shelf := Platform{ID: 2, Box: BoundingBox{X: 100, Y: 300, W: 300, H: 16}, PassThrough: true}
	stage := floorStage(shelf)
	f := New(Params{
		ID:        1,
		Archetype: config.ArchetypeYam,
		Spawn:     mgl64.Vec2{200, 300},
		Logger:    quietLogger(),
	})
	settle(t, f, stage)
	require.Equal(t, shelf.Box.Top(), f.BoundingBox().Bottom())

	tick(f, stage, Intent{PassThrough: true})
	assert.False(t, f.IsGrounded())

	settle(t, f, stage)
	assert.Equal(t, floorTop, f.BoundingBox().Bottom())
	assert.False(t, f.body.ignoring)
}

func TestPassThroughIgnoredOnSolidPlatform(t *testing.T) {
	stage := floorStage()
	f := newTestFighter(t, config.ArchetypeYam)
	settle(t, f, stage)

	tick(f, stage, Intent{PassThrough: true})
	assert.True(t, f.IsGrounded())
	assert.Equal(t, floorTop, f.BoundingBox().Bottom())
}

func TestWalkingOffEdgeFalls(t *testing.T) {
	ledge := Platform{ID: 2, Box: BoundingBox{X: 100, Y: 300, W: 150, H: 20}}
	stage := floorStage(ledge)
	f := New(Params{
		ID:        1,
		Archetype: config.ArchetypeBroccoli,
		Spawn:     mgl64.Vec2{200, 300},
		Logger:    quietLogger(),
	})
	settle(t, f, stage)

	for i := 0; i < 120 && f.IsGrounded(); i++ {
		tick(f, stage, Intent{MoveRight: true})
	}
	assert.False(t, f.IsGrounded())
	assert.Equal(t, 1, f.JumpsLeft(), "walking off keeps the air jump")
}

func TestStageBoundsClamp(t *testing.T) {
	stage := floorStage()
	f := newTestFighter(t, config.ArchetypeBroccoli)
	settle(t, f, stage)

	step(f, stage, 300, Intent{MoveLeft: true})
	assert.Equal(t, 0.0, f.BoundingBox().Left())
	assert.Equal(t, config.DirectionLeft, f.Facing())

	step(f, stage, 600, Intent{MoveRight: true})
	assert.Equal(t, stageWidth, f.BoundingBox().Right())
}

func TestStageBottomActsAsFloor(t *testing.T) {
	stage := &testStage{bounds: BoundingBox{W: stageWidth, H: stageHeight}}
	f := newTestFighter(t, config.ArchetypeEggplant)

	settle(t, f, stage)
	assert.Equal(t, stageHeight, f.BoundingBox().Bottom())
	assert.Equal(t, stageFloorID, f.body.ground.ID)
}

func TestLandingSquashRecovers(t *testing.T) {
	stage := floorStage()
	f := newTestFighter(t, config.ArchetypeEggplant)
	settle(t, f, stage)
	assert.Less(t, f.Scale.Y(), 1.0)

	step(f, stage, 30, Intent{})
	assert.Equal(t, 1.0, f.Scale.Y())
}
