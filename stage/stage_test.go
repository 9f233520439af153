package stage

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/veggievengeance/assets"
	"github.com/automoto/veggievengeance/fighter"
	"github.com/automoto/veggievengeance/shared/leveldata"
	"github.com/automoto/veggievengeance/tags"
)

func testData() *leveldata.StageData {
	return &leveldata.StageData{
		Name:      "test",
		MapWidth:  640,
		MapHeight: 480,
		Platforms: []leveldata.PlatformRect{
			{X: 0, Y: 448, W: 640, H: 32},
			{X: 100, Y: 300, W: 128, H: 16, PassThrough: true},
			{X: 400, Y: 200, W: 96, H: 16},
			{X: 50, Y: 50, W: 0, H: 10},
		},
		SpawnPoints: []leveldata.SpawnPoint{
			{X: 120, Y: 448, Index: 0},
			{X: 520, Y: 448, Index: 1},
		},
	}
}

func ids(ps []fighter.Platform) []int {
	out := make([]int, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestNewSkipsEmptyRects(t *testing.T) {
	s := New(testData())

	require.Len(t, s.Platforms(), 3)
	for i, p := range s.Platforms() {
		assert.Equal(t, i, p.ID)
	}
	assert.True(t, s.Platforms()[1].PassThrough)
	assert.False(t, s.Platforms()[2].PassThrough)
	assert.Equal(t, fighter.BoundingBox{W: 640, H: 480}, s.Bounds())
}

func TestQuery(t *testing.T) {
	s := New(testData())

	tests := []struct {
		name   string
		region fighter.BoundingBox
		want   []int
	}{
		{"empty air", fighter.BoundingBox{X: 300, Y: 50, W: 20, H: 20}, []int{}},
		{"floor", fighter.BoundingBox{X: 10, Y: 430, W: 20, H: 30}, []int{0}},
		{"touching top edge", fighter.BoundingBox{X: 110, Y: 260, W: 20, H: 40}, []int{1}},
		{"just above", fighter.BoundingBox{X: 110, Y: 250, W: 20, H: 40}, []int{}},
		{"spans two", fighter.BoundingBox{X: 150, Y: 290, W: 20, H: 170}, []int{0, 1}},
		{"right platform", fighter.BoundingBox{X: 480, Y: 150, W: 40, H: 60}, []int{2}},
		{"outside the map", fighter.BoundingBox{X: -200, Y: -200, W: 20, H: 20}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, tt.want, ids(s.Query(tt.region)))
		})
	}
}

func TestQueryIgnoresFighterObjects(t *testing.T) {
	s := New(testData())
	hurtbox := resolv.NewObject(300, 40, 20, 20, tags.ResolvFighter)
	s.Space.Add(hurtbox)

	assert.Empty(t, s.Query(fighter.BoundingBox{X: 290, Y: 30, W: 40, H: 40}))
}

func TestSpawn(t *testing.T) {
	s := New(testData())

	assert.Equal(t, 2, s.SpawnCount())
	assert.Equal(t, mgl64.Vec2{120, 448}, s.Spawn(0))
	assert.Equal(t, mgl64.Vec2{520, 448}, s.Spawn(1))
	assert.Equal(t, mgl64.Vec2{120, 448}, s.Spawn(2), "slots wrap")

	empty := New(&leveldata.StageData{Name: "void", MapWidth: 200, MapHeight: 100})
	assert.Equal(t, mgl64.Vec2{100, 0}, empty.Spawn(3))
}

func TestFighterLandsOnStage(t *testing.T) {
	s := New(testData())
	f := fighter.New(fighter.Params{ID: 1, Spawn: s.Spawn(1)})

	for i := 0; i < 120; i++ {
		f.Update(1000.0/60, s)
	}
	require.True(t, f.IsGrounded())
	assert.InDelta(t, 448, f.BoundingBox().Bottom(), 1e-6)
}

func TestEmbeddedKitchen(t *testing.T) {
	data, err := assets.LoadStage("kitchen")
	require.NoError(t, err)

	s := New(data)
	assert.Equal(t, 4, s.SpawnCount())
	assert.NotEmpty(t, s.Platforms())

	// Every spawn sits on a platform top.
	for i := 0; i < s.SpawnCount(); i++ {
		sp := s.Spawn(i)
		hits := s.Query(fighter.BoundingBox{X: sp.X() - 1, Y: sp.Y() - 1, W: 2, H: 2})
		assert.NotEmpty(t, hits, "spawn %d", i)
	}

	// Knives drop from inside the stage, above the counter.
	require.Len(t, s.Hazards(), 1)
	zone := s.Hazards()[0]
	assert.GreaterOrEqual(t, zone.X, 0.0)
	assert.LessOrEqual(t, zone.X+zone.W, s.Bounds().W)
}
