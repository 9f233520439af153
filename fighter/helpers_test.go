package fighter

import (
	"io"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/automoto/veggievengeance/config"
)

const (
	floorTop    = 500.0
	stageWidth  = 1000.0
	stageHeight = 600.0
)

type testStage struct {
	platforms []Platform
	bounds    BoundingBox
}

func (s *testStage) Query(region BoundingBox) []Platform {
	var out []Platform
	for _, p := range s.platforms {
		if region.OverlapsX(p.Box) {
			out = append(out, p)
		}
	}
	return out
}

func (s *testStage) Bounds() BoundingBox {
	return s.bounds
}

func floorStage(extra ...Platform) *testStage {
	return &testStage{
		platforms: append([]Platform{{
			ID:  1,
			Box: BoundingBox{X: 0, Y: floorTop, W: stageWidth, H: stageHeight - floorTop},
		}}, extra...),
		bounds: BoundingBox{W: stageWidth, H: stageHeight},
	}
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestFighter(t *testing.T, a config.Archetype) *Fighter {
	t.Helper()
	f := New(Params{
		ID:        1,
		Archetype: a,
		Spawn:     mgl64.Vec2{200, floorTop},
		Logger:    quietLogger(),
	})
	require.True(t, f.IsAlive())
	return f
}

// step runs n frames holding in and returns every attack produced.
func step(f *Fighter, stage PlatformIndex, n int, in Intent) []*Attack {
	var attacks []*Attack
	for i := 0; i < n; i++ {
		f.SetIntent(in)
		if a := f.Update(config.TickMs, stage); a != nil {
			attacks = append(attacks, a)
		}
	}
	return attacks
}

// tick runs a single frame holding in.
func tick(f *Fighter, stage PlatformIndex, in Intent) *Attack {
	f.SetIntent(in)
	return f.Update(config.TickMs, stage)
}

// settle lets a fresh fighter fall onto the ground.
func settle(t *testing.T, f *Fighter, stage PlatformIndex) {
	t.Helper()
	for i := 0; i < 120 && !f.IsGrounded(); i++ {
		tick(f, stage, Intent{})
	}
	require.True(t, f.IsGrounded())
}
