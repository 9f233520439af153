// Package stage turns parsed stage data into a platform index the fighter
// core can query. Platforms live in a resolv space; queries use a broad phase
// over the space's cells followed by an exact rectangle test.
package stage

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/solarlune/resolv"

	"github.com/automoto/veggievengeance/config"
	"github.com/automoto/veggievengeance/fighter"
	"github.com/automoto/veggievengeance/shared/leveldata"
	"github.com/automoto/veggievengeance/tags"
)

// Stage is a static set of platforms inside fixed bounds. It implements
// fighter.PlatformIndex.
type Stage struct {
	Name  string
	Space *resolv.Space

	platforms []fighter.Platform
	spawns    []leveldata.SpawnPoint
	hazards   []leveldata.HazardZone
	bounds    fighter.BoundingBox

	probe   *resolv.Object
	results []fighter.Platform
}

// New builds a stage from parsed TMX data.
func New(data *leveldata.StageData) *Stage {
	s := &Stage{
		Name:    data.Name,
		Space:   resolv.NewSpace(data.MapWidth, data.MapHeight, config.Match.StageCellW, config.Match.StageCellH),
		spawns:  append([]leveldata.SpawnPoint(nil), data.SpawnPoints...),
		hazards: append([]leveldata.HazardZone(nil), data.Hazards...),
		bounds:  fighter.BoundingBox{W: float64(data.MapWidth), H: float64(data.MapHeight)},
	}

	for _, r := range data.Platforms {
		s.addPlatform(r)
	}

	s.probe = resolv.NewObject(0, 0, 1, 1)
	s.Space.Add(s.probe)

	logrus.WithFields(logrus.Fields{
		"stage":     s.Name,
		"platforms": len(s.platforms),
		"spawns":    len(s.spawns),
		"hazards":   len(s.hazards),
		"width":     data.MapWidth,
		"height":    data.MapHeight,
	}).Info("Loaded stage")
	return s
}

func (s *Stage) addPlatform(r leveldata.PlatformRect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	tag := tags.ResolvSolid
	if r.PassThrough {
		tag = tags.ResolvPassThrough
	}

	p := fighter.Platform{
		ID:          len(s.platforms),
		Box:         fighter.BoundingBox{X: r.X, Y: r.Y, W: r.W, H: r.H},
		PassThrough: r.PassThrough,
	}
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvPlatform, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = p
	s.Space.Add(obj)
	s.platforms = append(s.platforms, p)
}

// Query returns every platform that intersects or touches region. The slice
// is reused by the next call.
func (s *Stage) Query(region fighter.BoundingBox) []fighter.Platform {
	s.results = s.results[:0]
	if region.W < 0 || region.H < 0 {
		return s.results
	}

	// Cells are found from the probe's extent, so pad it by one unit to
	// catch platforms whose edge sits exactly on the region's edge.
	s.probe.X = region.X - 1
	s.probe.Y = region.Y - 1
	s.probe.W = region.W + 2
	s.probe.H = region.H + 2

	check := s.probe.Check(0, 0, tags.ResolvPlatform)
	if check == nil {
		return s.results
	}
	for _, obj := range check.Objects {
		p, ok := obj.Data.(fighter.Platform)
		if !ok || !touches(region, p.Box) {
			continue
		}
		s.results = append(s.results, p)
	}
	return s.results
}

// Overlapping returns the objects carrying tag whose rectangles overlap box
// with positive area.
func (s *Stage) Overlapping(box fighter.BoundingBox, tag string) []*resolv.Object {
	s.probe.X, s.probe.Y = box.X, box.Y
	s.probe.W, s.probe.H = box.W, box.H

	check := s.probe.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	var out []*resolv.Object
	for _, obj := range check.Objects {
		if box.Intersects(fighter.BoundingBox{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}) {
			out = append(out, obj)
		}
	}
	return out
}

// touches is an inclusive rectangle test: boxes sharing an edge count.
func touches(a, b fighter.BoundingBox) bool {
	return a.Left() <= b.Right() && b.Left() <= a.Right() &&
		a.Top() <= b.Bottom() && b.Top() <= a.Bottom()
}

// Bounds is the stage rectangle with its origin at (0, 0).
func (s *Stage) Bounds() fighter.BoundingBox {
	return s.bounds
}

// Platforms returns every platform in ID order.
func (s *Stage) Platforms() []fighter.Platform {
	return s.platforms
}

// Spawn returns the feet position for a player slot. Slots wrap around the
// stage's spawn points; a stage without any spawns uses the top center.
func (s *Stage) Spawn(slot int) mgl64.Vec2 {
	if len(s.spawns) == 0 {
		return mgl64.Vec2{s.bounds.W / 2, 0}
	}
	if slot < 0 {
		slot = -slot
	}
	sp := s.spawns[slot%len(s.spawns)]
	return mgl64.Vec2{sp.X, sp.Y}
}

// Hazards returns the stage's hazard drop zones.
func (s *Stage) Hazards() []leveldata.HazardZone {
	return s.hazards
}

// SpawnCount is the number of spawn points defined by the stage.
func (s *Stage) SpawnCount() int {
	return len(s.spawns)
}
