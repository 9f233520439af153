package systems

import (
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"

	"github.com/automoto/veggievengeance/components"
	cfg "github.com/automoto/veggievengeance/config"
	"github.com/automoto/veggievengeance/fighter"
	"github.com/automoto/veggievengeance/shared/gamemath"
	"github.com/automoto/veggievengeance/shared/leveldata"
	"github.com/automoto/veggievengeance/stage"
	"github.com/automoto/veggievengeance/systems/factory"
	"github.com/automoto/veggievengeance/tags"
)

// UpdateHazards drops knives from the stage's knife zones on a timer and
// moves the falling ones. A knife hurts every fighter it touches and breaks
// on the first fighter or solid platform it meets. Shelves let it through.
func UpdateHazards(w donburi.World, elapsedMs float64) {
	stageEntry, ok := components.Stage.First(w)
	if !ok {
		return
	}
	st := components.Stage.Get(stageEntry)

	dropKnives(w, st.Stage, components.Hazard.Get(stageEntry), elapsedMs)

	var toRemove []*donburi.Entry
	tags.Knife.Each(w, func(e *donburi.Entry) {
		knife := components.Knife.Get(e)
		obj := components.Object.Get(e)

		box := obj.Box()
		box.Y += knife.SpeedY * elapsedMs / 1000
		obj.SetBox(box)

		if box.Top() > st.Bounds().Bottom() {
			toRemove = append(toRemove, e)
			return
		}
		if checkKnifeCollisions(w, st.Stage, knife, box) {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		destroyKnife(w, e)
	}
}

func dropKnives(w donburi.World, st *stage.Stage, hazard *components.HazardData, elapsedMs float64) {
	var zones []leveldata.HazardZone
	for _, z := range st.Hazards() {
		if z.Kind == leveldata.HazardKnife {
			zones = append(zones, z)
		}
	}
	if len(zones) == 0 {
		return
	}

	hazard.TimerMs = gamemath.CountDown(hazard.TimerMs, elapsedMs)
	if hazard.TimerMs > 0 {
		return
	}
	zone := zones[hazard.Drops%len(zones)]
	factory.CreateKnife(w, zone.X+rng.Float64()*zone.W, zone.Y)
	hazard.Drops++
	hazard.TimerMs = cfg.Hazard.KnifeIntervalMs
}

// checkKnifeCollisions reports whether the knife broke this tick.
func checkKnifeCollisions(w donburi.World, st *stage.Stage, knife *components.KnifeData, box fighter.BoundingBox) bool {
	hit := false
	for _, obj := range st.Overlapping(box, tags.ResolvFighter) {
		target, ok := obj.Data.(*donburi.Entry)
		if !ok || !target.Valid() || !components.Fighter.Get(target).IsAlive() {
			continue
		}
		handleKnifeFighterHit(w, knife, target)
		hit = true
	}
	if hit {
		return true
	}
	return len(st.Overlapping(box, tags.ResolvSolid)) > 0
}

func handleKnifeFighterHit(w donburi.World, knife *components.KnifeData, target *donburi.Entry) {
	fd := components.Fighter.Get(target)
	before := fd.Health()
	fd.ApplyDamage(knife.Damage)
	if fd.Health() < before || !fd.IsAlive() {
		TriggerDamageFlash(target)
	}
	if fd.IsAlive() {
		return
	}

	logrus.WithFields(logrus.Fields{
		"target": fd.Slot,
		"hazard": leveldata.HazardKnife,
		"lives":  fd.Lives(),
	}).Info("Fighter KO")
	if m, ok := components.Match.First(w); ok {
		creditKO(components.Match.Get(m), fd.Slot, noSource)
	}
}

func destroyKnife(w donburi.World, e *donburi.Entry) {
	if st, ok := components.Stage.First(w); ok {
		components.Stage.Get(st).Space.Remove(components.Object.Get(e).Object)
	}
	w.Remove(e.Entity())
}

// ClearKnives removes every falling knife.
func ClearKnives(w donburi.World) {
	var all []*donburi.Entry
	tags.Knife.Each(w, func(e *donburi.Entry) {
		all = append(all, e)
	})
	for _, e := range all {
		destroyKnife(w, e)
	}
}
