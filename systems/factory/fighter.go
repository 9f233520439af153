package factory

import (
	"github.com/sirupsen/logrus"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/automoto/veggievengeance/archetypes"
	"github.com/automoto/veggievengeance/components"
	cfg "github.com/automoto/veggievengeance/config"
	"github.com/automoto/veggievengeance/fighter"
	"github.com/automoto/veggievengeance/tags"
)

// FighterSpec describes one fighter entering the match.
type FighterSpec struct {
	Slot      int
	Archetype cfg.Archetype
	Name      string
	// Stats overrides the character table entry.
	Stats *cfg.CharacterStats
}

// CreateFighter spawns a fighter on the stage at the spawn point for its
// slot. The fighter ID is the slot.
func CreateFighter(w donburi.World, spec FighterSpec) *donburi.Entry {
	stageEntry, ok := components.Stage.First(w)
	if !ok {
		panic("factory: CreateFighter called before CreateStage")
	}
	st := components.Stage.Get(stageEntry)

	entry := archetypes.Fighter.Spawn(w)
	f := fighter.New(fighter.Params{
		ID:        spec.Slot,
		Name:      spec.Name,
		Archetype: spec.Archetype,
		Spawn:     st.Spawn(spec.Slot),
		Stats:     spec.Stats,
		Logger:    logrus.WithField("slot", spec.Slot),
	})
	components.Fighter.SetValue(entry, components.FighterData{Fighter: f, Slot: spec.Slot})
	components.PlayerInput.SetValue(entry, components.PlayerInputData{PlayerIndex: spec.Slot})

	box := f.BoundingBox()
	obj := resolv.NewObject(box.X, box.Y, box.W, box.H, tags.ResolvFighter)
	obj.SetShape(resolv.NewRectangle(0, 0, box.W, box.H))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	st.Space.Add(obj)

	components.State.SetValue(entry, components.StateData{
		CurrentState:  f.State(),
		PreviousState: cfg.StateNone,
	})
	// Permanently attached to avoid archetype thrashing
	components.Flash.SetValue(entry, components.FlashData{R: 1, G: 1, B: 1})

	if m, ok := components.Match.First(w); ok {
		components.Match.Get(m).GetPlayerScore(spec.Slot)
	}
	return entry
}

// AttachBot hands a fighter's input over to the bot AI.
func AttachBot(entry *donburi.Entry, difficulty cfg.BotDifficulty) {
	donburi.Add(entry, components.Bot, &components.BotData{
		Difficulty: difficulty,
		TargetSlot: -1,
	})
}
