package scenes

import (
	"fmt"
	"image/color"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/veggievengeance/assets"
	cfg "github.com/automoto/veggievengeance/config"
	"github.com/automoto/veggievengeance/stage"
	"github.com/automoto/veggievengeance/systems"
	"github.com/automoto/veggievengeance/systems/factory"
)

// SlotConfig describes one player slot.
type SlotConfig struct {
	Archetype     cfg.Archetype
	Name          string
	Bot           bool
	BotDifficulty cfg.BotDifficulty
}

// MatchConfig is everything the sandbox needs to start a match.
type MatchConfig struct {
	StageName string
	Slots     []SlotConfig
	// CharacterFile is the on-disk table the watcher reloads, if any.
	CharacterFile string
}

// Layer is the single render layer used by the sandbox.
const Layer ecs.LayerID = 0

type MatchScene struct {
	ecs         *ecs.ECS
	matchConfig MatchConfig
	watcher     *cfg.TableWatcher
	once        sync.Once
	err         error
}

// NewMatchScene creates the sandbox scene. watcher may be nil.
func NewMatchScene(matchConfig MatchConfig, watcher *cfg.TableWatcher) *MatchScene {
	return &MatchScene{matchConfig: matchConfig, watcher: watcher}
}

// Update advances the match by one frame. It returns the error that stopped
// the stage from loading, if any.
func (ms *MatchScene) Update() error {
	ms.once.Do(func() { ms.err = ms.configure() })
	if ms.err != nil {
		return ms.err
	}

	if ms.drainWatcher() {
		if ms.err = ms.configure(); ms.err != nil {
			return ms.err
		}
	}

	if anyKeyJustPressed(keysPause) {
		systems.TogglePause(ms.ecs.World)
	}
	if anyKeyJustPressed(keysReset) {
		systems.ResetMatch(ms.ecs.World)
	}
	if anyKeyJustPressed(keysBoxes) {
		cfg.Debug.DrawBoxes = !cfg.Debug.DrawBoxes
	}

	ms.ecs.Update()
	return nil
}

func (ms *MatchScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 30, 40, 255})
	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

// adapt runs a world system at the fixed sandbox step.
func adapt(system systems.System) ecs.System {
	return func(e *ecs.ECS) {
		system(e.World, cfg.Match.FrameMs)
	}
}

func (ms *MatchScene) configure() error {
	data, err := assets.LoadStage(ms.matchConfig.StageName)
	if err != nil {
		return err
	}
	if len(ms.matchConfig.Slots) == 0 {
		return fmt.Errorf("scenes: match needs at least one player slot")
	}

	e := ecs.NewECS(donburi.NewWorld())

	// Humans first so bots and humans reach the pipeline the same way.
	e.AddSystem(adapt(systems.WithGameplayChecks(UpdateLocalInput)))
	for _, system := range systems.Pipeline {
		e.AddSystem(adapt(system))
	}

	e.AddRenderer(Layer, DrawStage)
	e.AddRenderer(Layer, DrawProjectiles)
	e.AddRenderer(Layer, DrawKnives)
	e.AddRenderer(Layer, DrawFighters)
	e.AddRenderer(Layer, DrawHitboxes)
	e.AddRenderer(Layer, DrawHUD)
	e.AddRenderer(Layer, DrawMatchResult)
	e.AddRenderer(Layer, DrawPause)

	ms.ecs = e
	ms.spawn(stage.New(data))
	return nil
}

func (ms *MatchScene) spawn(st *stage.Stage) {
	w := ms.ecs.World
	factory.CreateStage(w, st)
	factory.CreateMatch(w)

	for i, slot := range ms.matchConfig.Slots {
		entry := factory.CreateFighter(w, factory.FighterSpec{
			Slot:      i,
			Archetype: slot.Archetype,
			Name:      slot.Name,
		})
		if slot.Bot {
			factory.AttachBot(entry, slot.BotDifficulty)
		}
	}
}

// drainWatcher swaps in a changed character table and reports whether the
// match must be rebuilt. Stats are read when fighters are created.
func (ms *MatchScene) drainWatcher() bool {
	if ms.watcher == nil {
		return false
	}
	reload := false
	for {
		select {
		case path, ok := <-ms.watcher.Events:
			if !ok {
				ms.watcher = nil
				return reload
			}
			if filepath.Clean(path) != filepath.Clean(ms.matchConfig.CharacterFile) {
				continue
			}
			table, err := cfg.LoadCharacterFile(path)
			if err != nil {
				logrus.WithError(err).WithField("path", path).Warn("Character table rejected")
				continue
			}
			cfg.Characters = table
			logrus.WithField("path", path).Info("Character table reloaded")
			reload = true
		case err, ok := <-ms.watcher.Errors:
			if !ok {
				ms.watcher = nil
				return reload
			}
			logrus.WithError(err).Warn("Character table watcher")
		default:
			return reload
		}
	}
}
