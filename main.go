package main

import (
	"flag"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/automoto/veggievengeance/config"
	"github.com/automoto/veggievengeance/scenes"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(matchConfig scenes.MatchConfig, watcher *config.TableWatcher) *Game {
	return &Game{
		scene: scenes.NewMatchScene(matchConfig, watcher),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func parseSlot(flagName, archetype, name string) scenes.SlotConfig {
	a, err := config.ParseArchetype(archetype)
	if err != nil {
		logrus.WithError(err).Fatalf("invalid -%s", flagName)
	}
	return scenes.SlotConfig{Archetype: a, Name: name}
}

func main() {
	stageName := flag.String("stage", "kitchen", "bundled stage to load")
	p1 := flag.String("p1", "potato", "player one archetype (potato, broccoli, eggplant, yam)")
	p2 := flag.String("p2", "broccoli", "player two archetype")
	p1Name := flag.String("p1-name", "", "player one display name")
	p2Name := flag.String("p2-name", "", "player two display name")
	bot := flag.String("bot", "", "let a bot drive player two (easy, normal, hard)")
	characters := flag.String("characters", "", "character table YAML to use instead of the bundled one")
	watch := flag.Bool("watch", config.Debug.WatchTables, "reload -characters when it changes on disk")
	debug := flag.Bool("debug", false, "debug logging and hitbox drawing")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	config.Debug.DrawBoxes = *debug
	config.Debug.WatchTables = *watch
	if *debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	matchConfig := scenes.MatchConfig{
		StageName: *stageName,
		Slots: []scenes.SlotConfig{
			parseSlot("p1", *p1, *p1Name),
			parseSlot("p2", *p2, *p2Name),
		},
		CharacterFile: *characters,
	}

	if *bot != "" {
		difficulty, ok := config.ParseBotDifficulty(*bot)
		if !ok {
			logrus.Fatalf("invalid -bot %q", *bot)
		}
		matchConfig.Slots[1].Bot = true
		matchConfig.Slots[1].BotDifficulty = difficulty
	}

	var watcher *config.TableWatcher
	if *characters != "" {
		table, err := config.LoadCharacterFile(*characters)
		if err != nil {
			logrus.WithError(err).Fatal("Failed to load character table")
		}
		config.Characters = table
		logrus.WithField("path", *characters).Info("Loaded character table")

		if config.Debug.WatchTables {
			watcher, err = config.NewTableWatcher(filepath.Dir(*characters))
			if err != nil {
				logrus.WithError(err).Fatal("Failed to watch character table")
			}
			defer watcher.Close()
		}
	} else if config.Debug.WatchTables {
		logrus.Warn("-watch needs -characters; hot reload disabled")
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Veggie Vengeance")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(matchConfig, watcher)); err != nil {
		logrus.WithError(err).Fatal("Game stopped")
	}
}
