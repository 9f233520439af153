package systems

import (
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"

	"github.com/automoto/veggievengeance/components"
	cfg "github.com/automoto/veggievengeance/config"
	"github.com/automoto/veggievengeance/tags"
)

// System advances one part of the match world by elapsedMs.
type System func(w donburi.World, elapsedMs float64)

// WithPauseCheck wraps a system to skip execution when the match is paused.
func WithPauseCheck(system System) System {
	return func(w donburi.World, elapsedMs float64) {
		if IsPaused(w) {
			return
		}
		system(w, elapsedMs)
	}
}

// WithMatchCheck wraps a system to skip execution once the match is over.
func WithMatchCheck(system System) System {
	return func(w donburi.World, elapsedMs float64) {
		if m, ok := components.Match.First(w); ok {
			if components.Match.Get(m).State == cfg.MatchStateFinished {
				return
			}
		}
		system(w, elapsedMs)
	}
}

// WithGameplayChecks combines the checks every gameplay system needs.
func WithGameplayChecks(system System) System {
	return WithPauseCheck(WithMatchCheck(system))
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(w donburi.World) *components.PauseData {
	if _, ok := components.Pause.First(w); !ok {
		ent := w.Entry(w.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{})
	}

	ent, _ := components.Pause.First(w)
	return components.Pause.Get(ent)
}

func IsPaused(w donburi.World) bool {
	if ent, ok := components.Pause.First(w); ok {
		return components.Pause.Get(ent).IsPaused
	}
	return false
}

// SetPaused pauses or resumes the match and every fighter in it.
func SetPaused(w donburi.World, paused bool) {
	pause := GetOrCreatePause(w)
	if pause.IsPaused == paused {
		return
	}
	pause.IsPaused = paused
	tags.Fighter.Each(w, func(e *donburi.Entry) {
		components.Fighter.Get(e).SetPaused(paused)
	})
	logrus.WithField("paused", paused).Info("Match pause toggled")
}

func TogglePause(w donburi.World) {
	SetPaused(w, !IsPaused(w))
}
