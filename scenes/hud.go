package scenes

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"

	"github.com/automoto/veggievengeance/components"
	cfg "github.com/automoto/veggievengeance/config"
	"github.com/automoto/veggievengeance/systems"
)

var hudFace text.Face = text.NewGoXFace(basicfont.Face7x13)

const hudLineHeight = 16

func drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = hudLineHeight
	text.Draw(screen, s, hudFace, op)
}

// DrawHUD prints one status line per fighter plus the match scores.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	var match *components.MatchData
	if m, ok := components.Match.First(e.World); ok {
		match = components.Match.Get(m)
	}

	y := 8.0
	for _, entry := range systems.FighterEntries(e.World) {
		fd := components.Fighter.Get(entry)
		state := components.State.Get(entry)

		line := fmt.Sprintf("P%d %-8s %-9s HP %3d/%-3d  lives %d  tank %4d  charge %4.1f  %s",
			fd.Slot+1, fd.Name(), fd.Archetype(), fd.Health(), fd.MaxHealth(),
			fd.Lives(), fd.BlockTank(), fd.PunchCharge(), state.CurrentState)
		if n := fd.EmojiCount(); n > 0 {
			line += fmt.Sprintf("  emojis %d", n)
		}
		if match != nil {
			score := match.GetPlayerScore(fd.Slot)
			line += fmt.Sprintf("  KO %d / %d", score.KOs, score.Deaths)
		}
		drawText(screen, line, 8, y, archetypeColors[fd.Archetype()])
		y += hudLineHeight
	}

	if match == nil {
		return
	}
	if leader, ok := match.Leader(); ok {
		drawText(screen, fmt.Sprintf("KO leader: P%d", leader+1), 8, y, cfg.Yellow)
	}
}

func DrawMatchResult(e *ecs.ECS, screen *ebiten.Image) {
	if !systems.IsMatchFinished(e.World) {
		return
	}
	msg := "DRAW"
	if w := systems.Winner(e.World); w >= 0 {
		msg = fmt.Sprintf("PLAYER %d WINS", w+1)
		if entry, ok := systems.FighterBySlot(e.World, w); ok {
			msg = fmt.Sprintf("%s WINS", strings.ToUpper(components.Fighter.Get(entry).Name()))
		}
	}
	drawBanner(screen, msg+"  -  F5 to restart")
}

func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	if !systems.IsPaused(e.World) {
		return
	}
	drawBanner(screen, "PAUSED")
}

func drawBanner(screen *ebiten.Image, msg string) {
	w, h := float32(cfg.C.Width), float32(cfg.C.Height)
	vector.DrawFilledRect(screen, 0, h/2-30, w, 60, cfg.BlackOverlay, false)
	x := float64(w)/2 - float64(len(msg)*basicfont.Face7x13.Advance)/2
	drawText(screen, msg, x, float64(h)/2-6, cfg.White)
}
