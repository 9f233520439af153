package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/veggievengeance/components"
	cfg "github.com/automoto/veggievengeance/config"
	"github.com/automoto/veggievengeance/fighter"
	"github.com/automoto/veggievengeance/tags"
)

var archetypeColors = map[cfg.Archetype]color.RGBA{
	cfg.ArchetypePotato:   cfg.Brown,
	cfg.ArchetypeBroccoli: cfg.Green,
	cfg.ArchetypeEggplant: cfg.Purple,
	cfg.ArchetypeYam:      cfg.Orange,
}

var attackColors = map[fighter.AttackKind]color.RGBA{
	fighter.AttackPunch:      {255, 255, 0, 100},
	fighter.AttackPowerPunch: {255, 128, 0, 120},
	fighter.AttackUppercut:   {0, 255, 0, 100},
	fighter.AttackDash:       {255, 140, 0, 80},
	fighter.AttackBomb:       {255, 0, 0, 120},
}

var (
	platformColor    = color.RGBA{90, 70, 50, 255}
	passThroughColor = color.RGBA{150, 120, 80, 255}
	knifeColor       = color.RGBA{200, 200, 210, 255}
)

func fillBox(screen *ebiten.Image, b fighter.BoundingBox, clr color.Color) {
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), clr, false)
}

func strokeBox(screen *ebiten.Image, b fighter.BoundingBox, width float32, clr color.Color) {
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), width, clr, false)
}

// tint multiplies a color by a flash's channel multipliers.
func tint(c color.RGBA, f *components.FlashData) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * f.R),
		G: uint8(float32(c.G) * f.G),
		B: uint8(float32(c.B) * f.B),
		A: c.A,
	}
}

func DrawStage(e *ecs.ECS, screen *ebiten.Image) {
	stageEntry, ok := components.Stage.First(e.World)
	if !ok {
		return
	}
	for _, p := range components.Stage.Get(stageEntry).Platforms() {
		clr := platformColor
		if p.PassThrough {
			clr = passThroughColor
		}
		fillBox(screen, p.Box, clr)
	}
}

func DrawFighters(e *ecs.ECS, screen *ebiten.Image) {
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		fd := components.Fighter.Get(entry)
		if fd.IsEliminated() || fd.IsRespawning() {
			return
		}
		box := fd.BoundingBox()

		// Landing squash keeps the feet planted.
		squashed := box
		squashed.H = box.H * fd.Scale.Y()
		squashed.Y = box.Bottom() - squashed.H

		clr := tint(archetypeColors[fd.Archetype()], components.Flash.Get(entry))
		if fd.IsTiredOut() {
			clr = cfg.Gray
		}
		fillBox(screen, squashed, clr)

		if glow := fd.HealAnimation(); glow > 0 {
			c := cfg.LightGreen
			c.A = uint8(200 * glow)
			fillBox(screen, squashed, c)
		}
		if fd.IsBlocking() {
			strokeBox(screen, squashed, 3, cfg.Blue)
		}

		// Facing marker
		eye := fighter.BoundingBox{X: box.Right() - 14, Y: box.Top() + 12, W: 8, H: 8}
		if fd.Facing() < 0 {
			eye.X = box.Left() + 6
		}
		fillBox(screen, eye, cfg.White)
	})
}

func DrawProjectiles(e *ecs.ECS, screen *ebiten.Image) {
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		fd := components.Fighter.Get(entry)
		base := archetypeColors[fd.Archetype()]
		for _, p := range fd.Projectiles() {
			clr := base
			if p.Kind == fighter.AttackBomb {
				clr = cfg.Red
			}
			fillBox(screen, p.Box, clr)
			strokeBox(screen, p.Box, 1, cfg.White)
		}
	})
}

func DrawKnives(e *ecs.ECS, screen *ebiten.Image) {
	tags.Knife.Each(e.World, func(entry *donburi.Entry) {
		box := components.Object.Get(entry).Box()
		fillBox(screen, box, knifeColor)

		// Handle
		handle := box
		handle.H = box.H / 3
		fillBox(screen, handle, cfg.Brown)
	})
}

func DrawHitboxes(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawBoxes {
		return
	}
	tags.Hitbox.Each(e.World, func(entry *donburi.Entry) {
		hitbox := components.Hitbox.Get(entry)
		clr, ok := attackColors[hitbox.Attack.Kind]
		if !ok {
			clr = color.RGBA{255, 0, 255, 100} // Magenta (Debug)
		}
		fillBox(screen, components.Object.Get(entry).Box(), clr)
	})
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		strokeBox(screen, components.Object.Get(entry).Box(), 1, cfg.Yellow)
	})
}
