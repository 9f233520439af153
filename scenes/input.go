package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"

	"github.com/automoto/veggievengeance/components"
	"github.com/automoto/veggievengeance/fighter"
	"github.com/automoto/veggievengeance/tags"
)

// ActionID represents a logical fighter action
type ActionID int

const (
	ActionMoveLeft ActionID = iota
	ActionMoveRight
	ActionJump
	ActionCrouch
	ActionBlock
	ActionPunch
	ActionPowerPunch
	ActionAbility1
	ActionAbility2
	ActionPassThrough
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// ControlScheme binds every action for one player.
type ControlScheme [ActionCount]InputBinding

// gamepadButtons are shared by every scheme; the gamepad is picked by slot.
var gamepadButtons = [ActionCount][]ebiten.StandardGamepadButton{
	ActionMoveLeft:    {ebiten.StandardGamepadButtonLeftLeft},
	ActionMoveRight:   {ebiten.StandardGamepadButtonLeftRight},
	ActionJump:        {ebiten.StandardGamepadButtonRightBottom},
	ActionCrouch:      {ebiten.StandardGamepadButtonLeftBottom},
	ActionBlock:       {ebiten.StandardGamepadButtonFrontTopLeft},
	ActionPunch:       {ebiten.StandardGamepadButtonRightLeft},
	ActionPowerPunch:  {ebiten.StandardGamepadButtonRightTop},
	ActionAbility1:    {ebiten.StandardGamepadButtonRightRight},
	ActionAbility2:    {ebiten.StandardGamepadButtonFrontTopRight},
	ActionPassThrough: {ebiten.StandardGamepadButtonFrontBottomLeft},
}

func newScheme(keys [ActionCount][]ebiten.Key) ControlScheme {
	var s ControlScheme
	for i := range s {
		s[i] = InputBinding{Keys: keys[i], StandardGamepadButtons: gamepadButtons[i]}
	}
	return s
}

// SchemeWASD is player one's keyboard layout.
var SchemeWASD = newScheme([ActionCount][]ebiten.Key{
	ActionMoveLeft:    {ebiten.KeyA},
	ActionMoveRight:   {ebiten.KeyD},
	ActionJump:        {ebiten.KeyW},
	ActionCrouch:      {ebiten.KeyS},
	ActionBlock:       {ebiten.KeyShiftLeft},
	ActionPunch:       {ebiten.KeyF},
	ActionPowerPunch:  {ebiten.KeyG},
	ActionAbility1:    {ebiten.KeyR},
	ActionAbility2:    {ebiten.KeyT},
	ActionPassThrough: {ebiten.KeyQ},
})

// SchemeArrows is player two's keyboard layout.
var SchemeArrows = newScheme([ActionCount][]ebiten.Key{
	ActionMoveLeft:    {ebiten.KeyArrowLeft},
	ActionMoveRight:   {ebiten.KeyArrowRight},
	ActionJump:        {ebiten.KeyArrowUp},
	ActionCrouch:      {ebiten.KeyArrowDown},
	ActionBlock:       {ebiten.KeyShiftRight},
	ActionPunch:       {ebiten.KeyNumpad1, ebiten.KeyJ},
	ActionPowerPunch:  {ebiten.KeyNumpad2, ebiten.KeyK},
	ActionAbility1:    {ebiten.KeyNumpad4, ebiten.KeyU},
	ActionAbility2:    {ebiten.KeyNumpad5, ebiten.KeyI},
	ActionPassThrough: {ebiten.KeyNumpad0, ebiten.KeyM},
})

var schemes = []ControlScheme{SchemeWASD, SchemeArrows}

// Global sandbox keys.
var (
	keysPause = []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}
	keysReset = []ebiten.Key{ebiten.KeyF5}
	keysBoxes = []ebiten.Key{ebiten.KeyF1}
)

func anyKeyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (b InputBinding) pressed(gamepad ebiten.GamepadID, hasGamepad bool) bool {
	for _, k := range b.Keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	if !hasGamepad || !ebiten.IsStandardGamepadLayoutAvailable(gamepad) {
		return false
	}
	for _, btn := range b.StandardGamepadButtons {
		if ebiten.IsStandardGamepadButtonPressed(gamepad, btn) {
			return true
		}
	}
	return false
}

// readIntent samples the held state of every action in a scheme.
func readIntent(s ControlScheme, gamepad ebiten.GamepadID, hasGamepad bool) fighter.Intent {
	held := func(a ActionID) bool { return s[a].pressed(gamepad, hasGamepad) }
	return fighter.Intent{
		MoveLeft:    held(ActionMoveLeft),
		MoveRight:   held(ActionMoveRight),
		Jump:        held(ActionJump),
		Crouch:      held(ActionCrouch),
		Block:       held(ActionBlock),
		Punch:       held(ActionPunch),
		PowerPunch:  held(ActionPowerPunch),
		Ability1:    held(ActionAbility1),
		Ability2:    held(ActionAbility2),
		PassThrough: held(ActionPassThrough),
	}
}

// UpdateLocalInput writes keyboard and gamepad intents for every human
// fighter. Player slot n uses scheme n and the n-th connected gamepad.
func UpdateLocalInput(w donburi.World, _ float64) {
	gamepads := ebiten.AppendGamepadIDs(nil)

	tags.Fighter.Each(w, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Bot) {
			return
		}
		input := components.PlayerInput.Get(entry)
		slot := input.PlayerIndex
		if slot < 0 || slot >= len(schemes) {
			return
		}
		var pad ebiten.GamepadID
		hasPad := slot < len(gamepads)
		if hasPad {
			pad = gamepads[slot]
		}
		input.Intent = readIntent(schemes[slot], pad, hasPad)
	})
}
