// Package input polls ebiten's keyboard, mouse, touch and gamepads into
// the per-frame snapshots the gameplay systems consume.
package input

import (
	cfg "github.com/automoto/skyball/config"
	"github.com/automoto/skyball/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Device reads the real input devices. It satisfies systems.InputSource.
type Device struct {
	// ToWorldX maps a screen x coordinate into the world. Nil means the
	// screen and the world line up.
	ToWorldX func(screenX int) float64

	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
}

func NewDevice() *Device {
	return &Device{}
}

func (d *Device) Poll() systems.InputSnapshot {
	var snap systems.InputSnapshot

	d.gamepadIDs = ebiten.AppendGamepadIDs(d.gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				snap.Actions[actionID] = true
			}
		}
		for _, gpID := range d.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					snap.Actions[actionID] = true
				}
			}
		}
	}

	left, right := d.analogStick()
	if left {
		snap.Actions[cfg.ActionMoveLeft] = true
	}
	if right {
		snap.Actions[cfg.ActionMoveRight] = true
	}

	if x, ok := d.pointer(); ok {
		snap.Clicked = true
		snap.ClickX = d.worldX(x)
	}
	return snap
}

// pointer returns where the mouse is held down or a touch just began.
func (d *Device) pointer() (int, bool) {
	if ebiten.IsMouseButtonPressed(cfg.Input.MoveButton) {
		x, _ := ebiten.CursorPosition()
		return x, true
	}
	d.touchIDs = inpututil.AppendJustPressedTouchIDs(d.touchIDs[:0])
	if len(d.touchIDs) > 0 {
		x, _ := ebiten.TouchPosition(d.touchIDs[0])
		return x, true
	}
	return 0, false
}

func (d *Device) worldX(screenX int) float64 {
	if d.ToWorldX != nil {
		return d.ToWorldX(screenX)
	}
	return float64(screenX)
}

// analogStick reads the left stick of every standard gamepad.
func (d *Device) analogStick() (left, right bool) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range d.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -deadzone {
			left = true
		}
		if horizontal > deadzone {
			right = true
		}
	}
	return
}

// Script replays a fixed list of snapshots, one per Poll, then nothing.
// Headless runs and tests drive the game with it.
type Script struct {
	Frames []systems.InputSnapshot
	next   int
}

func (s *Script) Poll() systems.InputSnapshot {
	if s.next >= len(s.Frames) {
		return systems.InputSnapshot{}
	}
	snap := s.Frames[s.next]
	s.next++
	return snap
}

// Press returns a snapshot holding the given actions.
func Press(actions ...cfg.ActionID) systems.InputSnapshot {
	var snap systems.InputSnapshot
	for _, a := range actions {
		snap.Actions[a] = true
	}
	return snap
}
