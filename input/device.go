package input

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenPoller implements Poller over ebiten's polling API. inpututil's
// IsKeyJustPressed/IsKeyJustReleased idiom is mirrored here at the raw
// level (IsKeyPressed) since State itself computes edges — ebiten is
// polled once per frame for "is it down right now" and State derives
// pressed/just_pressed/just_released from that, per SPEC_FULL.md §11.
type EbitenPoller struct{}

func (EbitenPoller) IsSourceDown(s Source) bool {
	switch s.Kind {
	case SourceKey:
		return ebiten.IsKeyPressed(ebiten.Key(s.Key))
	case SourceMouseButton:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButton(s.MouseButton))
	case SourceGamepadButton:
		ids := ebiten.AppendGamepadIDs(nil)
		for _, id := range ids {
			if int(id) == s.GamepadID {
				return ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButton(s.GamepadButton))
			}
		}
		return false
	default:
		return false
	}
}

func (EbitenPoller) MouseX() float64 {
	x, _ := ebiten.CursorPosition()
	return float64(x)
}

func (EbitenPoller) MouseY() float64 {
	_, y := ebiten.CursorPosition()
	return float64(y)
}

func (EbitenPoller) WheelX() float64 {
	x, _ := ebiten.Wheel()
	return x
}

func (EbitenPoller) WheelY() float64 {
	_, y := ebiten.Wheel()
	return y
}
