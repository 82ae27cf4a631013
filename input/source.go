// Package input implements per-frame edge detection over raw device state
// and an action-binding layer on top of it (SPEC_FULL.md §11). Edge
// detection follows ebiten's own inpututil idiom (IsKeyJustPressed-style
// queries); the composition of per-pointer edge state mirrors teacher
// phanxgames/willow's pointerState (input.go), adapted from pointer-drag
// tracking to generic (key, mouse button, gamepad button) sources.
package input

// SourceKind tags which field of Source is populated.
type SourceKind int

const (
	SourceKey SourceKind = iota
	SourceMouseButton
	SourceGamepadButton
)

// Source identifies one raw input control: a keyboard key, a mouse button,
// or a gamepad button. Gamepad sources carry a gamepad index since more
// than one pad may be connected.
type Source struct {
	Kind         SourceKind
	Key          int // ebiten.Key ordinal
	MouseButton  int // ebiten.MouseButton ordinal
	GamepadID    int
	GamepadButton int // ebiten.GamepadButton ordinal
}

// KeySource builds a keyboard Source.
func KeySource(key int) Source { return Source{Kind: SourceKey, Key: key} }

// MouseButtonSource builds a mouse-button Source.
func MouseButtonSource(button int) Source { return Source{Kind: SourceMouseButton, MouseButton: button} }

// GamepadButtonSource builds a gamepad-button Source for a specific pad.
func GamepadButtonSource(gamepadID, button int) Source {
	return Source{Kind: SourceGamepadButton, GamepadID: gamepadID, GamepadButton: button}
}
