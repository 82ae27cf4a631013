package input

// Poller reports the current raw down/up state of a source and pointer
// data. The ebiten-backed implementation lives in device.go; State itself
// stays dependency-free so it can be driven by synthetic state in tests
// (mirroring teacher's inject.go synthetic pointer-injection approach,
// generalized from pointer events to arbitrary sources).
type Poller interface {
	IsSourceDown(s Source) bool
	MouseX() float64
	MouseY() float64
	WheelX() float64
	WheelY() float64
}

// State tracks per-source edge transitions for exactly one frame at a
// time: pressed (currently down), just_pressed (down this frame, up
// last), just_released (up this frame, down last) — SPEC_FULL.md §11.
type State struct {
	down    map[Source]bool
	wasDown map[Source]bool

	mouseX, mouseY float64
	wheelX, wheelY float64
}

// NewState returns an empty edge tracker.
func NewState() *State {
	return &State{down: make(map[Source]bool), wasDown: make(map[Source]bool)}
}

// BeginFrame computes this frame's edges from poller, to be called once in
// frame phase 1 (event ingest / input edge compute).
func (s *State) BeginFrame(tracked []Source, poller Poller) {
	for src := range s.down {
		s.wasDown[src] = s.down[src]
	}
	for _, src := range tracked {
		s.down[src] = poller.IsSourceDown(src)
		if _, ok := s.wasDown[src]; !ok {
			s.wasDown[src] = false
		}
	}
	s.mouseX, s.mouseY = poller.MouseX(), poller.MouseY()
	s.wheelX, s.wheelY = poller.WheelX(), poller.WheelY()
}

// EndFrame clears just_pressed/just_released by folding wasDown forward,
// and resets wheel accumulation (SPEC_FULL.md §6 step 9 / §4.7).
func (s *State) EndFrame() {
	for src, d := range s.down {
		s.wasDown[src] = d
	}
	s.wheelX, s.wheelY = 0, 0
}

// Pressed reports whether src is currently down.
func (s *State) Pressed(src Source) bool { return s.down[src] }

// JustPressed reports whether src transitioned from up to down this frame.
func (s *State) JustPressed(src Source) bool { return s.down[src] && !s.wasDown[src] }

// JustReleased reports whether src transitioned from down to up this
// frame.
func (s *State) JustReleased(src Source) bool { return !s.down[src] && s.wasDown[src] }

// MousePosition returns the last-seen logical mouse coordinate.
func (s *State) MousePosition() (float64, float64) { return s.mouseX, s.mouseY }

// WheelDelta returns this frame's accumulated mouse wheel delta.
func (s *State) WheelDelta() (float64, float64) { return s.wheelX, s.wheelY }
