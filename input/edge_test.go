package input

import "testing"

func TestJustPressedOnlyFiresOnTransitionFrame(t *testing.T) {
	s := NewState()
	poller := newFakePoller()
	key := KeySource(1)
	tracked := []Source{key}

	s.BeginFrame(tracked, poller)
	if s.JustPressed(key) {
		t.Error("JustPressed before any press, want false")
	}
	s.EndFrame()

	poller.down[key] = true
	s.BeginFrame(tracked, poller)
	if !s.JustPressed(key) {
		t.Error("JustPressed on first down frame, want true")
	}
	if !s.Pressed(key) {
		t.Error("Pressed on first down frame, want true")
	}
	s.EndFrame()

	s.BeginFrame(tracked, poller)
	if s.JustPressed(key) {
		t.Error("JustPressed on second held frame, want false")
	}
	if !s.Pressed(key) {
		t.Error("Pressed while held, want true")
	}
	s.EndFrame()
}

func TestJustReleasedFiresOnceOnUpTransition(t *testing.T) {
	s := NewState()
	poller := newFakePoller()
	key := KeySource(2)
	tracked := []Source{key}

	poller.down[key] = true
	s.BeginFrame(tracked, poller)
	s.EndFrame()

	poller.down[key] = false
	s.BeginFrame(tracked, poller)
	if !s.JustReleased(key) {
		t.Error("JustReleased on up transition frame, want true")
	}
	s.EndFrame()

	s.BeginFrame(tracked, poller)
	if s.JustReleased(key) {
		t.Error("JustReleased on subsequent up frame, want false")
	}
}

func TestWheelResetsEachFrame(t *testing.T) {
	s := NewState()
	poller := newFakePoller()
	poller.wy = 5

	s.BeginFrame(nil, poller)
	_, wy := s.WheelDelta()
	if wy != 5 {
		t.Errorf("WheelDelta().y = %v, want 5", wy)
	}
	s.EndFrame()
	_, wy = s.WheelDelta()
	if wy != 0 {
		t.Errorf("WheelDelta().y after EndFrame = %v, want 0", wy)
	}
}
