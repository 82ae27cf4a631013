package input

type fakePoller struct {
	down map[Source]bool
	mx, my float64
	wx, wy float64
}

func newFakePoller() *fakePoller {
	return &fakePoller{down: make(map[Source]bool)}
}

func (f *fakePoller) IsSourceDown(s Source) bool { return f.down[s] }
func (f *fakePoller) MouseX() float64            { return f.mx }
func (f *fakePoller) MouseY() float64            { return f.my }
func (f *fakePoller) WheelX() float64            { return f.wx }
func (f *fakePoller) WheelY() float64            { return f.wy }
