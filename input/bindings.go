package input

// Bindings maps action identifiers to the set of sources that activate
// them. Binding a source to a new action displaces any prior action bound
// to that source and removes the old action's entry once it has no
// sources left, per SPEC_FULL.md §11.
type Bindings struct {
	actionToSources map[string]map[Source]bool
	sourceToAction  map[Source]string
}

// NewBindings returns an empty binding table.
func NewBindings() *Bindings {
	return &Bindings{
		actionToSources: make(map[string]map[Source]bool),
		sourceToAction:  make(map[Source]string),
	}
}

// Bind associates src with action, displacing any action src was
// previously bound to.
func (b *Bindings) Bind(action string, src Source) {
	if prevAction, ok := b.sourceToAction[src]; ok {
		if prevAction == action {
			return
		}
		delete(b.actionToSources[prevAction], src)
		if len(b.actionToSources[prevAction]) == 0 {
			delete(b.actionToSources, prevAction)
		}
	}
	if b.actionToSources[action] == nil {
		b.actionToSources[action] = make(map[Source]bool)
	}
	b.actionToSources[action][src] = true
	b.sourceToAction[src] = action
}

// Unbind removes src from whatever action it is bound to, if any.
func (b *Bindings) Unbind(src Source) {
	action, ok := b.sourceToAction[src]
	if !ok {
		return
	}
	delete(b.sourceToAction, src)
	delete(b.actionToSources[action], src)
	if len(b.actionToSources[action]) == 0 {
		delete(b.actionToSources, action)
	}
}

// Sources returns every source currently bound to action.
func (b *Bindings) Sources(action string) []Source {
	set := b.actionToSources[action]
	out := make([]Source, 0, len(set))
	for src := range set {
		out = append(out, src)
	}
	return out
}

// Resolver answers action-level queries against a State using a Bindings
// table, implementing behavior.Input.
type Resolver struct {
	State    *State
	Bindings *Bindings
}

// NewResolver pairs a State with a Bindings table.
func NewResolver(state *State, bindings *Bindings) *Resolver {
	return &Resolver{State: state, Bindings: bindings}
}

// IsActionActive reports whether any source bound to action is pressed.
func (r *Resolver) IsActionActive(action string) bool {
	return r.any(action, r.State.Pressed)
}

// IsActionJustActivated reports whether any source bound to action just
// transitioned down this frame.
func (r *Resolver) IsActionJustActivated(action string) bool {
	return r.any(action, r.State.JustPressed)
}

// IsActionJustReleased reports whether any source bound to action just
// transitioned up this frame.
func (r *Resolver) IsActionJustReleased(action string) bool {
	return r.any(action, r.State.JustReleased)
}

func (r *Resolver) any(action string, pred func(Source) bool) bool {
	for _, src := range r.Bindings.Sources(action) {
		if pred(src) {
			return true
		}
	}
	return false
}
