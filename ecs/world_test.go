package ecs

import "testing"

type position struct{ X, Y float64 }
type velocity struct{ X, Y float64 }
type tag struct{}

func TestCreateEntityNeverReturnsNilEntity(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 8; i++ {
		if id := w.CreateEntity(); id == NilEntity {
			t.Fatalf("CreateEntity returned NilEntity on iteration %d", i)
		}
	}
}

func TestDestroyBumpsGenerationOnReuse(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	w.Destroy(a)
	b := w.CreateEntity()

	if a.index() != b.index() {
		t.Fatalf("expected index reuse, got %d and %d", a.index(), b.index())
	}
	if a.generation() == b.generation() {
		t.Errorf("generation not bumped on reuse: both %d", a.generation())
	}
	if w.Valid(a) {
		t.Error("stale id a should be invalid after reuse")
	}
	if !w.Valid(b) {
		t.Error("fresh id b should be valid")
	}
}

func TestAddGetRemove(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()

	if Has[position](w, e) {
		t.Fatal("position should not be present before Add")
	}
	if err := Add(w, e, position{X: 1, Y: 2}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	p, err := Get[position](w, e)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.X != 1 || p.Y != 2 {
		t.Errorf("position = %+v, want {1 2}", *p)
	}

	p.X = 99 // Get returns a live pointer
	p2, _ := Get[position](w, e)
	if p2.X != 99 {
		t.Errorf("mutation through Get pointer not observed: X = %v", p2.X)
	}

	if err := Remove[position](w, e); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if Has[position](w, e) {
		t.Error("position still present after Remove")
	}
}

func TestGetOnDeadEntity(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.Destroy(e)

	if _, err := Get[position](w, e); err != ErrNoSuchEntity {
		t.Errorf("Get on dead entity = %v, want ErrNoSuchEntity", err)
	}
	if err := Add(w, e, position{}); err != ErrNoSuchEntity {
		t.Errorf("Add on dead entity = %v, want ErrNoSuchEntity", err)
	}
}

func TestGetMissingComponent(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	if _, err := Get[position](w, e); err != ErrComponentMissing {
		t.Errorf("Get missing component = %v, want ErrComponentMissing", err)
	}
}

func TestSwapRemoveKeepsOtherEntitiesIntact(t *testing.T) {
	w := NewWorld()
	ids := make([]EntityID, 5)
	for i := range ids {
		ids[i] = w.CreateEntity()
		Add(w, ids[i], position{X: float64(i)})
	}

	w.Destroy(ids[1]) // mid-column removal triggers swap-remove

	for i, id := range ids {
		if i == 1 {
			continue
		}
		p, err := Get[position](w, id)
		if err != nil {
			t.Fatalf("entity %d lost its component after sibling destroy: %v", i, err)
		}
		if p.X != float64(i) {
			t.Errorf("entity %d: X = %v, want %v", i, p.X, i)
		}
	}
}

func TestEntitiesListOmitsDestroyed(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	b := w.CreateEntity()
	w.Destroy(a)

	live := w.Entities()
	if len(live) != 1 || live[0] != b {
		t.Errorf("Entities() = %v, want [%v]", live, b)
	}
}

func TestClearResetsWorld(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	Add(w, e, position{X: 1})
	w.Clear()

	if len(w.Entities()) != 0 {
		t.Errorf("Entities() after Clear = %v, want empty", w.Entities())
	}
	fresh := w.CreateEntity()
	if fresh.index() != 1 {
		t.Errorf("first entity after Clear has index %d, want 1", fresh.index())
	}
}
