package behavior

import (
	"math"
	"testing"

	"github.com/insiculous2d/engine/component"
	"github.com/insiculous2d/engine/ecs"
)

type fakeInput map[string]bool

func (f fakeInput) IsActionActive(action string) bool { return f[action] }

func TestPlayerTopDownSetsVelocityFromInput(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	ecs.Add(w, e, component.DefaultRigidBody())
	ecs.Add(w, e, component.Behavior{
		Kind:    component.PlayerTopDown,
		TopDown: &component.PlayerTopDownParams{MoveSpeed: 50},
	})

	Run(w, fakeInput{"move_right": true, "move_down": true}, 1.0/60)

	rb, _ := ecs.Get[component.RigidBody](w, e)
	if rb.VelocityX != 50 || rb.VelocityY != 50 {
		t.Errorf("velocity = (%v, %v), want (50, 50)", rb.VelocityX, rb.VelocityY)
	}
}

func TestPlayerTopDownZeroWithNoInput(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	ecs.Add(w, e, component.RigidBody{VelocityX: 10, VelocityY: 10})
	ecs.Add(w, e, component.Behavior{Kind: component.PlayerTopDown, TopDown: &component.PlayerTopDownParams{MoveSpeed: 50}})

	Run(w, fakeInput{}, 1.0/60)

	rb, _ := ecs.Get[component.RigidBody](w, e)
	if rb.VelocityX != 0 || rb.VelocityY != 0 {
		t.Errorf("velocity = (%v, %v), want (0, 0)", rb.VelocityX, rb.VelocityY)
	}
}

func TestChaseTaggedMovesToward(t *testing.T) {
	w := ecs.NewWorld()
	target := w.CreateEntity()
	ecs.Add(w, target, component.Transform2D{X: 100, ScaleX: 1, ScaleY: 1})
	ecs.Add(w, target, component.Name{Value: "player"})

	chaser := w.CreateEntity()
	ecs.Add(w, chaser, component.Transform2D{ScaleX: 1, ScaleY: 1})
	ecs.Add(w, chaser, component.Behavior{
		Kind:  component.ChaseTagged,
		Chase: &component.ChaseTaggedParams{Tag: "player", Speed: 30, StopRadius: 5},
	})

	Run(w, nil, 1.0)

	ct, _ := ecs.Get[component.Transform2D](w, chaser)
	if ct.X <= 0 || ct.X > 30.0001 {
		t.Errorf("chaser X = %v, want in (0, 30]", ct.X)
	}
}

func TestChaseTaggedStopsWithinRadius(t *testing.T) {
	w := ecs.NewWorld()
	target := w.CreateEntity()
	ecs.Add(w, target, component.Transform2D{X: 3, ScaleX: 1, ScaleY: 1})
	ecs.Add(w, target, component.Name{Value: "player"})

	chaser := w.CreateEntity()
	ecs.Add(w, chaser, component.Transform2D{ScaleX: 1, ScaleY: 1})
	ecs.Add(w, chaser, component.Behavior{
		Kind:  component.ChaseTagged,
		Chase: &component.ChaseTaggedParams{Tag: "player", Speed: 30, StopRadius: 5},
	})

	Run(w, nil, 1.0)

	ct, _ := ecs.Get[component.Transform2D](w, chaser)
	if ct.X != 0 {
		t.Errorf("chaser should not move within stop radius, X = %v", ct.X)
	}
}

func TestFollowEntityBecomesNoOpWhenTargetDestroyed(t *testing.T) {
	w := ecs.NewWorld()
	target := w.CreateEntity()
	ecs.Add(w, target, component.Transform2D{X: 50, ScaleX: 1, ScaleY: 1})

	follower := w.CreateEntity()
	ecs.Add(w, follower, component.Transform2D{ScaleX: 1, ScaleY: 1})
	ecs.Add(w, follower, component.Behavior{
		Kind:   component.FollowEntity,
		Follow: &component.FollowEntityParams{Target: uint64(target), LerpRate: 5},
	})

	w.Destroy(target)
	Run(w, nil, 1.0/60)

	ft, _ := ecs.Get[component.Transform2D](w, follower)
	if ft.X != 0 {
		t.Errorf("follower moved after target destroyed: X = %v", ft.X)
	}
}

func TestCollectibleDestroyedOnOverlap(t *testing.T) {
	w := ecs.NewWorld()
	collector := w.CreateEntity()
	ecs.Add(w, collector, component.Transform2D{ScaleX: 1, ScaleY: 1})
	ecs.Add(w, collector, component.Name{Value: "player"})

	item := w.CreateEntity()
	ecs.Add(w, item, component.Transform2D{ScaleX: 1, ScaleY: 1})
	ecs.Add(w, item, component.Behavior{
		Kind:        component.Collectible,
		Collectible: &component.CollectibleParams{Collector: "player", EventTag: "coin"},
	})

	Run(w, nil, 1.0/60)

	if w.Valid(item) {
		t.Error("collectible should be destroyed on overlap")
	}
}

func TestPatrolReversesAtWaypoint(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	ecs.Add(w, e, component.Transform2D{X: 10, ScaleX: 1, ScaleY: 1})
	ecs.Add(w, e, component.Behavior{
		Kind:   component.Patrol,
		Patrol: &component.PatrolParams{FromX: 0, ToX: 10, Speed: 100},
	})

	Run(w, nil, 1.0/60) // at ToX already; should snap and next tick head back

	pt, _ := ecs.Get[component.Transform2D](w, e)
	if math.Abs(pt.X-10) > 0.01 {
		t.Errorf("X = %v, want ~10", pt.X)
	}
}
