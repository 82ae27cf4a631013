package ui

import (
	"testing"

	"github.com/insiculous2d/engine/component"
)

func TestRectRecordsNoClipByDefault(t *testing.T) {
	b := NewBuilder()
	b.Rect(10, 20, 30, 40, component.White, 0)

	cmds := b.Commands()
	if len(cmds) != 1 {
		t.Fatalf("len(cmds) = %d, want 1", len(cmds))
	}
	if cmds[0].Clip != nil {
		t.Error("Clip should be nil with no PushClipRect")
	}
	if cmds[0].X != 10 || cmds[0].W != 30 {
		t.Errorf("cmd = %+v, want X=10 W=30", cmds[0])
	}
}

func TestPushClipRectAppliesToSubsequentCommands(t *testing.T) {
	b := NewBuilder()
	b.PushClipRect(LogicalRect{X: 0, Y: 0, W: 100, H: 100})
	b.Rect(0, 0, 10, 10, component.White, 0)
	b.PopClipRect()
	b.Rect(0, 0, 10, 10, component.White, 0)

	cmds := b.Commands()
	if cmds[0].Clip == nil {
		t.Error("first rect should have a clip rect")
	}
	if cmds[1].Clip != nil {
		t.Error("second rect should have no clip after PopClipRect")
	}
}

func TestPushClipRectIntersectsNested(t *testing.T) {
	b := NewBuilder()
	b.PushClipRect(LogicalRect{X: 0, Y: 0, W: 100, H: 100})
	b.PushClipRect(LogicalRect{X: 50, Y: 50, W: 100, H: 100})
	b.Rect(0, 0, 1, 1, component.White, 0)

	clip := b.Commands()[0].Clip
	if clip == nil {
		t.Fatal("expected a clip rect")
	}
	want := LogicalRect{X: 50, Y: 50, W: 50, H: 50}
	if *clip != want {
		t.Errorf("clip = %+v, want %+v", *clip, want)
	}
}

func TestPopClipRectOnEmptyStackIsNoop(t *testing.T) {
	b := NewBuilder()
	b.PopClipRect()
	b.Rect(0, 0, 1, 1, component.White, 0)
	if b.Commands()[0].Clip != nil {
		t.Error("Clip should remain nil after popping an empty stack")
	}
}

func TestResetClearsCommandsAndClipStack(t *testing.T) {
	b := NewBuilder()
	b.PushClipRect(LogicalRect{W: 10, H: 10})
	b.Rect(0, 0, 1, 1, component.White, 0)
	b.Reset()

	if len(b.Commands()) != 0 {
		t.Error("Commands should be empty after Reset")
	}
	b.Rect(0, 0, 1, 1, component.White, 0)
	if b.Commands()[0].Clip != nil {
		t.Error("clip stack should also be cleared by Reset")
	}
}
