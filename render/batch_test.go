package render

import (
	"testing"

	"github.com/insiculous2d/engine/component"
)

func TexRegionAt(u float32) component.TexRegion {
	return component.TexRegion{U: u}
}

func TestSortAndBatchOrdersByDepthThenTexture(t *testing.T) {
	cmds := []Command{
		{TextureHandle: 2, Depth: 1},
		{TextureHandle: 1, Depth: 5},
		{TextureHandle: 3, Depth: 5},
		{TextureHandle: 1, Depth: 1},
	}

	batches := SortAndBatch(cmds)

	if len(batches) != 4 {
		t.Fatalf("len(batches) = %d, want 4", len(batches))
	}
	if batches[0].TextureHandle != 1 || len(batches[0].Commands) != 1 {
		t.Errorf("batch[0] = %+v, want texture 1 with 1 command (depth 5)", batches[0])
	}
	if batches[1].TextureHandle != 3 || len(batches[1].Commands) != 1 {
		t.Errorf("batch[1] = %+v, want texture 3 with 1 command (depth 5)", batches[1])
	}
	if batches[2].TextureHandle != 1 || len(batches[2].Commands) != 1 {
		t.Errorf("batch[2] = %+v, want texture 1 with 1 command (depth 1)", batches[2])
	}
	if batches[2].Commands[0].Depth == batches[0].Commands[0].Depth {
		t.Error("depth-1 run should not coalesce with the depth-5 run of the same texture")
	}
}

func TestSortAndBatchCoalescesConsecutiveSameTexture(t *testing.T) {
	cmds := []Command{
		{TextureHandle: 7, Depth: 0},
		{TextureHandle: 7, Depth: 0},
		{TextureHandle: 7, Depth: 0},
	}

	batches := SortAndBatch(cmds)
	if len(batches) != 1 {
		t.Fatalf("len(batches) = %d, want 1", len(batches))
	}
	if len(batches[0].Commands) != 3 {
		t.Errorf("batch command count = %d, want 3", len(batches[0].Commands))
	}
}

func TestSortAndBatchStableWithinEqualKey(t *testing.T) {
	cmds := []Command{
		{TextureHandle: 1, Depth: 0, Region: TexRegionAt(0)},
		{TextureHandle: 1, Depth: 0, Region: TexRegionAt(1)},
		{TextureHandle: 1, Depth: 0, Region: TexRegionAt(2)},
	}

	batches := SortAndBatch(cmds)
	got := batches[0].Commands
	for i, want := range []float32{0, 1, 2} {
		if got[i].Region.U != want {
			t.Errorf("commands[%d].Region.U = %v, want %v (stable order)", i, got[i].Region.U, want)
		}
	}
}
