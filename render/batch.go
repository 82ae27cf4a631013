package render

import "sort"

// Batch is a contiguous run of Commands sharing one texture handle,
// submitted with a single coalesced draw call (SPEC_FULL.md §4.2
// "Batching"). Grounded on teacher batch.go's submitBatchesCoalesced:
// same idea (coalesce consecutive same-key commands), but keyed only on
// texture handle since this pipeline has no blend-mode or shader
// variance to fold into the key.
type Batch struct {
	TextureHandle uint32
	Clip          *Rect
	Commands      []Command
}

// SortAndBatch orders cmds by descending depth (painter's algorithm,
// larger depth drawn first) then by texture handle to minimize bind
// changes between equal-depth sprites, then partitions the sorted slice
// into contiguous runs sharing both texture handle and clip rect — a
// flush precedes every clip change, per SPEC_FULL.md §4.5. The sort is
// stable so sprites with equal depth and texture preserve extraction
// order frame to frame, matching teacher's mergeSort-stability
// requirement for render commands.
func SortAndBatch(cmds []Command) []Batch {
	sort.SliceStable(cmds, func(i, j int) bool {
		if cmds[i].Depth != cmds[j].Depth {
			return cmds[i].Depth > cmds[j].Depth
		}
		return cmds[i].TextureHandle < cmds[j].TextureHandle
	})

	var batches []Batch
	for _, cmd := range cmds {
		if n := len(batches); n > 0 && batches[n-1].TextureHandle == cmd.TextureHandle && sameClip(batches[n-1].Clip, cmd.Clip) {
			batches[n-1].Commands = append(batches[n-1].Commands, cmd)
			continue
		}
		batches = append(batches, Batch{TextureHandle: cmd.TextureHandle, Clip: cmd.Clip, Commands: []Command{cmd}})
	}
	return batches
}
