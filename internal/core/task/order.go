package task

import "sort"

// SortByOrder returns tasks sorted ascending by Order. The sort is stable so
// insertion order breaks ties; key collisions are excluded by construction
// but stability protects against any future non-unique key. The input is not
// modified.
func SortByOrder(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

// Reorder moves the task srcID to the slot occupied by dstID, matching the
// position under the cursor on drop: moving a task down places it after the
// target, moving it up places it before the target.
//
// Returns ok=false without touching the input when the move is a no-op:
// empty src id (missing drag payload), src == dst, or either id absent from
// the collection (stale reference).
func Reorder(tasks []Task, srcID, dstID string) ([]Task, bool) {
	if srcID == "" || dstID == "" || srcID == dstID {
		return tasks, false
	}

	sorted := SortByOrder(tasks)
	srcIdx, dstIdx := -1, -1
	for i, t := range sorted {
		switch t.ID {
		case srcID:
			srcIdx = i
		case dstID:
			dstIdx = i
		}
	}
	if srcIdx < 0 || dstIdx < 0 {
		return tasks, false
	}

	src := sorted[srcIdx]
	rest := append(sorted[:srcIdx:srcIdx], sorted[srcIdx+1:]...)

	// Insert at the target's pre-removal index. Removing a task above the
	// target shifts it left by one, so a downward move lands after the
	// target while an upward move lands before it.
	out := make([]Task, 0, len(sorted))
	out = append(out, rest[:dstIdx]...)
	out = append(out, src)
	out = append(out, rest[dstIdx:]...)
	return out, true
}

// Resequence reassigns fresh strictly increasing order keys to tasks in their
// current slice order. Run after every reorder so the visible order persists
// exactly as dropped even when prior keys were sparse or collided.
func Resequence(tasks []Task, clock Clock) {
	for i := range tasks {
		tasks[i].Order = clock.Now()
	}
}

// MaxOrder returns the highest order key in tasks, or 0 for an empty
// collection. Used to seed the logical clock from a loaded snapshot.
func MaxOrder(tasks []Task) int64 {
	var maxKey int64
	for _, t := range tasks {
		if t.Order > maxKey {
			maxKey = t.Order
		}
	}
	return maxKey
}
