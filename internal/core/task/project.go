package task

// Project derives the render-ready list: tasks sorted by order key with the
// filter predicate applied. Pure function of its inputs; safe to call
// repeatedly for re-render triggers.
func Project(tasks []Task, filter Filter) []Task {
	sorted := SortByOrder(tasks)
	out := make([]Task, 0, len(sorted))
	for _, t := range sorted {
		if filter.Match(t) {
			out = append(out, t)
		}
	}
	return out
}
