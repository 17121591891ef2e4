package task

import "fmt"

// Filter selects which completion states are visible.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Filters lists all valid filters in cycle order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterActive, FilterCompleted}
}

// ParseFilter validates a filter name.
func ParseFilter(s string) (Filter, error) {
	f := Filter(s)
	if !f.IsValid() {
		return "", fmt.Errorf("invalid filter %q: must be one of all, active, completed", s)
	}
	return f, nil
}

// IsValid reports whether f is a known filter.
func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	}
	return false
}

// Match is the filter predicate.
func (f Filter) Match(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// Next returns the filter that follows f in cycle order.
func (f Filter) Next() Filter {
	filters := Filters()
	for i, cur := range filters {
		if cur == f {
			return filters[(i+1)%len(filters)]
		}
	}
	return FilterAll
}
