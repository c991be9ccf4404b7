package date

import (
	"iter"
	"slices"
)

// History stores a chronological series of float64 values, each associated
// with a specific date. Dates are unique and the series is always sorted.
type History struct {
	days   []Date
	values []float64
}

// Len returns the number of points in the history.
func (h *History) Len() int { return len(h.days) }

// First returns the earliest date and value in the history.
// If the history is empty, it returns zero values.
func (h *History) First() (day Date, value float64) {
	if len(h.days) == 0 {
		return Date{}, 0
	}
	return h.days[0], h.values[0]
}

// Latest returns the latest date and value in the history.
// If the history is empty, it returns zero values.
func (h *History) Latest() (day Date, value float64) {
	last := len(h.days) - 1
	if last < 0 {
		return Date{}, 0
	}
	return h.days[last], h.values[last]
}

// search locates 'day' in the sorted days slice.
func (h *History) search(day Date) (int, bool) {
	return slices.BinarySearchFunc(h.days, day, func(d, t Date) int {
		switch {
		case d.After(t):
			return 1
		case d.Before(t):
			return -1
		default:
			return 0
		}
	})
}

// insert places a value at 'day', combining with any existing value through
// 'merge'. The series stays sorted without a full re-sort.
func (h *History) insert(day Date, value float64, merge func(old, new float64) float64) *History {
	i, found := h.search(day)
	if found {
		h.values[i] = merge(h.values[i], value)
		return h
	}
	h.days = slices.Insert(h.days, i, day)
	h.values = slices.Insert(h.values, i, value)
	return h
}

// Append adds a point to the history. An existing value at that date is
// overwritten: the last data read wins.
func (h *History) Append(on Date, v float64) *History {
	return h.insert(on, v, func(_, new float64) float64 { return new })
}

// AppendAdd adds a point to the history, accumulating into any existing
// value at that date.
func (h *History) AppendAdd(on Date, v float64) *History {
	return h.insert(on, v, func(old, new float64) float64 { return old + new })
}

// Values returns an iterator over all date/value pairs in the history, in
// chronological order.
func (h *History) Values() iter.Seq2[Date, float64] {
	return func(yield func(Date, float64) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

// Days returns the sorted dates of the history.
func (h *History) Days() []Date { return slices.Clone(h.days) }

// Get returns the value at 'day' and true, or zero and false.
func (h *History) Get(day Date) (float64, bool) {
	if i, found := h.search(day); found {
		return h.values[i], true
	}
	return 0, false
}

// ValueAsOf returns the value on a given day, or the most recent value
// before it. It returns the value and true if found, otherwise zero and
// false.
func (h *History) ValueAsOf(day Date) (float64, bool) {
	i, found := h.search(day)
	if found {
		return h.values[i], true
	}
	if i == 0 {
		return 0, false // no date on or before the given day
	}
	return h.values[i-1], true
}
