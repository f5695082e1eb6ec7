package common

// Cycle returns the item after current (forward) or before it, wrapping at
// either end. When current is not in items the cycle restarts from the first
// item going forward or the last going backward. ok is false only when items
// is empty, in which case current is returned unchanged.
func Cycle[T comparable](items []T, current T, forward bool) (next T, ok bool) {
	if len(items) == 0 {
		return current, false
	}
	idx := -1
	for i, it := range items {
		if it == current {
			idx = i
			break
		}
	}
	if forward {
		if idx < 0 || idx == len(items)-1 {
			return items[0], true
		}
		return items[idx+1], true
	}
	if idx <= 0 {
		return items[len(items)-1], true
	}
	return items[idx-1], true
}
