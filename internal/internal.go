package internal

// NextCap is the doubling growth policy: 1 from an empty buffer,
// otherwise twice the current capacity. Callers guard overflow before
// asking for the next step.
func NextCap(c int) int {
	if c == 0 {
		return 1
	}
	return c * 2
}

// Alloc makes a buffer of exactly capacity elements and copies old[:count]
// into it. The old buffer is never modified, so callers swap the result in
// only once it is in hand.
func Alloc[T any](old []T, count, capacity int) []T {
	next := make([]T, capacity)
	copy(next, old[:count])
	return next
}
