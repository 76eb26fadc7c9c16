package arraylist

// Pools recycle lists so hot paths avoid fresh buffer allocations. Only
// the pool itself is safe for concurrent use; a checked-out list has a
// single owner as usual.

type SizedPooler[T comparable] interface {
	// List with zero length and capacity of at least c. If giving back
	// to the pool, the original pointer should be Put.
	GetSized(c int) *List[T]

	// Do not use the list after Put. Lists bound to external storage are
	// dropped rather than pooled, since their buffer is not the pool's
	// to recycle.
	Put(*List[T])
}

type Pooler[T comparable] interface {
	// List with zero length. If giving back to the pool, the original
	// pointer should be Put.
	Get() *List[T]

	SizedPooler[T]
}

// Clears l and ensures capacity for at least c elements.
func grown[T comparable](l *List[T], c int) *List[T] {
	l.Clear()
	if len(l.elems) < c {
		l.elems = make([]T, c)
	}
	return l
}

func makeSizedList[T comparable](c int) *List[T] {
	return &List[T]{elems: make([]T, c)}
}
