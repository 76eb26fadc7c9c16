package arraylist

import (
	"sync"
)

type syncPool[T comparable] struct {
	p sync.Pool
}

// Suitable for similar sized lists, otherwise pooled lists can trend to
// the largest capacity, wasting memory. Direct sync.Pool implementation.
func NewSync[T comparable]() Pooler[T] {
	return new(syncPool[T])
}

func (p *syncPool[T]) Get() *List[T] {
	l, _ := p.p.Get().(*List[T])
	if l == nil {
		return New[T]()
	}
	return l
}

func (p *syncPool[T]) GetSized(c int) *List[T] {
	return grown(p.Get(), c)
}

func (p *syncPool[T]) Put(l *List[T]) {
	if l == nil || !l.Owned() {
		return
	}
	l.Clear()
	p.p.Put(l)
}
