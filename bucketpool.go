package arraylist

import (
	"math/bits"
	"sync"
)

type sizedPool[T comparable] struct {
	size int
	pool sync.Pool
}

func newSizedPool[T comparable](size int) *sizedPool[T] {
	return &sizedPool[T]{
		size: size,
		pool: sync.Pool{
			New: func() any { return makeSizedList[T](size) },
		},
	}
}

type bucketPool[T comparable] struct {
	minCap int
	maxCap int
	pools  []*sizedPool[T]
}

// Suitable for variable capacities if max bounds can be chosen.
// Uses buckets of capacities that increase with the power of two.
// Requests over maxCap will be allocated directly and their Puts dropped.
func NewBucket[T comparable](minCap, maxCap int) SizedPooler[T] {
	if minCap < 1 {
		panic("minCap can't be less than 1")
	}
	if maxCap < minCap {
		panic("maxCap can't be less than minCap")
	}
	const multiplier = 2
	var pools []*sizedPool[T]
	curCap := minCap
	for curCap < maxCap {
		pools = append(pools, newSizedPool[T](curCap))
		curCap *= multiplier
	}
	pools = append(pools, newSizedPool[T](maxCap))
	return &bucketPool[T]{
		minCap: minCap,
		maxCap: maxCap,
		pools:  pools,
	}
}

func (p *bucketPool[T]) findPool(c int) *sizedPool[T] {
	if c > p.maxCap {
		return nil
	}
	div, rem := bits.Div64(0, uint64(c), uint64(p.minCap))
	idx := bits.Len64(div)
	if rem == 0 && div != 0 && (div&(div-1)) == 0 {
		idx = idx - 1
	}
	return p.pools[idx]
}

func (p *bucketPool[T]) GetSized(c int) *List[T] {
	sp := p.findPool(c)
	if sp == nil {
		return makeSizedList[T](c)
	}
	return sp.pool.Get().(*List[T])
}

func (p *bucketPool[T]) Put(l *List[T]) {
	if l == nil || !l.Owned() {
		return
	}
	sp := p.findPool(l.Cap())
	if sp == nil || sp.size != l.Cap() {
		// capacities that drifted off the bucket sizes would shortchange
		// a later GetSized from the rounded-up bucket
		return
	}
	l.Clear()
	sp.pool.Put(l)
}
