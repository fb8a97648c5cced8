package alloc

import (
	"github.com/outofforest/mass"
)

// NewPool creates new allocation pool.
func NewPool[T any](chunkSize uint64) *Pool[T] {
	return &Pool[T]{
		mass: mass.New[T](chunkSize),
	}
}

// Pool allocates objects in chunks.
// It is not safe for concurrent use.
type Pool[T any] struct {
	mass      *mass.Mass[T]
	allocated uint64
}

// Allocate allocates single object.
func (p *Pool[T]) Allocate() *T {
	p.allocated++
	return p.mass.New()
}

// Allocated returns the number of objects allocated by the pool so far.
func (p *Pool[T]) Allocated() uint64 {
	return p.allocated
}
