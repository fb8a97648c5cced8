package levelbuffer

type node[P any] struct {
	value     P
	rest      Chain[P]
	remaining uint64
}

// Empty returns the empty chain.
func Empty[P any]() Chain[P] {
	return Chain[P]{}
}

// Chain is a persistent singly-linked sequence of payloads.
// The zero value is the empty chain. Chains are never modified after construction,
// operations deriving new chains share the common tail with their inputs.
type Chain[P any] struct {
	head *node[P]
}

// IsEmpty returns true if there are no nodes in the chain.
func (c Chain[P]) IsEmpty() bool {
	return c.head == nil
}

// Len returns the number of nodes in the chain.
func (c Chain[P]) Len() uint64 {
	if c.head == nil {
		return 0
	}
	return c.head.remaining
}

// Head returns the payload of the first node.
// Group payloads are shared between chains and must not be modified.
func (c Chain[P]) Head() (P, bool) {
	if c.head == nil {
		var v P
		return v, false
	}
	return c.head.value, true
}

// Rest returns the chain following the first node. Rest of the empty chain is empty.
func (c Chain[P]) Rest() Chain[P] {
	if c.head == nil {
		return c
	}
	return c.head.rest
}

// Shares returns true if both chains start at the same node.
func (c Chain[P]) Shares(c2 Chain[P]) bool {
	return c.head == c2.head
}

// Advance returns the suffix of the chain remaining after dropping the first n nodes.
// Nothing is allocated, the returned chain is the part of the original one.
func (c Chain[P]) Advance(n uint64) (Chain[P], error) {
	if n > c.Len() {
		return Chain[P]{}, underflow(n, c.Len())
	}
	for range n {
		c = c.head.rest
	}
	return c, nil
}

// Iterator iterates over payloads from head to tail.
func (c Chain[P]) Iterator() func(func(P) bool) {
	return func(yield func(P) bool) {
		for n := c.head; n != nil; n = n.rest.head {
			if !yield(n.value) {
				return
			}
		}
	}
}
