package levelbuffer

import (
	"github.com/pkg/errors"

	"github.com/outofforest/levelbuffer/alloc"
)

// New creates new level.
func New[P any](config Config) (*Level[P], error) {
	if config.GroupSize == 0 {
		return nil, errors.New("group size must be at least 1")
	}
	if config.PoolChunkSize == 0 {
		config.PoolChunkSize = DefaultPoolChunkSize
	}

	return &Level[P]{
		config:    config,
		nodePool:  alloc.NewPool[node[P]](config.PoolChunkSize),
		groupPool: alloc.NewPool[node[[]P]](config.PoolChunkSize),
	}, nil
}

// NextLevel returns level operating on the groups produced by l.
// Group nodes allocated by both levels are counted by the same pool.
func NextLevel[P any](l *Level[P]) *Level[[]P] {
	return &Level[[]P]{
		config:    l.config,
		nodePool:  l.groupPool,
		groupPool: alloc.NewPool[node[[][]P]](l.config.PoolChunkSize),
	}
}

// Level builds chains of payloads P stored on one level of the deque and moves them
// to and from the level above, where every node holds a group of P.
// Level is not safe for concurrent use, chains it produces are.
type Level[P any] struct {
	config    Config
	nodePool  *alloc.Pool[node[P]]
	groupPool *alloc.Pool[node[[]P]]

	stack []*node[P]
}

// GroupSize returns the number of payloads packed into one node of the level above.
func (l *Level[P]) GroupSize() uint64 {
	return l.config.GroupSize
}

// Allocations returns the number of nodes allocated so far on this level and on the level above.
func (l *Level[P]) Allocations() (nodes, groups uint64) {
	return l.nodePool.Allocated(), l.groupPool.Allocated()
}

// Prepend returns new chain with value in front of c.
func (l *Level[P]) Prepend(c Chain[P], value P) Chain[P] {
	return cons(l.nodePool, value, c)
}

// Fill returns chain containing value n times.
func (l *Level[P]) Fill(value P, n uint64) Chain[P] {
	var c Chain[P]
	for range n {
		c = cons(l.nodePool, value, c)
	}
	return c
}

// ShrinkFromTail returns chain with the last count nodes removed.
//
// Chain is reachable from the head only, so every kept node is rebuilt, even if count is 0.
// Removing all the nodes returns the empty chain without walking it.
func (l *Level[P]) ShrinkFromTail(c Chain[P], count uint64) (Chain[P], error) {
	size := c.Len()
	if count > size {
		return Chain[P]{}, underflow(count, size)
	}
	if count == size {
		return Chain[P]{}, nil
	}

	keep := size - count
	for n := c.head; uint64(len(l.stack)) < keep; n = n.rest.head {
		l.stack = append(l.stack, n)
	}

	var result Chain[P]
	for i := len(l.stack) - 1; i >= 0; i-- {
		result = cons(l.nodePool, l.stack[i].value, result)
	}

	clear(l.stack)
	l.stack = l.stack[:0]

	return result, nil
}

// PackUpward consumes c in batches of GroupSize payloads and prepends one group node per batch to upper.
// The last batch is packed even if it is shorter. Inside a group payloads are stored in reverse order,
// the one closest to the head of c goes to the last slot.
func (l *Level[P]) PackUpward(c Chain[P], upper Chain[[]P]) Chain[[]P] {
	for n := c.head; n != nil; {
		batch := min(l.config.GroupSize, n.remaining)
		group := make([]P, batch)
		for i := batch; i > 0; i-- {
			group[i-1] = n.value
			n = n.rest.head
		}
		upper = cons(l.groupPool, group, upper)
	}
	return upper
}

// UnpackDownward expands the first nodeCount group nodes of upper into the chain of individual payloads.
// Payloads of the node closest to the head of upper end up closest to the tail of the result,
// so unpacking everything produced by PackUpward restores the original order.
func (l *Level[P]) UnpackDownward(upper Chain[[]P], nodeCount uint64) (Chain[P], error) {
	if nodeCount > upper.Len() {
		return Chain[P]{}, underflow(nodeCount, upper.Len())
	}

	var result Chain[P]
	n := upper.head
	for range nodeCount {
		for _, v := range n.value {
			result = cons(l.nodePool, v, result)
		}
		n = n.rest.head
	}
	return result, nil
}

func cons[P any](pool *alloc.Pool[node[P]], value P, rest Chain[P]) Chain[P] {
	n := pool.Allocate()
	n.value = value
	n.rest = rest
	n.remaining = rest.Len() + 1
	return Chain[P]{head: n}
}
