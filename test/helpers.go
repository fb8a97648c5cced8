package test

import (
	"context"
	"fmt"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/outofforest/levelbuffer"
	"github.com/outofforest/logger"
	"github.com/outofforest/parallel"
)

// NewLevel creates level used in tests.
func NewLevel[P any](t require.TestingT, groupSize uint64) *levelbuffer.Level[P] {
	level, err := levelbuffer.New[P](levelbuffer.Config{
		GroupSize: groupSize,
		// Small chunks make tests cross chunk boundaries.
		PoolChunkSize: 3,
	})
	require.NoError(t, err)
	return level
}

// NewChain builds chain containing values, the first value ends up at the head.
func NewChain[P any](level *levelbuffer.Level[P], values ...P) levelbuffer.Chain[P] {
	var c levelbuffer.Chain[P]
	for _, v := range lo.Reverse(append([]P{}, values...)) {
		c = level.Prepend(c, v)
	}
	return c
}

// CollectChainItems collects payloads available in chain, from head to tail.
func CollectChainItems[P any](c levelbuffer.Chain[P]) []P {
	items := []P{}
	for item := range c.Iterator() {
		items = append(items, item)
	}
	return items
}

// CountNodes counts nodes by following the links down to the empty chain.
func CountNodes[P any](c levelbuffer.Chain[P]) uint64 {
	var count uint64
	for ; !c.IsEmpty(); c = c.Rest() {
		count++
	}
	return count
}

// RequireSizeInvariant verifies that the size stored in every node matches the number of reachable nodes.
func RequireSizeInvariant[P any](t require.TestingT, c levelbuffer.Chain[P]) {
	for ; !c.IsEmpty(); c = c.Rest() {
		require.Equal(t, CountNodes(c), c.Len())
	}
	require.Zero(t, c.Len())
}

// RunInTest runs tasks in parallel and waits until all of them complete.
func RunInTest(t *testing.T, tasks ...func(ctx context.Context) error) {
	ctx, cancel := context.WithCancel(logger.WithLogger(context.Background(), logger.New(logger.DefaultConfig)))
	t.Cleanup(cancel)

	err := parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		for i, task := range tasks {
			spawn(fmt.Sprintf("task-%02d", i), parallel.Continue, task)
		}
		return nil
	})
	require.NoError(t, err)
}
