package levelbuffer_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/outofforest/levelbuffer"
	"github.com/outofforest/levelbuffer/test"
)

func TestEmptyChain(t *testing.T) {
	requireT := require.New(t)

	var c levelbuffer.Chain[int]
	requireT.True(c.IsEmpty())
	requireT.Zero(c.Len())
	requireT.True(c.Shares(levelbuffer.Empty[int]()))

	v, exists := c.Head()
	requireT.False(exists)
	requireT.Zero(v)

	requireT.True(c.Rest().IsEmpty())
	requireT.Empty(test.CollectChainItems(c))
}

func TestPrepend(t *testing.T) {
	requireT := require.New(t)
	level := test.NewLevel[int](t, 2)

	c := levelbuffer.Empty[int]()
	for i := range 10 {
		old := c
		c = level.Prepend(c, i)

		requireT.Equal(uint64(i), old.Len())
		requireT.Equal(uint64(i+1), c.Len())
		requireT.True(c.Rest().Shares(old))

		v, exists := c.Head()
		requireT.True(exists)
		requireT.Equal(i, v)
	}

	requireT.Equal([]int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, test.CollectChainItems(c))
	test.RequireSizeInvariant(t, c)

	nodes, groups := level.Allocations()
	requireT.EqualValues(10, nodes)
	requireT.Zero(groups)
}

func TestFill(t *testing.T) {
	requireT := require.New(t)
	level := test.NewLevel[string](t, 2)

	c := level.Fill("some element", 7)
	requireT.Equal(uint64(7), c.Len())
	requireT.Equal(lo.Times(7, func(int) string { return "some element" }), test.CollectChainItems(c))
	test.RequireSizeInvariant(t, c)

	requireT.True(level.Fill("some element", 0).IsEmpty())
}

func TestIteratorStops(t *testing.T) {
	requireT := require.New(t)
	level := test.NewLevel[int](t, 2)

	c := test.NewChain(level, 1, 2, 3, 4, 5)
	items := []int{}
	for v := range c.Iterator() {
		if v == 3 {
			break
		}
		items = append(items, v)
	}
	requireT.Equal([]int{1, 2}, items)
}

func TestAdvance(t *testing.T) {
	requireT := require.New(t)
	level := test.NewLevel[int](t, 2)

	items := lo.RangeFrom(1, 6)
	c := test.NewChain(level, items...)
	nodesBefore, _ := level.Allocations()

	expected := c
	for i := range uint64(len(items)) {
		suffix, err := c.Advance(i)
		requireT.NoError(err)
		requireT.True(suffix.Shares(expected))
		requireT.Equal(c.Len()-i, suffix.Len())
		requireT.Equal(items[i:], test.CollectChainItems(suffix))
		test.RequireSizeInvariant(t, suffix)
		expected = expected.Rest()
	}

	nodesAfter, _ := level.Allocations()
	requireT.Equal(nodesBefore, nodesAfter)

	// Original chain is untouched.
	requireT.Equal(items, test.CollectChainItems(c))
}

func TestAdvanceBoundary(t *testing.T) {
	requireT := require.New(t)
	level := test.NewLevel[int](t, 2)

	c := test.NewChain(level, 1, 2, 3)

	suffix, err := c.Advance(c.Len())
	requireT.NoError(err)
	requireT.True(suffix.IsEmpty())

	_, err = c.Advance(c.Len() + 1)
	requireT.ErrorIs(err, levelbuffer.ErrUnderflow)

	_, err = levelbuffer.Empty[int]().Advance(1)
	requireT.ErrorIs(err, levelbuffer.ErrUnderflow)

	suffix, err = levelbuffer.Empty[int]().Advance(0)
	requireT.NoError(err)
	requireT.True(suffix.IsEmpty())
}

func TestAdvanceAndRebuildPrefix(t *testing.T) {
	requireT := require.New(t)
	level := test.NewLevel[int](t, 3)

	items := lo.RangeFrom(1, 10)
	c := test.NewChain(level, items...)

	for skip := range uint64(len(items) + 1) {
		prefix := make([]int, 0, skip)
		for v := range c.Iterator() {
			if uint64(len(prefix)) == skip {
				break
			}
			prefix = append(prefix, v)
		}

		suffix, err := c.Advance(skip)
		requireT.NoError(err)

		rebuilt := suffix
		for _, v := range lo.Reverse(prefix) {
			rebuilt = level.Prepend(rebuilt, v)
		}

		requireT.Equal(items, test.CollectChainItems(rebuilt))
		test.RequireSizeInvariant(t, rebuilt)
	}
}
