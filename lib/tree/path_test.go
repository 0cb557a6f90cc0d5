package tree

import (
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathConstruction(t *testing.T) {
	assert.True(t, RootPath[string]().IsRoot())
	assert.True(t, NewPath[string]().IsRoot())
	assert.Equal(t, 0, Path[int]{}.Len())

	src := []string{"a", "b"}
	p := PathFromSlice(src)
	src[0] = "changed"
	assert.Equal(t, "a", p.At(0), "PathFromSlice must copy its input")

	nodes := p.Nodes()
	nodes[1] = "changed"
	assert.Equal(t, "b", p.At(1), "Nodes must return a copy")

	seq := PathFromSeq(slices.Values([]int{1, 2, 3}))
	assert.True(t, seq.Equals(NewPath(1, 2, 3)))

	var collected []int
	for i, n := range NewPath(4, 5).All() {
		collected = append(collected, i, n)
	}
	assert.Equal(t, []int{0, 4, 1, 5}, collected)
}

func TestPathAccessors(t *testing.T) {
	p := NewPath("a", "b", "c")

	first, err := p.First()
	require.NoError(t, err)
	assert.Equal(t, "a", first)

	last, err := p.Last()
	require.NoError(t, err)
	assert.Equal(t, "c", last)

	parent, err := p.Parent()
	require.NoError(t, err)
	assert.True(t, parent.Equals(NewPath("a", "b")))

	// appending to a parent must not write into the original
	_ = parent.AppendedWith("x")
	assert.Equal(t, "c", p.At(2))

	root := RootPath[string]()
	_, err = root.First()
	assert.True(t, errors.Is(err, ErrEmptyPath))
	_, err = root.Last()
	assert.True(t, errors.Is(err, ErrEmptyPath))
	_, err = root.Parent()
	assert.True(t, errors.Is(err, ErrEmptyPath))
}

func TestPathTransforms(t *testing.T) {
	p := NewPath(1, 2, 3, 4)

	tests := []struct {
		name string
		fn   func() (Path[int], error)
		want Path[int]
	}{
		{"TruncateTo(2)", func() (Path[int], error) { return p.TruncateTo(2) }, NewPath(1, 2)},
		{"TruncateTo(0)", func() (Path[int], error) { return p.TruncateTo(0) }, RootPath[int]()},
		{"TruncateTo(4)", func() (Path[int], error) { return p.TruncateTo(4) }, p},
		{"WithoutFirstNodes(1)", func() (Path[int], error) { return p.WithoutFirstNodes(1) }, NewPath(2, 3, 4)},
		{"WithoutFirstNodes(4)", func() (Path[int], error) { return p.WithoutFirstNodes(4) }, RootPath[int]()},
		{"WithoutLastNodes(3)", func() (Path[int], error) { return p.WithoutLastNodes(3) }, NewPath(1)},
		{"WithoutLastNodes(0)", func() (Path[int], error) { return p.WithoutLastNodes(0) }, p},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn()
			require.NoError(t, err)
			assert.True(t, got.Equals(tt.want), "got %s, want %s", got, tt.want)
		})
	}

	for _, count := range []int{-1, 5} {
		_, err := p.TruncateTo(count)
		assert.True(t, errors.Is(err, ErrInvalidArgument), "TruncateTo(%d)", count)
		_, err = p.WithoutFirstNodes(count)
		assert.True(t, errors.Is(err, ErrInvalidArgument), "WithoutFirstNodes(%d)", count)
		_, err = p.WithoutLastNodes(count)
		assert.True(t, errors.Is(err, ErrInvalidArgument), "WithoutLastNodes(%d)", count)
	}

	assert.True(t, p.AppendedWith(5).Equals(NewPath(1, 2, 3, 4, 5)))
	assert.True(t, p.AppendedWithPath(NewPath(5, 6)).Equals(NewPath(1, 2, 3, 4, 5, 6)))
	assert.True(t, p.PrependedWith(0).Equals(NewPath(0, 1, 2, 3, 4)))
	assert.True(t, p.Reversed().Equals(NewPath(4, 3, 2, 1)))
	assert.True(t, p.Equals(NewPath(1, 2, 3, 4)), "transforms must not modify the receiver")
}

func TestPathPredicates(t *testing.T) {
	root := RootPath[string]()
	a := NewPath("a")
	ab := NewPath("a", "b")
	abc := NewPath("a", "b", "c")
	ax := NewPath("x", "b")

	assert.True(t, root.IsAncestorOf(a))
	assert.True(t, a.IsAncestorOf(abc))
	assert.False(t, ab.IsAncestorOf(ab))
	assert.True(t, ab.IsEqualOrAncestorOf(ab))
	assert.False(t, ax.IsAncestorOf(abc))

	assert.True(t, abc.IsDescendantOf(a))
	assert.False(t, a.IsDescendantOf(a))
	assert.True(t, a.IsEqualOrDescendantOf(a))
	assert.True(t, a.IsEqualOrDescendantOf(root))

	assert.True(t, ab.IsParentOf(abc))
	assert.False(t, a.IsParentOf(abc))
	assert.True(t, abc.IsChildOf(ab))
	assert.True(t, a.IsChildOf(root))

	assert.False(t, ab.Equals(ax))
	assert.True(t, root.Equals(Path[string]{}))
}

func TestPathFormatting(t *testing.T) {
	assert.Equal(t, "[a b]", NewPath("a", "b").String())
	assert.Equal(t, "[]", RootPath[string]().String())
	assert.Equal(t, "1/2/3", NewPath(1, 2, 3).Join("/"))
}
