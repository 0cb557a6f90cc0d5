package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelationNames(t *testing.T) {
	for _, r := range Relations {
		parsed, ok := ParseRelation(r.String())
		require.True(t, ok, r.String())
		assert.Equal(t, r, parsed)
	}
	_, ok := ParseRelation("sideways")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Relation(99).String())
}

func TestRelationMatches(t *testing.T) {
	target := NewPath("a", "b")
	candidates := map[string]Path[string]{
		"root":       RootPath[string](),
		"parent":     NewPath("a"),
		"target":     target,
		"child":      NewPath("a", "b", "c"),
		"grandchild": NewPath("a", "b", "c", "d"),
		"sibling":    NewPath("a", "x"),
	}

	want := map[Relation][]string{
		RelAt:                   {"target"},
		RelUnder:                {"child", "grandchild"},
		RelAtOrUnder:            {"target", "child", "grandchild"},
		RelAlong:                {"root", "parent", "target"},
		RelImmediatelyUnder:     {"child"},
		RelAtOrImmediatelyUnder: {"target", "child"},
	}

	for rel, names := range want {
		t.Run(rel.String(), func(t *testing.T) {
			var got []string
			for name, c := range candidates {
				if Matches(rel, target, c) {
					got = append(got, name)
				}
			}
			assert.ElementsMatch(t, names, got)
		})
	}
}

// TestRelationSpan checks that Span agrees with Matches for the relations that select below the target.
func TestRelationSpan(t *testing.T) {
	target := NewPath("a")
	for _, rel := range Relations {
		if rel == RelAlong {
			continue
		}
		include, depth := rel.Span()
		assert.Equal(t, include, Matches(rel, target, target), rel.String())

		deep := NewPath("a", "b", "c")
		assert.Equal(t, depth == -1, Matches(rel, target, deep), rel.String())

		child := NewPath("a", "b")
		assert.Equal(t, depth != 0, Matches(rel, target, child), rel.String())
	}
}

func TestUnknownRelationSpanPanics(t *testing.T) {
	assert.Panics(t, func() { Relation(99).Span() })
}
