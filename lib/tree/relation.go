package tree

import "github.com/cockroachdb/errors"

// Relation selects which paths a query matches, relative to a target path.
type Relation uint8

const (
	RelAt                   Relation = iota // exactly the target path
	RelUnder                                // strict descendants of the target path
	RelAtOrUnder                            // the target path and its descendants
	RelAlong                                // every prefix of the target path, root and target included
	RelImmediatelyUnder                     // children of the target path
	RelAtOrImmediatelyUnder                 // the target path and its children
)

// Relations lists every relation, in declaration order.
var Relations = []Relation{
	RelAt, RelUnder, RelAtOrUnder, RelAlong, RelImmediatelyUnder, RelAtOrImmediatelyUnder,
}

func (r Relation) String() string {
	switch r {
	case RelAt:
		return "at"
	case RelUnder:
		return "under"
	case RelAtOrUnder:
		return "at-or-under"
	case RelAlong:
		return "along"
	case RelImmediatelyUnder:
		return "immediately-under"
	case RelAtOrImmediatelyUnder:
		return "at-or-immediately-under"
	default:
		return "unknown"
	}
}

// ParseRelation is the inverse of Relation.String.
func ParseRelation(s string) (Relation, bool) {
	for _, r := range Relations {
		if r.String() == s {
			return r, true
		}
	}
	return 0, false
}

// Matches reports whether candidate stands in relation r to target.
func Matches[N comparable](r Relation, target, candidate Path[N]) bool {
	switch r {
	case RelAt:
		return candidate.Equals(target)
	case RelUnder:
		return target.IsAncestorOf(candidate)
	case RelAtOrUnder:
		return target.IsEqualOrAncestorOf(candidate)
	case RelAlong:
		return candidate.IsEqualOrAncestorOf(target)
	case RelImmediatelyUnder:
		return target.IsParentOf(candidate)
	case RelAtOrImmediatelyUnder:
		return candidate.Equals(target) || target.IsParentOf(candidate)
	default:
		return false
	}
}

// Span describes the nodes below the target that r selects: whether the target itself is
// included and how many levels below it are visited (-1 = unbounded).
// RelAlong selects above the target and reports (true, 0).
func (r Relation) Span() (includeTarget bool, depth int) {
	switch r {
	case RelAt, RelAlong:
		return true, 0
	case RelUnder:
		return false, -1
	case RelAtOrUnder:
		return true, -1
	case RelImmediatelyUnder:
		return false, 1
	case RelAtOrImmediatelyUnder:
		return true, 1
	default:
		panic(errors.AssertionFailedf("tree: unknown relation %d", r))
	}
}
