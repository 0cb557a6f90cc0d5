package oak

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ValentinKolb/dTree/lib/tree"
	"github.com/cockroachdb/datadriven"
)

// parsePath reads "/a/b" style paths; "/" is the root path.
func parsePath(s string) tree.Path[string] {
	s = strings.Trim(s, "/")
	if s == "" {
		return tree.RootPath[string]()
	}
	return tree.NewPath(strings.Split(s, "/")...)
}

// parseValue maps the literal "null" to a nil item.
func parseValue(s string) any {
	if s == "null" {
		return nil
	}
	return s
}

func TestDataDriven(t *testing.T) {
	var (
		backing IOakTree[string, any]
		views   map[string]tree.ITree[string, any]
	)
	reset := func() {
		backing = New[string, any]()
		views = make(map[string]tree.ITree[string, any])
	}
	reset()

	datadriven.RunTest(t, "testdata/oak", func(t *testing.T, td *datadriven.TestData) string {
		// target selects the backing tree or a named view
		target := func() tree.ITree[string, any] {
			var name string
			if td.MaybeScanArgs(t, "view", &name) {
				v, ok := views[name]
				if !ok {
					td.Fatalf(t, "unknown view %q", name)
				}
				return v
			}
			return backing
		}
		path := func() tree.Path[string] {
			var s string
			td.ScanArgs(t, "path", &s)
			return parsePath(s)
		}
		value := func() any {
			var s string
			td.ScanArgs(t, "value", &s)
			return parseValue(s)
		}

		switch td.Cmd {
		case "reset":
			reset()
			return ""

		case "view":
			var name string
			td.ScanArgs(t, "name", &name)
			views[name] = target().GetBranchView(path())
			return ""

		case "set":
			return target().SetAt(path(), value()).String()

		case "set-if-absent":
			return target().SetAtIfAbsent(path(), value()).String()

		case "get":
			v, err := target().GetAt(path())
			if err != nil {
				return fmt.Sprintf("error: %v", err)
			}
			return tree.FormatValue(v)

		case "clear":
			return target().ClearAt(path()).String()

		case "clear-all":
			target().ClearAtAndUnder(path())
			return ""

		case "clear-under":
			target().ClearUnder(path())
			return ""

		case "trim":
			return fmt.Sprint(backing.Trim(path()))

		case "query":
			var relName string
			td.ScanArgs(t, "rel", &relName)
			rel, ok := tree.ParseRelation(relName)
			if !ok {
				td.Fatalf(t, "unknown relation %q", relName)
			}
			entries := target().EntriesInOrder(rel, path(), tree.NaturalOrder[string]())
			if len(entries) == 0 {
				return "(none)"
			}
			var sb strings.Builder
			for _, e := range entries {
				fmt.Fprintln(&sb, e)
			}
			return sb.String()

		case "print":
			return target().ToTreeString()

		case "info":
			i := target().GetInfo()
			return fmt.Sprintf("items=%d nodes=%d empty=%d depth=%d", i.Items, i.Nodes, i.EmptyNodes, i.Depth)

		default:
			return fmt.Sprintf("unknown command: %s", td.Cmd)
		}
	})
}
