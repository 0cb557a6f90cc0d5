package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ValentinKolb/dTree/lib/store/lstore"
	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataDriven(t *testing.T) {
	var (
		out bytes.Buffer
		in  *Interpreter
	)
	reset := func(sep string) {
		out.Reset()
		in = NewInterpreter(&out, &lstore.Options{Separator: sep, Ordered: true})
	}
	reset("/")

	datadriven.RunTest(t, "testdata/shell", func(t *testing.T, td *datadriven.TestData) string {
		switch td.Cmd {
		case "reset":
			sep := "/"
			td.MaybeScanArgs(t, "sep", &sep)
			reset(sep)
			return ""

		case "run":
			out.Reset()
			if err := in.Run(strings.NewReader(td.Input), false); err != nil {
				return "error: " + err.Error()
			}
			return out.String()

		default:
			td.Fatalf(t, "unknown command %s", td.Cmd)
			return ""
		}
	})
}

func TestList(t *testing.T) {
	var out bytes.Buffer
	in := NewInterpreter(&out, nil)

	require.NoError(t, in.Exec("set users/alice 30"))
	require.NoError(t, in.Exec("set users/bob 31"))
	require.NoError(t, in.Exec("ls users"))

	table := out.String()
	assert.Contains(t, table, "KEY")
	assert.Contains(t, table, "users/alice")
	assert.Contains(t, table, "users/bob")
	assert.Less(t, strings.Index(table, "users/alice"), strings.Index(table, "users/bob"))
}

func TestInfoAndStats(t *testing.T) {
	var out bytes.Buffer
	in := NewInterpreter(&out, nil)

	require.NoError(t, in.Exec("set a/b 1"))
	require.NoError(t, in.Exec("get a/b"))
	require.NoError(t, in.Exec("use other"))
	require.NoError(t, in.Exec("set x 1"))

	out.Reset()
	require.NoError(t, in.Exec("info"))
	assert.Contains(t, out.String(), "TREE INFO")

	out.Reset()
	require.NoError(t, in.Exec("stats"))
	stats := out.String()
	assert.Contains(t, stats, `dtree_store_ops_total{op="set"} 2`, "workspaces share one metrics set")
	assert.Contains(t, stats, `dtree_store_ops_total{op="get"} 1`)
}

func TestExecErrors(t *testing.T) {
	var out bytes.Buffer
	in := NewInterpreter(&out, nil)

	assert.ErrorContains(t, in.Exec("frobnicate x"), `unknown command "frobnicate"`)
	assert.ErrorContains(t, in.Exec("get"), "usage: get <key>")
	assert.ErrorContains(t, in.Exec("set a//b v"), "InvalidKey")
	assert.NoError(t, in.Exec("# comment"))
	assert.NoError(t, in.Exec("   "))
}

func TestHelp(t *testing.T) {
	var out bytes.Buffer
	in := NewInterpreter(&out, nil)

	require.NoError(t, in.Exec("help"))
	for name := range in.commands {
		assert.Contains(t, out.String(), in.commands[name].usage)
	}
}

func TestRunStopsAtExit(t *testing.T) {
	var out bytes.Buffer
	in := NewInterpreter(&out, nil)

	require.NoError(t, in.Run(strings.NewReader("set a 1\nexit\nset b 2\n"), true))
	has, err := in.root().Has("b")
	require.NoError(t, err)
	assert.False(t, has)
	assert.Contains(t, out.String(), "default:/> ")
}

func TestRunLongLine(t *testing.T) {
	var out bytes.Buffer
	in := NewInterpreter(&out, nil)

	value := strings.Repeat("x", 200<<10)
	require.NoError(t, in.Run(strings.NewReader("set big "+value+"\nget big\n"), false))
	assert.Equal(t, value+"\n", out.String())
}
