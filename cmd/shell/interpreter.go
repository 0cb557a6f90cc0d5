package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ValentinKolb/dTree/lib/store"
	"github.com/ValentinKolb/dTree/lib/store/lstore"
	"github.com/ValentinKolb/dTree/lib/tree"
	"github.com/ValentinKolb/dTree/lib/tree/engines/oak"
	"github.com/VictoriaMetrics/metrics"
	"github.com/cockroachdb/errors"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/olekukonko/tablewriter"
	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/exp/slices"
)

var log = logger.GetLogger("shell")

const (
	defaultWorkspace = "default"
	maxLineSize      = 16 << 20 // longest accepted command line (16 MiB)
)

// errQuit stops Run without reporting an error.
var errQuit = errors.New("quit")

// command is a single shell command
type command struct {
	usage string
	help  string
	args  func(n int) bool
	run   func(in *Interpreter, args []string) error
}

func exactly(k int) func(int) bool { return func(n int) bool { return n == k } }
func atMost(k int) func(int) bool  { return func(n int) bool { return n <= k } }
func atLeast(k int) func(int) bool { return func(n int) bool { return n >= k } }

// Interpreter executes shell commands against a set of named workspaces. Every workspace
// is a store of its own; all workspaces report to the same metrics set.
type Interpreter struct {
	out        io.Writer
	opts       lstore.Options
	workspaces *xsync.MapOf[string, store.IStore]
	workspace  string
	cwd        store.IStore
	commands   map[string]command
}

// NewInterpreter creates an interpreter writing to out. The options are used for every
// workspace; a nil metrics set is replaced by a fresh one shared by all workspaces.
func NewInterpreter(out io.Writer, opts *lstore.Options) *Interpreter {
	if opts == nil {
		opts = lstore.DefaultOptions()
	}
	o := *opts
	if o.Metrics == nil {
		o.Metrics = metrics.NewSet()
	}
	if o.Separator == "" {
		o.Separator = "/"
	}

	in := &Interpreter{
		out:        out,
		opts:       o,
		workspaces: xsync.NewMapOf[string, store.IStore](),
	}
	in.commands = in.commandTable()
	in.switchWorkspace(defaultWorkspace)
	return in
}

// Metrics returns the set the workspaces report their counters to.
func (in *Interpreter) Metrics() *metrics.Set {
	return in.opts.Metrics
}

// Run executes the commands read from r line by line until r is exhausted or a quit
// command is read. Failing commands are reported and do not stop the loop.
func (in *Interpreter) Run(r io.Reader, prompt bool) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	for {
		if prompt {
			fmt.Fprintf(in.out, "%s:%s> ", in.workspace, in.pwd())
		}
		if !scanner.Scan() {
			break
		}
		err := in.Exec(scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			log.Debugf("command %q failed: %v", scanner.Text(), err)
			fmt.Fprintf(in.out, "error: %v\n", err)
		}
	}
	return scanner.Err()
}

// Exec executes one command line. Empty lines and lines starting with # are ignored.
func (in *Interpreter) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	name, args := strings.ToLower(fields[0]), fields[1:]
	cmd, ok := in.commands[name]
	if !ok {
		return errors.Newf("unknown command %q (see help)", name)
	}
	if !cmd.args(len(args)) {
		return errors.Newf("usage: %s", cmd.usage)
	}
	return cmd.run(in, args)
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func newOakTree() tree.ITree[string, string] {
	return oak.New[string, string]()
}

// switchWorkspace makes name the current workspace, creating it if needed.
func (in *Interpreter) switchWorkspace(name string) {
	s, loaded := in.workspaces.LoadOrCompute(name, func() store.IStore {
		return lstore.NewLocalStore(newOakTree, &in.opts)
	})
	if !loaded {
		log.Infof("created workspace %s", name)
	}
	in.workspace = name
	in.cwd = s
}

func (in *Interpreter) root() store.IStore {
	s, ok := in.workspaces.Load(in.workspace)
	if !ok {
		panic(errors.AssertionFailedf("current workspace %q is not registered", in.workspace))
	}
	return s
}

func (in *Interpreter) pwd() string {
	return in.opts.Separator + in.cwd.Prefix()
}

// resolveDir returns the store a cd target addresses. Targets starting with the separator
// are absolute, ".." moves up one level.
func (in *Interpreter) resolveDir(target string) (store.IStore, error) {
	sep := in.opts.Separator
	var segments []string
	if !strings.HasPrefix(target, sep) && in.cwd.Prefix() != "" {
		segments = strings.Split(in.cwd.Prefix(), sep)
	}
	for _, segment := range strings.Split(target, sep) {
		switch segment {
		case "", ".":
		case "..":
			if len(segments) > 0 {
				segments = segments[:len(segments)-1]
			}
		default:
			segments = append(segments, segment)
		}
	}
	return in.root().Sub(strings.Join(segments, sep))
}

func optional(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// --------------------------------------------------------------------------
// Commands
// --------------------------------------------------------------------------

func (in *Interpreter) commandTable() map[string]command {
	return map[string]command{
		"set": {
			usage: "set <key> <value...>",
			help:  "Sets the value of a key",
			args:  atLeast(2),
			run: func(in *Interpreter, args []string) error {
				return in.cwd.Set(args[0], strings.Join(args[1:], " "))
			},
		},
		"setnx": {
			usage: "setnx <key> <value...>",
			help:  "Sets the value of a key if it has none",
			args:  atLeast(2),
			run: func(in *Interpreter, args []string) error {
				stored, err := in.cwd.SetIfUnset(args[0], strings.Join(args[1:], " "))
				if err != nil {
					return err
				}
				fmt.Fprintf(in.out, "stored=%t\n", stored)
				return nil
			},
		},
		"get": {
			usage: "get <key>",
			help:  "Prints the value of a key",
			args:  exactly(1),
			run: func(in *Interpreter, args []string) error {
				value, ok, err := in.cwd.Get(args[0])
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(in.out, "(absent)")
					return nil
				}
				fmt.Fprintln(in.out, value)
				return nil
			},
		},
		"has": {
			usage: "has <key>",
			help:  "Reports whether a key holds a value",
			args:  exactly(1),
			run: func(in *Interpreter, args []string) error {
				found, err := in.cwd.Has(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(in.out, "%t\n", found)
				return nil
			},
		},
		"del": {
			usage: "del <key>",
			help:  "Deletes the value of a key, keeping the keys below it",
			args:  exactly(1),
			run: func(in *Interpreter, args []string) error {
				deleted, err := in.cwd.Delete(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(in.out, "deleted=%t\n", deleted)
				return nil
			},
		},
		"rmtree": {
			usage: "rmtree [key]",
			help:  "Deletes a key and everything below it",
			args:  atMost(1),
			run: func(in *Interpreter, args []string) error {
				return in.cwd.DeleteTree(optional(args))
			},
		},
		"rmchildren": {
			usage: "rmchildren [key]",
			help:  "Deletes everything below a key, keeping its value",
			args:  atMost(1),
			run: func(in *Interpreter, args []string) error {
				return in.cwd.DeleteChildren(optional(args))
			},
		},
		"ls": {
			usage: "ls [prefix]",
			help:  "Lists all values at or below a prefix",
			args:  atMost(1),
			run: func(in *Interpreter, args []string) error {
				kvs, err := in.cwd.List(optional(args))
				if err != nil {
					return err
				}
				table := tablewriter.NewWriter(in.out)
				table.SetHeader([]string{"key", "value"})
				table.SetAutoWrapText(false)
				for _, kv := range kvs {
					table.Append([]string{kv.Key, kv.Value})
				}
				table.Render()
				return nil
			},
		},
		"children": {
			usage: "children [prefix]",
			help:  "Lists the direct children of a prefix",
			args:  atMost(1),
			run: func(in *Interpreter, args []string) error {
				names, err := in.cwd.Children(optional(args))
				if err != nil {
					return err
				}
				for _, name := range names {
					fmt.Fprintln(in.out, name)
				}
				return nil
			},
		},
		"tree": {
			usage: "tree [prefix]",
			help:  "Draws the keys at and below a prefix",
			args:  atMost(1),
			run: func(in *Interpreter, args []string) error {
				rendered, err := in.cwd.Tree(optional(args))
				if err != nil {
					return err
				}
				fmt.Fprint(in.out, rendered)
				return nil
			},
		},
		"cd": {
			usage: "cd [prefix]",
			help:  "Changes the current prefix (.. moves up, a leading separator starts at the root)",
			args:  atMost(1),
			run: func(in *Interpreter, args []string) error {
				if len(args) == 0 {
					in.cwd = in.root()
					return nil
				}
				sub, err := in.resolveDir(args[0])
				if err != nil {
					return err
				}
				in.cwd = sub
				return nil
			},
		},
		"pwd": {
			usage: "pwd",
			help:  "Prints the current prefix",
			args:  exactly(0),
			run: func(in *Interpreter, _ []string) error {
				fmt.Fprintln(in.out, in.pwd())
				return nil
			},
		},
		"use": {
			usage: "use [workspace]",
			help:  "Switches to a workspace (creating it) or lists the workspaces",
			args:  atMost(1),
			run: func(in *Interpreter, args []string) error {
				if len(args) == 1 {
					in.switchWorkspace(args[0])
					return nil
				}
				var names []string
				in.workspaces.Range(func(name string, _ store.IStore) bool {
					names = append(names, name)
					return true
				})
				slices.Sort(names)
				for _, name := range names {
					marker := " "
					if name == in.workspace {
						marker = "*"
					}
					fmt.Fprintf(in.out, "%s %s\n", marker, name)
				}
				return nil
			},
		},
		"info": {
			usage: "info",
			help:  "Prints statistics about the tree below the current prefix",
			args:  exactly(0),
			run: func(in *Interpreter, _ []string) error {
				info, err := in.cwd.GetInfo()
				if err != nil {
					return err
				}
				fmt.Fprint(in.out, info.String())
				return nil
			},
		},
		"stats": {
			usage: "stats",
			help:  "Prints the operation counters in the Prometheus text format",
			args:  exactly(0),
			run: func(in *Interpreter, _ []string) error {
				in.opts.Metrics.WritePrometheus(in.out)
				return nil
			},
		},
		"help": {
			usage: "help",
			help:  "Prints this help",
			args:  exactly(0),
			run: func(in *Interpreter, _ []string) error {
				var names []string
				for name := range in.commands {
					names = append(names, name)
				}
				slices.Sort(names)
				for _, name := range names {
					fmt.Fprintf(in.out, "  %-26s %s\n", in.commands[name].usage, in.commands[name].help)
				}
				return nil
			},
		},
		"exit": {
			usage: "exit",
			help:  "Leaves the shell",
			args:  exactly(0),
			run: func(*Interpreter, []string) error {
				return errQuit
			},
		},
	}
}
