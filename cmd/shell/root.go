package shell

import (
	"os"

	"github.com/ValentinKolb/dTree/cmd/util"
	"github.com/ValentinKolb/dTree/lib/store/lstore"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ShellCmd starts the interactive shell
var ShellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive shell on an in-memory tree",
	Long: `Start an interactive shell on an in-memory hierarchical key-value store.
Commands are read from stdin (or from the file given with --script), one per line.
Type "help" for a list of commands. The configuration can be set via command line
flags or environment variables of the format DTREE_<flag> (e.g. DTREE_SEPARATOR=.)`,
	Args:    cobra.NoArgs,
	PreRunE: setup,
	RunE:    run,
}

func init() {
	key := "separator"
	ShellCmd.Flags().String(key, "/", util.WrapString("Separator between the segments of a key"))

	key = "ordered"
	ShellCmd.Flags().Bool(key, true, util.WrapString("List entries in hierarchical key order (false lists them in arbitrary order, which is faster)"))

	key = "script"
	ShellCmd.Flags().String(key, "", util.WrapString("Read the commands from this file instead of stdin"))
}

// setup binds the flags to viper and configures the loggers
func setup(cmd *cobra.Command, _ []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}
	return util.SetupLogging()
}

func run(cmd *cobra.Command, _ []string) error {
	opts := lstore.DefaultOptions()
	opts.Separator = viper.GetString("separator")
	opts.Ordered = viper.GetBool("ordered")
	if opts.Separator == "" {
		return errors.New("the separator must not be empty")
	}

	in := NewInterpreter(cmd.OutOrStdout(), opts)

	script := viper.GetString("script")
	if script == "" {
		return in.Run(cmd.InOrStdin(), true)
	}

	f, err := os.Open(script)
	if err != nil {
		return errors.Wrapf(err, "open script %s", script)
	}
	defer f.Close()
	return in.Run(f, false)
}
