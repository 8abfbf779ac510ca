// Package cli wires the filesift command line: one root command that runs
// a search, plus a version subcommand.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// rootCmd runs a search when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "filesift [flags] [root]",
	Short: "Find files by name pattern",
	Long: `filesift enumerates files beneath a root directory, filtered by a
glob or regex name pattern, a depth limit, a hidden-entry policy and
exclude patterns.

Globs match the whole file name: * matches any run of characters and ?
matches exactly one. Regex patterns (--regex) match any substring of the
name. Hidden directories are pruned entirely unless --hidden is given.

Defaults can be placed in .filesift.yml (current directory or $HOME) and
overridden with FILESIFT_* environment variables; flags win over both.

Examples:
  # All .txt files anywhere under the current directory
  filesift -p '*.txt'

  # Files directly inside /var/log only
  filesift -p '*.log' -d 0 /var/log

  # Case-insensitive regex over a project, skipping vendored code
  filesift -E -i -p 'readme' -x 'vendor/**' -x 'node_modules/**' ~/src

  # Keep printing new matches as they appear
  filesift -p '*.csv' --watch /data/incoming
`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runFind,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default is ./.filesift.yml, then $HOME)")
	addSearchFlags(rootCmd.Flags())
}

func addSearchFlags(flags *pflag.FlagSet) {
	flags.StringP("pattern", "p", "*", "name pattern (glob, or regex with --regex)")
	flags.BoolP("regex", "E", false, "interpret the pattern as a regular expression")
	flags.IntP("max-depth", "d", -1, "directory levels below the root to descend (-1 = unlimited, 0 = root only)")
	flags.BoolP("ignore-case", "i", false, "case-insensitive matching")
	flags.BoolP("hidden", "H", false, "include hidden files and directories")
	flags.StringArrayP("exclude", "x", nil, "glob pattern to prune, relative to the root (repeatable)")
	flags.BoolP("long", "l", false, "print size and modification time for each match")
	flags.Bool("count", false, "print only the number of matches")
	flags.BoolP("watch", "w", false, "after the initial scan, keep printing new matches")
	flags.BoolP("quiet", "q", false, "suppress diagnostics and the spinner")
	flags.BoolP("verbose", "v", false, "debug-level diagnostics")
}
