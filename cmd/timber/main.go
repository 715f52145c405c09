// timber is a tree-chopping reflex game for the terminal.
//
// Usage:
//
//	timber                   - Play
//
// Flags:
//
//	--seed <value>      - Set RNG seed for reproducible tracks
//	--mute              - Disable sound
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagSeed    int64
	flagMute    bool
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "timber",
	Short: "Timber - chop the tree, dodge the branches",
	Long: `Timber is a reflex game played in the terminal.

Chop the trunk from the left or right. A branch is cleared only by
chopping its own side; hitting the other side ends the run. Each tree
must be felled before its timer runs out, and every tree leaves less
time for the next one.

Controls:
  Left/Right - Chop
  R          - Restart
  Q/Ctrl+C   - Quit

Examples:
  timber
  timber --seed 42
  timber --mute --log-file /tmp/timber.log`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}
