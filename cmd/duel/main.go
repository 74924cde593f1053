// duel is a terminal two-player local fighting game.
//
// Usage:
//
//	duel play                - Fight a local duel, both players on one keyboard
//	duel serve               - Host duels over SSH
//	duel history             - Browse past round results
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--db <path>     - Set database path (default: ~/.duel/rounds.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "duel",
	Short: "Terminal fighting game for two players on one keyboard",
	Long: `duel is a terminal-based two-player fighting game: movement, jumps,
melee attacks, blocking, and a stamina economy, fought one round at a time.

Available commands:
  play     - Fight a local duel
  serve    - Host duels over SSH
  history  - Browse past round results

Examples:
  duel play
  duel play --config ./my-tuning.yaml
  duel serve --ssh :2222
  duel history --plain`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.duel/rounds.db", "Path to round-history database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}
