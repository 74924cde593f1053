package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-duel/internal/platform/tui"
	"github.com/vovakirdan/tui-duel/internal/storage"
)

var (
	flagPlain bool
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse past round results",
	Long: `Show the recorded round history and win tally.

By default opens an interactive table view; --plain prints to stdout and
--clear wipes the recorded history.

Examples:
  duel history
  duel history --plain
  duel history --clear`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print to stdout instead of the interactive view")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded rounds and exit")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening rounds database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRounds(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing rounds: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Round history cleared.")
		return
	}

	if !flagPlain {
		if err := tui.RunHistory(store, flagFPS); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing history: %v\n", err)
			os.Exit(1)
		}
		return
	}

	rounds, err := store.RecentRounds(20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		os.Exit(1)
	}

	wins, err := store.Wins()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving win counts: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Win tally: Player 1 - %d, Player 2 - %d\n\n", wins.Player1, wins.Player2)

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println("Run 'duel play' to fight the first one!")
		return
	}

	fps := flagFPS
	if fps <= 0 {
		fps = 60
	}

	fmt.Printf("  %-17s  %-6s  %-10s  %-12s  %s\n", "When", "Round", "Winner", "Health left", "Duration")
	fmt.Printf("  %-17s  %-6s  %-10s  %-12s  %s\n", "----", "-----", "------", "-----------", "--------")

	for _, r := range rounds {
		fmt.Printf("  %-17s  %-6d  %-10s  %-11.0f%%  %.1fs\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Round,
			r.Winner.String(),
			r.WinnerHealth,
			float64(r.DurationTicks)/float64(fps),
		)
	}
}
