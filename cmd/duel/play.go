package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-duel/internal/config"
	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/game"
	"github.com/vovakirdan/tui-duel/internal/platform/tui"
	"github.com/vovakirdan/tui-duel/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fight a local duel",
	Long: `Start a duel with both players on one keyboard.

Controls:
  Player 1:  A/D move, W jump, F attack, S block
  Player 2:  arrow keys move, Up jump, K attack, Down block
  R          - Next round (after a knockout)
  P/Esc      - Pause
  Q/Ctrl+C   - Quit

Examples:
  duel play
  duel play --fps 30
  duel play --config ./my-tuning.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	duelCfg, err := config.LoadDuel(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open rounds database: %v\n", err)
		// Continue without persistence - the duel still works
		store = nil
	}

	match := game.NewMatch(duelCfg.Tuning())
	runErr := tui.Run(match, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running duel: %v\n", runErr)
		os.Exit(1)
	}
}
