package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyland/internal/game"
	"github.com/vovakirdan/skyland/internal/platform/tui"
	"github.com/vovakirdan/skyland/internal/storage"
)

// summaryRuns is how many runs the exit summary lists.
const summaryRuns = 10

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Skyland",
	Long: `Start a game.

Controls:
  Up/W/K     - Move up
  Down/S/J   - Move down
  Space/P    - Pause
  R/Enter    - Start / restart
  H          - Run history
  Q/Ctrl+C   - Quit

Examples:
  skyland play
  skyland play --seed 7
  skyland play --log-file skyland.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	session, err := game.NewSession(cfg, game.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Info("session created", "seed", session.Seed(), "tick_rate", cfg.TickRate)

	store, err := storage.Open()
	if err != nil {
		// The game still works, runs are just not recorded
		logger.Warn("run history unavailable", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	// Get terminal size before the first WindowSizeMsg arrives
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.Run(session, store, logger, width, height); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}

	if store != nil {
		return printSummary(cmd.OutOrStdout(), store)
	}
	return nil
}

// printSummary prints the runs finished during this process.
func printSummary(w io.Writer, store *storage.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	if stats.Runs == 0 {
		fmt.Fprintln(w, "No runs finished.")
		return nil
	}

	runs, err := store.RecentRuns(summaryRuns)
	if err != nil {
		return err
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("#", "Score", "Ticks", "Bonuses", "Lost", "Ended").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, r := range runs {
		t.Row(
			strconv.FormatInt(r.ID, 10),
			strconv.Itoa(r.Score),
			strconv.FormatUint(r.Ticks, 10),
			strconv.Itoa(r.Bonuses),
			strconv.Itoa(r.LivesLost),
			r.EndedAt.Local().Format("15:04:05"),
		)
	}

	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "Runs: %d  Best: %d  Average: %.1f  Bonuses: %d\n",
		stats.Runs, stats.BestScore, stats.AvgScore, stats.TotalBonuses)
	return nil
}
