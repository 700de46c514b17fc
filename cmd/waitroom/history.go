package main

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/waitroom/internal/journal"
)

var (
	flagHistorySession string
	flagHistoryLimit   int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded session transitions",
	Long: `Display the most recent lifecycle transitions from the journal,
newest first, followed by how often each game was played.

Examples:
  waitroom history
  waitroom history --limit 50
  waitroom history --session local`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagHistorySession, "session", "", "Only show this session (default: all)")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of transitions to show")
}

var (
	historyTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF8450"))
	historyHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("240"))
	historyMuted  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := journal.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	defer store.Close()

	entries, err := store.Recent(flagHistorySession, flagHistoryLimit)
	if err != nil {
		return fmt.Errorf("reading journal: %w", err)
	}

	fmt.Println(historyTitle.Render("Waitroom history"))
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println(historyMuted.Render("Nothing recorded yet."))
		fmt.Println()
		fmt.Println("Run 'waitroom play' to start a session.")
		return nil
	}

	fmt.Println(historyHeader.Render(fmt.Sprintf("  %-16s  %-20s  %-12s  %-10s  %s", "When", "Session", "Game", "From", "To")))
	for _, e := range entries {
		fmt.Printf("  %-16s  %-20s  %-12s  %-10s  %s\n",
			e.At.Local().Format("2006-01-02 15:04"), e.Session, e.Game, e.From, e.To)
	}

	plays, err := store.Plays("playing")
	if err != nil || len(plays) == 0 {
		return nil
	}
	games := make([]string, 0, len(plays))
	for g := range plays {
		games = append(games, g)
	}
	sort.Strings(games)

	fmt.Println()
	fmt.Println(historyHeader.Render("Plays"))
	for _, g := range games {
		fmt.Printf("  %-12s  %d\n", g, plays[g])
	}
	return nil
}
