package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/waitroom/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the games in the waiting room",
	Long: `Shows every registered game with its id, title, cadence and rules.
The id is what 'waitroom play' and 'waitroom render' expect.`,
	Args: cobra.NoArgs,
	Run:  runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println(historyMuted.Render("The waiting room is empty."))
		return
	}
	fmt.Println(gameTable(games))
	fmt.Println()
	fmt.Println(historyMuted.Render("waitroom play <id> to jump straight to a game's ready screen."))
}

// gameTable lays the catalogue out as a bordered table.
func gameTable(games []registry.Info) string {
	rows := make([][]string, 0, len(games))
	for _, g := range games {
		rows = append(rows, []string{g.Kind.String(), g.Icon + " " + g.Title, g.Rules})
	}

	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("ID", "GAME", "HOW TO PLAY").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return historyHeader.Padding(0, 1)
			case col == 0:
				return cell.Foreground(lipgloss.Color("#FF8450"))
			default:
				return cell
			}
		}).
		Render()
}
