package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/danielxmed/nobra-calculator-sub006/internal/registry"
	"github.com/danielxmed/nobra-calculator-sub006/internal/score"
)

var (
	listCategory string
	listSearch   string
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	idStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dimStyle      = lipgloss.NewStyle().Faint(true)
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available calculators",
	RunE: func(cmd *cobra.Command, args []string) error {
		all := registry.Default.List()
		shown := 0
		for _, m := range all {
			if listCategory != "" && m.Category != listCategory {
				continue
			}
			if listSearch != "" && !matches(m, listSearch) {
				continue
			}
			if shown == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), headerStyle.Render("Available calculators"))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s  %s\n",
				idStyle.Render(fmt.Sprintf("%-28s", m.ID)),
				categoryStyle.Render(fmt.Sprintf("%-18s", m.Category)),
				m.Title)
			shown++
		}
		fmt.Fprintln(cmd.OutOrStdout(), dimStyle.Render(fmt.Sprintf("%d of %d calculators", shown, len(all))))
		return nil
	},
}

func matches(m score.Metadata, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(m.ID), term) ||
		strings.Contains(strings.ToLower(m.Title), term) ||
		strings.Contains(strings.ToLower(m.Description), term)
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Filter by medical category")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Search by keyword in id, title, or description")
	rootCmd.AddCommand(listCmd)
}
