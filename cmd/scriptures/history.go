package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently read chapters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		ctrl, cleanup, err := newController()
		if err != nil {
			return err
		}
		defer cleanup()

		visits, err := ctrl.RecentVisits(limit)
		if err != nil {
			return err
		}

		if len(visits) == 0 {
			fmt.Println("🕮 Nothing read yet. Run 'scriptures' to start reading.")
			return nil
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
			Headers("When", "Chapter", "Hash")

		for _, v := range visits {
			t.Row(v.VisitedAt.Local().Format("2006-01-02 15:04"), truncateString(v.Title, 40), v.Hash)
		}

		fmt.Println(t)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "number of visits to show")
}
