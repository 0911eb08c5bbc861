package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/kerbaras/scriptures/pkg/navigation"
)

var volumesCmd = &cobra.Command{
	Use:   "volumes",
	Short: "List the volumes of scripture",
	Long:  "Display every volume with its hash and the books it contains",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, cleanup, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		var (
			gold = lipgloss.Color("#E0B46C")

			headerStyle = lipgloss.NewStyle().Foreground(gold).Bold(true).Align(lipgloss.Center)
			cellStyle   = lipgloss.NewStyle().Padding(0, 1)
		)

		t := table.New().
			Border(lipgloss.HiddenBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(gold)).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				default:
					return cellStyle
				}
			}).
			Headers("Hash", "Volume", "Books", "First", "Last")

		volumes := ctrl.Reference().Volumes()
		for _, v := range volumes {
			first, last := "", ""
			if len(v.Books) > 0 {
				first = v.Books[0].TocName
				last = v.Books[len(v.Books)-1].TocName
			}
			t.Row(navigation.Hash(v.ID), v.FullName, fmt.Sprintf("%d", len(v.Books)), first, last)
		}

		fmt.Printf("\n📖 %s (%d volumes)\n\n", navigation.RootTitle, len(volumes))
		fmt.Println(t)
		return nil
	},
}
