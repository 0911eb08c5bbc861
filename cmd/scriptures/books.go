package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kerbaras/scriptures/pkg/data"
	"github.com/kerbaras/scriptures/pkg/navigation"
)

var booksCmd = &cobra.Command{
	Use:   "books [volume-id]",
	Short: "List books with their chapter counts",
	Long:  "Display the books of one volume, or of every volume, in a formatted table",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, cleanup, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		ref := ctrl.Reference()
		heading := "All books"
		var books []*data.Book
		if len(args) == 1 {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid volume id %q", args[0])
			}
			volume, ok := ref.Volume(id)
			if !ok {
				return fmt.Errorf("no volume %d", id)
			}
			heading = volume.FullName
			books = volume.Books
		} else {
			books = ref.Books()
		}

		if len(books) == 0 {
			fmt.Println("📚 No books found.")
			return nil
		}

		columns := []table.Column{
			{Title: "ID", Width: 6},
			{Title: "Book", Width: 36},
			{Title: "Abbr", Width: 10},
			{Title: "Chapters", Width: 9},
			{Title: "Hash", Width: 10},
		}

		rows := []table.Row{}
		for _, book := range books {
			rows = append(rows, table.Row{
				strconv.Itoa(book.ID),
				truncateString(book.FullName, 34),
				book.CiteAbbr,
				strconv.Itoa(book.NumChapters),
				navigation.Hash(book.VolumeID, book.ID),
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = lipgloss.NewStyle()
		t.SetStyles(s)

		fmt.Printf("\n📚 %s (%d books)\n\n", heading, len(books))
		fmt.Println(t.View())
		return nil
	},
}
