package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kerbaras/scriptures/pkg/data"
	"github.com/kerbaras/scriptures/pkg/navigation"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [hash]",
	Short: "Show what a hash points to",
	Long:  "Resolve a location hash (volume, volume:book or volume:book:chapter) without fetching any text",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, cleanup, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		hash := ""
		if len(args) == 1 {
			hash = args[0]
		}

		resolver := ctrl.Navigator().Resolver()
		target := resolver.Resolve(hash)
		ref := resolver.Reference()

		fmt.Printf("%q → %s\n", hash, target)

		var (
			volume *data.Volume
			book   *data.Book
		)
		chapter := -1
		switch target.Kind {
		case navigation.ShowVolume:
			volume, _ = ref.Volume(target.VolumeID)
		case navigation.ShowBook, navigation.ShowChapter:
			book, _ = ref.Book(target.BookID)
			volume, _ = ref.Volume(book.VolumeID)
			if target.Kind == navigation.ShowChapter {
				chapter = target.Chapter
			}
		}
		fmt.Println(navigation.Breadcrumbs(volume, book, chapter))

		if target.Kind != navigation.ShowChapter {
			return nil
		}
		fmt.Printf("title: %s\n", book.Title(chapter))
		if prev, ok := resolver.PreviousChapter(target.BookID, target.Chapter); ok {
			fmt.Printf("previous: %s (%s)\n", prev.Title, prev.Hash())
		}
		if next, ok := resolver.NextChapter(target.BookID, target.Chapter); ok {
			fmt.Printf("next: %s (%s)\n", next.Title, next.Hash())
		}
		return nil
	},
}
