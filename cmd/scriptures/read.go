package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kerbaras/scriptures/pkg/services"
)

var readCmd = &cobra.Command{
	Use:   "read [hash]",
	Short: "Print a chapter",
	Long: "Print the view of a hash: the volume or chapter list for volume and book hashes,\n" +
		"or the chapter text with its places for chapter hashes",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verses, _ := cmd.Flags().GetString("verses")
		jst, _ := cmd.Flags().GetBool("jst")

		ctrl, cleanup, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		hash := ""
		if len(args) == 1 {
			hash = args[0]
		}

		view, err := ctrl.Navigator().NavigateRequest(cmd.Context(), hash, verses, jst)
		if err != nil {
			return fmt.Errorf("could not load %q: %w", hash, err)
		}

		fmt.Println(view.Crumbs)
		fmt.Printf("\n📖 %s\n\n", view.Title())

		switch view.Kind {
		case services.HomeView:
			for _, section := range view.Sections {
				fmt.Printf("%s\n", section.Volume.FullName)
				for _, link := range section.Links {
					fmt.Printf("  %-10s %s\n", link.Hash, link.Label)
				}
			}

		case services.BookView:
			for i, link := range view.Chapters {
				fmt.Printf("  %-10s %s\n", link.Hash, view.Book.Title(i+1))
			}

		case services.ChapterView:
			fmt.Println(view.Content.Text)

			if markers := services.MergeMarkers(view.Content.Markers); len(markers) > 0 {
				fmt.Println("\n📍 Places")
				for _, m := range markers {
					fmt.Printf("  %s (%.4f, %.4f)\n", m.Placename, m.Latitude, m.Longitude)
				}
			}

			fmt.Println()
			if view.Previous != nil {
				fmt.Printf("‹ %s (%s)\n", view.Previous.Title, view.Previous.Hash())
			}
			if view.Next != nil {
				fmt.Printf("› %s (%s)\n", view.Next.Title, view.Next.Hash())
			}
		}
		return nil
	},
}

func init() {
	readCmd.Flags().String("verses", "", "verse range to highlight (e.g. 3-5)")
	readCmd.Flags().Bool("jst", false, "include the Joseph Smith Translation")
}
