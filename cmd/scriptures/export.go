package cmd

import (
	"fmt"
	"strconv"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [book-id]",
	Short: "Export a whole book as EPUB",
	Long:  "Fetch every chapter of a book and compile them into a single EPUB file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		bookID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid book id %q", args[0])
		}

		ctrl, cleanup, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		book, ok := ctrl.Reference().Book(bookID)
		if !ok {
			return fmt.Errorf("no book %d", bookID)
		}

		total := max(book.NumChapters, 1)
		exporter := ctrl.NewExporter(output)
		bar := progressbar.NewOptions(total,
			progressbar.OptionSetDescription("📥 "+book.FullName),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)

		// Listen for progress
		done := make(chan struct{})
		go func() {
			defer close(done)
			for progress := range exporter.GetProgressChannel() {
				switch progress.Status {
				case "fetching":
					bar.Describe("📥 " + book.Title(progress.Chapter))
					_ = bar.Set(progress.Done)
				case "processing":
					bar.Describe("📦 compiling EPUB")
				case "error":
					bar.Describe(fmt.Sprintf("⚠️  %s: %v", book.Title(progress.Chapter), progress.Error))
				}
			}
		}()

		path, err := exporter.ExportBook(cmd.Context(), bookID)
		exporter.Close()
		<-done
		_ = bar.Finish()
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		fmt.Printf("📖 EPUB created: %s\n", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "output directory (defaults to export_dir)")
}
