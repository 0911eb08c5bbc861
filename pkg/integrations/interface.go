package integrations

import "github.com/kerbaras/scriptures/pkg/data"

// Processor turns a book's fetched chapters into an output file.
type Processor interface {
	Process(book *data.Book, chapters []*data.ChapterContent) (string, error)
}
