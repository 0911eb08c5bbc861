package navigation

// Adjacent is a chapter reachable by the next/previous affordance.
type Adjacent struct {
	BookID  int
	Chapter int
	Title   string
}

// Hash returns the chapter hash for the adjacent chapter.
func (a Adjacent) Hash() string {
	return Hash(0, a.BookID, a.Chapter)
}

// NextChapter returns the chapter after (bookID, chapter). At the end of a
// book it moves to the first chapter of the next book (chapter 0 when that
// book has no chapters). ok is false past the last book.
func (r *Resolver) NextChapter(bookID, chapter int) (Adjacent, bool) {
	book, ok := r.ref.Book(bookID)
	if !ok {
		return Adjacent{}, false
	}

	if chapter < book.NumChapters {
		return Adjacent{BookID: bookID, Chapter: chapter + 1, Title: book.Title(chapter + 1)}, true
	}

	next, ok := r.ref.NextBook(bookID)
	if !ok {
		return Adjacent{}, false
	}
	first := 0
	if next.NumChapters > 0 {
		first = 1
	}
	return Adjacent{BookID: next.ID, Chapter: first, Title: next.Title(first)}, true
}

// PreviousChapter returns the chapter before (bookID, chapter). At the start
// of a book it moves to the last chapter of the previous book, which is
// chapter 0 for a book without chapters. ok is false before the first book.
func (r *Resolver) PreviousChapter(bookID, chapter int) (Adjacent, bool) {
	book, ok := r.ref.Book(bookID)
	if !ok {
		return Adjacent{}, false
	}

	if chapter > 1 {
		return Adjacent{BookID: bookID, Chapter: chapter - 1, Title: book.Title(chapter - 1)}, true
	}

	prev, ok := r.ref.PreviousBook(bookID)
	if !ok {
		return Adjacent{}, false
	}
	return Adjacent{BookID: prev.ID, Chapter: prev.NumChapters, Title: prev.Title(prev.NumChapters)}, true
}
