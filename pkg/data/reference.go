package data

import "sort"

// Reference is the immutable volume/book table for a session. It is built
// once from the two metadata fetches and shared read-only afterwards.
type Reference struct {
	volumes  []*Volume
	byVolume map[int]*Volume
	books    map[int]*Book
	bookIDs  []int
}

// NewReference cross-references volumes and books: every volume receives the
// books in its MinBookID..MaxBookID range, in id order. Ids in the range with
// no matching book are skipped.
func NewReference(volumes []Volume, books []Book) *Reference {
	r := &Reference{
		volumes:  make([]*Volume, 0, len(volumes)),
		byVolume: make(map[int]*Volume, len(volumes)),
		books:    make(map[int]*Book, len(books)),
		bookIDs:  make([]int, 0, len(books)),
	}

	for i := range books {
		book := books[i]
		if _, dup := r.books[book.ID]; !dup {
			r.bookIDs = append(r.bookIDs, book.ID)
		}
		r.books[book.ID] = &book
	}
	sort.Ints(r.bookIDs)

	for i := range volumes {
		volume := volumes[i]
		volume.Books = nil
		for id := volume.MinBookID; id <= volume.MaxBookID; id++ {
			if book, ok := r.books[id]; ok {
				volume.Books = append(volume.Books, book)
			}
		}
		r.volumes = append(r.volumes, &volume)
		r.byVolume[volume.ID] = &volume
	}
	sort.Slice(r.volumes, func(i, j int) bool {
		return r.volumes[i].ID < r.volumes[j].ID
	})

	return r
}

// Volumes returns every volume ordered by id.
func (r *Reference) Volumes() []*Volume {
	return r.volumes
}

func (r *Reference) Volume(id int) (*Volume, bool) {
	v, ok := r.byVolume[id]
	return v, ok
}

func (r *Reference) Book(id int) (*Book, bool) {
	b, ok := r.books[id]
	return b, ok
}

// Books returns every book ordered by id.
func (r *Reference) Books() []*Book {
	out := make([]*Book, len(r.bookIDs))
	for i, id := range r.bookIDs {
		out[i] = r.books[id]
	}
	return out
}

// VolumeRange returns the smallest and largest known volume ids. ok is false
// when no volumes are loaded.
func (r *Reference) VolumeRange() (first, last int, ok bool) {
	if len(r.volumes) == 0 {
		return 0, 0, false
	}
	return r.volumes[0].ID, r.volumes[len(r.volumes)-1].ID, true
}

// NextBook returns the book with the next-higher id after id.
func (r *Reference) NextBook(id int) (*Book, bool) {
	i := sort.SearchInts(r.bookIDs, id+1)
	if i >= len(r.bookIDs) {
		return nil, false
	}
	return r.books[r.bookIDs[i]], true
}

// PreviousBook returns the book with the next-lower id before id.
func (r *Reference) PreviousBook(id int) (*Book, bool) {
	i := sort.SearchInts(r.bookIDs, id)
	if i == 0 {
		return nil, false
	}
	return r.books[r.bookIDs[i-1]], true
}

// Empty reports whether no volumes or books are loaded.
func (r *Reference) Empty() bool {
	return len(r.volumes) == 0 || len(r.books) == 0
}
