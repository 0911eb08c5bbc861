package navigation

import (
	"strconv"
	"strings"

	"github.com/kerbaras/scriptures/pkg/data"
)

const RootTitle = "The Scriptures"

// Hash builds a hash from ids: Hash() is "", Hash(2) is "2" and
// Hash(0, 12, 3) is "0:12:3".
func Hash(ids ...int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ":")
}

type Crumb struct {
	Label string
	Hash  string
	Link  bool
}

type Trail []Crumb

// Breadcrumbs returns the ownership path of the current view. volume and book
// may be nil; chapter <= 0 ends the trail at the book.
func Breadcrumbs(volume *data.Volume, book *data.Book, chapter int) Trail {
	if volume == nil {
		return Trail{{Label: RootTitle}}
	}

	trail := Trail{{Label: RootTitle, Hash: Hash(), Link: true}}
	if book == nil {
		return append(trail, Crumb{Label: volume.FullName})
	}

	trail = append(trail, Crumb{Label: volume.FullName, Hash: Hash(volume.ID), Link: true})
	if chapter <= 0 {
		return append(trail, Crumb{Label: book.TocName})
	}

	return append(trail,
		Crumb{Label: book.TocName, Hash: Hash(0, book.ID), Link: true},
		Crumb{Label: strconv.Itoa(chapter)},
	)
}

// Parent returns the hash of the last linked crumb, the place "back" leads to.
// ok is false at the root.
func (t Trail) Parent() (string, bool) {
	for i := len(t) - 1; i >= 0; i-- {
		if t[i].Link {
			return t[i].Hash, true
		}
	}
	return "", false
}

func (t Trail) String() string {
	labels := make([]string, len(t))
	for i, c := range t {
		labels[i] = c.Label
	}
	return strings.Join(labels, " › ")
}
