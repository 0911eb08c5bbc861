// Package navigation turns hash fragments into navigation targets and
// computes the affordances around a chapter: adjacent chapters and the
// breadcrumb trail.
//
// A hash is a colon-delimited list of ids, optionally prefixed with '#':
//
//	""                  every volume
//	"<volume>"          one volume's table of contents
//	"<any>:<book>"      a book's chapter list
//	"<any>:<book>:<ch>" one chapter
//
// The first token of the two- and three-token forms is not consulted.
package navigation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kerbaras/scriptures/pkg/data"
)

type Kind int

const (
	Invalid Kind = iota
	ShowAllVolumes
	ShowVolume
	ShowBook
	ShowChapter
)

func (k Kind) String() string {
	switch k {
	case ShowAllVolumes:
		return "all-volumes"
	case ShowVolume:
		return "volume"
	case ShowBook:
		return "book"
	case ShowChapter:
		return "chapter"
	default:
		return "invalid"
	}
}

// Target is the decoded form of a hash. Only the ids relevant to Kind are set.
type Target struct {
	Kind     Kind
	VolumeID int
	BookID   int
	Chapter  int
}

func (t Target) String() string {
	switch t.Kind {
	case ShowVolume:
		return fmt.Sprintf("%s(%d)", t.Kind, t.VolumeID)
	case ShowBook:
		return fmt.Sprintf("%s(%d)", t.Kind, t.BookID)
	case ShowChapter:
		return fmt.Sprintf("%s(%d, %d)", t.Kind, t.BookID, t.Chapter)
	default:
		return t.Kind.String()
	}
}

// Resolver resolves hashes against a loaded reference.
type Resolver struct {
	ref *data.Reference
}

func NewResolver(ref *data.Reference) *Resolver {
	return &Resolver{ref: ref}
}

func (r *Resolver) Reference() *data.Reference {
	return r.ref
}

// Resolve decodes hash into a Target. Malformed, unknown or out-of-range
// input never fails: it resolves to ShowAllVolumes.
func (r *Resolver) Resolve(hash string) Target {
	home := Target{Kind: ShowAllVolumes}

	hash = strings.TrimPrefix(hash, "#")
	if hash == "" {
		return home
	}
	ids := strings.Split(hash, ":")

	switch len(ids) {
	case 1:
		volumeID, ok := parseID(ids[0])
		if !ok {
			return home
		}
		first, last, ok := r.ref.VolumeRange()
		if !ok || volumeID < first || volumeID > last {
			return home
		}
		return Target{Kind: ShowVolume, VolumeID: volumeID}

	case 2:
		bookID, ok := parseID(ids[1])
		if !ok {
			return home
		}
		if _, ok := r.ref.Book(bookID); !ok {
			return home
		}
		return Target{Kind: ShowBook, BookID: bookID}

	default:
		bookID, ok := parseID(ids[1])
		if !ok {
			return home
		}
		chapter, ok := parseID(ids[2])
		if !ok || !r.ChapterValid(bookID, chapter) {
			return home
		}
		return Target{Kind: ShowChapter, BookID: bookID, Chapter: chapter}
	}
}

// ChapterValid reports whether chapter exists in the book. Chapter 0 is
// valid only for books without numbered chapters.
func (r *Resolver) ChapterValid(bookID, chapter int) bool {
	book, ok := r.ref.Book(bookID)
	if !ok || chapter < 0 || chapter > book.NumChapters {
		return false
	}
	if chapter == 0 && book.NumChapters > 0 {
		return false
	}
	return true
}

func parseID(token string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, false
	}
	return n, true
}
