package data

import (
	"fmt"
	"time"
)

type Volume struct {
	ID        int    `json:"id"`
	Abbr      string `json:"abbr"`
	FullName  string `json:"fullName"`
	MinBookID int    `json:"minBookId"`
	MaxBookID int    `json:"maxBookId"`

	// Books is filled by NewReference from the MinBookID..MaxBookID range.
	Books []*Book `json:"-"`
}

type Book struct {
	ID          int    `json:"id"`
	VolumeID    int    `json:"parentBookId"`
	Abbr        string `json:"abbr"`
	CiteAbbr    string `json:"citeAbbr"`
	FullName    string `json:"fullName"`
	GridName    string `json:"gridName"`
	TocName     string `json:"tocName"`
	NumChapters int    `json:"numChapters"` // 0 means the book has no chapter level
}

// Title returns the display title for a chapter of the book: the TOC name,
// suffixed with the chapter number when chapter > 0.
func (b *Book) Title(chapter int) string {
	if chapter > 0 {
		return fmt.Sprintf("%s %d", b.TocName, chapter)
	}
	return b.TocName
}

type ChapterRequest struct {
	BookID  int
	Chapter int
	Verses  string // optional verse range, e.g. "3-5"
	JST     bool
}

type Marker struct {
	Placename string
	Latitude  float64
	Longitude float64
	Flag      string
}

type ChapterContent struct {
	ChapterRequest
	HTML    string
	Text    string
	Markers []Marker
}

type Visit struct {
	Hash      string
	Title     string
	VisitedAt time.Time
}
