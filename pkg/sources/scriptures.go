package sources

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/kerbaras/scriptures/pkg/data"
	"github.com/kerbaras/scriptures/pkg/utils"
)

const (
	DefaultBaseURL     = "http://scriptures.byu.edu/mapscrip"
	DefaultBooksPath   = "/model/books.php"
	DefaultVolumesPath = "/model/volumes.php"
	DefaultChapterPath = "/mapgetscrip.php"
)

// Scriptures talks to the mapscrip PHP service.
type Scriptures struct {
	api         *utils.API
	booksPath   string
	volumesPath string
	chapterPath string
}

type Option func(*Scriptures)

func WithPaths(books, volumes, chapter string) Option {
	return func(s *Scriptures) {
		if books != "" {
			s.booksPath = books
		}
		if volumes != "" {
			s.volumesPath = volumes
		}
		if chapter != "" {
			s.chapterPath = chapter
		}
	}
}

func NewScriptures(baseURL string, timeout time.Duration, opts ...Option) *Scriptures {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	s := &Scriptures{
		api:         utils.NewAPI(baseURL, timeout),
		booksPath:   DefaultBooksPath,
		volumesPath: DefaultVolumesPath,
		chapterPath: DefaultChapterPath,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scriptures) GetVolumes(ctx context.Context) ([]data.Volume, error) {
	var volumes []data.Volume
	if err := s.api.Get(ctx, s.volumesPath, nil, &volumes); err != nil {
		return nil, fmt.Errorf("failed to fetch volumes: %w", err)
	}
	return volumes, nil
}

// GetBooks returns the books table ordered by id. The service keys books by
// their id.
func (s *Scriptures) GetBooks(ctx context.Context) ([]data.Book, error) {
	var keyed map[string]data.Book
	if err := s.api.Get(ctx, s.booksPath, nil, &keyed); err != nil {
		return nil, fmt.Errorf("failed to fetch books: %w", err)
	}

	books := make([]data.Book, 0, len(keyed))
	for key, book := range keyed {
		if book.ID == 0 {
			id, err := strconv.Atoi(key)
			if err != nil {
				return nil, fmt.Errorf("invalid book key %q: %w", key, err)
			}
			book.ID = id
		}
		books = append(books, book)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })

	return books, nil
}

// GetChapter fetches the chapter markup and derives its text and markers.
func (s *Scriptures) GetChapter(ctx context.Context, req data.ChapterRequest) (*data.ChapterContent, error) {
	markup, err := s.api.GetText(ctx, s.chapterPath, ChapterParams(req))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch book %d chapter %d: %w", req.BookID, req.Chapter, err)
	}

	text, err := utils.HTMLToText(markup)
	if err != nil {
		return nil, fmt.Errorf("failed to render chapter: %w", err)
	}

	markers, err := ExtractMarkers(markup)
	if err != nil {
		return nil, fmt.Errorf("failed to extract markers: %w", err)
	}

	return &data.ChapterContent{
		ChapterRequest: req,
		HTML:           markup,
		Text:           text,
		Markers:        markers,
	}, nil
}

// ChapterParams encodes a chapter request as query parameters. verses is
// always sent, empty when no range is requested.
func ChapterParams(req data.ChapterRequest) url.Values {
	params := url.Values{}
	params.Set("book", strconv.Itoa(req.BookID))
	params.Set("chap", strconv.Itoa(req.Chapter))
	params.Set("verses", req.Verses)
	if req.JST {
		params.Set("jst", "JST")
	}
	return params
}
