package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/kerbaras/scriptures/pkg/data"
	"github.com/kerbaras/scriptures/pkg/navigation"
	"github.com/kerbaras/scriptures/pkg/sources"
)

// ErrStale is returned for a chapter fetch that was superseded by a newer
// navigation before it completed.
var ErrStale = errors.New("navigation superseded")

type ViewKind int

const (
	HomeView ViewKind = iota
	BookView
	ChapterView
)

// Link is one navigable entry of a home or book view.
type Link struct {
	Label string
	Hash  string
}

// Section groups the book links of one volume on a home view.
type Section struct {
	Volume *data.Volume
	Links  []Link
}

// View is what the current hash should display.
type View struct {
	Kind   ViewKind
	Hash   string
	Target navigation.Target
	Crumbs navigation.Trail

	// HomeView
	Sections []Section

	// BookView and ChapterView
	Volume *data.Volume
	Book   *data.Book

	// BookView
	Chapters []Link

	// ChapterView
	Chapter  int
	Content  *data.ChapterContent
	Previous *navigation.Adjacent
	Next     *navigation.Adjacent

	// Generation identifies the navigation that produced the view.
	Generation uint64
}

// Title is the heading of the view.
func (v *View) Title() string {
	switch v.Kind {
	case BookView:
		return v.Book.FullName
	case ChapterView:
		return v.Book.Title(v.Chapter)
	default:
		if v.Target.Kind == navigation.ShowVolume && len(v.Sections) == 1 {
			return v.Sections[0].Volume.FullName
		}
		return navigation.RootTitle
	}
}

// HistoryRecorder keeps a log of visited chapters.
type HistoryRecorder interface {
	RecordVisit(hash, title string) error
}

// Navigator turns hashes into views. Navigations are ordered: starting one
// cancels the chapter fetch in flight, and a fetch that completes after being
// superseded reports ErrStale.
type Navigator struct {
	resolver *navigation.Resolver
	source   sources.Source
	history  HistoryRecorder
	log      *zap.Logger

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
}

func NewNavigator(ref *data.Reference, source sources.Source, history HistoryRecorder, log *zap.Logger) *Navigator {
	return &Navigator{
		resolver: navigation.NewResolver(ref),
		source:   source,
		history:  history,
		log:      log,
	}
}

func (n *Navigator) Resolver() *navigation.Resolver {
	return n.resolver
}

// Navigate resolves hash and builds its view.
func (n *Navigator) Navigate(ctx context.Context, hash string) (*View, error) {
	return n.NavigateRequest(ctx, hash, "", false)
}

// NavigateRequest is Navigate with a verse range and JST flag forwarded to
// chapter fetches. Every navigation supersedes the ones still in flight.
func (n *Navigator) NavigateRequest(ctx context.Context, hash, verses string, jst bool) (*View, error) {
	target := n.resolver.Resolve(hash)
	n.log.Debug("navigate", zap.String("hash", hash), zap.Stringer("target", target))

	gen, fetchCtx := n.begin(ctx)
	defer n.finish(gen)

	var view *View
	switch target.Kind {
	case navigation.ShowVolume:
		view = n.home(target, target.VolumeID)

	case navigation.ShowBook:
		book, _ := n.resolver.Reference().Book(target.BookID)
		switch book.NumChapters {
		case 0:
			return n.chapter(fetchCtx, gen, target, book, 0, verses, jst)
		case 1:
			return n.chapter(fetchCtx, gen, target, book, 1, verses, jst)
		default:
			view = n.book(target, book)
		}

	case navigation.ShowChapter:
		book, _ := n.resolver.Reference().Book(target.BookID)
		return n.chapter(fetchCtx, gen, target, book, target.Chapter, verses, jst)

	default:
		view = n.home(target, 0)
	}

	view.Generation = gen
	return view, nil
}

// home lists every volume, or only volumeID when it is non-zero.
func (n *Navigator) home(target navigation.Target, volumeID int) *View {
	view := &View{Kind: HomeView, Hash: navigation.Hash(), Target: target}

	var shown *data.Volume
	for _, volume := range n.resolver.Reference().Volumes() {
		if volumeID != 0 && volume.ID != volumeID {
			continue
		}
		section := Section{Volume: volume}
		for _, book := range volume.Books {
			section.Links = append(section.Links, Link{
				Label: book.GridName,
				Hash:  navigation.Hash(volume.ID, book.ID),
			})
		}
		view.Sections = append(view.Sections, section)
		if volume.ID == volumeID {
			shown = volume
		}
	}

	if volumeID != 0 && shown == nil {
		// an id inside the volume range that no volume carries
		return n.home(target, 0)
	}
	if shown != nil {
		view.Hash = navigation.Hash(shown.ID)
	}
	view.Crumbs = navigation.Breadcrumbs(shown, nil, 0)
	return view
}

func (n *Navigator) book(target navigation.Target, book *data.Book) *View {
	volume, _ := n.resolver.Reference().Volume(book.VolumeID)

	view := &View{
		Kind:   BookView,
		Hash:   navigation.Hash(0, book.ID),
		Target: target,
		Volume: volume,
		Book:   book,
		Crumbs: navigation.Breadcrumbs(volume, book, 0),
	}
	for i := 1; i <= book.NumChapters; i++ {
		view.Chapters = append(view.Chapters, Link{
			Label: fmt.Sprintf("%d", i),
			Hash:  navigation.Hash(0, book.ID, i),
		})
	}
	return view
}

func (n *Navigator) chapter(ctx context.Context, gen uint64, target navigation.Target, book *data.Book, chapter int, verses string, jst bool) (*View, error) {
	volume, _ := n.resolver.Reference().Volume(book.VolumeID)
	hash := navigation.Hash(0, book.ID, chapter)

	content, err := n.source.GetChapter(ctx, data.ChapterRequest{
		BookID:  book.ID,
		Chapter: chapter,
		Verses:  verses,
		JST:     jst,
	})
	if !n.current(gen) {
		n.log.Debug("dropping stale chapter", zap.String("hash", hash), zap.Uint64("generation", gen))
		return nil, ErrStale
	}
	if err != nil {
		n.log.Warn("scripture request failed", zap.String("hash", hash), zap.Error(err))
		return nil, err
	}

	view := &View{
		Kind:       ChapterView,
		Hash:       hash,
		Target:     target,
		Volume:     volume,
		Book:       book,
		Chapter:    chapter,
		Content:    content,
		Crumbs:     navigation.Breadcrumbs(volume, book, chapter),
		Generation: gen,
	}
	if prev, ok := n.resolver.PreviousChapter(book.ID, chapter); ok {
		view.Previous = &prev
	}
	if next, ok := n.resolver.NextChapter(book.ID, chapter); ok {
		view.Next = &next
	}

	if n.history != nil {
		if err := n.history.RecordVisit(hash, view.Title()); err != nil {
			n.log.Warn("failed to record visit", zap.String("hash", hash), zap.Error(err))
		}
	}

	return view, nil
}

// begin starts a new navigation generation and cancels the previous fetch.
func (n *Navigator) begin(ctx context.Context) (uint64, context.Context) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.cancel != nil {
		n.cancel()
	}
	n.generation++
	fetchCtx, cancel := context.WithCancel(ctx)
	n.cancel = cancel
	return n.generation, fetchCtx
}

// finish releases the fetch context of gen if it is still the current one.
func (n *Navigator) finish(gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.generation == gen && n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
}

func (n *Navigator) current(gen uint64) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.generation == gen
}

// Current reports whether gen is the latest navigation generation.
func (n *Navigator) Current(gen uint64) bool {
	return n.current(gen)
}
