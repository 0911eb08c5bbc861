package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerbaras/scriptures/pkg/data"
)

// exampleResolver is the two-book corpus: an unchaptered introduction
// followed by a three-chapter book.
func exampleResolver() *Resolver {
	return NewResolver(data.NewReference(
		[]data.Volume{{ID: 1, FullName: "Volume One", MinBookID: 1, MaxBookID: 2}},
		[]data.Book{
			{ID: 1, VolumeID: 1, TocName: "Intro", NumChapters: 0},
			{ID: 2, VolumeID: 1, TocName: "Letters", NumChapters: 3},
		},
	))
}

func largerResolver() *Resolver {
	return NewResolver(data.NewReference(
		[]data.Volume{
			{ID: 1, FullName: "Old Testament", MinBookID: 1, MaxBookID: 3},
			{ID: 2, FullName: "New Testament", MinBookID: 4, MaxBookID: 5},
			{ID: 3, FullName: "Pearl", MinBookID: 6, MaxBookID: 6},
		},
		[]data.Book{
			{ID: 1, VolumeID: 1, TocName: "Genesis", NumChapters: 4},
			{ID: 2, VolumeID: 1, TocName: "Obadiah", NumChapters: 1},
			{ID: 3, VolumeID: 1, TocName: "Title Page", NumChapters: 0},
			{ID: 4, VolumeID: 2, TocName: "Matthew", NumChapters: 3},
			{ID: 5, VolumeID: 2, TocName: "Preface", NumChapters: 0},
			{ID: 6, VolumeID: 3, TocName: "Moses", NumChapters: 2},
		},
	))
}

func TestResolve(t *testing.T) {
	r := exampleResolver()
	home := Target{Kind: ShowAllVolumes}

	tests := []struct {
		name string
		hash string
		want Target
	}{
		{"empty", "", home},
		{"marker only", "#", home},
		{"volume", "1", Target{Kind: ShowVolume, VolumeID: 1}},
		{"volume with marker", "#1", Target{Kind: ShowVolume, VolumeID: 1}},
		{"volume below range", "0", home},
		{"volume above range", "2", home},
		{"volume not numeric", "abc", home},
		{"book", "1:2", Target{Kind: ShowBook, BookID: 2}},
		{"book first token ignored", "x:2", Target{Kind: ShowBook, BookID: 2}},
		{"book unknown", "1:3", home},
		{"book not numeric", "1:two", home},
		{"book missing", "1:", home},
		{"chapter", "1:2:3", Target{Kind: ShowChapter, BookID: 2, Chapter: 3}},
		{"chapter with marker", "#0:2:1", Target{Kind: ShowChapter, BookID: 2, Chapter: 1}},
		{"chapter zero in chaptered book", "1:2:0", home},
		{"chapter zero in unchaptered book", "1:1:0", Target{Kind: ShowChapter, BookID: 1, Chapter: 0}},
		{"chapter one in unchaptered book", "1:1:1", home},
		{"chapter past end", "1:2:4", home},
		{"chapter negative", "1:2:-1", home},
		{"chapter missing", "1:2:", home},
		{"chapter not numeric", "1:2:x", home},
		{"chapter unknown book", "1:9:1", home},
		{"extra tokens ignored", "1:2:3:7", Target{Kind: ShowChapter, BookID: 2, Chapter: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.hash))
		})
	}
}

func TestResolveEmptyReference(t *testing.T) {
	r := NewResolver(data.NewReference(nil, nil))

	for _, hash := range []string{"", "1", "1:1", "1:1:1"} {
		assert.Equal(t, ShowAllVolumes, r.Resolve(hash).Kind, "hash %q", hash)
	}
}

func TestResolveEveryVolumeInRange(t *testing.T) {
	r := largerResolver()

	for _, v := range r.Reference().Volumes() {
		got := r.Resolve(Hash(v.ID))
		assert.Equal(t, Target{Kind: ShowVolume, VolumeID: v.ID}, got)
	}
}

func TestResolveChapterValidity(t *testing.T) {
	r := largerResolver()

	for _, book := range r.Reference().Books() {
		for chapter := -1; chapter <= book.NumChapters+1; chapter++ {
			valid := chapter >= 0 && chapter <= book.NumChapters && !(chapter == 0 && book.NumChapters > 0)

			got := r.Resolve(Hash(0, book.ID, chapter))
			if valid {
				assert.Equal(t, Target{Kind: ShowChapter, BookID: book.ID, Chapter: chapter}, got)
			} else {
				assert.Equal(t, ShowAllVolumes, got.Kind, "book %d chapter %d", book.ID, chapter)
			}
		}
	}
}

func TestAdjacentChapterExample(t *testing.T) {
	r := exampleResolver()

	_, ok := r.NextChapter(2, 3)
	assert.False(t, ok, "no book after the last chapter")

	prev, ok := r.PreviousChapter(2, 1)
	require.True(t, ok)
	assert.Equal(t, Adjacent{BookID: 1, Chapter: 0, Title: "Intro"}, prev)

	next, ok := r.NextChapter(1, 0)
	require.True(t, ok)
	assert.Equal(t, Adjacent{BookID: 2, Chapter: 1, Title: "Letters 1"}, next)

	next, ok = r.NextChapter(2, 1)
	require.True(t, ok)
	assert.Equal(t, Adjacent{BookID: 2, Chapter: 2, Title: "Letters 2"}, next)

	_, ok = r.PreviousChapter(1, 0)
	assert.False(t, ok, "nothing before the first book")
}

func TestAdjacentChapterBoundaries(t *testing.T) {
	r := largerResolver()

	next, ok := r.NextChapter(2, 1)
	require.True(t, ok)
	assert.Equal(t, Adjacent{BookID: 3, Chapter: 0, Title: "Title Page"}, next)

	next, ok = r.NextChapter(3, 0)
	require.True(t, ok)
	assert.Equal(t, Adjacent{BookID: 4, Chapter: 1, Title: "Matthew 1"}, next)

	prev, ok := r.PreviousChapter(4, 1)
	require.True(t, ok)
	assert.Equal(t, Adjacent{BookID: 3, Chapter: 0, Title: "Title Page"}, prev)

	prev, ok = r.PreviousChapter(2, 1)
	require.True(t, ok)
	assert.Equal(t, Adjacent{BookID: 1, Chapter: 4, Title: "Genesis 4"}, prev)

	_, ok = r.NextChapter(42, 1)
	assert.False(t, ok, "unknown book has no neighbours")
	_, ok = r.PreviousChapter(42, 1)
	assert.False(t, ok)
}

func TestNextThenPreviousRoundTrips(t *testing.T) {
	r := largerResolver()

	for _, book := range r.Reference().Books() {
		first := 1
		if book.NumChapters == 0 {
			first = 0
		}
		for chapter := first; chapter <= book.NumChapters; chapter++ {
			next, ok := r.NextChapter(book.ID, chapter)
			if !ok {
				continue
			}
			back, ok := r.PreviousChapter(next.BookID, next.Chapter)
			require.True(t, ok)
			assert.Equal(t, book.ID, back.BookID, "from %d:%d", book.ID, chapter)
			assert.Equal(t, chapter, back.Chapter, "from %d:%d", book.ID, chapter)
		}
	}
}

func TestAdjacentResultsAlwaysResolve(t *testing.T) {
	r := largerResolver()

	for _, book := range r.Reference().Books() {
		for chapter := 0; chapter <= book.NumChapters; chapter++ {
			if !r.ChapterValid(book.ID, chapter) {
				continue
			}
			if next, ok := r.NextChapter(book.ID, chapter); ok {
				assert.Equal(t, ShowChapter, r.Resolve(next.Hash()).Kind, "next of %d:%d", book.ID, chapter)
			}
			if prev, ok := r.PreviousChapter(book.ID, chapter); ok {
				assert.Equal(t, ShowChapter, r.Resolve(prev.Hash()).Kind, "previous of %d:%d", book.ID, chapter)
			}
		}
	}
}

func TestTargetString(t *testing.T) {
	assert.Equal(t, "all-volumes", Target{Kind: ShowAllVolumes}.String())
	assert.Equal(t, "volume(2)", Target{Kind: ShowVolume, VolumeID: 2}.String())
	assert.Equal(t, "book(7)", Target{Kind: ShowBook, BookID: 7}.String())
	assert.Equal(t, "chapter(7, 3)", Target{Kind: ShowChapter, BookID: 7, Chapter: 3}.String())
	assert.Equal(t, "invalid", Target{}.String())
}
