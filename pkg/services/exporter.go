package services

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/kerbaras/scriptures/pkg/data"
	"github.com/kerbaras/scriptures/pkg/integrations"
	"github.com/kerbaras/scriptures/pkg/sources"
)

// ExportProgress represents the progress of an export operation
type ExportProgress struct {
	BookID  int
	Chapter int
	Done    int
	Total   int
	Status  string // "fetching", "processing", "complete", "error"
	Error   error
}

// Exporter fetches every chapter of a book and hands them to a processor.
type Exporter struct {
	ref          *data.Reference
	source       sources.Source
	processor    integrations.Processor
	limiter      *rate.Limiter
	concurrency  int
	log          *zap.Logger
	progressChan chan ExportProgress
}

// NewExporter creates an Exporter issuing at most rps chapter requests per
// second.
func NewExporter(ref *data.Reference, source sources.Source, processor integrations.Processor, rps float64, log *zap.Logger) *Exporter {
	return &Exporter{
		ref:          ref,
		source:       source,
		processor:    processor,
		limiter:      rate.NewLimiter(rate.Limit(rps), 1),
		concurrency:  3,
		log:          log,
		progressChan: make(chan ExportProgress, 100),
	}
}

// GetProgressChannel returns the channel for receiving export progress updates
func (e *Exporter) GetProgressChannel() <-chan ExportProgress {
	return e.progressChan
}

// ExportBook fetches all chapters of bookID (chapter 0 for an unchaptered
// book) and returns the path of the processed output.
func (e *Exporter) ExportBook(ctx context.Context, bookID int) (string, error) {
	book, ok := e.ref.Book(bookID)
	if !ok {
		return "", fmt.Errorf("unknown book %d", bookID)
	}

	numbers := []int{0}
	if book.NumChapters > 0 {
		numbers = make([]int, book.NumChapters)
		for i := range numbers {
			numbers[i] = i + 1
		}
	}

	chapters := make([]*data.ChapterContent, len(numbers))
	var done atomic.Int32

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(e.concurrency)
	for i, chapter := range numbers {
		eg.Go(func() error {
			if err := e.limiter.Wait(egCtx); err != nil {
				return err
			}
			content, err := e.source.GetChapter(egCtx, data.ChapterRequest{BookID: bookID, Chapter: chapter})
			if err != nil {
				e.sendProgress(ExportProgress{BookID: bookID, Chapter: chapter, Total: len(numbers), Status: "error", Error: err})
				return fmt.Errorf("chapter %d: %w", chapter, err)
			}
			chapters[i] = content
			e.sendProgress(ExportProgress{BookID: bookID, Chapter: chapter, Done: int(done.Add(1)), Total: len(numbers), Status: "fetching"})
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		e.log.Warn("export failed", zap.Int("book", bookID), zap.Error(err))
		return "", fmt.Errorf("failed to fetch %s: %w", book.FullName, err)
	}

	e.sendProgress(ExportProgress{BookID: bookID, Done: len(numbers), Total: len(numbers), Status: "processing"})

	path, err := e.processor.Process(book, chapters)
	if err != nil {
		return "", fmt.Errorf("failed to process %s: %w", book.FullName, err)
	}

	e.sendProgress(ExportProgress{BookID: bookID, Done: len(numbers), Total: len(numbers), Status: "complete"})
	e.log.Info("book exported", zap.Int("book", bookID), zap.String("path", path))
	return path, nil
}

// sendProgress sends a progress update (non-blocking)
func (e *Exporter) sendProgress(progress ExportProgress) {
	select {
	case e.progressChan <- progress:
	default:
		// Channel full, skip this update
	}
}

// Close closes the progress channel. The exporter must not be used after.
func (e *Exporter) Close() {
	close(e.progressChan)
}
