package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kerbaras/scriptures/pkg/data"
	"github.com/kerbaras/scriptures/pkg/sources"
)

var ErrNoReference = errors.New("reference tables unavailable")

// ReferenceCache stores the volume and book tables between sessions.
type ReferenceCache interface {
	SaveReference(volumes []data.Volume, books []data.Book) error
	LoadReference() ([]data.Volume, []data.Book, error)
}

// LoadReference fetches the volume and book tables concurrently and
// cross-references them once both have arrived. Fresh tables are written to
// cache; when a fetch fails the cached tables are used instead. cache may be
// nil.
func LoadReference(ctx context.Context, source sources.Source, cache ReferenceCache, log *zap.Logger) (*data.Reference, error) {
	var (
		volumes []data.Volume
		books   []data.Book
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		volumes, err = source.GetVolumes(egCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		books, err = source.GetBooks(egCtx)
		return err
	})

	if err := eg.Wait(); err != nil {
		log.Warn("metadata fetch failed, falling back to cache", zap.Error(err))
		return loadCachedReference(cache, err, log)
	}

	if cache != nil {
		if err := cache.SaveReference(volumes, books); err != nil {
			log.Warn("failed to cache reference tables", zap.Error(err))
		}
	}

	log.Info("reference loaded",
		zap.Int("volumes", len(volumes)),
		zap.Int("books", len(books)))
	return data.NewReference(volumes, books), nil
}

func loadCachedReference(cache ReferenceCache, fetchErr error, log *zap.Logger) (*data.Reference, error) {
	if cache == nil {
		return nil, fmt.Errorf("%w: %w", ErrNoReference, fetchErr)
	}

	volumes, books, err := cache.LoadReference()
	if err != nil {
		return nil, fmt.Errorf("%w: %w (cache: %v)", ErrNoReference, fetchErr, err)
	}
	if len(volumes) == 0 || len(books) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrNoReference, fetchErr)
	}

	log.Info("reference loaded from cache",
		zap.Int("volumes", len(volumes)),
		zap.Int("books", len(books)))
	return data.NewReference(volumes, books), nil
}
