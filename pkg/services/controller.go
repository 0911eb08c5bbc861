package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kerbaras/scriptures/pkg/config"
	"github.com/kerbaras/scriptures/pkg/data"
	"github.com/kerbaras/scriptures/pkg/integrations"
	"github.com/kerbaras/scriptures/pkg/sources"
)

// Controller wires the content source, local store and services together.
// Navigator and Exporter are available once Bootstrap succeeded.
type Controller struct {
	cfg    *config.Config
	log    *zap.Logger
	source sources.Source
	repo   *data.Repository

	ref       *data.Reference
	navigator *Navigator
	board     *integrations.MarkerBoard
	placer    *MarkerPlacer
}

// NewController opens the local store and builds the HTTP source described by
// cfg.
func NewController(cfg *config.Config, log *zap.Logger) (*Controller, error) {
	repo, err := data.NewDuckDBRepository(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	source := sources.NewScriptures(cfg.BaseURL, cfg.Timeout,
		sources.WithPaths(cfg.BooksPath, cfg.VolumesPath, cfg.ChapterPath))

	return newController(cfg, log, source, repo), nil
}

func newController(cfg *config.Config, log *zap.Logger, source sources.Source, repo *data.Repository) *Controller {
	board := integrations.NewMarkerBoard()
	return &Controller{
		cfg:    cfg,
		log:    log,
		source: source,
		repo:   repo,
		board:  board,
		placer: NewMarkerPlacer(board, cfg.Markers.InitialDelay, cfg.Markers.MaxAttempts, log),
	}
}

// Bootstrap loads the reference tables and readies the navigator.
func (c *Controller) Bootstrap(ctx context.Context) (*data.Reference, error) {
	var cache ReferenceCache
	if c.repo != nil {
		cache = c.repo
	}

	ref, err := LoadReference(ctx, c.source, cache, c.log)
	if err != nil {
		return nil, err
	}

	var history HistoryRecorder
	if c.repo != nil {
		history = c.repo
	}

	c.ref = ref
	c.navigator = NewNavigator(ref, c.source, history, c.log)
	return ref, nil
}

func (c *Controller) Reference() *data.Reference {
	return c.ref
}

func (c *Controller) Navigator() *Navigator {
	return c.navigator
}

func (c *Controller) Markers() *integrations.MarkerBoard {
	return c.board
}

func (c *Controller) Placer() *MarkerPlacer {
	return c.placer
}

// NewExporter returns an exporter writing EPUBs to dir, or to the configured
// export directory when dir is empty.
func (c *Controller) NewExporter(dir string) *Exporter {
	if dir == "" {
		dir = c.cfg.ExportDir
	}
	return NewExporter(c.ref, c.source, integrations.NewEPubBuilder(dir), c.cfg.ExportRPS, c.log)
}

// RecentVisits lists the most recently read chapters.
func (c *Controller) RecentVisits(limit int) ([]*data.Visit, error) {
	if c.repo == nil {
		return nil, nil
	}
	return c.repo.RecentVisits(limit)
}

func (c *Controller) Close() error {
	if c.repo == nil {
		return nil
	}
	return c.repo.Close()
}
