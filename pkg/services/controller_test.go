package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/kerbaras/scriptures/pkg/config"
	"github.com/kerbaras/scriptures/pkg/data"
)

func newTestController(t *testing.T, source *fakeSource) *Controller {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.DBPath = filepath.Join(t.TempDir(), "scriptures.db")
	cfg.ExportDir = t.TempDir()

	repo, err := data.NewDuckDBRepository(cfg.DBPath)
	require.NoError(t, err)

	c := newController(cfg, zaptest.NewLogger(t), source, repo)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestControllerBootstrapAndRead(t *testing.T) {
	c := newTestController(t, newFakeSource())

	ref, err := c.Bootstrap(context.Background())
	require.NoError(t, err)
	assert.Same(t, ref, c.Reference())

	view, err := c.Navigator().Navigate(context.Background(), "0:140:2")
	require.NoError(t, err)
	assert.Equal(t, "Matthew 2", view.Title())

	visits, err := c.RecentVisits(10)
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, "0:140:2", visits[0].Hash)
}

func TestControllerBootstrapUsesCachedReference(t *testing.T) {
	source := newFakeSource()
	c := newTestController(t, source)

	_, err := c.Bootstrap(context.Background())
	require.NoError(t, err)

	source.volumesErr = errors.New("offline")
	ref, err := c.Bootstrap(context.Background())
	require.NoError(t, err)
	assert.Len(t, ref.Books(), 4)
}

func TestControllerExport(t *testing.T) {
	c := newTestController(t, newFakeSource())
	_, err := c.Bootstrap(context.Background())
	require.NoError(t, err)

	exporter := c.NewExporter("")
	defer exporter.Close()

	path, err := exporter.ExportBook(context.Background(), 102)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(c.cfg.ExportDir, "Obadiah.epub"), path)
	assert.FileExists(t, path)
}
