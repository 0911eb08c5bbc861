package sources

import (
	"context"

	"github.com/kerbaras/scriptures/pkg/data"
)

type Source interface {
	GetVolumes(ctx context.Context) ([]data.Volume, error)
	GetBooks(ctx context.Context) ([]data.Book, error)
	GetChapter(ctx context.Context, req data.ChapterRequest) (*data.ChapterContent, error)
}
