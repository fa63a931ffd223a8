package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage abstracts resume/photo file persistence. The domain stores only
// the public URL; all file I/O goes through here.
type Storage interface {
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
	GetURL(ctx context.Context, path string) (string, error)
}

type Config struct {
	Type     string // local
	BasePath string // filesystem root
	BaseURL  string // public URL base
}

func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
