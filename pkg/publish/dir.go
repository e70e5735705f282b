package publish

import (
	"context"
	"os"
	"path/filepath"

	"github.com/vango-dev/vlite/internal/errors"
)

// DirPublisher writes pages below a local directory.
type DirPublisher struct {
	dir string
}

// NewDirPublisher creates a publisher rooted at dir.
func NewDirPublisher(dir string) *DirPublisher {
	return &DirPublisher{dir: dir}
}

// Publish writes html to dir/key, creating parent directories.
func (p *DirPublisher) Publish(ctx context.Context, key string, html []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rel := filepath.FromSlash(key)
	if !filepath.IsLocal(rel) {
		return errors.New("E501").WithDetailf("key %q escapes the output directory", key)
	}
	target := filepath.Join(p.dir, rel)

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return errors.New("E501").Wrap(err)
	}
	if err := os.WriteFile(target, html, 0644); err != nil {
		return errors.New("E501").Wrap(err)
	}
	return nil
}
