package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// moveTo moves a document into dir, keeping its file name, and returns the
// new path.
func (p *implProcessor) moveTo(ctx context.Context, path, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	destPath := filepath.Join(dir, filepath.Base(path))

	p.logger.Info(ctx, "Moving document: %s -> %s", path, destPath)

	if err := os.Rename(path, destPath); err != nil {
		return "", fmt.Errorf("move document: %w", err)
	}

	return destPath, nil
}
