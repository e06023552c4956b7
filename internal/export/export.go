package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// Export writes text in every requested format to dir/base.<format> and
// returns the written paths in the order of formats.
func Export(ctx context.Context, text string, style Style, dir, base string, formats []Format) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	paths := make([]string, len(formats))
	g, ctx := errgroup.WithContext(ctx)
	for i, f := range formats {
		path := filepath.Join(dir, base+"."+string(f))
		paths[i] = path

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			switch f {
			case PDF:
				if err := WritePDF(path, text, style); err != nil {
					return fmt.Errorf("write pdf: %w", err)
				}
			case DOCX:
				if err := WriteDOCX(path, text, style); err != nil {
					return fmt.Errorf("write docx: %w", err)
				}
			default:
				return fmt.Errorf("unknown export format %q", f)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
