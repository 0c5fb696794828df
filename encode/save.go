package encode

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"rasterproc/raster"
)

const filePerm = 0o644

// Save encodes b into a temporary file next to path and renames it into
// place once the data is flushed. On failure the temporary file is removed
// and nothing is left under path. The saved file gets mode 0644.
func Save(path string, f Format, b *raster.Buffer) (err error) {
	enc, ok := encoders[f]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if err := check(b); err != nil {
		return fmt.Errorf("could not save %q: %w", path, err)
	}

	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	outFile, err := os.CreateTemp(dir, "."+name+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary destination for %q: %w", path, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush temporary destination for %q: %w", path, defErr)
			canRename = false
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination for %q: %w", path, defErr)
			canRename = false
		}

		if canRename {
			if defErr := os.Rename(outFile.Name(), path); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", path, defErr)
			}
		}
		if err != nil {
			_ = os.Remove(outFile.Name())
			return
		}
		slog.Info("Image saved", "file", path, "format", f, "width", b.Width(), "height", b.Height())
	}()

	if err = enc(outFile, b); err != nil {
		return fmt.Errorf("could not encode %s destination %q: %w", f, path, err)
	}
	if err = outFile.Chmod(filePerm); err != nil {
		return fmt.Errorf("could not set permissions of destination %q: %w", path, err)
	}

	canRename = true
	return nil
}

// Target is one output of SaveAll.
type Target struct {
	Path   string
	Format Format
}

// SaveAll writes b to every target concurrently. b must not be modified
// until SaveAll returns. The first failure cancels targets not yet started.
func SaveAll(ctx context.Context, b *raster.Buffer, targets []Target) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, t := range targets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return Save(t.Path, t.Format, b)
		})
	}
	return g.Wait()
}
