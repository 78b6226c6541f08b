package theme

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/dmitrymomot/alertbox/pkg/logger"
)

// Watch reloads the palette at path whenever the file is written or
// replaced and passes it to onChange. It blocks until ctx is cancelled.
// A reload that fails is logged and the previous palette stays active.
//
// The parent directory is watched rather than the file, so editors that save
// by writing a temporary file and renaming it over path keep triggering reloads.
func Watch(ctx context.Context, path string, onChange func(Palette), log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}
	path = filepath.Clean(path)
	log = log.With(logger.Component("theme"), logger.Path(path))

	if _, err := os.Stat(path); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	log.DebugContext(ctx, "watching palette file")

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			// A rename over path shows up as Create; Remove and Rename of
			// path itself leave nothing to load yet.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			palette, err := Load(path)
			if err != nil {
				log.WarnContext(ctx, "palette reload failed, keeping previous palette", logger.Error(err))
				continue
			}

			log.InfoContext(ctx, "palette reloaded")
			onChange(palette)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.ErrorContext(ctx, "palette watcher error", logger.Error(err))
		}
	}
}
