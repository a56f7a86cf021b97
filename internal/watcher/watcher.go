package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/slidecast/internal/logger"
)

// settleDelay gives the writer time to finish before the file is read.
const settleDelay = 500 * time.Millisecond

type implWatcher struct {
	inputDir string
	handler  EventHandler
	logger   logger.Logger
	watcher  *fsnotify.Watcher
}

// Start monitors the input directory and runs the handler for each new
// PDF. Conversions run one at a time: a new file arriving during a
// conversion waits its turn in the event queue.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Watching for PDFs in: %s", w.inputDir)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !isPDF(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-PDF file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New PDF detected: %s", event.Name)
			time.Sleep(settleDelay)

			if err := w.handler(ctx, event.Name); err != nil {
				w.logger.Error(ctx, "Failed to convert %s: %v", event.Name, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func isPDF(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".pdf"
}
