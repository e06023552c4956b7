package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/digest-flow/internal/logger"
)

type implWatcher struct {
	inputDir      string
	accept        Filter
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	settleDelay   time.Duration
	wg            sync.WaitGroup
}

// Start handles documents already waiting in the inbox, then monitors it
// for new ones until ctx is canceled. It returns only after every handler it
// started has finished.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Inbox watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)

	err := w.watch(ctx)

	w.logger.Info(ctx, "Waiting for ongoing summaries to complete...")
	w.wg.Wait()
	w.logger.Info(ctx, "Inbox watcher stopped")
	return err
}

func (w *implWatcher) watch(ctx context.Context) error {
	if err := w.drainExisting(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			// Only process CREATE events
			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !w.wants(event.Name) {
				w.logger.Debug(ctx, "Ignoring file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New document detected: %s", event.Name)

			// Small delay to ensure file is fully written
			time.Sleep(w.settleDelay)

			if err := w.dispatch(ctx, event.Name); err != nil {
				return err
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

func (w *implWatcher) drainExisting(ctx context.Context) error {
	entries, err := os.ReadDir(w.inputDir)
	if err != nil {
		return fmt.Errorf("scan inbox: %w", err)
	}

	for _, e := range entries {
		path := filepath.Join(w.inputDir, e.Name())
		if e.IsDir() || !w.wants(path) {
			continue
		}
		w.logger.Info(ctx, "Found waiting document: %s", path)
		if err := w.dispatch(ctx, path); err != nil {
			return err
		}
	}
	return nil
}

// dispatch acquires a slot (blocking if max concurrent reached) and runs the
// handler in a goroutine.
func (w *implWatcher) dispatch(ctx context.Context, path string) error {
	select {
	case w.semaphore <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() { <-w.semaphore }()

		if err := w.handler(ctx, path); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", path, err)
		}
	}()
	return nil
}

func (w *implWatcher) wants(path string) bool {
	// Editors and partial downloads leave hidden temp files behind.
	if strings.HasPrefix(filepath.Base(path), ".") {
		return false
	}
	return w.accept == nil || w.accept(path)
}
