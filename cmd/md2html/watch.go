package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce groups the burst of events editors emit for one save.
const watchDebounce = 100 * time.Millisecond

// fileWatcher re-renders inputs when they are written.
// Directories are watched rather than files so atomic saves
// (write temp, rename over) are still seen.
type fileWatcher struct {
	watcher *fsnotify.Watcher
	files   map[string]FileToConvert // keyed by absolute input path
}

// newFileWatcher starts watching the directories containing files.
func newFileWatcher(files []FileToConvert) (*fileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	w := &fileWatcher{watcher: watcher, files: make(map[string]FileToConvert, len(files))}
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f.InputPath)
		if err != nil {
			_ = watcher.Close()
			return nil, fmt.Errorf("resolving %s: %w", f.InputPath, err)
		}
		w.files[abs] = f
		dirs[filepath.Dir(abs)] = true
	}

	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			_ = watcher.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
	}
	return w, nil
}

// Run converts changed files until ctx is canceled.
func (w *fileWatcher) Run(ctx context.Context, params *conversionParams, env *Environment) error {
	pending := make(map[string]FileToConvert)
	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if f, ok := w.files[abs]; ok {
				pending[abs] = f
				timer.Reset(watchDebounce)
			}

		case <-timer.C:
			for _, f := range pending {
				env.Log.Debugf("changed: %s", f.InputPath)
				printResult(convertFile(ctx, params, f), env)
			}
			clear(pending)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			env.Log.Warnf("watch: %v", err)
		}
	}
}

// Close stops watching.
func (w *fileWatcher) Close() error {
	return w.watcher.Close()
}
