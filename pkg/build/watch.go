package build

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/garagekit/motodb/pkg/errors"
)

// Watch runs an initial build, then rebuilds whenever the source tree
// changes. Events are debounced so an editor save burst triggers one
// rebuild. A failed rebuild is logged and watching continues; the next
// change gets a fresh chance. Watch blocks until ctx is cancelled.
func (p *Pipeline) Watch(ctx context.Context, debounce time.Duration) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.WrapIO("watch", p.cfg.SourceDir, err)
	}
	defer func() { _ = watcher.Close() }()

	// The destination may live inside the source tree; watching it would
	// make every build retrigger itself.
	out := filepath.Clean(p.cfg.OutputDir)

	if err := watchTree(watcher, p.cfg.SourceDir, out); err != nil {
		return err
	}

	p.runAndReport(ctx)

	// The timer acts as the debounce: every event resets it, and a rebuild
	// only fires once it expires.
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if underDir(event.Name, out) {
				continue
			}
			// New subdirectories need their own watch.
			if event.Op&fsnotify.Create != 0 {
				_ = watchTree(watcher, event.Name, out)
			}
			p.logger.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("Source change")
			timer.Reset(debounce)

		case <-timer.C:
			p.runAndReport(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			p.logger.Error().Err(err).Msg("Watcher error")
		}
	}
}

// runAndReport executes one build, logging failure instead of propagating it.
func (p *Pipeline) runAndReport(ctx context.Context) {
	if _, err := p.Run(ctx); err != nil && ctx.Err() == nil {
		p.logger.Error().Err(err).Msg("Build failed")
	}
}

// watchTree registers root and every directory below it with the watcher,
// skipping the subtree rooted at exclude. Non-directories and vanished
// paths are ignored.
func watchTree(watcher *fsnotify.Watcher, root, exclude string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if underDir(path, exclude) {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return errors.WrapIO("watch", path, err)
		}
		return nil
	})
}

// underDir reports whether path is dir or lies below it.
func underDir(path, dir string) bool {
	path = filepath.Clean(path)
	return path == dir || strings.HasPrefix(path, dir+string(filepath.Separator))
}
