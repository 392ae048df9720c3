package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce is the quiet period after the last event before onChange fires.
const DefaultDebounce = 300 * time.Millisecond

// Watcher re-runs a callback whenever something below a directory changes.
// Bursts of events are coalesced into a single call.
type Watcher struct {
	Debounce time.Duration

	// Skip reports whether a directory, given relative to the watched root
	// with forward slashes, should not be watched.
	Skip func(rel string) bool

	Log logrus.FieldLogger
}

// New creates a Watcher with the default debounce and no skipped directories.
func New(log logrus.FieldLogger) *Watcher {
	return &Watcher{Debounce: DefaultDebounce, Log: log}
}

// Run watches root until ctx is cancelled. onChange is never called
// concurrently with itself.
func (w *Watcher) Run(ctx context.Context, root string, onChange func()) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	if err := w.addTree(fw, root, root); err != nil {
		return err
	}

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.logger().WithField("op", event.Op.String()).Debugf("change: %s", event.Name)
			if event.Op&fsnotify.Create != 0 {
				if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
					if err := w.addTree(fw, root, event.Name); err != nil {
						w.logger().Warnf("watching new directory: %v", err)
					}
				}
			}
			if w.skipped(root, event.Name) {
				continue
			}
			timer.Reset(debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger().Warnf("watcher error: %v", err)
		case <-timer.C:
			onChange()
		}
	}
}

// addTree recursively adds dir and its subdirectories, pruning skipped ones.
func (w *Watcher) addTree(fw *fsnotify.Watcher, root, dir string) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == dir {
				return fmt.Errorf("walking %s: %w", p, err)
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if p != root && w.skipped(root, p) {
			return filepath.SkipDir
		}
		if err := fw.Add(p); err != nil {
			return fmt.Errorf("watching %s: %w", p, err)
		}
		return nil
	})
}

func (w *Watcher) skipped(root, p string) bool {
	if w.Skip == nil {
		return false
	}
	rel, err := filepath.Rel(root, p)
	if err != nil || rel == "." {
		return false
	}
	return w.Skip(filepath.ToSlash(rel))
}

func (w *Watcher) logger() logrus.FieldLogger {
	if w.Log == nil {
		l := logrus.New()
		l.SetOutput(os.Stderr)
		w.Log = l
	}
	return w.Log
}
