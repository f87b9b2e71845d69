// Package watch reloads a control point file into an animation store
// whenever it changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/gregoryw3/open-cv-imgui/internal/engine/animation"
	"github.com/gregoryw3/open-cv-imgui/internal/logger"
)

// ControlPoints watches one control point file.
type ControlPoints struct {
	path    string
	store   *animation.Store
	watcher *fsnotify.Watcher
	log     *zap.Logger

	// OnReload, if set, is called after every reload attempt with the
	// load error or nil. It runs on the watcher goroutine.
	OnReload func(err error)
}

// NewControlPoints watches the directory of path so that editors which
// save by rename are still seen.
func NewControlPoints(path string, store *animation.Store) (*ControlPoints, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	return &ControlPoints{
		path:    abs,
		store:   store,
		watcher: w,
		log:     logger.Named("watch"),
	}, nil
}

// Reload loads the file now and replaces the store contents. On error
// the store is left unchanged.
func (c *ControlPoints) Reload() error {
	state, err := animation.LoadControlPoints(c.path)
	if err != nil {
		return err
	}
	c.store.Replace(state)
	return nil
}

// Run handles file events until ctx is done, then closes the watcher.
func (c *ControlPoints) Run(ctx context.Context) error {
	defer c.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-c.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != c.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			err := c.Reload()
			if err != nil {
				c.log.Warn("control point reload failed", zap.String("path", c.path), zap.Error(err))
			} else {
				c.log.Info("control points reloaded", zap.String("path", c.path))
			}
			if c.OnReload != nil {
				c.OnReload(err)
			}
		case err, ok := <-c.watcher.Errors:
			if !ok {
				return nil
			}
			c.log.Error("watcher error", zap.Error(err))
		}
	}
}
