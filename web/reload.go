package web

import (
	"context"
	"html/template"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Reloader re-parses templates from a directory whenever a file in it
// changes and swaps them into a Renderer. It is only used in development.
type Reloader struct {
	watcher  *fsnotify.Watcher
	dir      string
	funcs    template.FuncMap
	renderer *Renderer
	logger   *zap.Logger
	debounce time.Duration

	done      chan struct{}
	closeOnce sync.Once
}

// NewReloader starts watching dir. Close releases the watcher.
func NewReloader(dir string, funcs template.FuncMap, renderer *Renderer, logger *zap.Logger) (*Reloader, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}
	return &Reloader{
		watcher:  w,
		dir:      dir,
		funcs:    funcs,
		renderer: renderer,
		logger:   logger,
		debounce: 100 * time.Millisecond,
		done:     make(chan struct{}),
	}, nil
}

// Run processes file events until ctx is done or the reloader is closed.
func (r *Reloader) Run(ctx context.Context) error {
	var timer <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-r.done:
			return nil
		case ev, ok := <-r.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Ext(ev.Name) != ".html" {
				continue
			}
			timer = time.After(r.debounce)
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return nil
			}
			r.logger.Warn("template watcher error", zap.Error(err))
		case <-timer:
			timer = nil
			r.reload()
		}
	}
}

func (r *Reloader) reload() {
	t, err := TemplatesFromDir(r.dir, r.funcs)
	if err != nil {
		// Keep serving the last good set.
		r.logger.Error("template reload failed", zap.Error(err))
		return
	}
	r.renderer.Swap(t)
	r.logger.Info("templates reloaded", zap.String("dir", r.dir))
}

// Close stops Run and releases the watcher.
func (r *Reloader) Close() error {
	var err error
	r.closeOnce.Do(func() {
		close(r.done)
		err = r.watcher.Close()
	})
	return err
}
