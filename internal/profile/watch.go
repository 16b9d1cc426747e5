package profile

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Reload is the result of re-reading a watched profiles file.
type Reload struct {
	Builders []Builder
	Err      error
}

// Watcher re-reads a profiles file whenever it changes on disk.
type Watcher struct {
	path    string
	fsw     *fsnotify.Watcher
	updates chan Reload
	logger  *zap.Logger

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Watch starts watching path. The parent directory is watched so editors that
// replace the file on save are picked up too.
func Watch(ctx context.Context, path string, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve profiles path: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	ctx, cancel := context.WithCancel(ctx)
	w := &Watcher{
		path:    abs,
		fsw:     fsw,
		updates: make(chan Reload, 1),
		logger:  logger,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	go w.loop(ctx)
	return w, nil
}

// Updates delivers reload results. It is closed when the watcher stops.
func (w *Watcher) Updates() <-chan Reload {
	return w.updates
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		w.cancel()
		err = w.fsw.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.done)
	defer close(w.updates)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			builders, err := LoadFile(w.path)
			if err != nil {
				w.logger.Warn("profiles reload failed", zap.String("path", w.path), zap.Error(err))
			} else {
				w.logger.Info("profiles reloaded", zap.String("path", w.path), zap.Int("count", len(builders)))
			}
			w.send(ctx, Reload{Builders: builders, Err: err})
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("profiles watcher error", zap.Error(err))
			w.send(ctx, Reload{Err: fmt.Errorf("watch profiles: %w", err)})
		}
	}
}

// send keeps only the newest result when the consumer is behind.
func (w *Watcher) send(ctx context.Context, r Reload) {
	for {
		select {
		case w.updates <- r:
			return
		case <-ctx.Done():
			return
		default:
		}
		select {
		case <-w.updates:
		default:
		}
	}
}
