package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	game_log "github.com/ingyamilmolinar/popwrap/internal/log"
)

// reloadSettle lets editors finish write-rename sequences before reading.
const reloadSettle = 50 * time.Millisecond

// Watch reloads the config at path whenever it changes and sends every
// successfully parsed version on the returned channel. The directory is
// watched rather than the file so atomic saves are seen. The channel is
// closed when ctx is done.
func Watch(ctx context.Context, path string, logger *game_log.Logger) (<-chan *Config, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch config dir %s: %w", dir, err)
	}

	out := make(chan *Config, 1)
	go func() {
		defer close(out)
		defer w.Close()

		var settle <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(path) {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
					settle = time.After(reloadSettle)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warnf("[CONFIG] watcher error: %v", err)
			case <-settle:
				settle = nil
				cfg, err := Load(path)
				if err != nil {
					logger.Errorf("[CONFIG] reload failed: %v", err)
					continue
				}
				logger.Infof("[CONFIG] reloaded %s", path)
				// keep only the newest version if the consumer is behind
				select {
				case <-out:
				default:
				}
				select {
				case out <- cfg:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
