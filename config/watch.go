package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/ardnew/softps2/pkg"
)

// Watch calls fn with the reloaded configuration each time the file at path
// is written or replaced, until ctx is done. A file that fails to load is
// logged and skipped; fn only ever sees valid configurations.
//
// The parent directory is watched so that editors which save by renaming a
// temporary file over path are seen.
func Watch(ctx context.Context, path string, fn func(*Config)) error {
	path = filepath.Clean(path)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create config watcher")
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(path)); err != nil {
		return errors.Wrapf(err, "watch %s", filepath.Dir(path))
	}
	pkg.LogDebug(pkg.ComponentConfig, "watching config", "path", path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			c, err := Load(path)
			if err != nil {
				pkg.LogWarn(pkg.ComponentConfig, "config reload failed", "path", path, "error", err)
				continue
			}
			pkg.LogInfo(pkg.ComponentConfig, "config reloaded", "path", path)
			fn(c)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			pkg.LogWarn(pkg.ComponentConfig, "config watcher error", "error", err)
		}
	}
}
