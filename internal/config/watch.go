package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	suzuerrors "github.com/suzu-editor/suzu/internal/errors"
)

// Watch monitors the backing file and reloads the store each time it is
// written. onReload, if set, receives the result of every reload attempt and
// every watcher error. A failed reload keeps the previous document.
//
// The directory holding the file is watched rather than the file itself, so
// saves that rename a new file over the old one are seen too.
//
// Watch runs until ctx is cancelled.
func (s *Store) Watch(ctx context.Context, onReload func(error)) error {
	path := s.BackingPath()
	if path == "" {
		return suzuerrors.InvalidParameter("store has no backing path")
	}
	path = filepath.Clean(path)
	if onReload == nil {
		onReload = func(error) {}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return suzuerrors.Wrap(suzuerrors.ErrCodeInternal, "cannot create watcher", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return suzuerrors.WrapPath(suzuerrors.ErrCodeOpenFile, dir, "cannot watch directory", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			// a rename over the file arrives as Create
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			onReload(s.Reload())

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			onReload(suzuerrors.WrapPath(suzuerrors.ErrCodeInternal, path, "watcher error", err))
		}
	}
}
