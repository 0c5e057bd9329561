package profile

import (
	"context"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/spencer-p/kayakdash/pkg/meta"
)

// reloadOps are the events on the profile's name that may change its content.
// Saving through a temporary file shows up as a Create of the profile's name.
const reloadOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename

// Watch reloads the profile at path whenever it changes and passes the new
// options to onChange. It runs until ctx is cancelled.
//
// The directory is watched rather than the file so that saves which replace
// the file are seen. A profile that fails to load is logged and skipped.
func Watch(ctx context.Context, path string, onChange func(meta.Options)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	path = filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}
	log.Printf("Watching profile %s for changes", path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !touches(event, path) {
				continue
			}
			opts, err := Load(path)
			if err != nil {
				log.Printf("Not reloading profile %s: %v", path, err)
				continue
			}
			log.Printf("Reloaded profile %s after %s", path, event.Op)
			onChange(opts)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Profile watcher error: %v", err)
		}
	}
}

// touches reports whether event may have changed the profile at path.
func touches(event fsnotify.Event, path string) bool {
	return filepath.Clean(event.Name) == path && event.Op&reloadOps != 0
}
