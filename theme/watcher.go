package theme

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/randalmurphal/resumekit/template"
)

// ReloadFunc is called after each reload attempt. set is nil when the
// reload failed.
type ReloadFunc func(set *Set, err error)

// Watcher keeps an Evaluator in sync with a theme directory: whenever the
// manifest or a theme file changes, the whole set is reloaded and
// re-registered. Registration overwrites by name, so renders between
// events keep working off the last good set.
type Watcher struct {
	dir      string
	ev       *template.Evaluator
	fw       *fsnotify.Watcher
	onReload ReloadFunc
	done     chan struct{}
}

// Watch loads dir into ev and starts watching it for changes. onReload may
// be nil. Close the returned Watcher to stop.
func Watch(dir string, ev *template.Evaluator, onReload ReloadFunc) (*Watcher, error) {
	set, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}
	set.Register(ev)

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("start theme watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	w := &Watcher{
		dir:      dir,
		ev:       ev,
		fw:       fw,
		onReload: onReload,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Close stops the watcher. Safe to call once.
func (w *Watcher) Close() error {
	err := w.fw.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			// Removes and renames reload too; if the directory is now
			// incomplete the failed reload reports through the callback
			// and the last good set stays registered.
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			// Editors often write temp files; only react to the manifest,
			// theme files and stylesheets.
			switch filepath.Ext(event.Name) {
			case ".toml", ".html", ".md", ".css":
			default:
				continue
			}
			w.reload()

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			if w.onReload != nil {
				w.onReload(nil, err)
			}
		}
	}
}

func (w *Watcher) reload() {
	set, err := LoadDir(w.dir)
	if err == nil {
		set.Register(w.ev)
	}
	if w.onReload != nil {
		w.onReload(set, err)
	}
}
