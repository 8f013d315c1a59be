package catalog

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to catalog files in a set of directories.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	doneCh  chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.doneCh
		close(w.Events)
		close(w.Errors)
	})
	return err
}

// debounce is how long a file must stay quiet before its change is reported.
const debounce = 100 * time.Millisecond

type pendingChange struct {
	timer *time.Timer
	gen   int
}

type settledChange struct {
	path string
	gen  int
}

func (w *Watcher) run() {
	defer close(w.doneCh)
	pending := make(map[string]*pendingChange)
	settled := make(chan settledChange, 16)
	gen := 0
	defer func() {
		for _, p := range pending {
			p.timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isCatalogFile(event.Name) {
				continue
			}
			// Every event restarts the quiet period for its file.
			if p, ok := pending[event.Name]; ok {
				p.timer.Stop()
			}
			gen++
			change := settledChange{path: event.Name, gen: gen}
			timer := time.AfterFunc(debounce, func() {
				select {
				case settled <- change:
				case <-w.closeCh:
				}
			})
			pending[event.Name] = &pendingChange{timer: timer, gen: gen}
		case change := <-settled:
			p, ok := pending[change.path]
			if !ok || p.gen != change.gen {
				continue
			}
			delete(pending, change.path)
			select {
			case w.Events <- change.path:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func isCatalogFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
