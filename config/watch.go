package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// tuningSettle is how long the tuning file must stay quiet before a change
// is reported. Editors often truncate and then write, and a reload in between
// would read a partial file.
const tuningSettle = 100 * time.Millisecond

// TuningWatcher reports writes to the tuning file. The game loop drains
// Events between ticks; nothing is applied from the watcher goroutine.
type TuningWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	settle  time.Duration
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewTuningWatcher watches the directory holding path, since editors often
// replace files instead of writing them in place.
func NewTuningWatcher(path string) (*TuningWatcher, error) {
	return newTuningWatcher(path, tuningSettle)
}

func newTuningWatcher(path string, settle time.Duration) (*TuningWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	tw := &TuningWatcher{
		watcher: w,
		path:    abs,
		settle:  settle,
		Events:  make(chan string, 4),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go tw.run()
	return tw, nil
}

func (w *TuningWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// run reports a change once writes to the file stop for the settle period.
// Every new event pushes the report back.
func (w *TuningWatcher) run() {
	timer := time.NewTimer(w.settle)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()
	pending := false

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if pending && !timer.Stop() {
				<-timer.C
			}
			timer.Reset(w.settle)
			pending = true
		case <-timer.C:
			pending = false
			select {
			case w.Events <- w.path:
			default:
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

// Poll returns true if the file changed since the last call. It never blocks.
func (w *TuningWatcher) Poll() (changed bool, err error) {
	for {
		select {
		case <-w.Events:
			changed = true
		case err = <-w.Errors:
			return changed, err
		default:
			return changed, nil
		}
	}
}
