package scenario

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Loader reads a scenario file and watches it for changes.
type Loader struct {
	path     string
	logger   logrus.FieldLogger
	reload   sync.Mutex // serialises Reload and its callbacks
	mu       sync.RWMutex
	current  *Scenario
	onChange []func(old, cur *Scenario)
}

// NewLoader creates a Loader and performs the initial load.
// A nil logger means logrus.StandardLogger().
func NewLoader(path string, logger logrus.FieldLogger) (*Loader, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	s, err := Load(path)
	if err != nil {
		return nil, err
	}

	return &Loader{path: filepath.Clean(path), logger: logger, current: s}, nil
}

// Scenario returns the latest valid scenario.
func (l *Loader) Scenario() *Scenario {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.current
}

// OnChange registers a callback invoked with the previous and the new
// scenario whenever a reload succeeds. Callbacks never run concurrently.
func (l *Loader) OnChange(fn func(old, cur *Scenario)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// Watch starts a background goroutine that hot-reloads the scenario on file
// changes. The parent directory is watched so editors that replace the file
// by rename are seen too. Invalid edits are logged and the previous scenario
// is kept. Call the returned stop function to clean up.
func (l *Loader) Watch() (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("scenario watcher: %w", err)
	}
	if err = w.Add(filepath.Dir(l.path)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("scenario watcher add %s: %w", l.path, err)
	}

	done := make(chan struct{})
	var once sync.Once
	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != l.path {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					if _, err := l.Reload(); err != nil {
						l.logger.WithError(err).Warn("scenario reload rejected; keeping previous version")
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				l.logger.WithError(err).Warn("scenario watcher error")
			case <-done:
				return
			}
		}
	}()

	return func() { once.Do(func() { close(done) }) }, nil
}

// Reload forces an immediate re-read of the scenario file and notifies
// callbacks on success.
func (l *Loader) Reload() (*Scenario, error) {
	l.reload.Lock()
	defer l.reload.Unlock()

	s, err := Load(l.path)
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	old := l.current
	l.current = s
	callbacks := make([]func(old, cur *Scenario), len(l.onChange))
	copy(callbacks, l.onChange)
	l.mu.Unlock()

	l.logger.WithField("path", l.path).Debug("scenario reloaded")
	for _, fn := range callbacks {
		fn(old, s)
	}

	return s, nil
}
