package confloader

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/yndnr/kappa-go/internal/telemetry/logger"
)

// Watcher watches a configuration file for changes.
type Watcher struct {
	watcher   *fsnotify.Watcher
	target    string
	callbacks []func(string)
	mu        sync.RWMutex
	done      chan struct{}
	stopOnce  sync.Once
	logger    logger.Logger
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithWatcherLogger sets the logger for the watcher.
func WithWatcherLogger(l logger.Logger) WatcherOption {
	return func(w *Watcher) {
		w.logger = l
	}
}

// NewWatcher creates a new configuration file watcher.
func NewWatcher(opts ...WatcherOption) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		done:    make(chan struct{}),
		logger:  logger.Default(),
	}

	for _, opt := range opts {
		opt(watcher)
	}

	return watcher, nil
}

// Watch starts tracking path. The parent directory is watched so that
// editors which replace the file on save are still seen; events for other
// files in the directory are ignored.
func (w *Watcher) Watch(path string) error {
	dir := filepath.Dir(path)
	if err := w.watcher.Add(dir); err != nil {
		w.logger.Error("failed to watch config directory", "path", dir, "error", err)
		return err
	}

	w.mu.Lock()
	w.target = filepath.Clean(path)
	w.mu.Unlock()

	w.logger.Debug("watching config file", "path", path)
	return nil
}

// OnChange registers a callback to be called when the watched file changes.
// The callback receives the path of the changed file.
func (w *Watcher) OnChange(callback func(string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Start blocks processing events until Stop is called.
func (w *Watcher) Start() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !w.matches(event.Name) {
				continue
			}
			w.logger.Debug("config file changed", "file", event.Name, "op", event.Op.String())
			w.notifyCallbacks(event.Name)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", "error", err)
		case <-w.done:
			return
		}
	}
}

// StartAsync starts watching in a goroutine.
func (w *Watcher) StartAsync() {
	go w.Start()
}

// Stop stops the watcher. It is safe to call more than once.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) matches(name string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.target == "" || filepath.Clean(name) == w.target
}

func (w *Watcher) notifyCallbacks(path string) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, cb := range w.callbacks {
		cb(path)
	}
}
