package scene

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/anima-geom/engine/containers"
	"github.com/spaghettifunk/anima-geom/engine/core"
)

const historySize = 16

// Report is produced every time the watched scene is evaluated.
type Report struct {
	Path string
	At   time.Time
	// LogLevel requested by the scene, empty if unset or the load failed.
	LogLevel string
	Results  []Result
	Err      error
}

/**
 * @brief Watches a scene file and evaluates it again whenever it changes.
 * The directory holding the file is watched, so editors that replace the
 * file on save are handled too.
 */
type Watcher struct {
	path string

	mutex    sync.RWMutex
	history  *containers.RingQueue[Report]
	isClosed bool

	done     chan struct{}
	stopped  chan struct{}
	fsnotify *fsnotify.Watcher
	reports  chan Report
}

// NewWatcher starts watching path. The scene is evaluated once right away.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		history:  containers.NewRingQueue[Report](historySize),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
		fsnotify: fsWatch,
		reports:  make(chan Report, historySize),
	}
	go w.start()
	return w, nil
}

// Reports delivers one report per evaluation. It is closed by Close.
func (w *Watcher) Reports() <-chan Report {
	return w.reports
}

// History returns the latest reports, oldest first.
func (w *Watcher) History() []Report {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.history.Items()
}

func (w *Watcher) Close() error {
	w.mutex.Lock()
	if w.isClosed {
		w.mutex.Unlock()
		return errors.New("scene watcher already closed")
	}
	w.isClosed = true
	w.mutex.Unlock()

	close(w.done)
	<-w.stopped
	return nil
}

func (w *Watcher) start() {
	defer func() {
		close(w.reports)
		close(w.stopped)
	}()

	w.evaluate()
	for {
		select {

		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				core.LogDebug("scene: %s changed (%s)", w.path, e.Op)
				w.evaluate()
			}
			if e.Op&fsnotify.Remove != 0 {
				core.LogWarn("scene: %s was removed", w.path)
			}

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError(err.Error())
			w.publish(Report{Path: w.path, At: time.Now(), Err: err})

		case <-w.done:
			w.fsnotify.Close()
			return
		}
	}
}

func (w *Watcher) evaluate() {
	report := Report{Path: w.path, At: time.Now()}

	s, err := Load(w.path)
	if err != nil {
		core.LogError("scene: %s", err)
		report.Err = err
		w.publish(report)
		return
	}
	defer s.Release()

	report.LogLevel = s.LogLevel()
	report.Results, report.Err = s.Evaluate()
	w.publish(report)
}

func (w *Watcher) publish(r Report) {
	w.mutex.Lock()
	w.history.Push(r)
	w.mutex.Unlock()

	select {
	case w.reports <- r:
	case <-w.done:
	}
}
