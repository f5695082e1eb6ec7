package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// ChangeKind classifies an edited prefab file.
type ChangeKind int

const (
	ChangeOther ChangeKind = iota
	ChangeCatalog
	ChangeConfig
	ChangeScenario
	ChangeScript
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeCatalog:
		return "catalog"
	case ChangeConfig:
		return "config"
	case ChangeScenario:
		return "scenario"
	case ChangeScript:
		return "script"
	}
	return "other"
}

// Change is one debounced edit to a prefab file on disk.
type Change struct {
	Path string
	Kind ChangeKind
}

// ClassifyChange names what an edit to path affects. ok is false for files
// that are not prefabs at all.
func ClassifyChange(path string) (ChangeKind, bool) {
	base := strings.ToLower(filepath.Base(path))
	ext := filepath.Ext(base)
	switch {
	case base == catalogFile:
		return ChangeCatalog, true
	case base == configFile:
		return ChangeConfig, true
	case ext == ".tengo":
		return ChangeScript, true
	case ext == ".yaml" || ext == ".yml":
		if filepath.Base(filepath.Dir(path)) == "scenarios" {
			return ChangeScenario, true
		}
		return ChangeOther, true
	}
	return ChangeOther, false
}

// Watcher reports edits to prefab files on disk, debounced per file.
type Watcher struct {
	watcher *fsnotify.Watcher
	Changes chan Change
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches dirs, defaulting to the prefab directory and its
// scenarios and scripts subdirectories.
func NewWatcher(dirs ...string) (*Watcher, error) {
	if len(dirs) == 0 {
		dirs = []string{Dir, filepath.Join(Dir, "scenarios"), filepath.Join(Dir, "scripts")}
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		watcher: fw,
		Changes: make(chan Change, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// run is the only sender on Changes and Errors and closes them on exit.
func (w *Watcher) run() {
	defer close(w.Errors)
	defer close(w.Changes)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			kind, ok := ClassifyChange(event.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if t, seen := last[event.Name]; seen && now.Sub(t) < watchDebounce {
				continue
			}
			last[event.Name] = now

			select {
			case w.Changes <- Change{Path: event.Name, Kind: kind}:
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
