package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"
)

// DefaultIgnore excludes the git metadata directory.
var DefaultIgnore = []string{".git", ".git/**"}

// Config configures a Watcher.
type Config struct {
	Root       string        // directory tree to watch
	Ignore     []string      // glob patterns, relative to Root, with '/' as separator
	Debounce   time.Duration // quiet period before running; 0 means 200ms
	Command    Command
	RunOnStart bool // run the command once before waiting for changes
}

// Stats counts watcher activity.
type Stats struct {
	Events   int // relevant file system events
	Runs     int // command executions
	Failures int // command executions returning an error
	LastErr  error
}

// Watcher watches a directory tree and runs a command after changes.
type Watcher struct {
	cfg    Config
	exec   Executor
	ignore []glob.Glob
	fsw    *fsnotify.Watcher
	mu     sync.Mutex
	stats  Stats
}

// New creates a watcher. Directories below cfg.Root are registered for
// watching immediately, except ignored ones. If exec is nil, commands run as
// child processes.
func New(cfg Config, exec Executor) (*Watcher, error) {
	if cfg.Root == "" {
		cfg.Root = "."
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = 200 * time.Millisecond
	}
	if cfg.Ignore == nil {
		cfg.Ignore = DefaultIgnore
	}
	if cfg.Command.Name == "" {
		cfg.Command.Name, cfg.Command.Args = DefaultCommand.Name, DefaultCommand.Args
	}
	if exec == nil {
		exec = ProcessExecutor{}
	}
	w := &Watcher{
		cfg:  cfg,
		exec: exec,
	}
	for _, pattern := range cfg.Ignore {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("watch: ignore pattern %q: %w", pattern, err)
		}
		w.ignore = append(w.ignore, g)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w.fsw = fsw
	if err := w.addTree(cfg.Root); err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

// Ignored reports whether path is excluded by an ignore pattern. Patterns are
// matched against the path relative to the root and against its base name.
func (w *Watcher) Ignored(path string) bool {
	rel, err := filepath.Rel(w.cfg.Root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	base := filepath.Base(path)
	for _, g := range w.ignore {
		if g.Match(rel) || g.Match(base) {
			return true
		}
	}
	return false
}

// addTree registers dir and all of its non-ignored sub-directories.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && w.Ignored(path) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watch: %s: %w", path, err)
		}
		tracer().Debugf("watching %s", path)
		return nil
	})
}

// Stats returns a snapshot of the watcher's activity counters.
func (w *Watcher) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

// Run watches for changes until ctx is done, then releases all resources.
// A command failing is not an error for Run; it is traced and counted.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()
	if w.cfg.RunOnStart {
		w.execute(ctx)
	}
	timer := time.NewTimer(w.cfg.Debounce)
	timer.Stop() // armed by the first relevant event
	defer timer.Stop()
	tracer().Infof("watching %s, running '%s' on changes", w.cfg.Root, w.cfg.Command)
	for {
		select {
		case <-ctx.Done():
			tracer().Infof("watcher stopped")
			return nil
		case event, ok := <-w.fsw.Events:
			if !ok {
				return errors.New("watch: event channel closed")
			}
			if w.handleEvent(event) {
				timer.Reset(w.cfg.Debounce)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return errors.New("watch: error channel closed")
			}
			tracer().Errorf("watch: %v", err)
		case <-timer.C:
			w.execute(ctx)
		}
	}
}

// handleEvent returns true if event should trigger the command.
func (w *Watcher) handleEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	if w.Ignored(event.Name) {
		return false
	}
	if event.Has(fsnotify.Create) {
		if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
			if err := w.addTree(event.Name); err != nil {
				tracer().Errorf("watch: %v", err)
			}
		}
	}
	tracer().Debugf("%s %s", event.Op, event.Name)
	w.mu.Lock()
	w.stats.Events++
	w.mu.Unlock()
	return true
}

func (w *Watcher) execute(ctx context.Context) {
	cmd := w.cfg.Command
	if cmd.Dir == "" {
		cmd.Dir = w.cfg.Root
	}
	tracer().Infof("running %s", cmd)
	err := w.exec.Execute(ctx, cmd)
	w.mu.Lock()
	w.stats.Runs++
	if err != nil {
		w.stats.Failures++
		w.stats.LastErr = err
	}
	w.mu.Unlock()
	if err != nil && ctx.Err() == nil {
		tracer().Errorf("%v", err)
	}
}
