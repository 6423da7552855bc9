package generator

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"

	"github.com/openminted/xsdgen/internal/codegen/scanner"
)

// DefaultDebounce is how long a watcher waits for schema changes to settle.
const DefaultDebounce = 500 * time.Millisecond

type WatchOptions struct {
	Dir string
	// Recursive also watches subdirectories, including ones created later.
	Recursive bool
	// Ignore lists directories whose changes never trigger a run, typically
	// an output directory nested in Dir. Entries that are not strictly inside
	// Dir are dropped.
	Ignore   []string
	Debounce time.Duration
}

// Watcher reruns a generation step whenever a schema changes.
type Watcher struct {
	g        *Generator
	fsw      *fsnotify.Watcher
	opts     WatchOptions
	ignore   []string
	debounce time.Duration
}

// Watch starts watching opts.Dir. Changes are reported once Run is called.
func (g *Generator) Watch(opts WatchOptions) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create file watcher")
	}
	w := &Watcher{g: g, fsw: fsw, opts: opts, debounce: opts.Debounce}
	if w.debounce <= 0 {
		w.debounce = DefaultDebounce
	}
	root, err := filepath.Abs(opts.Dir)
	if err != nil {
		fsw.Close()
		return nil, errors.Wrapf(err, "resolve %s", opts.Dir)
	}
	for _, dir := range opts.Ignore {
		abs, err := filepath.Abs(dir)
		if err != nil {
			fsw.Close()
			return nil, errors.Wrapf(err, "resolve %s", dir)
		}
		if !within(root, abs) {
			g.logger.Debug("Not ignoring directory outside the watched tree", "dir", dir)
			continue
		}
		w.ignore = append(w.ignore, abs)
	}
	if err := w.add(opts.Dir); err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

// add watches dir, and its subdirectories when the watcher is recursive.
func (w *Watcher) add(dir string) error {
	if !w.opts.Recursive {
		return w.addOne(dir)
	}
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if w.ignored(path) {
			return filepath.SkipDir
		}
		return w.addOne(path)
	})
}

func (w *Watcher) addOne(dir string) error {
	if err := w.fsw.Add(dir); err != nil {
		return errors.WithHint(
			errors.Wrapf(err, "watch %s", dir),
			"the schema directory must exist before watching it",
		)
	}
	w.g.logger.Debug("Watching directory", "dir", dir)
	return nil
}

func (w *Watcher) ignored(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	for _, dir := range w.ignore {
		if abs == dir || within(dir, abs) {
			return true
		}
	}
	return false
}

// within reports whether path lies strictly below dir. Both are absolute.
func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil || rel == "." {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// Run calls regenerate after every burst of schema changes until ctx is
// done. A failing regeneration is logged and watching goes on.
func (w *Watcher) Run(ctx context.Context, regenerate func() error) error {
	defer w.fsw.Close()
	w.g.logger.Info("Watching schemas for changes", "dir", w.opts.Dir)

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.g.logger.Debug("Schema changed", "file", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			if err := regenerate(); err != nil {
				w.g.logger.Error("Regeneration failed", "error", err)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.g.logger.Warn("File watcher error", "error", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if w.ignored(event.Name) {
		return false
	}
	if event.Has(fsnotify.Create) && w.opts.Recursive {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.add(event.Name); err != nil {
				w.g.logger.Warn("Cannot watch new directory", "dir", event.Name, "error", err)
			}
			return false
		}
	}
	if !strings.EqualFold(filepath.Ext(event.Name), scanner.SchemaExt) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove)
}
