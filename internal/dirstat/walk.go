package dirstat

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/idelchi/dirsum/internal/config"
	"github.com/idelchi/dirsum/internal/logging"
)

// Hooks are the side channels of a walk.
type Hooks struct {
	// Event receives one event per counted entry. Not called when the config is quiet.
	Event func(Event)
	// Progress, if set, receives running file and byte totals.
	Progress func(files, bytes int64)
	// ProgressInterval throttles Progress. Defaults to DefaultProgressInterval.
	ProgressInterval time.Duration
	// Logger receives diagnostics for skipped entries. Defaults to discarding them.
	Logger logrus.FieldLogger
}

// frame is one directory on the walk stack.
type frame struct {
	path    string
	depth   int
	entries []fs.DirEntry
	next    int
	result  Result
}

// walker carries the per-walk state shared by all frames.
type walker struct {
	fs       afero.Fs
	cfg      *config.Config
	filter   Filter
	emit     func(Event)
	log      logrus.FieldLogger
	progress *progress
}

// Traverse walks the tree rooted at cfg.Root() and returns its aggregate statistics.
//
// Directories deeper than the configured depth are not listed. Subdirectories are only
// descended into when cfg is recursive; otherwise they are counted and left untouched.
// Failures on single directories, entries or files are logged through hooks.Logger and
// the affected part of the tree contributes nothing.
func Traverse(fsys afero.Fs, cfg *config.Config, hooks Hooks) Result {
	w := &walker{
		fs:       fsys,
		cfg:      cfg,
		filter:   NewFilter(cfg),
		emit:     hooks.Event,
		log:      hooks.Logger,
		progress: newProgress(hooks.Progress, hooks.ProgressInterval),
	}

	if w.emit == nil || cfg.Quiet() {
		w.emit = func(Event) {}
	}

	if w.log == nil {
		w.log = logging.Discard()
	}

	defer w.progress.flush()

	return w.walk(cfg.Root())
}

// walk visits root depth-first. A child frame is pushed as soon as its directory
// entry is seen, so events come out in the same order a recursive walk would give.
func (w *walker) walk(root string) Result {
	top := w.open(root, 0)
	if top == nil {
		return Result{}
	}

	stack := []*frame{top}

	for {
		current := stack[len(stack)-1]

		if current.next == len(current.entries) {
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return current.result
			}

			parent := stack[len(stack)-1]
			parent.result = parent.result.Merge(current.result)

			continue
		}

		entry := current.entries[current.next]
		current.entries[current.next] = nil
		current.next++

		if child := w.visit(current, entry); child != nil {
			stack = append(stack, child)
		}
	}
}

// open lists the directory at path. It returns nil if the directory lies beyond the
// depth limit or cannot be listed; such a directory contributes an empty result.
func (w *walker) open(path string, depth int) *frame {
	if w.cfg.Depth().Exceeded(depth) {
		w.log.WithField("path", path).Debugf("skipping directory (beyond depth %s)", w.cfg.Depth())

		return nil
	}

	entries, err := w.list(path)
	if err != nil {
		w.log.WithField("path", path).WithError(err).Warn("could not read directory content, skipping")

		return nil
	}

	w.log.WithField("path", path).Debugf("listing %d entries at depth %d", len(entries), depth)

	return &frame{
		path:    path,
		depth:   depth,
		entries: entries,
	}
}

// list reads the entries of the directory at path, sorted by name.
// Entries carry only their type, so one entry that cannot be stat'ed does not fail
// the whole listing. The directory is closed before returning.
func (w *walker) list(path string) ([]fs.DirEntry, error) {
	dir, err := w.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	var entries []fs.DirEntry

	if rdf, ok := dir.(fs.ReadDirFile); ok {
		entries, err = rdf.ReadDir(-1)
	} else {
		var infos []fs.FileInfo

		infos, err = dir.Readdir(-1)
		for _, info := range infos {
			entries = append(entries, fs.FileInfoToDirEntry(info))
		}
	}

	if err != nil {
		return nil, err
	}

	slices.SortFunc(entries, func(a, b fs.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})

	return entries, nil
}

// visit accounts for a single entry of f and returns the frame to descend into, if any.
func (w *walker) visit(f *frame, entry fs.DirEntry) *frame {
	name := entry.Name()
	path := filepath.Join(f.path, name)

	switch mode := entry.Type(); {
	case mode.IsRegular():
		w.file(f, path, name)

		return nil
	case mode.IsDir():
		f.result.Dirs++
		w.emit(Event{Depth: f.depth, Name: name, Kind: KindDir})

		if !w.cfg.Recursive() {
			return nil
		}

		return w.open(path, f.depth+1)
	default:
		w.log.WithField("path", f.path).
			WithField("entry", name).
			WithField("mode", mode.String()).
			Warn("could not read entry, skipping")

		return nil
	}
}

// file counts the regular file at path if it passes the extension filter and its
// size can be read.
func (w *walker) file(f *frame, path, name string) {
	if !w.filter.Keep(name) {
		w.log.WithField("path", path).Debug("excluding file (extension filter)")

		return
	}

	info, err := w.fs.Stat(path)
	if err != nil {
		w.log.WithField("path", path).WithError(err).Warn("could not get entry data, skipping")

		return
	}

	size := info.Size()

	f.result = f.result.Merge(Result{
		Files:      1,
		TotalBytes: size,
		Biggest:    &FileStat{Path: path, Size: size},
	})

	w.emit(Event{Depth: f.depth, Name: name, Kind: KindFile, Size: size})
	w.progress.add(size)
}
