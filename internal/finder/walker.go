package finder

import (
	"io/fs"
	"os"
	"path/filepath"
)

// frame is one pending directory in the bounded-depth walk: the directory
// itself plus the number of levels still allowed below it.
type frame struct {
	dir   string
	depth int
}

// Walker yields matching file paths one at a time. It is forward-only and
// non-restartable, and not safe for concurrent use.
//
// Two strategies sit behind Next. A bounded search (MaxDepth >= 0) keeps
// an explicit stack of directory frames and lists one directory per step.
// An unbounded search delegates recursion to filepath.WalkDir running on a
// bridge goroutine that streams matches through an unbuffered channel, so
// the walk advances roughly in step with consumption either way.
type Walker struct {
	f    *Finder
	root string

	// bounded mode
	stack []frame
	queue []string

	// unbounded mode
	paths  chan string
	done   chan struct{}
	closed bool
}

func newWalker(f *Finder, root string) *Walker {
	w := &Walker{f: f, root: root}
	if f.opts.MaxDepth >= 0 {
		w.stack = []frame{{dir: root, depth: f.opts.MaxDepth}}
		return w
	}
	w.paths = make(chan string)
	w.done = make(chan struct{})
	go w.walkAll()
	return w
}

// Next returns the next matching file path. ok is false once the walk is
// exhausted.
func (w *Walker) Next() (path string, ok bool) {
	if w.f.opts.MaxDepth >= 0 {
		return w.nextBounded()
	}
	path, ok = <-w.paths
	return path, ok
}

// Close releases the walker. Only the unbounded strategy holds a resource
// (its bridge goroutine); closing a bounded walker is a no-op. Close is
// not traversal cancellation: a walk that is being consumed runs to
// completion, Close only lets an abandoned walker's goroutine exit.
func (w *Walker) Close() error {
	if w.done != nil && !w.closed {
		w.closed = true
		close(w.done)
	}
	return nil
}

func (w *Walker) nextBounded() (string, bool) {
	for {
		if len(w.queue) > 0 {
			path := w.queue[0]
			w.queue = w.queue[1:]
			return path, true
		}
		if len(w.stack) == 0 {
			return "", false
		}
		fr := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		w.scan(fr)
	}
}

// scan lists one directory, queues its matching files and pushes the
// subdirectories still within the depth budget. An unreadable directory is
// reported and treated as empty so its siblings are still visited.
func (w *Walker) scan(fr frame) {
	entries, err := os.ReadDir(fr.dir)
	if err != nil {
		w.f.diag.Report(fr.dir, err)
		return
	}
	for _, entry := range entries {
		path := filepath.Join(fr.dir, entry.Name())
		if entry.IsDir() {
			if fr.depth <= 0 {
				continue
			}
			if !w.f.opts.IncludeHidden && IsHidden(path) {
				continue // prunes the whole subtree
			}
			if w.f.excluded(w.rel(path), true) {
				continue
			}
			w.stack = append(w.stack, frame{dir: path, depth: fr.depth - 1})
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}
		if w.accept(path, entry.Name()) {
			w.queue = append(w.queue, path)
		}
	}
}

// walkAll delegates recursion to filepath.WalkDir and streams matches to
// the consumer. WalkDir has no pattern or hidden awareness of its own, so
// both filters are applied here for every entry, in regex mode as much as
// glob mode.
func (w *Walker) walkAll() {
	defer close(w.paths)
	_ = filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			w.f.diag.Report(path, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if path == w.root {
			return nil
		}
		if d.IsDir() {
			if !w.f.opts.IncludeHidden && IsHidden(path) {
				return fs.SkipDir
			}
			if w.f.excluded(w.rel(path), true) {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if !w.accept(path, d.Name()) {
			return nil
		}
		select {
		case w.paths <- path:
			return nil
		case <-w.done:
			return fs.SkipAll
		}
	})
}

// accept applies the hidden policy, exclude patterns and name pattern to
// one file.
func (w *Walker) accept(path, name string) bool {
	if !w.f.opts.IncludeHidden && IsHidden(path) {
		return false
	}
	if w.f.excluded(w.rel(path), false) {
		return false
	}
	return w.f.match.matches(name)
}

// rel converts path to the slash-separated root-relative form exclude
// patterns are written against.
func (w *Walker) rel(path string) string {
	relPath, err := filepath.Rel(w.root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(relPath)
}
