// Package finder enumerates files beneath a root directory subject to a
// depth limit, a name pattern (glob or regex), case sensitivity, a
// hidden-entry policy and exclude patterns.
//
// Only one condition is fatal: the root not existing. Every per-directory
// or per-entry failure during a walk is reported to the configured
// Diagnostics sink, the affected entry or subtree is skipped, and the walk
// continues. That keeps a scan useful over trees with permission-restricted
// pockets.
package finder

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gobwas/glob"
)

// ErrRootNotFound is returned when the search root does not exist or is
// not a directory.
var ErrRootNotFound = errors.New("root directory not found")

// FileEntry describes a matched file.
type FileEntry struct {
	Path    string      // full path
	Name    string      // base name
	Size    int64       // size in bytes
	ModTime time.Time   // last modification time
	Mode    fs.FileMode // mode and permission bits
}

// Finder runs searches for one immutable Options value. A Finder is safe
// for concurrent use: every search carries its own walker state.
type Finder struct {
	opts     Options
	match    matcher
	excludes []glob.Glob
	diag     Diagnostics
}

// New compiles opts into a Finder. diag receives non-fatal traversal
// failures; nil discards them.
func New(opts Options, diag Diagnostics) (*Finder, error) {
	if opts.MaxDepth < -1 {
		return nil, fmt.Errorf("max depth must be -1 or greater, got %d", opts.MaxDepth)
	}
	m, err := newMatcher(opts.Pattern, opts.UseRegex, opts.IgnoreCase)
	if err != nil {
		return nil, err
	}
	excludes := make([]glob.Glob, 0, len(opts.Exclude))
	for _, pattern := range opts.Exclude {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		excludes = append(excludes, g)
	}
	if diag == nil {
		diag = NopDiagnostics{}
	}
	return &Finder{opts: opts, match: m, excludes: excludes, diag: diag}, nil
}

// Find returns a lazy walker over the matching file paths beneath root.
// The sequence is forward-only and non-restartable; directory reads happen
// as the caller advances, so contents changing mid-walk may or may not be
// seen. A caller abandoning the walk early should Close it.
func (f *Finder) Find(root string) (*Walker, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}
	return newWalker(f, root), nil
}

// FindAll materializes the matching paths beneath root.
func (f *Finder) FindAll(root string) ([]string, error) {
	w, err := f.Find(root)
	if err != nil {
		return nil, err
	}
	defer w.Close()

	paths := []string{}
	for {
		path, ok := w.Next()
		if !ok {
			break
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// FindFiles materializes metadata for the matching paths beneath root. A
// path that cannot be stat'ed (deleted mid-scan, permissions changed) is
// reported to the diagnostics sink and omitted from the result.
func (f *Finder) FindFiles(root string) ([]FileEntry, error) {
	w, err := f.Find(root)
	if err != nil {
		return nil, err
	}
	defer w.Close()

	entries := []FileEntry{}
	for {
		path, ok := w.Next()
		if !ok {
			break
		}
		info, err := os.Lstat(path)
		if err != nil {
			f.diag.Report(path, err)
			continue
		}
		entries = append(entries, FileEntry{
			Path:    path,
			Name:    info.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
			Mode:    info.Mode(),
		})
	}
	return entries, nil
}

// Result is the outcome of an asynchronous search.
type Result struct {
	Paths []string
	Err   error
}

// FindAllAsync runs FindAll on its own goroutine and delivers the single
// result on the returned channel. It offloads the whole scan off the
// calling goroutine; the walk itself is not parallelized.
func (f *Finder) FindAllAsync(root string) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		paths, err := f.FindAll(root)
		ch <- Result{Paths: paths, Err: err}
	}()
	return ch
}

// Matches reports whether path, taken as a file beneath root, would be
// reported by a search of root: within the depth limit, not hidden or
// inside a hidden or excluded directory, and satisfying the name pattern.
// Used by watch mode to screen filesystem events with the same rules as a
// scan.
func (f *Finder) Matches(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return false
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if f.opts.MaxDepth >= 0 && len(parts)-1 > f.opts.MaxDepth {
		return false
	}
	prefix := root
	for i, part := range parts {
		prefix = filepath.Join(prefix, part)
		if !f.opts.IncludeHidden && IsHidden(prefix) {
			return false
		}
		isDir := i < len(parts)-1
		if f.excluded(strings.Join(parts[:i+1], "/"), isDir) {
			return false
		}
	}
	return f.match.matches(parts[len(parts)-1])
}

// DescendsInto reports whether a search of root would descend into dir.
func (f *Finder) DescendsInto(root, dir string) bool {
	if filepath.Clean(root) == filepath.Clean(dir) {
		return true
	}
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return false
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if f.opts.MaxDepth >= 0 && len(parts) > f.opts.MaxDepth {
		return false
	}
	prefix := root
	for i, part := range parts {
		prefix = filepath.Join(prefix, part)
		if !f.opts.IncludeHidden && IsHidden(prefix) {
			return false
		}
		if f.excluded(strings.Join(parts[:i+1], "/"), true) {
			return false
		}
	}
	return true
}

// excluded reports whether the slash-separated root-relative path matches
// an exclude pattern. A directory also matches with a /** suffix so plain
// "node_modules" in a pattern prunes the whole node_modules tree.
func (f *Finder) excluded(relPath string, isDir bool) bool {
	for _, g := range f.excludes {
		if g.Match(relPath) {
			return true
		}
	}
	if isDir {
		withSuffix := relPath + "/**"
		for _, g := range f.excludes {
			if g.Match(withSuffix) {
				return true
			}
		}
	}
	return false
}
