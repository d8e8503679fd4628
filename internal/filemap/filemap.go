// Package filemap lists the files of a project tree with their sizes.
package filemap

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
)

// DefaultExclude holds directory names skipped when Options.Exclude is empty.
var DefaultExclude = []string{".git", "__pycache__", "build", "dist"}

// Options configures a Mapper.
type Options struct {
	Root    string
	Exclude []string
}

// Mapper walks Root and describes every regular file under it.
type Mapper struct {
	root    string
	exclude map[string]bool
}

// New returns a mapper. An empty root means the current directory.
func New(opts Options) *Mapper {
	root := opts.Root
	if root == "" {
		root = "."
	}
	exclude := opts.Exclude
	if len(exclude) == 0 {
		exclude = DefaultExclude
	}
	m := &Mapper{root: root, exclude: make(map[string]bool, len(exclude))}
	for _, name := range exclude {
		m.exclude[name] = true
	}
	return m
}

// Lines returns "rel/path (N bytes)" for every file, sorted by path.
// Any path with an excluded component is skipped.
func (m *Mapper) Lines() ([]string, error) {
	type entry struct {
		rel  string
		size int64
	}
	var entries []entry

	err := filepath.WalkDir(m.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != m.root && m.exclude[d.Name()] {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(m.root, path)
		if err != nil {
			return err
		}
		entries = append(entries, entry{rel: filepath.ToSlash(rel), size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", m.root, err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].rel < entries[j].rel })
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("%s (%d bytes)", e.rel, e.size)
	}
	return lines, nil
}
