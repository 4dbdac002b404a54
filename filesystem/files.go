// SPDX-License-Identifier: GPL-2.0-or-later

// Package filesystem is the ordered set of directories and BIG archives names are
// looked up in. Sources added later shadow those added earlier.
package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/ClementJ18/finalBIGv2-sub000/big"
)

// Source is one place to read named files from.
type Source interface {
	ReadFile(name string) ([]byte, error)
	Names() []string
	String() string
}

var (
	mutex   sync.RWMutex
	sources []Source // lookup order, highest priority first
	closers []func() error
)

type dirSource struct {
	root string
}

func (d dirSource) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(d.root, filepath.FromSlash(slashes(name))))
}

// Names lists all regular files below the directory, slash separated.
func (d dirSource) Names() []string {
	var names []string
	filepath.WalkDir(d.root, func(path string, e fs.DirEntry, err error) error {
		if err != nil || e.IsDir() {
			return nil
		}
		if rel, err := filepath.Rel(d.root, path); err == nil {
			names = append(names, filepath.ToSlash(rel))
		}
		return nil
	})
	return names
}

func (d dirSource) String() string {
	return d.root
}

func slashes(name string) string {
	return strings.ReplaceAll(name, "\\", "/")
}

func key(name string) string {
	return strings.ToLower(slashes(name))
}

// Mount adds s in front of all other sources.
func Mount(s Source) {
	mutex.Lock()
	defer mutex.Unlock()
	sources = append([]Source{s}, sources...)
}

func UseDir(dir string) error {
	fi, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return &fs.PathError{Op: "mount", Path: dir, Err: fs.ErrInvalid}
	}
	Mount(dirSource{dir})
	return nil
}

func UseArchive(name string) error {
	a, err := big.OpenFile(name)
	if err != nil {
		return err
	}
	Mount(a)
	mutex.Lock()
	closers = append(closers, a.Close)
	mutex.Unlock()
	return nil
}

// Reset closes all archives and forgets all sources.
func Reset() error {
	mutex.Lock()
	defer mutex.Unlock()
	var first error
	for _, c := range closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	sources, closers = nil, nil
	return first
}

// Sources returns the mounted sources in lookup order.
func Sources() []Source {
	mutex.RLock()
	defer mutex.RUnlock()
	return append([]Source(nil), sources...)
}

// ReadFile returns the contents of name from the first source holding it. Names
// fall back to plain paths when no source has them.
func ReadFile(name string) ([]byte, error) {
	mutex.RLock()
	defer mutex.RUnlock()
	for _, s := range sources {
		b, err := s.ReadFile(name)
		if err == nil {
			return b, nil
		}
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	return os.ReadFile(name)
}

// Names returns the union of all source names, sorted. Names differing only in case
// or slash direction are listed once.
func Names() []string {
	mutex.RLock()
	defer mutex.RUnlock()
	seen := make(map[string]bool)
	var names []string
	for _, s := range sources {
		for _, n := range s.Names() {
			if k := key(n); !seen[k] {
				seen[k] = true
				names = append(names, n)
			}
		}
	}
	sort.Slice(names, func(i, j int) bool { return key(names[i]) < key(names[j]) })
	return names
}

func isSep(c uint8) bool {
	return c == '/' || c == '\\'
}

func Ext(path string) string {
	for i := len(path) - 1; i >= 0 && !isSep(path[i]); i-- {
		if path[i] == '.' {
			return path[i:]
		}
	}
	return ""
}

func StripExt(path string) string {
	for i := len(path) - 1; i >= 0 && !isSep(path[i]); i-- {
		if path[i] == '.' {
			return path[:i]
		}
	}
	return path
}

// Base returns the last element of path, either slash counting as separator.
func Base(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if isSep(path[i]) {
			return path[i+1:]
		}
	}
	return path
}
