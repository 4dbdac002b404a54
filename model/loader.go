// SPDX-License-Identifier: GPL-2.0-or-later

package model

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/ClementJ18/finalBIGv2-sub000/filesystem"
)

var (
	mutex   sync.RWMutex
	loaders = make(map[string]LoadFunc)
)

// LoadFunc decodes the complete contents of the file name.
type LoadFunc func(name string, data []byte) (Model, error)

// Register makes f the loader for files with extension ext, e.g. ".w3d".
func Register(ext string, f LoadFunc) {
	mutex.Lock()
	defer mutex.Unlock()
	loaders[strings.ToLower(ext)] = f
}

// Ext returns the lower case extension of name. Both slashes and backslashes
// separate directories.
func Ext(name string) string {
	return strings.ToLower(filesystem.Ext(name))
}

// Supported reports whether a loader is registered for the extension of name.
func Supported(name string) bool {
	mutex.RLock()
	defer mutex.RUnlock()
	_, ok := loaders[Ext(name)]
	return ok
}

// Formats returns the registered extensions in sorted order.
func Formats() []string {
	mutex.RLock()
	defer mutex.RUnlock()
	exts := make([]string, 0, len(loaders))
	for e := range loaders {
		exts = append(exts, e)
	}
	sort.Strings(exts)
	return exts
}

func Load(name string, data []byte) (Model, error) {
	mutex.RLock()
	f, ok := loaders[Ext(name)]
	mutex.RUnlock()
	if !ok {
		return nil, fmt.Errorf("File %s has an unknown file format", name)
	}
	return f(name, data)
}
