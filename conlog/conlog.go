// SPDX-License-Identifier: GPL-2.0-or-later

// Package conlog is the printf sink of the command line tools.
package conlog

import (
	"log"
	"sync"
)

var (
	mutex   sync.Mutex
	p       = log.Printf
	dp      func(string, ...interface{})
	verbose bool
)

func SetPrintf(f func(string, ...interface{})) {
	mutex.Lock()
	defer mutex.Unlock()
	p = f
}

// SetDPrintf sets the sink of DPrintf, which defaults to the one of Printf.
func SetDPrintf(f func(string, ...interface{})) {
	mutex.Lock()
	defer mutex.Unlock()
	dp = f
}

// SetVerbose enables DPrintf.
func SetVerbose(v bool) {
	mutex.Lock()
	defer mutex.Unlock()
	verbose = v
}

func Printf(format string, v ...interface{}) {
	mutex.Lock()
	f := p
	mutex.Unlock()
	f(format, v...)
}

// DPrintf prints only in verbose mode.
func DPrintf(format string, v ...interface{}) {
	mutex.Lock()
	f, on := dp, verbose
	if f == nil {
		f = p
	}
	mutex.Unlock()
	if on {
		f(format, v...)
	}
}
