// SPDX-License-Identifier: GPL-2.0-or-later

package w3d

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrUnexpectedEnd is returned when a read needs more bytes than the buffer holds.
// It is the only error that aborts a decode.
var ErrUnexpectedEnd = errors.New("w3d: unexpected end of data")

// ChunkError locates a fatal error inside the chunk starting at Offset.
// Nested chunks produce nested ChunkErrors, outermost first.
type ChunkError struct {
	Tag    uint32
	Offset int64
	Err    error
}

func (e *ChunkError) Error() string {
	return fmt.Sprintf("%s chunk at offset %d: %v", ChunkName(e.Tag), e.Offset, e.Err)
}

func (e *ChunkError) Unwrap() error {
	return e.Err
}

type Level int

const (
	Info Level = iota
	Warning
)

func (l Level) String() string {
	if l == Warning {
		return "warning"
	}
	return "info"
}

// Diagnostic is a tolerated oddity found while decoding.
type Diagnostic struct {
	Level   Level
	Offset  int64 // start of the chunk header
	Tag     uint32
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s at offset %d: %s", d.Level, ChunkName(d.Tag), d.Offset, d.Message)
}
