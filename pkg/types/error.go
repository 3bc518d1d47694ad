// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure for the top-level diagnostic line.
type Kind string

const (
	// KindConfig marks invalid configuration detected at startup.
	KindConfig Kind = "config"

	// KindNetwork marks connection errors, timeouts, and non-2xx responses.
	KindNetwork Kind = "network"

	// KindParse marks a malformed response document.
	KindParse Kind = "parse"

	// KindIO marks filesystem failures on output.
	KindIO Kind = "io"
)

// Error associates a failure kind with its cause. Stages wrap their errors
// in it so the command layer can report a single classified line and exit
// nonzero without inspecting stage internals.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return string(e.Kind) + ": " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// Errorf builds a classified error in fmt.Errorf style; %w works.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf reports the failure kind carried by err, or "" when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
