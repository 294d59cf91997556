// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package mktree

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

//go:generate stringer --type ErrorKind

// ErrorKind classifies parse errors.
type ErrorKind int

const (
	// EmptyName: a node boundary was reached with no buffered name and
	// no existing current node.
	EmptyName ErrorKind = iota
	// FileWithChildren: `>` encountered while the current or
	// finalizing node is marked as a file.
	FileWithChildren
	// UnmatchedClose: a `^` reached by the main scan, or a `}` reached
	// while not inside a text span.
	UnmatchedClose
	// TextOnDirectory: `{` encountered while the current or finalizing
	// node is not a file.
	TextOnDirectory
)

// ParseError is the only error type Parse returns. Offset is the byte
// offset of the offending character in the original top-level input.
type ParseError struct {
	Offset int
	Kind   ErrorKind
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg)
}

// Annotate renders input with a caret aligned under the offset of a
// parse error, followed by the message:
//
//	a>b^^
//	    ^ cannot move up, already at top level
//
// Errors that are not a *ParseError render as err.Error().
func Annotate(input string, err error) string {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return err.Error()
	}
	at := pe.Offset
	if at > len(input) {
		at = len(input)
	}
	// the caret column counts runes, not bytes
	col := utf8.RuneCountInString(input[:at])
	var sb strings.Builder
	sb.WriteString(input)
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(" ", col))
	sb.WriteString("^ ")
	sb.WriteString(pe.Msg)
	return sb.String()
}
