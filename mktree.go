// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package mktree translates a compact, Emmet-like expression into an
// ordered forest of directory and file nodes.
//
// The grammar is character based. Literal characters accumulate into a
// name; `_` before a name marks the next node as a file; `+` starts a
// sibling; `>` opens a children block that a matching `^` (or end of
// input) closes; `{...}` attaches literal text content to a file node.
// The characters `*`, `$`, `(`, and `)` are reserved and currently
// ignored.
package mktree

import (
	"github.com/maloquacious/semver"
)

var (
	version = semver.Version{
		Major: 0,
		Minor: 2,
		Patch: 0,
		Build: semver.Commit(),
	}
)

func Version() semver.Version {
	return version
}
