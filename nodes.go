// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package mktree

// Node is a single entry in the result forest: a directory or a file.
//
// Name is never empty in a forest returned by Parse; an empty name is
// a parse error, not a valid state. A file node never owns children
// and a directory node never carries content; the parser rejects
// expressions that would violate either.
//
// Children is owned exclusively by its parent node (or by the
// top-level forest) and its order is significant: it fixes both
// creation order and display order.
type Node struct {
	Name     string
	IsFile   bool
	Content  string // meaningful only when IsFile is true
	Children []*Node
}
