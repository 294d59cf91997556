// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package mktree

// Parser invariants and coordinate system
//
// The parser treats input as an immutable string and never splices it;
// a children block is handed to a recursive call as a sub-slice plus
// the absolute offset of its first byte, so every error can report a
// position in the original top-level input.
//
// Each call to parseScope scans exactly one scope: the top level, or
// the inside of one `>`...`^` block. State local to one scope:
//
//   name    - accumulator for the name being scanned
//   isFile  - pending file marker; applies to the next finalized node
//   current - the most recently finalized node in this scope; target
//             of children and text attachment
//   inText  - inside a `{`...`}` span; only `}` is special there
//   text    - accumulator for the open text span
//
// Invariants (must always hold):
//
//   inText  => current != nil && current.IsFile
//   current is always the last element of the scope's result list
//   isFile is cleared whenever a node is finalized
//
// Boundary finalization: on `>`, `+`, `{`, or end of input, a
// non-empty name accumulator becomes a new node appended to the result
// list; an empty accumulator reuses current. Having neither a buffered
// name nor a current node at a boundary is an error.

// Parse interprets an expression and returns the forest it describes.
// On failure the error is a *ParseError carrying the byte offset of
// the offending character in input.
func Parse(input string) ([]*Node, error) {
	return parseScope(input, 0)
}

// parseScope scans one scope. base is the absolute offset of input[0]
// in the original top-level expression and is used only for error
// positions.
func parseScope(input string, base int) ([]*Node, error) {
	var (
		forest  []*Node
		current *Node
		name    []byte
		isFile  bool
		inText  bool
		text    []byte
	)

	finalize := func(at int) error {
		if len(name) > 0 {
			current = &Node{Name: string(name), IsFile: isFile}
			forest = append(forest, current)
			name = name[:0]
			isFile = false
		}
		if current == nil {
			return &ParseError{Offset: base + at, Kind: EmptyName, Msg: "missing name"}
		}
		return nil
	}

	for i := 0; i < len(input); i++ {
		c := input[i]

		if inText {
			if c == '}' {
				current.Content = string(text)
				text = text[:0]
				inText = false
				continue
			}
			text = append(text, c)
			continue
		}

		switch c {
		case '_':
			if len(name) == 0 {
				isFile = true
			} else {
				// mid-name underscore is a literal; historical quirk,
				// kept verbatim
				name = append(name, c)
			}
		case '+':
			if err := finalize(i); err != nil {
				return nil, err
			}
		case '>':
			if isFile {
				return nil, &ParseError{Offset: base + i, Kind: FileWithChildren, Msg: "file cannot have children"}
			}
			if err := finalize(i); err != nil {
				return nil, err
			}
			if current.IsFile {
				return nil, &ParseError{Offset: base + i, Kind: FileWithChildren, Msg: "file cannot have children"}
			}
			end, err := scanScope(input[i+1:], base+i+1)
			if err != nil {
				return nil, err
			}
			children, err := parseScope(input[i+1:i+1+end], base+i+1)
			if err != nil {
				return nil, err
			}
			current.Children = children
			// skip past the block and the `^` that closed it, if any
			i += 1 + end
		case '^':
			return nil, &ParseError{Offset: base + i, Kind: UnmatchedClose, Msg: "cannot move up, already at top level"}
		case '{':
			if !isFile && (current == nil || !current.IsFile) {
				return nil, &ParseError{Offset: base + i, Kind: TextOnDirectory, Msg: "text content requires a file"}
			}
			if err := finalize(i); err != nil {
				return nil, err
			}
			if !current.IsFile {
				return nil, &ParseError{Offset: base + i, Kind: TextOnDirectory, Msg: "text content requires a file"}
			}
			inText = true
		case '}':
			return nil, &ParseError{Offset: base + i, Kind: UnmatchedClose, Msg: "unmatched '}'"}
		case '*', '$', '(', ')':
			// reserved for multiply, auto-number, and grouping;
			// accepted without effect
		default:
			name = append(name, c)
		}
	}

	if inText {
		// an unterminated span runs to end of input, like an
		// unterminated children block
		current.Content = string(text)
		return forest, nil
	}
	if len(input) == 0 {
		// the empty scope is legal: `a>^` is a directory with no
		// children
		return forest, nil
	}
	if err := finalize(len(input)); err != nil {
		return nil, err
	}
	return forest, nil
}

// scanScope locates the end of a children block opened by `>`. s
// begins immediately after that `>`; the return value is the index in
// s of the `^` closing the block, or len(s) when the block runs to the
// end of the input, which is legal for the outermost block.
//
// The scan keeps a flat depth counter instead of building a tree: `>`
// and `^` adjust the depth, and the scan stops the instant the depth
// returns to zero. Characters inside an open `{`...`}` span never
// touch the depth, so literal `>` or `^` inside file content are
// inert. Spans do not nest; a `}` with no open span fails here the
// same way it would fail in the main scan.
func scanScope(s string, base int) (int, error) {
	depth := 1
	inText := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inText {
			if c == '}' {
				inText = false
			}
			continue
		}
		switch c {
		case '{':
			inText = true
		case '}':
			return 0, &ParseError{Offset: base + i, Kind: UnmatchedClose, Msg: "unmatched '}'"}
		case '>':
			depth++
		case '^':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return len(s), nil
}
