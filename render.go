// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package mktree

import "strings"

// Render returns a diagnostic listing of the forest, one node per
// line, children indented beneath their parent. Directories carry a
// trailing separator; files show their content:
//
//	a/
//	  b - [hello]
//	c/
func Render(forest []*Node) string {
	var sb strings.Builder
	renderNodes(&sb, forest, 0)
	return sb.String()
}

func renderNodes(sb *strings.Builder, nodes []*Node, depth int) {
	for _, n := range nodes {
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(n.Name)
		if n.IsFile {
			sb.WriteString(" - [")
			sb.WriteString(n.Content)
			sb.WriteString("]")
		} else {
			sb.WriteString("/")
		}
		sb.WriteByte('\n')
		renderNodes(sb, n.Children, depth+1)
	}
}

// Expression reconstructs an expression that parses back to a
// structurally identical forest. The result is grammar-equivalent,
// not byte-equivalent: reserved no-op characters are gone, every
// children block is closed with `^`, and every text span is closed
// with `}`.
func Expression(forest []*Node) string {
	var sb strings.Builder
	writeExpression(&sb, forest)
	return sb.String()
}

func writeExpression(sb *strings.Builder, nodes []*Node) {
	for i, n := range nodes {
		if i > 0 {
			sb.WriteByte('+')
		}
		if n.IsFile {
			sb.WriteByte('_')
			sb.WriteString(n.Name)
			if n.Content != "" {
				sb.WriteByte('{')
				sb.WriteString(n.Content)
				sb.WriteByte('}')
			}
			continue
		}
		sb.WriteString(n.Name)
		if len(n.Children) > 0 {
			sb.WriteByte('>')
			writeExpression(sb, n.Children)
			sb.WriteByte('^')
		}
	}
}
