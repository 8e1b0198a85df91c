package Trees

import (
	"fmt"
	"strings"
)

const (
	emptyRendering = "[empty]"
	branchMid      = "├─"
	branchLast     = "└─"
	indentMid      = "│ "
	indentLast     = "  "
)

// render writes one line per node of the subtree at p, each parent before its children
// and the left child before the right one. The last child of a parent is drawn with
// branchLast, any other with branchMid. at reports the value at p and whether p holds one;
// kids returns the positions of p's children.
// Recursive.
func render[T, P any](b *strings.Builder, p P, indent string, last bool, at func(P) (T, bool), kids func(P) (P, P)) {
	v, ok := at(p)
	if !ok {
		return
	}
	b.WriteString(indent)
	if last {
		b.WriteString(branchLast)
		indent += indentLast
	} else {
		b.WriteString(branchMid)
		indent += indentMid
	}
	fmt.Fprintln(b, v)

	l, r := kids(p)
	_, hasR := at(r)
	render(b, l, indent, !hasR, at, kids)
	render(b, r, indent, true, at, kids)
}
