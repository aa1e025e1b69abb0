package forest

import (
	"strings"
	"unicode"
)

// ListHeader is the first line of every listing
const ListHeader = "LIST"

// indentUnit is repeated once per depth level
const indentUnit = "  "

// List renders the whole forest: a "LIST" header, then every directory on its
// own line indented by two spaces per depth level. Trees are visited in
// ascending name order. Each tree is walked depth-first with an explicit stack
// onto which children are pushed in descending name order.
func (e *Engine) List() string {
	var b strings.Builder
	b.WriteString(ListHeader)
	b.WriteByte('\n')
	for _, t := range e.forest.Trees() {
		e.writeTree(&b, t)
	}
	return strings.TrimRightFunc(b.String(), unicode.IsSpace)
}

type frame struct {
	id    NodeID
	depth int
}

func (e *Engine) writeTree(b *strings.Builder, t *Tree) {
	stack := []frame{{id: t.root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n, ok := e.forest.Node(top.id)
		if !ok {
			continue
		}
		b.WriteString(strings.Repeat(indentUnit, top.depth))
		b.WriteString(n.name)
		b.WriteByte('\n')

		n.descend(func(_ string, child NodeID) bool {
			stack = append(stack, frame{id: child, depth: top.depth + 1})
			return true
		})
	}
}
