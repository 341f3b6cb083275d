package trie

import (
	"fmt"
	"io"
	"strings"
)

// Draw writes a Graphviz DOT description of the trie to output: one node
// statement per node labeled with its value (empty when none), one edge
// statement per parent-child link labeled with the edge's symbol. Node ids
// are assigned by an incrementing counter in depth-first visitation order.
// The dump is a write-only diagnostic; nothing parses it back.
func (t *Trie[V]) Draw(output io.Writer) error {
	var b strings.Builder
	b.WriteString("digraph {\n")
	id := 0
	drawNode(t.root, &b, &id)
	b.WriteString("}\n")
	_, err := io.WriteString(output, b.String())
	return err
}

func drawNode[V any](node *Node[V], b *strings.Builder, id *int) {
	self := *id
	label := ""
	if v := node.Value(); v != nil {
		label = fmt.Sprint(*v)
	}
	fmt.Fprintf(b, "\"%d\" [label=\"%s\"]\n", self, label)

	node.ForEachChild(func(child *Node[V]) {
		*id++
		fmt.Fprintf(b, "\"%d\" -> \"%d\" [label=\"%c\"]\n", self, *id, child.key)
		drawNode(child, b, id)
	})
}
