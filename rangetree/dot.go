package rangetree

import (
	"bufio"
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
)

// Dot writes the structure of the tree in Graphviz DOT format, for debugging.
//
// Internal nodes are labelled with their split coordinate and the size of
// their auxiliary array, leaves with their point.
func (t *Tree[C]) Dot(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "strict digraph {")
	fmt.Fprintln(bw, "\tnode [fontname=Arial,fontsize=12];")

	nextID := 0
	writeDotNode(bw, t.root, &nextID)

	fmt.Fprintln(bw, "}")

	if err := bw.Flush(); err != nil {
		T().Errorf("rangetree DOT: %s", err.Error())

		return err
	}

	return nil
}

// writeDotNode writes n and its subtree and returns the ID assigned to n.
func writeDotNode[C constraints.Integer](w io.Writer, n node[C], nextID *int) int {
	id := *nextID
	*nextID++

	switch n := n.(type) {
	case *leafNode[C]:
		fmt.Fprintf(w, "\t\"%d\" [label=\"%s\",shape=box];\n", id, n.point())

	case *internalNode[C]:
		fmt.Fprintf(w, "\t\"%d\" [label=\"x≤%d\\n%d pts\",shape=ellipse];\n", id, n.splitX, len(n.aux))

		leftID := writeDotNode(w, n.left, nextID)
		rightID := writeDotNode(w, n.right, nextID)

		fmt.Fprintf(w, "\t\"%d\" -> \"%d\" [label=L];\n", id, leftID)
		fmt.Fprintf(w, "\t\"%d\" -> \"%d\" [label=R];\n", id, rightID)
	}

	return id
}
