package sequence

import (
	"fmt"
	"io"
)

type nodeids[T any] struct {
	idTable map[*node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(n *node[T]) int {
	return ids.idTable[n]
}

func (ids *nodeids[T]) alloc(n *node[T]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Sequence2Dot outputs the internal structure of a Sequence in Graphviz DOT format
// (for debugging purposes).
//
// Forward links are drawn as solid edges, backward links as dashed edges.
// A backward link not matching its forward counterpart is drawn in red.
func Sequence2Dot[E any](seq *Sequence[E], w io.Writer) {
	io.WriteString(w, "digraph {\n")
	io.WriteString(w, "\trankdir=LR;\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12,shape=box];\n")
	if seq == nil {
		io.WriteString(w, "}\n")
		return
	}
	ids := newtable[E]()
	nodelist, edgelist := "", ""
	pos := 0
	for n := seq.head; n != nil; n = n.next {
		ID := ids.alloc(n)
		label := fmt.Sprintf("%d\\n%v", pos, n.value)
		nodelist += fmt.Sprintf("\t\"%d\" [label=\"%s\"%s];\n", ID, label, nodeDotStyles(n, seq))
		if n.next != nil {
			nextID := ids.alloc(n.next)
			edgelist += fmt.Sprintf("\t\"%d\" -> \"%d\";\n", ID, nextID)
			if n.next.prev != n {
				T().Errorf("sequence DOT: broken backward link at position %d", pos+1)
				edgelist += fmt.Sprintf("\t\"%d\" -> \"%d\" [style=dashed,color=red];\n", nextID, ID)
			} else {
				edgelist += fmt.Sprintf("\t\"%d\" -> \"%d\" [style=dashed];\n", nextID, ID)
			}
		}
		pos++
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotStyles[T any](n *node[T], seq *Sequence[T]) string {
	s := ",style=filled"
	if n == seq.head || n == seq.tail {
		s += ",fillcolor=\"#a3d7e4\""
	} else {
		s += ",fillcolor=white"
	}
	return s
}
