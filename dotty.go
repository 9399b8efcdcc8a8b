package treearray

import (
	"fmt"
	"io"
)

type nodeids[V any] struct {
	idTable map[*node[V]]int
	max     int
}

func newtable[V any]() nodeids[V] {
	return nodeids[V]{
		idTable: make(map[*node[V]]int),
		max:     1,
	}
}

func (ids nodeids[V]) find(n *node[V]) int {
	return ids.idTable[n]
}

func (ids *nodeids[V]) alloc(n *node[V]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// TreeArray2Dot outputs the internal structure of a TreeArray in Graphviz DOT
// format (for debugging purposes).
//
// Nodes are labelled with their value and the size of their subtree.
// Output does not alter the tree.
func TreeArray2Dot[V any](t *TreeArray[V], w io.Writer) error {
	if _, err := io.WriteString(w, "strict digraph {\n"); err != nil {
		return err
	}
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[V]()
	nodelist, edgelist := "", ""
	nilcnt := 0
	var walk func(n *node[V])
	walk = func(n *node[V]) {
		ID := ids.alloc(n)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%v\\n%d\" %s];\n", ID, n.value, n.size, nodeDotStyles(n))
		for _, child := range []*node[V]{n.left, n.right} {
			if child == nil {
				if n.left == nil && n.right == nil {
					continue // leaves get no nil children drawn
				}
				nilcnt++
				nilid := 100000 + nilcnt
				nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			walk(child)
		}
	}
	if t != nil && t.root != nil {
		walk(t.root)
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	_, err := io.WriteString(w, "}\n")
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles[V any](n *node[V]) string {
	s := ",style=filled"
	if n.left == nil && n.right == nil {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
