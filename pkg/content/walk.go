package content

// Walk visits n and its descendants depth-first in pre-order, which is the
// order the renderer writes them. fn receives each node with its depth
// (0 for n). Returning false skips the node's descendants.
//
// Table cells are visited row by row.
func Walk(n Node, fn func(n Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int) bool) {
	if n == nil || !fn(n, depth) {
		return
	}
	switch v := n.(type) {
	case *Section:
		for _, c := range v.children {
			walk(c, depth+1, fn)
		}
	case *Block:
		for _, c := range v.children {
			walk(c, depth+1, fn)
		}
	case *Tag:
		walk(v.child, depth+1, fn)
	case *Table:
		for _, row := range v.rows {
			for _, c := range row {
				walk(c, depth+1, fn)
			}
		}
	}
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n Node) int {
	total := 0
	Walk(n, func(Node, int) bool {
		total++
		return true
	})
	return total
}

// Depth returns the height of the tree rooted at n (1 for a leaf).
func Depth(n Node) int {
	deepest := 0
	Walk(n, func(_ Node, d int) bool {
		if d+1 > deepest {
			deepest = d + 1
		}
		return true
	})
	return deepest
}
