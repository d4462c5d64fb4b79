package figma

import "bytes"

// Reduce projects n onto the fields the analysis prompt needs.
//
// The walk is depth-first and pre-order. Tree shape and sibling order are
// preserved; values are copied, never rewritten. characters and style are
// kept only on TEXT nodes, even when other node types carry them.
//
// Reduce performs no cycle detection. Trees decoded from JSON cannot be
// cyclic.
func Reduce(n Node) ReducedNode {
	out := ReducedNode{
		ID:   n.ID,
		Name: n.Name,
		Type: n.Type,
	}
	out.AbsoluteBoundingBox = n.AbsoluteBoundingBox.clone()
	if hasFills(n.Fills) {
		out.Fills = append([]byte(nil), n.Fills...)
	}
	if n.Type == NodeTypeText {
		out.Characters = cloneString(n.Characters)
		out.Style = n.Style.clone()
	}
	if len(n.Children) > 0 {
		out.Children = make([]ReducedNode, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = Reduce(c)
		}
	}
	return out
}

// hasFills reports whether the raw fills value is present. JSON null counts
// as absent.
func hasFills(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// Count returns the number of nodes in the tree rooted at r.
func Count(r ReducedNode) int {
	n := 1
	for _, c := range r.Children {
		n += Count(c)
	}
	return n
}

// Depth returns the number of levels in the tree rooted at r; a leaf has depth 1.
func Depth(r ReducedNode) int {
	deepest := 0
	for _, c := range r.Children {
		if d := Depth(c); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}
