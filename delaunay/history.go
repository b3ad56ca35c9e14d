// Copyright (c) 2026 randomLevelup
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

// triKey identifies a triangle by its three vertex ids. Keys are canonical:
// the cycle is rotated so the smallest id comes first, which preserves the
// CCW orientation while making the key insensitive to which vertex a caller
// happens to list first.
type triKey [3]int

func canon(a, b, c int) triKey {
	switch {
	case a <= b && a <= c:
		return triKey{a, b, c}
	case b <= c:
		return triKey{b, c, a}
	default:
		return triKey{c, a, b}
	}
}

func (t triKey) hasSentinel() bool {
	// Canonical rotation puts the smallest id first.
	return t[0] < 0
}

// history is the point-location DAG over triangles. Each node records the
// 1-4 triangles that replaced it after a split or flip; a node with no
// children is a leaf, i.e. part of the live triangulation. Superseded
// triangles are never removed, only shadowed by their children.
type history struct {
	root  triKey
	nodes map[triKey][]triKey
}

func newHistory() *history {
	return &history{nodes: make(map[triKey][]triKey)}
}

func (h *history) addRoot(t triKey) {
	h.root = t
	h.nodes[t] = nil
}

// addChildren appends children to parent's child list, registering each
// child as a leaf of its own. A child already registered (the on-edge split
// registers its four triangles under both parents) is left untouched.
func (h *history) addChildren(parent triKey, children ...triKey) {
	h.nodes[parent] = append(h.nodes[parent], children...)
	for _, c := range children {
		if _, ok := h.nodes[c]; !ok {
			h.nodes[c] = nil
		}
	}
}

func (h *history) children(t triKey) []triKey {
	return h.nodes[t]
}

func (h *history) hasChildren(t triKey) bool {
	return len(h.nodes[t]) > 0
}

// leaves returns every registered triangle with no children: the current
// triangulation. Order is unspecified.
func (h *history) leaves() []triKey {
	var out []triKey
	for t, kids := range h.nodes {
		if len(kids) == 0 {
			out = append(out, t)
		}
	}
	return out
}
