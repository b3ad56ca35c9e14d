// Copyright (c) 2026 randomLevelup
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package delaunay computes the Delaunay triangulation of a planar point
// set by randomized incremental insertion (Guibas-Stolfi style): a history
// DAG of triangles provides point location, a half-edge subdivision holds
// the live topology, and two symbolic sentinel points bound the seed
// triangle so hull-boundary insertions need no special casing.
package delaunay

import (
	"math/rand"
	"sort"

	"github.com/golang/geo/r2"

	"github.com/randomLevelup/planar/dcel"
)

// Triangulation is the result of a Delaunay triangulation. Triangles and
// Edges index into Points; sentinel-touching triangles are filtered out and
// both lists are sorted, so identical inputs produce identical results.
type Triangulation struct {
	Points    []r2.Point
	Triangles [][3]int
	Edges     [][2]int
}

// Options configure a triangulation run.
type Options struct {
	// Seed feeds the PRNG that shuffles the insertion order.
	Seed int64
}

// Option mutates Options.
type Option func(*Options)

// WithSeed sets the insertion-order shuffle seed. The default seed 0 makes
// repeated runs over the same input produce identical results.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

type engine struct {
	pts  []r2.Point // deduplicated points; engine id = index
	orig []int      // engine id -> index in the caller's slice
	high int        // id of the highest point H
	sub  *dcel.Subdivision
	hist *history
}

// Triangulate computes the Delaunay triangulation of points. Fewer than
// three distinct points yield an empty (but non-nil) Triangulation.
// Duplicate coordinates are ignored beyond their first occurrence. A
// non-nil error reports an internal topology violation; no partial result
// is returned in that case.
func Triangulate(points []r2.Point, opts ...Option) (t *Triangulation, err error) {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}

	defer func() {
		if rerr := recoverInvariant(recover()); rerr != nil {
			t, err = nil, rerr
		}
	}()

	e := &engine{
		sub:  dcel.New(),
		hist: newHistory(),
	}
	e.dedup(points)
	if len(e.pts) < 3 {
		return &Triangulation{Points: points}, nil
	}
	e.seed()
	//nolint:gosec
	random := rand.New(rand.NewSource(o.Seed))
	for _, p := range e.insertionOrder(random) {
		e.insert(p)
	}
	return e.extract(points), nil
}

// dedup keeps the first occurrence of every coordinate.
func (e *engine) dedup(points []r2.Point) {
	seen := make(map[r2.Point]int, len(points))
	for i, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = len(e.pts)
		e.pts = append(e.pts, p)
		e.orig = append(e.orig, i)
	}
}

// seed selects the highest point H (maximal under the symbolic order) and
// installs the seed triangle (H, P-2, P-1) in the subdivision and as the
// DAG root.
func (e *engine) seed() {
	e.high = 0
	for i := range e.pts {
		if e.above(i, e.high) {
			e.high = i
		}
	}
	e.sub.AddTriangle(e.high, sentinelLow, sentinelHigh)
	e.hist.addRoot(canon(e.high, sentinelLow, sentinelHigh))
}

// insertionOrder shuffles all real points except H.
func (e *engine) insertionOrder(random *rand.Rand) []int {
	order := make([]int, 0, len(e.pts)-1)
	for i := range e.pts {
		if i != e.high {
			order = append(order, i)
		}
	}
	random.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	return order
}

// locate descends the history DAG breadth-first from the root, pruning
// triangles that do not contain p, until it reaches a leaf. It returns the
// leaf and the on-edge classification from classify.
func (e *engine) locate(p int) (triKey, int) {
	queue := []triKey{e.hist.root}
	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]
		cls := e.classify(t, p)
		if cls == outside {
			continue
		}
		kids := e.hist.children(t)
		if len(kids) == 0 {
			return t, cls
		}
		queue = append(queue, kids...)
	}
	fatalf("delaunay: no triangle contains point %d (%v)", p, e.pts[p])
	return triKey{}, 0
}

func (e *engine) insert(p int) {
	leaf, cls := e.locate(p)
	if cls == inside {
		e.splitInterior(leaf, p)
	} else {
		e.splitOnEdge(leaf, cls, p)
	}
}

// splitInterior replaces triangle t with the three triangles joining p to
// its corners, then legalizes the edges opposite p.
func (e *engine) splitInterior(t triKey, p int) {
	a, b, c := t[0], t[1], t[2]
	e.addTriangle(a, b, p)
	e.addTriangle(b, c, p)
	e.addTriangle(c, a, p)
	e.hist.addChildren(t, canon(a, b, p), canon(b, c, p), canon(c, a, p))
	e.legalize(p, [][2]int{{a, b}, {b, c}, {c, a}})
}

// splitOnEdge handles a point landing exactly on edge i of t. Both t and
// the triangle across the edge are split into four triangles, registered as
// children of both parents.
func (e *engine) splitOnEdge(t triKey, i, p int) {
	a, b := t[i], t[(i+1)%3]
	c := t[(i+2)%3]

	he, ok := e.sub.Edge(b, a)
	if !ok {
		fatalf("delaunay: missing half-edge %d->%d for on-edge insertion", b, a)
	}
	if e.sub.Face(he) == dcel.OuterFace {
		fatalf("delaunay: edge (%d, %d) has a single incident triangle", a, b)
	}
	// Third vertex of the far triangle (b, a, x).
	x := e.sub.Origin(e.sub.Prev(he))
	far := canon(b, a, x)

	e.sub.RemoveEdge(a, b)
	e.addTriangle(a, p, c)
	e.addTriangle(p, b, c)
	e.addTriangle(b, p, x)
	e.addTriangle(p, a, x)

	kids := []triKey{canon(a, p, c), canon(p, b, c), canon(b, p, x), canon(p, a, x)}
	e.hist.addChildren(t, kids...)
	e.hist.addChildren(far, kids...)

	e.legalize(p, [][2]int{{a, x}, {x, b}, {b, c}, {c, a}})
}

func (e *engine) addTriangle(a, b, c int) {
	if _, ok := e.sub.AddTriangle(a, b, c); !ok {
		fatalf("delaunay: degenerate triangle (%d, %d, %d)", a, b, c)
	}
}

// legalize processes a worklist of edges opposite the just-inserted point
// p. An illegal edge (i, j) shared by triangles (i, j, p) and (j, i, k) is
// flipped to the diagonal (p, k), and only the far triangle's other two
// edges (i, k) and (k, j) are re-queued: they are the edges opposite p in
// the two new triangles, so the recursion stays rooted at p. An explicit
// worklist bounds stack depth on adversarial inputs.
func (e *engine) legalize(p int, work [][2]int) {
	for len(work) > 0 {
		i, j := work[len(work)-1][0], work[len(work)-1][1]
		work = work[:len(work)-1]

		if e.seedBoundary(i, j) {
			continue
		}
		he, ok := e.sub.Edge(i, j)
		if !ok {
			// Already flipped away by a previous pass.
			continue
		}
		tw := e.sub.Twin(he)
		if e.sub.Face(he) == dcel.OuterFace || e.sub.Face(tw) == dcel.OuterFace {
			fatalf("delaunay: edge (%d, %d) has a single incident triangle during legalization", i, j)
		}
		l := e.sub.Origin(e.sub.Prev(he))
		k := e.sub.Origin(e.sub.Prev(tw))
		if l != p {
			// The queued orientation put p on the twin side.
			i, j, l, k = j, i, k, l
		}
		if l != p {
			fatalf("delaunay: edge (%d, %d) is not opposite inserted point %d", i, j, p)
		}
		if e.legal(i, j, k, p) {
			continue
		}

		// Flip: retire edge (i, j), connect p and k.
		e.sub.RemoveEdge(i, j)
		e.addTriangle(j, p, k)
		e.addTriangle(i, k, p)
		n1, n2 := canon(j, p, k), canon(i, k, p)
		e.hist.addChildren(canon(i, j, p), n1, n2)
		e.hist.addChildren(canon(j, i, k), n1, n2)

		work = append(work, [2]int{i, k}, [2]int{k, j})
	}
}

// extract collects the sentinel-free DAG leaves into a sorted triangle and
// edge list over the caller's original indices.
func (e *engine) extract(points []r2.Point) *Triangulation {
	t := &Triangulation{Points: points}

	edgeSet := make(map[[2]int]struct{})
	for _, leaf := range e.hist.leaves() {
		if leaf.hasSentinel() {
			continue
		}
		tri := [3]int{e.orig[leaf[0]], e.orig[leaf[1]], e.orig[leaf[2]]}
		t.Triangles = append(t.Triangles, outCanon(tri))
		for i := 0; i < 3; i++ {
			edgeSet[outEdge(tri[i], tri[(i+1)%3])] = struct{}{}
		}
	}
	for edge := range edgeSet {
		t.Edges = append(t.Edges, edge)
	}

	sort.Slice(t.Triangles, func(i, j int) bool {
		a, b := t.Triangles[i], t.Triangles[j]
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		if a[1] != b[1] {
			return a[1] < b[1]
		}
		return a[2] < b[2]
	})
	sort.Slice(t.Edges, func(i, j int) bool {
		a, b := t.Edges[i], t.Edges[j]
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		return a[1] < b[1]
	})
	return t
}

// outCanon rotates a triangle's cycle so the smallest index leads.
func outCanon(t [3]int) [3]int {
	k := canon(t[0], t[1], t[2])
	return [3]int(k)
}

func outEdge(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}
