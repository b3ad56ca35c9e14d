// Copyright (c) 2026 randomLevelup
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package dcel implements a doubly-connected edge list: a half-edge planar
// subdivision with O(1) twin/next/prev navigation and directed-edge lookup.
//
// Half-edges and faces live in arenas and are addressed by integer handles,
// so a whole subdivision is discarded in one go when the owning computation
// returns. Vertices are caller-defined integer ids and carry no coordinates;
// negative ids are permitted (the Delaunay engine uses them for its sentinel
// points).
package dcel

import (
	"sort"
)

// EdgeID is a handle to a half-edge. NoEdge marks an absent edge.
type EdgeID int

// FaceID is a handle to a face. NoFace marks an absent face.
type FaceID int

const (
	NoEdge EdgeID = -1
	NoFace FaceID = -1

	// OuterFace is the unbounded exterior face, present in every subdivision.
	OuterFace FaceID = 0
)

type halfEdge struct {
	origin int
	twin   EdgeID
	next   EdgeID
	prev   EdgeID
	face   FaceID
}

type face struct {
	outer EdgeID
}

// Subdivision is a mutable half-edge planar subdivision.
type Subdivision struct {
	halfEdges []halfEdge
	faces     []face

	// Directed-edge lookup: (origin, dest) -> half-edge. Kept in sync with
	// every creation and removal.
	edges map[[2]int]EdgeID
}

// New returns an empty subdivision containing only the outer face.
func New() *Subdivision {
	return &Subdivision{
		faces: []face{{outer: NoEdge}},
		edges: make(map[[2]int]EdgeID),
	}
}

// NumFaces returns the number of faces, including the outer face.
func (s *Subdivision) NumFaces() int {
	return len(s.faces)
}

// NumHalfEdges returns the number of half-edges ever created.
func (s *Subdivision) NumHalfEdges() int {
	return len(s.halfEdges)
}

// Edge returns the half-edge directed from origin to dest, if present.
func (s *Subdivision) Edge(origin, dest int) (EdgeID, bool) {
	e, ok := s.edges[[2]int{origin, dest}]
	return e, ok
}

// Origin returns the origin vertex id of e.
func (s *Subdivision) Origin(e EdgeID) int { return s.halfEdges[e].origin }

// Dest returns the destination vertex id of e, i.e. the origin of its twin.
func (s *Subdivision) Dest(e EdgeID) int { return s.halfEdges[s.halfEdges[e].twin].origin }

// Twin returns the oppositely directed half-edge of e.
func (s *Subdivision) Twin(e EdgeID) EdgeID { return s.halfEdges[e].twin }

// Next returns the next half-edge in e's face cycle.
func (s *Subdivision) Next(e EdgeID) EdgeID { return s.halfEdges[e].next }

// Prev returns the previous half-edge in e's face cycle.
func (s *Subdivision) Prev(e EdgeID) EdgeID { return s.halfEdges[e].prev }

// Face returns the face incident to e.
func (s *Subdivision) Face(e EdgeID) FaceID { return s.halfEdges[e].face }

// FaceEdge returns the representative boundary half-edge of f.
func (s *Subdivision) FaceEdge(f FaceID) EdgeID { return s.faces[f].outer }

// getOrCreate returns the half-edge origin->dest, creating it together with
// its twin when absent. New half-edges start on the outer face, unlinked.
func (s *Subdivision) getOrCreate(origin, dest int) EdgeID {
	if e, ok := s.edges[[2]int{origin, dest}]; ok {
		return e
	}
	e := EdgeID(len(s.halfEdges))
	t := e + 1
	s.halfEdges = append(s.halfEdges,
		halfEdge{origin: origin, twin: t, next: NoEdge, prev: NoEdge, face: OuterFace},
		halfEdge{origin: dest, twin: e, next: NoEdge, prev: NoEdge, face: OuterFace},
	)
	s.edges[[2]int{origin, dest}] = e
	s.edges[[2]int{dest, origin}] = t
	return e
}

// AddTriangle creates the face with boundary cycle a->b->c->a. The caller
// must pass the vertices in CCW order. Directed edges that already exist are
// reused: their incident face is reassigned to the new face. Degenerate
// triangles with a repeated vertex are rejected.
func (s *Subdivision) AddTriangle(a, b, c int) (FaceID, bool) {
	if a == b || b == c || c == a {
		return NoFace, false
	}
	e1 := s.getOrCreate(a, b)
	e2 := s.getOrCreate(b, c)
	e3 := s.getOrCreate(c, a)

	f := FaceID(len(s.faces))
	s.faces = append(s.faces, face{outer: e1})

	link := func(e, next EdgeID) {
		s.halfEdges[e].next = next
		s.halfEdges[next].prev = e
		s.halfEdges[e].face = f
	}
	link(e1, e2)
	link(e2, e3)
	link(e3, e1)
	return f, true
}

// RemoveEdge deletes the half-edge pair between a and b from the
// directed-edge lookup. The arena records remain as tombstones; only the
// lookup forgets them. It is the caller's responsibility that no live face
// cycle still uses the pair.
func (s *Subdivision) RemoveEdge(a, b int) {
	delete(s.edges, [2]int{a, b})
	delete(s.edges, [2]int{b, a})
}

// EdgeList returns every undirected edge of the subdivision exactly once,
// sorted for deterministic output.
func (s *Subdivision) EdgeList() [][2]int {
	list := make([][2]int, 0, len(s.edges)/2)
	for key := range s.edges {
		if key[0] < key[1] {
			list = append(list, key)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i][0] != list[j][0] {
			return list[i][0] < list[j][0]
		}
		return list[i][1] < list[j][1]
	})
	return list
}
