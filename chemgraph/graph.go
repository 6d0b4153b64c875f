/*
 * graph.go, part of chemview.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package chemgraph exposes chemview topologies as gonum graphs, and uses the gonum graph
//algorithms to obtain the topological information needed to build 3D structures:
//bond-count distances between atoms, rings and connected components.
package chemgraph

import (
	"fmt"

	chem "github.com/rmera/chemview"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"
)

//Atom is a graph node wrapping a chem.Atom. Its ID is the index of the atom
//in the topology.
type Atom struct {
	*chem.Atom
}

//ID returns the ID of the node, which is the index of the atom.
func (A *Atom) ID() int64 {
	return int64(A.Index())
}

//Bond is an undirected graph edge wrapping a chem.Bond.
type Bond struct {
	*chem.Bond
	At1, At2 *Atom
}

func (B *Bond) From() graph.Node {
	return B.At1
}

func (B *Bond) To() graph.Node {
	return B.At2
}

//ReversedEdge returns a new bond with the ends swapped. The original is not changed.
func (B *Bond) ReversedEdge() graph.Edge {
	return &Bond{Bond: B.Bond, At1: B.At2, At2: B.At1}
}

//Topology implements gonum's graph.Undirected for a chem.Bonder.
type Topology struct {
	top   chem.Bonder
	atoms []*Atom
	adj   []map[int64]*Bond
}

//FromChem builds the graph for the atoms and bonds of T. The atoms of T must have correct indexes.
//The graph reflects T at the time of the call, later changes to T are not seen.
func FromChem(T chem.Bonder) *Topology {
	G := &Topology{top: T, atoms: make([]*Atom, T.Len()), adj: make([]map[int64]*Bond, T.Len())}
	for i := range G.atoms {
		at := T.Atom(i)
		if at.Index() != i {
			panic(fmt.Sprintf("chemgraph: atom %d has index %d", i, at.Index()))
		}
		G.atoms[i] = &Atom{Atom: at}
		G.adj[i] = make(map[int64]*Bond)
	}
	for i := 0; i < T.NBonds(); i++ {
		b := T.Bond(i)
		a1, a2 := b.At1.Index(), b.At2.Index()
		e := &Bond{Bond: b, At1: G.atoms[a1], At2: G.atoms[a2]}
		G.adj[a1][int64(a2)] = e
		G.adj[a2][int64(a1)] = e
	}
	return G
}

func (T *Topology) valid(id int64) bool {
	return id >= 0 && id < int64(len(T.atoms))
}

//Len returns the number of nodes (atoms) in the graph.
func (T *Topology) Len() int {
	return len(T.atoms)
}

//Node returns the atom with the given ID, or nil if it doesn't exist.
func (T *Topology) Node(id int64) graph.Node {
	if !T.valid(id) {
		return nil
	}
	return T.atoms[id]
}

//Nodes returns all atoms, in index order.
func (T *Topology) Nodes() graph.Nodes {
	nodes := make([]graph.Node, len(T.atoms))
	for i, v := range T.atoms {
		nodes[i] = v
	}
	return iterator.NewOrderedNodes(nodes)
}

//From returns the atoms bonded to the atom with the given id.
func (T *Topology) From(id int64) graph.Nodes {
	if !T.valid(id) {
		return graph.Empty
	}
	nodes := make([]graph.Node, 0, len(T.adj[id]))
	for _, b := range T.adj[id] {
		if b.At1.ID() == id {
			nodes = append(nodes, b.At2)
		} else {
			nodes = append(nodes, b.At1)
		}
	}
	return iterator.NewOrderedNodes(nodes)
}

func (T *Topology) HasEdgeBetween(xid, yid int64) bool {
	if !T.valid(xid) || !T.valid(yid) {
		return false
	}
	_, ok := T.adj[xid][yid]
	return ok
}

//Edge returns the bond between the atoms with ids uid and vid, oriented from uid to vid,
//or nil if there is no such bond.
func (T *Topology) Edge(uid, vid int64) graph.Edge {
	return T.EdgeBetween(uid, vid)
}

func (T *Topology) EdgeBetween(xid, yid int64) graph.Edge {
	if !T.HasEdgeBetween(xid, yid) {
		return nil
	}
	b := T.adj[xid][yid]
	if b.At1.ID() != xid {
		return b.ReversedEdge()
	}
	return b
}

//walk does a breadth-first search from the atom from, not crossing the edges
//for which skip returns true, and calls found for every atom reached, with its depth.
func (T *Topology) walk(from int, skip func(graph.Edge) bool, found func(id int64, depth int) bool) {
	bf := traverse.BreadthFirst{}
	if skip != nil {
		bf.Traverse = func(e graph.Edge) bool { return !skip(e) }
	}
	bf.Walk(T, T.atoms[from], func(n graph.Node, d int) bool {
		return found(n.ID(), d)
	})
}

//TopologicalDistances returns a matrix where the element i,j is the number of bonds in the
//shortest path between atoms i and j, or -1 if they are not connected.
func (T *Topology) TopologicalDistances() [][]int {
	n := len(T.atoms)
	ret := make([][]int, n)
	for i := range ret {
		ret[i] = make([]int, n)
		for j := range ret[i] {
			ret[i][j] = -1
		}
		T.walk(i, nil, func(id int64, d int) bool {
			ret[i][id] = d
			return false
		})
	}
	return ret
}

//SmallestRingWithBond returns the size of the smallest ring containing the bond between
//atoms i and j, or 0 if the bond is in no ring, or if there is no bond.
func (T *Topology) SmallestRingWithBond(i, j int) int {
	if !T.HasEdgeBetween(int64(i), int64(j)) {
		return 0
	}
	size := 0
	skip := func(e graph.Edge) bool {
		f, t := e.From().ID(), e.To().ID()
		return (f == int64(i) && t == int64(j)) || (f == int64(j) && t == int64(i))
	}
	T.walk(i, skip, func(id int64, d int) bool {
		if id == int64(j) {
			size = d + 1
			return true
		}
		return false
	})
	return size
}

//SmallestRingWithAngle returns the size of the smallest ring that contains both the bond i-j and the bond j-k,
//or 0 if there is no such ring.
func (T *Topology) SmallestRingWithAngle(i, j, k int) int {
	if !T.HasEdgeBetween(int64(i), int64(j)) || !T.HasEdgeBetween(int64(j), int64(k)) || i == k {
		return 0
	}
	size := 0
	skip := func(e graph.Edge) bool {
		return e.From().ID() == int64(j) || e.To().ID() == int64(j)
	}
	T.walk(i, skip, func(id int64, d int) bool {
		if id == int64(k) {
			size = d + 2
			return true
		}
		return false
	})
	return size
}

//Rings returns a set of rings that forms a cycle basis of the molecular graph, each as the
//indexes of its atoms in ring order. The number of rings is the cyclomatic number of the molecule.
func (T *Topology) Rings() [][]int {
	cycles := topo.UndirectedCyclesIn(T)
	ret := make([][]int, 0, len(cycles))
	for _, c := range cycles {
		if len(c) > 1 && c[0].ID() == c[len(c)-1].ID() {
			c = c[:len(c)-1]
		}
		ring := make([]int, len(c))
		for i, v := range c {
			ring[i] = int(v.ID())
		}
		ret = append(ret, ring)
	}
	return ret
}

//Components returns the indexes of the atoms of each connected component of the molecule
//(i.e. each of the fragments separated by dots in a SMILES).
func (T *Topology) Components() [][]int {
	comps := topo.ConnectedComponents(T)
	ret := make([][]int, 0, len(comps))
	for _, c := range comps {
		frag := make([]int, len(c))
		for i, v := range c {
			frag[i] = int(v.ID())
		}
		ret = append(ret, frag)
	}
	return ret
}
