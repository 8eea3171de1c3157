/*
 * graph.go, part of huckel.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 *
 */

//Package chemgraph gives a gonum graph view of a molecule, where atoms are nodes and bonds
//are undirected edges.
package chemgraph

import (
	"math"
	"sort"

	chem "github.com/rmera/huckel"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

//Atom implements gonum's graph.Node. Its ID is the position of the
//atom in the molecule's Atoms slice, whatever its Index field says.
type Atom struct {
	*chem.Atom
	id int64
}

func (A Atom) ID() int64 {
	return A.id
}

//Bond implements gonum's graph.Edge.
type Bond struct {
	*chem.Bond
	F, T Atom
}

func (B Bond) From() graph.Node {
	return B.F
}

func (B Bond) To() graph.Node {
	return B.T
}

//ReversedEdge returns a copy of the bond with its ends swapped.
//The underlying chem.Bond is shared.
func (B Bond) ReversedEdge() graph.Edge {
	return Bond{Bond: B.Bond, F: B.T, T: B.F}
}

//Graph implements gonum's graph.Undirected for a molecule.
//It is a snapshot: changes in the bonds of the molecule after
//the Graph is built are not reflected.
type Graph struct {
	*simple.UndirectedGraph
	mol *chem.Molecule
}

//FromMolecule builds the graph for mol. The molecule is expected to be
//valid (see chem.Molecule.Validate), self-bonds would cause a panic.
func FromMolecule(mol *chem.Molecule) *Graph {
	g := simple.NewUndirectedGraph()
	for i, at := range mol.Atoms {
		g.AddNode(Atom{Atom: at, id: int64(i)})
	}
	for _, b := range mol.Bonds {
		from := Atom{Atom: mol.Atoms[b.At1], id: int64(b.At1)}
		to := Atom{Atom: mol.Atoms[b.At2], id: int64(b.At2)}
		g.SetEdge(Bond{Bond: b, F: from, T: to})
	}
	return &Graph{UndirectedGraph: g, mol: mol}
}

//Molecule returns the molecule from which the graph was built.
func (G *Graph) Molecule() *chem.Molecule {
	return G.mol
}

//BondBetween returns the bond joining atoms i and j, or nil.
func (G *Graph) BondBetween(i, j int) *chem.Bond {
	e := G.EdgeBetween(int64(i), int64(j))
	if e == nil {
		return nil
	}
	return e.(Bond).Bond
}

//Components returns the atom indexes of each connected component of
//the molecule. Each component is sorted, and the components are sorted by their
//first atom.
func (G *Graph) Components() [][]int {
	cc := topo.ConnectedComponents(G)
	ret := make([][]int, 0, len(cc))
	for _, c := range cc {
		ret = append(ret, nodeIndexes(c))
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}

//CycleBasis returns a set of cycles that forms a cycle basis of the
//molecular graph. Every cycle of the molecule is a symmetric difference of some of them.
//Each cycle is given as a path of atom indexes, where the last atom is bonded
//to the first one (the first atom is not repeated at the end).
func (G *Graph) CycleBasis() [][]int {
	cycles := topo.UndirectedCyclesIn(G)
	ret := make([][]int, 0, len(cycles))
	for _, c := range cycles {
		if len(c) > 1 && c[0].ID() == c[len(c)-1].ID() {
			c = c[:len(c)-1]
		}
		if len(c) < 3 {
			continue //can't happen without self-loops or multi-bonds, which a valid molecule doesn't have.
		}
		cyc := make([]int, len(c))
		for i, v := range c {
			cyc[i] = int(v.ID())
		}
		ret = append(ret, cyc)
	}
	return ret
}

//TopologicalMatrix returns the matrix of topological distances (number of bonds
//in the shortest path) between every pair of atoms. Atoms in different
//components are at distance -1.
func (G *Graph) TopologicalMatrix() [][]int {
	n := G.mol.Len()
	paths := path.DijkstraAllPaths(G)
	ret := make([][]int, n)
	for i := range ret {
		ret[i] = make([]int, n)
		for j := range ret[i] {
			if i == j {
				continue
			}
			w := paths.Weight(int64(i), int64(j))
			if math.IsInf(w, 1) {
				ret[i][j] = -1
				continue
			}
			ret[i][j] = int(w)
		}
	}
	return ret
}

func nodeIndexes(nodes []graph.Node) []int {
	ret := make([]int, len(nodes))
	for i, v := range nodes {
		ret[i] = int(v.ID())
	}
	sort.Ints(ret)
	return ret
}
