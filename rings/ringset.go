/*
 * ringset.go, part of huckel.
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

package rings

import (
	"sort"

	"github.com/bits-and-blooms/bitset"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

//RingSet is a collection of canonical rings of one molecule, sorted by size and then
//lexicographically. Rings in a set may share atoms and bonds.
type RingSet struct {
	Rings []*Ring
	index map[string]int
}

func newRingSet(rings []*Ring) *RingSet {
	sort.Slice(rings, func(i, j int) bool { return rings[i].Less(rings[j]) })
	S := &RingSet{Rings: rings, index: make(map[string]int, len(rings))}
	for i, r := range rings {
		S.index[r.key()] = i
	}
	return S
}

//NewRingSet returns a set with the given rings, canonicalized, without duplicates.
func NewRingSet(rings ...*Ring) *RingSet {
	seen := make(map[string]bool, len(rings))
	rs := make([]*Ring, 0, len(rings))
	for _, r := range rings {
		c := NewRing(r.Atoms)
		if seen[c.key()] {
			continue
		}
		seen[c.key()] = true
		rs = append(rs, c)
	}
	return newRingSet(rs)
}

//Len returns the number of rings in the set.
func (S *RingSet) Len() int {
	return len(S.Rings)
}

//Contains returns true if the canonical ring r is in the set.
func (S *RingSet) Contains(r *Ring) bool {
	_, ok := S.index[r.key()]
	return ok
}

//AtomInRing returns true if the atom with index i belongs to at least one ring in the set.
func (S *RingSet) AtomInRing(i int) bool {
	for _, r := range S.Rings {
		if r.Contains(i) {
			return true
		}
	}
	return false
}

//RingsWithAtom returns the rings that contain the atom i.
func (S *RingSet) RingsWithAtom(i int) []*Ring {
	var ret []*Ring
	for _, r := range S.Rings {
		if r.Contains(i) {
			ret = append(ret, r)
		}
	}
	return ret
}

//Atoms returns the sorted indexes of all atoms in at least one ring.
func (S *RingSet) Atoms() []int {
	return ringAtoms(S.Rings)
}

//SizeCount returns how many rings of each size are in the set.
func (S *RingSet) SizeCount() map[int]int {
	ret := make(map[int]int)
	for _, r := range S.Rings {
		ret[r.Len()]++
	}
	return ret
}

//SSSR returns the smallest set of smallest rings: a minimum cycle basis chosen
//among the rings of the set. Rings are considered smallest first, and a ring is taken
//if it is not a symmetric difference of the rings taken before it.
//If the set doesn't contain every ring (i.e. some were over the size limit) the result
//spans only the cycles that the set does contain.
func (S *RingSet) SSSR() []*Ring {
	edges := make(map[[2]int]int)
	for _, r := range S.Rings {
		for _, k := range r.BondKeys() {
			if _, ok := edges[k]; !ok {
				edges[k] = len(edges)
			}
		}
	}
	rows := make(map[uint]*bitset.BitSet) //pivot -> row with that lowest element
	var ret []*Ring
	for _, r := range S.Rings {
		v := bitset.New(uint(len(edges)))
		for _, k := range r.BondKeys() {
			v.Set(uint(edges[k]))
		}
		for {
			p, ok := v.NextSet(0)
			if !ok {
				break //dependent on the rings already taken.
			}
			row, ok := rows[p]
			if !ok {
				rows[p] = v
				ret = append(ret, r)
				break
			}
			v.InPlaceSymmetricDifference(row)
		}
	}
	return ret
}

//System is a fused ring system: a maximal set of rings connected
//through shared bonds.
type System struct {
	Rings []*Ring //all the rings of the set in the system, in set order.
	SSSR  []*Ring //the smallest rings of the system.
}

//Systems returns the fused ring systems of the set, in the order of their smallest rings.
func (S *RingSet) Systems() []*System {
	sssr := S.SSSR()
	keys := make([][][2]int, len(sssr))
	for i, r := range sssr {
		keys[i] = r.BondKeys()
	}
	groups := overlapComponents(keys)
	ret := make([]*System, len(groups))
	owner := make(map[[2]int]int)
	for i, g := range groups {
		ret[i] = new(System)
		for _, j := range g {
			ret[i].SSSR = append(ret[i].SSSR, sssr[j])
			for _, k := range keys[j] {
				owner[k] = i
			}
		}
	}
	for _, r := range S.Rings {
		if i, ok := owner[r.BondKeys()[0]]; ok {
			ret[i].Rings = append(ret[i].Rings, r)
		}
	}
	return ret
}

//Atoms returns the sorted atom indexes of the system.
func (s *System) Atoms() []int {
	return ringAtoms(s.SSSR)
}

//Perimeter returns the ring formed by the outer boundary of the system: the bonds
//that belong to an odd number of its smallest rings. It returns nil if those bonds
//don't form one simple cycle, which can happen in bridged systems.
//For a system with only one ring, the perimeter is the ring itself.
func (s *System) Perimeter() *Ring {
	if len(s.SSSR) == 1 {
		return s.SSSR[0]
	}
	odd := make(map[[2]int]bool)
	for _, r := range s.SSSR {
		for _, k := range r.BondKeys() {
			odd[k] = !odd[k]
		}
	}
	adj := make(map[int][]int)
	nedges := 0
	for k, v := range odd {
		if !v {
			continue
		}
		nedges++
		adj[k[0]] = append(adj[k[0]], k[1])
		adj[k[1]] = append(adj[k[1]], k[0])
	}
	if nedges < 3 || len(adj) != nedges {
		return nil
	}
	start := -1
	for a, n := range adj {
		if len(n) != 2 {
			return nil
		}
		if start < 0 || a < start {
			start = a
		}
	}
	seq := []int{start}
	prev, cur := start, adj[start][0]
	for cur != start {
		seq = append(seq, cur)
		next := adj[cur][0]
		if next == prev {
			next = adj[cur][1]
		}
		prev, cur = cur, next
	}
	if len(seq) != nedges {
		return nil
	}
	return NewRing(seq)
}

//overlapComponents groups the given bond sets (i.e. rings) so that two sets sharing a bond
//end up in the same group. Each group is a sorted slice of indexes of sets, and the groups
//are sorted by their first element.
func overlapComponents(sets [][][2]int) [][]int {
	g := simple.NewUndirectedGraph()
	first := make(map[[2]int]int64)
	for i, s := range sets {
		id := int64(i)
		g.AddNode(simple.Node(id))
		for _, k := range s {
			f, ok := first[k]
			if !ok {
				first[k] = id
				continue
			}
			if f != id && !g.HasEdgeBetween(f, id) {
				g.SetEdge(g.NewEdge(simple.Node(f), simple.Node(id)))
			}
		}
	}
	cc := topo.ConnectedComponents(g)
	ret := make([][]int, 0, len(cc))
	for _, c := range cc {
		grp := make([]int, len(c))
		for i, n := range c {
			grp[i] = int(n.ID())
		}
		sort.Ints(grp)
		ret = append(ret, grp)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}

func ringAtoms(rings []*Ring) []int {
	seen := make(map[int]bool)
	var ret []int
	for _, r := range rings {
		for _, a := range r.Atoms {
			if !seen[a] {
				seen[a] = true
				ret = append(ret, a)
			}
		}
	}
	sort.Ints(ret)
	return ret
}
