/*
 * enumerate.go, part of huckel.
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
	"math/bits"
	"time"

	"github.com/bits-and-blooms/bitset"
	chem "github.com/rmera/huckel"
	"github.com/rmera/huckel/chemgraph"
	"go.uber.org/zap"
)

//how many combinations (or path steps) are examined between checks of the clock.
const timePoll = 4096

//FindAllRings returns all the simple rings of mol with up to O.MaxRingSize atoms. If O is nil,
//DefaultOptions() are used.
//Rings are obtained from a cycle basis of the molecular graph: every ring is the symmetric
//difference of some basis cycles. The basis is split in blocks of cycles that share bonds, which are
//searched separately, since no ring combines cycles from different blocks. In a block with up to
//O.Budget.MaxCycleRank basis cycles, all the combinations of basis cycles that give a single
//simple cycle are collected. Larger blocks, like long chains of fused rings, are searched instead
//by extending paths of at most O.MaxRingSize atoms, so the work there is bounded by the ring size.
//It returns an InvalidGraphError if mol is malformed and a GraphTooComplexError if the
//search exceeds O.Budget. The molecule is not modified.
func FindAllRings(mol *chem.Molecule, O *Options) (*RingSet, error) {
	O = O.normalized()
	if err := mol.Validate(); err != nil {
		return nil, chem.ErrDecorate(err, "FindAllRings")
	}
	basis := chemgraph.FromMolecule(mol).CycleBasis()
	keys := make([][][2]int, len(basis))
	for i, c := range basis {
		keys[i] = (&Ring{Atoms: c}).BondKeys()
	}
	groups := overlapComponents(keys)
	O.Logger.Debug("ring search started",
		zap.Int("atoms", mol.Len()),
		zap.Int("bonds", len(mol.Bonds)),
		zap.Int("cycleRank", len(basis)),
		zap.Int("blocks", len(groups)))
	e := &enumerator{opts: O, start: time.Now(), seen: make(map[string]bool)}
	for _, g := range groups {
		bk := make([][][2]int, 0, len(g))
		for _, i := range g {
			bk = append(bk, keys[i])
		}
		b := newBlock(bk)
		var err error
		if len(b.basis) > O.Budget.MaxCycleRank {
			err = e.search(b)
		} else {
			err = e.enumerate(b)
		}
		if err != nil {
			O.Logger.Warn("ring search aborted", zap.Error(err), zap.Int("ringsFound", len(e.rings)))
			return nil, chem.ErrDecorate(err, "FindAllRings")
		}
	}
	O.Logger.Debug("ring search finished", zap.Int("rings", len(e.rings)), zap.Duration("elapsed", time.Since(e.start)))
	return newRingSet(e.rings), nil
}

//block is a set of basis cycles that share bonds, with the
//atoms and bonds renumbered locally.
type block struct {
	atoms []int    //local atom -> atom index in the molecule
	edges [][2]int //local bond -> pair of local atoms
	basis []*bitset.BitSet
}

func newBlock(cycles [][][2]int) *block {
	b := new(block)
	localA := make(map[int]int)
	localE := make(map[[2]int]int)
	for _, c := range cycles {
		for _, k := range c {
			if _, ok := localE[k]; ok {
				continue
			}
			var le [2]int
			for j, a := range k {
				l, ok := localA[a]
				if !ok {
					l = len(b.atoms)
					localA[a] = l
					b.atoms = append(b.atoms, a)
				}
				le[j] = l
			}
			localE[k] = len(b.edges)
			b.edges = append(b.edges, le)
		}
	}
	for _, c := range cycles {
		bs := bitset.New(uint(len(b.edges)))
		for _, k := range c {
			bs.Set(uint(localE[k]))
		}
		b.basis = append(b.basis, bs)
	}
	return b
}

//scratch holds the buffers used to test whether a set of bonds is a single cycle.
type scratch struct {
	deg     []int
	adj     [][2]int
	touched []int
}

func newScratch(natoms int) *scratch {
	return &scratch{deg: make([]int, natoms), adj: make([][2]int, natoms), touched: make([]int, 0, natoms)}
}

//cycle returns the atoms (as indexes in the molecule) of the cycle formed by the
//bonds in set, in order, and true. If the bonds don't form one single simple cycle, it returns nil, false.
func (b *block) cycle(set *bitset.BitSet, sc *scratch) ([]int, bool) {
	sc.touched = sc.touched[:0]
	defer func() {
		for _, v := range sc.touched {
			sc.deg[v] = 0
		}
	}()
	nedges := 0
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		nedges++
		for _, v := range b.edges[i] {
			if sc.deg[v] == 2 {
				return nil, false //a branch point
			}
			if sc.deg[v] == 0 {
				sc.touched = append(sc.touched, v)
			}
			sc.adj[v][sc.deg[v]] = int(i)
			sc.deg[v]++
		}
	}
	//With no atom of degree over 2, as many atoms as bonds means every atom has degree 2.
	if nedges < 3 || len(sc.touched) != nedges {
		return nil, false
	}
	start := sc.touched[0]
	seq := make([]int, 0, nedges)
	v, e := start, sc.adj[start][0]
	for len(seq) <= nedges {
		seq = append(seq, b.atoms[v])
		w := b.edges[e][0]
		if w == v {
			w = b.edges[e][1]
		}
		if w == start {
			break
		}
		next := sc.adj[w][0]
		if next == e {
			next = sc.adj[w][1]
		}
		v, e = w, next
	}
	//if the walk closed early, the bonds form more than one cycle.
	if len(seq) != nedges {
		return nil, false
	}
	return seq, true
}

type enumerator struct {
	opts  *Options
	start time.Time
	steps int
	rings []*Ring
	seen  map[string]bool
}

//enumerate walks all the non-empty combinations of the basis cycles of b in Gray code order,
//so each combination is obtained from the previous one with one symmetric difference.
func (e *enumerator) enumerate(b *block) error {
	k := len(b.basis)
	e.opts.Logger.Debug("enumerating ring block", zap.Int("atoms", len(b.atoms)), zap.Int("bonds", len(b.edges)), zap.Int("cycleRank", k))
	cur := bitset.New(uint(len(b.edges)))
	sc := newScratch(len(b.atoms))
	total := uint64(1) << uint(k)
	for i := uint64(1); i < total; i++ {
		cur.InPlaceSymmetricDifference(b.basis[bits.TrailingZeros64(i)])
		if i%timePoll == 0 {
			if err := e.checkTime(); err != nil {
				return err
			}
		}
		c := int(cur.Count())
		if c < 3 || c > e.opts.MaxRingSize {
			continue
		}
		seq, ok := b.cycle(cur, sc)
		if !ok {
			continue
		}
		if err := e.add(seq); err != nil {
			return err
		}
	}
	return nil
}

//search finds the rings of b by depth-first extension of paths. Each ring is
//built from its lowest local atom, through atoms higher than that one only, and
//a path is abandoned when it can't close back into a ring of at most MaxRingSize atoms.
func (e *enumerator) search(b *block) error {
	n := len(b.atoms)
	limit := e.opts.MaxRingSize
	e.opts.Logger.Debug("searching ring block by paths", zap.Int("atoms", n), zap.Int("bonds", len(b.edges)), zap.Int("cycleRank", len(b.basis)))
	adj := make([][]int, n)
	for _, ed := range b.edges {
		adj[ed[0]] = append(adj[ed[0]], ed[1])
		adj[ed[1]] = append(adj[ed[1]], ed[0])
	}
	p := &pathSearch{
		e:      e,
		b:      b,
		adj:    adj,
		limit:  limit,
		dist:   make([]int, n),
		onPath: make([]bool, n),
		path:   make([]int, 0, limit),
		queue:  make([]int, 0, n),
	}
	for s := 0; s < n; s++ {
		p.distances(s)
		if err := p.extend(s, s); err != nil {
			return err
		}
	}
	return nil
}

type pathSearch struct {
	e      *enumerator
	b      *block
	adj    [][]int
	limit  int
	dist   []int //bonds from each atom back to the start, -1 if unreachable
	onPath []bool
	path   []int
	queue  []int
}

//distances fills p.dist with the BFS distances to s through atoms not lower than s.
func (p *pathSearch) distances(s int) {
	for i := range p.dist {
		p.dist[i] = -1
	}
	p.dist[s] = 0
	p.queue = append(p.queue[:0], s)
	for len(p.queue) > 0 {
		v := p.queue[0]
		p.queue = p.queue[1:]
		for _, w := range p.adj[v] {
			if w < s || p.dist[w] >= 0 {
				continue
			}
			p.dist[w] = p.dist[v] + 1
			p.queue = append(p.queue, w)
		}
	}
}

func (p *pathSearch) extend(s, v int) error {
	p.e.steps++
	if p.e.steps%timePoll == 0 {
		if err := p.e.checkTime(); err != nil {
			return err
		}
	}
	p.path = append(p.path, v)
	p.onPath[v] = true
	defer func() {
		p.path = p.path[:len(p.path)-1]
		p.onPath[v] = false
	}()
	for _, w := range p.adj[v] {
		if w == s {
			//each ring is found in both directions, only one is kept.
			if len(p.path) >= 3 && p.path[1] < v {
				seq := make([]int, len(p.path))
				for i, a := range p.path {
					seq[i] = p.b.atoms[a]
				}
				if err := p.e.add(seq); err != nil {
					return err
				}
			}
			continue
		}
		if w < s || p.onPath[w] || p.dist[w] < 0 || len(p.path)+p.dist[w] > p.limit {
			continue
		}
		if err := p.extend(s, w); err != nil {
			return err
		}
	}
	return nil
}

//add stores the ring for seq, if it is new, and checks the budget.
func (e *enumerator) add(seq []int) error {
	r := NewRing(seq)
	k := r.key()
	if e.seen[k] {
		return nil
	}
	e.seen[k] = true
	e.rings = append(e.rings, r)
	if limit := e.opts.Budget.MaxRings; limit > 0 && len(e.rings) > limit {
		return chem.NewGraphTooComplexError(chem.LimitRings, len(e.rings), limit, "add")
	}
	return e.checkTime()
}

func (e *enumerator) checkTime() error {
	limit := e.opts.Budget.MaxTime
	if limit <= 0 {
		return nil
	}
	if el := time.Since(e.start); el > limit {
		return chem.NewGraphTooComplexError(chem.LimitTime, int(el.Milliseconds()), int(limit.Milliseconds()), "checkTime")
	}
	return nil
}
