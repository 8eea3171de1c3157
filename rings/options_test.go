/*
 * options_test.go, part of huckel.
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
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/google/go-cmp/cmp"
)

func TestOptionsNormalized(Te *testing.T) {
	var O *Options
	n := O.normalized()
	if n.MaxRingSize != DefaultMaxRingSize || n.Logger == nil {
		Te.Errorf("nil options not defaulted: %+v", n)
	}
	O = &Options{MaxRingSize: 2, Budget: Budget{MaxCycleRank: 100}}
	n = O.normalized()
	if n.MaxRingSize != DefaultMaxRingSize || n.Budget.MaxCycleRank != maxCycleRank || n.Logger == nil {
		Te.Errorf("options not normalized: %+v", n)
	}
	if O.Logger != nil {
		Te.Error("normalized modified the original options")
	}
}

//Two triangles sharing atom 0, and a square on atoms 10-13.
func TestBlockCycle(Te *testing.T) {
	b := newBlock([][][2]int{
		{{0, 1}, {1, 2}, {0, 2}},
		{{0, 3}, {3, 4}, {0, 4}},
		{{10, 11}, {11, 12}, {12, 13}, {10, 13}},
	})
	sc := newScratch(len(b.atoms))
	seq, ok := b.cycle(b.basis[0], sc)
	if !ok {
		Te.Fatal("a triangle is a cycle")
	}
	if diff := cmp.Diff([]int{0, 1, 2}, NewRing(seq).Atoms); diff != "" {
		Te.Errorf("triangle (-want +got):\n%s", diff)
	}
	both := b.basis[0].Union(b.basis[1])
	if _, ok := b.cycle(both, sc); ok {
		Te.Error("two triangles sharing an atom are not a simple cycle")
	}
	apart := b.basis[0].Union(b.basis[2])
	if _, ok := b.cycle(apart, sc); ok {
		Te.Error("two disjoint cycles are not one cycle")
	}
	seq, ok = b.cycle(b.basis[2], sc)
	if !ok || len(seq) != 4 {
		Te.Errorf("the square was not recovered: %v", seq)
	}
	if _, ok := b.cycle(bitset.New(uint(len(b.edges))), sc); ok {
		Te.Error("the empty set is not a cycle")
	}
}
