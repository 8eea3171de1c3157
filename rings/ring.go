/*
 * ring.go, part of huckel.
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
	"fmt"
	"strings"

	chem "github.com/rmera/huckel"
)

//Ring is a cycle of bonded atoms, given as the atom indexes in order, where the last one is
//bonded to the first one. Rings built with NewRing are canonical: they start with the lowest
//atom index and go in the direction that gives the lexicographically smaller sequence, so two Rings
//describe the same cycle if and only if their Atoms are equal.
type Ring struct {
	Atoms []int
}

//NewRing returns the canonical ring for the cyclic sequence of atoms. The slice is not modified.
//It panics if the sequence has less than 3 atoms.
func NewRing(atoms []int) *Ring {
	if len(atoms) < 3 {
		panic(fmt.Sprintf("NewRing: A ring needs at least 3 atoms, got %d", len(atoms)))
	}
	return &Ring{Atoms: canonical(atoms)}
}

//canonical returns a rotated and possibly reversed copy of seq, starting at its lowest
//element, in the direction of the smaller neighbour of that element.
func canonical(seq []int) []int {
	n := len(seq)
	start := 0
	for i, v := range seq {
		if v < seq[start] {
			start = i
		}
	}
	step := 1
	//The atoms of a ring are all different, so comparing the two neighbours
	//of the first atom is enough to choose the direction.
	if seq[(start+n-1)%n] < seq[(start+1)%n] {
		step = n - 1
	}
	ret := make([]int, n)
	for i := range ret {
		ret[i] = seq[(start+i*step)%n]
	}
	return ret
}

//Len returns the number of atoms in the ring.
func (R *Ring) Len() int {
	return len(R.Atoms)
}

//Contains returns true if the atom with index i is in the ring.
func (R *Ring) Contains(i int) bool {
	for _, v := range R.Atoms {
		if v == i {
			return true
		}
	}
	return false
}

//HasBond returns true if atoms i and j are consecutive in the ring.
func (R *Ring) HasBond(i, j int) bool {
	n := len(R.Atoms)
	for k, v := range R.Atoms {
		next := R.Atoms[(k+1)%n]
		if (v == i && next == j) || (v == j && next == i) {
			return true
		}
	}
	return false
}

//BondKeys returns the pairs of consecutive atoms in the ring, each with the smallest
//index first, starting with the pair formed by the first two atoms.
func (R *Ring) BondKeys() [][2]int {
	n := len(R.Atoms)
	ret := make([][2]int, n)
	for k, v := range R.Atoms {
		w := R.Atoms[(k+1)%n]
		if v < w {
			ret[k] = [2]int{v, w}
		} else {
			ret[k] = [2]int{w, v}
		}
	}
	return ret
}

//Bonds returns the bonds of mol along the ring. It returns an error if some
//pair of consecutive atoms is not bonded in mol, i.e. if the ring doesn't belong to the molecule.
func (R *Ring) Bonds(mol *chem.Molecule) ([]*chem.Bond, error) {
	ret := make([]*chem.Bond, 0, len(R.Atoms))
	for _, k := range R.BondKeys() {
		if k[0] < 0 || k[1] >= mol.Len() {
			return nil, chem.NewInvalidGraphError(fmt.Sprintf("ring %v has atoms out of range", R.Atoms), "Ring.Bonds")
		}
		b := mol.Bond(k[0], k[1])
		if b == nil {
			return nil, chem.NewInvalidGraphError(fmt.Sprintf("atoms %d and %d are consecutive in ring %v, but not bonded", k[0], k[1], R.Atoms), "Ring.Bonds")
		}
		ret = append(ret, b)
	}
	return ret, nil
}

//Equal returns true if both rings have the same atoms in the same order.
//Both rings need to be canonical for this to mean that they are the same cycle.
func (R *Ring) Equal(O *Ring) bool {
	if len(R.Atoms) != len(O.Atoms) {
		return false
	}
	for i, v := range R.Atoms {
		if O.Atoms[i] != v {
			return false
		}
	}
	return true
}

//Less orders rings by size, then lexicographically by their atoms.
func (R *Ring) Less(O *Ring) bool {
	if len(R.Atoms) != len(O.Atoms) {
		return len(R.Atoms) < len(O.Atoms)
	}
	for i, v := range R.Atoms {
		if v != O.Atoms[i] {
			return v < O.Atoms[i]
		}
	}
	return false
}

func (R *Ring) String() string {
	s := make([]string, len(R.Atoms))
	for i, v := range R.Atoms {
		s[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(s, " ") + "]"
}

func (R *Ring) key() string {
	return R.String()
}
