/*
 * bonds.go, part of huckel.
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

package chem

import "fmt"

//BondOrder is the order of a bond. It is kept as a small enumeration rather
//than a float, so there is no ambiguity when comparing orders.
type BondOrder uint8

const (
	Unset BondOrder = iota
	Single
	Double
	Triple
	AromaticOrder //a bond already perceived as aromatic, i.e. from a file that carries the information.
)

func (o BondOrder) String() string {
	switch o {
	case Single:
		return "single"
	case Double:
		return "double"
	case Triple:
		return "triple"
	case AromaticOrder:
		return "aromatic"
	default:
		return "unset"
	}
}

//Valid returns true if o is one of the defined, non-Unset orders.
func (o BondOrder) Valid() bool {
	return o >= Single && o <= AromaticOrder
}

//Multiple returns true for double, triple and aromatic bonds, i.e. bonds
//that carry pi electrons.
func (o BondOrder) Multiple() bool {
	return o == Double || o == Triple || o == AromaticOrder
}

//Valence returns the number of electrons that an atom contributes to the bond. Aromatic bonds count as
//single, since the extra electron of each atom in an aromatic bond is already in the pi system.
func (o BondOrder) Valence() int {
	switch o {
	case Double:
		return 2
	case Triple:
		return 3
	case Unset:
		return 0
	default:
		return 1
	}
}

//Bond joins two atoms of a Molecule, given by their indexes.
//Bonds are not directional.
type Bond struct {
	Index      int
	At1        int
	At2        int
	Order      BondOrder
	IsAromatic bool
}

//Cross returns the index of the atom at the other end of the bond, starting from origin.
func (B *Bond) Cross(origin int) int {
	if origin == B.At1 {
		return B.At2
	}
	if origin == B.At2 {
		return B.At1
	}
	panic(fmt.Sprintf("Trying to cross a bond: The origin atom %d is not present in the bond %d!", origin, B.Index)) //a programming error, so a panic is warranted.
}

//Has returns true if the atom with index i is part of the bond.
func (B *Bond) Has(i int) bool {
	return B.At1 == i || B.At2 == i
}

//Key returns the indexes of the two atoms, smallest first.
func (B *Bond) Key() [2]int {
	if B.At1 < B.At2 {
		return [2]int{B.At1, B.At2}
	}
	return [2]int{B.At2, B.At1}
}

func (B *Bond) String() string {
	return fmt.Sprintf("%d-%d(%s)", B.At1, B.At2, B.Order)
}

//ValenceSum returns the sum of the valences of all bonds
//of the atom i, hydrogens not included.
func (M *Molecule) ValenceSum(i int) int {
	s := 0
	for _, b := range M.BondsOf(i) {
		s += b.Order.Valence()
	}
	return s
}
