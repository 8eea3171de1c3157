/*
 * chem.go, part of huckel.
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

import (
	"fmt"
	"sort"
)

/**Note: As in the rest of the library, a few functions here panic instead of returning errors.
 * Those are the "fundamental" ones (i.e. asking for an atom out of range). If something goes wrong
 * there, the program calling them is wrong and should crash.**/

//Atom contains the information about one atom of a molecular graph.
//The atom is owned by the Molecule and its Index is its position
//in the Molecule's Atoms slice.
type Atom struct {
	Index      int
	Name       string
	Symbol     string
	Charge     int //formal charge
	ImplicitH  int //hydrogens not present as atoms in the graph
	IsAromatic bool
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	N := new(Atom)
	*N = *A
	return N
}

//Molecule is a molecular graph: an ordered set of atoms and a set of bonds
//between them. The adjacency is always derived from the bond list, so
//it can't get out of sync with it.
type Molecule struct {
	Atoms []*Atom
	Bonds []*Bond
}

//NewMolecule returns an empty molecule with room for natoms atoms.
func NewMolecule(natoms int) *Molecule {
	M := new(Molecule)
	M.Atoms = make([]*Atom, 0, natoms)
	M.Bonds = make([]*Bond, 0, natoms+natoms/2)
	return M
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

//Atom returns the Atom corresponding to the index i
//of the Atom slice in the Molecule. Panics if
//out of range.
func (M *Molecule) Atom(i int) *Atom {
	if i < 0 || i >= M.Len() {
		panic(fmt.Sprintf("Molecule: Requested Atom %d out of bounds", i))
	}
	return M.Atoms[i]
}

//AddAtom appends a new atom with the given symbol to the molecule and returns it.
func (M *Molecule) AddAtom(symbol string) *Atom {
	at := &Atom{Index: len(M.Atoms), Symbol: symbol}
	M.Atoms = append(M.Atoms, at)
	return at
}

//AddBond adds a bond of the given order between the atoms with indexes i and j.
//It returns an InvalidGraphError if the bond would leave the graph malformed.
func (M *Molecule) AddBond(i, j int, order BondOrder) (*Bond, error) {
	b := &Bond{Index: len(M.Bonds), At1: i, At2: j, Order: order}
	if err := M.checkBond(b, b.Index); err != nil {
		return nil, errDecorate(err, "AddBond")
	}
	if M.Bond(i, j) != nil {
		return nil, newInvalidGraphError(fmt.Sprintf("duplicate bond between atoms %d and %d", i, j), "AddBond")
	}
	M.Bonds = append(M.Bonds, b)
	return b, nil
}

//MustBond is like AddBond, but it panics on error. Meant for
//building molecules from literals.
func (M *Molecule) MustBond(i, j int, order BondOrder) *Bond {
	b, err := M.AddBond(i, j, order)
	if err != nil {
		panic(err.Error())
	}
	return b
}

//BondsOf returns the bonds in which the atom with index i participates,
//in bond list order.
func (M *Molecule) BondsOf(i int) []*Bond {
	ret := make([]*Bond, 0, 4)
	for _, b := range M.Bonds {
		if b.Has(i) {
			ret = append(ret, b)
		}
	}
	return ret
}

//Neighbors returns the indexes of the atoms bonded to i, sorted.
func (M *Molecule) Neighbors(i int) []int {
	ret := make([]int, 0, 4)
	for _, b := range M.Bonds {
		if b.Has(i) {
			ret = append(ret, b.Cross(i))
		}
	}
	sort.Ints(ret)
	return ret
}

//Bond returns the bond between atoms i and j, or nil if they are not bonded.
func (M *Molecule) Bond(i, j int) *Bond {
	for _, b := range M.Bonds {
		if b.Has(i) && b.Has(j) && i != j {
			return b
		}
	}
	return nil
}

//Hydrogens returns the total number of hydrogens on atom i,
//counting both the implicit ones and the H atoms bonded to it.
func (M *Molecule) Hydrogens(i int) int {
	h := M.Atom(i).ImplicitH
	for _, j := range M.Neighbors(i) {
		if M.Atoms[j].Symbol == "H" {
			h++
		}
	}
	return h
}

//Connectivity returns the number of neighbors of atom i, including
//implicit hydrogens.
func (M *Molecule) Connectivity(i int) int {
	return len(M.BondsOf(i)) + M.Atom(i).ImplicitH
}

//ResetFlags sets the aromaticity flag of every atom and bond to false.
func (M *Molecule) ResetFlags() {
	for _, a := range M.Atoms {
		a.IsAromatic = false
	}
	for _, b := range M.Bonds {
		b.IsAromatic = false
	}
}

//AromaticAtoms returns the indexes of the atoms flagged as aromatic.
func (M *Molecule) AromaticAtoms() []int {
	ret := make([]int, 0, M.Len())
	for i, a := range M.Atoms {
		if a.IsAromatic {
			ret = append(ret, i)
		}
	}
	return ret
}

//Copy returns a deep copy of the molecule.
func (M *Molecule) Copy() *Molecule {
	N := NewMolecule(M.Len())
	for _, a := range M.Atoms {
		N.Atoms = append(N.Atoms, a.Copy())
	}
	for _, b := range M.Bonds {
		nb := *b
		N.Bonds = append(N.Bonds, &nb)
	}
	return N
}

//Validate checks that the molecule is a well formed graph: every bond
//joins two distinct, existing atoms, there are no duplicate bonds,
//every bond has an order and every atom has a symbol and a non-negative
//hydrogen count. It doesn't modify the molecule. Atoms and bonds are
//identified by their positions in the slices, the Index fields are not used.
func (M *Molecule) Validate() error {
	if M == nil {
		return newInvalidGraphError("nil molecule", "Validate")
	}
	for i, a := range M.Atoms {
		if a == nil {
			return newInvalidGraphError(fmt.Sprintf("atom %d is nil", i), "Validate")
		}
		if a.Symbol == "" {
			return newInvalidGraphError(fmt.Sprintf("atom %d has no element symbol", i), "Validate")
		}
		if a.ImplicitH < 0 {
			return newInvalidGraphError(fmt.Sprintf("atom %d has %d implicit hydrogens", i, a.ImplicitH), "Validate")
		}
	}
	seen := make(map[[2]int]int, len(M.Bonds))
	for i, b := range M.Bonds {
		if b == nil {
			return newInvalidGraphError(fmt.Sprintf("bond %d is nil", i), "Validate")
		}
		if err := M.checkBond(b, i); err != nil {
			return errDecorate(err, "Validate")
		}
		if prev, ok := seen[b.Key()]; ok {
			return newInvalidGraphError(fmt.Sprintf("bonds %d and %d join the same atoms %v", prev, i, b.Key()), "Validate")
		}
		seen[b.Key()] = i
	}
	return nil
}

//Reindex sets the Index field of every atom and bond to its position
//in the Molecule. Useful after building or reordering the slices by hand.
func (M *Molecule) Reindex() {
	for i, a := range M.Atoms {
		a.Index = i
	}
	for i, b := range M.Bonds {
		b.Index = i
	}
}

func (M *Molecule) checkBond(b *Bond, i int) error {
	n := M.Len()
	if b.At1 < 0 || b.At1 >= n || b.At2 < 0 || b.At2 >= n {
		return newInvalidGraphError(fmt.Sprintf("bond %d references atoms %d-%d, molecule has %d atoms", i, b.At1, b.At2, n), "checkBond")
	}
	if b.At1 == b.At2 {
		return newInvalidGraphError(fmt.Sprintf("bond %d joins atom %d to itself", i, b.At1), "checkBond")
	}
	if !b.Order.Valid() {
		return newInvalidGraphError(fmt.Sprintf("bond %d has invalid order %d", i, b.Order), "checkBond")
	}
	return nil
}
