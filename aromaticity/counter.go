/*
 * counter.go, part of huckel.
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

package aromaticity

import (
	chem "github.com/rmera/huckel"
	"github.com/rmera/huckel/rings"
)

//ElectronCounter decides how many pi electrons an atom gives to the pi system of a ring.
//Implementations can refine the treatment of cases like exocyclic double bonds, carbocations
//or cumulated systems.
type ElectronCounter interface {
	//Contribution returns the number of pi electrons that the atom with index atom, which
	//is part of ring, contributes to the ring. It returns false if the atom
	//can't take part in a conjugated ring at all, in which case the ring is not aromatic.
	Contribution(mol *chem.Molecule, ring *rings.Ring, atom int) (int, bool)
}

//HueckelCounter is the default ElectronCounter. An atom in a double or triple bond, within
//the ring or exocyclic, gives 1 electron. An atom whose only multiple bonds have the aromatic
//order (i.e. read from a file with perceived aromaticity) gives 1 electron if it has an odd number
//of free electrons, as the C or N in pyridine, and 2 if it has an even number, as the N in pyrrole or
//the O in furan. An atom without multiple bonds can't be in an aromatic ring if it is sp3 (4 or more
//neighbours, hydrogens included). Otherwise it gives 2 electrons if it is a heteroatom with at least
//one lone pair. Any other atom (i.e. a carbocation or a carbanion) can't be part of an aromatic ring.
type HueckelCounter struct{}

func (HueckelCounter) Contribution(mol *chem.Molecule, ring *rings.Ring, atom int) (int, bool) {
	pi, aromatic := false, false
	for _, b := range mol.BondsOf(atom) {
		if !b.Order.Multiple() {
			continue
		}
		if b.Order == chem.AromaticOrder {
			aromatic = true
			continue
		}
		pi = true //in the ring or exocyclic, it is 1 electron either way.
	}
	if pi {
		return 1, true
	}
	if aromatic {
		return aromaticOrderElectrons(mol, atom)
	}
	if mol.Connectivity(atom) >= 4 {
		return 0, false
	}
	at := mol.Atom(atom)
	if chem.IsHeteroatom(at.Symbol) && mol.LonePairs(atom) >= 1 {
		return 2, true
	}
	return 0, false
}

//aromaticOrderElectrons counts the pi electrons of an atom whose only multiple bonds are
//aromatic-order bonds, from the electrons left after the sigma bonds and the charge.
func aromaticOrderElectrons(mol *chem.Molecule, atom int) (int, bool) {
	at := mol.Atom(atom)
	v, ok := chem.ValenceElectrons(at.Symbol)
	if !ok {
		return 0, false
	}
	free := v - at.Charge - mol.ValenceSum(atom) - at.ImplicitH
	switch {
	case free <= 0:
		return 0, false
	case free%2 == 1:
		return 1, true
	default:
		return 2, true
	}
}

//PiElectrons returns the number of pi electrons in ring according to counter,
//and true. If some atom in the ring can't be part of a conjugated ring, it returns
//the count up to that atom and false. If counter is nil, HueckelCounter is used.
func PiElectrons(mol *chem.Molecule, ring *rings.Ring, counter ElectronCounter) (int, bool) {
	if counter == nil {
		counter = HueckelCounter{}
	}
	e := 0
	for _, a := range ring.Atoms {
		c, ok := counter.Contribution(mol, ring, a)
		if !ok {
			return e, false
		}
		e += c
	}
	return e, true
}

//Hueckel returns true if e fulfills Hückel's rule: e=4n+2, with n>0.
func Hueckel(e int) bool {
	return e > 2 && e%4 == 2
}
