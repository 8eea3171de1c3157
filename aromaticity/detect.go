/*
 * detect.go, part of huckel.
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

//Package aromaticity detects aromatic rings and ring systems in a molecule, using Hückel's 4n+2 rule.
package aromaticity

import (
	chem "github.com/rmera/huckel"
	"github.com/rmera/huckel/rings"
	"go.uber.org/zap"
)

//DetectAromaticity finds all the rings in mol and flags as aromatic the atoms and bonds of every
//ring, and of the perimeter of every fused ring system, that fulfills Hückel's rule. It returns true
//if at least one aromatic ring was found. If O is nil, DefaultOptions() are used.
//The flags of every atom and bond in mol are overwritten with the result, so calling it twice gives
//the same flags. A ring is evaluated without regard to the other rings, so the result doesn't depend on
//the order in which rings are found.
//Errors are InvalidGraphError and GraphTooComplexError, in both cases mol is not modified.
//mol must not be used by other goroutines during the call.
func DetectAromaticity(mol *chem.Molecule, O *Options) (bool, error) {
	O = O.normalized()
	rs, err := rings.FindAllRings(mol, &O.Options)
	if err != nil {
		return false, chem.ErrDecorate(err, "DetectAromaticity")
	}
	fl := newFlags(mol)
	found := false
	for _, r := range rs.Rings {
		if evaluate(mol, r, O, "ring") {
			fl.mark(r)
			found = true
		}
	}
	for _, s := range rs.Systems() {
		if len(s.SSSR) < 2 {
			continue //the perimeter is the ring itself.
		}
		p := s.Perimeter()
		if p == nil {
			O.Logger.Debug("fused system without a simple perimeter", zap.Ints("atoms", s.Atoms()))
			continue
		}
		if rs.Contains(p) {
			continue //already evaluated.
		}
		if evaluate(mol, p, O, "perimeter") {
			fl.mark(p)
			found = true
		}
	}
	fl.commit(mol)
	O.Logger.Debug("aromaticity detected", zap.Bool("aromatic", found), zap.Ints("aromaticAtoms", mol.AromaticAtoms()))
	return found, nil
}

//IsAromatic returns true if ring, which must be a ring of mol, fulfills Hückel's rule on
//its own. It doesn't modify mol. The HueckelCounter is used.
func IsAromatic(mol *chem.Molecule, ring *rings.Ring) bool {
	return IsAromaticWith(mol, ring, nil)
}

//IsAromaticWith is like IsAromatic, but using the given counter. A nil counter means HueckelCounter.
//It returns false if ring is not a ring of mol.
func IsAromaticWith(mol *chem.Molecule, ring *rings.Ring, counter ElectronCounter) bool {
	if ring == nil || ring.Len() < 3 {
		return false
	}
	if _, err := ring.Bonds(mol); err != nil {
		return false
	}
	e, ok := PiElectrons(mol, ring, counter)
	return ok && Hueckel(e)
}

func evaluate(mol *chem.Molecule, r *rings.Ring, O *Options, kind string) bool {
	e, ok := PiElectrons(mol, r, O.Counter)
	arom := ok && Hueckel(e)
	O.Logger.Debug("ring evaluated",
		zap.String("kind", kind),
		zap.Stringer("ring", r),
		zap.Int("piElectrons", e),
		zap.Bool("conjugated", ok),
		zap.Bool("aromatic", arom))
	return arom
}

//flags accumulates the aromaticity of atoms and bonds until
//it is committed to the molecule.
type flags struct {
	atoms []bool
	bonds []bool
	index map[[2]int]int
}

func newFlags(mol *chem.Molecule) *flags {
	f := &flags{atoms: make([]bool, mol.Len()), bonds: make([]bool, len(mol.Bonds)), index: make(map[[2]int]int, len(mol.Bonds))}
	for i, b := range mol.Bonds {
		f.index[b.Key()] = i
	}
	return f
}

func (f *flags) mark(r *rings.Ring) {
	for _, a := range r.Atoms {
		f.atoms[a] = true
	}
	for _, k := range r.BondKeys() {
		f.bonds[f.index[k]] = true
	}
}

func (f *flags) commit(mol *chem.Molecule) {
	for i, a := range mol.Atoms {
		a.IsAromatic = f.atoms[i]
	}
	for i, b := range mol.Bonds {
		b.IsAromatic = f.bonds[i]
	}
}
