/*
 * chem_test.go, part of huckel.
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
	"errors"
	"testing"
)

//pyrrole builds pyrrole by hand, N is atom 0.
func pyrrole() *Molecule {
	mol := NewMolecule(5)
	for _, s := range []string{"N", "C", "C", "C", "C"} {
		mol.AddAtom(s).ImplicitH = 1
	}
	mol.MustBond(0, 1, Single)
	mol.MustBond(1, 2, Double)
	mol.MustBond(2, 3, Single)
	mol.MustBond(3, 4, Double)
	mol.MustBond(4, 0, Single)
	return mol
}

func TestValidate(Te *testing.T) {
	mol := pyrrole()
	if err := mol.Validate(); err != nil {
		Te.Fatal(err)
	}
	cases := []struct {
		name  string
		spoil func(*Molecule)
	}{
		{"dangling", func(m *Molecule) { m.Bonds[0].At2 = 7 }},
		{"negative", func(m *Molecule) { m.Bonds[0].At1 = -1 }},
		{"self", func(m *Molecule) { m.Bonds[2].At2 = m.Bonds[2].At1 }},
		{"duplicate", func(m *Molecule) { m.Bonds = append(m.Bonds, &Bond{At1: 1, At2: 0, Order: Single}) }},
		{"unset order", func(m *Molecule) { m.Bonds[1].Order = Unset }},
		{"no symbol", func(m *Molecule) { m.Atoms[3].Symbol = "" }},
		{"hydrogens", func(m *Molecule) { m.Atoms[3].ImplicitH = -2 }},
		{"nil atom", func(m *Molecule) { m.Atoms[1] = nil }},
	}
	for _, c := range cases {
		m := pyrrole()
		c.spoil(m)
		err := m.Validate()
		var ig *InvalidGraphError
		if !errors.As(err, &ig) {
			Te.Errorf("%s: expected an InvalidGraphError, got %v", c.name, err)
			continue
		}
		if d := ig.Decorate(""); len(d) == 0 || d[len(d)-1] != "Validate" {
			Te.Errorf("%s: unexpected decoration %v", c.name, d)
		}
	}
}

func TestAddBond(Te *testing.T) {
	mol := pyrrole()
	if _, err := mol.AddBond(0, 1, Single); err == nil {
		Te.Error("duplicate bond accepted")
	}
	if _, err := mol.AddBond(2, 9, Single); err == nil {
		Te.Error("bond to a non-existent atom accepted")
	}
	if _, err := mol.AddBond(2, 2, Single); err == nil {
		Te.Error("self bond accepted")
	}
	if len(mol.Bonds) != 5 {
		Te.Errorf("failed AddBond calls changed the molecule: %d bonds", len(mol.Bonds))
	}
	b, err := mol.AddBond(0, 2, Single)
	if err != nil {
		Te.Fatal(err)
	}
	if b.Index != 5 || mol.Bond(2, 0) != b {
		Te.Errorf("new bond not found: %v", b)
	}
}

func TestAdjacency(Te *testing.T) {
	mol := pyrrole()
	n := mol.Neighbors(0)
	if len(n) != 2 || n[0] != 1 || n[1] != 4 {
		Te.Errorf("wrong neighbors for N: %v", n)
	}
	if b := mol.Bond(1, 2); b == nil || b.Order != Double {
		Te.Errorf("wrong bond 1-2: %v", b)
	}
	if mol.Bond(0, 2) != nil {
		Te.Error("found a bond that doesn't exist")
	}
	if got := mol.Bonds[0].Cross(1); got != 0 {
		Te.Errorf("Cross gave %d", got)
	}
	if c := mol.Connectivity(1); c != 3 {
		Te.Errorf("connectivity of C1 is %d, expected 3", c)
	}
	//An explicit hydrogen
	h := mol.AddAtom("H")
	mol.MustBond(0, h.Index, Single)
	mol.Atoms[0].ImplicitH = 0
	if hs := mol.Hydrogens(0); hs != 1 {
		Te.Errorf("N should have one hydrogen, has %d", hs)
	}
}

func TestCrossPanics(Te *testing.T) {
	defer func() {
		if recover() == nil {
			Te.Error("crossing a bond from a foreign atom should panic")
		}
	}()
	pyrrole().Bonds[0].Cross(3)
}

func TestLonePairs(Te *testing.T) {
	mol := pyrrole()
	if lp := mol.LonePairs(0); lp != 1 {
		Te.Errorf("pyrrole N has %d lone pairs, expected 1", lp)
	}
	if lp := mol.LonePairs(1); lp != 0 {
		Te.Errorf("pyrrole C has %d lone pairs, expected 0", lp)
	}
	mol.Atoms[0].Symbol = "O"
	mol.Atoms[0].ImplicitH = 0
	if lp := mol.LonePairs(0); lp != 2 {
		Te.Errorf("furan O has %d lone pairs, expected 2", lp)
	}
	mol.Atoms[0].Symbol = "N"
	mol.Atoms[0].ImplicitH = 2
	mol.Atoms[0].Charge = 1
	if lp := mol.LonePairs(0); lp != 0 {
		Te.Errorf("ammonium-like N has %d lone pairs, expected 0", lp)
	}
	mol.Atoms[0].Symbol = "Xx"
	if lp := mol.LonePairs(0); lp != 0 {
		Te.Errorf("unknown element has %d lone pairs", lp)
	}
}

func TestValidateLeavesIndexes(Te *testing.T) {
	mol := pyrrole()
	mol.Bonds[0], mol.Bonds[4] = mol.Bonds[4], mol.Bonds[0]
	mol.Atoms[3].Index = 42
	if err := mol.Validate(); err != nil {
		Te.Fatal(err)
	}
	if mol.Bonds[0].Index != 4 || mol.Atoms[3].Index != 42 {
		Te.Errorf("Validate modified the indexes: bond %d atom %d", mol.Bonds[0].Index, mol.Atoms[3].Index)
	}
	mol.Reindex()
	if mol.Bonds[0].Index != 0 || mol.Bonds[4].Index != 4 || mol.Atoms[3].Index != 3 {
		Te.Errorf("Reindex didn't fix the indexes: bond %d atom %d", mol.Bonds[0].Index, mol.Atoms[3].Index)
	}
}

func TestCopyAndFlags(Te *testing.T) {
	mol := pyrrole()
	mol.Atoms[2].IsAromatic = true
	mol.Bonds[2].IsAromatic = true
	cp := mol.Copy()
	mol.ResetFlags()
	if !cp.Atoms[2].IsAromatic || !cp.Bonds[2].IsAromatic {
		Te.Error("the copy shares flags with the original")
	}
	if len(mol.AromaticAtoms()) != 0 {
		Te.Error("ResetFlags left flags set")
	}
	if a := cp.AromaticAtoms(); len(a) != 1 || a[0] != 2 {
		Te.Errorf("wrong aromatic atoms in copy: %v", a)
	}
}

func TestBondOrder(Te *testing.T) {
	if Unset.Valid() || !AromaticOrder.Valid() || BondOrder(9).Valid() {
		Te.Error("wrong Valid results")
	}
	if Single.Multiple() || !Double.Multiple() || !Triple.Multiple() || !AromaticOrder.Multiple() {
		Te.Error("wrong Multiple results")
	}
	if Double.String() != "double" || BondOrder(9).String() != "unset" {
		Te.Error("wrong String results")
	}
	if Triple.Valence() != 3 || AromaticOrder.Valence() != 1 {
		Te.Error("wrong Valence results")
	}
}
