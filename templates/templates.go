/*
 * templates.go, part of huckel.
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

//Package templates builds some well known molecules, in Kekulé form and with
//implicit hydrogens. They are mostly meant for testing.
package templates

import chem "github.com/rmera/huckel"

const (
	s = chem.Single
	d = chem.Double
	t = chem.Triple
)

type bond struct {
	a, b  int
	order chem.BondOrder
}

//build returns a molecule with the given symbols, implicit hydrogens and bonds.
//hydrogens can be shorter than symbols, missing values are 0.
func build(symbols []string, hydrogens []int, bonds []bond) *chem.Molecule {
	mol := chem.NewMolecule(len(symbols))
	for i, sym := range symbols {
		at := mol.AddAtom(sym)
		if i < len(hydrogens) {
			at.ImplicitH = hydrogens[i]
		}
	}
	for _, b := range bonds {
		mol.MustBond(b.a, b.b, b.order)
	}
	return mol
}

func repeat(sym string, n int) []string {
	ret := make([]string, n)
	for i := range ret {
		ret[i] = sym
	}
	return ret
}

func ones(n int) []int {
	ret := make([]int, n)
	for i := range ret {
		ret[i] = 1
	}
	return ret
}

//Benzene returns benzene, C6H6.
func Benzene() *chem.Molecule {
	return build(repeat("C", 6), ones(6), []bond{
		{0, 1, d}, {1, 2, s}, {2, 3, d}, {3, 4, s}, {4, 5, d}, {5, 0, s},
	})
}

//Pyridine returns pyridine, with the nitrogen as atom 0.
func Pyridine() *chem.Molecule {
	return build([]string{"N", "C", "C", "C", "C", "C"}, []int{0, 1, 1, 1, 1, 1}, []bond{
		{0, 1, d}, {1, 2, s}, {2, 3, d}, {3, 4, s}, {4, 5, d}, {5, 0, s},
	})
}

//five returns a five-membered ring with the heteroatom het (with hetH hydrogens)
//as atom 0 and double bonds 1=2 and 3=4.
func five(het string, hetH int) *chem.Molecule {
	return build([]string{het, "C", "C", "C", "C"}, []int{hetH, 1, 1, 1, 1}, []bond{
		{0, 1, s}, {1, 2, d}, {2, 3, s}, {3, 4, d}, {4, 0, s},
	})
}

//Pyrrole returns pyrrole, with the NH as atom 0.
func Pyrrole() *chem.Molecule {
	return five("N", 1)
}

//Furan returns furan, with the oxygen as atom 0.
func Furan() *chem.Molecule {
	return five("O", 0)
}

//Thiophene returns thiophene, with the sulfur as atom 0.
func Thiophene() *chem.Molecule {
	return five("S", 0)
}

//Cyclopentadiene returns cyclopenta-1,3-diene, with the CH2 as atom 0.
func Cyclopentadiene() *chem.Molecule {
	return five("C", 2)
}

//Thiazole returns 1,3-thiazole: S(0) C(1)=N(2) C(3)=C(4).
func Thiazole() *chem.Molecule {
	return build([]string{"S", "C", "N", "C", "C"}, []int{0, 1, 0, 1, 1}, []bond{
		{0, 1, s}, {1, 2, d}, {2, 3, s}, {3, 4, d}, {4, 0, s},
	})
}

//Indole returns indole. Atom 0 is the NH, atoms 3 and 8 are the
//ring fusion atoms.
func Indole() *chem.Molecule {
	return build([]string{"N", "C", "C", "C", "C", "C", "C", "C", "C"}, []int{1, 1, 1, 0, 1, 1, 1, 1, 0}, []bond{
		{0, 1, s}, {1, 2, d}, {2, 3, s}, {3, 4, d}, {4, 5, s},
		{5, 6, d}, {6, 7, s}, {7, 8, d}, {8, 3, s}, {8, 0, s},
	})
}

//Naphthalene returns naphthalene, atoms 4 and 9 are the fusion atoms.
func Naphthalene() *chem.Molecule {
	return build(repeat("C", 10), []int{1, 1, 1, 1, 0, 1, 1, 1, 1, 0}, []bond{
		{0, 1, d}, {1, 2, s}, {2, 3, d}, {3, 4, s}, {4, 9, d}, {9, 0, s},
		{4, 5, s}, {5, 6, d}, {6, 7, s}, {7, 8, d}, {8, 9, s},
	})
}

//Azulene returns azulene. Atoms 0 to 9 go around the perimeter, and 0-4 is the
//bond shared by the five and the seven-membered rings.
func Azulene() *chem.Molecule {
	return build(repeat("C", 10), []int{0, 1, 1, 1, 0, 1, 1, 1, 1, 1}, []bond{
		{0, 1, d}, {1, 2, s}, {2, 3, d}, {3, 4, s}, {4, 5, d},
		{5, 6, s}, {6, 7, d}, {7, 8, s}, {8, 9, d}, {9, 0, s}, {0, 4, s},
	})
}

//Biphenyl returns biphenyl, the rings are atoms 0-5 and 6-11, joined by the 0-6 bond.
func Biphenyl() *chem.Molecule {
	h := ones(12)
	h[0], h[6] = 0, 0
	return build(repeat("C", 12), h, []bond{
		{0, 1, d}, {1, 2, s}, {2, 3, d}, {3, 4, s}, {4, 5, d}, {5, 0, s},
		{6, 7, d}, {7, 8, s}, {8, 9, d}, {9, 10, s}, {10, 11, d}, {11, 6, s},
		{0, 6, s},
	})
}

//Cyclohexane returns cyclohexane, C6H12.
func Cyclohexane() *chem.Molecule {
	h := make([]int, 6)
	for i := range h {
		h[i] = 2
	}
	return build(repeat("C", 6), h, []bond{
		{0, 1, s}, {1, 2, s}, {2, 3, s}, {3, 4, s}, {4, 5, s}, {5, 0, s},
	})
}

//Cyclooctatetraene returns cycloocta-1,3,5,7-tetraene.
func Cyclooctatetraene() *chem.Molecule {
	return build(repeat("C", 8), ones(8), []bond{
		{0, 1, d}, {1, 2, s}, {2, 3, d}, {3, 4, s}, {4, 5, d}, {5, 6, s}, {6, 7, d}, {7, 0, s},
	})
}

//Tetrahydronaphthalene returns 1,2,3,4-tetrahydronaphthalene (C1CCCc2c1cccc2).
//Atoms 0 to 3 are the CH2 groups, 4 and 9 the fusion atoms.
func Tetrahydronaphthalene() *chem.Molecule {
	return build(repeat("C", 10), []int{2, 2, 2, 2, 0, 1, 1, 1, 1, 0}, []bond{
		{0, 1, s}, {1, 2, s}, {2, 3, s}, {3, 4, s}, {9, 0, s},
		{4, 5, s}, {5, 6, d}, {6, 7, s}, {7, 8, d}, {8, 9, s}, {9, 4, d},
	})
}

//Norbornane returns bicyclo[2.2.1]heptane. Atoms 0 and 3 are the bridgeheads,
//atom 6 the one-carbon bridge.
func Norbornane() *chem.Molecule {
	return build(repeat("C", 7), []int{1, 2, 2, 1, 2, 2, 2}, []bond{
		{0, 1, s}, {1, 2, s}, {2, 3, s}, {3, 4, s}, {4, 5, s}, {5, 0, s},
		{0, 6, s}, {6, 3, s},
	})
}

//Benzyne returns 1,2-didehydrobenzene, with a triple bond between atoms 0 and 1.
func Benzyne() *chem.Molecule {
	return build(repeat("C", 6), []int{0, 0, 1, 1, 1, 1}, []bond{
		{0, 1, t}, {1, 2, s}, {2, 3, d}, {3, 4, s}, {4, 5, d}, {5, 0, s},
	})
}

//Toluene returns toluene. The methyl carbon is atom 6, bonded to atom 0.
func Toluene() *chem.Molecule {
	return build(repeat("C", 7), []int{0, 1, 1, 1, 1, 1, 3}, []bond{
		{0, 1, d}, {1, 2, s}, {2, 3, d}, {3, 4, s}, {4, 5, d}, {5, 0, s},
		{0, 6, s},
	})
}

//Acene returns the linear acene with n fused six-membered rings (n=2 is naphthalene, n=3 anthracene).
//Atoms 0 to 2n are the top edge and 2n+1 to 4n+1 the bottom edge, the rings are closed by
//the bonds between atoms in even positions of both edges. Panics if n<1.
func Acene(n int) *chem.Molecule {
	if n < 1 {
		panic("Acene: at least one ring is needed")
	}
	top := func(j int) int { return j }
	bottom := func(j int) int { return 2*n + 1 + j }
	h := make([]int, 4*n+2)
	for j := 0; j <= 2*n; j++ {
		if j%2 == 1 || j == 0 || j == 2*n {
			h[top(j)], h[bottom(j)] = 1, 1
		}
	}
	var bonds []bond
	for j := 0; j < 2*n; j++ {
		o := s
		if j%2 == 0 {
			o = d
		}
		bonds = append(bonds, bond{top(j), top(j + 1), o}, bond{bottom(j), bottom(j + 1), o})
	}
	for j := 0; j < 2*n; j += 2 {
		bonds = append(bonds, bond{top(j), bottom(j), s})
	}
	bonds = append(bonds, bond{top(2 * n), bottom(2 * n), d})
	return build(repeat("C", 4*n+2), h, bonds)
}

//Benzoquinone returns p-benzoquinone. Atoms 0 to 5 are the ring, with the carbonyl
//carbons 0 and 3 double bonded to the oxygens 6 and 7.
func Benzoquinone() *chem.Molecule {
	return build([]string{"C", "C", "C", "C", "C", "C", "O", "O"}, []int{0, 1, 1, 0, 1, 1}, []bond{
		{0, 1, s}, {1, 2, d}, {2, 3, s}, {3, 4, s}, {4, 5, d}, {5, 0, s},
		{0, 6, d}, {3, 7, d},
	})
}

//Pyridone returns 2-pyridone (the lactam form). Atom 0 is the NH, atom 1
//the carbonyl carbon, double bonded to the oxygen 6.
func Pyridone() *chem.Molecule {
	return build([]string{"N", "C", "C", "C", "C", "C", "O"}, []int{1, 0, 1, 1, 1, 1}, []bond{
		{0, 1, s}, {1, 2, s}, {2, 3, d}, {3, 4, s}, {4, 5, d}, {5, 0, s},
		{1, 6, d},
	})
}

//Aromatized returns a copy of mol in which every bond in the given list of atom pairs
//has the aromatic order, as a file with already perceived aromaticity would give it.
func Aromatized(mol *chem.Molecule, pairs ...[2]int) *chem.Molecule {
	ret := mol.Copy()
	for _, p := range pairs {
		if b := ret.Bond(p[0], p[1]); b != nil {
			b.Order = chem.AromaticOrder
		}
	}
	return ret
}

//Clique returns n carbon atoms, all bonded to each other by single bonds.
//Not a molecule, but a graph with a lot of rings: K_n has sum_{k=3}^{n} C(n,k)(k-1)!/2 cycles.
func Clique(n int) *chem.Molecule {
	mol := chem.NewMolecule(n)
	for i := 0; i < n; i++ {
		mol.AddAtom("C")
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			mol.MustBond(i, j, s)
		}
	}
	return mol
}

//Merge returns a new molecule with the atoms and bonds of all the given molecules, in order,
//as disconnected components.
func Merge(mols ...*chem.Molecule) *chem.Molecule {
	ret := chem.NewMolecule(0)
	for _, m := range mols {
		offset := ret.Len()
		for _, a := range m.Atoms {
			n := ret.AddAtom(a.Symbol)
			n.Name = a.Name
			n.Charge = a.Charge
			n.ImplicitH = a.ImplicitH
		}
		for _, b := range m.Bonds {
			ret.MustBond(b.At1+offset, b.At2+offset, b.Order)
		}
	}
	return ret
}
