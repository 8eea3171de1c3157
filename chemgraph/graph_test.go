/*
 * graph_test.go, part of huckel.
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

package chemgraph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rmera/huckel/templates"
)

func TestComponents(Te *testing.T) {
	mol := templates.Merge(templates.Benzene(), templates.Pyrrole())
	mol.AddAtom("O").ImplicitH = 2 //a water, alone.
	g := FromMolecule(mol)
	want := [][]int{{0, 1, 2, 3, 4, 5}, {6, 7, 8, 9, 10}, {11}}
	if diff := cmp.Diff(want, g.Components()); diff != "" {
		Te.Errorf("components mismatch (-want +got):\n%s", diff)
	}
}

func TestCycleBasis(Te *testing.T) {
	cases := []struct {
		name string
		g    *Graph
		rank int
	}{
		{"benzene", FromMolecule(templates.Benzene()), 1},
		{"naphthalene", FromMolecule(templates.Naphthalene()), 2},
		{"norbornane", FromMolecule(templates.Norbornane()), 2},
		{"toluene", FromMolecule(templates.Toluene()), 1},
		{"K5", FromMolecule(templates.Clique(5)), 6},
	}
	for _, c := range cases {
		basis := c.g.CycleBasis()
		if len(basis) != c.rank {
			Te.Errorf("%s: cycle basis has %d cycles, expected %d", c.name, len(basis), c.rank)
		}
		for _, cyc := range basis {
			if cyc[0] == cyc[len(cyc)-1] {
				Te.Errorf("%s: first atom repeated at the end of %v", c.name, cyc)
			}
			for i, a := range cyc {
				b := cyc[(i+1)%len(cyc)]
				if c.g.BondBetween(a, b) == nil {
					Te.Errorf("%s: atoms %d and %d are consecutive in %v but not bonded", c.name, a, b, cyc)
				}
			}
		}
	}
}

func TestTopologicalMatrix(Te *testing.T) {
	mol := templates.Merge(templates.Toluene(), templates.Furan())
	m := FromMolecule(mol).TopologicalMatrix()
	checks := []struct{ i, j, d int }{
		{0, 0, 0},
		{0, 3, 3},
		{6, 3, 4}, //methyl to para carbon
		{6, 1, 2},
		{7, 9, 2},
		{0, 7, -1}, //different molecules
	}
	for _, c := range checks {
		if m[c.i][c.j] != c.d || m[c.j][c.i] != c.d {
			Te.Errorf("distance %d-%d is %d (and %d), expected %d", c.i, c.j, m[c.i][c.j], m[c.j][c.i], c.d)
		}
	}
}

func TestBondBetween(Te *testing.T) {
	mol := templates.Pyrrole()
	g := FromMolecule(mol)
	if b := g.BondBetween(2, 1); b != mol.Bonds[1] {
		Te.Errorf("wrong bond %v", b)
	}
	if b := g.BondBetween(0, 2); b != nil {
		Te.Errorf("found non-existent bond %v", b)
	}
	if g.Molecule() != mol {
		Te.Error("graph lost its molecule")
	}
}
