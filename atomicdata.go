/*
 * atomicdata.go, part of huckel.
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

//A map for the number of valence electrons of the elements.
//Note that just common "organic" elements are present
var symbolValenceElectrons = map[string]int{
	"H":  1,
	"B":  3,
	"C":  4,
	"N":  5,
	"O":  6,
	"F":  7,
	"Si": 4,
	"P":  5,
	"S":  6,
	"Cl": 7,
	"As": 5,
	"Se": 6,
	"Br": 7,
	"Te": 6,
	"I":  7,
}

//ValenceElectrons returns the number of valence electrons for the
//element with the given symbol, and false if the element is not known.
func ValenceElectrons(symbol string) (int, bool) {
	v, ok := symbolValenceElectrons[symbol]
	return v, ok
}

//IsHeteroatom returns true for any element other than carbon and hydrogen.
func IsHeteroatom(symbol string) bool {
	return symbol != "C" && symbol != "H"
}

//LonePairs returns the number of lone pairs on atom i, from its
//valence electrons, formal charge, bonds and hydrogens. It returns 0 for unknown elements.
func (M *Molecule) LonePairs(i int) int {
	at := M.Atom(i)
	v, ok := ValenceElectrons(at.Symbol)
	if !ok {
		return 0
	}
	free := v - at.Charge - M.ValenceSum(i) - at.ImplicitH
	if free < 2 {
		return 0
	}
	return free / 2
}
