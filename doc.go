/*
 * doc.go, part of huckel.
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

/*Package chem is the main package of the huckel library. It provides the molecular graph
(atoms, bonds and the bond orders between them) on which the rest of the packages work.

	**Capabilities**

    Builds and validates molecular graphs. The adjacency is always derived
	from the bond list.

    Finds all the rings of a molecule up to a given size, including those of
	fused and bridged systems, with a configurable budget (package rings).

    Obtains the smallest set of smallest rings and the fused ring systems of a
	molecule, with their perimeters (package rings).

    Detects aromaticity using Hückel's 4n+2 rule, flagging atoms and bonds
	(package aromaticity).

    Gives a gonum graph view of a molecule, with connected components and
	topological distances (package chemgraph).

    Builds some well known molecules, handy for testing (package templates).

The library does not read or write files and it does not deal with coordinates.
Those belong to whatever builds the molecule.

*/
package chem
