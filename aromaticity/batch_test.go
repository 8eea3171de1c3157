/*
 * batch_test.go, part of huckel.
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
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	chem "github.com/rmera/huckel"
	"github.com/rmera/huckel/templates"
)

func TestDetectAll(Te *testing.T) {
	mols := []*chem.Molecule{
		templates.Benzene(),
		templates.Cyclohexane(),
		templates.Azulene(),
		templates.Cyclopentadiene(),
		templates.Thiazole(),
	}
	O := DefaultOptions()
	O.Workers = 2
	got, err := DetectAll(context.Background(), mols, O)
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff([]bool{true, false, true, false, true}, got); diff != "" {
		Te.Errorf("results (-want +got):\n%s", diff)
	}
	if len(mols[2].AromaticAtoms()) != 10 {
		Te.Error("the molecules were not flagged")
	}
}

func TestDetectAllError(Te *testing.T) {
	bad := templates.Benzene()
	bad.Bonds[0].At2 = 99
	mols := []*chem.Molecule{templates.Benzene(), bad, templates.Pyrrole()}
	_, err := DetectAll(context.Background(), mols, nil)
	var ig *chem.InvalidGraphError
	if !errors.As(err, &ig) {
		Te.Fatalf("expected an InvalidGraphError, got %v", err)
	}
	deco := strings.Join(ig.Decorate(""), " ")
	if !strings.Contains(deco, "molecule 1") {
		Te.Errorf("the failing molecule is not identified: %s", deco)
	}
}

func TestDetectAllCancelled(Te *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := DetectAll(ctx, []*chem.Molecule{templates.Benzene()}, nil)
	if !errors.Is(err, context.Canceled) {
		Te.Errorf("expected context.Canceled, got %v", err)
	}
}
