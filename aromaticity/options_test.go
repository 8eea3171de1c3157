/*
 * options_test.go, part of huckel.
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
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rmera/huckel/rings"
)

func TestReadOptions(Te *testing.T) {
	in := `
max_ring_size: 12
budget:
  max_rings: 500
  max_time: 1500ms
workers: 3
`
	O, err := ReadOptions(strings.NewReader(in))
	if err != nil {
		Te.Fatal(err)
	}
	if O.MaxRingSize != 12 || O.Budget.MaxRings != 500 || O.Budget.MaxTime != 1500*time.Millisecond || O.Workers != 3 {
		Te.Errorf("options not read: %+v", O)
	}
	if O.Budget.MaxCycleRank != rings.DefaultMaxCycleRank || O.Logger == nil || O.Counter == nil {
		Te.Errorf("defaults lost: %+v", O)
	}

	O, err = ReadOptions(strings.NewReader(""))
	if err != nil {
		Te.Fatal(err)
	}
	if O.MaxRingSize != rings.DefaultMaxRingSize {
		Te.Errorf("empty input should give the defaults: %+v", O)
	}

	if _, err := ReadOptions(strings.NewReader("max_ring_sise: 3\n")); err == nil {
		Te.Error("a misspelled option was accepted")
	}
}

func TestOptionsFromFile(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "huckel.yaml")
	if err := os.WriteFile(name, []byte("max_ring_size: 8\n"), 0o644); err != nil {
		Te.Fatal(err)
	}
	O, err := OptionsFromFile(name)
	if err != nil {
		Te.Fatal(err)
	}
	if O.MaxRingSize != 8 {
		Te.Errorf("wrong max ring size %d", O.MaxRingSize)
	}
	if _, err := OptionsFromFile(filepath.Join(Te.TempDir(), "nothere.yaml")); err == nil {
		Te.Error("no error for a missing file")
	}
}
