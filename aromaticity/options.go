/*
 * options.go, part of huckel.
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
	"errors"
	"io"
	"os"
	"runtime"

	"github.com/rmera/huckel/rings"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//Options contains the options for aromaticity detection.
type Options struct {
	rings.Options `yaml:",inline"`
	Workers       int             `yaml:"workers"` //goroutines used by DetectAll.
	Counter       ElectronCounter `yaml:"-"`
}

//DefaultOptions returns the default ring search options, the
//HueckelCounter and one worker per logical CPU.
func DefaultOptions() *Options {
	r := new(Options)
	r.Options = *rings.DefaultOptions()
	r.Workers = runtime.NumCPU()
	r.Counter = HueckelCounter{}
	return r
}

//ReadOptions reads options in YAML format from r. Values not given in r
//keep their defaults. Durations are given as strings, i.e. "2s" or "500ms".
//	max_ring_size: 24
//	budget:
//	  max_rings: 10000
//	  max_time: 2s
//	  max_cycle_rank: 16
//	workers: 4
func ReadOptions(r io.Reader) (*Options, error) {
	O := DefaultOptions()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(O); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return O, nil
}

//OptionsFromFile reads the options from the YAML file with the given name.
func OptionsFromFile(name string) (*Options, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadOptions(f)
}

//normalized returns a copy of O with every unset value replaced by its default.
func (O *Options) normalized() *Options {
	if O == nil {
		return DefaultOptions()
	}
	r := *O
	if r.Counter == nil {
		r.Counter = HueckelCounter{}
	}
	if r.Workers <= 0 {
		r.Workers = runtime.NumCPU()
	}
	if r.Logger == nil {
		r.Logger = zap.NewNop()
	}
	return &r
}
