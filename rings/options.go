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

package rings

import (
	"time"

	"go.uber.org/zap"
)

const (
	DefaultMaxRingSize  = 24
	DefaultMaxRings     = 10000
	DefaultMaxCycleRank = 16
	maxCycleRank        = 62 //combinations are counted in an uint64.
)

//Budget bounds the work done by FindAllRings. A zero or negative MaxRings or MaxTime
//means no limit. MaxCycleRank is the largest number of independent cycles in one
//ring block for which all the combinations of basis cycles are tried (the work grows as
//2^MaxCycleRank), it can't be set over 62. Blocks with more cycles are searched path by
//path instead, which is bounded by the ring size but is slower for small, dense blocks.
type Budget struct {
	MaxRings     int           `yaml:"max_rings"`
	MaxTime      time.Duration `yaml:"max_time"`
	MaxCycleRank int           `yaml:"max_cycle_rank"`
}

//Options contains the options for FindAllRings.
type Options struct {
	MaxRingSize int         `yaml:"max_ring_size"` //rings with more atoms than this are not enumerated.
	Budget      Budget      `yaml:"budget"`
	Logger      *zap.Logger `yaml:"-"`
}

//DefaultOptions returns options that cover common macrocycles, with a
//budget large enough for all but pathological molecules.
func DefaultOptions() *Options {
	r := new(Options)
	r.MaxRingSize = DefaultMaxRingSize
	r.Budget.MaxRings = DefaultMaxRings
	r.Budget.MaxCycleRank = DefaultMaxCycleRank
	r.Logger = zap.NewNop()
	return r
}

//normalized returns a copy of O with every unset value replaced by its default.
func (O *Options) normalized() *Options {
	if O == nil {
		return DefaultOptions()
	}
	r := *O
	if r.MaxRingSize < 3 {
		r.MaxRingSize = DefaultMaxRingSize
	}
	if r.Budget.MaxCycleRank <= 0 {
		r.Budget.MaxCycleRank = DefaultMaxCycleRank
	}
	if r.Budget.MaxCycleRank > maxCycleRank {
		r.Budget.MaxCycleRank = maxCycleRank
	}
	if r.Logger == nil {
		r.Logger = zap.NewNop()
	}
	return &r
}
