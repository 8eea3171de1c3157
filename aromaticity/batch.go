/*
 * batch.go, part of huckel.
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
	"strconv"

	chem "github.com/rmera/huckel"
	"golang.org/x/sync/errgroup"
	"go.uber.org/zap"
)

//DetectAll runs DetectAromaticity on each molecule, using up to O.Workers goroutines.
//Each molecule is processed by only one goroutine, so the molecules must all be different objects.
//It returns, for each molecule, whether it has aromatic rings. On the first error (or
//cancellation of ctx) the remaining molecules are not processed, and the error is returned,
//decorated with the index of the failing molecule. Molecules already processed keep their flags.
func DetectAll(ctx context.Context, mols []*chem.Molecule, O *Options) ([]bool, error) {
	O = O.normalized()
	ret := make([]bool, len(mols))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(O.Workers)
	for i, m := range mols {
		if egCtx.Err() != nil {
			break
		}
		i, m := i, m //per-iteration copies; go.mod targets go 1.21 (pre-1.22 loop semantics)
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			arom, err := DetectAromaticity(m, O)
			if err != nil {
				O.Logger.Warn("aromaticity detection failed", zap.Int("molecule", i), zap.Error(err))
				return chem.ErrDecorate(err, "DetectAll: molecule "+strconv.Itoa(i))
			}
			ret[i] = arom
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ret, nil
}
