/*
 * density.go, part of gospectra.
 *
 * Copyright 2024 Andres Villa <avilla{at}protonmailDOTcom>
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
 */

package ldm

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Density accumulates, per template, the total weighted strength of
// all lines binned by center wavenumber. Rows are templates, columns
// are working-grid bins. The total mass over all rows and bins equals
// the total scattered strength, which Mass lets callers audit.
type Density struct {
	M *mat.Dense
	// Dropped counts per-corner weights that fell below the scatter
	// cutoff. Those are a documented precision loss, never an error.
	Dropped int
}

// NewDensity returns a zeroed density matrix for the given bank size
// and working grid length.
func NewDensity(templates, bins int) *Density {
	return &Density{M: mat.NewDense(templates, bins, nil)}
}

// Mass returns the total accumulated strength over all templates and
// bins.
func (d *Density) Mass() float64 {
	return floats.Sum(d.M.RawMatrix().Data)
}

// Scatter distributes each line onto the density matrix: bilinearly
// over the two bracketing templates of each width axis (up to 4
// corners) and linearly over the two working-grid bins nearest to the
// line center, so centroids survive binning. pos holds fractional bin
// positions (line center in grid units), gammaG/gammaL the per-line
// half-widths and strength the per-line integrated strengths, already
// scaled to the target quantity. Corner weights with magnitude below
// cutoff are zeroed and the rest renormalized, so the conservation
// invariant sum(weights)=strength holds exactly for every line.
func Scatter(d *Density, b *Bank, mode WeightMode, pos, gammaG, gammaL, strength []float64, cutoff float64) error {
	n := len(pos)
	if len(gammaG) != n || len(gammaL) != n || len(strength) != n {
		return fmt.Errorf("goSpectra/ldm.Scatter: column length mismatch: %d %d %d %d", n, len(gammaG), len(gammaL), len(strength))
	}
	_, bins := d.M.Dims()
	var gi, li [2]int
	var gw, lw [2]float64
	var gn, ln int
	for i := 0; i < n; i++ {
		if strength[i] == 0 {
			continue
		}
		p := pos[i]
		if p < 0 {
			p = 0
		}
		if p > float64(bins-1) {
			p = float64(bins - 1)
		}
		k0 := int(p)
		tv := p - float64(k0)
		k1 := k0 + 1
		if k1 >= bins { //line sits on the last bin, keep its mass there
			k1 = k0
		}
		ig, cg := weight(b.WG, gammaG[i], mode, gramGauss)
		il, cl := weight(b.WL, gammaL[i], mode, gramLorentz)
		gi, gw, gn = axisCorners(ig, cg)
		li, lw, ln = axisCorners(il, cl)
		//corner weights multiply to 1 exactly; tiny corners are zeroed
		//and the kept ones renormalized so the line's mass is intact
		var kept float64
		var cw [4]float64
		var cr [4]int
		nc := 0
		for a := 0; a < gn; a++ {
			for b2 := 0; b2 < ln; b2++ {
				w := gw[a] * lw[b2]
				if w != 0 && w < cutoff && w > -cutoff {
					d.Dropped++
					continue
				}
				cr[nc] = b.Index(gi[a], li[b2])
				cw[nc] = w
				kept += w
				nc++
			}
		}
		if nc == 0 || kept == 0 {
			d.Dropped++ //whole line lost to the cutoff
			continue
		}
		s := strength[i] / kept
		for c := 0; c < nc; c++ {
			row := d.M.RawRowView(cr[c])
			v := s * cw[c]
			row[k0] += v * (1 - tv)
			row[k1] += v * tv
		}
	}
	return nil
}
