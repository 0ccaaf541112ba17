/*
 * bank.go, part of gospectra.
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

//Package ldm implements the lineshape density matrix method: every
//line in a set is approximated by a weighted combination of a small
//bank of reference Voigt templates, so the whole set can be
//synthesized with one FFT convolution per template instead of one
//lineshape evaluation per line.
package ldm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/avilla/gospectra/voigt"
)

//widths smaller than maxWidth*axisFloor are collapsed onto the lowest
//template of the axis, so log spacing never sees a zero
const axisFloor = 1e-6

// Bank is a grid of reference Voigt lineshapes spanning the observed
// range of Gaussian and Lorentzian half-widths of a line set. Each
// template owns its profile sampled on a centered window of the
// working grid, renormalized to unit discrete area.
type Bank struct {
	WG, WL  []float64 //log-spaced template half-widths (HWHM, cm-1)
	Step    float64   //working grid spacing, cm-1
	Half    int       //kernel half-length in samples
	kernels *mat.Dense
}

// NewBank builds the template bank for the given per-line half-widths.
// perDecadeG and perDecadeL set how many templates cover one decade of
// width on each axis; step is the working grid spacing and half the
// kernel half-length in samples (the kernel covers 2*half+1 samples).
// A dimension whose widths are all equal degenerates to a single
// template, so a lone line is always representable exactly.
func NewBank(gammaG, gammaL []float64, perDecadeG, perDecadeL int, step float64, half int) (*Bank, error) {
	if len(gammaG) == 0 || len(gammaG) != len(gammaL) {
		return nil, fmt.Errorf("goSpectra/ldm.NewBank: need equal, non-empty width slices, got %d and %d", len(gammaG), len(gammaL))
	}
	if step <= 0 || half < 1 {
		return nil, fmt.Errorf("goSpectra/ldm.NewBank: bad kernel geometry step=%g half=%d", step, half)
	}
	if perDecadeG < 1 || perDecadeL < 1 {
		return nil, fmt.Errorf("goSpectra/ldm.NewBank: templates per decade must be >= 1")
	}
	b := &Bank{
		WG:   logAxis(floats.Min(gammaG), floats.Max(gammaG), perDecadeG),
		WL:   logAxis(floats.Min(gammaL), floats.Max(gammaL), perDecadeL),
		Step: step,
		Half: half,
	}
	klen := 2*half + 1
	b.kernels = mat.NewDense(b.Size(), klen, nil)
	for ig, wg := range b.WG {
		for il, wl := range b.WL {
			voigt.Kernel(b.kernels.RawRowView(b.Index(ig, il)), step, wg, wl)
		}
	}
	return b, nil
}

// Size returns the number of templates in the bank.
func (b *Bank) Size() int {
	return len(b.WG) * len(b.WL)
}

// Index maps a (Gaussian, Lorentzian) axis index pair to the flat
// template index used by Density and Kernel.
func (b *Bank) Index(ig, il int) int {
	return ig*len(b.WL) + il
}

// Kernel returns the sampled profile of template r. The slice aliases
// the bank's storage and must not be modified.
func (b *Bank) Kernel(r int) []float64 {
	return b.kernels.RawRowView(r)
}

//logAxis builds a geometrically spaced axis covering [lo,hi] with
//about perDecade points per decade. Degenerate ranges collapse to a
//single point; a zero lower bound is floored relative to hi so the
//log spacing stays finite.
func logAxis(lo, hi float64, perDecade int) []float64 {
	if hi <= 0 {
		return []float64{0}
	}
	if lo <= 0 {
		lo = hi * axisFloor
	}
	if lo >= hi {
		return []float64{hi}
	}
	n := int(math.Ceil(math.Log10(hi/lo)*float64(perDecade))) + 1
	if n < 2 {
		n = 2
	}
	ax := make([]float64, n)
	ratio := math.Pow(hi/lo, 1/float64(n-1))
	ax[0] = lo
	for i := 1; i < n-1; i++ {
		ax[i] = ax[i-1] * ratio
	}
	ax[n-1] = hi //exact endpoints, bracketing never falls off the axis
	return ax
}
