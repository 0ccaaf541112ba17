/*
 * convolve.go, part of gospectra.
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

	"gonum.org/v1/gonum/dsp/fourier"
)

// Convolve synthesizes the spectrum on the working grid: each density
// row is convolved with its template kernel via zero-padded FFTs
// (linear, no circular wrap-around) and the per-template results are
// summed. The sum happens in the frequency domain, so only one inverse
// transform runs per call. dst must have the working grid length,
// matching the density's column count; it is overwritten and returned.
func (b *Bank) Convolve(d *Density, dst []float64) ([]float64, error) {
	rows, bins := d.M.Dims()
	if rows != b.Size() {
		return nil, fmt.Errorf("goSpectra/ldm.Convolve: density has %d rows, bank has %d templates", rows, b.Size())
	}
	if len(dst) != bins {
		return nil, fmt.Errorf("goSpectra/ldm.Convolve: dst length %d does not match grid length %d", len(dst), bins)
	}
	klen := 2*b.Half + 1
	padded := nextPow2(bins + klen - 1)
	fft := fourier.NewFFT(padded)
	seq := make([]float64, padded)
	coef := make([]complex128, padded/2+1)
	kcoef := make([]complex128, padded/2+1)
	acc := make([]complex128, padded/2+1)
	for r := 0; r < rows; r++ {
		row := d.M.RawRowView(r)
		if !hasMass(row) {
			continue //most templates see no line at all, skip their FFTs
		}
		copy(seq, row)
		zero(seq[bins:])
		fft.Coefficients(coef, seq)
		copy(seq, b.Kernel(r))
		zero(seq[klen:])
		fft.Coefficients(kcoef, seq)
		for j := range acc {
			acc[j] += coef[j] * kcoef[j]
		}
	}
	fft.Sequence(seq, acc)
	//gonum transforms are unnormalized: forward then inverse scales by
	//the padded length. The kernel center sits at index Half, so the
	//aligned output starts there.
	scale := 1 / float64(padded)
	for i := 0; i < bins; i++ {
		dst[i] = seq[i+b.Half] * scale
	}
	return dst, nil
}

func hasMass(row []float64) bool {
	for _, v := range row {
		if v != 0 {
			return true
		}
	}
	return false
}

func zero(s []float64) {
	for i := range s {
		s[i] = 0
	}
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
