/*
 * weights.go, part of gospectra.
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
	"math"
	"sort"
)

// WeightMode selects how a line's width is split between the two
// bracketing templates of an axis.
type WeightMode int

const (
	// Simple places the weight by the line's relative position in
	// log-width space (plain linear interpolation).
	Simple WeightMode = iota
	// MinRMS places the weight so the expected mean-square lineshape
	// error of the 2-template combination is minimal, using the
	// closed-form inner products of the profile family.
	MinRMS
)

//gram returns the L2 inner product (up to a constant factor) of two
//area-normalized profiles of the same family with half-widths a and b.
//The constant cancels in the weight formula.
type gram func(a, b float64) float64

//For Gaussians the Fourier transforms are exp(-k^2 w^2 c), so the
//product integrates to 1/sqrt(a^2+b^2). For Lorentzians the transforms
//are exp(-w|k| c), integrating to 1/(a+b).
func gramGauss(a, b float64) float64 {
	return 1 / math.Sqrt(a*a+b*b)
}

func gramLorentz(a, b float64) float64 {
	return 1 / (a + b)
}

//minRMSFraction is the fraction c minimizing
//||(1-c)*f(w0) + c*f(w1) - f(w)||^2 over the profile family with
//pairwise inner products s. Expanding the normal equation
//c = <f1-f0, f-f0>/||f1-f0||^2 in those products:
func minRMSFraction(w0, w1, w float64, s gram) float64 {
	num := s(w1, w) - s(w0, w) - s(w1, w0) + s(w0, w0)
	den := s(w1, w1) - 2*s(w0, w1) + s(w0, w0)
	return num / den
}

//weight locates the bracketing template index i for width w on axis
//and returns the fraction c assigned to template i+1 (1-c goes to i).
//Widths at or below the axis floor collapse on the first template;
//a single-template axis always gets the full weight (c=0), which is
//the degenerate one-line case required to stay division-free.
func weight(axis []float64, w float64, mode WeightMode, s gram) (i int, c float64) {
	last := len(axis) - 1
	if last == 0 || w <= axis[0] {
		return 0, 0
	}
	if w >= axis[last] {
		return last - 1, 1
	}
	j := sort.SearchFloat64s(axis, w) //first index with axis[j] >= w
	i = j - 1
	switch mode {
	case MinRMS:
		c = minRMSFraction(axis[i], axis[i+1], w, s)
	default:
		c = math.Log(w/axis[i]) / math.Log(axis[i+1]/axis[i])
	}
	return i, c
}

//axisCorners expands a bracketing (index, fraction) pair into the list
//of (index, weight) contributions, skipping exact-hit zero weights.
func axisCorners(i int, c float64) ([2]int, [2]float64, int) {
	switch {
	case c == 0:
		return [2]int{i, 0}, [2]float64{1, 0}, 1
	case c == 1:
		return [2]int{i + 1, 0}, [2]float64{1, 0}, 1
	default:
		return [2]int{i, i + 1}, [2]float64{1 - c, c}, 2
	}
}
