/*
 * grid.go, part of gospectra.
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

package spectra

import (
	"log"
	"math"
)

// Grid is a uniform wavenumber axis. The working grid of a synthesis
// extends half the broadening width beyond the user range on each
// side, so tails of lines centered just outside the requested window
// are captured; Truncate cuts the margins back off afterwards.
type Grid struct {
	Lo   float64 //first point, cm-1
	Step float64 //spacing, cm-1
	N    int
}

// NewGrid builds a uniform grid covering [lo, hi] with the given step.
// The last point may exceed hi by less than one step so the interval
// is always fully covered.
func NewGrid(lo, hi, step float64) (*Grid, error) {
	if step <= 0 || hi <= lo {
		err := errorf(InconsistentRange, "cannot grid [%g, %g] with step %g", lo, hi, step)
		err.Decorate("NewGrid")
		return nil, err
	}
	n := int(math.Ceil((hi-lo)/step-1e-9)) + 1
	return &Grid{Lo: lo, Step: step, N: n}, nil
}

// Points materializes the grid as a slice of wavenumbers.
func (g *Grid) Points() []float64 {
	p := make([]float64, g.N)
	for i := range p {
		p[i] = g.Lo + float64(i)*g.Step
	}
	return p
}

// FracIndex returns the fractional bin position of wavenumber w.
func (g *Grid) FracIndex(w float64) float64 {
	return (w - g.Lo) / g.Step
}

// TruncateRange returns the half-open index interval [i0, i1) of the
// points lying inside [wmin, wmax].
func (g *Grid) TruncateRange(wmin, wmax float64) (int, int) {
	i0 := int(math.Ceil((wmin - g.Lo) / g.Step * (1 - 1e-12)))
	if i0 < 0 {
		i0 = 0
	}
	i1 := int(math.Floor((wmax-g.Lo)/g.Step*(1+1e-12))) + 1
	if i1 > g.N {
		i1 = g.N
	}
	return i0, i1
}

// AutoStep picks the largest grid step such that the narrowest
// linewidth in the set spans at least the warn-threshold number of
// points.
func AutoStep(minFWHM float64, conf *Config) (float64, error) {
	if minFWHM <= 0 {
		err := errorf(InvalidPhysicalParameter, "cannot choose a grid step for a zero-width line set")
		err.Decorate("AutoStep")
		return 0, err
	}
	step := minFWHM / conf.PointsPerLinewidthWarn
	if conf.Verbose {
		log.Printf("goSpectra: wstep=auto resolved to %g cm-1 (%g points over the narrowest linewidth %g cm-1)",
			step, conf.PointsPerLinewidthWarn, minFWHM)
	}
	return step, nil
}

// CheckStep verifies an explicit grid step against the narrowest
// linewidth: fewer points than the error threshold refuses to run,
// fewer than the warn threshold logs a warning (undersampled lines
// lose area to the grid).
func CheckStep(step, minFWHM float64, conf *Config) error {
	if minFWHM <= 0 {
		return nil //degenerate zero-width set, the kernel handles it
	}
	points := minFWHM / step
	if points < conf.PointsPerLinewidthError {
		err := errorf(InvalidPhysicalParameter, "wstep=%g cm-1 leaves %.2f points over the narrowest linewidth (%g cm-1), below the minimum of %g",
			step, points, minFWHM, conf.PointsPerLinewidthError)
		err.Decorate("CheckStep")
		return err
	}
	if points < conf.PointsPerLinewidthWarn && conf.Verbose {
		log.Printf("goSpectra: wstep=%g cm-1 gives only %.2f points over the narrowest linewidth (%g cm-1); expect some accuracy loss",
			step, points, minFWHM)
	}
	return nil
}
