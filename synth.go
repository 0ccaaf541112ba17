/*
 * synth.go, part of gospectra.
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

	"gonum.org/v1/gonum/floats"

	"github.com/avilla/gospectra/ldm"
	"github.com/avilla/gospectra/voigt"
)

// Synthesizer computes spectra from a line table under given
// conditions. It never mutates the table, so one Synthesizer (or one
// shared table across several) can serve concurrent condition sweeps.
type Synthesizer struct {
	lines *LineTable
	part  Partitioner
	conf  *Config
}

// NewSynthesizer validates the table and returns a Synthesizer bound
// to it, the partition-function collaborator and the numeric policies
// (nil conf means DefaultConfig).
func NewSynthesizer(t *LineTable, q Partitioner, conf *Config) (*Synthesizer, error) {
	if err := t.Check(); err != nil {
		return nil, decorated(err, "NewSynthesizer")
	}
	if q == nil {
		err := errorf(MissingCoefficient, "no partition-function source given")
		err.Decorate("NewSynthesizer")
		return nil, err
	}
	if conf == nil {
		conf = DefaultConfig()
	}
	return &Synthesizer{lines: t, part: q, conf: conf}, nil
}

// Spectrum is the result of one synthesis call: coefficient arrays on
// the truncated user grid, plus radiative quantities derived from the
// path length. It is computed once and never mutated afterwards; the
// caller owns it.
type Spectrum struct {
	Wavenumber []float64 //cm-1
	AbsCoeff   []float64 //absorption coefficient, cm-1
	EmissCoeff []float64 //emission coefficient, erg/(s cm3 sr cm-1)

	Absorbance    []float64 //AbsCoeff * path length
	Transmittance []float64
	Radiance      []float64 //erg/(s cm2 sr cm-1)

	Conditions Conditions
	Diag       Diagnostics
}

// Diagnostics reports what the synthesis did with the line set.
// Underflows are counted here, never raised as errors.
type Diagnostics struct {
	LinesTotal       int
	LinesInRange     int
	LinesBelowCutoff int
	CornersDropped   int
	TemplatesGauss   int
	TemplatesLorentz int
	Wstep            float64
	//MassIn is the total scattered strength, MassOnGrid its part
	//recovered by integrating the working grid; they differ by the
	//tails that leave the working grid.
	MassIn     float64
	MassOnGrid float64
}

// EqSpectrum synthesizes an equilibrium spectrum at c.Tgas. Tvib and
// Trot, if set, must equal Tgas.
func (s *Synthesizer) EqSpectrum(c Conditions) (*Spectrum, error) {
	return s.spectrum(c, true)
}

// NonEqSpectrum synthesizes a non-equilibrium spectrum at c.Tvib and
// c.Trot, with c.Tgas as the translational temperature (Doppler widths
// and collision rates). It needs a table with the Evib/Erot split and
// a VibRotPartitioner.
func (s *Synthesizer) NonEqSpectrum(c Conditions) (*Spectrum, error) {
	return s.spectrum(c, false)
}

func (s *Synthesizer) spectrum(c Conditions, eq bool) (*Spectrum, error) {
	cond, err := c.resolve(eq)
	if err != nil {
		return nil, err
	}
	diag := Diagnostics{LinesTotal: s.lines.Len()}
	margin := cond.BroadeningMaxWidth / 2

	//range filtering, fail fast on an empty window
	t := s.lines.CropToRange(cond.WavenumMin, cond.WavenumMax, margin)
	if t.Len() == 0 {
		err := errorf(InconsistentRange, "no line between %g and %g cm-1 (including the %g cm-1 broadening margin)",
			cond.WavenumMin, cond.WavenumMax, margin)
		err.Decorate("Synthesizer.spectrum")
		return nil, err
	}
	if err := t.FillMasses(); err != nil {
		return nil, err
	}

	//populations
	var strengths []float64
	if eq {
		strengths, err = EquilibriumStrengths(t, s.part, cond.Tgas)
	} else {
		vr, ok := s.part.(VibRotPartitioner)
		if !ok {
			e := errorf(MissingCoefficient, "the partition-function source cannot evaluate Q(Tvib, Trot)")
			e.Decorate("Synthesizer.spectrum")
			return nil, e
		}
		strengths, err = NonEquilibriumStrengths(t, vr, cond.Tvib, cond.Trot, cond.Overpopulation)
	}
	if err != nil {
		return nil, err
	}
	t, strengths, below := t.CropCutoff(strengths, s.conf.Cutoff)
	diag.LinesBelowCutoff = below
	diag.LinesInRange = t.Len()
	if t.Len() == 0 {
		err := errorf(InconsistentRange, "every line in range fell below the %g strength cutoff", s.conf.Cutoff)
		err.Decorate("Synthesizer.spectrum")
		return nil, err
	}
	if s.conf.Verbose {
		log.Printf("goSpectra: %d/%d lines kept in [%g, %g] cm-1 (%d below cutoff)",
			t.Len(), diag.LinesTotal, cond.WavenumMin, cond.WavenumMax, below)
	}

	//broadening parameters
	gammaG, err := DopplerWidths(t, cond.Tgas)
	if err != nil {
		return nil, err
	}
	gammaL, err := CollisionalWidths(t, cond.Tgas, cond.Pressure, cond.MoleFraction, s.conf)
	if err != nil {
		return nil, err
	}
	minFWHM := math.Inf(1)
	for i := range gammaG {
		if f := voigt.FWHM(gammaG[i], gammaL[i]); f < minFWHM {
			minFWHM = f
		}
	}

	//working grid
	step := cond.Wstep
	if step == 0 {
		step, err = AutoStep(minFWHM, s.conf)
	} else {
		err = CheckStep(step, minFWHM, s.conf)
	}
	if err != nil {
		return nil, err
	}
	grid, err := NewGrid(cond.WavenumMin-margin, cond.WavenumMax+margin, step)
	if err != nil {
		return nil, err
	}
	half := int(math.Round(margin / step))
	if half < 1 {
		half = 1
	}
	diag.Wstep = step

	//strengths become absorption-coefficient area once scaled by the
	//absorber density
	density := numberDensity(cond.Pressure, cond.MoleFraction, cond.Tgas)
	scaled := make([]float64, len(strengths))
	floats.ScaleTo(scaled, density, strengths)
	diag.MassIn = floats.Sum(scaled)

	working := make([]float64, grid.N)
	switch cond.Optimization {
	case OptNone:
		s.directSum(working, grid, t, scaled, gammaG, gammaL, half)
		diag.TemplatesGauss, diag.TemplatesLorentz = 0, 0
	case OptSimple, OptMinRMS:
		mode := ldm.MinRMS
		if cond.Optimization == OptSimple {
			mode = ldm.Simple
		}
		bank, berr := ldm.NewBank(gammaG, gammaL,
			s.conf.TemplatesPerDecadeGauss, s.conf.TemplatesPerDecadeLorentz, step, half)
		if berr != nil {
			e := errorf(InvalidPhysicalParameter, "%v", berr)
			e.Decorate("Synthesizer.spectrum")
			return nil, e
		}
		diag.TemplatesGauss = len(bank.WG)
		diag.TemplatesLorentz = len(bank.WL)
		pos := make([]float64, t.Len())
		for i, w := range t.Wavenumber {
			pos[i] = grid.FracIndex(w)
		}
		dm := ldm.NewDensity(bank.Size(), grid.N)
		if serr := ldm.Scatter(dm, bank, mode, pos, gammaG, gammaL, scaled, s.conf.WeightCutoff); serr != nil {
			e := errorf(InvalidPhysicalParameter, "%v", serr)
			e.Decorate("Synthesizer.spectrum")
			return nil, e
		}
		diag.CornersDropped = dm.Dropped
		if _, cerr := bank.Convolve(dm, working); cerr != nil {
			e := errorf(InvalidPhysicalParameter, "%v", cerr)
			e.Decorate("Synthesizer.spectrum")
			return nil, e
		}
	default:
		e := errorf(InvalidPhysicalParameter, "unknown optimization mode %d", cond.Optimization)
		e.Decorate("Synthesizer.spectrum")
		return nil, e
	}
	diag.MassOnGrid = floats.Sum(working) * step

	//truncate the margins back off and derive the radiative arrays
	i0, i1 := grid.TruncateRange(cond.WavenumMin, cond.WavenumMax)
	points := grid.Points()[i0:i1]
	abscoeff := make([]float64, len(points))
	copy(abscoeff, working[i0:i1])

	out := &Spectrum{
		Wavenumber:    points,
		AbsCoeff:      abscoeff,
		EmissCoeff:    make([]float64, len(points)),
		Absorbance:    make([]float64, len(points)),
		Transmittance: make([]float64, len(points)),
		Radiance:      make([]float64, len(points)),
		Conditions:    cond,
		Diag:          diag,
	}
	//emission through Kirchhoff's law against a Planck source at the
	//(vibrational) temperature; see DESIGN.md for the non-LTE caveat
	tEmis := cond.Tvib
	for i, nu := range points {
		k := abscoeff[i]
		b := planckWavenumber(nu, tEmis)
		out.EmissCoeff[i] = k * b
		tau := k * cond.PathLength
		out.Absorbance[i] = tau
		out.Transmittance[i] = math.Exp(-tau)
		if k > 1e-300 {
			out.Radiance[i] = b * -math.Expm1(-tau)
		} else {
			out.Radiance[i] = out.EmissCoeff[i] * cond.PathLength
		}
	}
	return out, nil
}

//directSum is the optimization-free reference path: every line's exact
//Voigt profile is evaluated over its window and accumulated. The
//window values are renormalized as a whole, like the template kernels,
//so both paths conserve mass identically.
func (s *Synthesizer) directSum(dst []float64, grid *Grid, t *LineTable, strength, gammaG, gammaL []float64, half int) {
	window := make([]float64, 2*half+1)
	for i := 0; i < t.Len(); i++ {
		if strength[i] == 0 {
			continue
		}
		nu0 := t.Wavenumber[i]
		center := int(math.Round(grid.FracIndex(nu0)))
		for m := -half; m <= half; m++ {
			x := grid.Lo + float64(center+m)*grid.Step - nu0
			window[m+half] = voigt.Profile(x, gammaG[i], gammaL[i])
		}
		mass := floats.Sum(window) * grid.Step
		if mass <= 0 { //zero-width line, all mass on the nearest bin
			if center >= 0 && center < grid.N {
				dst[center] += strength[i] / grid.Step
			}
			continue
		}
		scale := strength[i] / mass
		for m := -half; m <= half; m++ {
			j := center + m
			if j < 0 || j >= grid.N {
				continue
			}
			dst[j] += scale * window[m+half]
		}
	}
}
