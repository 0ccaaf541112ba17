/*
 * conditions.go, part of gospectra.
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

import "math"

// Optimization selects the synthesis strategy. It is fixed once at
// call setup; every arm implements the same contract.
type Optimization int

const (
	// OptMinRMS is the template method with error-minimizing weights,
	// the default and usually the best accuracy per template.
	OptMinRMS Optimization = iota
	// OptSimple is the template method with plain log-linear weights.
	OptSimple
	// OptNone evaluates every line's exact lineshape individually.
	// O(lines x window) instead of O(templates x grid log grid), the
	// correctness reference and the sane choice for small line sets.
	OptNone
)

func (o Optimization) String() string {
	switch o {
	case OptMinRMS:
		return "min-RMS"
	case OptSimple:
		return "simple"
	case OptNone:
		return "none"
	}
	return "unknown"
}

// Config collects the numeric policies of the synthesizer. It is an
// explicit value, not ambient state, so independent condition sweeps
// can run in parallel with different policies. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	//Cutoff discards lines whose rescaled linestrength, in
	//cm-1/(molecule cm-2), falls below it. 0 keeps everything.
	Cutoff float64
	//WeightCutoff zeroes template corner weights below it; the
	//remaining corners are renormalized so no mass is lost.
	WeightCutoff float64
	//Templates per decade of half-width on each axis of the bank.
	//More templates, less interpolation error, more convolutions:
	//this is the dominant accuracy/performance knob.
	TemplatesPerDecadeGauss   int
	TemplatesPerDecadeLorentz int
	//Minimum grid points per linewidth. Below Warn a message is
	//logged (and auto wstep targets exactly Warn); below Error the
	//synthesis refuses to run.
	PointsPerLinewidthWarn  float64
	PointsPerLinewidthError float64
	//Default substitution policy for missing broadening coefficients.
	//DefaultGammaAir <= 0 and DefaultNAir = NaN disable substitution,
	//making missing coefficients an error.
	DefaultGammaAir float64
	DefaultNAir     float64
	//Verbose turns on progress and warning logging.
	Verbose bool
}

// DefaultConfig returns the policies used by the original
// implementation: 1e-27 strength cutoff, 1e-12 weight cutoff, 16 and
// 12 templates per decade, 3/1 points-per-linewidth thresholds, no
// coefficient substitution.
func DefaultConfig() *Config {
	return &Config{
		Cutoff:                    1e-27,
		WeightCutoff:              1e-12,
		TemplatesPerDecadeGauss:   16,
		TemplatesPerDecadeLorentz: 12,
		PointsPerLinewidthWarn:    3,
		PointsPerLinewidthError:   1,
		DefaultGammaAir:           0,
		DefaultNAir:               math.NaN(),
	}
}

// Conditions are the physical and spectral inputs of one synthesis
// call. Give either the wavenumber range in cm-1 or the (vacuum)
// wavelength range in nm, never both. For equilibrium calls only Tgas
// is read; for non-equilibrium calls Tvib and Trot must both be set
// and Tgas provides the translational temperature.
type Conditions struct {
	Tgas float64 //K
	Tvib float64 //K, non-equilibrium only
	Trot float64 //K, non-equilibrium only

	Pressure     float64 //bar
	MoleFraction float64 //of the absorbing species
	PathLength   float64 //cm, 0 defaults to 1

	WavenumMin, WavenumMax       float64 //cm-1
	WavelengthMin, WavelengthMax float64 //nm, vacuum

	//Wstep is the grid spacing in cm-1; 0 selects it automatically
	//from the narrowest linewidth.
	Wstep float64
	//BroadeningMaxWidth is the full width in cm-1 over which a
	//lineshape is computed; 0 defaults to 10. Half of it pads the
	//working grid on each side.
	BroadeningMaxWidth float64

	Optimization Optimization

	//Overpopulation multiplies the population of non-equilibrium
	//lines by vibrational label.
	Overpopulation map[string]float64
}

//resolve validates the conditions and fills defaults, returning a
//normalized copy. eq tells whether the equilibrium entry point was
//used; per the original, Tvib/Trot on an equilibrium call must be
//absent or equal to Tgas.
func (c Conditions) resolve(eq bool) (Conditions, error) {
	fail := func(k Kind, format string, a ...interface{}) (Conditions, error) {
		err := errorf(k, format, a...)
		err.Decorate("Conditions.resolve")
		return Conditions{}, err
	}
	wnGiven := c.WavenumMin != 0 || c.WavenumMax != 0
	wlGiven := c.WavelengthMin != 0 || c.WavelengthMax != 0
	switch {
	case wnGiven && wlGiven:
		return fail(InconsistentRange, "wavenumber and wavelength ranges both given, choose one")
	case wlGiven:
		if c.WavelengthMin <= 0 || c.WavelengthMax <= c.WavelengthMin {
			return fail(InconsistentRange, "bad wavelength range [%g, %g] nm", c.WavelengthMin, c.WavelengthMax)
		}
		//vacuum conversion; the longer wavelength is the smaller wavenumber
		c.WavenumMin = 1e7 / c.WavelengthMax
		c.WavenumMax = 1e7 / c.WavelengthMin
		c.WavelengthMin, c.WavelengthMax = 0, 0
	case !wnGiven:
		return fail(InconsistentRange, "no spectral range given")
	}
	if c.WavenumMin <= 0 || c.WavenumMax <= c.WavenumMin {
		return fail(InconsistentRange, "bad wavenumber range [%g, %g] cm-1", c.WavenumMin, c.WavenumMax)
	}
	if c.Tgas <= 0 {
		return fail(InvalidPhysicalParameter, "Tgas=%g K", c.Tgas)
	}
	if eq {
		if (c.Tvib != 0 && c.Tvib != c.Tgas) || (c.Trot != 0 && c.Trot != c.Tgas) {
			return fail(InvalidPhysicalParameter, "equilibrium call with Tvib=%g, Trot=%g different from Tgas=%g", c.Tvib, c.Trot, c.Tgas)
		}
		c.Tvib, c.Trot = c.Tgas, c.Tgas
	} else {
		if c.Tvib <= 0 || c.Trot <= 0 {
			return fail(InvalidPhysicalParameter, "non-equilibrium call needs both Tvib and Trot, got %g and %g", c.Tvib, c.Trot)
		}
	}
	if c.Pressure < 0 {
		return fail(InvalidPhysicalParameter, "pressure=%g bar", c.Pressure)
	}
	if c.MoleFraction < 0 || c.MoleFraction > 1 {
		return fail(InvalidPhysicalParameter, "mole fraction=%g", c.MoleFraction)
	}
	if c.PathLength < 0 {
		return fail(InvalidPhysicalParameter, "path length=%g cm", c.PathLength)
	}
	if c.PathLength == 0 {
		c.PathLength = 1
	}
	if c.BroadeningMaxWidth < 0 {
		return fail(InconsistentRange, "broadening max width=%g cm-1", c.BroadeningMaxWidth)
	}
	if c.BroadeningMaxWidth == 0 {
		c.BroadeningMaxWidth = 10
	}
	if c.Wstep < 0 {
		return fail(InconsistentRange, "wstep=%g cm-1", c.Wstep)
	}
	return c, nil
}
