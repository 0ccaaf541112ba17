/*
 * broadening.go, part of gospectra.
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

// DopplerWidths computes the per-line Gaussian (Doppler) HWHM at Tgas:
// gammaG = nu0 * sqrt(2 ln2 kB T / (m c^2)). Masses must have been
// filled (see LineTable.FillMasses). T<=0 or a non-positive mass is an
// InvalidPhysicalParameter error.
func DopplerWidths(t *LineTable, Tgas float64) ([]float64, error) {
	if Tgas <= 0 {
		err := errorf(InvalidPhysicalParameter, "Tgas=%g K", Tgas)
		err.Decorate("DopplerWidths")
		return nil, err
	}
	out := make([]float64, t.Len())
	for i := range out {
		m := t.Mass[i] / avogadro //g per molecule
		if m <= 0 {
			err := errorf(InvalidPhysicalParameter, "mass=%g g/mol for line %d", t.Mass[i], i)
			err.Decorate("DopplerWidths")
			return nil, err
		}
		out[i] = t.Wavenumber[i] * math.Sqrt(2*math.Ln2*boltzmann*Tgas/m) / lightSpeed
	}
	return out, nil
}

// CollisionalWidths computes the per-line Lorentzian (pressure) HWHM:
// the self- and air-broadening coefficients weighted by the partial
// pressures (in atm) and scaled by (Tref/T)^nAir. A NaN coefficient is
// a MissingCoefficient error unless the Config carries a default
// substitution policy. A missing self-broadening coefficient falls
// back to the (possibly defaulted) air coefficient, as the original
// does.
func CollisionalWidths(t *LineTable, Tgas, pressureBar, moleFraction float64, conf *Config) ([]float64, error) {
	if Tgas <= 0 || pressureBar < 0 {
		err := errorf(InvalidPhysicalParameter, "Tgas=%g K, pressure=%g bar", Tgas, pressureBar)
		err.Decorate("CollisionalWidths")
		return nil, err
	}
	pAtm := pressureBar / barPerAtm
	out := make([]float64, t.Len())
	for i := range out {
		gAir := t.GammaAir[i]
		if math.IsNaN(gAir) {
			if conf == nil || conf.DefaultGammaAir <= 0 {
				err := errorf(MissingCoefficient, "no air-broadening coefficient for line %d (molecule %d)", i, t.MoleculeID[i])
				err.Decorate("CollisionalWidths")
				return nil, err
			}
			gAir = conf.DefaultGammaAir
		}
		gSelf := t.GammaSelf[i]
		if math.IsNaN(gSelf) {
			gSelf = gAir
		}
		n := t.NAir[i]
		if math.IsNaN(n) {
			if conf == nil || math.IsNaN(conf.DefaultNAir) {
				err := errorf(MissingCoefficient, "no temperature exponent for line %d (molecule %d)", i, t.MoleculeID[i])
				err.Decorate("CollisionalWidths")
				return nil, err
			}
			n = conf.DefaultNAir
		}
		scale := math.Pow(tRef/Tgas, n)
		out[i] = scale * pAtm * (gAir*(1-moleFraction) + gSelf*moleFraction)
	}
	return out, nil
}
