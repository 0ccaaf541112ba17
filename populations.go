/*
 * populations.go, part of gospectra.
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

// EquilibriumStrengths rescales the table's reference linestrengths
// from 296 K to Tgas: partition-sum ratio, Boltzmann factor on the
// lower-state energy and the stimulated-emission correction on the
// transition wavenumber.
func EquilibriumStrengths(t *LineTable, q Partitioner, Tgas float64) ([]float64, error) {
	if Tgas <= 0 {
		err := errorf(InvalidPhysicalParameter, "Tgas=%g K", Tgas)
		err.Decorate("EquilibriumStrengths")
		return nil, err
	}
	qT, err := q.QAt(Tgas)
	if err != nil {
		return nil, decorated(err, "EquilibriumStrengths")
	}
	qRef, err := q.QAt(tRef)
	if err != nil {
		return nil, decorated(err, "EquilibriumStrengths")
	}
	if qT <= 0 || qRef <= 0 {
		err := errorf(InvalidPhysicalParameter, "non-positive partition sum: Q(%g)=%g, Q(%g)=%g", Tgas, qT, tRef, qRef)
		err.Decorate("EquilibriumStrengths")
		return nil, err
	}
	ratio := qRef / qT
	out := make([]float64, t.Len())
	for i := range out {
		el := t.EnergyLow[i]
		nu := t.Wavenumber[i]
		boltz := math.Exp(-cTwo * el * (1/Tgas - 1/tRef))
		stim := 1.0
		if nu > 0 {
			stim = -math.Expm1(-cTwo*nu/Tgas) / -math.Expm1(-cTwo*nu/tRef)
		}
		out[i] = t.Strength[i] * ratio * boltz * stim
	}
	return out, nil
}

// NonEquilibriumStrengths rescales the reference linestrengths to
// separate vibrational and rotational temperatures, using the
// Evib/Erot split of the lower-state energy. The stimulated-emission
// factor follows the vibrational temperature, which governs the upper
// level population of the radiative transition. overpop optionally
// multiplies the population of lines whose VibLabel matches a key
// (missing keys mean no overpopulation). Tables without the energy
// split (or without labels when overpop is non-empty) fail with
// MissingCoefficient.
func NonEquilibriumStrengths(t *LineTable, q VibRotPartitioner, Tvib, Trot float64, overpop map[string]float64) ([]float64, error) {
	if Tvib <= 0 || Trot <= 0 {
		err := errorf(InvalidPhysicalParameter, "Tvib=%g K, Trot=%g K", Tvib, Trot)
		err.Decorate("NonEquilibriumStrengths")
		return nil, err
	}
	if t.EvibLow == nil || t.ErotLow == nil {
		err := errorf(MissingCoefficient, "the line table carries no Evib/Erot split, required for non-equilibrium populations")
		err.Decorate("NonEquilibriumStrengths")
		return nil, err
	}
	if len(overpop) > 0 && t.VibLabel == nil {
		err := errorf(MissingCoefficient, "overpopulation requested but the line table carries no vibrational labels")
		err.Decorate("NonEquilibriumStrengths")
		return nil, err
	}
	qNE, err := q.QVibRot(Tvib, Trot)
	if err != nil {
		return nil, decorated(err, "NonEquilibriumStrengths")
	}
	qRef, err := q.QAt(tRef)
	if err != nil {
		return nil, decorated(err, "NonEquilibriumStrengths")
	}
	if qNE <= 0 || qRef <= 0 {
		err := errorf(InvalidPhysicalParameter, "non-positive partition sum: Q(%g,%g)=%g, Q(%g)=%g", Tvib, Trot, qNE, tRef, qRef)
		err.Decorate("NonEquilibriumStrengths")
		return nil, err
	}
	ratio := qRef / qNE
	out := make([]float64, t.Len())
	for i := range out {
		nu := t.Wavenumber[i]
		pop := math.Exp(-cTwo*(t.EvibLow[i]/Tvib+t.ErotLow[i]/Trot)) /
			math.Exp(-cTwo*t.EnergyLow[i]/tRef)
		if len(overpop) > 0 {
			if f, ok := overpop[t.VibLabel[i]]; ok {
				pop *= f
			}
		}
		stim := 1.0
		if nu > 0 {
			stim = -math.Expm1(-cTwo*nu/Tvib) / -math.Expm1(-cTwo*nu/tRef)
		}
		out[i] = t.Strength[i] * ratio * pop * stim
	}
	return out, nil
}

//decorated adds a call-site decoration when the error supports it.
func decorated(err error, site string) error {
	if e, ok := err.(Error); ok {
		e.Decorate(site)
	}
	return err
}
