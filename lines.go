/*
 * lines.go, part of gospectra.
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

// LineTable holds a set of spectral lines in columnar form, the layout
// produced by the line-database collaborators (HITRAN/HITEMP/ExoMol
// readers). Required columns are MoleculeID, IsotopeID, Wavenumber,
// Strength, EnergyLow, GammaAir, GammaSelf and NAir; a missing
// per-line coefficient inside a column is marked NaN. Mass may be left
// zero and filled from the built-in molparam tables. EvibLow, ErotLow
// and VibLabel are only needed for non-equilibrium synthesis. The
// table is treated as read-only during a synthesis call, so it can be
// shared by reference across concurrent condition sweeps.
type LineTable struct {
	MoleculeID []int
	IsotopeID  []int
	Wavenumber []float64 //line centers, cm-1; need not be sorted
	Strength   []float64 //reference linestrength at 296 K, cm-1/(molec.cm-2)
	EnergyLow  []float64 //lower-state energy, cm-1
	GammaAir   []float64 //air-broadening HWHM, cm-1/atm
	GammaSelf  []float64 //self-broadening HWHM, cm-1/atm
	NAir       []float64 //temperature exponent of GammaAir
	Mass       []float64 //molar mass, g/mol; 0 means "look it up"

	//optional, carried through for emission post-processing by callers
	//that have it; synthesis itself never reads it
	EinsteinA []float64 //spontaneous emission coefficient, 1/s

	//non-equilibrium columns, optional
	EvibLow []float64 //vibrational part of the lower-state energy, cm-1
	ErotLow []float64 //rotational part of the lower-state energy, cm-1

	//optional rovibrational labels, keys of the overpopulation map
	VibLabel []string
}

// Len returns the number of lines in the table.
func (t *LineTable) Len() int {
	return len(t.Wavenumber)
}

// Check verifies that all present columns have the same length as
// Wavenumber. Optional columns may be nil.
func (t *LineTable) Check() error {
	n := t.Len()
	cols := map[string]int{
		"MoleculeID": len(t.MoleculeID),
		"IsotopeID":  len(t.IsotopeID),
		"Strength":   len(t.Strength),
		"EnergyLow":  len(t.EnergyLow),
		"GammaAir":   len(t.GammaAir),
		"GammaSelf":  len(t.GammaSelf),
		"NAir":       len(t.NAir),
		"Mass":       len(t.Mass),
	}
	for name, l := range cols {
		if l != n {
			err := errorf(InconsistentRange, "column %s has %d entries, expected %d", name, l, n)
			err.Decorate("LineTable.Check")
			return err
		}
	}
	for name, l := range map[string]int{"EinsteinA": len(t.EinsteinA), "EvibLow": len(t.EvibLow), "ErotLow": len(t.ErotLow), "VibLabel": len(t.VibLabel)} {
		if l != 0 && l != n {
			err := errorf(InconsistentRange, "optional column %s has %d entries, expected %d or none", name, l, n)
			err.Decorate("LineTable.Check")
			return err
		}
	}
	return nil
}

// FillMasses replaces zero Mass entries with the built-in molparam
// molar masses. An unknown molecule/isotope pair with a zero mass is a
// MissingCoefficient error, since the Doppler width cannot be computed
// without it.
func (t *LineTable) FillMasses() error {
	for i, m := range t.Mass {
		if m != 0 {
			continue
		}
		mm, ok := IsotopeMass(t.MoleculeID[i], t.IsotopeID[i])
		if !ok {
			err := errorf(MissingCoefficient, "no molar mass for molecule %d isotope %d (line %d)", t.MoleculeID[i], t.IsotopeID[i], i)
			err.Decorate("LineTable.FillMasses")
			return err
		}
		t.Mass[i] = mm
	}
	return nil
}

// CropToRange returns a new table with the lines whose centers lie in
// [wmin-margin, wmax+margin], bounds included. Lines outside cannot
// contribute to the requested window and must be excluded before
// synthesis. The returned table shares no storage with the receiver.
func (t *LineTable) CropToRange(wmin, wmax, margin float64) *LineTable {
	lo := wmin - margin
	hi := wmax + margin
	keep := make([]int, 0, t.Len())
	for i, w := range t.Wavenumber {
		if w >= lo && w <= hi {
			keep = append(keep, i)
		}
	}
	return t.gather(keep)
}

// CropCutoff returns a new table without the lines whose rescaled
// strength (parallel slice strengths) falls below cutoff, together
// with the filtered strength slice and the number of discarded lines.
func (t *LineTable) CropCutoff(strengths []float64, cutoff float64) (*LineTable, []float64, int) {
	keep := make([]int, 0, t.Len())
	for i, s := range strengths {
		if s >= cutoff && !math.IsNaN(s) {
			keep = append(keep, i)
		}
	}
	skept := make([]float64, len(keep))
	for j, i := range keep {
		skept[j] = strengths[i]
	}
	return t.gather(keep), skept, t.Len() - len(keep)
}

//gather builds a new table from the given row indexes, copying every
//non-nil column.
func (t *LineTable) gather(idx []int) *LineTable {
	n := len(idx)
	out := &LineTable{
		MoleculeID: make([]int, n),
		IsotopeID:  make([]int, n),
		Wavenumber: make([]float64, n),
		Strength:   make([]float64, n),
		EnergyLow:  make([]float64, n),
		GammaAir:   make([]float64, n),
		GammaSelf:  make([]float64, n),
		NAir:       make([]float64, n),
		Mass:       make([]float64, n),
	}
	if t.EinsteinA != nil {
		out.EinsteinA = make([]float64, n)
	}
	if t.EvibLow != nil {
		out.EvibLow = make([]float64, n)
	}
	if t.ErotLow != nil {
		out.ErotLow = make([]float64, n)
	}
	if t.VibLabel != nil {
		out.VibLabel = make([]string, n)
	}
	for j, i := range idx {
		out.MoleculeID[j] = t.MoleculeID[i]
		out.IsotopeID[j] = t.IsotopeID[i]
		out.Wavenumber[j] = t.Wavenumber[i]
		out.Strength[j] = t.Strength[i]
		out.EnergyLow[j] = t.EnergyLow[i]
		out.GammaAir[j] = t.GammaAir[i]
		out.GammaSelf[j] = t.GammaSelf[i]
		out.NAir[j] = t.NAir[i]
		out.Mass[j] = t.Mass[i]
		if out.EinsteinA != nil {
			out.EinsteinA[j] = t.EinsteinA[i]
		}
		if out.EvibLow != nil {
			out.EvibLow[j] = t.EvibLow[i]
		}
		if out.ErotLow != nil {
			out.ErotLow[j] = t.ErotLow[i]
		}
		if out.VibLabel != nil {
			out.VibLabel[j] = t.VibLabel[i]
		}
	}
	return out
}
