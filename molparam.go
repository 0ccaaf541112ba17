/*
 * molparam.go, part of gospectra.
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

//isoKey identifies an isotopologue by HITRAN molecule id and local
//isotope id.
type isoKey struct {
	Mol int
	Iso int
}

//A map for assigning molar masses (g/mol) to isotopologues.
//Values from the HITRAN molparam tables. Note that just the most
//abundant isotopologues of the common molecules are present; tables
//can be extended by the caller through LineTable.Mass.
var isoMass = map[isoKey]float64{
	{1, 1}:  18.010565, //H2O
	{1, 2}:  20.014811,
	{1, 3}:  19.014780,
	{2, 1}:  43.989830, //CO2
	{2, 2}:  44.993185,
	{2, 3}:  45.994076,
	{2, 4}:  44.994045,
	{3, 1}:  47.984745, //O3
	{4, 1}:  44.001062, //N2O
	{5, 1}:  27.994915, //CO
	{5, 2}:  28.998270,
	{5, 3}:  29.999161,
	{6, 1}:  16.031300, //CH4
	{6, 2}:  17.034655,
	{7, 1}:  31.989830, //O2
	{8, 1}:  29.997989, //NO
	{9, 1}:  63.961901, //SO2
	{10, 1}: 45.992904, //NO2
	{11, 1}: 17.026549, //NH3
	{13, 1}: 17.002740, //OH
	{14, 1}: 20.006229, //HF
	{15, 1}: 35.976678, //HCl
}

//A map for the natural terrestrial abundances of the same
//isotopologues. HITRAN reference intensities already include these;
//they are exposed for callers that rescale to non-terrestrial
//isotopic mixes.
var isoAbundance = map[isoKey]float64{
	{1, 1}:  0.997317,
	{1, 2}:  1.99983e-3,
	{1, 3}:  3.71884e-4,
	{2, 1}:  0.984204,
	{2, 2}:  1.10574e-2,
	{2, 3}:  3.94707e-3,
	{2, 4}:  7.33989e-4,
	{3, 1}:  0.992901,
	{4, 1}:  0.990333,
	{5, 1}:  0.986544,
	{5, 2}:  1.10836e-2,
	{5, 3}:  1.97822e-3,
	{6, 1}:  0.988274,
	{6, 2}:  1.11031e-2,
	{7, 1}:  0.995262,
	{8, 1}:  0.993974,
	{9, 1}:  0.945678,
	{10, 1}: 0.991616,
	{11, 1}: 0.995872,
	{13, 1}: 0.997473,
	{14, 1}: 0.999844,
	{15, 1}: 0.757587,
}

// IsotopeMass returns the molar mass in g/mol of the given HITRAN
// molecule/isotope pair, and whether the pair is known.
func IsotopeMass(molecule, isotope int) (float64, bool) {
	m, ok := isoMass[isoKey{molecule, isotope}]
	return m, ok
}

// IsotopeAbundance returns the natural terrestrial abundance of the
// given HITRAN molecule/isotope pair, and whether the pair is known.
func IsotopeAbundance(molecule, isotope int) (float64, bool) {
	a, ok := isoAbundance[isoKey{molecule, isotope}]
	return a, ok
}
