/*
 * lines_test.go, part of gospectra.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//testTable builds a well-formed CO table with one line per given
//center wavenumber.
func testTable(centers ...float64) *LineTable {
	n := len(centers)
	t := &LineTable{
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
	for i, w := range centers {
		t.MoleculeID[i] = 5 //CO
		t.IsotopeID[i] = 1
		t.Wavenumber[i] = w
		t.Strength[i] = 1e-20
		t.EnergyLow[i] = 100
		t.GammaAir[i] = 0.06
		t.GammaSelf[i] = 0.075
		t.NAir[i] = 0.7
	}
	return t
}

func TestCheckColumnLengths(t *testing.T) {
	tab := testTable(2000, 2010)
	require.NoError(t, tab.Check())
	tab.GammaAir = tab.GammaAir[:1]
	err := tab.Check()
	require.Error(t, err)
	assert.True(t, IsKind(err, InconsistentRange))
}

func TestCropToRangeBoundary(t *testing.T) {
	//wavenum_min=2000, broadening_max_width=10: the margin boundary is
	//1995.0 and it belongs inside
	tab := testTable(1994.9, 1995.0, 1995.1, 2050, 2105.0, 2105.1)
	got := tab.CropToRange(2000, 2100, 5)
	require.Equal(t, 4, got.Len())
	assert.Equal(t, []float64{1995.0, 1995.1, 2050, 2105.0}, got.Wavenumber)
}

func TestCropCopiesOptionalColumns(t *testing.T) {
	tab := testTable(2000, 2010, 2020)
	tab.EinsteinA = []float64{5, 6, 7}
	tab.EvibLow = []float64{10, 20, 30}
	tab.ErotLow = []float64{1, 2, 3}
	tab.VibLabel = []string{"a", "b", "c"}
	got := tab.CropToRange(2005, 2030, 0)
	require.Equal(t, 2, got.Len())
	assert.Equal(t, []float64{6, 7}, got.EinsteinA)
	assert.Equal(t, []float64{20, 30}, got.EvibLow)
	assert.Equal(t, []string{"b", "c"}, got.VibLabel)
}

func TestFillMasses(t *testing.T) {
	tab := testTable(2000)
	require.NoError(t, tab.FillMasses())
	assert.InEpsilon(t, 27.994915, tab.Mass[0], 1e-9)
	//explicit masses are left alone
	tab2 := testTable(2000)
	tab2.Mass[0] = 30
	require.NoError(t, tab2.FillMasses())
	assert.Equal(t, 30.0, tab2.Mass[0])
	//unknown isotopologues cannot be defaulted
	tab3 := testTable(2000)
	tab3.MoleculeID[0] = 999
	err := tab3.FillMasses()
	require.Error(t, err)
	assert.True(t, IsKind(err, MissingCoefficient))
}

func TestCropCutoff(t *testing.T) {
	tab := testTable(2000, 2010, 2020)
	s := []float64{1e-19, 1e-30, 2e-19}
	got, kept, below := tab.CropCutoff(s, 1e-27)
	assert.Equal(t, 1, below)
	require.Equal(t, 2, got.Len())
	assert.Equal(t, []float64{1e-19, 2e-19}, kept)
	assert.Equal(t, []float64{2000, 2020}, got.Wavenumber)
}

func TestMolparamTables(t *testing.T) {
	m, ok := IsotopeMass(2, 1) //CO2 626
	require.True(t, ok)
	assert.InEpsilon(t, 43.98983, m, 1e-6)
	a, ok := IsotopeAbundance(2, 1)
	require.True(t, ok)
	assert.InEpsilon(t, 0.984204, a, 1e-6)
	_, ok = IsotopeMass(999, 1)
	assert.False(t, ok)
}
