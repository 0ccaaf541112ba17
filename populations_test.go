/*
 * populations_test.go, part of gospectra.
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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//flatQ is a partition table that is 1 everywhere, so only the
//Boltzmann and stimulated-emission factors act on the strengths.
func flatQ(t *testing.T) *TabulatedPartition {
	t.Helper()
	p, err := NewTabulatedPartition([]float64{1, 5000}, []float64{1, 1})
	require.NoError(t, err)
	return p
}

func flatVibRotQ(t *testing.T) *TabulatedVibRotPartition {
	t.Helper()
	return &TabulatedVibRotPartition{Vib: flatQ(t), Rot: flatQ(t)}
}

func TestTabulatedPartition(t *testing.T) {
	p, err := NewTabulatedPartition([]float64{100, 200, 400}, []float64{10, 20, 60})
	require.NoError(t, err)
	q, err := p.QAt(150)
	require.NoError(t, err)
	assert.InEpsilon(t, 15.0, q, 1e-12)
	q, err = p.QAt(200)
	require.NoError(t, err)
	assert.InEpsilon(t, 20.0, q, 1e-12)
	q, err = p.QAt(300)
	require.NoError(t, err)
	assert.InEpsilon(t, 40.0, q, 1e-12)
	_, err = p.QAt(50)
	require.Error(t, err)
	assert.True(t, IsKind(err, InvalidPhysicalParameter))
	//non-increasing temperatures are rejected
	_, err = NewTabulatedPartition([]float64{100, 100}, []float64{1, 1})
	assert.Error(t, err)
}

func TestEquilibriumStrengthsAtReference(t *testing.T) {
	tab := testTable(2000, 2050)
	s, err := EquilibriumStrengths(tab, flatQ(t), tRef)
	require.NoError(t, err)
	//at the reference temperature nothing changes
	for i := range s {
		assert.InEpsilon(t, tab.Strength[i], s[i], 1e-12)
	}
}

func TestEquilibriumStrengthsBoltzmann(t *testing.T) {
	tab := testTable(2000)
	tab.EnergyLow[0] = 1000
	T := 600.0
	s, err := EquilibriumStrengths(tab, flatQ(t), T)
	require.NoError(t, err)
	boltz := math.Exp(-cTwo * 1000 * (1/T - 1/tRef))
	stim := -math.Expm1(-cTwo*2000/T) / -math.Expm1(-cTwo*2000/tRef)
	assert.InEpsilon(t, 1e-20*boltz*stim, s[0], 1e-12)
}

func TestNonEquilibriumReducesToEquilibrium(t *testing.T) {
	tab := testTable(2000, 2050)
	tab.EvibLow = []float64{80, 60}
	tab.ErotLow = []float64{20, 40} //Evib+Erot = EnergyLow = 100
	T := 700.0
	eq, err := EquilibriumStrengths(tab, flatQ(t), T)
	require.NoError(t, err)
	ne, err := NonEquilibriumStrengths(tab, flatVibRotQ(t), T, T, nil)
	require.NoError(t, err)
	for i := range eq {
		assert.InEpsilon(t, eq[i], ne[i], 1e-9)
	}
}

func TestNonEquilibriumNeedsEnergySplit(t *testing.T) {
	tab := testTable(2000)
	_, err := NonEquilibriumStrengths(tab, flatVibRotQ(t), 2000, 300, nil)
	require.Error(t, err)
	assert.True(t, IsKind(err, MissingCoefficient))
}

func TestNonEquilibriumOverpopulation(t *testing.T) {
	tab := testTable(2000, 2050)
	tab.EvibLow = []float64{100, 100}
	tab.ErotLow = []float64{0, 0}
	tab.VibLabel = []string{"v1", "v2"}
	base, err := NonEquilibriumStrengths(tab, flatVibRotQ(t), 500, 500, nil)
	require.NoError(t, err)
	over, err := NonEquilibriumStrengths(tab, flatVibRotQ(t), 500, 500, map[string]float64{"v1": 3})
	require.NoError(t, err)
	assert.InEpsilon(t, 3*base[0], over[0], 1e-12)
	assert.InEpsilon(t, base[1], over[1], 1e-12)
	//labels are required once an overpopulation map is given
	tab.VibLabel = nil
	_, err = NonEquilibriumStrengths(tab, flatVibRotQ(t), 500, 500, map[string]float64{"v1": 3})
	require.Error(t, err)
	assert.True(t, IsKind(err, MissingCoefficient))
}
