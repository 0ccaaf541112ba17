/*
 * broadening_test.go, part of gospectra.
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

func TestDopplerTemperatureScaling(t *testing.T) {
	tab := testTable(2000)
	require.NoError(t, tab.FillMasses())
	g1, err := DopplerWidths(tab, 300)
	require.NoError(t, err)
	g2, err := DopplerWidths(tab, 600)
	require.NoError(t, err)
	//doubling T scales the Doppler width by sqrt(2), exactly
	assert.InEpsilon(t, math.Sqrt2, g2[0]/g1[0], 1e-12)
}

func TestDopplerClosedForm(t *testing.T) {
	tab := testTable(2000)
	require.NoError(t, tab.FillMasses())
	g, err := DopplerWidths(tab, 296)
	require.NoError(t, err)
	m := tab.Mass[0] / avogadro
	want := 2000.0 * math.Sqrt(2*math.Ln2*boltzmann*296/m) / lightSpeed
	assert.InEpsilon(t, want, g[0], 1e-14)
	assert.Greater(t, g[0], 0.0)
}

func TestDopplerInvalidInputs(t *testing.T) {
	tab := testTable(2000)
	require.NoError(t, tab.FillMasses())
	_, err := DopplerWidths(tab, -10)
	require.Error(t, err)
	assert.True(t, IsKind(err, InvalidPhysicalParameter))
	tab.Mass[0] = -1
	_, err = DopplerWidths(tab, 296)
	require.Error(t, err)
	assert.True(t, IsKind(err, InvalidPhysicalParameter))
}

func TestCollisionalWidths(t *testing.T) {
	tab := testTable(2000)
	conf := DefaultConfig()
	//at the reference temperature and 1 atm of pure air broadening,
	//the width is just gammaAir
	g, err := CollisionalWidths(tab, tRef, barPerAtm, 0, conf)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.06, g[0], 1e-12)
	//pure self-broadening picks gammaSelf
	g, err = CollisionalWidths(tab, tRef, barPerAtm, 1, conf)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.075, g[0], 1e-12)
	//linear in pressure
	gHalf, err := CollisionalWidths(tab, tRef, barPerAtm/2, 0, conf)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.03, gHalf[0], 1e-12)
	//temperature exponent
	gHot, err := CollisionalWidths(tab, 2*tRef, barPerAtm, 0, conf)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.06*math.Pow(0.5, 0.7), gHot[0], 1e-12)
}

func TestCollisionalMissingCoefficient(t *testing.T) {
	tab := testTable(2000)
	tab.GammaAir[0] = math.NaN()
	conf := DefaultConfig()
	_, err := CollisionalWidths(tab, 296, 1, 0.1, conf)
	require.Error(t, err)
	assert.True(t, IsKind(err, MissingCoefficient))
	//the substitution policy turns the failure into a default
	conf.DefaultGammaAir = 0.07
	g, err := CollisionalWidths(tab, tRef, barPerAtm, 0, conf)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.07, g[0], 1e-12)
	//missing self-broadening silently falls back on air
	tab2 := testTable(2000)
	tab2.GammaSelf[0] = math.NaN()
	g, err = CollisionalWidths(tab2, tRef, barPerAtm, 1, DefaultConfig())
	require.NoError(t, err)
	assert.InEpsilon(t, 0.06, g[0], 1e-12)
	//missing temperature exponent
	tab3 := testTable(2000)
	tab3.NAir[0] = math.NaN()
	_, err = CollisionalWidths(tab3, 296, 1, 0.1, DefaultConfig())
	require.Error(t, err)
	assert.True(t, IsKind(err, MissingCoefficient))
	conf2 := DefaultConfig()
	conf2.DefaultNAir = 0.5
	_, err = CollisionalWidths(tab3, 296, 1, 0.1, conf2)
	assert.NoError(t, err)
}
