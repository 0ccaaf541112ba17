/*
 * conditions_test.go, part of gospectra.
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

func TestResolveRangeExclusivity(t *testing.T) {
	c := Conditions{Tgas: 300, WavenumMin: 2000, WavenumMax: 2100,
		WavelengthMin: 4000, WavelengthMax: 5000}
	_, err := c.resolve(true)
	require.Error(t, err)
	assert.True(t, IsKind(err, InconsistentRange))
	//no range at all is just as inconsistent
	_, err = Conditions{Tgas: 300}.resolve(true)
	require.Error(t, err)
	assert.True(t, IsKind(err, InconsistentRange))
}

func TestResolveWavelengthConversion(t *testing.T) {
	c := Conditions{Tgas: 300, WavelengthMin: 4000, WavelengthMax: 5000}
	got, err := c.resolve(true)
	require.NoError(t, err)
	//vacuum nm to cm-1, bounds swap
	assert.InEpsilon(t, 2000.0, got.WavenumMin, 1e-12)
	assert.InEpsilon(t, 2500.0, got.WavenumMax, 1e-12)
}

func TestResolveDefaults(t *testing.T) {
	c := Conditions{Tgas: 300, WavenumMin: 2000, WavenumMax: 2100}
	got, err := c.resolve(true)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got.PathLength)
	assert.Equal(t, 10.0, got.BroadeningMaxWidth)
	assert.Equal(t, 300.0, got.Tvib)
	assert.Equal(t, 300.0, got.Trot)
}

func TestResolveTemperatureRules(t *testing.T) {
	//equilibrium with a contradicting Tvib
	c := Conditions{Tgas: 300, Tvib: 500, WavenumMin: 2000, WavenumMax: 2100}
	_, err := c.resolve(true)
	require.Error(t, err)
	assert.True(t, IsKind(err, InvalidPhysicalParameter))
	//non-equilibrium needs both Tvib and Trot
	c = Conditions{Tgas: 300, Tvib: 2000, WavenumMin: 2000, WavenumMax: 2100}
	_, err = c.resolve(false)
	require.Error(t, err)
	assert.True(t, IsKind(err, InvalidPhysicalParameter))
	//negative temperature is non-physical
	c = Conditions{Tgas: -5, WavenumMin: 2000, WavenumMax: 2100}
	_, err = c.resolve(true)
	require.Error(t, err)
	assert.True(t, IsKind(err, InvalidPhysicalParameter))
}

func TestResolveBadScalars(t *testing.T) {
	base := Conditions{Tgas: 300, WavenumMin: 2000, WavenumMax: 2100}
	c := base
	c.MoleFraction = 1.5
	_, err := c.resolve(true)
	assert.True(t, IsKind(err, InvalidPhysicalParameter))
	c = base
	c.Pressure = -1
	_, err = c.resolve(true)
	assert.True(t, IsKind(err, InvalidPhysicalParameter))
	c = base
	c.Wstep = -0.01
	_, err = c.resolve(true)
	assert.True(t, IsKind(err, InconsistentRange))
}

func TestOptimizationString(t *testing.T) {
	assert.Equal(t, "min-RMS", OptMinRMS.String())
	assert.Equal(t, "simple", OptSimple.String())
	assert.Equal(t, "none", OptNone.String())
}
