/*
 * constants.go, part of gospectra.
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

//Physical constants in CGS units (2018 CODATA). Spectroscopic
//quantities throughout the package are in cm-1, temperatures in K,
//pressures in bar at the API surface and atm against the HITRAN
//broadening coefficients.
const (
	lightSpeed = 2.99792458e10  //cm/s
	boltzmann  = 1.380649e-16   //erg/K
	planckH    = 6.62607015e-27 //erg*s
	avogadro   = 6.02214076e23  //1/mol

	//second radiation constant hc/kB, cm*K
	cTwo = planckH * lightSpeed / boltzmann

	//reference temperature of HITRAN linestrengths and broadening
	//coefficients
	tRef = 296.0

	barPerAtm = 1.01325
	cgsPerBar = 1e6 //dyn/cm2
)

//planckWavenumber is the Planck spectral radiance per wavenumber,
//B(nu,T) in erg/(s cm2 sr cm-1), with nu in cm-1.
func planckWavenumber(nu, T float64) float64 {
	if nu <= 0 || T <= 0 {
		return 0
	}
	return 2 * planckH * lightSpeed * lightSpeed * nu * nu * nu / math.Expm1(cTwo*nu/T)
}

//numberDensity is the ideal-gas molecule density in 1/cm3 for a
//partial pressure given as total pressure (bar) times mole fraction.
func numberDensity(pressureBar, moleFraction, T float64) float64 {
	return pressureBar * cgsPerBar * moleFraction / (boltzmann * T)
}
