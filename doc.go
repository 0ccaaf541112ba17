/*
 * doc.go, part of gospectra.
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

/*Package spectra is the main package of the goSpectra library. It computes
molecular absorption and emission spectra from line-by-line spectroscopic
data (HITRAN/HITEMP/ExoMol-style line tables), under equilibrium or
non-equilibrium conditions.


	**goSpectra capabilities**

    Rescales reference linestrengths to arbitrary gas temperatures, or to
	separate vibrational/rotational temperatures, with pluggable
	partition-function sources.

    Computes per-line Doppler (Gaussian) and collisional (Lorentzian)
	broadening, with optional default-substitution for missing
	coefficients.

    Synthesizes spectra on a uniform wavenumber grid in sub-quadratic time
	with the lineshape-density-matrix method: lines are projected onto a
	small bank of reference Voigt templates and the whole set is
	convolved per template with FFTs (see the ldm sub-package).

    Offers an exact per-line reference path (Optimization: none) and two
	template weighting policies ("simple" and "min-RMS").

    Manages the working grid: automatic step selection from the narrowest
	linewidth, broadening margins beyond the requested range, truncation
	back to it.

    Derives absorbance, transmittance and radiance for a given path
	length.

Line database files, partition-function tabulation sources, unit handling
beyond vacuum nm/cm-1, plotting and persistence are left to external
collaborators; this library takes an in-memory columnar LineTable and
returns in-memory arrays.
*/
package spectra
