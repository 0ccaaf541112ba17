/*
 * partition.go, part of gospectra.
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

import "sort"

// Partitioner supplies total internal partition sums Q(T). It is the
// interface the partition-function collaborators (TIPS tabulations,
// ExoMol .pf files) implement; this package only consumes it in the
// linestrength rescaling.
type Partitioner interface {
	QAt(T float64) (float64, error)
}

// VibRotPartitioner additionally supplies the two-temperature
// partition sum needed for non-equilibrium populations.
type VibRotPartitioner interface {
	Partitioner
	QVibRot(Tvib, Trot float64) (float64, error)
}

// TabulatedPartition interpolates Q(T) linearly in a (T, Q) table.
// Good enough as a collaborator stand-in and for tests; temperatures
// outside the tabulated range are an InvalidPhysicalParameter error
// rather than an extrapolation.
type TabulatedPartition struct {
	t, q []float64
}

// NewTabulatedPartition builds a TabulatedPartition from parallel
// slices of temperatures (strictly increasing) and partition sums.
func NewTabulatedPartition(T, Q []float64) (*TabulatedPartition, error) {
	if len(T) < 2 || len(T) != len(Q) {
		err := errorf(InvalidPhysicalParameter, "partition table needs at least 2 matching points, got %d and %d", len(T), len(Q))
		err.Decorate("NewTabulatedPartition")
		return nil, err
	}
	for i := 1; i < len(T); i++ {
		if T[i] <= T[i-1] {
			err := errorf(InvalidPhysicalParameter, "partition table temperatures must increase, got %g after %g", T[i], T[i-1])
			err.Decorate("NewTabulatedPartition")
			return nil, err
		}
	}
	p := &TabulatedPartition{t: make([]float64, len(T)), q: make([]float64, len(Q))}
	copy(p.t, T)
	copy(p.q, Q)
	return p, nil
}

// QAt returns the partition sum at T by linear interpolation.
func (p *TabulatedPartition) QAt(T float64) (float64, error) {
	n := len(p.t)
	if T < p.t[0] || T > p.t[n-1] {
		err := errorf(InvalidPhysicalParameter, "T=%g K outside the tabulated partition range [%g, %g]", T, p.t[0], p.t[n-1])
		err.Decorate("TabulatedPartition.QAt")
		return 0, err
	}
	j := sort.SearchFloat64s(p.t, T)
	if j < n && p.t[j] == T {
		return p.q[j], nil
	}
	f := (T - p.t[j-1]) / (p.t[j] - p.t[j-1])
	return p.q[j-1] + f*(p.q[j]-p.q[j-1]), nil
}

// TabulatedVibRotPartition composes separate vibrational and
// rotational tabulations, approximating Q(Tvib, Trot) as
// Qvib(Tvib)*Qrot(Trot) (the usual factorization when the mode
// energies separate).
type TabulatedVibRotPartition struct {
	Vib *TabulatedPartition
	Rot *TabulatedPartition
}

// QAt returns the equilibrium partition sum Qvib(T)*Qrot(T).
func (p *TabulatedVibRotPartition) QAt(T float64) (float64, error) {
	qv, err := p.Vib.QAt(T)
	if err != nil {
		return 0, err
	}
	qr, err := p.Rot.QAt(T)
	if err != nil {
		return 0, err
	}
	return qv * qr, nil
}

// QVibRot returns the two-temperature partition sum
// Qvib(Tvib)*Qrot(Trot).
func (p *TabulatedVibRotPartition) QVibRot(Tvib, Trot float64) (float64, error) {
	qv, err := p.Vib.QAt(Tvib)
	if err != nil {
		return 0, err
	}
	qr, err := p.Rot.QAt(Trot)
	if err != nil {
		return 0, err
	}
	return qv * qr, nil
}
