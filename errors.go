/*
 * errors.go, part of gospectra.
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
	"fmt"
	"strings"
)

// Kind classifies the failures this package can raise. All of them are
// detected at call boundaries, before any synthesis work starts.
type Kind int

const (
	// InvalidPhysicalParameter marks non-physical inputs: temperature,
	// pressure or mass outside their domain. Fatal, never retried.
	InvalidPhysicalParameter Kind = iota + 1
	// MissingCoefficient marks a line lacking a required broadening or
	// partition input. Callers may configure a default-substitution
	// policy instead (see Config).
	MissingCoefficient
	// InconsistentRange marks contradictory wavenumber/wavelength
	// bounds, or an empty line set after range filtering. Fatal.
	InconsistentRange
)

func (k Kind) String() string {
	switch k {
	case InvalidPhysicalParameter:
		return "invalid physical parameter"
	case MissingCoefficient:
		return "missing coefficient"
	case InconsistentRange:
		return "inconsistent range"
	}
	return "unknown"
}

// Error is the interface implemented by all errors raised in this
// library. The Decorate method allows adding call-site info to an
// error as it travels up, without wrapping it in another type. Passed
// an empty string it just returns the current decoration slice.
type Error interface {
	error
	Decorate(string) []string
	Kind() Kind
}

// SError is the concrete error of the spectra package.
type SError struct {
	msg  string
	kind Kind
	deco []string
}

func (e *SError) Error() string {
	if len(e.deco) == 0 {
		return e.msg
	}
	return e.msg + " (" + strings.Join(e.deco, ", ") + ")"
}

func (e *SError) Kind() Kind {
	return e.kind
}

func (e *SError) Decorate(d string) []string {
	if d != "" {
		e.deco = append(e.deco, d)
	}
	return e.deco
}

//errorf builds a decorated *SError of the given kind.
func errorf(k Kind, format string, a ...interface{}) *SError {
	return &SError{msg: "goSpectra: " + fmt.Sprintf(format, a...), kind: k}
}

// IsKind reports whether err is a library error of kind k.
func IsKind(err error, k Kind) bool {
	e, ok := err.(Error)
	return ok && e.Kind() == k
}
