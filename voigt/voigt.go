/*
 * voigt.go, part of gospectra.
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

//Package voigt evaluates Gaussian, Lorentzian and Voigt lineshapes.
//All widths taken and returned by this package are half-widths at
//half-maximum (HWHM), in the same unit as the spectral coordinate
//(usually cm-1).
package voigt

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

const (
	ln2     = 0.6931471805599453
	sqrtLn2 = 0.8325546111576977
	sqrtPi  = 1.7724538509055159
)

// Faddeeva computes the scaled complex complementary error function
// w(z) = exp(-z^2)*erfc(-iz) for Im(z) >= 0, with Humlicek's w4
// rational approximations (Humlicek 1982, JQSRT 27, 437).
// Relative accuracy is about 1e-4, enough for spectral synthesis.
func Faddeeva(z complex128) complex128 {
	x := real(z)
	y := imag(z)
	t := complex(y, -x)
	s := math.Abs(x) + y
	switch {
	case s >= 15:
		//region I
		return t * 0.5641896 / (0.5 + t*t)
	case s >= 5.5:
		//region II
		u := t * t
		return t * (1.410474 + u*0.5641896) / (0.75 + u*(3.0+u))
	case y >= 0.195*math.Abs(x)-0.176:
		//region III
		return (16.4955 + t*(20.20933+t*(11.96482+t*(3.778987+t*0.5642236)))) /
			(16.4955 + t*(38.82363+t*(39.27121+t*(21.69274+t*(6.699398+t)))))
	default:
		//region IV
		u := t * t
		num := t * (36183.31 - u*(3321.9905-u*(1540.787-u*(219.0313-u*(35.76683-u*(1.320522-u*0.56419))))))
		den := 32066.6 - u*(24322.84-u*(9022.228-u*(2186.181-u*(364.2191-u*(61.57037-u*(1.841439-u))))))
		return cmplx.Exp(u) - num/den
	}
}

// Gaussian returns the value at x of the area-normalized Gaussian
// with HWHM gammaG, centered at zero.
func Gaussian(x, gammaG float64) float64 {
	if gammaG <= 0 {
		return 0
	}
	u := x / gammaG
	return sqrtLn2 / (gammaG * sqrtPi) * math.Exp(-ln2*u*u)
}

// Lorentzian returns the value at x of the area-normalized Lorentzian
// with HWHM gammaL, centered at zero.
func Lorentzian(x, gammaL float64) float64 {
	if gammaL <= 0 {
		return 0
	}
	return gammaL / (math.Pi * (x*x + gammaL*gammaL))
}

// Profile returns the value at x of the area-normalized Voigt profile
// centered at zero, with Gaussian HWHM gammaG and Lorentzian HWHM
// gammaL. Degenerate widths fall back to the pure Gaussian or pure
// Lorentzian closed forms.
func Profile(x, gammaG, gammaL float64) float64 {
	if gammaG <= 0 {
		return Lorentzian(x, gammaL)
	}
	if gammaL <= 0 {
		return Gaussian(x, gammaG)
	}
	sigma := gammaG / (sqrtLn2 * math.Sqrt2)
	z := complex(x/(sigma*math.Sqrt2), gammaL/(sigma*math.Sqrt2))
	return real(Faddeeva(z)) / (sigma * math.Sqrt2 * sqrtPi)
}

// FWHM estimates the full width at half-maximum of a Voigt profile
// from its Gaussian and Lorentzian HWHMs, with the Olivero-Longbothum
// approximation (accurate to ~0.02%).
func FWHM(gammaG, gammaL float64) float64 {
	fg := 2 * gammaG
	fl := 2 * gammaL
	return 0.5346*fl + math.Sqrt(0.2166*fl*fl+fg*fg)
}

// Kernel fills dst, which must have odd length, with the Voigt profile
// sampled on a grid of spacing step centered at the middle element.
// The samples are renormalized so that their discrete integral
// (sum times step) is exactly 1, which keeps binned convolutions mass
// conserving. A zero-width profile degenerates to all the mass on the
// central sample.
func Kernel(dst []float64, step, gammaG, gammaL float64) []float64 {
	n := len(dst)
	if n%2 == 0 {
		panic("voigt: Kernel needs an odd number of samples")
	}
	if step <= 0 {
		panic("voigt: Kernel needs a positive step")
	}
	half := n / 2
	if gammaG <= 0 && gammaL <= 0 {
		for i := range dst {
			dst[i] = 0
		}
		dst[half] = 1 / step
		return dst
	}
	for i := range dst {
		dst[i] = Profile(float64(i-half)*step, gammaG, gammaL)
	}
	mass := floats.Sum(dst) * step
	if mass > 0 {
		floats.Scale(1/mass, dst)
	}
	return dst
}
