/*
 * angle.go, part of gotorsion.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package circular

import (
	"fmt"
	"math"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

// Angle is a circular quantity in radians, normalized to (-Pi, Pi], or invalid.
type Angle struct {
	radians float64
	valid   bool
}

// Invalid returns an invalid Angle. It is the same as the zero Angle.
func Invalid() Angle {
	return Angle{}
}

// NewAngle returns the Angle for rad radians. rad has to be in [-Pi, Pi];
// -Pi is stored as Pi. Any other value, including NaN and infinities,
// results in a *RangeError and an invalid Angle.
func NewAngle(rad float64) (Angle, error) {
	if math.IsNaN(rad) || rad < -math.Pi || rad > math.Pi {
		return Angle{}, &RangeError{Value: rad, deco: []string{"NewAngle"}}
	}
	return fromRadians(rad), nil
}

// NewAngleDegrees is like NewAngle, but takes an angle in degrees,
// which needs to be in [-180, 180].
func NewAngleDegrees(deg float64) (Angle, error) {
	if math.IsNaN(deg) || deg < -180 || deg > 180 {
		return Angle{}, &RangeError{Value: deg, Degrees: true, deco: []string{"NewAngleDegrees"}}
	}
	return fromRadians(deg * math.Pi / 180), nil
}

// FromRadians wraps any finite value into (-Pi, Pi]. NaN and infinities
// give an invalid Angle.
func FromRadians(rad float64) Angle {
	if math.IsNaN(rad) || math.IsInf(rad, 0) {
		return Angle{}
	}
	return fromRadians(wrap(rad))
}

// FromDegrees wraps any finite value in degrees into (-Pi, Pi].
func FromDegrees(deg float64) Angle {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return Angle{}
	}
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return fromRadians(deg * math.Pi / 180)
}

// fromRadians assumes rad is already in [-Pi, Pi], give or take rounding.
func fromRadians(rad float64) Angle {
	if rad <= -math.Pi || rad > math.Pi {
		rad = math.Pi
	}
	return Angle{radians: rad, valid: true}
}

func wrap(rad float64) float64 {
	if rad >= 2*math.Pi || rad <= -2*math.Pi {
		rad = math.Remainder(rad, 2*math.Pi)
	}
	if rad > math.Pi {
		rad -= 2 * math.Pi
	} else if rad <= -math.Pi {
		rad += 2 * math.Pi
	}
	return rad
}

// IsValid returns true if the angle holds a value.
func (a Angle) IsValid() bool {
	return a.valid
}

// Radians returns the value in radians, in (-Pi, Pi], or NaN for an invalid angle.
func (a Angle) Radians() float64 {
	if !a.valid {
		return math.NaN()
	}
	return a.radians
}

// Degrees returns the value in degrees, in (-180, 180], or NaN for an invalid angle.
func (a Angle) Degrees() float64 {
	if !a.valid {
		return math.NaN()
	}
	return a.radians * 180 / math.Pi
}

// Degrees360 returns the value in degrees mapped to [0, 360), or NaN.
func (a Angle) Degrees360() float64 {
	d := a.Degrees()
	if d < 0 {
		d += 360
	}
	return d
}

// Cos returns the cosine of the angle, NaN if invalid.
func (a Angle) Cos() float64 {
	return math.Cos(a.Radians())
}

// Sin returns the sine of the angle, NaN if invalid.
func (a Angle) Sin() float64 {
	return math.Sin(a.Radians())
}

// Add returns a+b, wrapped into (-Pi, Pi]. Invalid if either is invalid.
func (a Angle) Add(b Angle) Angle {
	if !a.valid || !b.valid {
		return Angle{}
	}
	return FromRadians(a.radians + b.radians)
}

// Sub returns the signed difference a-b, wrapped into (-Pi, Pi].
// Invalid if either is invalid. See Subtract for the unsigned distance.
func (a Angle) Sub(b Angle) Angle {
	if !a.valid || !b.valid {
		return Angle{}
	}
	return FromRadians(a.radians - b.radians)
}

// Equal reports whether both angles are invalid, or both are valid and
// their values differ by at most tol radians around the circle.
func (a Angle) Equal(b Angle, tol float64) bool {
	if !a.valid || !b.valid {
		return a.valid == b.valid
	}
	return Subtract(a, b).radians <= tol
}

// String returns the angle in degrees, or "invalid".
func (a Angle) String() string {
	if !a.valid {
		return "invalid"
	}
	return fmt.Sprintf("%6.2f", a.Degrees())
}

// Subtract returns the length of the shorter arc between a and b, in [0, Pi].
// It is symmetric, and invalid if either a or b is invalid.
func Subtract(a, b Angle) Angle {
	if !a.valid || !b.valid {
		return Angle{}
	}
	const full = 2 * math.Pi
	amod := math.Mod(a.radians+full, full)
	bmod := math.Mod(b.radians+full, full)
	diff := math.Abs(amod - bmod)
	diff = math.Min(diff, full-diff)
	return Angle{radians: diff, valid: true}
}
