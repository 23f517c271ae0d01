/*
 * sample.go, part of gotorsion.
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
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sample is a set of valid angles. Invalid angles given to NewSample are dropped.
type Sample struct {
	angles []Angle
	cos    []float64
	sin    []float64
}

// NewSample builds a sample from the valid elements of angles.
func NewSample(angles []Angle) *Sample {
	S := &Sample{
		angles: make([]Angle, 0, len(angles)),
		cos:    make([]float64, 0, len(angles)),
		sin:    make([]float64, 0, len(angles)),
	}
	for _, a := range angles {
		if !a.IsValid() {
			continue
		}
		S.angles = append(S.angles, a)
		S.cos = append(S.cos, math.Cos(a.radians))
		S.sin = append(S.sin, math.Sin(a.radians))
	}
	return S
}

// Len returns the number of valid angles in the sample.
func (S *Sample) Len() int {
	return len(S.angles)
}

// Angles returns a copy of the valid angles in the sample.
func (S *Sample) Angles() []Angle {
	ret := make([]Angle, len(S.angles))
	copy(ret, S.angles)
	return ret
}

// resultant returns the sum of the unit vectors of the sample.
func (S *Sample) resultant() (c, s float64) {
	return floats.Sum(S.cos), floats.Sum(S.sin)
}

// MeanDirection returns the circular mean of the sample. The result is
// invalid if the sample is empty, or if the angles cancel each other so
// the resultant vector has (nearly) zero length.
func (S *Sample) MeanDirection() Angle {
	if len(S.angles) == 0 {
		return Angle{}
	}
	c, s := S.resultant()
	if math.Hypot(c, s) <= appzero*float64(len(S.angles)) {
		return Angle{}
	}
	return fromRadians(math.Atan2(s, c))
}

// MeanResultantLength returns the length of the mean unit vector of the
// sample, between 0 (uniform spread) and 1 (all angles equal). NaN for an
// empty sample.
func (S *Sample) MeanResultantLength() float64 {
	if len(S.angles) == 0 {
		return math.NaN()
	}
	c, s := S.resultant()
	return math.Min(math.Hypot(c, s)/float64(len(S.angles)), 1)
}

// CircularVariance returns 1-R, where R is the mean resultant length.
func (S *Sample) CircularVariance() float64 {
	return 1 - S.MeanResultantLength()
}

// CircularStandardDeviation returns sqrt(-2 ln R), in radians.
// It is +Inf if R is zero and NaN for an empty sample.
func (S *Sample) CircularStandardDeviation() float64 {
	return math.Sqrt(-2 * math.Log(S.MeanResultantLength()))
}

// MeanDirection is a shortcut for NewSample(angles).MeanDirection().
func MeanDirection(angles []Angle) Angle {
	return NewSample(angles).MeanDirection()
}
