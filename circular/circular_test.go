/*
 * circular_test.go, part of gotorsion.
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

package circular

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat"
)

func TestNewAngle(Te *testing.T) {
	a, err := NewAngle(math.Pi / 2)
	if err != nil {
		Te.Fatal(err)
	}
	if !a.IsValid() || !scalar.EqualWithinAbs(a.Degrees(), 90, 1e-12) {
		Te.Errorf("expected 90 degrees, got %v", a)
	}
	a, err = NewAngle(-math.Pi)
	if err != nil {
		Te.Fatal(err)
	}
	if a.Radians() != math.Pi {
		Te.Errorf("-Pi should be stored as Pi, got %v", a.Radians())
	}
	for _, bad := range []float64{4, -3.2, math.NaN(), math.Inf(1)} {
		a, err := NewAngle(bad)
		if err == nil {
			Te.Errorf("no error for %v", bad)
			continue
		}
		var rerr *RangeError
		if !errors.As(err, &rerr) {
			Te.Errorf("error for %v is not a *RangeError: %T", bad, err)
		}
		if a.IsValid() {
			Te.Errorf("angle for %v should be invalid", bad)
		}
	}
	if _, err := NewAngleDegrees(181); err == nil {
		Te.Error("no error for 181 degrees")
	}
}

func TestInvalidPropagation(Te *testing.T) {
	var zero Angle
	if zero.IsValid() || Invalid().IsValid() {
		Te.Error("zero Angle should be invalid")
	}
	a := FromDegrees(30)
	ops := []Angle{a.Add(zero), zero.Add(a), a.Sub(zero), Subtract(a, zero), Subtract(zero, a)}
	for i, v := range ops {
		if v.IsValid() {
			Te.Errorf("operation %d produced a valid angle from an invalid one", i)
		}
	}
	if !math.IsNaN(zero.Radians()) || !math.IsNaN(zero.Degrees()) {
		Te.Error("invalid angle should give NaN values")
	}
	if zero.String() != "invalid" {
		Te.Errorf("unexpected string %q", zero.String())
	}
	if FromRadians(math.NaN()).IsValid() || FromRadians(math.Inf(-1)).IsValid() {
		Te.Error("non finite input should give invalid angles")
	}
}

func TestWrap(Te *testing.T) {
	cases := [][2]float64{
		{370, 10},
		{-190, 170},
		{180, 180},
		{-180, 180},
		{540, 180},
		{-720, 0},
	}
	for _, c := range cases {
		got := FromDegrees(c[0]).Degrees()
		if !scalar.EqualWithinAbs(got, c[1], 1e-9) {
			Te.Errorf("FromDegrees(%v)=%v, expected %v", c[0], got, c[1])
		}
	}
	if d := FromDegrees(-90).Degrees360(); !scalar.EqualWithinAbs(d, 270, 1e-9) {
		Te.Errorf("Degrees360 of -90 is %v", d)
	}
}

func TestSubtract(Te *testing.T) {
	degs := []float64{-179, -120, -45, 0, 1, 60, 135, 180}
	for _, x := range degs {
		for _, y := range degs {
			a, b := FromDegrees(x), FromDegrees(y)
			d1 := Subtract(a, b)
			d2 := Subtract(b, a)
			if !d1.IsValid() {
				Te.Fatalf("invalid difference for %v %v", x, y)
			}
			if d1.Radians() != d2.Radians() {
				Te.Errorf("not symmetric for %v %v: %v %v", x, y, d1, d2)
			}
			if d1.Radians() < 0 || d1.Radians() > math.Pi {
				Te.Errorf("difference out of [0, Pi] for %v %v: %v", x, y, d1.Radians())
			}
		}
	}
	if d := Subtract(FromDegrees(-179), FromDegrees(179)).Degrees(); !scalar.EqualWithinAbs(d, 2, 1e-9) {
		Te.Errorf("difference across the wraparound should be 2 degrees, got %v", d)
	}
	if !FromDegrees(10).Equal(FromDegrees(10+1e-10), 1e-9) {
		Te.Error("angles should be equal")
	}
}

func TestMeanDirection(Te *testing.T) {
	degs := []float64{170, -170, 175, -160, 179}
	angles := make([]Angle, 0, len(degs)+2)
	rads := make([]float64, 0, len(degs))
	for _, d := range degs {
		a := FromDegrees(d)
		angles = append(angles, a)
		rads = append(rads, a.Radians())
	}
	angles = append(angles, Invalid(), Angle{})
	S := NewSample(angles)
	if S.Len() != len(degs) {
		Te.Errorf("sample should drop invalid angles, has %d", S.Len())
	}
	mean := S.MeanDirection()
	ref := stat.CircularMean(rads, nil)
	if !mean.Equal(FromRadians(ref), 1e-9) {
		Te.Errorf("mean direction %v differs from the reference %v", mean, FromRadians(ref))
	}
	if r := S.MeanResultantLength(); r <= 0.9 || r > 1 {
		Te.Errorf("unexpected mean resultant length %v", r)
	}
	if v := S.CircularVariance(); v < 0 || v > 0.1 {
		Te.Errorf("unexpected circular variance %v", v)
	}
}

func TestDegenerateSamples(Te *testing.T) {
	if MeanDirection(nil).IsValid() {
		Te.Error("empty sample should have an invalid mean")
	}
	if MeanDirection([]Angle{Invalid(), Invalid()}).IsValid() {
		Te.Error("all-invalid sample should have an invalid mean")
	}
	opposite := []Angle{FromDegrees(0), FromDegrees(180)}
	if MeanDirection(opposite).IsValid() {
		Te.Error("opposite angles should cancel to an invalid mean")
	}
	S := NewSample(nil)
	if !math.IsNaN(S.MeanResultantLength()) || !math.IsNaN(S.CircularStandardDeviation()) {
		Te.Error("empty sample statistics should be NaN")
	}
	single := NewSample([]Angle{FromDegrees(42)})
	if !single.MeanDirection().Equal(FromDegrees(42), 1e-12) {
		Te.Errorf("mean of a single angle is %v", single.MeanDirection())
	}
	if sd := single.CircularStandardDeviation(); !scalar.EqualWithinAbs(sd, 0, 1e-6) {
		Te.Errorf("standard deviation of a single angle is %v", sd)
	}
}

func TestHistogram(Te *testing.T) {
	angles := []Angle{FromDegrees(-170), FromDegrees(-165), FromDegrees(10), FromDegrees(180), FromDegrees(95), Invalid()}
	H := NewSample(angles).Histogram(4)
	if H.Total() != 5 {
		Te.Fatalf("expected 5 angles, got %d", H.Total())
	}
	//180 is the same direction as -180, so it goes to the first bin.
	want := []float64{3, 0, 1, 1}
	if !floats.Equal(H.Bins(), want) {
		Te.Errorf("expected bins %v, got %v", want, H.Bins())
	}
	if !H.Mode().Equal(FromDegrees(-135), 1e-12) {
		Te.Errorf("unexpected mode %v", H.Mode())
	}
	H.Normalize()
	if !scalar.EqualWithinAbs(floats.Sum(H.Bins()), 1, 1e-12) {
		Te.Errorf("normalized histogram adds up to %v", floats.Sum(H.Bins()))
	}
	H.AddAngles(FromDegrees(-10))
	if !H.Normalized() || !scalar.EqualWithinAbs(H.Bins()[1], 1.0/6, 1e-12) {
		Te.Errorf("unexpected bins after adding to a normalized histogram %v", H.Bins())
	}
	G := NewHistogram(4)
	if G.Mode().IsValid() || !math.IsNaN(G.Distance(H)) {
		Te.Error("an empty histogram has no mode and no distance")
	}
	G.AddAngles(FromDegrees(0))
	if d := H.Distance(H); !scalar.EqualWithinAbs(d, 0, 1e-12) {
		Te.Errorf("distance to itself %v", d)
	}
	if d := G.Distance(NewSample([]Angle{FromDegrees(-90)}).Histogram(4)); !scalar.EqualWithinAbs(d, 2, 1e-12) {
		Te.Errorf("distance between disjoint histograms %v", d)
	}
}
