/*
 * histogram.go, part of gotorsion.
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
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Histogram is the distribution of a set of angles over bins of equal width, in degrees,
// from -180 to 180. Invalid angles are not counted.
type Histogram struct {
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

// NewHistogram returns an empty histogram with the given number of bins.
// It panics if bins is smaller than 1.
func NewHistogram(bins int) *Histogram {
	if bins < 1 {
		panic("goTorsion/circular: A histogram needs at least one bin")
	}
	H := new(Histogram)
	H.dividers = floats.Span(make([]float64, bins+1), -180, 180)
	H.histo = make([]float64, bins)
	return H
}

// Histogram returns the distribution of the angles in S over the given number of bins.
func (S *Sample) Histogram(bins int) *Histogram {
	H := NewHistogram(bins)
	H.AddAngles(S.angles...)
	return H
}

//binValue returns the value in degrees used to bin a, which is in [-180, 180)
//as the last divider is excluded from the histogram.
func binValue(a Angle) float64 {
	if a.Radians() >= math.Pi {
		return -180
	}
	return a.Degrees()
}

// AddAngles adds the given angles to the histogram. Invalid ones are ignored.
func (H *Histogram) AddAngles(angles ...Angle) {
	var norma bool
	if H.normalized {
		norma = true
		H.UnNormalize()
	}
	raw := make([]float64, 0, len(angles))
	for _, a := range angles {
		if a.IsValid() {
			raw = append(raw, binValue(a))
		}
	}
	sort.Float64s(raw)
	//stat.Histogram wants the destination zeroed, so the counts are added afterwards.
	counts := stat.Histogram(nil, H.dividers, raw, nil)
	floats.Add(H.histo, counts)
	H.total += len(raw)
	//if it was normalized, we should return it to that state
	if norma {
		H.Normalize()
	}
}

// Total returns the number of angles in the histogram.
func (H *Histogram) Total() int { return H.total }

// Normalized returns true if the histogram is normalized.
func (H *Histogram) Normalized() bool { return H.normalized }

// Normalize divides every bin by the number of angles.
func (H *Histogram) Normalize() { H.normaunnorma(true) }

// UnNormalize turns the histogram back into counts.
func (H *Histogram) UnNormalize() { H.normaunnorma(false) }

func (H *Histogram) normaunnorma(normalize bool) {
	if H.total <= 0 || H.normalized == normalize {
		return
	}
	n := float64(H.total)
	H.normalized = false
	if normalize {
		n = 1 / float64(H.total)
		H.normalized = true
	}
	floats.Scale(n, H.histo)
}

// Dividers returns a copy of the bin limits, in degrees.
func (H *Histogram) Dividers() []float64 {
	return floats.ScaleTo(make([]float64, len(H.dividers)), 1, H.dividers)
}

// Bins returns a copy of the bin values.
func (H *Histogram) Bins() []float64 {
	return floats.ScaleTo(make([]float64, len(H.histo)), 1, H.histo)
}

// Mode returns the center of the most populated bin. It is invalid if the histogram is empty.
func (H *Histogram) Mode() Angle {
	if H.total == 0 {
		return Invalid()
	}
	i := floats.MaxIdx(H.histo)
	return FromDegrees((H.dividers[i] + H.dividers[i+1]) / 2)
}

// Distance returns the sum of the absolute differences between the normalized bins
// of H and G, from 0 for equal distributions to 2 for disjoint ones. It is NaN if
// either histogram is empty or if they have different bins.
func (H *Histogram) Distance(G *Histogram) float64 {
	if H.total == 0 || G.total == 0 || !floats.Equal(H.dividers, G.dividers) {
		return math.NaN()
	}
	h := H.Bins()
	if !H.normalized {
		floats.Scale(1/float64(H.total), h)
	}
	g := G.Bins()
	if !G.normalized {
		floats.Scale(1/float64(G.total), g)
	}
	floats.Sub(h, g)
	return floats.Norm(h, 1)
}

// String prints the limits of each bin, and its value, in 2 lines.
func (H *Histogram) String() string {
	d := make([]string, 0, len(H.histo))
	h := make([]string, 0, len(H.histo))
	for i, v := range H.histo {
		d = append(d, fmt.Sprintf("%4.0f-%4.0f", H.dividers[i], H.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return fmt.Sprintf("Total: %d, Normalized: %v\n%s\n%s", H.total, H.normalized, strings.Join(d, " "), strings.Join(h, " "))
}
