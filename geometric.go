/*
 * geometric.go, part of gotorsion.
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

package torsion

import (
	"math"

	"github.com/rmera/gotorsion/circular"
	"gonum.org/v1/gonum/spatial/r3"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

// Method selects the formula used to obtain a dihedral.
type Method int

const (
	Atan2 Method = iota //the default.
	Acos                //reference method.
)

//Dihedral calculate the dihedral between the points a, b, c, d, where the first plane
//is defined by abc and the second by bcd. If any point is nil, the angle is invalid.
func Dihedral(a, b, c, d *r3.Vec) circular.Angle {
	if a == nil || b == nil || c == nil || d == nil {
		return circular.Invalid()
	}
	//bma=b minus a
	bma := r3.Sub(*b, *a)
	cmb := r3.Sub(*c, *b)
	dmc := r3.Sub(*d, *c)
	bmascaled := r3.Scale(r3.Norm(cmb), bma)
	v1 := r3.Cross(bma, cmb)
	v2 := r3.Cross(cmb, dmc)
	first := r3.Dot(bmascaled, v2)
	second := r3.Dot(v1, v2)
	return circular.FromRadians(math.Atan2(first, second))
}

//DihedralAcos obtains the same angle as Dihedral, using the arccosine of the angle between
//the normals of both planes, and the sign of the projection of one normal on the other's
//cross product with the central bond. The result is invalid if any point is nil, or if
//three consecutive points are collinear, so a plane is undefined.
func DihedralAcos(a, b, c, d *r3.Vec) circular.Angle {
	if a == nil || b == nil || c == nil || d == nil {
		return circular.Invalid()
	}
	d1 := r3.Sub(*b, *a)
	d2 := r3.Sub(*c, *b)
	d3 := r3.Sub(*d, *c)
	u1 := r3.Cross(d1, d2)
	u2 := r3.Cross(d2, d3)
	normproduct := math.Sqrt(r3.Dot(u1, u1) * r3.Dot(u2, u2))
	if normproduct <= appzero {
		return circular.Invalid()
	}
	ctor := r3.Dot(u1, u2) / normproduct
	//Take care of floating point math errors
	ctor = math.Max(-1, math.Min(1, ctor))
	torp := math.Acos(ctor)
	if r3.Dot(u1, r3.Cross(u2, d2)) < 0 {
		torp = -torp
	}
	return circular.FromRadians(torp)
}

//DihedralWith calculates the dihedral with the given method.
func DihedralWith(m Method, a, b, c, d *r3.Vec) circular.Angle {
	if m == Acos {
		return DihedralAcos(a, b, c, d)
	}
	return Dihedral(a, b, c, d)
}
