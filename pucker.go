/*
 * pucker.go, part of gotorsion.
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
)

//sin(36)+sin(72), in the denominator of the Altona and Sundaralingam formula.
var puckerScale = 2 * (math.Sin(36*math.Pi/180) + math.Sin(72*math.Pi/180))

// PuckerType is the pseudophase angle of pucker of a five-membered ring, obtained from
// the five endocyclic torsions (nu0 to nu4).
// Based on Altona and Sundaralingam, J Am Chem Soc, 94, 8205, (1972).
type PuckerType struct {
	moltype MoleculeType
	label   Label
	nus     [5]*Leaf
}

// NewPucker returns a pucker type over the given ring torsions, in the order nu0, nu1, nu2, nu3, nu4.
func NewPucker(mt MoleculeType, label Label, nus [5]*Leaf) *PuckerType {
	return &PuckerType{moltype: mt, label: label, nus: nus}
}

func (P *PuckerType) Kind() Kind                 { return Pucker }
func (P *PuckerType) MoleculeType() MoleculeType { return P.moltype }
func (P *PuckerType) LongDisplayName() string    { return P.label.Symbol + " (pseudophase pucker)" }
func (P *PuckerType) ShortDisplayName() string   { return P.label.Symbol }
func (P *PuckerType) ExportName() string         { return P.label.Export }
func (P *PuckerType) String() string             { return P.LongDisplayName() }

// Calculate returns the pseudophase angle of pucker for residue i of seq. It is invalid
// unless all five ring torsions are valid.
func (P *PuckerType) Calculate(seq Sequence, i int) Value {
	return P.CalculateWith(Atan2, seq, i)
}

// CalculateWith is like Calculate, but obtains the ring torsions with the given method.
func (P *PuckerType) CalculateWith(m Method, seq Sequence, i int) Value {
	var nu [5]float64
	for k, t := range P.nus {
		v := t.CalculateWith(m, seq, i)
		if !v.IsValid() {
			return InvalidValue(P)
		}
		nu[k] = v.Angle().Radians()
	}
	return NewValue(P, PseudophasePucker(nu))
}

// PseudophasePucker returns the pseudophase angle of pucker given the values of the five
// endocyclic torsions in radians.
func PseudophasePucker(nu [5]float64) circular.Angle {
	y := (nu[4] + nu[1]) - (nu[3] + nu[0])
	x := nu[2] * puckerScale
	if math.Abs(x) <= appzero && math.Abs(y) <= appzero {
		return circular.Invalid()
	}
	return circular.FromRadians(math.Atan2(y, x))
}

var _ Type = (*PuckerType)(nil)
