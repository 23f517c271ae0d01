/*
 * bonds.go, part of gotorsion.
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

package structure

import (
	"math"
	"strings"
	"unicode"
)

// BondRange holds the shortest, longest and average length, in A, of a bond between two elements.
type BondRange struct {
	Min float64
	Max float64
	Avg float64
}

//bondTolerance widens the ranges in the table when checking whether two atoms are bonded.
const bondTolerance = 0.1

var noBond = BondRange{math.Inf(1), math.Inf(1), math.Inf(1)}

type elementPair [2]string

func pair(e1, e2 string) elementPair {
	e1, e2 = strings.ToUpper(e1), strings.ToUpper(e2)
	if e1 > e2 {
		e1, e2 = e2, e1
	}
	return elementPair{e1, e2}
}

//Bond lengths from the CHARMM36 force field parameters.
var bondLengths = map[elementPair]BondRange{
	pair("C", "C"): {1.320, 1.538, 1.463},
	pair("C", "H"): {1.070, 1.111, 1.098},
	pair("C", "N"): {1.300, 1.502, 1.396},
	pair("C", "O"): {1.205, 1.480, 1.359},
	pair("C", "S"): {1.816, 1.836, 1.820},
	pair("H", "N"): {0.976, 1.040, 1.005},
	pair("H", "O"): {0.960, 0.960, 0.960},
	pair("H", "S"): {1.325, 1.325, 1.325},
	pair("O", "P"): {1.480, 1.600, 1.553},
	pair("S", "S"): {2.029, 2.029, 2.029},
}

// BondLength returns the range of lengths of a bond between the elements e1 and e2,
// in any order. For pairs of elements that don't bond, all lengths are +Inf.
func BondLength(e1, e2 string) BondRange {
	if r, ok := bondLengths[pair(e1, e2)]; ok {
		return r
	}
	return noBond
}

// Bonded returns true if two atoms of the elements e1 and e2, at a distance dist (in A),
// are likely to be bonded.
func Bonded(e1, e2 string, dist float64) bool {
	r := BondLength(e1, e2)
	return dist >= r.Min-bondTolerance && dist <= r.Max+bondTolerance
}

// Element guesses the element of an atom from its PDB name: the first letter,
// skipping leading digits (as in 1H5').
func Element(atomName string) string {
	for _, r := range strings.TrimSpace(atomName) {
		if unicode.IsLetter(r) {
			return string(unicode.ToUpper(r))
		}
	}
	return ""
}
