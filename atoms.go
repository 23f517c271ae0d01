/*
 * atoms.go, part of gotorsion.
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
	"fmt"
	"strings"
)

// AtomName is the name of an atom as used in PDB files, with primes written as '.
type AtomName string

//Nucleic acid atoms
const (
	P   AtomName = "P"
	OP1 AtomName = "OP1"
	OP2 AtomName = "OP2"
	O5p AtomName = "O5'"
	C5p AtomName = "C5'"
	C4p AtomName = "C4'"
	O4p AtomName = "O4'"
	C3p AtomName = "C3'"
	O3p AtomName = "O3'"
	C2p AtomName = "C2'"
	O2p AtomName = "O2'"
	C1p AtomName = "C1'"
	N1  AtomName = "N1"
	C2  AtomName = "C2"
	N3  AtomName = "N3"
	C4  AtomName = "C4"
	C5  AtomName = "C5"
	C6  AtomName = "C6"
	N7  AtomName = "N7"
	C8  AtomName = "C8"
	N9  AtomName = "N9"
)

//Protein atoms
const (
	N   AtomName = "N"
	CA  AtomName = "CA"
	C   AtomName = "C"
	O   AtomName = "O"
	CB  AtomName = "CB"
	CG  AtomName = "CG"
	CG1 AtomName = "CG1"
	SG  AtomName = "SG"
	OG  AtomName = "OG"
	OG1 AtomName = "OG1"
	CD  AtomName = "CD"
	CD1 AtomName = "CD1"
	OD1 AtomName = "OD1"
	ND1 AtomName = "ND1"
	SD  AtomName = "SD"
	NE  AtomName = "NE"
	CE  AtomName = "CE"
	OE1 AtomName = "OE1"
	CZ  AtomName = "CZ"
	NZ  AtomName = "NZ"
	NH1 AtomName = "NH1"
)

// Quadruplet identifies the four atoms that define a dihedral. Each atom is given by its
// name and by the offset of its residue relative to the residue the angle is calculated for.
// Quadruplets are comparable, so they can be used as map keys.
type Quadruplet struct {
	Atoms   [4]AtomName
	Offsets [4]int
}

// Q returns a Quadruplet with the four atoms in the current residue.
func Q(a1, a2, a3, a4 AtomName) Quadruplet {
	return Quadruplet{Atoms: [4]AtomName{a1, a2, a3, a4}}
}

// Shift returns a copy of q with the given residue offsets.
func (q Quadruplet) Shift(o1, o2, o3, o4 int) Quadruplet {
	q.Offsets = [4]int{o1, o2, o3, o4}
	return q
}

// String returns the atoms joined by "-", with the residue offsets
// noted as (i-1), (i+1), etc. for atoms outside the current residue.
func (q Quadruplet) String() string {
	s := make([]string, 0, 4)
	for k, a := range q.Atoms {
		switch o := q.Offsets[k]; {
		case o == 0:
			s = append(s, string(a))
		case o > 0:
			s = append(s, fmt.Sprintf("%s(i+%d)", a, o))
		default:
			s = append(s, fmt.Sprintf("%s(i%d)", a, o))
		}
	}
	return strings.Join(s, "-")
}
