/*
 * interfaces.go, part of gotorsion.
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
	"gonum.org/v1/gonum/spatial/r3"
)

// MoleculeType is the kind of polymer a residue, or an angle type, belongs to.
type MoleculeType int

const (
	Unknown MoleculeType = iota
	RNA
	Protein
)

func (M MoleculeType) String() string {
	switch M {
	case RNA:
		return "RNA"
	case Protein:
		return "Protein"
	default:
		return "Unknown"
	}
}

// Kind tags the concrete variant behind a Type.
type Kind int

const (
	AtomBased     Kind = iota //a dihedral between four real atoms
	PseudoTorsion             //a dihedral between proxy atoms spanning non-adjacent residues
	Pucker                    //a sugar pseudophase pucker derived from the ring torsions
	Average                   //a circular mean over several master types
)

func (K Kind) String() string {
	switch K {
	case AtomBased:
		return "atom-based"
	case PseudoTorsion:
		return "pseudo-torsion"
	case Pucker:
		return "pucker"
	case Average:
		return "average"
	}
	return "invalid"
}

// Sequence is an ordered set of residues, as needed to calculate torsion angles.
// Implementations must not be modified while a calculation is running on them.
// The structure package provides one.
type Sequence interface {
	//Len returns the number of residues in the sequence.
	Len() int

	//AtomPosition returns the coordinates of the atom named atom in
	//the residue with index residue, and false if there is no such atom.
	AtomPosition(residue int, atom AtomName) (r3.Vec, bool)

	//AngleTypes returns the angle types the residue with index residue supports.
	//These are the instances obtained from this package, as they are compared by identity.
	AngleTypes(residue int) []Type

	//MoleculeType returns the kind of molecule the residue belongs to.
	MoleculeType(residue int) MoleculeType
}

// Namer is implemented by everything that can be displayed or exported.
type Namer interface {
	LongDisplayName() string
	ShortDisplayName() string
	ExportName() string
}

// Type is a torsion angle type that can be calculated for a residue of a Sequence.
// The concrete variant is given by Kind: *Leaf for AtomBased and PseudoTorsion,
// *PuckerType for Pucker, and *AverageType for Average.
type Type interface {
	Namer
	Kind() Kind
	MoleculeType() MoleculeType
	//Calculate obtains the value of the angle for the residue with index i of seq.
	//Missing data produces an invalid value, never an error or a panic.
	Calculate(seq Sequence, i int) Value
}

// Master is a named logical angle which can be realized by one of several
// types, depending on the residue (i.e. the chi angle of purines and pyrimidines).
type Master interface {
	Namer
	MoleculeType() MoleculeType
	//AngleTypes returns the types this master recognizes.
	AngleTypes() []Type
	//Recognizes returns true if t is one of the types of the master.
	//Types are compared by identity.
	Recognizes(t Type) bool
	//Calculate obtains the value of the master for the residue with index i of seq.
	Calculate(seq Sequence, i int) Value
	order() int64
}
