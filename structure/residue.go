/*
 * residue.go, part of gotorsion.
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
	"fmt"
	"log"

	torsion "github.com/rmera/gotorsion"
	v3 "github.com/rmera/gotorsion/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Residue is a nucleotide or an amino acid with the coordinates of its atoms.
type Residue struct {
	Name    string
	Number  int
	atoms   []string
	index   map[string]int
	coords  *v3.Matrix
	moltype torsion.MoleculeType
	types   []torsion.Type
}

// NewResidue returns a residue with the given name, number, atom names and coordinates, the ith
// row of coords being the position of the ith atom. The molecule type is detected from the atom
// names, and the angle types from the residue name. It returns an error if the number of atoms and
// coordinates differ, or if an atom name is repeated.
func NewResidue(name string, number int, atoms []string, coords *v3.Matrix) (*Residue, error) {
	if coords == nil {
		return nil, torsion.NewError(string(torsion.ErrNilData), "structure.NewResidue")
	}
	if coords.NVecs() != len(atoms) {
		return nil, torsion.NewError(fmt.Sprintf("goTorsion: %d atoms but %d coordinates in residue %s %d", len(atoms), coords.NVecs(), name, number), "structure.NewResidue")
	}
	R := &Residue{Name: name, Number: number, coords: coords}
	R.atoms = make([]string, len(atoms))
	R.index = make(map[string]int, len(atoms))
	for k, a := range atoms {
		a = normalizeAtomName(a)
		if _, ok := R.index[a]; ok {
			return nil, torsion.NewError(fmt.Sprintf("goTorsion: Atom %s repeated in residue %s %d", a, name, number), "structure.NewResidue")
		}
		R.atoms[k] = a
		R.index[a] = k
	}
	R.moltype = DetectMoleculeType(R.atoms)
	var known bool
	R.types, known = AngleTypes(name, R.moltype)
	if !known && R.moltype != torsion.Unknown {
		log.Printf("goTorsion: Unknown %s residue %s %d, using only backbone angles", R.moltype, name, number)
	}
	return R, nil
}

// Atoms returns a copy of the atom names of the residue.
func (R *Residue) Atoms() []string {
	ret := make([]string, len(R.atoms))
	copy(ret, R.atoms)
	return ret
}

// Coords returns the coordinates of the residue. They should not be modified while
// angles are calculated.
func (R *Residue) Coords() *v3.Matrix { return R.coords }

func (R *Residue) MoleculeType() torsion.MoleculeType { return R.moltype }

// AngleTypes returns a copy of the angle types the residue supports.
func (R *Residue) AngleTypes() []torsion.Type {
	ret := make([]torsion.Type, len(R.types))
	copy(ret, R.types)
	return ret
}

// AtomPosition returns the coordinates of the atom with the given name, and false
// if the residue has no such atom.
func (R *Residue) AtomPosition(name string) (r3.Vec, bool) {
	k, ok := R.index[name]
	if !ok {
		return r3.Vec{}, false
	}
	return R.coords.Vec(k), true
}

func (R *Residue) String() string {
	return fmt.Sprintf("%s%d", R.Name, R.Number)
}
