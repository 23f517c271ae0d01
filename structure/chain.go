/*
 * chain.go, part of gotorsion.
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

	torsion "github.com/rmera/gotorsion"
	v3 "github.com/rmera/gotorsion/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Chain is an ordered set of residues. It implements torsion.Sequence.
type Chain struct {
	residues []*Residue
}

// NewChain returns a chain with the given residues, in order.
func NewChain(residues ...*Residue) *Chain {
	C := &Chain{residues: make([]*Residue, len(residues))}
	copy(C.residues, residues)
	return C
}

// Atom is the minimal information about an atom needed to build a chain.
type Atom struct {
	Name    string
	ResName string
	ResID   int
}

// ChainFromAtoms builds a chain from a list of atoms and their coordinates (the
// ith row of coords for the ith atom). Consecutive atoms with the same residue
// ID and name form a residue.
func ChainFromAtoms(atoms []Atom, coords *v3.Matrix) (*Chain, error) {
	if coords == nil {
		return nil, torsion.NewError(string(torsion.ErrNilData), "structure.ChainFromAtoms")
	}
	if coords.NVecs() != len(atoms) {
		return nil, torsion.NewError(fmt.Sprintf("goTorsion: %d atoms but %d coordinates", len(atoms), coords.NVecs()), "structure.ChainFromAtoms")
	}
	C := new(Chain)
	for start := 0; start < len(atoms); {
		end := start + 1
		for end < len(atoms) && atoms[end].ResID == atoms[start].ResID && atoms[end].ResName == atoms[start].ResName {
			end++
		}
		names := make([]string, 0, end-start)
		indexes := make([]int, 0, end-start)
		for k := start; k < end; k++ {
			names = append(names, atoms[k].Name)
			indexes = append(indexes, k)
		}
		rescoords := v3.Zeros(len(indexes))
		if err := rescoords.SomeVecsSafe(coords, indexes); err != nil {
			return nil, errDecorate(err, "structure.ChainFromAtoms")
		}
		R, err := NewResidue(atoms[start].ResName, atoms[start].ResID, names, rescoords)
		if err != nil {
			return nil, errDecorate(err, "structure.ChainFromAtoms")
		}
		C.residues = append(C.residues, R)
		start = end
	}
	return C, nil
}

// Residue returns the ith residue of the chain.
func (C *Chain) Residue(i int) *Residue { return C.residues[i] }

func (C *Chain) Len() int { return len(C.residues) }

func (C *Chain) AtomPosition(i int, atom torsion.AtomName) (r3.Vec, bool) {
	return C.residues[i].AtomPosition(string(atom))
}

func (C *Chain) AngleTypes(i int) []torsion.Type         { return C.residues[i].AngleTypes() }
func (C *Chain) MoleculeType(i int) torsion.MoleculeType { return C.residues[i].moltype }

//Atoms that link a residue with the next one, for each molecule type.
var links = map[torsion.MoleculeType][2]torsion.AtomName{
	torsion.RNA:     {torsion.O3p, torsion.P},
	torsion.Protein: {torsion.C, torsion.N},
}

// Connected returns true if the residue i is bonded to the residue i+1, that is, if
// both have the same molecule type and the O3'-P (RNA) or C-N (protein) distance
// is a plausible bond length.
func (C *Chain) Connected(i int) bool {
	if i < 0 || i+1 >= len(C.residues) {
		return false
	}
	mt := C.residues[i].moltype
	link, ok := links[mt]
	if !ok || C.residues[i+1].moltype != mt {
		return false
	}
	a, ok1 := C.AtomPosition(i, link[0])
	b, ok2 := C.AtomPosition(i+1, link[1])
	if !ok1 || !ok2 {
		return false
	}
	return Bonded(Element(string(link[0])), Element(string(link[1])), r3.Norm(r3.Sub(a, b)))
}

// Gaps returns the indexes i of the residues that are not connected to the residue
// i+1, excluding the last residue.
func (C *Chain) Gaps() []int {
	ret := make([]int, 0)
	for i := 0; i+1 < len(C.residues); i++ {
		if !C.Connected(i) {
			ret = append(ret, i)
		}
	}
	return ret
}

//errDecorate decorates err with the caller's name, if it supports it.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(torsion.Error); ok {
		err2.Decorate(caller)
	}
	return err
}

var _ torsion.Sequence = (*Chain)(nil)
