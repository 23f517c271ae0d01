/*
 * leaf.go, part of gotorsion.
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
	"sync"

	"gonum.org/v1/gonum/spatial/r3"
)

// Label holds the names of an angle: a symbol to display (usually a Greek letter)
// and an ASCII name for export.
type Label struct {
	Symbol string
	Export string
}

// Leaf is a torsion angle defined by four atoms, possibly from neighboring residues.
// Leaves are interned: NewAtomBased and NewPseudoTorsion return the same *Leaf for
// the same parameters, so leaves can be compared by identity.
type Leaf struct {
	kind    Kind
	moltype MoleculeType
	label   Label
	atoms   Quadruplet
	long    string
}

type leafKey struct {
	kind    Kind
	moltype MoleculeType
	label   Label
	atoms   Quadruplet
}

//leafCache is the only mutable state shared by the package. Master types find
//the leaves declared by residues by comparing pointers, so two leaves with the same
//key must never coexist: lookups and insertions happen under the same lock.
var leafCache = struct {
	sync.Mutex
	m map[leafKey]*Leaf
}{m: make(map[leafKey]*Leaf)}

func intern(k leafKey) *Leaf {
	leafCache.Lock()
	defer leafCache.Unlock()
	if L, ok := leafCache.m[k]; ok {
		return L
	}
	L := &Leaf{
		kind:    k.kind,
		moltype: k.moltype,
		label:   k.label,
		atoms:   k.atoms,
		long:    fmt.Sprintf("%s (%s)", k.label.Symbol, k.atoms),
	}
	leafCache.m[k] = L
	return L
}

// NewAtomBased returns the atom-based torsion type of molecule type mt, named label
// and defined by the atoms in q. Instances are shared per kind, molecule type, label
// and atoms: the same atoms under two labels give two different types.
func NewAtomBased(mt MoleculeType, label Label, q Quadruplet) *Leaf {
	return intern(leafKey{AtomBased, mt, label, q})
}

// NewPseudoTorsion returns a pseudo-torsion type, i.e. one defined by proxy atoms
// that span non-adjacent residues. It is calculated exactly like an atom-based type.
func NewPseudoTorsion(mt MoleculeType, label Label, q Quadruplet) *Leaf {
	return intern(leafKey{PseudoTorsion, mt, label, q})
}

func (L *Leaf) Kind() Kind                 { return L.kind }
func (L *Leaf) MoleculeType() MoleculeType { return L.moltype }

// Atoms returns the atoms defining the angle.
func (L *Leaf) Atoms() Quadruplet { return L.atoms }

// LongDisplayName returns the symbol followed by the atoms that define the angle.
func (L *Leaf) LongDisplayName() string  { return L.long }
func (L *Leaf) ShortDisplayName() string { return L.label.Symbol }
func (L *Leaf) ExportName() string       { return L.label.Export }
func (L *Leaf) String() string           { return L.long }

//positions collects the coordinates of the four atoms for the residue i of seq.
func (L *Leaf) positions(seq Sequence, i int) (pos [4]r3.Vec, ok bool) {
	n := seq.Len()
	for k, name := range L.atoms.Atoms {
		j := i + L.atoms.Offsets[k]
		if j < 0 || j >= n {
			return pos, false
		}
		if pos[k], ok = seq.AtomPosition(j, name); !ok {
			return pos, false
		}
	}
	return pos, true
}

// Calculate returns the value of the angle for the residue i of seq. The value is
// invalid if any of the four atoms is in a residue outside seq, or is absent.
func (L *Leaf) Calculate(seq Sequence, i int) Value {
	return L.CalculateWith(Atan2, seq, i)
}

//CalculateWith is like Calculate, but uses the given method to obtain the dihedral.
func (L *Leaf) CalculateWith(m Method, seq Sequence, i int) Value {
	pos, ok := L.positions(seq, i)
	if !ok {
		return InvalidValue(L)
	}
	return NewValue(L, DihedralWith(m, &pos[0], &pos[1], &pos[2], &pos[3]))
}

//methodCalculator is implemented by types whose value can be obtained with
//either dihedral formula.
type methodCalculator interface {
	CalculateWith(m Method, seq Sequence, i int) Value
}

//calculateWith uses the method m if t supports it, and t.Calculate otherwise.
func calculateWith(m Method, t Type, seq Sequence, i int) Value {
	if mc, ok := t.(methodCalculator); ok {
		return mc.CalculateWith(m, seq, i)
	}
	return t.Calculate(seq, i)
}

var _ Type = (*Leaf)(nil)
