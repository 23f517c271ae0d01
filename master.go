/*
 * master.go, part of gotorsion.
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
	"log"
	"sync/atomic"
)

//masterSeq numbers masters in creation order. Averages use it to
//list their constituents in the same order no matter how they were given.
var masterSeq atomic.Int64

// Named is a master angle type: a logical angle, like the chi angle in nucleic acids,
// which is realized by one of several angle types depending on the residue.
type Named struct {
	moltype  MoleculeType
	variants []Type
	seq      int64
}

// NewNamed returns a master type with the given variants. Names are those of the first variant.
// It panics if no variants are given, or if they don't all belong to the molecule type mt.
func NewNamed(mt MoleculeType, variants ...Type) *Named {
	if len(variants) == 0 {
		panic(ErrNoVariants)
	}
	for _, v := range variants {
		if v.MoleculeType() != mt {
			panic(ErrMixedMolecule)
		}
	}
	vars := make([]Type, 0, len(variants))
	for _, v := range variants {
		if !containsType(vars, v) {
			vars = append(vars, v)
		}
	}
	return &Named{moltype: mt, variants: vars, seq: masterSeq.Add(1)}
}

func (M *Named) MoleculeType() MoleculeType { return M.moltype }
func (M *Named) LongDisplayName() string    { return M.variants[0].LongDisplayName() }
func (M *Named) ShortDisplayName() string   { return M.variants[0].ShortDisplayName() }
func (M *Named) ExportName() string         { return M.variants[0].ExportName() }
func (M *Named) String() string             { return M.ShortDisplayName() }
func (M *Named) order() int64               { return M.seq }

// AngleTypes returns a copy of the variants of M.
func (M *Named) AngleTypes() []Type {
	ret := make([]Type, len(M.variants))
	copy(ret, M.variants)
	return ret
}

// Recognizes returns true if t is one of the variants of M (by identity).
func (M *Named) Recognizes(t Type) bool {
	return containsType(M.variants, t)
}

// Resolve picks, among the types a residue declares, the one that realizes M.
// If the residue declares more than one variant, which means the residue definition
// is broken, the first one is used and the problem is logged.
func (M *Named) Resolve(declared []Type) (Type, bool) {
	var found Type
	matches := 0
	for _, t := range declared {
		if M.Recognizes(t) {
			if found == nil {
				found = t
			}
			matches++
		}
	}
	if matches > 1 {
		log.Printf("goTorsion: residue declares %d variants of %s, using %s", matches, M.ExportName(), found.LongDisplayName())
	}
	return found, found != nil
}

// Calculate resolves M for the residue i of seq and calculates it. If the residue
// doesn't declare any variant of M, an invalid value of the first variant is returned.
func (M *Named) Calculate(seq Sequence, i int) Value {
	return M.CalculateWith(Atan2, seq, i)
}

// CalculateWith is like Calculate, but the dihedrals are obtained with the given method.
func (M *Named) CalculateWith(m Method, seq Sequence, i int) Value {
	if i < 0 || i >= seq.Len() {
		return InvalidValue(M.variants[0])
	}
	t, ok := M.Resolve(seq.AngleTypes(i))
	if !ok {
		return InvalidValue(M.variants[0])
	}
	return calculateWith(m, t, seq, i)
}

func containsType(set []Type, t Type) bool {
	for _, v := range set {
		if v == t {
			return true
		}
	}
	return false
}

var _ Master = (*Named)(nil)
