/*
 * average.go, part of gotorsion.
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
	"sort"
	"strings"

	"github.com/rmera/gotorsion/circular"
)

// AverageType is an angle type whose value is the circular mean of the values of
// several master types. It is a Type, so it can be calculated for a residue, and
// also a Master, so averages can be built on top of averages.
type AverageType struct {
	moltype MoleculeType
	masters []Master
	display string
	export  string
	seq     int64
}

// NewAverage returns the average over the given masters. Its names are built from the
// names of the masters, listed in their creation order, so they don't depend on the
// order in which masters are given.
func NewAverage(mt MoleculeType, masters ...Master) *AverageType {
	A := &AverageType{moltype: mt, seq: masterSeq.Add(1)}
	A.masters = make([]Master, len(masters))
	copy(A.masters, masters)
	sorted := make([]Master, len(masters))
	copy(sorted, masters)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].order() < sorted[j].order() })
	A.display = "MCQ(" + strings.Join(uniqueNames(sorted, Master.ShortDisplayName), ", ") + ")"
	A.export = "MCQ_" + strings.Join(uniqueNames(sorted, Master.ExportName), "_")
	return A
}

// InvalidAverage returns an average with no constituents and placeholder names. Its values are
// always invalid. It is what the registry returns for molecule types it knows nothing about.
func InvalidAverage(mt MoleculeType) *AverageType {
	return &AverageType{moltype: mt, display: "invalid", export: "invalid", seq: masterSeq.Add(1)}
}

//uniqueNames returns the names given by f for each master, without repetitions,
//in order of first appearance.
func uniqueNames(masters []Master, f func(Master) string) []string {
	seen := make(map[string]bool, len(masters))
	names := make([]string, 0, len(masters))
	for _, m := range masters {
		n := f(m)
		if seen[n] {
			continue
		}
		seen[n] = true
		names = append(names, n)
	}
	return names
}

func (A *AverageType) Kind() Kind                 { return Average }
func (A *AverageType) MoleculeType() MoleculeType { return A.moltype }
func (A *AverageType) LongDisplayName() string    { return A.display }
func (A *AverageType) ShortDisplayName() string   { return A.display }
func (A *AverageType) ExportName() string         { return A.export }
func (A *AverageType) String() string             { return A.display }
func (A *AverageType) order() int64               { return A.seq }

// Masters returns a copy of the master types averaged by A.
func (A *AverageType) Masters() []Master {
	ret := make([]Master, len(A.masters))
	copy(ret, A.masters)
	return ret
}

// AngleTypes returns A itself, the only type an average recognizes.
func (A *AverageType) AngleTypes() []Type {
	return []Type{A}
}

// Recognizes returns true only if t is A.
func (A *AverageType) Recognizes(t Type) bool {
	return t == Type(A)
}

// Calculate returns the circular mean of the angles of the residue i of seq that
// belong to the masters of A. Each master contributes at most once, with the first
// type declared by the residue that it recognizes. Invalid angles are ignored.
func (A *AverageType) Calculate(seq Sequence, i int) Value {
	return A.CalculateWith(Atan2, seq, i)
}

// CalculateWith is like Calculate, but the dihedrals are obtained with the given method.
func (A *AverageType) CalculateWith(m Method, seq Sequence, i int) Value {
	if i < 0 || i >= seq.Len() || len(A.masters) == 0 {
		return InvalidValue(A)
	}
	used := make([]bool, len(A.masters))
	angles := make([]circular.Angle, 0, len(A.masters))
	for _, t := range seq.AngleTypes(i) {
		for k, master := range A.masters {
			if used[k] || !master.Recognizes(t) {
				continue
			}
			used[k] = true
			if v := calculateWith(m, t, seq, i); v.IsValid() {
				angles = append(angles, v.Angle())
			}
		}
	}
	return NewValue(A, circular.MeanDirection(angles))
}

// CalculateValues is like Calculate, but works on values already obtained. For each
// master of A, the first value of a type the master recognizes is used, if valid.
func (A *AverageType) CalculateValues(values []Value) Value {
	angles := make([]circular.Angle, 0, len(A.masters))
	for _, m := range A.masters {
		for _, v := range values {
			if v.Type() == nil || !m.Recognizes(v.Type()) {
				continue
			}
			if v.IsValid() {
				angles = append(angles, v.Angle())
			}
			break
		}
	}
	return NewValue(A, circular.MeanDirection(angles))
}

var _ Type = (*AverageType)(nil)
var _ Master = (*AverageType)(nil)
