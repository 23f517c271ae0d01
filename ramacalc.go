/*
 * ramacalc.go, part of gotorsion.
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

// RamaCalc obtains the values for the phi and psi dihedrals of the protein residues of seq,
// in *degrees*. It returns a slice of 2-element slices, one for the phi the next for the psi
// dihedral, and a slice with the index in seq of the residue each pair belongs to.
// Residues for which either angle is undefined (i.e. chain ends) are skipped.
func RamaCalc(seq Sequence) ([][]float64, []int, error) {
	if seq == nil {
		return nil, nil, NewError(string(ErrNilData), "RamaCalc")
	}
	Rama := make([][]float64, 0, seq.Len())
	index := make([]int, 0, seq.Len())
	for i := 0; i < seq.Len(); i++ {
		if seq.MoleculeType(i) != Protein {
			continue
		}
		phi := ProteinPhi.Calculate(seq, i)
		psi := ProteinPsi.Calculate(seq, i)
		if !phi.IsValid() || !psi.IsValid() {
			continue
		}
		Rama = append(Rama, []float64{phi.Angle().Degrees(), psi.Angle().Degrees()})
		index = append(index, i)
	}
	return Rama, index, nil
}

// RamaResidueFilter filters the output of RamaCalc by residue name. names gives the name of
// each residue of the original sequence. Pairs for residues whose names are in filterdata are kept
// if shouldBePresent is true, and discarded otherwise. It returns the filtered pairs and their indexes.
func RamaResidueFilter(rama [][]float64, index []int, names []string, filterdata []string, shouldBePresent bool) ([][]float64, []int) {
	RetList := make([][]float64, 0, len(rama))
	RetIndex := make([]int, 0, len(rama))
	for key, val := range rama {
		isPresent := isInString(filterdata, names[index[key]])
		if isPresent == shouldBePresent {
			RetList = append(RetList, val)
			RetIndex = append(RetIndex, index[key])
		}
	}
	return RetList, RetIndex
}

//isInString returns true if test is in container, false otherwise.
func isInString(container []string, test string) bool {
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}
