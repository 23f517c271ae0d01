/*
 * protein.go, part of gotorsion.
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

//Protein leaf types.
var (
	proteinPhi    = NewAtomBased(Protein, Label{"φ", "phi"}, Q(C, N, CA, C).Shift(-1, 0, 0, 0))
	proteinPsi    = NewAtomBased(Protein, Label{"ψ", "psi"}, Q(N, CA, C, N).Shift(0, 0, 0, 1))
	proteinOmega  = NewAtomBased(Protein, Label{"ω", "omega"}, Q(CA, C, N, CA).Shift(0, 0, 1, 1))
	proteinCalpha = NewPseudoTorsion(Protein, Label{"Cα", "calpha"}, Q(CA, CA, CA, CA).Shift(-1, 0, 1, 2))
)

var chiLabels = [5]Label{
	{"χ1", "chi1"},
	{"χ2", "chi2"},
	{"χ3", "chi3"},
	{"χ4", "chi4"},
	{"χ5", "chi5"},
}

//sidechainAtoms lists, for each amino acid, the atoms that define
//its chi angles, from chi1 on.
var sidechainAtoms = map[string][]Quadruplet{
	"ALA": nil,
	"GLY": nil,
	"ARG": {Q(N, CA, CB, CG), Q(CA, CB, CG, CD), Q(CB, CG, CD, NE), Q(CG, CD, NE, CZ), Q(CD, NE, CZ, NH1)},
	"ASN": {Q(N, CA, CB, CG), Q(CA, CB, CG, OD1)},
	"ASP": {Q(N, CA, CB, CG), Q(CA, CB, CG, OD1)},
	"CYS": {Q(N, CA, CB, SG)},
	"GLN": {Q(N, CA, CB, CG), Q(CA, CB, CG, CD), Q(CB, CG, CD, OE1)},
	"GLU": {Q(N, CA, CB, CG), Q(CA, CB, CG, CD), Q(CB, CG, CD, OE1)},
	"HIS": {Q(N, CA, CB, CG), Q(CA, CB, CG, ND1)},
	"ILE": {Q(N, CA, CB, CG1), Q(CA, CB, CG1, CD1)},
	"LEU": {Q(N, CA, CB, CG), Q(CA, CB, CG, CD1)},
	"LYS": {Q(N, CA, CB, CG), Q(CA, CB, CG, CD), Q(CB, CG, CD, CE), Q(CG, CD, CE, NZ)},
	"MET": {Q(N, CA, CB, CG), Q(CA, CB, CG, SD), Q(CB, CG, SD, CE)},
	"PHE": {Q(N, CA, CB, CG), Q(CA, CB, CG, CD1)},
	"PRO": {Q(N, CA, CB, CG), Q(CA, CB, CG, CD)},
	"SER": {Q(N, CA, CB, OG)},
	"THR": {Q(N, CA, CB, OG1)},
	"TRP": {Q(N, CA, CB, CG), Q(CA, CB, CG, CD1)},
	"TYR": {Q(N, CA, CB, CG), Q(CA, CB, CG, CD1)},
	"VAL": {Q(N, CA, CB, CG1)},
}

//aminoAcids fixes the order in which chi variants are registered.
var aminoAcids = []string{"ALA", "ARG", "ASN", "ASP", "CYS", "GLN", "GLU", "GLY", "HIS", "ILE",
	"LEU", "LYS", "MET", "PHE", "PRO", "SER", "THR", "TRP", "TYR", "VAL"}

// ChiType returns the chi angle number n (1 to 5) defined by the atoms in q.
// Amino acids sharing chi atoms share the same type.
func ChiType(n int, q Quadruplet) *Leaf {
	if n < 1 || n > len(chiLabels) {
		panic(ErrIndexOutOfRange)
	}
	return NewAtomBased(Protein, chiLabels[n-1], q)
}

//chiVariants returns the types of chi number n for all amino acids, without repetitions.
func chiVariants(n int) []Type {
	ret := make([]Type, 0, len(aminoAcids))
	for _, aa := range aminoAcids {
		atoms := sidechainAtoms[aa]
		if len(atoms) < n {
			continue
		}
		t := ChiType(n, atoms[n-1])
		if !containsType(ret, t) {
			ret = append(ret, t)
		}
	}
	return ret
}

// SidechainTypes returns the chi angle types of the amino acid with the given three-letter
// code, and false if the amino acid is unknown. Glycine and alanine have no chi angles.
func SidechainTypes(aminoAcid string) ([]Type, bool) {
	atoms, ok := sidechainAtoms[aminoAcid]
	if !ok {
		return nil, false
	}
	ret := make([]Type, 0, len(atoms))
	for k, q := range atoms {
		ret = append(ret, ChiType(k+1, q))
	}
	return ret, true
}

// ProteinBackboneTypes returns the angle types of every amino acid: phi, psi, omega
// and the C-alpha pseudo-torsion.
func ProteinBackboneTypes() []Type {
	return []Type{proteinPhi, proteinPsi, proteinOmega, proteinCalpha}
}

//Protein master types, in registry order.
var (
	ProteinPhi    = NewNamed(Protein, proteinPhi)
	ProteinPsi    = NewNamed(Protein, proteinPsi)
	ProteinOmega  = NewNamed(Protein, proteinOmega)
	ProteinCalpha = NewNamed(Protein, proteinCalpha)
	ProteinChi1   = NewNamed(Protein, chiVariants(1)...)
	ProteinChi2   = NewNamed(Protein, chiVariants(2)...)
	ProteinChi3   = NewNamed(Protein, chiVariants(3)...)
	ProteinChi4   = NewNamed(Protein, chiVariants(4)...)
	ProteinChi5   = NewNamed(Protein, chiVariants(5)...)
)

var (
	proteinMasters = []Master{ProteinPhi, ProteinPsi, ProteinOmega, ProteinCalpha,
		ProteinChi1, ProteinChi2, ProteinChi3, ProteinChi4, ProteinChi5}
	proteinMain = []Master{ProteinPhi, ProteinPsi, ProteinOmega}

	proteinAverageAll  = NewAverage(Protein, proteinMasters...)
	proteinAverageMain = NewAverage(Protein, proteinMain...)
)
