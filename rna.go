/*
 * rna.go, part of gotorsion.
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

//RNA leaf types.
var (
	rnaAlpha   = NewAtomBased(RNA, Label{"α", "alpha"}, Q(O3p, P, O5p, C5p).Shift(-1, 0, 0, 0))
	rnaBeta    = NewAtomBased(RNA, Label{"β", "beta"}, Q(P, O5p, C5p, C4p))
	rnaGamma   = NewAtomBased(RNA, Label{"γ", "gamma"}, Q(O5p, C5p, C4p, C3p))
	rnaDelta   = NewAtomBased(RNA, Label{"δ", "delta"}, Q(C5p, C4p, C3p, O3p))
	rnaEpsilon = NewAtomBased(RNA, Label{"ε", "epsilon"}, Q(C4p, C3p, O3p, P).Shift(0, 0, 0, 1))
	rnaZeta    = NewAtomBased(RNA, Label{"ζ", "zeta"}, Q(C3p, O3p, P, O5p).Shift(0, 0, 1, 1))

	rnaNu0 = NewAtomBased(RNA, Label{"ν0", "nu0"}, Q(C4p, O4p, C1p, C2p))
	rnaNu1 = NewAtomBased(RNA, Label{"ν1", "nu1"}, Q(O4p, C1p, C2p, C3p))
	rnaNu2 = NewAtomBased(RNA, Label{"ν2", "nu2"}, Q(C1p, C2p, C3p, C4p))
	rnaNu3 = NewAtomBased(RNA, Label{"ν3", "nu3"}, Q(C2p, C3p, C4p, O4p))
	rnaNu4 = NewAtomBased(RNA, Label{"ν4", "nu4"}, Q(C3p, C4p, O4p, C1p))

	rnaEta       = NewPseudoTorsion(RNA, Label{"η", "eta"}, Q(C4p, P, C4p, P).Shift(-1, 0, 0, 1))
	rnaTheta     = NewPseudoTorsion(RNA, Label{"θ", "theta"}, Q(P, C4p, P, C4p).Shift(0, 0, 1, 1))
	rnaEtaPrim   = NewPseudoTorsion(RNA, Label{"η'", "eta-prim"}, Q(C1p, P, C1p, P).Shift(-1, 0, 0, 1))
	rnaThetaPrim = NewPseudoTorsion(RNA, Label{"θ'", "theta-prim"}, Q(P, C1p, P, C1p).Shift(0, 0, 1, 1))

	//Every pyrimidine uses the same chi atoms, whatever the base.
	rnaChiPurine     = NewAtomBased(RNA, Label{"χ", "chi"}, Q(O4p, C1p, N9, C4))
	rnaChiPyrimidine = NewAtomBased(RNA, Label{"χ", "chi"}, Q(O4p, C1p, N1, C2))

	rnaPucker = NewPucker(RNA, Label{"P", "pseudophase-pucker"}, [5]*Leaf{rnaNu0, rnaNu1, rnaNu2, rnaNu3, rnaNu4})
)

//RNA master types, in registry order.
var (
	RNAAlpha     = NewNamed(RNA, rnaAlpha)
	RNABeta      = NewNamed(RNA, rnaBeta)
	RNAGamma     = NewNamed(RNA, rnaGamma)
	RNADelta     = NewNamed(RNA, rnaDelta)
	RNAEpsilon   = NewNamed(RNA, rnaEpsilon)
	RNAZeta      = NewNamed(RNA, rnaZeta)
	RNANu0       = NewNamed(RNA, rnaNu0)
	RNANu1       = NewNamed(RNA, rnaNu1)
	RNANu2       = NewNamed(RNA, rnaNu2)
	RNANu3       = NewNamed(RNA, rnaNu3)
	RNANu4       = NewNamed(RNA, rnaNu4)
	RNAEta       = NewNamed(RNA, rnaEta)
	RNATheta     = NewNamed(RNA, rnaTheta)
	RNAEtaPrim   = NewNamed(RNA, rnaEtaPrim)
	RNAThetaPrim = NewNamed(RNA, rnaThetaPrim)
	RNAChi       = NewNamed(RNA, rnaChiPurine, rnaChiPyrimidine)
	RNAPucker    = NewNamed(RNA, rnaPucker)
)

var (
	rnaMasters = []Master{RNAAlpha, RNABeta, RNAGamma, RNADelta, RNAEpsilon, RNAZeta,
		RNANu0, RNANu1, RNANu2, RNANu3, RNANu4, RNAEta, RNATheta, RNAEtaPrim, RNAThetaPrim,
		RNAChi, RNAPucker}
	rnaMain = []Master{RNAAlpha, RNABeta, RNAGamma, RNADelta, RNAEpsilon, RNAZeta, RNAChi, RNAPucker}

	rnaAverageAll  = NewAverage(RNA, rnaMasters...)
	rnaAverageMain = NewAverage(RNA, rnaMain...)
)

// RNABackboneTypes returns the angle types every nucleotide with a phosphate backbone
// supports: alpha to zeta and the four pseudo-torsions.
func RNABackboneTypes() []Type {
	return []Type{rnaAlpha, rnaBeta, rnaGamma, rnaDelta, rnaEpsilon, rnaZeta,
		rnaEta, rnaTheta, rnaEtaPrim, rnaThetaPrim}
}

// RiboseTypes returns the angle types of the sugar ring: nu0 to nu4 and the pseudophase pucker.
func RiboseTypes() []Type {
	return []Type{rnaNu0, rnaNu1, rnaNu2, rnaNu3, rnaNu4, rnaPucker}
}

// PurineTypes returns the angle types supported by purine bases (the purine chi).
func PurineTypes() []Type {
	return []Type{rnaChiPurine}
}

// PyrimidineTypes returns the angle types supported by pyrimidine bases (the pyrimidine chi).
func PyrimidineTypes() []Type {
	return []Type{rnaChiPyrimidine}
}
