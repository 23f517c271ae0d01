/*
 * chemistry.go, part of gotorsion.
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
	"strings"

	torsion "github.com/rmera/gotorsion"
)

//Atoms that identify each kind of residue. Hydrogens are counted too, so
//structures that include them are detected with more confidence.
var (
	rnaBackbone = map[string]bool{
		"P": true, "OP1": true, "OP2": true, "O5'": true, "C5'": true, "C4'": true, "O4'": true,
		"C3'": true, "O3'": true, "C2'": true, "O2'": true, "C1'": true,
		"H5'": true, "H5''": true, "H4'": true, "H3'": true, "H2'": true, "HO2'": true, "H1'": true,
	}
	proteinBackbone = map[string]bool{"N": true, "H": true, "HN": true, "CA": true, "HA": true, "C": true, "O": true}
)

//minScore is the number of backbone atoms a residue must exceed to be
//assigned a molecule type.
const minScore = 3

// DetectMoleculeType returns the type of molecule the residue with the given atom names belongs
// to. Each type scores the number of its backbone atoms present. The best score wins if it is
// larger than 3. On a tie, RNA wins over protein.
func DetectMoleculeType(atomNames []string) torsion.MoleculeType {
	best := minScore
	ret := torsion.Unknown
	for _, c := range []struct {
		mt       torsion.MoleculeType
		backbone map[string]bool
	}{
		{torsion.RNA, rnaBackbone},
		{torsion.Protein, proteinBackbone},
	} {
		score := 0
		for _, name := range atomNames {
			if c.backbone[normalizeAtomName(name)] {
				score++
			}
		}
		if score > best {
			best = score
			ret = c.mt
		}
	}
	return ret
}

//Nucleotide names, including DNA and 3-letter names.
var (
	purines     = map[string]bool{"A": true, "G": true, "DA": true, "DG": true, "ADE": true, "GUA": true}
	pyrimidines = map[string]bool{"C": true, "U": true, "DC": true, "DT": true, "CYT": true, "URA": true, "URI": true, "THY": true}
)

//aminoAcidAliases maps force-field specific names to the standard ones.
var aminoAcidAliases = map[string]string{
	"HID": "HIS", "HIE": "HIS", "HIP": "HIS", "HSD": "HIS", "HSE": "HIS", "HSP": "HIS",
	"CYX": "CYS", "CYM": "CYS", "ASH": "ASP", "GLH": "GLU", "LYN": "LYS", "MSE": "MET",
}

// AngleTypes returns the angle types that a residue with the given name and molecule type
// supports, and false if the name is not known. Residues with unknown names still get the
// angle types of their backbone.
func AngleTypes(name string, mt torsion.MoleculeType) ([]torsion.Type, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	switch mt {
	case torsion.RNA:
		types := append(torsion.RNABackboneTypes(), torsion.RiboseTypes()...)
		switch {
		case purines[name]:
			return append(types, torsion.PurineTypes()...), true
		case pyrimidines[name]:
			return append(types, torsion.PyrimidineTypes()...), true
		}
		return types, false
	case torsion.Protein:
		types := torsion.ProteinBackboneTypes()
		if alias, ok := aminoAcidAliases[name]; ok {
			name = alias
		}
		chis, ok := torsion.SidechainTypes(name)
		return append(types, chis...), ok
	}
	return nil, false
}

//normalizeAtomName trims the name and uses ' for primes, as some old files use *.
func normalizeAtomName(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), "*", "'")
}
