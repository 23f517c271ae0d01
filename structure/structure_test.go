/*
 * structure_test.go, part of gotorsion.
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

package structure

import (
	"math"
	"math/rand"
	"testing"

	torsion "github.com/rmera/gotorsion"
	v3 "github.com/rmera/gotorsion/v3"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	riboseAtoms  = []string{"P", "OP1", "OP2", "O5'", "C5'", "C4'", "O4'", "C3'", "O3'", "C2'", "O2'", "C1'"}
	guanineAtoms = []string{"N9", "C8", "N7", "C5", "C6", "O6", "N1", "C2", "N2", "N3", "C4"}
	uracilAtoms  = []string{"N1", "C2", "O2", "N3", "C4", "O4", "C5", "C6"}
	alanineAtoms = []string{"N", "CA", "C", "O", "CB"}
)

func randomCoords(r *rand.Rand, n int) *v3.Matrix {
	vecs := make([]r3.Vec, n)
	for i := range vecs {
		vecs[i] = r3.Vec{X: 10 * r.Float64(), Y: 10 * r.Float64(), Z: 10 * r.Float64()}
	}
	return v3.FromVecs(vecs)
}

func join(s ...[]string) []string {
	ret := make([]string, 0)
	for _, v := range s {
		ret = append(ret, v...)
	}
	return ret
}

func TestDetectMoleculeType(Te *testing.T) {
	tests := []struct {
		atoms []string
		want  torsion.MoleculeType
	}{
		{alanineAtoms, torsion.Protein},
		{[]string{"N", "CA", "C"}, torsion.Unknown},
		{riboseAtoms, torsion.RNA},
		{[]string{"O5*", "C5*", "C4*", "C3*"}, torsion.RNA},
		{[]string{"P", "OP1", "OP2", "O5'", "N", "CA", "C", "O"}, torsion.RNA}, //a tie
		{[]string{"P", "OP1", "OP2", "N", "CA", "C", "O"}, torsion.Protein},
		{[]string{"FE", "S1", "S2", "S3", "S4"}, torsion.Unknown},
		{nil, torsion.Unknown},
	}
	for _, t := range tests {
		if got := DetectMoleculeType(t.atoms); got != t.want {
			Te.Errorf("%v: expected %s, got %s", t.atoms, t.want, got)
		}
	}
}

func TestAngleTypes(Te *testing.T) {
	g, ok := AngleTypes("G", torsion.RNA)
	if !ok || g[len(g)-1] != torsion.PurineTypes()[0] {
		Te.Errorf("guanine should declare the purine chi")
	}
	for _, name := range []string{"C", "U", "DT", "URI"} {
		p, ok := AngleTypes(name, torsion.RNA)
		if !ok || p[len(p)-1] != torsion.PyrimidineTypes()[0] {
			Te.Errorf("%s should declare the pyrimidine chi", name)
		}
	}
	x, ok := AngleTypes("XYZ", torsion.RNA)
	if ok || len(x) != len(torsion.RNABackboneTypes())+len(torsion.RiboseTypes()) {
		Te.Errorf("unknown nucleotides should declare only backbone and ribose types")
	}
	hie, ok := AngleTypes("HIE", torsion.Protein)
	his, _ := torsion.SidechainTypes("HIS")
	if !ok || len(hie) != len(torsion.ProteinBackboneTypes())+len(his) {
		Te.Errorf("HIE should be an alias of HIS")
	}
	if t, ok := AngleTypes("G", torsion.Unknown); ok || t != nil {
		Te.Error("unknown molecules have no angle types")
	}
}

func TestNewResidue(Te *testing.T) {
	r := rand.New(rand.NewSource(1))
	res, err := NewResidue("ALA", 5, alanineAtoms, randomCoords(r, len(alanineAtoms)))
	if err != nil {
		Te.Fatal(err)
	}
	if res.MoleculeType() != torsion.Protein || res.String() != "ALA5" {
		Te.Errorf("unexpected residue %s %s", res, res.MoleculeType())
	}
	if _, ok := res.AtomPosition("CB"); !ok {
		Te.Error("CB not found")
	}
	if _, ok := res.AtomPosition("CG"); ok {
		Te.Error("alanine has no CG")
	}
	pos, _ := res.AtomPosition("CA")
	if pos != res.Coords().Vec(1) {
		Te.Errorf("CA is at %v, not %v", pos, res.Coords().Vec(1))
	}
	star, err := NewResidue("U", 1, []string{"O4*", "C1*"}, randomCoords(r, 2))
	if err != nil {
		Te.Fatal(err)
	}
	if _, ok := star.AtomPosition("C1'"); !ok {
		Te.Error("atom names with * were not normalized")
	}
	if _, err := NewResidue("ALA", 1, alanineAtoms, randomCoords(r, 3)); err == nil {
		Te.Error("no error for a count mismatch")
	}
	if _, err := NewResidue("U", 1, []string{"C1'", "C1*"}, randomCoords(r, 2)); err == nil {
		Te.Error("no error for a repeated atom")
	}
	if _, err := NewResidue("U", 1, []string{"C1'"}, nil); err == nil {
		Te.Error("no error for nil coordinates")
	}
}

func TestBonds(Te *testing.T) {
	elements := []string{"C", "H", "N", "O", "P", "S", "FE"}
	for _, a := range elements {
		for _, b := range elements {
			if BondLength(a, b) != BondLength(b, a) {
				Te.Errorf("bond %s-%s is not symmetric", a, b)
			}
		}
	}
	if r := BondLength("p", "O"); r.Avg != 1.553 || r.Min != 1.480 {
		Te.Errorf("unexpected O-P bond %v", r)
	}
	if r := BondLength("P", "P"); !math.IsInf(r.Min, 1) || Bonded("P", "P", 2) {
		Te.Errorf("there should be no P-P bond: %v", r)
	}
	if !Bonded("O", "P", 1.6) || Bonded("O", "P", 2.5) {
		Te.Error("wrong O-P bond check")
	}
	for name, want := range map[string]string{"1H5'": "H", "OP1": "O", " CA ": "C", "O3'": "O", "": ""} {
		if got := Element(name); got != want {
			Te.Errorf("element of %q: expected %q, got %q", name, want, got)
		}
	}
}

//twoNucleotides returns the atoms of a G and an U, and coordinates where the O3' of
//the first is d A away from the P of the second.
func twoNucleotides(r *rand.Rand, d float64) ([]Atom, *v3.Matrix) {
	atoms := make([]Atom, 0)
	for _, n := range join(riboseAtoms, guanineAtoms) {
		atoms = append(atoms, Atom{n, "G", 1})
	}
	for _, n := range join(riboseAtoms, uracilAtoms) {
		atoms = append(atoms, Atom{n, "U", 2})
	}
	coords := randomCoords(r, len(atoms))
	var o3, p int
	for k, a := range atoms {
		if a.Name == "O3'" && a.ResID == 1 {
			o3 = k
		}
		if a.Name == "P" && a.ResID == 2 {
			p = k
		}
	}
	coords.SetVec(p, r3.Add(coords.Vec(o3), r3.Vec{X: d}))
	return atoms, coords
}

func TestChainFromAtoms(Te *testing.T) {
	r := rand.New(rand.NewSource(3))
	atoms, coords := twoNucleotides(r, 1.6)
	C, err := ChainFromAtoms(atoms, coords)
	if err != nil {
		Te.Fatal(err)
	}
	if C.Len() != 2 || C.Residue(1).Name != "U" || len(C.Residue(0).Atoms()) != len(riboseAtoms)+len(guanineAtoms) {
		Te.Fatalf("unexpected chain of %d residues", C.Len())
	}
	p, _ := C.AtomPosition(1, torsion.P)
	if p != coords.Vec(len(riboseAtoms)+len(guanineAtoms)) {
		Te.Error("coordinates were not copied in order")
	}
	if !C.Connected(0) || C.Connected(1) || len(C.Gaps()) != 0 {
		Te.Error("the residues should be connected")
	}
	if v := torsion.RNAChi.Calculate(C, 0); v.Type() != torsion.PurineTypes()[0] || !v.IsValid() {
		Te.Errorf("wrong chi for G: %v", v)
	}
	if v := torsion.RNAChi.Calculate(C, 1); v.Type() != torsion.PyrimidineTypes()[0] || !v.IsValid() {
		Te.Errorf("wrong chi for U: %v", v)
	}
	types := C.AngleTypes(0)
	types[0] = nil
	if C.AngleTypes(0)[0] == nil || C.Residue(0).AngleTypes()[0] == nil {
		Te.Error("AngleTypes returned the residue's own slice")
	}
	if !torsion.RNAEpsilon.Calculate(C, 0).IsValid() || torsion.RNAEpsilon.Calculate(C, 1).IsValid() {
		Te.Error("epsilon should be valid only for the first residue")
	}
	vals := torsion.CalculateChain(C, nil)
	if len(vals) != 2 || len(vals[1]) != len(torsion.Masters(torsion.RNA)) {
		Te.Errorf("unexpected values %v", vals)
	}
	d, err := torsion.Compare(C, C, nil)
	if err != nil || !scalar.EqualWithinAbs(d.Radians(), 0, 1e-12) {
		Te.Errorf("a chain should be identical to itself: %v (%v)", d, err)
	}

	atoms, coords = twoNucleotides(r, 3.5)
	C, err = ChainFromAtoms(atoms, coords)
	if err != nil {
		Te.Fatal(err)
	}
	if C.Connected(0) || len(C.Gaps()) != 1 {
		Te.Error("the residues should not be connected")
	}
	if _, err := ChainFromAtoms(atoms, randomCoords(r, 3)); err == nil {
		Te.Error("no error for a count mismatch")
	}
	atoms[1].Name = "P"
	if _, err := ChainFromAtoms(atoms, coords); err == nil {
		Te.Error("no error for a repeated atom")
	}
}

func TestNewChain(Te *testing.T) {
	r := rand.New(rand.NewSource(4))
	a, _ := NewResidue("ALA", 1, alanineAtoms, randomCoords(r, len(alanineAtoms)))
	b, _ := NewResidue("ALA", 2, alanineAtoms, randomCoords(r, len(alanineAtoms)))
	c, _ := b.AtomPosition("N")
	a.Coords().SetVec(2, r3.Sub(c, r3.Vec{X: 1.33}))
	res := []*Residue{a, b}
	C := NewChain(res...)
	res[0] = nil
	if C.Residue(0) != a || C.MoleculeType(1) != torsion.Protein {
		Te.Error("NewChain should copy the residue list")
	}
	if !C.Connected(0) || C.Connected(-1) {
		Te.Error("the C-N peptide bond was not found")
	}
	if !torsion.ProteinPhi.Calculate(C, 1).IsValid() || torsion.ProteinPhi.Calculate(C, 0).IsValid() {
		Te.Error("phi should be valid only for the second residue")
	}
	rama, index, err := torsion.RamaCalc(C)
	if err != nil || len(rama) != 0 || len(index) != 0 {
		Te.Errorf("no residue of a dipeptide has both phi and psi: %v %v", rama, index)
	}
}
