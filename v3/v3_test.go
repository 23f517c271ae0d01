/*
 * v3_test.go, part of gotorsion.
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

package v3

import (
	"fmt"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestGeo(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 3 {
		Te.Errorf("expected 3 vectors, got %d", A.NVecs())
	}
	A.SetVec(1, r3.Vec{X: 100, Y: 5, Z: 6})
	if A.At(1, 0) != 100 {
		Te.Errorf("SetVec changes should be reflected in the matrix\n%v", A)
	}
	if v := A.Vec(2); v != (r3.Vec{X: 7, Y: 8, Z: 9}) {
		Te.Errorf("unexpected vector %v", v)
	}
	fmt.Println("Matrix\n", A)
}

func TestNewMatrixError(Te *testing.T) {
	_, err := NewMatrix([]float64{1, 2, 3, 4})
	if err == nil {
		Te.Fatal("no error for a slice not divisible by 3")
	}
	e, ok := err.(*Error)
	if !ok || !e.Critical() {
		Te.Fatalf("unexpected error %v (%T)", err, err)
	}
	e.Decorate("TestNewMatrixError")
	if d := e.Decorate(""); len(d) != 2 || d[1] != "TestNewMatrixError" {
		Te.Errorf("decorations were lost: %v", d)
	}
}

func TestSomeVecs(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	B := Zeros(3)
	cind := []int{1, 3, 5}
	err = B.SomeVecsSafe(A, cind)
	if err != nil {
		Te.Fatal(err)
	}
	for key, val := range cind {
		if B.Vec(key) != A.Vec(val) {
			Te.Errorf("vector %d of the selection differs from vector %d of the original", key, val)
		}
	}
	before := mat.DenseCopyOf(B.Dense)
	err = B.SomeVecsSafe(A, []int{0, 1, 8})
	if err == nil {
		Te.Fatal("no error for an out of range selection")
	}
	if !mat.Equal(before, B.Dense) {
		Te.Errorf("a failed selection modified the receiver\n%v", B)
	}
	if _, ok := err.(*Error); !ok {
		Te.Errorf("unexpected error type %T", err)
	}
	if err = B.SomeVecsSafe(A, []int{0, 1}); err == nil {
		Te.Error("no error for a selection of the wrong size")
	}
}

func TestVecs(Te *testing.T) {
	vecs := []r3.Vec{{X: 1}, {Y: 1}, {Z: 1}}
	F := FromVecs(vecs)
	for i, v := range vecs {
		if F.Vec(i) != v {
			Te.Errorf("vector %d: expected %v, got %v", i, v, F.Vec(i))
		}
	}
	defer func() {
		if r := recover(); r != ErrNotEnoughElements {
			Te.Errorf("expected a panic for an empty set of vectors, got %v", r)
		}
	}()
	FromVecs(nil)
}
