/*
 * v3_test.go, part of chemview.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestNewMatrix(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 3 {
		Te.Errorf("expected 3 vectors, got %d", A.NVecs())
	}
	View := A.VecView(1)
	View.Set(0, 0, 100)
	if A.At(1, 0) != 100 {
		Te.Errorf("changes in a view should reach the parent matrix")
	}
	_, err = NewMatrix([]float64{1, 2})
	if err == nil {
		Te.Fatalf("a slice not divisible by 3 should fail")
	}
	e := err.(*Error)
	e.Decorate("TestNewMatrix")
	if deco := e.Decorate(""); len(deco) != 2 || deco[1] != "TestNewMatrix" {
		Te.Errorf("decoration lost: %v", deco)
	}
	fmt.Println(A)
}

func TestVecOps(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 0, 0, -1, 0, 0, 0, 2, 0, 0, -2, 0})
	c := A.Centroid()
	for i := 0; i < 3; i++ {
		if math.Abs(c.At(0, i)) > appzero {
			Te.Fatalf("centroid should be the origin, got %v", c)
		}
	}
	row, _ := NewMatrix([]float64{10, 20, 30})
	B := Zeros(A.NVecs())
	B.AddVec(A, row)
	if B.At(0, 0) != 11 || B.At(2, 1) != 22 || B.At(3, 2) != 30 {
		Te.Errorf("AddVec gave %v", B)
	}
	if c := B.Centroid(); !mat.EqualApprox(c, row, appzero) {
		Te.Errorf("centroid of the shifted vectors should be %v, got %v", row, c)
	}
	B.SubVec(B, row)
	if !mat.EqualApprox(A, B, appzero) {
		Te.Errorf("SubVec should undo AddVec: %v", B)
	}
	if d := A.Dist(2, 3); math.Abs(d-4) > appzero {
		Te.Errorf("expected distance 4, got %f", d)
	}
	x, _ := NewMatrix([]float64{1, 0, 0})
	y, _ := NewMatrix([]float64{0, 1, 0})
	z := Zeros(1)
	z.Cross(x, y)
	if z.At(0, 2) != 1 || z.Norm2() != 1 {
		Te.Errorf("x cross y should be z, got %v", z)
	}
}

func TestEigen(Te *testing.T) {
	//Points spread mostly along y, then x, with no extent in z.
	A, _ := NewMatrix([]float64{2, 0, 0, -2, 0, 0, 0, 5, 0, 0, -5, 0})
	evecs, evals, err := EigenWrap(MomentTensor(A), -1)
	if err != nil {
		Te.Fatal(err)
	}
	if !(evals[0] <= evals[1] && evals[1] <= evals[2]) {
		Te.Errorf("eigenvalues not sorted: %v", evals)
	}
	if math.Abs(evals[0]) > 1e-9 {
		Te.Errorf("smallest eigenvalue should be 0, got %f", evals[0])
	}
	//The largest moment is along y.
	if math.Abs(math.Abs(evecs.At(2, 1))-1) > 1e-9 {
		Te.Errorf("main axis should be y, got %v", evecs)
	}
	if mat.Det(evecs) < 0 {
		Te.Errorf("eigenvector set should be right-handed")
	}
}
