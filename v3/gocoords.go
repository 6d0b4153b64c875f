/*
 * gocoords.go, part of chemview.
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
	"strings"

	"gonum.org/v1/gonum/mat"
)

//AddVec adds the vector vec to each vector of the matrix A, putting the result
//on the receiver. Panics if matrices are mismatched.
func (F *Matrix) AddVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	rr, rc := vec.Dims()
	fr, fc := F.Dims()
	if ac != rc || rr != 1 || ac != fc || ar != fr {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		j := A.VecView(i)
		f := F.VecView(i)
		f.Dense.Add(j.Dense, vec.Dense)
	}
}

//SubVec subtracts the vector vec to each vector of the matrix A, putting
//the result on the receiver. Panics if matrices are mismatched.
func (F *Matrix) SubVec(A, vec *Matrix) {
	neg := Zeros(1)
	neg.Dense.Scale(-1, vec.Dense)
	F.AddVec(A, neg)
}

//Centroid returns the geometric center of the vectors in F.
func (F *Matrix) Centroid() *Matrix {
	n := F.NVecs()
	c := Zeros(1)
	if n == 0 {
		return c
	}
	for i := 0; i < n; i++ {
		c.Dense.Add(c.Dense, F.VecView(i).Dense)
	}
	c.Dense.Scale(1/float64(n), c.Dense)
	return c
}

//Dist returns the distance between the ith and jth vectors of F.
func (F *Matrix) Dist(i, j int) float64 {
	var s float64
	for k := 0; k < 3; k++ {
		d := F.At(i, k) - F.At(j, k)
		s += d * d
	}
	return math.Sqrt(s)
}

//Norm2 returns the euclidean norm of the first vector of F.
func (F *Matrix) Norm2() float64 {
	return mat.Norm(F.VecView(0), 2)
}

//Cross puts the cross product of the first vecs of a and b in the first vec of F. Panics if error.
func (F *Matrix) Cross(a, b *Matrix) {
	if a.NVecs() < 1 || b.NVecs() < 1 || F.NVecs() < 1 {
		panic(ErrShape)
	}
	F.Set(0, 0, a.At(0, 1)*b.At(0, 2)-a.At(0, 2)*b.At(0, 1))
	F.Set(0, 1, a.At(0, 2)*b.At(0, 0)-a.At(0, 0)*b.At(0, 2))
	F.Set(0, 2, a.At(0, 0)*b.At(0, 1)-a.At(0, 1)*b.At(0, 0))
}

//MomentTensor returns the (unweighted) second moment tensor of the vectors in A
//around their centroid.
func MomentTensor(A *Matrix) *mat.SymDense {
	c := A.Centroid()
	centered := Zeros(A.NVecs())
	centered.SubVec(A, c)
	ret := mat.NewSymDense(3, nil)
	ret.SymOuterK(1, centered.T())
	return ret
}

func (F *Matrix) String() string {
	r, c := F.Dims()
	v := make([]string, r+2)
	v[0] = "\n["
	v[len(v)-1] = " ]"
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, F.Dense)
		if i == r-1 {
			v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f", row[0], row[1], row[2])
			continue
		}
		v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f\n", row[0], row[1], row[2])
	}
	return strings.Join(v, "")
}
