/*
 * gonum.go, part of chemview.
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
	"sort"

	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//Matrix is a set of vectors in 3D space, stored as the rows of a
//gonum Dense.
type Matrix struct {
	*mat.Dense
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l == 0 || l%cols != 0 {
		return nil, &Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//VecView returns a view of the ith vector of the matrix.
//Changes in the view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//View returns a view of F starting from vector i and spanning r vectors.
func (F *Matrix) View(i, r int) *Matrix {
	ret := F.Dense.Slice(i, i+r, 0, 3).(*mat.Dense)
	return &Matrix{ret}
}

//NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

type eigenpair struct {
	//evecs must have as many rows as evals has elements.
	evecs *mat.Dense
	evals sort.Float64Slice
}

func (E eigenpair) Less(i, j int) bool {
	return E.evals[i] < E.evals[j]
}
func (E eigenpair) Swap(i, j int) {
	E.evals.Swap(i, j)
	ri := mat.Row(nil, i, E.evecs)
	rj := mat.Row(nil, j, E.evecs)
	E.evecs.SetRow(i, rj)
	E.evecs.SetRow(j, ri)
}
func (E eigenpair) Len() int {
	return len(E.evals)
}

//EigenWrap returns the eigenvectors (as rows) and eigenvalues of the symmetric 3x3 matrix in,
//sorted from the smallest to the largest eigenvalue. The eigenvectors are checked for
//orthogonality and the set is made right-handed.
func EigenWrap(in *mat.SymDense, epsilon float64) (*Matrix, []float64, error) {
	if epsilon < 0 {
		epsilon = appzero
	}
	if in.SymmetricDim() != 3 {
		panic(ErrNotXx3Matrix)
	}
	var es mat.EigenSym
	if ok := es.Factorize(in, true); !ok {
		return nil, nil, &Error{string(ErrEigen), []string{"EigenWrap"}}
	}
	evals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)
	//gonum returns the eigenvectors as columns, we want them as rows.
	evecs := mat.DenseCopyOf(vecs.T())
	eig := eigenpair{evecs, evals}
	sort.Sort(eig)
	for i := 0; i < 3; i++ {
		vi := evecs.RowView(i)
		for j := i + 1; j < 3; j++ {
			vj := evecs.RowView(j)
			if math.Abs(mat.Dot(vi, vj)) > epsilon {
				return nil, nil, &Error{fmt.Sprintf("Eigenvectors %d and %d not orthogonal", i, j), []string{"EigenWrap"}}
			}
		}
	}
	if mat.Det(evecs) < 0 {
		evecs.Scale(-1, evecs)
	}
	return &Matrix{evecs}, eig.evals, nil
}

//Errors

//Error is the error type of this package. It satisfies chem.Error
//(the same interface is not imported to avoid a circular import).
type Error struct {
	message string
	deco    []string
}

//Error returns a string with an error message.
func (err *Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix = PanicMsg("chemview/v3: A v3.Matrix should have 3 columns")
	ErrShape        = PanicMsg("chemview/v3: Dimension mismatch")
	ErrEigen        = PanicMsg("chemview/v3: Can't obtain eigenvectors/eigenvalues of given matrix")
)
