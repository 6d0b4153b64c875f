/*
 * embed.go, part of chemview.
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

//Package embed builds 3D coordinates for a molecular topology by distance geometry.
//
//The procedure is the classical one: a matrix of lower and upper bounds for all
//interatomic distances is built from the topology and smoothed with the triangle
//inequality, a random distance matrix is taken within the bounds and turned into a
//metric matrix, whose three largest eigenpairs give the starting coordinates. These are
//refined by minimizing an error function that penalizes distances out of their bounds.
//No stereochemistry is considered.
package embed

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	chem "github.com/rmera/chemview"
	v3 "github.com/rmera/chemview/v3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

//Options are the parameters of the embedding.
type Options struct {
	//Seed for the random number generator. 0 means a seed taken from the clock,
	//so each call gives a different conformation.
	Seed int64
	//MaxIterations is the maximum number of major iterations of the refinement.
	MaxIterations int
}

//DefaultOptions returns the default embedding options.
func DefaultOptions() *Options {
	return &Options{MaxIterations: 2000}
}

//Error is the error type of the embed package. It satisfies chem.Error.
type Error struct {
	msg  string
	deco []string
	err  error
}

func (err *Error) Error() string {
	if err.err == nil {
		return "embed: " + err.msg
	}
	return fmt.Sprintf("embed: %s: %v", err.msg, err.err)
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

func (err *Error) Unwrap() error {
	return err.err
}

//Embed returns a set of 3D coordinates (in A) for the atoms of T, one row per atom.
//Hydrogens must be explicit atoms in T if they are to get coordinates.
func Embed(T chem.Bonder, opts *Options) (*v3.Matrix, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	n := T.Len()
	if n == 0 {
		return nil, &Error{msg: "no atoms to embed", deco: []string{"Embed"}}
	}
	if n == 1 {
		return v3.Zeros(1), nil
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))
	B, err := newBounds(T)
	if err != nil {
		if e, ok := err.(chem.Error); ok {
			e.Decorate("Embed")
		}
		return nil, err
	}
	B.smooth()
	D := B.randomDistances(rnd)
	coords := metricCoords(D, rnd)
	iters := opts.MaxIterations
	if iters <= 0 {
		iters = DefaultOptions().MaxIterations
	}
	refined, err := refine(B, coords, iters)
	if err != nil {
		return nil, &Error{msg: "refinement failed", deco: []string{"Embed"}, err: err}
	}
	for _, v := range refined {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &Error{msg: "refinement gave non-finite coordinates", deco: []string{"Embed"}}
		}
	}
	ret, err := v3.NewMatrix(refined)
	if err != nil {
		return nil, &Error{msg: "can't build coordinates", deco: []string{"Embed"}, err: err}
	}
	return ret, nil
}

//randomDistances returns a symmetric matrix with distances taken uniformly within the bounds.
//Pairs of atoms in different fragments get distances close to their lower bound.
func (B *bounds) randomDistances(rnd *rand.Rand) [][]float64 {
	n := len(B.lower)
	D := newSquare(n, 0)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			l, u := B.lower[i][j], B.upper[i][j]
			if B.topo[i][j] < 0 {
				u = math.Min(u, l+disconnSpread)
			}
			d := l + rnd.Float64()*(u-l)
			D[i][j], D[j][i] = d, d
		}
	}
	return D
}

//metricCoords obtains coordinates for the distance matrix D from the three largest
//eigenpairs of the metric matrix. Dimensions with non-positive eigenvalues get small
//random coordinates instead. The coordinates are returned flattened, x1,y1,z1,x2...
func metricCoords(D [][]float64, rnd *rand.Rand) []float64 {
	n := len(D)
	fn := float64(n)
	var all float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			all += D[i][j] * D[i][j]
		}
	}
	all /= fn * fn
	//squared distances to the centroid
	d0 := make([]float64, n)
	for i := 0; i < n; i++ {
		var s float64
		for j := 0; j < n; j++ {
			s += D[i][j] * D[i][j]
		}
		d0[i] = s/fn - all
	}
	G := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			G.SetSym(i, j, (d0[i]+d0[j]-D[i][j]*D[i][j])/2)
		}
	}
	coords := make([]float64, 3*n)
	var es mat.EigenSym
	ok := es.Factorize(G, true)
	var vals []float64
	var vecs mat.Dense
	if ok {
		vals = es.Values(nil)
		es.VectorsTo(&vecs)
	}
	for k := 0; k < 3; k++ {
		//eigenvalues come in ascending order
		col := n - 1 - k
		if !ok || col < 0 || vals[col] <= 0 {
			for i := 0; i < n; i++ {
				coords[3*i+k] = rnd.Float64() - 0.5
			}
			continue
		}
		s := math.Sqrt(vals[col])
		for i := 0; i < n; i++ {
			coords[3*i+k] = s * vecs.At(i, col)
		}
	}
	return coords
}

//errorFunc returns the distance-bounds error of the flattened coordinates x, and, if grad is not nil,
//puts its gradient in grad. Distances above the upper bound u contribute (d^2/u^2-1)^2, and those
//below the lower bound l contribute (2l^2/(l^2+d^2)-1)^2.
func (B *bounds) errorFunc(grad, x []float64) float64 {
	n := len(B.lower)
	if grad != nil {
		for i := range grad {
			grad[i] = 0
		}
	}
	var f float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := x[3*i] - x[3*j]
			dy := x[3*i+1] - x[3*j+1]
			dz := x[3*i+2] - x[3*j+2]
			d2 := dx*dx + dy*dy + dz*dz
			l2 := B.lower[i][j] * B.lower[i][j]
			u2 := B.upper[i][j] * B.upper[i][j]
			//derivative of the term with respect to d2
			var dfd2 float64
			switch {
			case d2 > u2 && B.upper[i][j] < defaultUpper:
				t := d2/u2 - 1
				f += t * t
				dfd2 = 2 * t / u2
			case d2 < l2:
				den := l2 + d2
				t := 2*l2/den - 1
				f += t * t
				dfd2 = 2 * t * (-2 * l2 / (den * den))
			default:
				continue
			}
			if grad == nil {
				continue
			}
			gx, gy, gz := 2*dx*dfd2, 2*dy*dfd2, 2*dz*dfd2
			grad[3*i] += gx
			grad[3*i+1] += gy
			grad[3*i+2] += gz
			grad[3*j] -= gx
			grad[3*j+1] -= gy
			grad[3*j+2] -= gz
		}
	}
	return f
}

//refine minimizes the bounds error function starting from x0 with L-BFGS, and returns the
//final coordinates. A line search failure near the minimum is not an error, the best point
//found is returned.
func refine(B *bounds, x0 []float64, iterations int) ([]float64, error) {
	p := optimize.Problem{
		Func: func(x []float64) float64 { return B.errorFunc(nil, x) },
		Grad: func(grad, x []float64) { B.errorFunc(grad, x) },
	}
	if p.Func(x0) == 0 {
		return x0, nil
	}
	settings := &optimize.Settings{
		MajorIterations: iterations,
		Converger:       &optimize.FunctionConverge{Absolute: 1e-9, Iterations: 50},
	}
	res, err := optimize.Minimize(p, x0, settings, &optimize.LBFGS{})
	if res == nil {
		return nil, err
	}
	return res.X, nil
}

//BoundsError returns the distance-bounds error function of coords, for the
//topology T. It is 0 when every interatomic distance is within the bounds that Embed uses.
func BoundsError(T chem.Bonder, coords *v3.Matrix) (float64, error) {
	if coords.NVecs() != T.Len() {
		return 0, &Error{msg: fmt.Sprintf("%d atoms but %d coordinates", T.Len(), coords.NVecs()), deco: []string{"BoundsError"}}
	}
	B, err := newBounds(T)
	if err != nil {
		return 0, err
	}
	B.smooth()
	x := make([]float64, 0, 3*T.Len())
	for i := 0; i < T.Len(); i++ {
		x = append(x, coords.At(i, 0), coords.At(i, 1), coords.At(i, 2))
	}
	return B.errorFunc(nil, x), nil
}
