/*
 * bounds.go, part of chemview.
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

package embed

import (
	"fmt"
	"math"

	chem "github.com/rmera/chemview"
	"github.com/rmera/chemview/chemgraph"
)

//Default parameters of the bounds matrix. Distances in A.
const (
	bondTol       = 0.01
	angleTol      = 0.04
	ringAngleTol  = 0.08
	defaultUpper  = 100.0
	vdwScale14    = 0.6 //for atoms 3 bonds apart
	vdwScaleFar   = 0.75
	disconnSpread = 5.0 //for random distances between fragments
)

//bond order correction of the sum of covalent radii.
func orderFactor(order float64) float64 {
	switch {
	case order == chem.AromaticOrder:
		return 0.92
	case order >= 3:
		return 0.78
	case order >= 2:
		return 0.87
	}
	return 1
}

//bondLength returns the ideal length of the bond b.
func bondLength(b *chem.Bond) (float64, error) {
	r1, err := chem.CovalentRadius(b.At1.Symbol)
	if err != nil {
		return 0, err
	}
	r2, err := chem.CovalentRadius(b.At2.Symbol)
	if err != nil {
		return 0, err
	}
	return (r1 + r2) * orderFactor(b.Order), nil
}

//hybridAngles returns the range of angles (in degrees) around the atom at
//that its bonding pattern allows.
func hybridAngles(at *chem.Atom) (min, max float64) {
	doubles, triples := 0, 0
	for _, b := range at.Bonds {
		switch {
		case b.Order >= 3:
			triples++
		case b.Order >= 2:
			doubles++
		}
	}
	deg := at.Degree()
	switch {
	case deg == 2 && (triples > 0 || doubles > 1):
		return 180, 180
	case deg <= 3 && (doubles > 0 || at.Aromatic):
		return 120, 120
	case deg >= 5:
		return 90, 180
	}
	return 109.47, 109.47
}

//ringAngle is the internal angle of a planar regular ring of the given size,
//used only for the strained 3, 4 and 5-membered rings.
func ringAngle(size int) (float64, bool) {
	if size < 3 || size > 5 {
		return 0, false
	}
	return 180 * float64(size-2) / float64(size), true
}

//lawOfCosines gives the distance between the ends of two segments a and b at an angle of theta degrees.
func lawOfCosines(a, b, theta float64) float64 {
	return math.Sqrt(a*a + b*b - 2*a*b*math.Cos(chem.Deg2Rad(theta)))
}

//bounds holds the lower and upper distance bounds between every pair of atoms.
type bounds struct {
	lower [][]float64
	upper [][]float64
	topo  [][]int
}

func newSquare(n int, val float64) [][]float64 {
	ret := make([][]float64, n)
	for i := range ret {
		ret[i] = make([]float64, n)
		for j := range ret[i] {
			if i != j {
				ret[i][j] = val
			}
		}
	}
	return ret
}

func (B *bounds) set(i, j int, l, u float64) {
	B.lower[i][j], B.lower[j][i] = l, l
	B.upper[i][j], B.upper[j][i] = u, u
}

//newBounds builds the bounds matrix for T: bonded atoms from covalent radii, atoms 2 bonds apart
//from the ideal angles, and everything else from scaled van der Waals radii.
func newBounds(T chem.Bonder) (*bounds, error) {
	n := T.Len()
	G := chemgraph.FromChem(T)
	B := &bounds{lower: newSquare(n, 0), upper: newSquare(n, defaultUpper), topo: G.TopologicalDistances()}
	//van der Waals lower bounds for everything not 1-2 or 1-3.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			vdw := chem.VdwRadius(T.Atom(i).Symbol) + chem.VdwRadius(T.Atom(j).Symbol)
			switch d := B.topo[i][j]; {
			case d == 3:
				B.set(i, j, vdw*vdwScale14, defaultUpper)
			case d > 3 || d < 0:
				B.set(i, j, vdw*vdwScaleFar, defaultUpper)
			}
		}
	}
	lengths := make(map[[2]int]float64, T.NBonds())
	for k := 0; k < T.NBonds(); k++ {
		b := T.Bond(k)
		l, err := bondLength(b)
		if err != nil {
			return nil, &Error{msg: fmt.Sprintf("bond %d", k), deco: []string{"newBounds"}, err: err}
		}
		i, j := b.At1.Index(), b.At2.Index()
		lengths[[2]int{i, j}], lengths[[2]int{j, i}] = l, l
		B.set(i, j, l-bondTol, l+bondTol)
	}
	//1-3 pairs, through each angle i-j-k
	for j := 0; j < n; j++ {
		center := T.Atom(j)
		neighs := center.Neighbors()
		min, max := hybridAngles(center)
		for a := 0; a < len(neighs); a++ {
			for c := a + 1; c < len(neighs); c++ {
				i, k := neighs[a].Index(), neighs[c].Index()
				if B.topo[i][k] == 1 {
					//3-membered ring, the bond already fixes the distance.
					continue
				}
				dij, djk := lengths[[2]int{i, j}], lengths[[2]int{j, k}]
				amin, amax, tol := min, max, angleTol
				if ra, ok := ringAngle(G.SmallestRingWithAngle(i, j, k)); ok {
					amin, amax, tol = ra, ra, ringAngleTol
				}
				l := lawOfCosines(dij, djk, amin) - tol
				u := lawOfCosines(dij, djk, amax) + tol
				if B.upper[i][k] < defaultUpper {
					//another center already bounded this pair (4-membered rings)
					l = math.Min(l, B.lower[i][k])
					u = math.Max(u, B.upper[i][k])
				}
				B.set(i, k, l, u)
			}
		}
	}
	return B, nil
}

//smooth applies the triangle inequality to the bounds matrix: upper bounds can't exceed
//the sum of the upper bounds through any third atom, and lower bounds can't be smaller
//than the difference of a lower and an upper bound through a third atom. Lower bounds
//that end up above the upper ones are clamped.
func (B *bounds) smooth() {
	n := len(B.lower)
	L, U := B.lower, B.upper
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if i == k {
				continue
			}
			for j := i + 1; j < n; j++ {
				if j == k {
					continue
				}
				if u := U[i][k] + U[k][j]; U[i][j] > u {
					U[i][j], U[j][i] = u, u
				}
				l := math.Max(L[i][k]-U[k][j], L[j][k]-U[k][i])
				if L[i][j] < l {
					L[i][j], L[j][i] = l, l
				}
				if L[i][j] > U[i][j] {
					L[i][j], L[j][i] = U[i][j], U[i][j]
				}
			}
		}
	}
}
