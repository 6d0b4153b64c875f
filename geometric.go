/*
 * geometric.go, part of chemview.
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

package chem

import (
	"fmt"
	"math"

	v3 "github.com/rmera/chemview/v3"
)

const appzero = 1e-7

func dot(a, b *v3.Matrix) float64 {
	return a.At(0, 0)*b.At(0, 0) + a.At(0, 1)*b.At(0, 1) + a.At(0, 2)*b.At(0, 2)
}

//Angle takes 2 vectors and calculate the angle in radians between them
//It does not check for correctness or return errors!
func Angle(v1, v2 *v3.Matrix) float64 {
	argument := dot(v1, v2) / (v1.Norm2() * v2.Norm2())
	//Take care of floating point math errors
	if argument > 1 {
		argument = 1
	} else if argument < -1 {
		argument = -1
	}
	angle := math.Acos(argument)
	if math.Abs(angle) <= appzero {
		return 0.00
	}
	return angle
}

//AngleAt returns the angle, in radians, formed by the ith, jth and kth vectors of coords,
//with the vertex at j.
func AngleAt(coords *v3.Matrix, i, j, k int) float64 {
	a := v3.Zeros(1)
	b := v3.Zeros(1)
	a.Dense.Sub(coords.VecView(i).Dense, coords.VecView(j).Dense)
	b.Dense.Sub(coords.VecView(k).Dense, coords.VecView(j).Dense)
	return Angle(a, b)
}

//PlaneAxes returns the two unit vectors that span the plane that best contains
//the vectors in coords, the first one along the direction of largest spread.
func PlaneAxes(coords *v3.Matrix) (*v3.Matrix, *v3.Matrix, error) {
	if coords.NVecs() < 3 {
		return nil, nil, &CError{msg: fmt.Sprintf("%d points don't define a plane", coords.NVecs()), deco: []string{"PlaneAxes"}}
	}
	evecs, _, err := v3.EigenWrap(v3.MomentTensor(coords), -1)
	if err != nil {
		return nil, nil, errDecorate(err, "PlaneAxes")
	}
	return evecs.VecView(2), evecs.VecView(1), nil
}
