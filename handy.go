/*
 * handy.go, part of chemview.
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

import "math"

//Deg2Rad converts degrees to radians
func Deg2Rad(f float64) float64 {
	return f * math.Pi / 180
}

//Rad2Deg converts radians to degrees
func Rad2Deg(f float64) float64 {
	return f * 180 / math.Pi
}

//HeavyAtoms returns the indexes of the atoms in T which are not hydrogens.
func HeavyAtoms(T Atomer) []int {
	ret := make([]int, 0, T.Len())
	for i := 0; i < T.Len(); i++ {
		if T.Atom(i).Symbol != "H" {
			ret = append(ret, i)
		}
	}
	return ret
}
