/*
 * depict_test.go, part of chemview.
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

package chemplot

import (
	"bytes"
	"math"
	"testing"

	chem "github.com/rmera/chemview"
	v3 "github.com/rmera/chemview/v3"
)

func water(Te *testing.T) *chem.Molecule {
	T := chem.NewTopology(0, 0, []*chem.Atom{{Symbol: "O"}, {Symbol: "H"}, {Symbol: "H"}})
	T.AddBond(0, 1, 1)
	T.AddBond(0, 2, 1)
	coords, err := v3.NewMatrix([]float64{0, 0, 0, 0.9572, 0, 0, -0.2400, 0.9266, 0})
	if err != nil {
		Te.Fatal(err)
	}
	mol, err := chem.NewMolecule([]*v3.Matrix{coords}, T)
	if err != nil {
		Te.Fatal(err)
	}
	return mol
}

func TestDepict(Te *testing.T) {
	var buf bytes.Buffer
	if err := Depict(water(Te), "water", &buf); err != nil {
		Te.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		Te.Errorf("output is not a PNG")
	}
	if err := Depict(nil, "nothing", &buf); err == nil {
		Te.Errorf("nil molecule should give an error")
	}
}

func TestProjection(Te *testing.T) {
	mol := water(Te)
	a, b := bestPlane(mol.Coords[0])
	xy := project(mol.Coords[0], a, b)
	//the molecule is planar, so the projection keeps the distances.
	d := math.Hypot(xy[0].X-xy[1].X, xy[0].Y-xy[1].Y)
	if math.Abs(d-0.9572) > 1e-6 {
		Te.Errorf("projected O-H distance %f", d)
	}
}
