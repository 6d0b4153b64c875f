/*
 * chem_test.go, part of chemview.
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
	"strings"
	"testing"
	"unicode/utf8"

	v3 "github.com/rmera/chemview/v3"
)

//ring builds an aromatic ring from the given symbols, all bonds with order 1.5
func ring(symbols ...string) *Topology {
	atoms := make([]*Atom, 0, len(symbols))
	for _, s := range symbols {
		atoms = append(atoms, &Atom{Symbol: s, Name: s, Aromatic: true})
	}
	T := NewTopology(0, 0, atoms)
	for i := range atoms {
		if _, err := T.AddBond(i, (i+1)%len(atoms), AromaticOrder); err != nil {
			panic(err.Error())
		}
	}
	return T
}

func doubleBonds(T *Topology) int {
	n := 0
	for _, b := range T.Bonds {
		if b.Order == 2 {
			n++
		}
	}
	return n
}

func TestKekulize(Te *testing.T) {
	benzene := ring("C", "C", "C", "C", "C", "C")
	if err := Kekulize(benzene); err != nil {
		Te.Fatal(err)
	}
	if d := doubleBonds(benzene); d != 3 {
		Te.Errorf("benzene should have 3 double bonds, got %d", d)
	}
	for _, at := range benzene.Atoms {
		if at.BondOrderSum() != 3 {
			Te.Errorf("atom %d of benzene has bond order sum %f", at.Index(), at.BondOrderSum())
		}
	}
	pyridine := ring("N", "C", "C", "C", "C", "C")
	if err := Kekulize(pyridine); err != nil {
		Te.Fatal(err)
	}
	if d := doubleBonds(pyridine); d != 3 {
		Te.Errorf("pyridine should have 3 double bonds, got %d", d)
	}
	//pyrrole, the N carries the H, so it takes no double bond.
	pyrrole := ring("N", "C", "C", "C", "C")
	pyrrole.Atom(0).FixedH = true
	pyrrole.Atom(0).ImplicitH = 1
	if err := Kekulize(pyrrole); err != nil {
		Te.Fatal(err)
	}
	if d := doubleBonds(pyrrole); d != 2 {
		Te.Errorf("pyrrole should have 2 double bonds, got %d", d)
	}
	if pyrrole.Atom(0).BondOrderSum() != 2 {
		Te.Errorf("pyrrole N should only have single bonds")
	}
	//five aromatic carbons can't be kekulized
	bad := ring("C", "C", "C", "C", "C")
	if err := Kekulize(bad); err == nil {
		Te.Errorf("a 5-carbon aromatic ring should fail to kekulize")
	}
}

func water() *Topology {
	T := NewTopology(0, 0, []*Atom{{Symbol: "O", Name: "O"}})
	ComputeImplicitH(T)
	return T
}

func TestHydrogens(Te *testing.T) {
	T := water()
	if T.Atom(0).ImplicitH != 2 {
		Te.Fatalf("O should have 2 implicit H, got %d", T.Atom(0).ImplicitH)
	}
	if HydrogenCount(T) != 2 {
		Te.Errorf("wrong hydrogen count %d", HydrogenCount(T))
	}
	if n := AddHydrogens(T); n != 2 {
		Te.Errorf("expected 2 hydrogens added, got %d", n)
	}
	if T.Len() != 3 || T.NBonds() != 2 {
		Te.Errorf("water should have 3 atoms and 2 bonds, got %d and %d", T.Len(), T.NBonds())
	}
	if T.Atom(0).ImplicitH != 0 {
		Te.Errorf("implicit H not cleared")
	}
	if HydrogenCount(T) != 2 {
		Te.Errorf("wrong hydrogen count after adding them, %d", HydrogenCount(T))
	}
	//ammonium, the charge raises the valence of N.
	N := NewTopology(0, 0, []*Atom{{Symbol: "N", Charge: 1}})
	ComputeImplicitH(N)
	if N.Atom(0).ImplicitH != 4 {
		Te.Errorf("ammonium should have 4 H, got %d", N.Atom(0).ImplicitH)
	}
	if N.Charge() != 1 {
		Te.Errorf("topology charge should be the sum of formal charges, got %d", N.Charge())
	}
}

func TestFormula(Te *testing.T) {
	if f := Formula(water()); f != "H2O" {
		Te.Errorf("water formula %q", f)
	}
	//ethanol, C-C-O
	E := NewTopology(0, 0, []*Atom{{Symbol: "C"}, {Symbol: "C"}, {Symbol: "O"}})
	E.AddBond(0, 1, 1)
	E.AddBond(1, 2, 1)
	ComputeImplicitH(E)
	if f := Formula(E); f != "C2H6O" {
		Te.Errorf("ethanol formula %q", f)
	}
	w, err := MolecularWeight(water())
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(w-18.015) > 0.01 {
		Te.Errorf("water weight %f", w)
	}
	Na := NewTopology(0, 0, []*Atom{{Symbol: "Na", FixedH: true, Charge: 1}, {Symbol: "Cl", FixedH: true, Charge: -1}})
	if f := Formula(Na); f != "ClNa" {
		Te.Errorf("sodium chloride formula %q", f)
	}
	Bad := NewTopology(0, 0, []*Atom{{Symbol: "Xx"}})
	if _, err := MolecularWeight(Bad); err == nil {
		Te.Errorf("unknown element should give an error")
	}
}

func TestMolBlock(Te *testing.T) {
	T := water()
	AddHydrogens(T)
	T.Atom(0).Charge = -1
	T.Atom(0).Isotope = 17
	coords, err := v3.NewMatrix([]float64{0, 0, 0, 0.9572, 0, 0, -0.2400, 0.9266, 0})
	if err != nil {
		Te.Fatal(err)
	}
	block, err := MolBlockString("water", T, coords)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println(block)
	lines := strings.Split(block, "\n")
	if !strings.HasPrefix(lines[3], "  3  2") || !strings.HasSuffix(lines[3], "V2000") {
		Te.Errorf("bad counts line %q", lines[3])
	}
	if !strings.Contains(block, "M  CHG  1   1  -1") || !strings.Contains(block, "M  ISO  1   1  17") {
		Te.Errorf("charge or isotope properties missing")
	}
	if !strings.Contains(block, "M  END") {
		Te.Errorf("no M  END line")
	}
	mol, name, err := MolBlockRead(strings.NewReader(block))
	if err != nil {
		Te.Fatal(err)
	}
	if name != "water" {
		Te.Errorf("name not read back, got %q", name)
	}
	if mol.Len() != 3 || mol.NBonds() != 2 {
		Te.Errorf("read %d atoms and %d bonds", mol.Len(), mol.NBonds())
	}
	if mol.Atom(0).Symbol != "O" || mol.Atom(0).Charge != -1 || mol.Atom(0).Isotope != 17 {
		Te.Errorf("first atom read wrong: %+v", mol.Atom(0))
	}
	if math.Abs(mol.Atom(1).Mass-1.008) > 0.01 {
		Te.Errorf("hydrogen mass not assigned: %f", mol.Atom(1).Mass)
	}
	if d := mol.Coords[0].Dist(0, 1); math.Abs(d-0.9572) > 1e-3 {
		Te.Errorf("O-H distance read back as %f", d)
	}
}

func TestGeometry(Te *testing.T) {
	coords, err := v3.NewMatrix([]float64{
		1, 0, 0,
		0, 0, 0,
		0, 1, 0,
		-1, 0, 0,
	})
	if err != nil {
		Te.Fatal(err)
	}
	if a := Rad2Deg(AngleAt(coords, 0, 1, 2)); math.Abs(a-90) > 1e-6 {
		Te.Errorf("angle should be 90, got %f", a)
	}
	if a := Rad2Deg(AngleAt(coords, 0, 1, 3)); math.Abs(a-180) > 1e-6 {
		Te.Errorf("angle should be 180, got %f", a)
	}
	flat, _ := v3.NewMatrix([]float64{
		0, 0, 0,
		2, 0, 0,
		0, 1, 0,
		2, 1, 0,
	})
	a, b, err := PlaneAxes(flat)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(math.Abs(a.At(0, 0))-1) > 1e-6 || math.Abs(math.Abs(b.At(0, 1))-1) > 1e-6 {
		Te.Errorf("axes should be x and y, got %v %v", a, b)
	}
	water, _ := v3.NewMatrix([]float64{0, 0, 0, 0.96, 0, 0, -0.24, 0.93, 0})
	a, b, err = PlaneAxes(water)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("water plane", a, b)
	if math.Abs(a.At(0, 2)) > 1e-6 || math.Abs(b.At(0, 2)) > 1e-6 {
		Te.Errorf("water lies on the xy plane, got axes %v %v", a, b)
	}
	if _, _, err := PlaneAxes(flat.View(0, 2)); err == nil {
		Te.Error("2 points should not define a plane")
	}
}

func TestErrDecorate(Te *testing.T) {
	_, err := v3.NewMatrix([]float64{1, 2})
	err = errDecorate(err, "TestErrDecorate")
	e, ok := err.(Error)
	if !ok {
		Te.Fatalf("v3 errors should satisfy Error, got %T", err)
	}
	deco := e.Decorate("")
	fmt.Println(deco)
	if len(deco) != 2 || deco[0] != "NewMatrix" || deco[1] != "TestErrDecorate" {
		Te.Errorf("wrong decoration %v", deco)
	}
}

func TestMolBlockBonds(Te *testing.T) {
	coords, _ := v3.NewMatrix([]float64{0, 0, 0, 1.2, 0, 0})
	Q := NewTopology(0, 0, []*Atom{{Symbol: "C", FixedH: true}, {Symbol: "C", FixedH: true}})
	Q.AddBond(0, 1, 4)
	if _, err := MolBlockString("quadruple", Q, coords); err == nil {
		Te.Errorf("a quadruple bond should not be written")
	}
	A := NewTopology(0, 0, []*Atom{{Symbol: "C", FixedH: true}, {Symbol: "C", FixedH: true}})
	A.AddBond(0, 1, AromaticOrder)
	name := strings.Repeat("é", 50) //100 bytes
	block, err := MolBlockString(name, A, coords)
	if err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(block, "\n")
	if len(lines[0]) > 80 || !utf8.ValidString(lines[0]) || lines[0] != strings.Repeat("\u00e9", 40) {
		Te.Errorf("name badly truncated: %q", lines[0])
	}
	if lines[6] != "  1  2  4  0" {
		Te.Errorf("aromatic bond should have type 4, got %q", lines[6])
	}
}
