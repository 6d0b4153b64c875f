/*
 * smiles_test.go, part of chemview.
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

package smiles

import (
	"errors"
	"testing"

	chem "github.com/rmera/chemview"
)

func TestParseFormulas(Te *testing.T) {
	cases := []struct {
		smiles  string
		formula string
		atoms   int
	}{
		{"O", "H2O", 1},
		{"CCO", "C2H6O", 3},
		{"c1ccccc1", "C6H6", 6},
		{"C1=CC=CC=C1", "C6H6", 6},
		{"c1ccncc1", "C5H5N", 6},
		{"c1cc[nH]c1", "C4H5N", 5},
		{"Cn1cccc1", "C5H7N", 6},
		{"CC(=O)OC1=CC=CC=C1C(=O)O", "C9H8O4", 13},
		{"CN1C=NC2=C1C(=O)N(C(=O)N2C)C", "C8H10N4O2", 14},
		{"[Na+].[Cl-]", "ClNa", 2},
		{"[NH4+]", "H4N+", 1},
		{"C[N+](=O)[O-]", "CH3NO2", 4},
		{"OS(=O)(=O)O", "H2O4S", 5},
		{"C1CC%10CC1.C%10", "C6H12", 6},
		{"[13CH4]", "CH4", 1},
		{"N[C@@H](C)C(=O)O", "C3H7NO2", 6},
		{"F/C=C/F", "C2H2F2", 4},
		{"[2H]C([2H])([2H])Cl", "CH3Cl", 5},
	}
	for _, c := range cases {
		T, err := Parse(c.smiles)
		if err != nil {
			Te.Errorf("%s: %v", c.smiles, err)
			continue
		}
		if T.Len() != c.atoms {
			Te.Errorf("%s: %d atoms, expected %d", c.smiles, T.Len(), c.atoms)
		}
		if f := chem.Formula(T); f != c.formula {
			Te.Errorf("%s: formula %s, expected %s", c.smiles, f, c.formula)
		}
	}
}

func TestParseDetails(Te *testing.T) {
	T, err := Parse("[13CH3:1][O-]")
	if err != nil {
		Te.Fatal(err)
	}
	if T.Atom(0).Isotope != 13 || T.Atom(0).ImplicitH != 3 || !T.Atom(0).FixedH {
		Te.Errorf("bracket atom read wrong: %+v", T.Atom(0))
	}
	if T.Atom(1).Charge != -1 || T.Charge() != -1 {
		Te.Errorf("charge read wrong")
	}
	T, err = Parse("c1ccccc1")
	if err != nil {
		Te.Fatal(err)
	}
	doubles := 0
	for _, b := range T.Bonds {
		if b.Aromatic() {
			Te.Errorf("bond %d left aromatic", b.Index)
		}
		if b.Order == 2 {
			doubles++
		}
	}
	if doubles != 3 || !T.Atom(0).Aromatic {
		Te.Errorf("benzene not kekulized properly")
	}
	T, err = Parse("C#N")
	if err != nil {
		Te.Fatal(err)
	}
	if T.Bond(0).Order != 3 {
		Te.Errorf("triple bond read as %f", T.Bond(0).Order)
	}
	T, err = Parse("[Fe++]")
	if err != nil {
		Te.Fatal(err)
	}
	if T.Atom(0).Charge != 2 {
		Te.Errorf("[Fe++] charge %d", T.Atom(0).Charge)
	}
	T, err = Parse("CCO ethanol")
	if err != nil || T.Len() != 3 {
		Te.Errorf("trailing name not ignored")
	}
}

func TestParseErrors(Te *testing.T) {
	bad := []string{
		"",
		"C(",
		"C)",
		"C1CC",
		"C=",
		"(C)",
		"C==C",
		"[C",
		"Xx",
		"[Xx]",
		"C*",
		"c1cccc1",
		"C=1CC-1",
		"C%1C",
		"C1C.1",
	}
	for _, s := range bad {
		_, err := Parse(s)
		if err == nil {
			Te.Errorf("%q should not parse", s)
			continue
		}
		var serr *Error
		if !errors.As(err, &serr) {
			Te.Errorf("%q: error of type %T", s, err)
		}
	}
	_, err := Parse("[Xx]")
	if !errors.Is(err, chem.ErrUnknownElement) {
		Te.Errorf("unknown element should wrap ErrUnknownElement, got %v", err)
	}
}
