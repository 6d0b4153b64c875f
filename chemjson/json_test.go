/*
 * json_test.go, part of chemview.
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

package chemjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"testing"

	chem "github.com/rmera/chemview"
	"github.com/rmera/chemview/pubchem"
	v3 "github.com/rmera/chemview/v3"
)

func waterCompound() *pubchem.Compound {
	return &pubchem.Compound{CID: 962, Title: "Water", IUPACName: "oxidane", MolecularFormula: "H2O", MolecularWeight: 18.015, CanonicalSMILES: "O", Synonyms: []string{"water"}}
}

func waterMolecule(Te *testing.T) *chem.Molecule {
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

func TestCompound(Te *testing.T) {
	mol := waterMolecule(Te)
	c := NewCompound("water", waterCompound(), mol, "mol block")
	if c.DerivedFormula != "H2O" || c.Properties.CommonName != "water" || len(c.Atoms) != 3 || len(c.Bonds) != 2 {
		Te.Errorf("wrong compound document %+v", c)
	}
	var buf bytes.Buffer
	if err := c.Send(&buf); err != nil {
		Te.Fatal(err)
	}
	fmt.Print(buf.String())
	back, jerr := DecodeCompound(&buf)
	if jerr != nil {
		Te.Fatal(jerr)
	}
	mol2, jerr := back.Molecule()
	if jerr != nil {
		Te.Fatal(jerr)
	}
	if mol2.Len() != 3 || mol2.NBonds() != 2 || chem.Formula(mol2) != "H2O" {
		Te.Errorf("molecule not rebuilt correctly")
	}
	if d := mol2.Coords[0].Dist(0, 2); math.Abs(d-mol.Coords[0].Dist(0, 2)) > 1e-9 {
		Te.Errorf("coordinates not kept, distance %f", d)
	}
	noStructure := NewCompound("water", waterCompound(), nil, "")
	if _, jerr := noStructure.Molecule(); jerr == nil {
		Te.Errorf("a document without atoms should give no molecule")
	}
}

func TestError(Te *testing.T) {
	jerr := NewError("FirstCompound", fmt.Errorf("looking up: %w", pubchem.ErrNotFound))
	if !jerr.NotFound {
		Te.Errorf("not found error not flagged")
	}
	var back Error
	if err := json.Unmarshal(jerr.Marshal(), &back); err != nil {
		Te.Fatal(err)
	}
	if back.Message != jerr.Message || !back.NotFound || back.Function != "FirstCompound" {
		Te.Errorf("error not serialized properly: %+v", back)
	}
	if d := jerr.Decorate("Run"); len(d) != 1 || d[0] != "Run" {
		Te.Errorf("wrong decoration %v", d)
	}
}
