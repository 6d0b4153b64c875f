/*
 * json.go, part of chemview.
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

//Package chemjson implements the JSON serialization of chemview compounds: the
//PubChem properties, the derived 3D structure (atoms with their coordinates,
//bonds and the mol block) and errors. It is the format of the chemview HTTP API,
//meant for programs written in any language that can read JSON.
package chemjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	chem "github.com/rmera/chemview"
	"github.com/rmera/chemview/pubchem"
	v3 "github.com/rmera/chemview/v3"
)

//Atom is a ready-to-serialize container for an atom and its coordinates.
type Atom struct {
	Symbol   string
	Charge   int  `json:",omitempty"`
	Isotope  int  `json:",omitempty"`
	Aromatic bool `json:",omitempty"`
	Coords   []float64
}

//Bond joins the atoms with the 0-based indexes At1 and At2.
type Bond struct {
	At1   int
	At2   int
	Order float64
}

//Properties are the compound properties as PubChem gives them.
type Properties struct {
	CID             int
	IUPACName       string
	CommonName      string
	MolecularWeight float64
	Formula         string
	SMILES          string
	IsomericSMILES  string `json:",omitempty"`
}

//Compound is the document sent for a query.
type Compound struct {
	Query      string
	Properties Properties
	//DerivedFormula is the formula of the 3D structure, which should match Properties.Formula.
	DerivedFormula string `json:",omitempty"`
	Atoms          []Atom `json:",omitempty"`
	Bonds          []Bond `json:",omitempty"`
	MolBlock       string `json:",omitempty"`
}

//NewCompound builds the document for the compound c. mol and molblock can be nil and empty if
//no structure was derived. Only the current frame of mol is included.
func NewCompound(query string, c *pubchem.Compound, mol *chem.Molecule, molblock string) *Compound {
	ret := &Compound{
		Query: query,
		Properties: Properties{
			CID:             c.CID,
			IUPACName:       c.IUPACName,
			CommonName:      c.CommonName(),
			MolecularWeight: c.MolecularWeight,
			Formula:         c.MolecularFormula,
			SMILES:          c.CanonicalSMILES,
			IsomericSMILES:  c.IsomericSMILES,
		},
		MolBlock: molblock,
	}
	if mol == nil {
		return ret
	}
	ret.DerivedFormula = chem.Formula(mol)
	coords := mol.Coords[mol.Current()]
	ret.Atoms = make([]Atom, mol.Len())
	for i := range ret.Atoms {
		at := mol.Atom(i)
		ret.Atoms[i] = Atom{Symbol: at.Symbol, Charge: at.Charge, Isotope: at.Isotope, Aromatic: at.Aromatic, Coords: []float64{coords.At(i, 0), coords.At(i, 1), coords.At(i, 2)}}
	}
	ret.Bonds = make([]Bond, mol.NBonds())
	for i := range ret.Bonds {
		b := mol.Bond(i)
		ret.Bonds[i] = Bond{At1: b.At1.Index(), At2: b.At2.Index(), Order: b.Order}
	}
	return ret
}

//Send marshals the compound and writes it to out.
func (C *Compound) Send(out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(C); err != nil {
		return NewError("Compound.Send", err)
	}
	return nil
}

//DecodeCompound reads a compound document from in.
func DecodeCompound(in io.Reader) (*Compound, *Error) {
	ret := new(Compound)
	if err := json.NewDecoder(in).Decode(ret); err != nil {
		return nil, NewError("DecodeCompound", err)
	}
	return ret, nil
}

//Molecule rebuilds the 3D structure in the document as a chem.Molecule with one frame.
//It returns an error if the document has no structure or it is inconsistent.
func (C *Compound) Molecule() (*chem.Molecule, *Error) {
	const funcname = "Compound.Molecule"
	if len(C.Atoms) == 0 {
		return nil, NewError(funcname, fmt.Errorf("no structure for %q", C.Query))
	}
	atoms := make([]*chem.Atom, 0, len(C.Atoms))
	rawcoords := make([]float64, 0, 3*len(C.Atoms))
	for i, a := range C.Atoms {
		if len(a.Coords) != 3 {
			return nil, NewError(funcname, fmt.Errorf("atom %d has %d coordinates", i, len(a.Coords)))
		}
		atoms = append(atoms, &chem.Atom{Name: a.Symbol, Symbol: a.Symbol, Charge: a.Charge, Isotope: a.Isotope, Aromatic: a.Aromatic, FixedH: true})
		rawcoords = append(rawcoords, a.Coords...)
	}
	top := chem.NewTopology(0, 0, atoms)
	for i, b := range C.Bonds {
		if b.At1 < 0 || b.At2 < 0 || b.At1 >= len(atoms) || b.At2 >= len(atoms) {
			return nil, NewError(funcname, fmt.Errorf("bond %d joins non-existent atoms", i))
		}
		if _, err := top.AddBond(b.At1, b.At2, b.Order); err != nil {
			return nil, NewError(funcname, err)
		}
	}
	coords, err := v3.NewMatrix(rawcoords)
	if err != nil {
		return nil, NewError(funcname, err)
	}
	mol, err := chem.NewMolecule([]*v3.Matrix{coords}, top)
	if err != nil {
		return nil, NewError(funcname, err)
	}
	return mol, nil
}

//Error is an easily JSON-serializable error. The API sends it instead of a Compound
//when a query fails.
type Error struct {
	deco     []string
	Query    string `json:",omitempty"`
	NotFound bool   //The query gave no compound.
	Function string `json:",omitempty"` //which go function gave the error
	Message  string //the error itself
}

//Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

//Marshal serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

//NewError takes an error and the name of the function where it happened,
//and creates a json-marshal-able error.
func NewError(function string, err error) *Error {
	jerr := &Error{Function: function, Message: err.Error()}
	if errors.Is(err, pubchem.ErrNotFound) {
		jerr.NotFound = true
	}
	var cerr chem.Error
	if errors.As(err, &cerr) {
		jerr.deco = cerr.Decorate("")
	}
	return jerr
}
