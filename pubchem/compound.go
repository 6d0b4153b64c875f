/*
 * compound.go, part of chemview.
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

package pubchem

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

//Compound is one PubChem compound record, with the properties chemview uses.
type Compound struct {
	CID              int
	Title            string
	IUPACName        string
	MolecularFormula string
	MolecularWeight  float64
	CanonicalSMILES  string
	IsomericSMILES   string
	Charge           int
	Synonyms         []string
}

//CommonName returns the first synonym of the compound or, if it has none, its title.
func (C *Compound) CommonName() string {
	if len(C.Synonyms) > 0 {
		return C.Synonyms[0]
	}
	return C.Title
}

//weight decodes both the string ("18.015") and number (18.015) forms that
//PubChem has used for MolecularWeight.
type weight float64

func (W *weight) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*W = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("molecular weight %s: %w", b, err)
	}
	*W = weight(f)
	return nil
}

//properties is one element of PropertyTable.Properties
type properties struct {
	CID                int    `json:"CID"`
	Title              string `json:"Title"`
	IUPACName          string `json:"IUPACName"`
	MolecularFormula   string `json:"MolecularFormula"`
	MolecularWeight    weight `json:"MolecularWeight"`
	ConnectivitySMILES string `json:"ConnectivitySMILES"`
	CanonicalSMILES    string `json:"CanonicalSMILES"`
	SMILES             string `json:"SMILES"`
	IsomericSMILES     string `json:"IsomericSMILES"`
	Charge             int    `json:"Charge"`
}

func (P properties) compound() Compound {
	c := Compound{
		CID:              P.CID,
		Title:            P.Title,
		IUPACName:        P.IUPACName,
		MolecularFormula: P.MolecularFormula,
		MolecularWeight:  float64(P.MolecularWeight),
		CanonicalSMILES:  P.ConnectivitySMILES,
		IsomericSMILES:   P.IsomericSMILES,
		Charge:           P.Charge,
	}
	if c.CanonicalSMILES == "" {
		c.CanonicalSMILES = P.CanonicalSMILES
	}
	if c.IsomericSMILES == "" {
		c.IsomericSMILES = P.SMILES
	}
	if c.CanonicalSMILES == "" {
		c.CanonicalSMILES = c.IsomericSMILES
	}
	return c
}

type propertyResponse struct {
	PropertyTable struct {
		Properties []properties `json:"Properties"`
	} `json:"PropertyTable"`
}

type synonymResponse struct {
	InformationList struct {
		Information []struct {
			CID     int      `json:"CID"`
			Synonym []string `json:"Synonym"`
		} `json:"Information"`
	} `json:"InformationList"`
}

//Fault is the error document PUG-REST sends with failed requests.
type Fault struct {
	Code    string   `json:"Code"`
	Message string   `json:"Message"`
	Details []string `json:"Details"`
}

func (F *Fault) Error() string {
	if len(F.Details) == 0 {
		return fmt.Sprintf("pubchem: %s: %s", F.Code, F.Message)
	}
	return fmt.Sprintf("pubchem: %s: %s (%s)", F.Code, F.Message, strings.Join(F.Details, "; "))
}

type faultResponse struct {
	Fault *Fault `json:"Fault"`
}

//parseFault extracts the fault from an error body, or returns nil if it has none.
func parseFault(body []byte) *Fault {
	var f faultResponse
	if err := json.Unmarshal(body, &f); err != nil {
		return nil
	}
	return f.Fault
}
