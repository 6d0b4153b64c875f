/*
 * atomicdata.go, part of chemview.
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

import "fmt"

//A map for assigning mass to elements. Standard atomic weights (IUPAC),
//the same ones used by PubChem for molecular weights.
var symbolMass = map[string]float64{
	"H":  1.008,
	"He": 4.0026,
	"Li": 6.94,
	"Be": 9.0122,
	"B":  10.81,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
	"F":  18.998,
	"Ne": 20.180,
	"Na": 22.990,
	"Mg": 24.305,
	"Al": 26.982,
	"Si": 28.085,
	"P":  30.974,
	"S":  32.06,
	"Cl": 35.45,
	"Ar": 39.95,
	"K":  39.098,
	"Ca": 40.078,
	"Ti": 47.867,
	"Cr": 51.996,
	"Mn": 54.938,
	"Fe": 55.845,
	"Co": 58.933,
	"Ni": 58.693,
	"Cu": 63.546,
	"Zn": 65.38,
	"Ga": 69.723,
	"Ge": 72.630,
	"As": 74.922,
	"Se": 78.971,
	"Br": 79.904,
	"Kr": 83.798,
	"Rb": 85.468,
	"Sr": 87.62,
	"Ag": 107.87,
	"Cd": 112.41,
	"Sn": 118.71,
	"Sb": 121.76,
	"Te": 127.60,
	"I":  126.90,
	"Xe": 131.29,
	"Cs": 132.91,
	"Ba": 137.33,
	"Pt": 195.08,
	"Au": 196.97,
	"Hg": 200.59,
	"Pb": 207.2,
	"Bi": 208.98,
}

//A map for assigning covalent radii to elements
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J)
//For C the sp3 radius is given, the bond order correction is done
//when the bond lengths are estimated.
var symbolCovrad = map[string]float64{
	"H":  0.31,
	"He": 0.28,
	"Li": 1.28,
	"Be": 0.96,
	"B":  0.84,
	"C":  0.76,
	"N":  0.71,
	"O":  0.66,
	"F":  0.57,
	"Ne": 0.58,
	"Na": 1.66,
	"Mg": 1.41,
	"Al": 1.21,
	"Si": 1.11,
	"P":  1.07,
	"S":  1.05,
	"Cl": 1.02,
	"Ar": 1.06,
	"K":  2.03,
	"Ca": 1.76,
	"Ti": 1.60,
	"Cr": 1.39,
	"Mn": 1.61, //hs
	"Fe": 1.52, //hs
	"Co": 1.50, //hs
	"Ni": 1.24,
	"Cu": 1.32,
	"Zn": 1.22,
	"Ga": 1.22,
	"Ge": 1.20,
	"As": 1.19,
	"Se": 1.20,
	"Br": 1.20,
	"Kr": 1.16,
	"Rb": 2.20,
	"Sr": 1.95,
	"Ag": 1.45,
	"Cd": 1.44,
	"Sn": 1.39,
	"Sb": 1.39,
	"Te": 1.38,
	"I":  1.39,
	"Xe": 1.40,
	"Cs": 2.44,
	"Ba": 2.15,
	"Pt": 1.36,
	"Au": 1.36,
	"Hg": 1.32,
	"Pb": 1.46,
	"Bi": 1.48,
}

//A map for assigning van der Waals radii to elements
//Values from 10.1021/j100785a001 and 10.1021/jp8111556
//metal radii from 10.1023/A:1011625728803
var symbolVdwrad = map[string]float64{
	"H":  1.10,
	"He": 1.40,
	"Li": 1.82,
	"Be": 1.53,
	"B":  1.92,
	"C":  1.70,
	"N":  1.55,
	"O":  1.52,
	"F":  1.47,
	"Ne": 1.54,
	"Na": 2.27,
	"Mg": 1.73,
	"Al": 1.84,
	"Si": 2.10,
	"P":  1.80,
	"S":  1.80,
	"Cl": 1.75,
	"Ar": 1.88,
	"K":  2.75,
	"Ca": 2.31,
	"Cr": 1.97,
	"Mn": 1.96,
	"Fe": 1.96,
	"Co": 1.95,
	"Ni": 1.63,
	"Cu": 2.00,
	"Zn": 2.02,
	"Ga": 1.87,
	"Ge": 2.11,
	"As": 1.85,
	"Se": 1.90,
	"Br": 1.83,
	"Kr": 2.02,
	"Rb": 3.03,
	"Sr": 2.49,
	"Ag": 1.72,
	"Cd": 1.58,
	"Sn": 2.17,
	"Sb": 2.06,
	"Te": 2.06,
	"I":  1.98,
	"Xe": 2.16,
	"Cs": 3.43,
	"Ba": 2.68,
	"Pt": 1.75,
	"Au": 1.66,
	"Hg": 1.55,
	"Pb": 2.02,
	"Bi": 2.07,
}

//Default valences used to complete atoms with implicit hydrogens.
//Only the elements of the SMILES "organic subset" have them, other
//elements never get implicit hydrogens.
var symbolValences = map[string][]int{
	"B":  {3},
	"C":  {4},
	"N":  {3, 5},
	"O":  {2},
	"P":  {3, 5},
	"S":  {2, 4, 6},
	"F":  {1},
	"Cl": {1},
	"Br": {1},
	"I":  {1},
}

//Jmol element colors, as RGB.
var symbolColor = map[string][3]uint8{
	"H":  {0xFF, 0xFF, 0xFF},
	"He": {0xD9, 0xFF, 0xFF},
	"Li": {0xCC, 0x80, 0xFF},
	"B":  {0xFF, 0xB5, 0xB5},
	"C":  {0x90, 0x90, 0x90},
	"N":  {0x30, 0x50, 0xF8},
	"O":  {0xFF, 0x0D, 0x0D},
	"F":  {0x90, 0xE0, 0x50},
	"Na": {0xAB, 0x5C, 0xF2},
	"Mg": {0x8A, 0xFF, 0x00},
	"Si": {0xF0, 0xC8, 0xA0},
	"P":  {0xFF, 0x80, 0x00},
	"S":  {0xFF, 0xFF, 0x30},
	"Cl": {0x1F, 0xF0, 0x1F},
	"K":  {0x8F, 0x40, 0xD4},
	"Ca": {0x3D, 0xFF, 0x00},
	"Fe": {0xE0, 0x66, 0x33},
	"Cu": {0xC8, 0x80, 0x33},
	"Zn": {0x7D, 0x80, 0xB0},
	"Br": {0xA6, 0x29, 0x29},
	"I":  {0x94, 0x00, 0x94},
}

//defaultColor is used for elements not in the color table (Jmol's "unknown" pink).
var defaultColor = [3]uint8{0xFF, 0x14, 0x93}

//defaultVdw is used for elements not in the van der Waals table
const defaultVdw = 2.0

//KnownElement returns true if symbol is in the element tables.
func KnownElement(symbol string) bool {
	_, ok := symbolMass[symbol]
	return ok
}

//AssignMass sets the mass of the atom from its symbol. Returns an error
//wrapping ErrUnknownElement if the element is not in the table.
func AssignMass(at *Atom) error {
	m, ok := symbolMass[at.Symbol]
	if !ok {
		return &CError{msg: fmt.Sprintf("No mass for %q", at.Symbol), deco: []string{"AssignMass"}, err: ErrUnknownElement}
	}
	at.Mass = m
	return nil
}

//CovalentRadius returns the covalent radius of the element in A, or an error
//wrapping ErrUnknownElement.
func CovalentRadius(symbol string) (float64, error) {
	r, ok := symbolCovrad[symbol]
	if !ok {
		return 0, &CError{msg: fmt.Sprintf("No covalent radius for %q", symbol), deco: []string{"CovalentRadius"}, err: ErrUnknownElement}
	}
	return r, nil
}

//VdwRadius returns the van der Waals radius of the element, or a default
//value of 2.0 A for elements not in the table.
func VdwRadius(symbol string) float64 {
	if r, ok := symbolVdwrad[symbol]; ok {
		return r
	}
	return defaultVdw
}

//Color returns the Jmol color of the element as RGB.
func Color(symbol string) (r, g, b uint8) {
	c, ok := symbolColor[symbol]
	if !ok {
		c = defaultColor
	}
	return c[0], c[1], c[2]
}
