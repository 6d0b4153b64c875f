/*
 * chem.go, part of chemview.
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

	v3 "github.com/rmera/chemview/v3"
)

/**Note: Many functions here panic instead of returning errors. This is because they are "fundamental"
 * functions. If something goes wrong here, the program is most likely wrong and should
 * crash. Most panics are related to using the function on a nil object or trying to access out-of bounds
 * fields**/

//Atom contains the atoms read except for the coordinates, which will be in a matrix.
type Atom struct {
	Name      string
	ID        int     //The serial number of the atom, as used in molfiles (1-based).
	Tag       int     //Just added this for something that someone might want to keep that is not a float.
	Symbol    string  //Chemical element symbol, capitalized ("C", "Cl").
	Mass      float64 //Average atomic mass, filled by AssignMass
	Charge    int     //Formal charge
	Isotope   int     //0 means natural abundance
	Aromatic  bool
	ImplicitH int  //Hydrogens implied by the valence but not present as atoms.
	FixedH    bool //ImplicitH was given explicitly (bracket atoms) and must not be recomputed.
	Bonds     []*Bond
	index     int
}

//Index returns the position of the atom in the topology that contains it,
//as set by the last call to FillIndexes.
func (A *Atom) Index() int {
	return A.index
}

//Copy returns a copy of the Atom object. Bonds are not copied.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	Newat := new(Atom)
	*Newat = *A
	Newat.Bonds = nil
	return Newat
}

//Degree returns the number of explicit bonds of the atom.
func (A *Atom) Degree() int {
	return len(A.Bonds)
}

//BondOrderSum returns the sum of the orders of the explicit bonds of the atom.
//Aromatic bonds which have not been kekulized count as 1.5
func (A *Atom) BondOrderSum() float64 {
	var s float64
	for _, b := range A.Bonds {
		s += b.Order
	}
	return s
}

//Neighbors returns the atoms bonded to A.
func (A *Atom) Neighbors() []*Atom {
	ret := make([]*Atom, 0, len(A.Bonds))
	for _, b := range A.Bonds {
		ret = append(ret, b.Cross(A))
	}
	return ret
}

/*****Topology type***/

//Topology contains information about a molecule which is not expected to change in time
//(i.e. everything except for coordinates), including the bonds.
type Topology struct {
	Atoms    []*Atom
	Bonds    []*Bond
	charge   int
	unpaired int
}

//NewTopology returns a topology with the given charge, unpaired electrons and atoms.
//If the charge given is 0 the total charge is taken as the sum of the formal charges of
//the atoms.
func NewTopology(charge, unpaired int, atoms []*Atom) *Topology {
	top := new(Topology)
	top.Atoms = atoms
	top.unpaired = unpaired
	if charge == 0 {
		for _, v := range atoms {
			charge += v.Charge
		}
	}
	top.charge = charge
	top.FillIndexes()
	return top
}

/*Topology methods*/

//Charge gets the total charge of the topology
func (T *Topology) Charge() int {
	return T.charge
}

//Unpaired gets the number of unpaired electrons in the topology
func (T *Topology) Unpaired() int {
	return T.unpaired
}

//SetCharge sets the total charge of the topology to i
func (T *Topology) SetCharge(i int) {
	T.charge = i
}

//SetUnpaired sets the number of unpaired electrons in the topology to i
func (T *Topology) SetUnpaired(i int) {
	T.unpaired = i
}

//FillIndexes sets the index of each atom to its position in the topology, and
//its ID to the index+1.
func (T *Topology) FillIndexes() {
	for key, val := range T.Atoms {
		val.index = key
		val.ID = key + 1
	}
	for key, val := range T.Bonds {
		val.Index = key
	}
}

//Atom returns the Atom corresponding to the index i
//of the Atom slice in the Topology. Panics if
//out of range.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() || i < 0 {
		panic("Topology: Requested Atom out of bounds")
	}
	return T.Atoms[i]
}

//AppendAtom appends an atom at the end of the reference and returns it.
func (T *Topology) AppendAtom(at *Atom) *Atom {
	at.index = len(T.Atoms)
	at.ID = at.index + 1
	T.Atoms = append(T.Atoms, at)
	return at
}

//Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.Atoms)
}

//Bond returns the bond with index i. Panics if out of range.
func (T *Topology) Bond(i int) *Bond {
	if i >= len(T.Bonds) || i < 0 {
		panic("Topology: Requested Bond out of bounds")
	}
	return T.Bonds[i]
}

//NBonds returns the number of bonds in the topology.
func (T *Topology) NBonds() int {
	return len(T.Bonds)
}

//AddBond bonds the atoms with indexes i and j with a bond of the given order
//and returns the new bond. It returns an error if the atoms are the same or
//if they are already bonded.
func (T *Topology) AddBond(i, j int, order float64) (*Bond, error) {
	if i == j {
		return nil, &CError{msg: fmt.Sprintf("Can't bond atom %d to itself", i), deco: []string{"AddBond"}}
	}
	at1 := T.Atom(i)
	at2 := T.Atom(j)
	if BondBetween(at1, at2) != nil {
		return nil, &CError{msg: fmt.Sprintf("Atoms %d and %d are already bonded", i, j), deco: []string{"AddBond"}}
	}
	b := &Bond{Index: len(T.Bonds), At1: at1, At2: at2, Order: order}
	at1.Bonds = append(at1.Bonds, b)
	at2.Bonds = append(at2.Bonds, b)
	T.Bonds = append(T.Bonds, b)
	return b, nil
}

//Copy returns a deep copy of the topology, bonds included.
func (T *Topology) Copy() *Topology {
	ats := make([]*Atom, T.Len())
	for key, val := range T.Atoms {
		ats[key] = val.Copy()
	}
	top := &Topology{Atoms: ats, charge: T.charge, unpaired: T.unpaired}
	top.FillIndexes()
	for _, b := range T.Bonds {
		//can't fail, the original topology was valid.
		if _, err := top.AddBond(b.At1.index, b.At2.index, b.Order); err != nil {
			panic(err.Error())
		}
	}
	return top
}

/**Type Molecule**/

//Molecule contains all the info for a molecule in many states. The info that is expected to change between states,
//the coordinates, is stored separately from other atomic info.
type Molecule struct {
	*Topology
	Coords  []*v3.Matrix
	current int
}

//NewMolecule makes a molecule with the given topology and coordinate frames. It returns
//an error if any frame doesn't have one coordinate per atom.
func NewMolecule(coords []*v3.Matrix, top *Topology) (*Molecule, error) {
	if top == nil {
		return nil, &CError{msg: "Supplied a nil Topology", deco: []string{"NewMolecule"}}
	}
	mol := &Molecule{Topology: top, Coords: coords}
	if err := mol.Corrupted(); err != nil {
		return nil, errDecorate(err, "NewMolecule")
	}
	return mol, nil
}

//Corrupted checks whether the molecule is corrupted, i.e. the
//coordinates don't match the number of atoms.
func (M *Molecule) Corrupted() error {
	for i, c := range M.Coords {
		if c == nil || c.NVecs() != M.Len() {
			n := 0
			if c != nil {
				n = c.NVecs()
			}
			return &CError{msg: fmt.Sprintf("Inconsistent coordinates/atoms in frame %d: Atoms %d, coords: %d", i, M.Len(), n), deco: []string{"Corrupted"}}
		}
	}
	return nil
}

//AddFrame appends newframe to the molecule coordinates. Panics if the number of coordinates doesn't
//match the number of atoms.
func (M *Molecule) AddFrame(newframe *v3.Matrix) {
	if newframe == nil {
		panic("Attempted to add nil frame")
	}
	if M.Len() != newframe.NVecs() {
		panic(fmt.Sprintf("Wrong number of coordinates (%d)", newframe.NVecs()))
	}
	M.Coords = append(M.Coords, newframe)
}

//Coord returns a view of the coordinates of atom atom in frame frame.
//Panics if frame or atom are out of range.
func (M *Molecule) Coord(atom, frame int) *v3.Matrix {
	if frame >= len(M.Coords) {
		panic(fmt.Sprintf("Frame requested (%d) out of range", frame))
	}
	return M.Coords[frame].VecView(atom)
}

//LenFrames returns the number of frames in the molecule
func (M *Molecule) LenFrames() int {
	return len(M.Coords)
}

//Current returns the number of the next frame to be read
func (M *Molecule) Current() int {
	if M == nil {
		return -1
	}
	return M.current
}

//Next returns the next frame of the molecule, or an error if there are no more frames.
func (M *Molecule) Next() (*v3.Matrix, error) {
	if M.current >= len(M.Coords) {
		return nil, &CError{msg: "No more frames", deco: []string{"Next"}}
	}
	M.current++
	return M.Coords[M.current-1], nil
}
