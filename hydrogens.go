/*
 * hydrogens.go, part of chemview.
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

//ComputeImplicitH sets the ImplicitH field of every atom in T that doesn't have
//a fixed hydrogen count, using the default valences of the element (the SMILES
//"organic subset" rules). Atoms without default valences get no implicit hydrogens.
//Aromatic bonds should be kekulized first.
func ComputeImplicitH(T *Topology) {
	for _, at := range T.Atoms {
		if at.FixedH {
			continue
		}
		used := 0
		for _, b := range at.Bonds {
			used += int(b.Order)
		}
		v, ok := valenceFor(at, used)
		if !ok {
			at.ImplicitH = 0
			continue
		}
		at.ImplicitH = v - used
	}
}

//AddHydrogens turns the implicit hydrogens of every atom in T into explicit H atoms,
//each bonded to its parent atom with a single bond, and appended at the end of the topology.
//The ImplicitH of the parents is set to zero. Hydrogens already present as atoms are not
//affected. It returns the number of atoms added.
func AddHydrogens(T *Topology) int {
	added := 0
	heavy := len(T.Atoms)
	for i := 0; i < heavy; i++ {
		at := T.Atoms[i]
		for j := 0; j < at.ImplicitH; j++ {
			h := T.AppendAtom(&Atom{Symbol: "H", Name: "H", Mass: symbolMass["H"], FixedH: true})
			if _, err := T.AddBond(at.index, h.index, 1); err != nil {
				//a new atom can't be bonded already
				panic(err.Error())
			}
			added++
		}
		at.ImplicitH = 0
	}
	return added
}

//HydrogenCount returns the total number of hydrogens in T, both explicit atoms
//and implicit ones.
func HydrogenCount(T Atomer) int {
	n := 0
	for i := 0; i < T.Len(); i++ {
		at := T.Atom(i)
		n += at.ImplicitH
		if at.Symbol == "H" {
			n++
		}
	}
	return n
}
