/*
 * doc.go, part of chemview.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package chem is the main package of chemview. It provides atom, bond and molecule structures
and the pieces of molecule handling needed to go from a compound record to something a 3D
viewer can draw.

	**chemview Capabilities**

    Atoms, bonds and topologies, with coordinates kept separately in v3.Matrix
	objects, one per frame.

    Kekulization of aromatic systems and completion of atoms with the hydrogens
	implied by their default valences.

    Molecular formula (Hill order) and average molecular weight.

    Reads and writes MDL mol blocks (V2000) and writes XYZ files.

The subpackages build on this one: smiles parses SMILES strings into topologies, embed
obtains 3D coordinates by distance geometry, pubchem queries the PubChem database, viewer
builds 3Dmol.js viewers, chemplot draws static depictions and chemjson serializes results.

Currently, each row of a v3.Matrix represents one point in space.*/
package chem
