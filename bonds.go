/*
 * bonds.go, part of chemview.
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
	"sort"
)

//AromaticOrder is the order given to aromatic bonds before they are kekulized.
const AromaticOrder = 1.5

//Bond is a chemical bond between two atoms.
type Bond struct {
	Index int
	At1   *Atom
	At2   *Atom
	Order float64 //Order 0 means undetermined
}

//Cross returns the atom bonded to origin through B.
func (B *Bond) Cross(origin *Atom) *Atom {
	if origin == B.At1 {
		return B.At2
	}
	if origin == B.At2 {
		return B.At1
	}
	panic("Trying to cross a bond: The origin atom given is not present in the bond!") //This got to be a programming error, so a panic is warranted.
}

//Aromatic returns true if the bond has not been kekulized yet.
func (B *Bond) Aromatic() bool {
	return B.Order == AromaticOrder
}

//BondBetween returns the bond joining at1 and at2, or nil if they are not bonded.
func BondBetween(at1, at2 *Atom) *Bond {
	for _, b := range at1.Bonds {
		if b.At1 == at2 || b.At2 == at2 {
			return b
		}
	}
	return nil
}

//valenceFor returns the smallest default valence of at that can accommodate
//used bond orders, corrected by the formal charge of the atom. The second return
//value is false if the element has no default valences or if all of them are exceeded.
func valenceFor(at *Atom, used int) (int, bool) {
	vals, ok := symbolValences[at.Symbol]
	if !ok {
		return 0, false
	}
	for _, v := range vals {
		switch at.Symbol {
		case "N", "P", "O", "S":
			//N+ behaves like C, O+ like N, and so on.
			v += at.Charge
		default:
			if at.Charge < 0 {
				v += at.Charge
			} else {
				v -= at.Charge
			}
		}
		if v >= used {
			return v, true
		}
	}
	return 0, false
}

//needsDouble tells whether an aromatic atom has to get one double bond
//when its ring is kekulized.
func needsDouble(at *Atom) bool {
	used := 0
	for _, b := range at.Bonds {
		if b.Aromatic() {
			used++
			continue
		}
		used += int(b.Order)
	}
	if at.FixedH {
		used += at.ImplicitH
	}
	v, ok := valenceFor(at, used)
	return ok && v >= used+1
}

//Kekulize assigns alternating single and double bonds to the aromatic bonds of
//T, i.e. those with order AromaticOrder. The aromatic flag of the atoms is kept.
//It returns an error if no valid assignment exists.
func Kekulize(T *Topology) error {
	arombonds := make([]*Bond, 0, 6)
	for _, b := range T.Bonds {
		if b.Aromatic() {
			arombonds = append(arombonds, b)
		}
	}
	if len(arombonds) == 0 {
		return nil
	}
	pending := make(map[*Atom]bool)
	for _, b := range arombonds {
		for _, at := range []*Atom{b.At1, b.At2} {
			if _, ok := pending[at]; !ok {
				pending[at] = needsDouble(at)
			}
		}
	}
	candidates := func(at *Atom) []*Bond {
		ret := make([]*Bond, 0, 3)
		for _, b := range at.Bonds {
			if b.Aromatic() && pending[b.Cross(at)] {
				ret = append(ret, b)
			}
		}
		return ret
	}
	var match func() bool
	match = func() bool {
		//we always continue from the most constrained atom.
		var best *Atom
		var bestc []*Bond
		for at, p := range pending {
			if !p {
				continue
			}
			c := candidates(at)
			if best == nil || len(c) < len(bestc) || (len(c) == len(bestc) && at.index < best.index) {
				best, bestc = at, c
			}
		}
		if best == nil {
			return true
		}
		sort.Slice(bestc, func(i, j int) bool { return bestc[i].Index < bestc[j].Index })
		for _, b := range bestc {
			other := b.Cross(best)
			pending[best], pending[other] = false, false
			b.Order = 2
			if match() {
				return true
			}
			b.Order = AromaticOrder
			pending[best], pending[other] = true, true
		}
		return false
	}
	if !match() {
		return &CError{msg: fmt.Sprintf("Can't kekulize the aromatic system (%d aromatic bonds)", len(arombonds)), deco: []string{"Kekulize"}}
	}
	for _, b := range arombonds {
		if b.Aromatic() {
			b.Order = 1
		}
	}
	return nil
}
