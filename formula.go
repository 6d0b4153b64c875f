/*
 * formula.go, part of chemview.
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
	"strconv"
	"strings"
)

//Formula returns the molecular formula of the atoms in T in Hill order: C first,
//H second and the rest alphabetically, or all alphabetically if there is no carbon.
//Implicit hydrogens are counted. A net charge is appended the way PubChem
//writes it ("+", "-", "+2", "-3").
func Formula(T Atomer) string {
	counts := make(map[string]int)
	charge := 0
	for i := 0; i < T.Len(); i++ {
		at := T.Atom(i)
		counts[at.Symbol]++
		charge += at.Charge
		if at.ImplicitH > 0 {
			counts["H"] += at.ImplicitH
		}
	}
	symbols := make([]string, 0, len(counts))
	for k := range counts {
		symbols = append(symbols, k)
	}
	_, hasC := counts["C"]
	sort.Slice(symbols, func(i, j int) bool {
		if hasC {
			ri, rj := hillRank(symbols[i]), hillRank(symbols[j])
			if ri != rj {
				return ri < rj
			}
		}
		return symbols[i] < symbols[j]
	})
	var b strings.Builder
	for _, s := range symbols {
		b.WriteString(s)
		if counts[s] > 1 {
			b.WriteString(strconv.Itoa(counts[s]))
		}
	}
	switch {
	case charge == 1:
		b.WriteString("+")
	case charge == -1:
		b.WriteString("-")
	case charge > 1:
		fmt.Fprintf(&b, "+%d", charge)
	case charge < -1:
		fmt.Fprintf(&b, "%d", charge)
	}
	return b.String()
}

func hillRank(s string) int {
	switch s {
	case "C":
		return 0
	case "H":
		return 1
	}
	return 2
}

//MolecularWeight returns the average molecular weight of the atoms in T, implicit
//hydrogens included. Isotope labels are ignored. Returns an error wrapping
//ErrUnknownElement if an element has no mass.
func MolecularWeight(T Atomer) (float64, error) {
	var w float64
	for i := 0; i < T.Len(); i++ {
		at := T.Atom(i)
		m, ok := symbolMass[at.Symbol]
		if !ok {
			return 0, &CError{msg: fmt.Sprintf("No mass for %q", at.Symbol), deco: []string{"MolecularWeight"}, err: ErrUnknownElement}
		}
		w += m + float64(at.ImplicitH)*symbolMass["H"]
	}
	return w, nil
}
