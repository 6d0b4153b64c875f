/*
 * files.go, part of chemview.
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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	v3 "github.com/rmera/chemview/v3"
)

//MolBlock family. Only the V2000 flavor of the MDL molfile is supported.

//charge codes of the V2000 atom block.
var chargeCodes = map[int]int{3: 1, 2: 2, 1: 3, 0: 0, -1: 5, -2: 6, -3: 7}

func codeCharge(code int) int {
	for k, v := range chargeCodes {
		if v == code {
			return k
		}
	}
	return 0
}

//MolBlockWrite writes the topology T with the coordinates coords to out
//as an MDL V2000 mol block. name goes in the header line. Formal charges
//and isotopes are written both in the atom block (charges only) and as "M  CHG"
//and "M  ISO" properties.
func MolBlockWrite(out io.Writer, name string, T Bonder, coords *v3.Matrix) error {
	if coords.NVecs() != T.Len() {
		return &CError{msg: fmt.Sprintf("Mismatched atoms (%d) and coordinates (%d)", T.Len(), coords.NVecs()), deco: []string{"MolBlockWrite"}}
	}
	if T.Len() > 999 || T.NBonds() > 999 {
		return &CError{msg: "V2000 mol blocks can't hold more than 999 atoms or bonds", deco: []string{"MolBlockWrite"}}
	}
	btypes := make([]int, T.NBonds())
	for i := range btypes {
		b := T.Bond(i)
		t, ok := bondType(b.Order)
		if !ok {
			return &CError{msg: fmt.Sprintf("Bond %d-%d has order %g, not representable in a V2000 mol block", b.At1.Index()+1, b.At2.Index()+1, b.Order), deco: []string{"MolBlockWrite"}}
		}
		btypes[i] = t
	}
	w := bufio.NewWriter(out)
	name = strings.ReplaceAll(name, "\n", " ")
	//the header line holds 80 bytes. Whole runes are removed.
	for len(name) > 80 {
		_, size := utf8.DecodeLastRuneInString(name)
		name = name[:len(name)-size]
	}
	fmt.Fprintf(w, "%s\n", name)
	fmt.Fprintf(w, "  %-8s%s3D\n", "chemview", time.Now().Format("0102061504"))
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "%3d%3d  0  0  0  0  0  0  0  0999 V2000\n", T.Len(), T.NBonds())
	var charged, isotopes []int
	for i := 0; i < T.Len(); i++ {
		at := T.Atom(i)
		code, ok := chargeCodes[at.Charge]
		if !ok {
			code = 0
		}
		if at.Charge != 0 {
			charged = append(charged, i)
		}
		if at.Isotope != 0 {
			isotopes = append(isotopes, i)
		}
		fmt.Fprintf(w, "%10.4f%10.4f%10.4f %-3s 0%3d  0  0  0  0  0  0  0  0  0  0\n", coords.At(i, 0), coords.At(i, 1), coords.At(i, 2), at.Symbol, code)
	}
	for i := 0; i < T.NBonds(); i++ {
		b := T.Bond(i)
		fmt.Fprintf(w, "%3d%3d%3d  0\n", b.At1.Index()+1, b.At2.Index()+1, btypes[i])
	}
	writeProps(w, "CHG", charged, func(i int) int { return T.Atom(i).Charge })
	writeProps(w, "ISO", isotopes, func(i int) int { return T.Atom(i).Isotope })
	fmt.Fprintf(w, "M  END\n")
	return w.Flush()
}

//bondType returns the V2000 bond type for a bond order: 1, 2 and 3 for single,
//double and triple bonds and 4 for aromatic ones.
func bondType(order float64) (int, bool) {
	switch order {
	case 1, 2, 3:
		return int(order), true
	case AromaticOrder:
		return 4, true
	}
	return 0, false
}

//writeProps writes "M  XXX" lines, with at most 8 entries per line.
func writeProps(w io.Writer, kind string, atoms []int, value func(int) int) {
	for start := 0; start < len(atoms); start += 8 {
		end := start + 8
		if end > len(atoms) {
			end = len(atoms)
		}
		fmt.Fprintf(w, "M  %s%3d", kind, end-start)
		for _, i := range atoms[start:end] {
			fmt.Fprintf(w, " %3d %3d", i+1, value(i))
		}
		fmt.Fprintf(w, "\n")
	}
}

//MolBlockString returns the mol block for T and coords as a string.
func MolBlockString(name string, T Bonder, coords *v3.Matrix) (string, error) {
	var b strings.Builder
	if err := MolBlockWrite(&b, name, T, coords); err != nil {
		return "", errDecorate(err, "MolBlockString")
	}
	return b.String(), nil
}

//MolBlockRead reads the first mol block (V2000) from in and returns a molecule
//with one frame and the name given in the header.
func MolBlockRead(in io.Reader) (*Molecule, string, error) {
	const funcname = "MolBlockRead"
	sc := bufio.NewScanner(in)
	lines := make([]string, 0, 64)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "$$$$") {
			break
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, "", &CError{msg: "Can't read mol block", deco: []string{funcname}, err: err}
	}
	if len(lines) < 4 {
		return nil, "", &CError{msg: "Mol block too short", deco: []string{funcname}}
	}
	name := strings.TrimSpace(lines[0])
	counts := lines[3]
	if !strings.Contains(counts, "V2000") || len(counts) < 6 {
		return nil, "", &CError{msg: "Only V2000 mol blocks are supported", deco: []string{funcname}}
	}
	natoms, err1 := strconv.Atoi(strings.TrimSpace(counts[0:3]))
	nbonds, err2 := strconv.Atoi(strings.TrimSpace(counts[3:6]))
	if err1 != nil || err2 != nil {
		return nil, "", &CError{msg: fmt.Sprintf("Malformed counts line %q", counts), deco: []string{funcname}}
	}
	if len(lines) < 4+natoms+nbonds {
		return nil, "", &CError{msg: "Mol block shorter than its counts line says", deco: []string{funcname}}
	}
	atoms := make([]*Atom, 0, natoms)
	rawcoords := make([]float64, 0, 3*natoms)
	for i := 0; i < natoms; i++ {
		line := lines[4+i]
		if len(line) < 34 {
			return nil, "", &CError{msg: fmt.Sprintf("Atom line %d too short", i+1), deco: []string{funcname}}
		}
		for j := 0; j < 3; j++ {
			f, err := strconv.ParseFloat(strings.TrimSpace(line[j*10:j*10+10]), 64)
			if err != nil {
				return nil, "", &CError{msg: fmt.Sprintf("Bad coordinate in atom line %d", i+1), deco: []string{funcname}, err: err}
			}
			rawcoords = append(rawcoords, f)
		}
		at := &Atom{Symbol: strings.TrimSpace(line[31:34]), FixedH: true}
		at.Name = at.Symbol
		if err := AssignMass(at); err != nil {
			return nil, "", errDecorate(err, funcname)
		}
		if len(line) >= 39 {
			if code, err := strconv.Atoi(strings.TrimSpace(line[36:39])); err == nil {
				at.Charge = codeCharge(code)
			}
		}
		atoms = append(atoms, at)
	}
	top := NewTopology(0, 0, atoms)
	for i := 0; i < nbonds; i++ {
		line := lines[4+natoms+i]
		if len(line) < 9 {
			return nil, "", &CError{msg: fmt.Sprintf("Bond line %d too short", i+1), deco: []string{funcname}}
		}
		a1, e1 := strconv.Atoi(strings.TrimSpace(line[0:3]))
		a2, e2 := strconv.Atoi(strings.TrimSpace(line[3:6]))
		order, e3 := strconv.Atoi(strings.TrimSpace(line[6:9]))
		if e1 != nil || e2 != nil || e3 != nil || a1 < 1 || a2 < 1 || a1 > natoms || a2 > natoms {
			return nil, "", &CError{msg: fmt.Sprintf("Malformed bond line %d", i+1), deco: []string{funcname}}
		}
		o := float64(order)
		if order == 4 {
			o = AromaticOrder
		}
		if _, err := top.AddBond(a1-1, a2-1, o); err != nil {
			return nil, "", errDecorate(err, funcname)
		}
	}
	//properties. "M  CHG" resets the charges given in the atom block.
	chgreset := false
	for _, line := range lines[4+natoms+nbonds:] {
		if strings.HasPrefix(line, "M  END") {
			break
		}
		if !strings.HasPrefix(line, "M  CHG") && !strings.HasPrefix(line, "M  ISO") {
			continue
		}
		fields := strings.Fields(line[6:])
		if len(fields) < 1 {
			continue
		}
		if strings.HasPrefix(line, "M  CHG") && !chgreset {
			for _, at := range atoms {
				at.Charge = 0
			}
			chgreset = true
		}
		for k := 1; k+1 < len(fields); k += 2 {
			idx, e1 := strconv.Atoi(fields[k])
			val, e2 := strconv.Atoi(fields[k+1])
			if e1 != nil || e2 != nil || idx < 1 || idx > natoms {
				return nil, "", &CError{msg: fmt.Sprintf("Malformed property line %q", line), deco: []string{funcname}}
			}
			if strings.HasPrefix(line, "M  CHG") {
				atoms[idx-1].Charge = val
			} else {
				atoms[idx-1].Isotope = val
			}
		}
	}
	top.SetCharge(0)
	for _, at := range atoms {
		top.SetCharge(top.Charge() + at.Charge)
	}
	coords, err := v3.NewMatrix(rawcoords)
	if err != nil {
		return nil, "", errDecorate(err, funcname)
	}
	mol, err := NewMolecule([]*v3.Matrix{coords}, top)
	if err != nil {
		return nil, "", errDecorate(err, funcname)
	}
	return mol, name, nil
}

//XYZWrite writes the coordinates coords of the atoms in T to out in XYZ format.
//comment goes in the second line.
func XYZWrite(out io.Writer, comment string, T Atomer, coords *v3.Matrix) error {
	if coords.NVecs() != T.Len() {
		return &CError{msg: fmt.Sprintf("Mismatched atoms (%d) and coordinates (%d)", T.Len(), coords.NVecs()), deco: []string{"XYZWrite"}}
	}
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "%-4d\n", T.Len())
	fmt.Fprintf(w, "%s\n", strings.ReplaceAll(comment, "\n", " "))
	for i := 0; i < T.Len(); i++ {
		fmt.Fprintf(w, "%-2s  %12.6f%12.6f%12.6f\n", T.Atom(i).Symbol, coords.At(i, 0), coords.At(i, 1), coords.At(i, 2))
	}
	return w.Flush()
}
