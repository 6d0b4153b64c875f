/*
 * smiles.go, part of chemview.
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

//Package smiles reads SMILES strings into chemview topologies.
//
//The whole OpenSMILES syntax is accepted except for the wildcard atom "*". Stereochemistry
//marks (chirality and the directional bonds "/" and "\") are parsed and discarded,
//since the structures built from the topologies are not stereo-aware.
package smiles

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	chem "github.com/rmera/chemview"
)

//Error is the error returned when a SMILES string can't be parsed. It satisfies chem.Error.
type Error struct {
	SMILES string
	Pos    int //0-based position of the offending character.
	msg    string
	deco   []string
	err    error
}

func (err *Error) Error() string {
	return fmt.Sprintf("smiles: %s at position %d of %q", err.msg, err.Pos, err.SMILES)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

func (err *Error) Unwrap() error {
	return err.err
}

type ringBond struct {
	atom  int
	order float64 //0 if not given
}

type parser struct {
	s       string
	pos     int
	top     *chem.Topology
	prev    int //index of the atom new atoms bond to, -1 if none.
	branch  []int
	order   float64 //pending bond order, 0 if none.
	bondpos int
	rings   map[int]ringBond
}

//Parse reads the SMILES string s and returns the corresponding topology. Aromatic bonds
//are kekulized and every atom gets its implicit hydrogen count, either from the brackets or
//from the default valences of the organic subset, but hydrogens are not added as atoms.
func Parse(s string) (*chem.Topology, error) {
	s = strings.TrimSpace(s)
	//Anything after the first blank is a name, not part of the SMILES.
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		s = s[:i]
	}
	p := &parser{s: s, prev: -1, rings: make(map[int]ringBond), top: chem.NewTopology(0, 0, nil)}
	if s == "" {
		return nil, p.errorf(0, "empty SMILES")
	}
	if err := p.parse(); err != nil {
		return nil, err
	}
	if err := chem.Kekulize(p.top); err != nil {
		return nil, &Error{SMILES: s, Pos: len(s), msg: "aromatic system can't be kekulized", deco: []string{"Parse"}, err: err}
	}
	chem.ComputeImplicitH(p.top)
	charge := 0
	for _, at := range p.top.Atoms {
		charge += at.Charge
	}
	p.top.SetCharge(charge)
	return p.top, nil
}

func (p *parser) errorf(pos int, format string, args ...interface{}) *Error {
	return &Error{SMILES: p.s, Pos: pos, msg: fmt.Sprintf(format, args...), deco: []string{"Parse"}}
}

func (p *parser) parse() error {
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		switch {
		case c == '(':
			if p.prev < 0 {
				return p.errorf(p.pos, "branch without a preceding atom")
			}
			p.branch = append(p.branch, p.prev)
			p.pos++
		case c == ')':
			if len(p.branch) == 0 {
				return p.errorf(p.pos, "unbalanced parenthesis")
			}
			if p.order != 0 {
				return p.errorf(p.bondpos, "bond without a following atom")
			}
			p.prev = p.branch[len(p.branch)-1]
			p.branch = p.branch[:len(p.branch)-1]
			p.pos++
		case strings.IndexByte("-=#$:/\\", c) >= 0:
			if p.order != 0 {
				return p.errorf(p.pos, "two consecutive bonds")
			}
			if p.prev < 0 {
				return p.errorf(p.pos, "bond without a preceding atom")
			}
			p.order = bondOrder(c)
			p.bondpos = p.pos
			p.pos++
		case c == '.':
			if p.order != 0 {
				return p.errorf(p.bondpos, "bond without a following atom")
			}
			if p.prev < 0 {
				return p.errorf(p.pos, "dot without a preceding atom")
			}
			p.prev = -1
			p.pos++
		case c == '%' || (c >= '0' && c <= '9'):
			if err := p.ring(); err != nil {
				return err
			}
		case c == '[':
			if err := p.bracketAtom(); err != nil {
				return err
			}
		default:
			if err := p.organicAtom(); err != nil {
				return err
			}
		}
	}
	if p.order != 0 {
		return p.errorf(p.bondpos, "bond without a following atom")
	}
	if len(p.branch) != 0 {
		return p.errorf(len(p.s), "unclosed branch")
	}
	if len(p.rings) > 0 {
		nums := make([]int, 0, len(p.rings))
		for num := range p.rings {
			nums = append(nums, num)
		}
		sort.Ints(nums)
		return p.errorf(len(p.s), "unclosed ring %d", nums[0])
	}
	return nil
}

func bondOrder(c byte) float64 {
	switch c {
	case '=':
		return 2
	case '#':
		return 3
	case '$':
		return 4
	case ':':
		return chem.AromaticOrder
	}
	//'-', '/' and '\'
	return 1
}

//defaultOrder returns the order of a bond not written in the SMILES.
func defaultOrder(a, b *chem.Atom) float64 {
	if a.Aromatic && b.Aromatic {
		return chem.AromaticOrder
	}
	return 1
}

//addAtom appends at to the topology and bonds it to the previous atom, if any.
func (p *parser) addAtom(at *chem.Atom, start int) error {
	if err := chem.AssignMass(at); err != nil {
		return &Error{SMILES: p.s, Pos: start, msg: fmt.Sprintf("unknown element %q", at.Symbol), deco: []string{"Parse"}, err: err}
	}
	at.Name = at.Symbol
	p.top.AppendAtom(at)
	if p.prev >= 0 {
		order := p.order
		if order == 0 {
			order = defaultOrder(p.top.Atom(p.prev), at)
		}
		if _, err := p.top.AddBond(p.prev, at.Index(), order); err != nil {
			return p.errorf(start, "%s", err.Error())
		}
	}
	p.order = 0
	p.prev = at.Index()
	return nil
}

var organic = []string{"Cl", "Br", "B", "C", "N", "O", "P", "S", "F", "I", "b", "c", "n", "o", "p", "s"}

func (p *parser) organicAtom() error {
	start := p.pos
	for _, sym := range organic {
		if strings.HasPrefix(p.s[p.pos:], sym) {
			p.pos += len(sym)
			at := &chem.Atom{Symbol: sym}
			if unicode.IsLower(rune(sym[0])) {
				at.Symbol = strings.ToUpper(sym)
				at.Aromatic = true
			}
			return p.addAtom(at, start)
		}
	}
	if p.s[p.pos] == '*' {
		return p.errorf(start, "wildcard atoms are not supported")
	}
	return p.errorf(start, "unexpected character %q", p.s[p.pos])
}

//aromatic symbols allowed inside brackets
var bracketAromatic = []string{"se", "as", "te", "b", "c", "n", "o", "p", "s"}

func (p *parser) bracketAtom() error {
	start := p.pos
	end := strings.IndexByte(p.s[p.pos:], ']')
	if end < 0 {
		return p.errorf(start, "unclosed bracket atom")
	}
	in := p.s[p.pos+1 : p.pos+end]
	p.pos += end + 1
	at := &chem.Atom{FixedH: true}
	i := 0
	//isotope
	for i < len(in) && in[i] >= '0' && in[i] <= '9' {
		i++
	}
	if i > 0 {
		at.Isotope, _ = strconv.Atoi(in[:i])
	}
	//symbol
	if i >= len(in) {
		return p.errorf(start, "bracket atom without element")
	}
	switch {
	case in[i] >= 'A' && in[i] <= 'Z':
		sym := in[i : i+1]
		if i+1 < len(in) && in[i+1] >= 'a' && in[i+1] <= 'z' && chem.KnownElement(in[i:i+2]) {
			sym = in[i : i+2]
		}
		if !chem.KnownElement(sym) {
			return &Error{SMILES: p.s, Pos: start + 1 + i, msg: fmt.Sprintf("unknown element %q", sym), deco: []string{"Parse"}, err: chem.ErrUnknownElement}
		}
		at.Symbol = sym
		i += len(sym)
	case in[i] >= 'a' && in[i] <= 'z':
		found := false
		for _, sym := range bracketAromatic {
			if strings.HasPrefix(in[i:], sym) {
				at.Symbol = strings.ToUpper(sym[:1]) + sym[1:]
				at.Aromatic = true
				i += len(sym)
				found = true
				break
			}
		}
		if !found {
			return p.errorf(start+1+i, "unknown aromatic element")
		}
	case in[i] == '*':
		return p.errorf(start+1+i, "wildcard atoms are not supported")
	default:
		return p.errorf(start+1+i, "bracket atom without element")
	}
	//chirality, ignored.
	chiral := false
	for i < len(in) && in[i] == '@' {
		chiral = true
		i++
	}
	for chiral && i+1 < len(in) && strings.Contains("TASO", in[i:i+1]) && in[i+1] >= 'A' && in[i+1] <= 'Z' {
		i += 2
		for i < len(in) && in[i] >= '0' && in[i] <= '9' {
			i++
		}
	}
	//hydrogens
	if i < len(in) && in[i] == 'H' {
		i++
		at.ImplicitH = 1
		j := i
		for i < len(in) && in[i] >= '0' && in[i] <= '9' {
			i++
		}
		if i > j {
			at.ImplicitH, _ = strconv.Atoi(in[j:i])
		}
	}
	//charge
	if i < len(in) && (in[i] == '+' || in[i] == '-') {
		sign := 1
		if in[i] == '-' {
			sign = -1
		}
		c := in[i]
		i++
		j := i
		for i < len(in) && in[i] >= '0' && in[i] <= '9' {
			i++
		}
		switch {
		case i > j:
			n, _ := strconv.Atoi(in[j:i])
			at.Charge = sign * n
		default:
			n := 1
			for i < len(in) && in[i] == c {
				n++
				i++
			}
			at.Charge = sign * n
		}
	}
	//atom class, ignored.
	if i < len(in) && in[i] == ':' {
		i++
		for i < len(in) && in[i] >= '0' && in[i] <= '9' {
			i++
		}
	}
	if i != len(in) {
		return p.errorf(start+1+i, "unexpected character %q in bracket atom", in[i])
	}
	return p.addAtom(at, start)
}

func (p *parser) ring() error {
	start := p.pos
	var num int
	if p.s[p.pos] == '%' {
		if p.pos+2 >= len(p.s) || !isDigit(p.s[p.pos+1]) || !isDigit(p.s[p.pos+2]) {
			return p.errorf(start, "ring number after %% needs two digits")
		}
		num, _ = strconv.Atoi(p.s[p.pos+1 : p.pos+3])
		p.pos += 3
	} else {
		num = int(p.s[p.pos] - '0')
		p.pos++
	}
	if p.prev < 0 {
		return p.errorf(start, "ring bond without a preceding atom")
	}
	open, ok := p.rings[num]
	if !ok {
		p.rings[num] = ringBond{atom: p.prev, order: p.order}
		p.order = 0
		return nil
	}
	delete(p.rings, num)
	order := p.order
	switch {
	case order == 0 && open.order == 0:
		order = defaultOrder(p.top.Atom(open.atom), p.top.Atom(p.prev))
	case order == 0:
		order = open.order
	case open.order != 0 && open.order != order:
		return p.errorf(start, "conflicting bond orders for ring %d", num)
	}
	if _, err := p.top.AddBond(open.atom, p.prev, order); err != nil {
		return p.errorf(start, "%s", err.Error())
	}
	p.order = 0
	return nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
