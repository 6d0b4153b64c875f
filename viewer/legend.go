/*
 * legend.go, part of chemview.
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

package viewer

import (
	"fmt"
	"html"

	chem "github.com/rmera/chemview"
	"github.com/microcosm-cc/bluemonday"
)

//LegendEntry is one line of the color legend.
type LegendEntry struct {
	Element string
	Symbol  string
	Color   string //name of the color, as shown to the user
}

//Swatch returns the CSS color the Jmol scheme uses for the element.
func (L LegendEntry) Swatch() string {
	r, g, b := chem.Color(L.Symbol)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func (L LegendEntry) String() string {
	return fmt.Sprintf("%s (%s) - %s", L.Element, L.Symbol, L.Color)
}

//Legend returns the fixed color legend shown under the viewer.
func Legend() []LegendEntry {
	return []LegendEntry{
		{"Carbon", "C", "Light Gray"},
		{"Oxygen", "O", "Red"},
		{"Nitrogen", "N", "Blue"},
		{"Hydrogen", "H", "White"},
		{"Sulfur", "S", "Yellow"},
		{"Phosphorus", "P", "Orange"},
	}
}

var strict = bluemonday.StrictPolicy()

//Sanitize removes all markup from s, and returns it as plain text (the entities
//the sanitizer adds are unescaped, the page template escapes the text again).
//Text coming from PubChem goes through it before it is shown.
func Sanitize(s string) string {
	return html.UnescapeString(strict.Sanitize(s))
}
