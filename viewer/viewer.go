/*
 * viewer.go, part of chemview.
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

//Package viewer builds 3Dmol.js molecular viewers as embeddable HTML, and
//renders the chemview page around them.
package viewer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/google/uuid"
)

//DefaultScriptURL is where the 3Dmol.js library is loaded from.
const DefaultScriptURL = "https://cdn.jsdelivr.net/npm/3dmol@2.4.2/build/3Dmol-min.js"

//Style is a 3Dmol.js atom style specification, such as {"stick":{"colorscheme":"Jmol"}}.
type Style map[string]map[string]interface{}

//StickStyle returns the stick style with the given color scheme.
func StickStyle(scheme string) Style {
	return Style{"stick": {"colorscheme": scheme}}
}

type call struct {
	method string
	args   []interface{}
}

//Viewer records the calls made to it, and replays them as a 3Dmol.js script
//when its HTML is requested.
type Viewer struct {
	Width      int
	Height     int
	ID         string //id of the div element holding the viewer
	ScriptURL  string
	Background string
	calls      []call
}

//New returns a viewer of the given size in pixels, with a unique element id.
func New(width, height int) *Viewer {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("viewer: invalid size %dx%d", width, height))
	}
	return &Viewer{
		Width:      width,
		Height:     height,
		ID:         "chemview_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		ScriptURL:  DefaultScriptURL,
		Background: "white",
	}
}

//AddModel adds a molecule to the viewer. data is the molecule in the given format ("mol", "sdf", "xyz", "pdb").
func (V *Viewer) AddModel(data, format string) {
	V.calls = append(V.calls, call{"addModel", []interface{}{data, format}})
}

//SetStyle sets the style of all atoms.
func (V *Viewer) SetStyle(style Style) {
	V.calls = append(V.calls, call{"setStyle", []interface{}{map[string]interface{}{}, style}})
}

//ZoomTo centers and zooms the view on all the models.
func (V *Viewer) ZoomTo() {
	V.calls = append(V.calls, call{"zoomTo", nil})
}

//Calls returns the names of the methods recorded so far, in order.
func (V *Viewer) Calls() []string {
	ret := make([]string, len(V.calls))
	for i, c := range V.calls {
		ret[i] = c.method
	}
	return ret
}

var viewerTemplate = template.Must(template.New("viewer").Parse(`<div id="{{.ID}}" class="chemview-viewer" style="position: relative; width: {{.Width}}px; height: {{.Height}}px;"></div>
<script src="{{.ScriptURL}}"></script>
<script>
(function() {
	var element = document.getElementById({{.ID}});
	var viewer = $3Dmol.createViewer(element, {backgroundColor: {{.Background}}});
{{.Script}}	viewer.render();
})();
</script>
`))

//script returns the recorded calls as javascript statements on the variable "viewer".
//Arguments are JSON-encoded, which escapes <, > and & so they can't close the script element.
func (V *Viewer) script() template.JS {
	var b strings.Builder
	for _, c := range V.calls {
		args := make([]string, len(c.args))
		for i, a := range c.args {
			enc, err := json.Marshal(a)
			if err != nil {
				//arguments are strings and maps of strings, which always encode.
				panic(fmt.Sprintf("viewer: encoding argument of %s: %v", c.method, err))
			}
			args[i] = string(enc)
		}
		fmt.Fprintf(&b, "\tviewer.%s(%s);\n", c.method, strings.Join(args, ", "))
	}
	return template.JS(b.String())
}

//HTML returns the viewer as an HTML fragment: the div holding it and the scripts that load
//3Dmol.js and replay the recorded calls.
func (V *Viewer) HTML() template.HTML {
	var buf bytes.Buffer
	err := viewerTemplate.Execute(&buf, struct {
		*Viewer
		Script template.JS
	}{V, V.script()})
	if err != nil {
		panic("viewer: " + err.Error())
	}
	return template.HTML(buf.String())
}
