/*
 * page.go, part of chemview.
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
	"html/template"
	"io"
)

//Title is the heading of the page.
const Title = "Chemical Information and 3D Viewer"

//Field is one labelled property of the compound.
type Field struct {
	Label string
	Value string
}

//NewField returns a field with its value stripped of any markup.
func NewField(label, value string) Field {
	return Field{Label: label, Value: Sanitize(value)}
}

//PageData holds everything shown in a page. Only one of NotFound, Error
//and the compound sections (Fields, Viewer, Legend) is shown.
type PageData struct {
	Query    string
	Fields   []Field
	Viewer   template.HTML
	Legend   []LegendEntry
	NotFound string
	Error    string
	//StructureError is shown after the fields when the compound was found
	//but no 3D structure could be built.
	StructureError string
	DepictURL      string
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em auto; max-width: 48em; }
.error { color: #8a1f11; background: #fbe3e4; padding: 0.6em; border: 1px solid #fbc2c4; }
.legend .swatch { display: inline-block; width: 1em; height: 1em; border: 1px solid #999; vertical-align: middle; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<form method="get" action="/">
<label for="name">Enter chemical name:</label>
<input type="text" id="name" name="name" value="{{.Query}}" onchange="this.form.submit()" autofocus>
</form>
{{- with .Data}}
{{- if .NotFound}}
<div class="error" id="not-found">{{.NotFound}}</div>
{{- else if .Error}}
<div class="error" id="error">{{.Error}}</div>
{{- else if .Fields}}
<div class="properties">
{{- range .Fields}}
<p class="field"><strong>{{.Label}}:</strong> <span class="value">{{.Value}}</span></p>
{{- end}}
</div>
{{- if .StructureError}}
<div class="error" id="structure-error">{{.StructureError}}</div>
{{- else}}
<div class="viewer">{{.Viewer}}</div>
{{- if .DepictURL}}
<p><a href="{{.DepictURL}}">2D projection (PNG)</a></p>
{{- end}}
<div class="legend">
<p><strong>Legend:</strong></p>
<ul>
{{- range .Legend}}
<li><span class="swatch" style="background: {{.Swatch}}"></span> {{.Element}} ({{.Symbol}}) - {{.Color}}</li>
{{- end}}
</ul>
</div>
{{- end}}
{{- end}}
{{- end}}
</body>
</html>
`))

//RenderPage writes the full page to w. A nil data gives the page with only the input field.
func RenderPage(w io.Writer, data *PageData) error {
	query := ""
	if data != nil {
		query = data.Query
	}
	return pageTemplate.Execute(w, struct {
		Title string
		Query string
		Data  *PageData
	}{Title, query, data})
}
