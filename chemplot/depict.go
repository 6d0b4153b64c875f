/*
 * depict.go, part of chemview.
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

//Package chemplot draws molecules with gonum/plot.
package chemplot

import (
	"fmt"
	"image/color"
	"io"
	"math"

	chem "github.com/rmera/chemview"
	v3 "github.com/rmera/chemview/v3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//DepictSize is the side of the square PNG images Depict produces.
var DepictSize = 4 * vg.Inch

var bondColor = color.RGBA{R: 80, G: 80, B: 80, A: 255}

func basicDepictPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.HideAxes()
	p.BackgroundColor = color.White
	return p
}

//bestPlane returns the two unit vectors spanning the plane that best fits the
//points in coords. For fewer than 3 points, or if the plane can't be obtained, the xy plane is used.
func bestPlane(coords *v3.Matrix) (*v3.Matrix, *v3.Matrix) {
	a, b, err := chem.PlaneAxes(coords)
	if err != nil {
		x, _ := v3.NewMatrix([]float64{1, 0, 0})
		y, _ := v3.NewMatrix([]float64{0, 1, 0})
		return x, y
	}
	return a, b
}

//project returns the 2D coordinates of each point of coords in the plane spanned by the unit vectors a and b.
func project(coords, a, b *v3.Matrix) plotter.XYs {
	c := coords.Centroid()
	ret := make(plotter.XYs, coords.NVecs())
	for i := range ret {
		for k := 0; k < 3; k++ {
			d := coords.At(i, k) - c.At(0, k)
			ret[i].X += d * a.At(0, k)
			ret[i].Y += d * b.At(0, k)
		}
	}
	return ret
}

//Depict writes to out a PNG image of the current frame of mol projected on its best plane.
//Bonds are drawn as lines and atoms as circles with the Jmol colors of their elements.
func Depict(mol *chem.Molecule, title string, out io.Writer) error {
	if mol == nil || mol.LenFrames() == 0 {
		return fmt.Errorf("chemplot: nothing to depict")
	}
	coords := mol.Coords[mol.Current()]
	if coords.NVecs() != mol.Len() {
		return fmt.Errorf("chemplot: %d atoms but %d coordinates", mol.Len(), coords.NVecs())
	}
	a, b := bestPlane(coords)
	xy := project(coords, a, b)
	p := basicDepictPlot(title)
	for i := 0; i < mol.NBonds(); i++ {
		bond := mol.Bond(i)
		l, err := plotter.NewLine(plotter.XYs{xy[bond.At1.Index()], xy[bond.At2.Index()]})
		if err != nil {
			return fmt.Errorf("chemplot: bond %d: %w", i, err)
		}
		l.LineStyle.Width = vg.Points(2 * bond.Order)
		l.LineStyle.Color = bondColor
		p.Add(l)
	}
	//keep the aspect ratio, so the molecule is not deformed.
	span := 1.0
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		s, err := plotter.NewScatter(plotter.XYs{xy[i]})
		if err != nil {
			return fmt.Errorf("chemplot: atom %d: %w", i, err)
		}
		r, g, b := chem.Color(at.Symbol)
		s.GlyphStyle.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = vg.Points(6)
		if at.Symbol == "H" {
			s.GlyphStyle.Radius = vg.Points(4)
		}
		p.Add(s)
		//the outline, so white atoms are visible on white.
		o, _ := plotter.NewScatter(plotter.XYs{xy[i]})
		o.GlyphStyle = draw.GlyphStyle{Color: bondColor, Shape: draw.RingGlyph{}, Radius: s.GlyphStyle.Radius}
		p.Add(o)
		span = math.Max(span, math.Max(math.Abs(xy[i].X), math.Abs(xy[i].Y)))
	}
	span += 0.5
	p.X.Min, p.X.Max = -span, span
	p.Y.Min, p.Y.Max = -span, span
	wt, err := p.WriterTo(DepictSize, DepictSize, "png")
	if err != nil {
		return fmt.Errorf("chemplot: %w", err)
	}
	if _, err := wt.WriteTo(out); err != nil {
		return fmt.Errorf("chemplot: writing image: %w", err)
	}
	return nil
}
