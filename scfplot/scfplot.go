/*
 * scfplot.go, part of gofdf.
 *
 * Copyright 2020 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation, either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 * Gofdf is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

//Package scfplot draws the SCF convergence history of a calculation,
//as recovered by the siesta package, with the gonum plotting library.
package scfplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicConvPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "SCF iteration"
	p.Y.Label.Text = "E_KS (eV)"
	p.Add(plotter.NewGrid())
	return p
}

//ConvergencePlot plots the given per-iteration energies (eV) and saves
//the plot as plotname.png. Returns error if the history is empty or
//the plot can't be drawn or saved.
func ConvergencePlot(history []float64, title, plotname string) error {
	if len(history) == 0 {
		return fmt.Errorf("given an empty SCF history")
	}
	p := basicConvPlot(title)
	pts := make(plotter.XYs, len(history))
	for i, e := range history {
		pts[i].X = float64(i + 1) //the program counts iterations from 1
		pts[i].Y = e
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.LineStyle.Color = color.RGBA{B: 255, A: 255}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
	p.Add(l, s)
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(5*vg.Inch, 4*vg.Inch, filename); err != nil {
		return err
	}
	return nil
}
