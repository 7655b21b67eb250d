/*
 * scfplot_test.go
 *
 * Copyright 2020 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

/*This provides some tests for the plotting functions, in the form of
 * little functions that have practical applications*/

package scfplot

import (
	"fmt"
	"os"
	"testing"

	"github.com/rmera/gofdf/siesta"
)

//TestConvergencePlot recovers the SCF history of the stored water run
//and plots it into the test directory.
func TestConvergencePlot(Te *testing.T) {
	H := siesta.NewHandle()
	H.SetName("../siesta/test/h2o")
	history, err := H.SCFConvergence()
	if err != nil {
		Te.Fatal(err)
	}
	err = ConvergencePlot(history, "Water SCF convergence", "../test/h2oconv")
	if err != nil {
		Te.Error(err)
	}
	if _, err := os.Stat("../test/h2oconv.png"); err != nil {
		Te.Error("plot file not written:", err)
	}
	fmt.Println("plotted", len(history), "SCF iterations")
}

//TestConvergencePlotEmpty checks that an empty history is refused.
func TestConvergencePlotEmpty(Te *testing.T) {
	if err := ConvergencePlot(nil, "nothing", "../test/nothing"); err == nil {
		Te.Error("an empty history should be refused")
	}
}
