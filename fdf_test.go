/*
 * fdf_test.go
 *
 * Copyright 2020  <rmera@Holmes>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation; either version 2 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston,
 * MA 02110-1301, USA.
 *
 *
 */

package fdf

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

//TestFDFRead reads the water input from the test directory and checks
//the typed accessors, including the label normalization and the
//values that come from included files.
func TestFDFRead(Te *testing.T) {
	D, err := Read("test/h2o.fdf")
	if err != nil {
		Te.Fatal(err)
	}
	name, err := D.Str("SystemName")
	if err != nil {
		Te.Error(err)
	}
	if name != "Water molecule" {
		Te.Errorf("SystemName: got %s", name)
	}
	n, err := D.Int("NumberOfAtoms")
	if err != nil || n != 3 {
		Te.Errorf("NumberOfAtoms: got %d, err: %v", n, err)
	}
	//mesh-cutoff, MeshCutoff and Mesh_Cut.off are all the same label
	cut, err := D.Physical("mesh-cutoff", "Ry")
	if err != nil {
		Te.Error(err)
	}
	if math.Abs(cut-150.0) > 1e-10 {
		Te.Errorf("MeshCutoff in Ry: got %f", cut)
	}
	cutev, err := D.Physical("Mesh_Cut.off", "eV")
	if err != nil {
		Te.Error(err)
	}
	if math.Abs(cutev-150*13.6059) > 0.1 {
		Te.Errorf("MeshCutoff in eV: got %f", cutev)
	}
	if spin := D.BoolOr("SpinPolarized", true); spin {
		Te.Error("SpinPolarized should read false")
	}
	if wf, err := D.Bool("WriteForces"); err != nil || !wf {
		Te.Errorf("WriteForces should read true, err: %v", err)
	}
	//These two come from other files, via %include and "<"
	if bs := D.StrOr("PAO.BasisSize", "none"); bs != "DZP" {
		Te.Errorf("PAO.BasisSize from included file: got %s", bs)
	}
	tol, err := D.Float("DM.Tolerance")
	if err != nil || math.Abs(tol-0.0001) > 1e-12 {
		Te.Errorf("DM.Tolerance from referenced file: got %v, err: %v", tol, err)
	}
	//A temperature is an energy here
	t, err := D.Physical("ElectronicTemperature", "meV")
	if err != nil {
		Te.Error(err)
	}
	if math.Abs(t-25.85) > 0.05 {
		Te.Errorf("300 K should be close to 25.85 meV, got %f", t)
	}
	fmt.Println("water deck read, MeshCutoff:", cut, "Ry /", cutev, "eV, kT:", t, "meV")
}

//TestRoundTrip checks the round-tripping property: writing a deck and
//parsing it back gives an equivalent record set.
func TestRoundTrip(Te *testing.T) {
	D, err := Read("test/h2o.fdf")
	if err != nil {
		Te.Fatal(err)
	}
	//The includes still point to test/, so we reparse from the test directory's
	//point of view by flattening first.
	flat := D.Flatten()
	D2, err := Parse(strings.NewReader(flat.String()))
	if err != nil {
		Te.Fatal(err)
	}
	r1 := flat.Records()
	r2 := D2.Records()
	if len(r1) != len(r2) {
		Te.Fatalf("record sets differ in size: %d vs %d", len(r1), len(r2))
	}
	for i, r := range r1 {
		o := r2[i]
		if normalizeLabel(r.Label) != normalizeLabel(o.Label) {
			Te.Errorf("record %d: label %s vs %s", i, r.Label, o.Label)
		}
		if len(r.Values) != len(o.Values) || len(r.Lines) != len(o.Lines) {
			Te.Errorf("record %d (%s): %v/%v vs %v/%v", i, r.Label, r.Values, r.Lines, o.Values, o.Lines)
			continue
		}
		for j := range r.Values {
			if r.Values[j] != o.Values[j] {
				Te.Errorf("record %d (%s): value %d: %s vs %s", i, r.Label, j, r.Values[j], o.Values[j])
			}
		}
		for j := range r.Lines {
			if strings.Join(strings.Fields(r.Lines[j]), " ") != strings.Join(strings.Fields(o.Lines[j]), " ") {
				Te.Errorf("record %d (%s): line %d: %s vs %s", i, r.Label, j, r.Lines[j], o.Lines[j])
			}
		}
	}
	fmt.Println("round trip preserved", len(r1), "records")
}

//TestSetRemove checks the in-place mutators.
func TestSetRemove(Te *testing.T) {
	D, err := Read("test/h2o.fdf")
	if err != nil {
		Te.Fatal(err)
	}
	D.SetPhysical("MeshCutoff", 300, "Ry")
	cut, err := D.Physical("MeshCutoff", "Ry")
	if err != nil || math.Abs(cut-300) > 1e-10 {
		Te.Errorf("MeshCutoff after Set: %f, err: %v", cut, err)
	}
	D.SetBool("UseSaveData", true)
	if !D.BoolOr("UseSaveData", false) {
		Te.Error("UseSaveData should have been appended as true")
	}
	if !D.Remove("SaveRho") {
		Te.Error("Remove(SaveRho) found nothing")
	}
	if D.Defined("SaveRho") {
		Te.Error("SaveRho still defined after Remove")
	}
	//Removing a label that lives in an included file also works
	if !D.Remove("PAO.SplitNorm") {
		Te.Error("Remove(PAO.SplitNorm) found nothing")
	}
	if D.Defined("PAO.SplitNorm") {
		Te.Error("PAO.SplitNorm still defined after Remove")
	}
}

//TestFlatten checks that a flattened deck is self-contained.
func TestFlatten(Te *testing.T) {
	D, err := Read("test/h2o.fdf")
	if err != nil {
		Te.Fatal(err)
	}
	flat := D.Flatten()
	if strings.Contains(flat.String(), "%include") {
		Te.Error("flattened deck still contains %include")
	}
	if !flat.Defined("PAO.EnergyShift") {
		Te.Error("flattened deck lost PAO.EnergyShift")
	}
	es, err := flat.Physical("PAO.EnergyShift", "Ry")
	if err != nil {
		Te.Error(err)
	}
	fmt.Println("energy shift:", es, "Ry")
}

//TestParseErrors checks that the obvious malformations are caught.
func TestParseErrors(Te *testing.T) {
	bad := []string{
		"%block Foo\n1 2 3\n", //never closed
		"%endblock Foo\n",     //never opened
		"%include\n",          //no file
		"%include \"no/such/file.fdf\"\n",
	}
	for i, b := range bad {
		if _, err := Parse(strings.NewReader(b)); err == nil {
			Te.Errorf("case %d should have failed: %q", i, b)
		} else {
			fmt.Println("expected failure:", err.Error())
		}
	}
	//and a malformed value on a well-formed deck
	D, err := Parse(strings.NewReader("MeshCutoff 150.0\n"))
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := D.Physical("MeshCutoff", "Ry"); err == nil {
		Te.Error("a unitless MeshCutoff should not be retrievable as a physical value")
	}
	if _, err := D.Bool("MeshCutoff"); err == nil {
		Te.Error("150.0 should not parse as a boolean")
	}
}

//TestBooleans checks the FDF truth literals, including the
//presence-only form.
func TestBooleans(Te *testing.T) {
	in := "A .true.\nB F\nC yes\nD no\nE\n"
	D, err := Parse(strings.NewReader(in))
	if err != nil {
		Te.Fatal(err)
	}
	expect := map[string]bool{"A": true, "B": false, "C": true, "D": false, "E": true}
	for k, v := range expect {
		got, err := D.Bool(k)
		if err != nil {
			Te.Error(err)
		}
		if got != v {
			Te.Errorf("%s: expected %v got %v", k, v, got)
		}
	}
}
