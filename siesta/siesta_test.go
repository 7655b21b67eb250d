/*
 * siesta_test.go
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

package siesta

import (
	"fmt"
	"math"
	"testing"

	"github.com/rmera/gofdf"
	"gonum.org/v1/gonum/mat"
)

//TestBuildInput builds an input for a water relaxation and reads it
//back with the fdf package to check what was written.
func TestBuildInput(Te *testing.T) {
	coords := mat.NewDense(3, 3, []float64{
		0.000, 0.000, 0.000,
		0.757, 0.586, 0.000,
		-0.757, 0.586, 0.000,
	})
	atoms := Symbols{"O", "H", "H"}
	Q := new(Calc)
	Q.SetDefaults()
	Q.RunType = CG
	Q.GeomSteps = 50
	Q.MaxForceTol = 0.02 //eV/Ang
	Q.WriteForces = true
	H := NewHandle()
	H.SetName("test/h2ojob")
	if err := H.BuildInput(coords, atoms, Q); err != nil {
		Te.Fatal(err)
	}
	D, err := fdf.Read("test/h2ojob.fdf")
	if err != nil {
		Te.Fatal(err)
	}
	if n, _ := D.Int("NumberOfAtoms"); n != 3 {
		Te.Errorf("NumberOfAtoms: %d", n)
	}
	if s, _ := D.Str("XC.authors"); s != "PBE" {
		Te.Errorf("XC.authors: %s", s)
	}
	cut, err := D.Physical("MeshCutoff", "Ry")
	if err != nil || math.Abs(cut-150) > 1e-10 {
		Te.Errorf("MeshCutoff: %f, err: %v", cut, err)
	}
	species, err := D.ChemicalSpecies()
	if err != nil || len(species) != 2 || species[0].AtomicNumber != 8 {
		Te.Errorf("species: %v, err: %v", species, err)
	}
	back, snum, err := D.AtomicCoordinates()
	if err != nil {
		Te.Fatal(err)
	}
	if r, _ := back.Dims(); r != 3 || snum[2] != 2 {
		Te.Errorf("coordinates miswritten: %d atoms, species %v", r, snum)
	}
	if rt, _ := D.Str("MD.TypeOfRun"); rt != "CG" {
		Te.Errorf("MD.TypeOfRun: %s", rt)
	}
	if !D.BoolOr("WriteForces", false) {
		Te.Error("WriteForces not written")
	}
	fmt.Println("input built and read back")
}

//TestBuildInputRefusals checks that the obvious mistakes don't reach
//the input file.
func TestBuildInputRefusals(Te *testing.T) {
	coords := mat.NewDense(2, 3, []float64{0, 0, 0, 1, 0, 0})
	H := NewHandle()
	H.SetName("test/bad")
	if err := H.BuildInput(coords, Symbols{"H"}, nil); err == nil {
		Te.Error("2 coordinates for 1 atom should be refused")
	}
	Q := new(Calc)
	Q.SetDefaults()
	Q.MixingWeight = 3.0 //nonsense, it's a fraction
	if err := H.BuildInput(coords, Symbols{"H", "H"}, Q); err == nil {
		Te.Error("a mixing weight of 3.0 should be refused")
	} else {
		fmt.Println("expected refusal:", err.Error())
	}
	Q.SetDefaults()
	if err := H.BuildInput(coords, Symbols{"H", "Xx"}, Q); err == nil {
		Te.Error("an unknown element should be refused")
	}
}

//TestCalcValidate checks the validation rules on their own.
func TestCalcValidate(Te *testing.T) {
	Q := new(Calc)
	Q.SetDefaults()
	if err := Q.Validate(); err != nil {
		Te.Error("the defaults should validate:", err)
	}
	Q.RunType = "Tango" //not a run type
	if err := Q.Validate(); err == nil {
		Te.Error("an unknown run type should be refused")
	}
	Q.SetDefaults()
	Q.MeshCutoff = -10
	if err := Q.Validate(); err == nil {
		Te.Error("a negative cutoff should be refused")
	}
}

//TestCalcFromDeck builds the typed options from the hand-written water
//deck of the fdf package tests.
func TestCalcFromDeck(Te *testing.T) {
	D, err := fdf.Read("../test/h2o.fdf")
	if err != nil {
		Te.Fatal(err)
	}
	Q, err := CalcFromDeck(D)
	if err != nil {
		Te.Fatal(err)
	}
	if Q.XCFunctional != "GGA" || Q.XCAuthors != "PBE" {
		Te.Errorf("functional misread: %s/%s", Q.XCFunctional, Q.XCAuthors)
	}
	if math.Abs(Q.MeshCutoff-150) > 1e-10 {
		Te.Errorf("MeshCutoff misread: %f", Q.MeshCutoff)
	}
	if math.Abs(Q.EnergyShift-25) > 1e-10 {
		Te.Errorf("EnergyShift misread: %f", Q.EnergyShift)
	}
	if Q.RunType != CG || Q.GeomSteps != 50 {
		Te.Errorf("run section misread: %s, %d steps", Q.RunType, Q.GeomSteps)
	}
	if !Q.WriteForces || Q.SpinPolarized {
		Te.Error("flags misread")
	}
	if err := Q.Validate(); err != nil {
		Te.Error("the water deck should validate:", err)
	}
	fmt.Println("typed options recovered from a hand-written deck")
}

//TestEnergy recovers the final energy and the SCF history from a
//stored output.
func TestEnergy(Te *testing.T) {
	H := NewHandle()
	H.SetName("test/h2o")
	energy, err := H.Energy()
	if err != nil {
		Te.Error(err)
	}
	if math.Abs(energy - -466.106360) > 1e-6 {
		Te.Errorf("final energy: %f", energy)
	}
	history, err := H.SCFConvergence()
	if err != nil {
		Te.Fatal(err)
	}
	if len(history) != 5 {
		Te.Fatalf("%d SCF iterations read, 5 expected", len(history))
	}
	if math.Abs(history[0] - -464.766347) > 1e-6 || math.Abs(history[4]-energy) > 1e-6 {
		Te.Errorf("SCF history misread: %v", history)
	}
	fmt.Println("energy", energy, "eV after", len(history), "SCF iterations")
}

//TestOptimizedGeometry reads back a relaxed geometry.
func TestOptimizedGeometry(Te *testing.T) {
	H := NewHandle()
	H.SetName("test/h2o")
	cell, coords, err := H.OptimizedGeometry()
	if err != nil {
		Te.Error(err)
	}
	if math.Abs(cell.At(0, 0)-10) > 1e-10 {
		Te.Errorf("cell misread: %f", cell.At(0, 0))
	}
	r, _ := coords.Dims()
	if r != 3 {
		Te.Fatalf("%d atoms read", r)
	}
	//fractional 0.0757 in a 10 Ang box
	if math.Abs(coords.At(1, 0)-0.757) > 1e-10 {
		Te.Errorf("coordinates misread: %f", coords.At(1, 0))
	}
	fmt.Println("relaxed geometry read:", r, "atoms")
}
