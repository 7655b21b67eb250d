/*
 * calc.go, part of gofdf.
 *
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
 *
 * Gofdf is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package siesta

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rmera/gofdf"
	"gonum.org/v1/gonum/mat"
)

//The run types the typed layer knows. Anything else can still be set
//on the deck by hand after BuildInput.
const (
	SinglePoint      = "SinglePoint" //written as CG with 0 steps
	CG               = "CG"
	Broyden          = "Broyden"
	FIRE             = "FIRE"
	Verlet           = "Verlet"
	Nose             = "Nose"
	ParrinelloRahman = "ParrinelloRahman"
	Anneal           = "Anneal"
	FC               = "FC"
)

//Calc contains the options for a calculation. Not all the options of
//the simulation program are represented, only the ones a user changes
//often; BuildInput accepts a tail file for the rest. Energies without
//an explicit unit in the field comment are in eV, distances in
//Angstrom, as everywhere else in the library.
type Calc struct {
	XCFunctional string //LDA, GGA or VDW
	XCAuthors    string //CA, PZ, PW92, PBE, revPBE, BLYP...

	BasisSize   string  //SZ, DZ, SZP, DZP, TZP
	EnergyShift float64 //meV, controls the orbital confinement
	SplitNorm   float64

	SpinPolarized bool
	NetCharge     float64
	MeshCutoff    float64 //Ry, resolution of the real-space grid
	KGrid         [3]int  //Monkhorst-Pack divisions, zero value means gamma-point only

	MaxSCFIterations      int
	MixingWeight          float64
	NumberPulay           int
	DMTolerance           float64
	ElectronicTemperature float64 //K

	RunType           string  //one of the constants above
	GeomSteps         int     //CG/Broyden/FIRE steps, or MD steps for the dynamics run types
	MaxForceTol       float64 //eV/Ang
	VariableCell      bool
	TimeStep          float64 //fs, only for the dynamics run types
	TargetTemperature float64 //K, only for Nose and Anneal
	TargetPressure    float64 //GPa, only for the variable-cell dynamics

	SaveRho                    bool
	SaveDeltaRho               bool
	SaveElectrostaticPotential bool
	WriteCoorStep              bool
	WriteForces                bool
	MullikenPop                int //0 to 3, as the program counts it

	UseSaveDM bool //restart from a previous density matrix
	UseSaveXV bool //restart positions/velocities

	Cell *mat.Dense //3x3, Ang. nil for a molecule in a box chosen by the program

	TailFile string //an FDF file %included verbatim at the end of the input
}

//SetDefaults puts the calculation at the cheap, safe corner everyone
//starts from: a single point at GGA-PBE/DZP with a 150 Ry mesh.
func (Q *Calc) SetDefaults() {
	Q.XCFunctional = "GGA"
	Q.XCAuthors = "PBE"
	Q.BasisSize = "DZP"
	Q.EnergyShift = 25  //meV
	Q.MeshCutoff = 150  //Ry
	Q.RunType = SinglePoint
	Q.MaxSCFIterations = 100
	Q.MixingWeight = 0.25
	Q.NumberPulay = 3
	Q.DMTolerance = 1e-4
	Q.ElectronicTemperature = 300 //K
}

//Validate checks the calculation options for the mistakes this library
//can catch without running anything. Zero values pass: they mean
//"leave the program's default alone".
func (Q *Calc) Validate() error {
	return validation.ValidateStruct(Q,
		validation.Field(&Q.XCFunctional, validation.In("LDA", "GGA", "VDW")),
		validation.Field(&Q.BasisSize, validation.In("SZ", "DZ", "SZP", "DZP", "TZP")),
		validation.Field(&Q.EnergyShift, validation.Min(0.0)),
		validation.Field(&Q.SplitNorm, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&Q.MeshCutoff, validation.Min(0.0)),
		validation.Field(&Q.MaxSCFIterations, validation.Min(0)),
		validation.Field(&Q.MixingWeight, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&Q.NumberPulay, validation.Min(0)),
		validation.Field(&Q.DMTolerance, validation.Min(0.0)),
		validation.Field(&Q.ElectronicTemperature, validation.Min(0.0)),
		validation.Field(&Q.RunType, validation.In(SinglePoint, CG, Broyden, FIRE, Verlet, Nose, ParrinelloRahman, Anneal, FC)),
		validation.Field(&Q.GeomSteps, validation.Min(0)),
		validation.Field(&Q.MaxForceTol, validation.Min(0.0)),
		validation.Field(&Q.TimeStep, validation.Min(0.0)),
		validation.Field(&Q.TargetTemperature, validation.Min(0.0)),
		validation.Field(&Q.MullikenPop, validation.Min(0), validation.Max(3)),
	)
}

//CalcFromDeck builds the typed options from an existing deck, so a
//hand-written input can go through Validate. Labels absent from the
//deck stay at their zero values. Malformed values (a MeshCutoff with
//no unit, a boolean that isn't one) are reported.
func CalcFromDeck(D *fdf.Deck) (*Calc, error) {
	Q := new(Calc)
	var err error
	Q.XCFunctional = D.StrOr("XC.functional", "")
	Q.XCAuthors = D.StrOr("XC.authors", "")
	Q.BasisSize = D.StrOr("PAO.BasisSize", "")
	if Q.EnergyShift, err = D.PhysicalOr("PAO.EnergyShift", "meV", 0); err != nil {
		return nil, err
	}
	Q.SplitNorm = D.FloatOr("PAO.SplitNorm", 0)
	Q.SpinPolarized = D.BoolOr("SpinPolarized", false)
	Q.NetCharge = D.FloatOr("NetCharge", 0)
	if Q.MeshCutoff, err = D.PhysicalOr("MeshCutoff", "Ry", 0); err != nil {
		return nil, err
	}
	Q.MaxSCFIterations = D.IntOr("MaxSCFIterations", 0)
	Q.MixingWeight = D.FloatOr("DM.MixingWeight", 0)
	Q.NumberPulay = D.IntOr("DM.NumberPulay", 0)
	Q.DMTolerance = D.FloatOr("DM.Tolerance", 0)
	if Q.ElectronicTemperature, err = D.PhysicalOr("ElectronicTemperature", "K", 0); err != nil {
		return nil, err
	}
	Q.RunType = D.StrOr("MD.TypeOfRun", "")
	Q.GeomSteps = D.IntOr("MD.NumCGsteps", D.IntOr("MD.FinalTimeStep", 0))
	if Q.MaxForceTol, err = D.PhysicalOr("MD.MaxForceTol", "eV/Ang", 0); err != nil {
		return nil, err
	}
	Q.VariableCell = D.BoolOr("MD.VariableCell", false)
	if Q.TimeStep, err = D.PhysicalOr("MD.LengthTimeStep", "fs", 0); err != nil {
		return nil, err
	}
	if Q.TargetTemperature, err = D.PhysicalOr("MD.TargetTemperature", "K", 0); err != nil {
		return nil, err
	}
	if Q.TargetPressure, err = D.PhysicalOr("MD.TargetPressure", "GPa", 0); err != nil {
		return nil, err
	}
	Q.SaveRho = D.BoolOr("SaveRho", false)
	Q.SaveDeltaRho = D.BoolOr("SaveDeltaRho", false)
	Q.SaveElectrostaticPotential = D.BoolOr("SaveElectrostaticPotential", false)
	Q.WriteCoorStep = D.BoolOr("WriteCoorStep", false)
	Q.WriteForces = D.BoolOr("WriteForces", false)
	Q.MullikenPop = D.IntOr("WriteMullikenPop", 0)
	Q.UseSaveDM = D.BoolOr("DM.UseSaveDM", false)
	Q.UseSaveXV = D.BoolOr("MD.UseSaveXV", false)
	if D.Defined("LatticeVectors") {
		cell, err := D.LatticeVectors()
		if err != nil {
			return nil, err
		}
		Q.Cell = cell
	}
	//the program takes these case-insensitively, Validate doesn't
	Q.XCFunctional = strings.ToUpper(Q.XCFunctional)
	Q.BasisSize = strings.ToUpper(Q.BasisSize)
	if canon, ok := runTypes[strings.ToLower(Q.RunType)]; ok {
		Q.RunType = canon
	}
	return Q, nil
}

var runTypes = map[string]string{
	"singlepoint":       SinglePoint,
	"cg":                CG,
	"broyden":           Broyden,
	"fire":              FIRE,
	"verlet":            Verlet,
	"nose":              Nose,
	"parrinellorahman":  ParrinelloRahman,
	"anneal":            Anneal,
	"fc":                FC,
}
