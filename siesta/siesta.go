/*
 * siesta.go, part of gofdf.
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

//Package siesta generates FDF inputs for, runs, and recovers results
//from calculations with the SIESTA-style periodic DFT programs. The
//program itself must be obtained independently from its distributors.
package siesta

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/rmera/gofdf"
	"gonum.org/v1/gonum/mat"
)

//Note that the defaults are NOT considered part of the API and can
//always change.
type Handle struct {
	command   string
	inputname string
	nCPU      int
}

//NewHandle returns a handle with the default program name and a
//placeholder job name.
func NewHandle() *Handle {
	H := new(Handle)
	H.SetDefaults()
	return H
}

//Handle methods

//SetName sets the name for the job, used for the input (name.fdf),
//the output (name.out) and the SystemLabel the program derives its
//own file names from.
func (O *Handle) SetName(name string) {
	O.inputname = name
}

//SetCommand sets the path of the program's executable.
func (O *Handle) SetCommand(name string) {
	O.command = name
}

//SetnCPU sets the number of MPI ranks the program is started with.
//With the default 0 the program is started directly, without mpirun.
func (O *Handle) SetnCPU(cpu int) {
	O.nCPU = cpu
}

//SetDefaults sets the program to whatever "siesta" resolves to in the
//path, running on one process.
func (O *Handle) SetDefaults() {
	O.command = "siesta"
	O.inputname = "gofdf"
	O.nCPU = 0
}

//BuildInput writes the input file for a calculation with the options
//in Q on the system given by atoms and coords (Nx3, Angstrom). The
//zero values of Q mean "don't write the label, the program knows its
//defaults". Returns error if the system and options don't make a
//runnable input.
func (O *Handle) BuildInput(coords *mat.Dense, atoms Atomer, Q *Calc) error {
	if atoms == nil || coords == nil {
		return fmt.Errorf("missing atoms or coordinates")
	}
	r, _ := coords.Dims()
	if r != atoms.Len() {
		return fmt.Errorf("%d coordinates for %d atoms", r, atoms.Len())
	}
	if Q == nil {
		Q = new(Calc)
		Q.SetDefaults()
		fmt.Fprintf(os.Stderr, "no options given for the calculation, will use the defaults\n")
	}
	if err := Q.Validate(); err != nil {
		return fmt.Errorf("options refused: %s", err.Error())
	}
	D := fdf.New()
	D.AddComment("input generated by gofdf")
	D.Set("SystemName", O.inputname)
	D.Set("SystemLabel", O.inputname)
	species, snumbers, err := speciesTable(atoms)
	if err != nil {
		return err
	}
	D.SetChemicalSpecies(species)
	if err := D.SetAtomicCoordinates(coords, snumbers); err != nil {
		return err
	}
	if Q.Cell != nil {
		if err := D.SetLatticeVectors(Q.Cell); err != nil {
			return err
		}
	}
	if Q.XCFunctional != "" {
		D.Set("XC.functional", Q.XCFunctional)
	}
	if Q.XCAuthors != "" {
		D.Set("XC.authors", Q.XCAuthors)
	}
	if Q.BasisSize != "" {
		D.Set("PAO.BasisSize", Q.BasisSize)
	}
	if Q.EnergyShift > 0 {
		D.SetPhysical("PAO.EnergyShift", Q.EnergyShift, "meV")
	}
	if Q.SplitNorm > 0 {
		D.Set("PAO.SplitNorm", strconv.FormatFloat(Q.SplitNorm, 'g', -1, 64))
	}
	if Q.SpinPolarized {
		D.SetBool("SpinPolarized", true)
	}
	if Q.NetCharge != 0 {
		D.Set("NetCharge", strconv.FormatFloat(Q.NetCharge, 'g', -1, 64))
	}
	if Q.MeshCutoff > 0 {
		D.SetPhysical("MeshCutoff", Q.MeshCutoff, "Ry")
	}
	if Q.KGrid != [3]int{} {
		kgrid := make([]string, 3)
		for i, k := range Q.KGrid {
			row := [3]int{}
			row[i] = k
			kgrid[i] = fmt.Sprintf("%d %d %d 0.5", row[0], row[1], row[2])
		}
		D.SetBlock("kgrid_Monkhorst_Pack", kgrid)
	}
	if Q.MaxSCFIterations > 0 {
		D.SetInt("MaxSCFIterations", Q.MaxSCFIterations)
	}
	if Q.MixingWeight > 0 {
		D.Set("DM.MixingWeight", strconv.FormatFloat(Q.MixingWeight, 'g', -1, 64))
	}
	if Q.NumberPulay > 0 {
		D.SetInt("DM.NumberPulay", Q.NumberPulay)
	}
	if Q.DMTolerance > 0 {
		D.Set("DM.Tolerance", strconv.FormatFloat(Q.DMTolerance, 'g', -1, 64))
	}
	if Q.ElectronicTemperature > 0 {
		D.SetPhysical("ElectronicTemperature", Q.ElectronicTemperature, "K")
	}
	buildRun(D, Q)
	for label, flag := range map[string]bool{
		"SaveRho":                    Q.SaveRho,
		"SaveDeltaRho":               Q.SaveDeltaRho,
		"SaveElectrostaticPotential": Q.SaveElectrostaticPotential,
		"WriteCoorStep":              Q.WriteCoorStep,
		"WriteForces":                Q.WriteForces,
		"DM.UseSaveDM":               Q.UseSaveDM,
		"MD.UseSaveXV":               Q.UseSaveXV,
	} {
		if flag {
			D.SetBool(label, true)
		}
	}
	if Q.MullikenPop > 0 {
		D.SetInt("WriteMullikenPop", Q.MullikenPop)
	}
	if Q.TailFile != "" {
		D.AddComment("user options follow")
		D.AddInclude(Q.TailFile)
	}
	return D.Write(fmt.Sprintf("%s.fdf", O.inputname))
}

//buildRun writes the geometry-optimization/dynamics section.
func buildRun(D *fdf.Deck, Q *Calc) {
	switch Q.RunType {
	case "", SinglePoint:
		D.Set("MD.TypeOfRun", "CG")
		D.SetInt("MD.NumCGsteps", 0)
	case CG, Broyden, FIRE:
		D.Set("MD.TypeOfRun", Q.RunType)
		if Q.GeomSteps > 0 {
			D.SetInt("MD.NumCGsteps", Q.GeomSteps)
		}
		if Q.MaxForceTol > 0 {
			D.SetPhysical("MD.MaxForceTol", Q.MaxForceTol, "eV/Ang")
		}
		if Q.VariableCell {
			D.SetBool("MD.VariableCell", true)
		}
	default: //the dynamics run types
		D.Set("MD.TypeOfRun", Q.RunType)
		D.SetInt("MD.InitialTimeStep", 1)
		if Q.GeomSteps > 0 {
			D.SetInt("MD.FinalTimeStep", Q.GeomSteps)
		}
		if Q.TimeStep > 0 {
			D.SetPhysical("MD.LengthTimeStep", Q.TimeStep, "fs")
		}
		if Q.TargetTemperature > 0 {
			D.SetPhysical("MD.TargetTemperature", Q.TargetTemperature, "K")
		}
		if Q.TargetPressure != 0 {
			D.SetPhysical("MD.TargetPressure", Q.TargetPressure, "GPa")
		}
	}
}

//speciesTable collects the distinct elements of the system, in order
//of first appearance, and assigns each atom its species number.
func speciesTable(atoms Atomer) ([]fdf.Species, []int, error) {
	var species []fdf.Species
	index := make(map[string]int)
	snumbers := make([]int, atoms.Len())
	for i := 0; i < atoms.Len(); i++ {
		s := atoms.Symbol(i)
		n, ok := index[s]
		if !ok {
			z, err := AtomicNumber(s)
			if err != nil {
				return nil, nil, err
			}
			n = len(species) + 1
			index[s] = n
			species = append(species, fdf.Species{Number: n, AtomicNumber: z, Label: s})
		}
		snumbers[i] = n
	}
	return species, snumbers, nil
}

//Run runs the calculation set previously. It waits for the program to
//finish or not depending on wait. Not waiting works only on
//unix-compatible systems, as it uses sh and nohup.
func (O *Handle) Run(wait bool) (err error) {
	cmdname := O.command
	args := []string{}
	if O.nCPU > 1 {
		cmdname = "mpirun"
		args = []string{"-np", strconv.Itoa(O.nCPU), O.command}
	}
	if wait == true {
		out, err := os.Create(fmt.Sprintf("%s.out", O.inputname))
		if err != nil {
			return err
		}
		defer out.Close()
		in, err := os.Open(fmt.Sprintf("%s.fdf", O.inputname))
		if err != nil {
			return err
		}
		defer in.Close()
		command := exec.Command(cmdname, args...)
		command.Stdin = in
		command.Stdout = out
		err = command.Run()
		return err
	}
	full := cmdname
	for _, a := range args {
		full += " " + a
	}
	command := exec.Command("sh", "-c", "nohup "+full+fmt.Sprintf(" < %s.fdf > %s.out &", O.inputname, O.inputname))
	err = command.Start()
	return err
}
