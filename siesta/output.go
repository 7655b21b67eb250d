/*
 * output.go, part of gofdf.
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

package siesta

//Recovery of results from the output of a calculation. Everything here
//works on the text output and the SystemLabel-derived files the
//program leaves behind, so it can be used on runs made elsewhere too.

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//normalTermination returns true if the output file of the job reports
//a normal end of the run.
func (O *Handle) normalTermination() bool {
	f, err := os.Open(fmt.Sprintf("%s.out", O.inputname))
	if err != nil {
		return false
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.Contains(scanner.Text(), "End of run") {
			return true
		}
	}
	return false
}

//Energy returns the final Kohn-Sham energy of the job, in eV (the
//unit the program itself reports it in). Returns an error if no energy
//is found, and both the energy and an error ("probable problem in
//calculation") if there is an energy but the run did not end properly.
func (O *Handle) Energy() (float64, error) {
	f, err := os.Open(fmt.Sprintf("%s.out", O.inputname))
	if err != nil {
		return 0, err
	}
	defer f.Close()
	energy := 0.0
	found := false
	normal := false
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, "End of run") {
			normal = true
		}
		if !strings.Contains(line, "E_KS(eV)") || strings.Contains(line, "scf:") {
			continue
		}
		fields := strings.Fields(line)
		v, err := strconv.ParseFloat(fields[len(fields)-1], 64)
		if err != nil {
			continue //some versions print the header differently, just keep looking
		}
		energy = v
		found = true
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	if !found {
		return 0, fmt.Errorf("no energy found in %s.out", O.inputname)
	}
	if !normal {
		return energy, fmt.Errorf("probable problem in calculation")
	}
	return energy, nil
}

//SCFConvergence returns the Kohn-Sham energy at each SCF iteration of
//the job, in eV and in order, concatenating the cycles if the run had
//several geometry steps. Returns an error if no SCF history is found.
func (O *Handle) SCFConvergence() ([]float64, error) {
	f, err := os.Open(fmt.Sprintf("%s.out", O.inputname))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var history []float64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		//iteration lines look like: scf:  3  -466.106476  -466.080169 ...
		if len(fields) < 4 || fields[0] != "scf:" {
			continue
		}
		if _, err := strconv.Atoi(fields[1]); err != nil {
			continue //the header line, where the second field is "iscf"
		}
		v, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, fmt.Errorf("malformed scf line in %s.out: %s", O.inputname, scanner.Text())
		}
		history = append(history, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if history == nil {
		return nil, fmt.Errorf("no SCF history found in %s.out", O.inputname)
	}
	return history, nil
}

//OptimizedGeometry reads the last geometry of the job from the
//STRUCT_OUT file the program writes, and returns the cell (3x3, Ang)
//and the cartesian coordinates (Nx3, Ang). If the geometry is there
//but the run did not end properly, both are returned together with an
//error ("probable problem in calculation").
func (O *Handle) OptimizedGeometry() (*mat.Dense, *mat.Dense, error) {
	var err error
	if !O.normalTermination() {
		err = fmt.Errorf("probable problem in calculation")
	}
	f, err1 := os.Open(fmt.Sprintf("%s.STRUCT_OUT", O.inputname))
	if err1 != nil {
		return nil, nil, err1
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	cell := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		v, err1 := nextFloats(scanner, 3)
		if err1 != nil {
			return nil, nil, fmt.Errorf("cell in STRUCT_OUT: %s", err1.Error())
		}
		cell.SetRow(i, v)
	}
	n, err1 := nextFloats(scanner, 1)
	if err1 != nil {
		return nil, nil, fmt.Errorf("atom count in STRUCT_OUT: %s", err1.Error())
	}
	natoms := int(n[0])
	frac := mat.NewDense(natoms, 3, nil)
	for i := 0; i < natoms; i++ {
		v, err1 := nextFloats(scanner, 5) //species, Z, then the fractional coordinates
		if err1 != nil {
			return nil, nil, fmt.Errorf("atom %d in STRUCT_OUT: %s", i+1, err1.Error())
		}
		frac.SetRow(i, v[2:])
	}
	coords := mat.NewDense(natoms, 3, nil)
	coords.Mul(frac, cell) //rows of cell are the lattice vectors
	return cell, coords, err
}

//nextFloats reads the next non-empty line and parses at least n floats
//from it.
func nextFloats(scanner *bufio.Scanner, n int) ([]float64, error) {
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < n {
			return nil, fmt.Errorf("%d fields found, %d needed", len(fields), n)
		}
		ret := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, err
			}
			ret[i] = v
		}
		return ret, nil
	}
	return nil, fmt.Errorf("unexpected end of file")
}
