/*
 * geometry.go, part of gofdf.
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

package fdf

//Readers and writers for the structural blocks of a deck. Every
//coordinate handled here is in Angstrom; each row of a matrix is one
//point in space, as in the rest of the rmera libraries.

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//Species is one entry of the ChemicalSpeciesLabel block: the species
//number the coordinate lines refer to, the atomic number and the
//label naming the pseudopotential/basis for that species.
type Species struct {
	Number       int
	AtomicNumber int
	Label        string
}

//ChemicalSpecies returns the species table of the deck.
func (D *Deck) ChemicalSpecies() ([]Species, error) {
	lines, err := D.BlockLines("ChemicalSpeciesLabel")
	if err != nil {
		return nil, errDecorate(err, "ChemicalSpecies")
	}
	ret := make([]Species, 0, len(lines))
	for i, l := range lines {
		f := strings.Fields(l)
		if len(f) < 3 {
			return nil, CError{fmt.Sprintf("ChemicalSpeciesLabel: line %d has %d fields, 3 needed", i+1, len(f)), []string{"ChemicalSpecies"}}
		}
		n, err1 := strconv.Atoi(f[0])
		z, err2 := strconv.Atoi(f[1])
		if err1 != nil || err2 != nil {
			return nil, CError{fmt.Sprintf("ChemicalSpeciesLabel: line %d: can't parse %s %s", i+1, f[0], f[1]), []string{"ChemicalSpecies"}}
		}
		ret = append(ret, Species{Number: n, AtomicNumber: z, Label: f[2]})
	}
	return ret, nil
}

//SetChemicalSpecies replaces (or creates) the ChemicalSpeciesLabel
//block and keeps NumberOfSpecies consistent with it.
func (D *Deck) SetChemicalSpecies(species []Species) {
	lines := make([]string, len(species))
	for i, s := range species {
		lines[i] = fmt.Sprintf("%d %d %s", s.Number, s.AtomicNumber, s.Label)
	}
	D.SetInt("NumberOfSpecies", len(species))
	D.SetBlock("ChemicalSpeciesLabel", lines)
}

//LatticeVectors returns the cell of the deck as a 3x3 matrix in
//Angstrom, one lattice vector per row. The LatticeVectors block is
//given in units of LatticeConstant, which must also be present.
func (D *Deck) LatticeVectors() (*mat.Dense, error) {
	alat, err := D.Physical("LatticeConstant", "Ang")
	if err != nil {
		return nil, errDecorate(err, "LatticeVectors")
	}
	lines, err := D.BlockLines("LatticeVectors")
	if err != nil {
		return nil, errDecorate(err, "LatticeVectors")
	}
	if len(lines) != 3 {
		return nil, CError{fmt.Sprintf("LatticeVectors: %d lines, 3 needed", len(lines)), []string{"LatticeVectors"}}
	}
	cell := mat.NewDense(3, 3, nil)
	for i, l := range lines {
		f := strings.Fields(l)
		if len(f) < 3 {
			return nil, CError{fmt.Sprintf("LatticeVectors: line %d has %d fields, 3 needed", i+1, len(f)), []string{"LatticeVectors"}}
		}
		for j := 0; j < 3; j++ {
			v, err := strconv.ParseFloat(f[j], 64)
			if err != nil {
				return nil, CError{"LatticeVectors: " + err.Error(), []string{"LatticeVectors"}}
			}
			cell.Set(i, j, v*alat)
		}
	}
	return cell, nil
}

//SetLatticeVectors replaces (or creates) the LatticeConstant directive
//and the LatticeVectors block from a 3x3 cell in Angstrom. The lattice
//constant written is 1.0 Ang, so the block carries the vectors directly.
func (D *Deck) SetLatticeVectors(cell *mat.Dense) error {
	r, c := cell.Dims()
	if r != 3 || c != 3 {
		return CError{fmt.Sprintf("cell must be 3x3, got %dx%d", r, c), []string{"SetLatticeVectors"}}
	}
	lines := make([]string, 3)
	for i := 0; i < 3; i++ {
		lines[i] = fmt.Sprintf("%-12.8f %-12.8f %-12.8f", cell.At(i, 0), cell.At(i, 1), cell.At(i, 2))
	}
	D.SetPhysical("LatticeConstant", 1.0, "Ang")
	D.SetBlock("LatticeVectors", lines)
	return nil
}

//AtomicCoordinates returns the coordinates of the deck as an Nx3 matrix
//in Angstrom plus the species number of each atom. The
//AtomicCoordinatesFormat directive decides how the block is read:
//Ang/NotScaledCartesianAng are taken as they are, Bohr/
//NotScaledCartesianBohr are converted, and Fractional/ScaledByLatticeVectors
//are multiplied by the cell, which must then be retrievable.
//If NumberOfAtoms is present it must match the block.
func (D *Deck) AtomicCoordinates() (*mat.Dense, []int, error) {
	lines, err := D.BlockLines("AtomicCoordinatesAndAtomicSpecies")
	if err != nil {
		return nil, nil, errDecorate(err, "AtomicCoordinates")
	}
	if n, err := D.Int("NumberOfAtoms"); err == nil && n != len(lines) {
		return nil, nil, CError{fmt.Sprintf("NumberOfAtoms is %d but the coordinates block has %d lines", n, len(lines)), []string{"AtomicCoordinates"}}
	}
	coords := mat.NewDense(len(lines), 3, nil)
	species := make([]int, len(lines))
	for i, l := range lines {
		f := strings.Fields(l)
		if len(f) < 4 {
			return nil, nil, CError{fmt.Sprintf("coordinates line %d has %d fields, 4 needed", i+1, len(f)), []string{"AtomicCoordinates"}}
		}
		for j := 0; j < 3; j++ {
			v, err := strconv.ParseFloat(f[j], 64)
			if err != nil {
				return nil, nil, CError{fmt.Sprintf("coordinates line %d: %s", i+1, err.Error()), []string{"AtomicCoordinates"}}
			}
			coords.Set(i, j, v)
		}
		s, err := strconv.Atoi(f[3])
		if err != nil {
			return nil, nil, CError{fmt.Sprintf("coordinates line %d: %s", i+1, err.Error()), []string{"AtomicCoordinates"}}
		}
		species[i] = s
	}
	format := strings.ToLower(D.StrOr("AtomicCoordinatesFormat", "Bohr"))
	switch format {
	case "ang", "notscaledcartesianang":
		//nothing to do
	case "bohr", "notscaledcartesianbohr":
		coords.Scale(1/A2Bohr, coords)
	case "fractional", "scaledbylatticevectors":
		cell, err := D.LatticeVectors()
		if err != nil {
			return nil, nil, errDecorate(err, "AtomicCoordinates: fractional coordinates need a cell")
		}
		cart := mat.NewDense(len(lines), 3, nil)
		cart.Mul(coords, cell) //rows of cell are the lattice vectors
		coords = cart
	default:
		return nil, nil, CError{"unknown AtomicCoordinatesFormat: " + format, []string{"AtomicCoordinates"}}
	}
	return coords, species, nil
}

//SetAtomicCoordinates replaces (or creates) the coordinates block from
//an Nx3 matrix in Angstrom and the species number of each atom, and
//keeps NumberOfAtoms and AtomicCoordinatesFormat consistent.
func (D *Deck) SetAtomicCoordinates(coords *mat.Dense, species []int) error {
	r, c := coords.Dims()
	if c != 3 {
		return CError{fmt.Sprintf("coordinates must have 3 columns, got %d", c), []string{"SetAtomicCoordinates"}}
	}
	if r != len(species) {
		return CError{fmt.Sprintf("%d coordinates for %d species numbers", r, len(species)), []string{"SetAtomicCoordinates"}}
	}
	lines := make([]string, r)
	for i := 0; i < r; i++ {
		lines[i] = fmt.Sprintf("%-12.6f %-12.6f %-12.6f %d", coords.At(i, 0), coords.At(i, 1), coords.At(i, 2), species[i])
	}
	D.SetInt("NumberOfAtoms", r)
	D.Set("AtomicCoordinatesFormat", "Ang")
	D.SetBlock("AtomicCoordinatesAndAtomicSpecies", lines)
	return nil
}

//A2Bohr converts Angstroms to Bohrs. It is exported because everyone
//using this kind of library ends up needing it.
const A2Bohr = 1.889725989
