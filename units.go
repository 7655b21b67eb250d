/*
 * units.go, part of gofdf.
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

//This provides the physical units an FDF value can carry, and
//conversions between them. Note that, following the convention of the
//consuming programs, temperatures live in the energy dimension (via
//the Boltzmann constant), so an ElectronicTemperature given in K can be
//asked for in meV, and a smearing given in Ry can be asked for in K.

import (
	"fmt"
	"strings"
)

type dimension int

const (
	mass dimension = iota
	length
	energy
	time
	force
	pressure
	charge
	dipole
	angle
	efield
)

var dimNames = map[dimension]string{
	mass:     "mass",
	length:   "length",
	energy:   "energy",
	time:     "time",
	force:    "force",
	pressure: "pressure",
	charge:   "charge",
	dipole:   "dipole",
	angle:    "angle",
	efield:   "electric field",
}

type unit struct {
	dim    dimension
	factor float64 //to the SI magnitude of the dimension
}

//The magnitudes are the ones used by the FDF machinery of the consuming
//programs. Keys are lowercase; lookup is case-insensitive.
var units = map[string]unit{
	//mass
	"kg":  {mass, 1.0},
	"g":   {mass, 1e-3},
	"amu": {mass, 1.66054e-27},
	//length
	"m":    {length, 1.0},
	"cm":   {length, 1e-2},
	"nm":   {length, 1e-9},
	"ang":  {length, 1e-10},
	"bohr": {length, 0.529177e-10},
	//energy (includes temperatures and frequencies, as in the original table)
	"j":        {energy, 1.0},
	"erg":      {energy, 1e-7},
	"ev":       {energy, 1.60219e-19},
	"mev":      {energy, 1.60219e-22},
	"ry":       {energy, 2.17991e-18},
	"mry":      {energy, 2.17991e-21},
	"hartree":  {energy, 4.35982e-18},
	"ha":       {energy, 4.35982e-18},
	"k":        {energy, 1.38066e-23},
	"kelvin":   {energy, 1.38066e-23},
	"kcal/mol": {energy, 6.94780e-21},
	"kj/mol":   {energy, 1.6606e-21},
	"hz":       {energy, 6.6262e-34},
	"thz":      {energy, 6.6262e-22},
	"cm-1":     {energy, 1.986e-23},
	"cm**-1":   {energy, 1.986e-23},
	//time
	"s":  {time, 1.0},
	"ns": {time, 1e-9},
	"ps": {time, 1e-12},
	"fs": {time, 1e-15},
	//force
	"n":       {force, 1.0},
	"ev/ang":  {force, 1.60219e-9},
	"ry/bohr": {force, 4.11943e-8},
	//pressure
	"pa":         {pressure, 1.0},
	"mpa":        {pressure, 1e6},
	"gpa":        {pressure, 1e9},
	"atm":        {pressure, 1.01325e5},
	"bar":        {pressure, 1e5},
	"mbar":       {pressure, 1e11},
	"ev/ang**3":  {pressure, 1.60219e11},
	"ry/bohr**3": {pressure, 1.47108e13},
	//charge
	"c": {charge, 1.0},
	"e": {charge, 1.602177e-19},
	//dipole
	"c*m":    {dipole, 1.0},
	"d":      {dipole, 3.33564e-30},
	"debye":  {dipole, 3.33564e-30},
	"e*bohr": {dipole, 8.47835e-30},
	"e*ang":  {dipole, 1.602177e-29},
	//angle
	"deg": {angle, 0.0174533},
	"rad": {angle, 1.0},
	//electric field
	"v/m":    {efield, 1.0},
	"v/nm":   {efield, 1e9},
	"v/ang":  {efield, 1e10},
	"v/bohr": {efield, 1.8897268e10},
}

//Convert converts v from the unit "from" to the unit "to". Unit names
//are matched case-insensitively. It returns error if either unit is
//unknown or if the two belong to different dimensions.
func Convert(v float64, from, to string) (float64, error) {
	f, ok := units[strings.ToLower(from)]
	if !ok {
		return 0, CError{fmt.Sprintf("unknown unit: %s", from), []string{"Convert"}}
	}
	t, ok := units[strings.ToLower(to)]
	if !ok {
		return 0, CError{fmt.Sprintf("unknown unit: %s", to), []string{"Convert"}}
	}
	if f.dim != t.dim {
		return 0, CError{fmt.Sprintf("can't convert %s (%s) to %s (%s)", from, dimNames[f.dim], to, dimNames[t.dim]), []string{"Convert"}}
	}
	return v * f.factor / t.factor, nil
}

//KnownUnit returns true if the library knows the given unit token.
func KnownUnit(name string) bool {
	_, ok := units[strings.ToLower(name)]
	return ok
}
