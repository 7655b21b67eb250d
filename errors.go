/*
 * errors.go, part of gofdf.
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

package fdf

import "fmt"

//This error predates the "wrapping" error system of Go (i.e. the "%w" directive and the errors package),
//and is shared with the rest of the rmera libraries. We should avoid
//using the Decorate method and/or make it use the "%w" directive internally.

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Allows adding information when the error is passed up. Each call also returns the current decoration slice. If passed an empty string, it should just return the current value, not add the empty string to the slice.
}

//CError (Concrete Error) is the concrete error type for the fdf package.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

//Decorate adds the string dec to the decoration slice of the error and returns the resulting slice.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//ParseError is returned when a deck can not be read. It carries the
//file and line where reading failed, which, with includes, need not
//be the file the user asked for.
type ParseError struct {
	message  string
	filename string //empty when parsing from a reader
	line     int
	deco     []string
}

func (err ParseError) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("fdf: line %d: %s", err.line, err.message)
	}
	return fmt.Sprintf("fdf file %s: line %d: %s", err.filename, err.line, err.message)
}

//Decorate adds new information to the error
func (err ParseError) Decorate(dec string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it works, since err.deco is a slice, and hence a pointer itself.
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//FileName returns the file where parsing failed.
func (err ParseError) FileName() string { return err.filename }

//Line returns the line where parsing failed.
func (err ParseError) Line() int { return err.line }

//errDecorate asserts that err implements Error and decorates it with
//the caller's name before returning it. A non-Error error gets wrapped
//into a CError first.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		err2 = CError{err.Error(), nil}
	}
	err2.Decorate(caller)
	return err2
}
