/*
 * interfaces.go, part of chemview.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package chem

import "errors"

//Atomer is the basic interface for a topology.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i
	//of the Atom slice in the Topology. Should panic if
	//out of range.
	Atom(i int) *Atom

	Len() int
}

//Bonder is an Atomer that also knows its bonds.
type Bonder interface {
	Atomer
	Bond(i int) *Bond
	NBonds() int
}

//Errors

//Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
//error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call also returns the "decoration" slice of strings resulting from the current call. If passed an empty string, it should just return the current value, not add the empty string to the slice.
}

//ErrUnknownElement is returned, wrapped, when a symbol is not in the element tables.
var ErrUnknownElement = errors.New("unknown element")

//CError is the general error type of the chem package. It satisfies
//Error and wraps, if not nil, the error that caused it.
type CError struct {
	msg  string
	deco []string
	err  error
}

func (err *CError) Error() string {
	if err.err != nil && err.msg == "" {
		return err.err.Error()
	}
	if err.err != nil {
		return err.msg + ": " + err.err.Error()
	}
	return err.msg
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

func (err *CError) Unwrap() error {
	return err.err
}

//errDecorate decorates err with the caller's name if it implements Error, and
//wraps it in a CError otherwise.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return &CError{err: err, deco: []string{caller}}
}
