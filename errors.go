/*
 * errors.go, part of huckel.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 */

package chem

import (
	"fmt"
	"strings"
)

//InvalidGraphError is returned when a molecule is not a well formed graph
//(dangling bond references, duplicated bonds, etc). It is never worth
//retrying the call that produced it with the same input.
type InvalidGraphError struct {
	msg  string
	deco []string
}

func newInvalidGraphError(msg, caller string) *InvalidGraphError {
	return &InvalidGraphError{msg: msg, deco: []string{caller}}
}

//NewInvalidGraphError returns an InvalidGraphError with the given message, decorated with caller.
func NewInvalidGraphError(msg, caller string) *InvalidGraphError {
	return newInvalidGraphError(msg, caller)
}

func (err *InvalidGraphError) Error() string {
	return fmt.Sprintf("invalid molecular graph: %s", err.msg)
}

//Decorate adds dec to the decoration slice, and returns the slice.
func (err *InvalidGraphError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Limit names the enumeration budget that a GraphTooComplexError exceeded.
type Limit string

const (
	LimitRings Limit = "rings"
	LimitTime  Limit = "time"
)

//GraphTooComplexError is returned when enumerating the rings of a graph would exceed
//the configured budget. The molecule is left untouched when this happens, so the call
//can be repeated with a larger budget, or the molecule skipped.
type GraphTooComplexError struct {
	Limit   Limit
	Reached int //rings found or elapsed milliseconds.
	Allowed int
	deco    []string
}

//NewGraphTooComplexError returns a GraphTooComplexError for the limit lim.
func NewGraphTooComplexError(lim Limit, reached, allowed int, caller string) *GraphTooComplexError {
	return &GraphTooComplexError{Limit: lim, Reached: reached, Allowed: allowed, deco: []string{caller}}
}

func (err *GraphTooComplexError) Error() string {
	return fmt.Sprintf("graph too complex: %s budget exceeded (%d, allowed %d) in %s", err.Limit, err.Reached, err.Allowed, strings.Join(err.deco, "<-"))
}

//Decorate adds dec to the decoration slice, and returns the slice.
func (err *GraphTooComplexError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//errDecorate is a helper function that asserts that the error
//implements chem.Error and decorates the error with the caller's name before returning it.
//if used with a non-chem.Error error, it will just return the error.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

//ErrDecorate is the exported version of errDecorate, for the use of the other packages in this module.
func ErrDecorate(err error, caller string) error {
	return errDecorate(err, caller)
}
