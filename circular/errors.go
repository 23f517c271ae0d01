/*
 * errors.go, part of gotorsion.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package circular

import "fmt"

// RangeError is returned when a number can not be turned into an Angle
// because it lies outside the circular range.
type RangeError struct {
	Value   float64
	Degrees bool //Value is given in degrees, not radians.
	deco    []string
}

// Error returns a string with an error message.
func (err *RangeError) Error() string {
	if err.Degrees {
		return fmt.Sprintf("goTorsion/circular: %v degrees is outside [-180, 180]", err.Value)
	}
	return fmt.Sprintf("goTorsion/circular: %v radians is outside [-Pi, Pi]", err.Value)
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice. An empty dec just returns the current slice.
func (err *RangeError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}
