/*
 * value.go, part of gotorsion.
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

package torsion

import (
	"fmt"

	"github.com/rmera/gotorsion/circular"
)

// Value is the value of a torsion angle of a given type. Values are immutable.
type Value struct {
	typ   Type
	angle circular.Angle
}

// NewValue returns a Value of type t with angle a.
func NewValue(t Type, a circular.Angle) Value {
	return Value{typ: t, angle: a}
}

// InvalidValue returns an invalid Value of type t.
func InvalidValue(t Type) Value {
	return Value{typ: t}
}

// Type returns the angle type the value was calculated for.
func (V Value) Type() Type { return V.typ }

// Angle returns the angle, which may be invalid.
func (V Value) Angle() circular.Angle { return V.angle }

// IsValid returns true if the value holds a valid angle.
func (V Value) IsValid() bool { return V.angle.IsValid() }

func (V Value) String() string {
	if V.typ == nil {
		return V.angle.String()
	}
	return fmt.Sprintf("%s: %s", V.typ.ExportName(), V.angle)
}
