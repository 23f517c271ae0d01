/*
 * doc.go, part of gotorsion.
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

/*Package circular implements angular quantities and the circular statistics
needed to summarize them.

An Angle is a value in radians, normalized to the interval (-Pi, Pi], that can
also be invalid. The zero Angle is invalid. Invalid angles are data, not errors:
every operation that touches an invalid Angle produces an invalid Angle, so
missing atoms or empty samples can flow through a calculation without special
casing. The only error the package returns is for a numeric input that can not
be represented as an Angle at all (see NewAngle).

A Sample aggregates angles with the usual vector-sum rules (mean direction,
mean resultant length, circular variance), ignoring invalid members.*/
package circular
