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

/*
Package structure holds residues and chains of RNA and proteins, with the coordinates
and the angle types needed to calculate torsion angles. A Chain implements torsion.Sequence.

The package also knows enough chemistry to set up residues from their atoms: the
molecule type of a residue is detected from its atom names, and the angle types it
supports come from its name. Bond lengths from the CHARMM36 force field allow to check
whether consecutive residues are actually connected.
*/
package structure
