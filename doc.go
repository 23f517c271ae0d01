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
Package torsion calculates torsion (dihedral) angles of RNA and protein residues.

Angle types come in a few kinds: leaf types, defined by four atoms (which can belong to
neighboring residues), pucker types, derived from the torsions of a sugar ring, and averages,
which give the circular mean of several angles. Residues declare which types they support, and
master types (like the chi angle of nucleotides, which differs for purines and pyrimidines) pick
the right one for each residue. Types are interned, so they are compared by identity.

The coordinates come from any implementation of the Sequence interface. The structure
subpackage provides one. Circular statistics live in the circular subpackage.
*/
package torsion
