/*
 * options.go, part of gotorsion.
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

import "runtime"

//Options contains the options for the CalculateChain, CalculateModels and Compare functions.
type Options struct {
	cpus    int
	masters []Master //if nil, all the masters of each residue's molecule type are used.
	method  Method
}

//DefaultOptions returns options that use all logical CPUs, the atan2 dihedral formula
//and all the master types of each residue.
func DefaultOptions() *Options {
	r := new(Options)
	r.cpus = runtime.NumCPU()
	r.method = Atan2
	return r
}

//Cpus returns the number of goroutines to be used for batch calculations,
//and sets it to a new value, if given and positive.
func (O *Options) Cpus(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.cpus = n[0]
	}
	if O.cpus <= 0 {
		return 1
	}
	return O.cpus
}

//Masters returns a copy of the master types to calculate, and replaces them
//with the given ones, if any are given. A nil return means "all of them".
func (O *Options) Masters(m ...Master) []Master {
	if len(m) > 0 {
		O.masters = copyMasters(m)
	}
	if O.masters == nil {
		return nil
	}
	return copyMasters(O.masters)
}

//Method returns the formula used to calculate dihedrals, and sets it to a new value, if given.
//It applies to every master of this package, including puckers and averages.
func (O *Options) Method(m ...Method) Method {
	if len(m) > 0 {
		O.method = m[0]
	}
	return O.method
}

//mastersFor returns the masters to be calculated for a residue of molecule type mt.
func (O *Options) mastersFor(mt MoleculeType) []Master {
	if O.masters != nil {
		return O.masters
	}
	switch mt {
	case RNA:
		return rnaMasters
	case Protein:
		return proteinMasters
	}
	return nil
}
