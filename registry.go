/*
 * registry.go, part of gotorsion.
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

import "fmt"

// Masters returns the master angle types of the molecule type mt,
// or nil for Unknown.
func Masters(mt MoleculeType) []Master {
	switch mt {
	case RNA:
		return copyMasters(rnaMasters)
	case Protein:
		return copyMasters(proteinMasters)
	}
	return nil
}

// MainMasters returns the main master angle types of mt: alpha to zeta, chi and the
// pucker for RNA, phi, psi and omega for proteins. It returns nil for Unknown.
func MainMasters(mt MoleculeType) []Master {
	switch mt {
	case RNA:
		return copyMasters(rnaMain)
	case Protein:
		return copyMasters(proteinMain)
	}
	return nil
}

// AverageAll returns the average over all the masters of mt. For Unknown, it returns
// a new invalid average.
func AverageAll(mt MoleculeType) *AverageType {
	switch mt {
	case RNA:
		return rnaAverageAll
	case Protein:
		return proteinAverageAll
	}
	return InvalidAverage(mt)
}

// AverageMain returns the average over the main masters of mt. For Unknown, it returns
// a new invalid average.
func AverageMain(mt MoleculeType) *AverageType {
	switch mt {
	case RNA:
		return rnaAverageMain
	case Protein:
		return proteinAverageMain
	}
	return InvalidAverage(mt)
}

// MasterByExportName returns the master of mt with the given export name. The averages
// over all and over the main masters can also be retrieved this way.
func MasterByExportName(mt MoleculeType, name string) (Master, error) {
	for _, m := range Masters(mt) {
		if m.ExportName() == name {
			return m, nil
		}
	}
	for _, m := range []Master{AverageAll(mt), AverageMain(mt)} {
		if m.ExportName() == name && name != "invalid" {
			return m, nil
		}
	}
	return nil, NewError(fmt.Sprintf("%s: %s %q", ErrUnknownName, mt, name), "MasterByExportName")
}

func copyMasters(m []Master) []Master {
	ret := make([]Master, len(m))
	copy(ret, m)
	return ret
}
