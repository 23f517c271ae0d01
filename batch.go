/*
 * batch.go, part of gotorsion.
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
	"sync"

	"github.com/rmera/gotorsion/circular"
)

//calculate obtains the value of m for residue i, using the dihedral formula from O.
func calculate(m Master, seq Sequence, i int, O *Options) Value {
	if mc, ok := m.(methodCalculator); ok {
		return mc.CalculateWith(O.method, seq, i)
	}
	return m.Calculate(seq, i)
}

// CalculateChain obtains, for each residue of seq, the values of the master types
// given in O (all the masters of the residue's molecule type, by default). The ith
// element of the result holds the values for the ith residue, in master order.
// A nil O means DefaultOptions().
func CalculateChain(seq Sequence, O *Options) [][]Value {
	if O == nil {
		O = DefaultOptions()
	}
	ret := make([][]Value, seq.Len())
	for i := range ret {
		masters := O.mastersFor(seq.MoleculeType(i))
		vals := make([]Value, 0, len(masters))
		for _, m := range masters {
			vals = append(vals, calculate(m, seq, i, O))
		}
		ret[i] = vals
	}
	return ret
}

// CalculateModels runs CalculateChain on each of the models concurrently, using
// O.Cpus() goroutines. The results are in the same order as the models.
func CalculateModels(models []Sequence, O *Options) [][][]Value {
	if O == nil {
		O = DefaultOptions()
	}
	ret := make([][][]Value, len(models))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < O.Cpus(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				ret[i] = CalculateChain(models[i], O)
			}
		}()
	}
	for i := range models {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return ret
}

// Compare returns the MCQ (mean of circular quantities) between model and target: the circular
// mean of the differences between every angle that is valid in both. Angles are those given in
// O, or all the masters of each residue of model. The result is invalid if no angle can be
// compared. It returns an error if the sequences have different lengths.
func Compare(model, target Sequence, O *Options) (circular.Angle, error) {
	if model == nil || target == nil {
		return circular.Invalid(), NewError(string(ErrNilData), "Compare")
	}
	if model.Len() != target.Len() {
		return circular.Invalid(), NewError(fmt.Sprintf("%s: %d and %d", ErrMismatch, model.Len(), target.Len()), "Compare")
	}
	if O == nil {
		O = DefaultOptions()
	}
	diffs := make([]circular.Angle, 0, model.Len())
	for i := 0; i < model.Len(); i++ {
		for _, m := range O.mastersFor(model.MoleculeType(i)) {
			a := calculate(m, model, i, O)
			b := calculate(m, target, i, O)
			if d := circular.Subtract(a.Angle(), b.Angle()); d.IsValid() {
				diffs = append(diffs, d)
			}
		}
	}
	return circular.MeanDirection(diffs), nil
}

// CompareModels compares each model with target, concurrently. A model that fails
// to compare gets an invalid angle, and the first error found is returned.
func CompareModels(models []Sequence, target Sequence, O *Options) ([]circular.Angle, error) {
	if O == nil {
		O = DefaultOptions()
	}
	ret := make([]circular.Angle, len(models))
	errs := make([]error, len(models))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < O.Cpus(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				ret[i], errs[i] = Compare(models[i], target, O)
			}
		}()
	}
	for i := range models {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			return ret, errDecorate(err, fmt.Sprintf("CompareModels: model %d", i))
		}
	}
	return ret, nil
}
