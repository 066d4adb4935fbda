// Package blocksize evaluates the block sizing model for committing nodes.
// A bundle of transaction and node parameters is checked against the
// numbered constraints of the model. Nothing is optimized: the inclusion
// flags in the bundle are taken as given.
package blocksize

import (
	"fmt"
	"math"
)

// Evaluate validates the bundle and evaluates constraints (1) through (17)
// against it. A constraint that does not hold is reported in the outcome,
// it is not an error. The bundle is never modified.
func Evaluate(p Params) (Report, error) {
	if err := p.Validate(); err != nil {
		return Report{}, err
	}

	bsb, bst := BlockSize(p)
	bytes, exact := BlockBytes(p)
	derived := StoringTimes(p, bsb, bst)

	// A supplied STk is authoritative, (7) is still reported alongside it.
	st := append([]float64(nil), derived...)
	if p.STk != nil {
		st = append([]float64(nil), p.STk...)
	}

	yk := p.Yk[:p.M]
	sumX := sum(p.Xi)
	sumY := sum(yk)
	n := float64(p.N)
	m := float64(p.M)

	r := Report{
		Bundle:     p.Hash(),
		Throughput: bst,
		BSB:        bsb,
		BSBBytes:   bytes,
		Exact:      exact,
		BST:        bst,
		STk:        st,
		DerivedSTk: derived,
	}

	if len(p.Yk) > p.M {
		r.Notes = append(r.Notes, fmt.Sprintf("yk has %d entries, only the first %d are used", len(p.Yk), p.M))
	}

	sizeOutcome := value(2, bsb)
	withinLS := bsb <= p.LS
	if exact {
		sizeOutcome = integer(2, bytes)
		withinLS = withinBytes(bytes, p.LS)
	}

	r.Outcomes = []Outcome{
		value(1, bst),
		sizeOutcome,
		value(3, bst),
		predicate(4, withinLS),
		predicate(5, bst <= float64(p.LN)),
		predicate(6, 1 <= sumX && sumX <= n),
		values(7, derived),
		each(8, p.M, func(k int) bool {
			return p.BigM*(1-yk[k]) >= st[k]-1
		}),
		predicate(9, sumY == m),
		each(10, p.N, func(i int) bool {
			return isBinary(p.Xi[i])
		}),
		each(11, p.M, func(k int) bool {
			return isBinary(yk[k])
		}),
		each(12, p.M, func(k int) bool {
			return st[k] >= 0
		}),
		each(13, p.M, func(k int) bool {
			return st[k]-math.Max(bst/p.Perfk[k], bsb/p.BWk[k])*yk[k] <= 0
		}),
		predicate(14, sumY >= p.PCN*m),
		predicate(15, sumX >= 1),
	}

	if p.Auxiliary {
		maxSi := float64(maxOf(p.Si))
		r.Outcomes = append(r.Outcomes,
			each(16, p.N, func(i int) bool {
				return bsb-maxSi*p.Xi[i] <= p.LS
			}),
			each(17, p.N, func(i int) bool {
				return bst-p.Xi[i] <= float64(p.LN)
			}),
		)
	} else {
		r.Outcomes = append(r.Outcomes, skipped(16, KindPredicates), skipped(17, KindPredicates))
	}

	return r, nil
}

// BlockSize returns the size of the block described by the bundle in bytes
// (BSB) and in number of transactions (BST).
func BlockSize(p Params) (bsb float64, bst float64) {
	for i := 0; i < p.N; i++ {
		bsb += p.Xi[i] * float64(p.Si[i])
		bst += p.Xi[i]
	}
	return bsb, bst
}

// BlockBytes returns BSB summed in integer arithmetic. The second result
// is false when a flag is neither 0 nor 1 or the sum overflows an int64,
// the float result of BlockSize is the only one then.
func BlockBytes(p Params) (int64, bool) {
	var bsb int64
	for i := 0; i < p.N; i++ {
		switch p.Xi[i] {
		case 0:
		case 1:
			if bsb > math.MaxInt64-p.Si[i] {
				return 0, false
			}
			bsb += p.Si[i]
		default:
			return 0, false
		}
	}
	return bsb, true
}

// StoringTimes applies (7) to every committing node: the time to process
// the transactions plus the time to transfer the bytes of the block.
func StoringTimes(p Params, bsb float64, bst float64) []float64 {
	st := make([]float64, p.M)
	for k := range st {
		st[k] = bst/p.Perfk[k] + bsb/p.BWk[k]
	}
	return st
}

// =============================================================================

func label(id int) string {
	c, _ := LookupConstraint(id)
	return c.Label
}

func value(id int, v float64) Outcome {
	return Outcome{ID: id, Label: label(id), Kind: KindValue, Evaluated: true, Value: v}
}

func integer(id int, v int64) Outcome {
	return Outcome{ID: id, Label: label(id), Kind: KindInteger, Evaluated: true, Value: float64(v), Integer: &v}
}

func values(id int, vs []float64) Outcome {
	return Outcome{ID: id, Label: label(id), Kind: KindValues, Evaluated: true, Values: append([]float64(nil), vs...)}
}

func predicate(id int, holds bool) Outcome {
	return Outcome{ID: id, Label: label(id), Kind: KindPredicate, Evaluated: true, Holds: holds}
}

// each evaluates fn for every index below count. The outcome holds when
// every index holds.
func each(id int, count int, fn func(int) bool) Outcome {
	o := Outcome{ID: id, Label: label(id), Kind: KindPredicates, Evaluated: true, Holds: true}

	o.Each = make([]bool, count)
	for i := range o.Each {
		o.Each[i] = fn(i)
		if !o.Each[i] {
			o.Holds = false
		}
	}

	return o
}

func skipped(id int, kind Kind) Outcome {
	return Outcome{ID: id, Label: label(id), Kind: kind}
}

// withinBytes compares an exact byte count against a limit without
// rounding the count to a float.
func withinBytes(bsb int64, limit float64) bool {
	if limit >= math.MaxInt64 {
		return true
	}
	return bsb <= int64(math.Floor(limit))
}

func isBinary(v float64) bool {
	return v == 0 || v == 1
}

func sum(vs []float64) float64 {
	var total float64
	for _, v := range vs {
		total += v
	}
	return total
}

func maxOf(vs []int64) int64 {
	var m int64
	for i, v := range vs {
		if i == 0 || v > m {
			m = v
		}
	}
	return m
}
