package blocksize

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ardanlabs/blocksizing/foundation/validate"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// Params is the parameter bundle for a single evaluation. Inclusion flags
// are carried as reals so values other than 0 and 1 can reach the binary
// constraints and be reported there.
type Params struct {
	N         int       `json:"n" yaml:"n" validate:"gt=0"`                       // Number of transactions.
	M         int       `json:"m" yaml:"m" validate:"gt=0"`                       // Number of committing nodes.
	Si        []int64   `json:"Si" yaml:"Si" validate:"required,dive,gt=0"`       // Size of each transaction in bytes.
	Xi        []float64 `json:"xi" yaml:"xi" validate:"required"`                 // 1 iff the transaction is in the block.
	BWk       []float64 `json:"BWk" yaml:"BWk" validate:"required,dive,gt=0"`     // Bandwidth of each committing node.
	Perfk     []float64 `json:"Perfk" yaml:"Perfk" validate:"required,dive,gt=0"` // Transactions per second a node can store.
	Yk        []float64 `json:"yk" yaml:"yk" validate:"required"`                 // 1 iff the node can store the block.
	STk       []float64 `json:"STk,omitempty" yaml:"STk,omitempty"`               // Storing times; derived by (7) when nil.
	LS        float64   `json:"LS" yaml:"LS" validate:"gt=0"`                     // Maximum block size in bytes.
	LN        int       `json:"LN" yaml:"LN" validate:"gt=0"`                     // Maximum transactions in a block.
	PCN       float64   `json:"PCN" yaml:"PCN" validate:"gte=0,lte=1"`            // Fraction of nodes that must store the block.
	BigM      float64   `json:"M" yaml:"M" validate:"gt=0"`                       // Big-M constant for (8).
	Auxiliary bool      `json:"auxiliary,omitempty" yaml:"auxiliary,omitempty"`   // Evaluate (16) and (17).
}

// Validate checks the shape and ranges of the bundle. Any failure is
// returned as an InvalidParametersError naming the offending fields.
func (p Params) Validate() error {
	var fields validate.FieldErrors

	if err := validate.Check(p); err != nil {
		fe := validate.GetFieldErrors(err)
		if fe == nil {
			return fmt.Errorf("checking params: %w", err)
		}
		fields = append(fields, fe...)
	}

	// Lengths are only comparable once the counts themselves are sane.
	if p.N > 0 {
		fields = appendLen(fields, "Si", len(p.Si), "n", p.N)
		fields = appendLen(fields, "xi", len(p.Xi), "n", p.N)
	}

	if p.M > 0 {
		fields = appendLen(fields, "BWk", len(p.BWk), "m", p.M)
		fields = appendLen(fields, "Perfk", len(p.Perfk), "m", p.M)

		if p.Yk != nil && len(p.Yk) < p.M {
			fields = append(fields, validate.FieldError{
				Field: "yk",
				Error: fmt.Sprintf("yk has %d entries, m is %d", len(p.Yk), p.M),
			})
		}

		if p.STk != nil {
			fields = appendLen(fields, "STk", len(p.STk), "m", p.M)
		}
	}

	if len(fields) > 0 {
		return &InvalidParametersError{Fields: fields}
	}

	return nil
}

// Hash returns a fingerprint of the bundle. Two bundles with the same
// values always produce the same fingerprint.
func (p Params) Hash() string {
	var buf []byte

	putInt := func(v int64) {
		buf = binary.BigEndian.AppendUint64(buf, uint64(v))
	}
	putFloat := func(v float64) {
		buf = binary.BigEndian.AppendUint64(buf, math.Float64bits(v))
	}
	putFloats := func(vs []float64) {
		putInt(int64(len(vs)))
		for _, v := range vs {
			putFloat(v)
		}
	}

	putInt(int64(p.N))
	putInt(int64(p.M))
	putInt(int64(len(p.Si)))
	for _, s := range p.Si {
		putInt(s)
	}
	putFloats(p.Xi)
	putFloats(p.BWk)
	putFloats(p.Perfk)
	putFloats(p.Yk)

	// A nil STk means derive, which differs from an empty supplied list.
	if p.STk == nil {
		putInt(-1)
	} else {
		putFloats(p.STk)
	}

	putFloat(p.LS)
	putInt(int64(p.LN))
	putFloat(p.PCN)
	putFloat(p.BigM)
	if p.Auxiliary {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}

	return hexutil.Encode(crypto.Keccak256(buf))
}

// =============================================================================

func appendLen(fields validate.FieldErrors, field string, got int, count string, want int) validate.FieldErrors {
	if got == want {
		return fields
	}

	return append(fields, validate.FieldError{
		Field: field,
		Error: fmt.Sprintf("%s has %d entries, %s is %d", field, got, count, want),
	})
}

// Derive returns a copy of the bundle without supplied storing times, so
// the evaluation uses the ones produced by (7).
func (p Params) Derive() Params {
	p.STk = nil
	return p
}
