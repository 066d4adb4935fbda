package blocksize

import "fmt"

// Kind identifies the shape of an outcome's result.
type Kind int

// Set of outcome kinds.
const (
	KindValue      Kind = iota + 1 // A single derived number.
	KindValues                     // One derived number per node.
	KindPredicate                  // A single boolean.
	KindPredicates                 // One boolean per transaction or node.
	KindInteger                    // A single derived number summed exactly.
)

var kindNames = map[Kind]string{
	KindValue:      "value",
	KindValues:     "values",
	KindPredicate:  "predicate",
	KindPredicates: "predicates",
	KindInteger:    "integer",
}

// String implements the fmt.Stringer interface.
func (k Kind) String() string {
	if s, exists := kindNames[k]; exists {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MarshalText implements the encoding.TextMarshaler interface.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Outcome is the result of evaluating one numbered constraint. Holds is
// only meaningful for predicate kinds, Value and Values only for value kinds.
// Integer is set for KindInteger and carries the exact result, Value then
// holds the same number as a float.
type Outcome struct {
	ID        int       `json:"id"`
	Label     string    `json:"label"`
	Kind      Kind      `json:"kind"`
	Evaluated bool      `json:"evaluated"`
	Holds     bool      `json:"holds"`
	Each      []bool    `json:"each,omitempty"`
	Value     float64   `json:"value"`
	Values    []float64 `json:"values,omitempty"`
	Integer   *int64    `json:"integer,omitempty"`
}

// Report is the result of a single evaluation. Outcomes are ordered by
// constraint id, starting at (1). When every xi is 0 or 1, Exact is set and
// BSBBytes holds BSB summed in integer arithmetic.
type Report struct {
	Bundle     string    `json:"bundle"`
	Throughput float64   `json:"throughput"`
	BSB        float64   `json:"BSB"`
	BSBBytes   int64     `json:"BSB_bytes"`
	Exact      bool      `json:"exact"`
	BST        float64   `json:"BST"`
	STk        []float64 `json:"STk"`
	DerivedSTk []float64 `json:"derived_STk"`
	Outcomes   []Outcome `json:"outcomes"`
	Notes      []string  `json:"notes,omitempty"`
}

// Outcome returns the outcome for the specified constraint id.
func (r Report) Outcome(id int) (Outcome, bool) {
	for _, o := range r.Outcomes {
		if o.ID == id {
			return o, true
		}
	}
	return Outcome{}, false
}

// Holds reports whether the specified constraint was evaluated as a
// predicate and holds.
func (r Report) Holds(id int) bool {
	o, exists := r.Outcome(id)
	if !exists || !o.Evaluated {
		return false
	}

	switch o.Kind {
	case KindPredicate, KindPredicates:
		return o.Holds
	}

	return false
}

// Feasible reports whether every evaluated predicate holds.
func (r Report) Feasible() bool {
	return len(r.Violations()) == 0
}

// Violations returns the ids of the evaluated predicates that do not hold.
func (r Report) Violations() []int {
	var ids []int
	for _, o := range r.Outcomes {
		if o.Evaluated && !o.Holds && (o.Kind == KindPredicate || o.Kind == KindPredicates) {
			ids = append(ids, o.ID)
		}
	}
	return ids
}
