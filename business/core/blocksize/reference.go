package blocksize

// Reference returns the hand picked data point the model was first checked
// against: five transactions of about 110 bytes and two committing nodes.
// The yk list carries one entry more than there are nodes.
func Reference() Params {
	return Params{
		N:     5,
		M:     2,
		Si:    []int64{115, 111, 111, 110, 111},
		Xi:    []float64{1, 1, 1, 1, 1},
		BWk:   []float64{400, 400},
		Perfk: []float64{19, 17},
		Yk:    []float64{1, 1, 1},
		STk:   []float64{22, 22},
		LS:    51000000,
		LN:    10,
		PCN:   0.75,
		BigM:  1000000,
	}
}
