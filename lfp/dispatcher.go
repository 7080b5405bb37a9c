package lfp

import "fmt"

// New resolves an algorithm index (1-based, matching spec.md §4.9's CLI
// contract) to an Algorithm implementation. param is only consulted by
// RecursiveTask, where it sets the depth below which new goroutines
// stop being spawned.
func New(index, param int) (Algorithm, error) {
	switch index {
	case 1:
		return RecursiveSeq{}, nil
	case 2:
		return RecursiveTask{TaskLimit: param}, nil
	case 3:
		return TopDownMaxSeq{}, nil
	case 4:
		return TopDownSingleSeq{}, nil
	case 5:
		return TopDownSingleOmp{}, nil
	case 6:
		return DoubleDropSeq{}, nil
	case 7:
		return DoubleDropOmp{}, nil
	default:
		return nil, fmt.Errorf(" lfp.New: %w: %d", ErrAlgorithmUnknown, index)
	}
}
