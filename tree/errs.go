package tree

import "errors"

var (
	ErrStructure = errors.New("structure mismatch")
	ErrCycle     = errors.New("cyclic structure")
	ErrNotFrozen = errors.New("not frozen")
)
