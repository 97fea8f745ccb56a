package ptree

import "errors"

var (
	ErrNoAttr  = errors.New("attribute not found")
	ErrNotTree = errors.New("not a tree-shaped value")
)
