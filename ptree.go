// Package ptree turns declared classes and plain Go containers into
// immutable, introspectable tree values: flatten/unflatten through
// the trace registry, path-addressed out-of-place updates with At,
// broadcast-mapped leafwise operators, and freeze wrappers to keep
// subtrees out of transformations.
package ptree
