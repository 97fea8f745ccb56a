// Package debug gates diagnostic logging on PTREE_DEBUG_* environment
// variables so library internals can be observed without a logger
// dependency in the public surface.
package debug

import (
	"fmt"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
)

type debug struct {
	Flatten  bool
	Match    bool
	Patch    bool
	Registry bool
}

var d *debug

func init() {
	d = &debug{}
	d.Flatten = boolEnv("PTREE_DEBUG_FLATTEN")
	d.Match = boolEnv("PTREE_DEBUG_MATCH")
	d.Patch = boolEnv("PTREE_DEBUG_PATCH")
	d.Registry = boolEnv("PTREE_DEBUG_REGISTRY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Flatten() bool {
	return d.Flatten
}
func Match() bool {
	return d.Match
}
func Patch() bool {
	return d.Patch
}
func Registry() bool {
	return d.Registry
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

// Dump writes a deep dump of values to stderr.
func Dump(args ...any) {
	spew.Fdump(os.Stderr, args...)
}
