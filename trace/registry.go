package trace

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/ptree-go/ptree/debug"
)

var (
	mu    sync.RWMutex
	types = map[reflect.Type]Rule{}
	kinds = map[reflect.Kind]Rule{}

	// kinds seeded at init; overriding them requires Override.
	builtinKinds = map[reflect.Kind]bool{}
)

type registerConfig struct {
	override bool
}

type RegisterOption func(*registerConfig)

// Override permits replacing an existing or built-in rule.
func Override() RegisterOption {
	return func(c *registerConfig) { c.override = true }
}

// Register installs the rule for an exact type. Re-registering the
// same rule is a no-op; installing a different rule over an existing
// one without Override fails with ErrConflict.
func Register(t reflect.Type, r Rule, opts ...RegisterOption) error {
	if t == nil || r == nil {
		return fmt.Errorf("register requires a type and a rule")
	}
	cfg := &registerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	mu.Lock()
	defer mu.Unlock()
	if old, present := types[t]; present && !cfg.override {
		if sameRule(old, r) {
			return nil
		}
		return fmt.Errorf("type %s: %w", t, ErrConflict)
	}
	types[t] = r
	if debug.Registry() {
		debug.Logf("register type %s -> %T\n", t, r)
	}
	return nil
}

// RegisterKind installs the rule for a reflect kind. The container
// kinds seeded at init are protected like core types.
func RegisterKind(k reflect.Kind, r Rule, opts ...RegisterOption) error {
	if r == nil {
		return fmt.Errorf("register requires a rule")
	}
	cfg := &registerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	mu.Lock()
	defer mu.Unlock()
	if old, present := kinds[k]; present && !cfg.override {
		if sameRule(old, r) {
			return nil
		}
		if builtinKinds[k] {
			return fmt.Errorf("built-in kind %s: %w", k, ErrConflict)
		}
		return fmt.Errorf("kind %s: %w", k, ErrConflict)
	}
	kinds[k] = r
	if debug.Registry() {
		debug.Logf("register kind %s -> %T\n", k, r)
	}
	return nil
}

// MustRegister is Register, panicking on error. Intended for
// module-load time registration in init functions.
func MustRegister(t reflect.Type, r Rule, opts ...RegisterOption) {
	if err := Register(t, r, opts...); err != nil {
		panic(err)
	}
}

// Lookup returns the rule for a type, preferring an exact type match
// over the kind-level built-ins. A nil result means values of the
// type are opaque leaves.
func Lookup(t reflect.Type) Rule {
	if t == nil {
		return nil
	}
	mu.RLock()
	defer mu.RUnlock()
	if r := types[t]; r != nil {
		return r
	}
	return kinds[t.Kind()]
}

func sameRule(a, b Rule) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if !ta.Comparable() {
		return false
	}
	return a == b
}

func init() {
	seedKind(reflect.Slice, sliceRule{})
	seedKind(reflect.Array, sliceRule{})
	seedKind(reflect.Map, mapRule{})
}

func seedKind(k reflect.Kind, r Rule) {
	kinds[k] = r
	builtinKinds[k] = true
}
