// Package class synthesizes immutable record types from declarative
// field lists. A Class holds the field declarations, validation
// callbacks and methods; instances are sealed Objects that flow
// through the tree engine as composite nodes.
package class

import (
	"fmt"
)

// Callback validates or transforms a field value. Callbacks run in
// declaration order during construction and on unsealed sets; the
// first failure aborts with the field name attached.
type Callback func(v any) (any, error)

// Field declares one attribute of a class.
type Field struct {
	Name  string
	Alias string

	// Default and Factory are mutually exclusive. Factory is invoked
	// freshly per construction so mutable defaults are not shared.
	Default any
	Factory func() any

	Callbacks []Callback

	NoInit    bool // not accepted by the constructor; needs Default or Factory
	NoRepr    bool // hidden from the textual representation
	NoCompare bool // excluded from equality and hash
	Static    bool // excluded from tree leaves; rides in the skeleton
}

// Method is behavior attached to a class. Methods run against an
// unsealed staging copy during functional updates and may Set fields
// freely.
type Method func(self *Object, args ...any) (any, error)

type Class struct {
	name     string
	fields   []Field
	byName   map[string]int
	methods  map[string]Method
	leafwise bool
}

type Option func(*Class)

// Leafwise opts the class into leafwise operators: arithmetic and
// comparisons distribute over leaves, comparisons yielding boolean
// mask trees.
func Leafwise() Option {
	return func(c *Class) { c.leafwise = true }
}

// New builds a class from an ordered field list. Field names and
// aliases must be unique; a field cannot carry both a default and a
// factory; NoInit fields need one of the two.
func New(name string, fields []Field, opts ...Option) (*Class, error) {
	if name == "" {
		return nil, fmt.Errorf("class requires a name")
	}
	c := &Class{
		name:    name,
		fields:  make([]Field, len(fields)),
		byName:  make(map[string]int, len(fields)),
		methods: map[string]Method{},
	}
	copy(c.fields, fields)
	for i, f := range c.fields {
		if f.Name == "" {
			return nil, fmt.Errorf("class %s: field %d has no name", name, i)
		}
		if _, dup := c.byName[f.Name]; dup {
			return nil, fmt.Errorf("class %s: duplicate field %q", name, f.Name)
		}
		c.byName[f.Name] = i
		if f.Alias != "" {
			if _, dup := c.byName[f.Alias]; dup {
				return nil, fmt.Errorf("class %s: duplicate alias %q", name, f.Alias)
			}
			c.byName[f.Alias] = i
		}
		if f.Default != nil && f.Factory != nil {
			return nil, fmt.Errorf("class %s: field %q has both default and factory", name, f.Name)
		}
		if f.NoInit && f.Default == nil && f.Factory == nil {
			return nil, fmt.Errorf("class %s: field %q is not settable and has no default", name, f.Name)
		}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// MustNew is New, panicking on error. Class definitions are expected
// at module-load time.
func MustNew(name string, fields []Field, opts ...Option) *Class {
	c, err := New(name, fields, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// WithMethod attaches a method, panicking on duplicates. Chainable at
// definition time.
func (c *Class) WithMethod(name string, m Method) *Class {
	if _, dup := c.methods[name]; dup {
		panic(fmt.Sprintf("class %s: duplicate method %q", c.name, name))
	}
	c.methods[name] = m
	return c
}

func (c *Class) Name() string {
	return c.name
}

// Fields returns a copy of the field declarations.
func (c *Class) Fields() []Field {
	res := make([]Field, len(c.fields))
	copy(res, c.fields)
	return res
}

func (c *Class) Leafwise() bool {
	return c.leafwise
}

// fieldIndex resolves a field by name or alias.
func (c *Class) fieldIndex(name string) (int, bool) {
	i, ok := c.byName[name]
	return i, ok
}
