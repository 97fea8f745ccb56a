// Package repr renders tree values as nested, depth-limited text.
// Rendering is a read-only projection driven by the trace registry;
// values can override their node name and visible children through
// the Node interface.
package repr

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/ptree-go/ptree/trace"
	"github.com/ptree-go/ptree/tree"
)

// Node lets a value control its representation: the displayed name
// and the children shown (a class object hides NoRepr fields here).
type Node interface {
	ReprName() string
	ReprChildren() []trace.Child
}

type config struct {
	maxDepth int
	short    bool
	colors   *Colors
}

type Option func(*config)

// MaxDepth limits nesting; deeper subtrees render as "...".
func MaxDepth(n int) Option {
	return func(c *config) { c.maxDepth = n }
}

// Short truncates long leaf values.
func Short(v bool) Option {
	return func(c *config) { c.short = v }
}

// WithColors enables colored output.
func WithColors(colors *Colors) Option {
	return func(c *config) { c.colors = colors }
}

// Repr renders a value.
func Repr(v any, opts ...Option) string {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.colors == nil {
		cfg.colors = plainColors()
	}
	var b strings.Builder
	render(&b, cfg, v, 0)
	return b.String()
}

// Fprint renders to a writer, coloring automatically on terminals.
func Fprint(w io.Writer, v any, opts ...Option) error {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.colors == nil {
		if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			opts = append(opts, WithColors(NewColors()))
		}
	}
	_, err := io.WriteString(w, Repr(v, opts...)+"\n")
	return err
}

func render(b *strings.Builder, cfg *config, v any, depth int) {
	if cfg.maxDepth > 0 && depth >= cfg.maxDepth {
		b.WriteString(cfg.colors.Punct("..."))
		return
	}
	if f, ok := v.(*tree.Frozen); ok {
		b.WriteString(cfg.colors.Punct("#"))
		render(b, cfg, f.Unwrap(), depth)
		return
	}
	name := ""
	var children []trace.Child
	switch n := v.(type) {
	case Node:
		name = n.ReprName()
		children = n.ReprChildren()
	default:
		rule := trace.For(v)
		if rule == nil {
			renderLeaf(b, cfg, v)
			return
		}
		cs, err := rule.Trace(v)
		if err != nil || len(cs) == 0 {
			renderLeaf(b, cfg, v)
			return
		}
		children = cs
	}
	open, close := "[", "]"
	named := len(children) > 0 && children[0].Name != ""
	if named {
		open, close = "{", "}"
	}
	if name != "" {
		b.WriteString(cfg.colors.Name(name))
		open, close = "(", ")"
	}
	b.WriteString(cfg.colors.Punct(open))
	for i, c := range children {
		if i > 0 {
			b.WriteString(cfg.colors.Punct(", "))
		}
		if c.Name != "" {
			b.WriteString(cfg.colors.Field(c.Name))
			b.WriteString(cfg.colors.Punct("="))
		}
		render(b, cfg, c.Value, depth+1)
	}
	b.WriteString(cfg.colors.Punct(close))
}

func renderLeaf(b *strings.Builder, cfg *config, v any) {
	s := fmt.Sprintf("%v", v)
	if _, ok := v.(string); ok {
		s = fmt.Sprintf("%q", v)
	}
	if cfg.short && len(s) > 40 {
		s = s[:37] + "..."
	}
	b.WriteString(cfg.colors.Value(s))
}
