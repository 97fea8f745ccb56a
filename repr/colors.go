package repr

import (
	"strings"

	"github.com/fatih/color"
)

// Colors maps representation roles to sprintf-style colorizers.
type Colors struct {
	Name  func(string, ...any) string
	Field func(string, ...any) string
	Value func(string, ...any) string
	Punct func(string, ...any) string
}

// NewColors builds the default palette.
func NewColors() *Colors {
	c := &Colors{
		Name:  color.RGB(128, 168, 196).SprintfFunc(),
		Field: color.RGB(196, 96, 16).SprintfFunc(),
		Value: color.RGB(8, 196, 16).SprintfFunc(),
		Punct: color.RGB(255, 0, 196).SprintfFunc(),
	}
	wrap := func(f func(string, ...any) string) func(string, ...any) string {
		return func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	c.Name = wrap(c.Name)
	c.Field = wrap(c.Field)
	c.Value = wrap(c.Value)
	c.Punct = wrap(c.Punct)
	return c
}

func plainColors() *Colors {
	return &Colors{
		Name:  colorDefault,
		Field: colorDefault,
		Value: colorDefault,
		Punct: colorDefault,
	}
}

func colorDefault(v string, _ ...any) string { return v }
