package ptree

import (
	"fmt"
	"strconv"
	"strings"
)

// All matches every leaf; it is the ellipsis of a path chain.
var All = allSpec{}

type allSpec struct{}

func (allSpec) String() string { return "*" }

// ParsePath parses a "$"-rooted path into a spec chain for At.
//
//	$.a.b     -> "a", "b"
//	$.a[0]    -> "a", 0
//	$['x.y']  -> "x.y"
//	$[*], $.. -> All
func ParsePath(p string) ([]any, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("path %q should start with '$'", p)
	}
	var specs []any
	return parseFrag(p[1:], specs)
}

func parseFrag(frag string, specs []any) ([]any, error) {
	if len(frag) == 0 {
		return specs, nil
	}
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			specs = append(specs, All)
			rest := frag[2:]
			if len(rest) == 0 || rest[0] == '.' || rest[0] == '[' {
				return parseFrag(rest, specs)
			}
			field, r, err := parseField(rest)
			if err != nil {
				return nil, err
			}
			return parseFrag(r, append(specs, field))
		}
		field, rest, err := parseField(frag[1:])
		if err != nil {
			return nil, err
		}
		return parseFrag(rest, append(specs, field))
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return nil, fmt.Errorf("expected '[' <index> ']'")
		}
		inner := frag[1 : i+1]
		rest := frag[i+2:]
		if inner == "*" {
			return parseFrag(rest, append(specs, All))
		}
		if len(inner) > 0 && inner[0] == '\'' {
			field, fieldRest, err := parseField(inner)
			if err != nil {
				return nil, err
			}
			if fieldRest != "" {
				return nil, fmt.Errorf("trailing %q after quoted field", fieldRest)
			}
			return parseFrag(rest, append(specs, field))
		}
		index, err := strconv.ParseUint(inner, 10, 64)
		if err != nil {
			return nil, err
		}
		return parseFrag(rest, append(specs, int(index)))
	default:
		return nil, fmt.Errorf("expected '.' or '['")
	}
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			escaped = true
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// FormatPath renders a spec chain back into "$" notation. Mask specs
// render as "[mask]".
func FormatPath(specs []any) string {
	var b strings.Builder
	b.WriteByte('$')
	for _, s := range specs {
		switch x := s.(type) {
		case allSpec:
			b.WriteString("[*]")
		case string:
			if strings.IndexAny(x, "'.*$[]") == -1 {
				b.WriteByte('.')
				b.WriteString(x)
			} else {
				b.WriteString(".'" + strings.ReplaceAll(x, "'", "\\'") + "'")
			}
		case int:
			fmt.Fprintf(&b, "[%d]", x)
		default:
			b.WriteString("[mask]")
		}
	}
	return b.String()
}
