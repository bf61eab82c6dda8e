// format.go: the template interpolation scanner behind the format native.
//
// One left-to-right pass over the template with an implicit positional
// cursor into args. Directives:
//
//	{}     next argument, display form
//	{?}    next argument, debug form
//	{@}    next argument (a list), elements joined with no separator
//	{@sep} same, elements joined by the literal text sep
//	{?@…}  list directives with elements in debug form
//	{{ }}  literal braces
//
// Anything else after '{', or an unterminated brace, is a DomainError.
package vaterite

import "strings"

// Format expands template against args. The argument cursor starts at 0
// within args (the template itself is not part of args here; the native
// passes its tail).
func Format(template string, args []Value, names *NamePool) (string, error) {
	var b strings.Builder
	rs := []rune(template)
	next := 0
	i := 0
	for i < len(rs) {
		ch := rs[i]
		i++
		switch ch {
		case '{':
			if i >= len(rs) {
				return "", errDomain("invalid syntax in format string: unterminated {")
			}
			ch = rs[i]
			i++
			debug := false
			if ch == '?' {
				debug = true
				if i >= len(rs) {
					return "", errDomain("invalid syntax in format string: unterminated {?")
				}
				ch = rs[i]
				i++
			}
			switch ch {
			case '}':
				if next >= len(args) {
					return "", errDomain("value expected by format string not found")
				}
				b.WriteString(renderArg(args[next], debug, names))
				next++
			case '@':
				var sep strings.Builder
				closed := false
				for i < len(rs) {
					c := rs[i]
					i++
					if c == '}' {
						closed = true
						break
					}
					sep.WriteRune(c)
				}
				if !closed {
					return "", errDomain("invalid syntax in format string: expected closing }")
				}
				if next >= len(args) {
					return "", errDomain("value expected by format string not found")
				}
				arg := args[next]
				next++
				if arg.Tag != VTList && arg.Tag != VTNil {
					return "", errDomain("value spliced by format string must be a list")
				}
				if arg.Tag == VTList {
					for j, x := range arg.Data.([]Value) {
						if j > 0 {
							b.WriteString(sep.String())
						}
						b.WriteString(renderArg(x, debug, names))
					}
				}
			case '{':
				if debug {
					return "", errDomain("invalid syntax in format string")
				}
				b.WriteByte('{')
			default:
				return "", errDomain("invalid syntax in format string")
			}
		case '}':
			if i >= len(rs) || rs[i] != '}' {
				return "", errDomain("invalid syntax in format string: single } must be doubled")
			}
			i++
			b.WriteByte('}')
		default:
			b.WriteRune(ch)
		}
	}
	return b.String(), nil
}

func renderArg(v Value, debug bool, names *NamePool) string {
	if debug {
		return Debug(v, 0, names)
	}
	return Display(v, names)
}
