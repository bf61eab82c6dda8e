// printer.go: display and debug rendering of runtime values.
//
// Display is the plain human form (strings raw, chars bare); Debug is the
// readable/round-trippable form (strings quoted). Both are pure functions
// over the algebra and need the name pool to spell symbols, keywords, map
// keys and struct tags. Map entries are rendered in key-name order so the
// output is deterministic even though maps carry no ordering guarantee.
package vaterite

import (
	"sort"
	"strconv"
	"strings"
)

// maxRenderDepth bounds recursion through boxes, which are the one way to
// build a cyclic value (a box can be made to contain itself).
const maxRenderDepth = 32

func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func quoteChar(r rune) string {
	switch r {
	case '\\':
		return `'\\'`
	case '\'':
		return `'\''`
	case '\n':
		return `'\n'`
	case '\r':
		return `'\r'`
	case '\t':
		return `'\t'`
	default:
		return "'" + string(r) + "'"
	}
}

// Display renders v in its plain form.
func Display(v Value, names *NamePool) string {
	return render(v, names, false, 0)
}

// Debug renders v in its readable form. depth is the nesting level to start
// from; passing 0 is the norm, non-zero lowers the remaining recursion
// budget (the renderer stops dereferencing nested boxes past the limit).
func Debug(v Value, depth int, names *NamePool) string {
	return render(v, names, true, depth)
}

func render(v Value, names *NamePool, debug bool, depth int) string {
	if depth > maxRenderDepth {
		return "..."
	}
	switch v.Tag {
	case VTNil:
		return "()"
	case VTBool:
		if v.Data.(bool) {
			return "true"
		}
		return "false"
	case VTNum:
		return formatNum(v.Data.(float64))
	case VTStr:
		if debug {
			return quoteString(v.Data.(string))
		}
		return v.Data.(string)
	case VTChar:
		if debug {
			return quoteChar(v.Data.(rune))
		}
		return string(v.Data.(rune))
	case VTChars:
		if debug {
			return quoteString(string(v.Data.([]rune)))
		}
		return string(v.Data.([]rune))
	case VTSym:
		return names.Resolve(v.Data.(Name))
	case VTKeyword:
		return ":" + names.Resolve(v.Data.(Name))
	case VTList:
		var b strings.Builder
		b.WriteByte('(')
		for i, x := range v.Data.([]Value) {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(render(x, names, debug, depth+1))
		}
		b.WriteByte(')')
		return b.String()
	case VTMap:
		m := v.Data.(map[Name]Value)
		keys := make([]Name, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			return names.Resolve(keys[i]) < names.Resolve(keys[j])
		})
		var b strings.Builder
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(names.Resolve(k))
			b.WriteByte(' ')
			b.WriteString(render(m[k], names, debug, depth+1))
		}
		b.WriteByte('}')
		return b.String()
	case VTStruct:
		s := v.Data.(*StructObject)
		var b strings.Builder
		b.WriteString("#<struct ")
		b.WriteString(names.Resolve(s.Id))
		for _, f := range s.Fields {
			b.WriteByte(' ')
			b.WriteString(render(f, names, debug, depth+1))
		}
		b.WriteByte('>')
		return b.String()
	case VTBox:
		return "#<box " + render(v.Data.(*BoxObject).V, names, debug, depth+1) + ">"
	case VTFun:
		return "#<function>"
	case VTNatFun:
		return "#<native " + v.Data.(*NatFun).Name + ">"
	case VTLazy:
		return "#<lazy " + render(v.Data.(*LazyCell).Head, names, debug, depth+1) + " ...>"
	default:
		return "#<unknown>"
	}
}
