package vaterite

import "strings"

// ---- string, char and name natives -------------------------------------

func registerStringBuiltins(r *Registry) {
	r.register("str", AtLeast(0), func(args []Value, names *NamePool) (Value, error) {
		var b strings.Builder
		for _, v := range args {
			b.WriteString(Display(v, names))
		}
		return Str(b.String()), nil
	})

	r.register("repr", AtLeast(0), func(args []Value, names *NamePool) (Value, error) {
		v := Nil
		if len(args) > 0 {
			v = args[0]
		}
		return Str(Debug(v, 0, names)), nil
	})

	r.register("format", AtLeast(1), func(args []Value, names *NamePool) (Value, error) {
		if args[0].Tag != VTStr {
			return Nil, errType("string", args[0])
		}
		out, err := Format(args[0].Data.(string), args[1:], names)
		if err != nil {
			return Nil, err
		}
		return Str(out), nil
	})

	r.register("join", AtLeast(2), func(args []Value, names *NamePool) (Value, error) {
		if args[0].Tag != VTStr {
			return Nil, errType("string", args[0])
		}
		sep := args[0].Data.(string)
		switch args[1].Tag {
		case VTNil:
			return Str(""), nil
		case VTList:
			var b strings.Builder
			for i, x := range args[1].Data.([]Value) {
				if i > 0 {
					b.WriteString(sep)
				}
				b.WriteString(Display(x, names))
			}
			return Str(b.String()), nil
		default:
			return Nil, errType("list", args[1])
		}
	})

	r.register("symbol", Exactly(1), func(args []Value, names *NamePool) (Value, error) {
		switch args[0].Tag {
		case VTSym:
			return args[0], nil
		case VTStr:
			return Sym(names.Intern(args[0].Data.(string))), nil
		default:
			return Nil, errType("string", args[0])
		}
	})

	r.register("keyword", Exactly(1), func(args []Value, names *NamePool) (Value, error) {
		switch args[0].Tag {
		case VTKeyword:
			return args[0], nil
		case VTStr:
			return Keyword(names.Intern(args[0].Data.(string))), nil
		default:
			return Nil, errType("string, keyword", args[0])
		}
	})

	// Identifier plumbing: expose the interned id of a name and rebuild a
	// symbol from one. The reverse direction trusts the caller; resolving a
	// fabricated id is the pool's (fatal) problem.
	r.register("name-intern-number", Exactly(1), func(args []Value, _ *NamePool) (Value, error) {
		switch args[0].Tag {
		case VTSym, VTKeyword:
			return Num(float64(args[0].Data.(Name))), nil
		default:
			return Nil, errType("keyword, symbol", args[0])
		}
	})
	r.register("symbol-from-intern-number", Exactly(1), func(args []Value, _ *NamePool) (Value, error) {
		n, err := asNum(args[0])
		if err != nil {
			return Nil, err
		}
		return Sym(Name(int32(n))), nil
	})

	r.register("string->chars", Exactly(1), func(args []Value, _ *NamePool) (Value, error) {
		switch args[0].Tag {
		case VTStr:
			return Chars([]rune(args[0].Data.(string))), nil
		case VTChars:
			return args[0], nil
		default:
			return Nil, errType("string", args[0])
		}
	})

	r.register("string/starts-with", Exactly(2), func(args []Value, _ *NamePool) (Value, error) {
		if args[1].Tag != VTStr {
			return Nil, errDomain("invalid arguments, found (%s, %s)", args[0], args[1])
		}
		prefix := args[1].Data.(string)
		switch args[0].Tag {
		case VTStr:
			return Bool(strings.HasPrefix(args[0].Data.(string), prefix)), nil
		case VTChars:
			return Bool(strings.HasPrefix(string(args[0].Data.([]rune)), prefix)), nil
		case VTNil:
			return False, nil
		default:
			return Nil, errDomain("invalid arguments, found (%s, %s)", args[0], args[1])
		}
	})

	r.register("string/append-char", Exactly(2), func(args []Value, _ *NamePool) (Value, error) {
		if args[0].Tag != VTStr {
			return Nil, errType("string", args[0])
		}
		if args[1].Tag != VTChar {
			return Nil, errType("char", args[1])
		}
		return Str(args[0].Data.(string) + string(args[1].Data.(rune))), nil
	})

	r.register("char->string", Exactly(1), func(args []Value, _ *NamePool) (Value, error) {
		if args[0].Tag != VTChar {
			return Nil, errType("char", args[0])
		}
		return Str(string(args[0].Data.(rune))), nil
	})

	r.register("char-list->string", Exactly(1), func(args []Value, _ *NamePool) (Value, error) {
		if args[0].Tag != VTList {
			return Nil, errType("list", args[0])
		}
		var b strings.Builder
		for _, c := range args[0].Data.([]Value) {
			if c.Tag != VTChar {
				return Nil, errType("char", c)
			}
			b.WriteRune(c.Data.(rune))
		}
		return Str(b.String()), nil
	})

	// chars/slice with two args slices to the end; with three it takes the
	// half-open [start, end) and collapses an empty result to Nil.
	r.register("chars/slice", Between(2, 3), func(args []Value, _ *NamePool) (Value, error) {
		if args[0].Tag != VTChars {
			return Nil, errType("chars", args[0])
		}
		rs := args[0].Data.([]rune)
		startF, err := asNum(args[1])
		if err != nil {
			return Nil, err
		}
		start := int(startF)
		end := len(rs)
		if len(args) == 3 {
			endF, err := asNum(args[2])
			if err != nil {
				return Nil, err
			}
			end = int(endF)
		}
		if start < 0 || end < start || end > len(rs) {
			return Nil, errDomain("invalid slice bounds [%d, %d) for chars of length %d", start, end, len(rs))
		}
		if len(args) == 3 && start == end {
			return Nil, nil
		}
		out := make([]rune, end-start)
		copy(out, rs[start:end])
		return Chars(out), nil
	})
}
