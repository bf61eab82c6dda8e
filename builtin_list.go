package vaterite

// ---- sequence & persistent list natives --------------------------------
//
// Every operation here is pure: inputs are never mutated, "updates" build a
// fresh backing slice. Nil and the empty list are both accepted as the
// empty sequence throughout.

func registerListBuiltins(r *Registry) {
	r.register("list", AtLeast(0), func(args []Value, _ *NamePool) (Value, error) {
		xs := make([]Value, len(args))
		copy(xs, args)
		return List(xs...), nil
	})

	r.register("first", Exactly(1), func(args []Value, _ *NamePool) (Value, error) {
		return args[0].First()
	})
	r.register("rest", Exactly(1), func(args []Value, names *NamePool) (Value, error) {
		return args[0].Rest(names)
	})

	r.register("nth", Exactly(2), func(args []Value, names *NamePool) (Value, error) {
		n, err := asNum(args[1])
		if err != nil {
			return Nil, err
		}
		return Nth(args[0], int(n), names)
	})

	// Positional accessors are nth sugar.
	ordinals := []string{"first", "second", "third", "fourth", "fifth", "sixth", "seventh", "eighth", "ninth", "tenth"}
	for i, name := range ordinals {
		if i == 0 {
			continue // first goes through the sequence capability above
		}
		idx := i
		r.register(name, Exactly(1), func(args []Value, names *NamePool) (Value, error) {
			return Nth(args[0], idx, names)
		})
	}

	r.register("cons", Exactly(2), func(args []Value, _ *NamePool) (Value, error) {
		x, seq := args[0], args[1]
		switch seq.Tag {
		case VTNil:
			return List(x), nil
		case VTList:
			xs := seq.Data.([]Value)
			out := make([]Value, 0, len(xs)+1)
			out = append(out, x)
			out = append(out, xs...)
			return List(out...), nil
		default:
			return Nil, errDomain("can't cons to a non-list %s", seq)
		}
	})

	r.register("rev-cons", Exactly(2), func(args []Value, _ *NamePool) (Value, error) {
		seq, x := args[0], args[1]
		switch seq.Tag {
		case VTNil:
			return List(x), nil
		case VTList:
			xs := seq.Data.([]Value)
			out := make([]Value, 0, len(xs)+1)
			out = append(out, xs...)
			out = append(out, x)
			return List(out...), nil
		default:
			return Nil, errDomain("can't rev-cons to a non-list %s", seq)
		}
	})

	r.register("append", AtLeast(0), func(args []Value, _ *NamePool) (Value, error) {
		var out []Value
		for _, seq := range args {
			switch seq.Tag {
			case VTList:
				out = append(out, seq.Data.([]Value)...)
			case VTNil:
			default:
				return Nil, errType("list", seq)
			}
		}
		return List(out...), nil
	})

	r.register("reverse", Exactly(1), func(args []Value, _ *NamePool) (Value, error) {
		switch args[0].Tag {
		case VTNil:
			return Nil, nil
		case VTList:
			xs := args[0].Data.([]Value)
			out := make([]Value, len(xs))
			for i, x := range xs {
				out[len(xs)-1-i] = x
			}
			return List(out...), nil
		default:
			return Nil, errType("list", args[0])
		}
	})

	r.register("map", Exactly(2), func(args []Value, names *NamePool) (Value, error) {
		fn, seq := args[0], args[1]
		switch seq.Tag {
		case VTNil:
			return Nil, nil
		case VTList:
			xs := seq.Data.([]Value)
			out := make([]Value, 0, len(xs))
			for _, x := range xs {
				v, err := fn.Apply([]Value{x}, names)
				if err != nil {
					return Nil, err
				}
				out = append(out, v)
			}
			return List(out...), nil
		default:
			return Nil, errType("list", seq)
		}
	})

	r.register("apply", AtLeast(2), func(args []Value, names *NamePool) (Value, error) {
		last := args[len(args)-1]
		call := make([]Value, 0, len(args))
		call = append(call, args[1:len(args)-1]...)
		switch last.Tag {
		case VTList:
			call = append(call, last.Data.([]Value)...)
		case VTNil:
		default:
			return Nil, errType("list", last)
		}
		return args[0].Apply(call, names)
	})

	r.register("collect", Exactly(1), func(args []Value, names *NamePool) (Value, error) {
		return Collect(args[0], names)
	})

	r.register("len", Exactly(1), func(args []Value, _ *NamePool) (Value, error) {
		n, err := args[0].Len()
		if err != nil {
			return Nil, err
		}
		return Num(float64(n)), nil
	})

	registerPredicates(r)
}

// Predicates, including the quirk that list? is false for Nil while nil?
// is true for the empty list.
func registerPredicates(r *Registry) {
	pred := func(f func(Value) bool) NativeImpl {
		return func(args []Value, _ *NamePool) (Value, error) {
			return Bool(f(args[0])), nil
		}
	}
	r.register("atom?", Exactly(1), pred(func(v Value) bool {
		return v.Tag != VTList || len(v.Data.([]Value)) == 0
	}))
	r.register("list?", Exactly(1), pred(func(v Value) bool {
		return v.Tag == VTList && len(v.Data.([]Value)) > 0
	}))
	r.register("nil?", Exactly(1), pred(func(v Value) bool {
		return v.IsEmptySeq()
	}))
	r.register("number?", Exactly(1), pred(func(v Value) bool { return v.Tag == VTNum }))
	r.register("string?", Exactly(1), pred(func(v Value) bool { return v.Tag == VTStr }))
	r.register("symbol?", Exactly(1), pred(func(v Value) bool { return v.Tag == VTSym }))
	r.register("keyword?", Exactly(1), pred(func(v Value) bool { return v.Tag == VTKeyword }))
	r.register("hash-map?", Exactly(1), pred(func(v Value) bool { return v.Tag == VTMap }))
	r.register("function?", Exactly(1), pred(func(v Value) bool {
		return v.Tag == VTFun || v.Tag == VTNatFun
	}))
}
