package vaterite

// ---- struct & box natives ----------------------------------------------
//
// Structs are nominal tagged tuples: the identifying symbol's Name becomes
// the tag and field access verifies it. Boxes are the algebra's only
// reference-semantics value; every holder aliases the same cell.

func registerStructBuiltins(r *Registry) {
	r.register("make-struct", AtLeast(1), func(args []Value, _ *NamePool) (Value, error) {
		if args[0].Tag != VTSym {
			return Nil, errDomain("struct id must be a symbol")
		}
		fields := make([]Value, len(args)-1)
		copy(fields, args[1:])
		return StructVal(args[0].Data.(Name), fields), nil
	})

	r.register("index-struct", Exactly(3), func(args []Value, names *NamePool) (Value, error) {
		if args[0].Tag != VTStruct {
			return Nil, errType("struct", args[0])
		}
		s := args[0].Data.(*StructObject)
		if args[1].Tag != VTSym {
			return Nil, errType("symbol", args[1])
		}
		want := args[1].Data.(Name)
		if s.Id != want {
			return Nil, errDomain("expected %s struct but found %s", names.Resolve(want), names.Resolve(s.Id))
		}
		idxF, err := asNum(args[2])
		if err != nil {
			return Nil, err
		}
		idx := int(idxF)
		if idx < 0 || idx >= len(s.Fields) {
			return Nil, errDomain("invalid access to struct %s, index %d not found", names.Resolve(s.Id), idx)
		}
		return s.Fields[idx], nil
	})

	r.register("assert-struct", Exactly(2), func(args []Value, _ *NamePool) (Value, error) {
		if args[0].Tag != VTStruct {
			return Nil, errType("struct", args[0])
		}
		if args[1].Tag != VTSym {
			return Nil, errType("symbol", args[1])
		}
		return Bool(args[0].Data.(*StructObject).Id == args[1].Data.(Name)), nil
	})

	r.register("box", Exactly(1), func(args []Value, _ *NamePool) (Value, error) {
		return Box(args[0]), nil
	})

	r.register("set-box", Exactly(2), func(args []Value, _ *NamePool) (Value, error) {
		if args[0].Tag != VTBox {
			return Nil, errType("box", args[0])
		}
		args[0].Data.(*BoxObject).V = args[1]
		return args[1], nil
	})

	// swap-box returns the transformer function, not the stored value.
	// Callers that want the new value deref afterwards.
	r.register("swap-box", AtLeast(2), func(args []Value, names *NamePool) (Value, error) {
		if args[0].Tag != VTBox {
			return Nil, errType("box", args[0])
		}
		cell := args[0].Data.(*BoxObject)
		call := make([]Value, 0, len(args)-1)
		call = append(call, cell.V)
		call = append(call, args[2:]...)
		next, err := args[1].Apply(call, names)
		if err != nil {
			return Nil, err
		}
		cell.V = next
		return args[1], nil
	})

	r.register("deref", Exactly(1), func(args []Value, _ *NamePool) (Value, error) {
		if args[0].Tag != VTBox {
			return Nil, errType("box", args[0])
		}
		return args[0].Data.(*BoxObject).V, nil
	})
}
