package vaterite

// ---- arithmetic & comparison natives -----------------------------------

func asNum(v Value) (float64, error) {
	if v.Tag != VTNum {
		return 0, errType("number", v)
	}
	return v.Data.(float64), nil
}

func foldNum(init float64, op func(a, b float64) float64) NativeImpl {
	return func(args []Value, _ *NamePool) (Value, error) {
		acc := init
		for _, v := range args {
			n, err := asNum(v)
			if err != nil {
				return Nil, err
			}
			acc = op(acc, n)
		}
		return Num(acc), nil
	}
}

// subDiv implements the -/÷ shape: no args yields empty (or errors), one
// arg applies the unary form, more fold left.
func subDiv(op func(a, b float64) float64, empty func() (Value, error), one func(a float64) float64) NativeImpl {
	return func(args []Value, _ *NamePool) (Value, error) {
		if len(args) == 0 {
			return empty()
		}
		first, err := asNum(args[0])
		if err != nil {
			return Nil, err
		}
		if len(args) == 1 {
			return Num(one(first)), nil
		}
		acc := first
		for _, v := range args[1:] {
			n, err := asNum(v)
			if err != nil {
				return Nil, err
			}
			acc = op(acc, n)
		}
		return Num(acc), nil
	}
}

// ordChain checks a monotone chain: (op a b), (op b c), … Empty and
// single-element chains are vacuously true.
func ordChain(op func(a, b float64) bool) NativeImpl {
	return func(args []Value, _ *NamePool) (Value, error) {
		if len(args) == 0 {
			return True, nil
		}
		left, err := asNum(args[0])
		if err != nil {
			return Nil, err
		}
		for _, v := range args[1:] {
			n, err := asNum(v)
			if err != nil {
				return Nil, err
			}
			if !op(left, n) {
				return False, nil
			}
			left = n
		}
		return True, nil
	}
}

func registerMathBuiltins(r *Registry) {
	r.register("+", AtLeast(0), foldNum(0, func(a, b float64) float64 { return a + b }))
	r.register("*", AtLeast(0), foldNum(1, func(a, b float64) float64 { return a * b }))
	r.register("-", AtLeast(0), subDiv(
		func(a, b float64) float64 { return a - b },
		func() (Value, error) { return Num(0), nil },
		func(a float64) float64 { return -a },
	))
	r.register("/", AtLeast(0), subDiv(
		func(a, b float64) float64 { return a / b },
		func() (Value, error) { return Nil, errDomain("invalid number argument") },
		func(a float64) float64 { return 1 / a },
	))

	r.register("<", AtLeast(0), ordChain(func(a, b float64) bool { return a < b }))
	r.register(">", AtLeast(0), ordChain(func(a, b float64) bool { return a > b }))
	r.register("<=", AtLeast(0), ordChain(func(a, b float64) bool { return a <= b }))
	r.register(">=", AtLeast(0), ordChain(func(a, b float64) bool { return a >= b }))

	r.register("==", AtLeast(1), func(args []Value, _ *NamePool) (Value, error) {
		for _, v := range args[1:] {
			if !Equal(args[0], v) {
				return False, nil
			}
		}
		return True, nil
	})
	r.register("!=", AtLeast(1), func(args []Value, _ *NamePool) (Value, error) {
		for _, v := range args[1:] {
			if Equal(args[0], v) {
				return False, nil
			}
		}
		return True, nil
	})

	r.register("inc", Exactly(1), func(args []Value, _ *NamePool) (Value, error) {
		n, err := asNum(args[0])
		if err != nil {
			return Nil, err
		}
		return Num(n + 1), nil
	})
	r.register("dec", Exactly(1), func(args []Value, _ *NamePool) (Value, error) {
		n, err := asNum(args[0])
		if err != nil {
			return Nil, err
		}
		return Num(n - 1), nil
	})
}
