package vaterite

import (
	"fmt"
	"os"
	"strings"
)

// ---- host natives -------------------------------------------------------
//
// The thin slice of the library that touches the process: printing, stdin,
// file reads and the clock. Everything goes through the collaborators the
// registry carries so hosts and tests can redirect them.

func registerHostBuiltins(r *Registry) {
	printArgs := func(args []Value, names *NamePool) string {
		parts := make([]string, len(args))
		for i, v := range args {
			parts[i] = Display(v, names)
		}
		return strings.Join(parts, " ")
	}

	r.register("print", AtLeast(0), func(args []Value, names *NamePool) (Value, error) {
		if _, err := fmt.Fprint(r.Stdout, printArgs(args, names)); err != nil {
			return Nil, errDomain("io error: %v", err)
		}
		return Nil, nil
	})

	r.register("println", AtLeast(0), func(args []Value, names *NamePool) (Value, error) {
		if _, err := fmt.Fprintln(r.Stdout, printArgs(args, names)); err != nil {
			return Nil, errDomain("io error: %v", err)
		}
		return Nil, nil
	})

	// input returns the raw line including its trailing newline.
	r.register("input", Exactly(0), func(_ []Value, _ *NamePool) (Value, error) {
		line, err := r.reader().ReadString('\n')
		if err != nil && line == "" {
			return Nil, errDomain("io error: %v", err)
		}
		return Str(line), nil
	})

	r.register("read-file", Exactly(1), func(args []Value, _ *NamePool) (Value, error) {
		if args[0].Tag != VTStr {
			return Nil, errType("string", args[0])
		}
		data, err := os.ReadFile(args[0].Data.(string))
		if err != nil {
			return Nil, errDomain("couldn't read file: %v", err)
		}
		return Str(string(data)), nil
	})

	r.register("time-ms", Exactly(0), func(_ []Value, _ *NamePool) (Value, error) {
		return Num(float64(r.Now().UnixMilli())), nil
	})

	r.register("assert", Between(1, 3), func(args []Value, names *NamePool) (Value, error) {
		switch len(args) {
		case 1:
			if args[0].Falsy() {
				return Nil, errDomain("assertion failed")
			}
			return args[0], nil
		case 2:
			if !Equal(args[0], args[1]) {
				return Nil, errDomain("assertion failed")
			}
			return args[0], nil
		case 3:
			if !Equal(args[0], args[1]) {
				return Nil, errDomain("%s", Display(args[2], names))
			}
			return args[0], nil
		default:
			return Nil, &ArityError{Name: "assert", Expected: Between(1, 3), Got: len(args)}
		}
	})
}
