// lazy.go: step-forcing over suspended sequences.
//
// A LazyCell always carries its head already evaluated; advancing means
// handing its tail expression back to the evaluator through the callback
// the cell carries. The callback's result is either another cell (continue)
// or any terminal value (the sequence ends there, usually Nil). Nothing is
// memoized: traversing the same logical position twice re-invokes the
// evaluator. Callers that need stable results materialize with Collect
// first.
package vaterite

// Force advances a suspension by one step.
func Force(c *LazyCell, names *NamePool) (Value, error) {
	return c.Eval(c.Tail, c.Env, names)
}

// Nth returns element n of a sequence. Lists index directly and yield Nil
// past the end; lazy chains are forced step by step and yield Nil if the
// sequence terminates before reaching n. n must be non-negative.
func Nth(seq Value, n int, names *NamePool) (Value, error) {
	if n < 0 {
		return Nil, errDomain("nth index must be non-negative, got %d", n)
	}
	switch seq.Tag {
	case VTNil:
		return Nil, nil
	case VTList:
		xs := seq.Data.([]Value)
		if n >= len(xs) {
			return Nil, nil
		}
		return xs[n], nil
	case VTLazy:
		c := seq.Data.(*LazyCell)
		if n == 0 {
			return c.Head, nil
		}
		for count := n; ; {
			next, err := Force(c, names)
			if err != nil {
				return Nil, err
			}
			if next.Tag != VTLazy {
				return Nil, nil
			}
			c = next.Data.(*LazyCell)
			count--
			if count == 0 {
				return c.Head, nil
			}
		}
	default:
		return Nil, errType("collection", seq)
	}
}

// Collect materializes a sequence into a List, forcing a lazy chain to
// completion in head order. An infinite chain makes Collect loop forever;
// bounding is the caller's job (compose with nth/take upstream). Lists and
// Nil pass through unchanged.
func Collect(seq Value, names *NamePool) (Value, error) {
	switch seq.Tag {
	case VTNil, VTList:
		return seq, nil
	case VTLazy:
		c := seq.Data.(*LazyCell)
		acc := []Value{c.Head}
		for {
			next, err := Force(c, names)
			if err != nil {
				return Nil, err
			}
			if next.Tag != VTLazy {
				return List(acc...), nil
			}
			c = next.Data.(*LazyCell)
			acc = append(acc, c.Head)
		}
	default:
		return Nil, errType("list", seq)
	}
}
