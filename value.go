// value.go: the runtime value algebra.
//
// Value is the universal carrier for every datum a Vaterite program touches:
// a closed tagged sum with exactly one active variant per instance. All
// variants except Box are immutable once constructed; sharing is free and
// "mutating" a collection always allocates a fresh backing store. Box is
// the single reference-semantics escape hatch: one mutable cell, aliased by
// every holder, updated in place.
//
// The evaluator and this core are deliberately decoupled: user closures
// (Fun) and suspended sequences (LazyCell) carry capability function
// references (ApplyFn, EvalFn) instead of a concrete evaluator type, which
// breaks the dependency cycle between the runtime core and the machine that
// drives it.
package vaterite

import (
	"fmt"
	"strconv"
)

// ValueTag enumerates the runtime kinds a Value may hold. The tag
// determines what Value.Data contains.
type ValueTag int

const (
	VTNil     ValueTag = iota // no payload; empty/absent marker and sequence end
	VTBool                    // bool
	VTNum                     // float64
	VTStr                     // string
	VTChar                    // rune
	VTChars                   // []rune (string decomposed into code points; sliceable)
	VTSym                     // Name
	VTKeyword                 // Name
	VTList                    // []Value (immutable, shared)
	VTMap                     // map[Name]Value (immutable, shared, unordered)
	VTStruct                  // *StructObject
	VTBox                     // *BoxObject (the only mutable variant)
	VTFun                     // *Fun (user closure; opaque beyond invocation)
	VTNatFun                  // *NatFun (native procedure descriptor)
	VTLazy                    // *LazyCell (suspended sequence node)
)

// Value is the tagged union. Data holds the payload listed next to each tag.
type Value struct {
	Tag  ValueTag
	Data any
}

// Nil is the singleton empty/absent marker.
var Nil = Value{Tag: VTNil}

// True and False are the two boolean values.
var (
	True  = Value{Tag: VTBool, Data: true}
	False = Value{Tag: VTBool, Data: false}
)

// Constructors. They do not copy their arguments; callers hand over
// ownership of slices and maps.
func Bool(b bool) Value {
	if b {
		return True
	}
	return False
}
func Num(f float64) Value    { return Value{Tag: VTNum, Data: f} }
func Str(s string) Value     { return Value{Tag: VTStr, Data: s} }
func Char(r rune) Value      { return Value{Tag: VTChar, Data: r} }
func Chars(rs []rune) Value  { return Value{Tag: VTChars, Data: rs} }
func Sym(n Name) Value       { return Value{Tag: VTSym, Data: n} }
func Keyword(n Name) Value   { return Value{Tag: VTKeyword, Data: n} }
func List(xs ...Value) Value { return Value{Tag: VTList, Data: xs} }
func Map(m map[Name]Value) Value {
	if m == nil {
		m = map[Name]Value{}
	}
	return Value{Tag: VTMap, Data: m}
}

// StructObject is a nominal tagged tuple: an identifying Name plus an
// ordered field vector. Field access verifies the tag (see index-struct).
type StructObject struct {
	Id     Name
	Fields []Value
}

func StructVal(id Name, fields []Value) Value {
	return Value{Tag: VTStruct, Data: &StructObject{Id: id, Fields: fields}}
}

// BoxObject is the one mutable cell of the algebra. All holders alias it;
// writes are visible everywhere. No freeze operation exists.
type BoxObject struct {
	V Value
}

func Box(v Value) Value { return Value{Tag: VTBox, Data: &BoxObject{V: v}} }

// Env is the evaluator's lexical environment as seen from the core: an
// opaque, cheaply-cloneable handle.
type Env interface {
	Clone() Env
}

// EvalFn is the forcing callback a LazyCell carries: evaluate expr in env.
// Pure from the core's point of view.
type EvalFn func(expr Value, env Env, names *NamePool) (Value, error)

// ApplyFn applies a user closure to already-evaluated arguments. Provided
// by the evaluator when it constructs the Fun.
type ApplyFn func(f *Fun, args []Value, names *NamePool) (Value, error)

// NativeImpl is the implementation shape of a native procedure. It may
// assume its declared arity has been validated and index args positionally;
// it still reports argument-kind failures via the error taxonomy.
type NativeImpl func(args []Value, names *NamePool) (Value, error)

// Fun is a user-defined closure: parameter list, body and captured
// environment, all opaque to this core beyond invocation through Call.
type Fun struct {
	Params Value
	Body   Value
	Env    Env
	Call   ApplyFn
}

func FunVal(f *Fun) Value { return Value{Tag: VTFun, Data: f} }

// NatFun is a native procedure descriptor: name, declared arity, impl.
type NatFun struct {
	Name  string
	Arity Arity
	Impl  NativeImpl
}

func NatVal(name string, arity Arity, impl NativeImpl) Value {
	return Value{Tag: VTNatFun, Data: &NatFun{Name: name, Arity: arity, Impl: impl}}
}

// LazyCell is a one-step suspension: Head is already forced; Tail is an
// unevaluated expression that, evaluated in Env via Eval, yields either the
// next LazyCell or a terminal value (usually Nil). Cells are never mutated;
// forcing produces new values. Nothing is cached across traversals.
type LazyCell struct {
	Head Value
	Tail Value
	Env  Env
	Eval EvalFn
}

func LazyVal(c *LazyCell) Value { return Value{Tag: VTLazy, Data: c} }

// ---- arity ----------------------------------------------------------------

// Arity is a declared constraint on native argument counts: an exact count,
// a lower bound, or an inclusive range.
type Arity struct {
	min, max int // max < 0 means unbounded
}

func Exactly(n int) Arity      { return Arity{min: n, max: n} }
func AtLeast(n int) Arity      { return Arity{min: n, max: -1} }
func Between(lo, hi int) Arity { return Arity{min: lo, max: hi} }

func (a Arity) Matches(count int) bool {
	return count >= a.min && (a.max < 0 || count <= a.max)
}

func (a Arity) String() string {
	switch {
	case a.max < 0:
		return fmt.Sprintf("at least %d", a.min)
	case a.min == a.max:
		return fmt.Sprintf("exactly %d", a.min)
	default:
		return fmt.Sprintf("%d to %d", a.min, a.max)
	}
}

// ---- structural equality --------------------------------------------------

// Equal is the structural equality of the algebra. Numbers, strings, chars
// and booleans compare by value; symbols and keywords by Name identifier
// only; lists, maps and structs recursively. Funcs, natives, boxes and lazy
// cells have no structural equality and compare by identity.
func Equal(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VTNil:
		return true
	case VTBool:
		return a.Data.(bool) == b.Data.(bool)
	case VTNum:
		return a.Data.(float64) == b.Data.(float64)
	case VTStr:
		return a.Data.(string) == b.Data.(string)
	case VTChar:
		return a.Data.(rune) == b.Data.(rune)
	case VTChars:
		ax, bx := a.Data.([]rune), b.Data.([]rune)
		if len(ax) != len(bx) {
			return false
		}
		for i := range ax {
			if ax[i] != bx[i] {
				return false
			}
		}
		return true
	case VTSym, VTKeyword:
		return a.Data.(Name) == b.Data.(Name)
	case VTList:
		ax, bx := a.Data.([]Value), b.Data.([]Value)
		if len(ax) != len(bx) {
			return false
		}
		for i := range ax {
			if !Equal(ax[i], bx[i]) {
				return false
			}
		}
		return true
	case VTMap:
		am, bm := a.Data.(map[Name]Value), b.Data.(map[Name]Value)
		if len(am) != len(bm) {
			return false
		}
		for k, av := range am {
			bv, ok := bm[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	case VTStruct:
		as, bs := a.Data.(*StructObject), b.Data.(*StructObject)
		if as.Id != bs.Id || len(as.Fields) != len(bs.Fields) {
			return false
		}
		for i := range as.Fields {
			if !Equal(as.Fields[i], bs.Fields[i]) {
				return false
			}
		}
		return true
	default:
		// Box, Fun, NatFun, Lazy: identity only.
		return a.Data == b.Data
	}
}

// ---- small helpers --------------------------------------------------------

// IsEmptySeq reports whether v is the empty sequence in either of its two
// representations. Both Nil and a zero-length List must be treated as empty
// by every collection operation; the duality is part of the surface.
func (v Value) IsEmptySeq() bool {
	return v.Tag == VTNil || (v.Tag == VTList && len(v.Data.([]Value)) == 0)
}

// Falsy reports whether v counts as false in conditional positions: Nil,
// false, or the empty list.
func (v Value) Falsy() bool {
	if v.Tag == VTBool {
		return !v.Data.(bool)
	}
	return v.IsEmptySeq()
}

// String is a names-free compact rendering used in error messages. It
// cannot resolve symbol spellings (that needs a pool); use Display/Debug
// for user-facing text.
func (v Value) String() string {
	switch v.Tag {
	case VTNil:
		return "()"
	case VTBool:
		if v.Data.(bool) {
			return "true"
		}
		return "false"
	case VTNum:
		return strconv.FormatFloat(v.Data.(float64), 'f', -1, 64)
	case VTStr:
		return strconv.Quote(v.Data.(string))
	case VTChar:
		return "'" + string(v.Data.(rune)) + "'"
	case VTChars:
		return strconv.Quote(string(v.Data.([]rune)))
	case VTSym:
		return fmt.Sprintf("#<sym %d>", v.Data.(Name))
	case VTKeyword:
		return fmt.Sprintf("#<keyword %d>", v.Data.(Name))
	case VTList:
		return fmt.Sprintf("#<list len=%d>", len(v.Data.([]Value)))
	case VTMap:
		return fmt.Sprintf("#<map len=%d>", len(v.Data.(map[Name]Value)))
	case VTStruct:
		return fmt.Sprintf("#<struct %d>", v.Data.(*StructObject).Id)
	case VTBox:
		return "#<box>"
	case VTFun:
		return "#<function>"
	case VTNatFun:
		return "#<native " + v.Data.(*NatFun).Name + ">"
	case VTLazy:
		return "#<lazy>"
	default:
		return "#<unknown>"
	}
}

// ---- sequence capability --------------------------------------------------

// First returns the head of a sequence. Nil and the empty list yield Nil; a
// lazy cell yields its already-forced head.
func (v Value) First() (Value, error) {
	switch v.Tag {
	case VTNil:
		return Nil, nil
	case VTList:
		xs := v.Data.([]Value)
		if len(xs) == 0 {
			return Nil, nil
		}
		return xs[0], nil
	case VTLazy:
		return v.Data.(*LazyCell).Head, nil
	default:
		return Nil, errType("list", v)
	}
}

// Rest returns everything after the head. For a List it allocates a fresh
// backing slice (the input is never aliased by the result); for a lazy cell
// it forces one step and returns whatever the evaluator produced, which is
// either the next cell or a terminal value.
func (v Value) Rest(names *NamePool) (Value, error) {
	switch v.Tag {
	case VTNil:
		return Nil, nil
	case VTList:
		xs := v.Data.([]Value)
		if len(xs) == 0 {
			return Nil, nil
		}
		rest := make([]Value, len(xs)-1)
		copy(rest, xs[1:])
		return List(rest...), nil
	case VTLazy:
		c := v.Data.(*LazyCell)
		return c.Eval(c.Tail, c.Env, names)
	default:
		return Nil, errType("list", v)
	}
}

// Len counts elements. Chars counts code points while Str counts raw bytes;
// the two legitimately differ for multi-byte text and the asymmetry is part
// of the surface. Lazy, Map and Struct are not valid inputs.
func (v Value) Len() (int, error) {
	switch v.Tag {
	case VTNil:
		return 0, nil
	case VTList:
		return len(v.Data.([]Value)), nil
	case VTChars:
		return len(v.Data.([]rune)), nil
	case VTStr:
		return len(v.Data.(string)), nil
	default:
		return 0, errType("list, chars or string", v)
	}
}

// Apply invokes a callable with already-evaluated arguments. User closures
// delegate to the evaluator through their ApplyFn capability; natives are
// arity-checked here as a backstop and then invoked.
func (v Value) Apply(args []Value, names *NamePool) (Value, error) {
	switch v.Tag {
	case VTFun:
		f := v.Data.(*Fun)
		if f.Call == nil {
			return Nil, errDomain("function has no evaluator attached")
		}
		return f.Call(f, args, names)
	case VTNatFun:
		nf := v.Data.(*NatFun)
		if !nf.Arity.Matches(len(args)) {
			return Nil, &ArityError{Name: nf.Name, Expected: nf.Arity, Got: len(args)}
		}
		return nf.Impl(args, names)
	default:
		return Nil, errType("function", v)
	}
}
