package vaterite

import (
	"errors"
	"testing"
)

func nums(fs ...float64) Value {
	xs := make([]Value, len(fs))
	for i, f := range fs {
		xs[i] = Num(f)
	}
	return List(xs...)
}

func Test_Builtin_List_Construct_And_Access(t *testing.T) {
	r := testReg(t)

	xs := mustCall(t, r, "list", Num(1), Num(2), Num(3))
	if !Equal(xs, nums(1, 2, 3)) {
		t.Fatalf("list = %s", xs)
	}
	wantNum(t, mustCall(t, r, "first", xs), 1)
	if !Equal(mustCall(t, r, "rest", xs), nums(2, 3)) {
		t.Fatalf("rest failed")
	}
	wantNum(t, mustCall(t, r, "nth", xs, Num(2)), 3)
	if got := mustCall(t, r, "nth", xs, Num(9)); got.Tag != VTNil {
		t.Fatalf("nth past end = %s", got)
	}
	wantNum(t, mustCall(t, r, "len", xs), 3)
}

func Test_Builtin_List_Ordinals(t *testing.T) {
	r := testReg(t)
	xs := nums(10, 20, 30, 40, 50, 60, 70, 80, 90, 100)

	ordinals := map[string]float64{
		"first": 10, "second": 20, "third": 30, "fourth": 40, "fifth": 50,
		"sixth": 60, "seventh": 70, "eighth": 80, "ninth": 90, "tenth": 100,
	}
	for name, want := range ordinals {
		wantNum(t, mustCall(t, r, name, xs), want)
	}
	if got := mustCall(t, r, "tenth", nums(1, 2)); got.Tag != VTNil {
		t.Fatalf("tenth of a short list = %s", got)
	}
}

func Test_Builtin_List_Cons_Shapes(t *testing.T) {
	r := testReg(t)

	if !Equal(mustCall(t, r, "cons", Num(1), nums(2, 3)), nums(1, 2, 3)) {
		t.Fatalf("cons onto a list failed")
	}
	if !Equal(mustCall(t, r, "cons", Num(1), Nil), nums(1)) {
		t.Fatalf("cons onto Nil failed")
	}
	if !Equal(mustCall(t, r, "rev-cons", nums(1, 2), Num(3)), nums(1, 2, 3)) {
		t.Fatalf("rev-cons failed")
	}
	err := wantErrCall(t, r, "cons", Num(1), Num(2))
	var de *DomainError
	if !errors.As(err, &de) {
		t.Fatalf("cons to a number: want DomainError, got %v", err)
	}
}

func Test_Builtin_List_Cons_Does_Not_Mutate(t *testing.T) {
	r := testReg(t)

	base := nums(2, 3)
	mustCall(t, r, "cons", Num(1), base)
	mustCall(t, r, "rev-cons", base, Num(4))
	if !Equal(base, nums(2, 3)) {
		t.Fatalf("input list was mutated: %s", base)
	}
}

func Test_Builtin_List_Append_And_Reverse(t *testing.T) {
	r := testReg(t)

	got := mustCall(t, r, "append", nums(1), Nil, nums(2, 3), List())
	if !Equal(got, nums(1, 2, 3)) {
		t.Fatalf("append = %s", got)
	}
	if got := mustCall(t, r, "append"); !Equal(got, List()) {
		t.Fatalf("append of nothing = %s", got)
	}
	if !Equal(mustCall(t, r, "reverse", nums(1, 2, 3)), nums(3, 2, 1)) {
		t.Fatalf("reverse failed")
	}
	if got := mustCall(t, r, "reverse", Nil); got.Tag != VTNil {
		t.Fatalf("reverse of Nil = %s", got)
	}
	wantErrCall(t, r, "append", nums(1), Str("x"))
}

func Test_Builtin_List_Map_And_Apply(t *testing.T) {
	r := testReg(t)
	inc, _ := r.Lookup("inc")
	plus, _ := r.Lookup("+")

	got := mustCall(t, r, "map", inc, nums(1, 2, 3))
	if !Equal(got, nums(2, 3, 4)) {
		t.Fatalf("map = %s", got)
	}
	if got := mustCall(t, r, "map", inc, Nil); got.Tag != VTNil {
		t.Fatalf("map over Nil = %s", got)
	}

	wantNum(t, mustCall(t, r, "apply", plus, Num(1), nums(2, 3)), 6)
	wantNum(t, mustCall(t, r, "apply", plus, Nil), 0)
	wantErrCall(t, r, "apply", plus, Num(1), Num(2))
}

func Test_Builtin_List_Collect_Lazy(t *testing.T) {
	r := testReg(t)

	got := mustCall(t, r, "collect", countingChain(0, 3, nil))
	if !Equal(got, nums(0, 1, 2)) {
		t.Fatalf("collect = %s", got)
	}
	passthrough := nums(1, 2)
	if !Equal(mustCall(t, r, "collect", passthrough), passthrough) {
		t.Fatalf("collect of a list should pass through")
	}
}

func Test_Builtin_List_Predicates(t *testing.T) {
	r := testReg(t)
	p := r.Names()

	check := func(name string, v Value, want bool) {
		t.Helper()
		wantBool(t, mustCall(t, r, name, v), want)
	}

	// Surface quirks: list? is false for Nil and the empty list, nil? is
	// true for both empty forms, atom? counts them as atoms.
	check("list?", Nil, false)
	check("list?", List(), false)
	check("list?", nums(1), true)
	check("nil?", Nil, true)
	check("nil?", List(), true)
	check("nil?", nums(1), false)
	check("atom?", Nil, true)
	check("atom?", List(), true)
	check("atom?", nums(1), false)
	check("atom?", Num(1), true)

	check("number?", Num(1), true)
	check("number?", Str("1"), false)
	check("string?", Str(""), true)
	check("string?", Chars(nil), false)
	check("symbol?", Sym(p.Intern("s")), true)
	check("symbol?", Keyword(p.Intern("s")), false)
	check("keyword?", Keyword(p.Intern("k")), true)
	check("hash-map?", Map(nil), true)
	check("hash-map?", nums(1), false)

	inc, _ := r.Lookup("inc")
	check("function?", inc, true)
	check("function?", FunVal(&Fun{}), true)
	check("function?", Num(1), false)
}
