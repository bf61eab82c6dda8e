package vaterite

import (
	"errors"
	"testing"
)

type stubEnv struct{ clones *int }

func (e stubEnv) Clone() Env {
	if e.clones != nil {
		*e.clones++
	}
	return e
}

// countingChain builds a lazy chain of the numbers from..limit-1 where every
// advance goes through the eval callback, the way evaluator-produced cells
// do. The tail expression is just the next index as a Num.
func countingChain(from, limit int, steps *int) Value {
	if from >= limit {
		return Nil
	}
	var eval EvalFn
	eval = func(expr Value, env Env, names *NamePool) (Value, error) {
		if steps != nil {
			*steps++
		}
		n := int(expr.Data.(float64))
		if n >= limit {
			return Nil, nil
		}
		return LazyVal(&LazyCell{
			Head: Num(float64(n)),
			Tail: Num(float64(n + 1)),
			Env:  env,
			Eval: eval,
		}), nil
	}
	v, _ := eval(Num(float64(from)), stubEnv{}, nil)
	return v
}

func Test_Lazy_Collect_Order_And_Length(t *testing.T) {
	names := NewNamePool()
	got, err := Collect(countingChain(0, 5, nil), names)
	if err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	want := List(Num(0), Num(1), Num(2), Num(3), Num(4))
	if !Equal(got, want) {
		t.Fatalf("collect = %s, want %s", got, want)
	}
}

func Test_Lazy_Collect_PassThrough(t *testing.T) {
	names := NewNamePool()
	xs := List(Num(1), Num(2))
	got, err := Collect(xs, names)
	if err != nil || !Equal(got, xs) {
		t.Fatalf("collect of a list should pass through: %s, %v", got, err)
	}
	got, err = Collect(Nil, names)
	if err != nil || got.Tag != VTNil {
		t.Fatalf("collect of Nil should pass through: %s, %v", got, err)
	}
	if _, err := Collect(Num(1), names); err == nil {
		t.Fatalf("collect of a number should fail")
	}
}

func Test_Lazy_Nth_Matches_List_Indexing(t *testing.T) {
	names := NewNamePool()
	lazy := countingChain(0, 6, nil)
	eager, err := Collect(countingChain(0, 6, nil), names)
	if err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	for i := 0; i < 6; i++ {
		a, err := Nth(lazy, i, names)
		if err != nil {
			t.Fatalf("nth(lazy, %d) failed: %v", i, err)
		}
		b, err := Nth(eager, i, names)
		if err != nil {
			t.Fatalf("nth(list, %d) failed: %v", i, err)
		}
		if !Equal(a, b) {
			t.Fatalf("index %d disagrees: lazy %s, list %s", i, a, b)
		}
	}
}

func Test_Lazy_Nth_Past_End_Is_Nil(t *testing.T) {
	names := NewNamePool()
	v, err := Nth(countingChain(0, 3, nil), 10, names)
	if err != nil || v.Tag != VTNil {
		t.Fatalf("nth past a terminating chain = %s, %v", v, err)
	}
	v, err = Nth(List(Num(1)), 5, names)
	if err != nil || v.Tag != VTNil {
		t.Fatalf("nth past a list = %s, %v", v, err)
	}
	if _, err := Nth(List(Num(1)), -1, names); err == nil {
		t.Fatalf("negative index should fail")
	}
}

func Test_Lazy_No_Memoization(t *testing.T) {
	names := NewNamePool()
	steps := 0
	chain := countingChain(0, 4, &steps)
	steps = 0

	if _, err := Collect(chain, names); err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	first := steps
	if _, err := Collect(chain, names); err != nil {
		t.Fatalf("second collect failed: %v", err)
	}
	if steps != 2*first {
		t.Fatalf("forcing should re-run the evaluator every traversal: %d then %d", first, steps)
	}
}

func Test_Lazy_Force_Propagates_Errors(t *testing.T) {
	boom := errors.New("boom")
	cell := &LazyCell{
		Head: Num(0),
		Tail: Nil,
		Env:  stubEnv{},
		Eval: func(Value, Env, *NamePool) (Value, error) { return Nil, boom },
	}
	if _, err := Force(cell, nil); !errors.Is(err, boom) {
		t.Fatalf("force should surface the evaluator error, got %v", err)
	}
	if _, err := Collect(LazyVal(cell), nil); !errors.Is(err, boom) {
		t.Fatalf("collect should surface the evaluator error, got %v", err)
	}
}

func Test_Lazy_First_Is_Already_Forced(t *testing.T) {
	// First never calls the evaluator; the head is stored forced.
	cell := &LazyCell{
		Head: Str("head"),
		Tail: Nil,
		Env:  stubEnv{},
		Eval: func(Value, Env, *NamePool) (Value, error) {
			panic("first must not force")
		},
	}
	h, err := LazyVal(cell).First()
	if err != nil {
		t.Fatalf("first failed: %v", err)
	}
	wantStr(t, h, "head")
}
