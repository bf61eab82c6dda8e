package vaterite

import (
	"errors"
	"testing"
)

func Test_Registry_Table_Complete(t *testing.T) {
	r := testReg(t)

	want := map[string]Arity{
		"+": AtLeast(0), "*": AtLeast(0), "-": AtLeast(0), "/": AtLeast(0),
		"<": AtLeast(0), ">": AtLeast(0), "<=": AtLeast(0), ">=": AtLeast(0),
		"==": AtLeast(1), "!=": AtLeast(1),
		"inc": Exactly(1), "dec": Exactly(1),

		"list": AtLeast(0), "first": Exactly(1), "second": Exactly(1),
		"third": Exactly(1), "fourth": Exactly(1), "fifth": Exactly(1),
		"sixth": Exactly(1), "seventh": Exactly(1), "eighth": Exactly(1),
		"ninth": Exactly(1), "tenth": Exactly(1),
		"nth": Exactly(2), "rest": Exactly(1), "cons": Exactly(2),
		"rev-cons": Exactly(2), "append": AtLeast(0), "reverse": Exactly(1),
		"map": Exactly(2), "apply": AtLeast(2), "collect": Exactly(1),
		"len": Exactly(1),

		"atom?": Exactly(1), "list?": Exactly(1), "nil?": Exactly(1),
		"number?": Exactly(1), "string?": Exactly(1), "symbol?": Exactly(1),
		"keyword?": Exactly(1), "hash-map?": Exactly(1), "function?": Exactly(1),

		"hash-map": AtLeast(0), "assoc": AtLeast(1), "dissoc": AtLeast(1),
		"get-key": Exactly(2), "has-key?": Exactly(2), "update": AtLeast(3),
		"map-keys": Exactly(1),

		"str": AtLeast(0), "repr": AtLeast(0), "format": AtLeast(1),
		"join": AtLeast(2), "symbol": Exactly(1), "keyword": Exactly(1),
		"name-intern-number": Exactly(1), "symbol-from-intern-number": Exactly(1),
		"string->chars": Exactly(1), "string/starts-with": Exactly(2),
		"string/append-char": Exactly(2), "char->string": Exactly(1),
		"char-list->string": Exactly(1), "chars/slice": Between(2, 3),

		"make-struct": AtLeast(1), "index-struct": Exactly(3),
		"assert-struct": Exactly(2), "box": Exactly(1), "set-box": Exactly(2),
		"swap-box": AtLeast(2), "deref": Exactly(1),

		"print": AtLeast(0), "println": AtLeast(0), "input": Exactly(0),
		"read-file": Exactly(1), "time-ms": Exactly(0), "assert": Between(1, 3),
	}

	for name, arity := range want {
		v, ok := r.Lookup(name)
		if !ok {
			t.Fatalf("missing native %s", name)
		}
		nf := v.Data.(*NatFun)
		if nf.Arity != arity {
			t.Fatalf("%s arity = %s, want %s", name, nf.Arity, arity)
		}
		if nf.Name != name {
			t.Fatalf("%s descriptor carries name %q", name, nf.Name)
		}
	}

	for _, name := range r.Entries() {
		if _, ok := want[name]; !ok {
			t.Fatalf("unexpected native %s in table", name)
		}
	}
	if len(r.Entries()) != len(want) {
		t.Fatalf("table has %d entries, want %d", len(r.Entries()), len(want))
	}
}

func Test_Registry_Call_Checks_Arity(t *testing.T) {
	r := testReg(t)

	err := wantErrCall(t, r, "inc")
	var ae *ArityError
	if !errors.As(err, &ae) || ae.Name != "inc" || ae.Got != 0 {
		t.Fatalf("want ArityError for inc/0, got %v", err)
	}
	if !errors.As(wantErrCall(t, r, "chars/slice", Chars(nil)), &ae) {
		t.Fatalf("range arity below minimum should fail")
	}
	if !errors.As(wantErrCall(t, r, "assert", Num(1), Num(1), Str("m"), Nil), &ae) {
		t.Fatalf("range arity above maximum should fail")
	}
}

func Test_Registry_Unknown_Native(t *testing.T) {
	r := testReg(t)
	err := wantErrCall(t, r, "no-such-native")
	var de *DomainError
	if !errors.As(err, &de) {
		t.Fatalf("want DomainError, got %v", err)
	}
}

func Test_Registry_Lookup_Yields_Callable(t *testing.T) {
	r := testReg(t)
	v, ok := r.Lookup("+")
	if !ok || v.Tag != VTNatFun {
		t.Fatalf("lookup + = %s, %v", v, ok)
	}
	got, err := v.Apply([]Value{Num(1), Num(2)}, r.Names())
	if err != nil {
		t.Fatalf("applying looked-up native failed: %v", err)
	}
	wantNum(t, got, 3)
}
