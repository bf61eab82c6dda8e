// errors.go: the closed error taxonomy of the runtime core.
//
// Every failing operation in this package returns exactly one of the types
// below. Nothing is recovered internally: errors are constructed at the
// point of detection and propagate to the evaluator, which decides whether
// to surface, catch, or abort. The only non-error "expected absence" signal
// in the core is Nil; a missing map key is deliberately an error
// (KeyNotFoundError), not Nil.
package vaterite

import "fmt"

// TypeError reports a value of the wrong kind. Expected is a human
// description ("number", "list, chars or string"); Got is the offending
// value, rendered names-free.
type TypeError struct {
	Expected string
	Got      Value
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type error: expected %s, got %s", e.Expected, e.Got)
}

// ArityError reports a native call with the wrong argument count. The
// evaluator produces these before invoking an implementation; Value.Apply
// produces them as a backstop.
type ArityError struct {
	Name     string
	Expected Arity
	Got      int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("arity error: %s expects %s argument(s), got %d", e.Name, e.Expected, e.Got)
}

// KeyArgError reports a flattened key/value argument list of odd length.
type KeyArgError struct {
	Name string
}

func (e *KeyArgError) Error() string {
	return fmt.Sprintf("odd number of key/value arguments to %s", e.Name)
}

// KeyNotFoundError reports a lookup of a key absent from a map. Callers
// needing an optional lookup must pre-check with has-key?.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %s is not present in map", e.Key)
}

// DomainError is the free-form kind: malformed template strings, invalid
// slice bounds, struct identity mismatches, values unusable as map keys.
type DomainError struct {
	Msg string
}

func (e *DomainError) Error() string { return e.Msg }

func errType(expected string, got Value) error {
	return &TypeError{Expected: expected, Got: got}
}

func errDomain(format string, args ...any) error {
	return &DomainError{Msg: fmt.Sprintf(format, args...)}
}
