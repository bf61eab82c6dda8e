// registry.go: the native procedure table.
//
// Each entry binds a name to a declared arity and an implementation. The
// table is the language's standard library surface; the evaluator looks
// entries up by name, checks arity against the actual argument count, and
// invokes. Implementations trust the arity check and index their arguments
// positionally (argument-kind failures still come back through the error
// taxonomy).
//
// The registry also carries the process collaborators the host builtins
// need (an output writer, an input reader and a clock), defaulted to the
// real ones and swappable by hosts and tests.
package vaterite

import (
	"bufio"
	"io"
	"os"
	"time"
)

type Registry struct {
	names   *NamePool
	entries map[string]Value
	order   []string

	Stdout io.Writer
	Stdin  io.Reader
	Now    func() time.Time

	stdin *bufio.Reader
}

// NewRegistry builds the full standard table against the provided pool.
func NewRegistry(names *NamePool) *Registry {
	r := &Registry{
		names:   names,
		entries: map[string]Value{},
		Stdout:  os.Stdout,
		Stdin:   os.Stdin,
		Now:     time.Now,
	}
	registerMathBuiltins(r)
	registerListBuiltins(r)
	registerMapBuiltins(r)
	registerStringBuiltins(r)
	registerStructBuiltins(r)
	registerHostBuiltins(r)
	return r
}

func (r *Registry) register(name string, arity Arity, impl NativeImpl) {
	if _, ok := r.entries[name]; !ok {
		r.order = append(r.order, name)
	}
	r.entries[name] = NatVal(name, arity, impl)
}

// Names returns the pool all entries resolve against.
func (r *Registry) Names() *NamePool { return r.names }

// Lookup returns the native value bound to name.
func (r *Registry) Lookup(name string) (Value, bool) {
	v, ok := r.entries[name]
	return v, ok
}

// Entries lists the bound names in registration order.
func (r *Registry) Entries() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Call dispatches a native by name with arity checking, the way the
// evaluator does. Unknown names are a DomainError.
func (r *Registry) Call(name string, args ...Value) (Value, error) {
	v, ok := r.entries[name]
	if !ok {
		return Nil, errDomain("unknown native procedure %s", name)
	}
	return v.Apply(args, r.names)
}

// reader returns the buffered view of Stdin used by the input builtin.
func (r *Registry) reader() *bufio.Reader {
	if r.stdin == nil {
		r.stdin = bufio.NewReader(r.Stdin)
	}
	return r.stdin
}
