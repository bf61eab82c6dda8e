// names.go: interned name pool.
//
// Symbols, keywords and map keys all compare by a small integer identifier
// handed out here. The pool is append-only: equal strings always intern to
// the same identifier, identifiers are never reused or renumbered, and a
// reverse lookup stays valid for the life of the pool. One pool instance is
// passed explicitly to every operation that needs name resolution; there is
// no ambient global table.
package vaterite

import "fmt"

// Name is an interned string identifier. Two Names from the same pool are
// equal iff the strings they intern are equal.
type Name int32

// NamePool interns strings to Names and resolves them back.
//
// Not safe for concurrent interning; a multi-threaded host must serialize
// Intern calls (reads of already-interned entries are fine alongside each
// other, not alongside Intern).
type NamePool struct {
	byText map[string]Name
	texts  []string
}

func NewNamePool() *NamePool {
	return &NamePool{byText: make(map[string]Name)}
}

// Intern returns the identifier for text, allocating a fresh one on first
// sight.
func (p *NamePool) Intern(text string) Name {
	if n, ok := p.byText[text]; ok {
		return n
	}
	n := Name(len(p.texts))
	p.texts = append(p.texts, text)
	p.byText[text] = n
	return n
}

// Resolve returns the string a Name was interned from. It is total for any
// Name this pool produced and panics for a foreign identifier; handing a
// Name between pools is a host bug, not a recoverable condition.
func (p *NamePool) Resolve(n Name) string {
	if n < 0 || int(n) >= len(p.texts) {
		panic(fmt.Sprintf("vaterite: foreign name %d (pool has %d entries)", n, len(p.texts)))
	}
	return p.texts[n]
}

// Size reports how many distinct strings have been interned.
func (p *NamePool) Size() int { return len(p.texts) }
