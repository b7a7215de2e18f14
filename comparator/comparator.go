// Package comparator provides the named, runtime-selectable orderings a
// loot list can be sorted by.
//
// Every comparator is a pure, total function over two entries returning a
// negative number, zero or a positive number. Each semantic dimension is
// registered twice: ascending under its base name and mirrored under the
// same name with a "Desc" suffix.
package comparator

import "github.com/hupe1980/lootsort/item"

// Comparator orders two entries.
type Comparator interface {
	// Name returns the registry name, e.g. "byValue".
	Name() string
	// Compare returns <0 when a sorts before b, >0 when after, 0 on a tie.
	Compare(a, b *item.Entry) int
}

// Func adapts an ordinary function to the Comparator interface.
type Func struct {
	name string
	fn   func(a, b *item.Entry) int
}

// New wraps fn as a comparator registered under name.
func New(name string, fn func(a, b *item.Entry) int) *Func {
	return &Func{name: name, fn: fn}
}

func (f *Func) Name() string                 { return f.name }
func (f *Func) Compare(a, b *item.Entry) int { return f.fn(a, b) }

// Descending mirrors c under the given name.
func Descending(name string, c Comparator) Comparator {
	return New(name, func(a, b *item.Entry) int { return c.Compare(b, a) })
}

// Chain applies comparators in order; the first non-zero result wins.
type Chain []Comparator

// Name joins the member names with commas.
func (ch Chain) Name() string {
	name := ""
	for i, c := range ch {
		if i > 0 {
			name += ","
		}
		name += c.Name()
	}
	return name
}

func (ch Chain) Compare(a, b *item.Entry) int {
	for _, c := range ch {
		if r := c.Compare(a, b); r != 0 {
			return r
		}
	}
	return 0
}

// Less returns a less function over entries suitable for sort.SliceStable.
func Less(c Comparator, entries []*item.Entry) func(i, j int) bool {
	return func(i, j int) bool { return c.Compare(entries[i], entries[j]) < 0 }
}

var (
	_ Comparator = (*Func)(nil)
	_ Comparator = Chain(nil)
)
