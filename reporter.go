package unwrapcheck

import (
	"sort"
	"sync"

	"github.com/saropa/saropa-lints-sub000/ast"
	"github.com/saropa/saropa-lints-sub000/predicate"
)

// Reporter aggregates diagnostics across units. The analysis itself is
// pure, so callers are free to scan many units concurrently into one
// reporter; this is the only synchronized piece of the package.
type Reporter struct {
	mu    sync.Mutex
	diags []Diagnostic
}

// Report adds a single diagnostic.
func (r *Reporter) Report(d Diagnostic) {
	r.mu.Lock()
	r.diags = append(r.diags, d)
	r.mu.Unlock()
}

// Collect scans one unit and records its diagnostics.
func (r *Reporter) Collect(unit *ast.Unit, reg *predicate.Registry) {
	found := Scan(unit, reg)
	if len(found) == 0 {
		return
	}

	r.mu.Lock()
	r.diags = append(r.diags, found...)
	r.mu.Unlock()
}

// Diagnostics returns a snapshot of all collected records, ordered by
// source range then key so concurrent collection still yields a stable
// result.
func (r *Reporter) Diagnostics() []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Diagnostic, len(r.diags))
	copy(out, r.diags)

	sort.Slice(out, func(i, j int) bool {
		if out[i].Range.Start != out[j].Range.Start {
			return out[i].Range.Start < out[j].Range.Start
		}
		if out[i].Range.Length != out[j].Range.Length {
			return out[i].Range.Length < out[j].Range.Length
		}

		return out[i].Key < out[j].Key
	})

	return out
}
