package unwrapcheck

import (
	"fmt"

	"github.com/saropa/saropa-lints-sub000/ast"
	"github.com/saropa/saropa-lints-sub000/internal/guard"
	"github.com/saropa/saropa-lints-sub000/internal/spanindex"
	"github.com/saropa/saropa-lints-sub000/predicate"
)

// Diagnostic is a single unguarded forced-unwrap report.
type Diagnostic struct {
	// Range locates the offending null assertion in the unit's source.
	Range ast.Range

	// Key is the canonical access path being asserted, "" when the operand
	// is not a stable path.
	Key string

	// Message is the human-readable report.
	Message string
}

// DiagnoseAt classifies the innermost forced unwrap covering pos, the
// single-site flow an editor integration runs at a cursor position. The
// second result is false when there is no unwrap at pos or it is guarded.
func DiagnoseAt(unit *ast.Unit, pos ast.Pos, reg *predicate.Registry) (Diagnostic, bool) {
	if reg == nil {
		reg = predicate.Default()
	}

	path := spanindex.Build(unit).PathAt(pos)
	for i := len(path) - 1; i >= 0; i-- {
		u, ok := path[i].(*ast.ForcedUnwrap)
		if !ok {
			continue
		}

		if v := guard.Classify(path[:i], u, reg); v.Guarded {
			return Diagnostic{}, false
		}

		return newDiagnostic(u), true
	}

	return Diagnostic{}, false
}

func newDiagnostic(u *ast.ForcedUnwrap) Diagnostic {
	key := unwrapKey(u)

	msg := "unchecked null assertion"
	if key != "" {
		msg = fmt.Sprintf("unchecked null assertion on '%s'", key)
	}

	return Diagnostic{
		Range:   u.Span(),
		Key:     key,
		Message: msg,
	}
}
