package guard

import "fmt"

// Shape identifies which guard pattern proved a forced unwrap safe. It is a
// diagnostic aid: correctness only depends on the guarded/unguarded split.
type Shape int

const (
	shapeInvalid Shape = iota

	ShapeTernary
	ShapeGuardClause
	ShapeAndChain
	ShapeOrChain
	ShapePropagatedCompare
	ShapePredicate
	ShapePairedIndicator
	ShapeLoopCondition
	ShapeCollectionIf
	ShapeCoalesce
)

// String returns the short name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeTernary:
		return "ternary-check"
	case ShapeGuardClause:
		return "guard-clause"
	case ShapeAndChain:
		return "and-chain"
	case ShapeOrChain:
		return "or-chain"
	case ShapePropagatedCompare:
		return "propagated-compare"
	case ShapePredicate:
		return "predicate-check"
	case ShapePairedIndicator:
		return "paired-indicator"
	case ShapeLoopCondition:
		return "loop-condition"
	case ShapeCollectionIf:
		return "collection-if"
	case ShapeCoalesce:
		return "coalesce-assign"
	default:
		return fmt.Sprintf("shape-unknown(%d)", s)
	}
}

// Describe returns the human-readable explanation of the shape.
func (s Shape) Describe() string {
	switch s {
	case ShapeTernary:
		return "Null check in a ternary condition covering the used arm."
	case ShapeGuardClause:
		return "Null check in an if condition, or an early-exit clause before the use."
	case ShapeAndChain:
		return "Non-null conjunct evaluated earlier in a short-circuit && chain."
	case ShapeOrChain:
		return "Null/absence disjunct evaluated earlier in a short-circuit || chain."
	case ShapePropagatedCompare:
		return "Comparison that could only hold with a live null-aware receiver."
	case ShapePredicate:
		return "Registered presence predicate pinning the receiver non-null."
	case ShapePairedIndicator:
		return "Indicator property vouching for its paired nullable property."
	case ShapeLoopCondition:
		return "Condition-first loop re-checking the value on every entry."
	case ShapeCollectionIf:
		return "Conditional collection element covering the used arm."
	case ShapeCoalesce:
		return "Preceding ??= assignment in the same block."
	default:
		return fmt.Sprintf("unknown-shape(%d)", s)
	}
}
