package guard

import (
	"github.com/saropa/saropa-lints-sub000/ast"
	"github.com/saropa/saropa-lints-sub000/internal/canon"
	"github.com/saropa/saropa-lints-sub000/internal/nullcheck"
	"github.com/saropa/saropa-lints-sub000/predicate"
)

// reason records which leaf fact carried an implication, for shape tagging.
type reason int

const (
	reasonNone reason = iota
	reasonDirect
	reasonPropagated
	reasonPredicate
	reasonIndicator
)

// prover answers the two questions every condition-driven shape reduces to:
// does this condition being true (resp. false) imply the key is non-null?
type prover struct {
	reg *predicate.Registry
}

// whenTrue reports whether cond being true implies key is non-null.
//
// A conjunction carries the fact when either conjunct does; a disjunction
// only when both disjuncts do (either branch may have satisfied it). A
// negation defers to whenFalse of its operand, which makes `!(x == null)`
// and `!x.isEmpty` work without dedicated cases.
func (p prover) whenTrue(cond ast.Expr, key string) reason {
	switch v := cond.(type) {
	case *ast.Not:
		if r := p.whenFalse(v.Operand, key); r != reasonNone {
			return r
		}

		return reasonNone

	case *ast.Logical:
		switch v.Op {
		case ast.LogicalAnd:
			if r := p.whenTrue(v.Left, key); r != reasonNone {
				return r
			}

			return p.whenTrue(v.Right, key)

		case ast.LogicalOr:
			l := p.whenTrue(v.Left, key)
			if l == reasonNone {
				return reasonNone
			}
			if p.whenTrue(v.Right, key) == reasonNone {
				return reasonNone
			}

			return l
		}

		return reasonNone
	}

	// A comparison can carry two facts at once: `x?.y != null` checks the
	// path x.y directly and vouches for the receiver x by propagation.
	if k, sense, ok := nullcheck.Checked(cond); ok && k == key && sense == nullcheck.SenseNotEqualsNull {
		return reasonDirect
	}

	if k, ok := nullcheck.Propagated(cond); ok && k == key {
		return reasonPropagated
	}

	if p.polarityOn(cond, key) == predicate.PolarityTruthy {
		return reasonPredicate
	}

	if p.indicatorOn(cond, key) {
		return reasonIndicator
	}

	return reasonNone
}

// whenFalse reports whether cond being false implies key is non-null.
//
// A false disjunction falsifies every disjunct, so any qualifying disjunct
// carries the fact. A false conjunction only tells us that some conjunct
// failed, without saying which — nothing usable.
func (p prover) whenFalse(cond ast.Expr, key string) reason {
	switch v := cond.(type) {
	case *ast.Not:
		if r := p.whenTrue(v.Operand, key); r != reasonNone {
			return r
		}

		return reasonNone

	case *ast.Logical:
		if v.Op != ast.LogicalOr {
			return reasonNone
		}

		if r := p.whenFalse(v.Left, key); r != reasonNone {
			return r
		}

		return p.whenFalse(v.Right, key)
	}

	if k, sense, ok := nullcheck.Checked(cond); ok && k == key && sense == nullcheck.SenseEqualsNull {
		return reasonDirect
	}

	if p.polarityOn(cond, key) == predicate.PolarityFalsy {
		return reasonPredicate
	}

	return reasonNone
}

// polarityOn resolves a predicate access or call on the checked key, e.g.
// `x.isNotEmpty` or `x?.isEmpty` for key "x".
func (p prover) polarityOn(e ast.Expr, key string) predicate.Polarity {
	recv, name, ok := propertyAccess(e)
	if !ok {
		return predicate.PolarityNone
	}

	pol := p.reg.PolarityOf(name)
	if pol == predicate.PolarityNone {
		return predicate.PolarityNone
	}

	if canon.Key(recv) != key {
		return predicate.PolarityNone
	}

	return pol
}

// indicatorOn matches a paired-indicator access: for key "snap.data" a
// condition reading `snap.hasData` counts, per the injected indicator map.
func (p prover) indicatorOn(e ast.Expr, key string) bool {
	recv, name, ok := propertyAccess(e)
	if !ok {
		return false
	}

	dep, ok := p.reg.DependentOf(name)
	if !ok {
		return false
	}

	recvKey := canon.Key(recv)
	if recvKey == "" {
		return false
	}

	return recvKey+"."+dep == key
}

// propertyAccess extracts the receiver and property name of a member access
// or a receiver call: both `x.isNotEmpty` and `x.isNotEmpty()` qualify.
func propertyAccess(e ast.Expr) (recv ast.Expr, name string, ok bool) {
	switch v := e.(type) {
	case *ast.Member:
		return v.Target, v.Name, true

	case *ast.Call:
		if v.Recv == nil {
			return nil, "", false
		}

		return v.Recv, v.Name, true

	default:
		return nil, "", false
	}
}

// isEarlyExit reports whether a statement unconditionally leaves the
// enclosing branch: a return, a throw, or a block ending in one.
func isEarlyExit(s ast.Stmt) bool {
	switch v := s.(type) {
	case *ast.Return, *ast.Throw:
		return true

	case *ast.Block:
		if len(v.Stmts) == 0 {
			return false
		}

		return isEarlyExit(v.Stmts[len(v.Stmts)-1])

	default:
		return false
	}
}
