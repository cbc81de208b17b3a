package ast

// Children returns the direct children of n in document order. Nil slots
// (absent else-branches, optional clauses) are omitted. Node kinds outside
// the modeled set have no children.
func Children(n Node) []Node {
	switch v := n.(type) {
	case *Unit:
		out := make([]Node, 0, len(v.Stmts))
		for _, s := range v.Stmts {
			out = append(out, s)
		}
		return out

	case *Ident, *Basic:
		return nil

	case *Member:
		return []Node{v.Target}

	case *Index:
		return []Node{v.Target, v.Index}

	case *Logical:
		return []Node{v.Left, v.Right}

	case *Compare:
		return []Node{v.Left, v.Right}

	case *Not:
		return []Node{v.Operand}

	case *Cond:
		return []Node{v.Cond, v.Then, v.Else}

	case *Assign:
		return []Node{v.Target, v.Value}

	case *Call:
		out := make([]Node, 0, len(v.Args)+1)
		if v.Recv != nil {
			out = append(out, v.Recv)
		}
		for _, a := range v.Args {
			out = append(out, a)
		}
		return out

	case *ForcedUnwrap:
		return []Node{v.Operand}

	case *ListLit:
		out := make([]Node, 0, len(v.Elems))
		for _, e := range v.Elems {
			out = append(out, e)
		}
		return out

	case *IfElement:
		out := []Node{v.Cond, v.Then}
		if v.Else != nil {
			out = append(out, v.Else)
		}
		return out

	case *Lambda:
		if v.Expr != nil {
			return []Node{v.Expr}
		}
		if v.Body != nil {
			return []Node{v.Body}
		}
		return nil

	case *Block:
		out := make([]Node, 0, len(v.Stmts))
		for _, s := range v.Stmts {
			out = append(out, s)
		}
		return out

	case *If:
		out := []Node{v.Cond, v.Then}
		if v.Else != nil {
			out = append(out, v.Else)
		}
		return out

	case *While:
		return []Node{v.Cond, v.Body}

	case *DoWhile:
		return []Node{v.Body, v.Cond}

	case *For:
		out := make([]Node, 0, 4)
		if v.Init != nil {
			out = append(out, v.Init)
		}
		if v.Cond != nil {
			out = append(out, v.Cond)
		}
		if v.Post != nil {
			out = append(out, v.Post)
		}
		out = append(out, v.Body)
		return out

	case *Return:
		if v.Value != nil {
			return []Node{v.Value}
		}
		return nil

	case *Throw:
		return []Node{v.Value}

	case *ExprStmt:
		return []Node{v.X}

	default:
		return nil
	}
}

// Inspect walks the tree rooted at n in preorder document order, calling fn
// for every node. When fn returns false the node's subtree is skipped.
func Inspect(n Node, fn func(Node) bool) {
	if n == nil {
		return
	}

	if !fn(n) {
		return
	}

	for _, c := range Children(n) {
		Inspect(c, fn)
	}
}
