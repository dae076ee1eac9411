package parse

import (
	"exprtree/pkg/token"
	"exprtree/pkg/tree"
)

// infixParser fuses infix-to-postfix conversion with tree building.
// Operators wait on ops until an operator of lower precedence, a ')' or
// the end of input forces them onto the operand stack.
type infixParser struct {
	operands operandStack
	ops      []token.Token
}

// InfixTokens builds a tree from infix tokens. Equal precedence reduces
// before pushing, so every operator groups left to right.
func InfixTokens(toks []token.Token) (*tree.TreeNode, error) {
	p := &infixParser{}
	for _, tok := range toks {
		var err error
		switch tok.Kind {
		case token.Operand:
			p.operands.push(tree.NewLeaf(tok.Val))
		case token.LParen:
			p.ops = append(p.ops, tok)
		case token.RParen:
			err = p.closeParen(tok)
		case token.Operator:
			err = p.operator(tok)
		default:
			err = unsupported(InfixNotation, tok)
		}
		if err != nil {
			return nil, err
		}
	}
	for len(p.ops) > 0 {
		top := p.ops[len(p.ops)-1]
		if top.Kind == token.LParen {
			return nil, malformed(InfixNotation, top.Pos, "unmatched '('")
		}
		if err := p.reduce(); err != nil {
			return nil, err
		}
	}
	return p.operands.root(InfixNotation, lastPos(toks))
}

func (p *infixParser) operator(tok token.Token) error {
	prec := Precedence(tok.Val)
	for len(p.ops) > 0 {
		top := p.ops[len(p.ops)-1]
		if top.Kind == token.LParen || Precedence(top.Val) < prec {
			break
		}
		if err := p.reduce(); err != nil {
			return err
		}
	}
	p.ops = append(p.ops, tok)
	return nil
}

func (p *infixParser) closeParen(tok token.Token) error {
	for {
		if len(p.ops) == 0 {
			return malformed(InfixNotation, tok.Pos, "unmatched ')'")
		}
		if p.ops[len(p.ops)-1].Kind == token.LParen {
			p.ops = p.ops[:len(p.ops)-1]
			return nil
		}
		if err := p.reduce(); err != nil {
			return err
		}
	}
}

// reduce pops one operator and combines the top two operands under it.
func (p *infixParser) reduce() error {
	op := p.ops[len(p.ops)-1]
	p.ops = p.ops[:len(p.ops)-1]
	right, left, ok := p.operands.pop2()
	if !ok {
		return underflow(InfixNotation, op)
	}
	p.operands.push(tree.NewNode(op.Val, left, right))
	return nil
}
