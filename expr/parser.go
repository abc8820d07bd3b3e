// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package expr

import (
	"fmt"

	"github.com/dolthub/go-sqlopt/egraph"
	"github.com/dolthub/go-sqlopt/value"
)

// Parse reads the canonical S-expression syntax into a RecExpr. It is
// the inverse of RecExpr.String, and the only entry point the rest of the
// optimizer needs for turning a textual plan fragment into e-graph-ready
// nodes.
func Parse(s string) (RecExpr, error) {
	toks, err := tokenize(s)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	id, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("expr: unexpected trailing input after %q", s)
	}
	return p.out[:id+1], nil
}

type token struct {
	kind rune // '(' ')' or 'a' (atom)
	text string
}

func tokenize(s string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(' || c == ')':
			toks = append(toks, token{kind: rune(c)})
			i++
		case c == '\'':
			j := i + 1
			for j < len(s) && s[j] != '\'' {
				j++
			}
			if j >= len(s) {
				return nil, fmt.Errorf("expr: unterminated string literal in %q", s)
			}
			toks = append(toks, token{kind: 'a', text: s[i : j+1]})
			i = j + 1
		default:
			j := i
			for j < len(s) && s[j] != ' ' && s[j] != '\t' && s[j] != '\n' && s[j] != '\r' && s[j] != '(' && s[j] != ')' {
				j++
			}
			toks = append(toks, token{kind: 'a', text: s[i:j]})
			i = j
		}
	}
	return toks, nil
}

type parser struct {
	toks []token
	pos  int
	out  RecExpr
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) next() (token, error) {
	t, ok := p.peek()
	if !ok {
		return token{}, fmt.Errorf("expr: unexpected end of input")
	}
	p.pos++
	return t, nil
}

// push appends n to the output buffer and returns its Id.
func (p *parser) push(n egraph.Language) egraph.Id {
	p.out = append(p.out, n)
	return egraph.Id(len(p.out) - 1)
}

func (p *parser) parseExpr() (egraph.Id, error) {
	t, err := p.next()
	if err != nil {
		return 0, err
	}
	switch t.kind {
	case '(':
		id, err := p.parseForm()
		if err != nil {
			return 0, err
		}
		closing, err := p.next()
		if err != nil {
			return 0, err
		}
		if closing.kind != ')' {
			return 0, fmt.Errorf("expr: expected ')', got %q", closing.text)
		}
		return id, nil
	case 'a':
		return p.parseAtom(t.text)
	default:
		return 0, fmt.Errorf("expr: unexpected token %q", t.text)
	}
}

func (p *parser) parseAtom(text string) (egraph.Id, error) {
	if len(text) > 0 && text[0] == '#' {
		idx, err := value.ParseColumnIndex(text)
		if err != nil {
			return 0, err
		}
		return p.push(ColumnIndexRef{Idx: idx}), nil
	}
	if v, err := value.Parse(text); err == nil {
		return p.push(Constant{Val: v}), nil
	}
	if value.IsColumnName(text) {
		return p.push(ColumnRef{Name: value.Column(text)}), nil
	}
	return 0, fmt.Errorf("expr: invalid atom %q", text)
}

func (p *parser) parseForm() (egraph.Id, error) {
	head, err := p.next()
	if err != nil {
		return 0, err
	}
	if head.kind != 'a' {
		return 0, fmt.Errorf("expr: expected operator, got %q", head.text)
	}
	op := head.text

	switch op {
	case "list":
		items, err := p.parseExprsUntilClose()
		if err != nil {
			return 0, err
		}
		return p.push(List{Items: items}), nil
	case "`":
		x, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		return p.push(Nested{X: x}), nil
	case "-":
		args, err := p.parseExprsUntilClose()
		if err != nil {
			return 0, err
		}
		switch len(args) {
		case 1:
			return p.push(Neg{X: args[0]}), nil
		case 2:
			return p.push(Sub{binaryNode{args[0], args[1]}}), nil
		default:
			return 0, fmt.Errorf("expr: %q takes 1 or 2 operands, got %d", op, len(args))
		}
	case "not":
		x, err := p.parseOneArg(op)
		if err != nil {
			return 0, err
		}
		return p.push(Not{X: x}), nil
	case "isnull":
		x, err := p.parseOneArg(op)
		if err != nil {
			return 0, err
		}
		return p.push(IsNull{X: x}), nil
	case "+", "*", "/", "=", "<>", ">", "<", ">=", "<=", "and", "or", "xor":
		l, r, err := p.parseTwoArgs(op)
		if err != nil {
			return 0, err
		}
		return p.push(binaryByOp(op, l, r)), nil
	case "max":
		x, err := p.parseOneArg(op)
		if err != nil {
			return 0, err
		}
		return p.push(Max{X: x}), nil
	case "min":
		x, err := p.parseOneArg(op)
		if err != nil {
			return 0, err
		}
		return p.push(Min{X: x}), nil
	case "sum":
		x, err := p.parseOneArg(op)
		if err != nil {
			return 0, err
		}
		return p.push(Sum{X: x}), nil
	case "avg":
		x, err := p.parseOneArg(op)
		if err != nil {
			return 0, err
		}
		return p.push(Avg{X: x}), nil
	case "count":
		x, err := p.parseOneArg(op)
		if err != nil {
			return 0, err
		}
		return p.push(Count{X: x}), nil
	case "asc":
		x, err := p.parseOneArg(op)
		if err != nil {
			return 0, err
		}
		return p.push(Asc{Key: x}), nil
	case "desc":
		x, err := p.parseOneArg(op)
		if err != nil {
			return 0, err
		}
		return p.push(Desc{Key: x}), nil
	case "empty":
		x, err := p.parseOneArg(op)
		if err != nil {
			return 0, err
		}
		return p.push(Empty{Child: x}), nil
	case "scan":
		table, cols, err := p.parseTwoArgs(op)
		if err != nil {
			return 0, err
		}
		return p.push(Scan{Table: table, Columns: cols}), nil
	case "values":
		rows, err := p.parseOneArg(op)
		if err != nil {
			return 0, err
		}
		return p.push(Values{Rows: rows}), nil
	case "proj":
		exprs, child, err := p.parseTwoArgs(op)
		if err != nil {
			return 0, err
		}
		return p.push(Proj{Exprs: exprs, Child: child}), nil
	case "filter":
		cond, child, err := p.parseTwoArgs(op)
		if err != nil {
			return 0, err
		}
		return p.push(Filter{Cond: cond, Child: child}), nil
	case "order":
		keys, child, err := p.parseTwoArgs(op)
		if err != nil {
			return 0, err
		}
		return p.push(Order{Keys: keys, Child: child}), nil
	case "limit":
		args, err := p.parseExprsUntilClose()
		if err != nil {
			return 0, err
		}
		if len(args) != 3 {
			return 0, fmt.Errorf("expr: %q takes 3 operands, got %d", op, len(args))
		}
		return p.push(Limit{N: args[0], Offset: args[1], Child: args[2]}), nil
	case "topn":
		args, err := p.parseExprsUntilClose()
		if err != nil {
			return 0, err
		}
		if len(args) != 4 {
			return 0, fmt.Errorf("expr: %q takes 4 operands, got %d", op, len(args))
		}
		return p.push(TopN{N: args[0], Offset: args[1], Keys: args[2], Child: args[3]}), nil
	case "join":
		jt, err := p.parseJoinType()
		if err != nil {
			return 0, err
		}
		args, err := p.parseExprsUntilClose()
		if err != nil {
			return 0, err
		}
		if len(args) != 3 {
			return 0, fmt.Errorf("expr: %q takes (type cond left right), got %d operands", op, len(args))
		}
		return p.push(Join{Type: jt, Cond: args[0], Left: args[1], Right: args[2]}), nil
	case "hashjoin":
		jt, err := p.parseJoinType()
		if err != nil {
			return 0, err
		}
		args, err := p.parseExprsUntilClose()
		if err != nil {
			return 0, err
		}
		if len(args) != 4 {
			return 0, fmt.Errorf("expr: %q takes (type lkeys rkeys left right), got %d operands", op, len(args))
		}
		return p.push(HashJoin{Type: jt, LeftKeys: args[0], RightKeys: args[1], Left: args[2], Right: args[3]}), nil
	case "agg":
		args, err := p.parseExprsUntilClose()
		if err != nil {
			return 0, err
		}
		if len(args) != 3 {
			return 0, fmt.Errorf("expr: %q takes (aggs groupkeys child), got %d operands", op, len(args))
		}
		return p.push(Agg{Aggs: args[0], GroupKeys: args[1], Child: args[2]}), nil
	case "column-merge":
		a, b, err := p.parseTwoArgs(op)
		if err != nil {
			return 0, err
		}
		return p.push(ColumnMerge{A: a, B: b}), nil
	case "column-prune":
		filter, list, err := p.parseTwoArgs(op)
		if err != nil {
			return 0, err
		}
		return p.push(ColumnPrune{Filter: filter, List: list}), nil
	default:
		return 0, fmt.Errorf("expr: unknown operator %q", op)
	}
}

func binaryByOp(op string, l, r egraph.Id) egraph.Language {
	b := binaryNode{l, r}
	switch op {
	case "+":
		return Add{b}
	case "*":
		return Mul{b}
	case "/":
		return Div{b}
	case "=":
		return Eq{b}
	case "<>":
		return NotEq{b}
	case ">":
		return Gt{b}
	case "<":
		return Lt{b}
	case ">=":
		return GtEq{b}
	case "<=":
		return LtEq{b}
	case "and":
		return And{b}
	case "or":
		return Or{b}
	case "xor":
		return Xor{b}
	default:
		panic("expr: unreachable binaryByOp for " + op)
	}
}

func (p *parser) parseJoinType() (JoinType, error) {
	t, err := p.next()
	if err != nil {
		return 0, err
	}
	if t.kind != 'a' {
		return 0, fmt.Errorf("expr: expected join type, got %q", t.text)
	}
	jt, ok := ParseJoinType(t.text)
	if !ok {
		return 0, fmt.Errorf("expr: invalid join type %q", t.text)
	}
	return jt, nil
}

func (p *parser) parseOneArg(op string) (egraph.Id, error) {
	args, err := p.parseExprsUntilClose()
	if err != nil {
		return 0, err
	}
	if len(args) != 1 {
		return 0, fmt.Errorf("expr: %q takes 1 operand, got %d", op, len(args))
	}
	return args[0], nil
}

func (p *parser) parseTwoArgs(op string) (egraph.Id, egraph.Id, error) {
	args, err := p.parseExprsUntilClose()
	if err != nil {
		return 0, 0, err
	}
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("expr: %q takes 2 operands, got %d", op, len(args))
	}
	return args[0], args[1], nil
}

// parseExprsUntilClose parses expressions until the next token is the
// closing ')' of the enclosing form, without consuming that ')'.
func (p *parser) parseExprsUntilClose() ([]egraph.Id, error) {
	var ids []egraph.Id
	for {
		t, ok := p.peek()
		if !ok {
			return nil, fmt.Errorf("expr: unexpected end of input")
		}
		if t.kind == ')' {
			return ids, nil
		}
		id, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
}
