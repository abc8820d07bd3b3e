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

package pattern

import (
	"fmt"
	"strings"

	"github.com/dolthub/go-sqlopt/expr"
	"github.com/dolthub/go-sqlopt/value"
)

// Parse reads a pattern in the same S-expression syntax as expr.Parse, with
// the addition of "?name" tokens for pattern variables, used to write both
// sides of a Rewrite the way egg's rewrite! macro parses its two strings.
func Parse(s string) (Node, error) {
	toks := patternTokenize(s)
	p := &patParser{toks: toks}
	n, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("pattern: unexpected trailing input in %q", s)
	}
	return n, nil
}

// MustParse is Parse but panics on error, for use in package-level rule
// tables where the pattern text is a compile-time constant.
func MustParse(s string) Node {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

type patToken struct {
	kind rune
	text string
}

func patternTokenize(s string) []patToken {
	var toks []patToken
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(' || c == ')':
			toks = append(toks, patToken{kind: rune(c)})
			i++
		case c == '\'':
			j := i + 1
			for j < len(s) && s[j] != '\'' {
				j++
			}
			toks = append(toks, patToken{kind: 'a', text: s[i : j+1]})
			i = j + 1
		default:
			j := i
			for j < len(s) && !strings.ContainsRune(" \t\n\r()", rune(s[j])) {
				j++
			}
			toks = append(toks, patToken{kind: 'a', text: s[i:j]})
			i = j
		}
	}
	return toks
}

type patParser struct {
	toks []patToken
	pos  int
}

func (p *patParser) peek() (patToken, bool) {
	if p.pos >= len(p.toks) {
		return patToken{}, false
	}
	return p.toks[p.pos], true
}

func (p *patParser) next() (patToken, error) {
	t, ok := p.peek()
	if !ok {
		return patToken{}, fmt.Errorf("pattern: unexpected end of input")
	}
	p.pos++
	return t, nil
}

func (p *patParser) parseNode() (Node, error) {
	t, err := p.next()
	if err != nil {
		return nil, err
	}
	switch t.kind {
	case '(':
		n, err := p.parseForm()
		if err != nil {
			return nil, err
		}
		closing, err := p.next()
		if err != nil {
			return nil, err
		}
		if closing.kind != ')' {
			return nil, fmt.Errorf("pattern: expected ')', got %q", closing.text)
		}
		return n, nil
	case 'a':
		return p.parseAtom(t.text)
	default:
		return nil, fmt.Errorf("pattern: unexpected token %q", t.text)
	}
}

func (p *patParser) parseAtom(text string) (Node, error) {
	if strings.HasPrefix(text, "?") {
		return VarNode{Name: Var(text)}, nil
	}
	if strings.HasPrefix(text, "#") {
		idx, err := value.ParseColumnIndex(text)
		if err != nil {
			return nil, err
		}
		return LiteralNode{Node: expr.ColumnIndexRef{Idx: idx}}, nil
	}
	if v, err := value.Parse(text); err == nil {
		return LiteralNode{Node: expr.Constant{Val: v}}, nil
	}
	if value.IsColumnName(text) {
		return LiteralNode{Node: expr.ColumnRef{Name: value.Column(text)}}, nil
	}
	return nil, fmt.Errorf("pattern: invalid atom %q", text)
}

func (p *patParser) parseRest() ([]Node, error) {
	var nodes []Node
	for {
		t, ok := p.peek()
		if !ok {
			return nil, fmt.Errorf("pattern: unexpected end of input")
		}
		if t.kind == ')' {
			return nodes, nil
		}
		n, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
}

func (p *patParser) parseForm() (Node, error) {
	head, err := p.next()
	if err != nil {
		return nil, err
	}
	if head.kind != 'a' {
		return nil, fmt.Errorf("pattern: expected operator, got %q", head.text)
	}
	op := head.text

	if op == "join" || op == "hashjoin" {
		jt, err := p.parseJoinTypeSpec()
		if err != nil {
			return nil, err
		}
		rest, err := p.parseRest()
		if err != nil {
			return nil, err
		}
		wantArity := 3
		if op == "hashjoin" {
			wantArity = 4
		}
		validateArity(op, len(rest), wantArity)
		return OpNode{Op: op, Children: rest, JoinType: jt}, nil
	}

	rest, err := p.parseRest()
	if err != nil {
		return nil, err
	}
	return OpNode{Op: op, Children: rest}, nil
}

func (p *patParser) parseJoinTypeSpec() (*JoinTypeSpec, error) {
	t, err := p.next()
	if err != nil {
		return nil, err
	}
	if t.kind != 'a' {
		return nil, fmt.Errorf("pattern: expected join type, got %q", t.text)
	}
	if strings.HasPrefix(t.text, "?") {
		return varJoinType(Var(t.text)), nil
	}
	jt, ok := expr.ParseJoinType(t.text)
	if !ok {
		return nil, fmt.Errorf("pattern: invalid join type %q", t.text)
	}
	return litJoinType(jt), nil
}
