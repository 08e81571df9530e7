package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/gorilla/css/scanner"
	"github.com/npillmayer/cascade/intern"
	"github.com/npillmayer/cascade/sheet"
)

// ParseSelector parses one selector chain, without comma groups, into the
// sheet's form. Supported are type and universal selectors, #id, .class,
// the four CSS 2 attribute forms, the pseudo-classes the engine can match
// and pseudo-elements in both colon spellings; compounds combine with the
// descendant, child '>', adjacent '+' and general sibling '~' combinators.
func ParseSelector(text string, table *intern.Table) (*sheet.Selector, error) {
	p := &selParser{sc: scanner.New(text), table: table}
	p.next()
	sel, err := p.chain()
	if err != nil {
		return nil, fmt.Errorf("%w: selector %q: %v", ErrSyntax, text, err)
	}
	return sel, nil
}

type selParser struct {
	sc    *scanner.Scanner
	table *intern.Table
	tok   *scanner.Token
}

func (p *selParser) next() {
	p.tok = p.sc.Next()
}

func (p *selParser) skipSpace() {
	for p.tok.Type == scanner.TokenS {
		p.next()
	}
}

func (p *selParser) isChar(c string) bool {
	return p.tok.Type == scanner.TokenChar && p.tok.Value == c
}

func (p *selParser) unexpected() error {
	switch p.tok.Type {
	case scanner.TokenError:
		return fmt.Errorf("scan error at column %d", p.tok.Column)
	case scanner.TokenEOF:
		return fmt.Errorf("unexpected end of selector")
	}
	return fmt.Errorf("unexpected %q at column %d", p.tok.Value, p.tok.Column)
}

// chain parses compounds left to right. Each compound links to the one on
// its left, so the returned selector is the rightmost, the subject of the
// chain.
func (p *selParser) chain() (*sheet.Selector, error) {
	p.skipSpace()
	sel, err := p.compound()
	if err != nil {
		return nil, err
	}
	for {
		comb, more, err := p.combinator()
		if err != nil {
			return nil, err
		}
		if !more {
			return sel, nil
		}
		right, err := p.compound()
		if err != nil {
			return nil, err
		}
		right.Comb = comb
		right.Prev = sel
		sel = right
	}
}

// combinator consumes the token run between two compounds and reports
// whether another compound follows. Whitespace is significant here: space
// between compounds is the descendant combinator.
func (p *selParser) combinator() (sheet.Combinator, bool, error) {
	space := false
	for p.tok.Type == scanner.TokenS {
		space = true
		p.next()
	}
	switch {
	case p.tok.Type == scanner.TokenEOF:
		return sheet.CombNone, false, nil
	case p.isChar(">"):
		p.next()
		p.skipSpace()
		return sheet.CombChild, true, nil
	case p.isChar("+"):
		p.next()
		p.skipSpace()
		return sheet.CombAdjacent, true, nil
	case p.isChar("~"):
		p.next()
		p.skipSpace()
		return sheet.CombSibling, true, nil
	case space:
		return sheet.CombDescendant, true, nil
	}
	return sheet.CombNone, false, p.unexpected()
}

// compound parses one compound selector: an optional leading type or
// universal selector followed by any number of id, class, attribute and
// pseudo details.
func (p *selParser) compound() (*sheet.Selector, error) {
	sel := &sheet.Selector{}
	for {
		switch {
		case p.tok.Type == scanner.TokenIdent:
			if len(sel.Details) > 0 {
				return nil, p.unexpected()
			}
			sel.Details = append(sel.Details, sheet.Detail{
				Kind: sheet.DetailElement, Name: p.table.Intern(p.tok.Value)})
			p.next()
		case p.isChar("*"):
			if len(sel.Details) > 0 {
				return nil, p.unexpected()
			}
			sel.Details = append(sel.Details, sheet.Detail{Kind: sheet.DetailUniversal})
			p.next()
		case p.tok.Type == scanner.TokenHash:
			sel.Details = append(sel.Details, sheet.Detail{
				Kind: sheet.DetailID,
				Name: p.table.Intern(strings.TrimPrefix(p.tok.Value, "#"))})
			p.next()
		case p.isChar("."):
			p.next()
			if p.tok.Type != scanner.TokenIdent {
				return nil, p.unexpected()
			}
			sel.Details = append(sel.Details, sheet.Detail{
				Kind: sheet.DetailClass, Name: p.table.Intern(p.tok.Value)})
			p.next()
		case p.isChar("["):
			d, err := p.attribute()
			if err != nil {
				return nil, err
			}
			sel.Details = append(sel.Details, d)
		case p.isChar(":"):
			d, err := p.pseudo()
			if err != nil {
				return nil, err
			}
			sel.Details = append(sel.Details, d)
		default:
			if len(sel.Details) == 0 {
				return nil, p.unexpected()
			}
			return sel, nil
		}
	}
}

func (p *selParser) attribute() (sheet.Detail, error) {
	p.next() // consume '['
	p.skipSpace()
	if p.tok.Type != scanner.TokenIdent {
		return sheet.Detail{}, p.unexpected()
	}
	d := sheet.Detail{Kind: sheet.DetailAttr, Name: p.table.Intern(p.tok.Value)}
	p.next()
	p.skipSpace()
	switch {
	case p.isChar("]"):
		p.next()
		return d, nil
	case p.isChar("="):
		d.Kind = sheet.DetailAttrEq
	case p.tok.Type == scanner.TokenIncludes:
		d.Kind = sheet.DetailAttrIncludes
	case p.tok.Type == scanner.TokenDashMatch:
		d.Kind = sheet.DetailAttrDashMatch
	default:
		return sheet.Detail{}, p.unexpected()
	}
	p.next()
	p.skipSpace()
	switch p.tok.Type {
	case scanner.TokenIdent:
		d.Value = p.table.Intern(p.tok.Value)
	case scanner.TokenString:
		d.Value = p.table.Intern(unquote(p.tok.Value))
	default:
		return sheet.Detail{}, p.unexpected()
	}
	p.next()
	p.skipSpace()
	if !p.isChar("]") {
		return sheet.Detail{}, p.unexpected()
	}
	p.next()
	return d, nil
}

// The CSS 2 pseudo-elements also come in the legacy single-colon spelling.
var pseudoElementNames = map[string]bool{
	"first-line":   true,
	"first-letter": true,
	"before":       true,
	"after":        true,
}

func (p *selParser) pseudo() (sheet.Detail, error) {
	p.next() // consume ':'
	if p.isChar(":") {
		p.next()
		if p.tok.Type != scanner.TokenIdent {
			return sheet.Detail{}, p.unexpected()
		}
		d := sheet.Detail{Kind: sheet.DetailPseudoElement, Name: p.table.Intern(p.tok.Value)}
		p.next()
		return d, nil
	}
	switch p.tok.Type {
	case scanner.TokenIdent:
		name := strings.ToLower(p.tok.Value)
		if pseudoElementNames[name] {
			d := sheet.Detail{Kind: sheet.DetailPseudoElement, Name: p.table.Intern(name)}
			p.next()
			return d, nil
		}
		pc, ok := sheet.PseudoClassByName(name)
		if !ok {
			return sheet.Detail{}, fmt.Errorf("unknown pseudo-class :%s", name)
		}
		d := sheet.Detail{Kind: sheet.DetailPseudoClass, Name: p.table.Intern(name), Pseudo: pc}
		p.next()
		return d, nil
	case scanner.TokenFunction:
		name := strings.ToLower(strings.TrimSuffix(p.tok.Value, "("))
		if name != "lang" {
			return sheet.Detail{}, fmt.Errorf("unknown pseudo-class :%s(…)", name)
		}
		p.next()
		p.skipSpace()
		if p.tok.Type != scanner.TokenIdent {
			return sheet.Detail{}, p.unexpected()
		}
		d := sheet.Detail{
			Kind:   sheet.DetailPseudoClass,
			Name:   p.table.Intern("lang"),
			Value:  p.table.Intern(p.tok.Value),
			Pseudo: sheet.PseudoLang,
		}
		p.next()
		p.skipSpace()
		if !p.isChar(")") {
			return sheet.Detail{}, p.unexpected()
		}
		p.next()
		return d, nil
	}
	return sheet.Detail{}, p.unexpected()
}
