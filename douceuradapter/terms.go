package douceuradapter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gorilla/css/scanner"
	"github.com/npillmayer/cascade/style"
)

// termKind discriminates the components of a declaration value.
type termKind uint8

const (
	termKeyword termKind = iota
	termNumber
	termPercentage
	termDimension
	termHash     // #rgb or #rrggbb, without the hash
	termString   // quoted string, quotes stripped
	termURI      // url(...), wrapper and quotes stripped
	termFunction // name(args), name lowercased
	termComma
)

// term is one component of a declaration value. Keywords keep their
// original case and are compared caselessly; numbers, percentages and
// dimensions carry their fixed-point value; functions carry their argument
// terms.
type term struct {
	kind termKind
	text string
	num  style.Fixed
	unit style.Unit
	args []term
}

// keyword reports whether t is the given keyword, compared caselessly.
func (t term) keyword(kw string) bool {
	return t.kind == termKeyword && strings.EqualFold(t.text, kw)
}

func (t term) String() string {
	switch t.kind {
	case termNumber:
		return t.num.String()
	case termPercentage:
		return t.num.String() + "%"
	case termDimension:
		return t.num.String() + t.unit.String()
	case termHash:
		return "#" + t.text
	case termString:
		return strconv.Quote(t.text)
	case termURI:
		return "url(" + t.text + ")"
	case termFunction:
		return t.text + "(…)"
	case termComma:
		return ","
	}
	return t.text
}

func formatTerms(terms []term) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

func errValue(terms []term) error {
	return fmt.Errorf("%w: unsupported value '%s'", ErrSyntax, formatTerms(terms))
}

// parseTerms scans a declaration value into terms.
func parseTerms(s string) ([]term, error) {
	sc := scanner.New(s)
	terms, err := scanTerms(sc, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %v in %q", ErrSyntax, err, s)
	}
	return terms, nil
}

// scanTerms reads terms up to the end of input, or up to the closing
// parenthesis when scanning function arguments. A leading '-' or '+'
// becomes the sign of the following numeric token.
func scanTerms(sc *scanner.Scanner, inFunction bool) ([]term, error) {
	var terms []term
	signed, negate := false, false
	push := func(t term) {
		if signed {
			if negate {
				t.num = -t.num
			}
			signed = false
		}
		terms = append(terms, t)
	}
	for {
		tok := sc.Next()
		if signed {
			switch tok.Type {
			case scanner.TokenNumber, scanner.TokenPercentage, scanner.TokenDimension:
			default:
				return nil, fmt.Errorf("dangling sign")
			}
		}
		switch tok.Type {
		case scanner.TokenEOF:
			if inFunction {
				return nil, fmt.Errorf("unbalanced parenthesis")
			}
			return terms, nil
		case scanner.TokenError:
			return nil, fmt.Errorf("scan error at column %d", tok.Column)
		case scanner.TokenS, scanner.TokenComment:
			// skip
		case scanner.TokenIdent:
			push(term{kind: termKeyword, text: tok.Value})
		case scanner.TokenNumber:
			n, err := fixedNum(tok.Value)
			if err != nil {
				return nil, err
			}
			push(term{kind: termNumber, num: n})
		case scanner.TokenPercentage:
			n, err := fixedNum(strings.TrimSuffix(tok.Value, "%"))
			if err != nil {
				return nil, err
			}
			push(term{kind: termPercentage, num: n, unit: style.UnitPCT})
		case scanner.TokenDimension:
			t, err := dimensionTerm(tok.Value)
			if err != nil {
				return nil, err
			}
			push(t)
		case scanner.TokenHash:
			push(term{kind: termHash, text: strings.TrimPrefix(tok.Value, "#")})
		case scanner.TokenString:
			push(term{kind: termString, text: unquote(tok.Value)})
		case scanner.TokenURI:
			push(term{kind: termURI, text: unwrapURI(tok.Value)})
		case scanner.TokenFunction:
			name := strings.ToLower(strings.TrimSuffix(tok.Value, "("))
			args, err := scanTerms(sc, true)
			if err != nil {
				return nil, err
			}
			push(term{kind: termFunction, text: name, args: args})
		case scanner.TokenChar:
			switch tok.Value {
			case ")":
				if !inFunction {
					return nil, fmt.Errorf("unbalanced parenthesis")
				}
				return terms, nil
			case ",":
				push(term{kind: termComma})
			case "-":
				signed, negate = true, true
			case "+":
				signed, negate = true, false
			default:
				return nil, fmt.Errorf("unexpected %q", tok.Value)
			}
		default:
			return nil, fmt.Errorf("unexpected %q", tok.Value)
		}
	}
}

func fixedNum(s string) (style.Fixed, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", s)
	}
	return style.FromFloat(f), nil
}

// dimensionTerm splits a dimension token into number and unit suffix.
func dimensionTerm(s string) (term, error) {
	i := len(s)
	for i > 0 {
		c := s[i-1]
		if c >= '0' && c <= '9' || c == '.' {
			break
		}
		i--
	}
	u, ok := style.UnitByName(strings.ToLower(s[i:]))
	if !ok {
		return term{}, fmt.Errorf("unknown unit in %q", s)
	}
	n, err := fixedNum(s[:i])
	if err != nil {
		return term{}, err
	}
	return term{kind: termDimension, num: n, unit: u}, nil
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// unwrapURI strips the url(...) wrapper and optional quotes around the
// address.
func unwrapURI(s string) string {
	if i := strings.IndexByte(s, '('); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(s, ")")
	return unquote(strings.TrimSpace(s))
}

// splitComma splits a term list at top-level commas.
func splitComma(terms []term) [][]term {
	var groups [][]term
	start := 0
	for i, t := range terms {
		if t.kind == termComma {
			groups = append(groups, terms[start:i])
			start = i + 1
		}
	}
	return append(groups, terms[start:])
}

// nonComma filters separator commas out of function arguments.
func nonComma(terms []term) []term {
	var args []term
	for _, t := range terms {
		if t.kind != termComma {
			args = append(args, t)
		}
	}
	return args
}
