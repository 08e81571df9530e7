package cascade

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cascade/intern"
	"github.com/npillmayer/cascade/sheet"
)

// matchChain tests whether the selector chain ending at sel matches node n
// when selecting for the given pseudo-element (nil for the element itself).
// The compound's details must all hold on n, then the chain continues
// leftward: child and adjacent combinators step exactly once, descendant
// and sibling combinators try every ancestor or preceding sibling, which
// backtracks over all ways of anchoring the left part. Pseudo-element
// details are legal on the subject compound only, so the leftward calls
// carry no pseudo.
func (cx *Context[N]) matchChain(n N, sel *sheet.Selector, pseudo *intern.String) (bool, error) {
	ok, err := cx.matchCompound(n, sel.Details, pseudo)
	if err != nil || !ok {
		return false, err
	}
	if sel.Prev == nil {
		return true, nil
	}
	switch sel.Comb {
	case sheet.CombChild:
		p, ok, err := cx.adapter.ParentElement(n)
		if err != nil || !ok {
			return false, err
		}
		return cx.matchChain(p, sel.Prev, nil)
	case sheet.CombDescendant:
		p, ok, err := cx.adapter.ParentElement(n)
		for err == nil && ok {
			m, merr := cx.matchChain(p, sel.Prev, nil)
			if merr != nil || m {
				return m, merr
			}
			p, ok, err = cx.adapter.ParentElement(p)
		}
		return false, err
	case sheet.CombAdjacent:
		s, ok, err := cx.adapter.PrevSiblingElement(n)
		if err != nil || !ok {
			return false, err
		}
		return cx.matchChain(s, sel.Prev, nil)
	case sheet.CombSibling:
		s, ok, err := cx.adapter.PrevSiblingElement(n)
		for err == nil && ok {
			m, merr := cx.matchChain(s, sel.Prev, nil)
			if merr != nil || m {
				return m, merr
			}
			s, ok, err = cx.adapter.PrevSiblingElement(s)
		}
		return false, err
	}
	return false, fmt.Errorf("%w: combinator %d", ErrInvalidSelector, sel.Comb)
}

// matchCompound matches one compound selector. A compound applies to a
// pseudo-element selection iff it carries that pseudo-element's detail;
// conversely a compound with a pseudo-element detail never applies to the
// element itself.
func (cx *Context[N]) matchCompound(n N, details []sheet.Detail, pseudo *intern.String) (bool, error) {
	sawPseudo := false
	for _, d := range details {
		if d.Kind == sheet.DetailPseudoElement {
			if pseudo == nil || !d.Name.CaselessEq(pseudo) {
				return false, nil
			}
			sawPseudo = true
			continue
		}
		ok, err := cx.matchDetail(n, d)
		if err != nil || !ok {
			return false, err
		}
	}
	return pseudo == nil || sawPseudo, nil
}

func (cx *Context[N]) matchDetail(n N, d sheet.Detail) (bool, error) {
	switch d.Kind {
	case sheet.DetailUniversal:
		return true, nil

	case sheet.DetailElement:
		name, err := cx.adapter.ElementName(n)
		if err != nil {
			return false, err
		}
		return name.CaselessEq(d.Name), nil

	case sheet.DetailID:
		id, err := cx.adapter.ID(n)
		if err != nil {
			return false, err
		}
		return id != nil && id == d.Name, nil

	case sheet.DetailClass:
		classes, err := cx.adapter.Classes(n)
		if err != nil {
			return false, err
		}
		for _, c := range classes {
			if c == d.Name {
				return true, nil
			}
		}
		return false, nil

	case sheet.DetailAttr:
		_, present, err := cx.adapter.Attribute(n, d.Name)
		return present, err

	case sheet.DetailAttrEq:
		v, present, err := cx.adapter.Attribute(n, d.Name)
		if err != nil || !present {
			return false, err
		}
		return v == d.Value, nil

	case sheet.DetailAttrIncludes:
		v, present, err := cx.adapter.Attribute(n, d.Name)
		if err != nil || !present {
			return false, err
		}
		want := d.Value.String()
		for _, field := range strings.Fields(v.String()) {
			if field == want {
				return true, nil
			}
		}
		return false, nil

	case sheet.DetailAttrDashMatch:
		v, present, err := cx.adapter.Attribute(n, d.Name)
		if err != nil || !present {
			return false, err
		}
		if v == d.Value {
			return true, nil
		}
		return strings.HasPrefix(v.String(), d.Value.String()+"-"), nil

	case sheet.DetailPseudoClass:
		return cx.matchPseudoClass(n, d)
	}
	return false, fmt.Errorf("%w: unknown selector detail kind %d", ErrInvalidSelector, d.Kind)
}

func (cx *Context[N]) matchPseudoClass(n N, d sheet.Detail) (bool, error) {
	switch d.Pseudo {
	case sheet.PseudoFirstChild:
		_, ok, err := cx.adapter.PrevSiblingElement(n)
		return !ok, err
	case sheet.PseudoLink:
		return cx.adapter.IsLink(n)
	case sheet.PseudoVisited:
		return cx.adapter.IsVisited(n)
	case sheet.PseudoHover:
		return cx.adapter.IsHover(n)
	case sheet.PseudoActive:
		return cx.adapter.IsActive(n)
	case sheet.PseudoFocus:
		return cx.adapter.IsFocus(n)
	case sheet.PseudoLang:
		lang, err := cx.adapter.Lang(n)
		if err != nil || lang == nil || d.Value == nil {
			return false, err
		}
		return langMatches(lang.String(), d.Value.String()), nil
	}
	return false, fmt.Errorf("%w: unknown pseudo-class %d", ErrInvalidSelector, d.Pseudo)
}

// langMatches implements CSS language range matching: the range equals the
// language or prefixes it up to a subtag boundary, case-insensitively.
func langMatches(lang, want string) bool {
	if len(lang) < len(want) {
		return false
	}
	if !strings.EqualFold(lang[:len(want)], want) {
		return false
	}
	return len(lang) == len(want) || lang[len(want)] == '-'
}
