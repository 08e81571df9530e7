package cascade

import (
	"fmt"

	"github.com/npillmayer/cascade/intern"
	"github.com/npillmayer/cascade/sheet"
	"github.com/npillmayer/cascade/style"
)

// SelectStyle determines the computed style for node n under the given
// media. Declarations are gathered from presentational hints, from every
// enabled stylesheet of the context whose media overlaps, and from the
// node's inline style, then cascaded by origin, importance, specificity
// and source order. Properties no declaration won are defaulted. For the
// root element (a node without parent element) the returned style is
// already composed, i.e. inherited properties carry their initial values
// and lengths are absolute.
func (cx *Context[N]) SelectStyle(n N, media sheet.Media) (*style.ComputedStyle, error) {
	if media == 0 {
		media = sheet.MediaAll
	}
	sel := newSelection()

	hints, err := cx.adapter.PresentationalHints(n)
	if err != nil && err != ErrNotSet {
		return nil, err
	}
	if err == nil && !hints.Empty() {
		if err := sel.cascadeCode(hints, sheet.OriginAuthor, 0); err != nil {
			return nil, err
		}
	}

	for _, s := range cx.sheets {
		if s.Disabled() || s.Media()&media == 0 {
			continue
		}
		if err := cx.matchSheet(sel, n, s, media, nil); err != nil {
			return nil, err
		}
	}

	inline, err := cx.adapter.InlineStyle(n)
	if err != nil && err != ErrNotSet {
		return nil, err
	}
	if err == nil && !inline.Empty() {
		if err := sel.cascadeCode(inline, sheet.OriginAuthor, sheet.SpecInline); err != nil {
			return nil, err
		}
	}

	root := false
	if _, ok, err := cx.adapter.ParentElement(n); err != nil {
		return nil, err
	} else if !ok {
		root = true
		if err := cx.applyUADefaults(sel); err != nil {
			return nil, err
		}
	}

	sel.applyDefaults()

	if root {
		return cx.Compose(nil, sel.result)
	}
	return sel.result, nil
}

// SelectPseudoStyle determines the style for a pseudo-element of node n,
// named without colons ("before", "first-line", …). Only stylesheet rules
// whose subject compound carries that pseudo-element apply; presentational
// hints, inline styles and user agent defaults belong to the element
// itself. The result is never composed: callers compose it against the
// originating element's composed style.
func (cx *Context[N]) SelectPseudoStyle(n N, pseudo *intern.String, media sheet.Media) (*style.ComputedStyle, error) {
	if pseudo == nil {
		return nil, ErrBadParameter
	}
	if media == 0 {
		media = sheet.MediaAll
	}
	sel := newSelection()
	for _, s := range cx.sheets {
		if s.Disabled() || s.Media()&media == 0 {
			continue
		}
		if err := cx.matchSheet(sel, n, s, media, pseudo); err != nil {
			return nil, err
		}
	}
	sel.applyDefaults()
	return sel.result, nil
}

// applyUADefaults fills inherited properties the cascade left unset on the
// root element from the adapter's user agent defaults. Elsewhere in the
// tree such properties inherit, so the defaults seed the whole document.
func (cx *Context[N]) applyUADefaults(sel *selection) error {
	for p := style.PropertyID(0); p < style.NProperties; p++ {
		if sel.props[p].set || !p.Inherited() {
			continue
		}
		code, err := cx.adapter.UADefault(p)
		if err == ErrNotSet {
			continue
		}
		if err != nil {
			return err
		}
		if code.Empty() {
			continue
		}
		if err := sel.cascadeCode(code, sheet.OriginUA, 0); err != nil {
			return err
		}
	}
	return nil
}

// matchSheet cascades all rules of s matching node n, in ascending order
// of (specificity, rule sequence). The candidate chains come pre-sorted
// from the sheet's hash buckets, so a selection-sort style merge across
// the bucket heads yields the global order without re-sorting.
func (cx *Context[N]) matchSheet(sel *selection, n N, s *sheet.Stylesheet, media sheet.Media, pseudo *intern.String) error {
	elem, err := cx.adapter.ElementName(n)
	if err != nil {
		return err
	}
	id, err := cx.adapter.ID(n)
	if err != nil {
		return err
	}
	classes, err := cx.adapter.Classes(n)
	if err != nil {
		return err
	}
	chains := s.Chains(elem, id, classes)
	heads := make([]int, len(chains))
	for {
		best := -1
		for i, chain := range chains {
			if heads[i] >= len(chain) {
				continue
			}
			if best < 0 || chainBefore(chain[heads[i]], chains[best][heads[best]]) {
				best = i
			}
		}
		if best < 0 {
			return nil
		}
		c := chains[best][heads[best]]
		heads[best]++
		if c.Rule.Media&media == 0 {
			continue
		}
		ok, err := cx.matchChain(n, c, pseudo)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		tracer().Debugf("selector %v matches, specificity %v", c, c.Spec)
		if err := sel.cascadeCode(c.Rule.Code, s.Origin(), c.Spec); err != nil {
			return fmt.Errorf("rule %v: %w", c, err)
		}
	}
}

func chainBefore(a, b *sheet.Selector) bool {
	if a.Spec != b.Spec {
		return a.Spec < b.Spec
	}
	return a.Rule.Seq() < b.Rule.Seq()
}
