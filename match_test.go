package cascade_test

import (
	"testing"

	"github.com/npillmayer/cascade"
	"github.com/npillmayer/cascade/sheet"
	"github.com/npillmayer/cascade/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// matches runs a one-rule stylesheet against n and reports whether the
// rule's declaration took effect.
func matches(t *testing.T, a *domAdapter, sel *sheet.Selector, n *node) bool {
	t.Helper()
	s := sheet.New(sheet.OriginAuthor, sheet.MediaAll)
	addRule(t, s, colorCode(red, 0), sel)
	cx, err := cascade.NewContext[*node](a, a.table)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	if err := cx.AppendSheet(s); err != nil {
		t.Fatalf("AppendSheet: %v", err)
	}
	cs, err := cx.SelectStyle(n, sheet.MediaScreen)
	if err != nil {
		t.Fatalf("SelectStyle: %v", err)
	}
	k, _ := cs.Color()
	return k == style.ColorSet
}

func TestMatchCombinators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	// html > body > {h1, p#intro, div.wrap > p}
	a := newDOMAdapter()
	html := &node{name: "html", lang: "en-US"}
	body := html.child(&node{name: "body"})
	h1 := body.child(&node{name: "h1"})
	intro := (&node{name: "p", id: "intro"}).after(h1)
	wrap := (&node{name: "div", classes: []string{"wrap"}}).after(intro)
	inner := wrap.child(&node{name: "p"})

	it := a.table.Intern
	comp := func(prev *sheet.Selector, comb sheet.Combinator, dd ...sheet.Detail) *sheet.Selector {
		return &sheet.Selector{Details: dd, Comb: comb, Prev: prev}
	}
	elem := func(name string) sheet.Detail {
		return sheet.Detail{Kind: sheet.DetailElement, Name: it(name)}
	}

	cases := []struct {
		name string
		sel  *sheet.Selector
		n    *node
		want bool
	}{
		{"div p on inner", comp(comp(nil, 0, elem("div")), sheet.CombDescendant, elem("p")), inner, true},
		{"div p on intro", comp(comp(nil, 0, elem("div")), sheet.CombDescendant, elem("p")), intro, false},
		{"html p on inner", comp(comp(nil, 0, elem("html")), sheet.CombDescendant, elem("p")), inner, true},
		{"body > p on intro", comp(comp(nil, 0, elem("body")), sheet.CombChild, elem("p")), intro, true},
		{"body > p on inner", comp(comp(nil, 0, elem("body")), sheet.CombChild, elem("p")), inner, false},
		{"h1 + p on intro", comp(comp(nil, 0, elem("h1")), sheet.CombAdjacent, elem("p")), intro, true},
		{"h1 + div on wrap", comp(comp(nil, 0, elem("h1")), sheet.CombAdjacent, elem("div")), wrap, false},
		{"h1 ~ div on wrap", comp(comp(nil, 0, elem("h1")), sheet.CombSibling, elem("div")), wrap, true},
		{"p ~ h1 on h1", comp(comp(nil, 0, elem("p")), sheet.CombSibling, elem("h1")), h1, false},
		{"HTML case-insensitive", comp(nil, 0, elem("BODY")), body, true},
	}
	for _, c := range cases {
		if got := matches(t, a, c.sel, c.n); got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestMatchDetails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	a := newDOMAdapter()
	html := &node{name: "html", lang: "en-US"}
	body := html.child(&node{name: "body"})
	link := body.child(&node{name: "a", link: true, classes: []string{"nav", "ext"},
		attrs: map[string]string{"href": "https://x.test", "rel": "nofollow noopener", "hreflang": "en-GB"}})
	plain := (&node{name: "span"}).after(link)

	it := a.table.Intern
	single := func(d sheet.Detail) *sheet.Selector {
		return &sheet.Selector{Details: []sheet.Detail{d}}
	}

	cases := []struct {
		name string
		sel  *sheet.Selector
		n    *node
		want bool
	}{
		{"universal", single(sheet.Detail{Kind: sheet.DetailUniversal}), plain, true},
		{"class hit", single(sheet.Detail{Kind: sheet.DetailClass, Name: it("ext")}), link, true},
		{"class miss", single(sheet.Detail{Kind: sheet.DetailClass, Name: it("nav")}), plain, false},
		{"[href]", single(sheet.Detail{Kind: sheet.DetailAttr, Name: it("href")}), link, true},
		{"[href] miss", single(sheet.Detail{Kind: sheet.DetailAttr, Name: it("href")}), plain, false},
		{"[hreflang=en-GB]", single(sheet.Detail{Kind: sheet.DetailAttrEq, Name: it("hreflang"), Value: it("en-GB")}), link, true},
		{"[hreflang=en]", single(sheet.Detail{Kind: sheet.DetailAttrEq, Name: it("hreflang"), Value: it("en")}), link, false},
		{"[rel~=noopener]", single(sheet.Detail{Kind: sheet.DetailAttrIncludes, Name: it("rel"), Value: it("noopener")}), link, true},
		{"[rel~=noop]", single(sheet.Detail{Kind: sheet.DetailAttrIncludes, Name: it("rel"), Value: it("noop")}), link, false},
		{"[hreflang|=en]", single(sheet.Detail{Kind: sheet.DetailAttrDashMatch, Name: it("hreflang"), Value: it("en")}), link, true},
		{"[hreflang|=e]", single(sheet.Detail{Kind: sheet.DetailAttrDashMatch, Name: it("hreflang"), Value: it("e")}), link, false},
		{":link", single(sheet.Detail{Kind: sheet.DetailPseudoClass, Name: it("link"), Pseudo: sheet.PseudoLink}), link, true},
		{":link miss", single(sheet.Detail{Kind: sheet.DetailPseudoClass, Name: it("link"), Pseudo: sheet.PseudoLink}), plain, false},
		{":first-child hit", single(sheet.Detail{Kind: sheet.DetailPseudoClass, Name: it("first-child"), Pseudo: sheet.PseudoFirstChild}), link, true},
		{":lang(en)", single(sheet.Detail{Kind: sheet.DetailPseudoClass, Name: it("lang"), Pseudo: sheet.PseudoLang, Value: it("en")}), plain, true},
		{":lang(en-US)", single(sheet.Detail{Kind: sheet.DetailPseudoClass, Name: it("lang"), Pseudo: sheet.PseudoLang, Value: it("en-us")}), plain, true},
		{":lang(de)", single(sheet.Detail{Kind: sheet.DetailPseudoClass, Name: it("lang"), Pseudo: sheet.PseudoLang, Value: it("de")}), plain, false},
		{"::first-line", single(sheet.Detail{Kind: sheet.DetailPseudoElement, Name: it("first-line")}), plain, false},
	}
	for _, c := range cases {
		if got := matches(t, a, c.sel, c.n); got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}
