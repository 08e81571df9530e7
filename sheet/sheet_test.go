package sheet_test

import (
	"testing"

	"github.com/npillmayer/cascade/intern"
	"github.com/npillmayer/cascade/sheet"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func compound(tbl *intern.Table, elem string, details ...sheet.Detail) *sheet.Selector {
	sel := &sheet.Selector{}
	if elem != "" {
		sel.Details = append(sel.Details, sheet.Detail{Kind: sheet.DetailElement, Name: tbl.Intern(elem)})
	}
	sel.Details = append(sel.Details, details...)
	return sel
}

func TestChainSpecificity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.sheet")
	defer teardown()
	//
	tbl := intern.NewTable()
	// div.note p
	leftmost := compound(tbl, "div", sheet.Detail{Kind: sheet.DetailClass, Name: tbl.Intern("note")})
	subject := compound(tbl, "p")
	subject.Comb, subject.Prev = sheet.CombDescendant, leftmost
	spec := sheet.ChainSpecificity(subject)
	if spec != 2*sheet.SpecElement+sheet.SpecClass {
		t.Errorf("div.note p: expected %s, got %s", 2*sheet.SpecElement+sheet.SpecClass, spec)
	}
	// #nav beats any class stack
	idSel := compound(tbl, "", sheet.Detail{Kind: sheet.DetailID, Name: tbl.Intern("nav")})
	if sheet.ChainSpecificity(idSel) <= spec {
		t.Errorf("#nav should outweigh div.note p")
	}
	// the universal selector weighs nothing
	univ := &sheet.Selector{Details: []sheet.Detail{{Kind: sheet.DetailUniversal}}}
	if sheet.ChainSpecificity(univ) != 0 {
		t.Errorf("* should have zero specificity")
	}
	// pseudo-class weighs like a class
	pseudo := compound(tbl, "a", sheet.Detail{
		Kind: sheet.DetailPseudoClass, Name: tbl.Intern("visited"), Pseudo: sheet.PseudoVisited,
	})
	if sheet.ChainSpecificity(pseudo) != sheet.SpecElement+sheet.SpecClass {
		t.Errorf("a:visited: got %s", sheet.ChainSpecificity(pseudo))
	}
}

func TestSelectorString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.sheet")
	defer teardown()
	//
	tbl := intern.NewTable()
	left := compound(tbl, "ul", sheet.Detail{Kind: sheet.DetailClass, Name: tbl.Intern("menu")})
	right := compound(tbl, "li", sheet.Detail{
		Kind: sheet.DetailPseudoClass, Name: tbl.Intern("first-child"), Pseudo: sheet.PseudoFirstChild,
	})
	right.Comb, right.Prev = sheet.CombChild, left
	if got := right.String(); got != "ul.menu > li:first-child" {
		t.Errorf("unexpected selector text: %q", got)
	}
}

func TestIndexBuckets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.sheet")
	defer teardown()
	//
	tbl := intern.NewTable()
	s := sheet.New(sheet.OriginAuthor, sheet.MediaAll)
	// DIV.note.warn#main goes into the id bucket
	idSel := compound(tbl, "DIV",
		sheet.Detail{Kind: sheet.DetailClass, Name: tbl.Intern("note")},
		sheet.Detail{Kind: sheet.DetailClass, Name: tbl.Intern("warn")},
		sheet.Detail{Kind: sheet.DetailID, Name: tbl.Intern("main")})
	// .note.warn goes into the bucket of its first class
	classSel := compound(tbl, "",
		sheet.Detail{Kind: sheet.DetailClass, Name: tbl.Intern("note")},
		sheet.Detail{Kind: sheet.DetailClass, Name: tbl.Intern("warn")})
	// DIV alone is indexed under its folded element name
	elemSel := compound(tbl, "DIV")
	// *[lang] is universal
	univSel := &sheet.Selector{Details: []sheet.Detail{
		{Kind: sheet.DetailUniversal},
		{Kind: sheet.DetailAttr, Name: tbl.Intern("lang")},
	}}
	for _, sel := range []*sheet.Selector{idSel, classSel, elemSel, univSel} {
		if err := s.AddRule(&sheet.Rule{Selectors: []*sheet.Selector{sel}}); err != nil {
			t.Fatal(err)
		}
	}
	s.Freeze()
	//
	// a <div class="note warn" id="main"> sees all four chains
	chains := s.Chains(tbl.Intern("div"), tbl.Intern("main"),
		[]*intern.String{tbl.Intern("note"), tbl.Intern("warn")})
	if len(chains) != 4 {
		t.Fatalf("expected 4 chains, got %d", len(chains))
	}
	// element name lookup is caseless, class lookup is exact
	chains = s.Chains(tbl.Intern("Div"), nil, []*intern.String{tbl.Intern("NOTE")})
	if len(chains) != 2 { // element bucket + universal
		t.Errorf("expected element and universal chains, got %d", len(chains))
	}
	// unrelated element still sees the universal chain
	chains = s.Chains(tbl.Intern("span"), nil, nil)
	if len(chains) != 1 {
		t.Errorf("expected only the universal chain, got %d", len(chains))
	}
}

func TestChainsSorted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.sheet")
	defer teardown()
	//
	tbl := intern.NewTable()
	s := sheet.New(sheet.OriginAuthor, sheet.MediaAll)
	// three rules on the same element bucket, specificities 1, 0+2 classes, 1+1 class
	heavy := compound(tbl, "p",
		sheet.Detail{Kind: sheet.DetailClass, Name: tbl.Intern("a")})
	plain := compound(tbl, "p")
	plain2 := compound(tbl, "p")
	for _, sel := range []*sheet.Selector{heavy, plain, plain2} {
		if err := s.AddRule(&sheet.Rule{Selectors: []*sheet.Selector{sel}}); err != nil {
			t.Fatal(err)
		}
	}
	chains := s.Chains(tbl.Intern("p"), nil, nil)
	if len(chains) != 1 {
		t.Fatalf("expected one chain, got %d", len(chains))
	}
	ch := chains[0]
	if len(ch) != 3 {
		t.Fatalf("expected 3 selectors in the chain, got %d", len(ch))
	}
	// ascending specificity, ties in rule order
	if ch[0] != plain || ch[1] != plain2 || ch[2] != heavy {
		t.Errorf("chain not sorted: %v %v %v", ch[0], ch[1], ch[2])
	}
	if ch[0].Rule.Seq() != 1 || ch[1].Rule.Seq() != 2 {
		t.Errorf("tie not broken by rule order: %d %d", ch[0].Rule.Seq(), ch[1].Rule.Seq())
	}
}

func TestAddRuleRejectsEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.sheet")
	defer teardown()
	//
	s := sheet.New(sheet.OriginUser, sheet.MediaAll)
	if err := s.AddRule(&sheet.Rule{}); err != sheet.ErrNoSelector {
		t.Errorf("expected ErrNoSelector, got %v", err)
	}
	if err := s.AddRule(&sheet.Rule{Selectors: []*sheet.Selector{{}}}); err != sheet.ErrNoSelector {
		t.Errorf("expected ErrNoSelector for empty compound, got %v", err)
	}
}

func TestMediaNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.sheet")
	defer teardown()
	//
	m, ok := sheet.MediaByName("Screen")
	if !ok || m != sheet.MediaScreen {
		t.Fatalf("screen should resolve, got %v", m)
	}
	if _, ok := sheet.MediaByName("3d-glasses"); ok {
		t.Errorf("unknown medium must not resolve")
	}
	if sheet.MediaAll&sheet.MediaPrint == 0 {
		t.Errorf("all must include print")
	}
	if got := (sheet.MediaScreen | sheet.MediaPrint).String(); got != "print, screen" {
		t.Errorf("unexpected media formatting: %q", got)
	}
}
