package intern

import (
	"testing"
)

func TestInternIdentity(t *testing.T) {
	tab := NewTable()
	a := tab.Intern("h1")
	b := tab.Intern("h1")
	if a != b {
		t.Errorf("expected identical handles for equal text, have %p and %p", a, b)
	}
	c := tab.Intern("h2")
	if a == c {
		t.Error("expected distinct handles for distinct text")
	}
}

func TestInternFolding(t *testing.T) {
	tab := NewTable()
	div := tab.Intern("DIV")
	low := tab.Intern("div")
	if div == low {
		t.Error("expected case-distinct handles to differ")
	}
	if div.Folded() != low {
		t.Errorf("expected folded twin of DIV to be div, is %q", div.Folded().String())
	}
	if low.Folded() != low {
		t.Error("expected lowercase handle to be its own twin")
	}
	if !div.CaselessEq(low) {
		t.Error("expected DIV to equal div caselessly")
	}
	if div.CaselessEq(tab.Intern("span")) {
		t.Error("expected DIV not to equal span caselessly")
	}
}

func TestInternNonASCII(t *testing.T) {
	tab := NewTable()
	umlaut := tab.Intern("Größe")
	// ASCII folding only touches A–Z; ö and ß stay as they are.
	if umlaut.Folded().String() != "größe" {
		t.Errorf("expected ASCII-only folding, have %q", umlaut.Folded().String())
	}
}

func TestInternSize(t *testing.T) {
	tab := NewTable()
	tab.Intern("a")
	tab.Intern("b")
	tab.Intern("a")
	if tab.Size() != 2 {
		t.Errorf("expected pool size 2, is %d", tab.Size())
	}
	tab.Intern("B") // interns "B" and its twin "b" (already present)
	if tab.Size() != 3 {
		t.Errorf("expected pool size 3, is %d", tab.Size())
	}
}
