package style_test

import (
	"testing"

	"github.com/npillmayer/cascade/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
)

func TestPropertyNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.style")
	defer teardown()
	//
	for p := style.PropertyID(0); p < style.NProperties; p++ {
		name := p.String()
		if name == "" || name == "unknown-property" {
			t.Fatalf("property %d has no name", p)
		}
		q, ok := style.PropertyByName(name)
		if !ok || q != p {
			t.Errorf("name %q does not round-trip: got %v", name, q)
		}
	}
	if style.PropZIndex.String() != "z-index" {
		t.Errorf("expected z-index, got %q", style.PropZIndex.String())
	}
	if _, ok := style.PropertyByName("grid-template-columns"); ok {
		t.Errorf("unknown property name should not resolve")
	}
}

func TestPropertyInheritance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.style")
	defer teardown()
	//
	inherited := []style.PropertyID{
		style.PropColor, style.PropFontSize, style.PropLetterSpacing,
		style.PropVisibility, style.PropWidows, style.PropVolume,
	}
	for _, p := range inherited {
		if !p.Inherited() {
			t.Errorf("%s should inherit", p)
		}
	}
	notInherited := []style.PropertyID{
		style.PropWidth, style.PropDisplay, style.PropContent,
		style.PropMarginTop, style.PropPageBreakAfter, style.PropPauseBefore,
	}
	for _, p := range notInherited {
		if p.Inherited() {
			t.Errorf("%s should not inherit", p)
		}
	}
}

func TestPropertyBlocks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.style")
	defer teardown()
	//
	cases := []struct {
		p style.PropertyID
		b style.StyleBlock
	}{
		{style.PropColor, style.BlockCommon},
		{style.PropBorderTopWidth, style.BlockCommon},
		{style.PropLetterSpacing, style.BlockUncommon},
		{style.PropOutlineColor, style.BlockUncommon},
		{style.PropWidows, style.BlockPage},
		{style.PropPageBreakInside, style.BlockPage},
		{style.PropVolume, style.BlockAural},
		{style.PropSpeak, style.BlockAural},
	}
	for _, c := range cases {
		if c.p.Block() != c.b {
			t.Errorf("%s: expected block %d, got %d", c.p, c.b, c.p.Block())
		}
	}
}

func TestFixedArithmetic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.style")
	defer teardown()
	//
	a := style.F(3)
	b := style.FromFloat(1.5)
	if got := a.Mul(b); got != style.FromFloat(4.5) {
		t.Errorf("3 * 1.5: expected 4.5, got %s", got)
	}
	if got := a.Div(style.F(2)); got != b {
		t.Errorf("3 / 2: expected 1.5, got %s", got)
	}
	if got := style.FromFloat(2.25).Int(); got != 2 {
		t.Errorf("truncation of 2.25: expected 2, got %d", got)
	}
	if got := style.F(-3).Div(style.F(2)).Float64(); got != -1.5 {
		t.Errorf("-3 / 2: expected -1.5, got %f", got)
	}
}

func TestUnitNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.style")
	defer teardown()
	//
	u, ok := style.UnitByName("em")
	if !ok || u != style.UnitEM {
		t.Fatalf("expected em to resolve, got %v", u)
	}
	if style.UnitEM.IsAbsolute() {
		t.Errorf("em is not absolute")
	}
	if !style.UnitMM.IsAbsolute() {
		t.Errorf("mm is absolute")
	}
	l := style.Length{Value: style.FromFloat(1.5), Unit: style.UnitEM}
	if l.String() != "1.5em" {
		t.Errorf("unexpected length formatting: %q", l.String())
	}
}

func TestLengthToDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.style")
	defer teardown()
	//
	l := style.Length{Value: style.F(12), Unit: style.UnitPT}
	d, ok := l.DU()
	if !ok {
		t.Fatalf("12pt should convert")
	}
	if d != 12*dimen.PT {
		t.Errorf("expected %d, got %d", 12*dimen.PT, d)
	}
	rel := style.Length{Value: style.F(2), Unit: style.UnitEM}
	if _, ok := rel.DU(); ok {
		t.Errorf("relative length must not convert")
	}
}

func TestRGBAChannels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.style")
	defer teardown()
	//
	c := style.MakeRGB(0x11, 0x22, 0x33)
	if c.A() != 0xff || c.R() != 0x11 || c.G() != 0x22 || c.B() != 0x33 {
		t.Errorf("channel mismatch for %s", c)
	}
	if style.Transparent.A() != 0 {
		t.Errorf("transparent should have zero alpha")
	}
}

func TestLazyBlockAllocation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.style")
	defer teardown()
	//
	cs := style.NewComputedStyle()
	if cs.HasUncommonBlock() || cs.HasPageBlock() || cs.HasAuralBlock() {
		t.Fatalf("fresh style must not carry extension blocks")
	}
	// missing blocks read as initial values
	if k, _ := cs.LetterSpacing(); k != style.SpacingNormal {
		t.Errorf("expected letter-spacing normal, got %v", k)
	}
	if k, n := cs.Orphans(); k != style.CountSet || n != 2 {
		t.Errorf("expected orphans 2, got %v %d", k, n)
	}
	if k, _ := cs.Volume(); k != style.VolumeMedium {
		t.Errorf("expected volume medium, got %v", k)
	}
	if cs.HasUncommonBlock() || cs.HasPageBlock() || cs.HasAuralBlock() {
		t.Fatalf("getters must not allocate")
	}
	//
	cs.SetLetterSpacing(style.SpacingSet, style.Length{Value: style.F(2), Unit: style.UnitPX})
	if !cs.HasUncommonBlock() {
		t.Errorf("setter should allocate the uncommon block")
	}
	if cs.HasPageBlock() || cs.HasAuralBlock() {
		t.Errorf("unrelated blocks must stay unallocated")
	}
	k, l := cs.LetterSpacing()
	if k != style.SpacingSet || l.Value != style.F(2) || l.Unit != style.UnitPX {
		t.Errorf("letter-spacing did not stick: %v %s", k, l)
	}
}

func TestCommonAccessors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.style")
	defer teardown()
	//
	cs := style.NewComputedStyle()
	if cs.Display() != style.DisplayInherit {
		t.Fatalf("zero value must be the inherit placeholder")
	}
	cs.SetDisplay(style.DisplayBlock)
	cs.SetMargin(style.SideLeft, style.MarginSet, style.Length{Value: style.F(10), Unit: style.UnitPX})
	cs.SetColor(style.ColorSet, style.MakeRGB(0, 0, 0xff))
	//
	if cs.Display() != style.DisplayBlock {
		t.Errorf("display not set")
	}
	if k, _ := cs.Margin(style.SideTop); k != style.MarginInherit {
		t.Errorf("margin-top should still be the placeholder")
	}
	k, l := cs.Margin(style.SideLeft)
	if k != style.MarginSet || l.Value != style.F(10) {
		t.Errorf("margin-left did not stick: %v %s", k, l)
	}
	ck, c := cs.Color()
	if ck != style.ColorSet || c != style.MakeRGB(0, 0, 0xff) {
		t.Errorf("color did not stick: %v %s", ck, c)
	}
}
