package douceuradapter_test

import (
	"testing"

	"github.com/npillmayer/cascade/bytecode"
	"github.com/npillmayer/cascade/douceuradapter"
	"github.com/npillmayer/cascade/intern"
	"github.com/npillmayer/cascade/sheet"
	"github.com/npillmayer/cascade/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

// compileBlock compiles declaration text into a code block.
func compileBlock(t *testing.T, decls string) (bytecode.Code, *intern.Table) {
	t.Helper()
	tbl := intern.NewTable()
	code, err := douceuradapter.CompileDeclarations(decls, tbl)
	require.NoError(t, err)
	return code, tbl
}

// decodeOps walks a code block and collects its op words, checking that
// every operand decodes.
func decodeOps(t *testing.T, code bytecode.Code) []bytecode.Op {
	t.Helper()
	var ops []bytecode.Op
	cur := code.Cursor()
	for !cur.Done() {
		op, err := cur.NextOp()
		require.NoError(t, err)
		ops = append(ops, op)
		if !op.Inherit() {
			require.NoError(t, bytecode.Skip(cur, op))
		}
	}
	return ops
}

func TestCompileSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.douceur")
	defer teardown()
	//
	tbl := intern.NewTable()
	s, err := douceuradapter.Compile(`
		h1, h2 { color: #00f; }
		p.intro { font-size: 120%; text-align: justify }
	`, sheet.OriginUser, sheet.MediaScreen|sheet.MediaPrint, tbl)
	require.NoError(t, err)
	if s.Origin() != sheet.OriginUser {
		t.Errorf("sheet origin is %v", s.Origin())
	}
	if s.Media() != sheet.MediaScreen|sheet.MediaPrint {
		t.Errorf("sheet media is %v", s.Media())
	}
	rules := s.Rules()
	require.Len(t, rules, 2)
	if len(rules[0].Selectors) != 2 {
		t.Fatalf("rule 0 has %d selectors", len(rules[0].Selectors))
	}
	if got := rules[0].Selectors[1].String(); got != "h2" {
		t.Errorf("second selector is %q", got)
	}
	if rules[0].Media != sheet.MediaAll {
		t.Errorf("rule 0 media is %v", rules[0].Media)
	}
	if rules[1].Selectors[0].Spec != sheet.SpecElement+sheet.SpecClass {
		t.Errorf("p.intro specificity is %v", rules[1].Selectors[0].Spec)
	}
	ops := decodeOps(t, rules[1].Code)
	require.Len(t, ops, 2)
	if ops[0].Property != style.PropFontSize || ops[0].Value != uint32(style.FontSizeSet) {
		t.Errorf("first op is %v %d", ops[0].Property, ops[0].Value)
	}
	if ops[1].Property != style.PropTextAlign || ops[1].Value != uint32(style.TextAlignJustify) {
		t.Errorf("second op is %v %d", ops[1].Property, ops[1].Value)
	}
}

func TestCompileMediaRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.douceur")
	defer teardown()
	//
	tbl := intern.NewTable()
	s, err := douceuradapter.Compile(`
		@media print { h1 { page-break-before: always } }
		@media tv, print { h1 { font-weight: bold } }
		@media (min-width: 600px) { h1 { color: red } }
		@media unknownmedium { h1 { color: red } }
		h1 { color: black }
	`, sheet.OriginAuthor, sheet.MediaAll, tbl)
	require.NoError(t, err)
	rules := s.Rules()
	require.Len(t, rules, 3)
	if rules[0].Media != sheet.MediaPrint {
		t.Errorf("print rule media is %v", rules[0].Media)
	}
	if rules[1].Media != sheet.MediaTV|sheet.MediaPrint {
		t.Errorf("tv,print rule media is %v", rules[1].Media)
	}
	if rules[2].Media != sheet.MediaAll {
		t.Errorf("top-level rule media is %v", rules[2].Media)
	}
}

func TestCompileImportantAndInherit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.douceur")
	defer teardown()
	//
	code, _ := compileBlock(t, "color: red !important; border: inherit; width: inherit")
	ops := decodeOps(t, code)
	require.Len(t, ops, 14)
	if !ops[0].Important() || ops[0].Property != style.PropColor {
		t.Errorf("first op is %+v", ops[0])
	}
	for _, op := range ops[1:13] {
		if !op.Inherit() || op.Important() {
			t.Errorf("border longhand op is %+v", op)
		}
	}
	if !ops[13].Inherit() || ops[13].Property != style.PropWidth {
		t.Errorf("width op is %+v", ops[13])
	}
}

func TestCompileDropsBadDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.douceur")
	defer teardown()
	//
	code, _ := compileBlock(t, `
		colr: red;
		display: blok;
		margin-top: 12deg;
		display: inline-block;
	`)
	ops := decodeOps(t, code)
	require.Len(t, ops, 1)
	if ops[0].Property != style.PropDisplay || ops[0].Value != uint32(style.DisplayInlineBlock) {
		t.Errorf("surviving op is %v %d", ops[0].Property, ops[0].Value)
	}
}

func TestCompileDropsBadSelectorRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.douceur")
	defer teardown()
	//
	tbl := intern.NewTable()
	s, err := douceuradapter.Compile(`
		h1, p:nth-child(2) { color: red }
		em { }
		p { color: blue }
	`, sheet.OriginAuthor, sheet.MediaAll, tbl)
	require.NoError(t, err)
	rules := s.Rules()
	require.Len(t, rules, 1)
	if got := rules[0].Selectors[0].String(); got != "p" {
		t.Errorf("surviving rule selects %q", got)
	}
}

func TestCompileBoxShorthands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.douceur")
	defer teardown()
	//
	code, _ := compileBlock(t, "margin: 0 auto; padding: 1px 2px 3px")
	cur := code.Cursor()

	wantMargin := []struct {
		prop style.PropertyID
		auto bool
	}{
		{style.PropMarginTop, false},
		{style.PropMarginRight, true},
		{style.PropMarginBottom, false},
		{style.PropMarginLeft, true},
	}
	for _, w := range wantMargin {
		op, err := cur.NextOp()
		require.NoError(t, err)
		if op.Property != w.prop {
			t.Fatalf("expected %v, got %v", w.prop, op.Property)
		}
		if w.auto {
			if op.Value != uint32(style.MarginAuto) {
				t.Errorf("%v is %d, want auto", w.prop, op.Value)
			}
			continue
		}
		if op.Value != uint32(style.MarginSet) {
			t.Fatalf("%v is %d, want set", w.prop, op.Value)
		}
		l, err := cur.Length()
		require.NoError(t, err)
		if l.Value != 0 || l.Unit != style.UnitPX {
			t.Errorf("%v is %v, want 0px", w.prop, l)
		}
	}

	wantPad := []struct {
		prop style.PropertyID
		px   int
	}{
		{style.PropPaddingTop, 1},
		{style.PropPaddingRight, 2},
		{style.PropPaddingBottom, 3},
		{style.PropPaddingLeft, 2},
	}
	for _, w := range wantPad {
		op, err := cur.NextOp()
		require.NoError(t, err)
		if op.Property != w.prop || op.Value != uint32(style.PaddingSet) {
			t.Fatalf("expected %v set, got %v %d", w.prop, op.Property, op.Value)
		}
		l, err := cur.Length()
		require.NoError(t, err)
		if l.Value != style.F(w.px) || l.Unit != style.UnitPX {
			t.Errorf("%v is %v, want %dpx", w.prop, l, w.px)
		}
	}
	if !cur.Done() {
		t.Error("trailing words after the shorthand expansion")
	}
}

func TestCompileBorderShorthand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.douceur")
	defer teardown()
	//
	code, _ := compileBlock(t, "border: 2px solid red")
	cur := code.Cursor()
	for _, p := range []style.PropertyID{style.PropBorderTopWidth, style.PropBorderRightWidth,
		style.PropBorderBottomWidth, style.PropBorderLeftWidth} {
		op, err := cur.NextOp()
		require.NoError(t, err)
		if op.Property != p || op.Value != uint32(style.BorderWidthSet) {
			t.Fatalf("expected %v set, got %v %d", p, op.Property, op.Value)
		}
		l, err := cur.Length()
		require.NoError(t, err)
		if l.Value != style.F(2) || l.Unit != style.UnitPX {
			t.Errorf("%v is %v", p, l)
		}
	}
	for _, p := range []style.PropertyID{style.PropBorderTopStyle, style.PropBorderRightStyle,
		style.PropBorderBottomStyle, style.PropBorderLeftStyle} {
		op, err := cur.NextOp()
		require.NoError(t, err)
		if op.Property != p || op.Value != uint32(style.BorderStyleSolid) {
			t.Errorf("expected %v solid, got %v %d", p, op.Property, op.Value)
		}
	}
	for _, p := range []style.PropertyID{style.PropBorderTopColor, style.PropBorderRightColor,
		style.PropBorderBottomColor, style.PropBorderLeftColor} {
		op, err := cur.NextOp()
		require.NoError(t, err)
		if op.Property != p || op.Value != uint32(style.ColorSet) {
			t.Fatalf("expected %v color, got %v %d", p, op.Property, op.Value)
		}
		c, err := cur.Color()
		require.NoError(t, err)
		if c != style.MakeRGB(0xff, 0, 0) {
			t.Errorf("%v is %v", p, c)
		}
	}

	// omitted components reset to their initial values
	code, _ = compileBlock(t, "border: solid")
	ops := decodeOps(t, code)
	require.Len(t, ops, 12)
	if ops[0].Value != uint32(style.BorderWidthMedium) {
		t.Errorf("omitted width encodes %d", ops[0].Value)
	}
	if ops[8].Value != uint32(style.ColorCurrent) {
		t.Errorf("omitted color encodes %d", ops[8].Value)
	}
}

func TestCompileOutlineAndListStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.douceur")
	defer teardown()
	//
	code, _ := compileBlock(t, "outline: dotted thick; list-style: square inside; list-style: none")
	ops := decodeOps(t, code)
	require.Len(t, ops, 6)
	if ops[0].Property != style.PropOutlineColor || ops[0].Value != uint32(style.OutlineColorInvert) {
		t.Errorf("outline color op is %v %d", ops[0].Property, ops[0].Value)
	}
	if ops[1].Property != style.PropOutlineWidth || ops[1].Value != uint32(style.BorderWidthThick) {
		t.Errorf("outline width op is %v %d", ops[1].Property, ops[1].Value)
	}
	if ops[2].Value != uint32(style.ListStyleTypeSquare) || ops[3].Value != uint32(style.ListStylePositionInside) {
		t.Errorf("list-style ops are %d, %d", ops[2].Value, ops[3].Value)
	}
	if ops[4].Value != uint32(style.ListStyleTypeNone) || ops[5].Value != uint32(style.ListStylePositionOutside) {
		t.Errorf("list-style none ops are %d, %d", ops[4].Value, ops[5].Value)
	}
}

func TestCompileColors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.douceur")
	defer teardown()
	//
	cases := []struct {
		decl string
		want style.RGBA
	}{
		{"color: #f00", style.MakeRGB(0xff, 0, 0)},
		{"color: #1a2b3c", style.MakeRGB(0x1a, 0x2b, 0x3c)},
		{"color: rgb(255, 0, 0)", style.MakeRGB(0xff, 0, 0)},
		{"color: rgb(100%, 0%, 50%)", style.MakeRGB(0xff, 0, 0x80)},
		{"color: rgb(300, -20, 40)", style.MakeRGB(0xff, 0, 40)},
		{"color: navy", style.MakeRGB(0, 0, 0x80)},
		{"background-color: transparent", style.Transparent},
	}
	for _, c := range cases {
		code, _ := compileBlock(t, c.decl)
		cur := code.Cursor()
		op, err := cur.NextOp()
		require.NoError(t, err, c.decl)
		if op.Value != uint32(style.ColorSet) {
			t.Errorf("%q encodes value %d", c.decl, op.Value)
			continue
		}
		got, err := cur.Color()
		require.NoError(t, err, c.decl)
		if got != c.want {
			t.Errorf("%q encodes %v, want %v", c.decl, got, c.want)
		}
	}
}

func TestCompileFontFamily(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.douceur")
	defer teardown()
	//
	code, _ := compileBlock(t, `font-family: Palatino, "Times New Roman", New Century Schoolbook, serif`)
	cur := code.Cursor()
	op, err := cur.NextOp()
	require.NoError(t, err)
	if style.FontFamilyKind(op.Value) != style.FontFamilySerif {
		t.Errorf("family kind is %d", op.Value)
	}
	names, err := cur.StringList()
	require.NoError(t, err)
	require.Len(t, names, 3)
	want := []string{"Palatino", "Times New Roman", "New Century Schoolbook"}
	for i, n := range names {
		if n.String() != want[i] {
			t.Errorf("family %d is %q, want %q", i, n.String(), want[i])
		}
	}
}

func TestCompileCountersAndContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.douceur")
	defer teardown()
	//
	code, tbl := compileBlock(t,
		`counter-reset: chapter 4 section; content: "(" counter(section, upper-roman) ") " attr(title) open-quote`)
	cur := code.Cursor()

	op, err := cur.NextOp()
	require.NoError(t, err)
	if op.Property != style.PropCounterReset || op.Value != uint32(style.CounterSet) {
		t.Fatalf("first op is %v %d", op.Property, op.Value)
	}
	cc, err := cur.CounterList()
	require.NoError(t, err)
	require.Len(t, cc, 2)
	if cc[0].Name != tbl.Intern("chapter") || cc[0].Value != style.F(4) {
		t.Errorf("counter 0 is %s %v", cc[0].Name, cc[0].Value)
	}
	if cc[1].Name != tbl.Intern("section") || cc[1].Value != 0 {
		t.Errorf("counter 1 is %s %v", cc[1].Name, cc[1].Value)
	}

	op, err = cur.NextOp()
	require.NoError(t, err)
	if op.Property != style.PropContent || op.Value != uint32(style.ContentSet) {
		t.Fatalf("second op is %v %d", op.Property, op.Value)
	}
	items, err := cur.ContentList()
	require.NoError(t, err)
	require.Len(t, items, 5)
	if items[0].Kind != style.ContentItemString || items[0].Text.String() != "(" {
		t.Errorf("item 0 is %+v", items[0])
	}
	if items[1].Kind != style.ContentItemCounter || items[1].Text != tbl.Intern("section") ||
		items[1].Style != style.ListStyleTypeUpperRoman {
		t.Errorf("item 1 is %+v", items[1])
	}
	if items[2].Kind != style.ContentItemString || items[2].Text.String() != ") " {
		t.Errorf("item 2 is %+v", items[2])
	}
	if items[3].Kind != style.ContentItemAttr || items[3].Text != tbl.Intern("title") {
		t.Errorf("item 3 is %+v", items[3])
	}
	if items[4].Kind != style.ContentItemOpenQuote {
		t.Errorf("item 4 is %+v", items[4])
	}
}

func TestCompileClip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.douceur")
	defer teardown()
	//
	code, _ := compileBlock(t, "clip: rect(1px, auto, 2em, auto)")
	cur := code.Cursor()
	op, err := cur.NextOp()
	require.NoError(t, err)
	if op.Value != uint32(style.ClipSet) {
		t.Fatalf("clip op value is %d", op.Value)
	}
	r, err := cur.ClipRect()
	require.NoError(t, err)
	if r.TopAuto || !r.RightAuto || r.BottomAuto || !r.LeftAuto {
		t.Errorf("auto flags are %+v", r)
	}
	if r.Top.Value != style.F(1) || r.Top.Unit != style.UnitPX {
		t.Errorf("top is %v", r.Top)
	}
	if r.Bottom.Value != style.F(2) || r.Bottom.Unit != style.UnitEM {
		t.Errorf("bottom is %v", r.Bottom)
	}
}

func TestCompileAural(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.douceur")
	defer teardown()
	//
	code, _ := compileBlock(t, "pause-before: 50%; pitch: 120hz; volume: 120; speech-rate: faster")
	cur := code.Cursor()

	op, err := cur.NextOp()
	require.NoError(t, err)
	if op.Property != style.PropPauseBefore || op.Value != uint32(style.PauseSet) {
		t.Fatalf("pause op is %v %d", op.Property, op.Value)
	}
	l, err := cur.Length()
	require.NoError(t, err)
	if l.Value != style.F(50) || l.Unit != style.UnitPCT {
		t.Errorf("pause is %v", l)
	}

	op, err = cur.NextOp()
	require.NoError(t, err)
	if op.Property != style.PropPitch || op.Value != uint32(style.PitchSet) {
		t.Fatalf("pitch op is %v %d", op.Property, op.Value)
	}
	if l, err = cur.Length(); err != nil || l.Value != style.F(120) || l.Unit != style.UnitHZ {
		t.Errorf("pitch is %v (%v)", l, err)
	}

	op, err = cur.NextOp()
	require.NoError(t, err)
	if op.Property != style.PropVolume || op.Value != uint32(style.VolumeNumber) {
		t.Fatalf("volume op is %v %d", op.Property, op.Value)
	}
	v, err := cur.Fixed()
	require.NoError(t, err)
	if v != style.F(100) {
		t.Errorf("volume is %v, want clamped to 100", v)
	}

	op, err = cur.NextOp()
	require.NoError(t, err)
	if op.Property != style.PropSpeechRate || op.Value != uint32(style.SpeechRateFaster) {
		t.Errorf("speech-rate op is %v %d", op.Property, op.Value)
	}
}

func TestCompileNegativeLengths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.douceur")
	defer teardown()
	//
	code, _ := compileBlock(t, "margin-left: -1.5em; padding-left: -1px; text-indent: -2em")
	cur := code.Cursor()

	op, err := cur.NextOp()
	require.NoError(t, err)
	if op.Property != style.PropMarginLeft {
		t.Fatalf("first op is %v", op.Property)
	}
	l, err := cur.Length()
	require.NoError(t, err)
	if l.Value != style.FromFloat(-1.5) || l.Unit != style.UnitEM {
		t.Errorf("margin-left is %v", l)
	}

	// the negative padding must have been dropped
	op, err = cur.NextOp()
	require.NoError(t, err)
	if op.Property != style.PropTextIndent {
		t.Errorf("second op is %v, want text-indent", op.Property)
	}
	if l, err = cur.Length(); err != nil || l.Value != style.F(-2) || l.Unit != style.UnitEM {
		t.Errorf("text-indent is %v (%v)", l, err)
	}
	if !cur.Done() {
		t.Error("unexpected trailing ops")
	}
}
