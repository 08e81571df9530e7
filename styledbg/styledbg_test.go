package styledbg_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/cascade"
	"github.com/npillmayer/cascade/douceuradapter"
	"github.com/npillmayer/cascade/htmltree"
	"github.com/npillmayer/cascade/intern"
	"github.com/npillmayer/cascade/sheet"
	"github.com/npillmayer/cascade/style"
	"github.com/npillmayer/cascade/styledbg"
	"github.com/npillmayer/cascade/styledtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestSheetTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.douceur")
	defer teardown()
	//
	tbl := intern.NewTable()
	s, err := douceuradapter.Compile(`
		h1, .note { color: red }
		#nav p { margin: 0 }
	`, sheet.OriginAuthor, sheet.MediaAll, tbl)
	require.NoError(t, err)
	out := styledbg.SheetTree(s)
	t.Logf("index =%s", out)
	for _, want := range []string{
		"author sheet, 2 rule(s), media all",
		"h1  (0,0,1)  rule #0",
		".note  (0,1,0)  rule #0",
		"#nav p  (1,0,1)  rule #1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump is missing %q", want)
		}
	}
}

func TestStyleTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.douceur")
	defer teardown()
	//
	cs := style.NewComputedStyle()
	cs.SetDisplay(style.DisplayBlock)
	cs.SetColor(style.ColorSet, style.MakeRGB(0xff, 0, 0))
	cs.SetMargin(style.SideTop, style.MarginSet, style.Length{Value: style.F(10), Unit: style.UnitPX})
	cs.SetMargin(style.SideLeft, style.MarginAuto, style.Length{})
	tbl := intern.NewTable()
	cs.SetFontFamily(style.FontFamilySerif, []*intern.String{tbl.Intern("Palatino")})
	cs.SetFontSize(style.FontSizeSet, style.Length{Value: style.F(12), Unit: style.UnitPT})

	out := styledbg.StyleTree(cs)
	t.Logf("style =\n%s", out)
	for _, want := range []string{
		"display: block",
		"color: #ffff0000",
		"margin: 10px inherit inherit auto",
		"font-family: Palatino, serif",
		"font-size: 12pt",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump is missing %q", want)
		}
	}
	if strings.Contains(out, "uncommon") {
		t.Error("unallocated block in dump")
	}

	cs.SetLetterSpacing(style.SpacingSet, style.Length{Value: style.F(1), Unit: style.UnitPX})
	out = styledbg.StyleTree(cs)
	if !strings.Contains(out, "letter-spacing: 1px") {
		t.Error("letter-spacing missing after block allocation")
	}
}

func TestDocumentTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.styledtree")
	defer teardown()
	//
	const page = `<html><head><style>
		body { font-size: 12pt }
		p { display: block }
	</style></head><body><p>hello <em>css</em></p></body></html>`
	tbl := intern.NewTable()
	doc, err := html.Parse(strings.NewReader(page))
	require.NoError(t, err)
	cx, err := cascade.NewContext[*html.Node](htmltree.New(tbl), tbl)
	require.NoError(t, err)
	for _, s := range htmltree.StyleElements(doc, tbl) {
		require.NoError(t, cx.AppendSheet(s))
	}
	root, err := styledtree.Build(cx, doc, sheet.MediaScreen)
	require.NoError(t, err)

	out := styledbg.DocumentTree(root)
	t.Logf("document =\n%s", out)
	for _, want := range []string{
		"<body>  display=inline font-size=12pt",
		"<p>  display=block font-size=12pt",
		"<em>  display=inline font-size=12pt",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump is missing %q", want)
		}
	}
}
