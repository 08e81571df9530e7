package styledtree_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/cascade"
	"github.com/npillmayer/cascade/htmltree"
	"github.com/npillmayer/cascade/intern"
	"github.com/npillmayer/cascade/sheet"
	"github.com/npillmayer/cascade/style"
	"github.com/npillmayer/cascade/styledtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const page = `<html><head><style>
body { font-size: 12pt; color: black }
p    { margin-top: 10px }
em   { color: red }
</style></head>
<body>
  <p>one <em>two</em></p>
  <div><p>three</p></div>
</body></html>`

func buildContext(t *testing.T) (*cascade.Context[*html.Node], *html.Node) {
	tbl := intern.NewTable()
	doc, err := html.Parse(strings.NewReader(page))
	require.NoError(t, err)
	cx, err := cascade.NewContext[*html.Node](htmltree.New(tbl), tbl)
	require.NoError(t, err)
	for _, s := range htmltree.StyleElements(doc, tbl) {
		require.NoError(t, cx.AppendSheet(s))
	}
	return cx, doc
}

func findTag(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if m := findTag(ch, tag); m != nil {
			return m
		}
	}
	return nil
}

func TestBuildDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.styledtree")
	defer teardown()
	//
	cx, doc := buildContext(t)
	root, err := styledtree.Build(cx, doc, sheet.MediaScreen)
	require.NoError(t, err)
	if root.HTMLNode().Data != "html" {
		t.Fatalf("styled tree rooted at <%s>, want <html>", root.HTMLNode().Data)
	}
	if root.Parent() != nil {
		t.Error("root node has a parent")
	}
	if root.ChildCount() != 2 {
		t.Fatalf("root has %d children, want 2", root.ChildCount())
	}
	body, ok := root.Child(1)
	require.True(t, ok)
	if body.HTMLNode().Data != "body" {
		t.Fatalf("second child of root is <%s>, want <body>", body.HTMLNode().Data)
	}
	if body.Parent() != root {
		t.Error("body is not linked to its parent")
	}
	if body.ChildCount() != 2 {
		t.Fatalf("body has %d children, want 2", body.ChildCount())
	}
	p, _ := body.Child(0)
	div, _ := body.Child(1)
	if p.HTMLNode().Data != "p" || div.HTMLNode().Data != "div" {
		t.Errorf("body children out of document order: <%s>, <%s>",
			p.HTMLNode().Data, div.HTMLNode().Data)
	}
	if k, l := p.Style().Margin(style.SideTop); k != style.MarginSet || l.Value != style.F(10) {
		t.Errorf("p margin-top = %v %s, want 10px", k, l)
	}
}

func TestBuildComposesInheritance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.styledtree")
	defer teardown()
	//
	cx, doc := buildContext(t)
	root, err := styledtree.Build(cx, doc, sheet.MediaScreen)
	require.NoError(t, err)
	em := root.Find(findTag(doc, "em"))
	require.NotNil(t, em)
	if k, c := em.Style().Color(); k != style.ColorSet || c != style.MakeRGB(0xff, 0, 0) {
		t.Errorf("em color = %v %s, want red", k, c)
	}
	if k, l := em.Style().FontSize(); k != style.FontSizeSet ||
		l.Value != style.F(12) || l.Unit != style.UnitPT {
		t.Errorf("em font-size = %v %s, want inherited 12pt", k, l)
	}
}

func TestBuildSubtree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.styledtree")
	defer teardown()
	//
	cx, doc := buildContext(t)
	rootStyle, err := cx.SelectStyle(findTag(doc, "html"), sheet.MediaScreen)
	require.NoError(t, err)
	bodySel, err := cx.SelectStyle(findTag(doc, "body"), sheet.MediaScreen)
	require.NoError(t, err)
	bodyStyle, err := cx.Compose(rootStyle, bodySel)
	require.NoError(t, err)

	div := findTag(doc, "div")
	sub, err := styledtree.Build(cx, div, sheet.MediaScreen,
		styledtree.WithParentStyle(bodyStyle))
	require.NoError(t, err)
	if sub.HTMLNode().Data != "div" {
		t.Fatalf("subtree rooted at <%s>, want <div>", sub.HTMLNode().Data)
	}
	p, ok := sub.Child(0)
	require.True(t, ok)
	if k, l := p.Style().FontSize(); k != style.FontSizeSet ||
		l.Value != style.F(12) || l.Unit != style.UnitPT {
		t.Errorf("subtree p font-size = %v %s, want inherited 12pt", k, l)
	}

	// without a parent style, inherited properties start from initials
	bare, err := styledtree.Build(cx, div, sheet.MediaScreen)
	require.NoError(t, err)
	p, _ = bare.Child(0)
	if k, l := p.Style().FontSize(); k != style.FontSizeSet ||
		l.Value != style.F(16) || l.Unit != style.UnitPX {
		t.Errorf("bare subtree p font-size = %v %s, want initial 16px", k, l)
	}
}

func TestBuildWalkAndFind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.styledtree")
	defer teardown()
	//
	cx, doc := buildContext(t)
	root, err := styledtree.Build(cx, doc, sheet.MediaScreen)
	require.NoError(t, err)
	var names []string
	root.Walk(func(n *styledtree.Node) bool {
		names = append(names, n.HTMLNode().Data)
		return true
	})
	want := []string{"html", "head", "style", "body", "p", "em", "div", "p"}
	require.Equal(t, want, names)

	names = names[:0]
	root.Walk(func(n *styledtree.Node) bool {
		names = append(names, n.HTMLNode().Data)
		return n.HTMLNode().Data != "body"
	})
	require.Equal(t, []string{"html", "head", "style", "body"}, names)

	body := root.Find(findTag(doc, "body"))
	require.NotNil(t, body)
	if body.Find(findTag(doc, "style")) != nil {
		t.Error("found a node outside of the subtree")
	}
}

func TestBuildSingleWorker(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.styledtree")
	defer teardown()
	//
	cx, doc := buildContext(t)
	root, err := styledtree.Build(cx, doc, sheet.MediaScreen,
		styledtree.WithWorkers(1))
	require.NoError(t, err)
	count := 0
	root.Walk(func(n *styledtree.Node) bool {
		count++
		return true
	})
	if count != 8 {
		t.Errorf("styled %d elements, want 8", count)
	}
}

func TestBuildBadParameters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.styledtree")
	defer teardown()
	//
	cx, _ := buildContext(t)
	if _, err := styledtree.Build(nil, &html.Node{}, sheet.MediaScreen); err != cascade.ErrBadParameter {
		t.Errorf("nil context: err = %v", err)
	}
	if _, err := styledtree.Build(cx, nil, sheet.MediaScreen); err != cascade.ErrBadParameter {
		t.Errorf("nil root: err = %v", err)
	}
	empty := &html.Node{Type: html.DocumentNode}
	if _, err := styledtree.Build(cx, empty, sheet.MediaScreen); err != cascade.ErrBadParameter {
		t.Errorf("empty document: err = %v", err)
	}
}
