/*
Package styledbg implements helpers to debug styling: textual dumps of a
stylesheet's selector index, of a computed style and of a styled tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledbg

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/cascade/intern"
	"github.com/npillmayer/cascade/sheet"
	"github.com/npillmayer/cascade/style"
	"github.com/npillmayer/cascade/styledtree"
	tp "github.com/xlab/treeprint"
)

// SheetTree renders the selector index of a stylesheet: one branch per
// index bucket, one line per selector chain, with the chain's specificity
// and the owning rule. Buckets come out sorted by label, chains in their
// match order.
func SheetTree(s *sheet.Stylesheet) string {
	type bucket struct {
		label string
		chain []*sheet.Selector
	}
	var buckets []bucket
	s.IndexBuckets(func(kind sheet.DetailKind, key *intern.String, chain []*sheet.Selector) {
		var label string
		switch kind {
		case sheet.DetailID:
			label = "#" + key.String()
		case sheet.DetailClass:
			label = "." + key.String()
		case sheet.DetailElement:
			label = key.String()
		default:
			label = "*"
		}
		buckets = append(buckets, bucket{label, chain})
	})
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].label < buckets[j].label })

	header := fmt.Sprintf("\n%s sheet, %d rule(s), media %s\n", s.Origin(), len(s.Rules()), s.Media())
	p := tp.New()
	for _, b := range buckets {
		branch := p.AddBranch(b.label)
		for _, sel := range b.chain {
			branch.AddNode(fmt.Sprintf("%s  %s  rule #%d", sel, sel.Spec, sel.Rule.Seq()))
		}
	}
	return header + p.String()
}

// DocumentTree renders the element structure of a styled tree, each
// element with its display mode and font size. For the full picture of a
// single element's style use StyleTree.
func DocumentTree(root *styledtree.Node) string {
	p := tp.New()
	documentBranch(p, root)
	return p.String()
}

func documentBranch(t tp.Tree, sn *styledtree.Node) {
	fsk, fsl := sn.Style().FontSize()
	label := fmt.Sprintf("<%s>  display=%s font-size=%s", sn.HTMLNode().Data,
		kw(displayNames, uint8(sn.Style().Display())), fontSize(fsk, fsl))
	if sn.ChildCount() == 0 {
		t.AddNode(label)
		return
	}
	branch := t.AddBranch(label)
	for _, ch := range sn.Children() {
		documentBranch(branch, ch)
	}
}

// StyleTree renders a computed style grouped by concern. The lazily
// allocated blocks appear only when some declaration touched them.
func StyleTree(cs *style.ComputedStyle) string {
	p := tp.New()

	box := p.AddBranch("box")
	box.AddNode("display: " + kw(displayNames, uint8(cs.Display())))
	box.AddNode("position: " + kw(positionNames, uint8(cs.Position())))
	box.AddNode("float: " + kw(floatNames, uint8(cs.Float())))
	box.AddNode("width: " + width(cs.Width()))
	box.AddNode("height: " + width(cs.Height()))
	box.AddNode("margin: " + sides(func(s style.Side) string { return margin(cs.Margin(s)) }))
	box.AddNode("padding: " + sides(func(s style.Side) string { return padding(cs.Padding(s)) }))

	border := p.AddBranch("border")
	for s := style.SideTop; s <= style.SideLeft; s++ {
		border.AddNode(s.String() + ": " + borderEdge(cs, s))
	}

	font := p.AddBranch("font")
	font.AddNode("font-family: " + fontFamily(cs.FontFamily()))
	font.AddNode("font-size: " + fontSize(cs.FontSize()))
	font.AddNode("font-style: " + kw(fontStyleNames, uint8(cs.FontStyle())))
	font.AddNode("font-weight: " + kw(fontWeightNames, uint8(cs.FontWeight())))
	font.AddNode("line-height: " + lineHeight(cs.LineHeight()))

	text := p.AddBranch("text")
	text.AddNode("color: " + color(cs.Color()))
	text.AddNode("background-color: " + color(cs.BackgroundColor()))
	text.AddNode("text-align: " + kw(textAlignNames, uint8(cs.TextAlign())))
	text.AddNode("text-decoration: " + textDecoration(cs.TextDecoration()))
	tik, til := cs.TextIndent()
	text.AddNode("text-indent: " + tagged(setOnly, uint8(tik), til.String()))
	text.AddNode("white-space: " + kw(whiteSpaceNames, uint8(cs.WhiteSpace())))

	if cs.HasBlock(style.BlockUncommon) {
		u := p.AddBranch("uncommon")
		u.AddNode("letter-spacing: " + spacing(cs.LetterSpacing()))
		u.AddNode("word-spacing: " + spacing(cs.WordSpacing()))
		u.AddNode("outline: " + outline(cs))
		u.AddNode("quotes: " + quotes(cs.Quotes()))
	}
	if cs.HasBlock(style.BlockPage) {
		g := p.AddBranch("page")
		g.AddNode("page-break-before: " + kw(pageBreakNames, uint8(cs.PageBreakBefore())))
		g.AddNode("page-break-after: " + kw(pageBreakNames, uint8(cs.PageBreakAfter())))
		g.AddNode("orphans: " + count(cs.Orphans()))
		g.AddNode("widows: " + count(cs.Widows()))
	}
	if cs.HasBlock(style.BlockAural) {
		g := p.AddBranch("aural")
		g.AddNode("speak: " + kw(speakNames, uint8(cs.Speak())))
		g.AddNode("volume: " + volume(cs.Volume()))
	}
	return p.String()
}

// kw renders a keyword enum; names[0] is the inherit placeholder.
func kw(names []string, v uint8) string {
	if int(v) < len(names) && names[v] != "" {
		return names[v]
	}
	return fmt.Sprintf("?%d", v)
}

// tagged renders a tag with payload: an empty names entry stands for "the
// payload is valid here".
func tagged(names []string, k uint8, payload string) string {
	if int(k) < len(names) && names[k] != "" {
		return names[k]
	}
	return payload
}

var (
	displayNames = []string{"inherit", "inline", "block", "list-item", "run-in",
		"inline-block", "table", "inline-table", "table-row-group",
		"table-header-group", "table-footer-group", "table-row",
		"table-column-group", "table-column", "table-cell", "table-caption", "none"}
	positionNames   = []string{"inherit", "static", "relative", "absolute", "fixed"}
	floatNames      = []string{"inherit", "none", "left", "right"}
	fontStyleNames  = []string{"inherit", "normal", "italic", "oblique"}
	fontWeightNames = []string{"inherit", "normal", "bold", "bolder", "lighter",
		"100", "200", "300", "400", "500", "600", "700", "800", "900"}
	textAlignNames  = []string{"inherit", "default", "left", "right", "center", "justify"}
	whiteSpaceNames = []string{"inherit", "normal", "pre", "nowrap", "pre-wrap", "pre-line"}
	borderStyleNames = []string{"inherit", "none", "hidden", "dotted", "dashed",
		"solid", "double", "groove", "ridge", "inset", "outset"}
	pageBreakNames = []string{"inherit", "auto", "always", "avoid", "left", "right"}
	speakNames     = []string{"inherit", "normal", "none", "spell-out"}
	fontFamilyNames = []string{"inherit", "", "serif", "sans-serif", "cursive",
		"fantasy", "monospace"}
	fontSizeNames = []string{"inherit", "xx-small", "x-small", "small", "medium",
		"large", "x-large", "xx-large", "larger", "smaller", ""}
	sizeNames        = []string{"inherit", "auto", ""}
	marginNames      = []string{"inherit", "auto", ""}
	paddingNames     = []string{"inherit", ""}
	colorNames       = []string{"inherit", "", "currentColor"}
	borderWidthNames = []string{"inherit", "thin", "medium", "thick", ""}
	spacingNames     = []string{"inherit", "normal", ""}
	setOnly          = []string{"inherit", ""}
)

func width(k style.SizeKind, l style.Length) string {
	return tagged(sizeNames, uint8(k), l.String())
}

func margin(k style.MarginKind, l style.Length) string {
	return tagged(marginNames, uint8(k), l.String())
}

func padding(k style.PaddingKind, l style.Length) string {
	return tagged(paddingNames, uint8(k), l.String())
}

func sides(f func(style.Side) string) string {
	parts := make([]string, 4)
	for s := style.SideTop; s <= style.SideLeft; s++ {
		parts[s] = f(s)
	}
	return strings.Join(parts, " ")
}

func color(k style.ColorKind, c style.RGBA) string {
	return tagged(colorNames, uint8(k), c.String())
}

func borderEdge(cs *style.ComputedStyle, s style.Side) string {
	wk, wl := cs.BorderWidth(s)
	ck, c := cs.BorderColor(s)
	return tagged(borderWidthNames, uint8(wk), wl.String()) + " " +
		kw(borderStyleNames, uint8(cs.BorderStyle(s))) + " " +
		color(ck, c)
}

func fontFamily(k style.FontFamilyKind, names []*intern.String) string {
	parts := make([]string, 0, len(names)+1)
	for _, n := range names {
		parts = append(parts, n.String())
	}
	if g := kw(fontFamilyNames, uint8(k)); k != style.FontFamilyNamed {
		parts = append(parts, g)
	}
	return strings.Join(parts, ", ")
}

func fontSize(k style.FontSizeKind, l style.Length) string {
	return tagged(fontSizeNames, uint8(k), l.String())
}

func lineHeight(k style.LineHeightKind, l style.Length) string {
	switch k {
	case style.LineHeightNumber:
		return l.Value.String()
	case style.LineHeightSet:
		return l.String()
	}
	return kw([]string{"inherit", "normal"}, uint8(k))
}

func textDecoration(d style.TextDecoration) string {
	if d == style.TextDecorationInherit {
		return "inherit"
	}
	if d&style.TextDecorationNone != 0 {
		return "none"
	}
	var parts []string
	if d&style.TextDecorationUnderline != 0 {
		parts = append(parts, "underline")
	}
	if d&style.TextDecorationOverline != 0 {
		parts = append(parts, "overline")
	}
	if d&style.TextDecorationLineThrough != 0 {
		parts = append(parts, "line-through")
	}
	if d&style.TextDecorationBlink != 0 {
		parts = append(parts, "blink")
	}
	return strings.Join(parts, " ")
}

func spacing(k style.SpacingKind, l style.Length) string {
	return tagged(spacingNames, uint8(k), l.String())
}

func outline(cs *style.ComputedStyle) string {
	ck, c := cs.OutlineColor()
	wk, wl := cs.OutlineWidth()
	col := "invert"
	if ck == style.OutlineColorSet {
		col = c.String()
	} else if ck == style.OutlineColorInherit {
		col = "inherit"
	}
	return tagged(borderWidthNames, uint8(wk), wl.String()) + " " + col
}

func quotes(k style.QuotesKind, qq []*intern.String) string {
	switch k {
	case style.QuotesNone:
		return "none"
	case style.QuotesInherit:
		return "inherit"
	}
	parts := make([]string, len(qq))
	for i, q := range qq {
		parts[i] = fmt.Sprintf("%q", q.String())
	}
	return strings.Join(parts, " ")
}

func count(k style.CountKind, n int32) string {
	if k != style.CountSet {
		return "inherit"
	}
	return fmt.Sprintf("%d", n)
}

func volume(k style.VolumeKind, v style.Fixed) string {
	switch k {
	case style.VolumeNumber:
		return v.String()
	case style.VolumePercent:
		return v.String() + "%"
	}
	return kw([]string{"inherit", "silent", "x-soft", "soft", "medium",
		"loud", "x-loud"}, uint8(k))
}
