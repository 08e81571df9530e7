package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cascade/bytecode"
	"github.com/npillmayer/cascade/intern"
	"github.com/npillmayer/cascade/style"
)

// List-valued properties: font-family, cursor, quotes, the counter pair,
// content and clip.

func init() {
	registerEnc("font-family", encodeFontFamily)
	registerEnc("cursor", encodeCursor)
	registerEnc("quotes", encodeQuotes)
	registerEnc("counter-increment", counterEnc(style.PropCounterIncrement, style.F(1)))
	registerEnc("counter-reset", counterEnc(style.PropCounterReset, 0))
	registerEnc("content", encodeContent)
	registerEnc("clip", encodeClip)
}

var genericFamilies = map[string]style.FontFamilyKind{
	"serif":      style.FontFamilySerif,
	"sans-serif": style.FontFamilySansSerif,
	"cursive":    style.FontFamilyCursive,
	"fantasy":    style.FontFamilyFantasy,
	"monospace":  style.FontFamilyMonospace,
}

// encodeFontFamily reads a comma-separated family list. Named families
// collect until the first generic family, which closes the list; anything
// after it cannot be represented and is dropped.
func encodeFontFamily(b *bytecode.Builder, flags bytecode.Flags, terms []term, table *intern.Table) error {
	kind := style.FontFamilyNamed
	var names []*intern.String
	for _, group := range splitComma(terms) {
		name, generic, err := familyName(group)
		if err != nil {
			return err
		}
		if generic != 0 {
			kind = generic
			break
		}
		names = append(names, table.Intern(name))
	}
	if kind == style.FontFamilyNamed && len(names) == 0 {
		return errValue(terms)
	}
	b.Op(style.PropFontFamily, flags, uint32(kind)).Strings(names)
	return nil
}

// familyName joins one comma group into a family name. Unquoted names may
// consist of several idents; a single ident may instead be a generic
// family.
func familyName(group []term) (string, style.FontFamilyKind, error) {
	if len(group) == 1 && group[0].kind == termString {
		return group[0].text, 0, nil
	}
	parts := make([]string, 0, len(group))
	for _, t := range group {
		if t.kind != termKeyword {
			return "", 0, fmt.Errorf("%w: bad font family name %v", ErrSyntax, t)
		}
		parts = append(parts, t.text)
	}
	if len(parts) == 0 {
		return "", 0, fmt.Errorf("%w: empty font family name", ErrSyntax)
	}
	if len(parts) == 1 {
		if g, ok := genericFamilies[strings.ToLower(parts[0])]; ok {
			return "", g, nil
		}
	}
	return strings.Join(parts, " "), 0, nil
}

var cursorKeywords = map[string]uint32{
	"auto":      uint32(style.CursorAuto),
	"crosshair": uint32(style.CursorCrosshair),
	"default":   uint32(style.CursorDefault),
	"pointer":   uint32(style.CursorPointer),
	"move":      uint32(style.CursorMove),
	"e-resize":  uint32(style.CursorEResize),
	"ne-resize": uint32(style.CursorNEResize),
	"nw-resize": uint32(style.CursorNWResize),
	"n-resize":  uint32(style.CursorNResize),
	"se-resize": uint32(style.CursorSEResize),
	"sw-resize": uint32(style.CursorSWResize),
	"s-resize":  uint32(style.CursorSResize),
	"w-resize":  uint32(style.CursorWResize),
	"text":      uint32(style.CursorText),
	"wait":      uint32(style.CursorWait),
	"help":      uint32(style.CursorHelp),
	"progress":  uint32(style.CursorProgress),
}

// encodeCursor reads an optional list of cursor URIs followed by the
// mandatory generic cursor keyword.
func encodeCursor(b *bytecode.Builder, flags bytecode.Flags, terms []term, table *intern.Table) error {
	groups := splitComma(terms)
	last := groups[len(groups)-1]
	v, err := oneKeyword(last, cursorKeywords)
	if err != nil {
		return err
	}
	var uris []*intern.String
	for _, g := range groups[:len(groups)-1] {
		if len(g) != 1 || g[0].kind != termURI {
			return errValue(terms)
		}
		uris = append(uris, table.Intern(g[0].text))
	}
	b.Op(style.PropCursor, flags, v).Strings(uris)
	return nil
}

// encodeQuotes reads 'none' or one or more open/close string pairs.
func encodeQuotes(b *bytecode.Builder, flags bytecode.Flags, terms []term, table *intern.Table) error {
	if len(terms) == 1 && terms[0].keyword("none") {
		b.Op(style.PropQuotes, flags, uint32(style.QuotesNone))
		return nil
	}
	if len(terms)%2 != 0 {
		return errValue(terms)
	}
	qq := make([]*intern.String, 0, len(terms))
	for _, t := range terms {
		if t.kind != termString {
			return errValue(terms)
		}
		qq = append(qq, table.Intern(t.text))
	}
	b.Op(style.PropQuotes, flags, uint32(style.QuotesSet)).Strings(qq)
	return nil
}

// counterEnc builds the encoder for counter-reset and counter-increment:
// 'none' or a list of counter names, each with an optional integer. def is
// the per-property default for omitted integers.
func counterEnc(p style.PropertyID, def style.Fixed) encoder {
	return func(b *bytecode.Builder, flags bytecode.Flags, terms []term, table *intern.Table) error {
		if len(terms) == 1 && terms[0].keyword("none") {
			b.Op(p, flags, uint32(style.CounterNone))
			return nil
		}
		var cc []style.Counter
		for i := 0; i < len(terms); {
			t := terms[i]
			if t.kind != termKeyword {
				return errValue(terms)
			}
			c := style.Counter{Name: table.Intern(t.text), Value: def}
			i++
			if i < len(terms) && terms[i].kind == termNumber {
				n, err := intTerm(terms[i])
				if err != nil {
					return err
				}
				c.Value = style.F(int(n))
				i++
			}
			cc = append(cc, c)
		}
		b.Op(p, flags, uint32(style.CounterSet)).Counters(cc)
		return nil
	}
}

// encodeContent reads 'normal', 'none' or a list of content items.
func encodeContent(b *bytecode.Builder, flags bytecode.Flags, terms []term, table *intern.Table) error {
	if len(terms) == 1 {
		switch {
		case terms[0].keyword("normal"):
			b.Op(style.PropContent, flags, uint32(style.ContentNormal))
			return nil
		case terms[0].keyword("none"):
			b.Op(style.PropContent, flags, uint32(style.ContentNone))
			return nil
		}
	}
	items := make([]style.ContentItem, 0, len(terms))
	for _, t := range terms {
		item, err := contentItem(t, table)
		if err != nil {
			return err
		}
		items = append(items, item)
	}
	b.Op(style.PropContent, flags, uint32(style.ContentSet)).ContentItems(items)
	return nil
}

func contentItem(t term, table *intern.Table) (style.ContentItem, error) {
	switch t.kind {
	case termString:
		return style.ContentItem{Kind: style.ContentItemString, Text: table.Intern(t.text)}, nil
	case termURI:
		return style.ContentItem{Kind: style.ContentItemURI, Text: table.Intern(t.text)}, nil
	case termKeyword:
		switch strings.ToLower(t.text) {
		case "open-quote":
			return style.ContentItem{Kind: style.ContentItemOpenQuote}, nil
		case "close-quote":
			return style.ContentItem{Kind: style.ContentItemCloseQuote}, nil
		case "no-open-quote":
			return style.ContentItem{Kind: style.ContentItemNoOpenQuote}, nil
		case "no-close-quote":
			return style.ContentItem{Kind: style.ContentItemNoCloseQuote}, nil
		}
	case termFunction:
		return contentFunction(t, table)
	}
	return style.ContentItem{}, fmt.Errorf("%w: bad content item %v", ErrSyntax, t)
}

func contentFunction(t term, table *intern.Table) (style.ContentItem, error) {
	args := splitComma(t.args)
	switch t.text {
	case "attr":
		if len(args) == 1 && len(args[0]) == 1 && args[0][0].kind == termKeyword {
			return style.ContentItem{Kind: style.ContentItemAttr, Text: table.Intern(args[0][0].text)}, nil
		}
	case "counter":
		name, cstyle, ok := counterArgs(args)
		if ok {
			return style.ContentItem{Kind: style.ContentItemCounter, Text: table.Intern(name), Style: cstyle}, nil
		}
	case "counters":
		if len(args) >= 2 && len(args[1]) == 1 && args[1][0].kind == termString {
			sep := args[1][0].text
			rest := [][]term{args[0]}
			if len(args) > 2 {
				rest = append(rest, args[2:]...)
			}
			name, cstyle, ok := counterArgs(rest)
			if ok {
				return style.ContentItem{
					Kind:  style.ContentItemCounters,
					Text:  table.Intern(name),
					Sep:   table.Intern(sep),
					Style: cstyle,
				}, nil
			}
		}
	}
	return style.ContentItem{}, fmt.Errorf("%w: bad content item %s(…)", ErrSyntax, t.text)
}

// counterArgs reads a counter name and an optional counter style, which
// defaults to decimal.
func counterArgs(args [][]term) (string, style.ListStyleType, bool) {
	if len(args) == 0 || len(args) > 2 || len(args[0]) != 1 || args[0][0].kind != termKeyword {
		return "", 0, false
	}
	cstyle := style.ListStyleTypeDecimal
	if len(args) == 2 {
		if len(args[1]) != 1 {
			return "", 0, false
		}
		v, ok := lookupKeyword(args[1][0], listStyleTypeKeywords)
		if !ok {
			return "", 0, false
		}
		cstyle = style.ListStyleType(v)
	}
	return args[0][0].text, cstyle, true
}

// encodeClip reads 'auto' or a rect() shape whose sides are lengths or
// 'auto' each.
func encodeClip(b *bytecode.Builder, flags bytecode.Flags, terms []term, _ *intern.Table) error {
	if len(terms) == 1 && terms[0].keyword("auto") {
		b.Op(style.PropClip, flags, uint32(style.ClipAuto))
		return nil
	}
	if len(terms) != 1 || terms[0].kind != termFunction || terms[0].text != "rect" {
		return errValue(terms)
	}
	args := nonComma(terms[0].args)
	if len(args) != 4 {
		return errValue(terms)
	}
	var r style.ClipRect
	sides := [4]*style.Length{&r.Top, &r.Right, &r.Bottom, &r.Left}
	autos := [4]*bool{&r.TopAuto, &r.RightAuto, &r.BottomAuto, &r.LeftAuto}
	for i, a := range args {
		if a.keyword("auto") {
			*autos[i] = true
			continue
		}
		l, err := lengthTerm(a, lengthOpts{neg: true})
		if err != nil {
			return err
		}
		*sides[i] = l
	}
	b.Op(style.PropClip, flags, uint32(style.ClipSet)).Clip(r)
	return nil
}
