package htmltree

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cascade"
	"github.com/npillmayer/cascade/bytecode"
	"github.com/npillmayer/cascade/douceuradapter"
	"github.com/npillmayer/cascade/intern"
	"github.com/npillmayer/cascade/style"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// PresentationalHints translates legacy markup into a declaration block:
// align, bgcolor, text, width, height, border, nowrap and the font and
// center elements. The hints are rendered as CSS text and sent through the
// declaration compiler, so invalid attribute values drop silently just as
// invalid declarations would.
func (a *Adapter) PresentationalHints(n *html.Node) (bytecode.Code, error) {
	if n == nil || n.Type != html.ElementNode {
		return bytecode.Code{}, fmt.Errorf("%w: can style element nodes only", cascade.ErrBadParameter)
	}
	var decls []string
	add := func(property, value string) {
		decls = append(decls, property+": "+value)
	}

	switch n.DataAtom {
	case atom.P, atom.Div, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.Tr, atom.Td, atom.Th, atom.Caption:
		if v, ok := attrVal(n, "align"); ok {
			add("text-align", v)
		}
	case atom.Center:
		add("text-align", "center")
	case atom.Img:
		if v, ok := attrVal(n, "align"); ok {
			switch strings.ToLower(v) {
			case "left", "right":
				add("float", v)
			case "top", "middle", "bottom":
				add("vertical-align", v)
			}
		}
	case atom.Font:
		if v, ok := attrVal(n, "color"); ok {
			add("color", hintColor(v))
		}
		if v, ok := attrVal(n, "face"); ok {
			add("font-family", v)
		}
	}

	switch n.DataAtom {
	case atom.Body:
		if v, ok := attrVal(n, "bgcolor"); ok {
			add("background-color", hintColor(v))
		}
		if v, ok := attrVal(n, "text"); ok {
			add("color", hintColor(v))
		}
	case atom.Table:
		if v, ok := attrVal(n, "bgcolor"); ok {
			add("background-color", hintColor(v))
		}
		if v, ok := attrVal(n, "border"); ok {
			if v == "0" {
				add("border-style", "none")
			} else if d, ok := hintDimension(v); ok {
				add("border-width", d)
				add("border-style", "solid")
			}
		}
	case atom.Tr, atom.Td, atom.Th:
		if v, ok := attrVal(n, "bgcolor"); ok {
			add("background-color", hintColor(v))
		}
	}

	switch n.DataAtom {
	case atom.Img, atom.Table, atom.Td, atom.Th:
		if v, ok := attrVal(n, "width"); ok {
			if d, ok := hintDimension(v); ok {
				add("width", d)
			}
		}
		if v, ok := attrVal(n, "height"); ok {
			if d, ok := hintDimension(v); ok {
				add("height", d)
			}
		}
	}
	if n.DataAtom == atom.Td || n.DataAtom == atom.Th {
		if _, ok := attrVal(n, "nowrap"); ok {
			add("white-space", "nowrap")
		}
	}

	if len(decls) == 0 {
		return bytecode.Code{}, cascade.ErrNotSet
	}
	code, err := douceuradapter.CompileDeclarations(strings.Join(decls, "; "), a.table)
	if err != nil || code.Empty() {
		return bytecode.Code{}, cascade.ErrNotSet
	}
	return code, nil
}

// hintColor maps legacy color spellings to CSS: a bare 6 digit hex value,
// as in bgcolor=ff0000, gets its missing '#'.
func hintColor(v string) string {
	v = strings.TrimSpace(v)
	if len(v) == 6 && !strings.HasPrefix(v, "#") {
		hex := true
		for i := 0; i < len(v); i++ {
			if !isHexDigit(v[i]) {
				hex = false
				break
			}
		}
		if hex {
			return "#" + v
		}
	}
	return v
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// hintDimension maps an HTML dimension attribute to a CSS length: a plain
// integer means pixels, a trailing '%' a percentage.
func hintDimension(v string) (string, bool) {
	v = strings.TrimSpace(v)
	pct := strings.HasSuffix(v, "%")
	digits := strings.TrimSuffix(v, "%")
	if digits == "" {
		return "", false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return "", false
		}
	}
	if pct {
		return v, true
	}
	return v + "px", true
}

// InlineStyle compiles the node's style attribute. A style attribute that
// does not even tokenize styles nothing.
func (a *Adapter) InlineStyle(n *html.Node) (bytecode.Code, error) {
	text, ok := attrVal(n, "style")
	if !ok || strings.TrimSpace(text) == "" {
		return bytecode.Code{}, cascade.ErrNotSet
	}
	code, err := douceuradapter.CompileDeclarations(text, a.table)
	if err != nil {
		tracer().Infof("dropping style attribute: %v", err)
		return bytecode.Code{}, cascade.ErrNotSet
	}
	if code.Empty() {
		return bytecode.Code{}, cascade.ErrNotSet
	}
	return code, nil
}

// UADefault supplies the few inherited defaults the engine's initial
// values leave open: the document font and the quote glyphs, which CSS
// delegates to the user agent.
func (a *Adapter) UADefault(p style.PropertyID) (bytecode.Code, error) {
	a.uaOnce.Do(a.buildUADefaults)
	code, ok := a.ua[p]
	if !ok {
		return bytecode.Code{}, cascade.ErrNotSet
	}
	return code, nil
}

func (a *Adapter) buildUADefaults() {
	a.ua = map[style.PropertyID]bytecode.Code{
		style.PropFontFamily: bytecode.NewBuilder().
			Op(style.PropFontFamily, 0, uint32(style.FontFamilySerif)).
			Strings(nil).
			Code(),
		style.PropQuotes: bytecode.NewBuilder().
			Op(style.PropQuotes, 0, uint32(style.QuotesSet)).
			Strings([]*intern.String{
				a.table.Intern("“"), a.table.Intern("”"),
				a.table.Intern("‘"), a.table.Intern("’"),
			}).
			Code(),
	}
}
