package douceuradapter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/cascade/bytecode"
	"github.com/npillmayer/cascade/intern"
	"github.com/npillmayer/cascade/sheet"
	"github.com/npillmayer/cascade/style"
)

// ErrSyntax wraps everything the compiler refuses: selectors it cannot
// parse, properties it does not know, values no encoder accepts. Callers
// rarely see it, as rule and declaration errors are recovered internally.
var ErrSyntax = errors.New("css syntax error")

// Compile parses CSS text and compiles it into a stylesheet of the given
// origin, applicable to the given media. Names are interned through table,
// which must be the same table the selection context uses.
func Compile(text string, origin sheet.Origin, media sheet.Media, table *intern.Table) (*sheet.Stylesheet, error) {
	parsed, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("douceur: %w", err)
	}
	return Wrap(parsed, origin, media, table)
}

// Wrap compiles a stylesheet douceur has already parsed.
func Wrap(parsed *css.Stylesheet, origin sheet.Origin, media sheet.Media, table *intern.Table) (*sheet.Stylesheet, error) {
	s := sheet.New(origin, media)
	for _, r := range parsed.Rules {
		if err := compileRule(s, r, sheet.MediaAll, table); err != nil {
			return nil, err
		}
	}
	s.Freeze()
	return s, nil
}

// CompileDeclarations compiles the declarations of a style attribute into
// a single code block. Adapters call this from their InlineStyle method.
func CompileDeclarations(text string, table *intern.Table) (bytecode.Code, error) {
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return bytecode.Code{}, fmt.Errorf("douceur: %w", err)
	}
	return compileDeclarations(decls, table), nil
}

func compileRule(s *sheet.Stylesheet, r *css.Rule, media sheet.Media, table *intern.Table) error {
	switch r.Kind {
	case css.QualifiedRule:
		return compileQualified(s, r, media, table)
	case css.AtRule:
		switch strings.ToLower(r.Name) {
		case "@media":
			m, ok := MediaList(r.Prelude)
			if !ok {
				tracer().Infof("skipping unsupported media query %q", r.Prelude)
				return nil
			}
			if m &= media; m == 0 {
				return nil
			}
			for _, rr := range r.Rules {
				if err := compileRule(s, rr, m, table); err != nil {
					return err
				}
			}
		default:
			tracer().Infof("skipping at-rule %s %q", r.Name, r.Prelude)
		}
	}
	return nil
}

func compileQualified(s *sheet.Stylesheet, r *css.Rule, media sheet.Media, table *intern.Table) error {
	if len(r.Selectors) == 0 {
		return nil
	}
	sels := make([]*sheet.Selector, 0, len(r.Selectors))
	for _, text := range r.Selectors {
		sel, err := ParseSelector(text, table)
		if err != nil {
			// one bad selector invalidates the whole group
			tracer().Infof("dropping rule: %v", err)
			return nil
		}
		sels = append(sels, sel)
	}
	code := compileDeclarations(r.Declarations, table)
	if code.Empty() {
		return nil
	}
	return s.AddRule(&sheet.Rule{Selectors: sels, Code: code, Media: media})
}

func compileDeclarations(decls []*css.Declaration, table *intern.Table) bytecode.Code {
	b := bytecode.NewBuilder()
	for _, d := range decls {
		if err := encodeDeclaration(b, d, table); err != nil {
			tracer().Infof("dropping declaration %q: %v", d.Property, err)
		}
	}
	return b.Code()
}

// encodeDeclaration compiles one declaration. Encoders validate the whole
// value before they emit the first word, so a failing declaration never
// leaves partial code behind.
func encodeDeclaration(b *bytecode.Builder, d *css.Declaration, table *intern.Table) error {
	name := strings.ToLower(strings.TrimSpace(d.Property))
	var flags bytecode.Flags
	if d.Important {
		flags |= bytecode.FlagImportant
	}
	terms, err := parseTerms(d.Value)
	if err != nil {
		return err
	}
	if len(terms) == 0 {
		return fmt.Errorf("%w: empty value", ErrSyntax)
	}
	if len(terms) == 1 && terms[0].keyword("inherit") {
		return encodeInherit(b, name, flags)
	}
	if sh, ok := shorthands[name]; ok {
		return sh(b, flags, terms, table)
	}
	enc, ok := encoders[name]
	if !ok {
		return fmt.Errorf("%w: unknown property %q", ErrSyntax, name)
	}
	return enc(b, flags, terms, table)
}

// encodeInherit emits the inherit op of a longhand, or one per longhand of
// a shorthand.
func encodeInherit(b *bytecode.Builder, name string, flags bytecode.Flags) error {
	if p, ok := style.PropertyByName(name); ok {
		b.Op(p, flags|bytecode.FlagInherit, 0)
		return nil
	}
	longhands, ok := shorthandProps[name]
	if !ok {
		return fmt.Errorf("%w: unknown property %q", ErrSyntax, name)
	}
	for _, p := range longhands {
		b.Op(p, flags|bytecode.FlagInherit, 0)
	}
	return nil
}

// MediaList interprets a comma separated list of media types, the form
// found in @media preludes and in the media attribute of HTML style
// elements. Only plain media types are supported; queries with features or
// the 'not' keyword report false. Unknown media types match nothing but do
// not invalidate the list.
func MediaList(list string) (sheet.Media, bool) {
	var m sheet.Media
	for _, part := range strings.Split(list, ",") {
		fields := strings.Fields(strings.ToLower(part))
		if len(fields) > 0 && fields[0] == "only" {
			fields = fields[1:]
		}
		if len(fields) != 1 {
			return 0, false
		}
		bit, ok := sheet.MediaByName(fields[0])
		if !ok {
			continue
		}
		m |= bit
	}
	return m, true
}
