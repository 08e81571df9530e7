package cascade

import (
	"github.com/npillmayer/cascade/intern"
	"github.com/npillmayer/cascade/sheet"
	"github.com/npillmayer/cascade/style"
)

// FontSizeFunc resolves a font-size declaration to an absolute length.
// parent is the parent's already-absolute font size; the zero Length stands
// for "no parent", making the user agent default apply.
type FontSizeFunc func(parent style.Length, k style.FontSizeKind, v style.Length) (style.Length, error)

// ExRatioFunc returns the x-height of the given font size as a fraction of
// the em square. Without font metrics at hand the usual estimate is 0.5.
type ExRatioFunc func(fontSize style.Length) style.Fixed

type config struct {
	fontSize FontSizeFunc
	exRatio  ExRatioFunc
}

// Option configures a Context.
type Option func(*config)

// WithFontSizeFunc installs a font size resolver, typically backed by the
// user agent's font tables. The default is DefaultFontSize.
func WithFontSizeFunc(f FontSizeFunc) Option {
	return func(c *config) { c.fontSize = f }
}

// WithExRatio installs an x-height estimator backed by real font metrics.
func WithExRatio(f ExRatioFunc) Option {
	return func(c *config) { c.exRatio = f }
}

// Context is a selection context: an adapter onto one document, the intern
// table shared by document and stylesheets, and an ordered list of sheets.
// Sheet order is cascade-relevant; within equal origin, importance and
// specificity, declarations from later sheets win.
//
// Mutating the sheet list is not safe concurrently with selection; a
// context whose list no longer changes may serve concurrent SelectStyle
// calls.
type Context[N any] struct {
	adapter Adapter[N]
	table   *intern.Table
	sheets  []*sheet.Stylesheet
	cfg     config
}

// NewContext creates a selection context for a document seen through
// adapter. All interned strings of sheets and adapter answers must come
// from table.
func NewContext[N any](adapter Adapter[N], table *intern.Table, opts ...Option) (*Context[N], error) {
	if adapter == nil || table == nil {
		return nil, ErrBadParameter
	}
	cx := &Context[N]{
		adapter: adapter,
		table:   table,
		cfg: config{
			fontSize: DefaultFontSize,
			exRatio:  defaultExRatio,
		},
	}
	for _, opt := range opts {
		opt(&cx.cfg)
	}
	return cx, nil
}

// Table returns the context's intern table.
func (cx *Context[N]) Table() *intern.Table { return cx.table }

// SheetCount returns the number of registered sheets.
func (cx *Context[N]) SheetCount() int { return len(cx.sheets) }

// Sheet returns the sheet at position i.
func (cx *Context[N]) Sheet(i int) (*sheet.Stylesheet, error) {
	if i < 0 || i >= len(cx.sheets) {
		return nil, ErrBadParameter
	}
	return cx.sheets[i], nil
}

// AppendSheet adds a sheet at the end of the cascade order.
func (cx *Context[N]) AppendSheet(s *sheet.Stylesheet) error {
	if s == nil {
		return ErrBadParameter
	}
	s.Freeze()
	cx.sheets = append(cx.sheets, s)
	tracer().Infof("context: appended %s sheet #%d (%d rules)", s.Origin(), len(cx.sheets)-1, len(s.Rules()))
	return nil
}

// InsertSheet adds a sheet before the sheet at position i. i may equal
// SheetCount, which appends.
func (cx *Context[N]) InsertSheet(s *sheet.Stylesheet, i int) error {
	if s == nil || i < 0 || i > len(cx.sheets) {
		return ErrBadParameter
	}
	s.Freeze()
	cx.sheets = append(cx.sheets, nil)
	copy(cx.sheets[i+1:], cx.sheets[i:])
	cx.sheets[i] = s
	return nil
}

// RemoveSheet removes the sheet at position i.
func (cx *Context[N]) RemoveSheet(i int) error {
	if i < 0 || i >= len(cx.sheets) {
		return ErrBadParameter
	}
	cx.sheets = append(cx.sheets[:i], cx.sheets[i+1:]...)
	return nil
}
