package htmltree

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/cascade"
	"github.com/npillmayer/cascade/bytecode"
	"github.com/npillmayer/cascade/intern"
	"github.com/npillmayer/cascade/style"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// VisitedFunc reports whether the link target href has been visited,
// typically backed by the user agent's history.
type VisitedFunc func(href string) bool

// StateFunc reports a dynamic interaction state of a node.
type StateFunc func(n *html.Node) bool

// Option configures an Adapter.
type Option func(*Adapter)

// WithVisited installs the :visited oracle.
func WithVisited(f VisitedFunc) Option {
	return func(a *Adapter) { a.visited = f }
}

// WithHover installs the :hover oracle.
func WithHover(f StateFunc) Option {
	return func(a *Adapter) { a.hover = f }
}

// WithActive installs the :active oracle.
func WithActive(f StateFunc) Option {
	return func(a *Adapter) { a.active = f }
}

// WithFocus installs the :focus oracle.
func WithFocus(f StateFunc) Option {
	return func(a *Adapter) { a.focus = f }
}

// Adapter implements cascade.Adapter for *html.Node. Every handle it
// returns comes from the intern table given to New, which must be the
// table the selection context and the compiled sheets share.
//
// Nodes handed to the selection run must be element nodes; the html
// package's text, comment and document nodes carry no style.
type Adapter struct {
	table   *intern.Table
	visited VisitedFunc
	hover   StateFunc
	active  StateFunc
	focus   StateFunc

	uaOnce sync.Once
	ua     map[style.PropertyID]bytecode.Code
}

// New creates an adapter interning through table.
func New(table *intern.Table, opts ...Option) *Adapter {
	a := &Adapter{table: table}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var _ cascade.Adapter[*html.Node] = &Adapter{}

// attrVal returns the value of the attribute with the given lowercase key.
// The html tokenizer lowercases attribute names of HTML content, so a
// plain comparison suffices.
func attrVal(n *html.Node, key string) (string, bool) {
	for _, att := range n.Attr {
		if att.Namespace == "" && att.Key == key {
			return att.Val, true
		}
	}
	return "", false
}

// ElementName returns the node's intern'd tag name.
func (a *Adapter) ElementName(n *html.Node) (*intern.String, error) {
	if n == nil || n.Type != html.ElementNode {
		return nil, fmt.Errorf("%w: not an element node", cascade.ErrBadParameter)
	}
	return a.table.Intern(n.Data), nil
}

// ID returns the node's id attribute, or nil.
func (a *Adapter) ID(n *html.Node) (*intern.String, error) {
	if v, ok := attrVal(n, "id"); ok {
		return a.table.Intern(v), nil
	}
	return nil, nil
}

// Classes returns the node's classes, split from the class attribute.
func (a *Adapter) Classes(n *html.Node) ([]*intern.String, error) {
	v, ok := attrVal(n, "class")
	if !ok {
		return nil, nil
	}
	fields := strings.Fields(v)
	if len(fields) == 0 {
		return nil, nil
	}
	classes := make([]*intern.String, len(fields))
	for i, f := range fields {
		classes[i] = a.table.Intern(f)
	}
	return classes, nil
}

// Attribute looks up an attribute by name. HTML attribute names are case
// insensitive; the name handle's folded twin is the lookup key.
func (a *Adapter) Attribute(n *html.Node, name *intern.String) (*intern.String, bool, error) {
	if name == nil {
		return nil, false, nil
	}
	if v, ok := attrVal(n, name.Folded().String()); ok {
		return a.table.Intern(v), true, nil
	}
	return nil, false, nil
}

// ParentElement returns the nearest ancestor element. The document node
// above <html> ends the walk.
func (a *Adapter) ParentElement(n *html.Node) (*html.Node, bool, error) {
	if n == nil {
		return nil, false, nil
	}
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return p, true, nil
		}
	}
	return nil, false, nil
}

// PrevSiblingElement returns the closest preceding sibling element,
// skipping text and comment nodes.
func (a *Adapter) PrevSiblingElement(n *html.Node) (*html.Node, bool, error) {
	if n == nil {
		return nil, false, nil
	}
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			return s, true, nil
		}
	}
	return nil, false, nil
}

// IsLink reports whether n is a source anchor: an a, area or link element
// carrying an href attribute.
func (a *Adapter) IsLink(n *html.Node) (bool, error) {
	switch n.DataAtom {
	case atom.A, atom.Area, atom.Link:
		_, ok := attrVal(n, "href")
		return ok, nil
	}
	return false, nil
}

// IsVisited reports whether n is a link whose target the visited oracle
// knows. Without an oracle no link is visited.
func (a *Adapter) IsVisited(n *html.Node) (bool, error) {
	if a.visited == nil {
		return false, nil
	}
	if ok, _ := a.IsLink(n); !ok {
		return false, nil
	}
	href, _ := attrVal(n, "href")
	return a.visited(href), nil
}

// IsHover consults the hover oracle.
func (a *Adapter) IsHover(n *html.Node) (bool, error) {
	return a.hover != nil && a.hover(n), nil
}

// IsActive consults the active oracle.
func (a *Adapter) IsActive(n *html.Node) (bool, error) {
	return a.active != nil && a.active(n), nil
}

// IsFocus consults the focus oracle.
func (a *Adapter) IsFocus(n *html.Node) (bool, error) {
	return a.focus != nil && a.focus(n), nil
}

// Lang returns the node's content language from the closest lang or
// xml:lang attribute, walking ancestor-wards.
func (a *Adapter) Lang(n *html.Node) (*intern.String, error) {
	for e := n; e != nil; e = e.Parent {
		if e.Type != html.ElementNode {
			continue
		}
		if v, ok := attrVal(e, "lang"); ok {
			return a.table.Intern(v), nil
		}
		if v, ok := attrVal(e, "xml:lang"); ok {
			return a.table.Intern(v), nil
		}
	}
	return nil, nil
}
