package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"runtime"

	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"

	"github.com/npillmayer/cascade"
	"github.com/npillmayer/cascade/sheet"
	"github.com/npillmayer/cascade/style"
)

// Option configures a Build call.
type Option func(*config)

type config struct {
	parent  *style.ComputedStyle
	workers int
}

// WithParentStyle supplies the composed style of the enclosing element
// for styling a subtree that is not rooted at the document's root
// element. Without it, inherited properties of such a subtree fall back
// to their initial values. Styling a complete document ignores the
// option.
func WithParentStyle(cs *style.ComputedStyle) Option {
	return func(c *config) { c.parent = cs }
}

// WithWorkers bounds the number of concurrent styling goroutines.
// Values below 1 select the number of available CPUs.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// Build styles a document: it selects and composes the style of every
// element below root and returns the corresponding styled tree. root
// may be the document node of a parse tree or any element node.
//
// Independent subtrees are styled concurrently. The context's sheet
// list must not change during the build.
func Build(cx *cascade.Context[*html.Node], root *html.Node, media sheet.Media, opts ...Option) (*Node, error) {
	if cx == nil || root == nil {
		return nil, cascade.ErrBadParameter
	}
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = runtime.GOMAXPROCS(0)
	}
	el := root
	if el.Type != html.ElementNode {
		if el = firstElement(root); el == nil {
			return nil, cascade.ErrBadParameter
		}
	}
	tracer().Debugf("styling document below <%s>", el.Data)
	b := &builder{cx: cx, media: media}
	b.group.SetLimit(cfg.workers)
	top, err := b.styleTop(el, cfg.parent)
	if err != nil {
		b.group.Wait()
		return nil, err
	}
	if err := b.descend(top); err != nil {
		b.group.Wait()
		return nil, err
	}
	if err := b.group.Wait(); err != nil {
		return nil, err
	}
	return top, nil
}

// firstElement finds the topmost element of a document fragment,
// skipping doctype and comment nodes.
func firstElement(n *html.Node) *html.Node {
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			return ch
		}
	}
	return nil
}

func hasParentElement(el *html.Node) bool {
	for p := el.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return true
		}
	}
	return false
}

type builder struct {
	cx    *cascade.Context[*html.Node]
	media sheet.Media
	group errgroup.Group
}

// styleTop styles the topmost element of the build. For the document's
// root element SelectStyle composes on its own; anywhere else the
// selected style composes against the caller-supplied parent style.
func (b *builder) styleTop(el *html.Node, parent *style.ComputedStyle) (*Node, error) {
	cs, err := b.cx.SelectStyle(el, b.media)
	if err != nil {
		return nil, err
	}
	if hasParentElement(el) {
		if cs, err = b.cx.Compose(parent, cs); err != nil {
			return nil, err
		}
	}
	return &Node{h: el, style: cs}, nil
}

// descend styles the element children of sn, handing subtrees to the
// worker group while slots are free and styling them inline otherwise.
// Children write to distinct positions of a pre-sized slice, keeping
// document order without locking.
func (b *builder) descend(sn *Node) error {
	cnt := 0
	for ch := sn.h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			cnt++
		}
	}
	if cnt == 0 {
		return nil
	}
	sn.children = make([]*Node, cnt)
	rank := 0
	for ch := sn.h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type != html.ElementNode {
			continue
		}
		el, i := ch, rank
		rank++
		task := func() error { return b.style(el, sn, i) }
		if !b.group.TryGo(task) {
			if err := task(); err != nil {
				return err
			}
		}
	}
	return nil
}

// style styles one element, links it below parent at position rank and
// continues with the element's children.
func (b *builder) style(el *html.Node, parent *Node, rank int) error {
	sel, err := b.cx.SelectStyle(el, b.media)
	if err != nil {
		return err
	}
	cs, err := b.cx.Compose(parent.style, sel)
	if err != nil {
		return err
	}
	sn := &Node{parent: parent, h: el, style: cs}
	parent.children[rank] = sn
	return b.descend(sn)
}
