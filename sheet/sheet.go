package sheet

import (
	"errors"
	"sort"

	"github.com/npillmayer/cascade/bytecode"
	"github.com/npillmayer/cascade/intern"
)

// Origin ranks the source of a stylesheet. The cascade weighs origins in
// ascending order: user agent, then user, then author.
type Origin uint8

const (
	OriginUA Origin = iota
	OriginUser
	OriginAuthor
)

func (o Origin) String() string {
	switch o {
	case OriginUA:
		return "user-agent"
	case OriginUser:
		return "user"
	case OriginAuthor:
		return "author"
	}
	return "?"
}

// ErrNoSelector is returned when a rule without a selector chain is added to
// a sheet.
var ErrNoSelector = errors.New("rule has no selector")

// Rule is one style rule: alternative selector chains, the compiled
// declaration block, and the media the rule is conditioned on through
// enclosing @media blocks.
type Rule struct {
	Selectors []*Selector
	Code      bytecode.Code
	Media     Media

	seq uint32
}

// Seq returns the rule's position within its sheet. Together with the
// sheet's position in the selection context it makes up the source order
// the cascade breaks full ties with.
func (r *Rule) Seq() uint32 { return r.seq }

// Stylesheet is an ordered collection of rules plus the selector index the
// engine matches against. Build it up with AddRule, then Freeze it;
// afterwards it is read-only and safe for concurrent matching.
type Stylesheet struct {
	origin   Origin
	media    Media
	href     string
	disabled bool
	rules    []*Rule

	byElement map[*intern.String][]*Selector
	byID      map[*intern.String][]*Selector
	byClass   map[*intern.String][]*Selector
	universal []*Selector
	sorted    bool
}

// New creates an empty stylesheet for the given origin, applicable to the
// given media.
func New(origin Origin, media Media) *Stylesheet {
	return &Stylesheet{
		origin:    origin,
		media:     media,
		byElement: make(map[*intern.String][]*Selector),
		byID:      make(map[*intern.String][]*Selector),
		byClass:   make(map[*intern.String][]*Selector),
		sorted:    true,
	}
}

// Origin returns the sheet's origin.
func (s *Stylesheet) Origin() Origin { return s.origin }

// Media returns the media the sheet applies to.
func (s *Stylesheet) Media() Media { return s.media }

// Href returns the location the sheet was loaded from, if any.
func (s *Stylesheet) Href() string { return s.href }

// SetHref records the location the sheet was loaded from.
func (s *Stylesheet) SetHref(href string) { s.href = href }

// Disabled reports whether the sheet is switched off. Disabled sheets stay
// in their selection context slot but contribute nothing.
func (s *Stylesheet) Disabled() bool { return s.disabled }

// SetDisabled switches the sheet off or on.
func (s *Stylesheet) SetDisabled(d bool) { s.disabled = d }

// Rules returns the sheet's rules in document order. Callers must not
// modify the slice.
func (s *Stylesheet) Rules() []*Rule { return s.rules }

// AddRule appends a rule. The rule's selectors get their chain specificity
// computed and are indexed under their bucket detail; the rule's sequence
// number is its document position.
func (s *Stylesheet) AddRule(r *Rule) error {
	if r == nil || len(r.Selectors) == 0 {
		return ErrNoSelector
	}
	for _, sel := range r.Selectors {
		if sel == nil || len(sel.Details) == 0 {
			return ErrNoSelector
		}
	}
	if r.Media == 0 {
		r.Media = MediaAll
	}
	r.seq = uint32(len(s.rules))
	s.rules = append(s.rules, r)
	for _, sel := range r.Selectors {
		sel.Rule = r
		sel.Spec = ChainSpecificity(sel)
		switch kind, key := sel.bucket(); kind {
		case DetailID:
			s.byID[key] = append(s.byID[key], sel)
		case DetailClass:
			s.byClass[key] = append(s.byClass[key], sel)
		case DetailElement:
			s.byElement[key] = append(s.byElement[key], sel)
		default:
			s.universal = append(s.universal, sel)
		}
	}
	s.sorted = false
	tracer().Debugf("sheet %s: added rule #%d with %d selector(s)", s.origin, r.seq, len(r.Selectors))
	return nil
}

// Freeze sorts all index buckets. AddRule leaves the index dirty and Chains
// re-sorts on demand; freezing once after the last rule makes subsequent
// concurrent matching safe.
func (s *Stylesheet) Freeze() {
	s.ensureSorted()
}

func chainLess(a, b *Selector) bool {
	if a.Spec != b.Spec {
		return a.Spec < b.Spec
	}
	return a.Rule.seq < b.Rule.seq
}

func (s *Stylesheet) ensureSorted() {
	if s.sorted {
		return
	}
	for _, ch := range s.byElement {
		sortChain(ch)
	}
	for _, ch := range s.byID {
		sortChain(ch)
	}
	for _, ch := range s.byClass {
		sortChain(ch)
	}
	sortChain(s.universal)
	s.sorted = true
}

func sortChain(ch []*Selector) {
	sort.SliceStable(ch, func(i, j int) bool { return chainLess(ch[i], ch[j]) })
}

// IndexBuckets calls visit for every bucket of the selector index: the
// bucket's kind, its key (nil for the universal bucket) and its chain in
// ascending (specificity, rule order). Buckets of the same kind come in
// unspecified order. Meant for inspection and debugging.
func (s *Stylesheet) IndexBuckets(visit func(kind DetailKind, key *intern.String, chain []*Selector)) {
	s.ensureSorted()
	for key, ch := range s.byElement {
		visit(DetailElement, key, ch)
	}
	for key, ch := range s.byID {
		visit(DetailID, key, ch)
	}
	for key, ch := range s.byClass {
		visit(DetailClass, key, ch)
	}
	if len(s.universal) > 0 {
		visit(DetailUniversal, nil, s.universal)
	}
}

// Chains returns the candidate selector chains for an element: the bucket
// for its (caselessly indexed) element name, its id, each of its classes,
// and the universal bucket. Every chain comes back ascending by
// (specificity, rule order); absent buckets are omitted. The returned
// slices are shared, callers must not modify them.
func (s *Stylesheet) Chains(elem, id *intern.String, classes []*intern.String) [][]*Selector {
	s.ensureSorted()
	chains := make([][]*Selector, 0, 3+len(classes))
	if elem != nil {
		if ch := s.byElement[elem.Folded()]; len(ch) > 0 {
			chains = append(chains, ch)
		}
	}
	if id != nil {
		if ch := s.byID[id]; len(ch) > 0 {
			chains = append(chains, ch)
		}
	}
	for _, class := range classes {
		if ch := s.byClass[class]; len(ch) > 0 {
			chains = append(chains, ch)
		}
	}
	if len(s.universal) > 0 {
		chains = append(chains, s.universal)
	}
	return chains
}
