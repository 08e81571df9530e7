package sheet

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cascade/intern"
)

// Specificity is the packed specificity of a whole selector chain:
// id count, class count and element count in descending byte lanes.
// Comparing two specificities numerically compares them in cascade order.
type Specificity uint32

const (
	// SpecElement is the weight of an element name or pseudo-element.
	SpecElement Specificity = 1 << 8
	// SpecClass is the weight of a class, attribute or pseudo-class detail.
	SpecClass Specificity = 1 << 16
	// SpecID is the weight of an id detail.
	SpecID Specificity = 1 << 24
	// SpecInline outweighs any selector; declarations from a style attribute
	// cascade with it.
	SpecInline Specificity = 1 << 30
)

func (s Specificity) String() string {
	if s&SpecInline != 0 {
		return "(style-attr)"
	}
	return fmt.Sprintf("(%d,%d,%d)", s>>24&0xff, s>>16&0xff, s>>8&0xff)
}

// Combinator relates a compound selector to the compound on its left.
type Combinator uint8

const (
	// CombNone marks the leftmost compound of a chain.
	CombNone Combinator = iota
	// CombDescendant is the whitespace combinator.
	CombDescendant
	// CombChild is '>'.
	CombChild
	// CombAdjacent is '+'.
	CombAdjacent
	// CombSibling is '~'.
	CombSibling
)

func (c Combinator) String() string {
	switch c {
	case CombDescendant:
		return " "
	case CombChild:
		return " > "
	case CombAdjacent:
		return " + "
	case CombSibling:
		return " ~ "
	}
	return ""
}

// DetailKind discriminates the matchable details of a compound selector.
type DetailKind uint8

const (
	DetailElement DetailKind = iota
	DetailUniversal
	DetailClass
	DetailID
	DetailAttr          // [name]
	DetailAttrEq        // [name=value]
	DetailAttrIncludes  // [name~=value]
	DetailAttrDashMatch // [name|=value]
	DetailPseudoClass
	DetailPseudoElement
)

// PseudoClass enumerates the supported pseudo-classes.
type PseudoClass uint8

const (
	PseudoNone PseudoClass = iota
	PseudoFirstChild
	PseudoLink
	PseudoVisited
	PseudoHover
	PseudoActive
	PseudoFocus
	PseudoLang // carries the language range in Detail.Value
)

var pseudoClassNames = map[string]PseudoClass{
	"first-child": PseudoFirstChild,
	"link":        PseudoLink,
	"visited":     PseudoVisited,
	"hover":       PseudoHover,
	"active":      PseudoActive,
	"focus":       PseudoFocus,
	"lang":        PseudoLang,
}

// PseudoClassByName maps a pseudo-class name (without colon) to its tag.
func PseudoClassByName(name string) (PseudoClass, bool) {
	p, ok := pseudoClassNames[strings.ToLower(name)]
	return p, ok
}

// Detail is one matchable condition of a compound selector.
type Detail struct {
	Kind   DetailKind
	Name   *intern.String // element, class, id, attribute or pseudo name
	Value  *intern.String // attribute comparison value or :lang range
	Pseudo PseudoClass
}

// Selector is one compound selector. Compounds chain leftward through Prev;
// the rightmost compound is the subject of the chain and carries the chain's
// specificity and the owning rule.
type Selector struct {
	Details []Detail
	Comb    Combinator // relation to Prev
	Prev    *Selector
	Spec    Specificity
	Rule    *Rule
}

// ChainSpecificity computes the specificity of the whole chain ending at
// sel. Element names and pseudo-elements weigh SpecElement, classes,
// attributes and pseudo-classes SpecClass, ids SpecID; the universal
// selector weighs nothing.
func ChainSpecificity(sel *Selector) Specificity {
	var spec Specificity
	for s := sel; s != nil; s = s.Prev {
		for _, d := range s.Details {
			switch d.Kind {
			case DetailElement, DetailPseudoElement:
				spec += SpecElement
			case DetailClass, DetailAttr, DetailAttrEq,
				DetailAttrIncludes, DetailAttrDashMatch, DetailPseudoClass:
				spec += SpecClass
			case DetailID:
				spec += SpecID
			}
		}
	}
	return spec
}

func (d Detail) String() string {
	switch d.Kind {
	case DetailElement:
		return d.Name.String()
	case DetailUniversal:
		return "*"
	case DetailClass:
		return "." + d.Name.String()
	case DetailID:
		return "#" + d.Name.String()
	case DetailAttr:
		return "[" + d.Name.String() + "]"
	case DetailAttrEq:
		return "[" + d.Name.String() + "=" + d.Value.String() + "]"
	case DetailAttrIncludes:
		return "[" + d.Name.String() + "~=" + d.Value.String() + "]"
	case DetailAttrDashMatch:
		return "[" + d.Name.String() + "|=" + d.Value.String() + "]"
	case DetailPseudoClass:
		if d.Value != nil {
			return ":" + d.Name.String() + "(" + d.Value.String() + ")"
		}
		return ":" + d.Name.String()
	case DetailPseudoElement:
		return "::" + d.Name.String()
	}
	return "?"
}

// String reconstructs the selector text of the whole chain.
func (sel *Selector) String() string {
	var sb strings.Builder
	sel.write(&sb)
	return sb.String()
}

func (sel *Selector) write(sb *strings.Builder) {
	if sel.Prev != nil {
		sel.Prev.write(sb)
		sb.WriteString(sel.Comb.String())
	}
	for _, d := range sel.Details {
		sb.WriteString(d.String())
	}
}

// bucket picks the index bucket for the chain: the rightmost compound's id
// if it has one, else its first class, else its element name, else the
// universal bucket.
func (sel *Selector) bucket() (DetailKind, *intern.String) {
	var class *intern.String
	var elem *intern.String
	for _, d := range sel.Details {
		switch d.Kind {
		case DetailID:
			return DetailID, d.Name
		case DetailClass:
			if class == nil {
				class = d.Name
			}
		case DetailElement:
			elem = d.Name
		}
	}
	if class != nil {
		return DetailClass, class
	}
	if elem != nil {
		return DetailElement, elem.Folded()
	}
	return DetailUniversal, nil
}
