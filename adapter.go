package cascade

import (
	"github.com/npillmayer/cascade/bytecode"
	"github.com/npillmayer/cascade/intern"
	"github.com/npillmayer/cascade/style"
)

// Adapter is the engine's only view of a client's document tree. N is the
// client's node type; the engine never inspects it, every question goes
// through the adapter.
//
// All string answers must be handles from the one intern table the context
// was created with; the engine compares them by identity. Returning an
// error from any method aborts the selection run with that error. Traversal
// methods report absence with false instead of an error.
type Adapter[N any] interface {
	// ElementName returns the node's element name.
	ElementName(n N) (*intern.String, error)

	// ID returns the node's id, or nil if it has none.
	ID(n N) (*intern.String, error)

	// Classes returns the node's classes, or nil if it has none.
	Classes(n N) ([]*intern.String, error)

	// Attribute returns the value of the named attribute and whether it is
	// present. A present attribute with an empty value returns the interned
	// empty string.
	Attribute(n N, name *intern.String) (*intern.String, bool, error)

	// ParentElement returns the nearest ancestor element, traversal order
	// parent-wards. false means n is the root element.
	ParentElement(n N) (N, bool, error)

	// PrevSiblingElement returns the closest preceding sibling element.
	// false means n is its parent's first element child.
	PrevSiblingElement(n N) (N, bool, error)

	// IsLink reports whether the node is a link source.
	IsLink(n N) (bool, error)

	// IsVisited reports whether the node is a visited link.
	IsVisited(n N) (bool, error)

	// IsHover reports whether the node is hovered.
	IsHover(n N) (bool, error)

	// IsActive reports whether the node is activated.
	IsActive(n N) (bool, error)

	// IsFocus reports whether the node has focus.
	IsFocus(n N) (bool, error)

	// Lang returns the node's content language, usually inherited from the
	// closest ancestor carrying a language attribute, or nil if unknown.
	Lang(n N) (*intern.String, error)

	// PresentationalHints translates the node's presentational markup
	// (HTML's align, bgcolor and friends) into a declaration block. Hints
	// cascade as author-origin declarations with zero specificity, below
	// every author rule. Return an empty block or ErrNotSet when the node
	// has none.
	PresentationalHints(n N) (bytecode.Code, error)

	// InlineStyle returns the node's compiled style attribute. Inline
	// declarations cascade as author-origin declarations outweighing any
	// selector's specificity. Return an empty block or ErrNotSet when the
	// node has none.
	InlineStyle(n N) (bytecode.Code, error)

	// UADefault returns the user agent's default declaration for property
	// p. It is consulted for the root element only, for inherited
	// properties no declaration reached; without it such properties fall
	// back to their initial values. Return an empty block or ErrNotSet
	// when the built-in initial value is fine.
	UADefault(p style.PropertyID) (bytecode.Code, error)
}
