package cascade

import "errors"

var (
	// ErrBadParameter is returned for nil or out-of-range arguments.
	ErrBadParameter = errors.New("bad parameter")

	// ErrInvalidBytecode is returned when a declaration block cannot be
	// executed: unknown ops, truncated operands, or values no handler
	// accepts.
	ErrInvalidBytecode = errors.New("invalid style bytecode")

	// ErrInvalidSelector is returned when a rule carries a selector the
	// engine cannot match.
	ErrInvalidSelector = errors.New("invalid selector")

	// ErrNotSet signals absence of an optional value. Adapters may return
	// it from InlineStyle or PresentationalHints instead of an empty block;
	// the engine treats both the same.
	ErrNotSet = errors.New("not set")
)
