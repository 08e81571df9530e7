package cascade

import (
	"fmt"

	"github.com/npillmayer/cascade/bytecode"
	"github.com/npillmayer/cascade/sheet"
	"github.com/npillmayer/cascade/style"
)

// propState tracks, per property, the strongest declaration seen so far in
// a selection run.
type propState struct {
	set       bool
	important bool
	origin    sheet.Origin
	spec      sheet.Specificity
}

// selection is the working state of one SelectStyle run.
type selection struct {
	props  [style.NProperties]propState
	result *style.ComputedStyle
}

func newSelection() *selection {
	return &selection{result: style.NewComputedStyle()}
}

// cascadeRank collapses origin and importance into one comparable level.
// User agent importance is meaningless; author importance ranks below user
// importance.
func cascadeRank(origin sheet.Origin, important bool) int {
	switch {
	case origin == sheet.OriginUA:
		return 0
	case origin == sheet.OriginUser && !important:
		return 1
	case origin == sheet.OriginAuthor && !important:
		return 2
	case origin == sheet.OriginAuthor:
		return 3
	default: // user important
		return 4
	}
}

// outranks decides whether an incoming declaration beats the one currently
// holding the property. Equal rank and specificity yields true: callers
// feed declarations in document order, so the later one wins full ties.
func (ps *propState) outranks(origin sheet.Origin, important bool, spec sheet.Specificity) bool {
	if !ps.set {
		return true
	}
	in, ex := cascadeRank(origin, important), cascadeRank(ps.origin, ps.important)
	if in != ex {
		return in > ex
	}
	return spec >= ps.spec
}

func (ps *propState) record(origin sheet.Origin, important bool, spec sheet.Specificity) {
	ps.set = true
	ps.origin = origin
	ps.important = important
	ps.spec = spec
}

// cascadeCode runs one declaration block against the selection state.
// Winning declarations write the result style and take over the property
// state; losing ones are skipped over. The block must be well-formed; a
// decode failure aborts with ErrInvalidBytecode.
func (st *selection) cascadeCode(code bytecode.Code, origin sheet.Origin, spec sheet.Specificity) error {
	cur := code.Cursor()
	for !cur.Done() {
		op, err := cur.NextOp()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidBytecode, err)
		}
		ps := &st.props[op.Property]
		if !ps.outranks(origin, op.Important(), spec) {
			if err := bytecode.Skip(cur, op); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidBytecode, err)
			}
			continue
		}
		ent := &dispatch[op.Property]
		if op.Inherit() {
			ent.reset(st.result)
		} else if err := ent.apply(op, cur, st.result); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidBytecode, err)
		}
		ps.record(origin, op.Important(), spec)
	}
	return nil
}

// applyDefaults finishes the cascade: properties no declaration decided
// fall back to the inherit placeholder (inherited properties) or their
// initial value (everything else). Initial values of extension-block
// properties are only written into blocks that already exist; a missing
// block reads as all-initial anyway.
func (st *selection) applyDefaults() {
	for p := style.PropertyID(0); p < style.NProperties; p++ {
		if st.props[p].set || p.Inherited() {
			continue
		}
		if b := p.Block(); b != style.BlockCommon && !st.result.HasBlock(b) {
			continue
		}
		dispatch[p].initial(st.result)
	}
}
