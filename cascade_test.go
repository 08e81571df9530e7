package cascade

import (
	"errors"
	"testing"

	"github.com/npillmayer/cascade/bytecode"
	"github.com/npillmayer/cascade/sheet"
	"github.com/npillmayer/cascade/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestHandlersComplete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	if missing := handlersComplete(); len(missing) > 0 {
		t.Fatalf("properties without handler entry: %v", missing)
	}
}

func TestCascadeRankOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	ranks := []int{
		cascadeRank(sheet.OriginUA, false),
		cascadeRank(sheet.OriginUser, false),
		cascadeRank(sheet.OriginAuthor, false),
		cascadeRank(sheet.OriginAuthor, true),
		cascadeRank(sheet.OriginUser, true),
	}
	for i := 1; i < len(ranks); i++ {
		if ranks[i-1] >= ranks[i] {
			t.Errorf("rank %d (=%d) should be below rank %d (=%d)",
				i-1, ranks[i-1], i, ranks[i])
		}
	}
	if cascadeRank(sheet.OriginUA, true) != cascadeRank(sheet.OriginUA, false) {
		t.Errorf("importance must not matter for user agent declarations")
	}
}

// TestOutranksMatrix quantifies the precedence decision over every pair of
// origin and importance, at equal specificity: the incoming declaration
// wins exactly when its collapsed rank is at least the incumbent's, since
// declarations arrive in document order.
func TestOutranksMatrix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	type level struct {
		origin    sheet.Origin
		important bool
	}
	levels := []level{
		{sheet.OriginUA, false},
		{sheet.OriginUA, true},
		{sheet.OriginUser, false},
		{sheet.OriginUser, true},
		{sheet.OriginAuthor, false},
		{sheet.OriginAuthor, true},
	}
	for _, ex := range levels {
		for _, in := range levels {
			ps := &propState{}
			ps.record(ex.origin, ex.important, 0)
			got := ps.outranks(in.origin, in.important, 0)
			want := cascadeRank(in.origin, in.important) >= cascadeRank(ex.origin, ex.important)
			if got != want {
				t.Errorf("existing (%v, important=%v), incoming (%v, important=%v): got %v, want %v",
					ex.origin, ex.important, in.origin, in.important, got, want)
			}
		}
	}
}

func TestOutranksSpotChecks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	// user important declarations survive author important ones
	ps := &propState{}
	ps.record(sheet.OriginUser, true, 0)
	if ps.outranks(sheet.OriginAuthor, true, sheet.SpecID) {
		t.Errorf("author !important must not beat user !important")
	}
	// user beats user agent at any importance
	ps = &propState{}
	ps.record(sheet.OriginUA, true, sheet.SpecID)
	if !ps.outranks(sheet.OriginUser, false, 0) {
		t.Errorf("user declarations must beat user agent declarations")
	}
	// unset is always beaten
	ps = &propState{}
	if !ps.outranks(sheet.OriginUA, false, 0) {
		t.Errorf("anything must beat an unset property")
	}
	// equal level: specificity decides
	ps = &propState{}
	ps.record(sheet.OriginAuthor, false, sheet.SpecID)
	if ps.outranks(sheet.OriginAuthor, false, sheet.SpecClass) {
		t.Errorf("lower specificity must not beat higher specificity")
	}
	if !ps.outranks(sheet.OriginAuthor, false, sheet.SpecID) {
		t.Errorf("equal specificity must favor the later declaration")
	}
}

func TestCascadeCodeWinnersAndLosers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	red := style.MakeRGB(0xff, 0, 0)
	blue := style.MakeRGB(0, 0, 0xff)
	win := bytecode.NewBuilder().
		Op(style.PropColor, 0, uint32(style.ColorSet)).Color(red).
		Code()
	lose := bytecode.NewBuilder().
		Op(style.PropColor, 0, uint32(style.ColorSet)).Color(blue).
		Op(style.PropDisplay, 0, uint32(style.DisplayBlock)).
		Code()

	sel := newSelection()
	if err := sel.cascadeCode(win, sheet.OriginAuthor, sheet.SpecID); err != nil {
		t.Fatalf("cascade failed: %v", err)
	}
	if err := sel.cascadeCode(lose, sheet.OriginAuthor, sheet.SpecElement); err != nil {
		t.Fatalf("cascade failed: %v", err)
	}
	if k, c := sel.result.Color(); k != style.ColorSet || c != red {
		t.Errorf("expected red to hold, got kind %d color %v", k, c)
	}
	// the losing block's display op must still have been applied
	if d := sel.result.Display(); d != style.DisplayBlock {
		t.Errorf("expected display block from second block, got %d", d)
	}
}

func TestCascadeCodeImportant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	red := style.MakeRGB(0xff, 0, 0)
	blue := style.MakeRGB(0, 0, 0xff)
	first := bytecode.NewBuilder().
		Op(style.PropColor, bytecode.FlagImportant, uint32(style.ColorSet)).Color(red).
		Code()
	second := bytecode.NewBuilder().
		Op(style.PropColor, 0, uint32(style.ColorSet)).Color(blue).
		Code()

	sel := newSelection()
	if err := sel.cascadeCode(first, sheet.OriginAuthor, 0); err != nil {
		t.Fatalf("cascade failed: %v", err)
	}
	if err := sel.cascadeCode(second, sheet.OriginAuthor, 0); err != nil {
		t.Fatalf("cascade failed: %v", err)
	}
	if k, c := sel.result.Color(); k != style.ColorSet || c != red {
		t.Errorf("important red must survive a later normal blue, got %v", c)
	}
}

func TestCascadeCodeMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	// color announces a payload it does not carry
	code := bytecode.NewBuilder().
		Op(style.PropColor, 0, uint32(style.ColorSet)).
		Code()
	sel := newSelection()
	err := sel.cascadeCode(code, sheet.OriginAuthor, 0)
	if !errors.Is(err, ErrInvalidBytecode) {
		t.Errorf("expected ErrInvalidBytecode, got %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	sel := newSelection()
	sel.applyDefaults()
	// non-inherited properties take their initial values
	if d := sel.result.Display(); d != style.DisplayInline {
		t.Errorf("display should default to inline, got %d", d)
	}
	if k, _ := sel.result.BorderColor(style.SideTop); k != style.ColorCurrent {
		t.Errorf("border-top-color should default to currentColor, got %d", k)
	}
	// inherited properties keep the inherit placeholder
	if k, _ := sel.result.Color(); k != style.ColorInherit {
		t.Errorf("color should stay on the inherit placeholder, got %d", k)
	}
	if k, _ := sel.result.FontSize(); k != style.FontSizeInherit {
		t.Errorf("font-size should stay on the inherit placeholder, got %d", k)
	}
	// no extension block may have been allocated
	if sel.result.HasUncommonBlock() || sel.result.HasPageBlock() || sel.result.HasAuralBlock() {
		t.Errorf("defaulting must not allocate extension blocks")
	}
}

func TestApplyDefaultsIntoExistingBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	sel := newSelection()
	// an explicit declaration allocated the page block
	code := bytecode.NewBuilder().
		Op(style.PropOrphans, 0, uint32(style.CountSet)).Int32(4).
		Code()
	if err := sel.cascadeCode(code, sheet.OriginAuthor, 0); err != nil {
		t.Fatalf("cascade failed: %v", err)
	}
	sel.applyDefaults()
	if v := sel.result.PageBreakAfter(); v != style.PageBreakAuto {
		t.Errorf("page-break-after should default to auto inside an existing block, got %d", v)
	}
	if k, n := sel.result.Orphans(); k != style.CountSet || n != 4 {
		t.Errorf("orphans must keep its cascaded value, got %d/%d", k, n)
	}
}
