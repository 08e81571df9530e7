package style

import "github.com/npillmayer/cascade/intern"

// Side indexes the four box sides in the usual CSS order.
type Side uint8

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	}
	return "?"
}

// ComputedStyle holds the computed values of all properties for one node.
// The frequently used properties live inline; the uncommon, paged media and
// aural groups sit behind pointers and are only allocated when a declaration
// actually touches them. A freshly created style is all inherit placeholders
// (the zero tags), which styling resolves in two phases: cascading fills in
// declared values, composition against the parent style replaces the
// remaining placeholders.
//
// A ComputedStyle is not safe for concurrent mutation; once fully composed
// it is read-only and may be shared freely.
type ComputedStyle struct {
	backgroundColor     RGBA
	backgroundColorKind ColorKind
	borderCollapse      BorderCollapse
	borderColor         [4]RGBA
	borderColorKind     [4]ColorKind
	borderStyle         [4]BorderStyle
	borderWidth         [4]Length
	borderWidthKind     [4]BorderWidthKind
	captionSide         CaptionSide
	clear               Clear
	color               RGBA
	colorKind           ColorKind
	direction           Direction
	display             Display
	emptyCells          EmptyCells
	floating            Float
	fontFamily          []*intern.String
	fontFamilyKind      FontFamilyKind
	fontSize            Length
	fontSizeKind        FontSizeKind
	fontStyle           FontStyle
	fontVariant         FontVariant
	fontWeight          FontWeight
	height              Length
	heightKind          SizeKind
	lineHeight          Length
	lineHeightKind      LineHeightKind
	listStylePosition   ListStylePosition
	listStyleType       ListStyleType
	margin              [4]Length
	marginKind          [4]MarginKind
	maxHeight           Length
	maxHeightKind       MaxSizeKind
	maxWidth            Length
	maxWidthKind        MaxSizeKind
	minHeight           Length
	minHeightKind       MinSizeKind
	minWidth            Length
	minWidthKind        MinSizeKind
	offset              [4]Length
	offsetKind          [4]OffsetKind
	opacity             Fixed
	opacityKind         OpacityKind
	overflow            Overflow
	padding             [4]Length
	paddingKind         [4]PaddingKind
	position            Position
	tableLayout         TableLayout
	textAlign           TextAlign
	textDecoration      TextDecoration
	textIndent          Length
	textIndentKind      TextIndentKind
	textTransform       TextTransform
	unicodeBidi         UnicodeBidi
	verticalAlign       Length
	verticalAlignKind   VerticalAlignKind
	visibility          Visibility
	whiteSpace          WhiteSpace
	width               Length
	widthKind           SizeKind
	zIndex              int32
	zIndexKind          ZIndexKind

	uncommon *uncommonStyle
	page     *pageStyle
	aural    *auralStyle
}

// uncommonStyle collects rarely used box and text properties.
type uncommonStyle struct {
	borderSpacing        [2]Length
	borderSpacingKind    BorderSpacingKind
	clip                 ClipRect
	clipKind             ClipKind
	content              []ContentItem
	contentKind          ContentKind
	counterIncrement     []Counter
	counterIncrementKind CounterKind
	counterReset         []Counter
	counterResetKind     CounterKind
	cursorURIs           []*intern.String
	cursorKind           CursorKind
	letterSpacing        Length
	letterSpacingKind    SpacingKind
	outlineColor         RGBA
	outlineColorKind     OutlineColorKind
	outlineWidth         Length
	outlineWidthKind     BorderWidthKind
	quotes               []*intern.String
	quotesKind           QuotesKind
	wordSpacing          Length
	wordSpacingKind      SpacingKind
}

// pageStyle collects the paged media properties.
type pageStyle struct {
	orphans         int32
	orphansKind     CountKind
	pageBreakAfter  PageBreak
	pageBreakBefore PageBreak
	pageBreakInside PageBreakInside
	widows          int32
	widowsKind      CountKind
}

// auralStyle collects the aural properties.
type auralStyle struct {
	pauseAfter      Length
	pauseAfterKind  PauseKind
	pauseBefore     Length
	pauseBeforeKind PauseKind
	pitch           Length
	pitchKind       PitchKind
	speak           Speak
	speechRate      Fixed
	speechRateKind  SpeechRateKind
	volume          Fixed
	volumeKind      VolumeKind
}

// NewComputedStyle creates an empty style: every property starts out as the
// inherit placeholder and no extension block is allocated.
func NewComputedStyle() *ComputedStyle {
	return &ComputedStyle{}
}

// HasUncommonBlock reports whether the uncommon property block has been
// allocated. Readers of an unallocated block see initial values.
func (cs *ComputedStyle) HasUncommonBlock() bool { return cs.uncommon != nil }

// HasPageBlock reports whether the paged media block has been allocated.
func (cs *ComputedStyle) HasPageBlock() bool { return cs.page != nil }

// HasAuralBlock reports whether the aural block has been allocated.
func (cs *ComputedStyle) HasAuralBlock() bool { return cs.aural != nil }

// HasBlock reports whether the storage block is present. The common block
// always is.
func (cs *ComputedStyle) HasBlock(b StyleBlock) bool {
	switch b {
	case BlockUncommon:
		return cs.uncommon != nil
	case BlockPage:
		return cs.page != nil
	case BlockAural:
		return cs.aural != nil
	}
	return true
}

func (cs *ComputedStyle) ensureUncommon() *uncommonStyle {
	if cs.uncommon == nil {
		cs.uncommon = &uncommonStyle{}
	}
	return cs.uncommon
}

func (cs *ComputedStyle) ensurePage() *pageStyle {
	if cs.page == nil {
		cs.page = &pageStyle{}
	}
	return cs.page
}

func (cs *ComputedStyle) ensureAural() *auralStyle {
	if cs.aural == nil {
		cs.aural = &auralStyle{}
	}
	return cs.aural
}
