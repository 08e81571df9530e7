package style

import "github.com/npillmayer/cascade/intern"

// Computed-value tags. Every property carries a small tag alongside any
// payload; the tag's zero value is the inherit placeholder, which phase 1 of
// styling leaves behind for inherited-but-unset properties and which phase 2
// (composition against the parent) resolves. Keyword-only properties need
// nothing but the tag.

// Display is the computed display type.
type Display uint8

const (
	DisplayInherit Display = iota
	DisplayInline
	DisplayBlock
	DisplayListItem
	DisplayRunIn
	DisplayInlineBlock
	DisplayTable
	DisplayInlineTable
	DisplayTableRowGroup
	DisplayTableHeaderGroup
	DisplayTableFooterGroup
	DisplayTableRow
	DisplayTableColumnGroup
	DisplayTableColumn
	DisplayTableCell
	DisplayTableCaption
	DisplayNone
)

// Position is the computed positioning scheme.
type Position uint8

const (
	PositionInherit Position = iota
	PositionStatic
	PositionRelative
	PositionAbsolute
	PositionFixed
)

// Float is the computed float placement.
type Float uint8

const (
	FloatInherit Float = iota
	FloatNone
	FloatLeft
	FloatRight
)

// Clear is the computed float clearance.
type Clear uint8

const (
	ClearInherit Clear = iota
	ClearNone
	ClearLeft
	ClearRight
	ClearBoth
)

// Visibility is the computed box visibility.
type Visibility uint8

const (
	VisibilityInherit Visibility = iota
	VisibilityVisible
	VisibilityHidden
	VisibilityCollapse
)

// Overflow is the computed overflow handling.
type Overflow uint8

const (
	OverflowInherit Overflow = iota
	OverflowVisible
	OverflowHidden
	OverflowScroll
	OverflowAuto
)

// Direction is the computed writing direction.
type Direction uint8

const (
	DirectionInherit Direction = iota
	DirectionLTR
	DirectionRTL
)

// UnicodeBidi is the computed bidi embedding behavior.
type UnicodeBidi uint8

const (
	UnicodeBidiInherit UnicodeBidi = iota
	UnicodeBidiNormal
	UnicodeBidiEmbed
	UnicodeBidiOverride
)

// WhiteSpace is the computed white space handling.
type WhiteSpace uint8

const (
	WhiteSpaceInherit WhiteSpace = iota
	WhiteSpaceNormal
	WhiteSpacePre
	WhiteSpaceNowrap
	WhiteSpacePreWrap
	WhiteSpacePreLine
)

// ColorKind tags color-valued properties; with ColorSet the RGBA payload is
// valid. Used by color, background-color and the border colors; ColorCurrent
// is the border colors' initial value, standing for the element's 'color',
// and is resolved during the absolutization pass.
type ColorKind uint8

const (
	ColorInherit ColorKind = iota
	ColorSet
	ColorCurrent
)

// OutlineColorKind tags outline-color, which additionally knows 'invert'.
type OutlineColorKind uint8

const (
	OutlineColorInherit OutlineColorKind = iota
	OutlineColorSet
	OutlineColorInvert
)

// BorderStyle is the computed line style of borders.
type BorderStyle uint8

const (
	BorderStyleInherit BorderStyle = iota
	BorderStyleNone
	BorderStyleHidden
	BorderStyleDotted
	BorderStyleDashed
	BorderStyleSolid
	BorderStyleDouble
	BorderStyleGroove
	BorderStyleRidge
	BorderStyleInset
	BorderStyleOutset
)

// BorderWidthKind tags border and outline widths; with BorderWidthSet the
// Length payload is valid, the keyword kinds resolve to absolute widths
// during the absolutization pass.
type BorderWidthKind uint8

const (
	BorderWidthInherit BorderWidthKind = iota
	BorderWidthThin
	BorderWidthMedium
	BorderWidthThick
	BorderWidthSet
)

// BorderCollapse is the computed table border model.
type BorderCollapse uint8

const (
	BorderCollapseInherit BorderCollapse = iota
	BorderCollapseSeparate
	BorderCollapseCollapse
)

// BorderSpacingKind tags the border-spacing pair.
type BorderSpacingKind uint8

const (
	BorderSpacingInherit BorderSpacingKind = iota
	BorderSpacingSet
)

// SizeKind tags width and height.
type SizeKind uint8

const (
	SizeInherit SizeKind = iota
	SizeAuto
	SizeSet
)

// MinSizeKind tags min-width and min-height.
type MinSizeKind uint8

const (
	MinSizeInherit MinSizeKind = iota
	MinSizeSet
)

// MaxSizeKind tags max-width and max-height.
type MaxSizeKind uint8

const (
	MaxSizeInherit MaxSizeKind = iota
	MaxSizeNone
	MaxSizeSet
)

// OffsetKind tags the box offsets top, right, bottom and left.
type OffsetKind uint8

const (
	OffsetInherit OffsetKind = iota
	OffsetAuto
	OffsetSet
)

// MarginKind tags the margins.
type MarginKind uint8

const (
	MarginInherit MarginKind = iota
	MarginAuto
	MarginSet
)

// PaddingKind tags the paddings.
type PaddingKind uint8

const (
	PaddingInherit PaddingKind = iota
	PaddingSet
)

// FontSizeKind tags font-size. The keyword kinds resolve against the user
// agent's size table during the absolutization pass.
type FontSizeKind uint8

const (
	FontSizeInherit FontSizeKind = iota
	FontSizeXXSmall
	FontSizeXSmall
	FontSizeSmall
	FontSizeMedium
	FontSizeLarge
	FontSizeXLarge
	FontSizeXXLarge
	FontSizeLarger
	FontSizeSmaller
	FontSizeSet
)

// FontStyle is the computed font slant.
type FontStyle uint8

const (
	FontStyleInherit FontStyle = iota
	FontStyleNormal
	FontStyleItalic
	FontStyleOblique
)

// FontVariant is the computed font variant.
type FontVariant uint8

const (
	FontVariantInherit FontVariant = iota
	FontVariantNormal
	FontVariantSmallCaps
)

// FontWeight is the computed font weight. Bolder and lighter survive into
// the computed style; resolving them needs the parent's used weight, which
// is the renderer's business.
type FontWeight uint8

const (
	FontWeightInherit FontWeight = iota
	FontWeightNormal
	FontWeightBold
	FontWeightBolder
	FontWeightLighter
	FontWeight100
	FontWeight200
	FontWeight300
	FontWeight400
	FontWeight500
	FontWeight600
	FontWeight700
	FontWeight800
	FontWeight900
)

// FontFamilyKind tags the font-family list. The kind names the generic
// family closing the list, or FontFamilyNamed if the list consists of named
// families only.
type FontFamilyKind uint8

const (
	FontFamilyInherit FontFamilyKind = iota
	FontFamilyNamed
	FontFamilySerif
	FontFamilySansSerif
	FontFamilyCursive
	FontFamilyFantasy
	FontFamilyMonospace
)

// LineHeightKind tags line-height. LineHeightNumber carries a unitless
// factor, LineHeightSet a length.
type LineHeightKind uint8

const (
	LineHeightInherit LineHeightKind = iota
	LineHeightNormal
	LineHeightNumber
	LineHeightSet
)

// VerticalAlignKind tags vertical-align; with VerticalAlignSet the Length
// payload is valid.
type VerticalAlignKind uint8

const (
	VerticalAlignInherit VerticalAlignKind = iota
	VerticalAlignBaseline
	VerticalAlignSub
	VerticalAlignSuper
	VerticalAlignTop
	VerticalAlignTextTop
	VerticalAlignMiddle
	VerticalAlignBottom
	VerticalAlignTextBottom
	VerticalAlignSet
)

// TextAlign is the computed text alignment. TextAlignDefault stands for the
// initial direction-dependent alignment.
type TextAlign uint8

const (
	TextAlignInherit TextAlign = iota
	TextAlignDefault
	TextAlignLeft
	TextAlignRight
	TextAlignCenter
	TextAlignJustify
)

// TextDecoration is a bit set of decoration lines. Zero is the inherit
// placeholder, so 'none' needs a bit of its own.
type TextDecoration uint8

const (
	TextDecorationInherit     TextDecoration = 0x00
	TextDecorationUnderline   TextDecoration = 0x01
	TextDecorationOverline    TextDecoration = 0x02
	TextDecorationLineThrough TextDecoration = 0x04
	TextDecorationBlink       TextDecoration = 0x08
	TextDecorationNone        TextDecoration = 0x10
)

// TextTransform is the computed text case transform.
type TextTransform uint8

const (
	TextTransformInherit TextTransform = iota
	TextTransformCapitalize
	TextTransformUppercase
	TextTransformLowercase
	TextTransformNone
)

// TextIndentKind tags text-indent.
type TextIndentKind uint8

const (
	TextIndentInherit TextIndentKind = iota
	TextIndentSet
)

// SpacingKind tags letter-spacing and word-spacing.
type SpacingKind uint8

const (
	SpacingInherit SpacingKind = iota
	SpacingNormal
	SpacingSet
)

// ZIndexKind tags z-index; with ZIndexSet the integer payload is valid.
type ZIndexKind uint8

const (
	ZIndexInherit ZIndexKind = iota
	ZIndexAuto
	ZIndexSet
)

// OpacityKind tags opacity.
type OpacityKind uint8

const (
	OpacityInherit OpacityKind = iota
	OpacitySet
)

// CountKind tags the integer-valued properties orphans and widows.
type CountKind uint8

const (
	CountInherit CountKind = iota
	CountSet
)

// CaptionSide is the computed caption placement.
type CaptionSide uint8

const (
	CaptionSideInherit CaptionSide = iota
	CaptionSideTop
	CaptionSideBottom
)

// EmptyCells is the computed empty cell border handling.
type EmptyCells uint8

const (
	EmptyCellsInherit EmptyCells = iota
	EmptyCellsShow
	EmptyCellsHide
)

// TableLayout is the computed table layout algorithm.
type TableLayout uint8

const (
	TableLayoutInherit TableLayout = iota
	TableLayoutAuto
	TableLayoutFixed
)

// ListStylePosition is the computed marker placement.
type ListStylePosition uint8

const (
	ListStylePositionInherit ListStylePosition = iota
	ListStylePositionInside
	ListStylePositionOutside
)

// ListStyleType is the computed marker type; it doubles as the counter style
// inside content items.
type ListStyleType uint8

const (
	ListStyleTypeInherit ListStyleType = iota
	ListStyleTypeDisc
	ListStyleTypeCircle
	ListStyleTypeSquare
	ListStyleTypeDecimal
	ListStyleTypeDecimalLeadingZero
	ListStyleTypeLowerRoman
	ListStyleTypeUpperRoman
	ListStyleTypeLowerGreek
	ListStyleTypeLowerLatin
	ListStyleTypeUpperLatin
	ListStyleTypeArmenian
	ListStyleTypeGeorgian
	ListStyleTypeLowerAlpha
	ListStyleTypeUpperAlpha
	ListStyleTypeNone
)

// ClipKind tags the clip property.
type ClipKind uint8

const (
	ClipInherit ClipKind = iota
	ClipAuto
	ClipSet
)

// ClipRect is the payload of clip: rect(...). A side may be 'auto'
// individually.
type ClipRect struct {
	Top, Right, Bottom, Left         Length
	TopAuto, RightAuto, BottomAuto, LeftAuto bool
}

// ContentKind tags the content property.
type ContentKind uint8

const (
	ContentInherit ContentKind = iota
	ContentNormal
	ContentNone
	ContentSet
)

// ContentItemKind discriminates the entries of a content list.
type ContentItemKind uint8

const (
	ContentItemString ContentItemKind = iota
	ContentItemURI
	ContentItemAttr
	ContentItemCounter
	ContentItemCounters
	ContentItemOpenQuote
	ContentItemCloseQuote
	ContentItemNoOpenQuote
	ContentItemNoCloseQuote
)

// ContentItem is one entry of a content list. Text holds the string, URI,
// attribute name or counter name, Sep the separator of counters(), and
// Style the counter style.
type ContentItem struct {
	Kind  ContentItemKind
	Text  *intern.String
	Sep   *intern.String
	Style ListStyleType
}

// CounterKind tags counter-reset and counter-increment.
type CounterKind uint8

const (
	CounterInherit CounterKind = iota
	CounterNone
	CounterSet
)

// Counter is one name/value pair of a counter-reset or counter-increment
// list.
type Counter struct {
	Name  *intern.String
	Value Fixed
}

// CursorKind tags the cursor property. The kind is the final generic cursor;
// any custom cursor URIs precede it in the URI list.
type CursorKind uint8

const (
	CursorInherit CursorKind = iota
	CursorAuto
	CursorCrosshair
	CursorDefault
	CursorPointer
	CursorMove
	CursorEResize
	CursorNEResize
	CursorNWResize
	CursorNResize
	CursorSEResize
	CursorSWResize
	CursorSResize
	CursorWResize
	CursorText
	CursorWait
	CursorHelp
	CursorProgress
)

// QuotesKind tags the quotes property. The payload is a flat list of
// open/close pairs.
type QuotesKind uint8

const (
	QuotesInherit QuotesKind = iota
	QuotesNone
	QuotesSet
)

// PageBreak is the computed page break behavior before or after a box.
type PageBreak uint8

const (
	PageBreakInherit PageBreak = iota
	PageBreakAuto
	PageBreakAlways
	PageBreakAvoid
	PageBreakLeft
	PageBreakRight
)

// PageBreakInside is the computed page break behavior inside a box.
type PageBreakInside uint8

const (
	PageBreakInsideInherit PageBreakInside = iota
	PageBreakInsideAuto
	PageBreakInsideAvoid
)

// Speak is the computed aural rendering mode.
type Speak uint8

const (
	SpeakInherit Speak = iota
	SpeakNormal
	SpeakNone
	SpeakSpellOut
)

// PauseKind tags pause-before and pause-after; the payload is a time or a
// percentage.
type PauseKind uint8

const (
	PauseInherit PauseKind = iota
	PauseSet
)

// PitchKind tags pitch; with PitchSet the payload is a frequency.
type PitchKind uint8

const (
	PitchInherit PitchKind = iota
	PitchXLow
	PitchLow
	PitchMedium
	PitchHigh
	PitchXHigh
	PitchSet
)

// SpeechRateKind tags speech-rate; with SpeechRateSet the payload is a words
// per minute number.
type SpeechRateKind uint8

const (
	SpeechRateInherit SpeechRateKind = iota
	SpeechRateXSlow
	SpeechRateSlow
	SpeechRateMedium
	SpeechRateFast
	SpeechRateXFast
	SpeechRateFaster
	SpeechRateSlower
	SpeechRateSet
)

// VolumeKind tags volume. VolumeNumber carries a 0..100 number,
// VolumePercent a percentage of the inherited volume.
type VolumeKind uint8

const (
	VolumeInherit VolumeKind = iota
	VolumeSilent
	VolumeXSoft
	VolumeSoft
	VolumeMedium
	VolumeLoud
	VolumeXLoud
	VolumeNumber
	VolumePercent
)
