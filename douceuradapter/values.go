package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cascade/bytecode"
	"github.com/npillmayer/cascade/intern"
	"github.com/npillmayer/cascade/style"
)

// encoder compiles the value terms of one declaration into an op word and
// its operands. An encoder validates the whole value before it emits the
// first word; a failing declaration must not leave partial code behind.
type encoder func(b *bytecode.Builder, flags bytecode.Flags, terms []term, table *intern.Table) error

var encoders = map[string]encoder{}

func registerEnc(name string, enc encoder) {
	if _, dup := encoders[name]; dup {
		panic("duplicate declaration encoder: " + name)
	}
	encoders[name] = enc
}

// lookupKeyword resolves a keyword term against a value table, caselessly.
func lookupKeyword(t term, kw map[string]uint32) (uint32, bool) {
	if t.kind != termKeyword {
		return 0, false
	}
	v, ok := kw[strings.ToLower(t.text)]
	return v, ok
}

func oneKeyword(terms []term, kw map[string]uint32) (uint32, error) {
	if len(terms) != 1 {
		return 0, errValue(terms)
	}
	v, ok := lookupKeyword(terms[0], kw)
	if !ok {
		return 0, errValue(terms)
	}
	return v, nil
}

// keywordEnc builds the encoder for a keyword-only property. The table
// values double as op values, they equal the computed enums.
func keywordEnc(p style.PropertyID, kw map[string]uint32) encoder {
	return func(b *bytecode.Builder, flags bytecode.Flags, terms []term, _ *intern.Table) error {
		v, err := oneKeyword(terms, kw)
		if err != nil {
			return err
		}
		b.Op(p, flags, v)
		return nil
	}
}

// lengthOpts narrows the lengths a property accepts.
type lengthOpts struct {
	pct bool // percentages allowed
	neg bool // negative values allowed
}

// lengthTerm converts a term into a length. A unitless zero passes, as px.
func lengthTerm(t term, opts lengthOpts) (style.Length, error) {
	switch t.kind {
	case termNumber:
		if t.num == 0 {
			return style.Length{Unit: style.UnitPX}, nil
		}
	case termPercentage:
		if opts.pct && (opts.neg || t.num >= 0) {
			return style.Length{Value: t.num, Unit: style.UnitPCT}, nil
		}
	case termDimension:
		if lengthUnit(t.unit) && (opts.neg || t.num >= 0) {
			return style.Length{Value: t.num, Unit: t.unit}, nil
		}
	}
	return style.Length{}, fmt.Errorf("%w: not a length: %v", ErrSyntax, t)
}

// lengthUnit reports whether u measures length rather than an angle, time
// or frequency.
func lengthUnit(u style.Unit) bool {
	switch u {
	case style.UnitPX, style.UnitEX, style.UnitEM, style.UnitIN, style.UnitCM,
		style.UnitMM, style.UnitPT, style.UnitPC:
		return true
	}
	return false
}

// lengthEnc builds the encoder for a property taking a length or one of a
// few keywords. setKind is the op value announcing the length operand.
func lengthEnc(p style.PropertyID, setKind uint32, kw map[string]uint32, opts lengthOpts) encoder {
	return func(b *bytecode.Builder, flags bytecode.Flags, terms []term, _ *intern.Table) error {
		if len(terms) != 1 {
			return errValue(terms)
		}
		if v, ok := lookupKeyword(terms[0], kw); ok {
			b.Op(p, flags, v)
			return nil
		}
		l, err := lengthTerm(terms[0], opts)
		if err != nil {
			return err
		}
		b.Op(p, flags, setKind).Length(l)
		return nil
	}
}

// colorEnc builds the encoder for a color-valued property. Extra keywords
// beyond the color names, such as outline-color's 'invert', come in kw.
func colorEnc(p style.PropertyID, setKind uint32, kw map[string]uint32) encoder {
	return func(b *bytecode.Builder, flags bytecode.Flags, terms []term, _ *intern.Table) error {
		if len(terms) != 1 {
			return errValue(terms)
		}
		if v, ok := lookupKeyword(terms[0], kw); ok {
			b.Op(p, flags, v)
			return nil
		}
		c, err := parseColor(terms[0])
		if err != nil {
			return err
		}
		b.Op(p, flags, setKind).Color(c)
		return nil
	}
}

func intTerm(t term) (int32, error) {
	if t.kind != termNumber || t.num%style.One != 0 {
		return 0, fmt.Errorf("%w: not an integer: %v", ErrSyntax, t)
	}
	return int32(t.num.Int()), nil
}

// intEnc builds the encoder for an integer-valued property. min guards the
// accepted range from below.
func intEnc(p style.PropertyID, setKind uint32, kw map[string]uint32, min int32) encoder {
	return func(b *bytecode.Builder, flags bytecode.Flags, terms []term, _ *intern.Table) error {
		if len(terms) != 1 {
			return errValue(terms)
		}
		if v, ok := lookupKeyword(terms[0], kw); ok {
			b.Op(p, flags, v)
			return nil
		}
		n, err := intTerm(terms[0])
		if err != nil {
			return err
		}
		if n < min {
			return errValue(terms)
		}
		b.Op(p, flags, setKind).Int32(n)
		return nil
	}
}

var displayKeywords = map[string]uint32{
	"inline":             uint32(style.DisplayInline),
	"block":              uint32(style.DisplayBlock),
	"list-item":          uint32(style.DisplayListItem),
	"run-in":             uint32(style.DisplayRunIn),
	"inline-block":       uint32(style.DisplayInlineBlock),
	"table":              uint32(style.DisplayTable),
	"inline-table":       uint32(style.DisplayInlineTable),
	"table-row-group":    uint32(style.DisplayTableRowGroup),
	"table-header-group": uint32(style.DisplayTableHeaderGroup),
	"table-footer-group": uint32(style.DisplayTableFooterGroup),
	"table-row":          uint32(style.DisplayTableRow),
	"table-column-group": uint32(style.DisplayTableColumnGroup),
	"table-column":       uint32(style.DisplayTableColumn),
	"table-cell":         uint32(style.DisplayTableCell),
	"table-caption":      uint32(style.DisplayTableCaption),
	"none":               uint32(style.DisplayNone),
}

var positionKeywords = map[string]uint32{
	"static":   uint32(style.PositionStatic),
	"relative": uint32(style.PositionRelative),
	"absolute": uint32(style.PositionAbsolute),
	"fixed":    uint32(style.PositionFixed),
}

var floatKeywords = map[string]uint32{
	"none":  uint32(style.FloatNone),
	"left":  uint32(style.FloatLeft),
	"right": uint32(style.FloatRight),
}

var clearKeywords = map[string]uint32{
	"none":  uint32(style.ClearNone),
	"left":  uint32(style.ClearLeft),
	"right": uint32(style.ClearRight),
	"both":  uint32(style.ClearBoth),
}

var visibilityKeywords = map[string]uint32{
	"visible":  uint32(style.VisibilityVisible),
	"hidden":   uint32(style.VisibilityHidden),
	"collapse": uint32(style.VisibilityCollapse),
}

var overflowKeywords = map[string]uint32{
	"visible": uint32(style.OverflowVisible),
	"hidden":  uint32(style.OverflowHidden),
	"scroll":  uint32(style.OverflowScroll),
	"auto":    uint32(style.OverflowAuto),
}

var directionKeywords = map[string]uint32{
	"ltr": uint32(style.DirectionLTR),
	"rtl": uint32(style.DirectionRTL),
}

var unicodeBidiKeywords = map[string]uint32{
	"normal":        uint32(style.UnicodeBidiNormal),
	"embed":         uint32(style.UnicodeBidiEmbed),
	"bidi-override": uint32(style.UnicodeBidiOverride),
}

var whiteSpaceKeywords = map[string]uint32{
	"normal":   uint32(style.WhiteSpaceNormal),
	"pre":      uint32(style.WhiteSpacePre),
	"nowrap":   uint32(style.WhiteSpaceNowrap),
	"pre-wrap": uint32(style.WhiteSpacePreWrap),
	"pre-line": uint32(style.WhiteSpacePreLine),
}

var textAlignKeywords = map[string]uint32{
	"left":    uint32(style.TextAlignLeft),
	"right":   uint32(style.TextAlignRight),
	"center":  uint32(style.TextAlignCenter),
	"justify": uint32(style.TextAlignJustify),
}

var textTransformKeywords = map[string]uint32{
	"capitalize": uint32(style.TextTransformCapitalize),
	"uppercase":  uint32(style.TextTransformUppercase),
	"lowercase":  uint32(style.TextTransformLowercase),
	"none":       uint32(style.TextTransformNone),
}

var fontStyleKeywords = map[string]uint32{
	"normal":  uint32(style.FontStyleNormal),
	"italic":  uint32(style.FontStyleItalic),
	"oblique": uint32(style.FontStyleOblique),
}

var fontVariantKeywords = map[string]uint32{
	"normal":     uint32(style.FontVariantNormal),
	"small-caps": uint32(style.FontVariantSmallCaps),
}

var fontWeightKeywords = map[string]uint32{
	"normal":  uint32(style.FontWeightNormal),
	"bold":    uint32(style.FontWeightBold),
	"bolder":  uint32(style.FontWeightBolder),
	"lighter": uint32(style.FontWeightLighter),
}

var fontSizeKeywords = map[string]uint32{
	"xx-small": uint32(style.FontSizeXXSmall),
	"x-small":  uint32(style.FontSizeXSmall),
	"small":    uint32(style.FontSizeSmall),
	"medium":   uint32(style.FontSizeMedium),
	"large":    uint32(style.FontSizeLarge),
	"x-large":  uint32(style.FontSizeXLarge),
	"xx-large": uint32(style.FontSizeXXLarge),
	"larger":   uint32(style.FontSizeLarger),
	"smaller":  uint32(style.FontSizeSmaller),
}

var verticalAlignKeywords = map[string]uint32{
	"baseline":    uint32(style.VerticalAlignBaseline),
	"sub":         uint32(style.VerticalAlignSub),
	"super":       uint32(style.VerticalAlignSuper),
	"top":         uint32(style.VerticalAlignTop),
	"text-top":    uint32(style.VerticalAlignTextTop),
	"middle":      uint32(style.VerticalAlignMiddle),
	"bottom":      uint32(style.VerticalAlignBottom),
	"text-bottom": uint32(style.VerticalAlignTextBottom),
}

var borderStyleKeywords = map[string]uint32{
	"none":   uint32(style.BorderStyleNone),
	"hidden": uint32(style.BorderStyleHidden),
	"dotted": uint32(style.BorderStyleDotted),
	"dashed": uint32(style.BorderStyleDashed),
	"solid":  uint32(style.BorderStyleSolid),
	"double": uint32(style.BorderStyleDouble),
	"groove": uint32(style.BorderStyleGroove),
	"ridge":  uint32(style.BorderStyleRidge),
	"inset":  uint32(style.BorderStyleInset),
	"outset": uint32(style.BorderStyleOutset),
}

var borderWidthKeywords = map[string]uint32{
	"thin":   uint32(style.BorderWidthThin),
	"medium": uint32(style.BorderWidthMedium),
	"thick":  uint32(style.BorderWidthThick),
}

var borderCollapseKeywords = map[string]uint32{
	"separate": uint32(style.BorderCollapseSeparate),
	"collapse": uint32(style.BorderCollapseCollapse),
}

var captionSideKeywords = map[string]uint32{
	"top":    uint32(style.CaptionSideTop),
	"bottom": uint32(style.CaptionSideBottom),
}

var emptyCellsKeywords = map[string]uint32{
	"show": uint32(style.EmptyCellsShow),
	"hide": uint32(style.EmptyCellsHide),
}

var tableLayoutKeywords = map[string]uint32{
	"auto":  uint32(style.TableLayoutAuto),
	"fixed": uint32(style.TableLayoutFixed),
}

var listStyleTypeKeywords = map[string]uint32{
	"disc":                 uint32(style.ListStyleTypeDisc),
	"circle":               uint32(style.ListStyleTypeCircle),
	"square":               uint32(style.ListStyleTypeSquare),
	"decimal":              uint32(style.ListStyleTypeDecimal),
	"decimal-leading-zero": uint32(style.ListStyleTypeDecimalLeadingZero),
	"lower-roman":          uint32(style.ListStyleTypeLowerRoman),
	"upper-roman":          uint32(style.ListStyleTypeUpperRoman),
	"lower-greek":          uint32(style.ListStyleTypeLowerGreek),
	"lower-latin":          uint32(style.ListStyleTypeLowerLatin),
	"upper-latin":          uint32(style.ListStyleTypeUpperLatin),
	"armenian":             uint32(style.ListStyleTypeArmenian),
	"georgian":             uint32(style.ListStyleTypeGeorgian),
	"lower-alpha":          uint32(style.ListStyleTypeLowerAlpha),
	"upper-alpha":          uint32(style.ListStyleTypeUpperAlpha),
	"none":                 uint32(style.ListStyleTypeNone),
}

var listStylePositionKeywords = map[string]uint32{
	"inside":  uint32(style.ListStylePositionInside),
	"outside": uint32(style.ListStylePositionOutside),
}

var pageBreakKeywords = map[string]uint32{
	"auto":   uint32(style.PageBreakAuto),
	"always": uint32(style.PageBreakAlways),
	"avoid":  uint32(style.PageBreakAvoid),
	"left":   uint32(style.PageBreakLeft),
	"right":  uint32(style.PageBreakRight),
}

var pageBreakInsideKeywords = map[string]uint32{
	"auto":  uint32(style.PageBreakInsideAuto),
	"avoid": uint32(style.PageBreakInsideAvoid),
}

var speakKeywords = map[string]uint32{
	"normal":    uint32(style.SpeakNormal),
	"none":      uint32(style.SpeakNone),
	"spell-out": uint32(style.SpeakSpellOut),
}

var speechRateKeywords = map[string]uint32{
	"x-slow": uint32(style.SpeechRateXSlow),
	"slow":   uint32(style.SpeechRateSlow),
	"medium": uint32(style.SpeechRateMedium),
	"fast":   uint32(style.SpeechRateFast),
	"x-fast": uint32(style.SpeechRateXFast),
	"faster": uint32(style.SpeechRateFaster),
	"slower": uint32(style.SpeechRateSlower),
}

var volumeKeywords = map[string]uint32{
	"silent": uint32(style.VolumeSilent),
	"x-soft": uint32(style.VolumeXSoft),
	"soft":   uint32(style.VolumeSoft),
	"medium": uint32(style.VolumeMedium),
	"loud":   uint32(style.VolumeLoud),
	"x-loud": uint32(style.VolumeXLoud),
}

var pitchKeywords = map[string]uint32{
	"x-low":  uint32(style.PitchXLow),
	"low":    uint32(style.PitchLow),
	"medium": uint32(style.PitchMedium),
	"high":   uint32(style.PitchHigh),
	"x-high": uint32(style.PitchXHigh),
}

func init() {
	// box generation and positioning
	registerEnc("display", keywordEnc(style.PropDisplay, displayKeywords))
	registerEnc("position", keywordEnc(style.PropPosition, positionKeywords))
	registerEnc("float", keywordEnc(style.PropFloat, floatKeywords))
	registerEnc("clear", keywordEnc(style.PropClear, clearKeywords))
	registerEnc("visibility", keywordEnc(style.PropVisibility, visibilityKeywords))
	registerEnc("overflow", keywordEnc(style.PropOverflow, overflowKeywords))
	registerEnc("direction", keywordEnc(style.PropDirection, directionKeywords))
	registerEnc("unicode-bidi", keywordEnc(style.PropUnicodeBidi, unicodeBidiKeywords))
	registerEnc("z-index", intEnc(style.PropZIndex, uint32(style.ZIndexSet),
		map[string]uint32{"auto": uint32(style.ZIndexAuto)}, -(1 << 30)))

	offsetAuto := map[string]uint32{"auto": uint32(style.OffsetAuto)}
	registerEnc("top", lengthEnc(style.PropTop, uint32(style.OffsetSet), offsetAuto, lengthOpts{pct: true, neg: true}))
	registerEnc("right", lengthEnc(style.PropRight, uint32(style.OffsetSet), offsetAuto, lengthOpts{pct: true, neg: true}))
	registerEnc("bottom", lengthEnc(style.PropBottom, uint32(style.OffsetSet), offsetAuto, lengthOpts{pct: true, neg: true}))
	registerEnc("left", lengthEnc(style.PropLeft, uint32(style.OffsetSet), offsetAuto, lengthOpts{pct: true, neg: true}))

	marginAuto := map[string]uint32{"auto": uint32(style.MarginAuto)}
	registerEnc("margin-top", lengthEnc(style.PropMarginTop, uint32(style.MarginSet), marginAuto, lengthOpts{pct: true, neg: true}))
	registerEnc("margin-right", lengthEnc(style.PropMarginRight, uint32(style.MarginSet), marginAuto, lengthOpts{pct: true, neg: true}))
	registerEnc("margin-bottom", lengthEnc(style.PropMarginBottom, uint32(style.MarginSet), marginAuto, lengthOpts{pct: true, neg: true}))
	registerEnc("margin-left", lengthEnc(style.PropMarginLeft, uint32(style.MarginSet), marginAuto, lengthOpts{pct: true, neg: true}))

	registerEnc("padding-top", lengthEnc(style.PropPaddingTop, uint32(style.PaddingSet), nil, lengthOpts{pct: true}))
	registerEnc("padding-right", lengthEnc(style.PropPaddingRight, uint32(style.PaddingSet), nil, lengthOpts{pct: true}))
	registerEnc("padding-bottom", lengthEnc(style.PropPaddingBottom, uint32(style.PaddingSet), nil, lengthOpts{pct: true}))
	registerEnc("padding-left", lengthEnc(style.PropPaddingLeft, uint32(style.PaddingSet), nil, lengthOpts{pct: true}))

	sizeAuto := map[string]uint32{"auto": uint32(style.SizeAuto)}
	registerEnc("width", lengthEnc(style.PropWidth, uint32(style.SizeSet), sizeAuto, lengthOpts{pct: true}))
	registerEnc("height", lengthEnc(style.PropHeight, uint32(style.SizeSet), sizeAuto, lengthOpts{pct: true}))
	registerEnc("min-width", lengthEnc(style.PropMinWidth, uint32(style.MinSizeSet), nil, lengthOpts{pct: true}))
	registerEnc("min-height", lengthEnc(style.PropMinHeight, uint32(style.MinSizeSet), nil, lengthOpts{pct: true}))
	maxNone := map[string]uint32{"none": uint32(style.MaxSizeNone)}
	registerEnc("max-width", lengthEnc(style.PropMaxWidth, uint32(style.MaxSizeSet), maxNone, lengthOpts{pct: true}))
	registerEnc("max-height", lengthEnc(style.PropMaxHeight, uint32(style.MaxSizeSet), maxNone, lengthOpts{pct: true}))

	registerEnc("vertical-align", lengthEnc(style.PropVerticalAlign, uint32(style.VerticalAlignSet),
		verticalAlignKeywords, lengthOpts{pct: true, neg: true}))

	// colors
	registerEnc("color", colorEnc(style.PropColor, uint32(style.ColorSet), nil))
	registerEnc("background-color", colorEnc(style.PropBackgroundColor, uint32(style.ColorSet), nil))
	registerEnc("border-top-color", colorEnc(style.PropBorderTopColor, uint32(style.ColorSet), nil))
	registerEnc("border-right-color", colorEnc(style.PropBorderRightColor, uint32(style.ColorSet), nil))
	registerEnc("border-bottom-color", colorEnc(style.PropBorderBottomColor, uint32(style.ColorSet), nil))
	registerEnc("border-left-color", colorEnc(style.PropBorderLeftColor, uint32(style.ColorSet), nil))
	registerEnc("outline-color", colorEnc(style.PropOutlineColor, uint32(style.OutlineColorSet),
		map[string]uint32{"invert": uint32(style.OutlineColorInvert)}))

	// borders and outline
	registerEnc("border-top-style", keywordEnc(style.PropBorderTopStyle, borderStyleKeywords))
	registerEnc("border-right-style", keywordEnc(style.PropBorderRightStyle, borderStyleKeywords))
	registerEnc("border-bottom-style", keywordEnc(style.PropBorderBottomStyle, borderStyleKeywords))
	registerEnc("border-left-style", keywordEnc(style.PropBorderLeftStyle, borderStyleKeywords))
	registerEnc("border-top-width", lengthEnc(style.PropBorderTopWidth, uint32(style.BorderWidthSet), borderWidthKeywords, lengthOpts{}))
	registerEnc("border-right-width", lengthEnc(style.PropBorderRightWidth, uint32(style.BorderWidthSet), borderWidthKeywords, lengthOpts{}))
	registerEnc("border-bottom-width", lengthEnc(style.PropBorderBottomWidth, uint32(style.BorderWidthSet), borderWidthKeywords, lengthOpts{}))
	registerEnc("border-left-width", lengthEnc(style.PropBorderLeftWidth, uint32(style.BorderWidthSet), borderWidthKeywords, lengthOpts{}))
	registerEnc("outline-width", lengthEnc(style.PropOutlineWidth, uint32(style.BorderWidthSet), borderWidthKeywords, lengthOpts{}))
	registerEnc("border-collapse", keywordEnc(style.PropBorderCollapse, borderCollapseKeywords))
	registerEnc("border-spacing", encodeBorderSpacing)

	// text
	registerEnc("text-align", keywordEnc(style.PropTextAlign, textAlignKeywords))
	registerEnc("text-transform", keywordEnc(style.PropTextTransform, textTransformKeywords))
	registerEnc("text-decoration", encodeTextDecoration)
	registerEnc("text-indent", lengthEnc(style.PropTextIndent, uint32(style.TextIndentSet), nil, lengthOpts{pct: true, neg: true}))
	registerEnc("white-space", keywordEnc(style.PropWhiteSpace, whiteSpaceKeywords))
	spacingNormal := map[string]uint32{"normal": uint32(style.SpacingNormal)}
	registerEnc("letter-spacing", lengthEnc(style.PropLetterSpacing, uint32(style.SpacingSet), spacingNormal, lengthOpts{neg: true}))
	registerEnc("word-spacing", lengthEnc(style.PropWordSpacing, uint32(style.SpacingSet), spacingNormal, lengthOpts{neg: true}))
	registerEnc("line-height", encodeLineHeight)

	// fonts
	registerEnc("font-style", keywordEnc(style.PropFontStyle, fontStyleKeywords))
	registerEnc("font-variant", keywordEnc(style.PropFontVariant, fontVariantKeywords))
	registerEnc("font-weight", encodeFontWeight)
	registerEnc("font-size", lengthEnc(style.PropFontSize, uint32(style.FontSizeSet), fontSizeKeywords, lengthOpts{pct: true}))

	// tables
	registerEnc("caption-side", keywordEnc(style.PropCaptionSide, captionSideKeywords))
	registerEnc("empty-cells", keywordEnc(style.PropEmptyCells, emptyCellsKeywords))
	registerEnc("table-layout", keywordEnc(style.PropTableLayout, tableLayoutKeywords))

	// lists
	registerEnc("list-style-type", keywordEnc(style.PropListStyleType, listStyleTypeKeywords))
	registerEnc("list-style-position", keywordEnc(style.PropListStylePosition, listStylePositionKeywords))

	// visual effects
	registerEnc("opacity", encodeOpacity)

	// paged media
	registerEnc("orphans", intEnc(style.PropOrphans, uint32(style.CountSet), nil, 1))
	registerEnc("widows", intEnc(style.PropWidows, uint32(style.CountSet), nil, 1))
	registerEnc("page-break-before", keywordEnc(style.PropPageBreakBefore, pageBreakKeywords))
	registerEnc("page-break-after", keywordEnc(style.PropPageBreakAfter, pageBreakKeywords))
	registerEnc("page-break-inside", keywordEnc(style.PropPageBreakInside, pageBreakInsideKeywords))

	// aural
	registerEnc("speak", keywordEnc(style.PropSpeak, speakKeywords))
	registerEnc("pause-before", pauseEnc(style.PropPauseBefore))
	registerEnc("pause-after", pauseEnc(style.PropPauseAfter))
	registerEnc("pitch", encodePitch)
	registerEnc("speech-rate", encodeSpeechRate)
	registerEnc("volume", encodeVolume)
}

func encodeBorderSpacing(b *bytecode.Builder, flags bytecode.Flags, terms []term, _ *intern.Table) error {
	if len(terms) != 1 && len(terms) != 2 {
		return errValue(terms)
	}
	h, err := lengthTerm(terms[0], lengthOpts{})
	if err != nil {
		return err
	}
	v := h
	if len(terms) == 2 {
		if v, err = lengthTerm(terms[1], lengthOpts{}); err != nil {
			return err
		}
	}
	b.Op(style.PropBorderSpacing, flags, uint32(style.BorderSpacingSet)).Length(h).Length(v)
	return nil
}

var textDecorationBits = map[string]uint32{
	"underline":    uint32(style.TextDecorationUnderline),
	"overline":     uint32(style.TextDecorationOverline),
	"line-through": uint32(style.TextDecorationLineThrough),
	"blink":        uint32(style.TextDecorationBlink),
}

func encodeTextDecoration(b *bytecode.Builder, flags bytecode.Flags, terms []term, _ *intern.Table) error {
	if len(terms) == 1 && terms[0].keyword("none") {
		b.Op(style.PropTextDecoration, flags, uint32(style.TextDecorationNone))
		return nil
	}
	var bits uint32
	for _, t := range terms {
		bit, ok := lookupKeyword(t, textDecorationBits)
		if !ok || bits&bit != 0 {
			return errValue(terms)
		}
		bits |= bit
	}
	if bits == 0 {
		return errValue(terms)
	}
	b.Op(style.PropTextDecoration, flags, bits)
	return nil
}

func encodeLineHeight(b *bytecode.Builder, flags bytecode.Flags, terms []term, _ *intern.Table) error {
	if len(terms) != 1 {
		return errValue(terms)
	}
	t := terms[0]
	switch {
	case t.keyword("normal"):
		b.Op(style.PropLineHeight, flags, uint32(style.LineHeightNormal))
	case t.kind == termNumber && t.num >= 0:
		b.Op(style.PropLineHeight, flags, uint32(style.LineHeightNumber)).Fixed(t.num)
	default:
		l, err := lengthTerm(t, lengthOpts{pct: true})
		if err != nil {
			return err
		}
		b.Op(style.PropLineHeight, flags, uint32(style.LineHeightSet)).Length(l)
	}
	return nil
}

func encodeFontWeight(b *bytecode.Builder, flags bytecode.Flags, terms []term, _ *intern.Table) error {
	if len(terms) != 1 {
		return errValue(terms)
	}
	if v, ok := lookupKeyword(terms[0], fontWeightKeywords); ok {
		b.Op(style.PropFontWeight, flags, v)
		return nil
	}
	n, err := intTerm(terms[0])
	if err != nil || n < 100 || n > 900 || n%100 != 0 {
		return errValue(terms)
	}
	b.Op(style.PropFontWeight, flags, uint32(style.FontWeight100)+uint32(n/100-1))
	return nil
}

func encodeOpacity(b *bytecode.Builder, flags bytecode.Flags, terms []term, _ *intern.Table) error {
	if len(terms) != 1 || terms[0].kind != termNumber {
		return errValue(terms)
	}
	// clamped to [0,1] at computed-value time
	v := terms[0].num
	if v < 0 {
		v = 0
	} else if v > style.One {
		v = style.One
	}
	b.Op(style.PropOpacity, flags, uint32(style.OpacitySet)).Fixed(v)
	return nil
}

// pauseEnc builds the encoder for pause-before and pause-after: a
// non-negative time or a percentage of the element's reading time.
func pauseEnc(p style.PropertyID) encoder {
	return func(b *bytecode.Builder, flags bytecode.Flags, terms []term, _ *intern.Table) error {
		if len(terms) != 1 {
			return errValue(terms)
		}
		t := terms[0]
		switch t.kind {
		case termDimension:
			if (t.unit == style.UnitMS || t.unit == style.UnitS) && t.num >= 0 {
				b.Op(p, flags, uint32(style.PauseSet)).Length(style.Length{Value: t.num, Unit: t.unit})
				return nil
			}
		case termPercentage:
			if t.num >= 0 {
				b.Op(p, flags, uint32(style.PauseSet)).Length(style.Length{Value: t.num, Unit: style.UnitPCT})
				return nil
			}
		case termNumber:
			if t.num == 0 {
				b.Op(p, flags, uint32(style.PauseSet)).Length(style.Length{Unit: style.UnitMS})
				return nil
			}
		}
		return errValue(terms)
	}
}

func encodePitch(b *bytecode.Builder, flags bytecode.Flags, terms []term, _ *intern.Table) error {
	if len(terms) != 1 {
		return errValue(terms)
	}
	if v, ok := lookupKeyword(terms[0], pitchKeywords); ok {
		b.Op(style.PropPitch, flags, v)
		return nil
	}
	t := terms[0]
	if t.kind == termDimension && (t.unit == style.UnitHZ || t.unit == style.UnitKHZ) && t.num > 0 {
		b.Op(style.PropPitch, flags, uint32(style.PitchSet)).Length(style.Length{Value: t.num, Unit: t.unit})
		return nil
	}
	return errValue(terms)
}

func encodeSpeechRate(b *bytecode.Builder, flags bytecode.Flags, terms []term, _ *intern.Table) error {
	if len(terms) != 1 {
		return errValue(terms)
	}
	if v, ok := lookupKeyword(terms[0], speechRateKeywords); ok {
		b.Op(style.PropSpeechRate, flags, v)
		return nil
	}
	if t := terms[0]; t.kind == termNumber && t.num > 0 {
		b.Op(style.PropSpeechRate, flags, uint32(style.SpeechRateSet)).Fixed(t.num)
		return nil
	}
	return errValue(terms)
}

func encodeVolume(b *bytecode.Builder, flags bytecode.Flags, terms []term, _ *intern.Table) error {
	if len(terms) != 1 {
		return errValue(terms)
	}
	if v, ok := lookupKeyword(terms[0], volumeKeywords); ok {
		b.Op(style.PropVolume, flags, v)
		return nil
	}
	switch t := terms[0]; t.kind {
	case termNumber:
		// out-of-range volumes clamp instead of failing
		v := t.num
		if v < 0 {
			v = 0
		} else if v > style.F(100) {
			v = style.F(100)
		}
		b.Op(style.PropVolume, flags, uint32(style.VolumeNumber)).Fixed(v)
		return nil
	case termPercentage:
		if t.num >= 0 {
			b.Op(style.PropVolume, flags, uint32(style.VolumePercent)).Fixed(t.num)
			return nil
		}
	}
	return errValue(terms)
}
