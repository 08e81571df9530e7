package style

// PropertyID identifies one CSS property. The identifiers double as bytecode
// opcodes: the compiler emits them into op words and the selection engine
// indexes its dispatch table with them, so the numbering must stay dense and
// stable. Order is alphabetical by property name.
type PropertyID uint16

const (
	PropBackgroundColor PropertyID = iota
	PropBorderBottomColor
	PropBorderBottomStyle
	PropBorderBottomWidth
	PropBorderCollapse
	PropBorderLeftColor
	PropBorderLeftStyle
	PropBorderLeftWidth
	PropBorderRightColor
	PropBorderRightStyle
	PropBorderRightWidth
	PropBorderSpacing
	PropBorderTopColor
	PropBorderTopStyle
	PropBorderTopWidth
	PropBottom
	PropCaptionSide
	PropClear
	PropClip
	PropColor
	PropContent
	PropCounterIncrement
	PropCounterReset
	PropCursor
	PropDirection
	PropDisplay
	PropEmptyCells
	PropFloat
	PropFontFamily
	PropFontSize
	PropFontStyle
	PropFontVariant
	PropFontWeight
	PropHeight
	PropLeft
	PropLetterSpacing
	PropLineHeight
	PropListStylePosition
	PropListStyleType
	PropMarginBottom
	PropMarginLeft
	PropMarginRight
	PropMarginTop
	PropMaxHeight
	PropMaxWidth
	PropMinHeight
	PropMinWidth
	PropOpacity
	PropOrphans
	PropOutlineColor
	PropOutlineWidth
	PropOverflow
	PropPaddingBottom
	PropPaddingLeft
	PropPaddingRight
	PropPaddingTop
	PropPageBreakAfter
	PropPageBreakBefore
	PropPageBreakInside
	PropPauseAfter
	PropPauseBefore
	PropPitch
	PropPosition
	PropQuotes
	PropRight
	PropSpeak
	PropSpeechRate
	PropTableLayout
	PropTextAlign
	PropTextDecoration
	PropTextIndent
	PropTextTransform
	PropTop
	PropUnicodeBidi
	PropVerticalAlign
	PropVisibility
	PropVolume
	PropWhiteSpace
	PropWidows
	PropWidth
	PropWordSpacing
	PropZIndex

	// NProperties is the number of known properties; it sizes the dispatch
	// table and the per-selection property state.
	NProperties
)

var propertyNames = [NProperties]string{
	PropBackgroundColor:   "background-color",
	PropBorderBottomColor: "border-bottom-color",
	PropBorderBottomStyle: "border-bottom-style",
	PropBorderBottomWidth: "border-bottom-width",
	PropBorderCollapse:    "border-collapse",
	PropBorderLeftColor:   "border-left-color",
	PropBorderLeftStyle:   "border-left-style",
	PropBorderLeftWidth:   "border-left-width",
	PropBorderRightColor:  "border-right-color",
	PropBorderRightStyle:  "border-right-style",
	PropBorderRightWidth:  "border-right-width",
	PropBorderSpacing:     "border-spacing",
	PropBorderTopColor:    "border-top-color",
	PropBorderTopStyle:    "border-top-style",
	PropBorderTopWidth:    "border-top-width",
	PropBottom:            "bottom",
	PropCaptionSide:       "caption-side",
	PropClear:             "clear",
	PropClip:              "clip",
	PropColor:             "color",
	PropContent:           "content",
	PropCounterIncrement:  "counter-increment",
	PropCounterReset:      "counter-reset",
	PropCursor:            "cursor",
	PropDirection:         "direction",
	PropDisplay:           "display",
	PropEmptyCells:        "empty-cells",
	PropFloat:             "float",
	PropFontFamily:        "font-family",
	PropFontSize:          "font-size",
	PropFontStyle:         "font-style",
	PropFontVariant:       "font-variant",
	PropFontWeight:        "font-weight",
	PropHeight:            "height",
	PropLeft:              "left",
	PropLetterSpacing:     "letter-spacing",
	PropLineHeight:        "line-height",
	PropListStylePosition: "list-style-position",
	PropListStyleType:     "list-style-type",
	PropMarginBottom:      "margin-bottom",
	PropMarginLeft:        "margin-left",
	PropMarginRight:       "margin-right",
	PropMarginTop:         "margin-top",
	PropMaxHeight:         "max-height",
	PropMaxWidth:          "max-width",
	PropMinHeight:         "min-height",
	PropMinWidth:          "min-width",
	PropOpacity:           "opacity",
	PropOrphans:           "orphans",
	PropOutlineColor:      "outline-color",
	PropOutlineWidth:      "outline-width",
	PropOverflow:          "overflow",
	PropPaddingBottom:     "padding-bottom",
	PropPaddingLeft:       "padding-left",
	PropPaddingRight:      "padding-right",
	PropPaddingTop:        "padding-top",
	PropPageBreakAfter:    "page-break-after",
	PropPageBreakBefore:   "page-break-before",
	PropPageBreakInside:   "page-break-inside",
	PropPauseAfter:        "pause-after",
	PropPauseBefore:       "pause-before",
	PropPitch:             "pitch",
	PropPosition:          "position",
	PropQuotes:            "quotes",
	PropRight:             "right",
	PropSpeak:             "speak",
	PropSpeechRate:        "speech-rate",
	PropTableLayout:       "table-layout",
	PropTextAlign:         "text-align",
	PropTextDecoration:    "text-decoration",
	PropTextIndent:        "text-indent",
	PropTextTransform:     "text-transform",
	PropTop:               "top",
	PropUnicodeBidi:       "unicode-bidi",
	PropVerticalAlign:     "vertical-align",
	PropVisibility:        "visibility",
	PropVolume:            "volume",
	PropWhiteSpace:        "white-space",
	PropWidows:            "widows",
	PropWidth:             "width",
	PropWordSpacing:       "word-spacing",
	PropZIndex:            "z-index",
}

var propertyIDs map[string]PropertyID

func init() {
	propertyIDs = make(map[string]PropertyID, NProperties)
	for id, name := range propertyNames {
		propertyIDs[name] = PropertyID(id)
	}
}

func (p PropertyID) String() string {
	if p >= NProperties {
		return "unknown-property"
	}
	return propertyNames[p]
}

// PropertyByName maps a lowercase property name to its identifier.
func PropertyByName(name string) (PropertyID, bool) {
	id, ok := propertyIDs[name]
	return id, ok
}

// inheritedProperties marks properties which inherit by default; everything
// else falls back to its initial value when unset.
var inheritedProperties = [NProperties]bool{
	PropBorderCollapse:    true,
	PropBorderSpacing:     true,
	PropCaptionSide:       true,
	PropColor:             true,
	PropCursor:            true,
	PropDirection:         true,
	PropEmptyCells:        true,
	PropFontFamily:        true,
	PropFontSize:          true,
	PropFontStyle:         true,
	PropFontVariant:       true,
	PropFontWeight:        true,
	PropLetterSpacing:     true,
	PropLineHeight:        true,
	PropListStylePosition: true,
	PropListStyleType:     true,
	PropOrphans:           true,
	PropPitch:             true,
	PropQuotes:            true,
	PropSpeak:             true,
	PropSpeechRate:        true,
	PropTextAlign:         true,
	PropTextIndent:        true,
	PropTextTransform:     true,
	PropVisibility:        true,
	PropVolume:            true,
	PropWhiteSpace:        true,
	PropWidows:            true,
	PropWordSpacing:       true,
}

// Inherited reports whether a property inherits from the parent node when no
// declaration sets it.
func (p PropertyID) Inherited() bool {
	if p >= NProperties {
		return false
	}
	return inheritedProperties[p]
}

// StyleBlock names the storage block a property's computed value lives in.
type StyleBlock uint8

const (
	BlockCommon StyleBlock = iota
	BlockUncommon
	BlockPage
	BlockAural
)

var propertyBlocks = map[PropertyID]StyleBlock{
	PropBorderSpacing:    BlockUncommon,
	PropClip:             BlockUncommon,
	PropContent:          BlockUncommon,
	PropCounterIncrement: BlockUncommon,
	PropCounterReset:     BlockUncommon,
	PropCursor:           BlockUncommon,
	PropLetterSpacing:    BlockUncommon,
	PropOutlineColor:     BlockUncommon,
	PropOutlineWidth:     BlockUncommon,
	PropQuotes:           BlockUncommon,
	PropWordSpacing:      BlockUncommon,

	PropOrphans:         BlockPage,
	PropPageBreakAfter:  BlockPage,
	PropPageBreakBefore: BlockPage,
	PropPageBreakInside: BlockPage,
	PropWidows:          BlockPage,

	PropPauseAfter:  BlockAural,
	PropPauseBefore: BlockAural,
	PropPitch:       BlockAural,
	PropSpeak:       BlockAural,
	PropSpeechRate:  BlockAural,
	PropVolume:      BlockAural,
}

// Block returns the storage block of the property.
func (p PropertyID) Block() StyleBlock {
	if b, ok := propertyBlocks[p]; ok {
		return b
	}
	return BlockCommon
}
