package style

import "github.com/npillmayer/cascade/intern"

// Getters and setters for the common property block. Getters return the tag
// and, where present, the payload; setters overwrite unconditionally, the
// cascade decides beforehand whether a write wins.

// BackgroundColor returns the computed background color.
func (cs *ComputedStyle) BackgroundColor() (ColorKind, RGBA) {
	return cs.backgroundColorKind, cs.backgroundColor
}

// SetBackgroundColor sets the background color.
func (cs *ComputedStyle) SetBackgroundColor(k ColorKind, c RGBA) {
	cs.backgroundColorKind, cs.backgroundColor = k, c
}

// BorderCollapse returns the computed table border model.
func (cs *ComputedStyle) BorderCollapse() BorderCollapse { return cs.borderCollapse }

// SetBorderCollapse sets the table border model.
func (cs *ComputedStyle) SetBorderCollapse(v BorderCollapse) { cs.borderCollapse = v }

// BorderColor returns the computed border color of one side.
func (cs *ComputedStyle) BorderColor(s Side) (ColorKind, RGBA) {
	return cs.borderColorKind[s], cs.borderColor[s]
}

// SetBorderColor sets the border color of one side.
func (cs *ComputedStyle) SetBorderColor(s Side, k ColorKind, c RGBA) {
	cs.borderColorKind[s], cs.borderColor[s] = k, c
}

// BorderStyle returns the computed border line style of one side.
func (cs *ComputedStyle) BorderStyle(s Side) BorderStyle { return cs.borderStyle[s] }

// SetBorderStyle sets the border line style of one side.
func (cs *ComputedStyle) SetBorderStyle(s Side, v BorderStyle) { cs.borderStyle[s] = v }

// BorderWidth returns the computed border width of one side.
func (cs *ComputedStyle) BorderWidth(s Side) (BorderWidthKind, Length) {
	return cs.borderWidthKind[s], cs.borderWidth[s]
}

// SetBorderWidth sets the border width of one side.
func (cs *ComputedStyle) SetBorderWidth(s Side, k BorderWidthKind, l Length) {
	cs.borderWidthKind[s], cs.borderWidth[s] = k, l
}

// CaptionSide returns the computed caption placement.
func (cs *ComputedStyle) CaptionSide() CaptionSide { return cs.captionSide }

// SetCaptionSide sets the caption placement.
func (cs *ComputedStyle) SetCaptionSide(v CaptionSide) { cs.captionSide = v }

// Clear returns the computed float clearance.
func (cs *ComputedStyle) Clear() Clear { return cs.clear }

// SetClear sets the float clearance.
func (cs *ComputedStyle) SetClear(v Clear) { cs.clear = v }

// Color returns the computed foreground color.
func (cs *ComputedStyle) Color() (ColorKind, RGBA) { return cs.colorKind, cs.color }

// SetColor sets the foreground color.
func (cs *ComputedStyle) SetColor(k ColorKind, c RGBA) { cs.colorKind, cs.color = k, c }

// Direction returns the computed writing direction.
func (cs *ComputedStyle) Direction() Direction { return cs.direction }

// SetDirection sets the writing direction.
func (cs *ComputedStyle) SetDirection(v Direction) { cs.direction = v }

// Display returns the computed display type.
func (cs *ComputedStyle) Display() Display { return cs.display }

// SetDisplay sets the display type.
func (cs *ComputedStyle) SetDisplay(v Display) { cs.display = v }

// EmptyCells returns the computed empty cell handling.
func (cs *ComputedStyle) EmptyCells() EmptyCells { return cs.emptyCells }

// SetEmptyCells sets the empty cell handling.
func (cs *ComputedStyle) SetEmptyCells(v EmptyCells) { cs.emptyCells = v }

// Float returns the computed float placement.
func (cs *ComputedStyle) Float() Float { return cs.floating }

// SetFloat sets the float placement.
func (cs *ComputedStyle) SetFloat(v Float) { cs.floating = v }

// FontFamily returns the computed font family list. The kind names the
// closing generic family, if any.
func (cs *ComputedStyle) FontFamily() (FontFamilyKind, []*intern.String) {
	return cs.fontFamilyKind, cs.fontFamily
}

// SetFontFamily sets the font family list.
func (cs *ComputedStyle) SetFontFamily(k FontFamilyKind, names []*intern.String) {
	cs.fontFamilyKind, cs.fontFamily = k, names
}

// FontSize returns the computed font size.
func (cs *ComputedStyle) FontSize() (FontSizeKind, Length) {
	return cs.fontSizeKind, cs.fontSize
}

// SetFontSize sets the font size.
func (cs *ComputedStyle) SetFontSize(k FontSizeKind, l Length) {
	cs.fontSizeKind, cs.fontSize = k, l
}

// FontStyle returns the computed font slant.
func (cs *ComputedStyle) FontStyle() FontStyle { return cs.fontStyle }

// SetFontStyle sets the font slant.
func (cs *ComputedStyle) SetFontStyle(v FontStyle) { cs.fontStyle = v }

// FontVariant returns the computed font variant.
func (cs *ComputedStyle) FontVariant() FontVariant { return cs.fontVariant }

// SetFontVariant sets the font variant.
func (cs *ComputedStyle) SetFontVariant(v FontVariant) { cs.fontVariant = v }

// FontWeight returns the computed font weight.
func (cs *ComputedStyle) FontWeight() FontWeight { return cs.fontWeight }

// SetFontWeight sets the font weight.
func (cs *ComputedStyle) SetFontWeight(v FontWeight) { cs.fontWeight = v }

// Height returns the computed height.
func (cs *ComputedStyle) Height() (SizeKind, Length) { return cs.heightKind, cs.height }

// SetHeight sets the height.
func (cs *ComputedStyle) SetHeight(k SizeKind, l Length) { cs.heightKind, cs.height = k, l }

// LineHeight returns the computed line height. For LineHeightNumber the
// length's value is the unitless factor and its unit is meaningless.
func (cs *ComputedStyle) LineHeight() (LineHeightKind, Length) {
	return cs.lineHeightKind, cs.lineHeight
}

// SetLineHeight sets the line height.
func (cs *ComputedStyle) SetLineHeight(k LineHeightKind, l Length) {
	cs.lineHeightKind, cs.lineHeight = k, l
}

// ListStylePosition returns the computed marker placement.
func (cs *ComputedStyle) ListStylePosition() ListStylePosition { return cs.listStylePosition }

// SetListStylePosition sets the marker placement.
func (cs *ComputedStyle) SetListStylePosition(v ListStylePosition) { cs.listStylePosition = v }

// ListStyleType returns the computed marker type.
func (cs *ComputedStyle) ListStyleType() ListStyleType { return cs.listStyleType }

// SetListStyleType sets the marker type.
func (cs *ComputedStyle) SetListStyleType(v ListStyleType) { cs.listStyleType = v }

// Margin returns the computed margin of one side.
func (cs *ComputedStyle) Margin(s Side) (MarginKind, Length) {
	return cs.marginKind[s], cs.margin[s]
}

// SetMargin sets the margin of one side.
func (cs *ComputedStyle) SetMargin(s Side, k MarginKind, l Length) {
	cs.marginKind[s], cs.margin[s] = k, l
}

// MaxHeight returns the computed maximum height.
func (cs *ComputedStyle) MaxHeight() (MaxSizeKind, Length) {
	return cs.maxHeightKind, cs.maxHeight
}

// SetMaxHeight sets the maximum height.
func (cs *ComputedStyle) SetMaxHeight(k MaxSizeKind, l Length) {
	cs.maxHeightKind, cs.maxHeight = k, l
}

// MaxWidth returns the computed maximum width.
func (cs *ComputedStyle) MaxWidth() (MaxSizeKind, Length) {
	return cs.maxWidthKind, cs.maxWidth
}

// SetMaxWidth sets the maximum width.
func (cs *ComputedStyle) SetMaxWidth(k MaxSizeKind, l Length) {
	cs.maxWidthKind, cs.maxWidth = k, l
}

// MinHeight returns the computed minimum height.
func (cs *ComputedStyle) MinHeight() (MinSizeKind, Length) {
	return cs.minHeightKind, cs.minHeight
}

// SetMinHeight sets the minimum height.
func (cs *ComputedStyle) SetMinHeight(k MinSizeKind, l Length) {
	cs.minHeightKind, cs.minHeight = k, l
}

// MinWidth returns the computed minimum width.
func (cs *ComputedStyle) MinWidth() (MinSizeKind, Length) {
	return cs.minWidthKind, cs.minWidth
}

// SetMinWidth sets the minimum width.
func (cs *ComputedStyle) SetMinWidth(k MinSizeKind, l Length) {
	cs.minWidthKind, cs.minWidth = k, l
}

// Offset returns the computed box offset of one side (the top, right,
// bottom and left properties).
func (cs *ComputedStyle) Offset(s Side) (OffsetKind, Length) {
	return cs.offsetKind[s], cs.offset[s]
}

// SetOffset sets the box offset of one side.
func (cs *ComputedStyle) SetOffset(s Side, k OffsetKind, l Length) {
	cs.offsetKind[s], cs.offset[s] = k, l
}

// Opacity returns the computed opacity.
func (cs *ComputedStyle) Opacity() (OpacityKind, Fixed) { return cs.opacityKind, cs.opacity }

// SetOpacity sets the opacity.
func (cs *ComputedStyle) SetOpacity(k OpacityKind, v Fixed) { cs.opacityKind, cs.opacity = k, v }

// Overflow returns the computed overflow handling.
func (cs *ComputedStyle) Overflow() Overflow { return cs.overflow }

// SetOverflow sets the overflow handling.
func (cs *ComputedStyle) SetOverflow(v Overflow) { cs.overflow = v }

// Padding returns the computed padding of one side.
func (cs *ComputedStyle) Padding(s Side) (PaddingKind, Length) {
	return cs.paddingKind[s], cs.padding[s]
}

// SetPadding sets the padding of one side.
func (cs *ComputedStyle) SetPadding(s Side, k PaddingKind, l Length) {
	cs.paddingKind[s], cs.padding[s] = k, l
}

// Position returns the computed positioning scheme.
func (cs *ComputedStyle) Position() Position { return cs.position }

// SetPosition sets the positioning scheme.
func (cs *ComputedStyle) SetPosition(v Position) { cs.position = v }

// TableLayout returns the computed table layout algorithm.
func (cs *ComputedStyle) TableLayout() TableLayout { return cs.tableLayout }

// SetTableLayout sets the table layout algorithm.
func (cs *ComputedStyle) SetTableLayout(v TableLayout) { cs.tableLayout = v }

// TextAlign returns the computed text alignment.
func (cs *ComputedStyle) TextAlign() TextAlign { return cs.textAlign }

// SetTextAlign sets the text alignment.
func (cs *ComputedStyle) SetTextAlign(v TextAlign) { cs.textAlign = v }

// TextDecoration returns the computed decoration line set.
func (cs *ComputedStyle) TextDecoration() TextDecoration { return cs.textDecoration }

// SetTextDecoration sets the decoration line set.
func (cs *ComputedStyle) SetTextDecoration(v TextDecoration) { cs.textDecoration = v }

// TextIndent returns the computed text indentation.
func (cs *ComputedStyle) TextIndent() (TextIndentKind, Length) {
	return cs.textIndentKind, cs.textIndent
}

// SetTextIndent sets the text indentation.
func (cs *ComputedStyle) SetTextIndent(k TextIndentKind, l Length) {
	cs.textIndentKind, cs.textIndent = k, l
}

// TextTransform returns the computed case transform.
func (cs *ComputedStyle) TextTransform() TextTransform { return cs.textTransform }

// SetTextTransform sets the case transform.
func (cs *ComputedStyle) SetTextTransform(v TextTransform) { cs.textTransform = v }

// UnicodeBidi returns the computed bidi embedding behavior.
func (cs *ComputedStyle) UnicodeBidi() UnicodeBidi { return cs.unicodeBidi }

// SetUnicodeBidi sets the bidi embedding behavior.
func (cs *ComputedStyle) SetUnicodeBidi(v UnicodeBidi) { cs.unicodeBidi = v }

// VerticalAlign returns the computed vertical alignment.
func (cs *ComputedStyle) VerticalAlign() (VerticalAlignKind, Length) {
	return cs.verticalAlignKind, cs.verticalAlign
}

// SetVerticalAlign sets the vertical alignment.
func (cs *ComputedStyle) SetVerticalAlign(k VerticalAlignKind, l Length) {
	cs.verticalAlignKind, cs.verticalAlign = k, l
}

// Visibility returns the computed box visibility.
func (cs *ComputedStyle) Visibility() Visibility { return cs.visibility }

// SetVisibility sets the box visibility.
func (cs *ComputedStyle) SetVisibility(v Visibility) { cs.visibility = v }

// WhiteSpace returns the computed white space handling.
func (cs *ComputedStyle) WhiteSpace() WhiteSpace { return cs.whiteSpace }

// SetWhiteSpace sets the white space handling.
func (cs *ComputedStyle) SetWhiteSpace(v WhiteSpace) { cs.whiteSpace = v }

// Width returns the computed width.
func (cs *ComputedStyle) Width() (SizeKind, Length) { return cs.widthKind, cs.width }

// SetWidth sets the width.
func (cs *ComputedStyle) SetWidth(k SizeKind, l Length) { cs.widthKind, cs.width = k, l }

// ZIndex returns the computed stacking level.
func (cs *ComputedStyle) ZIndex() (ZIndexKind, int32) { return cs.zIndexKind, cs.zIndex }

// SetZIndex sets the stacking level.
func (cs *ComputedStyle) SetZIndex(k ZIndexKind, v int32) { cs.zIndexKind, cs.zIndex = k, v }
