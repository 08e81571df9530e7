package style

import "github.com/npillmayer/cascade/intern"

// Accessors for the lazily allocated blocks. A getter on a missing block
// returns the property's initial value; a setter allocates the block on
// first use. Whether a tag in an allocated block is still the inherit
// placeholder only matters during styling, callers of a composed style never
// see one.

// BorderSpacing returns the computed horizontal and vertical cell spacing.
func (cs *ComputedStyle) BorderSpacing() (BorderSpacingKind, Length, Length) {
	if cs.uncommon == nil {
		return BorderSpacingSet, Length{Unit: UnitPX}, Length{Unit: UnitPX}
	}
	return cs.uncommon.borderSpacingKind, cs.uncommon.borderSpacing[0], cs.uncommon.borderSpacing[1]
}

// SetBorderSpacing sets the cell spacing.
func (cs *ComputedStyle) SetBorderSpacing(k BorderSpacingKind, h, v Length) {
	u := cs.ensureUncommon()
	u.borderSpacingKind, u.borderSpacing[0], u.borderSpacing[1] = k, h, v
}

// Clip returns the computed clipping rectangle.
func (cs *ComputedStyle) Clip() (ClipKind, ClipRect) {
	if cs.uncommon == nil {
		return ClipAuto, ClipRect{}
	}
	return cs.uncommon.clipKind, cs.uncommon.clip
}

// SetClip sets the clipping rectangle.
func (cs *ComputedStyle) SetClip(k ClipKind, r ClipRect) {
	u := cs.ensureUncommon()
	u.clipKind, u.clip = k, r
}

// Content returns the computed content list.
func (cs *ComputedStyle) Content() (ContentKind, []ContentItem) {
	if cs.uncommon == nil {
		return ContentNormal, nil
	}
	return cs.uncommon.contentKind, cs.uncommon.content
}

// SetContent sets the content list.
func (cs *ComputedStyle) SetContent(k ContentKind, items []ContentItem) {
	u := cs.ensureUncommon()
	u.contentKind, u.content = k, items
}

// CounterIncrement returns the computed counter increments.
func (cs *ComputedStyle) CounterIncrement() (CounterKind, []Counter) {
	if cs.uncommon == nil {
		return CounterNone, nil
	}
	return cs.uncommon.counterIncrementKind, cs.uncommon.counterIncrement
}

// SetCounterIncrement sets the counter increments.
func (cs *ComputedStyle) SetCounterIncrement(k CounterKind, cc []Counter) {
	u := cs.ensureUncommon()
	u.counterIncrementKind, u.counterIncrement = k, cc
}

// CounterReset returns the computed counter resets.
func (cs *ComputedStyle) CounterReset() (CounterKind, []Counter) {
	if cs.uncommon == nil {
		return CounterNone, nil
	}
	return cs.uncommon.counterResetKind, cs.uncommon.counterReset
}

// SetCounterReset sets the counter resets.
func (cs *ComputedStyle) SetCounterReset(k CounterKind, cc []Counter) {
	u := cs.ensureUncommon()
	u.counterResetKind, u.counterReset = k, cc
}

// Cursor returns the computed cursor: any custom cursor URIs plus the
// generic cursor to fall back on.
func (cs *ComputedStyle) Cursor() (CursorKind, []*intern.String) {
	if cs.uncommon == nil {
		return CursorAuto, nil
	}
	return cs.uncommon.cursorKind, cs.uncommon.cursorURIs
}

// SetCursor sets the cursor.
func (cs *ComputedStyle) SetCursor(k CursorKind, uris []*intern.String) {
	u := cs.ensureUncommon()
	u.cursorKind, u.cursorURIs = k, uris
}

// LetterSpacing returns the computed letter spacing.
func (cs *ComputedStyle) LetterSpacing() (SpacingKind, Length) {
	if cs.uncommon == nil {
		return SpacingNormal, Length{}
	}
	return cs.uncommon.letterSpacingKind, cs.uncommon.letterSpacing
}

// SetLetterSpacing sets the letter spacing.
func (cs *ComputedStyle) SetLetterSpacing(k SpacingKind, l Length) {
	u := cs.ensureUncommon()
	u.letterSpacingKind, u.letterSpacing = k, l
}

// OutlineColor returns the computed outline color.
func (cs *ComputedStyle) OutlineColor() (OutlineColorKind, RGBA) {
	if cs.uncommon == nil {
		return OutlineColorInvert, 0
	}
	return cs.uncommon.outlineColorKind, cs.uncommon.outlineColor
}

// SetOutlineColor sets the outline color.
func (cs *ComputedStyle) SetOutlineColor(k OutlineColorKind, c RGBA) {
	u := cs.ensureUncommon()
	u.outlineColorKind, u.outlineColor = k, c
}

// OutlineWidth returns the computed outline width.
func (cs *ComputedStyle) OutlineWidth() (BorderWidthKind, Length) {
	if cs.uncommon == nil {
		return BorderWidthMedium, Length{}
	}
	return cs.uncommon.outlineWidthKind, cs.uncommon.outlineWidth
}

// SetOutlineWidth sets the outline width.
func (cs *ComputedStyle) SetOutlineWidth(k BorderWidthKind, l Length) {
	u := cs.ensureUncommon()
	u.outlineWidthKind, u.outlineWidth = k, l
}

// Quotes returns the computed quotation marks as a flat list of open/close
// pairs.
func (cs *ComputedStyle) Quotes() (QuotesKind, []*intern.String) {
	if cs.uncommon == nil {
		return QuotesNone, nil
	}
	return cs.uncommon.quotesKind, cs.uncommon.quotes
}

// SetQuotes sets the quotation marks.
func (cs *ComputedStyle) SetQuotes(k QuotesKind, qq []*intern.String) {
	u := cs.ensureUncommon()
	u.quotesKind, u.quotes = k, qq
}

// WordSpacing returns the computed word spacing.
func (cs *ComputedStyle) WordSpacing() (SpacingKind, Length) {
	if cs.uncommon == nil {
		return SpacingNormal, Length{}
	}
	return cs.uncommon.wordSpacingKind, cs.uncommon.wordSpacing
}

// SetWordSpacing sets the word spacing.
func (cs *ComputedStyle) SetWordSpacing(k SpacingKind, l Length) {
	u := cs.ensureUncommon()
	u.wordSpacingKind, u.wordSpacing = k, l
}

// Orphans returns the computed minimum line count at the bottom of a page.
func (cs *ComputedStyle) Orphans() (CountKind, int32) {
	if cs.page == nil {
		return CountSet, 2
	}
	return cs.page.orphansKind, cs.page.orphans
}

// SetOrphans sets the orphans count.
func (cs *ComputedStyle) SetOrphans(k CountKind, n int32) {
	p := cs.ensurePage()
	p.orphansKind, p.orphans = k, n
}

// PageBreakAfter returns the computed page break behavior after the box.
func (cs *ComputedStyle) PageBreakAfter() PageBreak {
	if cs.page == nil {
		return PageBreakAuto
	}
	return cs.page.pageBreakAfter
}

// SetPageBreakAfter sets the page break behavior after the box.
func (cs *ComputedStyle) SetPageBreakAfter(v PageBreak) {
	cs.ensurePage().pageBreakAfter = v
}

// PageBreakBefore returns the computed page break behavior before the box.
func (cs *ComputedStyle) PageBreakBefore() PageBreak {
	if cs.page == nil {
		return PageBreakAuto
	}
	return cs.page.pageBreakBefore
}

// SetPageBreakBefore sets the page break behavior before the box.
func (cs *ComputedStyle) SetPageBreakBefore(v PageBreak) {
	cs.ensurePage().pageBreakBefore = v
}

// PageBreakInside returns the computed page break behavior inside the box.
func (cs *ComputedStyle) PageBreakInside() PageBreakInside {
	if cs.page == nil {
		return PageBreakInsideAuto
	}
	return cs.page.pageBreakInside
}

// SetPageBreakInside sets the page break behavior inside the box.
func (cs *ComputedStyle) SetPageBreakInside(v PageBreakInside) {
	cs.ensurePage().pageBreakInside = v
}

// Widows returns the computed minimum line count at the top of a page.
func (cs *ComputedStyle) Widows() (CountKind, int32) {
	if cs.page == nil {
		return CountSet, 2
	}
	return cs.page.widowsKind, cs.page.widows
}

// SetWidows sets the widows count.
func (cs *ComputedStyle) SetWidows(k CountKind, n int32) {
	p := cs.ensurePage()
	p.widowsKind, p.widows = k, n
}

// PauseAfter returns the computed pause after speaking the element.
func (cs *ComputedStyle) PauseAfter() (PauseKind, Length) {
	if cs.aural == nil {
		return PauseSet, Length{Unit: UnitMS}
	}
	return cs.aural.pauseAfterKind, cs.aural.pauseAfter
}

// SetPauseAfter sets the pause after the element.
func (cs *ComputedStyle) SetPauseAfter(k PauseKind, l Length) {
	a := cs.ensureAural()
	a.pauseAfterKind, a.pauseAfter = k, l
}

// PauseBefore returns the computed pause before speaking the element.
func (cs *ComputedStyle) PauseBefore() (PauseKind, Length) {
	if cs.aural == nil {
		return PauseSet, Length{Unit: UnitMS}
	}
	return cs.aural.pauseBeforeKind, cs.aural.pauseBefore
}

// SetPauseBefore sets the pause before the element.
func (cs *ComputedStyle) SetPauseBefore(k PauseKind, l Length) {
	a := cs.ensureAural()
	a.pauseBeforeKind, a.pauseBefore = k, l
}

// Pitch returns the computed voice pitch.
func (cs *ComputedStyle) Pitch() (PitchKind, Length) {
	if cs.aural == nil {
		return PitchMedium, Length{}
	}
	return cs.aural.pitchKind, cs.aural.pitch
}

// SetPitch sets the voice pitch.
func (cs *ComputedStyle) SetPitch(k PitchKind, l Length) {
	a := cs.ensureAural()
	a.pitchKind, a.pitch = k, l
}

// Speak returns the computed aural rendering mode.
func (cs *ComputedStyle) Speak() Speak {
	if cs.aural == nil {
		return SpeakNormal
	}
	return cs.aural.speak
}

// SetSpeak sets the aural rendering mode.
func (cs *ComputedStyle) SetSpeak(v Speak) {
	cs.ensureAural().speak = v
}

// SpeechRate returns the computed speech rate.
func (cs *ComputedStyle) SpeechRate() (SpeechRateKind, Fixed) {
	if cs.aural == nil {
		return SpeechRateMedium, 0
	}
	return cs.aural.speechRateKind, cs.aural.speechRate
}

// SetSpeechRate sets the speech rate.
func (cs *ComputedStyle) SetSpeechRate(k SpeechRateKind, v Fixed) {
	a := cs.ensureAural()
	a.speechRateKind, a.speechRate = k, v
}

// Volume returns the computed volume.
func (cs *ComputedStyle) Volume() (VolumeKind, Fixed) {
	if cs.aural == nil {
		return VolumeMedium, 0
	}
	return cs.aural.volumeKind, cs.aural.volume
}

// SetVolume sets the volume.
func (cs *ComputedStyle) SetVolume(k VolumeKind, v Fixed) {
	a := cs.ensureAural()
	a.volumeKind, a.volume = k, v
}
