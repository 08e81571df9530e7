package cascade

import "github.com/npillmayer/cascade/style"

// Paged media and aural properties. They live in their own extension blocks
// of the computed style; a document that never mentions them never pays for
// the storage.

func init() {
	register(style.PropOrphans, int32Entry(style.CountSet, 2,
		style.CountSet, style.CountSet,
		(*style.ComputedStyle).Orphans, (*style.ComputedStyle).SetOrphans))
	register(style.PropWidows, int32Entry(style.CountSet, 2,
		style.CountSet, style.CountSet,
		(*style.ComputedStyle).Widows, (*style.ComputedStyle).SetWidows))

	register(style.PropPageBreakAfter, keywordEntry(style.PageBreakAuto, style.PageBreakRight,
		(*style.ComputedStyle).PageBreakAfter, (*style.ComputedStyle).SetPageBreakAfter))
	register(style.PropPageBreakBefore, keywordEntry(style.PageBreakAuto, style.PageBreakRight,
		(*style.ComputedStyle).PageBreakBefore, (*style.ComputedStyle).SetPageBreakBefore))
	register(style.PropPageBreakInside, keywordEntry(style.PageBreakInsideAuto, style.PageBreakInsideAvoid,
		(*style.ComputedStyle).PageBreakInside, (*style.ComputedStyle).SetPageBreakInside))

	register(style.PropPauseAfter, lengthEntry(style.PauseSet, style.Length{Unit: style.UnitMS},
		style.PauseSet, style.PauseSet,
		(*style.ComputedStyle).PauseAfter, (*style.ComputedStyle).SetPauseAfter))
	register(style.PropPauseBefore, lengthEntry(style.PauseSet, style.Length{Unit: style.UnitMS},
		style.PauseSet, style.PauseSet,
		(*style.ComputedStyle).PauseBefore, (*style.ComputedStyle).SetPauseBefore))

	register(style.PropPitch, lengthEntry(style.PitchMedium, style.Length{},
		style.PitchSet, style.PitchSet,
		(*style.ComputedStyle).Pitch, (*style.ComputedStyle).SetPitch))

	register(style.PropSpeak, keywordEntry(style.SpeakNormal, style.SpeakSpellOut,
		(*style.ComputedStyle).Speak, (*style.ComputedStyle).SetSpeak))

	register(style.PropSpeechRate, fixedEntry(style.SpeechRateMedium, 0, style.SpeechRateSet,
		func(k style.SpeechRateKind) bool { return k == style.SpeechRateSet },
		(*style.ComputedStyle).SpeechRate, (*style.ComputedStyle).SetSpeechRate))

	register(style.PropVolume, fixedEntry(style.VolumeMedium, 0, style.VolumePercent,
		func(k style.VolumeKind) bool { return k == style.VolumeNumber || k == style.VolumePercent },
		(*style.ComputedStyle).Volume, (*style.ComputedStyle).SetVolume))
}
