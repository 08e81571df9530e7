package sheet

import (
	"sort"
	"strings"
)

// Media is a bit set of media types. A stylesheet, an @media rule and a
// selection run each carry one; a rule applies when the intersection of all
// three is non-empty.
type Media uint32

const (
	MediaAural Media = 1 << iota
	MediaBraille
	MediaEmbossed
	MediaHandheld
	MediaPrint
	MediaProjection
	MediaScreen
	MediaSpeech
	MediaTTY
	MediaTV

	// MediaAll matches every media type.
	MediaAll Media = 1<<10 - 1
)

var mediaNames = map[string]Media{
	"aural":      MediaAural,
	"braille":    MediaBraille,
	"embossed":   MediaEmbossed,
	"handheld":   MediaHandheld,
	"print":      MediaPrint,
	"projection": MediaProjection,
	"screen":     MediaScreen,
	"speech":     MediaSpeech,
	"tty":        MediaTTY,
	"tv":         MediaTV,
	"all":        MediaAll,
}

// MediaByName maps a media type name to its bit. Unknown names report false;
// per CSS 2.1 a rule under an unrecognized medium simply never applies.
func MediaByName(name string) (Media, bool) {
	m, ok := mediaNames[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}

func (m Media) String() string {
	if m == MediaAll {
		return "all"
	}
	var parts []string
	for name, bit := range mediaNames {
		if bit != MediaAll && m&bit != 0 {
			parts = append(parts, name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	// map iteration order is random
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}
