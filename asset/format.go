package asset

import "fmt"

// Format selects one of the supported output canvases.
type Format string

const (
	// Story is the tall 9:16 canvas used for story placements.
	Story Format = "story"
	// Square is the 1:1 feed canvas.
	Square Format = "square"
)

// ParseFormat maps user-facing format names onto a Format value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case Story:
		return Story, nil
	case Square:
		return Square, nil
	default:
		return "", fmt.Errorf("unknown format %q (want %q or %q)", s, Story, Square)
	}
}

// Profile bundles the layout constants of one output format. All values are
// pixels; the compositor never positions anything with literals outside of a
// profile, so both formats render through the same code path.
type Profile struct {
	Width            float64
	Height           float64
	OuterMargin      float64
	ContentBoxTop    float64
	ContentBoxHeight float64
	TitleFontSize    float64
	BodyFontSize     float64
	LineHeight       float64
	MaxHashtags      int
	FooterFontSize   float64
	BadgeSize        float64
	TagFontSize      float64
	ChipHeight       float64
}

// ContentWidth is the printable width between the outer margins.
func (p Profile) ContentWidth() float64 { return p.Width - 2*p.OuterMargin }

var profiles = map[Format]Profile{
	Story: {
		Width:            1080,
		Height:           1920,
		OuterMargin:      72,
		ContentBoxTop:    420,
		ContentBoxHeight: 980,
		TitleFontSize:    64,
		BodyFontSize:     44,
		LineHeight:       62,
		MaxHashtags:      5,
		FooterFontSize:   28,
		BadgeSize:        140,
		TagFontSize:      30,
		ChipHeight:       58,
	},
	Square: {
		Width:            1080,
		Height:           1080,
		OuterMargin:      64,
		ContentBoxTop:    300,
		ContentBoxHeight: 520,
		TitleFontSize:    52,
		BodyFontSize:     36,
		LineHeight:       50,
		MaxHashtags:      4,
		FooterFontSize:   24,
		BadgeSize:        120,
		TagFontSize:      26,
		ChipHeight:       50,
	},
}

// ProfileOf returns the layout constants for a format. It is total: an
// unrecognized value falls back to the Square profile so rendering can never
// fail on the lookup.
func ProfileOf(f Format) Profile {
	if p, ok := profiles[f]; ok {
		return p
	}
	return profiles[Square]
}
