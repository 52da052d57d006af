package layout

// Chip is one hashtag pill, positioned on the single chip row.
type Chip struct {
	Text  string
	X     float64
	Width float64
}

// ChipRow packs hashtags into a single left-to-right row of chips. Tags
// beyond maxTags are ignored; after that, each chip takes the measured tag
// width plus pad, and packing stops at the first chip whose right edge would
// cross maxRight. Dropped tags are not wrapped to another row. Chips never
// overlap: each starts gap pixels after the previous one ends.
func ChipRow(tags []string, maxTags int, startX, maxRight, pad, gap float64, measure Measure) []Chip {
	if maxTags >= 0 && len(tags) > maxTags {
		tags = tags[:maxTags]
	}

	var chips []Chip
	cursorX := startX
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		width := measure(tag) + pad
		if cursorX+width > maxRight {
			break
		}
		chips = append(chips, Chip{Text: tag, X: cursorX, Width: width})
		cursorX += width + gap
	}
	return chips
}
