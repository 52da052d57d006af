package compose

import (
	"strings"
	"unicode/utf8"

	"github.com/tdewolff/canvas"

	"github.com/promoforge/compositor/asset"
	"github.com/promoforge/compositor/binding"
	"github.com/promoforge/compositor/layout"
)

const (
	maxTitleRunes    = 48
	ellipsis         = "…"
	footerDateLayout = "Jan 2, 2006"
	headerCaption    = "Social campaign studio"
)

// Outline is the draw plan of one render: every piece of text already fitted
// and positioned by the layout rules, before any pixel is touched. It is
// what tests and the CLI outline dump inspect, and Render draws from it.
type Outline struct {
	Format         asset.Format  `json:"format"`
	Profile        asset.Profile `json:"profile"`
	Brand          string        `json:"brand"`
	Initial        string        `json:"initial"`
	Title          string        `json:"title,omitempty"`
	TitleTruncated bool          `json:"titleTruncated,omitempty"`
	Lines          []layout.Line `json:"lines"`
	Chips          []layout.Chip `json:"chips"`
	Footer         string        `json:"footer"`
}

// Outline computes the draw plan for a request. Identical requests within
// the same footer-date tick produce identical outlines.
func (c *Compositor) Outline(req asset.Request) (*Outline, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	p := asset.ProfileOf(req.Format)

	brand := req.BrandName
	if brand == "" {
		brand = c.brandLabel
	}
	date := c.now().Format(footerDateLayout)
	vars := map[string]string{"brand": brand, "title": req.Title, "date": date}

	title := binding.Interpolate(req.Title, vars)
	truncatedTitle := false
	if utf8.RuneCountInString(title) > maxTitleRunes {
		title = string([]rune(title)[:maxTitleRunes])
		truncatedTitle = true
	}

	bodyFace := c.face(p.BodyFontSize, ink, canvas.FontRegular)
	pad := panelPad(p)
	top := bodyTop(p, title != "")
	maxWidth := p.ContentWidth() - 2*pad
	maxHeight := p.ContentBoxTop + p.ContentBoxHeight - pad - top
	lines := layout.WrapBody(binding.Interpolate(req.Content, vars), maxWidth, maxHeight, p.LineHeight, bodyFace.TextWidth)

	tagFace := c.face(p.TagFontSize, ink, canvas.FontRegular)
	chips := layout.ChipRow(req.Hashtags, p.MaxHashtags,
		p.OuterMargin, p.Width-p.OuterMargin, chipPad(p), chipGap(p), tagFace.TextWidth)

	return &Outline{
		Format:         req.Format,
		Profile:        p,
		Brand:          brand,
		Initial:        badgeInitial(brand),
		Title:          title,
		TitleTruncated: truncatedTitle,
		Lines:          lines,
		Chips:          chips,
		Footer:         c.brandLabel + " · " + date,
	}, nil
}

func badgeInitial(brand string) string {
	for _, r := range brand {
		return strings.ToUpper(string(r))
	}
	return strings.ToUpper(DefaultBrandLabel[:1])
}

// Panel geometry shared by Outline and the draw passes.

func panelPad(p asset.Profile) float64 { return p.BodyFontSize }

func bodyTop(p asset.Profile, hasTitle bool) float64 {
	top := p.ContentBoxTop + panelPad(p)
	if hasTitle {
		top += p.TitleFontSize * 1.5
	}
	return top
}

// Chip metrics, derived from the profile so both formats scale together.

func chipPad(p asset.Profile) float64 { return p.TagFontSize * 1.8 }
func chipGap(p asset.Profile) float64 { return p.ChipHeight * 0.3 }

func chipRowY(p asset.Profile) float64 {
	return p.Height - p.OuterMargin - p.ChipHeight - p.FooterFontSize*2.2
}
