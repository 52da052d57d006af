package compose

import (
	"image"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/promoforge/compositor/asset"
)

// Palette. The scene is dark-on-gradient with translucent white structure,
// so one ink color serves every text pass.
var (
	gradientTop    = canvas.Hex("#312e81")
	gradientBottom = canvas.Hex("#db2777")
	badgeTop       = canvas.Hex("#f59e0b")
	badgeBottom    = canvas.Hex("#ef4444")
	ink            = canvas.Hex("#ffffff")
)

// Render draws the full layered scene for a request and rasterizes it at
// one pixel per canvas unit, yielding a surface of the profile's dimensions.
func (c *Compositor) Render(req asset.Request) (image.Image, error) {
	out, err := c.Outline(req)
	if err != nil {
		return nil, err
	}
	p := out.Profile

	surface := canvas.New(p.Width, p.Height)
	ctx := canvas.NewContext(surface)
	ctx.SetCoordSystem(canvas.CartesianIV) // top-left origin, like the layout

	c.drawBackground(ctx, p)
	c.drawRings(ctx, p)
	c.drawBadge(ctx, p, out.Initial)
	c.drawHeader(ctx, p, out.Brand)
	c.drawPanel(ctx, p)
	c.drawTitle(ctx, p, out)
	c.drawBody(ctx, p, out)
	c.drawChips(ctx, p, out)
	c.drawFooter(ctx, p, out.Footer)

	c.log.Debug().
		Str("format", string(out.Format)).
		Int("lines", len(out.Lines)).
		Int("chips", len(out.Chips)).
		Msg("scene drawn")
	return rasterizer.Draw(surface, canvas.DPMM(1.0), canvas.DefaultColorSpace), nil
}

// Pass 1: diagonal two-stop gradient across the whole canvas.
func (c *Compositor) drawBackground(ctx *canvas.Context, p asset.Profile) {
	gradient := canvas.NewLinearGradient(canvas.Point{X: 0, Y: 0}, canvas.Point{X: p.Width, Y: p.Height})
	gradient.Add(0.0, gradientTop)
	gradient.Add(1.0, gradientBottom)
	ctx.SetFillGradient(gradient)
	ctx.SetStrokeColor(canvas.Transparent)
	ctx.DrawPath(0, 0, canvas.Rectangle(p.Width, p.Height))
}

// Pass 2: two faint decorative ring outlines at profile-relative positions.
func (c *Compositor) drawRings(ctx *canvas.Context, p asset.Profile) {
	ctx.SetFillColor(canvas.Transparent)
	ctx.SetStrokeColor(canvas.RGBA(1, 1, 1, 0.06))
	ctx.SetStrokeWidth(p.Width * 0.004)
	for _, ring := range []struct{ cx, cy, r float64 }{
		{p.Width * 0.86, p.Height * 0.16, p.Width * 0.24},
		{p.Width * 0.10, p.Height * 0.88, p.Width * 0.30},
	} {
		ctx.DrawPath(ring.cx-ring.r, ring.cy-ring.r, canvas.Circle(ring.r))
	}
}

// Pass 3: brand badge with its own gradient and a centered initial.
func (c *Compositor) drawBadge(ctx *canvas.Context, p asset.Profile, initial string) {
	size := p.BadgeSize
	gradient := canvas.NewLinearGradient(
		canvas.Point{X: p.OuterMargin, Y: p.OuterMargin},
		canvas.Point{X: p.OuterMargin + size, Y: p.OuterMargin + size})
	gradient.Add(0.0, badgeTop)
	gradient.Add(1.0, badgeBottom)
	ctx.SetFillGradient(gradient)
	ctx.SetStrokeColor(canvas.Transparent)
	ctx.DrawPath(p.OuterMargin, p.OuterMargin, canvas.RoundedRectangle(size, size, size*0.24))

	face := c.face(size*0.46, ink, canvas.FontBold)
	baseline := p.OuterMargin + (size+face.Metrics().CapHeight)/2
	ctx.DrawText(p.OuterMargin+size/2, baseline, canvas.NewTextLine(face, initial, canvas.Center))
}

// Pass 4: brand name and the fixed caption, right of the badge.
func (c *Compositor) drawHeader(ctx *canvas.Context, p asset.Profile, brand string) {
	x := p.OuterMargin + p.BadgeSize*1.3
	nameFace := c.face(p.TitleFontSize*0.56, ink, canvas.FontBold)
	nameBaseline := p.OuterMargin + p.BadgeSize*0.42
	ctx.DrawText(x, nameBaseline, canvas.NewTextLine(nameFace, brand, canvas.Left))

	captionFace := c.face(p.FooterFontSize, canvas.RGBA(1, 1, 1, 0.7), canvas.FontRegular)
	ctx.DrawText(x, nameBaseline+p.FooterFontSize*1.6, canvas.NewTextLine(captionFace, headerCaption, canvas.Left))
}

// Pass 5: the semi-transparent content panel with a subtle border.
func (c *Compositor) drawPanel(ctx *canvas.Context, p asset.Profile) {
	ctx.SetFillColor(canvas.RGBA(1, 1, 1, 0.08))
	ctx.SetStrokeColor(canvas.RGBA(1, 1, 1, 0.16))
	ctx.SetStrokeWidth(2)
	ctx.DrawPath(p.OuterMargin, p.ContentBoxTop,
		canvas.RoundedRectangle(p.ContentWidth(), p.ContentBoxHeight, p.BodyFontSize*0.8))
}

// Pass 6: optional title line at the top of the panel.
func (c *Compositor) drawTitle(ctx *canvas.Context, p asset.Profile, out *Outline) {
	if out.Title == "" {
		return
	}
	text := out.Title
	if out.TitleTruncated {
		text += ellipsis
	}
	face := c.face(p.TitleFontSize, ink, canvas.FontBold)
	baseline := p.ContentBoxTop + panelPad(p) + face.Metrics().Ascent
	ctx.DrawText(p.OuterMargin+panelPad(p), baseline, canvas.NewTextLine(face, text, canvas.Left))
}

// Pass 7: wrapped body lines at increasing offsets below the title.
func (c *Compositor) drawBody(ctx *canvas.Context, p asset.Profile, out *Outline) {
	face := c.face(p.BodyFontSize, ink, canvas.FontRegular)
	ascent := face.Metrics().Ascent
	x := p.OuterMargin + panelPad(p)
	top := bodyTop(p, out.Title != "")
	for i, line := range out.Lines {
		text := line.Text
		if line.Truncated {
			text += ellipsis
		}
		baseline := top + float64(i)*p.LineHeight + ascent
		ctx.DrawText(x, baseline, canvas.NewTextLine(face, text, canvas.Left))
	}
}

// Pass 8: hashtag chips on their single row near the bottom.
func (c *Compositor) drawChips(ctx *canvas.Context, p asset.Profile, out *Outline) {
	if len(out.Chips) == 0 {
		return
	}
	face := c.face(p.TagFontSize, ink, canvas.FontRegular)
	y := chipRowY(p)
	baseline := y + (p.ChipHeight+face.Metrics().XHeight)/2
	for _, chip := range out.Chips {
		ctx.SetFillColor(canvas.RGBA(1, 1, 1, 0.14))
		ctx.SetStrokeColor(canvas.Transparent)
		ctx.DrawPath(chip.X, y, canvas.RoundedRectangle(chip.Width, p.ChipHeight, p.ChipHeight/2))
		ctx.DrawText(chip.X+chip.Width/2, baseline, canvas.NewTextLine(face, chip.Text, canvas.Center))
	}
}

// Pass 9: centered footer caption with the render-time date.
func (c *Compositor) drawFooter(ctx *canvas.Context, p asset.Profile, footer string) {
	face := c.face(p.FooterFontSize, canvas.RGBA(1, 1, 1, 0.8), canvas.FontRegular)
	ctx.DrawText(p.Width/2, p.Height-p.OuterMargin*0.45, canvas.NewTextLine(face, footer, canvas.Center))
}
