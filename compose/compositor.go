// Package compose draws social assets. A Compositor renders an
// asset.Request onto a raster surface through a fixed sequence of layered
// passes; all geometry comes from the request's format profile so both
// canvases share one code path.
package compose

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/rs/zerolog"
	"github.com/tdewolff/canvas"

	"github.com/promoforge/compositor/fonts"
)

// ErrSurfaceUnavailable reports that the rendering surface or its text
// measurement capability could not be acquired. The render call fails whole;
// no partial output is produced.
var ErrSurfaceUnavailable = errors.New("compose: rendering surface unavailable")

// DefaultBrandLabel is used when a request carries no brand name, and always
// in the footer caption.
const DefaultBrandLabel = "PromoForge"

// Canvas font sizes are points; our profile values are pixels and the
// surface is rasterized at one unit per pixel.
const ptPerPx = 72.0 / 25.4

// Compositor renders requests. It holds no mutable state between calls:
// the font family is immutable after New, so concurrent renders are safe.
type Compositor struct {
	family     *canvas.FontFamily
	brandLabel string
	now        func() time.Time
	log        zerolog.Logger
}

// Option configures a Compositor.
type Option func(*Compositor)

// WithBrandLabel overrides the fallback brand label and footer caption.
func WithBrandLabel(label string) Option {
	return func(c *Compositor) {
		if label != "" {
			c.brandLabel = label
		}
	}
}

// WithClock injects the clock used for the footer date stamp. Replays keep
// the observed behavior of stamping the render-time date; callers that want
// created-at stamping instead can inject a clock pinned to the entry.
func WithClock(now func() time.Time) Option {
	return func(c *Compositor) { c.now = now }
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Compositor) { c.log = log }
}

// New builds a Compositor, loading the built-in font family once. A font
// loading failure means no text can be measured or drawn, so it surfaces as
// ErrSurfaceUnavailable and no Compositor is returned.
func New(opts ...Option) (*Compositor, error) {
	c := &Compositor{
		brandLabel: DefaultBrandLabel,
		now:        time.Now,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	family, err := fonts.Family()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSurfaceUnavailable, err)
	}
	c.family = family
	return c, nil
}

func (c *Compositor) face(sizePx float64, col color.RGBA, style canvas.FontStyle) *canvas.FontFace {
	return c.family.Face(sizePx*ptPerPx, col, style, canvas.FontNormal)
}
