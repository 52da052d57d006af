// Package export ties rendering to persistence. A Coordinator produces
// encoded assets and, on commit, records what was exported so it can be
// replayed later. Persistence trouble never voids a finished render.
package export

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/rs/zerolog"

	"github.com/promoforge/compositor/asset"
	"github.com/promoforge/compositor/history"
)

// Renderer renders a request onto a surface. *compose.Compositor is the
// production implementation.
type Renderer interface {
	Render(req asset.Request) (image.Image, error)
}

// Coordinator runs the render-encode-record pipeline.
type Coordinator struct {
	renderer Renderer
	store    history.Store
	enc      asset.Encoding
	now      func() time.Time
	log      zerolog.Logger
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithEncoding selects the output encoding for all exports. Default is PNG.
func WithEncoding(enc asset.Encoding) Option {
	return func(c *Coordinator) { c.enc = enc }
}

// WithClock injects the clock stamped onto history entries.
func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) { c.now = now }
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Coordinator) { c.log = log }
}

func New(renderer Renderer, store history.Store, opts ...Option) *Coordinator {
	c := &Coordinator{
		renderer: renderer,
		store:    store,
		enc:      asset.PNG,
		now:      time.Now,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Coordinator) render(req asset.Request) (asset.Rendered, error) {
	img, err := c.renderer.Render(req)
	if err != nil {
		return asset.Rendered{}, err
	}
	data, err := Encode(img, c.enc)
	if err != nil {
		return asset.Rendered{}, err
	}
	b := img.Bounds()
	return asset.Rendered{
		Data:     data,
		Format:   req.Format,
		Width:    b.Dx(),
		Height:   b.Dy(),
		Encoding: c.enc,
	}, nil
}

// Preview renders and encodes without touching history.
func (c *Coordinator) Preview(_ context.Context, req asset.Request) (asset.Rendered, error) {
	return c.render(req)
}

// Commit renders, encodes, and records the export. When recording fails the
// rendered asset is still returned alongside the wrapped storage error, so
// the caller keeps the output and decides what the failure means.
func (c *Coordinator) Commit(ctx context.Context, req asset.Request) (asset.Rendered, error) {
	rendered, err := c.render(req)
	if err != nil {
		return asset.Rendered{}, err
	}
	entry, err := c.store.Append(ctx, req, c.now())
	if err != nil {
		c.log.Warn().Err(err).Msg("export not recorded")
		return rendered, fmt.Errorf("export: record: %w", err)
	}
	c.log.Info().Str("id", entry.ID).Str("format", string(req.Format)).Msg("export recorded")
	return rendered, nil
}

// Replay re-renders a past export from its recorded request. A miss is
// (zero, false, nil). Replaying never appends a new history entry.
func (c *Coordinator) Replay(ctx context.Context, id string) (asset.Rendered, bool, error) {
	entry, ok, err := c.store.Get(ctx, id)
	if err != nil {
		return asset.Rendered{}, false, err
	}
	if !ok {
		return asset.Rendered{}, false, nil
	}
	rendered, err := c.render(entry.Request())
	if err != nil {
		return asset.Rendered{}, false, err
	}
	return rendered, true, nil
}
