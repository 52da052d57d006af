package export

import (
	"context"
	"errors"
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promoforge/compositor/asset"
	"github.com/promoforge/compositor/history"
)

// stubRenderer paints a solid surface sized by the request's format and
// counts calls, so tests can assert pipelines without a real compositor.
type stubRenderer struct {
	calls []asset.Request
	err   error
}

func (r *stubRenderer) Render(req asset.Request) (image.Image, error) {
	r.calls = append(r.calls, req)
	if r.err != nil {
		return nil, r.err
	}
	p := asset.ProfileOf(req.Format)
	return image.NewRGBA(image.Rect(0, 0, int(p.Width), int(p.Height))), nil
}

// failingStore rejects every write.
type failingStore struct {
	history.Store
}

func (failingStore) Append(context.Context, asset.Request, time.Time) (history.Entry, error) {
	return history.Entry{}, history.ErrStorageUnavailable
}

func testRequest() asset.Request {
	return asset.Request{
		Content:  "summer sale starts now",
		Title:    "Summer",
		Hashtags: []string{"#sale"},
		Format:   asset.Square,
	}
}

func TestPreviewDoesNotRecord(t *testing.T) {
	ctx := context.Background()
	store := history.NewMemoryStore()
	c := New(&stubRenderer{}, store)

	rendered, err := c.Preview(ctx, testRequest())
	require.NoError(t, err)
	assert.Equal(t, 1080, rendered.Width)
	assert.Equal(t, 1080, rendered.Height)
	assert.Equal(t, asset.PNG, rendered.Encoding)
	assert.NotEmpty(t, rendered.Data)

	entries, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCommitRecords(t *testing.T) {
	ctx := context.Background()
	store := history.NewMemoryStore()
	at := time.Date(2025, 7, 4, 10, 0, 0, 0, time.UTC)
	c := New(&stubRenderer{}, store, WithClock(func() time.Time { return at }))

	_, err := c.Commit(ctx, testRequest())
	require.NoError(t, err)

	entries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, testRequest(), entries[0].Request())
	assert.Equal(t, at, entries[0].CreatedAt)
}

func TestCommitKeepsAssetOnStorageFailure(t *testing.T) {
	c := New(&stubRenderer{}, failingStore{})

	rendered, err := c.Commit(context.Background(), testRequest())
	require.ErrorIs(t, err, history.ErrStorageUnavailable)
	assert.NotEmpty(t, rendered.Data, "asset must survive a recording failure")
}

func TestCommitRenderFailure(t *testing.T) {
	store := history.NewMemoryStore()
	boom := errors.New("no surface")
	c := New(&stubRenderer{err: boom}, store)

	_, err := c.Commit(context.Background(), testRequest())
	require.ErrorIs(t, err, boom)

	entries, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries, "failed render must not be recorded")
}

func TestReplayFidelity(t *testing.T) {
	ctx := context.Background()
	store := history.NewMemoryStore()
	renderer := &stubRenderer{}
	c := New(renderer, store)

	original, err := c.Commit(ctx, testRequest())
	require.NoError(t, err)
	entries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	replayed, ok, err := c.Replay(ctx, entries[0].ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, original, replayed, "replay re-renders the identical request")

	// The renderer saw the same request both times.
	require.Len(t, renderer.calls, 2)
	assert.Equal(t, renderer.calls[0], renderer.calls[1])

	// Replaying records nothing.
	entries, err = store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestReplayMiss(t *testing.T) {
	c := New(&stubRenderer{}, history.NewMemoryStore())

	_, ok, err := c.Replay(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestJPEGEncoding(t *testing.T) {
	c := New(&stubRenderer{}, history.NewMemoryStore(), WithEncoding(asset.JPEG))

	rendered, err := c.Preview(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, asset.JPEG, rendered.Encoding)
	// JPEG magic bytes.
	require.GreaterOrEqual(t, len(rendered.Data), 2)
	assert.Equal(t, []byte{0xff, 0xd8}, rendered.Data[:2])
}

func TestThumbnailFits(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1080, 1920))
	data, err := Thumbnail(img, 270, 270, asset.PNG)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
