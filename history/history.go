// Package history keeps a bounded, newest-first record of exported assets so
// any past export can be listed, replayed, or removed. Stores degrade rather
// than fail: when the backend is unreachable, reads report an empty history
// and writes surface ErrStorageUnavailable while the export itself stands.
package history

import (
	"context"
	"errors"
	"time"

	"github.com/promoforge/compositor/asset"
)

// MaxEntries bounds every store. Appending beyond it evicts the oldest.
const MaxEntries = 20

// ErrStorageUnavailable reports that the persistence backend could not be
// reached. Callers treat it as a degraded-mode signal, not a render failure.
var ErrStorageUnavailable = errors.New("history: storage unavailable")

// Entry is one exported asset, stored flat so the persisted form stays
// readable and diffable.
type Entry struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Title     string    `json:"title,omitempty"`
	BrandName string    `json:"brandName,omitempty"`
	Hashtags  []string  `json:"hashtags,omitempty"`
	Format    string    `json:"format"`
	CreatedAt time.Time `json:"createdAt"`
}

// Request reconstructs the render request this entry was exported from.
func (e Entry) Request() asset.Request {
	return asset.Request{
		Content:   e.Content,
		Title:     e.Title,
		BrandName: e.BrandName,
		Hashtags:  e.Hashtags,
		Format:    asset.Format(e.Format),
	}
}

// Store is the persistence capability behind export history.
type Store interface {
	// Append records a request as the newest entry, evicting past MaxEntries.
	Append(ctx context.Context, req asset.Request, createdAt time.Time) (Entry, error)
	// List returns entries newest first.
	List(ctx context.Context) ([]Entry, error)
	// Get looks up one entry by ID; a miss is (zero, false, nil).
	Get(ctx context.Context, id string) (Entry, bool, error)
	// Remove deletes an entry by ID. Removing a missing ID is a no-op.
	Remove(ctx context.Context, id string) error
}

func entryFrom(id string, req asset.Request, createdAt time.Time) Entry {
	return Entry{
		ID:        id,
		Content:   req.Content,
		Title:     req.Title,
		BrandName: req.BrandName,
		Hashtags:  req.Hashtags,
		Format:    string(req.Format),
		CreatedAt: createdAt,
	}
}

// prepend inserts e as the newest entry and trims to MaxEntries.
func prepend(entries []Entry, e Entry) []Entry {
	out := make([]Entry, 0, len(entries)+1)
	out = append(out, e)
	out = append(out, entries...)
	if len(out) > MaxEntries {
		out = out[:MaxEntries]
	}
	return out
}
