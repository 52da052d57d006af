package history

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/promoforge/compositor/asset"
)

// DefaultKey is the single key the export history lives under.
const DefaultKey = "promoforge:export-history"

// RedisStore persists the history as one JSON array under a fixed key.
// The whole collection is small by construction (MaxEntries), so read-
// modify-write of the full array is simpler than a per-entry scheme and
// keeps eviction atomic with the append. Writers are serialized in-process.
type RedisStore struct {
	client *redis.Client
	key    string
	log    zerolog.Logger

	mu    sync.Mutex
	newID func() string
}

var _ Store = (*RedisStore)(nil)

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithKey overrides the key the history lives under.
func WithKey(key string) RedisOption {
	return func(s *RedisStore) {
		if key != "" {
			s.key = key
		}
	}
}

func NewRedisStore(client *redis.Client, log zerolog.Logger, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		client: client,
		key:    DefaultKey,
		log:    log,
		newID:  func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// load reads the stored array. Backend or decode trouble degrades to an
// empty history; the returned error is non-nil only so writers can refuse
// to clobber state they could not read.
func (s *RedisStore) load(ctx context.Context) ([]Entry, error) {
	raw, err := s.client.Get(ctx, s.key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("corrupt history payload, starting fresh")
		return nil, nil
	}
	return entries, nil
}

func (s *RedisStore) save(ctx context.Context, entries []Entry) error {
	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("history: encode: %w", err)
	}
	if err := s.client.Set(ctx, s.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

func (s *RedisStore) Append(ctx context.Context, req asset.Request, createdAt time.Time) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return Entry{}, err
	}
	e := entryFrom(s.newID(), req, createdAt)
	if err := s.save(ctx, prepend(entries, e)); err != nil {
		return Entry{}, err
	}
	s.log.Debug().Str("id", e.ID).Str("format", e.Format).Msg("history entry appended")
	return e, nil
}

func (s *RedisStore) List(ctx context.Context) ([]Entry, error) {
	entries, err := s.load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("history unavailable, listing empty")
		return nil, nil
	}
	return entries, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (Entry, bool, error) {
	entries, err := s.load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Str("id", id).Msg("history unavailable, treating as miss")
		return Entry{}, false, nil
	}
	for _, e := range entries {
		if e.ID == id {
			return e, true, nil
		}
	}
	return Entry{}, false, nil
}

func (s *RedisStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return err
	}
	for i, e := range entries {
		if e.ID == id {
			return s.save(ctx, append(entries[:i], entries[i+1:]...))
		}
	}
	return nil
}
