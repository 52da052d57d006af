package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promoforge/compositor/asset"
)

func newMockStore(t *testing.T) (*RedisStore, redismock.ClientMock) {
	t.Helper()
	client, mock := redismock.NewClientMock()
	s := NewRedisStore(client, zerolog.Nop())
	n := 0
	s.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return s, mock
}

func mustJSON(t *testing.T, entries []Entry) []byte {
	t.Helper()
	payload, err := json.Marshal(entries)
	require.NoError(t, err)
	return payload
}

func TestRedisAppendFirstEntry(t *testing.T) {
	s, mock := newMockStore(t)
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	req := asset.Request{Content: "first post", Format: asset.Story}

	want := entryFrom("id-1", req, at)
	mock.ExpectGet(DefaultKey).RedisNil()
	mock.ExpectSet(DefaultKey, mustJSON(t, []Entry{want}), 0).SetVal("OK")

	got, err := s.Append(context.Background(), req, at)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisAppendEvictsOldest(t *testing.T) {
	s, mock := newMockStore(t)
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	existing := make([]Entry, MaxEntries)
	for i := range existing {
		existing[i] = entryFrom(fmt.Sprintf("old-%d", i), reqN(i), at)
	}
	req := asset.Request{Content: "newest", Format: asset.Square}
	want := entryFrom("id-1", req, at)
	after := append([]Entry{want}, existing[:MaxEntries-1]...)

	mock.ExpectGet(DefaultKey).SetVal(string(mustJSON(t, existing)))
	mock.ExpectSet(DefaultKey, mustJSON(t, after), 0).SetVal("OK")

	got, err := s.Append(context.Background(), req, at)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisAppendUnavailable(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectGet(DefaultKey).SetErr(errors.New("connection refused"))

	_, err := s.Append(context.Background(), asset.Request{Content: "x", Format: asset.Story}, time.Now())
	require.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestRedisListDegradesToEmpty(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectGet(DefaultKey).SetErr(errors.New("connection refused"))

	entries, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRedisListCorruptPayload(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectGet(DefaultKey).SetVal("{not json")

	entries, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRedisGet(t *testing.T) {
	s, mock := newMockStore(t)
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	stored := []Entry{
		entryFrom("id-a", reqN(0), at),
		entryFrom("id-b", reqN(1), at),
	}

	mock.ExpectGet(DefaultKey).SetVal(string(mustJSON(t, stored)))
	got, ok, err := s.Get(context.Background(), "id-b")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "post 1", got.Content)

	mock.ExpectGet(DefaultKey).SetVal(string(mustJSON(t, stored)))
	_, ok, err = s.Get(context.Background(), "id-z")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisRemove(t *testing.T) {
	s, mock := newMockStore(t)
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	stored := []Entry{
		entryFrom("id-a", reqN(0), at),
		entryFrom("id-b", reqN(1), at),
	}

	mock.ExpectGet(DefaultKey).SetVal(string(mustJSON(t, stored)))
	mock.ExpectSet(DefaultKey, mustJSON(t, stored[1:]), 0).SetVal("OK")
	require.NoError(t, s.Remove(context.Background(), "id-a"))

	// Removing an unknown ID reads but never writes.
	mock.ExpectGet(DefaultKey).SetVal(string(mustJSON(t, stored[1:])))
	require.NoError(t, s.Remove(context.Background(), "id-z"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
