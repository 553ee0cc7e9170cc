package shop

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RocksBot_Go/internal/domain"
)

func TestSessionStore_StartAndGet(t *testing.T) {
	store := NewSessionStore(10, time.Minute)
	now := flowStart
	store.now = func() time.Time { return now }

	f := store.Start(context.Background(), flowOwner)
	require.NotEmpty(t, f.ID)
	assert.Equal(t, 1, store.Len())

	got, err := store.Get(f.ID, flowOwner)
	require.NoError(t, err)
	assert.Same(t, f, got)

	other := domain.UserKey{UserID: 999, GuildID: flowOwner.GuildID}
	_, err = store.Get(f.ID, other)
	assert.ErrorIs(t, err, domain.ErrInvalidSelection)

	_, err = store.Get("missing", flowOwner)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestSessionStore_IdleFlowReportsExpired(t *testing.T) {
	store := NewSessionStore(10, time.Minute)
	now := flowStart
	store.now = func() time.Time { return now }

	f := store.Start(context.Background(), flowOwner)
	now = now.Add(61 * time.Second)

	_, err := store.Get(f.ID, flowOwner)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
	assert.Equal(t, StageExpired, f.Snapshot().Stage)
}

func TestSessionStore_Finish(t *testing.T) {
	store := NewSessionStore(0, 0)
	f := store.Start(context.Background(), flowOwner)
	store.Finish(f.ID)
	assert.Zero(t, store.Len())
	_, err := store.Get(f.ID, flowOwner)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestSessionStore_UniqueIDs(t *testing.T) {
	store := NewSessionStore(10, 0)
	a := store.Start(context.Background(), flowOwner)
	b := store.Start(context.Background(), flowOwner)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSessionStore_ActiveFlowOutlivesEntryTTL(t *testing.T) {
	const timeout = 200 * time.Millisecond
	store := NewSessionStore(10, timeout)
	f := store.Start(context.Background(), flowOwner)

	// steps are 150ms apart; the run outlasts the 400ms entry TTL
	time.Sleep(150 * time.Millisecond)
	got, err := store.Get(f.ID, flowOwner)
	require.NoError(t, err)
	require.NoError(t, got.SelectApplication("Capcut", time.Now()))

	time.Sleep(150 * time.Millisecond)
	got, err = store.Get(f.ID, flowOwner)
	require.NoError(t, err)
	require.NoError(t, got.SelectCategory("CC", time.Now()))

	time.Sleep(150 * time.Millisecond)
	got, err = store.Get(f.ID, flowOwner)
	require.NoError(t, err, "flow with no idle gap above the timeout stays available")
	assert.Equal(t, StageChooseItem, got.Snapshot().Stage)
}
