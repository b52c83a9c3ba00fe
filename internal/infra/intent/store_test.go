//go:build unit

package intent_test

import (
	"testing"

	"stayhub/internal/infra/intent"
	"stayhub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePutAndPeek(t *testing.T) {
	store := intent.NewStore()
	session := uuid.New()

	it, err := builder.NewIntentBuilder().BuildDomain()
	require.NoError(t, err)

	store.Put(session, it)

	got, ok := store.Peek(session)
	require.True(t, ok)
	assert.Equal(t, it, got)

	// Peek does not consume.
	got, ok = store.Peek(session)
	require.True(t, ok)
	assert.Equal(t, it, got)
}

func TestStorePutOverwrites(t *testing.T) {
	store := intent.NewStore()
	session := uuid.New()

	first, err := builder.NewIntentBuilder().BuildDomain()
	require.NoError(t, err)
	second, err := builder.NewIntentBuilder().
		With(func(b *builder.IntentBuilder) {
			b.PropertyID = "2"
			b.TotalPrice = 1552.5
		}).
		BuildDomain()
	require.NoError(t, err)

	store.Put(session, first)
	store.Put(session, second)

	got, ok := store.Peek(session)
	require.True(t, ok)
	assert.Equal(t, "2", got.PropertyID())
}

func TestStoreTakeAndClear(t *testing.T) {
	store := intent.NewStore()
	session := uuid.New()

	it, err := builder.NewIntentBuilder().BuildDomain()
	require.NoError(t, err)
	store.Put(session, it)

	got, ok := store.TakeAndClear(session)
	require.True(t, ok)
	assert.Equal(t, it, got)

	// Second take without an intervening Put reports absence.
	_, ok = store.TakeAndClear(session)
	assert.False(t, ok)
	_, ok = store.Peek(session)
	assert.False(t, ok)
}

func TestStoreSessionsAreIsolated(t *testing.T) {
	store := intent.NewStore()
	alice := uuid.New()
	bob := uuid.New()

	it, err := builder.NewIntentBuilder().BuildDomain()
	require.NoError(t, err)
	store.Put(alice, it)

	_, ok := store.Peek(bob)
	assert.False(t, ok)

	store.Clear(bob)
	_, ok = store.Peek(alice)
	assert.True(t, ok, "clearing one session must not touch another")
}

func TestStoreClear(t *testing.T) {
	store := intent.NewStore()
	session := uuid.New()

	it, err := builder.NewIntentBuilder().BuildDomain()
	require.NoError(t, err)
	store.Put(session, it)

	store.Clear(session)
	_, ok := store.Peek(session)
	assert.False(t, ok)

	// Clearing an empty slot is a no-op.
	store.Clear(session)
}
