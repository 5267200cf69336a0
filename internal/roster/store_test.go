package roster_test

import (
	"context"
	"testing"

	"github.com/sidelinestats/scorebook/internal/database"
	"github.com/sidelinestats/scorebook/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStore creates a temporary in-memory SQLite database for testing.
func setupTestStore(t *testing.T) (roster.Source, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	store := roster.NewStore(db)
	teardown := func() {
		dbTeardown()
		db.Close()
	}

	return store, teardown
}

func testPlayers() []roster.Player {
	return []roster.Player{
		{Key: "#12 Jane Doe", FirstName: "Jane", LastName: "Doe", Number: intPtr(12), Positions: "WR"},
		{Key: "#? Pat Li", FirstName: "Pat", LastName: "Li", Number: nil, Positions: "OL"},
		{Key: "#7 Sam Hale", FirstName: "Sam", LastName: "Hale", Number: intPtr(7), Positions: "QB"},
	}
}

func TestStoreReplaceAndLoad(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()
	ctx := context.Background()

	require.NoError(t, store.Replace(ctx, "varsity", testPlayers()))

	loaded, err := store.Load(ctx, "varsity")
	require.NoError(t, err)
	require.Len(t, loaded, 3)

	// Stored order is preserved, and nil numbers round-trip.
	assert.Equal(t, "#12 Jane Doe", loaded[0].Key)
	assert.Equal(t, "#? Pat Li", loaded[1].Key)
	assert.Nil(t, loaded[1].Number)
	require.NotNil(t, loaded[2].Number)
	assert.Equal(t, 7, *loaded[2].Number)
}

func TestStoreReplaceIsWholesale(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()
	ctx := context.Background()

	require.NoError(t, store.Replace(ctx, "varsity", testPlayers()))
	require.NoError(t, store.Replace(ctx, "varsity", testPlayers()[:1]))

	loaded, err := store.Load(ctx, "varsity")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "#12 Jane Doe", loaded[0].Key)
}

func TestStoreSourcesAreIsolated(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()
	ctx := context.Background()

	require.NoError(t, store.Replace(ctx, "varsity", testPlayers()))
	require.NoError(t, store.Replace(ctx, "jv", testPlayers()[:2]))

	varsity, err := store.Load(ctx, "varsity")
	require.NoError(t, err)
	assert.Len(t, varsity, 3)

	jv, err := store.Load(ctx, "jv")
	require.NoError(t, err)
	assert.Len(t, jv, 2)
}

func TestStoreLoadUnknownSource(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	_, err := store.Load(context.Background(), "nope")
	require.Error(t, err)

	var loadErr *roster.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "nope", loadErr.SourceID)
	assert.ErrorIs(t, err, roster.ErrNotFound)
}
