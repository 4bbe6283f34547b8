package engagement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ttig/internal/engagement"
	"ttig/internal/places"
	"ttig/internal/testsupport"
)

func TestIncrement_CreatesAndCounts(t *testing.T) {
	db := testsupport.SetupTestDB(t)
	logger := testsupport.GetLogger()
	store := testsupport.SetupTestPlacesStore(t, []places.Place{testsupport.SamplePlace("1", "Onion")})

	require.NoError(t, engagement.Increment(db, logger, store, "1", engagement.KindView))
	require.NoError(t, engagement.Increment(db, logger, store, "1", engagement.KindView))
	require.NoError(t, engagement.Increment(db, logger, store, "1", engagement.KindKeep))

	stat, err := engagement.Get(db, "1")
	require.NoError(t, err)
	assert.Equal(t, 2, stat.Views)
	assert.Equal(t, 1, stat.Keeps)
	assert.Equal(t, 0, stat.Shares)
	assert.Equal(t, "seongsu-cafe-onion", stat.Slug)
}

func TestIncrement_ResolvesBySlug(t *testing.T) {
	db := testsupport.SetupTestDB(t)
	logger := testsupport.GetLogger()
	store := testsupport.SetupTestPlacesStore(t, []places.Place{testsupport.SamplePlace("1", "Onion")})

	require.NoError(t, engagement.Increment(db, logger, store, "seongsu-cafe-onion", engagement.KindShare))

	// Counters keyed by place ID regardless of which key the caller used.
	stat, err := engagement.Get(db, "1")
	require.NoError(t, err)
	assert.Equal(t, 1, stat.Shares)
}

func TestIncrement_UnknownPlaceIsSoft(t *testing.T) {
	db := testsupport.SetupTestDB(t)
	logger := testsupport.GetLogger()
	store := testsupport.SetupTestPlacesStore(t, nil)

	require.NoError(t, engagement.Increment(db, logger, store, "ghost", engagement.KindView))

	stats, err := engagement.ListAll(db)
	require.NoError(t, err)
	assert.Empty(t, stats)
}

func TestIncrement_UnknownKind(t *testing.T) {
	db := testsupport.SetupTestDB(t)
	logger := testsupport.GetLogger()
	store := testsupport.SetupTestPlacesStore(t, []places.Place{testsupport.SamplePlace("1", "Onion")})

	err := engagement.Increment(db, logger, store, "1", engagement.Kind("like"))
	assert.Error(t, err)
}

func TestGet_UntouchedPlace(t *testing.T) {
	db := testsupport.SetupTestDB(t)

	stat, err := engagement.Get(db, "untouched")
	require.NoError(t, err)
	assert.Equal(t, 0, stat.Views)
	assert.Equal(t, "untouched", stat.PlaceID)
}

func TestListAll_OrdersByViews(t *testing.T) {
	db := testsupport.SetupTestDB(t)
	logger := testsupport.GetLogger()
	store := testsupport.SetupTestPlacesStore(t, []places.Place{
		testsupport.SamplePlace("1", "Onion"),
		testsupport.SamplePlace("2", "Mellower"),
	})

	require.NoError(t, engagement.Increment(db, logger, store, "2", engagement.KindView))
	require.NoError(t, engagement.Increment(db, logger, store, "2", engagement.KindView))
	require.NoError(t, engagement.Increment(db, logger, store, "1", engagement.KindView))

	stats, err := engagement.ListAll(db)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "2", stats[0].PlaceID)
}
