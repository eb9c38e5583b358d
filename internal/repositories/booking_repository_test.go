package repositories

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	tm "tripwise/internal/models/trip_models"
)

func testBooking(owner, id string) tm.Booking {
	return tm.Booking{
		ID:      id,
		OwnerID: owner,
		TripDraft: tm.TripDraft{
			Destination: "Goa",
			Categories:  []string{"beaches"},
			StartDate:   civil.Date{Year: 2026, Month: time.March, Day: 10},
			EndDate:     civil.Date{Year: 2026, Month: time.March, Day: 13},
			TotalCost:   8100000,
		},
		Pricing:   tm.PriceBreakdown{Currency: tm.Currency, Total: 8100000},
		Status:    tm.StatusConfirmed,
		CreatedAt: time.Date(2026, time.March, 1, 6, 30, 0, 0, time.UTC),
	}
}

func TestBookingRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepository(NewMemoryTripStore(), zap.NewNop())

	b := testBooking("owner-1", "b1")
	key, err := repo.SaveBooking(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, "trip:owner-1:b1", key)

	got, err := repo.GetBooking(ctx, "owner-1", "b1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, b, *got)

	// a saved but unindexed booking is not listed
	list, err := repo.ListBookings(ctx, "owner-1")
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, repo.IndexBooking(ctx, "owner-1", key))
	list, err = repo.ListBookings(ctx, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, []tm.Booking{b}, list)
}

func TestBookingRepositoryGetMissing(t *testing.T) {
	repo := NewBookingRepository(NewMemoryTripStore(), zap.NewNop())

	got, err := repo.GetBooking(context.Background(), "owner-1", "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBookingRepositoryIsolatesOwners(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepository(NewMemoryTripStore(), zap.NewNop())

	_, err := repo.SaveBooking(ctx, testBooking("owner-1", "b1"))
	require.NoError(t, err)

	got, err := repo.GetBooking(ctx, "owner-2", "b1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBookingRepositorySkipsDanglingKeys(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryTripStore()
	core, logs := observer.New(zapcore.WarnLevel)
	repo := NewBookingRepository(store, zap.New(core))

	key, err := repo.SaveBooking(ctx, testBooking("owner-1", "b1"))
	require.NoError(t, err)
	require.NoError(t, store.AppendToIndex(ctx, "owner-1", "trip:owner-1:gone"))
	require.NoError(t, store.AppendToIndex(ctx, "owner-1", key))
	require.NoError(t, store.Put(ctx, "trip:owner-1:bad", []byte(`{"status":`)))
	require.NoError(t, store.AppendToIndex(ctx, "owner-1", "trip:owner-1:bad"))

	list, err := repo.ListBookings(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "b1", list[0].ID)
	assert.Equal(t, 2, logs.Len())

	keys, err := repo.IndexedKeys(ctx, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"trip:owner-1:gone", key, "trip:owner-1:bad"}, keys)
}

func TestBookingRepositoryScan(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepository(NewMemoryTripStore(), zap.NewNop())

	for _, b := range []tm.Booking{testBooking("o1", "b"), testBooking("o1", "a"), testBooking("o2", "c")} {
		_, err := repo.SaveBooking(ctx, b)
		require.NoError(t, err)
	}

	keys, err := repo.ScanBookingKeys(ctx, tm.TripKeyPrefix("o1"))
	require.NoError(t, err)
	assert.Equal(t, []string{"trip:o1:a", "trip:o1:b"}, keys)

	all, err := repo.ScanBookingKeys(ctx, tm.AllTripsPrefix())
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestPackageRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPackageRepository(NewMemoryTripStore())

	got, err := repo.GetAllPackages(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	packages := []tm.TravelPackage{{ID: "pkg1", Title: "Goa Beach Paradise"}}
	require.NoError(t, repo.SavePackages(ctx, packages))

	got, err = repo.GetAllPackages(ctx)
	require.NoError(t, err)
	assert.Equal(t, packages, got)
}
