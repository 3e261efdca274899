package tripcache

import (
	"context"
	"errors"
	"testing"

	"github.com/fleetops/leakwatch/internal/models"
)

func TestCache_LoadsOncePerSession(t *testing.T) {
	calls := 0
	cache := New(func(ctx context.Context) ([]models.Trip, error) {
		calls++
		return []models.Trip{{TripID: 1}}, nil
	})

	for i := 0; i < 3; i++ {
		trips, err := cache.Trips(context.Background())
		if err != nil {
			t.Fatalf("Trips: %v", err)
		}
		if len(trips) != 1 {
			t.Fatalf("got %d trips, want 1", len(trips))
		}
	}
	if calls != 1 {
		t.Fatalf("loader called %d times, want 1", calls)
	}
}

func TestCache_InvalidateForcesRefetch(t *testing.T) {
	calls := 0
	cache := New(func(ctx context.Context) ([]models.Trip, error) {
		calls++
		return []models.Trip{{TripID: int64(calls)}}, nil
	})

	if _, err := cache.Trips(context.Background()); err != nil {
		t.Fatalf("Trips: %v", err)
	}
	cache.Invalidate()

	trips, err := cache.Trips(context.Background())
	if err != nil {
		t.Fatalf("Trips after Invalidate: %v", err)
	}
	if calls != 2 || trips[0].TripID != 2 {
		t.Fatalf("calls = %d, trip = %+v", calls, trips[0])
	}
}

func TestCache_FailedLoadIsNotCached(t *testing.T) {
	boom := errors.New("trip store unreachable")
	fail := true
	cache := New(func(ctx context.Context) ([]models.Trip, error) {
		if fail {
			return nil, boom
		}
		return []models.Trip{{TripID: 9}}, nil
	})

	if _, err := cache.Trips(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want the loader error", err)
	}

	fail = false
	trips, err := cache.Trips(context.Background())
	if err != nil {
		t.Fatalf("Trips after recovery: %v", err)
	}
	if len(trips) != 1 || trips[0].TripID != 9 {
		t.Fatalf("trips = %+v", trips)
	}
}
