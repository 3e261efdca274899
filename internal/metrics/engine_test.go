package metrics

import (
	"errors"
	"testing"

	"github.com/fleetops/leakwatch/internal/models"
)

// exampleTrips mirrors a small detector output: two drivers, one flagged trip.
func exampleTrips() []models.Trip {
	return []models.Trip{
		{TripID: 1, DriverID: "D1", TruckID: "T1", VariancePct: 5, LeakageFlag: "OK"},
		{TripID: 2, DriverID: "D1", TruckID: "T2", VariancePct: 20, LeakageFlag: models.LeakageSuspected, LeakageLiters: 10, LeakageCostINR: 500},
	}
}

func TestComputeKPIs(t *testing.T) {
	got, err := ComputeKPIs(exampleTrips())
	if err != nil {
		t.Fatalf("ComputeKPIs: %v", err)
	}

	want := models.KPIReport{
		TotalTrips:          2,
		AvgVariancePct:      12.5,
		TotalLeakageLiters:  10,
		TotalLeakageCostINR: 500,
		PctTripsWithLeakage: 50,
	}
	if got != want {
		t.Fatalf("ComputeKPIs = %+v, want %+v", got, want)
	}
}

func TestComputeKPIs_TotalsMatchInput(t *testing.T) {
	trips := []models.Trip{
		{TripID: 1, DriverID: "D1", VariancePct: 1.234},
		{TripID: 2, DriverID: "D2", VariancePct: -3.5, LeakageFlag: models.LeakageSuspected},
		{TripID: 3, DriverID: "D3", VariancePct: 7.7},
	}

	got, err := ComputeKPIs(trips)
	if err != nil {
		t.Fatalf("ComputeKPIs: %v", err)
	}
	if got.TotalTrips != len(trips) {
		t.Errorf("TotalTrips = %d, want %d", got.TotalTrips, len(trips))
	}
	if got.PctTripsWithLeakage < 0 || got.PctTripsWithLeakage > 100 {
		t.Errorf("PctTripsWithLeakage = %v, want within [0,100]", got.PctTripsWithLeakage)
	}
}

func TestComputeKPIs_EmptyDataset(t *testing.T) {
	if _, err := ComputeKPIs(nil); !errors.Is(err, ErrEmptyDataset) {
		t.Fatalf("ComputeKPIs(nil) err = %v, want ErrEmptyDataset", err)
	}
}

func TestSummarizeDrivers(t *testing.T) {
	trips := []models.Trip{
		{TripID: 1, DriverID: "D2", VariancePct: 10, LeakageFlag: models.LeakageSuspected, LeakageLiters: 5, LeakageCostINR: 250},
		{TripID: 2, DriverID: "D1", VariancePct: 4, LeakageFlag: "OK"},
		{TripID: 3, DriverID: "D2", VariancePct: 20, LeakageFlag: "OK"},
		{TripID: 4, DriverID: "D1", VariancePct: 6, LeakageFlag: models.LeakageSuspected, LeakageLiters: 2, LeakageCostINR: 100},
	}

	rows, err := SummarizeDrivers(trips)
	if err != nil {
		t.Fatalf("SummarizeDrivers: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	// D2 lost more, so it leads.
	if rows[0].DriverID != "D2" || rows[1].DriverID != "D1" {
		t.Fatalf("order = [%s %s], want [D2 D1]", rows[0].DriverID, rows[1].DriverID)
	}

	d2 := rows[0]
	if d2.TotalTrips != 2 || d2.AvgVariancePct != 15 || d2.LeakageFreqPct != 50 || d2.TotalLeakageCostINR != 250 {
		t.Errorf("D2 summary = %+v", d2)
	}

	total := 0
	for _, r := range rows {
		total += r.TotalTrips
	}
	if total != len(trips) {
		t.Errorf("summed trips = %d, want %d", total, len(trips))
	}
}

func TestSummarizeDrivers_CostTieBrokenByDriverID(t *testing.T) {
	trips := []models.Trip{
		{TripID: 1, DriverID: "DB", LeakageCostINR: 100},
		{TripID: 2, DriverID: "DA", LeakageCostINR: 100},
	}

	rows, err := SummarizeDrivers(trips)
	if err != nil {
		t.Fatalf("SummarizeDrivers: %v", err)
	}
	if rows[0].DriverID != "DA" || rows[1].DriverID != "DB" {
		t.Fatalf("tie order = [%s %s], want [DA DB]", rows[0].DriverID, rows[1].DriverID)
	}
}

func TestSummarizeDrivers_EmptyDataset(t *testing.T) {
	if _, err := SummarizeDrivers(nil); !errors.Is(err, ErrEmptyDataset) {
		t.Fatalf("err = %v, want ErrEmptyDataset", err)
	}
}

func TestFilterTrips(t *testing.T) {
	trips := []models.Trip{
		{TripID: 1, DriverID: "D1", TruckID: "T1", LeakageFlag: "OK"},
		{TripID: 2, DriverID: "D2", TruckID: "T1", LeakageFlag: models.LeakageSuspected},
		{TripID: 3, DriverID: "D1", TruckID: "T2", LeakageFlag: models.LeakageSuspected},
		{TripID: 4, DriverID: "D1", TruckID: "T1", LeakageFlag: models.LeakageSuspected},
	}

	cases := []struct {
		name   string
		filter models.TripFilter
		want   []int64
	}{
		{"no restriction", models.TripFilter{}, []int64{1, 2, 3, 4}},
		{"by driver", models.TripFilter{Driver: "D1"}, []int64{1, 3, 4}},
		{"by truck", models.TripFilter{Truck: "T2"}, []int64{3}},
		{"suspected only", models.TripFilter{SuspectedOnly: true}, []int64{2, 3, 4}},
		{"and-combined", models.TripFilter{Driver: "D1", Truck: "T1", SuspectedOnly: true}, []int64{4}},
		{"no match", models.TripFilter{Driver: "D9"}, []int64{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterTrips(trips, tc.filter)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d trips, want %d", len(got), len(tc.want))
			}
			for i, id := range tc.want {
				if got[i].TripID != id {
					t.Errorf("row %d: trip_id = %d, want %d", i, got[i].TripID, id)
				}
			}
		})
	}
}

func TestTopLossDriver(t *testing.T) {
	trips := []models.Trip{
		{TripID: 1, DriverID: "D1", LeakageCostINR: 100},
		{TripID: 2, DriverID: "D2", LeakageCostINR: 300},
		{TripID: 3, DriverID: "D1", LeakageCostINR: 150},
	}

	got, err := TopLossDriver(trips)
	if err != nil {
		t.Fatalf("TopLossDriver: %v", err)
	}
	if got != "D2" {
		t.Fatalf("TopLossDriver = %s, want D2", got)
	}
}

func TestTopLossDriver_TieGoesToFirstID(t *testing.T) {
	trips := []models.Trip{
		{TripID: 1, DriverID: "DZ", LeakageCostINR: 200},
		{TripID: 2, DriverID: "DA", LeakageCostINR: 200},
	}

	got, err := TopLossDriver(trips)
	if err != nil {
		t.Fatalf("TopLossDriver: %v", err)
	}
	if got != "DA" {
		t.Fatalf("TopLossDriver = %s, want DA", got)
	}
}

func TestTopLossDriver_EmptyDataset(t *testing.T) {
	if _, err := TopLossDriver(nil); !errors.Is(err, ErrEmptyDataset) {
		t.Fatalf("err = %v, want ErrEmptyDataset", err)
	}
}

func TestTopByLeakageVolume(t *testing.T) {
	trips := []models.Trip{
		{TripID: 1, LeakageLiters: 5},
		{TripID: 2, LeakageLiters: 12},
		{TripID: 3, LeakageLiters: 5},
		{TripID: 4, LeakageLiters: 9},
	}

	got := TopByLeakageVolume(trips, 3)
	wantIDs := []int64{2, 4, 1} // stable: trip 1 keeps its place ahead of trip 3
	if len(got) != len(wantIDs) {
		t.Fatalf("got %d trips, want %d", len(got), len(wantIDs))
	}
	for i, id := range wantIDs {
		if got[i].TripID != id {
			t.Errorf("row %d: trip_id = %d, want %d", i, got[i].TripID, id)
		}
	}

	if got := TopByLeakageVolume(trips, 100); len(got) != len(trips) {
		t.Errorf("oversized n returned %d trips, want %d", len(got), len(trips))
	}
	if got := TopByLeakageVolume(trips, 0); len(got) != 0 {
		t.Errorf("n=0 returned %d trips, want 0", len(got))
	}
}

func TestDigestAlerts(t *testing.T) {
	alerts := []models.Alert{
		{ID: 1, LeakageCostINR: 500},
		{ID: 2, LeakageCostINR: 250.555},
	}

	got := DigestAlerts(alerts)
	if got.ActiveAlerts != 2 {
		t.Errorf("ActiveAlerts = %d, want 2", got.ActiveAlerts)
	}
	if got.TotalLossINR != 750.56 {
		t.Errorf("TotalLossINR = %v, want 750.56", got.TotalLossINR)
	}

	if got := DigestAlerts(nil); got.ActiveAlerts != 0 || got.TotalLossINR != 0 {
		t.Errorf("empty digest = %+v", got)
	}
}

func TestBuildInsights(t *testing.T) {
	got, err := BuildInsights(exampleTrips())
	if err != nil {
		t.Fatalf("BuildInsights: %v", err)
	}

	want := models.Insights{
		TopLossDriver:       "D1",
		TopLossCostINR:      500,
		AvgVariancePct:      12.5,
		TotalLeakageCostINR: 500,
	}
	if got != want {
		t.Fatalf("BuildInsights = %+v, want %+v", got, want)
	}
}

func TestBuildInsights_EmptyDataset(t *testing.T) {
	if _, err := BuildInsights(nil); !errors.Is(err, ErrEmptyDataset) {
		t.Fatalf("err = %v, want ErrEmptyDataset", err)
	}
}
