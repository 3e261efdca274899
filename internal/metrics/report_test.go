package metrics

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/fleetops/leakwatch/internal/models"
)

func TestWriteReportCSV(t *testing.T) {
	trips := []models.Trip{
		{
			TripID: 7, DriverID: "D1", TruckID: "T9",
			DistanceKM: 120.5, ExpectedFuelLiters: 40, ActualFuelLiters: 48,
			VariancePct: 20, ECUIdlingHours: 1.5,
			LeakageLiters: 8, LeakageCostINR: 400, LeakageFlag: models.LeakageSuspected,
		},
	}

	var buf bytes.Buffer
	if err := WriteReportCSV(&buf, trips); err != nil {
		t.Fatalf("WriteReportCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want header + 1 row", len(records))
	}

	wantHeader := "trip_id,driver_id,truck_id,distance_km,expected_fuel_liters,actual_fuel_liters,variance_pct,ecu_idling_hours,leakage_liters,leakage_cost_inr,leakage_flag"
	if got := strings.Join(records[0], ","); got != wantHeader {
		t.Errorf("header = %q, want %q", got, wantHeader)
	}

	row := records[1]
	if row[0] != "7" || row[1] != "D1" || row[3] != "120.5" || row[10] != models.LeakageSuspected {
		t.Errorf("row = %v", row)
	}
}

func TestWriteReportCSV_EmptyViewKeepsHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReportCSV(&buf, nil); err != nil {
		t.Fatalf("WriteReportCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("empty view produced %d lines, want header only", len(lines))
	}
}
