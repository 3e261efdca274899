package metrics

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/fleetops/leakwatch/internal/models"
)

// reportHeader matches the trips table column names so the downloaded report
// round-trips with the source schema.
var reportHeader = []string{
	"trip_id",
	"driver_id",
	"truck_id",
	"distance_km",
	"expected_fuel_liters",
	"actual_fuel_liters",
	"variance_pct",
	"ecu_idling_hours",
	"leakage_liters",
	"leakage_cost_inr",
	"leakage_flag",
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteReportCSV serializes the trip view as the downloadable leakage report.
// An empty view still produces the header row.
func WriteReportCSV(w io.Writer, trips []models.Trip) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader); err != nil {
		return err
	}
	for _, t := range trips {
		record := []string{
			strconv.FormatInt(t.TripID, 10),
			t.DriverID,
			t.TruckID,
			formatFloat(t.DistanceKM),
			formatFloat(t.ExpectedFuelLiters),
			formatFloat(t.ActualFuelLiters),
			formatFloat(t.VariancePct),
			formatFloat(t.ECUIdlingHours),
			formatFloat(t.LeakageLiters),
			formatFloat(t.LeakageCostINR),
			t.LeakageFlag,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
