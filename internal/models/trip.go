package models

// LeakageSuspected is the classification value the upstream detector assigns
// to trips it considers leaky. Any other flag value means the trip is clean.
const LeakageSuspected = "Leakage Suspected"

// Trip is one completed trip as stored in the trips table. Rows are written
// upstream and are immutable once loaded into a session.
type Trip struct {
	TripID             int64   `json:"trip_id"`
	DriverID           string  `json:"driver_id"`
	TruckID            string  `json:"truck_id"`
	DistanceKM         float64 `json:"distance_km"`
	ExpectedFuelLiters float64 `json:"expected_fuel_liters"`
	ActualFuelLiters   float64 `json:"actual_fuel_liters"`
	VariancePct        float64 `json:"variance_pct"`
	ECUIdlingHours     float64 `json:"ecu_idling_hours"`
	LeakageLiters      float64 `json:"leakage_liters"`
	LeakageCostINR     float64 `json:"leakage_cost_inr"`
	LeakageFlag        string  `json:"leakage_flag"`
}

// Suspected reports whether the trip was flagged by the detector.
func (t Trip) Suspected() bool {
	return t.LeakageFlag == LeakageSuspected
}

// TripFilter narrows a trip view. Zero values mean "no restriction";
// set filters are AND-combined.
type TripFilter struct {
	Driver        string
	Truck         string
	SuspectedOnly bool
}

// KPIReport holds the dashboard card values for one trip snapshot.
type KPIReport struct {
	TotalTrips          int     `json:"total_trips"`
	AvgVariancePct      float64 `json:"avg_variance_pct"`
	TotalLeakageLiters  float64 `json:"total_leakage_liters"`
	TotalLeakageCostINR float64 `json:"total_leakage_cost_inr"`
	PctTripsWithLeakage float64 `json:"pct_trips_with_leakage"`
}

// DriverSummary is one row of the driver performance table.
type DriverSummary struct {
	DriverID            string  `json:"driver_id"`
	TotalTrips          int     `json:"total_trips"`
	AvgVariancePct      float64 `json:"avg_variance_pct"`
	LeakageFreqPct      float64 `json:"leakage_freq_pct"`
	TotalLeakageLiters  float64 `json:"total_leakage_liters"`
	TotalLeakageCostINR float64 `json:"total_leakage_cost_inr"`
}

// Insights carries the auto-generated insight values for the current view.
type Insights struct {
	TopLossDriver       string  `json:"top_loss_driver"`
	TopLossCostINR      float64 `json:"top_loss_cost_inr"`
	AvgVariancePct      float64 `json:"avg_variance_pct"`
	TotalLeakageCostINR float64 `json:"total_leakage_cost_inr"`
}
