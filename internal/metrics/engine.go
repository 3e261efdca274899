package metrics

import (
	"errors"
	"math"
	"sort"

	"github.com/fleetops/leakwatch/internal/models"
)

// ErrEmptyDataset is returned by every aggregate asked to summarize zero
// rows. A dashboard showing "0% leakage" over no data would be misleading,
// so the empty case is an error, never a zero value.
var ErrEmptyDataset = errors.New("empty dataset")

// round2 rounds to two decimals, matching how the dashboard displays values.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeKPIs aggregates the card values over a trip snapshot.
func ComputeKPIs(trips []models.Trip) (models.KPIReport, error) {
	if len(trips) == 0 {
		return models.KPIReport{}, ErrEmptyDataset
	}

	var varianceSum, leakageLiters, leakageCost float64
	suspected := 0
	for _, t := range trips {
		varianceSum += t.VariancePct
		leakageLiters += t.LeakageLiters
		leakageCost += t.LeakageCostINR
		if t.Suspected() {
			suspected++
		}
	}

	n := len(trips)
	return models.KPIReport{
		TotalTrips:          n,
		AvgVariancePct:      round2(varianceSum / float64(n)),
		TotalLeakageLiters:  round2(leakageLiters),
		TotalLeakageCostINR: round2(leakageCost),
		PctTripsWithLeakage: round2(float64(suspected) / float64(n) * 100),
	}, nil
}

// driverAccum collects per-driver running totals before the final summary
// rows are derived. A driver key only exists once at least one of its rows
// has been seen, so per-driver ratios never divide by zero.
type driverAccum struct {
	trips         int
	varianceSum   float64
	suspected     int
	leakageLiters float64
	leakageCost   float64
}

func accumulateByDriver(trips []models.Trip) map[string]*driverAccum {
	byDriver := make(map[string]*driverAccum)
	for _, t := range trips {
		acc := byDriver[t.DriverID]
		if acc == nil {
			acc = &driverAccum{}
			byDriver[t.DriverID] = acc
		}
		acc.trips++
		acc.varianceSum += t.VariancePct
		acc.leakageLiters += t.LeakageLiters
		acc.leakageCost += t.LeakageCostINR
		if t.Suspected() {
			acc.suspected++
		}
	}
	return byDriver
}

// SummarizeDrivers builds the driver performance table: one row per distinct
// driver, sorted by total leakage cost descending with driver ID as the
// deterministic tie-break.
func SummarizeDrivers(trips []models.Trip) ([]models.DriverSummary, error) {
	if len(trips) == 0 {
		return nil, ErrEmptyDataset
	}

	byDriver := accumulateByDriver(trips)
	out := make([]models.DriverSummary, 0, len(byDriver))
	for id, acc := range byDriver {
		out = append(out, models.DriverSummary{
			DriverID:            id,
			TotalTrips:          acc.trips,
			AvgVariancePct:      round2(acc.varianceSum / float64(acc.trips)),
			LeakageFreqPct:      round2(float64(acc.suspected) / float64(acc.trips) * 100),
			TotalLeakageLiters:  round2(acc.leakageLiters),
			TotalLeakageCostINR: round2(acc.leakageCost),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalLeakageCostINR != out[j].TotalLeakageCostINR {
			return out[i].TotalLeakageCostINR > out[j].TotalLeakageCostINR
		}
		return out[i].DriverID < out[j].DriverID
	})
	return out, nil
}

// FilterTrips returns the subset matching every set filter, preserving the
// input row order. The zero filter returns the input unchanged.
func FilterTrips(trips []models.Trip, f models.TripFilter) []models.Trip {
	out := make([]models.Trip, 0, len(trips))
	for _, t := range trips {
		if f.Driver != "" && t.DriverID != f.Driver {
			continue
		}
		if f.Truck != "" && t.TruckID != f.Truck {
			continue
		}
		if f.SuspectedOnly && !t.Suspected() {
			continue
		}
		out = append(out, t)
	}
	return out
}

// TopLossDriver returns the driver with the largest summed leakage cost.
// Ties resolve to the lexicographically first driver ID.
func TopLossDriver(trips []models.Trip) (string, error) {
	if len(trips) == 0 {
		return "", ErrEmptyDataset
	}

	byDriver := accumulateByDriver(trips)
	ids := make([]string, 0, len(byDriver))
	for id := range byDriver {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	top := ids[0]
	for _, id := range ids[1:] {
		if byDriver[id].leakageCost > byDriver[top].leakageCost {
			top = id
		}
	}
	return top, nil
}

// TopByLeakageVolume returns the n worst trips by leakage liters. The sort is
// stable, so ties keep their original order. n larger than the input returns
// everything; n <= 0 returns an empty slice.
func TopByLeakageVolume(trips []models.Trip, n int) []models.Trip {
	if n <= 0 {
		return []models.Trip{}
	}
	out := make([]models.Trip, len(trips))
	copy(out, trips)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LeakageLiters > out[j].LeakageLiters
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// DigestAlerts summarizes the recent alert feed for the banner line.
func DigestAlerts(alerts []models.Alert) models.AlertDigest {
	var loss float64
	for _, a := range alerts {
		loss += a.LeakageCostINR
	}
	return models.AlertDigest{
		ActiveAlerts: len(alerts),
		TotalLossINR: round2(loss),
	}
}

// BuildInsights derives the insight values for the current view: the worst
// driver, its summed loss, and the view-level variance and cost figures.
func BuildInsights(trips []models.Trip) (models.Insights, error) {
	top, err := TopLossDriver(trips)
	if err != nil {
		return models.Insights{}, err
	}

	var topCost, varianceSum, totalCost float64
	for _, t := range trips {
		varianceSum += t.VariancePct
		totalCost += t.LeakageCostINR
		if t.DriverID == top {
			topCost += t.LeakageCostINR
		}
	}

	return models.Insights{
		TopLossDriver:       top,
		TopLossCostINR:      round2(topCost),
		AvgVariancePct:      round2(varianceSum / float64(len(trips))),
		TotalLeakageCostINR: round2(totalCost),
	}, nil
}
