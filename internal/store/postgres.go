package store

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fleetops/leakwatch/internal/models"
)

// schemaSQL is embedded so the service can self-bootstrap its database schema.
//
//go:embed schema.sql
var schemaSQL string

// DataSourceError marks a remote table as unreachable or returning malformed
// rows. Callers decide severity: the trip table is fatal to the session, the
// alert table only degrades its own section.
type DataSourceError struct {
	Source string
	Err    error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("%s store: %v", e.Source, e.Err)
}

func (e *DataSourceError) Unwrap() error { return e.Err }

// PostgresStore reads the trips and leakage_alerts tables.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// New creates a connection pool and fails fast if the DB is unreachable.
func New(dbURL string) (*PostgresStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

// EnsureSchema applies schema.sql. Safe to run multiple times.
func (p *PostgresStore) EnsureSchema() error {
	_, err := p.pool.Exec(context.Background(), schemaSQL)
	return err
}

// Ping is used by the readiness endpoint to validate DB connectivity.
func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Close shuts down the connection pool.
func (p *PostgresStore) Close() {
	p.pool.Close()
}

// AllTrips returns the full trip snapshot, one row per completed trip.
// The caller caches the result for the session, so the query is a plain select-all.
func (p *PostgresStore) AllTrips(ctx context.Context) ([]models.Trip, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT trip_id, driver_id, truck_id, distance_km,
		       expected_fuel_liters, actual_fuel_liters, variance_pct,
		       ecu_idling_hours, leakage_liters, leakage_cost_inr, leakage_flag
		FROM trips
		ORDER BY trip_id
	`)
	if err != nil {
		return nil, &DataSourceError{Source: "trip", Err: err}
	}
	defer rows.Close()

	var trips []models.Trip
	for rows.Next() {
		var t models.Trip
		err := rows.Scan(
			&t.TripID, &t.DriverID, &t.TruckID, &t.DistanceKM,
			&t.ExpectedFuelLiters, &t.ActualFuelLiters, &t.VariancePct,
			&t.ECUIdlingHours, &t.LeakageLiters, &t.LeakageCostINR, &t.LeakageFlag,
		)
		if err != nil {
			return nil, &DataSourceError{Source: "trip", Err: err}
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, &DataSourceError{Source: "trip", Err: err}
	}
	return trips, nil
}

// RecentAlerts returns the newest limit rows from the append-only alert
// table, newest first.
func (p *PostgresStore) RecentAlerts(ctx context.Context, limit int) ([]models.Alert, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT id, trip_id, truck_id, driver_id, leakage_cost_inr, alert_message
		FROM leakage_alerts
		ORDER BY id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, &DataSourceError{Source: "alert", Err: err}
	}
	defer rows.Close()

	var alerts []models.Alert
	for rows.Next() {
		var a models.Alert
		err := rows.Scan(&a.ID, &a.TripID, &a.TruckID, &a.DriverID, &a.LeakageCostINR, &a.AlertMessage)
		if err != nil {
			return nil, &DataSourceError{Source: "alert", Err: err}
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, &DataSourceError{Source: "alert", Err: err}
	}
	return alerts, nil
}
