// Package ingress receives out-of-band leakage alerts from the external
// detector. It keeps exactly one "latest alert" at a time: each receipt
// overwrites the previous one, in memory and in a durable JSON document that
// survives process restarts.
package ingress

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/fleetops/leakwatch/internal/models"
)

// ErrMalformedPayload is returned for webhook bodies that are not a JSON
// object. Such payloads are rejected and never touch the slot or the file.
var ErrMalformedPayload = errors.New("malformed alert payload")

// ErrCorruptState is returned by Restore when the persisted document cannot
// be parsed. Callers treat it as "no alert", not a fatal condition.
var ErrCorruptState = errors.New("corrupt persisted alert state")

// Slot is the single-slot, last-write-wins alert store. Writes are atomic:
// a reader never observes a partially-written value, in memory or on disk.
type Slot struct {
	path string

	mu     sync.Mutex
	latest models.Alert
	held   bool
}

func NewSlot(path string) *Slot {
	return &Slot{path: path}
}

// Store validates the raw webhook body, replaces the slot unconditionally,
// and persists the document before acknowledging. Unknown fields in the
// payload are tolerated; missing fields stay at their zero values.
func (s *Slot) Store(payload []byte) (models.Alert, error) {
	// The contract is "a well-formed record": a JSON object, nothing else.
	// Field contents are the detector's business; whatever it sends is kept.
	var record map[string]any
	if err := json.Unmarshal(payload, &record); err != nil || record == nil {
		return models.Alert{}, ErrMalformedPayload
	}

	// Re-encode the checked record rather than the raw body so the persisted
	// document is exactly what was accepted.
	doc, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return models.Alert{}, ErrMalformedPayload
	}
	alert := alertFromRecord(record)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeAtomic(s.path, doc); err != nil {
		return models.Alert{}, err
	}
	s.latest = alert
	s.held = true
	return alert, nil
}

// Latest returns the most recently received alert, or false if none has ever
// been received.
func (s *Slot) Latest() (models.Alert, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest, s.held
}

// Restore re-derives the slot from the durable document on startup. A missing
// file leaves the slot empty; an unparsable one returns ErrCorruptState and
// also leaves it empty.
func (s *Slot) Restore() error {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var record map[string]any
	if err := json.Unmarshal(b, &record); err != nil || record == nil {
		return ErrCorruptState
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = alertFromRecord(record)
	s.held = true
	return nil
}

// alertFromRecord populates an Alert from whichever fields of the record
// decode cleanly. The payload contract is permissive, so a mistyped field is
// skipped rather than rejecting the whole record.
func alertFromRecord(record map[string]any) models.Alert {
	var a models.Alert
	if v, ok := record["id"].(float64); ok {
		a.ID = int64(v)
	}
	if v, ok := record["trip_id"].(float64); ok {
		a.TripID = int64(v)
	}
	if v, ok := record["truck_id"].(string); ok {
		a.TruckID = v
	}
	if v, ok := record["driver_id"].(string); ok {
		a.DriverID = v
	}
	if v, ok := record["leakage_cost_inr"].(float64); ok {
		a.LeakageCostINR = v
	}
	if v, ok := record["alert_message"].(string); ok {
		a.AlertMessage = v
	}
	return a
}

// writeAtomic replaces path via a temp file and rename so a crash mid-write
// never leaves a torn document behind.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".alert-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
