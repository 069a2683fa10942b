package fleetapi

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/autopeer-io/carview/internal/carview/model"
	"github.com/autopeer-io/carview/internal/pkg/metrics"
)

// Store holds the car records served by the API, keyed by normalised plate.
type Store struct {
	mu      sync.RWMutex
	records map[string]*model.CarRecord
}

// NewStore creates a Store holding records.
func NewStore(records []model.CarRecord) (*Store, error) {
	s := &Store{}
	if err := s.Replace(records); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns a copy of the record for plate. Lookup ignores case and
// surrounding whitespace.
func (s *Store) Get(plate string) (*model.CarRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[plateKey(plate)]
	return rec.Clone(), ok
}

// Replace swaps the whole record set. Records without a plate or with a
// duplicate plate are rejected and the current set is kept.
func (s *Store) Replace(records []model.CarRecord) error {
	next := make(map[string]*model.CarRecord, len(records))
	for i := range records {
		key := plateKey(records[i].LicensePlate)
		if key == "" {
			return fmt.Errorf("record %d has no licensePlate", i)
		}
		if _, dup := next[key]; dup {
			return fmt.Errorf("duplicate licensePlate %q", records[i].LicensePlate)
		}
		next[key] = records[i].Clone()
	}

	s.mu.Lock()
	s.records = next
	s.mu.Unlock()

	metrics.FleetRecords.Set(float64(len(next)))
	return nil
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// LoadFile reads a JSON array of car records.
func LoadFile(path string) ([]model.CarRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []model.CarRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}

// SeedRecords returns the built-in records used when no fixture file is given.
func SeedRecords() []model.CarRecord {
	return []model.CarRecord{
		{
			LicensePlate: "ABC-123",
			Owner:        "John Doe",
			IndoorTemp:   21.3,
			OutdoorTemp:  22.5,
			GPS:          &model.GPS{Lat: 60.1699, Lng: 24.9384},
			LastService:  "2024-01-15",
			LastUpdated:  "2024-03-01T10:00:00Z",
		},
		{
			LicensePlate: "XYZ-789",
			Owner:        "Jane Smith",
			IndoorTemp:   19.0,
			OutdoorTemp:  -3.4,
			GPS:          &model.GPS{Lat: 59.3293, Lng: 18.0686},
			LastService:  "2023-11-02",
			LastUpdated:  "2024-03-02T08:30:00Z",
		},
		{
			LicensePlate: "GPS-000",
			Owner:        "Matti Meikäläinen",
			IndoorTemp:   17.8,
			OutdoorTemp:  4.0,
			LastService:  "2022-06-30",
			LastUpdated:  "2024-02-28T17:45:00Z",
		},
	}
}

func plateKey(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}
