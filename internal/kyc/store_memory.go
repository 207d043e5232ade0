package kyc

import (
	"context"
	"sort"
	"sync"

	contracts "attesta/contracts/registry"
	dErrors "attesta/pkg/domain-errors"
)

// InMemoryStore is an in-memory implementation of Store for tests or local use.
// It is safe for concurrent access but does not persist across process restarts.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[string]contracts.KYCRecord
}

// NewInMemoryStore constructs an empty in-memory KYC store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{records: make(map[string]contracts.KYCRecord)}
}

// Resolve retrieves a KYC record by customer reference or returns ErrNotFound.
func (s *InMemoryStore) Resolve(_ context.Context, customerRef string) (contracts.KYCRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rec, ok := s.records[customerRef]; ok {
		return rec, nil
	}
	return contracts.KYCRecord{}, ErrNotFound
}

// Upsert stores or overwrites a KYC record by customer reference.
func (s *InMemoryStore) Upsert(_ context.Context, record contracts.KYCRecord) error {
	if record.CustomerRef == "" {
		return dErrors.New(dErrors.CodeValidation, "customer reference is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.CustomerRef] = record
	return nil
}

// Delete removes a KYC record, returning ErrNotFound for unknown references.
func (s *InMemoryStore) Delete(_ context.Context, customerRef string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[customerRef]; !ok {
		return ErrNotFound
	}
	delete(s.records, customerRef)
	return nil
}

// Search returns records matching the query, ordered by customer reference.
func (s *InMemoryStore) Search(_ context.Context, q Query) ([]contracts.KYCRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []contracts.KYCRecord
	for _, rec := range s.records {
		if q.KYCLevel != "" && rec.KYCLevel != q.KYCLevel {
			continue
		}
		if q.EntityType != "" && rec.EntityType != q.EntityType {
			continue
		}
		if q.Jurisdiction != "" && !contains(rec.Jurisdictions, q.Jurisdiction) {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CustomerRef < out[j].CustomerRef })
	return out, nil
}

func contains(haystack []string, needle string) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}
