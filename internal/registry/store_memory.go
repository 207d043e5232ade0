package registry

import (
	"context"
	"sort"
	"sync"

	contracts "attesta/contracts/registry"
	"attesta/internal/credential/sigsuite"
	dErrors "attesta/pkg/domain-errors"
)

// InMemoryStore is an in-memory implementation of Store for tests or local use.
// It is safe for concurrent access but does not persist across process restarts.
type InMemoryStore struct {
	mu      sync.RWMutex
	issuers map[string]contracts.IssuerRecord
}

// NewInMemoryStore constructs an empty in-memory issuer store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{issuers: make(map[string]contracts.IssuerRecord)}
}

// Resolve retrieves an issuer record by ID or returns ErrNotFound.
func (s *InMemoryStore) Resolve(_ context.Context, issuerID string) (contracts.IssuerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rec, ok := s.issuers[issuerID]; ok {
		return rec, nil
	}
	return contracts.IssuerRecord{}, ErrNotFound
}

// Upsert stores or overwrites an issuer record after validating that the
// algorithm tag matches the key material.
func (s *InMemoryStore) Upsert(_ context.Context, record contracts.IssuerRecord) error {
	if record.ID == "" {
		return dErrors.New(dErrors.CodeValidation, "issuer id is required")
	}
	if record.TrustTier < 1 || record.TrustTier > 5 {
		return dErrors.New(dErrors.CodeValidation, "trust tier must be between 1 and 5")
	}
	alg, err := sigsuite.ParseAlgorithm(record.Algorithm)
	if err != nil {
		return err
	}
	if err := ValidateKeyMaterial(alg, record.PrivateKeyHex, record.PublicKeyHex); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.issuers[record.ID] = record
	return nil
}

// Delete removes an issuer record, returning ErrNotFound for unknown IDs.
func (s *InMemoryStore) Delete(_ context.Context, issuerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.issuers[issuerID]; !ok {
		return ErrNotFound
	}
	delete(s.issuers, issuerID)
	return nil
}

// Search returns records matching the query, ordered by ID for stable output.
func (s *InMemoryStore) Search(_ context.Context, q Query) ([]contracts.IssuerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []contracts.IssuerRecord
	for _, rec := range s.issuers {
		if q.Algorithm != "" && rec.Algorithm != q.Algorithm {
			continue
		}
		if q.MinTrustTier > 0 && rec.TrustTier < q.MinTrustTier {
			continue
		}
		if q.Jurisdiction != "" && !contains(rec.Jurisdictions, q.Jurisdiction) {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
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
