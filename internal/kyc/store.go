// Package kyc provides the KYC evidence store capability. The credential core
// treats it as a read-only lookup returning a fixed record shape; upsert,
// delete, and search exist for the admin surface and seeding.
package kyc

import (
	"context"

	contracts "attesta/contracts/registry"
	dErrors "attesta/pkg/domain-errors"
)

// ErrNotFound keeps storage-specific lookups consistent across implementations.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "kyc record not found")

// Query filters KYC record searches. Zero values match everything.
type Query struct {
	KYCLevel     string
	EntityType   string
	Jurisdiction string
}

// Store is the injected KYC lookup capability. Implementations must provide
// atomic single-record reads.
type Store interface {
	Resolve(ctx context.Context, customerRef string) (contracts.KYCRecord, error)
	Upsert(ctx context.Context, record contracts.KYCRecord) error
	Delete(ctx context.Context, customerRef string) error
	Search(ctx context.Context, q Query) ([]contracts.KYCRecord, error)
}
