// Package registry provides the issuer registry capability consumed by the
// credential core. The core only ever resolves issuers; upsert, delete, and
// search exist for the admin surface and for seeding test environments.
package registry

import (
	"context"

	contracts "attesta/contracts/registry"
	dErrors "attesta/pkg/domain-errors"
)

// ErrNotFound keeps storage-specific lookups consistent across implementations.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "issuer not found")

// Query filters issuer searches. Zero values match everything.
type Query struct {
	Jurisdiction string
	Algorithm    string
	MinTrustTier int
}

// Store is the injected issuer registry capability. Implementations must
// provide atomic single-record reads; the credential core performs no locking
// of its own.
type Store interface {
	Resolve(ctx context.Context, issuerID string) (contracts.IssuerRecord, error)
	Upsert(ctx context.Context, record contracts.IssuerRecord) error
	Delete(ctx context.Context, issuerID string) error
	Search(ctx context.Context, q Query) ([]contracts.IssuerRecord, error)
}
