// Package registry hosts the stable, minimal DTOs for the two externally-owned
// registries the credential core consumes: the issuer registry and the KYC
// evidence store. Keep these shapes versioned independently from any internal
// credential schemas or persistence models.
package registry

// ContractVersion identifies the contract schema version for compatibility checks.
// Bump on breaking changes to the shapes below; consumers can pin or roll forward.
const ContractVersion = "v0.2.0"

// CheckStatus is the outcome of a single compliance screening.
type CheckStatus string

const (
	CheckPassed  CheckStatus = "passed"
	CheckFailed  CheckStatus = "failed"
	CheckPending CheckStatus = "pending"
)

// IssuerRecord describes a financial institution authorized to sign
// credentials. Key material is hex-encoded; the Algorithm tag must match the
// curve of both keys (enforced by the issuer store on upsert).
type IssuerRecord struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Jurisdictions []string `json:"jurisdictions"`
	Regulators    []string `json:"regulators"`
	TrustTier     int      `json:"trustTier"`
	Algorithm     string   `json:"algorithm"`
	PrivateKeyHex string   `json:"-"`
	PublicKeyHex  string   `json:"publicKeyHex"`
}

// VerifiedAmount is a monetary amount confirmed during KYC review.
type VerifiedAmount struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// KYCRecord is the fixed record shape returned by the KYC evidence store.
// Identity fields carry raw PII; the credential core only ever emits their
// hashes.
type KYCRecord struct {
	CustomerRef        string         `json:"customerRef"`
	FullName           string         `json:"fullName"`
	DateOfBirth        string         `json:"dateOfBirth"`
	Citizenship        string         `json:"citizenship"`
	Address            string         `json:"address"`
	KYCLevel           string         `json:"kycLevel"`
	AMLCheck           CheckStatus    `json:"amlCheck"`
	SanctionsCheck     CheckStatus    `json:"sanctionsCheck"`
	PEPCheck           CheckStatus    `json:"pepCheck"`
	SourceOfFunds      CheckStatus    `json:"sourceOfFunds"`
	AccreditedInvestor bool           `json:"accreditedInvestor"`
	EntityType         string         `json:"entityType"`
	VerifiedAmount     VerifiedAmount `json:"verifiedAmount"`
	Tier               int            `json:"tier"`
	Jurisdictions      []string       `json:"jurisdictions"`
	SubjectDID         string         `json:"subjectDid,omitempty"`
}
