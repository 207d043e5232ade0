// Package models defines the wire shape of KYC verifiable credentials and the
// request/result types the credential service exposes. Field names and tag
// vocabulary are interoperability contracts; do not rename.
package models

import (
	"time"

	contracts "attesta/contracts/registry"
	"attesta/internal/credential/sigsuite"
)

// DefaultContext is the W3C credentials context carried by every credential.
var DefaultContext = []string{
	"https://www.w3.org/2018/credentials/v1",
	"https://w3id.org/security/suites/ed25519-2020/v1",
}

// Credential type tags.
const (
	TypeVerifiableCredential = "VerifiableCredential"
	TypeKYCCredential        = "KYCCredential"
)

// CredentialIDPrefix namespaces derived credential identities.
const CredentialIDPrefix = "urn:credential:kyc:"

// SubjectDIDPrefix is the deterministic fallback namespace for subjects whose
// KYC record carries no pre-existing DID.
const SubjectDIDPrefix = "did:subject:"

// StatusType tags the credentialStatus block.
const StatusType = "RevocationRegistry2023"

// IssuerSnapshot is the issuer block embedded in a credential. It is copied at
// issuance time: later edits to the issuer registry never change an already
// issued credential.
type IssuerSnapshot struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Jurisdictions []string `json:"jurisdictions"`
	Regulators    []string `json:"regulators"`
	TrustTier     int      `json:"trustTier"`
}

// PIIHashes carries the one-way digests of the four subject identity fields.
type PIIHashes struct {
	Name        string `json:"name"`
	DateOfBirth string `json:"dateOfBirth"`
	Citizenship string `json:"citizenship"`
	Address     string `json:"address"`
}

// Claims mirrors the KYC compliance outcomes attested by the credential.
type Claims struct {
	KYCLevel           string `json:"kycLevel"`
	AMLCheck           string `json:"amlCheck"`
	SanctionsCheck     string `json:"sanctionsCheck"`
	PEPCheck           string `json:"pepCheck"`
	SourceOfFunds      string `json:"sourceOfFunds"`
	AccreditedInvestor bool   `json:"accreditedInvestor"`
	EntityType         string `json:"entityType"`
}

// VerifiedAmount is the monetary amount confirmed during KYC review.
type VerifiedAmount struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// CredentialSubject is the subject block of a credential.
type CredentialSubject struct {
	ID             string         `json:"id"`
	PIIHashes      PIIHashes      `json:"piiHashes"`
	Claims         Claims         `json:"claims"`
	VerifiedAmount VerifiedAmount `json:"verifiedAmount"`
	Tier           int            `json:"tier"`
	Jurisdictions  []string       `json:"jurisdictions"`
}

// CredentialStatus is the status-reference block, derived deterministically
// from the credential identity. Only a locator placeholder; no revocation
// registry protocol is modeled.
type CredentialStatus struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Registry string `json:"registry"`
	Token    string `json:"token"`
}

// Proof carries the signature over the canonical payload.
type Proof struct {
	Type               string    `json:"type"`
	Created            time.Time `json:"created"`
	VerificationMethod string    `json:"verificationMethod"`
	ProofPurpose       string    `json:"proofPurpose"`
	ProofValue         string    `json:"proofValue"`
}

// Credential is a signed KYC credential. Treat values as immutable once
// signed; the only permitted transition is revocation, which produces a new
// copy (see verifier.Revoke).
type Credential struct {
	Context           []string          `json:"@context"`
	ID                string            `json:"id"`
	Type              []string          `json:"type"`
	Issuer            IssuerSnapshot    `json:"issuer"`
	IssuanceDate      time.Time         `json:"issuanceDate"`
	ExpirationDate    time.Time         `json:"expirationDate"`
	CredentialSubject CredentialSubject `json:"credentialSubject"`
	DecommissionedAt  *time.Time        `json:"decommissionedAt"`
	CredentialStatus  CredentialStatus  `json:"credentialStatus"`
	Proof             *Proof            `json:"proof,omitempty"`
}

// IsRevoked reports whether the revocation marker is set.
func (c *Credential) IsRevoked() bool {
	return c.DecommissionedAt != nil
}

// SigningPayload returns the copy of the credential that is canonicalized and
// signed: proof stripped, revocation marker normalized to null. Revocation is
// a status transition, not a content change, so it must not invalidate the
// signature laid down at issuance.
func (c *Credential) SigningPayload() Credential {
	payload := *c
	payload.Proof = nil
	payload.DecommissionedAt = nil
	return payload
}

// IssuanceRequest asks for one credential to be issued.
type IssuanceRequest struct {
	CustomerRef        string   `json:"customerRef"`
	IssuerID           string   `json:"issuerId"`
	KYCLevel           string   `json:"kycLevel"`
	AccreditedInvestor bool     `json:"accreditedInvestor"`
	Jurisdictions      []string `json:"jurisdictions"`
	ExpiryDays         int      `json:"expiryDays,omitempty"`
	Algorithm          string   `json:"algorithm,omitempty"`
}

// CheckError is one failed verification check.
type CheckError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// VerificationResult reports every failed check, not just the first.
type VerificationResult struct {
	Valid  bool         `json:"valid"`
	Errors []CheckError `json:"errors"`
}

// FailedRequest pairs a rejected batch item with its error description.
type FailedRequest struct {
	Request IssuanceRequest `json:"request"`
	Code    string          `json:"code"`
	Error   string          `json:"error"`
}

// BatchResult preserves input order within each list.
type BatchResult struct {
	Successful []*Credential   `json:"successful"`
	Failed     []FailedRequest `json:"failed"`
}

// AlgorithmOrDefault resolves the effective signing algorithm for a request
// against the issuer's configured default.
func (r IssuanceRequest) AlgorithmOrDefault(issuer contracts.IssuerRecord) (sigsuite.Algorithm, error) {
	if r.Algorithm != "" {
		return sigsuite.ParseAlgorithm(r.Algorithm)
	}
	return sigsuite.ParseAlgorithm(issuer.Algorithm)
}
