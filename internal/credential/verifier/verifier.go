// Package verifier re-checks issued credentials: lifecycle state (expiry,
// revocation), issuer resolution, and signature validity over the re-derived
// canonical payload.
//
// Verification runs against untrusted, externally supplied input. It never
// hard-fails on a malformed credential; it degrades to an invalid result with
// descriptive error entries. Checks do not short-circuit, so a caller sees
// every problem at once - with one exception: the signature check is skipped
// when there is no resolvable issuer (no key) or no proof block to check.
package verifier

import (
	"context"
	"log/slog"
	"time"

	"attesta/internal/credential/canon"
	"attesta/internal/credential/models"
	"attesta/internal/credential/sigsuite"
	"attesta/internal/registry"
	dErrors "attesta/pkg/domain-errors"
	"attesta/pkg/platform/middleware/requesttime"
)

// Verifier validates credentials against the issuer registry.
type Verifier struct {
	issuers registry.Store
	logger  *slog.Logger
}

// Option configures the Verifier.
type Option func(*Verifier)

// WithLogger configures a logger for the verifier.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Verifier) { v.logger = logger }
}

// New creates a Verifier over the injected issuer lookup capability.
func New(issuers registry.Store, opts ...Option) *Verifier {
	v := &Verifier{issuers: issuers}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Verify runs every check and reports all failures. Valid is true only when
// no check failed and the signature was explicitly confirmed.
func (v *Verifier) Verify(ctx context.Context, cred *models.Credential) models.VerificationResult {
	var errs []models.CheckError
	now := requesttime.Now(ctx).UTC()

	if cred == nil {
		return models.VerificationResult{
			Valid:  false,
			Errors: []models.CheckError{check(dErrors.CodeMalformedCredential, "credential is missing")},
		}
	}

	signatureCheckable := true
	if cred.ID == "" {
		errs = append(errs, check(dErrors.CodeMalformedCredential, "credential has no id"))
	}
	if cred.Proof == nil || cred.Proof.ProofValue == "" {
		errs = append(errs, check(dErrors.CodeMalformedCredential, "credential has no proof"))
		signatureCheckable = false
	}

	if now.After(cred.ExpirationDate) {
		errs = append(errs, check(dErrors.CodeExpired,
			"credential expired at "+cred.ExpirationDate.Format(time.RFC3339Nano)))
	}

	if cred.IsRevoked() {
		errs = append(errs, check(dErrors.CodeRevoked,
			"credential revoked at "+cred.DecommissionedAt.Format(time.RFC3339Nano)))
	}

	issuer, err := v.issuers.Resolve(ctx, cred.Issuer.ID)
	if err != nil {
		// No key to verify against: report the resolution failure and do not
		// attempt (or report) a signature check.
		errs = append(errs, check(dErrors.CodeUnknownIssuer,
			"issuer "+cred.Issuer.ID+" cannot be resolved"))
		return models.VerificationResult{Valid: false, Errors: errs}
	}

	signaturePassed := false
	if signatureCheckable {
		signaturePassed = v.checkSignature(cred, issuer.Algorithm, issuer.PublicKeyHex, &errs)
	}

	result := models.VerificationResult{
		Valid:  len(errs) == 0 && signaturePassed,
		Errors: errs,
	}
	if v.logger != nil && !result.Valid {
		v.logger.InfoContext(ctx, "credential failed verification",
			"credential_id", cred.ID,
			"check_failures", len(errs),
		)
	}
	return result
}

func (v *Verifier) checkSignature(cred *models.Credential, algTag, publicKeyHex string, errs *[]models.CheckError) bool {
	alg, err := sigsuite.ParseAlgorithm(algTag)
	if err != nil {
		*errs = append(*errs, check(dErrors.CodeUnsupportedAlgorithm,
			"issuer declares unsupported algorithm "+algTag))
		return false
	}
	pubKey, err := registry.DecodeKey(publicKeyHex)
	if err != nil {
		*errs = append(*errs, check(dErrors.CodeInvalidSignature, "issuer public key does not decode"))
		return false
	}

	payload, err := canon.Canonicalize(cred.SigningPayload())
	if err != nil {
		*errs = append(*errs, check(dErrors.CodeMalformedCredential, "credential payload cannot be canonicalized"))
		return false
	}

	ok, err := sigsuite.Verify(payload, cred.Proof.ProofValue, pubKey, alg)
	if err != nil {
		*errs = append(*errs, check(dErrors.CodeUnsupportedAlgorithm, err.Error()))
		return false
	}
	if !ok {
		*errs = append(*errs, check(dErrors.CodeInvalidSignature,
			"signature does not verify against issuer key"))
		return false
	}
	return true
}

// Revoke returns a revoked copy of the credential, stamped with the
// request-scoped time. The input value is never mutated, so holders of the
// prior instance keep an unchanged view. Revoking an already-revoked
// credential re-stamps the marker; it does not fail.
func (v *Verifier) Revoke(ctx context.Context, cred models.Credential) models.Credential {
	now := requesttime.Now(ctx).UTC()
	cred.DecommissionedAt = &now
	return cred
}

func check(code dErrors.Code, msg string) models.CheckError {
	return models.CheckError{Code: string(code), Message: msg}
}
