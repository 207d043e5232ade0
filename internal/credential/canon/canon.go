// Package canon produces the deterministic byte forms the signature layer
// depends on: one-way PII digests and the canonical serialization of a
// credential payload.
//
// Canonical bytes are the signature's message. Issuance and verification
// construct the payload independently, so both sides must agree byte-for-byte
// regardless of how the structure was assembled.
package canon

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	dErrors "attesta/pkg/domain-errors"
)

// piiSaltSeparator joins a PII value with its salt before hashing. The
// separator is fixed so re-verification reproduces the original token.
const piiSaltSeparator = "|"

// HashPII computes a SHA-256 digest of a PII value, optionally salted, and
// returns it as "0x" + 64 lowercase hex characters.
//
// The function is deliberately deterministic: no per-call randomness. Repeated
// hashing of the same value without a per-subject salt is linkable across
// credentials; that is an accepted scope tradeoff, since verifiers must be
// able to reproduce the token from the same inputs.
func HashPII(value, salt string) string {
	input := value
	if salt != "" {
		input = value + piiSaltSeparator + salt
	}
	sum := sha256.Sum256([]byte(input))
	return "0x" + hex.EncodeToString(sum[:])
}

// Canonicalize renders v as JSON with object keys sorted lexicographically at
// every nesting level, so structurally equal payloads serialize to identical
// bytes whatever their construction order.
//
// The round-trip through an untyped value is what guarantees deep ordering:
// encoding/json sorts map keys recursively, while struct fields would keep
// declaration order (and a struct on one side vs. a map on the other would
// disagree). Top-level-only sorting is not sufficient; the nested case is
// covered by tests.
func Canonicalize(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeMalformedCredential, "payload is not serializable")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber() // keep numeric literals byte-stable across the round trip
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeMalformedCredential, "payload is not canonicalizable")
	}

	out, err := json.Marshal(generic)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeMalformedCredential, "payload is not canonicalizable")
	}
	return out, nil
}
