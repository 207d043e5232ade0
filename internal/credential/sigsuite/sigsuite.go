// Package sigsuite implements the two signature schemes credentials can carry:
// Ed25519 (RFC 8032, deterministic, SHA-512 internal) and secp256k1 ECDSA
// (RFC 6979 deterministic nonces over a SHA-256 pre-hash of the payload).
//
// Encoded signatures are self-describing for transport: a single-character
// scheme tag followed by lowercase hex of the raw signature bytes. The tag is
// NOT cryptographically bound to the issuer's declared algorithm, so
// verification additionally requires the two to agree; a mismatch indicates
// tampering or misconfiguration and fails closed.
package sigsuite

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	dErrors "attesta/pkg/domain-errors"
)

// Algorithm identifies a supported signature scheme. The string values are
// wire vocabulary and must not change.
type Algorithm string

const (
	AlgorithmEd25519   Algorithm = "Ed25519"
	AlgorithmSecp256k1 Algorithm = "secp256k1"
)

// Proof type tags for the credential proof block, one per scheme.
const (
	ProofTypeEd25519   = "Ed25519Signature2020"
	ProofTypeSecp256k1 = "EcdsaSecp256k1Signature2019"
)

// Scheme tag prefixes for encoded signatures.
const (
	prefixEd25519   = "e"
	prefixSecp256k1 = "k"
)

// ParseAlgorithm validates an algorithm tag from untrusted input.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case AlgorithmEd25519:
		return AlgorithmEd25519, nil
	case AlgorithmSecp256k1:
		return AlgorithmSecp256k1, nil
	default:
		return "", dErrors.New(dErrors.CodeUnsupportedAlgorithm,
			fmt.Sprintf("unsupported signature algorithm %q", s))
	}
}

// ProofType returns the proof block type tag for an algorithm.
func (a Algorithm) ProofType() (string, error) {
	switch a {
	case AlgorithmEd25519:
		return ProofTypeEd25519, nil
	case AlgorithmSecp256k1:
		return ProofTypeSecp256k1, nil
	default:
		return "", dErrors.New(dErrors.CodeUnsupportedAlgorithm,
			fmt.Sprintf("unsupported signature algorithm %q", a))
	}
}

func (a Algorithm) prefix() string {
	if a == AlgorithmEd25519 {
		return prefixEd25519
	}
	return prefixSecp256k1
}

// Sign signs canonical payload bytes with the given private key and algorithm,
// returning the encoded signature string. Both schemes are deterministic: the
// same payload and key always produce the same signature.
func Sign(payload, privateKey []byte, alg Algorithm) (string, error) {
	switch alg {
	case AlgorithmEd25519:
		if len(privateKey) != ed25519.PrivateKeySize {
			return "", dErrors.New(dErrors.CodeValidation,
				fmt.Sprintf("ed25519 private key must be %d bytes, got %d", ed25519.PrivateKeySize, len(privateKey)))
		}
		sig := ed25519.Sign(ed25519.PrivateKey(privateKey), payload)
		return prefixEd25519 + hex.EncodeToString(sig), nil

	case AlgorithmSecp256k1:
		if len(privateKey) != 32 {
			return "", dErrors.New(dErrors.CodeValidation,
				fmt.Sprintf("secp256k1 private key must be 32 bytes, got %d", len(privateKey)))
		}
		priv := secp256k1.PrivKeyFromBytes(privateKey)
		digest := sha256.Sum256(payload)
		sig := secpecdsa.Sign(priv, digest[:])
		return prefixSecp256k1 + hex.EncodeToString(sig.Serialize()), nil

	default:
		return "", dErrors.New(dErrors.CodeUnsupportedAlgorithm,
			fmt.Sprintf("unsupported signature algorithm %q", alg))
	}
}

// Verify checks an encoded signature against canonical payload bytes under the
// issuer-declared algorithm.
//
// It returns an error only for an unrecognized algorithm tag. Every structural
// defect in the signature itself (empty value, scheme prefix disagreeing with
// the declared algorithm, bad hex, wrong length, unparseable DER) fails closed
// with (false, nil): verification runs against untrusted input and must never
// panic or hard-fail on malformed data.
func Verify(payload []byte, encodedSig string, publicKey []byte, alg Algorithm) (bool, error) {
	if alg != AlgorithmEd25519 && alg != AlgorithmSecp256k1 {
		return false, dErrors.New(dErrors.CodeUnsupportedAlgorithm,
			fmt.Sprintf("unsupported signature algorithm %q", alg))
	}

	if len(encodedSig) < 2 {
		return false, nil
	}
	if string(encodedSig[0]) != alg.prefix() {
		return false, nil
	}
	raw, err := hex.DecodeString(encodedSig[1:])
	if err != nil {
		return false, nil
	}

	switch alg {
	case AlgorithmEd25519:
		if len(publicKey) != ed25519.PublicKeySize || len(raw) != ed25519.SignatureSize {
			return false, nil
		}
		return ed25519.Verify(ed25519.PublicKey(publicKey), payload, raw), nil

	default: // AlgorithmSecp256k1
		pub, err := secp256k1.ParsePubKey(publicKey)
		if err != nil {
			return false, nil
		}
		sig, err := secpecdsa.ParseDERSignature(raw)
		if err != nil {
			return false, nil
		}
		digest := sha256.Sum256(payload)
		return sig.Verify(digest[:], pub), nil
	}
}
