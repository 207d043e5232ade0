package registry

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"attesta/internal/credential/sigsuite"
	dErrors "attesta/pkg/domain-errors"
)

// DecodeKey decodes hex key material into raw bytes.
func DecodeKey(keyHex string) ([]byte, error) {
	raw, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "key material is not valid hex")
	}
	return raw, nil
}

// ValidateKeyMaterial enforces the issuer invariant that the algorithm tag
// matches the curve of both keys. Called on every upsert so a misconfigured
// issuer can never reach the signing path.
func ValidateKeyMaterial(alg sigsuite.Algorithm, privateKeyHex, publicKeyHex string) error {
	priv, err := DecodeKey(privateKeyHex)
	if err != nil {
		return err
	}
	pub, err := DecodeKey(publicKeyHex)
	if err != nil {
		return err
	}

	switch alg {
	case sigsuite.AlgorithmEd25519:
		if len(priv) != ed25519.PrivateKeySize {
			return dErrors.New(dErrors.CodeValidation,
				fmt.Sprintf("ed25519 private key must be %d bytes, got %d", ed25519.PrivateKeySize, len(priv)))
		}
		if len(pub) != ed25519.PublicKeySize {
			return dErrors.New(dErrors.CodeValidation,
				fmt.Sprintf("ed25519 public key must be %d bytes, got %d", ed25519.PublicKeySize, len(pub)))
		}
	case sigsuite.AlgorithmSecp256k1:
		if len(priv) != 32 {
			return dErrors.New(dErrors.CodeValidation,
				fmt.Sprintf("secp256k1 private key must be 32 bytes, got %d", len(priv)))
		}
		if _, err := secp256k1.ParsePubKey(pub); err != nil {
			return dErrors.Wrap(err, dErrors.CodeValidation, "secp256k1 public key does not parse")
		}
	default:
		return dErrors.New(dErrors.CodeUnsupportedAlgorithm,
			fmt.Sprintf("unsupported signature algorithm %q", alg))
	}
	return nil
}

// GenerateKeyPair creates fresh hex-encoded key material for an algorithm.
// Development and seeding only; production issuers bring their own keys.
func GenerateKeyPair(alg sigsuite.Algorithm) (privateKeyHex, publicKeyHex string, err error) {
	switch alg {
	case sigsuite.AlgorithmEd25519:
		pub, priv, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return "", "", dErrors.Wrap(err, dErrors.CodeInternal, "could not generate ed25519 key")
		}
		return hex.EncodeToString(priv), hex.EncodeToString(pub), nil

	case sigsuite.AlgorithmSecp256k1:
		priv, err := secp256k1.GeneratePrivateKey()
		if err != nil {
			return "", "", dErrors.Wrap(err, dErrors.CodeInternal, "could not generate secp256k1 key")
		}
		return hex.EncodeToString(priv.Serialize()),
			hex.EncodeToString(priv.PubKey().SerializeCompressed()), nil

	default:
		return "", "", dErrors.New(dErrors.CodeUnsupportedAlgorithm,
			fmt.Sprintf("unsupported signature algorithm %q", alg))
	}
}
