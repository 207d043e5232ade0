package sigsuite

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/suite"

	dErrors "attesta/pkg/domain-errors"
)

type SigSuiteSuite struct {
	suite.Suite
	edPriv ed25519.PrivateKey
	edPub  ed25519.PublicKey
	kPriv  *secp256k1.PrivateKey
	kPub   []byte
}

func (s *SigSuiteSuite) SetupSuite() {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	s.Require().NoError(err)
	s.edPub, s.edPriv = pub, priv

	kPriv, err := secp256k1.GeneratePrivateKey()
	s.Require().NoError(err)
	s.kPriv = kPriv
	s.kPub = kPriv.PubKey().SerializeCompressed()
}

func TestSigSuiteSuite(t *testing.T) {
	suite.Run(t, new(SigSuiteSuite))
}

func (s *SigSuiteSuite) TestParseAlgorithm() {
	s.Run("accepts the two wire tags", func() {
		alg, err := ParseAlgorithm("Ed25519")
		s.NoError(err)
		s.Equal(AlgorithmEd25519, alg)

		alg, err = ParseAlgorithm("secp256k1")
		s.NoError(err)
		s.Equal(AlgorithmSecp256k1, alg)
	})

	s.Run("rejects anything else", func() {
		_, err := ParseAlgorithm("RSA")
		s.True(dErrors.HasCode(err, dErrors.CodeUnsupportedAlgorithm))

		_, err = ParseAlgorithm("ed25519") // case-sensitive wire vocabulary
		s.Error(err)
	})
}

func (s *SigSuiteSuite) TestProofType() {
	tag, err := AlgorithmEd25519.ProofType()
	s.NoError(err)
	s.Equal("Ed25519Signature2020", tag)

	tag, err = AlgorithmSecp256k1.ProofType()
	s.NoError(err)
	s.Equal("EcdsaSecp256k1Signature2019", tag)

	_, err = Algorithm("dsa").ProofType()
	s.True(dErrors.HasCode(err, dErrors.CodeUnsupportedAlgorithm))
}

func (s *SigSuiteSuite) TestEd25519RoundTrip() {
	payload := []byte(`{"id":"urn:credential:kyc:abc","tier":3}`)

	sig, err := Sign(payload, s.edPriv, AlgorithmEd25519)
	s.Require().NoError(err)
	s.Equal(byte('e'), sig[0])

	s.Run("verifies", func() {
		ok, err := Verify(payload, sig, s.edPub, AlgorithmEd25519)
		s.NoError(err)
		s.True(ok)
	})

	s.Run("signing is deterministic", func() {
		again, err := Sign(payload, s.edPriv, AlgorithmEd25519)
		s.NoError(err)
		s.Equal(sig, again)
	})

	s.Run("payload change fails", func() {
		ok, err := Verify([]byte(`{"id":"urn:credential:kyc:abc","tier":4}`), sig, s.edPub, AlgorithmEd25519)
		s.NoError(err)
		s.False(ok)
	})

	s.Run("wrong key fails", func() {
		otherPub, _, err := ed25519.GenerateKey(rand.Reader)
		s.Require().NoError(err)
		ok, err := Verify(payload, sig, otherPub, AlgorithmEd25519)
		s.NoError(err)
		s.False(ok)
	})
}

func (s *SigSuiteSuite) TestSecp256k1RoundTrip() {
	payload := []byte(`{"id":"urn:credential:kyc:def","tier":5}`)

	sig, err := Sign(payload, s.kPriv.Serialize(), AlgorithmSecp256k1)
	s.Require().NoError(err)
	s.Equal(byte('k'), sig[0])

	s.Run("verifies", func() {
		ok, err := Verify(payload, sig, s.kPub, AlgorithmSecp256k1)
		s.NoError(err)
		s.True(ok)
	})

	s.Run("signing is deterministic", func() {
		again, err := Sign(payload, s.kPriv.Serialize(), AlgorithmSecp256k1)
		s.NoError(err)
		s.Equal(sig, again)
	})

	s.Run("accepts uncompressed public key encoding", func() {
		ok, err := Verify(payload, sig, s.kPriv.PubKey().SerializeUncompressed(), AlgorithmSecp256k1)
		s.NoError(err)
		s.True(ok)
	})

	s.Run("payload change fails", func() {
		ok, err := Verify([]byte(`tampered`), sig, s.kPub, AlgorithmSecp256k1)
		s.NoError(err)
		s.False(ok)
	})
}

func (s *SigSuiteSuite) TestFailsClosedOnMalformedSignatures() {
	payload := []byte("payload")
	sig, err := Sign(payload, s.edPriv, AlgorithmEd25519)
	s.Require().NoError(err)

	cases := map[string]string{
		"empty":                 "",
		"prefix only":           "e",
		"bad hex":               "ezzzz",
		"truncated":             sig[:20],
		"wrong scheme prefix":   "k" + sig[1:],
		"unknown scheme prefix": "x" + sig[1:],
	}
	for name, malformed := range cases {
		s.Run(name, func() {
			ok, err := Verify(payload, malformed, s.edPub, AlgorithmEd25519)
			s.NoError(err)
			s.False(ok)
		})
	}

	s.Run("secp256k1 rejects garbage DER", func() {
		ok, err := Verify(payload, "kdeadbeef", s.kPub, AlgorithmSecp256k1)
		s.NoError(err)
		s.False(ok)
	})

	s.Run("secp256k1 rejects garbage public key", func() {
		kSig, err := Sign(payload, s.kPriv.Serialize(), AlgorithmSecp256k1)
		s.Require().NoError(err)
		ok, err := Verify(payload, kSig, []byte{0x01, 0x02}, AlgorithmSecp256k1)
		s.NoError(err)
		s.False(ok)
	})
}

func (s *SigSuiteSuite) TestPrefixAlgorithmBinding() {
	// An Ed25519 signature presented under a secp256k1 declaration (or vice
	// versa) must fail, even though the encoded string itself is well-formed.
	payload := []byte("payload")

	edSig, err := Sign(payload, s.edPriv, AlgorithmEd25519)
	s.Require().NoError(err)
	ok, err := Verify(payload, edSig, s.kPub, AlgorithmSecp256k1)
	s.NoError(err)
	s.False(ok)

	kSig, err := Sign(payload, s.kPriv.Serialize(), AlgorithmSecp256k1)
	s.Require().NoError(err)
	ok, err = Verify(payload, kSig, s.edPub, AlgorithmEd25519)
	s.NoError(err)
	s.False(ok)
}

func (s *SigSuiteSuite) TestUnsupportedAlgorithm() {
	_, err := Sign([]byte("p"), s.edPriv, Algorithm("RSA"))
	s.True(dErrors.HasCode(err, dErrors.CodeUnsupportedAlgorithm))

	_, err = Verify([]byte("p"), "e00", s.edPub, Algorithm("RSA"))
	s.True(dErrors.HasCode(err, dErrors.CodeUnsupportedAlgorithm))
}

func (s *SigSuiteSuite) TestKeySizeValidation() {
	_, err := Sign([]byte("p"), []byte("short"), AlgorithmEd25519)
	s.Error(err)

	_, err = Sign([]byte("p"), []byte("short"), AlgorithmSecp256k1)
	s.Error(err)
}
