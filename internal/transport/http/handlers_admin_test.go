package httptransport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	contracts "attesta/contracts/registry"
	"attesta/internal/credential/sigsuite"
	"attesta/internal/registry"
)

func (s *TransportSuite) adminToken() string {
	w := s.postJSON("/admin/token", map[string]string{
		"actor":  "ops",
		"secret": testAdminSecret,
	})
	s.Require().Equal(http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Require().NotEmpty(resp.Token)
	return resp.Token
}

func (s *TransportSuite) adminRequest(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *TransportSuite) TestAdminTokenExchange() {
	s.Run("wrong secret is rejected", func() {
		w := s.postJSON("/admin/token", map[string]string{
			"actor":  "ops",
			"secret": "guess",
		})
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("missing actor is rejected", func() {
		w := s.postJSON("/admin/token", map[string]string{"secret": testAdminSecret})
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("correct secret mints a session token", func() {
		s.NotEmpty(s.adminToken())
	})
}

func (s *TransportSuite) TestAdminRoutesRequireToken() {
	s.Run("no token", func() {
		w := s.adminRequest(http.MethodGet, "/admin/issuers", "", nil)
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("garbage token", func() {
		w := s.adminRequest(http.MethodGet, "/admin/issuers", "not-a-jwt", nil)
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *TransportSuite) TestIssuerAdministration() {
	token := s.adminToken()

	priv, pub, err := registry.GenerateKeyPair(sigsuite.AlgorithmSecp256k1)
	s.Require().NoError(err)
	record := issuerUpsertRequest{
		Name:          "Bank K",
		Jurisdictions: []string{"UK"},
		Regulators:    []string{"FCA"},
		TrustTier:     3,
		Algorithm:     string(sigsuite.AlgorithmSecp256k1),
		PrivateKeyHex: priv,
		PublicKeyHex:  pub,
	}

	s.Run("upsert takes the id from the path", func() {
		w := s.adminRequest(http.MethodPut, "/admin/issuers/bank-K", token, record)
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("get returns the stored record without key material", func() {
		w := s.adminRequest(http.MethodGet, "/admin/issuers/bank-K", token, nil)
		s.Require().Equal(http.StatusOK, w.Code)

		var got contracts.IssuerRecord
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
		s.Equal("Bank K", got.Name)
		s.Empty(got.PrivateKeyHex) // json:"-" keeps the signing key off the wire
	})

	s.Run("search filters by tier", func() {
		w := s.adminRequest(http.MethodGet, "/admin/issuers?minTrustTier=4", token, nil)
		s.Require().Equal(http.StatusOK, w.Code)

		var got []contracts.IssuerRecord
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
		s.Require().Len(got, 1)
		s.Equal("bank-A", got[0].ID)
	})

	s.Run("bad tier filter is rejected", func() {
		w := s.adminRequest(http.MethodGet, "/admin/issuers?minTrustTier=high", token, nil)
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("invalid record is rejected", func() {
		bad := record
		bad.TrustTier = 9
		w := s.adminRequest(http.MethodPut, "/admin/issuers/bank-X", token, bad)
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("delete removes the issuer", func() {
		w := s.adminRequest(http.MethodDelete, "/admin/issuers/bank-K", token, nil)
		s.Equal(http.StatusNoContent, w.Code)

		w = s.adminRequest(http.MethodGet, "/admin/issuers/bank-K", token, nil)
		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *TransportSuite) TestKYCAdministration() {
	token := s.adminToken()

	record := contracts.KYCRecord{
		FullName:       "Dora Example",
		DateOfBirth:    "1985-01-20",
		Citizenship:    "DE",
		Address:        "2 Ringstrasse",
		KYCLevel:       "basic",
		AMLCheck:       contracts.CheckPassed,
		SanctionsCheck: contracts.CheckPassed,
		PEPCheck:       contracts.CheckPassed,
		EntityType:     "individual",
		Tier:           1,
		Jurisdictions:  []string{"EU"},
	}

	s.Run("upsert takes the reference from the path", func() {
		w := s.adminRequest(http.MethodPut, "/admin/kyc/KYC-100", token, record)
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("get returns the stored record", func() {
		w := s.adminRequest(http.MethodGet, "/admin/kyc/KYC-100", token, nil)
		s.Require().Equal(http.StatusOK, w.Code)

		var got contracts.KYCRecord
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
		s.Equal("KYC-100", got.CustomerRef)
		s.Equal("Dora Example", got.FullName)
	})

	s.Run("search filters by entity type", func() {
		w := s.adminRequest(http.MethodGet, "/admin/kyc?entityType=corporate", token, nil)
		s.Require().Equal(http.StatusOK, w.Code)

		var got []contracts.KYCRecord
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
		s.Require().Len(got, 1)
		s.Equal("KYC-003", got[0].CustomerRef)
	})

	s.Run("delete removes the record", func() {
		w := s.adminRequest(http.MethodDelete, "/admin/kyc/KYC-100", token, nil)
		s.Equal(http.StatusNoContent, w.Code)

		w = s.adminRequest(http.MethodGet, "/admin/kyc/KYC-100", token, nil)
		s.Equal(http.StatusNotFound, w.Code)
	})
}
