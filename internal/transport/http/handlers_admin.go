package httptransport

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	contracts "attesta/contracts/registry"
	"attesta/internal/kyc"
	"attesta/internal/platform/middleware"
	"attesta/internal/registry"
	"attesta/internal/transport/http/json"
	"attesta/internal/transport/http/shared"
	dErrors "attesta/pkg/domain-errors"
	"attesta/pkg/platform/middleware/requesttime"
	"attesta/pkg/secrets"
)

type adminTokenRequest struct {
	Actor  string `json:"actor"`
	Secret string `json:"secret"`
}

type adminTokenResponse struct {
	Token string `json:"token"`
}

// handleAdminToken exchanges the shared admin secret for a short-lived session
// token. The plaintext secret is never stored; it is checked against the
// configured bcrypt hash.
func (h *Handler) handleAdminToken(w http.ResponseWriter, r *http.Request) {
	var req adminTokenRequest
	if err := json.Decode(r, &req); err != nil {
		shared.WriteError(w, err)
		return
	}
	if req.Actor == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeValidation, "actor is required"))
		return
	}
	if h.adminTokenHash == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "admin access is not configured"))
		return
	}
	if err := secrets.Verify(req.Secret, h.adminTokenHash); err != nil {
		h.logger.WarnContext(r.Context(), "admin token exchange rejected",
			"actor", req.Actor,
			"request_id", middleware.GetRequestID(r.Context()),
		)
		shared.WriteError(w, err)
		return
	}

	token, err := h.tokens.Mint(req.Actor, requesttime.Now(r.Context()))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	json.WriteJSON(w, http.StatusOK, adminTokenResponse{Token: token})
}

func (h *Handler) handleSearchIssuers(w http.ResponseWriter, r *http.Request) {
	q := registry.Query{
		Jurisdiction: r.URL.Query().Get("jurisdiction"),
		Algorithm:    r.URL.Query().Get("algorithm"),
	}
	if v := r.URL.Query().Get("minTrustTier"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "minTrustTier must be an integer"))
			return
		}
		q.MinTrustTier = n
	}

	records, err := h.issuers.Search(r.Context(), q)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	json.WriteJSON(w, http.StatusOK, records)
}

func (h *Handler) handleGetIssuer(w http.ResponseWriter, r *http.Request) {
	record, err := h.issuers.Resolve(r.Context(), chi.URLParam(r, "issuerID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	json.WriteJSON(w, http.StatusOK, record)
}

// issuerUpsertRequest is the admin wire shape for issuer records. It exists
// because IssuerRecord never serializes its private key; the admin surface is
// the one place key material legitimately crosses the wire.
type issuerUpsertRequest struct {
	Name          string   `json:"name"`
	Jurisdictions []string `json:"jurisdictions"`
	Regulators    []string `json:"regulators"`
	TrustTier     int      `json:"trustTier"`
	Algorithm     string   `json:"algorithm"`
	PrivateKeyHex string   `json:"privateKeyHex"`
	PublicKeyHex  string   `json:"publicKeyHex"`
}

func (h *Handler) handleUpsertIssuer(w http.ResponseWriter, r *http.Request) {
	var req issuerUpsertRequest
	if err := json.Decode(r, &req); err != nil {
		shared.WriteError(w, err)
		return
	}
	record := contracts.IssuerRecord{
		ID:            chi.URLParam(r, "issuerID"),
		Name:          req.Name,
		Jurisdictions: req.Jurisdictions,
		Regulators:    req.Regulators,
		TrustTier:     req.TrustTier,
		Algorithm:     req.Algorithm,
		PrivateKeyHex: req.PrivateKeyHex,
		PublicKeyHex:  req.PublicKeyHex,
	}

	if err := h.issuers.Upsert(r.Context(), record); err != nil {
		shared.WriteError(w, err)
		return
	}
	h.logger.InfoContext(r.Context(), "issuer upserted",
		"issuer_id", record.ID,
		"actor", middleware.GetAdminActor(r.Context()),
	)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleDeleteIssuer(w http.ResponseWriter, r *http.Request) {
	issuerID := chi.URLParam(r, "issuerID")
	if err := h.issuers.Delete(r.Context(), issuerID); err != nil {
		shared.WriteError(w, err)
		return
	}
	h.logger.InfoContext(r.Context(), "issuer deleted",
		"issuer_id", issuerID,
		"actor", middleware.GetAdminActor(r.Context()),
	)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleSearchKYC(w http.ResponseWriter, r *http.Request) {
	q := kyc.Query{
		KYCLevel:     r.URL.Query().Get("kycLevel"),
		EntityType:   r.URL.Query().Get("entityType"),
		Jurisdiction: r.URL.Query().Get("jurisdiction"),
	}

	records, err := h.customers.Search(r.Context(), q)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	json.WriteJSON(w, http.StatusOK, records)
}

func (h *Handler) handleGetKYC(w http.ResponseWriter, r *http.Request) {
	record, err := h.customers.Resolve(r.Context(), chi.URLParam(r, "customerRef"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	json.WriteJSON(w, http.StatusOK, record)
}

func (h *Handler) handleUpsertKYC(w http.ResponseWriter, r *http.Request) {
	var record contracts.KYCRecord
	if err := json.Decode(r, &record); err != nil {
		shared.WriteError(w, err)
		return
	}
	record.CustomerRef = chi.URLParam(r, "customerRef")

	if err := h.customers.Upsert(r.Context(), record); err != nil {
		shared.WriteError(w, err)
		return
	}
	h.logger.InfoContext(r.Context(), "kyc record upserted",
		"customer_ref", record.CustomerRef,
		"actor", middleware.GetAdminActor(r.Context()),
	)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleDeleteKYC(w http.ResponseWriter, r *http.Request) {
	customerRef := chi.URLParam(r, "customerRef")
	if err := h.customers.Delete(r.Context(), customerRef); err != nil {
		shared.WriteError(w, err)
		return
	}
	h.logger.InfoContext(r.Context(), "kyc record deleted",
		"customer_ref", customerRef,
		"actor", middleware.GetAdminActor(r.Context()),
	)
	w.WriteHeader(http.StatusNoContent)
}
