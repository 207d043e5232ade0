package httptransport

import (
	"net/http"

	"attesta/internal/credential/models"
	"attesta/internal/transport/http/json"
	"attesta/internal/transport/http/shared"
	dErrors "attesta/pkg/domain-errors"
)

func (h *Handler) handleIssue(w http.ResponseWriter, r *http.Request) {
	var req models.IssuanceRequest
	if err := json.Decode(r, &req); err != nil {
		shared.WriteError(w, err)
		return
	}
	if req.CustomerRef == "" || req.IssuerID == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeValidation,
			"customerRef and issuerId are required"))
		return
	}

	cred, err := h.service.Issue(r.Context(), req)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	json.WriteJSON(w, http.StatusCreated, cred)
}

func (h *Handler) handleVerify(w http.ResponseWriter, r *http.Request) {
	var cred models.Credential
	if err := json.Decode(r, &cred); err != nil {
		shared.WriteError(w, err)
		return
	}

	result := h.service.Verify(r.Context(), &cred)
	json.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleRevoke(w http.ResponseWriter, r *http.Request) {
	var cred models.Credential
	if err := json.Decode(r, &cred); err != nil {
		shared.WriteError(w, err)
		return
	}
	if cred.ID == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeValidation, "credential id is required"))
		return
	}

	revoked := h.service.Revoke(r.Context(), cred)
	json.WriteJSON(w, http.StatusOK, revoked)
}

func (h *Handler) handleBatchIssue(w http.ResponseWriter, r *http.Request) {
	var reqs []models.IssuanceRequest
	if err := json.Decode(r, &reqs); err != nil {
		shared.WriteError(w, err)
		return
	}
	if len(reqs) == 0 {
		shared.WriteError(w, dErrors.New(dErrors.CodeValidation, "batch must not be empty"))
		return
	}

	result := h.service.BatchIssue(r.Context(), reqs)

	// A batch with failures is still a processed batch; partial success is
	// reported in the body, not the status code.
	json.WriteJSON(w, http.StatusOK, result)
}
