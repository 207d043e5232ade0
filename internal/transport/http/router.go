// Package httptransport is the thin HTTP layer. Handlers decode, delegate to
// the credential service or a registry store, and encode; business logic stays
// in the domain packages.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"attesta/internal/credential/models"
	"attesta/internal/kyc"
	"attesta/internal/platform/middleware"
	"attesta/internal/registry"
	"attesta/internal/transport/http/json"
)

// CredentialService is the lifecycle surface the transport depends on.
type CredentialService interface {
	Issue(ctx context.Context, req models.IssuanceRequest) (*models.Credential, error)
	Verify(ctx context.Context, cred *models.Credential) models.VerificationResult
	Revoke(ctx context.Context, cred models.Credential) models.Credential
	BatchIssue(ctx context.Context, reqs []models.IssuanceRequest) models.BatchResult
}

// Handler wires the credential service and the two registries to HTTP.
type Handler struct {
	service        CredentialService
	issuers        registry.Store
	customers      kyc.Store
	tokens         *middleware.TokenIssuer
	adminTokenHash string
	logger         *slog.Logger
}

// NewHandler creates the HTTP handler set.
func NewHandler(
	service CredentialService,
	issuers registry.Store,
	customers kyc.Store,
	tokens *middleware.TokenIssuer,
	adminTokenHash string,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		service:        service,
		issuers:        issuers,
		customers:      customers,
		tokens:         tokens,
		adminTokenHash: adminTokenHash,
		logger:         logger,
	}
}

// NewRouter wires all endpoints with the middleware stack.
func NewRouter(h *Handler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ContentTypeJSON)

	// Credential lifecycle
	r.Post("/credentials/issue", h.handleIssue)
	r.Post("/credentials/verify", h.handleVerify)
	r.Post("/credentials/revoke", h.handleRevoke)
	r.Post("/credentials/batch-issue", h.handleBatchIssue)

	// Registry administration. Token exchange is the only unguarded admin
	// route; everything else requires a minted session token.
	r.Route("/admin", func(admin chi.Router) {
		admin.Post("/token", h.handleAdminToken)

		admin.Group(func(g chi.Router) {
			g.Use(middleware.RequireAdmin(h.tokens, logger))

			g.Get("/issuers", h.handleSearchIssuers)
			g.Get("/issuers/{issuerID}", h.handleGetIssuer)
			g.Put("/issuers/{issuerID}", h.handleUpsertIssuer)
			g.Delete("/issuers/{issuerID}", h.handleDeleteIssuer)

			g.Get("/kyc", h.handleSearchKYC)
			g.Get("/kyc/{customerRef}", h.handleGetKYC)
			g.Put("/kyc/{customerRef}", h.handleUpsertKYC)
			g.Delete("/kyc/{customerRef}", h.handleDeleteKYC)
		})
	})

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	json.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
