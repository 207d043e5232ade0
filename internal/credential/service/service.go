// Package service exposes the credential lifecycle operations - issue,
// verify, revoke, batch issue - behind one façade that adds logging, metrics,
// and tracing around the pure domain packages.
package service

import (
	"context"
	"log/slog"
	"time"

	"attesta/internal/credential/batch"
	"attesta/internal/credential/builder"
	"attesta/internal/credential/metrics"
	"attesta/internal/credential/models"
	"attesta/internal/credential/tracer"
	"attesta/internal/credential/verifier"
	"attesta/internal/kyc"
	"attesta/internal/registry"
	dErrors "attesta/pkg/domain-errors"
)

func errorCode(err error) string {
	return string(dErrors.CodeOf(err))
}

// Config captures the service-level settings.
type Config struct {
	StatusRegistryURL string
	DefaultExpiryDays int
	BatchConcurrency  int
}

// Service coordinates credential issuance and verification.
type Service struct {
	builder  *builder.Builder
	verifier *verifier.Verifier
	batch    *batch.Orchestrator
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   tracer.Tracer
}

// Option configures the Service.
type Option func(*Service)

// WithLogger configures a logger for the service and its domain components.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithMetrics configures Prometheus metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithTracer configures a tracer; defaults to the noop tracer.
func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) { s.tracer = t }
}

// New creates the credential service over the two injected lookup
// capabilities.
func New(issuers registry.Store, customers kyc.Store, cfg Config, opts ...Option) *Service {
	s := &Service{tracer: tracer.NewNoop()}
	for _, opt := range opts {
		opt(s)
	}

	builderOpts := []builder.Option{builder.WithDefaultExpiryDays(cfg.DefaultExpiryDays)}
	verifierOpts := []verifier.Option{}
	batchOpts := []batch.Option{batch.WithConcurrency(cfg.BatchConcurrency)}
	if s.logger != nil {
		builderOpts = append(builderOpts, builder.WithLogger(s.logger))
		verifierOpts = append(verifierOpts, verifier.WithLogger(s.logger))
		batchOpts = append(batchOpts, batch.WithLogger(s.logger))
	}

	s.builder = builder.New(issuers, customers, cfg.StatusRegistryURL, builderOpts...)
	s.verifier = verifier.New(issuers, verifierOpts...)
	s.batch = batch.New(s, batchOpts...)
	return s
}

// Issue issues one signed credential.
func (s *Service) Issue(ctx context.Context, req models.IssuanceRequest) (*models.Credential, error) {
	ctx, span := s.tracer.Start(ctx, "credential.issue",
		tracer.String("issuer_id", req.IssuerID),
	)
	start := time.Now()

	cred, err := s.builder.Issue(ctx, req)

	if s.metrics != nil {
		s.metrics.SignLatency.Observe(time.Since(start).Seconds())
		if err != nil {
			s.metrics.IssuanceFailures.WithLabelValues(errorCode(err)).Inc()
		} else {
			s.metrics.CredentialsIssued.WithLabelValues(cred.Proof.Type).Inc()
		}
	}
	span.End(err)
	return cred, err
}

// Verify re-checks a credential and reports every failed check.
func (s *Service) Verify(ctx context.Context, cred *models.Credential) models.VerificationResult {
	ctx, span := s.tracer.Start(ctx, "credential.verify")

	result := s.verifier.Verify(ctx, cred)

	if s.metrics != nil {
		outcome := "valid"
		if !result.Valid {
			outcome = "invalid"
		}
		s.metrics.Verifications.WithLabelValues(outcome).Inc()
		for _, failure := range result.Errors {
			s.metrics.CheckFailures.WithLabelValues(failure.Code).Inc()
		}
	}
	span.SetAttributes(tracer.Bool("valid", result.Valid))
	span.End(nil)
	return result
}

// Revoke returns a revoked copy of the credential.
func (s *Service) Revoke(ctx context.Context, cred models.Credential) models.Credential {
	revoked := s.verifier.Revoke(ctx, cred)
	if s.metrics != nil {
		s.metrics.Revocations.Inc()
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "credential revoked",
			"credential_id", revoked.ID,
			"revoked_at", revoked.DecommissionedAt,
		)
	}
	return revoked
}

// BatchIssue processes many issuance requests with per-item failure isolation.
func (s *Service) BatchIssue(ctx context.Context, reqs []models.IssuanceRequest) models.BatchResult {
	ctx, span := s.tracer.Start(ctx, "credential.batch_issue",
		tracer.Int("items", len(reqs)),
	)
	if s.metrics != nil {
		s.metrics.BatchSize.Observe(float64(len(reqs)))
	}

	result := s.batch.IssueAll(ctx, reqs)

	span.SetAttributes(
		tracer.Int("successful", len(result.Successful)),
		tracer.Int("failed", len(result.Failed)),
	)
	span.End(nil)
	return result
}
