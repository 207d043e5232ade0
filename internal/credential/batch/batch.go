// Package batch runs issuance over many requests with per-item failure
// isolation. Results are written to indexed slots, never appended by
// completion order, so output order always matches input order within each of
// the two result lists.
package batch

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"attesta/internal/credential/models"
	dErrors "attesta/pkg/domain-errors"
	"attesta/pkg/platform/middleware/requesttime"
)

// Issuer is the single-request issuance dependency.
type Issuer interface {
	Issue(ctx context.Context, req models.IssuanceRequest) (*models.Credential, error)
}

// Orchestrator fans issuance requests out across a bounded worker pool.
type Orchestrator struct {
	issuer      Issuer
	concurrency int
	logger      *slog.Logger
}

// Option configures the Orchestrator.
type Option func(*Orchestrator)

// WithConcurrency bounds the number of in-flight issuances. Values below 1
// fall back to serial processing.
func WithConcurrency(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithLogger configures a logger for the orchestrator.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) { o.logger = logger }
}

// New creates an Orchestrator around a single-request issuer.
func New(issuer Issuer, opts ...Option) *Orchestrator {
	o := &Orchestrator{issuer: issuer, concurrency: 1}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// itemOutcome is one request's slot. Each goroutine writes only its own slot,
// so assembly after Wait needs no locking.
type itemOutcome struct {
	credential *models.Credential
	err        error
}

// IssueAll processes every request independently and in input order. One
// request's failure never aborts or affects any other request; the errgroup
// context is deliberately not used for cancellation between items.
func (o *Orchestrator) IssueAll(ctx context.Context, reqs []models.IssuanceRequest) models.BatchResult {
	// Pin one instant for the whole batch so sibling credentials share an
	// issuance timestamp.
	ctx = requesttime.WithTime(ctx, requesttime.Now(ctx))

	outcomes := make([]itemOutcome, len(reqs))

	g := &errgroup.Group{}
	g.SetLimit(o.concurrency)
	for i, req := range reqs {
		g.Go(func() error {
			cred, err := o.issuer.Issue(ctx, req)
			outcomes[i] = itemOutcome{credential: cred, err: err}
			return nil // item failures are reported per slot, never group-wide
		})
	}
	_ = g.Wait()

	result := models.BatchResult{
		Successful: make([]*models.Credential, 0, len(reqs)),
		Failed:     make([]models.FailedRequest, 0),
	}
	for i, outcome := range outcomes {
		if outcome.err != nil {
			result.Failed = append(result.Failed, models.FailedRequest{
				Request: reqs[i],
				Code:    string(dErrors.CodeOf(outcome.err)),
				Error:   outcome.err.Error(),
			})
			continue
		}
		result.Successful = append(result.Successful, outcome.credential)
	}

	if o.logger != nil {
		o.logger.InfoContext(ctx, "batch issuance complete",
			"requested", len(reqs),
			"successful", len(result.Successful),
			"failed", len(result.Failed),
		)
	}
	return result
}
