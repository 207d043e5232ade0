package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the credential lifecycle.
type Metrics struct {
	CredentialsIssued *prometheus.CounterVec
	IssuanceFailures  *prometheus.CounterVec
	Verifications     *prometheus.CounterVec
	CheckFailures     *prometheus.CounterVec
	Revocations       prometheus.Counter
	BatchSize         prometheus.Histogram
	SignLatency       prometheus.Histogram
}

// New creates and registers all credential metrics.
func New() *Metrics {
	return &Metrics{
		CredentialsIssued: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "attesta_credentials_issued_total",
			Help: "Total credentials issued, by signature algorithm",
		}, []string{"algorithm"}),
		IssuanceFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "attesta_issuance_failures_total",
			Help: "Total issuance failures, by domain error code",
		}, []string{"code"}),
		Verifications: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "attesta_verifications_total",
			Help: "Total verification runs, by outcome (valid/invalid)",
		}, []string{"outcome"}),
		CheckFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "attesta_verification_check_failures_total",
			Help: "Total failed verification checks, by check code",
		}, []string{"code"}),
		Revocations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "attesta_revocations_total",
			Help: "Total revocation transforms applied",
		}),
		BatchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "attesta_batch_size",
			Help:    "Number of requests per batch issuance call",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100},
		}),
		SignLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "attesta_issue_latency_seconds",
			Help:    "End-to-end latency of single credential issuance",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
