package contact

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	resultAccepted     = "accepted"
	resultInvalid      = "invalid"
	resultStoreFailed  = "store_failed"
	resultNotifyFailed = "notify_failed"
)

var submissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "contact_submissions_total",
	Help: "Contact form submissions by outcome.",
}, []string{"result"})

// record counts the outcome and tags the request span with it.
func record(span trace.Span, result string) {
	submissionsTotal.WithLabelValues(result).Inc()
	span.SetAttributes(attribute.String("contact.result", result))
}
