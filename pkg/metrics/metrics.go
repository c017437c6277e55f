// Package metrics holds shared metric plumbing: histogram buckets reused for
// latency metrics and the otel instruments published by the expiry sweep.
package metrics

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// ExpiryGauges carries the gauges the expiry sweep publishes after each run.
type ExpiryGauges struct {
	// DomainsExpiring is the number of domains inside the lookahead window.
	DomainsExpiring metric.Int64Gauge
	// EmailAccountsExpiring is the number of email accounts inside the window.
	EmailAccountsExpiring metric.Int64Gauge
	// RenewalCostTotal is the summed renewal cost of the expiring domains.
	RenewalCostTotal metric.Float64Gauge
}

// NewExpiryGauges registers the expiry sweep gauges on the given meter.
func NewExpiryGauges(meter metric.Meter) (*ExpiryGauges, error) {
	domains, err := meter.Int64Gauge("hostadmin_domains_expiring",
		metric.WithDescription("Domains expiring within the sweep window"))
	if err != nil {
		return nil, fmt.Errorf("could not create domains gauge: %w", err)
	}

	emails, err := meter.Int64Gauge("hostadmin_email_accounts_expiring",
		metric.WithDescription("Email accounts expiring within the sweep window"))
	if err != nil {
		return nil, fmt.Errorf("could not create email accounts gauge: %w", err)
	}

	cost, err := meter.Float64Gauge("hostadmin_renewal_cost_total",
		metric.WithDescription("Total renewal cost of expiring domains"))
	if err != nil {
		return nil, fmt.Errorf("could not create renewal cost gauge: %w", err)
	}

	return &ExpiryGauges{
		DomainsExpiring:       domains,
		EmailAccountsExpiring: emails,
		RenewalCostTotal:      cost,
	}, nil
}
