package expiry

import (
	"context"
	"sort"
	"time"

	"hostadmin/pkg/domain"
	"hostadmin/pkg/logger"

	"go.uber.org/zap"
)

// DefaultWindowDays is the lookahead window used when the caller does not
// specify one.
const DefaultWindowDays = 30

// DomainEntry is a domain selected by the window filter, annotated for the
// renewal report.
type DomainEntry struct {
	// Domain is the snapshot record, nested collections included.
	Domain domain.Domain `json:"domain"`

	// DaysRemaining counts calendar days until the registration lapses.
	DaysRemaining int `json:"daysRemaining"`
	// Tier is the urgency classification for DaysRemaining.
	Tier Tier `json:"urgencyTier"`
	// RenewalCost is the domain price, or 0 when no price is recorded.
	RenewalCost float64 `json:"renewalCost"`
}

// EmailEntry is an email account selected by the window filter, annotated
// with the domain-level context the report renders alongside it.
type EmailEntry struct {
	Account domain.EmailAccount `json:"account"`

	// DomainName and CustomerID identify the owning domain.
	DomainName string `json:"domainName"`
	CustomerID string `json:"customerId"`
	// EmailHost is the owning domain's email-hosting provider.
	EmailHost string `json:"emailHost"`

	DaysRemaining int  `json:"daysRemaining"`
	Tier          Tier `json:"urgencyTier"`
	// EmailPrice is inherited from the owning domain's shared email-hosting
	// price; email accounts store no price of their own.
	EmailPrice float64 `json:"emailPrice"`
}

// Report is the immutable result of one report computation.
type Report struct {
	// GeneratedFor is the normalized "today" the report was computed against.
	GeneratedFor time.Time `json:"generatedFor"`
	// WindowDays is the lookahead window the filter used.
	WindowDays int `json:"windowDays"`

	// ExpiringDomains lists domains lapsing within the window, soonest first.
	ExpiringDomains []DomainEntry `json:"expiringDomains"`
	// ExpiringEmailAccounts lists email accounts lapsing within the window,
	// soonest first.
	ExpiringEmailAccounts []EmailEntry `json:"expiringEmailAccounts"`

	// TotalRenewalCost sums RenewalCost over ExpiringDomains.
	TotalRenewalCost float64 `json:"totalRenewalCost"`
	// DomainExpiringCount and EmailExpiringCount are the list lengths,
	// repeated here so dashboards can render totals without the lists.
	DomainExpiringCount int `json:"domainExpiringCount"`
	EmailExpiringCount  int `json:"emailExpiringCount"`
}

// BuildReport filters the snapshot to records expiring within windowDays of
// today and produces the annotated, sorted, aggregated report.
//
// The window is inclusive on both ends: a record expiring today is selected,
// as is one expiring exactly windowDays from now. Records with no expiry date
// never appear. Records with a malformed date are treated as having none,
// logged at warn level; a broken row must never take the report down.
// The input is read-only for the duration of the call.
func BuildReport(ctx context.Context, domains []domain.Domain, today time.Time, windowDays int) *Report {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	day := domain.Midnight(today)
	windowEnd := day.AddDate(0, 0, windowDays)

	report := &Report{
		GeneratedFor:          day,
		WindowDays:            windowDays,
		ExpiringDomains:       []DomainEntry{},
		ExpiringEmailAccounts: []EmailEntry{},
	}

	for i := range domains {
		d := &domains[i]

		if days, ok := withinWindow(ctx, d.ExpiryDate, day, windowEnd, "domain", d.Name); ok {
			report.ExpiringDomains = append(report.ExpiringDomains, DomainEntry{
				Domain:        *d,
				DaysRemaining: days,
				Tier:          Classify(days),
				RenewalCost:   priceOrZero(d.Price),
			})
		}

		emailPrice := priceOrZero(d.EmailPrice)
		for j := range d.EmailAccounts {
			acc := &d.EmailAccounts[j]
			days, ok := withinWindow(ctx, acc.ExpiryDate, day, windowEnd, "email account", acc.Email)
			if !ok {
				continue
			}
			report.ExpiringEmailAccounts = append(report.ExpiringEmailAccounts, EmailEntry{
				Account:       *acc,
				DomainName:    d.Name,
				CustomerID:    d.CustomerID,
				EmailHost:     d.EmailHost,
				DaysRemaining: days,
				Tier:          Classify(days),
				EmailPrice:    emailPrice,
			})
		}
	}

	// soonest-expiring first; stable so equal day counts keep input order
	sort.SliceStable(report.ExpiringDomains, func(i, j int) bool {
		return report.ExpiringDomains[i].DaysRemaining < report.ExpiringDomains[j].DaysRemaining
	})
	sort.SliceStable(report.ExpiringEmailAccounts, func(i, j int) bool {
		return report.ExpiringEmailAccounts[i].DaysRemaining < report.ExpiringEmailAccounts[j].DaysRemaining
	})

	for _, entry := range report.ExpiringDomains {
		report.TotalRenewalCost += entry.RenewalCost
	}
	report.DomainExpiringCount = len(report.ExpiringDomains)
	report.EmailExpiringCount = len(report.ExpiringEmailAccounts)

	return report
}

// withinWindow reports whether the date falls inside [today, windowEnd] and,
// if so, the days remaining until it. Unset dates are skipped silently,
// malformed ones with a warning naming the record.
func withinWindow(ctx context.Context,
	d domain.Date,
	today, windowEnd time.Time,
	kind, name string) (int, bool) {
	if d.Malformed() {
		logger.Warn(ctx, "unparseable expiry date, treating as unset",
			zap.String("kind", kind),
			zap.String("name", name),
			zap.String("raw", d.Raw()))

		return 0, false
	}
	if !d.Valid() {
		return 0, false
	}

	t := d.Time()
	if t.Before(today) || t.After(windowEnd) {
		return 0, false
	}

	return DaysRemaining(d, today), true
}

func priceOrZero(p *float64) float64 {
	if p == nil {
		return 0
	}

	return *p
}
