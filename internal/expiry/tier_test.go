package expiry_test

import (
	"testing"

	"hostadmin/internal/expiry"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		days int
		want expiry.Tier
	}{
		{days: -30, want: expiry.TierExpired},
		{days: -1, want: expiry.TierExpired},
		{days: 0, want: expiry.TierCritical},
		{days: 1, want: expiry.TierCritical},
		{days: 7, want: expiry.TierCritical},
		{days: 8, want: expiry.TierHigh},
		{days: 15, want: expiry.TierHigh},
		{days: 16, want: expiry.TierMedium},
		{days: 30, want: expiry.TierMedium},
		{days: 31, want: expiry.TierLow},
		{days: 365, want: expiry.TierLow},
	}

	for _, tt := range tests {
		if got := expiry.Classify(tt.days); got != tt.want {
			t.Errorf("Classify(%d) = %s, want %s", tt.days, got, tt.want)
		}
	}
}

func TestTierLabels(t *testing.T) {
	tests := []struct {
		tier expiry.Tier
		want string
	}{
		{expiry.TierExpired, "Expired"},
		{expiry.TierCritical, "Critical"},
		{expiry.TierHigh, "High"},
		{expiry.TierMedium, "Medium"},
		{expiry.TierLow, "Low"},
	}

	for _, tt := range tests {
		if got := tt.tier.Label(); got != tt.want {
			t.Errorf("Label() = %q, want %q", got, tt.want)
		}
	}
}

func TestTierMarshalJSON(t *testing.T) {
	b, err := expiry.TierCritical.MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `"Critical"` {
		t.Fatalf("got %s", b)
	}
}
