package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"hostadmin/pkg/domain"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		valid     bool
		malformed bool
		want      string
	}{
		{name: "empty is unset", in: "", valid: false, malformed: false},
		{name: "calendar date", in: "2025-06-01", valid: true, want: "2025-06-01"},
		{name: "rfc3339 truncates", in: "2025-06-01T18:30:00Z", valid: true, want: "2025-06-01"},
		{name: "garbage is malformed", in: "13/45/2025", valid: false, malformed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := domain.ParseDate(tt.in)
			if d.Valid() != tt.valid {
				t.Fatalf("Valid() = %v, want %v", d.Valid(), tt.valid)
			}
			if d.Malformed() != tt.malformed {
				t.Fatalf("Malformed() = %v, want %v", d.Malformed(), tt.malformed)
			}
			if tt.valid && d.String() != tt.want {
				t.Fatalf("String() = %q, want %q", d.String(), tt.want)
			}
			if tt.malformed && d.Raw() != tt.in {
				t.Fatalf("Raw() = %q, want %q", d.Raw(), tt.in)
			}
		})
	}
}

func TestMidnight(t *testing.T) {
	zone := time.FixedZone("UTC-7", -7*3600)
	in := time.Date(2025, 6, 1, 22, 15, 0, 0, zone) // 2025-06-02 05:15 UTC

	got := domain.Midnight(in)
	want := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := domain.ParseDate("2025-06-01")
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `"2025-06-01"` {
		t.Fatalf("got %s", b)
	}

	var back domain.Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !back.Valid() || back.String() != "2025-06-01" {
		t.Fatalf("round trip lost value: %+v", back)
	}
}

func TestDateJSONTolerance(t *testing.T) {
	// null and empty string stay unset
	for _, in := range []string{`null`, `""`} {
		var d domain.Date
		if err := json.Unmarshal([]byte(in), &d); err != nil {
			t.Fatalf("unmarshal %s: %v", in, err)
		}
		if d.Valid() || d.Malformed() {
			t.Fatalf("%s should be unset, got %+v", in, d)
		}
	}

	// broken input loads as malformed instead of failing the whole record
	var d domain.Date
	if err := json.Unmarshal([]byte(`"soon"`), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Malformed() || d.Raw() != "soon" {
		t.Fatalf("expected malformed with raw, got %+v", d)
	}

	// malformed marshals as null
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != "null" {
		t.Fatalf("got %s", b)
	}
}
