package registry

import (
	"reflect"
	"testing"

	"hostadmin/pkg/domain"
)

func TestJoinAgentEmails(t *testing.T) {
	tests := []struct {
		name   string
		agents []domain.Agent
		want   string
	}{
		{name: "empty", agents: nil, want: ""},
		{name: "single", agents: []domain.Agent{{Email: "a@x.com"}}, want: "a@x.com"},
		{
			name:   "ordered",
			agents: []domain.Agent{{Email: "a@x.com"}, {Email: "b@x.com"}},
			want:   "a@x.com,b@x.com",
		},
		{
			name:   "skips blank rows",
			agents: []domain.Agent{{Email: "a@x.com"}, {Email: ""}, {Email: "b@x.com"}},
			want:   "a@x.com,b@x.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := joinAgentEmails(tt.agents); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitEmailAddresses(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: []string{}},
		{name: "single", in: "a@x.com", want: []string{"a@x.com"}},
		{name: "trims whitespace", in: " a@x.com , b@x.com ", want: []string{"a@x.com", "b@x.com"}},
		{name: "drops empty segments", in: "a@x.com,,b@x.com,", want: []string{"a@x.com", "b@x.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitEmailAddresses(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJoinSplitRoundTrip(t *testing.T) {
	agents := []domain.Agent{{Email: "a@x.com"}, {Email: "b@x.com"}, {Email: "c@x.com"}}
	got := splitEmailAddresses(joinAgentEmails(agents))
	if len(got) != len(agents) {
		t.Fatalf("round trip changed length: %v", got)
	}
	for i, a := range agents {
		if got[i] != a.Email {
			t.Fatalf("round trip changed order at %d: %v", i, got)
		}
	}
}
