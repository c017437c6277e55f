package v1handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"hostadmin/internal/api/handler/v1handler"
	"hostadmin/internal/expiry"
	mockregistry "hostadmin/internal/registry/mock"
	"hostadmin/pkg/domain"
	"hostadmin/pkg/logger"
	"hostadmin/pkg/serrors"
	"hostadmin/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)

	os.Exit(m.Run())
}

// newTestAPI wires the v1 router against a mock registry and returns the
// Authorization header value of a valid token.
func newTestAPI(t *testing.T) (*mockregistry.MockRegistry, http.Handler, string) {
	t.Helper()

	ctrl := gomock.NewController(t)
	reg := mockregistry.NewMockRegistry(ctrl)

	priv, pubPEM := genRSAKeys(t)
	sec := newSecHandlerForTest(t, pubPEM)

	now := time.Now()
	token := signJWTRS256(t, priv, uuid.NewString(), now, now.Add(time.Hour))

	router := v1handler.New(v1handler.Deps{Registry: reg}).Routes(sec)

	return reg, router, "Bearer " + token
}

func doRequest(t *testing.T, router http.Handler, method, target, auth string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("could not marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestRoutes_Unauthorized(t *testing.T) {
	_, router, _ := newTestAPI(t)

	rec := doRequest(t, router, http.MethodGet, "/domains", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodGet, "/domains", "Basic abc", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for non-bearer scheme, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodGet, "/domains", "Bearer not-a-token", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", rec.Code)
	}
}

func TestCreateDomain(t *testing.T) {
	reg, router, auth := newTestAPI(t)

	hostingID := domain.HostingAccountID(uuid.New())
	created := &domain.Domain{
		ID:               domain.DomainID(uuid.New()),
		HostingAccountID: hostingID,
		Name:             "example.com",
		EmailAddresses:   "alice@example.com",
		EmailCount:       0,
	}

	reg.EXPECT().
		CreateDomain(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d domain.Domain) (*domain.Domain, error) {
			if d.Name != "example.com" {
				t.Fatalf("unexpected domain name %q", d.Name)
			}
			if d.HostingAccountID != hostingID {
				t.Fatalf("unexpected hosting account id")
			}
			if len(d.Agents) != 1 || d.Agents[0].Email != "alice@example.com" {
				t.Fatalf("nested agent not carried through: %+v", d.Agents)
			}

			return created, nil
		})

	body := map[string]any{
		"hostingAccountId": uuid.UUID(hostingID).String(),
		"domainName":       "example.com",
		"customerId":       "cust-1",
		"hostProviderName": "GoDaddy",
		"agents": []map[string]any{
			{"agentName": "Alice", "agentEmail": "alice@example.com"},
		},
	}

	rec := doRequest(t, router, http.MethodPost, "/domains", auth, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var got domain.Domain
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("could not decode response: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("expected created domain in response, got %+v", got)
	}
	if got.EmailAddresses != "alice@example.com" {
		t.Fatalf("expected derived email summary in response, got %q", got.EmailAddresses)
	}
}

func TestCreateDomain_UnknownField(t *testing.T) {
	_, router, auth := newTestAPI(t)

	body := map[string]any{
		"domainName": "example.com",
		"bogusField": true,
	}

	rec := doRequest(t, router, http.MethodPost, "/domains", auth, body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown field, got %d", rec.Code)
	}
}

func TestGetDomain_NotFound(t *testing.T) {
	reg, router, auth := newTestAPI(t)

	id := uuid.New()
	reg.EXPECT().
		Domain(gomock.Any(), domain.DomainID(id)).
		Return(nil, serrors.With(serrors.ErrNotFound, "domain not found"))

	rec := doRequest(t, router, http.MethodGet, "/domains/"+id.String(), auth, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("could not decode error body: %v", err)
	}
	if body.Error != "domain not found" {
		t.Fatalf("unexpected error message %q", body.Error)
	}
}

func TestGetDomain_BadID(t *testing.T) {
	_, router, auth := newTestAPI(t)

	rec := doRequest(t, router, http.MethodGet, "/domains/not-a-uuid", auth, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", rec.Code)
	}
}

func TestUpdateDomain_PassesEmailAddresses(t *testing.T) {
	reg, router, auth := newTestAPI(t)

	id := uuid.New()
	updated := &domain.Domain{ID: domain.DomainID(id), EmailAddresses: "carol@x.com"}

	reg.EXPECT().
		UpdateDomain(gomock.Any(), domain.DomainID(id), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.DomainID, updates storage.DomainUpdates) (*domain.Domain, error) {
			if updates.EmailAddresses == nil || *updates.EmailAddresses != "carol@x.com" {
				t.Fatalf("expected emailAddresses to be passed through, got %+v", updates.EmailAddresses)
			}
			if updates.Name != nil {
				t.Fatalf("name should be absent in a partial update")
			}

			return updated, nil
		})

	body := map[string]any{"emailAddresses": "carol@x.com"}

	rec := doRequest(t, router, http.MethodPatch, "/domains/"+id.String(), auth, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestDeleteDomain(t *testing.T) {
	reg, router, auth := newTestAPI(t)

	id := uuid.New()
	reg.EXPECT().DeleteDomain(gomock.Any(), domain.DomainID(id)).Return(nil)

	rec := doRequest(t, router, http.MethodDelete, "/domains/"+id.String(), auth, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestCreateAgent_BindsDomainFromPath(t *testing.T) {
	reg, router, auth := newTestAPI(t)

	domainID := uuid.New()
	created := &domain.Agent{ID: domain.AgentID(uuid.New()), DomainID: domain.DomainID(domainID)}

	reg.EXPECT().
		CreateAgent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a domain.Agent) (*domain.Agent, error) {
			if a.DomainID != domain.DomainID(domainID) {
				t.Fatalf("expected domain id from path, got %v", a.DomainID)
			}
			if a.Email != "bob@example.com" || a.Password != "s3cret" {
				t.Fatalf("agent fields not carried through: %+v", a)
			}

			return created, nil
		})

	body := map[string]any{
		"agentName":     "Bob",
		"agentEmail":    "bob@example.com",
		"agentPassword": "s3cret",
	}

	rec := doRequest(t, router, http.MethodPost, "/domains/"+domainID.String()+"/agents", auth, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// password must never appear in responses
	if bytes.Contains(rec.Body.Bytes(), []byte("s3cret")) {
		t.Fatalf("password leaked into response body: %s", rec.Body.String())
	}
}

func TestListEmailAccounts(t *testing.T) {
	reg, router, auth := newTestAPI(t)

	domainID := uuid.New()
	accounts := []domain.EmailAccount{
		{ID: domain.EmailAccountID(uuid.New()), DomainID: domain.DomainID(domainID), Email: "a@x.com", Active: true},
		{ID: domain.EmailAccountID(uuid.New()), DomainID: domain.DomainID(domainID), Email: "b@x.com"},
	}

	reg.EXPECT().EmailAccounts(gomock.Any(), domain.DomainID(domainID)).Return(accounts, nil)

	rec := doRequest(t, router, http.MethodGet, "/domains/"+domainID.String()+"/email-accounts", auth, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got []domain.EmailAccount
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("could not decode response: %v", err)
	}
	if len(got) != 2 || got[0].Email != "a@x.com" {
		t.Fatalf("unexpected list: %+v", got)
	}
}

func TestListHostingAccounts(t *testing.T) {
	reg, router, auth := newTestAPI(t)

	accounts := []domain.HostingAccount{
		{ID: domain.HostingAccountID(uuid.New()), Provider: "GoDaddy", LoginID: "acme"},
	}
	reg.EXPECT().HostingAccounts(gomock.Any()).Return(accounts, nil)

	rec := doRequest(t, router, http.MethodGet, "/hosting-accounts", auth, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestExpiryReport(t *testing.T) {
	reg, router, auth := newTestAPI(t)

	report := &expiry.Report{
		WindowDays:            15,
		ExpiringDomains:       []expiry.DomainEntry{},
		ExpiringEmailAccounts: []expiry.EmailEntry{},
		TotalRenewalCost:      149.5,
	}

	reg.EXPECT().
		ExpiryReport(gomock.Any(), gomock.Any(), 15).
		DoAndReturn(func(_ context.Context, today time.Time, _ int) (*expiry.Report, error) {
			if time.Since(today) > time.Minute {
				t.Fatalf("expected today to be close to now, got %v", today)
			}

			return report, nil
		})

	rec := doRequest(t, router, http.MethodGet, "/reports/expiry?window=15", auth, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var got expiry.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("could not decode report: %v", err)
	}
	if got.WindowDays != 15 || got.TotalRenewalCost != 149.5 {
		t.Fatalf("unexpected report: %+v", got)
	}
}

func TestExpiryReport_DefaultWindow(t *testing.T) {
	reg, router, auth := newTestAPI(t)

	// no query parameter means windowDays 0: the registry applies its default
	reg.EXPECT().
		ExpiryReport(gomock.Any(), gomock.Any(), 0).
		Return(&expiry.Report{WindowDays: 30}, nil)

	rec := doRequest(t, router, http.MethodGet, "/reports/expiry", auth, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestExpiryReport_BadWindow(t *testing.T) {
	_, router, auth := newTestAPI(t)

	for _, window := range []string{"0", "-5", "abc", "99999"} {
		rec := doRequest(t, router, http.MethodGet, "/reports/expiry?window="+window, auth, nil)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("window=%s: expected 400, got %d", window, rec.Code)
		}
	}
}

func TestInternalErrorsAreOpaque(t *testing.T) {
	reg, router, auth := newTestAPI(t)

	reg.EXPECT().
		Domains(gomock.Any()).
		Return(nil, serrors.With(serrors.ErrInternal, "pgsql exploded: connection string with password"))

	rec := doRequest(t, router, http.MethodGet, "/domains", auth, nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if bytes.Contains(rec.Body.Bytes(), []byte("pgsql")) {
		t.Fatalf("internal detail leaked to client: %s", rec.Body.String())
	}
}
