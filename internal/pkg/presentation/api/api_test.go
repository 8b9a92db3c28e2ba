package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/application/alerts"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/application/ingest"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/application/lockdown"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/application/realtime"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/application/rollcall"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/infrastructure/router"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/infrastructure/storage"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/presentation/api/auth"
	"github.com/SafeSchoolOS/safeschool-os-sub002/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/matryer/is"
)

type auditReaderMock struct {
	queryFunc func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.AuditLogEntry], error)
}

func (m *auditReaderMock) QueryAuditLog(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.AuditLogEntry], error) {
	if m.queryFunc == nil {
		return types.Collection[types.AuditLogEntry]{}, nil
	}
	return m.queryFunc(ctx, conditions...)
}

type serverMocks struct {
	alerts    *alerts.AlertServiceMock
	lockdowns *lockdown.LockdownServiceMock
	rollCalls *rollcall.RollCallServiceMock
	audit     *auditReaderMock
	messenger *messaging.MsgContextMock
}

func testServer(t *testing.T, cfg ingest.Config) (*chi.Mux, *jwtauth.JWTAuth, serverMocks) {
	t.Helper()
	is := is.New(t)

	mocks := serverMocks{
		alerts:    &alerts.AlertServiceMock{},
		lockdowns: &lockdown.LockdownServiceMock{},
		rollCalls: &rollcall.RollCallServiceMock{},
		audit:     &auditReaderMock{},
		messenger: &messaging.MsgContextMock{
			PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
				return nil
			},
		},
	}

	tokenAuth := auth.NewTokenAuth([]byte("test-secret"))
	ingestSvc := ingest.NewService(mocks.messenger, mocks.alerts)

	mux, err := RegisterHandlers(context.Background(), router.New("testing"), tokenAuth,
		mocks.alerts, mocks.lockdowns, mocks.rollCalls,
		ingestSvc, cfg, realtime.NewHub(), mocks.audit)
	is.NoErr(err)

	return mux, tokenAuth, mocks
}

func bearer(t *testing.T, tokenAuth *jwtauth.JWTAuth, role string, siteIDs ...string) string {
	t.Helper()

	_, tokenString, err := tokenAuth.Encode(map[string]any{
		"sub":     "user-1",
		"role":    role,
		"siteIds": siteIDs,
	})
	if err != nil {
		t.Fatal(err)
	}

	return "Bearer " + tokenString
}

func TestHealthEndpoint(t *testing.T) {
	is := is.New(t)
	mux, _, _ := testServer(t, ingest.Config{})

	res := httptest.NewRecorder()
	mux.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/health", nil))

	is.Equal(http.StatusNoContent, res.Code)
}

func TestMissingTokenIsUnauthorized(t *testing.T) {
	is := is.New(t)
	mux, _, _ := testServer(t, ingest.Config{})

	res := httptest.NewRecorder()
	mux.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/api/v0/alerts", nil))

	is.Equal(http.StatusUnauthorized, res.Code)
}

func TestWebhookWithInvalidSignatureIsRejected(t *testing.T) {
	is := is.New(t)

	cfg := ingest.Config{Vendors: map[string]ingest.VendorConfig{
		"centegix": {Secret: "s3cret", SiteID: "site-1"},
	}}
	mux, _, mocks := testServer(t, cfg)

	body := []byte(`{"alerts":[{"type":"STAFF_DURESS","badgeId":"b-17","buildingId":"bldg-1","room":"104"}]}`)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/panic/centegix", bytes.NewReader(body))
	req.Header.Set("x-webhook-signature", ingest.Sign("wrong-secret", body))
	res := httptest.NewRecorder()
	mux.ServeHTTP(res, req)

	is.Equal(http.StatusUnauthorized, res.Code)
	is.Equal(0, len(mocks.alerts.CreateFromThreatEventCalls()))
	is.Equal(0, len(mocks.messenger.PublishOnTopicCalls()))
}

func TestWebhookWithValidSignatureCreatesAlert(t *testing.T) {
	is := is.New(t)

	cfg := ingest.Config{Vendors: map[string]ingest.VendorConfig{
		"centegix": {Secret: "s3cret", SiteID: "site-1"},
	}}
	mux, _, mocks := testServer(t, cfg)

	mocks.alerts.CreateFromThreatEventFunc = func(ctx context.Context, ev types.ThreatEvent) (types.Alert, error) {
		return types.Alert{ID: "alert-1", SiteID: ev.SiteID}, nil
	}

	body := []byte(`{"alerts":[{"type":"STAFF_DURESS","badgeId":"b-17","buildingId":"bldg-1","room":"104"}]}`)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/panic/centegix", bytes.NewReader(body))
	req.Header.Set("x-webhook-signature", ingest.Sign("s3cret", body))
	res := httptest.NewRecorder()
	mux.ServeHTTP(res, req)

	is.Equal(http.StatusCreated, res.Code)
	is.Equal(1, len(mocks.alerts.CreateFromThreatEventCalls()))
	is.True(strings.Contains(res.Body.String(), `"status":"processed"`))
}

func TestWebhookFromUnknownVendorIsRejected(t *testing.T) {
	is := is.New(t)
	mux, _, _ := testServer(t, ingest.Config{})

	req := httptest.NewRequest(http.MethodPost, "/webhooks/panic/acme", strings.NewReader(`{}`))
	req.Header.Set("x-webhook-signature", "deadbeef")
	res := httptest.NewRecorder()
	mux.ServeHTTP(res, req)

	is.Equal(http.StatusBadRequest, res.Code)
	is.True(strings.Contains(res.Body.String(), "unknown vendor"))
}

func TestGetAlertOutsideCallerSitesRespondsWithNotFound(t *testing.T) {
	is := is.New(t)
	mux, tokenAuth, mocks := testServer(t, ingest.Config{})

	mocks.alerts.GetByIDFunc = func(ctx context.Context, alertID string, siteIDs []string) (types.Alert, error) {
		return types.Alert{}, alerts.ErrAlertNotFound
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v0/alerts/alert-in-other-site", nil)
	req.Header.Set("Authorization", bearer(t, tokenAuth, "OPERATOR", "site-1"))
	res := httptest.NewRecorder()
	mux.ServeHTTP(res, req)

	is.Equal(http.StatusNotFound, res.Code)
	is.Equal(1, len(mocks.alerts.GetByIDCalls()))
	is.Equal([]string{"site-1"}, mocks.alerts.GetByIDCalls()[0].SiteIDs)
}

func TestCreateAlertForBuildingOutsideCallerSitesRespondsWithNotFound(t *testing.T) {
	is := is.New(t)
	mux, tokenAuth, mocks := testServer(t, ingest.Config{})

	mocks.alerts.CreateFunc = func(ctx context.Context, input alerts.CreateAlertInput, actor types.Actor) (types.Alert, error) {
		return types.Alert{}, alerts.ErrAlertNotFound
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v0/alerts", strings.NewReader(`{"level":"FIRE","buildingId":"bldg-in-other-site"}`))
	req.Header.Set("Authorization", bearer(t, tokenAuth, "OPERATOR", "site-1"))
	res := httptest.NewRecorder()
	mux.ServeHTTP(res, req)

	is.Equal(http.StatusNotFound, res.Code)
	is.Equal(1, len(mocks.alerts.CreateCalls()))
}

func TestPatchAlertWithUnknownActionIsRejected(t *testing.T) {
	is := is.New(t)
	mux, tokenAuth, _ := testServer(t, ingest.Config{})

	req := httptest.NewRequest(http.MethodPatch, "/api/v0/alerts/alert-1", strings.NewReader(`{"action":"escalate"}`))
	req.Header.Set("Authorization", bearer(t, tokenAuth, "OPERATOR", "site-1"))
	res := httptest.NewRecorder()
	mux.ServeHTTP(res, req)

	is.Equal(http.StatusBadRequest, res.Code)
}

func TestPatchAlertWithInvalidTransitionConflicts(t *testing.T) {
	is := is.New(t)
	mux, tokenAuth, mocks := testServer(t, ingest.Config{})

	mocks.alerts.ResolveFunc = func(ctx context.Context, alertID string, actor types.Actor) (types.Alert, error) {
		return types.Alert{}, alerts.ErrInvalidTransition
	}

	req := httptest.NewRequest(http.MethodPatch, "/api/v0/alerts/alert-1", strings.NewReader(`{"action":"resolve"}`))
	req.Header.Set("Authorization", bearer(t, tokenAuth, "OPERATOR", "site-1"))
	res := httptest.NewRecorder()
	mux.ServeHTTP(res, req)

	is.Equal(http.StatusConflict, res.Code)
}

func TestInitiateLockdownConflictCarriesExistingID(t *testing.T) {
	is := is.New(t)
	mux, tokenAuth, mocks := testServer(t, ingest.Config{})

	mocks.lockdowns.InitiateFunc = func(ctx context.Context, scope types.LockdownScope, targetID string, actor types.Actor) (types.Lockdown, error) {
		return types.Lockdown{ID: "lockdown-1", SiteID: "site-1", Scope: scope, TargetID: targetID}, lockdown.ErrAlreadyActive
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v0/lockdown", strings.NewReader(`{"scope":"BUILDING","targetId":"bldg-1"}`))
	req.Header.Set("Authorization", bearer(t, tokenAuth, "FIRST_RESPONDER", "site-1"))
	res := httptest.NewRecorder()
	mux.ServeHTTP(res, req)

	is.Equal(http.StatusConflict, res.Code)
	is.True(strings.Contains(res.Body.String(), "lockdown-1"))
}

func TestReleaseLockdownInCloudModeIsForbidden(t *testing.T) {
	is := is.New(t)
	mux, tokenAuth, mocks := testServer(t, ingest.Config{})

	mocks.lockdowns.ReleaseFunc = func(ctx context.Context, lockdownID string, actor types.Actor) (types.Lockdown, error) {
		return types.Lockdown{}, lockdown.ErrEdgeOnly
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/v0/lockdown/lockdown-1", nil)
	req.Header.Set("Authorization", bearer(t, tokenAuth, "OPERATOR", "site-1"))
	res := httptest.NewRecorder()
	mux.ServeHTTP(res, req)

	is.Equal(http.StatusForbidden, res.Code)
	is.True(strings.Contains(res.Body.String(), "EDGE_ONLY_OPERATION"))
}

func TestTeacherMayNotCreateAlerts(t *testing.T) {
	is := is.New(t)
	mux, tokenAuth, mocks := testServer(t, ingest.Config{})

	req := httptest.NewRequest(http.MethodPost, "/api/v0/alerts", strings.NewReader(`{"level":"FIRE","buildingId":"bldg-1"}`))
	req.Header.Set("Authorization", bearer(t, tokenAuth, "TEACHER", "site-1"))
	res := httptest.NewRecorder()
	mux.ServeHTTP(res, req)

	is.Equal(http.StatusForbidden, res.Code)
	is.Equal(0, len(mocks.alerts.CreateCalls()))
}

func TestTeacherMaySubmitRollCallReport(t *testing.T) {
	is := is.New(t)
	mux, tokenAuth, mocks := testServer(t, ingest.Config{})

	mocks.rollCalls.SubmitReportFunc = func(ctx context.Context, rollCallID string, report types.RollCallReport, actor types.Actor) (types.RollCall, error) {
		return types.RollCall{ID: rollCallID, ReportedClassrooms: 1, AccountedStudents: report.StudentsPresent}, nil
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v0/roll-call/rc-1/report",
		strings.NewReader(`{"roomId":"104","studentsPresent":22,"studentsAbsent":2}`))
	req.Header.Set("Authorization", bearer(t, tokenAuth, "TEACHER", "site-1"))
	res := httptest.NewRecorder()
	mux.ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)
	is.Equal(1, len(mocks.rollCalls.SubmitReportCalls()))
	is.Equal("rc-1", mocks.rollCalls.SubmitReportCalls()[0].RollCallID)
}

func TestAuditLogRequiresSiteAdmin(t *testing.T) {
	is := is.New(t)
	mux, tokenAuth, _ := testServer(t, ingest.Config{})

	req := httptest.NewRequest(http.MethodGet, "/api/v0/audit", nil)
	req.Header.Set("Authorization", bearer(t, tokenAuth, "OPERATOR", "site-1"))
	res := httptest.NewRecorder()
	mux.ServeHTTP(res, req)

	is.Equal(http.StatusForbidden, res.Code)
}

func TestAuditLogScopesQueryToRequestedSite(t *testing.T) {
	is := is.New(t)
	mux, tokenAuth, mocks := testServer(t, ingest.Config{})

	var received []storage.ConditionFunc
	mocks.audit.queryFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.AuditLogEntry], error) {
		received = conditions
		return types.Collection[types.AuditLogEntry]{Data: []types.AuditLogEntry{}}, nil
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v0/audit?siteId=site-1", nil)
	req.Header.Set("Authorization", bearer(t, tokenAuth, "SITE_ADMIN", "site-1"))
	res := httptest.NewRecorder()
	mux.ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)
	is.True(len(received) >= 3)

	// Asking for a site outside the caller's grant must not leak whether
	// it exists.
	req = httptest.NewRequest(http.MethodGet, "/api/v0/audit?siteId=site-2", nil)
	req.Header.Set("Authorization", bearer(t, tokenAuth, "SITE_ADMIN", "site-1"))
	res = httptest.NewRecorder()
	mux.ServeHTTP(res, req)

	is.Equal(http.StatusNotFound, res.Code)
}
