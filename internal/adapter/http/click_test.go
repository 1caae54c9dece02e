package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"adrewards/internal/core/domain"
	"adrewards/internal/core/port"
)

// stubAuth resolves every token to a fixed user (or error).
type stubAuth struct {
	user *domain.User
	err  error
}

func (s *stubAuth) Register(context.Context, string, string) (*port.AuthResult, error) {
	return nil, s.err
}
func (s *stubAuth) Login(context.Context, string, string, string) (*port.AuthResult, error) {
	return nil, s.err
}
func (s *stubAuth) Identify(context.Context, string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

// stubClicks records the last request and returns a fixed result.
type stubClicks struct {
	click *domain.Click
	err   error
	got   port.RecordClickRequest
}

func (s *stubClicks) Record(_ context.Context, req port.RecordClickRequest) (*domain.Click, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return s.click, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func authedUser() *domain.User {
	return &domain.User{ID: "u1", Email: "a@b.com", Role: domain.RoleUser}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not an error body: %q", rec.Body.String())
	}
	return body.Error
}

func postClick(h *Handler, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/clicks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func TestClickMissingAuthorization(t *testing.T) {
	h := NewHandler(&stubClicks{}, &stubAuth{user: authedUser()}, nil, nil, testLogger())

	rec := postClick(h, `{"campaignId":"c1"}`, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if msg := decodeError(t, rec); msg != "Missing authorization header" {
		t.Fatalf("error = %q", msg)
	}
}

func TestClickUnresolvableToken(t *testing.T) {
	h := NewHandler(&stubClicks{}, &stubAuth{err: port.ErrInvalidToken}, nil, nil, testLogger())

	rec := postClick(h, `{"campaignId":"c1"}`, map[string]string{"Authorization": "Bearer nope"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if msg := decodeError(t, rec); msg != "Unauthorized" {
		t.Fatalf("error = %q", msg)
	}
}

func TestClickMissingCampaignID(t *testing.T) {
	h := NewHandler(&stubClicks{}, &stubAuth{user: authedUser()}, nil, nil, testLogger())

	for _, body := range []string{`{}`, `{"campaignId":"  "}`} {
		rec := postClick(h, body, map[string]string{"Authorization": "Bearer t"})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %q: status = %d, want 400", body, rec.Code)
		}
		if msg := decodeError(t, rec); msg != "Campaign ID is required" {
			t.Fatalf("body %q: error = %q", body, msg)
		}
	}
}

func TestClickGateErrorMapping(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
		wantMsg    string
	}{
		{port.ErrCampaignNotFound, http.StatusNotFound, "Campaign not found"},
		{port.ErrCampaignInactive, http.StatusBadRequest, "Campaign is not active"},
		{port.ErrDuplicateClick, http.StatusBadRequest, "Already clicked this campaign today"},
		{port.ErrBudgetExceeded, http.StatusBadRequest, "Campaign daily budget exceeded"},
	}
	for _, tc := range cases {
		h := NewHandler(&stubClicks{err: tc.err}, &stubAuth{user: authedUser()}, nil, nil, testLogger())
		rec := postClick(h, `{"campaignId":"c1"}`, map[string]string{"Authorization": "Bearer t"})
		if rec.Code != tc.wantStatus {
			t.Fatalf("%v: status = %d, want %d", tc.err, rec.Code, tc.wantStatus)
		}
		if msg := decodeError(t, rec); msg != tc.wantMsg {
			t.Fatalf("%v: error = %q, want %q", tc.err, msg, tc.wantMsg)
		}
	}
}

func TestClickStorageFailure(t *testing.T) {
	h := NewHandler(&stubClicks{err: io.ErrUnexpectedEOF}, &stubAuth{user: authedUser()}, nil, nil, testLogger())

	rec := postClick(h, `{"campaignId":"c1"}`, map[string]string{"Authorization": "Bearer t"})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if msg := decodeError(t, rec); msg != io.ErrUnexpectedEOF.Error() {
		t.Fatalf("error = %q, want underlying message", msg)
	}
}

func TestClickSuccess(t *testing.T) {
	click := &domain.Click{
		ID:           "click-1",
		CampaignID:   "c1",
		UserID:       "u1",
		IPAddress:    "10.0.0.1",
		UserAgent:    "agent",
		RewardAmount: 120,
		IsValid:      true,
		ClickedAt:    time.Now(),
	}
	clicks := &stubClicks{click: click}
	h := NewHandler(clicks, &stubAuth{user: authedUser()}, nil, nil, testLogger())

	rec := postClick(h, `{"campaignId":"c1"}`, map[string]string{"Authorization": "Bearer t"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool         `json:"success"`
		Click   domain.Click `json:"click"`
		Reward  int64        `json:"reward"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("success = false")
	}
	if resp.Reward != 120 || resp.Click.RewardAmount != 120 {
		t.Fatalf("reward = %d / %d, want 120", resp.Reward, resp.Click.RewardAmount)
	}
	if !resp.Click.IsValid {
		t.Fatalf("click not marked valid")
	}
	if clicks.got.UserID != "u1" {
		t.Fatalf("recorded for user %q, want u1", clicks.got.UserID)
	}
}

func TestClickMetadataFallback(t *testing.T) {
	t.Run("body fields win", func(t *testing.T) {
		clicks := &stubClicks{click: &domain.Click{}}
		h := NewHandler(clicks, &stubAuth{user: authedUser()}, nil, nil, testLogger())
		postClick(h, `{"campaignId":"c1","ipAddress":"9.9.9.9","userAgent":"from-body"}`, map[string]string{
			"Authorization":   "Bearer t",
			"X-Forwarded-For": "1.1.1.1",
			"User-Agent":      "from-header",
		})
		if clicks.got.IPAddress != "9.9.9.9" || clicks.got.UserAgent != "from-body" {
			t.Fatalf("body fields not preferred: %+v", clicks.got)
		}
	})

	t.Run("headers fill gaps", func(t *testing.T) {
		clicks := &stubClicks{click: &domain.Click{}}
		h := NewHandler(clicks, &stubAuth{user: authedUser()}, nil, nil, testLogger())
		postClick(h, `{"campaignId":"c1"}`, map[string]string{
			"Authorization":   "Bearer t",
			"X-Forwarded-For": "1.1.1.1",
			"User-Agent":      "from-header",
		})
		if clicks.got.IPAddress != "1.1.1.1" || clicks.got.UserAgent != "from-header" {
			t.Fatalf("headers not used: %+v", clicks.got)
		}
	})

	t.Run("unknown as last resort", func(t *testing.T) {
		clicks := &stubClicks{click: &domain.Click{}}
		h := NewHandler(clicks, &stubAuth{user: authedUser()}, nil, nil, testLogger())
		req := httptest.NewRequest(http.MethodPost, "/api/v1/clicks", strings.NewReader(`{"campaignId":"c1"}`))
		req.Header.Set("Authorization", "Bearer t")
		req.Header.Del("User-Agent")
		rec := httptest.NewRecorder()
		h.Router().ServeHTTP(rec, req)
		if clicks.got.IPAddress != "unknown" || clicks.got.UserAgent != "unknown" {
			t.Fatalf("fallback not applied: %+v", clicks.got)
		}
	})
}

func TestCORSPreflight(t *testing.T) {
	h := NewHandler(&stubClicks{}, &stubAuth{user: authedUser()}, nil, nil, testLogger())

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/clicks", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Fatalf("body = %q, want ok", rec.Body.String())
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("allow-origin = %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(got, "authorization") {
		t.Fatalf("allow-headers = %q", got)
	}
}

func TestAdminRouteForbiddenForUsers(t *testing.T) {
	h := NewHandler(&stubClicks{}, &stubAuth{user: authedUser()}, nil, nil, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/campaigns", nil)
	req.Header.Set("Authorization", "Bearer t")
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}
