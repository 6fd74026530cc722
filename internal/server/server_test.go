package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"mindmend/internal/config"
	"mindmend/internal/db"
	"mindmend/internal/domain"
	"mindmend/internal/engine"
	"mindmend/internal/migrate"
)

const testSecret = "test-secret"

type testServer struct {
	URL    string
	client *http.Client
	close  func()
}

func (s *testServer) Client() *http.Client { return s.client }
func (s *testServer) Close()               { s.close() }

func newTestServer(t *testing.T) (*testServer, func()) {
	t.Helper()
	workspace := t.TempDir()
	if _, err := db.EnsureWorkspace(workspace); err != nil {
		t.Fatalf("ensure workspace: %v", err)
	}
	conn, err := db.Open(db.Config{Workspace: workspace})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := migrate.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	e := engine.New(conn, config.Default())
	handler, err := New(Config{
		Engine:   e,
		BasePath: "/api",
		Auth:     AuthConfig{JWTSecret: testSecret, TokenTTL: time.Hour},
	})
	if err != nil {
		t.Fatalf("build handler: %v", err)
	}
	ln, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	srv := &http.Server{Handler: handler}
	go srv.Serve(ln)
	testSrv := &testServer{
		URL:    "http://" + ln.Addr().String(),
		client: &http.Client{},
		close: func() {
			srv.Shutdown(context.Background())
			ln.Close()
			conn.Close()
		},
	}
	return testSrv, func() { testSrv.Close() }
}

func doJSON(t *testing.T, client *http.Client, method, url string, body any, headers map[string]string) (*http.Response, []byte) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	res, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()
	data, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return res, data
}

func registerUser(t *testing.T, srv *testServer, email string) (string, map[string]string) {
	t.Helper()
	res, data := doJSON(t, srv.Client(), http.MethodPost, srv.URL+"/api/auth/register", map[string]any{
		"name":     "Jamie",
		"email":    email,
		"password": "hunter22",
	}, nil)
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("register status %d: %s", res.StatusCode, string(data))
	}
	var out TokenResponse
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal token: %v", err)
	}
	if out.Token == "" {
		t.Fatalf("expected token in response")
	}
	return out.Token, map[string]string{"Authorization": "Bearer " + out.Token}
}

func TestAuthRequired(t *testing.T) {
	srv, cleanup := newTestServer(t)
	defer cleanup()
	client := srv.Client()

	res, _ := doJSON(t, client, http.MethodGet, srv.URL+"/api/health", nil, nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("health should be public, got %d", res.StatusCode)
	}
	res, _ = doJSON(t, client, http.MethodGet, srv.URL+"/api/wellbeing", nil, nil)
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", res.StatusCode)
	}
	res, _ = doJSON(t, client, http.MethodGet, srv.URL+"/api/wellbeing", nil, map[string]string{"Authorization": "Bearer garbage"})
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 with bad token, got %d", res.StatusCode)
	}
}

func TestLoginFlow(t *testing.T) {
	srv, cleanup := newTestServer(t)
	defer cleanup()
	client := srv.Client()
	_, headers := registerUser(t, srv, "jamie@example.com")

	res, data := doJSON(t, client, http.MethodPost, srv.URL+"/api/auth/login", map[string]any{
		"email":    "jamie@example.com",
		"password": "hunter22",
	}, nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("login status %d: %s", res.StatusCode, string(data))
	}

	res, data = doJSON(t, client, http.MethodPost, srv.URL+"/api/auth/login", map[string]any{
		"email":    "jamie@example.com",
		"password": "wrong",
	}, nil)
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad password, got %d: %s", res.StatusCode, string(data))
	}

	res, data = doJSON(t, client, http.MethodGet, srv.URL+"/api/me", nil, headers)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("me status %d: %s", res.StatusCode, string(data))
	}
	var me UserResponse
	if err := json.Unmarshal(data, &me); err != nil {
		t.Fatalf("unmarshal me: %v", err)
	}
	if me.Email != "jamie@example.com" {
		t.Fatalf("unexpected me: %+v", me)
	}
}

func TestAssessmentToWellbeing(t *testing.T) {
	srv, cleanup := newTestServer(t)
	defer cleanup()
	client := srv.Client()
	_, headers := registerUser(t, srv, "dash@example.com")

	res, data := doJSON(t, client, http.MethodGet, srv.URL+"/api/assessment/exists", nil, headers)
	if res.StatusCode != http.StatusOK || !bytes.Contains(data, []byte(`"exists":false`)) {
		t.Fatalf("expected exists false, got %d: %s", res.StatusCode, string(data))
	}

	res, data = doJSON(t, client, http.MethodPut, srv.URL+"/api/assessment", map[string]any{
		"name":          "Dana",
		"sleep_quality": 7,
		"stress_level":  8,
		"mood_rating":   6,
		"energy_level":  5,
	}, headers)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("submit status %d: %s", res.StatusCode, string(data))
	}

	res, data = doJSON(t, client, http.MethodGet, srv.URL+"/api/wellbeing", nil, headers)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("wellbeing status %d: %s", res.StatusCode, string(data))
	}
	var report WellbeingResponse
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}
	// (7 + 6 + 3 + 5) / 4 = 5.25, rounds down
	if report.Score != 5 {
		t.Fatalf("expected score 5, got %d", report.Score)
	}
	if report.Sleep.Label != "good" {
		t.Fatalf("expected good sleep band, got %q", report.Sleep.Label)
	}
	if report.Stress.Label != "high" {
		t.Fatalf("expected high stress band, got %q", report.Stress.Label)
	}

	res, _ = doJSON(t, client, http.MethodDelete, srv.URL+"/api/assessment", nil, headers)
	if res.StatusCode != http.StatusNoContent {
		t.Fatalf("clear status %d", res.StatusCode)
	}
	res, data = doJSON(t, client, http.MethodGet, srv.URL+"/api/wellbeing", nil, headers)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 after clear, got %d: %s", res.StatusCode, string(data))
	}
}

func TestRecommendationFlow(t *testing.T) {
	srv, cleanup := newTestServer(t)
	defer cleanup()
	client := srv.Client()
	_, headers := registerUser(t, srv, "rec@example.com")

	res, data := doJSON(t, client, http.MethodGet, srv.URL+"/api/recommendations", nil, headers)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("list status %d: %s", res.StatusCode, string(data))
	}
	var all []RecommendationResponse
	if err := json.Unmarshal(data, &all); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(all) != 6 {
		t.Fatalf("expected full catalog of 6, got %d", len(all))
	}

	res, data = doJSON(t, client, http.MethodGet, srv.URL+"/api/recommendations?bucket=meditation", nil, headers)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("filtered status %d: %s", res.StatusCode, string(data))
	}
	var meditation []RecommendationResponse
	_ = json.Unmarshal(data, &meditation)
	for _, r := range meditation {
		if r.Category != domain.CategoryMeditation {
			t.Fatalf("bucket filter leaked %s", r.Category)
		}
	}

	res, _ = doJSON(t, client, http.MethodPost, srv.URL+"/api/recommendations/mindful-breathing/complete", nil, headers)
	if res.StatusCode != http.StatusNoContent {
		t.Fatalf("complete status %d", res.StatusCode)
	}

	res, data = doJSON(t, client, http.MethodGet, srv.URL+"/api/recommendations/mindful-breathing", nil, headers)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("get one status %d: %s", res.StatusCode, string(data))
	}
	var one RecommendationResponse
	if err := json.Unmarshal(data, &one); err != nil {
		t.Fatalf("unmarshal one: %v", err)
	}
	if !one.Completed {
		t.Fatalf("expected completed true")
	}

	res, data = doJSON(t, client, http.MethodGet, srv.URL+"/api/recommendations/no-such-activity", nil, headers)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown activity, got %d: %s", res.StatusCode, string(data))
	}
}

func TestBookingFlow(t *testing.T) {
	srv, cleanup := newTestServer(t)
	defer cleanup()
	client := srv.Client()
	_, headers := registerUser(t, srv, "book@example.com")

	res, data := doJSON(t, client, http.MethodGet, srv.URL+"/api/therapists", nil, headers)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("therapists status %d: %s", res.StatusCode, string(data))
	}
	var therapists []domain.Therapist
	if err := json.Unmarshal(data, &therapists); err != nil {
		t.Fatalf("unmarshal therapists: %v", err)
	}
	if len(therapists) != 4 {
		t.Fatalf("expected 4 therapists, got %d", len(therapists))
	}

	res, data = doJSON(t, client, http.MethodPost, srv.URL+"/api/appointments", map[string]any{
		"therapist_id": therapists[0].ID,
		"date":         "2025-07-01",
		"time":         "9:00 AM",
		"type":         "video",
	}, headers)
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("book status %d: %s", res.StatusCode, string(data))
	}
	var appt domain.Appointment
	if err := json.Unmarshal(data, &appt); err != nil {
		t.Fatalf("unmarshal appointment: %v", err)
	}
	if appt.Status != domain.AppointmentScheduled {
		t.Fatalf("expected Scheduled, got %s", appt.Status)
	}

	res, data = doJSON(t, client, http.MethodPost, srv.URL+"/api/appointments", map[string]any{
		"therapist_id": therapists[0].ID,
		"date":         "2025-07-01",
		"time":         "12:00 PM",
		"type":         "video",
	}, headers)
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for off-slot time, got %d: %s", res.StatusCode, string(data))
	}

	res, data = doJSON(t, client, http.MethodGet, srv.URL+"/api/appointments", nil, headers)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("list status %d: %s", res.StatusCode, string(data))
	}
	var list []domain.Appointment
	_ = json.Unmarshal(data, &list)
	if len(list) != 1 {
		t.Fatalf("expected one appointment, got %d", len(list))
	}
}

func TestMoodEndpoints(t *testing.T) {
	srv, cleanup := newTestServer(t)
	defer cleanup()
	client := srv.Client()
	_, headers := registerUser(t, srv, "mood@example.com")

	res, data := doJSON(t, client, http.MethodPost, srv.URL+"/api/mood", map[string]any{
		"mood":  "Anxious",
		"notes": "deadline week",
	}, headers)
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("track status %d: %s", res.StatusCode, string(data))
	}

	res, data = doJSON(t, client, http.MethodGet, srv.URL+"/api/mood", nil, headers)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("history status %d: %s", res.StatusCode, string(data))
	}
	var history []domain.MoodEntry
	if err := json.Unmarshal(data, &history); err != nil {
		t.Fatalf("unmarshal history: %v", err)
	}
	if len(history) != 1 || history[0].Mood != domain.MoodAnxious {
		t.Fatalf("unexpected history: %+v", history)
	}
}
