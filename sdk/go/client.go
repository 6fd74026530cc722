package mindmendsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a minimal MindMend HTTP API client.
type Client struct {
	BaseURL     string
	BearerToken string
	HTTPClient  *http.Client
	Timeout     time.Duration
}

// New creates a client with sane defaults.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		Timeout: 10 * time.Second,
	}
}

// User is the API user model.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// Session is the register/login response.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Assessment is the stored self-assessment record.
type Assessment struct {
	UserID              string   `json:"user_id"`
	Name                string   `json:"name,omitempty"`
	Age                 int      `json:"age,omitempty"`
	Gender              string   `json:"gender,omitempty"`
	SleepQuality        int      `json:"sleep_quality"`
	StressLevel         int      `json:"stress_level"`
	MoodRating          int      `json:"mood_rating"`
	EnergyLevel         int      `json:"energy_level"`
	PrimaryGoal         string   `json:"primary_goal,omitempty"`
	PreferredActivities []string `json:"preferred_activities,omitempty"`
	UpdatedAt           string   `json:"updated_at,omitempty"`
}

// Band is one labelled dashboard insight.
type Band struct {
	Label   string `json:"label"`
	Message string `json:"message"`
}

// Wellbeing is the derived dashboard report.
type Wellbeing struct {
	Name       string `json:"name"`
	Score      int    `json:"score"`
	Dimensions []struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	} `json:"dimensions"`
	Sleep  Band `json:"sleep"`
	Stress Band `json:"stress"`
	Energy Band `json:"energy"`
}

// Recommendation is a catalog activity with completion state.
type Recommendation struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Duration    string   `json:"duration"`
	Description string   `json:"description"`
	Steps       []string `json:"steps,omitempty"`
	Benefits    []string `json:"benefits"`
	Difficulty  string   `json:"difficulty"`
	Completed   bool     `json:"completed"`
}

// MoodEntry is one tracked mood.
type MoodEntry struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Date   string `json:"date"`
	Mood   string `json:"mood"`
	Notes  string `json:"notes,omitempty"`
}

// Therapist is a directory entry.
type Therapist struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Specialty     string   `json:"specialty"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Bio           string   `json:"bio"`
	NextAvailable string   `json:"next_available"`
	Price         string   `json:"price"`
	Badges        []string `json:"badges,omitempty"`
}

// Appointment is a booked session.
type Appointment struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	TherapistID string `json:"therapist_id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// APIError wraps non-2xx responses.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d body=%s", e.StatusCode, e.Body)
}

// Register creates an account and stores the returned token on the client.
func (c *Client) Register(ctx context.Context, name, email, password string) (Session, error) {
	body := map[string]any{"name": name, "email": email, "password": password}
	var resp Session
	err := c.do(ctx, http.MethodPost, "auth/register", body, &resp)
	if err == nil {
		c.BearerToken = resp.Token
	}
	return resp, err
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (Session, error) {
	body := map[string]any{"email": email, "password": password}
	var resp Session
	err := c.do(ctx, http.MethodPost, "auth/login", body, &resp)
	if err == nil {
		c.BearerToken = resp.Token
	}
	return resp, err
}

// SubmitAssessment stores the assessment, replacing any previous one.
func (c *Client) SubmitAssessment(ctx context.Context, a Assessment) (Assessment, error) {
	var resp Assessment
	err := c.do(ctx, http.MethodPut, "assessment", a, &resp)
	return resp, err
}

// Assessment returns the stored assessment.
func (c *Client) Assessment(ctx context.Context) (Assessment, error) {
	var resp Assessment
	err := c.do(ctx, http.MethodGet, "assessment", nil, &resp)
	return resp, err
}

// ClearAssessment removes the stored assessment.
func (c *Client) ClearAssessment(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "assessment", nil, nil)
}

// Wellbeing returns the derived dashboard report.
func (c *Client) Wellbeing(ctx context.Context) (Wellbeing, error) {
	var resp Wellbeing
	err := c.do(ctx, http.MethodGet, "wellbeing", nil, &resp)
	return resp, err
}

// Recommendations lists activities, optionally filtered by bucket,
// duration band, and difficulty.
func (c *Client) Recommendations(ctx context.Context, bucket, duration, difficulty string) ([]Recommendation, error) {
	q := url.Values{}
	if bucket != "" {
		q.Set("bucket", bucket)
	}
	if duration != "" {
		q.Set("duration", duration)
	}
	if difficulty != "" {
		q.Set("difficulty", difficulty)
	}
	endpoint := "recommendations"
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}
	var resp []Recommendation
	err := c.do(ctx, http.MethodGet, endpoint, nil, &resp)
	return resp, err
}

// CompleteActivity marks an activity as done.
func (c *Client) CompleteActivity(ctx context.Context, activityID string) error {
	endpoint := fmt.Sprintf("recommendations/%s/complete", url.PathEscape(activityID))
	return c.do(ctx, http.MethodPost, endpoint, nil, nil)
}

// TrackMood records a mood entry.
func (c *Client) TrackMood(ctx context.Context, mood, notes string) (MoodEntry, error) {
	body := map[string]any{"mood": mood, "notes": notes}
	var resp MoodEntry
	err := c.do(ctx, http.MethodPost, "mood", body, &resp)
	return resp, err
}

// MoodHistory returns all tracked moods, oldest first.
func (c *Client) MoodHistory(ctx context.Context) ([]MoodEntry, error) {
	var resp []MoodEntry
	err := c.do(ctx, http.MethodGet, "mood", nil, &resp)
	return resp, err
}

// Therapists lists the directory.
func (c *Client) Therapists(ctx context.Context) ([]Therapist, error) {
	var resp []Therapist
	err := c.do(ctx, http.MethodGet, "therapists", nil, &resp)
	return resp, err
}

// BookAppointment schedules a session with a therapist.
func (c *Client) BookAppointment(ctx context.Context, therapistID, date, timeSlot, sessionType string) (Appointment, error) {
	body := map[string]any{
		"therapist_id": therapistID,
		"date":         date,
		"time":         timeSlot,
		"type":         sessionType,
	}
	var resp Appointment
	err := c.do(ctx, http.MethodPost, "appointments", body, &resp)
	return resp, err
}

// Appointments lists the user's appointments.
func (c *Client) Appointments(ctx context.Context) ([]Appointment, error) {
	var resp []Appointment
	err := c.do(ctx, http.MethodGet, "appointments", nil, &resp)
	return resp, err
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any, out any) error {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	url := c.base() + "/api/" + strings.TrimLeft(endpoint, "/")
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, url, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.BearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.BearerToken)
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: string(b)}
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) base() string {
	return strings.TrimRight(c.BaseURL, "/")
}
