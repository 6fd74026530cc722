package server

import (
	"mindmend/internal/domain"
	"mindmend/internal/recommend"
	"mindmend/internal/wellbeing"
)

// Request payloads

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" format:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email" format:"email"`
	Password string `json:"password"`
}

type SubmitAssessmentRequest struct {
	Name                string   `json:"name,omitempty"`
	Age                 int      `json:"age,omitempty" minimum:"0" maximum:"120"`
	Gender              string   `json:"gender,omitempty"`
	SleepQuality        int      `json:"sleep_quality" minimum:"1" maximum:"10"`
	StressLevel         int      `json:"stress_level" minimum:"1" maximum:"10"`
	MoodRating          int      `json:"mood_rating" minimum:"1" maximum:"10"`
	EnergyLevel         int      `json:"energy_level" minimum:"1" maximum:"10"`
	PrimaryGoal         string   `json:"primary_goal,omitempty"`
	PreferredActivities []string `json:"preferred_activities,omitempty"`
}

type TrackMoodRequest struct {
	Mood  string `json:"mood" enum:"Happy,Sad,Anxious,Neutral"`
	Notes string `json:"notes,omitempty"`
}

type BookAppointmentRequest struct {
	TherapistID string `json:"therapist_id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Type        string `json:"type" enum:"video,chat"`
}

// Response payloads

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at" format:"date-time"`
}

type TokenResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type BandResponse struct {
	Label   string `json:"label"`
	Message string `json:"message"`
}

type DimensionResponse struct {
	Name  string `json:"name"`
	Value int    `json:"value" minimum:"1" maximum:"10"`
}

type WellbeingResponse struct {
	Name       string              `json:"name"`
	Score      int                 `json:"score" minimum:"1" maximum:"10"`
	Dimensions []DimensionResponse `json:"dimensions"`
	Sleep      BandResponse        `json:"sleep"`
	Stress     BandResponse        `json:"stress"`
	Energy     BandResponse        `json:"energy"`
}

type RecommendationResponse struct {
	domain.Activity
	Completed bool `json:"completed"`
}

func userResponse(u domain.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}

func bandResponse(b wellbeing.Band) BandResponse {
	return BandResponse{Label: b.Label, Message: b.Message}
}

func wellbeingResponse(r wellbeing.Report) WellbeingResponse {
	dims := make([]DimensionResponse, 0, len(r.Dimensions))
	for _, d := range r.Dimensions {
		dims = append(dims, DimensionResponse{Name: d.Name, Value: d.Value})
	}
	return WellbeingResponse{
		Name:       r.Name,
		Score:      r.Score,
		Dimensions: dims,
		Sleep:      bandResponse(r.Sleep),
		Stress:     bandResponse(r.Stress),
		Energy:     bandResponse(r.Energy),
	}
}

func recommendationResponse(r recommend.Recommendation) RecommendationResponse {
	return RecommendationResponse{Activity: r.Activity, Completed: r.Completed}
}

func mapRecommendations(items []recommend.Recommendation) []RecommendationResponse {
	res := make([]RecommendationResponse, 0, len(items))
	for _, it := range items {
		res = append(res, recommendationResponse(it))
	}
	return res
}
