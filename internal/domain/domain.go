package domain

// Gender values accepted by the assessment form.
const (
	GenderMale           = "male"
	GenderFemale         = "female"
	GenderNonBinary      = "non-binary"
	GenderPreferNotToSay = "prefer-not-to-say"
)

// Goal tags selectable as the primary goal. Descriptive only; no derivation
// consumes them yet.
const (
	GoalReduceStress    = "reduce-stress"
	GoalImproveMood     = "improve-mood"
	GoalBetterSleep     = "better-sleep"
	GoalWorkLifeBalance = "work-life-balance"
	GoalImproveFocus    = "improve-focus"
	GoalBuildResilience = "build-resilience"
)

// Activity categories. The recommendation view partitions these into three
// display buckets; see the recommend package.
const (
	CategoryMeditation   = "Meditation"
	CategoryJournaling   = "Journaling"
	CategoryExercise     = "Exercise"
	CategoryRelaxation   = "Relaxation"
	CategoryArtsAndCraft = "Arts & Crafts"
)

// Difficulty levels for activities.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Mood kinds accepted by mood tracking.
const (
	MoodHappy   = "Happy"
	MoodSad     = "Sad"
	MoodAnxious = "Anxious"
	MoodNeutral = "Neutral"
)

// Appointment session types and statuses.
const (
	SessionVideo = "video"
	SessionChat  = "chat"

	AppointmentScheduled = "Scheduled"
	AppointmentCompleted = "Completed"
	AppointmentCancelled = "Cancelled"
)

type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	PassHash  string `json:"-"`
	CreatedAt string `json:"created_at" format:"date-time"`
}

// Assessment is a user's self-reported wellbeing record. One row per user,
// overwritten wholesale on resubmission. The four numeric dimensions are
// slider-bounded to [1,10] at input time; the wellbeing package clamps
// out-of-range values again before scoring.
type Assessment struct {
	UserID              string   `json:"user_id"`
	Name                string   `json:"name,omitempty"`
	Age                 int      `json:"age,omitempty"`
	Gender              string   `json:"gender,omitempty" enum:"male,female,non-binary,prefer-not-to-say"`
	SleepQuality        int      `json:"sleep_quality"`
	StressLevel         int      `json:"stress_level"`
	MoodRating          int      `json:"mood_rating"`
	EnergyLevel         int      `json:"energy_level"`
	PrimaryGoal         string   `json:"primary_goal,omitempty" enum:"reduce-stress,improve-mood,better-sleep,work-life-balance,improve-focus,build-resilience"`
	PreferredActivities []string `json:"preferred_activities,omitempty"`
	UpdatedAt           string   `json:"updated_at,omitempty" format:"date-time"`
}

// Activity is one entry of the fixed, build-time catalog. Not user data.
type Activity struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category" enum:"Meditation,Journaling,Exercise,Relaxation,Arts & Crafts"`
	Duration    string   `json:"duration"`
	Description string   `json:"description"`
	Steps       []string `json:"steps,omitempty"`
	Benefits    []string `json:"benefits"`
	Difficulty  string   `json:"difficulty" enum:"Easy,Medium,Hard"`
}

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

type MoodEntry struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Date   string `json:"date" format:"date-time"`
	Mood   string `json:"mood" enum:"Happy,Sad,Anxious,Neutral"`
	Notes  string `json:"notes,omitempty"`
}

type Appointment struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	TherapistID string `json:"therapist_id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Type        string `json:"type" enum:"video,chat"`
	Status      string `json:"status" enum:"Scheduled,Completed,Cancelled"`
	CreatedAt   string `json:"created_at" format:"date-time"`
}

type Event struct {
	ID         int64  `json:"id"`
	TS         string `json:"ts" format:"date-time"`
	Type       string `json:"type"`
	EntityKind string `json:"entity_kind"`
	EntityID   string `json:"entity_id,omitempty"`
	UserID     string `json:"user_id"`
	Payload    string `json:"payload_json"`
}
