// Package wellbeing derives a composite wellbeing score and per-dimension
// bands from an assessment. All functions are pure; callers may invoke them
// on every request without memoization.
package wellbeing

import "mindmend/internal/domain"

// Band is a coarse two-tier classification of a single dimension, with the
// recommendation copy shown for it.
type Band struct {
	Label   string `json:"label"`
	Message string `json:"message"`
}

// Dimension is one of the four self-reported inputs, normalized so that a
// higher value is always better (stress is inverted).
type Dimension struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Report is the full derivation for one assessment.
type Report struct {
	Name       string      `json:"name"`
	Score      int         `json:"score" minimum:"1" maximum:"10"`
	Dimensions []Dimension `json:"dimensions"`
	Sleep      Band        `json:"sleep"`
	Stress     Band        `json:"stress"`
	Energy     Band        `json:"energy"`
}

// Banding thresholds. Values at the threshold fall on the favorable side for
// sleep and energy, the unfavorable side is strict inequality throughout.
const (
	goodSleepMin   = 7
	highStressMin  = 6
	goodEnergyMin  = 6
	defaultName    = "Friend"
	dimensionCount = 4
)

// clamp bounds a raw dimension value into [1,10]. Out-of-range values can only
// come from an external writer of the persisted record; they are clamped
// rather than rejected so a corrupted record never crashes a page.
func clamp(v int) int {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}

// invert maps a stress level onto the shared higher-is-better axis.
func invert(stress int) int {
	return 11 - stress
}

// Score computes the 1-10 composite. Stress is inverted before averaging and
// the mean of the four dimensions is rounded half up.
func Score(a domain.Assessment) int {
	sum := clamp(a.SleepQuality) +
		clamp(a.MoodRating) +
		invert(clamp(a.StressLevel)) +
		clamp(a.EnergyLevel)
	return (sum + dimensionCount/2) / dimensionCount
}

// SleepBand classifies sleep quality.
func SleepBand(v int) Band {
	if clamp(v) >= goodSleepMin {
		return Band{Label: "good", Message: "You're getting good quality sleep. Keep it up!"}
	}
	return Band{Label: "needs improvement", Message: "Your sleep could use some improvement. Check our recommendations."}
}

// StressBand classifies stress level.
func StressBand(v int) Band {
	if clamp(v) >= highStressMin {
		return Band{Label: "high", Message: "Your stress levels are high. Try our relaxation exercises."}
	}
	return Band{Label: "managed", Message: "You're managing stress effectively. Great job!"}
}

// EnergyBand classifies energy level.
func EnergyBand(v int) Band {
	if clamp(v) >= goodEnergyMin {
		return Band{Label: "good", Message: "Your energy levels are good. Maintain this momentum!"}
	}
	return Band{Label: "needs boost", Message: "Your energy could use a boost. Check our energy-boosting activities."}
}

// Derive builds the full report for an assessment.
func Derive(a domain.Assessment) Report {
	name := a.Name
	if name == "" {
		name = defaultName
	}
	return Report{
		Name:  name,
		Score: Score(a),
		Dimensions: []Dimension{
			{Name: "Sleep", Value: clamp(a.SleepQuality)},
			{Name: "Mood", Value: clamp(a.MoodRating)},
			{Name: "Stress", Value: invert(clamp(a.StressLevel))},
			{Name: "Energy", Value: clamp(a.EnergyLevel)},
		},
		Sleep:  SleepBand(a.SleepQuality),
		Stress: StressBand(a.StressLevel),
		Energy: EnergyBand(a.EnergyLevel),
	}
}
