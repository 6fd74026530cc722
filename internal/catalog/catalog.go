// Package catalog holds the build-time activity and therapist directories.
// Neither is user-editable; both are served verbatim and looked up by id.
package catalog

import "mindmend/internal/domain"

var activities = []domain.Activity{
	{
		ID:          "mindful-breathing",
		Title:       "Mindful Breathing",
		Category:    domain.CategoryMeditation,
		Duration:    "5 min",
		Description: "A simple breathing exercise to calm your mind and reduce stress.",
		Steps: []string{
			"Find a comfortable sitting position",
			"Close your eyes and take a deep breath in through your nose",
			"Hold for 3 seconds",
			"Exhale slowly through your mouth",
			"Repeat for 5 minutes, focusing on your breath",
		},
		Benefits:   []string{"Reduces stress", "Improves focus", "Calms the nervous system"},
		Difficulty: domain.DifficultyEasy,
	},
	{
		ID:          "body-scan",
		Title:       "Body Scan Relaxation",
		Category:    domain.CategoryMeditation,
		Duration:    "10 min",
		Description: "A guided relaxation technique focusing on different parts of your body.",
		Steps: []string{
			"Lie down in a comfortable position",
			"Close your eyes and take a few deep breaths",
			"Starting at your toes, focus on each part of your body",
			"Notice any tension and consciously relax that area",
			"Move progressively up through your entire body",
		},
		Benefits:   []string{"Reduces physical tension", "Improves body awareness", "Promotes better sleep"},
		Difficulty: domain.DifficultyMedium,
	},
	{
		ID:          "gratitude-journal",
		Title:       "Gratitude Journaling",
		Category:    domain.CategoryJournaling,
		Duration:    "10 min",
		Description: "Write down things you're grateful for to shift your focus to the positive aspects of life.",
		Steps: []string{
			"Find a quiet space with no distractions",
			"Take a few deep breaths to center yourself",
			"Write down 3-5 things you're grateful for today",
			"For each item, explain why you're grateful for it",
			"Reflect on how these positive elements impact your life",
		},
		Benefits:   []string{"Increases positive emotions", "Improves sleep", "Reduces stress"},
		Difficulty: domain.DifficultyEasy,
	},
	{
		ID:          "nature-walk",
		Title:       "Mindful Nature Walk",
		Category:    domain.CategoryExercise,
		Duration:    "20 min",
		Description: "A gentle walk in nature while practicing mindfulness and awareness.",
		Steps: []string{
			"Find a natural setting like a park or trail",
			"Walk at a comfortable, relaxed pace",
			"Notice the sensations of walking - your feet touching the ground",
			"Observe the sights, sounds, and smells around you",
			"If your mind wanders, gently bring it back to your surroundings",
		},
		Benefits:   []string{"Reduces anxiety", "Improves mood", "Increases vitamin D"},
		Difficulty: domain.DifficultyEasy,
	},
	{
		ID:          "progressive-muscle",
		Title:       "Progressive Muscle Relaxation",
		Category:    domain.CategoryRelaxation,
		Duration:    "15 min",
		Description: "Technique to reduce physical tension by tensing and relaxing muscle groups.",
		Steps: []string{
			"Find a comfortable position lying down",
			"Start with your feet, tense the muscles for 5 seconds",
			"Release and notice how the muscles feel when relaxed",
			"Move progressively through each muscle group in your body",
			"End with deep breathing to enhance relaxation",
		},
		Benefits:   []string{"Reduces physical tension", "Decreases anxiety", "Improves sleep quality"},
		Difficulty: domain.DifficultyMedium,
	},
	{
		ID:          "mindful-drawing",
		Title:       "Mindful Drawing",
		Category:    domain.CategoryArtsAndCraft,
		Duration:    "15 min",
		Description: "Express yourself through art while practicing mindfulness and presence.",
		Steps: []string{
			"Gather simple drawing materials",
			"Find a quiet space where you won't be interrupted",
			"Draw whatever comes to mind without judgment",
			"Focus on the sensations of drawing",
			"Notice thoughts but return focus to the drawing process",
		},
		Benefits:   []string{"Promotes self-expression", "Reduces stress", "Improves focus"},
		Difficulty: domain.DifficultyEasy,
	},
}

var therapists = []domain.Therapist{
	{
		ID:            "dr-sarah-johnson",
		Name:          "Dr. Sarah Johnson",
		Specialty:     "Anxiety & Depression",
		Rating:        4.9,
		Reviews:       142,
		Bio:           "Dr. Johnson specializes in cognitive behavioral therapy for anxiety and depression. With over 15 years of experience, she helps clients develop practical strategies to manage their mental health.",
		NextAvailable: "Tomorrow",
		Price:         "$120",
		Badges:        []string{"CBT Certified", "Anxiety Specialist"},
	},
	{
		ID:            "dr-michael-chen",
		Name:          "Dr. Michael Chen",
		Specialty:     "Stress Management",
		Rating:        4.8,
		Reviews:       113,
		Bio:           "Dr. Chen combines traditional therapy with mindfulness techniques to help clients manage stress and achieve better work-life balance. He specializes in helping professionals in high-stress industries.",
		NextAvailable: "Today",
		Price:         "$140",
		Badges:        []string{"Mindfulness Expert", "Work-Life Balance"},
	},
	{
		ID:            "dr-james-rodriguez",
		Name:          "Dr. James Rodriguez",
		Specialty:     "Sleep Disorders",
		Rating:        4.7,
		Reviews:       98,
		Bio:           "Dr. Rodriguez is an expert in treating sleep disorders and insomnia without reliance on medication. He helps clients develop healthy sleep routines and manage sleep-related anxiety.",
		NextAvailable: "In 2 days",
		Price:         "$110",
		Badges:        []string{"Sleep Specialist", "Insomnia Treatment"},
	},
	{
		ID:            "dr-emily-patel",
		Name:          "Dr. Emily Patel",
		Specialty:     "Relationship Counseling",
		Rating:        4.9,
		Reviews:       167,
		Bio:           "Dr. Patel specializes in helping individuals navigate relationship challenges, whether romantic, familial, or professional. She provides practical tools to improve communication and set healthy boundaries.",
		NextAvailable: "In 3 days",
		Price:         "$130",
		Badges:        []string{"Relationship Expert", "Communication Skills"},
	},
}

// slots are the bookable session times. No lunch-hour slot.
var slots = []string{
	"9:00 AM", "10:00 AM", "11:00 AM",
	"1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM",
}

// Activities returns the catalog in declaration order. Callers must not
// mutate the returned slice.
func Activities() []domain.Activity {
	return activities
}

// FindActivity looks up a catalog entry by id.
func FindActivity(id string) (domain.Activity, bool) {
	for _, a := range activities {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Activity{}, false
}

// Therapists returns the therapist directory.
func Therapists() []domain.Therapist {
	return therapists
}

// FindTherapist looks up a therapist by id.
func FindTherapist(id string) (domain.Therapist, bool) {
	for _, th := range therapists {
		if th.ID == id {
			return th, true
		}
	}
	return domain.Therapist{}, false
}

// Slots returns the bookable time slots.
func Slots() []string {
	return slots
}

// ValidSlot reports whether t is a bookable time.
func ValidSlot(t string) bool {
	for _, s := range slots {
		if s == t {
			return true
		}
	}
	return false
}
