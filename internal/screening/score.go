package screening

import (
	"fmt"
	"math"
)

const (
	// maxRecommendations caps the advisory suggestion list.
	maxRecommendations = 5

	// referenceExperienceYears is the years-of-experience mark that
	// earns a full experience sub-score.
	referenceExperienceYears = 5
)

// ScoreInput enumerates every signal the scorer accepts. Experience
// and education are optional; nil/empty means the signal was not
// supplied and its category contributes nothing.
type ScoreInput struct {
	CandidateSkills SkillSet
	RequiredSkills  SkillSet
	Weights         Weights

	ExperienceYears *int
	EducationLevel  string
}

// Breakdown carries the per-category sub-scores, each on a 0–100
// scale before weighting.
type Breakdown struct {
	Skills     int `json:"skills"`
	Experience int `json:"experience"`
	Education  int `json:"education"`
}

// Result is the outcome of one candidate-to-requirement comparison.
type Result struct {
	MatchedSkills   []string
	MissingSkills   []string
	Score           int
	Breakdown       Breakdown
	Recommendations []string
}

// Score compares candidate skills against a requirement set under the
// given weights. The weights are assumed pre-validated. An empty
// requirement set yields a skill sub-score of 0, never an error.
func Score(in ScoreInput) Result {
	matched := in.RequiredSkills.Intersect(in.CandidateSkills)
	missing := in.RequiredSkills.Subtract(in.CandidateSkills)

	var bd Breakdown
	if in.RequiredSkills.Len() > 0 {
		bd.Skills = int(math.Round(100 * float64(matched.Len()) / float64(in.RequiredSkills.Len())))
	}
	if in.ExperienceYears != nil && in.Weights.Experience > 0 {
		bd.Experience = experienceScore(*in.ExperienceYears)
	}
	if in.EducationLevel != "" && in.Weights.Education > 0 {
		bd.Education = educationScore(in.EducationLevel)
	}

	total := float64(in.Weights.Skills)*float64(bd.Skills) +
		float64(in.Weights.Experience)*float64(bd.Experience) +
		float64(in.Weights.Education)*float64(bd.Education)
	score := int(math.Round(total / 100))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return Result{
		MatchedSkills:   matched.Names(),
		MissingSkills:   missing.Names(),
		Score:           score,
		Breakdown:       bd,
		Recommendations: recommendations(missing),
	}
}

func experienceScore(years int) int {
	if years <= 0 {
		return 0
	}
	if years >= referenceExperienceYears {
		return 100
	}
	return int(math.Round(100 * float64(years) / float64(referenceExperienceYears)))
}

// educationScore ranks common education levels; unknown levels score 0.
func educationScore(level string) int {
	switch NormalizePhrase(level) {
	case "high school", "highschool":
		return 40
	case "diploma", "associate":
		return 55
	case "bachelor", "bachelors", "bachelor s", "bsc", "undergraduate":
		return 70
	case "master", "masters", "master s", "msc":
		return 85
	case "doctorate", "phd":
		return 100
	default:
		return 0
	}
}

func recommendations(missing SkillSet) []string {
	names := missing.Names()
	if len(names) > maxRecommendations {
		names = names[:maxRecommendations]
	}
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, fmt.Sprintf("Add %s to your resume to improve your match", name))
	}
	return out
}
