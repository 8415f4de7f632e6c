package screening

import (
	"errors"
	"fmt"
)

var ErrWeightSum = errors.New("scoring weights must sum to 100")

// Weights are the percentage contributions of each scoring category.
// A Weights value is only considered valid when the three parts sum to
// exactly 100; validation happens at configuration-update time, never
// at scoring time.
type Weights struct {
	Skills     int `json:"skills"`
	Experience int `json:"experience"`
	Education  int `json:"education"`
}

func DefaultWeights() Weights {
	return Weights{Skills: 60, Experience: 25, Education: 15}
}

// SkillsOnlyWeights scores purely on skill overlap.
func SkillsOnlyWeights() Weights {
	return Weights{Skills: 100}
}

func (w Weights) Validate() error {
	if w.Skills < 0 || w.Experience < 0 || w.Education < 0 {
		return fmt.Errorf("scoring weights must be non-negative, got %d/%d/%d", w.Skills, w.Experience, w.Education)
	}
	if sum := w.Skills + w.Experience + w.Education; sum != 100 {
		return fmt.Errorf("%w, got %d", ErrWeightSum, sum)
	}
	return nil
}
