package feedback

import (
	"fmt"

	"github.com/mjessup/hotcold/internal/dependencies/random"
	"github.com/mjessup/hotcold/internal/model"
)

// Target range for a standard game
const (
	MinTarget = 1
	MaxTarget = 100
)

// Proximity tier thresholds on absolute difference
const (
	hotMaxDistance  = 5
	warmMaxDistance = 15
)

// Classify computes the direction and proximity classification of a guess
// against the target. Inputs are assumed to be validated integers; there
// are no error conditions.
func Classify(guess, target int) model.GuessResult {
	diff := guess - target
	if diff < 0 {
		diff = -diff
	}

	fb := model.FeedbackCorrect
	switch {
	case guess > target:
		fb = model.FeedbackTooHigh
	case guess < target:
		fb = model.FeedbackTooLow
	}

	tier := model.TierCold
	switch {
	case diff <= hotMaxDistance:
		tier = model.TierHot
	case diff <= warmMaxDistance:
		tier = model.TierWarm
	}

	return model.GuessResult{
		Guess:      guess,
		Feedback:   fb,
		Tier:       tier,
		Difference: diff,
	}
}

// Describe composes the user-facing message for a classification.
// A correct guess short-circuits to a fixed congratulatory message.
func Describe(fb model.Feedback, tier model.DistanceTier) string {
	if fb == model.FeedbackCorrect {
		return "You got it! Congratulations!"
	}

	direction := "higher"
	if fb == model.FeedbackTooHigh {
		direction = "lower"
	}

	var hint string
	switch tier {
	case model.TierHot:
		hint = "You're hot!"
	case model.TierWarm:
		hint = "You're getting warm."
	default:
		hint = "You're cold."
	}

	return fmt.Sprintf("Try %s. %s", direction, hint)
}

// Service generates targets for new games
type Service struct {
	random random.Random
	min    int
	max    int
}

// New creates a feedback service drawing targets from the default [1,100] range
func New(rnd random.Random) *Service {
	return &Service{
		random: rnd,
		min:    MinTarget,
		max:    MaxTarget,
	}
}

// NewTarget draws a uniform random target in the configured range
func (s *Service) NewTarget() int {
	return s.random.IntInRange(s.min, s.max)
}
