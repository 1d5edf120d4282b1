package model

// Feedback classifies a guess relative to the target
type Feedback string

const (
	FeedbackCorrect Feedback = "correct"
	FeedbackTooHigh Feedback = "too-high"
	FeedbackTooLow  Feedback = "too-low"
)

// DistanceTier is the hot/warm/cold proximity classification derived from
// the absolute difference between guess and target. Tiering is independent
// of direction; a correct guess is still "hot".
type DistanceTier string

const (
	TierHot  DistanceTier = "hot"  // difference <= 5, including 0
	TierWarm DistanceTier = "warm" // 5 < difference <= 15
	TierCold DistanceTier = "cold" // difference > 15
)

// GuessResult is the full classification of a single guess
type GuessResult struct {
	Guess      int
	Feedback   Feedback
	Tier       DistanceTier
	Difference int
}
