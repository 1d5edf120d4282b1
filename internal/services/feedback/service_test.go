package feedback

import (
	"testing"

	"github.com/mjessup/hotcold/internal/dependencies/mocks"
	"github.com/mjessup/hotcold/internal/model"
	"github.com/stretchr/testify/suite"
)

type ServiceSuite struct {
	suite.Suite
	random  *mocks.MockRandom
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.service = New(s.random)
}

// Classify tests

func (s *ServiceSuite) TestClassifyCorrectGuess() {
	result := Classify(50, 50)

	s.Equal(model.FeedbackCorrect, result.Feedback)
	s.Equal(model.TierHot, result.Tier)
	s.Equal(0, result.Difference)
	s.Equal(50, result.Guess)
}

func (s *ServiceSuite) TestClassifyTooHigh() {
	result := Classify(75, 50)

	s.Equal(model.FeedbackTooHigh, result.Feedback)
	s.Equal(25, result.Difference)
}

func (s *ServiceSuite) TestClassifyTooLow() {
	result := Classify(25, 50)

	s.Equal(model.FeedbackTooLow, result.Feedback)
	s.Equal(25, result.Difference)
}

func (s *ServiceSuite) TestClassifyTierBoundaries() {
	tests := []struct {
		name  string
		guess int
		tier  model.DistanceTier
	}{
		{"exact match is hot", 50, model.TierHot},
		{"distance 1 is hot", 51, model.TierHot},
		{"distance 5 is hot", 55, model.TierHot},
		{"distance 6 is warm", 56, model.TierWarm},
		{"distance 15 is warm", 65, model.TierWarm},
		{"distance 16 is cold", 66, model.TierCold},
		{"distance 49 is cold", 99, model.TierCold},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			result := Classify(tt.guess, 50)
			s.Equal(tt.tier, result.Tier)
		})
	}
}

func (s *ServiceSuite) TestClassifyTierBoundariesBelowTarget() {
	s.Equal(model.TierHot, Classify(45, 50).Tier)
	s.Equal(model.TierWarm, Classify(44, 50).Tier)
	s.Equal(model.TierWarm, Classify(35, 50).Tier)
	s.Equal(model.TierCold, Classify(34, 50).Tier)
}

func (s *ServiceSuite) TestClassifyDifferenceIsAlwaysAbsolute() {
	for guess := MinTarget; guess <= MaxTarget; guess++ {
		for _, target := range []int{1, 37, 50, 100} {
			result := Classify(guess, target)
			s.GreaterOrEqual(result.Difference, 0)

			switch {
			case guess > target:
				s.Equal(model.FeedbackTooHigh, result.Feedback)
			case guess < target:
				s.Equal(model.FeedbackTooLow, result.Feedback)
			default:
				s.Equal(model.FeedbackCorrect, result.Feedback)
			}
		}
	}
}

// Describe tests

func (s *ServiceSuite) TestDescribeCorrect() {
	msg := Describe(model.FeedbackCorrect, model.TierHot)
	s.Equal("You got it! Congratulations!", msg)
}

func (s *ServiceSuite) TestDescribeTooHigh() {
	s.Equal("Try lower. You're hot!", Describe(model.FeedbackTooHigh, model.TierHot))
	s.Equal("Try lower. You're getting warm.", Describe(model.FeedbackTooHigh, model.TierWarm))
	s.Equal("Try lower. You're cold.", Describe(model.FeedbackTooHigh, model.TierCold))
}

func (s *ServiceSuite) TestDescribeTooLow() {
	s.Equal("Try higher. You're hot!", Describe(model.FeedbackTooLow, model.TierHot))
	s.Equal("Try higher. You're getting warm.", Describe(model.FeedbackTooLow, model.TierWarm))
	s.Equal("Try higher. You're cold.", Describe(model.FeedbackTooLow, model.TierCold))
}

// NewTarget tests

func (s *ServiceSuite) TestNewTargetDrawsFromRandom() {
	s.random.QueueRange(42)

	s.Equal(42, s.service.NewTarget())
}

func (s *ServiceSuite) TestNewTargetDefaultsToRangeMinimum() {
	// Exhausted mock returns min, confirming the configured range
	s.Equal(MinTarget, s.service.NewTarget())
}
