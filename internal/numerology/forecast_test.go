package numerology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deidexdd-hash/mysticbot/internal/numerology"
)

var forecasts = numerology.ForecastTable{
	3: "creativity",
	4: "work and foundations",
}

func TestPersonalYear(t *testing.T) {
	// 15 + 5 + 2026 = 2046
	assert.Equal(t, 12, numerology.PersonalYear(15, 5, 2026, numerology.ReduceSingle))
	assert.Equal(t, 3, numerology.PersonalYear(15, 5, 2026, numerology.ReduceIterative))
	// 1 + 1 + 2000 = 2002
	assert.Equal(t, 4, numerology.PersonalYear(1, 1, 2000, numerology.ReduceSingle))
}

func TestEngineForecast(t *testing.T) {
	birth := numerology.BirthDate{Day: 15, Month: 5, Year: 1990}

	t.Run("number outside the table is a special year", func(t *testing.T) {
		got := numerology.New().Forecast(birth, 2026, forecasts)
		assert.Equal(t, numerology.YearForecast{
			TargetYear:   2026,
			PersonalYear: 12,
			Forecast:     numerology.SpecialYear,
			Focus:        numerology.FocusWisdom,
			Challenge:    numerology.ChallengeOverEmotionality,
		}, got)
	})

	t.Run("iterative reduction lands in the table", func(t *testing.T) {
		got := numerology.New(numerology.WithReduction(numerology.ReduceIterative)).Forecast(birth, 2026, forecasts)
		assert.Equal(t, 3, got.PersonalYear)
		assert.Equal(t, "creativity", got.Forecast)
	})
}

func TestForecastFocusAndChallenge(t *testing.T) {
	tests := []struct {
		n         int
		focus     string
		challenge string
	}{
		{1, numerology.FocusAction, numerology.ChallengeImpulsiveness},
		{2, numerology.FocusRelationships, numerology.ChallengePassivity},
		{3, numerology.FocusWisdom, numerology.ChallengeOverEmotionality},
		{4, numerology.FocusAction, numerology.ChallengeOverEmotionality},
		{5, numerology.FocusRelationships, numerology.ChallengeImpulsiveness},
		{6, numerology.FocusWisdom, numerology.ChallengeOverEmotionality},
		{7, numerology.FocusAction, numerology.ChallengePassivity},
		{8, numerology.FocusRelationships, numerology.ChallengeOverEmotionality},
		{9, numerology.FocusWisdom, numerology.ChallengeOverEmotionality},
		{11, numerology.FocusWisdom, numerology.ChallengeOverEmotionality},
	}
	for _, tt := range tests {
		got := numerology.ForecastFor(2026, tt.n, nil)
		assert.Equal(t, tt.focus, got.Focus, "focus for %d", tt.n)
		assert.Equal(t, tt.challenge, got.Challenge, "challenge for %d", tt.n)
		assert.Equal(t, numerology.SpecialYear, got.Forecast)
	}
}
