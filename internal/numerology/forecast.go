package numerology

// Personal year focus and challenge labels.
const (
	FocusAction        = "action"
	FocusRelationships = "relationships"
	FocusWisdom        = "wisdom"

	ChallengeImpulsiveness    = "impulsiveness"
	ChallengePassivity        = "passivity"
	ChallengeOverEmotionality = "over-emotionality"

	// SpecialYear is the forecast for personal year numbers the table does not
	// cover, such as master numbers.
	SpecialYear = "special year"
)

// YearForecast describes one target year for one birth date.
type YearForecast struct {
	TargetYear   int
	PersonalYear int
	Forecast     string
	Focus        string
	Challenge    string
}

// PersonalYear reduces day + month + targetYear with the given policy.
func PersonalYear(day, month, targetYear int, policy ReductionPolicy) int {
	return policy.Reduce(day + month + targetYear)
}

// ForecastFor maps a personal year number onto the forecast table and the
// fixed focus/challenge rules.
func ForecastFor(targetYear, personalYear int, table ForecastTable) YearForecast {
	forecast, ok := table[personalYear]
	if !ok {
		forecast = SpecialYear
	}
	return YearForecast{
		TargetYear:   targetYear,
		PersonalYear: personalYear,
		Forecast:     forecast,
		Focus:        focusFor(personalYear),
		Challenge:    challengeFor(personalYear),
	}
}

func focusFor(n int) string {
	switch n {
	case 1, 4, 7:
		return FocusAction
	case 2, 5, 8:
		return FocusRelationships
	default:
		return FocusWisdom
	}
}

func challengeFor(n int) string {
	switch n {
	case 1, 5:
		return ChallengeImpulsiveness
	case 2, 7:
		return ChallengePassivity
	default:
		return ChallengeOverEmotionality
	}
}
