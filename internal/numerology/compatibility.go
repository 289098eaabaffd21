package numerology

// Dimension names a compared aspect of two matrices.
type Dimension string

const (
	DimensionSouls      Dimension = "souls"
	DimensionLifePath   Dimension = "life_path"
	DimensionExpression Dimension = "expression"
	DimensionKarmicLink Dimension = "karmic_link"
)

// Level buckets a compatibility score.
type Level string

const (
	LevelHigh   Level = "high"
	LevelMedium Level = "medium"
	LevelLow    Level = "low"
)

const (
	weightSouls      = 30
	weightLifePath   = 20
	weightExpression = 15
	weightKarmicLink = 10

	maxScore        = 100
	highThreshold   = 50
	mediumThreshold = 30
)

// CompatibilityResult is the outcome of comparing two matrices.
// Matches are listed in the order souls, life path, expression, karmic link.
type CompatibilityResult struct {
	Score          int
	Matches        []Dimension
	Level          Level
	Recommendation string
}

// Compare scores a against b. The score is symmetric and within [0, 100].
func Compare(a, b Matrix) CompatibilityResult {
	score := 0
	matches := []Dimension{}

	if a.Working.Second == b.Working.Second {
		score += weightSouls
		matches = append(matches, DimensionSouls)
	}
	if a.LifePath == b.LifePath {
		score += weightLifePath
		matches = append(matches, DimensionLifePath)
	}
	if a.Expression == b.Expression {
		score += weightExpression
		matches = append(matches, DimensionExpression)
	}
	if intersects(a.KarmicDebts, b.KarmicDebts) {
		score += weightKarmicLink
		matches = append(matches, DimensionKarmicLink)
	}

	score = min(score, maxScore)
	level := levelFor(score)
	return CompatibilityResult{
		Score:          score,
		Matches:        matches,
		Level:          level,
		Recommendation: recommendationFor(level),
	}
}

func levelFor(score int) Level {
	switch {
	case score >= highThreshold:
		return LevelHigh
	case score >= mediumThreshold:
		return LevelMedium
	default:
		return LevelLow
	}
}

func recommendationFor(level Level) string {
	switch level {
	case LevelHigh:
		return "harmonious union"
	case LevelMedium:
		return "requires work"
	default:
		return "karmic lessons"
	}
}

func intersects(a, b []int) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
