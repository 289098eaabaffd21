package handler

import (
	"time"

	"github.com/deidexdd-hash/mysticbot/internal/matrix/service"
	"github.com/deidexdd-hash/mysticbot/internal/numerology"
	"github.com/deidexdd-hash/mysticbot/internal/profile/models"
)

type WorkingNumbersResponse struct {
	First  int `json:"first"`
	Second int `json:"second"`
	Third  int `json:"third"`
	Fourth int `json:"fourth"`
}

// MatrixResponse is every derived number of one birth date.
type MatrixResponse struct {
	BirthDate      string                 `json:"birth_date"`
	Digits         []int                  `json:"digits"`
	Working        WorkingNumbersResponse `json:"working_numbers"`
	FullArray      []int                  `json:"full_array"`
	SpecialNumbers []int                  `json:"special_numbers"`
	LifePath       int                    `json:"life_path"`
	Expression     int                    `json:"expression"`
	SoulUrge       int                    `json:"soul_urge"`
	Personality    int                    `json:"personality"`
	KarmicDebts    []int                  `json:"karmic_debts"`
	Millennial     bool                   `json:"millennial"`
	DayType        string                 `json:"day_type"`
}

type DigitResponse struct {
	Digit int    `json:"digit"`
	Count int    `json:"count"`
	Key   string `json:"key"`
	Text  string `json:"text"`
	Found bool   `json:"found"`
}

// ReadingResponse is the HTTP response for matrix readings.
type ReadingResponse struct {
	Matrix          MatrixResponse  `json:"matrix"`
	Gender          string          `json:"gender,omitempty"`
	Interpretations []DigitResponse `json:"interpretations"`
	SoulTask        string          `json:"soul_task,omitempty"`
	ClanTask        string          `json:"clan_task,omitempty"`
}

type ForecastResponse struct {
	TargetYear   int    `json:"target_year"`
	PersonalYear int    `json:"personal_year"`
	Forecast     string `json:"forecast"`
	Focus        string `json:"focus"`
	Challenge    string `json:"challenge"`
}

type CompatibilityResponse struct {
	Score          int            `json:"score"`
	Level          string         `json:"level"`
	Recommendation string         `json:"recommendation"`
	Matches        []string       `json:"matches"`
	First          MatrixResponse `json:"first"`
	Second         MatrixResponse `json:"second"`
}

type ProfileResponse struct {
	UserID    string    `json:"user_id"`
	BirthDate string    `json:"birth_date"`
	Gender    string    `json:"gender,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromMatrix(m numerology.Matrix) MatrixResponse {
	digits := m.Digits
	return MatrixResponse{
		BirthDate: m.Birth.String(),
		Digits:    digits[:],
		Working: WorkingNumbersResponse{
			First:  m.Working.First,
			Second: m.Working.Second,
			Third:  m.Working.Third,
			Fourth: m.Working.Fourth,
		},
		FullArray:      m.Full.Digits(),
		SpecialNumbers: orEmpty(m.Special),
		LifePath:       m.LifePath,
		Expression:     m.Expression,
		SoulUrge:       m.SoulUrge,
		Personality:    m.Personality,
		KarmicDebts:    orEmpty(m.KarmicDebts),
		Millennial:     m.Millennial,
		DayType:        string(m.DayType),
	}
}

func FromReading(r *numerology.Reading) *ReadingResponse {
	interpretations := make([]DigitResponse, 0, len(r.Digits))
	for _, d := range r.Digits {
		interpretations = append(interpretations, DigitResponse{
			Digit: d.Digit,
			Count: d.Count,
			Key:   string(d.Key),
			Text:  d.Text,
			Found: d.Found,
		})
	}
	return &ReadingResponse{
		Matrix:          FromMatrix(r.Matrix),
		Gender:          string(r.Gender),
		Interpretations: interpretations,
		SoulTask:        r.SoulTask,
		ClanTask:        r.ClanTask,
	}
}

func FromForecast(f *numerology.YearForecast) *ForecastResponse {
	return &ForecastResponse{
		TargetYear:   f.TargetYear,
		PersonalYear: f.PersonalYear,
		Forecast:     f.Forecast,
		Focus:        f.Focus,
		Challenge:    f.Challenge,
	}
}

func FromCompatibility(c *service.Compatibility) *CompatibilityResponse {
	matches := make([]string, 0, len(c.Result.Matches))
	for _, d := range c.Result.Matches {
		matches = append(matches, string(d))
	}
	return &CompatibilityResponse{
		Score:          c.Result.Score,
		Level:          string(c.Result.Level),
		Recommendation: c.Result.Recommendation,
		Matches:        matches,
		First:          FromMatrix(c.First),
		Second:         FromMatrix(c.Second),
	}
}

func FromProfile(p *models.Profile) *ProfileResponse {
	return &ProfileResponse{
		UserID:    p.UserID.String(),
		BirthDate: p.BirthDate,
		Gender:    string(p.Gender),
		UpdatedAt: p.UpdatedAt,
	}
}

func orEmpty(s []int) []int {
	if s == nil {
		return []int{}
	}
	return s
}
