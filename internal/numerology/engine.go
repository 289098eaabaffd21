package numerology

import (
	"strconv"
	"strings"
)

// karmicDebtNumbers are searched for as substrings of the full digit array.
var karmicDebtNumbers = [...]int{13, 14, 16, 19}

// DayType separates single-digit days from two-digit days.
type DayType string

const (
	DayTypeBasic    DayType = "basic"
	DayTypeExtended DayType = "extended"
)

// Engine runs the psymatrix pipeline under a fixed set of policies.
type Engine struct {
	reduction     ReductionPolicy
	overflow      OverflowPolicy
	defaultGender Gender
}

// Option configures an Engine.
type Option func(*Engine)

// WithReduction sets how second, fourth and derived numbers are reduced.
func WithReduction(p ReductionPolicy) Option {
	return func(e *Engine) {
		e.reduction = p
	}
}

// WithOverflow sets the key shape for digits occurring more than five times.
func WithOverflow(p OverflowPolicy) Option {
	return func(e *Engine) {
		e.overflow = p
	}
}

// WithDefaultGender sets the gender used by Read when the caller passes none.
func WithDefaultGender(g Gender) Option {
	return func(e *Engine) {
		e.defaultGender = g
	}
}

// New returns an engine with single-pass reduction and subtract-5 overflow
// unless overridden.
func New(opts ...Option) *Engine {
	e := &Engine{reduction: ReduceSingle, overflow: OverflowSubtract}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Reduction returns the configured reduction policy.
func (e *Engine) Reduction() ReductionPolicy {
	return e.reduction
}

// Overflow returns the configured overflow policy.
func (e *Engine) Overflow() OverflowPolicy {
	return e.overflow
}

// Matrix is every number derived from one birth date.
type Matrix struct {
	Birth       BirthDate
	Digits      DigitSequence
	Working     WorkingNumbers
	Full        FullDigitArray
	Special     SpecialNumberSet
	LifePath    int
	Expression  int
	SoulUrge    int
	Personality int
	KarmicDebts []int
	Millennial  bool
	DayType     DayType
}

// Calculate parses date and builds its matrix.
func (e *Engine) Calculate(date string) (Matrix, error) {
	birth, err := ParseBirthDate(date)
	if err != nil {
		return Matrix{}, err
	}
	return e.CalculateFor(birth), nil
}

// CalculateFor builds the matrix of an already validated birth date.
func (e *Engine) CalculateFor(birth BirthDate) Matrix {
	digits := birth.Digits()
	wn := CalculateWorkingNumbers(digits, birth.Year, e.reduction)
	full := BuildFullArray(digits, wn, birth.Year)

	dayType := DayTypeExtended
	if birth.Day <= 9 {
		dayType = DayTypeBasic
	}

	return Matrix{
		Birth:       birth,
		Digits:      digits,
		Working:     wn,
		Full:        full,
		Special:     DetectSpecialNumbers(wn),
		LifePath:    e.reduction.Reduce(birth.Day + birth.Month + birth.Year),
		Expression:  e.reduction.Reduce(digits.Sum()),
		SoulUrge:    e.reduction.Reduce(birth.Month + birth.Year),
		Personality: e.reduction.Reduce(birth.Day + birth.Month),
		KarmicDebts: karmicDebts(full),
		Millennial:  birth.Millennial(),
		DayType:     dayType,
	}
}

func karmicDebts(full FullDigitArray) []int {
	joined := full.String()
	debts := []int{}
	for _, n := range karmicDebtNumbers {
		if strings.Contains(joined, strconv.Itoa(n)) {
			debts = append(debts, n)
		}
	}
	return debts
}

// DigitReading is the interpretation of one digit of the matrix.
type DigitReading struct {
	Digit int
	Count int
	Key   Key
	Text  string
	Found bool
}

// Reading is a matrix resolved against the text tables.
type Reading struct {
	Matrix   Matrix
	Gender   Gender
	Digits   []DigitReading
	SoulTask string
	ClanTask string
}

// Read resolves digits 1..9 of m against tables. The soul task is keyed by
// second and the clan task by fourth; both are empty when absent.
func (e *Engine) Read(m Matrix, tables Tables, gender Gender) Reading {
	if gender == GenderUnspecified {
		gender = e.defaultGender
	}

	readings := make([]DigitReading, 0, 9)
	for digit := 1; digit <= 9; digit++ {
		count := m.Full.Count(digit)
		key := KeyForCount(digit, count, e.overflow)
		text, found := Interpret(key, tables.Interpretations, gender)
		readings = append(readings, DigitReading{
			Digit: digit,
			Count: count,
			Key:   key,
			Text:  text,
			Found: found,
		})
	}

	return Reading{
		Matrix:   m,
		Gender:   gender,
		Digits:   readings,
		SoulTask: tables.Tasks[m.Working.Second],
		ClanTask: tables.Tasks[m.Working.Fourth],
	}
}

// Forecast computes the personal year of birth in targetYear.
func (e *Engine) Forecast(birth BirthDate, targetYear int, table ForecastTable) YearForecast {
	personal := PersonalYear(birth.Day, birth.Month, targetYear, e.reduction)
	return ForecastFor(targetYear, personal, table)
}

// Compatibility scores two matrices. See Compare.
func (e *Engine) Compatibility(a, b Matrix) CompatibilityResult {
	return Compare(a, b)
}
