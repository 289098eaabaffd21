package numerology

import (
	"fmt"
	"strings"
)

// NoInterpretation is returned when a key has no table entry.
const NoInterpretation = "—"

// Gender selects between the variants of a gendered entry.
type Gender string

const (
	GenderUnspecified Gender = ""
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
)

// ParseGender accepts "male", "female" or an empty string.
func ParseGender(s string) (Gender, error) {
	switch g := Gender(strings.ToLower(strings.TrimSpace(s))); g {
	case GenderUnspecified, GenderMale, GenderFemale:
		return g, nil
	default:
		return GenderUnspecified, fmt.Errorf("unknown gender %q", s)
	}
}

// Entry is one interpretation. Either Text is set, or both Male and Female.
type Entry struct {
	Text   string
	Male   string
	Female string
}

// NeutralEntry builds an entry that reads the same for everyone.
func NeutralEntry(text string) Entry {
	return Entry{Text: text}
}

// GenderedEntry builds an entry with separate male and female texts.
func GenderedEntry(male, female string) Entry {
	return Entry{Male: male, Female: female}
}

// Gendered reports whether the entry carries male/female variants.
func (e Entry) Gendered() bool {
	return e.Male != "" || e.Female != ""
}

// For picks the text for gender. A gendered entry read without a gender
// returns both variants, male first, separated by a blank line.
func (e Entry) For(gender Gender) string {
	if !e.Gendered() {
		return e.Text
	}
	switch gender {
	case GenderMale:
		return e.Male
	case GenderFemale:
		return e.Female
	default:
		return strings.TrimSpace(e.Male + "\n\n" + e.Female)
	}
}

// InterpretationTable maps keys to entries. Callers own it; the engine only
// reads.
type InterpretationTable map[Key]Entry

// Interpret looks up key. A missing key is not an error: it returns
// NoInterpretation and false.
func Interpret(key Key, table InterpretationTable, gender Gender) (string, bool) {
	entry, ok := table[key]
	if !ok {
		return NoInterpretation, false
	}
	return entry.For(gender), true
}

// TaskTable maps a working number to its karmic task text.
type TaskTable map[int]string

// ForecastTable maps a personal year number to its forecast text.
type ForecastTable map[int]string

// Tables groups the read-only texts an engine reads from.
type Tables struct {
	Interpretations InterpretationTable
	Tasks           TaskTable
	Forecasts       ForecastTable
}
