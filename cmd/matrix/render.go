package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/deidexdd-hash/mysticbot/internal/matrix/service"
	"github.com/deidexdd-hash/mysticbot/internal/numerology"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func joinInts(ns []int) string {
	if len(ns) == 0 {
		return "none"
	}
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}

func renderMatrix(b *strings.Builder, m numerology.Matrix) {
	digits := m.Digits
	fmt.Fprintf(b, "Birth date:      %s (%s day)\n", m.Birth, m.DayType)
	fmt.Fprintf(b, "Digits:          %s\n", joinInts(digits[:]))
	fmt.Fprintf(b, "Working numbers: %d %d %d %d\n", m.Working.First, m.Working.Second, m.Working.Third, m.Working.Fourth)
	fmt.Fprintf(b, "Full array:      %s\n", joinInts(m.Full.Digits()))
	fmt.Fprintf(b, "Life path %d, expression %d, soul urge %d, personality %d\n",
		m.LifePath, m.Expression, m.SoulUrge, m.Personality)
	fmt.Fprintf(b, "Special numbers: %s\n", joinInts(m.Special))
	fmt.Fprintf(b, "Karmic debts:    %s\n", joinInts(m.KarmicDebts))
}

func renderReading(w io.Writer, r *numerology.Reading) error {
	var b strings.Builder
	renderMatrix(&b, r.Matrix)
	b.WriteString("\n")
	for _, d := range r.Digits {
		fmt.Fprintf(&b, "%d [%s]\n%s\n\n", d.Digit, d.Key, d.Text)
	}
	if r.SoulTask != "" {
		fmt.Fprintf(&b, "Soul task: %s\n", r.SoulTask)
	}
	if r.ClanTask != "" {
		fmt.Fprintf(&b, "Clan task: %s\n", r.ClanTask)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func renderForecast(w io.Writer, f *numerology.YearForecast) error {
	_, err := fmt.Fprintf(w, "Year %d, personal year %d\n%s\nFocus: %s\nChallenge: %s\n",
		f.TargetYear, f.PersonalYear, f.Forecast, f.Focus, f.Challenge)
	return err
}

func renderCompatibility(w io.Writer, c *service.Compatibility) error {
	var b strings.Builder
	renderMatrix(&b, c.First)
	b.WriteString("\n")
	renderMatrix(&b, c.Second)

	matches := make([]string, 0, len(c.Result.Matches))
	for _, d := range c.Result.Matches {
		matches = append(matches, string(d))
	}
	if len(matches) == 0 {
		matches = append(matches, "none")
	}
	fmt.Fprintf(&b, "\nScore: %d (%s)\nMatches: %s\n%s\n",
		c.Result.Score, c.Result.Level, strings.Join(matches, ", "), c.Result.Recommendation)

	_, err := io.WriteString(w, b.String())
	return err
}
