package matrix

import (
	"fmt"

	"github.com/cucumber/godog"
)

type TestContext interface {
	POST(path string, body any) error
	GetResponseField(path string) (any, error)
}

// RegisterSteps registers anonymous matrix, forecast and compatibility steps
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &matrixSteps{tc: tc}
	ctx.Step(`^I request the matrix for "([^"]*)"$`, steps.requestMatrix)
	ctx.Step(`^I request the matrix for "([^"]*)" as "([^"]*)"$`, steps.requestMatrixWithGender)
	ctx.Step(`^I request the forecast for "([^"]*)" in (\d+)$`, steps.requestForecast)
	ctx.Step(`^I compare "([^"]*)" with "([^"]*)"$`, steps.requestCompatibility)
	ctx.Step(`^the interpretation for digit (\d+) should have key "([^"]*)"$`, steps.interpretationKey)
}

type matrixSteps struct {
	tc TestContext
}

func (s *matrixSteps) requestMatrix(date string) error {
	return s.tc.POST("/matrix", map[string]any{"birth_date": date})
}

func (s *matrixSteps) requestMatrixWithGender(date, gender string) error {
	return s.tc.POST("/matrix", map[string]any{"birth_date": date, "gender": gender})
}

func (s *matrixSteps) requestForecast(date string, year int) error {
	return s.tc.POST("/forecast", map[string]any{"birth_date": date, "year": year})
}

func (s *matrixSteps) requestCompatibility(first, second string) error {
	return s.tc.POST("/compatibility", map[string]any{"first": first, "second": second})
}

func (s *matrixSteps) interpretationKey(digit int, key string) error {
	value, err := s.tc.GetResponseField("interpretations")
	if err != nil {
		return err
	}
	items, ok := value.([]any)
	if !ok {
		return fmt.Errorf("interpretations: expected an array, got %v", value)
	}
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if d, _ := entry["digit"].(float64); int(d) == digit {
			if entry["key"] != key {
				return fmt.Errorf("digit %d: expected key %q, got %v", digit, key, entry["key"])
			}
			return nil
		}
	}
	return fmt.Errorf("digit %d not in interpretations", digit)
}
