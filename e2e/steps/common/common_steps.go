package common

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cucumber/godog"
)

// TestContext is the subset of the e2e context the common steps need.
type TestContext interface {
	GET(path string) error
	GetLastResponseStatus() int
	GetLastResponseBody() []byte
	GetResponseField(path string) (any, error)
}

// RegisterSteps registers service health and response assertion steps
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &commonSteps{tc: tc}
	ctx.Step(`^the service is running$`, steps.serviceIsRunning)
	ctx.Step(`^the response status should be (\d+)$`, steps.responseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should equal "([^"]*)"$`, steps.fieldShouldEqual)
	ctx.Step(`^the response field "([^"]*)" should equal (\d+)$`, steps.fieldShouldEqualNumber)
	ctx.Step(`^the response field "([^"]*)" should be true$`, steps.fieldShouldBeTrue)
	ctx.Step(`^the response field "([^"]*)" should be false$`, steps.fieldShouldBeFalse)
	ctx.Step(`^the response field "([^"]*)" should contain (\d+)$`, steps.fieldShouldContain)
	ctx.Step(`^the error code should be "([^"]*)"$`, steps.errorCodeShouldBe)
}

type commonSteps struct {
	tc TestContext
}

func (s *commonSteps) serviceIsRunning() error {
	if err := s.tc.GET("/healthz"); err != nil {
		return fmt.Errorf("service not reachable: %w", err)
	}
	if status := s.tc.GetLastResponseStatus(); status != 200 {
		return fmt.Errorf("health check returned %d", status)
	}
	return nil
}

func (s *commonSteps) responseStatusShouldBe(expected int) error {
	if actual := s.tc.GetLastResponseStatus(); actual != expected {
		return fmt.Errorf("expected status %d, got %d: %s", expected, actual, s.tc.GetLastResponseBody())
	}
	return nil
}

func (s *commonSteps) fieldShouldEqual(path, expected string) error {
	value, err := s.tc.GetResponseField(path)
	if err != nil {
		return err
	}
	if fmt.Sprint(value) != expected {
		return fmt.Errorf("%s: expected %q, got %v", path, expected, value)
	}
	return nil
}

func (s *commonSteps) fieldShouldEqualNumber(path string, expected int) error {
	n, err := s.number(path)
	if err != nil {
		return err
	}
	if n != expected {
		return fmt.Errorf("%s: expected %d, got %d", path, expected, n)
	}
	return nil
}

func (s *commonSteps) fieldShouldBeTrue(path string) error {
	return s.boolField(path, true)
}

func (s *commonSteps) fieldShouldBeFalse(path string) error {
	return s.boolField(path, false)
}

func (s *commonSteps) boolField(path string, expected bool) error {
	value, err := s.tc.GetResponseField(path)
	if err != nil {
		return err
	}
	b, ok := value.(bool)
	if !ok || b != expected {
		return fmt.Errorf("%s: expected %t, got %v", path, expected, value)
	}
	return nil
}

func (s *commonSteps) fieldShouldContain(path string, expected int) error {
	value, err := s.tc.GetResponseField(path)
	if err != nil {
		return err
	}
	items, ok := value.([]any)
	if !ok {
		return fmt.Errorf("%s: expected an array, got %v", path, value)
	}
	for _, item := range items {
		if f, ok := item.(float64); ok && int(f) == expected {
			return nil
		}
	}
	return fmt.Errorf("%s: %v does not contain %d", path, items, expected)
}

func (s *commonSteps) errorCodeShouldBe(expected string) error {
	var body map[string]string
	if err := json.Unmarshal(s.tc.GetLastResponseBody(), &body); err != nil {
		return fmt.Errorf("error body is not JSON: %w", err)
	}
	if body["error"] != expected {
		return fmt.Errorf("expected error code %q, got %q", expected, body["error"])
	}
	return nil
}

func (s *commonSteps) number(path string) (int, error) {
	value, err := s.tc.GetResponseField(path)
	if err != nil {
		return 0, err
	}
	f, ok := value.(float64)
	if !ok {
		return 0, fmt.Errorf("%s: expected a number, got %v", path, value)
	}
	return strconv.Atoi(strconv.FormatFloat(f, 'f', 0, 64))
}
