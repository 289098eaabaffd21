package profile

import (
	"fmt"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
)

type TestContext interface {
	PUT(path string, body any) error
	GET(path string) error
	SetVar(name, value string)
}

// RegisterSteps registers stored profile steps
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &profileSteps{tc: tc}
	ctx.Step(`^a new user "([^"]*)"$`, steps.newUser)
	ctx.Step(`^"([^"]*)" saves birth date "([^"]*)"$`, steps.saveProfile)
	ctx.Step(`^"([^"]*)" saves birth date "([^"]*)" as "([^"]*)"$`, steps.saveProfileWithGender)
	ctx.Step(`^I fetch the profile of "([^"]*)"$`, steps.getProfile)
	ctx.Step(`^I request the stored matrix of "([^"]*)"$`, steps.storedMatrix)
	ctx.Step(`^I request the stored forecast of "([^"]*)" in (\d+)$`, steps.storedForecast)
	ctx.Step(`^I compare users "([^"]*)" and "([^"]*)"$`, steps.compareUsers)
}

type profileSteps struct {
	tc TestContext
}

// newUser binds name to a fresh user id so scenarios never share state.
func (s *profileSteps) newUser(name string) error {
	s.tc.SetVar(name, uuid.NewString())
	return nil
}

func (s *profileSteps) saveProfile(name, date string) error {
	return s.tc.PUT("/profiles/{"+name+"}", map[string]any{"birth_date": date})
}

func (s *profileSteps) saveProfileWithGender(name, date, gender string) error {
	return s.tc.PUT("/profiles/{"+name+"}", map[string]any{"birth_date": date, "gender": gender})
}

func (s *profileSteps) getProfile(name string) error {
	return s.tc.GET("/profiles/{" + name + "}")
}

func (s *profileSteps) storedMatrix(name string) error {
	return s.tc.GET("/profiles/{" + name + "}/matrix")
}

func (s *profileSteps) storedForecast(name string, year int) error {
	return s.tc.GET(fmt.Sprintf("/profiles/{%s}/forecast?year=%d", name, year))
}

func (s *profileSteps) compareUsers(first, second string) error {
	return s.tc.GET("/compatibility/{" + first + "}/{" + second + "}")
}
