package e2e

import (
	"github.com/cucumber/godog"

	"github.com/deidexdd-hash/mysticbot/e2e/steps/common"
	"github.com/deidexdd-hash/mysticbot/e2e/steps/matrix"
	"github.com/deidexdd-hash/mysticbot/e2e/steps/profile"
)

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	// Register common steps (service health, status and field assertions)
	common.RegisterSteps(ctx, tc)

	// Register anonymous matrix, forecast and compatibility steps
	matrix.RegisterSteps(ctx, tc)

	// Register stored profile steps
	profile.RegisterSteps(ctx, tc)
}
