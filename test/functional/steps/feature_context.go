package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"profiling-server/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

type PaginatedResponse[T any] struct {
	Data       []T `json:"data"`
	Pagination struct {
		Total  int `json:"total"`
		Limit  int `json:"limit"`
		Offset int `json:"offset"`
	} `json:"pagination"`
}

type FeatureContext struct {
	apiDriver        *driver.APIDriver
	response         *http.Response
	responseData     map[string]any
	responseListData []map[string]any
	residentID       string
	householdID      string
	familyID         string
	sessionID        string
	feed             *websocket.Conn
	require          *require.Assertions
	t                godog.TestingT
}

func NewFeatureContext() *FeatureContext {
	return &FeatureContext{
		apiDriver: driver.NewAPIDriver("http://localhost:3000"),
	}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Step(`^wait for (.*)$`, fc.waitForDuration)
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)
	ctx.Then(`^the response should report the field "([^"]*)" as "([^"]*)"$`, fc.theResponseShouldReportTheFieldAs)

	// Health steps
	ctx.When(`^I call the healthz endpoint$`, fc.iCallTheHealthzEndpoint)
	ctx.Then(`^the response should contain status information$`, fc.theResponseShouldContainStatusInformation)

	// Lookup steps
	ctx.When(`^I search the "([^"]*)" lookup for "([^"]*)"$`, fc.iSearchTheLookupFor)
	ctx.Then(`^the lookup results should include the code "([^"]*)"$`, fc.theLookupResultsShouldIncludeTheCode)

	// Registry steps
	ctx.Given(`^a household exists in purok "([^"]*)"$`, fc.aHouseholdExistsInPurok)
	ctx.When(`^I create a household in purok "([^"]*)"$`, fc.iCreateAHouseholdInPurok)
	ctx.Then(`^the response should contain a household number$`, fc.theResponseShouldContainAHouseholdNumber)
	ctx.Given(`^a resident "([^"]*)" born on "([^"]*)" exists$`, fc.aResidentBornOnExists)
	ctx.When(`^I register the resident "([^"]*)" born on "([^"]*)"$`, fc.iRegisterTheResidentBornOn)
	ctx.When(`^I register the resident "([^"]*)" without a birthdate$`, fc.iRegisterTheResidentWithoutABirthdate)
	ctx.Then(`^the response should contain the resident "([^"]*)"$`, fc.theResponseShouldContainTheResident)
	ctx.When(`^I look for duplicates of "([^"]*)" born on "([^"]*)"$`, fc.iLookForDuplicatesOfBornOn)
	ctx.Then(`^the duplicate candidates should include the resident$`, fc.theDuplicateCandidatesShouldIncludeTheResident)
	ctx.When(`^I create the family "([^"]*)" headed by the resident$`, fc.iCreateTheFamilyHeadedByTheResident)
	ctx.Then(`^the family should list the resident as "([^"]*)"$`, fc.theFamilyShouldListTheResidentAs)
	ctx.When(`^I export the household masterlist$`, fc.iExportTheHouseholdMasterlist)
	ctx.Then(`^the response should be a workbook$`, fc.theResponseShouldBeAWorkbook)

	// History steps
	ctx.When(`^I fetch the history of the resident$`, fc.iFetchTheHistoryOfTheResident)
	ctx.Then(`^the history should start with a "([^"]*)" change$`, fc.theHistoryShouldStartWithAChange)

	// Profiling steps
	ctx.Given(`^a profiling session has been started$`, fc.aProfilingSessionHasBeenStarted)
	ctx.When(`^I start a profiling session$`, fc.iStartAProfilingSession)
	ctx.When(`^I fill the personal info of "([^"]*)" born on "([^"]*)"$`, fc.iFillThePersonalInfoOfBornOn)
	ctx.When(`^I fill the address in purok "([^"]*)"$`, fc.iFillTheAddressInPurok)
	ctx.When(`^I fill a new household$`, fc.iFillANewHousehold)
	ctx.When(`^I choose the family path "([^"]*)"$`, fc.iChooseTheFamilyPath)
	ctx.When(`^I choose to start the family "([^"]*)" as "([^"]*)"$`, fc.iChooseToStartTheFamilyAs)
	ctx.When(`^I add the member "([^"]*)" as "([^"]*)"$`, fc.iAddTheMemberAs)
	ctx.When(`^I record a blood pressure of (\d+)/(\d+)$`, fc.iRecordABloodPressureOf)
	ctx.When(`^I go to the next step$`, fc.iGoToTheNextStep)
	ctx.When(`^I go back$`, fc.iGoBack)
	ctx.When(`^I submit the profiling session$`, fc.iSubmitTheProfilingSession)
	ctx.Then(`^the session should be at step "([^"]*)"$`, fc.theSessionShouldBeAtStep)
	ctx.Then(`^the session should not show the step "([^"]*)"$`, fc.theSessionShouldNotShowTheStep)
	ctx.Then(`^the session should be "([^"]*)"$`, fc.theSessionShouldBe)
	ctx.Then(`^the session should reference the created resident, household and family$`, fc.theSessionShouldReferenceTheCreatedRecords)
	ctx.Then(`^the created family should have (\d+) members$`, fc.theCreatedFamilyShouldHaveMembers)

	// Record feed steps
	ctx.Given(`^I follow the record feed for "([^"]*)"$`, fc.iFollowTheRecordFeedFor)
	ctx.Then(`^the feed should announce a "([^"]*)" "([^"]*)"$`, fc.theFeedShouldAnnounce)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		fc.closeFeed()
		return ctx, err
	})
}

func (fc *FeatureContext) reset() {
	fc.response = nil
	fc.responseData = nil
	fc.responseListData = nil
	fc.residentID = ""
	fc.householdID = ""
	fc.familyID = ""
	fc.sessionID = ""
}

func (fc *FeatureContext) decodeBody(body io.ReadCloser, target any) error {
	defer body.Close()
	return json.NewDecoder(body).Decode(target)
}

func (fc *FeatureContext) decodeResponse() map[string]any {
	var data map[string]any
	fc.require.NoError(fc.decodeBody(fc.response.Body, &data))
	fc.responseData = data
	return data
}

func (fc *FeatureContext) decodePaginatedResponse(body *http.Response) ([]map[string]any, error) {
	var paginatedResp PaginatedResponse[map[string]any]
	if err := fc.decodeBody(body.Body, &paginatedResp); err != nil {
		return nil, fmt.Errorf("failed to decode paginated response: %w", err)
	}
	return paginatedResp.Data, nil
}
