package steps

import (
	"net/http"
)

func (fc *FeatureContext) iStartAProfilingSession() error {
	response, err := fc.apiDriver.StartProfilingSession()
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) aProfilingSessionHasBeenStarted() error {
	fc.require.NoError(fc.iStartAProfilingSession())
	fc.require.Equal(http.StatusCreated, fc.response.StatusCode)
	data := fc.decodeResponse()
	fc.sessionID = data["id"].(string)
	return nil
}

func (fc *FeatureContext) saveStep(step string, payload any) error {
	response, err := fc.apiDriver.SaveProfilingStep(fc.sessionID, step, payload)
	if err != nil {
		return err
	}
	fc.response = response
	if response.StatusCode == http.StatusOK {
		fc.decodeResponse()
	}
	return nil
}

func (fc *FeatureContext) iFillThePersonalInfoOfBornOn(displayName, birthdate string) error {
	return fc.saveStep("PERSONAL_INFO", map[string]any{
		"display_name": displayName,
		"sex":          "MALE",
		"birthdate":    birthdate,
		"civil_status": "MARRIED",
	})
}

func (fc *FeatureContext) iFillTheAddressInPurok(purok string) error {
	return fc.saveStep("ADDRESS", address(purok))
}

func (fc *FeatureContext) iFillANewHousehold() error {
	return fc.saveStep("HOUSEHOLD", map[string]any{
		"tenure":          "RENTED",
		"toilet_facility": "SANITARY",
		"monthly_income":  "9000",
	})
}

func (fc *FeatureContext) iChooseTheFamilyPath(path string) error {
	return fc.saveStep("FAMILY_PATH", map[string]any{"path": path})
}

func (fc *FeatureContext) iChooseToStartTheFamilyAs(name, role string) error {
	return fc.saveStep("FAMILY_PATH", map[string]any{
		"path":        "NEW_FAMILY",
		"family_name": name,
		"role":        role,
	})
}

// iAddTheMemberAs resends the whole member list collected so far.
func (fc *FeatureContext) iAddTheMemberAs(displayName, role string) error {
	members := []any{}
	if draft, ok := fc.responseData["draft"].(map[string]any); ok {
		if composition, ok := draft["composition"].(map[string]any); ok {
			if existing, ok := composition["members"].([]any); ok {
				members = existing
			}
		}
	}

	members = append(members, map[string]any{
		"display_name": displayName,
		"sex":          "FEMALE",
		"birthdate":    "2015-06-01",
		"role":         role,
	})
	return fc.saveStep("FAMILY_COMPOSITION", map[string]any{"members": members})
}

func (fc *FeatureContext) iRecordABloodPressureOf(systolic, diastolic int) error {
	return fc.saveStep("HEALTH", map[string]any{
		"ncd": map[string]any{
			"assessed_on": "2026-03-01",
			"height_cm":   165,
			"weight_kg":   70,
			"systolic":    systolic,
			"diastolic":   diastolic,
		},
	})
}

func (fc *FeatureContext) move(direction string) error {
	response, err := fc.apiDriver.MoveProfilingSession(fc.sessionID, direction)
	if err != nil {
		return err
	}
	fc.response = response
	if response.StatusCode == http.StatusOK {
		fc.decodeResponse()
	}
	return nil
}

func (fc *FeatureContext) iGoToTheNextStep() error {
	return fc.move("next")
}

func (fc *FeatureContext) iGoBack() error {
	return fc.move("back")
}

func (fc *FeatureContext) iSubmitTheProfilingSession() error {
	response, err := fc.apiDriver.SubmitProfilingSession(fc.sessionID)
	if err != nil {
		return err
	}
	fc.response = response
	if response.StatusCode == http.StatusOK {
		fc.decodeResponse()
	}
	return nil
}

func (fc *FeatureContext) theSessionShouldBeAtStep(step string) error {
	fc.require.Equal(step, fc.responseData["current_step"])
	return nil
}

func (fc *FeatureContext) theSessionShouldNotShowTheStep(step string) error {
	visible, ok := fc.responseData["visible_steps"].([]any)
	fc.require.True(ok, "visible_steps should be a list")
	fc.require.NotContains(visible, step)
	return nil
}

func (fc *FeatureContext) theSessionShouldBe(status string) error {
	fc.require.Equal(status, fc.responseData["status"])
	return nil
}

func (fc *FeatureContext) resources() map[string]any {
	resources, ok := fc.responseData["resources"].(map[string]any)
	fc.require.True(ok, "resources should be present")
	return resources
}

func (fc *FeatureContext) theSessionShouldReferenceTheCreatedRecords() error {
	resources := fc.resources()
	fc.require.NotEmpty(resources["resident_id"])
	fc.require.NotEmpty(resources["household_id"])
	fc.require.NotEmpty(resources["family_id"])

	fc.residentID = resources["resident_id"].(string)
	fc.householdID = resources["household_id"].(string)
	fc.familyID = resources["family_id"].(string)

	response, err := fc.apiDriver.GetResident(fc.residentID)
	fc.require.NoError(err)
	defer response.Body.Close()
	fc.require.Equal(http.StatusOK, response.StatusCode)
	return nil
}

func (fc *FeatureContext) theCreatedFamilyShouldHaveMembers(count int) error {
	members, _ := fc.resources()["member_ids"].([]any)
	// the registrant is a member but not listed among the created members
	fc.require.Len(members, count-1)
	return nil
}
