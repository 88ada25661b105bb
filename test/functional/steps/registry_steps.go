package steps

import (
	"net/http"
	"strings"
)

func address(purok string) map[string]any {
	return map[string]any{
		"purok":        purok,
		"street":       "Rizal St.",
		"barangay":     "San Isidro",
		"municipality": "Tanauan",
		"province":     "Batangas",
		"region":       "IV-A",
		"zip_code":     "4232",
	}
}

func resident(displayName, birthdate string) map[string]any {
	body := map[string]any{
		"display_name": displayName,
		"sex":          "FEMALE",
		"civil_status": "MARRIED",
		"address":      address("Purok 1"),
	}
	if birthdate != "" {
		body["birthdate"] = birthdate
	}
	return body
}

func (fc *FeatureContext) iCreateAHouseholdInPurok(purok string) error {
	response, err := fc.apiDriver.CreateHousehold(map[string]any{
		"tenure":          "OWNED",
		"toilet_facility": "SANITARY",
		"monthly_income":  "15000.00",
		"address":         address(purok),
	})
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) aHouseholdExistsInPurok(purok string) error {
	fc.require.NoError(fc.iCreateAHouseholdInPurok(purok))
	fc.require.Equal(http.StatusCreated, fc.response.StatusCode)
	return fc.theResponseShouldContainAHouseholdNumber()
}

func (fc *FeatureContext) theResponseShouldContainAHouseholdNumber() error {
	data := fc.decodeResponse()
	fc.require.NotEmpty(data["id"])
	fc.require.Regexp(`^HH-\d{4}-\d{6}$`, data["number"])
	fc.householdID = data["id"].(string)
	return nil
}

func (fc *FeatureContext) iRegisterTheResidentBornOn(displayName, birthdate string) error {
	body := resident(displayName, birthdate)
	if fc.householdID != "" {
		body["household_id"] = fc.householdID
	}
	response, err := fc.apiDriver.CreateResident(body)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) iRegisterTheResidentWithoutABirthdate(displayName string) error {
	return fc.iRegisterTheResidentBornOn(displayName, "")
}

func (fc *FeatureContext) aResidentBornOnExists(displayName, birthdate string) error {
	fc.require.NoError(fc.iRegisterTheResidentBornOn(displayName, birthdate))
	fc.require.Equal(http.StatusCreated, fc.response.StatusCode)
	return fc.theResponseShouldContainTheResident(displayName)
}

func (fc *FeatureContext) theResponseShouldContainTheResident(displayName string) error {
	data := fc.decodeResponse()
	fc.require.NotEmpty(data["id"])
	fc.require.Equal(strings.ToUpper(displayName), data["display_name"])
	fc.residentID = data["id"].(string)
	return nil
}

func (fc *FeatureContext) iLookForDuplicatesOfBornOn(displayName, birthdate string) error {
	response, err := fc.apiDriver.FindDuplicates(resident(displayName, birthdate))
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) theDuplicateCandidatesShouldIncludeTheResident() error {
	var candidates []map[string]any
	fc.require.NoError(fc.decodeBody(fc.response.Body, &candidates))

	for _, candidate := range candidates {
		if candidate["resident"].(map[string]any)["id"] == fc.residentID {
			fc.require.Greater(candidate["score"].(float64), 0.0)
			return nil
		}
	}
	fc.require.Failf("resident not among candidates", "%s not in %v", fc.residentID, candidates)
	return nil
}

func (fc *FeatureContext) iCreateTheFamilyHeadedByTheResident(name string) error {
	response, err := fc.apiDriver.CreateFamily(map[string]any{
		"household_id":     fc.householdID,
		"family_name":      name,
		"head_resident_id": fc.residentID,
		"members": []map[string]any{
			{"resident_id": fc.residentID, "role": "MOTHER"},
		},
	})
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) theFamilyShouldListTheResidentAs(role string) error {
	data := fc.decodeResponse()
	fc.familyID = data["id"].(string)

	members, ok := data["members"].([]any)
	fc.require.True(ok, "members should be a list")
	for _, member := range members {
		m := member.(map[string]any)
		if m["resident_id"] == fc.residentID {
			fc.require.Equal(role, m["role"])
			return nil
		}
	}
	fc.require.Failf("resident not in family", "%s not in %v", fc.residentID, members)
	return nil
}

func (fc *FeatureContext) iExportTheHouseholdMasterlist() error {
	response, err := fc.apiDriver.ExportHouseholds()
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) theResponseShouldBeAWorkbook() error {
	defer fc.response.Body.Close()
	fc.require.Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", fc.response.Header.Get("Content-Type"))
	return nil
}
