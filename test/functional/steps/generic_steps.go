package steps

import (
	"time"
)

func (fc *FeatureContext) waitForDuration(duration string) error {
	d, err := time.ParseDuration(duration)
	if err != nil {
		return err
	}

	time.Sleep(d)
	return nil
}

func (fc *FeatureContext) theResponseStatusCodeShouldBe(code int) error {
	fc.require.Equal(code, fc.response.StatusCode, "Unexpected status code")
	return nil
}

func (fc *FeatureContext) theResponseShouldReportTheFieldAs(field, rule string) error {
	data := fc.decodeResponse()
	fields, ok := data["fields"].(map[string]any)
	fc.require.True(ok, "fields should be present")
	fc.require.Equal(rule, fields[field])
	return nil
}
