package steps

func (fc *FeatureContext) iSearchTheLookupFor(category, query string) error {
	response, err := fc.apiDriver.SearchLookup(category, query)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) theLookupResultsShouldIncludeTheCode(code string) error {
	data := fc.decodeResponse()
	items, ok := data["data"].([]any)
	fc.require.True(ok, "data should be a list")

	for _, item := range items {
		if item.(map[string]any)["code"] == code {
			return nil
		}
	}
	fc.require.Failf("code not found", "%s not in %v", code, items)
	return nil
}
