package steps

func (fc *FeatureContext) iCallTheHealthzEndpoint() error {
	response, err := fc.apiDriver.GetHealthz()
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) theResponseShouldContainStatusInformation() error {
	data := fc.decodeResponse()

	fc.require.Equal("success", data["status"])
	fc.require.Contains(data, "node")
	fc.require.NotEmpty(data["uptime"])
	return nil
}
