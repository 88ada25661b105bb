package steps

import (
	"net/http"
	"time"
)

// iFetchTheHistoryOfTheResident polls because the history is filled by an
// asynchronous consumer.
func (fc *FeatureContext) iFetchTheHistoryOfTheResident() error {
	deadline := time.Now().Add(3 * time.Second)
	for {
		response, err := fc.apiDriver.GetRecordHistory("resident", fc.residentID)
		if err != nil {
			return err
		}
		fc.response = response
		if response.StatusCode != http.StatusOK {
			return nil
		}

		entries, err := fc.decodePaginatedResponse(response)
		if err != nil {
			return err
		}
		fc.responseListData = entries
		if len(entries) > 0 || time.Now().After(deadline) {
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (fc *FeatureContext) theHistoryShouldStartWithAChange(action string) error {
	fc.require.NotEmpty(fc.responseListData)
	first := fc.responseListData[0]
	fc.require.Equal(action, first["action"])
	fc.require.Equal(fc.residentID, first["record_id"])
	fc.require.NotNil(first["snapshot"])
	return nil
}
