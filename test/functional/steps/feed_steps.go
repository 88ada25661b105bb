package steps

import (
	"strings"
	"time"
)

type recordChanged struct {
	Entity string `json:"entity"`
	ID     string `json:"id"`
	Action string `json:"action"`
}

func (fc *FeatureContext) iFollowTheRecordFeedFor(entities string) error {
	conn, err := fc.apiDriver.ConnectRecordFeed(strings.Split(entities, ",")...)
	if err != nil {
		return err
	}
	fc.feed = conn
	// lets the hub register the client before anything is published
	time.Sleep(100 * time.Millisecond)
	return nil
}

func (fc *FeatureContext) theFeedShouldAnnounce(entity, action string) error {
	fc.require.NotNil(fc.feed, "record feed is not connected")

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		fc.feed.SetReadDeadline(deadline)
		var change recordChanged
		if err := fc.feed.ReadJSON(&change); err != nil {
			return err
		}
		if change.Entity == entity && change.Action == action {
			return nil
		}
	}

	fc.require.Failf("no matching record change", "%s %s", action, entity)
	return nil
}

func (fc *FeatureContext) closeFeed() {
	if fc.feed != nil {
		fc.feed.Close()
		fc.feed = nil
	}
}
