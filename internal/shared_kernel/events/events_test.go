package events_test

import (
	"context"
	"time"

	"profiling-server/internal/infra/async"
	"profiling-server/internal/shared_kernel/domain"
	"profiling-server/internal/shared_kernel/events"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BrokerNotifier", func() {
	var broker *async.LocalBroker
	var notifier *events.BrokerNotifier

	BeforeEach(func() {
		broker = async.NewLocalBroker()
		notifier = events.NewBrokerNotifier(broker)
	})

	AfterEach(func() {
		broker.Stop()
	})

	It("delivers the change to subscribers", func() {
		subscription, err := broker.Subscribe(events.RecordsTopic)
		Expect(err).NotTo(HaveOccurred())

		notifier.RecordChanged(context.Background(), "household", domain.ID("hh-1"), events.ActionUpdated)

		var msg async.BrokerMessage
		Eventually(subscription.Receiver, time.Second).Should(Receive(&msg))
		Expect(msg.Event).To(Equal(events.RecordChangedEvent))

		change, ok := msg.Value.(events.RecordChanged)
		Expect(ok).To(BeTrue())
		Expect(change.Entity).To(Equal("household"))
		Expect(change.ID).To(Equal("hh-1"))
		Expect(change.Action).To(Equal(events.ActionUpdated))
		Expect(change.OccurredAt).NotTo(BeZero())
	})

	It("does nothing when nobody listens", func() {
		Expect(func() {
			notifier.RecordChanged(context.Background(), "resident", domain.ID("r-1"), events.ActionCreated)
		}).NotTo(Panic())
	})
})
