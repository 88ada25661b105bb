package async_test

import (
	"context"

	"profiling-server/internal/infra/async"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/goleak"
)

var _ = Describe("Local Broker", func() {
	var (
		broker *async.LocalBroker
		topic  async.BrokerTopicName
		ctx    context.Context
		leaks  goleak.Option
	)

	BeforeEach(func() {
		leaks = goleak.IgnoreCurrent()
		broker = async.NewLocalBroker()
		topic = "records"
		ctx = context.TODO()
	})

	AfterEach(func() {
		broker.Stop()
		goleak.VerifyNone(GinkgoT(), leaks)
	})

	When("nobody listens on a topic", func() {
		It("reports the topic as not found", func() {
			Expect(broker.Publish(ctx, topic, async.BrokerMessage{})).To(MatchError(async.ErrTopicNotFound))
		})
	})

	When("several subscribers listen", func() {
		It("delivers the message to each of them", func() {
			first, _ := broker.Subscribe(topic)
			second, _ := broker.Subscribe(topic)

			Expect(broker.Publish(ctx, topic, async.BrokerMessage{Event: "created", Value: "resident-1"})).To(Succeed())

			var got async.BrokerMessage
			Eventually(first.Receiver).Should(Receive(&got))
			Expect(got.Event).To(Equal("created"))
			Expect(got.Value).To(Equal("resident-1"))
			Eventually(second.Receiver).Should(Receive())
		})
	})

	When("a subscriber leaves", func() {
		It("closes its channel and stops delivering to it", func() {
			stay, _ := broker.Subscribe(topic)
			leave, _ := broker.Subscribe(topic)

			Expect(broker.Unsubscribe(topic, leave)).To(Succeed())
			Eventually(leave.Receiver).Should(BeClosed())

			Expect(broker.Publish(ctx, topic, async.BrokerMessage{Event: "updated"})).To(Succeed())
			Eventually(stay.Receiver).Should(Receive())

			Expect(broker.Unsubscribe(topic, leave)).To(MatchError(async.ErrSubscriptorNotFound))
		})

		It("forgets the topic once the last subscriber leaves", func() {
			only, _ := broker.Subscribe(topic)
			Expect(broker.Unsubscribe(topic, only)).To(Succeed())

			Expect(broker.Publish(ctx, topic, async.BrokerMessage{})).To(MatchError(async.ErrTopicNotFound))
			Expect(broker.Unsubscribe(topic, only)).To(MatchError(async.ErrTopicNotFound))
		})
	})

	When("a subscriber does not drain its channel", func() {
		It("never blocks the publisher", func() {
			slow, _ := broker.Subscribe(topic)

			for range 500 {
				Expect(broker.Publish(ctx, topic, async.BrokerMessage{Event: "deleted"})).To(Succeed())
			}
			Expect(len(slow.Receiver)).To(Equal(cap(slow.Receiver)))
		})
	})

	When("the broker stops", func() {
		It("closes every subscription and refuses new ones", func() {
			subscription, _ := broker.Subscribe(topic)

			broker.Stop()

			Eventually(subscription.Receiver).Should(BeClosed())
			_, err := broker.Subscribe(topic)
			Expect(err).To(MatchError(async.ErrBrokerStopped))
		})
	})
})
