package persistence_test

import (
	"context"
	"time"

	"profiling-server/internal/history/domain"
	"profiling-server/internal/history/persistence"
	"profiling-server/internal/history/usecases"
	"profiling-server/internal/infra/pubsub"
	"profiling-server/internal/infra/replication"
	"profiling-server/internal/infra/sql"
	"profiling-server/internal/infra/utils"
	"profiling-server/internal/shared_kernel/avro"
	shared "profiling-server/internal/shared_kernel/domain"
	"profiling-server/internal/shared_kernel/events"

	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("History repository", func() {
	var (
		ctx        context.Context
		repository *persistence.SimpleHistoryRepository
	)

	BeforeEach(func() {
		ctx = context.Background()
		orm, err := sql.NewMemoryORM("history-" + utils.GenerateUUID())
		Expect(err).NotTo(HaveOccurred())

		repository, err = persistence.NewHistoryRepository(orm)
		Expect(err).NotTo(HaveOccurred())
	})

	entry := func(recordID shared.ID, version int, at time.Time) domain.Entry {
		return domain.Entry{
			ID:         domain.EntryID("resident", recordID, "UPDATED", version, at),
			Entity:     "resident",
			RecordID:   recordID,
			Action:     "UPDATED",
			Version:    version,
			Payload:    []byte(`{"id":"` + recordID.String() + `"}`),
			OccurredAt: at,
		}
	}

	It("lists the changes of one record oldest first", func() {
		now := time.Now().UTC().Truncate(time.Millisecond)
		Expect(repository.Append(ctx, entry("r-1", 2, now))).To(Succeed())
		Expect(repository.Append(ctx, entry("r-1", 1, now.Add(-time.Hour)))).To(Succeed())
		Expect(repository.Append(ctx, entry("r-2", 1, now))).To(Succeed())

		entries, total, err := repository.FindByRecord(ctx, "resident", "r-1", usecases.Pagination{Limit: 10})
		Expect(err).NotTo(HaveOccurred())
		Expect(total).To(Equal(2))
		Expect(entries[0].Version).To(Equal(1))
		Expect(entries[1].Version).To(Equal(2))
		Expect(string(entries[1].Payload)).To(MatchJSON(`{"id":"r-1"}`))
	})

	It("reports stored entries", func() {
		stored := entry("r-1", 1, time.Now().UTC())
		Expect(repository.Append(ctx, stored)).To(Succeed())

		Expect(repository.Exists(ctx, stored.ID)).To(BeTrue())
		Expect(repository.Exists(ctx, "missing")).To(BeFalse())
	})

	Context("replicating record events", func() {
		var (
			replicator *replication.Replicator
			cancel     context.CancelFunc
			stopped    chan struct{}
		)

		BeforeEach(func() {
			pubsub.GetMemoryBroker().Reset()
			replicator = replication.NewReplicator(pubsub.NewMemoryConsumerFactory("history"))
			Expect(replicator.RegisterHandler(persistence.NewRecordTopicHandler(events.TopicResidents, repository))).To(Succeed())

			var runCtx context.Context
			runCtx, cancel = context.WithCancel(ctx)
			stopped = make(chan struct{})
			go replicator.Run(runCtx, func() { close(stopped) })
		})

		AfterEach(func() {
			cancel()
			Eventually(stopped).Should(BeClosed())
		})

		It("stores each published change once", func() {
			publisher, err := pubsub.NewMemoryPublisherFactory().New(events.TopicResidents, &avro.AvroRecordEvent{})
			Expect(err).NotTo(HaveOccurred())

			event, err := avro.NewRecordEvent("resident", "r-9", "CREATED", 1, map[string]string{"id": "r-9"})
			Expect(err).NotTo(HaveOccurred())

			// the consumer subscribes asynchronously
			Eventually(func() int {
				_ = publisher.Publish(ctx, "r-9", event)
				_, total, _ := repository.FindByRecord(ctx, "resident", "r-9", usecases.Pagination{Limit: 10})
				return total
			}).Should(Equal(1))

			Expect(publisher.Publish(ctx, "r-9", event)).To(Succeed())
			Consistently(func() int {
				_, total, _ := repository.FindByRecord(ctx, "resident", "r-9", usecases.Pagination{Limit: 10})
				return total
			}, 200*time.Millisecond).Should(Equal(1))
		})
	})

	It("maps record events to entries", func() {
		handler := persistence.NewRecordTopicHandler(events.TopicHouseholds, repository)
		event, err := avro.NewRecordEvent("household", "h-1", "UPDATED", 3, map[string]string{"purok": "Purok 2"})
		Expect(err).NotTo(HaveOccurred())

		Expect(handler.Exists(ctx, "h-1", event)).To(BeFalse())
		Expect(handler.Create(ctx, "h-1", event)).To(Succeed())
		Expect(handler.Exists(ctx, "h-1", *event)).To(BeTrue())

		entries, _, err := repository.FindByRecord(ctx, "household", "h-1", usecases.Pagination{Limit: 10})
		Expect(err).NotTo(HaveOccurred())
		want := []domain.Entry{{
			ID:         domain.EntryID("household", "h-1", "UPDATED", 3, event.OccurredAt),
			Entity:     "household",
			RecordID:   "h-1",
			Action:     "UPDATED",
			Version:    3,
			Payload:    []byte(`{"purok":"Purok 2"}`),
			OccurredAt: event.OccurredAt,
		}}
		Expect(cmp.Diff(want, entries)).To(BeEmpty())
	})

	It("rejects messages that are not record events", func() {
		handler := persistence.NewRecordTopicHandler(events.TopicResidents, repository)
		Expect(handler.Create(ctx, "k", "not an event")).To(MatchError(ContainSubstring("unexpected message type")))
	})
})
