package usecases_test

import (
	"context"
	"errors"
	"time"

	"profiling-server/internal/profiling/usecases"
	mockusecases "profiling-server/test/unit/doubles/profiling/usecases"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

var _ = ginkgo.Describe("SessionJanitor", func() {
	var (
		ctrl   *gomock.Controller
		wizard *mockusecases.MockWizardService
		leaks  goleak.Option
	)

	ginkgo.BeforeEach(func() {
		leaks = goleak.IgnoreCurrent()
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		wizard = mockusecases.NewMockWizardService(ctrl)
	})

	ginkgo.AfterEach(func() {
		ctrl.Finish()
		goleak.VerifyNone(ginkgo.GinkgoT(), leaks)
	})

	ginkgo.It("rejects an invalid schedule", func() {
		_, err := usecases.NewSessionJanitor("every day", wizard)
		gomega.Expect(err).To(gomega.HaveOccurred())
	})

	ginkgo.It("purges on schedule until cancelled", func() {
		purged := make(chan struct{}, 4)
		wizard.EXPECT().PurgeStale(gomock.Any()).DoAndReturn(func(context.Context) (int, error) {
			select {
			case purged <- struct{}{}:
			default:
			}
			return 2, nil
		}).MinTimes(1)

		janitor, err := usecases.NewSessionJanitor("@every 1s", wizard)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		ctx, cancel := context.WithCancel(context.Background())
		stopped := make(chan struct{})
		go janitor.Run(ctx, func() { close(stopped) })

		gomega.Eventually(purged, 3*time.Second).Should(gomega.Receive())
		cancel()
		gomega.Eventually(stopped, time.Second).Should(gomega.BeClosed())
	})

	ginkgo.It("keeps running after a failed purge and stops on shutdown", func() {
		attempts := make(chan struct{}, 4)
		wizard.EXPECT().PurgeStale(gomock.Any()).DoAndReturn(func(context.Context) (int, error) {
			select {
			case attempts <- struct{}{}:
			default:
			}
			return 0, errors.New("database is down")
		}).MinTimes(2)

		janitor, err := usecases.NewSessionJanitor("@every 1s", wizard)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		stopped := make(chan struct{})
		go janitor.Run(context.Background(), func() { close(stopped) })

		gomega.Eventually(attempts, 3*time.Second).Should(gomega.Receive())
		gomega.Eventually(attempts, 3*time.Second).Should(gomega.Receive())
		janitor.Shutdown()
		janitor.Shutdown()
		gomega.Eventually(stopped, time.Second).Should(gomega.BeClosed())
	})
})
