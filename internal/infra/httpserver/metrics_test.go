package httpserver

import (
	"net/http"
	"net/http/httptest"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/metric"
)

var _ = ginkgo.Describe("Metrics", func() {
	ginkgo.It("initializes instruments and passes the response through", func() {
		reader := metric.NewManualReader()
		otel.SetMeterProvider(metric.NewMeterProvider(metric.WithReader(reader)))
		ResetMetricsForTesting()

		handler := MetricsMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte("created"))
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/residents", nil))

		gomega.Expect(rec.Code).To(gomega.Equal(http.StatusCreated))
		gomega.Expect(rec.Body.String()).To(gomega.Equal("created"))
		gomega.Expect(IsMetricsInitialized()).To(gomega.BeTrue())
	})

	ginkgo.DescribeTable("normalizeEndpoint",
		func(path, expected string) {
			gomega.Expect(normalizeEndpoint(path)).To(gomega.Equal(expected))
		},
		ginkgo.Entry("root", "/", "root"),
		ginkgo.Entry("empty", "", "root"),
		ginkgo.Entry("collection", "/v1/households", "/v1/households"),
		ginkgo.Entry("resident id", "/v1/residents/123e4567-e89b-12d3-a456-426614174000", "/v1/residents/_id"),
		ginkgo.Entry("family members",
			"/v1/families/123e4567-e89b-12d3-a456-426614174000/members/987fcdeb-51a2-43d7-8f9e-123456789abc",
			"/v1/families/_id/members/_id"),
		ginkgo.Entry("wizard step",
			"/v1/profiling/sessions/123e4567-e89b-12d3-a456-426614174000/steps/HOUSEHOLD",
			"/v1/profiling/sessions/_id/steps/HOUSEHOLD"),
	)

	ginkgo.Context("responseWriter", func() {
		var (
			recorder *httptest.ResponseRecorder
			wrapped  *responseWriter
		)

		ginkgo.BeforeEach(func() {
			recorder = httptest.NewRecorder()
			wrapped = &responseWriter{ResponseWriter: recorder, statusCode: http.StatusOK}
		})

		ginkgo.It("records the status code", func() {
			wrapped.WriteHeader(http.StatusNotFound)
			gomega.Expect(wrapped.statusCode).To(gomega.Equal(http.StatusNotFound))
			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusNotFound))
		})

		ginkgo.It("reports hijack as unsupported on a recorder", func() {
			_, _, err := wrapped.Hijack()
			gomega.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("does not support hijacking")))
		})
	})
})
