package httpapi_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"profiling-server/internal/history/domain"
	"profiling-server/internal/history/httpapi"
	"profiling-server/internal/history/usecases"
	shared "profiling-server/internal/shared_kernel/domain"
	mockusecases "profiling-server/test/unit/doubles/history/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("HistoryController", func() {
	var (
		ctrl     *gomock.Controller
		service  *mockusecases.MockHistoryService
		router   *http.ServeMux
		recorder *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctrl = gomock.NewController(GinkgoT())
		service = mockusecases.NewMockHistoryService(ctrl)
		router = http.NewServeMux()
		httpapi.NewHistoryController(service).AddRoutes(router)
		recorder = httptest.NewRecorder()
	})

	It("returns the snapshots of a record", func() {
		service.EXPECT().ListHistory(gomock.Any(), "household", shared.ID("h-1"), gomock.Any()).
			Return([]domain.Entry{{
				ID:         "e-1",
				Entity:     "household",
				RecordID:   "h-1",
				Action:     "CREATED",
				Version:    1,
				Payload:    []byte(`{"household_number":"HH-0001"}`),
				OccurredAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			}}, 1, nil)

		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/records/household/h-1/history", nil))

		Expect(recorder.Code).To(Equal(http.StatusOK))
		Expect(recorder.Body.String()).To(ContainSubstring(`"snapshot":{"household_number":"HH-0001"}`))
		Expect(recorder.Body.String()).To(ContainSubstring(`"action":"CREATED"`))
	})

	It("answers 404 for entities without history", func() {
		service.EXPECT().ListHistory(gomock.Any(), "account", gomock.Any(), gomock.Any()).
			Return(nil, 0, usecases.ErrUnknownEntity)

		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/records/account/a-1/history", nil))

		Expect(recorder.Code).To(Equal(http.StatusNotFound))
	})

	It("hides storage errors", func() {
		service.EXPECT().ListHistory(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, 0, errors.New("connection reset"))

		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/records/resident/r-1/history", nil))

		Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
		Expect(recorder.Body.String()).NotTo(ContainSubstring("connection reset"))
	})
})
