package httpapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"profiling-server/internal/infra/httpserver"
	"profiling-server/internal/registry/domain"
	"profiling-server/internal/registry/httpapi"
	"profiling-server/internal/registry/usecases"
	shared "profiling-server/internal/shared_kernel/domain"
	"profiling-server/internal/shared_kernel/validation"
	mockusecases "profiling-server/test/unit/doubles/registry/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("ResidentController", func() {
	var (
		ctrl     *gomock.Controller
		service  *mockusecases.MockResidentService
		router   *http.ServeMux
		recorder *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		service = mockusecases.NewMockResidentService(ctrl)
		router = http.NewServeMux()
		httpapi.NewResidentController(service).AddRoutes(router)
		recorder = httptest.NewRecorder()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("POST /v1/residents", func() {
		It("parses the display name and creates the resident", func() {
			service.EXPECT().CreateResident(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r domain.Resident) error {
				Expect(r.ID).NotTo(BeEmpty())
				Expect(r.Name.LastName).To(Equal("DELA CRUZ"))
				Expect(r.Name.FirstName).To(Equal("JUAN"))
				Expect(r.Name.MiddleName).To(Equal("SANTOS"))
				Expect(r.Sex).To(Equal(domain.SexMale))
				return nil
			})

			body := `{"display_name":"dela cruz, juan santos","sex":"MALE","birthdate":"1990-05-01"}`
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/residents", strings.NewReader(body)))

			Expect(recorder.Code).To(Equal(http.StatusCreated))
			var response map[string]any
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response["display_name"]).To(Equal("DELA CRUZ, JUAN SANTOS"))
			Expect(response["birthdate"]).To(Equal("1990-05-01"))
		})

		It("rejects a display name without comma as a field error", func() {
			body := `{"display_name":"juan dela cruz","sex":"MALE","birthdate":"1990-05-01"}`
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/residents", strings.NewReader(body)))

			Expect(recorder.Code).To(Equal(http.StatusUnprocessableEntity))
			Expect(recorder.Body.String()).To(ContainSubstring(`"display_name":"format"`))
		})

		It("rejects an invalid mobile number before calling the service", func() {
			body := `{"last_name":"Reyes","first_name":"Ana","sex":"FEMALE","birthdate":"1990-05-01","contact_number":"123"}`
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/residents", strings.NewReader(body)))

			Expect(recorder.Code).To(Equal(http.StatusUnprocessableEntity))
			var response httpserver.ErrorResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Fields).To(HaveKeyWithValue("contact_number", "phone"))
		})

		It("answers 400 for a malformed body", func() {
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/residents", strings.NewReader("{")))
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("passes domain validation errors through as 422", func() {
			service.EXPECT().CreateResident(gomock.Any(), gomock.Any()).Return(validation.NewError("birthdate", "required"))

			body := `{"last_name":"Reyes","first_name":"Ana","sex":"FEMALE"}`
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/residents", strings.NewReader(body)))

			Expect(recorder.Code).To(Equal(http.StatusUnprocessableEntity))
			Expect(recorder.Body.String()).To(ContainSubstring(`"birthdate":"required"`))
		})

		It("answers 404 when the household does not exist", func() {
			service.EXPECT().CreateResident(gomock.Any(), gomock.Any()).Return(usecases.ErrHouseholdNotFound)

			body := `{"last_name":"Reyes","first_name":"Ana","sex":"FEMALE","birthdate":"1990-05-01","household_id":"hh-404"}`
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/residents", strings.NewReader(body)))

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("GET /v1/residents", func() {
		It("forwards filters and pagination", func() {
			resident := domain.Resident{
				ID:        "r-1",
				Name:      shared.PersonName{LastName: "REYES", FirstName: "ANA"},
				Birthdate: time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
			}
			service.EXPECT().
				ListResidents(gomock.Any(), usecases.ResidentFilter{HouseholdID: "hh-1", Query: "rey"}, usecases.Pagination{Limit: 5, Offset: 5}).
				Return([]domain.Resident{resident}, 6, nil)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/residents?household_id=hh-1&q=rey&page=2&limit=5", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var response struct {
				Data       []map[string]any          `json:"data"`
				Pagination httpserver.PaginationInfo `json:"pagination"`
			}
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Data).To(HaveLen(1))
			Expect(response.Data[0]["display_name"]).To(Equal("REYES, ANA"))
			Expect(response.Data[0]["age"]).To(BeNumerically(">=", 25))
			Expect(response.Pagination).To(Equal(httpserver.PaginationInfo{Total: 6, Limit: 5, Offset: 5}))
		})
	})

	Context("GET /v1/residents/{id}", func() {
		It("answers 404 for an unknown resident", func() {
			service.EXPECT().GetResident(gomock.Any(), shared.ID("missing")).Return(domain.Resident{}, usecases.ErrResidentNotFound)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/residents/missing", nil))
			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})

		It("answers 500 with a generic message on storage failure", func() {
			service.EXPECT().GetResident(gomock.Any(), shared.ID("r-1")).Return(domain.Resident{}, errors.New("boom"))

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/residents/r-1", nil))
			Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
			Expect(recorder.Body.String()).NotTo(ContainSubstring("boom"))
		})
	})

	Context("PUT /v1/residents/{id}", func() {
		It("answers 409 on a stale version", func() {
			service.EXPECT().UpdateResident(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r domain.Resident) (domain.Resident, error) {
				Expect(r.ID).To(Equal(shared.ID("r-1")))
				Expect(r.Version).To(Equal(shared.Version(3)))
				return domain.Resident{}, usecases.ErrVersionConflict
			})

			body := `{"last_name":"Reyes","first_name":"Ana","sex":"FEMALE","birthdate":"1990-05-01","version":3}`
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPut, "/v1/residents/r-1", strings.NewReader(body)))

			Expect(recorder.Code).To(Equal(http.StatusConflict))
		})
	})

	Context("DELETE /v1/residents/{id}", func() {
		It("answers 204", func() {
			service.EXPECT().DeleteResident(gomock.Any(), shared.ID("r-1")).Return(nil)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/v1/residents/r-1", nil))
			Expect(recorder.Code).To(Equal(http.StatusNoContent))
		})

		It("answers 409 when the resident heads a household", func() {
			service.EXPECT().DeleteResident(gomock.Any(), shared.ID("r-1")).Return(usecases.ErrHouseholdHeadInUse)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/v1/residents/r-1", nil))
			Expect(recorder.Code).To(Equal(http.StatusConflict))
		})
	})

	Context("POST /v1/residents/duplicates", func() {
		It("returns the scored candidates", func() {
			match := domain.Resident{ID: "r-9", Name: shared.PersonName{LastName: "DELA CRUZ", FirstName: "JUAN"}}
			service.EXPECT().FindDuplicates(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, subject domain.Resident) ([]domain.DuplicateCandidate, error) {
				Expect(subject.ID).To(BeEmpty())
				Expect(subject.Name.LastName).To(Equal("DELA CRUZ"))
				return []domain.DuplicateCandidate{{Resident: match, Score: 0.93}}, nil
			})

			body := `{"display_name":"Dela Cruz, Juan"}`
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/residents/duplicates", strings.NewReader(body)))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var response []map[string]any
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response).To(HaveLen(1))
			Expect(response[0]["score"]).To(BeNumerically("~", 0.93))
		})

		It("requires a last name", func() {
			service.EXPECT().FindDuplicates(gomock.Any(), gomock.Any()).Return(nil, usecases.ErrLastNameRequired)

			body := `{"first_name":"Juan"}`
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/residents/duplicates", strings.NewReader(body)))

			Expect(recorder.Code).To(Equal(http.StatusUnprocessableEntity))
			Expect(recorder.Body.String()).To(ContainSubstring(`"last_name":"required"`))
		})
	})
})
