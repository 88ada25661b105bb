package httpapi_test

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	accountdomain "profiling-server/internal/accounts/domain"
	accounts "profiling-server/internal/accounts/usecases"
	"profiling-server/internal/infra/cache"
	"profiling-server/internal/profiling/domain"
	"profiling-server/internal/profiling/httpapi"
	"profiling-server/internal/profiling/usecases"
	shared "profiling-server/internal/shared_kernel/domain"
	"profiling-server/internal/shared_kernel/validation"
	mockaccounts "profiling-server/test/unit/doubles/accounts/usecases"
	mockusecases "profiling-server/test/unit/doubles/profiling/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("ProfilingController", func() {
	var (
		ctrl     *gomock.Controller
		wizard   *mockusecases.MockWizardService
		auth     *mockaccounts.MockAccountService
		router   *http.ServeMux
		recorder *httptest.ResponseRecorder
		session  domain.Session
	)

	BeforeEach(func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctrl = gomock.NewController(GinkgoT())
		wizard = mockusecases.NewMockWizardService(ctrl)
		auth = mockaccounts.NewMockAccountService(ctrl)
		router = http.NewServeMux()
		httpapi.NewProfilingController(wizard, auth).AddRoutes(router)
		recorder = httptest.NewRecorder()
		session = domain.NewSession("", time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	request := func(method, path, body string) *http.Request {
		return httptest.NewRequest(method, path, strings.NewReader(body))
	}

	Context("starting", func() {
		It("starts an anonymous session", func() {
			wizard.EXPECT().StartSession(gomock.Any(), shared.ID("")).Return(session, nil)

			router.ServeHTTP(recorder, request(http.MethodPost, "/v1/profiling/sessions", ""))

			Expect(recorder.Code).To(Equal(http.StatusCreated))
			Expect(recorder.Body.String()).To(ContainSubstring(`"current_step":"PERSONAL_INFO"`))
			Expect(recorder.Body.String()).To(ContainSubstring(`"status":"DRAFT"`))
		})

		It("links the session to the logged in account", func() {
			auth.EXPECT().Authenticate(gomock.Any(), "tok-1").Return(accountdomain.Account{ID: "acc-1"}, nil)
			wizard.EXPECT().StartSession(gomock.Any(), shared.ID("acc-1")).Return(session, nil)

			req := request(http.MethodPost, "/v1/profiling/sessions", "")
			req.Header.Set("Authorization", "Bearer tok-1")
			router.ServeHTTP(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusCreated))
		})

		It("rejects an expired token", func() {
			auth.EXPECT().Authenticate(gomock.Any(), "old").Return(accountdomain.Account{}, accounts.ErrSessionNotFound)

			req := request(http.MethodPost, "/v1/profiling/sessions", "")
			req.Header.Set("X-Session-Token", "old")
			router.ServeHTTP(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Context("saving steps", func() {
		It("decodes the payload type of the step", func() {
			wizard.EXPECT().
				SaveStep(gomock.Any(), session.ID, domain.StepFamilyPath, domain.FamilyPath{Path: domain.PathLivingSolo}).
				Return(session, nil)

			path := fmt.Sprintf("/v1/profiling/sessions/%s/steps/family_path", session.ID)
			router.ServeHTTP(recorder, request(http.MethodPut, path, `{"path":"LIVING_SOLO"}`))

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})

		It("accepts the step index", func() {
			wizard.EXPECT().
				SaveStep(gomock.Any(), session.ID, domain.StepAddress, gomock.AssignableToTypeOf(domain.Address{})).
				Return(session, nil)

			path := fmt.Sprintf("/v1/profiling/sessions/%s/steps/1", session.ID)
			router.ServeHTTP(recorder, request(http.MethodPut, path, `{"barangay":"San Isidro"}`))

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})

		It("returns field errors without saving", func() {
			wizard.EXPECT().SaveStep(gomock.Any(), session.ID, domain.StepPersonalInfo, gomock.Any()).
				Return(domain.Session{}, validation.NewError("display_name", "format"))

			path := fmt.Sprintf("/v1/profiling/sessions/%s/steps/personal_info", session.ID)
			router.ServeHTTP(recorder, request(http.MethodPut, path, `{"display_name":"Juan"}`))

			Expect(recorder.Code).To(Equal(http.StatusUnprocessableEntity))
			Expect(recorder.Body.String()).To(ContainSubstring(`"display_name":"format"`))
		})

		It("rejects unknown steps", func() {
			path := fmt.Sprintf("/v1/profiling/sessions/%s/steps/payment", session.ID)
			router.ServeHTTP(recorder, request(http.MethodPut, path, `{}`))

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})

		It("rejects a payload for the review step", func() {
			path := fmt.Sprintf("/v1/profiling/sessions/%s/steps/review", session.ID)
			router.ServeHTTP(recorder, request(http.MethodPut, path, `{}`))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("rejects malformed json", func() {
			path := fmt.Sprintf("/v1/profiling/sessions/%s/steps/address", session.ID)
			router.ServeHTTP(recorder, request(http.MethodPut, path, `{"barangay":`))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("reports steps not reached yet as conflicts", func() {
			wizard.EXPECT().SaveStep(gomock.Any(), session.ID, domain.StepHealth, gomock.Any()).
				Return(domain.Session{}, domain.ErrStepNotReached)

			path := fmt.Sprintf("/v1/profiling/sessions/%s/steps/health", session.ID)
			router.ServeHTTP(recorder, request(http.MethodPut, path, `{}`))

			Expect(recorder.Code).To(Equal(http.StatusConflict))
		})
	})

	Context("navigation", func() {
		It("moves forward", func() {
			moved := session
			moved.CurrentStep = domain.StepAddress
			wizard.EXPECT().Next(gomock.Any(), session.ID).Return(moved, nil)

			router.ServeHTTP(recorder, request(http.MethodPost, fmt.Sprintf("/v1/profiling/sessions/%s/next", session.ID), ""))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(ContainSubstring(`"current_step":"ADDRESS"`))
		})

		It("reports the first step has no previous one", func() {
			wizard.EXPECT().Back(gomock.Any(), session.ID).Return(domain.Session{}, domain.ErrNoPreviousStep)

			router.ServeHTTP(recorder, request(http.MethodPost, fmt.Sprintf("/v1/profiling/sessions/%s/back", session.ID), ""))

			Expect(recorder.Code).To(Equal(http.StatusConflict))
		})

		It("returns 404 for unknown sessions", func() {
			wizard.EXPECT().GetSession(gomock.Any(), shared.ID("nope")).Return(domain.Session{}, usecases.ErrSessionNotFound)

			router.ServeHTTP(recorder, request(http.MethodGet, "/v1/profiling/sessions/nope", ""))

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})

		It("deletes sessions", func() {
			wizard.EXPECT().DeleteSession(gomock.Any(), session.ID).Return(nil)

			router.ServeHTTP(recorder, request(http.MethodDelete, fmt.Sprintf("/v1/profiling/sessions/%s", session.ID), ""))

			Expect(recorder.Code).To(Equal(http.StatusNoContent))
		})
	})

	Context("submitting", func() {
		It("returns the submitted session", func() {
			submitted := session
			submitted.Status = domain.StatusSubmitted
			submitted.Resources = domain.Resources{ResidentID: "res-1"}
			wizard.EXPECT().Submit(gomock.Any(), session.ID).Return(submitted, nil)

			router.ServeHTTP(recorder, request(http.MethodPost, fmt.Sprintf("/v1/profiling/sessions/%s/submit", session.ID), ""))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(ContainSubstring(`"resident_id":"res-1"`))
		})

		It("returns the failed session with its error", func() {
			failed := session
			failed.Status = domain.StatusFailed
			failed.LastError = "creating resident: database is down"
			wizard.EXPECT().Submit(gomock.Any(), session.ID).
				Return(failed, fmt.Errorf("%w: %w", usecases.ErrSubmissionFailed, errors.New("database is down")))

			router.ServeHTTP(recorder, request(http.MethodPost, fmt.Sprintf("/v1/profiling/sessions/%s/submit", session.ID), ""))

			Expect(recorder.Code).To(Equal(http.StatusUnprocessableEntity))
			Expect(recorder.Body.String()).To(ContainSubstring(`"error":"creating resident: database is down"`))
			Expect(recorder.Body.String()).To(ContainSubstring(`"status":"FAILED"`))
		})

		It("reports a submission already in progress", func() {
			wizard.EXPECT().Submit(gomock.Any(), session.ID).Return(domain.Session{}, fmt.Errorf("locking session: %w", cache.ErrLockNotObtained))

			router.ServeHTTP(recorder, request(http.MethodPost, fmt.Sprintf("/v1/profiling/sessions/%s/submit", session.ID), ""))

			Expect(recorder.Code).To(Equal(http.StatusConflict))
		})

		It("refuses to submit before review", func() {
			wizard.EXPECT().Submit(gomock.Any(), session.ID).Return(domain.Session{}, domain.ErrNotAtReview)

			router.ServeHTTP(recorder, request(http.MethodPost, fmt.Sprintf("/v1/profiling/sessions/%s/submit", session.ID), ""))

			Expect(recorder.Code).To(Equal(http.StatusConflict))
		})
	})
})
