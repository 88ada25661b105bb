package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"profiling-server/internal/shared_kernel/validation"
)

var _ = ginkgo.Describe("Pagination", func() {
	ginkgo.DescribeTable("ExtractPaginationParams",
		func(query string, expected PaginationParams) {
			req := httptest.NewRequest(http.MethodGet, "/v1/residents?"+query, nil)
			gomega.Expect(ExtractPaginationParams(req)).To(gomega.Equal(expected))
		},
		ginkgo.Entry("defaults without query", "", PaginationParams{Page: 1, Limit: 10}),
		ginkgo.Entry("valid page and limit", "page=2&limit=20", PaginationParams{Page: 2, Limit: 20}),
		ginkgo.Entry("page zero", "page=0&limit=10", PaginationParams{Page: 1, Limit: 10}),
		ginkgo.Entry("limit zero", "page=1&limit=0", PaginationParams{Page: 1, Limit: 10}),
		ginkgo.Entry("limit above max", "limit=150", PaginationParams{Page: 1, Limit: 10}),
		ginkgo.Entry("garbage", "page=abc&limit=x", PaginationParams{Page: 1, Limit: 10}),
		ginkgo.Entry("only limit", "limit=25", PaginationParams{Page: 1, Limit: 25}),
	)

	ginkgo.It("computes the offset from page and limit", func() {
		gomega.Expect(PaginationParams{Page: 3, Limit: 20}.Offset()).To(gomega.Equal(40))
		gomega.Expect(DefaultPaginationParams().Offset()).To(gomega.BeZero())
	})

	ginkgo.It("wraps data with pagination info", func() {
		rec := httptest.NewRecorder()
		ReplyWithPaginatedData(rec, http.StatusOK, []string{"a", "b"}, 12, PaginationParams{Page: 2, Limit: 2})

		var body struct {
			Data       []string       `json:"data"`
			Pagination PaginationInfo `json:"pagination"`
		}
		gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(gomega.Succeed())
		gomega.Expect(body.Data).To(gomega.Equal([]string{"a", "b"}))
		gomega.Expect(body.Pagination).To(gomega.Equal(PaginationInfo{Total: 12, Limit: 2, Offset: 2}))
	})
})

var _ = ginkgo.Describe("Replies", func() {
	ginkgo.It("renders validation errors as 422 with fields", func() {
		rec := httptest.NewRecorder()
		err := validation.NewError("household.sanitary_subtype", "required_if")

		ReplyWithValidationError(rec, err, "invalid household")

		gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnprocessableEntity))
		var body ErrorResponse
		gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(gomega.Succeed())
		gomega.Expect(body.Fields).To(gomega.HaveKeyWithValue("household.sanitary_subtype", "required_if"))
	})

	ginkgo.It("falls back to 400 for other errors", func() {
		rec := httptest.NewRecorder()
		ReplyWithValidationError(rec, errors.New("bad json"), "invalid household")

		gomega.Expect(rec.Code).To(gomega.Equal(http.StatusBadRequest))
		gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring("invalid household"))
	})

	ginkgo.It("rejects an empty body", func() {
		req := httptest.NewRequest(http.MethodPost, "/v1/residents", strings.NewReader(""))
		var out map[string]any
		gomega.Expect(DecodeJSONBody(req, &out)).NotTo(gomega.Succeed())
	})

	ginkgo.It("parses boolean query params", func() {
		req := httptest.NewRequest(http.MethodGet, "/v1/families?living_solo=true", nil)
		value, ok := GetQueryParamBool(req, "living_solo")
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(value).To(gomega.BeTrue())

		_, ok = GetQueryParamBool(req, "missing")
		gomega.Expect(ok).To(gomega.BeFalse())
	})
})

var _ = ginkgo.Describe("SessionToken", func() {
	ginkgo.DescribeTable("reads the token from either header",
		func(header, value, expected string) {
			req := httptest.NewRequest(http.MethodGet, "/v1/accounts/me", nil)
			if header != "" {
				req.Header.Set(header, value)
			}
			gomega.Expect(SessionToken(req)).To(gomega.Equal(expected))
		},
		ginkgo.Entry("bearer", "Authorization", "Bearer abc123", "abc123"),
		ginkgo.Entry("other scheme", "Authorization", "Basic abc123", ""),
		ginkgo.Entry("custom header", "X-Session-Token", " abc123 ", "abc123"),
		ginkgo.Entry("none", "", "", ""),
	)
})
