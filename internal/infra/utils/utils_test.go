package utils_test

import (
	"encoding/json"
	"time"

	"profiling-server/internal/infra/utils"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type recordChange struct {
	Entity string
	ID     string
}

var _ = Describe("ExtractStringValue", func() {
	It("reads a struct field", func() {
		msg := recordChange{Entity: "household", ID: "h-1"}
		Expect(utils.ExtractStringValue(msg, "Entity")).To(Equal("household"))
	})

	It("reads a nested map key", func() {
		msg := map[string]any{"Value": map[string]any{"entity": "family"}}
		Expect(utils.ExtractStringValue(msg, "Value.entity")).To(Equal("family"))
	})

	It("converts non string values", func() {
		Expect(utils.ExtractStringValue(map[string]any{"count": 42}, "count")).To(Equal("42"))
	})

	It("returns empty for missing or empty properties", func() {
		Expect(utils.ExtractStringValue(recordChange{}, "")).To(BeEmpty())
		Expect(utils.ExtractStringValue(map[string]any{}, "entity")).To(BeEmpty())
	})
})

var _ = Describe("Date", func() {
	It("serializes as a calendar day", func() {
		data, err := json.Marshal(utils.NewDate(1990, time.March, 7))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal(`"1990-03-07"`))
	})

	It("parses a calendar day", func() {
		var d utils.Date
		Expect(json.Unmarshal([]byte(`"2001-12-31"`), &d)).To(Succeed())
		Expect(d.Year()).To(Equal(2001))
		Expect(d.Month()).To(Equal(time.December))
	})

	It("rejects other layouts", func() {
		var d utils.Date
		Expect(json.Unmarshal([]byte(`"12/31/2001"`), &d)).NotTo(Succeed())
	})
})

var _ = Describe("GenerateNumericCode", func() {
	It("returns only digits of the requested length", func() {
		code, err := utils.GenerateNumericCode(6)
		Expect(err).NotTo(HaveOccurred())
		Expect(code).To(MatchRegexp(`^\d{6}$`))
	})
})

var _ = Describe("Timezone", func() {
	It("validates IANA names", func() {
		Expect(utils.ValidateTimezone("Asia/Manila")).To(Succeed())
		Expect(utils.ValidateTimezone("")).NotTo(Succeed())
		Expect(utils.ValidateTimezone("Mars/Olympus")).NotTo(Succeed())
	})

	It("falls back to UTC", func() {
		Expect(utils.LoadLocationOrUTC("nowhere")).To(Equal(time.UTC))
		Expect(utils.LoadLocationOrUTC("Asia/Manila").String()).To(Equal("Asia/Manila"))
	})
})
