package domain_test

import (
	"profiling-server/internal/registry/domain"
	"profiling-server/internal/shared_kernel/validation"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

func fieldErrors(err error) map[string]string {
	verr, ok := validation.IsValidationError(err)
	Expect(ok).To(BeTrue(), "expected a validation error, got %v", err)
	return verr.Fields
}

var _ = Describe("Household", func() {
	DescribeTable("toilet facility subtype",
		func(facility domain.ToiletFacility, subtype domain.SanitarySubtype, rule string) {
			_, err := domain.NewHouseholdBuilder().
				WithTenure(domain.TenureOwned).
				WithToiletFacility(facility, subtype).
				Build()
			if rule == "" {
				Expect(err).NotTo(HaveOccurred())
				return
			}
			Expect(fieldErrors(err)).To(HaveKeyWithValue("sanitary_subtype", rule))
		},
		Entry("sanitary with subtype", domain.ToiletSanitary, domain.SanitaryPourFlush, ""),
		Entry("sanitary without subtype", domain.ToiletSanitary, domain.SanitarySubtype(""), "required_if_sanitary"),
		Entry("sanitary with unknown subtype", domain.ToiletSanitary, domain.SanitarySubtype("BUCKET"), "oneof"),
		Entry("unsanitary with subtype", domain.ToiletUnsanitary, domain.SanitaryPourFlush, "excluded_unless_sanitary"),
		Entry("none without subtype", domain.ToiletNone, domain.SanitarySubtype(""), ""),
	)

	It("defaults to no toilet facility and generates an id", func() {
		household, err := domain.NewHouseholdBuilder().Build()
		Expect(err).NotTo(HaveOccurred())
		Expect(household.ID).NotTo(BeEmpty())
		Expect(household.ToiletFacility).To(Equal(domain.ToiletNone))
		Expect(household.Version).To(BeEquivalentTo(1))
	})

	It("rejects negative income and unknown tenure", func() {
		_, err := domain.NewHouseholdBuilder().
			WithTenure("SQUATTING").
			WithMonthlyIncome(decimal.NewFromInt(-1)).
			Build()
		fields := fieldErrors(err)
		Expect(fields).To(HaveKeyWithValue("tenure", "oneof"))
		Expect(fields).To(HaveKeyWithValue("monthly_income", "gte"))
	})

	It("formats household numbers", func() {
		number := domain.FormatHouseholdNumber(2024, 42)
		Expect(number).To(Equal("HH-2024-000042"))
		Expect(domain.IsHouseholdNumber(number)).To(BeTrue())
		Expect(domain.IsHouseholdNumber("HH-24-42")).To(BeFalse())
	})
})
