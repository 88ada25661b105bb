package domain_test

import (
	"time"

	"profiling-server/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

var _ = Describe("AgeAt", func() {
	DescribeTable("computes completed years",
		func(birthdate, at time.Time, expected int) {
			Expect(domain.AgeAt(birthdate, at)).To(Equal(expected))
		},
		Entry("birthday already passed", date(1990, time.March, 10), date(2024, time.June, 1), 34),
		Entry("birthday today", date(1990, time.June, 1), date(2024, time.June, 1), 34),
		Entry("birthday tomorrow", date(1990, time.June, 2), date(2024, time.June, 1), 33),
		Entry("leap day on non-leap Feb 28", date(2000, time.February, 29), date(2023, time.February, 28), 22),
		Entry("leap day on non-leap Mar 1", date(2000, time.February, 29), date(2023, time.March, 1), 23),
		Entry("newborn", date(2024, time.May, 1), date(2024, time.June, 1), 0),
		Entry("future birthdate", date(2030, time.January, 1), date(2024, time.June, 1), 0),
		Entry("zero birthdate", time.Time{}, date(2024, time.June, 1), 0),
	)
})

var _ = Describe("Address", func() {
	It("joins the non empty parts", func() {
		address := domain.Address{Purok: "Purok 3", Barangay: "San Isidro", Municipality: "Tanauan", Province: "Batangas"}
		Expect(address.Line()).To(Equal("Purok 3, San Isidro, Tanauan, Batangas"))
	})

	It("reports a zero address", func() {
		Expect(domain.Address{}.IsZero()).To(BeTrue())
	})
})
