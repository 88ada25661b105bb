package domain_test

import (
	"profiling-server/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PersonName", func() {
	Context("ParsePersonName", func() {
		DescribeTable("valid display names",
			func(input string, expected domain.PersonName) {
				name, err := domain.ParsePersonName(input)
				Expect(err).NotTo(HaveOccurred())
				Expect(name).To(Equal(expected))
			},
			Entry("first and middle", "Dela Cruz, Juan Santos",
				domain.PersonName{LastName: "DELA CRUZ", FirstName: "JUAN", MiddleName: "SANTOS"}),
			Entry("first name only", "RIZAL, JOSE",
				domain.PersonName{LastName: "RIZAL", FirstName: "JOSE"}),
			Entry("compound first name", "reyes,  maria   clara  lopez ",
				domain.PersonName{LastName: "REYES", FirstName: "MARIA CLARA", MiddleName: "LOPEZ"}),
			Entry("suffix after first name", "Santos, Pedro Jr. Garcia",
				domain.PersonName{LastName: "SANTOS", FirstName: "PEDRO", MiddleName: "GARCIA", Suffix: "JR"}),
			Entry("trailing suffix", "Santos, Pedro Garcia III",
				domain.PersonName{LastName: "SANTOS", FirstName: "PEDRO", MiddleName: "GARCIA", Suffix: "III"}),
		)

		DescribeTable("invalid display names",
			func(input string) {
				_, err := domain.ParsePersonName(input)
				Expect(err).To(MatchError(domain.ErrInvalidDisplayName))
			},
			Entry("missing comma", "Juan Dela Cruz"),
			Entry("missing last name", " , Juan"),
			Entry("missing given names", "Dela Cruz, "),
			Entry("suffix only", "Dela Cruz, Jr."),
		)
	})

	Context("Display", func() {
		It("formats the name in registry order", func() {
			name := domain.PersonName{LastName: "dela cruz", FirstName: "juan", MiddleName: "santos", Suffix: "jr"}
			Expect(name.Display()).To(Equal("DELA CRUZ, JUAN SANTOS JR"))
		})

		It("joins only the parts that are present", func() {
			Expect(domain.PersonName{LastName: "REYES"}.Display()).To(Equal("REYES"))
			Expect(domain.PersonName{LastName: "REYES", MiddleName: "LOPEZ"}.Display()).To(Equal("REYES, LOPEZ"))
			Expect(domain.PersonName{LastName: "REYES", FirstName: "  ", Suffix: "iii"}.Display()).To(Equal("REYES, III"))
			Expect(domain.PersonName{FirstName: "maria  clara"}.Display()).To(Equal("MARIA CLARA"))
		})

		It("round trips through ParsePersonName", func() {
			original := domain.PersonName{LastName: "REYES", FirstName: "MARIA CLARA", MiddleName: "LOPEZ"}
			parsed, err := domain.ParsePersonName(original.Display())
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed).To(Equal(original))
		})
	})
})
