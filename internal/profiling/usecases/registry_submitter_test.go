package usecases_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	health "profiling-server/internal/health/domain"
	"profiling-server/internal/infra/utils"
	"profiling-server/internal/profiling/domain"
	"profiling-server/internal/profiling/usecases"
	registry "profiling-server/internal/registry/domain"
	shared "profiling-server/internal/shared_kernel/domain"
	mockhealth "profiling-server/test/unit/doubles/health/usecases"
	mockregistry "profiling-server/test/unit/doubles/registry/usecases"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = ginkgo.Describe("RegistrySubmitter", func() {
	var (
		ctx        context.Context
		ctrl       *gomock.Controller
		residents  *mockregistry.MockResidentService
		households *mockregistry.MockHouseholdService
		families   *mockregistry.MockFamilyService
		ncd        *mockhealth.MockNCDService
		tb         *mockhealth.MockTBService
		submitter  *usecases.RegistrySubmitter
	)

	ginkgo.BeforeEach(func() {
		ctx = context.Background()
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		residents = mockregistry.NewMockResidentService(ctrl)
		households = mockregistry.NewMockHouseholdService(ctrl)
		families = mockregistry.NewMockFamilyService(ctrl)
		ncd = mockhealth.NewMockNCDService(ctrl)
		tb = mockhealth.NewMockTBService(ctrl)

		submitter = usecases.NewRegistrySubmitter(residents, households, families, ncd, tb)
		submitter.SetClock(func() time.Time { return testNow })
		sequence := 0
		submitter.SetIDGenerator(func() shared.ID {
			sequence++
			return shared.ID(fmt.Sprintf("id-%d", sequence))
		})
	})

	ginkgo.AfterEach(func() {
		ctrl.Finish()
	})

	// expectHousehold covers the registrant and a new household headed by them.
	expectHousehold := func() {
		residents.EXPECT().CreateResident(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r registry.Resident) error {
			gomega.Expect(r.ID).To(gomega.Equal(shared.ID("id-1")))
			gomega.Expect(r.Name.LastName).To(gomega.Equal("DELA CRUZ"))
			gomega.Expect(r.HouseholdID).To(gomega.BeEmpty())
			gomega.Expect(r.CreatedAt).To(gomega.Equal(testNow))
			return nil
		})
		households.EXPECT().CreateHousehold(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, h registry.Household) (registry.Household, error) {
			gomega.Expect(h.HeadResidentID).To(gomega.Equal(shared.ID("id-1")))
			gomega.Expect(h.Address.Barangay).To(gomega.Equal("San Isidro"))
			h.Number = "HH-2026-000001"
			return h, nil
		})
		residents.EXPECT().GetResident(ctx, shared.ID("id-1")).Return(registry.Resident{ID: "id-1", Version: 1}, nil)
		residents.EXPECT().UpdateResident(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r registry.Resident) (registry.Resident, error) {
			gomega.Expect(r.HouseholdID).To(gomega.Equal(shared.ID("id-2")))
			return r, nil
		})
	}

	ginkgo.It("registers a person living solo as a family of one", func() {
		session := reviewedSession(domain.FamilyPath{Path: domain.PathLivingSolo}, nil, nil)
		expectHousehold()
		families.EXPECT().CreateFamily(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, f registry.Family) error {
			gomega.Expect(f.LivingSolo).To(gomega.BeTrue())
			gomega.Expect(f.HouseholdID).To(gomega.Equal(shared.ID("id-2")))
			gomega.Expect(f.Name).To(gomega.Equal("DELA CRUZ"))
			gomega.Expect(f.Members).To(gomega.ConsistOf(registry.FamilyMember{ResidentID: "id-1", Role: registry.RoleOther}))
			return nil
		})

		resources, err := submitter.Submit(ctx, session)

		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(resources).To(gomega.Equal(domain.Resources{
			ResidentID:       "id-1",
			HouseholdID:      "id-2",
			FamilyID:         "id-3",
			CreatedHousehold: true,
			CreatedFamily:    true,
		}))
	})

	ginkgo.It("joins an existing family in its household", func() {
		session := reviewedSession(domain.FamilyPath{Path: domain.PathExistingFamily, FamilyID: "fam-9", Role: "SON"}, nil, nil)
		residents.EXPECT().CreateResident(ctx, gomock.Any()).Return(nil)
		families.EXPECT().GetFamily(ctx, shared.ID("fam-9")).Return(registry.Family{ID: "fam-9", HouseholdID: "hh-9"}, nil)
		residents.EXPECT().GetResident(ctx, shared.ID("id-1")).Return(registry.Resident{ID: "id-1", Version: 1}, nil)
		residents.EXPECT().UpdateResident(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r registry.Resident) (registry.Resident, error) {
			gomega.Expect(r.HouseholdID).To(gomega.Equal(shared.ID("hh-9")))
			return r, nil
		})
		families.EXPECT().AddMember(ctx, registry.FamilyMember{FamilyID: "fam-9", ResidentID: "id-1", Role: registry.RoleSon}).Return(nil)

		resources, err := submitter.Submit(ctx, session)

		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(resources.HouseholdID).To(gomega.Equal(shared.ID("hh-9")))
		gomega.Expect(resources.FamilyID).To(gomega.Equal(shared.ID("fam-9")))
		gomega.Expect(resources.CreatedHousehold).To(gomega.BeFalse())
		gomega.Expect(resources.CreatedFamily).To(gomega.BeFalse())
	})

	ginkgo.It("only removes the registrant when joining a family fails", func() {
		session := reviewedSession(domain.FamilyPath{Path: domain.PathExistingFamily, FamilyID: "fam-9", Role: "SON"}, nil, nil)
		residents.EXPECT().CreateResident(ctx, gomock.Any()).Return(nil)
		families.EXPECT().GetFamily(ctx, shared.ID("fam-9")).Return(registry.Family{}, errors.New("family not found"))
		residents.EXPECT().DeleteResident(gomock.Any(), shared.ID("id-1")).Return(nil)

		_, err := submitter.Submit(ctx, session)

		gomega.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("resolving household: family not found")))
	})

	ginkgo.It("creates a new family with its members and screenings", func() {
		session := reviewedSession(
			domain.FamilyPath{Path: domain.PathNewFamily, FamilyName: "Dela Cruz-Santos", Role: "FATHER"},
			&domain.Composition{Members: []domain.Member{
				{ResidentID: "res-7", Role: "MOTHER"},
				{DisplayName: "DELA CRUZ, ANA", Sex: "FEMALE", Birthdate: utils.NewDate(2015, time.June, 1), Role: "DAUGHTER"},
			}},
			&domain.Health{NCD: &domain.NCDScreening{AssessedOn: utils.NewDate(2026, time.February, 20), Systolic: 130, Diastolic: 85}},
		)
		expectHousehold()
		residents.EXPECT().CreateResident(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r registry.Resident) error {
			gomega.Expect(r.ID).To(gomega.Equal(shared.ID("id-3")))
			gomega.Expect(r.Name.FirstName).To(gomega.Equal("ANA"))
			gomega.Expect(r.HouseholdID).To(gomega.Equal(shared.ID("id-2")))
			return nil
		})
		families.EXPECT().CreateFamily(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, f registry.Family) error {
			gomega.Expect(f.Name).To(gomega.Equal("DELA CRUZ-SANTOS"))
			gomega.Expect(f.LivingSolo).To(gomega.BeFalse())
			gomega.Expect(f.Members).To(gomega.ConsistOf(
				registry.FamilyMember{ResidentID: "id-1", Role: registry.RoleFather},
				registry.FamilyMember{ResidentID: "res-7", Role: registry.RoleMother},
				registry.FamilyMember{ResidentID: "id-3", Role: registry.RoleDaughter},
			))
			return nil
		})
		ncd.EXPECT().CreateNCDRecord(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r health.NCDRecord) (health.NCDRecord, error) {
			gomega.Expect(r.ResidentID).To(gomega.Equal(shared.ID("id-1")))
			gomega.Expect(r.FamilyID).To(gomega.Equal(shared.ID("id-4")))
			return r, nil
		})

		resources, err := submitter.Submit(ctx, session)

		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(resources.MemberIDs).To(gomega.Equal([]shared.ID{"id-3"}))
		gomega.Expect(resources.FamilyID).To(gomega.Equal(shared.ID("id-4")))
		gomega.Expect(resources.NCDRecordID).To(gomega.Equal(shared.ID("id-5")))
		gomega.Expect(resources.TBRecordID).To(gomega.BeEmpty())
	})

	ginkgo.It("undoes everything newest first when a screening fails", func() {
		session := reviewedSession(
			domain.FamilyPath{Path: domain.PathNewFamily, Role: "MOTHER"},
			&domain.Composition{Members: []domain.Member{
				{DisplayName: "DELA CRUZ, ANA", Sex: "FEMALE", Birthdate: utils.NewDate(2015, time.June, 1), Role: "DAUGHTER"},
			}},
			&domain.Health{
				NCD: &domain.NCDScreening{AssessedOn: utils.NewDate(2026, time.February, 20)},
				TB:  &domain.TBScreening{ScreenedOn: utils.NewDate(2026, time.February, 20), XpertResult: "PENDING"},
			},
		)
		expectHousehold()
		residents.EXPECT().CreateResident(ctx, gomock.Any()).Return(nil)
		families.EXPECT().CreateFamily(ctx, gomock.Any()).Return(nil)
		ncd.EXPECT().CreateNCDRecord(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r health.NCDRecord) (health.NCDRecord, error) {
			return r, nil
		})
		tb.EXPECT().CreateTBRecord(ctx, gomock.Any()).Return(health.TBRecord{}, errors.New("database is down"))

		gomock.InOrder(
			ncd.EXPECT().DeleteNCDRecord(gomock.Any(), shared.ID("id-5")).Return(nil),
			families.EXPECT().DeleteFamily(gomock.Any(), shared.ID("id-4")).Return(nil),
			residents.EXPECT().DeleteResident(gomock.Any(), shared.ID("id-3")).Return(nil),
			households.EXPECT().DeleteHousehold(gomock.Any(), shared.ID("id-2")).Return(nil),
			residents.EXPECT().DeleteResident(gomock.Any(), shared.ID("id-1")).Return(nil),
		)

		_, err := submitter.Submit(ctx, session)

		gomega.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("tb: database is down")))
	})

	ginkgo.It("keeps undoing when one step cannot be undone", func() {
		session := reviewedSession(domain.FamilyPath{Path: domain.PathLivingSolo}, nil, nil)
		expectHousehold()
		creation := errors.New("members invalid")
		families.EXPECT().CreateFamily(ctx, gomock.Any()).Return(creation)
		households.EXPECT().DeleteHousehold(gomock.Any(), shared.ID("id-2")).Return(errors.New("timeout"))
		residents.EXPECT().DeleteResident(gomock.Any(), shared.ID("id-1")).Return(nil)

		_, err := submitter.Submit(ctx, session)

		gomega.Expect(err).To(gomega.MatchError(creation))
	})

	ginkgo.It("reverts a stored submission newest first", func() {
		session := reviewedSession(domain.FamilyPath{Path: domain.PathNewFamily}, nil, nil)
		gomock.InOrder(
			tb.EXPECT().DeleteTBRecord(gomock.Any(), shared.ID("tb-1")).Return(nil),
			ncd.EXPECT().DeleteNCDRecord(gomock.Any(), shared.ID("ncd-1")).Return(nil),
			families.EXPECT().DeleteFamily(gomock.Any(), shared.ID("fam-1")).Return(nil),
			residents.EXPECT().DeleteResident(gomock.Any(), shared.ID("res-2")).Return(nil),
			households.EXPECT().DeleteHousehold(gomock.Any(), shared.ID("hh-1")).Return(nil),
			residents.EXPECT().DeleteResident(gomock.Any(), shared.ID("res-1")).Return(nil),
		)

		submitter.Revert(ctx, session, domain.Resources{
			ResidentID:       "res-1",
			HouseholdID:      "hh-1",
			FamilyID:         "fam-1",
			MemberIDs:        []shared.ID{"res-2"},
			NCDRecordID:      "ncd-1",
			TBRecordID:       "tb-1",
			CreatedHousehold: true,
			CreatedFamily:    true,
		})
	})

	ginkgo.It("leaves a joined family and household in place on revert", func() {
		session := reviewedSession(domain.FamilyPath{Path: domain.PathExistingFamily, FamilyID: "fam-9", Role: "SON"}, nil, nil)
		gomock.InOrder(
			families.EXPECT().RemoveMember(gomock.Any(), shared.ID("fam-9"), shared.ID("res-1")).Return(nil),
			residents.EXPECT().DeleteResident(gomock.Any(), shared.ID("res-1")).Return(nil),
		)

		submitter.Revert(ctx, session, domain.Resources{ResidentID: "res-1", HouseholdID: "hh-9", FamilyID: "fam-9"})
	})
})
