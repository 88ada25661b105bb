package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	healthUsecases "profiling-server/internal/health/usecases"
	"profiling-server/internal/infra/utils"
	"profiling-server/internal/profiling/domain"
	registry "profiling-server/internal/registry/domain"
	registryUsecases "profiling-server/internal/registry/usecases"
	shared "profiling-server/internal/shared_kernel/domain"
)

func NewRegistrySubmitter(
	residents registryUsecases.ResidentService,
	households registryUsecases.HouseholdService,
	families registryUsecases.FamilyService,
	ncd healthUsecases.NCDService,
	tb healthUsecases.TBService,
) *RegistrySubmitter {
	return &RegistrySubmitter{
		residents:  residents,
		households: households,
		families:   families,
		ncd:        ncd,
		tb:         tb,
		now:        time.Now,
		newID:      func() shared.ID { return shared.ID(utils.GenerateUUID()) },
	}
}

var _ Submitter = &RegistrySubmitter{}

// RegistrySubmitter creates, in order, the resident, the household, the
// family with its members and the health records. Each step registers its
// undo; a failure replays them newest first.
type RegistrySubmitter struct {
	residents  registryUsecases.ResidentService
	households registryUsecases.HouseholdService
	families   registryUsecases.FamilyService
	ncd        healthUsecases.NCDService
	tb         healthUsecases.TBService
	now        func() time.Time
	newID      func() shared.ID
}

type undoStep struct {
	name string
	run  func(ctx context.Context) error
}

type submission struct {
	session   domain.Session
	resources domain.Resources
	undo      []undoStep
	now       time.Time
}

func (s *submission) onFailure(step undoStep) {
	s.undo = append(s.undo, step)
}

func (s *RegistrySubmitter) Submit(ctx context.Context, session domain.Session) (domain.Resources, error) {
	sub := &submission{session: session, now: s.now().UTC()}

	steps := []struct {
		name string
		run  func(context.Context, *submission) error
	}{
		{"creating resident", s.createResident},
		{"resolving household", s.resolveHousehold},
		{"registering family", s.registerFamily},
		{"recording health screenings", s.recordHealth},
	}

	for _, step := range steps {
		if err := step.run(ctx, sub); err != nil {
			s.compensate(ctx, sub)
			return domain.Resources{}, fmt.Errorf("%s: %w", step.name, err)
		}
	}

	return sub.resources, nil
}

// Revert replays the undo of every resource a submission reports, newest
// first. Shared households and families are left alone.
func (s *RegistrySubmitter) Revert(ctx context.Context, session domain.Session, resources domain.Resources) {
	sub := &submission{session: session, resources: resources}

	if resources.ResidentID != "" {
		sub.onFailure(s.deleteResident(resources.ResidentID))
	}
	if resources.CreatedHousehold && resources.HouseholdID != "" {
		sub.onFailure(s.deleteHousehold(resources.HouseholdID))
	}
	for _, id := range resources.MemberIDs {
		sub.onFailure(s.deleteMember(id))
	}
	if resources.FamilyID != "" {
		if resources.CreatedFamily {
			sub.onFailure(s.deleteFamily(resources.FamilyID))
		} else {
			sub.onFailure(s.removeMember(resources.FamilyID, resources.ResidentID))
		}
	}
	if resources.NCDRecordID != "" {
		sub.onFailure(s.deleteNCDRecord(resources.NCDRecordID))
	}
	if resources.TBRecordID != "" {
		sub.onFailure(s.deleteTBRecord(resources.TBRecordID))
	}

	slog.Warn("reverting submission", slog.String("session_id", session.ID.String()), slog.Int("steps", len(sub.undo)))
	s.compensate(ctx, sub)
}

func (s *RegistrySubmitter) deleteResident(id shared.ID) undoStep {
	return undoStep{name: "delete resident", run: func(ctx context.Context) error {
		return s.residents.DeleteResident(ctx, id)
	}}
}

func (s *RegistrySubmitter) deleteMember(id shared.ID) undoStep {
	return undoStep{name: "delete member resident", run: func(ctx context.Context) error {
		return s.residents.DeleteResident(ctx, id)
	}}
}

func (s *RegistrySubmitter) deleteHousehold(id shared.ID) undoStep {
	return undoStep{name: "delete household", run: func(ctx context.Context) error {
		return s.households.DeleteHousehold(ctx, id)
	}}
}

func (s *RegistrySubmitter) deleteFamily(id shared.ID) undoStep {
	return undoStep{name: "delete family", run: func(ctx context.Context) error {
		return s.families.DeleteFamily(ctx, id)
	}}
}

func (s *RegistrySubmitter) removeMember(familyID, residentID shared.ID) undoStep {
	return undoStep{name: "remove family member", run: func(ctx context.Context) error {
		return s.families.RemoveMember(ctx, familyID, residentID)
	}}
}

func (s *RegistrySubmitter) deleteNCDRecord(id shared.ID) undoStep {
	return undoStep{name: "delete ncd record", run: func(ctx context.Context) error {
		return s.ncd.DeleteNCDRecord(ctx, id)
	}}
}

func (s *RegistrySubmitter) deleteTBRecord(id shared.ID) undoStep {
	return undoStep{name: "delete tb record", run: func(ctx context.Context) error {
		return s.tb.DeleteTBRecord(ctx, id)
	}}
}

func (s *RegistrySubmitter) compensate(ctx context.Context, sub *submission) {
	// the request context may already be cancelled
	ctx = context.WithoutCancel(ctx)
	for i := len(sub.undo) - 1; i >= 0; i-- {
		step := sub.undo[i]
		if err := step.run(ctx); err != nil {
			slog.Error("compensating submission",
				slog.String("session_id", sub.session.ID.String()),
				slog.String("step", step.name),
				slog.String("error", err.Error()),
			)
			continue
		}
		slog.Info("submission step undone", slog.String("session_id", sub.session.ID.String()), slog.String("step", step.name))
	}
}

func (s *RegistrySubmitter) createResident(ctx context.Context, sub *submission) error {
	draft := sub.session.Draft
	resident, err := draft.PersonalInfo.ToResident(s.newID(), draft.Address.ToShared())
	if err != nil {
		return err
	}
	resident.CreatedAt = sub.now
	resident.UpdatedAt = sub.now

	if err := s.residents.CreateResident(ctx, resident); err != nil {
		return err
	}
	sub.resources.ResidentID = resident.ID
	sub.onFailure(s.deleteResident(resident.ID))
	return nil
}

// resolveHousehold uses the chosen family's household, an explicitly joined
// household, or creates a new one headed by the registrant. The registrant
// is then linked to it.
func (s *RegistrySubmitter) resolveHousehold(ctx context.Context, sub *submission) error {
	draft := sub.session.Draft
	var householdID shared.ID

	switch {
	case sub.session.Path == domain.PathExistingFamily:
		family, err := s.families.GetFamily(ctx, shared.ID(draft.FamilyPath.FamilyID))
		if err != nil {
			return err
		}
		householdID = family.HouseholdID
	case draft.Household.JoinsExisting():
		household, err := s.households.GetHousehold(ctx, shared.ID(draft.Household.HouseholdID))
		if err != nil {
			return err
		}
		householdID = household.ID
	default:
		household := draft.Household.ToHousehold(s.newID(), sub.resources.ResidentID, draft.Address.ToShared())
		household.CreatedAt = sub.now
		household.UpdatedAt = sub.now
		created, err := s.households.CreateHousehold(ctx, household)
		if err != nil {
			return err
		}
		householdID = created.ID
		sub.resources.CreatedHousehold = true
		sub.onFailure(s.deleteHousehold(created.ID))
	}
	sub.resources.HouseholdID = householdID

	resident, err := s.residents.GetResident(ctx, sub.resources.ResidentID)
	if err != nil {
		return err
	}
	resident.HouseholdID = householdID
	_, err = s.residents.UpdateResident(ctx, resident)
	return err
}

func (s *RegistrySubmitter) registerFamily(ctx context.Context, sub *submission) error {
	path := sub.session.Draft.FamilyPath
	registrant := registry.FamilyMember{ResidentID: sub.resources.ResidentID, Role: path.RegistrantRole()}

	if sub.session.Path == domain.PathExistingFamily {
		registrant.FamilyID = shared.ID(path.FamilyID)
		if err := s.families.AddMember(ctx, registrant); err != nil {
			return err
		}
		sub.resources.FamilyID = registrant.FamilyID
		sub.onFailure(s.removeMember(registrant.FamilyID, registrant.ResidentID))
		return nil
	}

	members := []registry.FamilyMember{registrant}
	if sub.session.Path == domain.PathNewFamily && sub.session.Draft.Composition != nil {
		composed, err := s.composeMembers(ctx, sub)
		if err != nil {
			return err
		}
		members = append(members, composed...)
	}

	family := registry.Family{
		ID:             s.newID(),
		Version:        1,
		HouseholdID:    sub.resources.HouseholdID,
		Name:           s.familyName(sub.session),
		HeadResidentID: sub.resources.ResidentID,
		LivingSolo:     sub.session.Path == domain.PathLivingSolo,
		Members:        members,
		CreatedAt:      sub.now,
		UpdatedAt:      sub.now,
	}
	if err := s.families.CreateFamily(ctx, family); err != nil {
		return err
	}
	sub.resources.FamilyID = family.ID
	sub.resources.CreatedFamily = true
	sub.onFailure(s.deleteFamily(family.ID))
	return nil
}

// composeMembers registers the new people listed in the composition so the
// family can be created with its full membership.
func (s *RegistrySubmitter) composeMembers(ctx context.Context, sub *submission) ([]registry.FamilyMember, error) {
	listed := sub.session.Draft.Composition.Members
	result := make([]registry.FamilyMember, 0, len(listed))

	for i, member := range listed {
		residentID := shared.ID(member.ResidentID)
		if member.IsNew() {
			name, err := shared.ParsePersonName(member.DisplayName)
			if err != nil {
				return nil, fmt.Errorf("member %d: %w", i, err)
			}
			resident := registry.Resident{
				ID:          s.newID(),
				Version:     1,
				Name:        name,
				Sex:         registry.Sex(member.Sex),
				Birthdate:   member.Birthdate.Time,
				Address:     sub.session.Draft.Address.ToShared(),
				HouseholdID: sub.resources.HouseholdID,
				CreatedAt:   sub.now,
				UpdatedAt:   sub.now,
			}
			if err := s.residents.CreateResident(ctx, resident); err != nil {
				return nil, fmt.Errorf("member %d: %w", i, err)
			}
			residentID = resident.ID
			sub.resources.MemberIDs = append(sub.resources.MemberIDs, resident.ID)
			sub.onFailure(s.deleteMember(resident.ID))
		}
		result = append(result, registry.FamilyMember{ResidentID: residentID, Role: registry.Role(member.Role)})
	}

	return result, nil
}

func (s *RegistrySubmitter) familyName(session domain.Session) string {
	if name := strings.TrimSpace(session.Draft.FamilyPath.FamilyName); name != "" {
		return strings.ToUpper(name)
	}
	name, err := session.Draft.PersonalInfo.Name()
	if err != nil {
		return ""
	}
	return name.LastName
}

func (s *RegistrySubmitter) recordHealth(ctx context.Context, sub *submission) error {
	screenings := sub.session.Draft.Health
	if screenings == nil {
		return nil
	}

	if screenings.NCD != nil {
		record := screenings.NCD.ToRecord(s.newID(), sub.resources.ResidentID, sub.resources.FamilyID)
		created, err := s.ncd.CreateNCDRecord(ctx, record)
		if err != nil {
			return fmt.Errorf("ncd: %w", err)
		}
		sub.resources.NCDRecordID = created.ID
		sub.onFailure(s.deleteNCDRecord(created.ID))
	}

	if screenings.TB != nil {
		record := screenings.TB.ToRecord(s.newID(), sub.resources.ResidentID, sub.resources.FamilyID)
		created, err := s.tb.CreateTBRecord(ctx, record)
		if err != nil {
			return fmt.Errorf("tb: %w", err)
		}
		sub.resources.TBRecordID = created.ID
		sub.onFailure(s.deleteTBRecord(created.ID))
	}

	return nil
}
