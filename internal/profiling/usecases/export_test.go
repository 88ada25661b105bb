package usecases

import (
	"time"

	shared "profiling-server/internal/shared_kernel/domain"
)

func (s *SimpleWizardService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *RegistrySubmitter) SetClock(now func() time.Time) {
	s.now = now
}

func (s *RegistrySubmitter) SetIDGenerator(next func() shared.ID) {
	s.newID = next
}
