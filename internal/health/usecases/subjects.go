package usecases

import (
	"context"
	"fmt"

	shared "profiling-server/internal/shared_kernel/domain"
	"profiling-server/internal/shared_kernel/validation"
)

// checkSubjects turns unknown resident or family references into field
// errors so clients see them next to the input.
func checkSubjects(ctx context.Context, directory SubjectDirectory, residentID, familyID shared.ID) error {
	result := &validation.Error{}

	exists, err := directory.ResidentExists(ctx, residentID)
	if err != nil {
		return fmt.Errorf("checking resident: %w", err)
	}
	if !exists {
		result.Add("resident_id", "exists")
	}

	if !familyID.IsEmpty() {
		exists, err := directory.FamilyExists(ctx, familyID)
		if err != nil {
			return fmt.Errorf("checking family: %w", err)
		}
		if !exists {
			result.Add("family_id", "exists")
		}
	}

	return result.OrNil()
}
