package usecases

import (
	"context"
	"errors"

	"profiling-server/internal/health/domain"
	shared "profiling-server/internal/shared_kernel/domain"
)

var (
	ErrNCDRecordNotFound = errors.New("ncd record not found")
	ErrTBRecordNotFound  = errors.New("tb record not found")
	ErrVersionConflict   = errors.New("record was modified by someone else")
)

type Pagination struct {
	Limit  int
	Offset int
}

type RecordFilter struct {
	ResidentID shared.ID
	FamilyID   shared.ID
}

type NCDRepository interface {
	Create(context.Context, domain.NCDRecord) error
	GetByID(context.Context, shared.ID) (domain.NCDRecord, error)
	Update(context.Context, domain.NCDRecord) error
	Delete(context.Context, shared.ID) error
	FindAll(context.Context, RecordFilter, Pagination) ([]domain.NCDRecord, int, error)
}

type TBRepository interface {
	Create(context.Context, domain.TBRecord) error
	GetByID(context.Context, shared.ID) (domain.TBRecord, error)
	Update(context.Context, domain.TBRecord) error
	Delete(context.Context, shared.ID) error
	FindAll(context.Context, RecordFilter, Pagination) ([]domain.TBRecord, int, error)
}

// SubjectDirectory answers whether the resident and family a record points
// at are registered.
type SubjectDirectory interface {
	ResidentExists(context.Context, shared.ID) (bool, error)
	FamilyExists(context.Context, shared.ID) (bool, error)
}
