package usecases

import (
	"context"

	"profiling-server/internal/history/domain"
	shared "profiling-server/internal/shared_kernel/domain"
)

//go:generate mockgen -source=api.go -destination=../../../test/unit/doubles/history/usecases/api_mock.go -package=usecases

// Entities names the record kinds whose history can be read.
type Entities []string

type HistoryService interface {
	ListHistory(ctx context.Context, entity string, recordID shared.ID, pagination Pagination) ([]domain.Entry, int, error)
}
