package usecases

import (
	"context"
	"errors"

	"profiling-server/internal/history/domain"
	shared "profiling-server/internal/shared_kernel/domain"
)

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/history/usecases/repository_port_mock.go -package=usecases

var (
	ErrUnknownEntity    = errors.New("unknown entity")
	ErrRecordIDRequired = errors.New("record id is required")
)

type Pagination struct {
	Limit  int
	Offset int
}

type HistoryRepository interface {
	Append(context.Context, domain.Entry) error
	Exists(context.Context, shared.ID) (bool, error)
	FindByRecord(context.Context, string, shared.ID, Pagination) ([]domain.Entry, int, error)
}
