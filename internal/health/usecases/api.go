package usecases

import (
	"context"
	"time"

	"profiling-server/internal/health/domain"
	shared "profiling-server/internal/shared_kernel/domain"
)

const (
	EntityNCDRecord = "ncd_record"
	EntityTBRecord  = "tb_record"
)

type Options struct {
	CacheTTL time.Duration
}

func DefaultOptions() Options {
	return Options{CacheTTL: 10 * time.Minute}
}

type NCDService interface {
	CreateNCDRecord(context.Context, domain.NCDRecord) (domain.NCDRecord, error)
	GetNCDRecord(context.Context, shared.ID) (domain.NCDRecord, error)
	ListNCDRecords(context.Context, RecordFilter, Pagination) ([]domain.NCDRecord, int, error)
	UpdateNCDRecord(context.Context, domain.NCDRecord) (domain.NCDRecord, error)
	DeleteNCDRecord(context.Context, shared.ID) error
}

type TBService interface {
	CreateTBRecord(context.Context, domain.TBRecord) (domain.TBRecord, error)
	GetTBRecord(context.Context, shared.ID) (domain.TBRecord, error)
	ListTBRecords(context.Context, RecordFilter, Pagination) ([]domain.TBRecord, int, error)
	UpdateTBRecord(context.Context, domain.TBRecord) (domain.TBRecord, error)
	DeleteTBRecord(context.Context, shared.ID) error
}

func cacheKey(entity string, id shared.ID) string {
	return entity + ":" + id.String()
}
