package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"profiling-server/internal/history/domain"
	shared "profiling-server/internal/shared_kernel/domain"
)

func NewHistoryService(repository HistoryRepository, entities Entities) *SimpleHistoryService {
	return &SimpleHistoryService{
		repository: repository,
		entities:   entities,
	}
}

var _ HistoryService = &SimpleHistoryService{}

type SimpleHistoryService struct {
	repository HistoryRepository
	entities   Entities
}

// ListHistory returns the changes of one record, oldest first.
func (s *SimpleHistoryService) ListHistory(ctx context.Context, entity string, recordID shared.ID, pagination Pagination) ([]domain.Entry, int, error) {
	if !slices.Contains(s.entities, entity) {
		return nil, 0, ErrUnknownEntity
	}
	if recordID.IsEmpty() {
		return nil, 0, ErrRecordIDRequired
	}

	entries, total, err := s.repository.FindByRecord(ctx, entity, recordID, pagination)
	if err != nil {
		slog.Error("listing record history",
			slog.String("entity", entity),
			slog.String("id", recordID.String()),
			slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing record history: %w", err)
	}

	return entries, total, nil
}
