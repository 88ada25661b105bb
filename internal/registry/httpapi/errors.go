package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"profiling-server/internal/infra/httpserver"
	"profiling-server/internal/registry/usecases"
	shared "profiling-server/internal/shared_kernel/domain"
	"profiling-server/internal/shared_kernel/validation"
)

var _notFound = []error{
	usecases.ErrResidentNotFound,
	usecases.ErrHouseholdNotFound,
	usecases.ErrFamilyNotFound,
	usecases.ErrBusinessNotFound,
	usecases.ErrMemberNotFound,
}

var _conflicts = []error{
	usecases.ErrVersionConflict,
	usecases.ErrMemberDuplicated,
	usecases.ErrHouseholdHeadInUse,
}

// replyServiceError maps registry errors to a status; anything unknown is
// logged and answered with errMsg.
func replyServiceError(w http.ResponseWriter, err error, errMsg string) {
	if _, ok := validation.IsValidationError(err); ok {
		httpserver.ReplyWithValidationError(w, err, errMsg)
		return
	}

	if errors.Is(err, shared.ErrInvalidDisplayName) {
		httpserver.ReplyWithValidationError(w, validation.NewError("display_name", "format"), errMsg)
		return
	}

	for _, target := range _notFound {
		if errors.Is(err, target) {
			httpserver.ReplyWithError(w, http.StatusNotFound, target.Error())
			return
		}
	}

	for _, target := range _conflicts {
		if errors.Is(err, target) {
			httpserver.ReplyWithError(w, http.StatusConflict, target.Error())
			return
		}
	}

	slog.Error(errMsg, slog.String("error", err.Error()))
	httpserver.ReplyWithError(w, http.StatusInternalServerError, errMsg)
}

func toPagination(params httpserver.PaginationParams) usecases.Pagination {
	return usecases.Pagination{
		Limit:  params.Limit,
		Offset: params.Offset(),
	}
}
