package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/trace"

	"profiling-server/internal/shared_kernel/validation"
)

const _maxBodyBytes = 1 << 20

type ErrorResponse struct {
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func ReplyWithError(w http.ResponseWriter, statusCode int, errMsg string) {
	ReplyJSONResponse(w, statusCode, &ErrorResponse{Message: errMsg})
}

// ReplyWithValidationError writes 422 with the failing fields when err
// carries a validation.Error, and 400 with errMsg otherwise.
func ReplyWithValidationError(w http.ResponseWriter, err error, errMsg string) {
	if verr, ok := validation.IsValidationError(err); ok {
		ReplyJSONResponse(w, http.StatusUnprocessableEntity, &ErrorResponse{
			Message: "validation failed",
			Fields:  verr.Fields,
		})
		return
	}

	ReplyWithError(w, http.StatusBadRequest, errMsg)
}

func ReplyJSONResponse(w http.ResponseWriter, statusCode int, output any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(output)
}

func DecodeJSONBody(r *http.Request, placeholder any) error {
	reqBody, err := io.ReadAll(io.LimitReader(r.Body, _maxBodyBytes))
	if err != nil {
		return fmt.Errorf("reading request body: %w", err)
	}

	if len(reqBody) == 0 {
		return errors.New("empty request body")
	}

	if err := json.Unmarshal(reqBody, placeholder); err != nil {
		return fmt.Errorf("unmarshaling json: %w", err)
	}

	return nil
}

// SessionToken reads "Authorization: Bearer <token>" or X-Session-Token.
func SessionToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	return strings.TrimSpace(r.Header.Get("X-Session-Token"))
}

func GetQueryParam(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}

func GetQueryParamBool(r *http.Request, name string) (bool, bool) {
	raw := GetQueryParam(r, name)
	if raw == "" {
		return false, false
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return value, true
}

func GetSpanFromContext(r *http.Request) trace.Span {
	return trace.SpanFromContext(r.Context())
}
