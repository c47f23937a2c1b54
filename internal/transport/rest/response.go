package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/domain"
)

const maxBodyBytes = 1 << 20

// retryAfterSeconds is advertised on 503 responses.
const retryAfterSeconds = 1

// Stable error kinds returned in the "code" field.
const (
	CodeNotFoundOrForbidden    = "NOT_FOUND_OR_FORBIDDEN"
	CodeInvalidStatusValue     = "INVALID_STATUS_VALUE"
	CodeMissingDelegateName    = "MISSING_DELEGATE_NAME"
	CodeSelfDelegation         = "SELF_DELEGATION_REJECTED"
	CodeValidation             = "VALIDATION_ERROR"
	CodeDelegationLimit        = "DELEGATION_LIMIT_EXCEEDED"
	CodeAlreadyDelegated       = "ALREADY_DELEGATED"
	CodeDelegateAlreadyInvited = "DELEGATE_ALREADY_INVITED"
	CodeAlreadyExists          = "ALREADY_EXISTS"
	CodeUnauthorized           = "UNAUTHORIZED"
	CodeForbidden              = "FORBIDDEN"
	CodeInfrastructure         = "INFRASTRUCTURE_ERROR"
	CodeInternal               = "INTERNAL_ERROR"
)

type errorResponse struct {
	Error  string          `json:"error"`
	Code   string          `json:"code"`
	Fields []fieldErrorDTO `json:"fields,omitempty"`
}

type fieldErrorDTO struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: message, Code: code})
}

// handleError maps a service error to its HTTP status and error kind.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError

	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, CodeNotFoundOrForbidden, "not found")
	case errors.Is(err, domain.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, CodeInvalidStatusValue, "status must be opened or responded")
	case errors.Is(err, domain.ErrMissingDelegateName):
		writeError(w, http.StatusBadRequest, CodeMissingDelegateName, "to_display_name is required")
	case errors.Is(err, domain.ErrSelfDelegation):
		writeError(w, http.StatusBadRequest, CodeSelfDelegation, "cannot delegate to yourself")
	case errors.As(err, &ve):
		resp := errorResponse{Error: ve.Error(), Code: CodeValidation}
		for _, fe := range ve.Errors {
			resp.Fields = append(resp.Fields, fieldErrorDTO{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, CodeValidation, err.Error())
	case errors.Is(err, domain.ErrDelegationLimitExceeded):
		writeError(w, http.StatusConflict, CodeDelegationLimit, "delegation limit reached")
	case errors.Is(err, domain.ErrAlreadyDelegated):
		writeError(w, http.StatusConflict, CodeAlreadyDelegated, "invitation already delegated")
	case errors.Is(err, domain.ErrDelegateAlreadyInvited):
		writeError(w, http.StatusConflict, CodeDelegateAlreadyInvited, "delegate already holds an invitation for this agenda")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, CodeAlreadyExists, "already exists")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, CodeUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, CodeForbidden, "forbidden")
	case errors.Is(err, domain.ErrInfrastructure), errors.Is(err, context.DeadlineExceeded):
		log.WarnContext(r.Context(), "dependency unavailable", slog.String("error", err.Error()))
		w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
		writeError(w, http.StatusServiceUnavailable, CodeInfrastructure, "service temporarily unavailable")
	case errors.Is(err, context.Canceled):
		log.DebugContext(r.Context(), "request canceled", slog.String("error", err.Error()))
		w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
		writeError(w, http.StatusServiceUnavailable, CodeInfrastructure, "request canceled")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, CodeInternal, "internal server error")
	}
}

// decodeJSON reads a size-limited JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.NewValidationError("body", fmt.Sprintf("invalid JSON: %v", err))
	}
	return nil
}

// uuidParam parses a UUID path or query value named field.
func uuidParam(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(field, "must be a UUID")
	}
	return id, nil
}

// intQuery parses an optional non-negative integer query parameter.
func intQuery(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, domain.NewValidationError(name, "must be a non-negative integer")
	}
	return n, nil
}
