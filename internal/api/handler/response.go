package handler

import (
	"bank-api/internal/api/handler/dto"
	"bank-api/internal/pkg/apperrors"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

// errIDOutOfRange marks a well-formed id that no INT key column can hold, so
// no row can match it.
var errIDOutOfRange = fmt.Errorf("%w: id exceeds the key range", apperrors.ErrNotFound)

func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("%w: no request body", apperrors.ErrInvalidArgument)
	}
	defer r.Body.Close()

	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(v)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.Is(err, io.EOF):
		return fmt.Errorf("%w: request body is empty", apperrors.ErrInvalidArgument)
	case errors.As(err, &typeErr):
		return apperrors.NewValidationError(typeErr.Field, fmt.Sprintf("must be of type %s", typeErr.Type))
	case errors.As(err, &syntaxErr):
		return fmt.Errorf("%w: malformed JSON at offset %d", apperrors.ErrInvalidArgument, syntaxErr.Offset)
	default:
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err)
	}
}

type validatable interface {
	Validate() error
}

// decodeAndValidate writes the error response itself and reports whether the
// handler should continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, logger *slog.Logger, req validatable) bool {
	if err := decodeJSON(r, req); err != nil {
		logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, err)
		return false
	}
	if err := req.Validate(); err != nil {
		logger.WarnContext(r.Context(), "Request validation failed", slog.Any("error", err))
		respondError(w, err)
		return false
	}
	return true
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("Failed to marshal JSON response", "error", err)
		http.Error(w, `{"error":{"message":"Internal server error"}}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

func respondMessage(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusOK, dto.MessageResponse{Message: message})
}

func respondError(w http.ResponseWriter, err error) {
	status, message := http.StatusInternalServerError, "An unexpected error occurred."
	detail := dto.ErrorDetail{}
	var validationError *apperrors.ValidationError
	var appErr *apperrors.AppError

	switch {
	case errors.As(err, &validationError):
		status, message = http.StatusBadRequest, validationError.Error()
		detail.Field = validationError.Field
		for _, fe := range validationError.Fields {
			detail.Fields = append(detail.Fields, dto.FieldError{Field: fe.Field, Message: fe.Message})
		}
	case errors.Is(err, apperrors.ErrNotFound):
		status, message = http.StatusNotFound, "Resource not found."
	case errors.Is(err, apperrors.ErrInvalidArgument), errors.Is(err, apperrors.ErrValidation):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrAlreadyExists):
		status, message = http.StatusConflict, "Request conflicts with existing data."
	case errors.As(err, &appErr):
		detail.Code = appErr.Code
		slog.Default().Error("Application error", "code", appErr.Code, "error", err)
	default:
		slog.Default().Error("Unhandled internal error", "error", err)
	}

	detail.Message = message
	respondJSON(w, status, dto.ErrorResponse{Error: detail})
}

func getIDFromURL(r *http.Request, param string) (int64, error) {
	idStr := chi.URLParam(r, param)
	if idStr == "" {
		return 0, fmt.Errorf("%w: %s not found in URL path", apperrors.ErrInvalidArgument, param)
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(idStr, "-") {
		return 0, fmt.Errorf("%w: %s %s", errIDOutOfRange, param, idStr)
	}
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s format in URL path: %s", apperrors.ErrInvalidArgument, param, idStr)
	}
	if id > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s %s", errIDOutOfRange, param, idStr)
	}
	return id, nil
}

func idOutOfRange(err error) bool {
	return errors.Is(err, errIDOutOfRange)
}

// logLevelFor downgrades expected client-side failures to warnings.
func logLevelFor(err error) slog.Level {
	switch {
	case errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrInvalidArgument),
		errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrConflict):
		return slog.LevelWarn
	}
	return slog.LevelError
}
