package response

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/teamsynchq/teamsync/internal/apperror"
)

// Response represents a standard API response
type Response struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
	Error   any  `json:"error,omitempty"`
}

// ErrorBody is the error payload carried in a failed response
type ErrorBody struct {
	Code    apperror.Code     `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// JSON sends a JSON response
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := Response{
		Success: status >= 200 && status < 300,
		Data:    data,
	}

	json.NewEncoder(w).Encode(resp)
}

// Error sends an error response
func Error(w http.ResponseWriter, status int, body ErrorBody) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := Response{
		Success: false,
		Error:   body,
	}

	json.NewEncoder(w).Encode(resp)
}

// FromError classifies an error and sends the matching response.
// Unclassified errors become a generic 500; their detail is logged
// server-side and never leaves the process.
func FromError(w http.ResponseWriter, err error) {
	appErr, ok := apperror.As(err)
	if !ok {
		log.Error().Err(err).Msg("unhandled error")
		Error(w, http.StatusInternalServerError, ErrorBody{
			Code:    apperror.CodeInternal,
			Message: "internal server error",
		})
		return
	}

	body := ErrorBody{
		Code:    appErr.Code,
		Message: appErr.Message,
		Fields:  appErr.Fields,
	}

	switch appErr.Code {
	case apperror.CodeValidation:
		Error(w, http.StatusBadRequest, body)
	case apperror.CodeResourceNotFound:
		Error(w, http.StatusNotFound, body)
	case apperror.CodeAccessUnauthorized:
		// Authentication failures are rejected in middleware with 401;
		// by the time a service reports this code the caller is
		// authenticated but not entitled.
		Error(w, http.StatusForbidden, body)
	case apperror.CodeResourceConflict:
		Error(w, http.StatusConflict, body)
	case apperror.CodeRoleNotConfigured:
		log.Error().Err(err).Msg("role registry misconfiguration")
		Error(w, http.StatusInternalServerError, body)
	default:
		log.Error().Err(err).Msg("unhandled error")
		Error(w, http.StatusInternalServerError, ErrorBody{
			Code:    apperror.CodeInternal,
			Message: "internal server error",
		})
	}
}

// NoContent sends a 204 No Content response
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Created sends a 201 Created response with data
func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, data)
}

// OK sends a 200 OK response with data
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

// BadRequest sends a 400 Bad Request with a validation error body
func BadRequest(w http.ResponseWriter, message string, fields map[string]string) {
	Error(w, http.StatusBadRequest, ErrorBody{
		Code:    apperror.CodeValidation,
		Message: message,
		Fields:  fields,
	})
}

// Unauthorized sends a 401 Unauthorized response
func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnauthorized, ErrorBody{
		Code:    apperror.CodeAccessUnauthorized,
		Message: message,
	})
}
