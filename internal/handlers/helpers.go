package handlers

import (
	"encoding/json"
	"net/http"

	"studydeck-backend/internal/models"
	"studydeck-backend/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

// handleExtractError converts a classified ingestion failure into exactly
// one JSON error response carrying the kind's fixed user-facing message.
func handleExtractError(w http.ResponseWriter, r *http.Request, err error) {
	ee := services.AsExtractError(err)
	writeJSON(w, extractStatus(ee.Kind), errorResp(string(ee.Kind), ee.Message(), r))
}

func extractStatus(kind services.ExtractErrorKind) int {
	switch kind {
	case services.ExtractUnavailable:
		return http.StatusBadRequest
	case services.ExtractInvalidType:
		return http.StatusUnsupportedMediaType
	case services.ExtractFileTooLarge:
		return http.StatusRequestEntityTooLarge
	case services.ExtractPasswordProtected, services.ExtractInvalidDocument,
		services.ExtractLoadError, services.ExtractNoText:
		return http.StatusUnprocessableEntity
	case services.ExtractTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
