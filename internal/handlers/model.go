package handlers

import (
	"encoding/json"
	"net/http"

	"studydeck-backend/internal/models"
	"studydeck-backend/internal/services"
)

type ModelHandler struct {
	generator services.Generator
}

func NewModelHandler(generator services.Generator) *ModelHandler {
	return &ModelHandler{generator: generator}
}

// Status runs a fresh reachability probe. Connectivity is a snapshot, not a
// background-maintained state; staleness between checks is accepted.
func (h *ModelHandler) Status(w http.ResponseWriter, r *http.Request) {
	connected := h.generator.Probe(r.Context())
	writeJSON(w, http.StatusOK, map[string]interface{}{"connected": connected})
}

func (h *ModelHandler) Models(w http.ResponseWriter, r *http.Request) {
	list := h.generator.ListModels(r.Context())
	if list == nil {
		list = []services.ModelInfo{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"models":    list,
		"connected": h.generator.Connected(),
	})
}

// Configure points the client at a different server URL or model for the
// rest of the session, then probes the new target.
func (h *ModelHandler) Configure(w http.ResponseWriter, r *http.Request) {
	var req models.ModelConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	h.generator.Configure(req.BaseURL, req.Model)
	connected := h.generator.Probe(r.Context())

	writeJSON(w, http.StatusOK, map[string]interface{}{"connected": connected})
}
