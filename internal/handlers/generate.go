package handlers

import (
	"net/http"
	"strings"

	"studydeck-backend/internal/models"
	"studydeck-backend/internal/services"
	"studydeck-backend/internal/store"
)

type GenerateHandler struct {
	store     *store.ContentStore
	generator services.Generator
}

func NewGenerateHandler(contentStore *store.ContentStore, generator services.Generator) *GenerateHandler {
	return &GenerateHandler{store: contentStore, generator: generator}
}

// Each generation endpoint replaces exactly one field of the item. Any
// failure leaves the previously stored summary/flashcards/quiz untouched.

func (h *GenerateHandler) Summary(w http.ResponseWriter, r *http.Request) {
	item, ok := h.itemFor(w, r)
	if !ok {
		return
	}

	response, err := h.generator.Generate(r.Context(), services.BuildSummaryPrompt(item.Body))
	if err != nil {
		h.generationFailed(w, r, err)
		return
	}

	summary := services.ParseSummary(response)
	h.store.SetSummary(item.ID, summary)

	writeJSON(w, http.StatusOK, map[string]interface{}{"summary": summary})
}

func (h *GenerateHandler) Flashcards(w http.ResponseWriter, r *http.Request) {
	item, ok := h.itemFor(w, r)
	if !ok {
		return
	}

	response, err := h.generator.Generate(r.Context(), services.BuildFlashcardPrompt(item.Body))
	if err != nil {
		h.generationFailed(w, r, err)
		return
	}

	cards := services.ParseFlashcards(response, item.ID)
	h.store.SetFlashcards(item.ID, cards)

	writeJSON(w, http.StatusOK, map[string]interface{}{"flashcards": cards})
}

func (h *GenerateHandler) Quiz(w http.ResponseWriter, r *http.Request) {
	item, ok := h.itemFor(w, r)
	if !ok {
		return
	}

	response, err := h.generator.Generate(r.Context(), services.BuildQuizPrompt(item.Body))
	if err != nil {
		h.generationFailed(w, r, err)
		return
	}

	questions := services.ParseQuiz(response, item.ID)
	h.store.SetQuiz(item.ID, questions)

	writeJSON(w, http.StatusOK, map[string]interface{}{"quiz": questions})
}

func (h *GenerateHandler) itemFor(w http.ResponseWriter, r *http.Request) (models.StudyItem, bool) {
	id, ok := parseItemID(w, r)
	if !ok {
		return models.StudyItem{}, false
	}

	item, found := h.store.Get(id)
	if !found {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Content not found", r))
		return models.StudyItem{}, false
	}
	return item, true
}

func (h *GenerateHandler) generationFailed(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadGateway
	if err == services.ErrNotConnected {
		status = http.StatusServiceUnavailable
	} else if strings.Contains(err.Error(), "timed out") {
		status = http.StatusGatewayTimeout
	}
	writeJSON(w, status, errorResp("GENERATION_FAILED", err.Error(), r))
}
