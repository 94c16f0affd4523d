package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"studydeck-backend/internal/models"
	"studydeck-backend/internal/services"
	"studydeck-backend/internal/store"
	"studydeck-backend/internal/websocket"
)

const maxUploadBytes = 50 * 1024 * 1024 // matches the extraction service's limit

type ContentHandler struct {
	store          *store.ContentStore
	extract        *services.PDFExtractService
	youtube        *services.YouTubeService
	hub            *websocket.Hub
	maxPages       int
	extractTimeout time.Duration
}

func NewContentHandler(
	contentStore *store.ContentStore,
	extract *services.PDFExtractService,
	youtube *services.YouTubeService,
	hub *websocket.Hub,
	maxPages int,
	extractTimeout time.Duration,
) *ContentHandler {
	return &ContentHandler{
		store:          contentStore,
		extract:        extract,
		youtube:        youtube,
		hub:            hub,
		maxPages:       maxPages,
		extractTimeout: extractTimeout,
	}
}

// Upload ingests a PDF: validate, extract with live progress, then store the
// new item as current. A failed extraction never creates an item.
func (h *ContentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > maxUploadBytes {
		handleExtractError(w, r, services.NewExtractError(services.ExtractFileTooLarge, "request body too large"))
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		handleExtractError(w, r, services.NewExtractError(services.ExtractUnavailable, "no file field in request"))
		return
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		handleExtractError(w, r, services.NewExtractError(services.ExtractFileTooLarge, err.Error()))
		return
	}

	title := strings.TrimSuffix(header.Filename, ".pdf")
	result, err := h.extract.Extract(payload, services.ExtractOptions{
		MaxPages: h.maxPages,
		Timeout:  h.extractTimeout,
		OnProgress: func(pct float64) {
			h.hub.Broadcast(models.WSMessage{
				Type: "progress",
				Payload: models.ProgressUpdate{
					ItemTitle: title,
					Stage:     "extracting",
					Percent:   pct,
				},
			})
		},
	})
	if err != nil {
		handleExtractError(w, r, err)
		return
	}

	if title == "" {
		title = result.Title
	}
	item := models.StudyItem{
		ID:        uuid.New(),
		Title:     title,
		Kind:      models.KindDocument,
		Body:      result.Text,
		CreatedAt: time.Now(),
	}
	h.store.Add(item)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"item":       item,
		"page_count": result.PageCount,
		"metadata":   result.Metadata,
	})
}

func (h *ContentHandler) ValidateYouTube(w http.ResponseWriter, r *http.Request) {
	var req models.ValidateYouTubeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	meta, transcript, err := h.youtube.Resolve(req.URL)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid YouTube URL", r))
		return
	}

	item := models.StudyItem{
		ID:        uuid.New(),
		Title:     meta.Title,
		Kind:      models.KindVideo,
		Body:      transcript,
		CreatedAt: time.Now(),
	}
	h.store.Add(item)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"item":     item,
		"metadata": meta,
		"valid":    true,
	})
}

func (h *ContentHandler) Paste(w http.ResponseWriter, r *http.Request) {
	var req models.PasteTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Text must not be empty", r))
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = "Pasted Text"
	}

	item := models.StudyItem{
		ID:        uuid.New(),
		Title:     title,
		Kind:      models.KindPlainText,
		Body:      strings.TrimSpace(req.Text),
		CreatedAt: time.Now(),
	}
	h.store.Add(item)

	writeJSON(w, http.StatusOK, map[string]interface{}{"item": item})
}

func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items":      h.store.List(),
		"current_id": h.store.CurrentID(),
	})
}

func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseItemID(w, r)
	if !ok {
		return
	}

	item, found := h.store.Get(id)
	if !found {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Content not found", r))
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseItemID(w, r)
	if !ok {
		return
	}

	if !h.store.Delete(id) {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Content not found", r))
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"deleted":    id,
		"current_id": h.store.CurrentID(),
	})
}

func (h *ContentHandler) Select(w http.ResponseWriter, r *http.Request) {
	id, ok := parseItemID(w, r)
	if !ok {
		return
	}

	if !h.store.SetCurrent(id) {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Content not found", r))
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"current_id": id})
}

func (h *ContentHandler) SupportedFormats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"formats": []map[string]string{
			{"kind": "document", "mime_type": "application/pdf", "description": "PDF Document (max 50 MB)"},
			{"kind": "video", "mime_type": "", "description": "YouTube URL (watch, shorts, embed)"},
			{"kind": "plain_text", "mime_type": "text/plain", "description": "Pasted Text"},
		},
	})
}

func parseItemID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid content ID", r))
		return uuid.Nil, false
	}
	return id, true
}
