package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"studydeck-backend/internal/handlers"
	"studydeck-backend/internal/middleware"
	"studydeck-backend/internal/websocket"
)

func New(
	contentHandler *handlers.ContentHandler,
	generateHandler *handlers.GenerateHandler,
	modelHandler *handlers.ModelHandler,
	wsHub *websocket.Hub,
	frontendURL string,
	generateRatePerMin int,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Generation hits the local model server; keep a lid on it
	generateLimiter := middleware.NewRateLimiter(generateRatePerMin, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// ──── Content Routes ────
		r.Route("/content", func(r chi.Router) {
			r.Get("/supported-formats", contentHandler.SupportedFormats)

			r.Post("/upload", contentHandler.Upload)
			r.Post("/validate-youtube", contentHandler.ValidateYouTube)
			r.Post("/paste", contentHandler.Paste)

			r.Get("/", contentHandler.List)
			r.Get("/{id}", contentHandler.Get)
			r.Delete("/{id}", contentHandler.Delete)
			r.Put("/{id}/select", contentHandler.Select)

			// ──── Generation Routes ────
			r.Group(func(r chi.Router) {
				r.Use(generateLimiter.Middleware)
				r.Post("/{id}/summary", generateHandler.Summary)
				r.Post("/{id}/flashcards", generateHandler.Flashcards)
				r.Post("/{id}/quiz", generateHandler.Quiz)
			})
		})

		// ──── Model Server Routes ────
		r.Route("/model", func(r chi.Router) {
			r.Get("/status", modelHandler.Status)
			r.Get("/models", modelHandler.Models)
			r.Put("/config", modelHandler.Configure)
		})

		// ──── WebSocket ────
		r.Get("/ws", wsHub.HandleWebSocket)
	})

	return r
}
