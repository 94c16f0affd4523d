package models

import (
	"time"

	"github.com/google/uuid"
)

// ContentKind identifies how a study item entered the system.
type ContentKind string

const (
	KindDocument  ContentKind = "document"
	KindVideo     ContentKind = "video"
	KindPlainText ContentKind = "plain_text"
)

// StudyItem is one unit of ingested content plus whatever study aids have
// been generated for it so far. Body is fixed at ingestion time; Summary,
// Flashcards and Quiz are each replaced wholesale by their own generation
// call and stay nil until first generated.
type StudyItem struct {
	ID         uuid.UUID      `json:"id"`
	Title      string         `json:"title"`
	Kind       ContentKind    `json:"kind"`
	Body       string         `json:"body"`
	Summary    *string        `json:"summary,omitempty"`
	Flashcards []Flashcard    `json:"flashcards,omitempty"`
	Quiz       []QuizQuestion `json:"quiz,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

type Flashcard struct {
	ID         string `json:"id"`
	Front      string `json:"front"`
	Back       string `json:"back"`
	Difficulty string `json:"difficulty"` // always "medium" at generation time
}

type QuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"` // four options, A through D
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

type ValidateYouTubeRequest struct {
	URL string `json:"url"`
}

type PasteTextRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type ModelConfigRequest struct {
	BaseURL string `json:"base_url"`
	Model   string `json:"model"`
}

type YouTubeMetadata struct {
	VideoID      string `json:"video_id"`
	Title        string `json:"title"`
	ChannelName  string `json:"channel_name"`
	ThumbnailURL string `json:"thumbnail_url"`
}
