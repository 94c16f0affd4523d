package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		videoID string
		wantErr bool
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"shorts url", "https://www.youtube.com/shorts/abcDEF12345", "abcDEF12345", false},
		{"embed url", "https://www.youtube.com/embed/abcDEF12345", "abcDEF12345", false},
		{"watch with extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ", false},
		{"not youtube", "https://vimeo.com/123456", "", true},
		{"bare text", "not a url at all", "", true},
		{"id too short", "https://youtu.be/short", "", true},
		{"empty", "", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, err := ExtractVideoID(tc.url)
			if tc.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q, got id %q", tc.url, id)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if id != tc.videoID {
				t.Errorf("Expected video id %q, got %q", tc.videoID, id)
			}
		})
	}
}

func TestResolveUsesOEmbedTitle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"title":"A Lecture on Go","author_name":"Some Channel","thumbnail_url":"https://example.com/t.jpg"}`))
	}))
	defer srv.Close()

	svc := &YouTubeService{
		httpClient: &http.Client{Timeout: time.Second},
		oembedBase: srv.URL,
	}

	meta, body, err := svc.Resolve("https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Expected resolve to succeed, got %v", err)
	}
	if meta.VideoID != "dQw4w9WgXcQ" {
		t.Errorf("Expected video id, got %q", meta.VideoID)
	}
	if meta.Title != "A Lecture on Go" {
		t.Errorf("Expected oEmbed title, got %q", meta.Title)
	}
	if body == "" || !strings.Contains(body, "dQw4w9WgXcQ") {
		t.Errorf("Expected placeholder body mentioning the video id, got %q", body)
	}
}

// The oEmbed lookup is best-effort: an unreachable endpoint falls back to
// defaults and never fails the ingestion.
func TestResolveSurvivesOEmbedFailure(t *testing.T) {
	srv := httptest.NewServer(nil)
	srv.Close()

	svc := &YouTubeService{
		httpClient: &http.Client{Timeout: 200 * time.Millisecond},
		oembedBase: srv.URL,
	}

	meta, body, err := svc.Resolve("https://youtu.be/dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Expected resolve to succeed without oEmbed, got %v", err)
	}
	if meta.Title != "YouTube Video" {
		t.Errorf("Expected fallback title, got %q", meta.Title)
	}
	if body == "" {
		t.Error("Expected placeholder body")
	}
}

func TestResolveRejectsInvalidURL(t *testing.T) {
	svc := NewYouTubeService()

	_, _, err := svc.Resolve("https://example.com/watch?v=nope")
	if err == nil {
		t.Error("Expected error for non-YouTube URL")
	}
}
