package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"studydeck-backend/internal/models"
)

// Transcript fetching is not wired up yet; video items get a placeholder
// body so the rest of the pipeline (store, generation) works unchanged.
type YouTubeService struct {
	httpClient *http.Client
	oembedBase string
}

var youtubeURLPattern = regexp.MustCompile(`(?:youtube\.com/(?:watch\?v=|embed/|shorts/)|youtu\.be/)([\w-]{11})`)

func NewYouTubeService() *YouTubeService {
	return &YouTubeService{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		oembedBase: "https://www.youtube.com/oembed",
	}
}

// ExtractVideoID pulls the 11-character video identifier out of a watch,
// shorts, embed or youtu.be URL.
func ExtractVideoID(rawURL string) (string, error) {
	matches := youtubeURLPattern.FindStringSubmatch(rawURL)
	if len(matches) < 2 {
		return "", fmt.Errorf("not a recognized YouTube URL: %q", rawURL)
	}
	return matches[1], nil
}

// Resolve validates the URL and returns display metadata plus a placeholder
// transcript body. The oEmbed title lookup is best-effort: any failure falls
// back to defaults and never fails the ingestion.
func (s *YouTubeService) Resolve(rawURL string) (*models.YouTubeMetadata, string, error) {
	videoID, err := ExtractVideoID(rawURL)
	if err != nil {
		return nil, "", err
	}

	meta := &models.YouTubeMetadata{
		VideoID:      videoID,
		Title:        "YouTube Video",
		ChannelName:  "YouTube Channel",
		ThumbnailURL: "https://img.youtube.com/vi/" + videoID + "/maxresdefault.jpg",
	}

	oembedURL := s.oembedBase + "?url=" + url.QueryEscape("https://www.youtube.com/watch?v="+videoID) + "&format=json"
	resp, err := s.httpClient.Get(oembedURL)
	if err == nil {
		defer resp.Body.Close()
		if resp.StatusCode == http.StatusOK {
			var oembed struct {
				Title        string `json:"title"`
				AuthorName   string `json:"author_name"`
				ThumbnailURL string `json:"thumbnail_url"`
			}
			if json.NewDecoder(resp.Body).Decode(&oembed) == nil {
				if oembed.Title != "" {
					meta.Title = oembed.Title
				}
				if oembed.AuthorName != "" {
					meta.ChannelName = oembed.AuthorName
				}
				if oembed.ThumbnailURL != "" {
					meta.ThumbnailURL = oembed.ThumbnailURL
				}
			}
		}
	}

	return meta, placeholderTranscript(meta), nil
}

func placeholderTranscript(meta *models.YouTubeMetadata) string {
	return fmt.Sprintf(
		"This is a YouTube video titled %q from the channel %q (video ID %s). "+
			"A full transcript is not available, so generated study aids are based on the video's title and channel.",
		meta.Title, meta.ChannelName, meta.VideoID)
}
