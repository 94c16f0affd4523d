package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Generator produces model text for prompts. The real implementation talks
// to a locally running Ollama server; a demo implementation returns fixed
// responses. The strategy is picked once at startup.
type Generator interface {
	// Probe is a reachability check. It never returns an error: any network
	// failure simply reads as "not connected".
	Probe(ctx context.Context) bool
	// ListModels returns the models the server advertises. Any failure yields
	// an empty list and flips the connection state to disconnected.
	ListModels(ctx context.Context) []ModelInfo
	Generate(ctx context.Context, prompt string) (string, error)
	Connected() bool
	Configure(baseURL, model string)
}

type ModelInfo struct {
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	ModifiedAt time.Time `json:"modified_at"`
}

var ErrNotConnected = errors.New("model server is not connected")

type OllamaClient struct {
	mu        sync.RWMutex
	baseURL   string
	model     string
	connected bool

	probeClient *http.Client // short timeout for liveness checks
	genClient   *http.Client // longer timeout for generation
}

func NewOllamaClient(baseURL, model string, probeTimeout, generateTimeout time.Duration) *OllamaClient {
	return &OllamaClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		model:       model,
		probeClient: &http.Client{Timeout: probeTimeout},
		genClient:   &http.Client{Timeout: generateTimeout},
	}
}

func (c *OllamaClient) Connected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

func (c *OllamaClient) setConnected(v bool) {
	c.mu.Lock()
	c.connected = v
	c.mu.Unlock()
}

// Configure replaces the server URL and model for the rest of the session.
// The connection state resets until the next probe.
func (c *OllamaClient) Configure(baseURL, model string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if baseURL != "" {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
	if model != "" {
		c.model = model
	}
	c.connected = false
}

func (c *OllamaClient) endpoint(path string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL + path
}

func (c *OllamaClient) Probe(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/api/tags"), nil)
	if err != nil {
		c.setConnected(false)
		return false
	}

	resp, err := c.probeClient.Do(req)
	if err != nil {
		c.setConnected(false)
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	ok := resp.StatusCode == http.StatusOK
	c.setConnected(ok)
	return ok
}

func (c *OllamaClient) ListModels(ctx context.Context) []ModelInfo {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/api/tags"), nil)
	if err != nil {
		c.setConnected(false)
		return nil
	}

	resp, err := c.probeClient.Do(req)
	if err != nil {
		c.setConnected(false)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.setConnected(false)
		return nil
	}

	var payload struct {
		Models []ModelInfo `json:"models"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("ollama: failed to decode /api/tags response: %v", err)
		c.setConnected(false)
		return nil
	}

	c.setConnected(true)
	return payload.Models
}

// Generate issues a single non-streaming generation request. It fails fast
// when the last probe saw the server as unreachable.
func (c *OllamaClient) Generate(ctx context.Context, prompt string) (string, error) {
	if !c.Connected() {
		return "", ErrNotConnected
	}

	c.mu.RLock()
	model := c.model
	c.mu.RUnlock()

	body, err := json.Marshal(map[string]interface{}{
		"model":  model,
		"prompt": prompt,
		"stream": false,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode generation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/api/generate"), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.genClient.Do(req)
	if err != nil {
		c.setConnected(false)
		if isTimeoutError(err) {
			return "", fmt.Errorf("generation timed out after %s", c.genClient.Timeout)
		}
		return "", fmt.Errorf("generation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("model server returned status %d", resp.StatusCode)
	}

	var payload struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode generation response: %w", err)
	}

	c.setConnected(true)
	return payload.Response, nil
}

func isTimeoutError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
