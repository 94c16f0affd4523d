package services

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
)

const (
	maxPDFBytes           = 50 * 1024 * 1024
	defaultMaxPages       = 100
	defaultExtractTimeout = 30 * time.Second
)

type ExtractOptions struct {
	MaxPages   int
	Timeout    time.Duration
	OnProgress func(percent float64)
}

type ExtractResult struct {
	Text      string
	PageCount int
	Title     string
	Metadata  map[string]string
}

type PDFExtractService struct{}

func NewPDFExtractService() *PDFExtractService {
	return &PDFExtractService{}
}

// Extract parses a PDF payload into normalized plain text. Validation runs
// synchronously before any parsing; the extraction itself races against
// opts.Timeout and a deadline hit yields ExtractTimeout, never partial text.
func (s *PDFExtractService) Extract(payload []byte, opts ExtractOptions) (*ExtractResult, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}

	if opts.MaxPages <= 0 {
		opts.MaxPages = defaultMaxPages
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultExtractTimeout
	}
	progress := opts.OnProgress
	if progress == nil {
		progress = func(float64) {}
	}

	result, err := runWithDeadline(opts.Timeout, func() (*ExtractResult, error) {
		return s.extract(payload, opts.MaxPages, progress)
	})
	if err != nil {
		return nil, AsExtractError(err)
	}
	return result, nil
}

func validatePayload(payload []byte) error {
	if payload == nil {
		return NewExtractError(ExtractUnavailable, "no payload")
	}
	if len(payload) == 0 {
		return NewExtractError(ExtractUnavailable, "payload is empty")
	}
	if len(payload) > maxPDFBytes {
		return NewExtractError(ExtractFileTooLarge, fmt.Sprintf("%d bytes", len(payload)))
	}

	sniff := payload
	if len(sniff) > 512 {
		sniff = sniff[:512]
	}
	if mime := http.DetectContentType(sniff); mime != "application/pdf" {
		return NewExtractError(ExtractInvalidType, mime)
	}
	return nil
}

func (s *PDFExtractService) extract(payload []byte, maxPages int, progress func(float64)) (result *ExtractResult, err error) {
	// The pdf library panics on some malformed inputs
	defer func() {
		if rec := recover(); rec != nil {
			result = nil
			err = NewExtractError(ExtractUnknown, fmt.Sprintf("panic: %v", rec))
		}
	}()

	progress(5)
	reader := bytes.NewReader(payload)
	progress(25)

	doc, err := openPDF(reader, int64(len(payload)))
	if err != nil {
		return nil, err
	}
	progress(30)

	total := doc.NumPage()
	if total < 1 {
		return nil, NewExtractError(ExtractInvalidDocument, "document reports no pages")
	}
	pages := total
	if pages > maxPages {
		pages = maxPages
	}

	var b strings.Builder
	for i := 1; i <= pages; i++ {
		text, pageErr := extractPage(doc, i)
		if pageErr != nil {
			// A single bad page never fails the whole document
			log.Printf("pdf extract: skipping page %d/%d: %v", i, pages, pageErr)
		} else if text != "" {
			b.WriteString(text)
			b.WriteString("\n\n")
		}
		progress(30 + float64(i)/float64(pages)*60)
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return nil, NewExtractError(ExtractNoText, "no text fragments on any page")
	}

	result = &ExtractResult{
		Text:      text,
		PageCount: pages,
		Title:     titleFromText(text),
		Metadata: map[string]string{
			"total_pages": fmt.Sprintf("%d", total),
			"byte_size":   fmt.Sprintf("%d", len(payload)),
		},
	}
	progress(100)
	return result, nil
}

func openPDF(r *bytes.Reader, size int64) (doc *pdf.Reader, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			doc = nil
			err = NewExtractError(ExtractInvalidDocument, fmt.Sprintf("parser panic: %v", rec))
		}
	}()

	doc, openErr := pdf.NewReader(r, size)
	if openErr != nil {
		return nil, classifyOpenError(openErr)
	}
	return doc, nil
}

// classifyOpenError maps a document-open failure to the closed error set:
// password-protected, structurally invalid, or a generic load failure
// carrying the underlying message.
func classifyOpenError(err error) *ExtractError {
	msg := err.Error()
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "encrypt") || strings.Contains(lower, "password"):
		return NewExtractError(ExtractPasswordProtected, msg)
	case strings.Contains(lower, "not a pdf") || strings.Contains(lower, "malformed") || strings.Contains(lower, "invalid"):
		return NewExtractError(ExtractInvalidDocument, msg)
	default:
		return NewExtractError(ExtractLoadError, msg)
	}
}

func extractPage(doc *pdf.Reader, index int) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = fmt.Errorf("page content panic: %v", rec)
		}
	}()

	page := doc.Page(index)
	if page.V.IsNull() {
		return "", nil
	}

	raw, err := page.GetPlainText(nil)
	if err != nil {
		return "", err
	}

	return collapseWhitespace(raw), nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// titleFromText derives a display title from the first words of the
// extracted text.
func titleFromText(text string) string {
	words := strings.Fields(text)
	if len(words) > 8 {
		words = words[:8]
	}
	title := strings.Join(words, " ")
	if len(title) > 80 {
		title = title[:80]
	}
	if title == "" {
		return "Untitled Document"
	}
	return title
}
