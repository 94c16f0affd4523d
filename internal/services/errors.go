package services

import (
	"errors"
	"fmt"
)

// ExtractErrorKind is the closed set of ingestion failure classifications.
// Every failure that leaves the extraction service is one of these.
type ExtractErrorKind string

const (
	ExtractUnavailable       ExtractErrorKind = "UNAVAILABLE"
	ExtractInvalidType       ExtractErrorKind = "INVALID_TYPE"
	ExtractFileTooLarge      ExtractErrorKind = "FILE_TOO_LARGE"
	ExtractPasswordProtected ExtractErrorKind = "PASSWORD_PROTECTED"
	ExtractInvalidDocument   ExtractErrorKind = "INVALID_DOCUMENT"
	ExtractLoadError         ExtractErrorKind = "LOAD_ERROR"
	ExtractNoText            ExtractErrorKind = "NO_EXTRACTABLE_TEXT"
	ExtractTimeout           ExtractErrorKind = "TIMEOUT"
	ExtractProcessing        ExtractErrorKind = "PROCESSING_ERROR"
	ExtractUnknown           ExtractErrorKind = "UNKNOWN_ERROR"
)

// extractMessages maps each kind to its fixed user-facing message. The
// mapping is part of the service contract; handlers and tests rely on it.
var extractMessages = map[ExtractErrorKind]string{
	ExtractUnavailable:       "No document was provided",
	ExtractInvalidType:       "Only PDF documents are supported",
	ExtractFileTooLarge:      "Document exceeds the 50 MB size limit",
	ExtractPasswordProtected: "This PDF is password protected and cannot be read",
	ExtractInvalidDocument:   "This file is not a valid PDF document",
	ExtractLoadError:         "The PDF could not be loaded",
	ExtractNoText:            "No readable text was found in this PDF. It may contain only scanned images",
	ExtractTimeout:           "Processing took too long and was stopped",
	ExtractProcessing:        "Something went wrong while processing the document",
	ExtractUnknown:           "An unexpected error occurred",
}

type ExtractError struct {
	Kind   ExtractErrorKind
	Detail string
}

func (e *ExtractError) Error() string {
	if e.Detail == "" {
		return e.Message()
	}
	return fmt.Sprintf("%s: %s", e.Message(), e.Detail)
}

// Message returns the fixed user-facing message for the error's kind.
func (e *ExtractError) Message() string {
	if msg, ok := extractMessages[e.Kind]; ok {
		return msg
	}
	return extractMessages[ExtractUnknown]
}

func NewExtractError(kind ExtractErrorKind, detail string) *ExtractError {
	return &ExtractError{Kind: kind, Detail: detail}
}

// AsExtractError normalizes any failure into a classified extraction error.
// Unrecognized errors become ExtractProcessing rather than leaking the
// underlying failure type to callers.
func AsExtractError(err error) *ExtractError {
	if err == nil {
		return nil
	}
	var ee *ExtractError
	if errors.As(err, &ee) {
		return ee
	}
	return NewExtractError(ExtractProcessing, err.Error())
}
