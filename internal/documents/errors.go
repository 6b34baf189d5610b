package documents

import (
	"errors"
	"net/http"

	"vitae-backend/internal/extract"
)

var (
	// ErrInvalidInput indicates a malformed upload request.
	ErrInvalidInput = errors.New("invalid input")
	// ErrFileTooLarge indicates the upload exceeded the configured limit.
	ErrFileTooLarge = errors.New("file too large")
)

// ExtractionStatus maps extraction and upload errors to an HTTP status and error code.
// ok is false for errors outside that taxonomy.
func ExtractionStatus(err error) (status int, code string, ok bool) {
	var fileTypeErr *extract.UnsupportedFileTypeError
	var contentErr *extract.UnsupportedContentError
	switch {
	case errors.As(err, &fileTypeErr):
		return http.StatusUnsupportedMediaType, "unsupported_file_type", true
	case errors.As(err, &contentErr):
		return http.StatusUnprocessableEntity, "unsupported_content", true
	case errors.Is(err, ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "file_too_large", true
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest, "validation_error", true
	default:
		return 0, "", false
	}
}
