package documents

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"vitae-backend/internal/extract"
	"vitae-backend/internal/shared/util"
)

const (
	// DefaultMaxUploadBytes applies when no limit is configured.
	DefaultMaxUploadBytes = 10 << 20
	fileField             = "file"
)

// ReadUpload reads the multipart "file" part into memory. Parts the multipart parser
// spills to temp files are cleaned up by net/http once the handler returns.
func ReadUpload(c *gin.Context, maxBytes int64) (extract.Document, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	// Allow headroom for the other form fields and multipart framing.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+1<<20)

	fileHeader, err := c.FormFile(fileField)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return extract.Document{}, fmt.Errorf("%w: limit is %d bytes", ErrFileTooLarge, maxBytes)
		}
		return extract.Document{}, fmt.Errorf("%w: file is required", ErrInvalidInput)
	}
	if fileHeader.Size > maxBytes {
		return extract.Document{}, fmt.Errorf("%w: limit is %d bytes", ErrFileTooLarge, maxBytes)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return extract.Document{}, fmt.Errorf("%w: unable to read file", ErrInvalidInput)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return extract.Document{}, fmt.Errorf("%w: unable to read file", ErrInvalidInput)
	}
	if int64(len(data)) > maxBytes {
		return extract.Document{}, fmt.Errorf("%w: limit is %d bytes", ErrFileTooLarge, maxBytes)
	}
	if len(data) == 0 {
		return extract.Document{}, fmt.Errorf("%w: file is empty", ErrInvalidInput)
	}

	return extract.Document{
		Data:     data,
		MimeType: extract.ResolveMimeType(fileHeader.Header.Get("Content-Type"), data),
		FileName: util.SanitizeFileName(fileHeader.Filename, "upload"),
	}, nil
}
