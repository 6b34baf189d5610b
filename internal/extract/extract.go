package extract

import (
	"context"
	"fmt"
	"unicode/utf8"

	"vitae-backend/internal/shared/metrics"
	"vitae-backend/internal/shared/telemetry"
	"vitae-backend/internal/shared/util"
)

// Document is an uploaded file held in memory for the duration of one request.
type Document struct {
	Data     []byte
	MimeType string
	FileName string
}

// Extract returns the plain text of doc, dispatching on its declared MIME type.
// Libraries used: github.com/ledongthuc/pdf (PDF) and github.com/nguyenthenguyen/docx (DOCX).
func Extract(ctx context.Context, doc Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	kind, err := ParseKind(doc.MimeType)
	if err != nil {
		metrics.IncExtractionFailed()
		return "", err
	}
	text, err := ExtractKind(ctx, kind, doc.Data)
	if err != nil {
		metrics.IncExtractionFailed()
		return "", err
	}
	telemetry.Info("extract.complete", map[string]any{
		"kind":       kind.String(),
		"file_name":  doc.FileName,
		"size_bytes": len(doc.Data),
		"sha256":     util.Digest(doc.Data),
		"chars":      utf8.RuneCountInString(text),
	})
	return text, nil
}

// ExtractKind extracts text from data already known to be of the given kind.
func ExtractKind(ctx context.Context, kind Kind, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	switch kind {
	case KindPlainText:
		return string(data), nil
	case KindDOCX:
		return extractDOCX(data)
	case KindPDF:
		return extractPDF(data)
	default:
		return "", &UnsupportedFileTypeError{MimeType: fmt.Sprintf("kind(%d)", int(kind))}
	}
}
