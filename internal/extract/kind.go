package extract

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const (
	MimePlainText = "text/plain"
	MimePDF       = "application/pdf"
	MimeDOCX      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Kind enumerates the content kinds the extractor understands.
type Kind int

const (
	KindPlainText Kind = iota + 1
	KindDOCX
	KindPDF
)

func (k Kind) String() string {
	switch k {
	case KindPlainText:
		return "text"
	case KindDOCX:
		return "docx"
	case KindPDF:
		return "pdf"
	default:
		return "unknown"
	}
}

// MimeType returns the canonical MIME type for the kind.
func (k Kind) MimeType() string {
	switch k {
	case KindPlainText:
		return MimePlainText
	case KindDOCX:
		return MimeDOCX
	case KindPDF:
		return MimePDF
	default:
		return ""
	}
}

// ParseKind maps a declared MIME type to a Kind. Parameters such as charset are ignored.
func ParseKind(mimeType string) (Kind, error) {
	switch normalizeMimeType(mimeType) {
	case MimePlainText:
		return KindPlainText, nil
	case MimeDOCX:
		return KindDOCX, nil
	case MimePDF:
		return KindPDF, nil
	default:
		return 0, &UnsupportedFileTypeError{MimeType: strings.TrimSpace(mimeType)}
	}
}

// KindFromFileName resolves a Kind from the file extension.
func KindFromFileName(name string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt":
		return KindPlainText, nil
	case ".docx":
		return KindDOCX, nil
	case ".pdf":
		return KindPDF, nil
	default:
		return 0, &UnsupportedFileTypeError{MimeType: filepath.Ext(name)}
	}
}

// Detect sniffs the MIME type of data. The result carries no parameters.
func Detect(data []byte) string {
	return normalizeMimeType(mimetype.Detect(data).String())
}

// IsGeneric reports whether a declared type says nothing useful about the content,
// in which case callers should fall back to Detect.
func IsGeneric(mimeType string) bool {
	switch normalizeMimeType(mimeType) {
	case "", "application/octet-stream", "application/zip", "application/x-zip-compressed", "binary/octet-stream":
		return true
	default:
		return false
	}
}

// ResolveMimeType returns the declared type unless it is generic, in which case the
// content is sniffed.
func ResolveMimeType(declared string, data []byte) string {
	if !IsGeneric(declared) {
		return declared
	}
	return Detect(data)
}

func normalizeMimeType(mimeType string) string {
	return strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
}
