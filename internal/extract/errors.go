package extract

import "fmt"

// UnsupportedFileTypeError is returned when the declared type has no extraction strategy.
type UnsupportedFileTypeError struct {
	MimeType string
}

func (e *UnsupportedFileTypeError) Error() string {
	if e.MimeType == "" {
		return "unsupported file type: (none). Please upload a PDF, DOCX, or TXT file."
	}
	return fmt.Sprintf("unsupported file type: %s. Please upload a PDF, DOCX, or TXT file.", e.MimeType)
}

// UnsupportedContentError is returned when a file of a supported kind cannot be decoded.
type UnsupportedContentError struct {
	Kind Kind
	Err  error
}

func (e *UnsupportedContentError) Error() string {
	return fmt.Sprintf("unable to read %s content: %v", e.Kind, e.Err)
}

func (e *UnsupportedContentError) Unwrap() error {
	return e.Err
}
